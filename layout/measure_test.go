package layout

import (
	"reflect"
	"strings"
	"testing"

	"github.com/ByLCY/candwin/style"
)

func TestSplitLines(t *testing.T) {
	got := SplitLines("a\r\nb\rc\n")
	want := []string{"a", "b", "c", ""}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("SplitLines = %q, want %q", got, want)
	}
}

func TestMeasureMultiline(t *testing.T) {
	m := stubMeasurer{perRune: 10, height: 16}
	got := MeasureMultiline(m, "ab\nabcd\n", style.Font{Point: 12})
	if got != (Size{W: 40, H: 48}) {
		t.Fatalf("unexpected size %+v", got)
	}
}

func TestEstimateMeasurer(t *testing.T) {
	m := EstimateMeasurer{DPI: 96}
	font := style.Font{Face: "Go", Point: 12}
	if got := m.MeasureText("中文", font); got != (Size{W: 32, H: 23}) {
		t.Fatalf("wide runes should be 1em each, got %+v", got)
	}
	if got := m.MeasureText("ab", font); got.W != 18 {
		t.Fatalf("narrow runes should be 0.55em each, got %+v", got)
	}
	if got := m.MeasureText("ab", style.Font{Point: 0}); got != (Size{}) {
		t.Fatalf("suppressed font should measure zero, got %+v", got)
	}
}

func TestEncodeDebugJSON(t *testing.T) {
	res := New(testStyle(), threeCandidates(), Options{}).Compute(scenarioMeasurer)
	var buf strings.Builder
	if err := EncodeDebugJSON(&buf, res); err != nil {
		t.Fatalf("encode failed: %v", err)
	}
	out := buf.String()
	for _, key := range []string{`"size"`, `"labelTexts"`, `"3."`} {
		if !strings.Contains(out, key) {
			t.Fatalf("debug JSON missing %s:\n%s", key, out)
		}
	}
}
