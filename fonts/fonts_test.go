package fonts

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func TestParseSpec(t *testing.T) {
	spec := ParseSpec("Go:BOLD, Go Mono:3000:9fff, Go Smallcaps:e000, Emoji")
	if spec.Name != "Go" || spec.Weight != WeightBold {
		t.Fatalf("unexpected main face %+v", spec.Face)
	}
	if len(spec.Fallbacks) != 3 {
		t.Fatalf("expected 3 fallbacks, got %d", len(spec.Fallbacks))
	}
	mono := spec.Fallbacks[0]
	if mono.Name != "Go Mono" || mono.First != 0x3000 || mono.Last != 0x9fff {
		t.Fatalf("unexpected fallback %+v", mono)
	}
	if sc := spec.Fallbacks[1]; sc.First != 0xe000 || sc.Last != 0x10ffff {
		t.Fatalf("open-ended range should end at 10ffff, got %+v", sc)
	}
	if e := spec.Fallbacks[2]; e.First != 0 || e.Last != 0x10ffff {
		t.Fatalf("fallback without range should cover everything, got %+v", e)
	}

	if got := spec.FaceFor('中'); got.Name != "Go Mono" {
		t.Fatalf("CJK rune should use Go Mono, got %s", got.Name)
	}
	if got := spec.FaceFor(''); got.Name != "Go Smallcaps" {
		t.Fatalf("PUA rune should use Go Smallcaps, got %s", got.Name)
	}
}

func TestParseSpecBadRange(t *testing.T) {
	spec := ParseSpec("Go, Go Mono:zz:yy")
	fb := spec.Fallbacks[0]
	if fb.First != 0 || fb.Last != 0x10ffff {
		t.Fatalf("unparsable range should fall back to defaults, got %+v", fb)
	}
	if spec.Weight != WeightNormal {
		t.Fatalf("missing weight should be normal, got %d", spec.Weight)
	}
}

func TestParseSpecSkipsEmptyFallbacks(t *testing.T) {
	spec := ParseSpec("Go Mono:medium, , Go:e000:")
	if spec.Name != "Go Mono" || spec.Weight != WeightMedium {
		t.Fatalf("unexpected main face %+v", spec.Face)
	}
	if len(spec.Fallbacks) != 1 {
		t.Fatalf("expected 1 fallback, got %d", len(spec.Fallbacks))
	}
	if fb := spec.Fallbacks[0]; fb.Name != "Go" || fb.First != 0xe000 || fb.Last != 0x10ffff {
		t.Fatalf("unexpected fallback %+v", fb)
	}
	if empty := ParseSpec(""); empty.Name != "" || len(empty.Fallbacks) != 0 {
		t.Fatalf("empty spec should have no faces, got %+v", empty)
	}
}

func TestFallbackData(t *testing.T) {
	if !bytes.Equal(FallbackData(), goregular.TTF) {
		t.Fatalf("fallback data should be Go Regular")
	}
}

func TestParseWeight(t *testing.T) {
	cases := map[string]Weight{
		"SEMI_BOLD":  WeightSemiBold,
		"extra-bold": WeightExtraBold,
		"Thin":       WeightThin,
		"650":        Weight(650),
	}
	for in, want := range cases {
		got, ok := ParseWeight(in)
		if !ok || got != want {
			t.Errorf("ParseWeight(%q) = %d, %v; want %d", in, got, ok, want)
		}
	}
	if _, ok := ParseWeight("fancy"); ok {
		t.Fatalf("unknown weight should not parse")
	}
}

func TestLoadBuiltin(t *testing.T) {
	data, err := Load("embed:Go", WeightBold)
	if err != nil {
		t.Fatalf("load builtin failed: %v", err)
	}
	if !bytes.Equal(data, gobold.TTF) {
		t.Fatalf("expected Go Bold data")
	}
	data, err = Load("go mono", WeightThin)
	if err != nil || !bytes.Equal(data, gomono.TTF) {
		t.Fatalf("expected nearest Go Mono weight, err=%v", err)
	}
	if _, err := Load("Inter", WeightNormal); err == nil {
		t.Fatalf("unknown builtin should fail")
	}
}

func TestRegistryLookupOrder(t *testing.T) {
	reg := NewRegistry(t.TempDir())
	custom := []byte("custom font bytes")
	reg.Register("Go", WeightNormal, custom)

	data, err := reg.Lookup(Face{Name: "go", Weight: WeightNormal})
	if err != nil || !bytes.Equal(data, custom) {
		t.Fatalf("registered data should win over builtin, err=%v", err)
	}

	if _, err := reg.Lookup(Face{Name: "Missing"}); err == nil {
		t.Fatalf("unknown face should fail")
	}
}

func TestRegistryReadsFontFiles(t *testing.T) {
	dir := t.TempDir()
	if err := os.WriteFile(filepath.Join(dir, "body.ttf"), goregular.TTF, 0o644); err != nil {
		t.Fatalf("write font: %v", err)
	}
	reg := NewRegistry(dir)
	data, err := reg.Lookup(Face{Name: "body.ttf"})
	if err != nil {
		t.Fatalf("lookup by path failed: %v", err)
	}
	if !bytes.Equal(data, goregular.TTF) {
		t.Fatalf("unexpected font data")
	}

	var nilReg *Registry
	if _, err := nilReg.Lookup(Face{Name: "body.ttf"}); err == nil {
		t.Fatalf("relative path without base dir should fail")
	}
	if _, err := nilReg.Lookup(Face{Name: "Go"}); err != nil {
		t.Fatalf("nil registry should still resolve builtin fonts: %v", err)
	}
}
