package dsl_test

import (
	"strings"
	"testing"

	"github.com/ByLCY/candwin/dsl"
)

const sampleSheet = `
// 浅色方案
style {
  layout: vertical
  margin: 8 -6
  font: "Go:bold, Go Mono:3000:9fff"
  font_point: 14; label_font_point: 0
  back_color: #ffffffee
  shadow_color: 0x40000000
  inline_preedit: true
  label_format: "%s."
}

/* 第二个块覆盖前面的取值 */
style {
  align: center
}
`

func TestParseStyleSheet(t *testing.T) {
	sheet, err := dsl.ParseString(sampleSheet)
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if len(sheet.Blocks) != 2 {
		t.Fatalf("expected 2 blocks, got %d", len(sheet.Blocks))
	}
	first := sheet.Blocks[0]
	if first.Name != "style" {
		t.Fatalf("expected block name style, got %s", first.Name)
	}
	if len(first.Entries) != 9 {
		t.Fatalf("expected 9 assignments, got %d", len(first.Entries))
	}

	margin := first.Entries[1]
	if margin.Key != "margin" || len(margin.Values) != 2 {
		t.Fatalf("unexpected margin assignment: %+v", margin)
	}
	if n, err := margin.Values[1].Int(); err != nil || n != -6 {
		t.Fatalf("expected -6, got %d (%v)", n, err)
	}

	font := first.Entries[2]
	if font.Values[0].String == nil {
		t.Fatalf("font should be a string literal, got %+v", font.Values[0])
	}
	if got := font.Values[0].Raw(); got != "Go:bold, Go Mono:3000:9fff" {
		t.Fatalf("unexpected font value %q", got)
	}

	if got := first.Entries[5].Values[0]; got.Color == nil || *got.Color != "#ffffffee" {
		t.Fatalf("expected color token, got %+v", got)
	}
	if got := first.Entries[6].Values[0]; got.Hex == nil || *got.Hex != "0x40000000" {
		t.Fatalf("expected hex token, got %+v", got)
	}
	if b, err := first.Entries[7].Values[0].Bool(); err != nil || !b {
		t.Fatalf("expected true, got %v (%v)", b, err)
	}
	if got := first.Entries[8].Values[0].Raw(); got != "%s." {
		t.Fatalf("unexpected label format %q", got)
	}
}

func TestParseStyleSheetRejectsMissingValue(t *testing.T) {
	_, err := dsl.ParseString("style {\n  margin:\n}\n")
	if err == nil {
		t.Fatalf("expected error for assignment without value")
	}
}

func TestParseLabelFormat(t *testing.T) {
	cases := []struct {
		format string
		want   string
	}{
		{"%s.", "D(s) L(.)"},
		{"[%n]", "L([) D(n) L(])"},
		{"%%%a", "E D(a)"},
		{"%[①②③]", "M(①②③)"},
		{"50%", "L(50) L(%)"},
		{"", ""},
	}
	for _, tc := range cases {
		f, err := dsl.ParseLabelFormat(tc.format)
		if err != nil {
			t.Fatalf("parse %q failed: %v", tc.format, err)
		}
		if got := describe(f); got != tc.want {
			t.Errorf("format %q: got %q, want %q", tc.format, got, tc.want)
		}
	}
}

func TestLabelPartSequence(t *testing.T) {
	f, err := dsl.ParseLabelFormat("%[甲乙丙]")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	seq := f.Parts[0].Sequence()
	if string(seq) != "甲乙丙" {
		t.Fatalf("unexpected sequence %q", string(seq))
	}
}

func describe(f *dsl.LabelFormat) string {
	parts := make([]string, 0, len(f.Parts))
	for _, p := range f.Parts {
		switch {
		case p.Escape:
			parts = append(parts, "E")
		case p.Marker != nil:
			parts = append(parts, "M("+string(p.Sequence())+")")
		case p.Directive != nil:
			parts = append(parts, "D("+string(p.Verb())+")")
		case p.Literal != nil:
			parts = append(parts, "L("+*p.Literal+")")
		}
	}
	return strings.Join(parts, " ")
}

func TestParseFaceList(t *testing.T) {
	list, err := dsl.ParseFaceList("Go:BOLD, Go Mono:3000:9fff,, Emoji::ffff")
	if err != nil {
		t.Fatalf("parse failed: %v", err)
	}
	if list.Main.Family() != "Go" || list.Main.Param(0) != "BOLD" {
		t.Fatalf("unexpected main entry %+v", list.Main)
	}
	if len(list.Fallbacks) != 2 {
		t.Fatalf("empty entries should be skipped, got %d fallbacks", len(list.Fallbacks))
	}
	mono := list.Fallbacks[0]
	if mono.Family() != "Go Mono" || mono.Param(0) != "3000" || mono.Param(1) != "9fff" {
		t.Fatalf("unexpected fallback %+v", mono)
	}
	emoji := list.Fallbacks[1]
	if emoji.Param(0) != "" || emoji.Param(1) != "ffff" {
		t.Fatalf("empty parameter should keep its position, got %q", emoji.Params)
	}
	if emoji.Param(5) != "" {
		t.Fatalf("missing parameter should be empty")
	}
}
