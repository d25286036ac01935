package style

import (
	"strings"
	"testing"
)

func TestParseColor(t *testing.T) {
	cases := []struct {
		in   string
		want Color
	}{
		{"#fff", Color{0xff, 0xff, 0xff, 0xff}},
		{"#a1C", Color{0xaa, 0x11, 0xcc, 0xff}},
		{"#0F62FE", Color{0x0f, 0x62, 0xfe, 0xff}},
		{"#11223344", Color{0x11, 0x22, 0x33, 0x44}},
		{"0x112233", Color{0x33, 0x22, 0x11, 0xff}},
		{"0x80112233", Color{0x33, 0x22, 0x11, 0x80}},
	}
	for _, tc := range cases {
		got, err := ParseColor(tc.in)
		if err != nil {
			t.Fatalf("ParseColor(%q) failed: %v", tc.in, err)
		}
		if got != tc.want {
			t.Errorf("ParseColor(%q) = %v, want %v", tc.in, got, tc.want)
		}
	}
	for _, bad := range []string{"", "red", "#12345", "#ggg", "#12345z", "0x1234"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestColorRGBAIsPremultiplied(t *testing.T) {
	r, g, b, a := Color{R: 0xff, G: 0x80, B: 0, A: 0x80}.RGBA()
	if a != 0x8080 {
		t.Fatalf("alpha = %#x, want 0x8080", a)
	}
	if r != 0x8080 || b != 0 {
		t.Fatalf("unexpected premultiplied channels r=%#x b=%#x", r, b)
	}
	if g > r {
		t.Fatalf("green %#x should not exceed red %#x", g, r)
	}
}

func TestLoadOverridesBase(t *testing.T) {
	src := `
style {
  layout: horizontal
  margin: 8 -6
  font_face: "Go Mono"
  font_point: 16
  comment_font_point: 0
  back_color: #10203040
  shadow_offset: 3
  inline_preedit: true
  label_format: "%n)"
}
`
	base := Default()
	st, err := Load(strings.NewReader(src), base)
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	if st.Layout != LayoutHorizontal {
		t.Fatalf("expected horizontal layout, got %v", st.Layout)
	}
	if st.MarginX != 8 || st.MarginY != -6 {
		t.Fatalf("unexpected margins %d %d", st.MarginX, st.MarginY)
	}
	if st.Font.Face != "Go Mono" || st.LabelFont.Face != "Go Mono" {
		t.Fatalf("font_face should apply to all fonts: %+v %+v", st.Font, st.LabelFont)
	}
	if st.Font.Point != 16 || st.LabelFont.Point != 16 || st.CommentFont.Point != 0 {
		t.Fatalf("unexpected font points %d %d %d", st.Font.Point, st.LabelFont.Point, st.CommentFont.Point)
	}
	if st.BackColor != (Color{0x10, 0x20, 0x30, 0x40}) {
		t.Fatalf("unexpected back color %v", st.BackColor)
	}
	if st.ShadowOffsetX != 3 || st.ShadowOffsetY != 3 {
		t.Fatalf("single shadow_offset should set both axes")
	}
	if !st.InlinePreedit || st.LabelFormat != "%n)" {
		t.Fatalf("bool/string fields not applied: %+v", st)
	}
	// 未出现的字段保持 base 的取值
	if st.HilitedCandidateBackColor != base.HilitedCandidateBackColor {
		t.Fatalf("untouched field changed")
	}
}

func TestLoadFontAlias(t *testing.T) {
	src := `
style {
  layout: vertical
  margin: 8 6
  font: "Go:bold, Go Mono:3000:9fff"
  font_point: 14
  back_color: #ffffffee
  label_format: "%s."
}
`
	st, err := Load(strings.NewReader(src), Default())
	if err != nil {
		t.Fatalf("load failed: %v", err)
	}
	want := "Go:bold, Go Mono:3000:9fff"
	if st.Font.Face != want || st.LabelFont.Face != want || st.CommentFont.Face != want {
		t.Fatalf("font should apply to all fonts: %+v %+v %+v", st.Font, st.LabelFont, st.CommentFont)
	}
	if st.BackColor != (Color{0xff, 0xff, 0xff, 0xee}) {
		t.Fatalf("unexpected back color %v", st.BackColor)
	}
}

func TestLoadRejectsUnknownKey(t *testing.T) {
	_, err := Load(strings.NewReader("style {\n  colour: #fff\n}\n"), Default())
	if err == nil {
		t.Fatalf("expected error for unknown key")
	}
	if !strings.Contains(err.Error(), "colour") {
		t.Fatalf("error should name the key, got %v", err)
	}
}

func TestLoadRejectsWrongType(t *testing.T) {
	if _, err := Load(strings.NewReader("style { spacing: wide }"), Default()); err == nil {
		t.Fatalf("expected error for non-integer spacing")
	}
	if _, err := Load(strings.NewReader("theme { spacing: 1 }"), Default()); err == nil {
		t.Fatalf("expected error for unknown block")
	}
}

func TestEqual(t *testing.T) {
	a, b := Default(), Default()
	if !a.Equal(b) {
		t.Fatalf("default styles should be equal")
	}
	b.HilitePadding++
	if a.Equal(b) {
		t.Fatalf("styles differing in one field should not be equal")
	}
}

func TestAdjustFontPoint(t *testing.T) {
	st := Default()
	st.CommentFont.Point = 0
	up := st.AdjustFontPoint(10)
	if up.Font.Point != st.Font.Point+10 || up.LabelFont.Point != st.LabelFont.Point+10 {
		t.Fatalf("unexpected adjusted points %+v", up)
	}
	if up.CommentFont.Point != 0 {
		t.Fatalf("suppressed font must stay suppressed")
	}
	down := st.AdjustFontPoint(-100)
	if down.Font.Point != minFontPoint {
		t.Fatalf("font point should be clamped to %d, got %d", minFontPoint, down.Font.Point)
	}
}

func TestShadowEnabled(t *testing.T) {
	st := Default()
	if st.ShadowEnabled() {
		t.Fatalf("default style has no shadow")
	}
	st.ShadowColor = Color{A: 0x40}
	st.ShadowRadius = 4
	if !st.ShadowEnabled() {
		t.Fatalf("shadow should be enabled")
	}
	st.Layout = LayoutVerticalFullscreen
	if st.ShadowEnabled() {
		t.Fatalf("fullscreen disables shadows")
	}
}
