package glyph

import (
	"image"
	"testing"

	"golang.org/x/image/font/gofont/gomono"

	"github.com/ByLCY/candwin/fonts"
	"github.com/ByLCY/candwin/layout"
	"github.com/ByLCY/candwin/renderer"
	"github.com/ByLCY/candwin/style"
)

func newTestRenderer(t *testing.T, reg *fonts.Registry) *Renderer {
	t.Helper()
	r, err := New(Options{DPI: 96, Fonts: reg})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	return r
}

func countPainted(img *image.RGBA) int {
	n := 0
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if img.RGBAAt(x, y).A != 0 {
				n++
			}
		}
	}
	return n
}

func TestMeasureShapedText(t *testing.T) {
	r := newTestRenderer(t, nil)
	font := style.Font{Face: "Go", Point: 12}
	a := r.MeasureText("ab", font)
	b := r.MeasureText("abcd", font)
	if a.W <= 0 || a.H <= 0 {
		t.Fatalf("expected positive size, got %+v", a)
	}
	if b.W <= a.W {
		t.Fatalf("expected wider measurement for longer text: %+v vs %+v", a, b)
	}
	// 12pt@96dpi = 16px，行高应不小于 1em
	if a.H < 16 {
		t.Fatalf("line height too small: %d", a.H)
	}
}

func TestMeasureMonoIsProportionalToRunes(t *testing.T) {
	r := newTestRenderer(t, nil)
	font := style.Font{Face: "Go Mono", Point: 12}
	one := r.MeasureText("m", font)
	ten := r.MeasureText("mmmmmmmmmm", font)
	if d := ten.W - 10*one.W; d > 1 || d < -10 {
		t.Fatalf("monospace width should scale with rune count: one=%d ten=%d", one.W, ten.W)
	}
}

func TestNotdefFallsBackToDrawer(t *testing.T) {
	r := newTestRenderer(t, nil)
	font := style.Font{Face: "Go", Point: 12}
	line := r.layoutLine("a中", fonts.ParseSpec(font.Face), r.ppem(font.Point))
	if !line.plain {
		t.Fatalf("expected runes missing from the font to use the plain path")
	}
	if line.width <= 0 {
		t.Fatalf("expected plain path to measure a width")
	}
	dst := image.NewRGBA(image.Rect(0, 0, 80, 30))
	r.DrawText(dst, image.Pt(2, 2), dst.Bounds(), "a中", font, style.RGB(0, 0, 0))
	if countPainted(dst) == 0 {
		t.Fatalf("expected the plain path to draw something")
	}
}

func TestFallbackRangeSegments(t *testing.T) {
	spec := fonts.ParseSpec("Go, Go Mono:30:39")
	segs := segmentRunes([]rune("ab12c"), spec)
	if len(segs) != 3 {
		t.Fatalf("expected 3 segments, got %+v", segs)
	}
	if segs[1].face.Name != "Go Mono" || segs[1].start != 2 || segs[1].end != 4 {
		t.Fatalf("unexpected digit segment: %+v", segs[1])
	}
}

func TestFallbackRangeUsesRegisteredFont(t *testing.T) {
	reg := fonts.NewRegistry("")
	reg.Register("Digits", fonts.WeightNormal, gomono.TTF)
	r := newTestRenderer(t, reg)
	plain := r.MeasureText("1111", style.Font{Face: "Go", Point: 12})
	mixed := r.MeasureText("1111", style.Font{Face: "Go, Digits:30:39", Point: 12})
	mono := r.MeasureText("1111", style.Font{Face: "Go Mono", Point: 12})
	if mixed.W != mono.W {
		t.Fatalf("digits should be measured with the fallback face: mixed=%+v mono=%+v plain=%+v", mixed, mono, plain)
	}
}

func TestDrawTextRespectsClip(t *testing.T) {
	r := newTestRenderer(t, nil)
	dst := image.NewRGBA(image.Rect(0, 0, 100, 60))
	clip := image.Rect(10, 10, 90, 24)
	r.DrawText(dst, clip.Min, clip, "Hello\nWorld", style.Font{Face: "Go", Point: 12}, style.RGB(200, 0, 0))
	if countPainted(dst) == 0 {
		t.Fatalf("expected pixels inside the clip")
	}
	for y := 0; y < 60; y++ {
		for x := 0; x < 100; x++ {
			if dst.RGBAAt(x, y).A != 0 && (y < clip.Min.Y || y >= clip.Max.Y) {
				t.Fatalf("pixel (%d,%d) outside the clip rows", x, y)
			}
		}
	}
}

func TestDrawTextStacksLines(t *testing.T) {
	r := newTestRenderer(t, nil)
	font := style.Font{Face: "Go", Point: 12}
	size := layout.MeasureMultiline(r, "A\nB", font)
	single := r.MeasureText("A", font)
	if size.H != 2*single.H {
		t.Fatalf("expected two stacked lines, got %d want %d", size.H, 2*single.H)
	}
	dst := image.NewRGBA(image.Rect(0, 0, 40, size.H+4))
	r.DrawText(dst, image.Pt(4, 0), image.Rectangle{}, "A\nB", font, style.RGB(0, 0, 0))
	lower := dst.SubImage(image.Rect(0, single.H, 40, size.H)).(*image.RGBA)
	if countPainted(lower) == 0 {
		t.Fatalf("expected the second line to be drawn below the first")
	}
}

func TestDrawTextSkipsInvisible(t *testing.T) {
	r := newTestRenderer(t, nil)
	dst := image.NewRGBA(image.Rect(0, 0, 40, 20))
	r.DrawText(dst, image.Point{}, dst.Bounds(), "x", style.Font{Face: "Go", Point: 12}, style.Color{G: 255})
	r.DrawText(dst, image.Point{}, dst.Bounds(), "x", style.Font{Face: "Go", Point: -1}, style.RGB(0, 0, 0))
	if countPainted(dst) != 0 {
		t.Fatalf("expected nothing drawn")
	}
}

func TestColorizePremultiplies(t *testing.T) {
	mask := image.NewAlpha(image.Rect(0, 0, 2, 1))
	mask.Pix[0] = 0xff
	mask.Pix[1] = 0x80
	out := renderer.Colorize(mask, style.Color{R: 200, G: 100, B: 0, A: 0xff})
	if got := out.RGBAAt(0, 0); got.R != 200 || got.A != 0xff {
		t.Fatalf("unexpected full coverage pixel: %+v", got)
	}
	got := out.RGBAAt(1, 0)
	if got.A != 0x80 || got.R > got.A || got.G > got.A {
		t.Fatalf("expected premultiplied half coverage pixel, got %+v", got)
	}
}
