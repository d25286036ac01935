package paint

import (
	"image"
	"image/color"
	"image/draw"
	"testing"

	"github.com/ByLCY/candwin/style"
)

func filled(w, h int, c color.RGBA) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.Draw(img, img.Bounds(), &image.Uniform{C: c}, image.Point{}, draw.Src)
	return img
}

func TestBoxesForGauss(t *testing.T) {
	got := BoxesForGauss(0, 3)
	for i, v := range got {
		if v != 1 {
			t.Fatalf("sigma=0 时第 %d 个窗口应为 1，实际 %d", i, v)
		}
	}
	got = BoxesForGauss(1, 3)
	want := []int{1, 1, 3}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("sigma=1 窗口不符: got %v want %v", got, want)
		}
	}
	for _, sigma := range []float64{2, 5, 12} {
		for _, v := range BoxesForGauss(sigma, 3) {
			if v%2 == 0 {
				t.Fatalf("sigma=%v 的窗口应为奇数，得到 %v", sigma, BoxesForGauss(sigma, 3))
			}
		}
	}
}

func TestBlurZeroRadiusIsIdentity(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 8, 8))
	img.SetRGBA(3, 3, color.RGBA{200, 100, 50, 255})
	before := append([]uint8(nil), img.Pix...)
	Blur(img, 0, 0)
	for i := range before {
		if before[i] != img.Pix[i] {
			t.Fatalf("半径为零时位图不应改变，偏移 %d", i)
		}
	}
}

func TestBlurUniformStaysUniform(t *testing.T) {
	c := color.RGBA{40, 80, 120, 200}
	img := filled(20, 12, c)
	Blur(img, 4, 3)
	for y := 0; y < 12; y++ {
		for x := 0; x < 20; x++ {
			if got := img.RGBAAt(x, y); got != c {
				t.Fatalf("(%d,%d) 期望 %v，实际 %v", x, y, c, got)
			}
		}
	}
}

func TestBlurSpreadsAndKeepsPremultiplied(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 21, 21))
	img.SetRGBA(10, 10, color.RGBA{255, 255, 255, 255})
	Blur(img, 2, 2)
	center := img.RGBAAt(10, 10)
	near := img.RGBAAt(11, 10)
	if center.A == 255 || center.A == 0 {
		t.Fatalf("中心像素应被摊开，实际 alpha=%d", center.A)
	}
	if near.A == 0 {
		t.Fatalf("相邻像素应获得 alpha")
	}
	for i := 0; i < len(img.Pix); i += 4 {
		a := img.Pix[i+3]
		if img.Pix[i] > a || img.Pix[i+1] > a || img.Pix[i+2] > a {
			t.Fatalf("像素 %d 违反预乘约束: %v", i/4, img.Pix[i:i+4])
		}
	}
}

func TestBlurHugeRadiusClamped(t *testing.T) {
	img := filled(6, 4, color.RGBA{0, 0, 0, 255})
	img.SetRGBA(0, 0, color.RGBA{})
	Blur(img, 1000, 1000)
	if img.Bounds().Dx() != 6 || img.Bounds().Dy() != 4 {
		t.Fatalf("位图尺寸不应改变")
	}
}

func TestBlurSubImage(t *testing.T) {
	img := filled(16, 16, color.RGBA{})
	sub := img.SubImage(image.Rect(4, 4, 12, 12)).(*image.RGBA)
	sub.SetRGBA(8, 8, color.RGBA{255, 255, 255, 255})
	Blur(sub, 2, 2)
	if got := img.RGBAAt(1, 1); got.A != 0 {
		t.Fatalf("子图外的像素不应被修改: %v", got)
	}
	if got := img.RGBAAt(7, 8); got.A == 0 {
		t.Fatalf("子图内的像素应被摊开")
	}
}

func TestRoundedRectDegenerate(t *testing.T) {
	if RoundedRect(0, 10, 2, AllCorners) != nil {
		t.Fatalf("宽度为零应返回 nil")
	}
	if RoundedRect(10, -1, 2, AllCorners) != nil {
		t.Fatalf("高度为负应返回 nil")
	}
	if RoundedRect(10, 10, 50, AllCorners) == nil {
		t.Fatalf("半径过大应被截断而不是失败")
	}
}

func TestRoundedRectOrientation(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 20))
	p := &Painter{Background: image.Rect(0, 0, 40, 20)}
	fill := style.Color{R: 255, A: 255}
	// 贴边 + 横向内嵌 FIRST：只保留左上和左下圆角
	p.Inline = true
	if !p.Paint(dst, dst.Bounds(), fill, style.Color{}, image.Point{}, 8, RoleFirst) {
		t.Fatalf("应当绘制填充")
	}
	if a := dst.RGBAAt(0, 0).A; a != 0 {
		t.Fatalf("左上角应为圆角（透明），alpha=%d", a)
	}
	if a := dst.RGBAAt(0, 19).A; a != 0 {
		t.Fatalf("左下角应为圆角（透明），alpha=%d", a)
	}
	if a := dst.RGBAAt(39, 0).A; a != 255 {
		t.Fatalf("右上角应为直角（不透明），alpha=%d", a)
	}
	if a := dst.RGBAAt(39, 19).A; a != 255 {
		t.Fatalf("右下角应为直角（不透明），alpha=%d", a)
	}
	if a := dst.RGBAAt(20, 10).A; a != 255 {
		t.Fatalf("中心应被填充，alpha=%d", a)
	}
}

func TestPaintInsideUsesUniformCorners(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 60, 40))
	p := &Painter{Background: dst.Bounds(), Vertical: true}
	r := image.Rect(10, 10, 50, 30)
	p.Paint(dst, r, style.Color{B: 255, A: 255}, style.Color{}, image.Point{}, 6, RoleMiddle)
	if a := dst.RGBAAt(10, 10).A; a != 0 {
		t.Fatalf("未贴边时应四角圆角，alpha=%d", a)
	}
	if a := dst.RGBAAt(49, 29).A; a != 0 {
		t.Fatalf("未贴边时应四角圆角，alpha=%d", a)
	}
}

func TestPaintNothingVisible(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 10, 10))
	p := &Painter{Background: dst.Bounds(), ShadowRadius: 3}
	if p.Paint(dst, dst.Bounds(), style.Color{}, style.Color{}, image.Point{}, 2, RoleBackground) {
		t.Fatalf("颜色全透明时不应绘制")
	}
	if p.Paint(dst, image.Rectangle{}, style.Color{A: 255}, style.Color{}, image.Point{}, 2, RoleBackground) {
		t.Fatalf("空矩形不应绘制")
	}
}

func TestPaintShadowSkippedInFullscreen(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 40, 40))
	p := &Painter{Background: dst.Bounds(), ShadowRadius: 4, Fullscreen: true}
	if p.Paint(dst, image.Rect(10, 10, 30, 30), style.Color{}, style.Color{A: 255}, image.Pt(2, 2), 0, RoleBackground) {
		t.Fatalf("全屏时不应绘制阴影")
	}
	p.Fullscreen = false
	if !p.Paint(dst, image.Rect(10, 10, 30, 30), style.Color{}, style.Color{A: 255}, image.Pt(2, 2), 0, RoleBackground) {
		t.Fatalf("非全屏时应绘制阴影")
	}
	if a := dst.RGBAAt(33, 33).A; a == 0 {
		t.Fatalf("投影应延伸到矩形右下方")
	}
}

func TestPaintGlowSurroundsRect(t *testing.T) {
	dst := image.NewRGBA(image.Rect(0, 0, 60, 60))
	p := &Painter{Background: dst.Bounds(), ShadowRadius: 6}
	r := image.Rect(15, 15, 45, 45)
	if !p.Paint(dst, r, style.Color{}, style.Color{R: 255, A: 255}, image.Point{}, 4, RoleBackground) {
		t.Fatalf("偏移为零时应绘制光晕")
	}
	outside := map[string]image.Point{
		"左": {r.Min.X - 1, 30},
		"右": {r.Max.X, 30},
		"上": {30, r.Min.Y - 1},
		"下": {30, r.Max.Y},
	}
	for side, pt := range outside {
		if a := dst.RGBAAt(pt.X, pt.Y).A; a == 0 {
			t.Fatalf("光晕应延伸到矩形%s侧 %v", side, pt)
		}
	}
}

func TestCornerPolicyMiddleNeverRounds(t *testing.T) {
	for _, vertical := range []bool{true, false} {
		for _, inline := range []bool{true, false} {
			if c := CornerPolicy(vertical, inline, RoleMiddle); !c.None() {
				t.Fatalf("vertical=%v inline=%v 中间候选不应有圆角: %+v", vertical, inline, c)
			}
		}
	}
	if CornerPolicy(false, false, RoleBackground) != AllCorners {
		t.Fatalf("背景应四角圆角")
	}
}

func TestRoleFor(t *testing.T) {
	cases := []struct {
		i, count int
		want     Role
	}{
		{0, 1, RoleOnly},
		{0, 3, RoleFirst},
		{1, 3, RoleMiddle},
		{2, 3, RoleLast},
	}
	for _, tc := range cases {
		if got := RoleFor(tc.i, tc.count); got != tc.want {
			t.Fatalf("RoleFor(%d,%d)=%v want %v", tc.i, tc.count, got, tc.want)
		}
	}
}
