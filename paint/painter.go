package paint

import (
	"image"
	"image/draw"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/rasterizer"

	"github.com/ByLCY/candwin/style"
)

// Painter 在候选窗的离屏缓冲上绘制背景、阴影和高亮区域。
// Background 是背景矩形（已含嵌入偏移），用于判断高亮区域是否贴到了窗口边缘。
type Painter struct {
	Background   image.Rectangle
	Vertical     bool
	Inline       bool
	Fullscreen   bool
	ShadowRadius int
	Border       int
	BorderColor  style.Color
}

// NewPainter 按样式和背景矩形构造绘制器。
func NewPainter(st style.Style, background image.Rectangle) *Painter {
	return &Painter{
		Background:   background,
		Vertical:     st.Layout.Vertical(),
		Inline:       st.InlinePreedit,
		Fullscreen:   st.Layout.Fullscreen(),
		ShadowRadius: st.ShadowRadius,
		Border:       st.Border,
		BorderColor:  st.BorderColor,
	}
}

// Paint 在 dst 上绘制矩形 r：先画阴影，再画填充，背景还会描边。
// 返回是否实际绘制了任何内容。
func (p *Painter) Paint(dst *image.RGBA, r image.Rectangle, fill, shadow style.Color, shadowOffset image.Point, radius int, role Role) bool {
	if dst == nil || r.Empty() {
		return false
	}
	drawn := false
	if shadow.Visible() && p.ShadowRadius > 0 && !p.Fullscreen {
		drawn = p.paintShadow(dst, r, shadow, shadowOffset, radius) || drawn
	}
	if fill.Visible() {
		corners := AllCorners
		if role != RoleBackground && p.crossesEdge(r) {
			corners = CornerPolicy(p.Vertical, p.Inline, role)
		}
		drawn = p.paintFill(dst, r, fill, radius, corners, role == RoleBackground) || drawn
	}
	return drawn
}

// crossesEdge 报告 r 是否触及或越过背景矩形的任一边。
func (p *Painter) crossesEdge(r image.Rectangle) bool {
	bg := p.Background
	if bg.Empty() {
		return false
	}
	return r.Min.X <= bg.Min.X || r.Min.Y <= bg.Min.Y || r.Max.X >= bg.Max.X || r.Max.Y >= bg.Max.Y
}

func (p *Painter) paintFill(dst *image.RGBA, r image.Rectangle, fill style.Color, radius int, corners Corners, background bool) bool {
	w, h := float64(r.Dx()), float64(r.Dy())
	path := RoundedRect(w, h, float64(radius), corners)
	if path == nil {
		return false
	}
	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	ctx.SetFillColor(fill)
	ctx.SetStrokeColor(canvas.Transparent)
	drawAt(ctx, h, 0, 0, h, path)

	if background && p.Border > 0 && p.BorderColor.Visible() {
		bw := float64(p.Border)
		inset := bw / 2
		if outline := RoundedRect(w-bw, h-bw, float64(radius)-inset, corners); outline != nil {
			ctx.SetFillColor(canvas.Transparent)
			ctx.SetStrokeColor(p.BorderColor)
			ctx.SetStrokeWidth(bw)
			drawAt(ctx, h, inset, inset, h-bw, outline)
		}
	}
	Composite(dst, Rasterize(c), r.Min)
	return true
}

func (p *Painter) paintShadow(dst *image.RGBA, r image.Rectangle, shadow style.Color, offset image.Point, radius int) bool {
	blur := p.ShadowRadius
	margin := blur * 2
	w, h := float64(r.Dx()), float64(r.Dy())
	bw, bh := w+float64(2*margin), h+float64(2*margin)
	c := canvas.New(bw, bh)
	ctx := canvas.NewContext(c)
	m := float64(margin)

	if offset != (image.Point{}) {
		// 投影：一个实心圆角矩形
		path := RoundedRect(w, h, float64(radius), AllCorners)
		if path == nil {
			return false
		}
		ctx.SetFillColor(shadow)
		ctx.SetStrokeColor(canvas.Transparent)
		drawAt(ctx, bh, m, m, h, path)
	} else {
		// 光晕：由内向外逐圈变淡的描边
		ctx.SetFillColor(canvas.Transparent)
		ctx.SetStrokeWidth(1)
		for i := 0; i < blur; i++ {
			d := float64(i) + 0.5
			ring := RoundedRect(w+2*d, h+2*d, float64(radius)+d, AllCorners)
			if ring == nil {
				continue
			}
			a := uint32(shadow.A) * uint32(blur-i) / uint32(blur)
			ctx.SetStrokeColor(style.Color{R: shadow.R, G: shadow.G, B: shadow.B, A: uint8(a)})
			drawAt(ctx, bh, m-d, m-d, h+2*d, ring)
		}
	}

	img := Rasterize(c)
	Blur(img, blur, blur)
	Composite(dst, img, r.Min.Sub(image.Pt(margin, margin)).Add(offset))
	return true
}

// drawAt 把以左上角 (x, top) 定位、高 h 的路径画到高度为 canvasH 的画布上。
// 画布使用 y 轴向上的原生坐标系，这里负责翻转。
func drawAt(ctx *canvas.Context, canvasH, x, top, h float64, path *canvas.Path) {
	ctx.DrawPath(x, canvasH-top-h, path)
}

// Rasterize 按 1mm = 1px 把画布栅格化为预乘 RGBA 位图。
func Rasterize(c *canvas.Canvas) *image.RGBA {
	return rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
}

// Composite 把 src 以 Over 方式合成到 dst 的 at 位置。
func Composite(dst *image.RGBA, src *image.RGBA, at image.Point) {
	if src == nil {
		return
	}
	rect := src.Bounds().Sub(src.Bounds().Min).Add(at)
	draw.Draw(dst, rect, src, src.Bounds().Min, draw.Over)
}
