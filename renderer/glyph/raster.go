package glyph

import (
	"image"

	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/font/opentype"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"
	"golang.org/x/image/vector"

	"github.com/ByLCY/candwin/renderer"
)

// plainLine 把整形失败的行改为用主字体直接测量，绘制时走 font.Drawer。
func (r *Renderer) plainLine(line shapedLine, ppem fixed.Int26_6) shapedLine {
	line.runs = nil
	line.plain = true
	line.metrics = line.main.metrics(&r.buf, ppem)
	face, closeFace := r.drawerFace(line.main, ppem)
	defer closeFace()
	line.width = xfont.MeasureString(face, line.text)
	return line
}

// drawerFace 返回 font.Drawer 使用的字体面；opentype 无法创建时退回 basicfont。
func (r *Renderer) drawerFace(f *face, ppem fixed.Int26_6) (xfont.Face, func()) {
	face, err := opentype.NewFace(f.outline, &opentype.FaceOptions{
		Size:    float64(ppem) / 64,
		DPI:     72,
		Hinting: xfont.HintingNone,
	})
	if err != nil {
		renderer.Logger().Warn("glyph: 创建 opentype 字体面失败，使用点阵字体", "face", f.name, "err", err)
		return basicfont.Face7x13, func() {}
	}
	return face, func() { _ = face.Close() }
}

// rasterizeLine 把一行绘制为 alpha 蒙版，左右各留 pad 像素容纳溢出的字形。
func (r *Renderer) rasterizeLine(line shapedLine, ppem fixed.Int26_6, pad int) *image.Alpha {
	w := line.width.Ceil() + 2*pad
	h := line.metrics.height.Ceil()
	if w <= 0 || h <= 0 {
		return nil
	}
	mask := image.NewAlpha(image.Rect(0, 0, w, h))
	baseline := line.metrics.ascent

	if line.plain {
		face, closeFace := r.drawerFace(line.main, ppem)
		defer closeFace()
		d := xfont.Drawer{
			Dst:  mask,
			Src:  image.Opaque,
			Face: face,
			Dot:  fixed.Point26_6{X: fixed.I(pad), Y: baseline},
		}
		d.DrawString(line.text)
		return mask
	}

	z := vector.NewRasterizer(w, h)
	pen := fixed.I(pad)
	for _, rn := range line.runs {
		for _, g := range rn.glyphs {
			origin := fixed.Point26_6{X: pen + g.XOffset, Y: baseline - g.YOffset}
			if err := r.appendOutline(z, rn.face, sfnt.GlyphIndex(g.GlyphID), ppem, origin); err != nil {
				renderer.Logger().Warn("glyph: 读取轮廓失败，改用直接绘制", "face", rn.face.name, "err", err)
				return r.rasterizeLine(r.plainLine(line, ppem), ppem, pad)
			}
			pen += g.Advance
		}
	}
	z.Draw(mask, mask.Bounds(), image.Opaque, image.Point{})
	return mask
}

// appendOutline 把字形轮廓平移到 origin 后加入光栅器。
// vector.Rasterizer 的 MoveTo 不会闭合上一条子路径，因此每次开始新轮廓前显式闭合。
func (r *Renderer) appendOutline(z *vector.Rasterizer, f *face, gid sfnt.GlyphIndex, ppem fixed.Int26_6, origin fixed.Point26_6) error {
	segments, err := f.outline.LoadGlyph(&r.buf, gid, ppem, nil)
	if err != nil {
		return err
	}
	ox, oy := float32(origin.X)/64, float32(origin.Y)/64
	pt := func(p fixed.Point26_6) (float32, float32) {
		return ox + float32(p.X)/64, oy + float32(p.Y)/64
	}
	open := false
	for _, seg := range segments {
		switch seg.Op {
		case sfnt.SegmentOpMoveTo:
			if open {
				z.ClosePath()
			}
			x, y := pt(seg.Args[0])
			z.MoveTo(x, y)
			open = true
		case sfnt.SegmentOpLineTo:
			x, y := pt(seg.Args[0])
			z.LineTo(x, y)
		case sfnt.SegmentOpQuadTo:
			cx, cy := pt(seg.Args[0])
			x, y := pt(seg.Args[1])
			z.QuadTo(cx, cy, x, y)
		case sfnt.SegmentOpCubeTo:
			c1x, c1y := pt(seg.Args[0])
			c2x, c2y := pt(seg.Args[1])
			x, y := pt(seg.Args[2])
			z.CubeTo(c1x, c1y, c2x, c2y, x, y)
		}
	}
	if open {
		z.ClosePath()
	}
	return nil
}
