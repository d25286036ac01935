// Package renderer 定义候选窗文字渲染后端的公共接口与合成工具。
// 具体后端见 renderer/canvas（彩色字体）与 renderer/glyph（整形 + 轮廓栅格化）。
package renderer

import (
	"image"
	"image/draw"

	"github.com/ByLCY/candwin/layout"
	"github.com/ByLCY/candwin/style"
)

// Renderer 负责测量并绘制文字。多行文字按 \n 拆分后自上而下堆叠，不自动换行。
type Renderer interface {
	layout.Measurer

	// DrawText 以 at 为左上角绘制 text，超出 clip 的部分被裁掉。
	// 字号不大于 0 或颜色完全透明时不绘制。
	DrawText(dst *image.RGBA, at image.Point, clip image.Rectangle, text string, font style.Font, col style.Color)
}

// Skip 报告该字体与颜色的组合是否无需绘制。
func Skip(font style.Font, col style.Color) bool {
	return !font.Visible() || !col.Visible()
}

// Colorize 把 alpha 蒙版与 col 的 RGB 组合成预乘 RGBA 位图，
// 蒙版的覆盖度再乘以 col 自身的 alpha。
func Colorize(mask *image.Alpha, col style.Color) *image.RGBA {
	if mask == nil {
		return nil
	}
	b := mask.Bounds()
	out := image.NewRGBA(b)
	ca := uint32(col.A)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		mi := mask.PixOffset(b.Min.X, y)
		oi := out.PixOffset(b.Min.X, y)
		for x := 0; x < b.Dx(); x++ {
			a := uint32(mask.Pix[mi+x]) * ca / 0xff
			if a == 0 {
				continue
			}
			o := out.Pix[oi+x*4 : oi+x*4+4 : oi+x*4+4]
			o[0] = uint8(uint32(col.R) * a / 0xff)
			o[1] = uint8(uint32(col.G) * a / 0xff)
			o[2] = uint8(uint32(col.B) * a / 0xff)
			o[3] = uint8(a)
		}
	}
	return out
}

// Composite 把 src 以 Over 方式合成到 dst，src 的左上角对齐 at，只影响 clip 内的像素。
// clip 为空矩形时不裁剪。
func Composite(dst *image.RGBA, src image.Image, at image.Point, clip image.Rectangle) {
	if dst == nil || src == nil {
		return
	}
	sb := src.Bounds()
	rect := sb.Sub(sb.Min).Add(at)
	if !clip.Empty() {
		rect = rect.Intersect(clip)
	}
	rect = rect.Intersect(dst.Bounds())
	if rect.Empty() {
		return
	}
	draw.Draw(dst, rect, src, sb.Min.Add(rect.Min.Sub(at)), draw.Over)
}
