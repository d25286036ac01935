package panel

import (
	"image"

	"github.com/ByLCY/candwin/layout"
	"github.com/ByLCY/candwin/renderer"
	canvasrenderer "github.com/ByLCY/candwin/renderer/canvas"
	"github.com/ByLCY/candwin/renderer/glyph"
	"github.com/ByLCY/candwin/style"
)

// newRenderer 选择文字后端：ColorFont 时优先使用 canvas 后端，
// 不可用时退回 glyph 后端；两者都不可用时只估算尺寸、不绘制文字。
func (p *Panel) newRenderer() renderer.Renderer {
	if p.custom != nil {
		return p.custom
	}
	if p.style.ColorFont {
		r, err := canvasrenderer.New(canvasrenderer.Options{DPI: p.dpi, Fonts: p.fonts})
		if err == nil {
			return r
		}
		logger().Warn("panel: 彩色文字后端不可用，改用 glyph 后端", "err", err)
	}
	r, err := glyph.New(glyph.Options{DPI: p.dpi, Fonts: p.fonts})
	if err == nil {
		return r
	}
	logger().Warn("panel: glyph 文字后端不可用，文字将不被绘制", "err", err)
	return estimateRenderer{EstimateMeasurer: layout.EstimateMeasurer{DPI: p.dpi}}
}

// estimateRenderer 只按字符类别估算尺寸，DrawText 不做任何事。
type estimateRenderer struct {
	layout.EstimateMeasurer
}

func (estimateRenderer) DrawText(*image.RGBA, image.Point, image.Rectangle, string, style.Font, style.Color) {
}

// iconSet 返回调用方提供的图标，未提供时按当前文字后端生成默认图标。
func (p *Panel) iconSet() IconSet {
	if p.icons != nil {
		return p.icons
	}
	if p.defaultIcons == nil {
		p.defaultIcons = DefaultIcons(p.text)
	}
	return p.defaultIcons
}
