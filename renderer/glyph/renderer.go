// Package glyph 是不依赖彩色字体能力的文字后端：
// 用 go-text 的 HarfBuzz 整形得到字形序列，再用 x/image 读取轮廓并栅格化为 alpha 蒙版。
// 整形失败时退回 font.Drawer 直接绘制。
package glyph

import (
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/ByLCY/candwin/fonts"
	"github.com/ByLCY/candwin/layout"
	"github.com/ByLCY/candwin/renderer"
	"github.com/ByLCY/candwin/style"
)

// Options configures the glyph renderer.
type Options struct {
	DPI      float64
	Fonts    *fonts.Registry
	Language string // 整形使用的 BCP 47 语言标签，默认 "zh"
}

// Renderer 实现 renderer.Renderer。内部缓存不支持并发，方法调用由互斥锁串行化。
type Renderer struct {
	dpi      float64
	fonts    *fonts.Registry
	language language.Language

	mu       sync.Mutex
	faces    map[fonts.Face]*face
	fallback *face
	shaper   shaping.HarfbuzzShaper
	buf      sfnt.Buffer
}

var _ renderer.Renderer = (*Renderer)(nil)

// New 创建 glyph 后端。只有内置后备字体都无法解析时才会失败。
func New(opts Options) (*Renderer, error) {
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = layout.DefaultDPI
	}
	lang := opts.Language
	if lang == "" {
		lang = "zh"
	}
	fb, err := parseFace("fallback", fonts.FallbackData())
	if err != nil {
		return nil, fmt.Errorf("初始化 glyph 文字后端失败: %w", err)
	}
	return &Renderer{
		dpi:      dpi,
		fonts:    opts.Fonts,
		language: language.NewLanguage(lang),
		faces:    map[fonts.Face]*face{},
		fallback: fb,
	}, nil
}

// ppem 返回字号对应的每 em 像素数。
func (r *Renderer) ppem(point int) fixed.Int26_6 {
	px := layout.PointToPixel(float64(point), r.dpi)
	return fixed.Int26_6(math.Round(px * 64))
}

// MeasureText 实现 layout.Measurer。
func (r *Renderer) MeasureText(text string, font style.Font) layout.Size {
	if !font.Visible() {
		return layout.Size{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	line := r.layoutLine(text, fonts.ParseSpec(font.Face), r.ppem(font.Point))
	return layout.Size{W: line.width.Ceil(), H: line.metrics.height.Ceil()}
}

// DrawText 实现 renderer.Renderer。
func (r *Renderer) DrawText(dst *image.RGBA, at image.Point, clip image.Rectangle, text string, font style.Font, col style.Color) {
	if dst == nil || renderer.Skip(font, col) {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	spec := fonts.ParseSpec(font.Face)
	ppem := r.ppem(font.Point)
	pad := ppem.Ceil() / 2
	if !clip.Empty() {
		clip.Min.X -= pad
		clip.Max.X += pad
	}

	y := at.Y
	for _, s := range layout.SplitLines(text) {
		line := r.layoutLine(s, spec, ppem)
		if s != "" {
			mask := r.rasterizeLine(line, ppem, pad)
			renderer.Composite(dst, renderer.Colorize(mask, col), image.Pt(at.X-pad, y), clip)
		}
		y += line.metrics.height.Ceil()
	}
}
