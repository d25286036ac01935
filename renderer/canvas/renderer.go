package canvasrenderer

import (
	"fmt"
	"image"
	"math"
	"sync"

	"github.com/tdewolff/canvas"

	"github.com/ByLCY/candwin/fonts"
	"github.com/ByLCY/candwin/layout"
	"github.com/ByLCY/candwin/paint"
	"github.com/ByLCY/candwin/renderer"
	"github.com/ByLCY/candwin/style"
)

// Renderer 通过 github.com/tdewolff/canvas 测量并绘制文字，支持彩色字形。
// 画布以 1mm = 1px 栅格化，字号在边界处做 px↔pt 换算。
type Renderer struct {
	dpi   float64
	fonts *fonts.Registry

	fontMu         sync.Mutex
	fontFamilies   map[fonts.Face]*fontFamilyEntry
	fallbackFamily *canvas.FontFamily
}

var _ renderer.Renderer = (*Renderer)(nil)

type fontFamilyEntry struct {
	family *canvas.FontFamily
	style  canvas.FontStyle
}

// Options configures the canvas renderer.
type Options struct {
	DPI   float64
	Fonts *fonts.Registry // nil 时只能使用内置字体与绝对路径
}

// New 创建彩色文字后端。内置后备字体无法加载时返回错误，调用方应改用 glyph 后端。
func New(opts Options) (*Renderer, error) {
	dpi := opts.DPI
	if dpi <= 0 {
		dpi = layout.DefaultDPI
	}
	r := &Renderer{
		dpi:          dpi,
		fonts:        opts.Fonts,
		fontFamilies: map[fonts.Face]*fontFamilyEntry{},
	}
	if _, _, err := r.fallback(); err != nil {
		return nil, fmt.Errorf("初始化 canvas 文字后端失败: %w", err)
	}
	return r, nil
}

// MeasureText 实现 layout.Measurer。只测量单行，多行由调用方拆分。
func (r *Renderer) MeasureText(text string, font style.Font) layout.Size {
	if !font.Visible() {
		return layout.Size{}
	}
	face, err := r.fontFace(font, style.Color{A: 0xff})
	if err != nil {
		renderer.Logger().Warn("canvas: 测量文字失败", "font", font.String(), "err", err)
		return layout.Size{}
	}
	return layout.Size{
		W: int(math.Ceil(face.TextWidth(text))),
		H: int(math.Ceil(face.Metrics().LineHeight)),
	}
}

// DrawText 实现 renderer.Renderer。每行先画到左右各留出余量的离屏画布上，
// 左侧溢出的字形因此不会被截掉；裁剪区域同样向左右放宽余量。
func (r *Renderer) DrawText(dst *image.RGBA, at image.Point, clip image.Rectangle, text string, font style.Font, col style.Color) {
	if dst == nil || renderer.Skip(font, col) {
		return
	}
	face, err := r.fontFace(font, col)
	if err != nil {
		renderer.Logger().Warn("canvas: 获取字体失败", "font", font.String(), "err", err)
		return
	}
	metrics := face.Metrics()
	lineHeight := math.Ceil(metrics.LineHeight)
	pad := int(math.Ceil(metrics.LineHeight / 2))
	if !clip.Empty() {
		clip.Min.X -= pad
		clip.Max.X += pad
	}

	y := at.Y
	for _, line := range layout.SplitLines(text) {
		if line != "" {
			w := math.Ceil(face.TextWidth(line)) + float64(2*pad)
			c := canvas.New(w, lineHeight)
			ctx := canvas.NewContext(c)
			// 画布原生坐标 y 轴向上，基线距顶部 ascent
			ctx.DrawText(float64(pad), lineHeight-metrics.Ascent, canvas.NewTextLine(face, line, canvas.Left))
			renderer.Composite(dst, paint.Rasterize(c), image.Pt(at.X-pad, y), clip)
		}
		y += int(lineHeight)
	}
}

// fontFace 返回 font 主字体在当前 DPI 下的 canvas 字体面。
// 该后端只使用主字体，区间后备字体由 glyph 后端处理。
func (r *Renderer) fontFace(font style.Font, col style.Color) (*canvas.FontFace, error) {
	spec := fonts.ParseSpec(font.Face)
	family, fs, err := r.ensureFontFamily(spec.Face)
	if err != nil {
		return nil, err
	}
	return family.Face(r.sizePt(font.Point), col, fs, canvas.FontNormal), nil
}

// sizePt 把字号换算为画布使用的 pt：先按 DPI 换成像素，再把像素当作毫米换成 pt。
func (r *Renderer) sizePt(point int) float64 {
	return layout.PointToPixel(float64(point), r.dpi) * layout.MmToPt
}

func (r *Renderer) ensureFontFamily(face fonts.Face) (*canvas.FontFamily, canvas.FontStyle, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()

	if entry, ok := r.fontFamilies[face]; ok {
		return entry.family, entry.style, nil
	}

	fs := fontStyle(face.Weight)
	family := canvas.NewFontFamily(face.Name)
	if err := r.loadFontIntoFamily(family, face, fs); err != nil {
		renderer.Logger().Warn("canvas: 字体加载失败，使用后备字体", "face", face.Name, "err", err)
		fallback, fbStyle, fbErr := r.fallbackLocked()
		if fbErr != nil {
			return nil, canvas.FontRegular, err
		}
		r.fontFamilies[face] = &fontFamilyEntry{family: fallback, style: fbStyle}
		return fallback, fbStyle, nil
	}

	entry := &fontFamilyEntry{family: family, style: fs}
	r.fontFamilies[face] = entry
	return family, fs, nil
}

func (r *Renderer) loadFontIntoFamily(family *canvas.FontFamily, face fonts.Face, fs canvas.FontStyle) error {
	data, err := r.fonts.Lookup(face)
	if err != nil {
		return err
	}
	if err := family.LoadFont(data, 0, fs); err != nil {
		return fmt.Errorf("解析字体 %s 失败: %w", face.Name, err)
	}
	return nil
}

func (r *Renderer) fallback() (*canvas.FontFamily, canvas.FontStyle, error) {
	r.fontMu.Lock()
	defer r.fontMu.Unlock()
	return r.fallbackLocked()
}

func (r *Renderer) fallbackLocked() (*canvas.FontFamily, canvas.FontStyle, error) {
	if r.fallbackFamily != nil {
		return r.fallbackFamily, canvas.FontRegular, nil
	}
	family := canvas.NewFontFamily("candwin-fallback")
	if err := family.LoadFont(fonts.FallbackData(), 0, canvas.FontRegular); err != nil {
		return nil, canvas.FontRegular, fmt.Errorf("加载后备字体失败: %w", err)
	}
	r.fallbackFamily = family
	return family, canvas.FontRegular, nil
}

// fontStyle 把 OpenType 字重映射到 canvas 的字体样式。
func fontStyle(w fonts.Weight) canvas.FontStyle {
	switch {
	case w >= fonts.WeightBlack:
		return canvas.FontBlack
	case w >= fonts.WeightExtraBold:
		return canvas.FontExtraBold
	case w >= fonts.WeightBold:
		return canvas.FontBold
	case w >= fonts.WeightSemiBold:
		return canvas.FontSemiBold
	case w >= fonts.WeightMedium:
		return canvas.FontMedium
	case w <= fonts.WeightLight:
		return canvas.FontLight
	default:
		return canvas.FontRegular
	}
}
