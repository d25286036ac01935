// Package panel 驱动候选窗：根据样式与组字状态排版、定位窗口并绘制整帧。
// 所有方法都应在同一个 UI 线程上同步调用。
package panel

import (
	"image"
	"log/slog"

	"github.com/ByLCY/candwin/fonts"
	"github.com/ByLCY/candwin/layout"
	"github.com/ByLCY/candwin/renderer"
	"github.com/ByLCY/candwin/style"
)

const (
	// anchorDistance 是窗口与光标矩形之间的纵向间距。
	anchorDistance = 6

	// schemaMenuID 是方案选单的保留方案名，此时即使设置了负边距也要显示候选。
	schemaMenuID = ".default"

	tipFullShape = "全角"
	tipHalfShape = "半角"
)

// Option 配置 Panel。
type Option func(*Panel)

// WithDPI 设置把字号换算为像素所用的 DPI。
func WithDPI(dpi float64) Option {
	return func(p *Panel) {
		if dpi > 0 {
			p.dpi = dpi
		}
	}
}

// WithFonts 指定文字后端解析字体所用的 Registry。
func WithFonts(reg *fonts.Registry) Option {
	return func(p *Panel) { p.fonts = reg }
}

// WithRenderer 使用调用方提供的文字后端，不再按样式自动选择。
func WithRenderer(r renderer.Renderer) Option {
	return func(p *Panel) { p.custom = r }
}

// SetLogger 设置 panel 及文字后端共用的日志器。
func SetLogger(l *slog.Logger) { renderer.SetLogger(l) }

func logger() *slog.Logger { return renderer.Logger() }

// Panel 是候选窗控制器。每次 Refresh 都重新排版；
// 字体等资源只在样式变化或被显式失效时重建。
type Panel struct {
	win      Window
	monitors Monitors
	icons    IconSet

	dpi    float64
	fonts  *fonts.Registry
	custom renderer.Renderer

	style   style.Style
	metrics style.Style
	state   *layout.State
	anchor  image.Rectangle
	engine  layout.Engine
	result  *layout.Result
	hidden  bool
	laidOut bool

	// 资源及其对应的样式
	text         renderer.Renderer
	defaultIcons IconMap
	applied      style.Style
	invalid      bool
}

// New 创建控制器。monitors 为 nil 时不限制窗口位置；icons 为 nil 时使用 DefaultIcons。
func New(win Window, monitors Monitors, icons IconSet, opts ...Option) *Panel {
	p := &Panel{
		win:      win,
		monitors: monitors,
		icons:    icons,
		dpi:      layout.DefaultDPI,
		style:    style.Default(),
		state:    &layout.State{},
		invalid:  true,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// SetStyle 替换样式，下一次 Refresh 生效。
func (p *Panel) SetStyle(st style.Style) { p.style = st }

// Style 返回当前样式。
func (p *Panel) Style() style.Style { return p.style }

// SetState 替换组字状态，下一次 Refresh 生效。调用方之后不得再修改 state。
func (p *Panel) SetState(state *layout.State) {
	if state == nil {
		state = &layout.State{}
	}
	p.state = state
}

// SetDPI 修改 DPI 并使资源失效。
func (p *Panel) SetDPI(dpi float64) {
	if dpi <= 0 || dpi == p.dpi {
		return
	}
	p.dpi = dpi
	p.InvalidateResources()
}

// InvalidateResources 通知显示环境变化（DPI、渲染能力等），下一次 Refresh 重建资源。
func (p *Panel) InvalidateResources() { p.invalid = true }

// Layout 返回最近一次排版结果，尚未排版或被隐藏时为 nil。
func (p *Panel) Layout() *layout.Result {
	if p.hidden || !p.laidOut {
		return nil
	}
	return p.result
}

// Hidden 报告最近一次 Refresh 是否按隐藏策略隐藏了候选窗。
func (p *Panel) Hidden() bool { return p.hidden }

// Refresh 重新排版、调整窗口尺寸与位置并重绘。
func (p *Panel) Refresh() {
	workArea := p.workArea()
	p.metrics = p.scaled()
	p.engine = layout.New(p.metrics, p.state, layout.Options{WorkArea: workArea})
	p.hidden = shouldHide(p.metrics, p.state)
	if p.hidden {
		p.result, p.laidOut = nil, false
		p.win.Hide()
		return
	}
	p.ensureResources()

	p.result = p.engine.Compute(p.text)
	p.laidOut = true
	logger().Debug("panel: 排版完成",
		"layout", p.style.Layout.String(),
		"count", p.result.Count,
		"width", p.result.Size.W,
		"height", p.result.Size.H)

	if p.result.Fullscreen {
		p.win.SetBounds(workArea)
	} else {
		b := p.win.Bounds()
		p.win.SetBounds(image.Rectangle{Min: b.Min, Max: b.Min.Add(image.Pt(p.result.Size.W, p.result.Size.H))})
		p.reposition()
	}
	p.Paint()
}

// MoveTo 记录光标矩形（向下偏移 anchorDistance）并重新定位窗口，不重新排版。
func (p *Panel) MoveTo(caret image.Rectangle) {
	p.anchor = caret.Add(image.Pt(0, anchorDistance))
	if p.laidOut && !p.result.Fullscreen {
		p.reposition()
	}
}

// reposition 把窗口放在锚点下方并限制在工作区内，下方放不下时翻到锚点上方。
func (p *Panel) reposition() {
	bounds := p.win.Bounds()
	w, h := bounds.Dx(), bounds.Dy()
	x, y := p.anchor.Min.X, p.anchor.Max.Y
	if p.laidOut && p.style.ShadowEnabled() {
		x -= p.result.Offset.X
		y -= p.result.Offset.Y
	}

	if area := p.workArea(); !area.Empty() {
		right, bottom := area.Max.X-w, area.Max.Y-h
		x = max(min(x, right), area.Min.X)
		if y > bottom {
			y = p.anchor.Min.Y - h
		}
		y = max(min(y, bottom), area.Min.Y)
	}
	// 记住调整后的位置，避免高度变化时窗口来回跳动
	p.anchor.Max.Y = y
	if p.laidOut && p.style.ShadowEnabled() {
		p.anchor.Max.Y += p.result.Offset.Y
	}
	p.win.SetBounds(image.Rect(x, y, x+w, y+h))
}

// scaled 返回像素度量按当前 DPI 缩放后的样式。样式中的像素值以 96 DPI 为基准；
// 字号以 pt 计，由文字后端换算，不在这里缩放。
func (p *Panel) scaled() style.Style {
	st := p.style
	if p.dpi == layout.DefaultDPI {
		return st
	}
	for _, v := range []*int{
		&st.MarginX, &st.MarginY, &st.Spacing, &st.CandidateSpacing,
		&st.HiliteSpacing, &st.HilitePadding, &st.MinWidth, &st.MinHeight,
		&st.RoundCorner, &st.RoundCornerHilite, &st.Border,
		&st.ShadowRadius, &st.ShadowOffsetX, &st.ShadowOffsetY,
	} {
		*v = layout.ScaleInt(*v, p.dpi)
	}
	return st
}

func (p *Panel) workArea() image.Rectangle {
	if p.monitors == nil {
		return image.Rectangle{}
	}
	return p.monitors.WorkArea(p.anchor.Min)
}

// ensureResources 在样式变化或资源失效时重建文字后端与默认图标。
func (p *Panel) ensureResources() {
	if p.text != nil && !p.invalid && p.applied.Equal(p.style) {
		return
	}
	p.text = p.newRenderer()
	p.defaultIcons = nil
	p.applied = p.style
	p.invalid = false
	logger().Debug("panel: 重建渲染资源", "colorFont", p.style.ColorFont, "dpi", p.dpi)
}

// isTips 报告当前状态是否只是一条提示（仅有提示文字，或全角/半角切换提示）。
func isTips(state *layout.State) bool {
	aux := state.Aux.Str
	if aux == tipFullShape || aux == tipHalfShape {
		return true
	}
	return aux != "" && state.Preedit.Str == "" && len(state.Candidates) == 0
}

// shouldHide 实现隐藏策略：负边距表示除提示与方案选单外一律隐藏；
// 内嵌组字且没有候选时也无需显示。
func shouldHide(st style.Style, state *layout.State) bool {
	tips := isTips(state)
	if (st.MarginX < 0 || st.MarginY < 0) && !tips && state.Status.SchemaID != schemaMenuID {
		return true
	}
	return st.InlinePreedit && state.Count() == 0 && !tips
}
