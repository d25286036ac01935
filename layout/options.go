package layout

import (
	"image"

	"github.com/ByLCY/candwin/dsl"
	"github.com/ByLCY/candwin/style"
)

// Options 配置布局阶段所需的环境信息。
type Options struct {
	// WorkArea 是候选窗所在显示器的工作区，全屏布局据此确定尺寸。
	WorkArea image.Rectangle
}

// Engine 根据样式与组字状态计算候选窗几何。实现是确定性的：
// 相同的输入与 Measurer 总是得到相同的 Result。
type Engine interface {
	Compute(m Measurer) *Result
}

// New 按样式中的排列方式选择布局策略。state 在 Compute 期间不得被修改。
func New(st style.Style, state *State, opts Options) Engine {
	if state == nil {
		state = &State{}
	}
	b := newBase(st, state)
	if st.Layout.Fullscreen() {
		return &fullscreen{base: b, workArea: opts.WorkArea}
	}
	if st.Layout.Vertical() {
		return &vertical{base: b}
	}
	return &horizontal{base: b}
}

// strategyFor 返回不带全屏装饰的基础策略。
func strategyFor(b base) Engine {
	if b.style.Layout.Vertical() {
		return &vertical{base: b}
	}
	return &horizontal{base: b}
}

func newBase(st style.Style, state *State) base {
	// 负边距只用于表达隐藏策略，排版时取绝对值。
	st.MarginX = abs(st.MarginX)
	st.MarginY = abs(st.MarginY)
	format, err := dsl.ParseLabelFormat(st.LabelFormat)
	if err != nil {
		// 无法解析的模板原样输出
		format = nil
	}
	return base{style: st, state: state, format: format}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
