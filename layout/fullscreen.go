package layout

import (
	"image"

	"github.com/ByLCY/candwin/style"
)

const (
	// fitInitialStep 是字号搜索的初始步长，方向反转时减半。
	fitInitialStep = 32
	fitMaxRounds   = 16
)

// fullscreen 包装纵向/横向策略：调整字号使内容尽量铺满工作区，再居中。
type fullscreen struct {
	base
	workArea image.Rectangle
}

func (f *fullscreen) Compute(m Measurer) *Result {
	area := f.workArea
	if f.state.Empty() || area.Empty() {
		res := f.newResult()
		res.Count = 0
		return res
	}

	b := f.base
	step := fitInitialStep
	var res, fitted *Result
	for round := 0; round < fitMaxRounds; round++ {
		res = strategyFor(b).Compute(m)
		if fits(res.Size, area) {
			fitted = res
		}
		next, ok := adjustFontPoint(b.style, res.Size, area, &step)
		if !ok {
			break
		}
		b.style = next
	}
	if !fits(res.Size, area) && fitted != nil {
		res = fitted
	}

	d := image.Pt((area.Dx()-res.Size.W)/2, (area.Dy()-res.Size.H)/2)
	res.Highlight = image.Rectangle{}
	res.translate(d)
	if h := f.state.Highlighted; h >= 0 && h < res.Count {
		res.Highlight = res.Candidates[h]
	}
	res.Offset = image.Point{}
	res.Size = Size{W: area.Dx(), H: area.Dy()}
	res.Fullscreen = true
	return res
}

func fits(s Size, area image.Rectangle) bool {
	return s.W <= area.Dx() && s.H <= area.Dy()
}

// adjustFontPoint 根据当前尺寸决定下一轮的字号：放不下就缩小，
// 两个方向都不足 31/32 就放大；每次改变方向时步长减半，步长为零时结束。
func adjustFontPoint(st style.Style, size Size, area image.Rectangle, step *int) (style.Style, bool) {
	switch {
	case !fits(size, area):
		if *step > 0 {
			*step = -(*step >> 1)
		}
	case size.W < area.Dx()*31/32 && size.H < area.Dy()*31/32:
		if *step < 0 {
			*step = -*step >> 1
		}
	default:
		return st, false
	}
	if *step == 0 {
		return st, false
	}
	next := st.AdjustFontPoint(*step)
	if next == st {
		return st, false
	}
	return next, true
}
