package layout

import (
	"image"
	"unicode/utf8"

	"github.com/ByLCY/candwin/dsl"
	"github.com/ByLCY/candwin/style"
)

// base 汇集各布局策略共用的步骤：组字串/提示的排版、状态图标、嵌入偏移与收尾。
type base struct {
	style  style.Style
	state  *State
	format *dsl.LabelFormat
}

func (b *base) newResult() *Result {
	return &Result{
		Count:      b.state.Count(),
		Vertical:   b.style.Layout.Vertical(),
		Inline:     b.style.InlinePreedit,
		Fullscreen: b.style.Layout.Fullscreen(),
	}
}

// layoutHeader 自上而下排入组字串（非内嵌模式）与提示文字，
// 每一项之后追加 Spacing。返回是否排入了任何内容。
func (b *base) layoutHeader(m Measurer, res *Result, width, height *int) bool {
	st := &b.style
	if !st.Font.Visible() {
		return false
	}
	laid := false
	place := func(t Text) image.Rectangle {
		size := b.textSize(m, t)
		rc := image.Rect(st.MarginX, *height, st.MarginX+size.W, *height+size.H)
		*width = max(*width, size.W+2*st.MarginX)
		*height += size.H + st.Spacing
		laid = true
		return rc
	}
	if !st.InlinePreedit && b.state.Preedit.Str != "" {
		res.Preedit = place(b.state.Preedit)
	}
	if b.state.Aux.Str != "" {
		res.Aux = place(b.state.Aux)
	}
	return laid
}

// textSize 测量带高亮的文字：高亮段不在开头时前面多出 HiliteSpacing，
// 不在结尾时后面多出 HiliteSpacing。
func (b *base) textSize(m Measurer, t Text) Size {
	size := MeasureMultiline(m, t.Str, b.style.Font)
	if start, end, ok := t.HighlightRange(); ok {
		if start > 0 {
			size.W += b.style.HiliteSpacing
		}
		if end < utf8.RuneCountInString(t.Str) {
			size.W += b.style.HiliteSpacing
		}
	}
	return size
}

// closeBody 去掉末尾多余的 Spacing，补上底部边距并应用最小尺寸。
func (b *base) closeBody(res *Result, width, height *int, laid bool) {
	st := &b.style
	if laid {
		*height -= st.Spacing
	}
	*height += st.MarginY
	if b.state.Preedit.Str != "" && res.Count > 0 {
		*width = max(*width, st.MinWidth)
		*height = max(*height, st.MinHeight)
	}
}

func (b *base) showStatusIcon() bool {
	s := b.state.Status
	return b.style.DisplayTrayIcon && (s.AsciiMode || !s.Composing || b.state.Aux.Str != "")
}

// placeStatusIcon 放置状态图标，图标放不下时就地扩大 width/height。
func (b *base) placeStatusIcon(res *Result, width, height *int) {
	if !b.showStatusIcon() {
		return
	}
	st := &b.style
	res.ShowStatusIcon = true
	anchor := res.Preedit
	if anchor.Empty() {
		anchor = res.Aux
	}
	switch {
	case !anchor.Empty():
		left := max(anchor.Max.X+st.HiliteSpacing, *width-st.MarginX-StatusIconSize)
		top := max((anchor.Min.Y+anchor.Max.Y)/2-StatusIconSize/2, 0)
		res.StatusIcon = image.Rect(left, top, left+StatusIconSize, top+StatusIconSize)
		*width = max(*width, res.StatusIcon.Max.X+st.MarginX)
		*height = max(*height, res.StatusIcon.Max.Y+st.MarginY)
	case res.Count > 0:
		// 没有文字可依附时，图标在候选区右侧单独占一列
		left := *width - st.MarginX + st.Spacing
		res.StatusIcon = image.Rect(left, st.MarginY, left+StatusIconSize, st.MarginY+StatusIconSize)
		*width = left + StatusIconSize + st.MarginX
		*height = max(*height, StatusIconSize+2*st.MarginY)
	default:
		res.StatusIcon = image.Rect(st.MarginX, st.MarginY, st.MarginX+StatusIconSize, st.MarginY+StatusIconSize)
		*width = max(*width, StatusIconSize+2*st.MarginX)
		*height = max(*height, StatusIconSize+2*st.MarginY)
	}
}

// embedOffset 返回内容在窗口中的偏移，为阴影留出空间。
func (b *base) embedOffset() image.Point {
	st := &b.style
	if !st.ShadowEnabled() {
		return image.Point{}
	}
	x := st.ShadowRadius*2 + abs(st.ShadowOffsetX)
	y := st.ShadowRadius*2 + abs(st.ShadowOffsetY)
	if st.ShadowOffsetX != 0 || st.ShadowOffsetY != 0 {
		x -= st.ShadowRadius
		y -= st.ShadowRadius
	}
	return image.Pt(x, y)
}

// finalize 计算窗口尺寸，把所有矩形平移到窗口坐标并确定高亮矩形。
func (b *base) finalize(res *Result, width, height int) *Result {
	res.Offset = b.embedOffset()
	res.Size = Size{W: width + 2*res.Offset.X, H: height + 2*res.Offset.Y}
	res.translate(res.Offset)
	if h := b.state.Highlighted; h >= 0 && h < res.Count {
		res.Highlight = res.Candidates[h]
	}
	return res
}

func (b *base) labelText(i int) string {
	if b.format == nil {
		return b.style.LabelFormat
	}
	var label string
	if i < len(b.state.Candidates) {
		label = b.state.Candidates[i].Label
	}
	return formatLabel(b.format, label, i)
}

// alignRow 在行高 h 内按对齐方式纵向移动各矩形，零矩形保持不动。
func alignRow(a style.AlignType, h int, rects ...*image.Rectangle) {
	if a == style.AlignTop {
		return
	}
	for _, rc := range rects {
		if *rc == (image.Rectangle{}) {
			continue
		}
		d := h - rc.Dy()
		if a == style.AlignCenter {
			d /= 2
		}
		*rc = rc.Add(image.Pt(0, d))
	}
}

// verticalBand 返回各矩形（忽略零高度的）在纵向上的并集。
func verticalBand(rects ...image.Rectangle) (top, bottom int, ok bool) {
	for _, rc := range rects {
		if rc.Dy() <= 0 {
			continue
		}
		if !ok {
			top, bottom, ok = rc.Min.Y, rc.Max.Y, true
			continue
		}
		top = min(top, rc.Min.Y)
		bottom = max(bottom, rc.Max.Y)
	}
	return top, bottom, ok
}
