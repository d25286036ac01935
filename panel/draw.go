package panel

import (
	"image"

	"github.com/ByLCY/candwin/layout"
	"github.com/ByLCY/candwin/paint"
	"github.com/ByLCY/candwin/style"
)

// Paint 把当前排版结果绘制到新的离屏缓冲并整帧呈现；没有绘制任何内容时隐藏窗口。
func (p *Panel) Paint() {
	if p.hidden || !p.laidOut || p.result == nil {
		p.win.Hide()
		return
	}
	res := p.result
	if res.Size.W <= 0 || res.Size.H <= 0 {
		p.win.Hide()
		return
	}
	frame := image.NewRGBA(image.Rect(0, 0, res.Size.W, res.Size.H))
	if !p.drawFrame(frame, res) {
		p.win.Hide()
		return
	}
	p.win.Present(frame)
	p.win.Show()
}

// frameDrawer 保存一次绘制所需的上下文。
type frameDrawer struct {
	p       *Panel
	dst     *image.RGBA
	st      style.Style
	painter *paint.Painter
	shadow  image.Point
}

func (p *Panel) drawFrame(dst *image.RGBA, res *layout.Result) bool {
	state := p.state
	if state.Empty() && !res.ShowStatusIcon {
		return false
	}
	st := p.metrics
	bg := res.Background()
	if res.Fullscreen {
		bg = dst.Bounds()
	}
	d := &frameDrawer{
		p:       p,
		dst:     dst,
		st:      st,
		painter: paint.NewPainter(st, bg),
		shadow:  image.Pt(st.ShadowOffsetX, st.ShadowOffsetY),
	}

	// 背景不算内容：只有背景时整窗隐藏
	d.painter.Paint(dst, bg, st.BackColor, st.ShadowColor, d.shadow, st.RoundCorner, paint.RoleBackground)
	drawn := false
	if !st.InlinePreedit {
		drawn = d.text(res.Preedit, state.Preedit)
	}
	drawn = d.text(res.Aux, state.Aux) || drawn
	if res.ShowStatusIcon {
		drawn = drawIcon(dst, res.StatusIcon, p.iconSet().Icon(iconVariant(state))) || drawn
	}
	drawn = d.candidates(res, state) || drawn
	return drawn
}

// text 绘制组字串或提示文字，高亮段带背景。
func (d *frameDrawer) text(rect image.Rectangle, t layout.Text) bool {
	st := d.st
	if rect.Empty() || t.Str == "" || !st.Font.Visible() {
		return false
	}
	r := d.p.text
	start, end, ok := t.HighlightRange()
	if !ok {
		r.DrawText(d.dst, rect.Min, rect, t.Str, st.Font, st.TextColor)
		return true
	}

	runes := []rune(t.Str)
	before, hilite, after := string(runes[:start]), string(runes[start:end]), string(runes[end:])
	x := rect.Min.X
	if before != "" {
		r.DrawText(d.dst, image.Pt(x, rect.Min.Y), rect, before, st.Font, st.TextColor)
		x += layout.MeasureMultiline(r, before, st.Font).W + st.HiliteSpacing
	}
	size := layout.MeasureMultiline(r, hilite, st.Font)
	hr := image.Rect(x, rect.Min.Y, x+size.W, rect.Min.Y+max(size.H, rect.Dy()))
	d.painter.Paint(d.dst, hr.Inset(-st.HilitePadding), st.HilitedBackColor, st.HilitedShadowColor, d.shadow, st.RoundCornerHilite, paint.RoleText)
	r.DrawText(d.dst, hr.Min, rect, hilite, st.Font, st.HilitedTextColor)
	x += size.W
	if after != "" {
		x += st.HiliteSpacing
		r.DrawText(d.dst, image.Pt(x, rect.Min.Y), rect, after, st.Font, st.TextColor)
	}
	return true
}

// candidates 绘制候选的背景、高亮带与标签/正文/注释。
func (d *frameDrawer) candidates(res *layout.Result, state *layout.State) bool {
	st := d.st
	r := d.p.text
	drawn := false
	for i := 0; i < res.Count && i < len(state.Candidates); i++ {
		cand := state.Candidates[i]
		role := paint.RoleFor(i, res.Count)
		band := res.CandidateRect(i).Inset(-st.HilitePadding)
		hilited := i == state.Highlighted

		labelColor, textColor, commentColor := st.LabelTextColor, st.CandidateTextColor, st.CommentTextColor
		if hilited {
			d.painter.Paint(d.dst, band, st.HilitedCandidateBackColor, st.HilitedCandidateShadowColor, d.shadow, st.RoundCornerHilite, role)
			labelColor, textColor, commentColor = st.HilitedLabelTextColor, st.HilitedCandidateTextColor, st.HilitedCommentTextColor
		} else if st.CandidateBackColor.Visible() {
			d.painter.Paint(d.dst, band, st.CandidateBackColor, st.CandidateShadowColor, d.shadow, st.RoundCornerHilite, role)
		}

		if rc := res.LabelRect(i); !rc.Empty() {
			r.DrawText(d.dst, rc.Min, rc, res.LabelTexts[i], st.LabelFont, labelColor)
		}
		if rc := res.TextRect(i); !rc.Empty() {
			r.DrawText(d.dst, rc.Min, rc, cand.Text, st.Font, textColor)
		}
		if rc := res.CommentRect(i); !rc.Empty() && cand.Comment != "" {
			r.DrawText(d.dst, rc.Min, rc, cand.Comment, st.CommentFont, commentColor)
		}
		drawn = true
	}
	return drawn
}
