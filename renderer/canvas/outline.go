package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"

	"github.com/ByLCY/candwin/layout"
	"github.com/ByLCY/candwin/paint"
	"github.com/ByLCY/candwin/style"
)

const outlineStrokeWidth = 0.5

var (
	outlineHeaderColor    = canvas.Hex("#1e88e5")
	outlineLabelColor     = canvas.Hex("#8e24aa")
	outlineTextColor      = canvas.Hex("#43a047")
	outlineCommentColor   = canvas.Hex("#fb8c00")
	outlineCandidateColor = canvas.Hex("#e53935")
)

// Outline 把布局结果画成一页矢量线框 PDF：背景、各区域边框与文字。
// 页面尺寸等于内容尺寸，1px 记为 1mm。
func (r *Renderer) Outline(res *layout.Result, st style.Style, state *layout.State) ([]byte, error) {
	if res == nil {
		return nil, fmt.Errorf("布局结果为空")
	}
	if res.Size.W <= 0 || res.Size.H <= 0 {
		return nil, fmt.Errorf("布局尺寸为空，无法输出线框")
	}
	w, h := float64(res.Size.W), float64(res.Size.H)

	var buf bytes.Buffer
	writer := pdf.New(&buf, w, h, nil)
	writer.SetInfo("candwin layout", "", "", "", "candwin")

	c := canvas.New(w, h)
	ctx := canvas.NewContext(c)
	page := outlinePage{ctx: ctx, height: h}

	if bg := res.Background(); !bg.Empty() {
		ctx.SetFillColor(st.BackColor)
		ctx.SetStrokeColor(st.BorderColor)
		ctx.SetStrokeWidth(float64(max(st.Border, 0)))
		page.path(bg, paint.RoundedRect(float64(bg.Dx()), float64(bg.Dy()), float64(st.RoundCorner), paint.AllCorners))
	}

	ctx.SetFillColor(canvas.Transparent)
	ctx.SetStrokeWidth(outlineStrokeWidth)
	page.box(res.Preedit, outlineHeaderColor)
	page.box(res.Aux, outlineHeaderColor)
	page.box(res.StatusIcon, outlineHeaderColor)
	for i := 0; i < res.Count; i++ {
		page.box(res.Candidates[i], outlineCandidateColor)
		page.box(res.Labels[i], outlineLabelColor)
		page.box(res.Texts[i], outlineTextColor)
		page.box(res.Comments[i], outlineCommentColor)
	}

	if state != nil {
		if !st.InlinePreedit {
			r.outlineText(page, res.Preedit, state.Preedit.Str, st.Font, st.TextColor)
		}
		r.outlineText(page, res.Aux, state.Aux.Str, st.Font, st.TextColor)
		for i := 0; i < res.Count && i < len(state.Candidates); i++ {
			r.outlineText(page, res.Labels[i], res.LabelTexts[i], st.LabelFont, st.LabelTextColor)
			r.outlineText(page, res.Texts[i], state.Candidates[i].Text, st.Font, st.CandidateTextColor)
			r.outlineText(page, res.Comments[i], state.Candidates[i].Comment, st.CommentFont, st.CommentTextColor)
		}
	}

	c.RenderTo(writer)
	if err := writer.Close(); err != nil {
		return nil, fmt.Errorf("写入 PDF 失败: %w", err)
	}
	return buf.Bytes(), nil
}

func (r *Renderer) outlineText(page outlinePage, rect image.Rectangle, text string, font style.Font, col style.Color) {
	if rect.Empty() || text == "" || !font.Visible() {
		return
	}
	if !col.Visible() {
		col = style.RGB(0, 0, 0)
	}
	face, err := r.fontFace(font, col)
	if err != nil {
		return
	}
	metrics := face.Metrics()
	top := float64(rect.Min.Y)
	for _, line := range layout.SplitLines(text) {
		page.ctx.DrawText(float64(rect.Min.X), page.height-top-metrics.Ascent, canvas.NewTextLine(face, line, canvas.Left))
		top += metrics.LineHeight
	}
}

// outlinePage 把左上角原点的布局坐标换算为画布的原生坐标。
type outlinePage struct {
	ctx    *canvas.Context
	height float64
}

func (p outlinePage) path(rect image.Rectangle, path *canvas.Path) {
	if path == nil {
		return
	}
	p.ctx.DrawPath(float64(rect.Min.X), p.height-float64(rect.Max.Y), path)
}

func (p outlinePage) box(rect image.Rectangle, col color.Color) {
	if rect.Empty() {
		return
	}
	p.ctx.SetStrokeColor(col)
	p.path(rect, canvas.Rectangle(float64(rect.Dx()), float64(rect.Dy())))
}
