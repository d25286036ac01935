package layout

import "image"

// horizontal 把全部候选从左到右排在同一行，注释紧跟各自的正文。
type horizontal struct {
	base
}

func (hz *horizontal) Compute(m Measurer) *Result {
	st := &hz.style
	res := hz.newResult()
	space := st.HiliteSpacing
	width, height := 0, st.MarginY
	laid := hz.layoutHeader(m, res, &width, &height)

	w, rowHeight := st.MarginX, 0
	for i := 0; i < res.Count; i++ {
		if i > 0 {
			w += st.CandidateSpacing
		}
		cand := hz.state.Candidates[i]
		res.LabelTexts[i] = hz.labelText(i)

		if st.LabelFont.Visible() {
			size := MeasureMultiline(m, res.LabelTexts[i], st.LabelFont)
			res.Labels[i] = image.Rect(w, height, w+size.W, height+size.H)
			if size.W > 0 {
				w += size.W + space
			}
			rowHeight = max(rowHeight, size.H)
		}
		if st.Font.Visible() {
			size := MeasureMultiline(m, cand.Text, st.Font)
			res.Texts[i] = image.Rect(w, height, w+size.W, height+size.H)
			w += size.W
			rowHeight = max(rowHeight, size.H)
		}
		if cand.Comment != "" && st.CommentFont.Visible() {
			w += space
			size := MeasureMultiline(m, cand.Comment, st.CommentFont)
			res.Comments[i] = image.Rect(w, height, w+size.W, height+size.H)
			w += size.W
			rowHeight = max(rowHeight, size.H)
		}
	}
	for i := 0; i < res.Count; i++ {
		alignRow(st.Align, rowHeight, &res.Labels[i], &res.Texts[i], &res.Comments[i])
	}

	if res.Count > 0 {
		width = max(width, w+st.MarginX)
		height += rowHeight + st.Spacing
		laid = true
	}
	hz.closeBody(res, &width, &height, laid)
	hz.placeStatusIcon(res, &width, &height)

	for i := 0; i < res.Count; i++ {
		top, bottom, ok := verticalBand(res.Labels[i], res.Texts[i], res.Comments[i])
		if !ok {
			continue
		}
		left, right := horizontalSpan(res.Labels[i], res.Texts[i], res.Comments[i])
		res.Candidates[i] = image.Rect(left, top, right, bottom)
	}
	return hz.finalize(res, width, height)
}

// horizontalSpan 返回各非零矩形在横向上的并集。
func horizontalSpan(rects ...image.Rectangle) (left, right int) {
	first := true
	for _, rc := range rects {
		if rc == (image.Rectangle{}) {
			continue
		}
		if first {
			left, right, first = rc.Min.X, rc.Max.X, false
			continue
		}
		left = min(left, rc.Min.X)
		right = max(right, rc.Max.X)
	}
	return left, right
}
