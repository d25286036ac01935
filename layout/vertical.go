package layout

import "image"

// vertical 把候选自上而下逐行排列，注释对齐到同一列。
type vertical struct {
	base
}

func (v *vertical) Compute(m Measurer) *Result {
	st := &v.style
	res := v.newResult()
	space := st.HiliteSpacing
	width, height := 0, st.MarginY
	laid := v.layoutHeader(m, res, &width, &height)

	var commented [MaxCandidates]bool
	commentColumn, maxCandidateWidth, maxCommentWidth := 0, 0, 0
	for i := 0; i < res.Count; i++ {
		if i > 0 {
			height += st.CandidateSpacing
		}
		cand := v.state.Candidates[i]
		res.LabelTexts[i] = v.labelText(i)
		w, h := st.MarginX, 0

		if st.LabelFont.Visible() {
			size := MeasureMultiline(m, res.LabelTexts[i], st.LabelFont)
			res.Labels[i] = image.Rect(w, height, w+size.W, height+size.H)
			if size.W > 0 {
				w += size.W + space
			}
			h = max(h, size.H)
		}
		if st.Font.Visible() {
			size := MeasureMultiline(m, cand.Text, st.Font)
			res.Texts[i] = image.Rect(w, height, w+size.W, height+size.H)
			w += size.W
			h = max(h, size.H)
		}
		maxCandidateWidth = max(maxCandidateWidth, w-st.MarginX)

		if cand.Comment != "" && st.CommentFont.Visible() {
			w += space
			commentColumn = max(commentColumn, w-st.MarginX)
			size := MeasureMultiline(m, cand.Comment, st.CommentFont)
			// 横坐标在确定公共注释列后再补上
			res.Comments[i] = image.Rect(0, height, size.W, height+size.H)
			commented[i] = true
			maxCommentWidth = max(maxCommentWidth, size.W)
			h = max(h, size.H)
		}

		alignRow(st.Align, h, &res.Labels[i], &res.Texts[i], &res.Comments[i])
		height += h
	}

	width = max(width, max(maxCandidateWidth, commentColumn+maxCommentWidth)+2*st.MarginX)
	for i := 0; i < res.Count; i++ {
		if commented[i] {
			res.Comments[i] = res.Comments[i].Add(image.Pt(st.MarginX+commentColumn, 0))
		}
	}

	if res.Count > 0 {
		height += st.Spacing
		laid = true
	}
	v.closeBody(res, &width, &height, laid)
	v.placeStatusIcon(res, &width, &height)

	for i := 0; i < res.Count; i++ {
		top, bottom, ok := verticalBand(res.Labels[i], res.Texts[i], res.Comments[i])
		if !ok {
			continue
		}
		res.Candidates[i] = image.Rect(st.MarginX, top, width-st.MarginX, bottom)
	}
	return v.finalize(res, width, height)
}
