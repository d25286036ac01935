package glyph

import (
	"github.com/go-text/typesetting/di"
	"github.com/go-text/typesetting/language"
	"github.com/go-text/typesetting/shaping"
	"golang.org/x/image/math/fixed"
	"golang.org/x/text/unicode/bidi"

	"github.com/ByLCY/candwin/fonts"
)

// run 是一段使用同一字体整形的文字。
type run struct {
	face    *face
	glyphs  []shaping.Glyph
	advance fixed.Int26_6
}

// shapedLine 是一行文字的整形结果。plain 为 true 表示整形失败，
// 该行改由 font.Drawer 使用主字体直接绘制。
type shapedLine struct {
	text    string
	main    *face
	runs    []run
	width   fixed.Int26_6
	metrics lineMetrics
	plain   bool
}

// layoutLine 按后备字体区间把一行拆分成若干段，逐段整形并累计宽度。
// 调用方持有 r.mu。
func (r *Renderer) layoutLine(text string, spec fonts.Spec, ppem fixed.Int26_6) shapedLine {
	line := shapedLine{text: text, main: r.lookupFace(spec.Face)}
	line.metrics = line.main.metrics(&r.buf, ppem)
	if text == "" {
		return line
	}

	runes := []rune(text)
	for _, seg := range segmentRunes(runes, spec) {
		f := r.lookupFace(seg.face)
		if m := f.metrics(&r.buf, ppem); m.height > line.metrics.height {
			line.metrics = m
		}
		out, ok := r.shape(runes, seg.start, seg.end, f, ppem)
		if !ok {
			return r.plainLine(line, ppem)
		}
		line.runs = append(line.runs, out)
		line.width += out.advance
	}
	return line
}

func (r *Renderer) shape(runes []rune, start, end int, f *face, ppem fixed.Int26_6) (out run, ok bool) {
	defer func() {
		// 个别损坏的字体会让整形器越界，按整形失败处理
		if recover() != nil {
			ok = false
		}
	}()
	input := shaping.Input{
		Text:      runes,
		RunStart:  start,
		RunEnd:    end,
		Direction: direction(runes[start:end]),
		Face:      f.shape,
		Size:      ppem,
		Script:    detectScript(runes[start:end]),
		Language:  r.language,
	}
	output := r.shaper.Shape(input)
	for _, g := range output.Glyphs {
		if g.GlyphID == 0 {
			return run{}, false
		}
	}
	return run{face: f, glyphs: output.Glyphs, advance: output.Advance}, true
}

// segment 是使用同一字体的连续码位区间 [start, end)。
type segment struct {
	face       fonts.Face
	start, end int
}

func segmentRunes(runes []rune, spec fonts.Spec) []segment {
	var segs []segment
	for i, c := range runes {
		f := spec.FaceFor(c)
		if n := len(segs); n > 0 && segs[n-1].face == f {
			segs[n-1].end = i + 1
			continue
		}
		segs = append(segs, segment{face: f, start: i, end: i + 1})
	}
	return segs
}

// direction 取第一个强方向字符决定整段的书写方向。
func direction(runes []rune) di.Direction {
	for _, c := range runes {
		props, _ := bidi.LookupRune(c)
		switch props.Class() {
		case bidi.R, bidi.AL:
			return di.DirectionRTL
		case bidi.L:
			return di.DirectionLTR
		}
	}
	return di.DirectionLTR
}

// detectScript 返回第一个非空白字符的书写系统。
func detectScript(runes []rune) language.Script {
	for _, c := range runes {
		if c == ' ' || c == '\t' {
			continue
		}
		return language.LookupScript(c)
	}
	return language.Latin
}
