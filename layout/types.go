package layout

import (
	"image"
	"unicode/utf8"

	"github.com/ByLCY/candwin/style"
)

// MaxCandidates 是一页最多排版的候选数，超出部分被忽略。
const MaxCandidates = 10

// StatusIconSize 是状态图标的边长（像素）。
const StatusIconSize = 16

// Size 为像素尺寸。
type Size struct {
	W int `json:"w"`
	H int `json:"h"`
}

// Measurer 测量单行文本在给定字体下的像素尺寸。
// 多行文本由布局引擎自行拆分，Measurer 不会收到换行符。
type Measurer interface {
	MeasureText(text string, font style.Font) Size
}

// Range 是以 rune 计的半开区间 [Start, End)。
type Range struct {
	Start int `json:"start"`
	End   int `json:"end"`
}

// Text 是带高亮区间的文字，例如组字串中当前正在转换的一段。
type Text struct {
	Str       string `json:"str"`
	Highlight Range  `json:"highlight"`
}

// HighlightRange 返回截断到文字长度内的高亮区间；区间为空时 ok 为 false。
func (t Text) HighlightRange() (start, end int, ok bool) {
	n := utf8.RuneCountInString(t.Str)
	start = min(max(t.Highlight.Start, 0), n)
	end = min(max(t.Highlight.End, 0), n)
	return start, end, start < end
}

// Candidate 是一条候选：序号标签、正文与注释。
type Candidate struct {
	Label   string `json:"label,omitempty"`
	Text    string `json:"text"`
	Comment string `json:"comment,omitempty"`
}

// Status 是输入法的当前状态，决定状态图标与隐藏策略。
type Status struct {
	AsciiMode bool   `json:"asciiMode"`
	Composing bool   `json:"composing"`
	Disabled  bool   `json:"disabled"`
	FullShape bool   `json:"fullShape"`
	SchemaID  string `json:"schemaId,omitempty"`
}

// State 是一次刷新所需的组字状态，由调用方提供。
type State struct {
	Preedit     Text        `json:"preedit"`
	Aux         Text        `json:"aux"`
	Candidates  []Candidate `json:"candidates"`
	Highlighted int         `json:"highlighted"`
	Status      Status      `json:"status"`
}

// Count 返回参与排版的候选数。
func (s *State) Count() int {
	if s == nil {
		return 0
	}
	return min(len(s.Candidates), MaxCandidates)
}

// Empty 报告既没有组字串、提示也没有候选。
func (s *State) Empty() bool {
	return s == nil || (s.Preedit.Str == "" && s.Aux.Str == "" && len(s.Candidates) == 0)
}

// Result 是一次布局的全部几何信息。矩形位于窗口坐标系，已包含嵌入偏移。
// 数组长度固定为 MaxCandidates，下标 >= Count 的元素为零矩形。
type Result struct {
	Size   Size        `json:"size"`
	Offset image.Point `json:"offset"`
	Count  int         `json:"count"`

	Preedit    image.Rectangle `json:"preedit"`
	Aux        image.Rectangle `json:"aux"`
	StatusIcon image.Rectangle `json:"statusIcon"`
	Highlight  image.Rectangle `json:"highlight"`

	Labels     [MaxCandidates]image.Rectangle `json:"labels"`
	Texts      [MaxCandidates]image.Rectangle `json:"texts"`
	Comments   [MaxCandidates]image.Rectangle `json:"comments"`
	Candidates [MaxCandidates]image.Rectangle `json:"candidates"`
	LabelTexts [MaxCandidates]string          `json:"labelTexts"`

	ShowStatusIcon bool `json:"showStatusIcon"`
	Vertical       bool `json:"vertical"`
	Inline         bool `json:"inline"`
	Fullscreen     bool `json:"fullscreen"`
}

// ContentSize 返回窗口内容尺寸（含阴影边距）。
func (r *Result) ContentSize() Size { return r.Size }

// Background 返回背景面板矩形，即去掉四周嵌入偏移后的区域。
func (r *Result) Background() image.Rectangle {
	return image.Rect(r.Offset.X, r.Offset.Y, r.Size.W-r.Offset.X, r.Size.H-r.Offset.Y)
}

func (r *Result) PreeditRect() image.Rectangle    { return r.Preedit }
func (r *Result) AuxRect() image.Rectangle        { return r.Aux }
func (r *Result) StatusIconRect() image.Rectangle { return r.StatusIcon }
func (r *Result) HighlightRect() image.Rectangle  { return r.Highlight }

func (r *Result) LabelRect(i int) image.Rectangle     { return r.at(&r.Labels, i) }
func (r *Result) TextRect(i int) image.Rectangle      { return r.at(&r.Texts, i) }
func (r *Result) CommentRect(i int) image.Rectangle   { return r.at(&r.Comments, i) }
func (r *Result) CandidateRect(i int) image.Rectangle { return r.at(&r.Candidates, i) }

func (r *Result) at(rects *[MaxCandidates]image.Rectangle, i int) image.Rectangle {
	if i < 0 || i >= r.Count {
		return image.Rectangle{}
	}
	return rects[i]
}

// translate 把所有非零矩形平移 d。
func (r *Result) translate(d image.Point) {
	move := func(rc *image.Rectangle) {
		if *rc != (image.Rectangle{}) {
			*rc = rc.Add(d)
		}
	}
	move(&r.Preedit)
	move(&r.Aux)
	move(&r.StatusIcon)
	move(&r.Highlight)
	for i := range r.Labels {
		move(&r.Labels[i])
		move(&r.Texts[i])
		move(&r.Comments[i])
		move(&r.Candidates[i])
	}
}
