// Package style 定义候选窗的外观参数：边距、间距、字体、颜色与阴影。
//
// Style 是纯数据，一次布局/绘制过程中不会被修改；所有字段均可比较，
// 因此可直接用 == 判断两份样式是否一致。
package style

import (
	"fmt"
	"strconv"
	"strings"
)

// AlignType 控制标签、文字与注释在同一行内的纵向对齐方式。
type AlignType int

const (
	AlignTop AlignType = iota
	AlignCenter
	AlignBottom
)

func (a AlignType) String() string {
	switch a {
	case AlignCenter:
		return "center"
	case AlignBottom:
		return "bottom"
	default:
		return "top"
	}
}

// LayoutType 候选的排列方式。
type LayoutType int

const (
	LayoutVertical LayoutType = iota
	LayoutHorizontal
	LayoutVerticalFullscreen
	LayoutHorizontalFullscreen
)

// Vertical 报告候选是否纵向排列。
func (l LayoutType) Vertical() bool {
	return l == LayoutVertical || l == LayoutVerticalFullscreen
}

// Fullscreen 报告是否铺满工作区。
func (l LayoutType) Fullscreen() bool {
	return l == LayoutVerticalFullscreen || l == LayoutHorizontalFullscreen
}

func (l LayoutType) String() string {
	switch l {
	case LayoutHorizontal:
		return "horizontal"
	case LayoutVerticalFullscreen:
		return "vertical_fullscreen"
	case LayoutHorizontalFullscreen:
		return "horizontal_fullscreen"
	default:
		return "vertical"
	}
}

// ParseAlign 解析对齐方式名称。
func ParseAlign(s string) (AlignType, error) {
	switch strings.ToLower(s) {
	case "top":
		return AlignTop, nil
	case "center", "middle":
		return AlignCenter, nil
	case "bottom":
		return AlignBottom, nil
	}
	return AlignTop, fmt.Errorf("未知的对齐方式 %q", s)
}

// ParseLayout 解析排列方式名称。
func ParseLayout(s string) (LayoutType, error) {
	switch strings.ToLower(strings.ReplaceAll(s, "-", "_")) {
	case "vertical":
		return LayoutVertical, nil
	case "horizontal":
		return LayoutHorizontal, nil
	case "vertical_fullscreen":
		return LayoutVerticalFullscreen, nil
	case "horizontal_fullscreen":
		return LayoutHorizontalFullscreen, nil
	}
	return LayoutVertical, fmt.Errorf("未知的排列方式 %q", s)
}

// Font 描述一种字体：Face 为字体描述串（见 fonts.ParseSpec），Point 为字号。
// Point <= 0 表示该类文字不显示。
type Font struct {
	Face  string `json:"face"`
	Point int    `json:"point"`
}

// Visible 报告该字体下的文字是否需要排版。
func (f Font) Visible() bool { return f.Point > 0 }

func (f Font) String() string {
	return f.Face + "@" + strconv.Itoa(f.Point)
}

// Style 是候选窗的完整外观描述。
type Style struct {
	MarginX          int
	MarginY          int
	Spacing          int
	CandidateSpacing int
	HiliteSpacing    int
	HilitePadding    int
	MinWidth         int
	MinHeight        int

	Align  AlignType
	Layout LayoutType

	Font        Font
	LabelFont   Font
	CommentFont Font

	RoundCorner       int
	RoundCornerHilite int
	Border            int
	BorderColor       Color

	TextColor                   Color
	BackColor                   Color
	ShadowColor                 Color
	HilitedTextColor            Color
	HilitedBackColor            Color
	HilitedShadowColor          Color
	LabelTextColor              Color
	HilitedLabelTextColor       Color
	CandidateTextColor          Color
	HilitedCandidateTextColor   Color
	CommentTextColor            Color
	HilitedCommentTextColor     Color
	CandidateBackColor          Color
	HilitedCandidateBackColor   Color
	CandidateShadowColor        Color
	HilitedCandidateShadowColor Color

	ShadowRadius  int
	ShadowOffsetX int
	ShadowOffsetY int

	InlinePreedit   bool
	LabelFormat     string
	ColorFont       bool
	DisplayTrayIcon bool
}

// DefaultFontFace 是未配置字体时使用的内置字体。
const DefaultFontFace = "Go"

// Default 返回一份可直接使用的浅色样式。
func Default() Style {
	return Style{
		MarginX:          12,
		MarginY:          12,
		Spacing:          10,
		CandidateSpacing: 5,
		HiliteSpacing:    4,
		HilitePadding:    2,

		Align:  AlignCenter,
		Layout: LayoutVertical,

		Font:        Font{Face: DefaultFontFace, Point: 14},
		LabelFont:   Font{Face: DefaultFontFace, Point: 14},
		CommentFont: Font{Face: DefaultFontFace, Point: 14},

		RoundCorner:       4,
		RoundCornerHilite: 4,
		Border:            1,
		BorderColor:       RGB(0xe0, 0xe0, 0xe0),

		TextColor:                 RGB(0x33, 0x33, 0x33),
		BackColor:                 RGB(0xff, 0xff, 0xff),
		HilitedTextColor:          RGB(0x00, 0x00, 0x00),
		HilitedBackColor:          RGB(0xe8, 0xe8, 0xe8),
		LabelTextColor:            RGB(0x88, 0x88, 0x88),
		HilitedLabelTextColor:     RGB(0xff, 0xff, 0xff),
		CandidateTextColor:        RGB(0x00, 0x00, 0x00),
		HilitedCandidateTextColor: RGB(0xff, 0xff, 0xff),
		CommentTextColor:          RGB(0x88, 0x88, 0x88),
		HilitedCommentTextColor:   RGB(0xdd, 0xdd, 0xdd),
		HilitedCandidateBackColor: RGB(0x3b, 0x7d, 0xd8),

		LabelFormat: "%s.",
	}
}

// Equal 逐字段比较两份样式。
func (s Style) Equal(o Style) bool { return s == o }

// ShadowEnabled 报告背景阴影是否生效（全屏布局下不绘制阴影）。
func (s Style) ShadowEnabled() bool {
	return s.ShadowColor.Visible() && s.ShadowRadius > 0 && !s.Layout.Fullscreen()
}

// minFontPoint 是全屏缩放时字号的下限。
const minFontPoint = 4

// AdjustFontPoint 返回三种字体字号都增加 delta 的副本；
// 已被隐藏（Point <= 0）的字体保持隐藏，其余不低于 minFontPoint。
func (s Style) AdjustFontPoint(delta int) Style {
	adjust := func(f Font) Font {
		if f.Point <= 0 {
			return f
		}
		f.Point = max(f.Point+delta, minFontPoint)
		return f
	}
	s.Font = adjust(s.Font)
	s.LabelFont = adjust(s.LabelFont)
	s.CommentFont = adjust(s.CommentFont)
	return s
}
