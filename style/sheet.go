package style

import (
	"fmt"
	"io"

	"github.com/ByLCY/candwin/dsl"
)

// Load 解析样式文件，并把其中 style 块的赋值依次覆盖到 base 上。
//
//	style {
//	  layout: horizontal
//	  margin: 8 6
//	  font_face: "Go:bold, Go Mono:3000:9fff"
//	  back_color: #ffffffee
//	}
//
// 未知的键或取值类型不符都会返回错误。
func Load(r io.Reader, base Style) (Style, error) {
	sheet, err := dsl.Parse(r)
	if err != nil {
		return base, fmt.Errorf("解析样式文件失败: %w", err)
	}
	return Apply(sheet, base)
}

// Apply 把已解析的样式表覆盖到 base 上。
func Apply(sheet *dsl.StyleSheet, base Style) (Style, error) {
	st := base
	if sheet == nil {
		return st, nil
	}
	for _, block := range sheet.Blocks {
		if block.Name != "style" {
			return base, fmt.Errorf("%s: 不支持的块 %q", block.Pos, block.Name)
		}
		for _, entry := range block.Entries {
			if err := assign(&st, entry.Key, entry.Values); err != nil {
				return base, fmt.Errorf("%s: %s: %w", entry.Pos, entry.Key, err)
			}
		}
	}
	return st, nil
}

type setter func(st *Style, vals []*dsl.Value) error

var colorFields = map[string]func(*Style) *Color{
	"border_color":                   func(s *Style) *Color { return &s.BorderColor },
	"text_color":                     func(s *Style) *Color { return &s.TextColor },
	"back_color":                     func(s *Style) *Color { return &s.BackColor },
	"shadow_color":                   func(s *Style) *Color { return &s.ShadowColor },
	"hilited_text_color":             func(s *Style) *Color { return &s.HilitedTextColor },
	"hilited_back_color":             func(s *Style) *Color { return &s.HilitedBackColor },
	"hilited_shadow_color":           func(s *Style) *Color { return &s.HilitedShadowColor },
	"label_color":                    func(s *Style) *Color { return &s.LabelTextColor },
	"hilited_label_color":            func(s *Style) *Color { return &s.HilitedLabelTextColor },
	"candidate_text_color":           func(s *Style) *Color { return &s.CandidateTextColor },
	"hilited_candidate_text_color":   func(s *Style) *Color { return &s.HilitedCandidateTextColor },
	"comment_text_color":             func(s *Style) *Color { return &s.CommentTextColor },
	"hilited_comment_text_color":     func(s *Style) *Color { return &s.HilitedCommentTextColor },
	"candidate_back_color":           func(s *Style) *Color { return &s.CandidateBackColor },
	"hilited_candidate_back_color":   func(s *Style) *Color { return &s.HilitedCandidateBackColor },
	"candidate_shadow_color":         func(s *Style) *Color { return &s.CandidateShadowColor },
	"hilited_candidate_shadow_color": func(s *Style) *Color { return &s.HilitedCandidateShadowColor },
}

var intFields = map[string]func(*Style) *int{
	"margin_x":           func(s *Style) *int { return &s.MarginX },
	"margin_y":           func(s *Style) *int { return &s.MarginY },
	"spacing":            func(s *Style) *int { return &s.Spacing },
	"candidate_spacing":  func(s *Style) *int { return &s.CandidateSpacing },
	"hilite_spacing":     func(s *Style) *int { return &s.HiliteSpacing },
	"hilite_padding":     func(s *Style) *int { return &s.HilitePadding },
	"min_width":          func(s *Style) *int { return &s.MinWidth },
	"min_height":         func(s *Style) *int { return &s.MinHeight },
	"corner_radius":      func(s *Style) *int { return &s.RoundCorner },
	"round_corner":       func(s *Style) *int { return &s.RoundCornerHilite },
	"border":             func(s *Style) *int { return &s.Border },
	"border_width":       func(s *Style) *int { return &s.Border },
	"shadow_radius":      func(s *Style) *int { return &s.ShadowRadius },
	"shadow_offset_x":    func(s *Style) *int { return &s.ShadowOffsetX },
	"shadow_offset_y":    func(s *Style) *int { return &s.ShadowOffsetY },
	"label_font_point":   func(s *Style) *int { return &s.LabelFont.Point },
	"comment_font_point": func(s *Style) *int { return &s.CommentFont.Point },
}

var boolFields = map[string]func(*Style) *bool{
	"inline_preedit":    func(s *Style) *bool { return &s.InlinePreedit },
	"color_font":        func(s *Style) *bool { return &s.ColorFont },
	"display_tray_icon": func(s *Style) *bool { return &s.DisplayTrayIcon },
}

var stringFields = map[string]func(*Style) *string{
	"label_format":      func(s *Style) *string { return &s.LabelFormat },
	"label_font_face":   func(s *Style) *string { return &s.LabelFont.Face },
	"comment_font_face": func(s *Style) *string { return &s.CommentFont.Face },
}

var setters = map[string]setter{
	"margin": func(st *Style, vals []*dsl.Value) error {
		x, y, err := pair(vals)
		st.MarginX, st.MarginY = x, y
		return err
	},
	"shadow_offset": func(st *Style, vals []*dsl.Value) error {
		x, y, err := pair(vals)
		st.ShadowOffsetX, st.ShadowOffsetY = x, y
		return err
	},
	// font_face（或 font）与 font_point 同时作用于三种字体，单独的 label_/comment_ 键可在其后覆盖。
	"font_face": setFontFace,
	"font":      setFontFace,
	"font_point": func(st *Style, vals []*dsl.Value) error {
		n, err := vals[0].Int()
		if err != nil {
			return err
		}
		st.Font.Point, st.LabelFont.Point, st.CommentFont.Point = n, n, n
		return nil
	},
	"align": func(st *Style, vals []*dsl.Value) error {
		a, err := ParseAlign(vals[0].Raw())
		st.Align = a
		return err
	},
	"layout": func(st *Style, vals []*dsl.Value) error {
		l, err := ParseLayout(vals[0].Raw())
		st.Layout = l
		return err
	},
}

func setFontFace(st *Style, vals []*dsl.Value) error {
	face := vals[0].Raw()
	st.Font.Face, st.LabelFont.Face, st.CommentFont.Face = face, face, face
	return nil
}

func assign(st *Style, key string, vals []*dsl.Value) error {
	if len(vals) == 0 {
		return fmt.Errorf("缺少取值")
	}
	if fn, ok := setters[key]; ok {
		return fn(st, vals)
	}
	if field, ok := colorFields[key]; ok {
		c, err := ParseColor(vals[0].Raw())
		if err != nil {
			return err
		}
		*field(st) = c
		return nil
	}
	if field, ok := intFields[key]; ok {
		n, err := vals[0].Int()
		if err != nil {
			return err
		}
		*field(st) = n
		return nil
	}
	if field, ok := boolFields[key]; ok {
		b, err := vals[0].Bool()
		if err != nil {
			return err
		}
		*field(st) = b
		return nil
	}
	if field, ok := stringFields[key]; ok {
		*field(st) = vals[0].Raw()
		return nil
	}
	return fmt.Errorf("未知的样式键")
}

func pair(vals []*dsl.Value) (int, int, error) {
	x, err := vals[0].Int()
	if err != nil {
		return 0, 0, err
	}
	if len(vals) == 1 {
		return x, x, nil
	}
	y, err := vals[1].Int()
	if err != nil {
		return 0, 0, err
	}
	return x, y, nil
}
