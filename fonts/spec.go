// Package fonts 负责字体描述串解析、内置字体与字体数据的查找。
package fonts

import (
	"strconv"
	"strings"
	"unicode"

	"github.com/ByLCY/candwin/dsl"
)

// Weight 采用 OpenType 的 100-950 字重刻度。
type Weight int

const (
	WeightThin       Weight = 100
	WeightExtraLight Weight = 200
	WeightLight      Weight = 300
	WeightSemiLight  Weight = 350
	WeightNormal     Weight = 400
	WeightMedium     Weight = 500
	WeightSemiBold   Weight = 600
	WeightBold       Weight = 700
	WeightExtraBold  Weight = 800
	WeightBlack      Weight = 900
	WeightExtraBlack Weight = 950
)

var weightNames = map[string]Weight{
	"thin":        WeightThin,
	"extra_light": WeightExtraLight,
	"ultra_light": WeightExtraLight,
	"light":       WeightLight,
	"semi_light":  WeightSemiLight,
	"normal":      WeightNormal,
	"regular":     WeightNormal,
	"medium":      WeightMedium,
	"demi_bold":   WeightSemiBold,
	"semi_bold":   WeightSemiBold,
	"bold":        WeightBold,
	"extra_bold":  WeightExtraBold,
	"ultra_bold":  WeightExtraBold,
	"black":       WeightBlack,
	"heavy":       WeightBlack,
	"extra_black": WeightExtraBlack,
	"ultra_black": WeightExtraBlack,
}

// ParseWeight 解析字重名称（大小写不敏感，允许 "-" 或 "_" 分隔），也接受数字。
func ParseWeight(s string) (Weight, bool) {
	s = strings.ToLower(strings.TrimSpace(strings.ReplaceAll(s, "-", "_")))
	if w, ok := weightNames[s]; ok {
		return w, true
	}
	if n, err := strconv.Atoi(s); err == nil && n >= 1 && n <= 1000 {
		return Weight(n), true
	}
	return WeightNormal, false
}

// Face 是一个具名字体加字重。
type Face struct {
	Name   string
	Weight Weight
}

// Fallback 仅覆盖 [First, Last] 码位区间的后备字体。
type Fallback struct {
	Face
	First rune
	Last  rune
}

// Covers 报告 r 是否落在该后备字体的区间内。
func (f Fallback) Covers(r rune) bool { return r >= f.First && r <= f.Last }

// Spec 是解析后的字体描述串。
type Spec struct {
	Face
	Fallbacks []Fallback
}

// FaceFor 返回应当用来绘制 r 的字体：第一个覆盖 r 的后备字体，否则为主字体。
func (s Spec) FaceFor(r rune) Face {
	for _, fb := range s.Fallbacks {
		if fb.Covers(r) {
			return fb.Face
		}
	}
	return s.Face
}

// ParseSpec 解析字体描述串：
//
//	"主字体[:字重], 后备字体[:起始码位[:结束码位]], ..."
//
// 码位为十六进制；起始缺省为 0，结束缺省为 10ffff，无法解析时同样取缺省值。
// 整串无法解析时把它整体当作主字体名。
func ParseSpec(s string) Spec {
	list, err := dsl.ParseFaceList(s)
	if err != nil {
		return Spec{Face: Face{Name: strings.TrimSpace(s), Weight: WeightNormal}}
	}
	spec := Spec{Face: mainFace(list.Main)}
	for _, e := range list.Fallbacks {
		if e == nil || (e.Family() == "" && len(e.Params) == 0) {
			continue
		}
		spec.Fallbacks = append(spec.Fallbacks, fallbackFace(e))
	}
	return spec
}

func mainFace(e *dsl.FaceEntry) Face {
	face := Face{Name: e.Family(), Weight: WeightNormal}
	if e == nil {
		return face
	}
	for i := range e.Params {
		if w, ok := ParseWeight(e.Param(i)); ok {
			face.Weight = w
		}
	}
	return face
}

func fallbackFace(e *dsl.FaceEntry) Fallback {
	fb := Fallback{
		Face:  Face{Name: e.Family(), Weight: WeightNormal},
		First: 0,
		Last:  unicode.MaxRune,
	}
	if v, ok := parseCodepoint(e.Param(0)); ok {
		fb.First = v
	}
	if v, ok := parseCodepoint(e.Param(1)); ok {
		fb.Last = v
	}
	return fb
}

func parseCodepoint(s string) (rune, bool) {
	s = strings.TrimPrefix(strings.ToLower(strings.TrimSpace(s)), "0x")
	if s == "" {
		return 0, false
	}
	v, err := strconv.ParseUint(s, 16, 32)
	if err != nil || v > unicode.MaxRune {
		return 0, false
	}
	return rune(v), true
}
