package layout

import (
	"math"
	"strings"

	"golang.org/x/text/width"

	"github.com/ByLCY/candwin/style"
)

// SplitLines 按换行拆分文字，\r\n 与单独的 \r 视同 \n。
func SplitLines(s string) []string {
	s = strings.ReplaceAll(s, "\r\n", "\n")
	s = strings.ReplaceAll(s, "\r", "\n")
	return strings.Split(s, "\n")
}

// MeasureMultiline 测量多行文字：宽度取各行最大值，高度为各行高度之和。
func MeasureMultiline(m Measurer, text string, font style.Font) Size {
	var out Size
	for _, line := range SplitLines(text) {
		s := m.MeasureText(line, font)
		out.W = max(out.W, s.W)
		out.H += s.H
	}
	return out
}

// EstimateMeasurer 不加载字体，按字符宽度类别估算文字尺寸：
// 东亚宽字符占 1em，其余占 0.55em，行高 1.4em。
type EstimateMeasurer struct {
	DPI float64
}

func (e EstimateMeasurer) MeasureText(text string, font style.Font) Size {
	if font.Point <= 0 {
		return Size{}
	}
	em := PointToPixel(float64(font.Point), e.DPI)
	adv := 0.0
	for _, r := range text {
		switch width.LookupRune(r).Kind() {
		case width.EastAsianWide, width.EastAsianFullwidth:
			adv += em
		default:
			adv += em * 0.55
		}
	}
	return Size{W: int(math.Ceil(adv)), H: int(math.Ceil(em * 1.4))}
}
