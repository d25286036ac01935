package layout

import (
	"strconv"
	"strings"

	"github.com/ByLCY/candwin/dsl"
)

const labelAlphabet = "abcdefghijklmnopqrstuvwxyz"

// LabelText 按序号模板生成第 index 个候选（从 0 开始）的标签文字。
//
//	%s     候选自带的标签，缺省时为 (index+1)%10
//	%n %z  从 1 / 从 0 开始的序号
//	%a %A  字母序号
//	%[..]  从自定义序列中按序号循环取字
//	%%     百分号
//
// 无法解析的模板原样返回。
func LabelText(format, label string, index int) string {
	f, err := dsl.ParseLabelFormat(format)
	if err != nil {
		return format
	}
	return formatLabel(f, label, index)
}

func formatLabel(f *dsl.LabelFormat, label string, index int) string {
	var sb strings.Builder
	for _, p := range f.Parts {
		switch {
		case p.Escape:
			sb.WriteByte('%')
		case p.Marker != nil:
			if seq := p.Sequence(); len(seq) > 0 {
				sb.WriteRune(seq[index%len(seq)])
			}
		case p.Directive != nil:
			switch p.Verb() {
			case 's':
				if label == "" {
					label = strconv.Itoa((index + 1) % 10)
				}
				sb.WriteString(label)
			case 'n':
				sb.WriteString(strconv.Itoa(index + 1))
			case 'z':
				sb.WriteString(strconv.Itoa(index))
			case 'a':
				sb.WriteByte(labelAlphabet[index%len(labelAlphabet)])
			case 'A':
				sb.WriteByte(labelAlphabet[index%len(labelAlphabet)] - 'a' + 'A')
			}
		case p.Literal != nil:
			sb.WriteString(*p.Literal)
		}
	}
	return sb.String()
}
