package dsl

import (
	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	labelLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Escape", Pattern: `%%`},
		{Name: "Marker", Pattern: `%\[[^\]]*\]`},
		{Name: "Directive", Pattern: `%[snzaA]`},
		{Name: "Literal", Pattern: `[^%]+|%`},
	})

	labelParser = participle.MustBuild[LabelFormat](
		participle.Lexer(labelLexer),
	)
)

// LabelFormat 是候选序号模板，例如 "%s." 或 "%[①②③④⑤⑥⑦⑧⑨⑩]"。
type LabelFormat struct {
	Parts []*LabelPart `parser:"@@*"`
}

// LabelPart 是模板中的一段：转义的百分号、序号序列、指令或原样文字。
type LabelPart struct {
	Escape    bool    `parser:"  @Escape"`
	Marker    *string `parser:"| @Marker"`
	Directive *string `parser:"| @Directive"`
	Literal   *string `parser:"| @Literal"`
}

// Sequence 返回 %[...] 中的字符序列。
func (p *LabelPart) Sequence() []rune {
	if p == nil || p.Marker == nil {
		return nil
	}
	s := *p.Marker
	return []rune(s[2 : len(s)-1])
}

// Verb 返回指令字母（s/n/z/a/A），非指令返回 0。
func (p *LabelPart) Verb() byte {
	if p == nil || p.Directive == nil {
		return 0
	}
	return (*p.Directive)[1]
}

// ParseLabelFormat 解析序号模板。
func ParseLabelFormat(format string) (*LabelFormat, error) {
	return labelParser.ParseString("", format)
}
