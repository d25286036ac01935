package dsl

import (
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	faceLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Param", Pattern: `:[^:,]*`},
		{Name: "Name", Pattern: `[^:,]+`},
		{Name: "Comma", Pattern: `,`},
	})

	faceParser = participle.MustBuild[FaceList](
		participle.Lexer(faceLexer),
	)
)

// FaceList 是字体描述串 "主字体[:字重], 后备字体[:起始[:结束]], ..."。
// 空的后备项被跳过。
type FaceList struct {
	Main      *FaceEntry   `parser:"@@?"`
	Fallbacks []*FaceEntry `parser:"( Comma @@? )*"`
}

// FaceEntry 是一个字体名及其冒号分隔的参数。
type FaceEntry struct {
	Name   string   `parser:"( @Name"`
	Params []string `parser:"  @Param* | @Param+ )"`
}

// Family 返回去掉首尾空白的字体名。
func (e *FaceEntry) Family() string {
	if e == nil {
		return ""
	}
	return strings.TrimSpace(e.Name)
}

// Param 返回第 i 个参数（不含冒号），不存在时返回空串。
func (e *FaceEntry) Param(i int) string {
	if e == nil || i < 0 || i >= len(e.Params) {
		return ""
	}
	return strings.TrimSpace(strings.TrimPrefix(e.Params[i], ":"))
}

// ParseFaceList 解析字体描述串。
func ParseFaceList(s string) (*FaceList, error) {
	return faceParser.ParseString("", s)
}
