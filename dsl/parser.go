package dsl

import (
	"fmt"
	"io"
	"strconv"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

var (
	sheetLexer = lexer.MustSimple([]lexer.SimpleRule{
		{Name: "Whitespace", Pattern: `[ \t\r]+`},
		{Name: "Newline", Pattern: `\n+`},
		{Name: "BlockComment", Pattern: `/\*[^*]*\*+(?:[^/*][^*]*\*+)*/`},
		{Name: "LineComment", Pattern: `//[^\n]*`},
		{Name: "Color", Pattern: `#(?:[0-9A-Fa-f]{8}|[0-9A-Fa-f]{6}|[0-9A-Fa-f]{3})`},
		{Name: "Hex", Pattern: `0[xX][0-9A-Fa-f]+`},
		{Name: "Number", Pattern: `-?\d+`},
		{Name: "String", Pattern: `"(?:\\.|[^"])*"`},
		{Name: "Ident", Pattern: `[A-Za-z_][A-Za-z0-9_-]*`},
		{Name: "Symbol", Pattern: `[:;,]`},
		{Name: "LBrace", Pattern: `{`},
		{Name: "RBrace", Pattern: `}`},
	})

	sheetParser = participle.MustBuild[StyleSheet](
		participle.Lexer(sheetLexer),
		participle.Elide("Whitespace", "LineComment", "BlockComment"),
	)
)

// StyleSheet 是样式文件的根节点，由若干具名块组成。
type StyleSheet struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Blocks []*Block       `parser:"Newline* ( @@ Newline* )*"`
}

// Block 例如 `style { ... }`。
type Block struct {
	Pos     lexer.Position `parser:"" json:"-"`
	Name    string         `parser:"@Ident"`
	Entries []*Assignment  `parser:"'{' Newline* ( @@ ( ';' | Newline )* )* '}'"`
}

// Assignment 使用冒号语法（key: value...），多个值以空白或逗号分隔。
type Assignment struct {
	Pos    lexer.Position `parser:"" json:"-"`
	Key    string         `parser:"@Ident ':'"`
	Values []*Value       `parser:"( @@ ','? )+"`
}

// Value 是单个取值。
type Value struct {
	String *StringLiteral `parser:"  @String"`
	Color  *string        `parser:"| @Color"`
	Hex    *string        `parser:"| @Hex"`
	Number *int           `parser:"| @Number"`
	Ident  *string        `parser:"| @Ident"`
}

// Raw 返回取值的文本形式，字符串已去掉引号。
func (v *Value) Raw() string {
	switch {
	case v == nil:
		return ""
	case v.String != nil:
		return string(*v.String)
	case v.Color != nil:
		return *v.Color
	case v.Hex != nil:
		return *v.Hex
	case v.Number != nil:
		return strconv.Itoa(*v.Number)
	case v.Ident != nil:
		return *v.Ident
	}
	return ""
}

// Int 返回整数取值。
func (v *Value) Int() (int, error) {
	if v == nil || v.Number == nil {
		return 0, fmt.Errorf("需要整数，得到 %q", v.Raw())
	}
	return *v.Number, nil
}

// Bool 接受 true/false、yes/no 与 0/1。
func (v *Value) Bool() (bool, error) {
	switch v.Raw() {
	case "true", "yes", "1":
		return true, nil
	case "false", "no", "0":
		return false, nil
	}
	return false, fmt.Errorf("需要布尔值，得到 %q", v.Raw())
}

// StringLiteral unquotes Go-style strings on capture.
type StringLiteral string

// Capture implements participle.Capture.
func (s *StringLiteral) Capture(values []string) error {
	if len(values) == 0 {
		return fmt.Errorf("string literal capture requires value")
	}
	val, err := strconv.Unquote(values[0])
	if err != nil {
		return err
	}
	*s = StringLiteral(val)
	return nil
}

// Parse parses a style sheet from an io.Reader.
func Parse(r io.Reader) (*StyleSheet, error) {
	return sheetParser.Parse("", r)
}

// ParseString parses a style sheet from a string.
func ParseString(input string) (*StyleSheet, error) {
	return sheetParser.ParseString("", input)
}
