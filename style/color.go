package style

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/tdewolff/canvas"
)

// Color 采用 0-255 的 RGBA 数值（非预乘），实现 color.Color。
type Color struct {
	R uint8 `json:"r"`
	G uint8 `json:"g"`
	B uint8 `json:"b"`
	A uint8 `json:"a"`
}

// RGB 返回不透明颜色。
func RGB(r, g, b uint8) Color { return Color{R: r, G: g, B: b, A: 0xff} }

// RGBA 实现 color.Color，返回预乘后的 16 位分量。
func (c Color) RGBA() (r, g, b, a uint32) {
	a = uint32(c.A) * 0x101
	r = uint32(c.R) * 0x101 * a / 0xffff
	g = uint32(c.G) * 0x101 * a / 0xffff
	b = uint32(c.B) * 0x101 * a / 0xffff
	return
}

// Visible 报告颜色是否有非零的不透明度。
func (c Color) Visible() bool { return c.A != 0 }

func (c Color) String() string {
	return fmt.Sprintf("#%02x%02x%02x%02x", c.R, c.G, c.B, c.A)
}

// ParseColor 解析颜色值，支持：
//   - #rgb、#rrggbb、#rrggbbaa（CSS 顺序）
//   - 0xbbggrr、0xaabbggrr（输入法配色方案常用的 ABGR 顺序）
func ParseColor(value string) (Color, error) {
	value = strings.TrimSpace(value)
	switch {
	case strings.HasPrefix(value, "#"):
		return parseCSSColor(value[1:])
	case strings.HasPrefix(value, "0x"), strings.HasPrefix(value, "0X"):
		return parseABGR(value[2:])
	}
	return Color{}, fmt.Errorf("颜色值 %s 无法解析", value)
}

func parseCSSColor(hex string) (Color, error) {
	if len(hex) != 3 && len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("颜色值 #%s 长度不合法", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("颜色值 #%s 无法解析: %w", hex, err)
	}
	if len(hex) == 8 {
		// canvas.Hex 对带 alpha 的颜色返回预乘值，这里保留原始分量
		return Color{R: uint8(v >> 24), G: uint8(v >> 16), B: uint8(v >> 8), A: uint8(v)}, nil
	}
	c := canvas.Hex(hex)
	return RGB(c.R, c.G, c.B), nil
}

func parseABGR(hex string) (Color, error) {
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("颜色值 0x%s 长度不合法", hex)
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("颜色值 0x%s 无法解析: %w", hex, err)
	}
	c := Color{R: uint8(v), G: uint8(v >> 8), B: uint8(v >> 16), A: 0xff}
	if len(hex) == 8 {
		c.A = uint8(v >> 24)
	}
	return c, nil
}
