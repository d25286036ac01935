package panel

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
	_ "image/png"
	"io/fs"
	"os"
	"path/filepath"

	_ "golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"github.com/ByLCY/candwin/layout"
	"github.com/ByLCY/candwin/paint"
	"github.com/ByLCY/candwin/renderer"
	"github.com/ByLCY/candwin/style"
)

// IconVariant 标识状态图标的种类。
type IconVariant int

const (
	IconEnabled IconVariant = iota
	IconDisabled
	IconAscii
	IconFullShape
	IconHalfShape
)

var iconFileNames = map[IconVariant]string{
	IconEnabled:   "enabled",
	IconDisabled:  "disabled",
	IconAscii:     "ascii",
	IconFullShape: "full_shape",
	IconHalfShape: "half_shape",
}

func (v IconVariant) String() string {
	if name, ok := iconFileNames[v]; ok {
		return name
	}
	return "unknown"
}

// IconSet 提供各状态的图标，不存在时返回 nil。
type IconSet interface {
	Icon(v IconVariant) image.Image
}

// IconMap 是基于 map 的 IconSet。
type IconMap map[IconVariant]image.Image

func (m IconMap) Icon(v IconVariant) image.Image { return m[v] }

// iconVariant 根据输入法状态选择图标。
func iconVariant(state *layout.State) IconVariant {
	switch {
	case state.Status.Disabled:
		return IconDisabled
	case state.Aux.Str == tipFullShape:
		return IconFullShape
	case state.Aux.Str == tipHalfShape:
		return IconHalfShape
	case state.Status.AsciiMode:
		return IconAscii
	default:
		return IconEnabled
	}
}

// LoadIconDir 从目录读取 enabled/disabled/ascii/full_shape/half_shape 图标，
// 支持 .png 与 .bmp，缺少的文件跳过。
func LoadIconDir(dir string) (IconMap, error) {
	icons := IconMap{}
	for v, name := range iconFileNames {
		for _, ext := range []string{".png", ".bmp"} {
			img, err := decodeIcon(filepath.Join(dir, name+ext))
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			if err != nil {
				return nil, err
			}
			icons[v] = img
			break
		}
	}
	return icons, nil
}

func decodeIcon(path string) (image.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	img, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("解码图标 %s 失败: %w", path, err)
	}
	return img, nil
}

var defaultIconBadges = map[IconVariant]struct {
	text string
	back style.Color
}{
	IconEnabled:   {"Z", style.RGB(0x1e, 0x88, 0xe5)},
	IconDisabled:  {"×", style.RGB(0x75, 0x75, 0x75)},
	IconAscii:     {"A", style.RGB(0x43, 0xa0, 0x47)},
	IconFullShape: {"F", style.RGB(0xfb, 0x8c, 0x00)},
	IconHalfShape: {"H", style.RGB(0x8e, 0x24, 0xaa)},
}

// DefaultIcons 用给定的文字后端绘制简单的字母徽章作为图标。
func DefaultIcons(text renderer.Renderer) IconMap {
	icons := IconMap{}
	font := style.Font{Face: style.DefaultFontFace + ":bold", Point: 8}
	for v, badge := range defaultIconBadges {
		img := image.NewRGBA(image.Rect(0, 0, layout.StatusIconSize, layout.StatusIconSize))
		p := &paint.Painter{}
		p.Paint(img, img.Bounds(), badge.back, style.Color{}, image.Point{}, 4, paint.RoleBackground)
		if text != nil {
			size := text.MeasureText(badge.text, font)
			at := image.Pt((layout.StatusIconSize-size.W)/2, (layout.StatusIconSize-size.H)/2)
			text.DrawText(img, at, img.Bounds(), badge.text, font, style.RGB(0xff, 0xff, 0xff))
		}
		icons[v] = img
	}
	return icons
}

// drawIcon 把图标合成到 rect，尺寸不符时用 Catmull-Rom 缩放。
func drawIcon(dst *image.RGBA, rect image.Rectangle, icon image.Image) bool {
	if icon == nil || rect.Empty() {
		return false
	}
	b := icon.Bounds()
	if b.Dx() == rect.Dx() && b.Dy() == rect.Dy() {
		draw.Draw(dst, rect, icon, b.Min, draw.Over)
		return true
	}
	xdraw.CatmullRom.Scale(dst, rect, icon, b, xdraw.Over, nil)
	return true
}
