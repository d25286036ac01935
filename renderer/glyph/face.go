package glyph

import (
	"bytes"
	"fmt"

	gotext "github.com/go-text/typesetting/font"
	xfont "golang.org/x/image/font"
	"golang.org/x/image/font/sfnt"
	"golang.org/x/image/math/fixed"

	"github.com/ByLCY/candwin/fonts"
	"github.com/ByLCY/candwin/renderer"
)

// face 同时持有同一份字体数据的两种解析结果：
// go-text 用于整形，sfnt 用于读取轮廓与度量。
type face struct {
	name    string
	shape   *gotext.Face
	outline *sfnt.Font
}

func parseFace(name string, data []byte) (*face, error) {
	shape, err := gotext.ParseTTF(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("整形字体 %s 解析失败: %w", name, err)
	}
	outline, err := sfnt.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("轮廓字体 %s 解析失败: %w", name, err)
	}
	return &face{name: name, shape: shape, outline: outline}, nil
}

// lineMetrics 是一行文字在给定 ppem 下的纵向度量（像素，26.6 定点）。
type lineMetrics struct {
	ascent fixed.Int26_6
	height fixed.Int26_6
}

func (f *face) metrics(buf *sfnt.Buffer, ppem fixed.Int26_6) lineMetrics {
	m, err := f.outline.Metrics(buf, ppem, xfont.HintingNone)
	if err != nil {
		// 度量表缺失时按 1.2em 行高、0.9em 上升估算
		return lineMetrics{ascent: ppem * 9 / 10, height: ppem * 6 / 5}
	}
	h := m.Height
	if h < m.Ascent+m.Descent {
		h = m.Ascent + m.Descent
	}
	return lineMetrics{ascent: m.Ascent, height: h}
}

// lookupFace 从缓存取出或加载 face；加载失败时退回内置字体。调用方持有 r.mu。
func (r *Renderer) lookupFace(spec fonts.Face) *face {
	if f, ok := r.faces[spec]; ok {
		return f
	}
	f, err := r.loadFace(spec)
	if err != nil {
		renderer.Logger().Warn("glyph: 字体加载失败，使用后备字体", "face", spec.Name, "err", err)
		f = r.fallback
	}
	r.faces[spec] = f
	return f
}

func (r *Renderer) loadFace(spec fonts.Face) (*face, error) {
	data, err := r.fonts.Lookup(spec)
	if err != nil {
		return nil, err
	}
	return parseFace(spec.Name, data)
}
