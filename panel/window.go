package panel

import (
	"image"
	"sync"
)

// Window 是承载候选窗的平台窗口。Present 把整帧连同逐像素 alpha 一次性呈现。
type Window interface {
	Bounds() image.Rectangle
	SetBounds(r image.Rectangle)
	Present(frame *image.RGBA)
	Show()
	Hide()
}

// Monitors 查询某个屏幕坐标所在显示器的工作区。
type Monitors interface {
	WorkArea(pt image.Point) image.Rectangle
}

// HeadlessWindow 是内存中的 Window 实现，保存最近一次呈现的帧。
type HeadlessWindow struct {
	mu       sync.Mutex
	bounds   image.Rectangle
	frame    *image.RGBA
	visible  bool
	presents int
}

// NewHeadlessWindow 创建一个初始隐藏的内存窗口。
func NewHeadlessWindow() *HeadlessWindow {
	return &HeadlessWindow{}
}

func (w *HeadlessWindow) Bounds() image.Rectangle {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.bounds
}

func (w *HeadlessWindow) SetBounds(r image.Rectangle) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.bounds = r
}

func (w *HeadlessWindow) Present(frame *image.RGBA) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.frame = frame
	w.presents++
}

func (w *HeadlessWindow) Show() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = true
}

func (w *HeadlessWindow) Hide() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.visible = false
}

// Frame 返回最近一次呈现的帧，尚未呈现时为 nil。
func (w *HeadlessWindow) Frame() *image.RGBA {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.frame
}

// Visible 报告窗口当前是否显示。
func (w *HeadlessWindow) Visible() bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.visible
}

// Presents 返回累计呈现次数。
func (w *HeadlessWindow) Presents() int {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.presents
}

// StaticMonitors 是固定的工作区列表。
type StaticMonitors []image.Rectangle

// WorkArea 返回包含 pt 的工作区；都不包含时返回离 pt 最近的一个。
func (m StaticMonitors) WorkArea(pt image.Point) image.Rectangle {
	var best image.Rectangle
	bestDist := -1
	for _, area := range m {
		if pt.In(area) {
			return area
		}
		if d := distance(pt, area); bestDist < 0 || d < bestDist {
			best, bestDist = area, d
		}
	}
	return best
}

// distance 返回 pt 到矩形的平方距离。
func distance(pt image.Point, r image.Rectangle) int {
	dx, dy := 0, 0
	switch {
	case pt.X < r.Min.X:
		dx = r.Min.X - pt.X
	case pt.X >= r.Max.X:
		dx = pt.X - r.Max.X + 1
	}
	switch {
	case pt.Y < r.Min.Y:
		dy = r.Min.Y - pt.Y
	case pt.Y >= r.Max.Y:
		dy = pt.Y - r.Max.Y + 1
	}
	return dx*dx + dy*dy
}
