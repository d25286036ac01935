package paint

import "github.com/tdewolff/canvas"

// kappa 是用三次贝塞尔逼近四分之一圆时控制点的比例。
const kappa = 0.5522847498

// Corners 标记矩形的哪些角需要做圆角。
type Corners struct {
	TopLeft, TopRight, BottomRight, BottomLeft bool
}

// AllCorners 四个角全部为圆角。
var AllCorners = Corners{true, true, true, true}

// None 报告是否没有任何角需要圆角。
func (c Corners) None() bool {
	return !c.TopLeft && !c.TopRight && !c.BottomRight && !c.BottomLeft
}

// RoundedRect 构造宽 w、高 h 的矩形路径，c 中标记的角使用半径 r 的圆角。
// 路径以 y 轴向上的坐标系构造，原点为左下角，视觉上的上边位于 y=h。
// 半径超过短边一半时按一半处理；w 或 h 不为正时返回 nil。
func RoundedRect(w, h, r float64, c Corners) *canvas.Path {
	if w <= 0 || h <= 0 {
		return nil
	}
	r = min(max(r, 0), min(w, h)/2)
	if r == 0 || c.None() {
		return canvas.Rectangle(w, h)
	}
	k := r * kappa
	p := &canvas.Path{}

	// 从左下角出发，逆时针绕行：下边、右边、上边、左边
	if c.BottomLeft {
		p.MoveTo(r, 0)
	} else {
		p.MoveTo(0, 0)
	}
	if c.BottomRight {
		p.LineTo(w-r, 0)
		p.CubeTo(w-r+k, 0, w, r-k, w, r)
	} else {
		p.LineTo(w, 0)
	}
	if c.TopRight {
		p.LineTo(w, h-r)
		p.CubeTo(w, h-r+k, w-r+k, h, w-r, h)
	} else {
		p.LineTo(w, h)
	}
	if c.TopLeft {
		p.LineTo(r, h)
		p.CubeTo(r-k, h, 0, h-r+k, 0, h-r)
	} else {
		p.LineTo(0, h)
	}
	if c.BottomLeft {
		p.LineTo(0, r)
		p.CubeTo(0, r-k, r-k, 0, r, 0)
	}
	p.Close()
	return p
}
