package layout

import "math"

// Conversion constants between pt and mm.
const (
	PtToMm = 0.352777
	MmToPt = 1.0 / PtToMm
)

// DefaultDPI 是未指定 DPI 时使用的屏幕分辨率。
const DefaultDPI = 96

// PointToPixel 把字号（pt）换算为像素。dpi <= 0 时按 DefaultDPI 计算。
func PointToPixel(point, dpi float64) float64 {
	if dpi <= 0 {
		dpi = DefaultDPI
	}
	return point * dpi / 72
}

// ScaleInt 按 DPI 缩放以 96 DPI 为基准的整数像素值（四舍五入）。
func ScaleInt(v int, dpi float64) int {
	if dpi <= 0 || dpi == DefaultDPI {
		return v
	}
	return int(math.Round(float64(v) * dpi / DefaultDPI))
}
