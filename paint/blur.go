package paint

import (
	"image"
	"math"
	"sync"
)

// gaussPasses 是逼近高斯模糊所用的均值模糊次数。
const gaussPasses = 3

// BoxesForGauss 返回用 n 次均值模糊逼近标准差为 sigma 的高斯模糊时，
// 每次所用的窗口宽度（均为奇数）。
func BoxesForGauss(sigma float64, n int) []int {
	sizes := make([]int, n)
	if sigma <= 0 {
		for i := range sizes {
			sizes[i] = 1
		}
		return sizes
	}
	ideal := math.Sqrt(12*sigma*sigma/float64(n) + 1)
	wl := int(math.Floor(ideal))
	if wl%2 == 0 {
		wl--
	}
	wu := wl + 2
	mIdeal := (12*sigma*sigma - float64(n*wl*wl) - float64(4*n*wl) - float64(3*n)) / float64(-4*wl-4)
	m := int(math.Round(mIdeal))
	for i := range sizes {
		if i < m {
			sizes[i] = wl
		} else {
			sizes[i] = wu
		}
	}
	return sizes
}

// Blur 原地模糊 img（预乘 RGBA），以 radiusX/radiusY 作为两个方向的标准差。
// 半径会被限制在图像宽/高的一半以内；两个半径都为零时不做任何事。
// 边缘像素向外延展。
func Blur(img *image.RGBA, radiusX, radiusY int) {
	if img == nil || (radiusX <= 0 && radiusY <= 0) {
		return
	}
	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	if w == 0 || h == 0 {
		return
	}
	radiusX = min(max(radiusX, 0), w/2)
	radiusY = min(max(radiusY, 0), h/2)
	boxesX := BoxesForGauss(float64(radiusX), gaussPasses)
	boxesY := BoxesForGauss(float64(radiusY), gaussPasses)

	line := getLineBuffer(max(w, h) * 4)
	defer putLineBuffer(line)

	for i := 0; i < gaussPasses; i++ {
		if r := (boxesX[i] - 1) / 2; r > 0 {
			boxBlurH(img, line, r)
		}
		if r := (boxesY[i] - 1) / 2; r > 0 {
			boxBlurV(img, line, r)
		}
	}
}

func boxBlurH(img *image.RGBA, line []uint8, r int) {
	b := img.Bounds()
	w := b.Dx()
	src := line[:w*4]
	for y := b.Min.Y; y < b.Max.Y; y++ {
		row := img.Pix[img.PixOffset(b.Min.X, y):]
		copy(src, row[:w*4])
		blurLine(row, 4, src, w, r)
	}
}

func boxBlurV(img *image.RGBA, line []uint8, r int) {
	b := img.Bounds()
	h := b.Dy()
	src := line[:h*4]
	for x := b.Min.X; x < b.Max.X; x++ {
		col := img.Pix[img.PixOffset(x, b.Min.Y):]
		for y := 0; y < h; y++ {
			copy(src[y*4:y*4+4], col[y*img.Stride:y*img.Stride+4])
		}
		blurLine(col, img.Stride, src, h, r)
	}
}

// blurLine 对连续存放的 n 个像素 src 做半径 r 的滑动窗口平均，
// 第 i 个结果写到 dst[i*step:]。四个通道各自累加。
func blurLine(dst []uint8, step int, src []uint8, n, r int) {
	div := uint32(2*r + 1)
	half := div / 2
	var sr, sg, sb, sa uint32
	for k := -r; k <= r; k++ {
		p := clampIndex(k, n) * 4
		sr += uint32(src[p])
		sg += uint32(src[p+1])
		sb += uint32(src[p+2])
		sa += uint32(src[p+3])
	}
	for i := 0; i < n; i++ {
		d := i * step
		dst[d] = uint8((sr + half) / div)
		dst[d+1] = uint8((sg + half) / div)
		dst[d+2] = uint8((sb + half) / div)
		dst[d+3] = uint8((sa + half) / div)

		out := clampIndex(i-r, n) * 4
		in := clampIndex(i+r+1, n) * 4
		sr = sr - uint32(src[out]) + uint32(src[in])
		sg = sg - uint32(src[out+1]) + uint32(src[in+1])
		sb = sb - uint32(src[out+2]) + uint32(src[in+2])
		sa = sa - uint32(src[out+3]) + uint32(src[in+3])
	}
}

func clampIndex(i, n int) int {
	if i < 0 {
		return 0
	}
	if i >= n {
		return n - 1
	}
	return i
}

// lineBuffer wraps a slice for sync.Pool to avoid allocation warnings.
type lineBuffer struct {
	data []uint8
}

var lineBufferPool = sync.Pool{
	New: func() any {
		return &lineBuffer{data: make([]uint8, 4096*4)}
	},
}

func getLineBuffer(size int) []uint8 {
	wrapper := lineBufferPool.Get().(*lineBuffer)
	if len(wrapper.data) < size {
		lineBufferPool.Put(wrapper)
		return make([]uint8, size)
	}
	return wrapper.data[:size]
}

func putLineBuffer(buf []uint8) {
	lineBufferPool.Put(&lineBuffer{data: buf[:cap(buf)]})
}
