package fonts

import (
	"fmt"
	"strings"

	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gomedium"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
)

// builtinFamily 按字重列出内置字体，按 Weight 升序排列。
type builtinFamily []struct {
	weight Weight
	data   []byte
}

var builtins = map[string]builtinFamily{
	"go": {
		{WeightNormal, goregular.TTF},
		{WeightMedium, gomedium.TTF},
		{WeightBold, gobold.TTF},
	},
	"go mono": {
		{WeightNormal, gomono.TTF},
		{WeightBold, gomonobold.TTF},
	},
	"go smallcaps": {
		{WeightNormal, gosmallcaps.TTF},
	},
}

// Load 返回内置字体的字节数据，name 可写为 "embed:Go" 或直接 "Go"。
// 找不到精确字重时返回最接近的一款。
func Load(name string, weight Weight) ([]byte, error) {
	key := strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "embed:")))
	family, ok := builtins[key]
	if !ok || len(family) == 0 {
		return nil, fmt.Errorf("读取内置字体 %s 失败: 未知字体", name)
	}
	best := family[0]
	for _, f := range family[1:] {
		if abs(int(f.weight-weight)) < abs(int(best.weight-weight)) {
			best = f
		}
	}
	return best.data, nil
}

// FallbackData 返回任何情况下都可用的内置常规字体。
func FallbackData() []byte { return goregular.TTF }

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}
