package fonts

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// Registry 保存调用方注入的字体数据，并按名称解析字体：
// 注入的数据优先，其次是内置字体，最后是相对 baseDir 的字体文件路径。
// 零值可用；nil 的 *Registry 只解析内置字体。
type Registry struct {
	baseDir string

	mu    sync.RWMutex
	blobs map[string][]registered
	files map[string][]byte
}

type registered struct {
	weight Weight
	data   []byte
}

// NewRegistry 创建以 baseDir 为字体文件根目录的 Registry。
func NewRegistry(baseDir string) *Registry {
	return &Registry{baseDir: baseDir}
}

// Register 注入一款字体的数据。同名同字重时后注册的覆盖先注册的。
func (r *Registry) Register(name string, weight Weight, data []byte) {
	if r == nil || name == "" || len(data) == 0 {
		return
	}
	key := strings.ToLower(name)
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.blobs == nil {
		r.blobs = map[string][]registered{}
	}
	list := r.blobs[key]
	for i := range list {
		if list[i].weight == weight {
			list[i].data = data
			return
		}
	}
	r.blobs[key] = append(list, registered{weight: weight, data: data})
}

// Lookup 返回 face 对应的字体数据。
func (r *Registry) Lookup(face Face) ([]byte, error) {
	if face.Name == "" {
		return nil, fmt.Errorf("字体名称为空")
	}
	if data, ok := r.registered(face); ok {
		return data, nil
	}
	if data, err := Load(face.Name, face.Weight); err == nil {
		return data, nil
	}
	if isFontPath(face.Name) {
		return r.readFile(face.Name)
	}
	return nil, fmt.Errorf("字体 %s 未找到", face.Name)
}

func (r *Registry) registered(face Face) ([]byte, bool) {
	if r == nil {
		return nil, false
	}
	r.mu.RLock()
	defer r.mu.RUnlock()
	list := r.blobs[strings.ToLower(face.Name)]
	if len(list) == 0 {
		return nil, false
	}
	best := list[0]
	for _, c := range list[1:] {
		if abs(int(c.weight-face.Weight)) < abs(int(best.weight-face.Weight)) {
			best = c
		}
	}
	return best.data, true
}

func (r *Registry) readFile(name string) ([]byte, error) {
	path := name
	if !filepath.IsAbs(path) {
		if r == nil || r.baseDir == "" {
			return nil, fmt.Errorf("未指定资源目录时不允许使用相对字体路径：%s", name)
		}
		path = filepath.Join(r.baseDir, path)
	}
	if r == nil {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("读取字体文件 %s 失败: %w", path, err)
		}
		return data, nil
	}
	r.mu.RLock()
	data, ok := r.files[path]
	r.mu.RUnlock()
	if ok {
		return data, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取字体文件 %s 失败: %w", path, err)
	}
	r.mu.Lock()
	if r.files == nil {
		r.files = map[string][]byte{}
	}
	r.files[path] = data
	r.mu.Unlock()
	return data, nil
}

func isFontPath(name string) bool {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".ttf", ".otf", ".ttc", ".otc":
		return true
	}
	return false
}
