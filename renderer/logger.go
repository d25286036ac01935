package renderer

import (
	"context"
	"log/slog"
	"sync/atomic"
)

// nopHandler 丢弃全部日志；Enabled 返回 false，调用方不会格式化消息。
type nopHandler struct{}

func (nopHandler) Enabled(context.Context, slog.Level) bool  { return false }
func (nopHandler) Handle(context.Context, slog.Record) error { return nil }
func (nopHandler) WithAttrs([]slog.Attr) slog.Handler        { return nopHandler{} }
func (nopHandler) WithGroup(string) slog.Handler             { return nopHandler{} }

func newNopLogger() *slog.Logger { return slog.New(nopHandler{}) }

var loggerPtr atomic.Pointer[slog.Logger]

func init() {
	loggerPtr.Store(newNopLogger())
}

// SetLogger 设置候选窗各组件共用的日志器，默认不输出任何日志。
// 传入 nil 恢复静默。
//
// 使用的级别：
//   - [slog.LevelDebug]: 布局尺寸、资源重建
//   - [slog.LevelWarn]: 后端降级（字体缺失、彩色后端不可用、整形失败）
func SetLogger(l *slog.Logger) {
	if l == nil {
		l = newNopLogger()
	}
	loggerPtr.Store(l)
}

// Logger 返回当前日志器。各子包通过它共享同一配置，避免循环依赖。
func Logger() *slog.Logger {
	return loggerPtr.Load()
}
