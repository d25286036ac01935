package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"image"
	"image/png"
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/ByLCY/candwin/fonts"
	"github.com/ByLCY/candwin/layout"
	"github.com/ByLCY/candwin/panel"
	canvasrenderer "github.com/ByLCY/candwin/renderer/canvas"
	"github.com/ByLCY/candwin/style"
)

type options struct {
	stylePath   string
	statePath   string
	outputPath  string
	debugPath   string
	outlinePath string
	iconDir     string
	fontDir     string
	dpi         float64
	dryRun      bool
	anchor      image.Point
	workArea    image.Rectangle
}

func main() {
	var opts options
	flag.StringVar(&opts.stylePath, "style", "", "样式表文件路径")
	flag.StringVar(&opts.statePath, "state", "", "组字状态 JSON 文件路径")
	flag.StringVar(&opts.outputPath, "out", "output/candidates.png", "PNG 输出路径")
	flag.StringVar(&opts.debugPath, "debug", "", "布局调试 JSON 输出路径")
	flag.StringVar(&opts.outlinePath, "outline", "", "布局线框 PDF 输出路径")
	flag.StringVar(&opts.iconDir, "icons", "", "状态图标目录")
	flag.StringVar(&opts.fontDir, "font-dir", "", "相对字体路径的根目录")
	flag.Float64Var(&opts.dpi, "dpi", layout.DefaultDPI, "屏幕 DPI")
	flag.BoolVar(&opts.dryRun, "dry-run", false, "不加载字体，按估算尺寸只输出布局 JSON")
	verbose := flag.Bool("v", false, "输出调试日志")
	anchor := flag.String("anchor", "200,200", "光标位置 x,y")
	workArea := flag.String("workarea", "1920x1080", "工作区尺寸 WxH")
	flag.Parse()

	if *verbose {
		panel.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelDebug})))
	}
	if _, err := fmt.Sscanf(*anchor, "%d,%d", &opts.anchor.X, &opts.anchor.Y); err != nil {
		log.Fatalf("解析 -anchor 失败: %v", err)
	}
	var w, h int
	if _, err := fmt.Sscanf(*workArea, "%dx%d", &w, &h); err != nil {
		log.Fatalf("解析 -workarea 失败: %v", err)
	}
	opts.workArea = image.Rect(0, 0, w, h)

	if err := run(opts); err != nil {
		log.Fatalf("生成候选窗失败: %v", err)
	}
}

// run 串联样式加载、排版、绘制与输出。
func run(opts options) error {
	st, err := loadStyle(opts.stylePath)
	if err != nil {
		return err
	}
	state, err := loadState(opts.statePath)
	if err != nil {
		return err
	}

	if opts.dryRun {
		res := layout.New(st, state, layout.Options{WorkArea: opts.workArea}).Compute(layout.EstimateMeasurer{DPI: opts.dpi})
		if opts.debugPath == "" {
			return layout.EncodeDebugJSON(os.Stdout, res)
		}
		return writeDebug(res, opts.debugPath)
	}

	reg := fonts.NewRegistry(opts.fontDir)
	var icons panel.IconSet
	if opts.iconDir != "" {
		m, err := panel.LoadIconDir(opts.iconDir)
		if err != nil {
			return fmt.Errorf("加载图标失败: %w", err)
		}
		icons = m
	}

	win := panel.NewHeadlessWindow()
	p := panel.New(win, panel.StaticMonitors{opts.workArea}, icons, panel.WithDPI(opts.dpi), panel.WithFonts(reg))
	p.SetStyle(st)
	p.SetState(state)
	p.MoveTo(image.Rectangle{Min: opts.anchor, Max: opts.anchor.Add(image.Pt(1, 16))})
	p.Refresh()

	res := p.Layout()
	frame := win.Frame()
	if res == nil || frame == nil || !win.Visible() {
		return fmt.Errorf("候选窗被隐藏，没有可输出的内容")
	}

	if opts.debugPath != "" {
		if err := writeDebug(res, opts.debugPath); err != nil {
			return err
		}
	}
	if opts.outlinePath != "" {
		if err := writeOutline(res, st, state, opts); err != nil {
			return err
		}
	}
	if err := writePNG(frame, opts.outputPath); err != nil {
		return err
	}
	fmt.Printf("已生成候选窗：%s（%dx%d，位于 %v）\n", opts.outputPath, res.Size.W, res.Size.H, win.Bounds().Min)
	return nil
}

func loadStyle(path string) (style.Style, error) {
	st := style.Default()
	if path == "" {
		return st, nil
	}
	file, err := os.Open(path)
	if err != nil {
		return st, fmt.Errorf("无法打开样式文件 %s: %w", path, err)
	}
	defer file.Close()
	st, err = style.Load(file, st)
	if err != nil {
		return st, fmt.Errorf("解析样式失败: %w", err)
	}
	return st, nil
}

func loadState(path string) (*layout.State, error) {
	if path == "" {
		return demoState(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("无法读取状态文件 %s: %w", path, err)
	}
	var state layout.State
	if err := json.Unmarshal(data, &state); err != nil {
		return nil, fmt.Errorf("解析状态 JSON 失败: %w", err)
	}
	return &state, nil
}

func demoState() *layout.State {
	return &layout.State{
		Preedit: layout.Text{Str: "ni hao", Highlight: layout.Range{Start: 3, End: 6}},
		Candidates: []layout.Candidate{
			{Text: "你好"},
			{Text: "拟好"},
			{Text: "你", Comment: "ni"},
		},
		Status: layout.Status{Composing: true},
	}
}

func writeDebug(res *layout.Result, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	if err := layout.WriteDebugJSON(res, path); err != nil {
		return fmt.Errorf("输出调试 JSON 失败: %w", err)
	}
	return nil
}

func writeOutline(res *layout.Result, st style.Style, state *layout.State, opts options) error {
	r, err := canvasrenderer.New(canvasrenderer.Options{DPI: opts.dpi, Fonts: fonts.NewRegistry(opts.fontDir)})
	if err != nil {
		return err
	}
	data, err := r.Outline(res, st, state)
	if err != nil {
		return fmt.Errorf("生成线框失败: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(opts.outlinePath), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(opts.outlinePath, data, 0o644); err != nil {
		return fmt.Errorf("写入 PDF 文件失败: %w", err)
	}
	return nil
}

func writePNG(frame *image.RGBA, path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	file, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("创建 PNG 文件失败: %w", err)
	}
	defer file.Close()
	if err := png.Encode(file, frame); err != nil {
		return fmt.Errorf("写入 PNG 失败: %w", err)
	}
	return nil
}
