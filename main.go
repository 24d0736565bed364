package main

import (
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/ByLCY/poster/config"
	"github.com/ByLCY/poster/fonts"
	"github.com/ByLCY/poster/layout"
	"github.com/ByLCY/poster/markup"
	"github.com/ByLCY/poster/renderer"
	canvasrenderer "github.com/ByLCY/poster/renderer/canvas"
)

// dirList 收集可重复的 -font-dir 参数。
type dirList []string

func (d *dirList) String() string { return strings.Join(*d, ",") }

func (d *dirList) Set(v string) error {
	*d = append(*d, v)
	return nil
}

func main() {
	def := config.Default()
	fs := flag.NewFlagSet(os.Args[0], flag.ExitOnError)
	configPath := fs.String("config", "", "YAML 配置文件路径（默认尝试 "+config.DefaultPath+"）")
	input := fs.String("in", "", "标记文本文件路径")
	output := fs.String("out", "output/poster.png", "输出图片路径（扩展名决定格式）")
	width := fs.Int("width", def.Width, "画布宽度（像素）")
	height := fs.Int("height", def.Height, "画布高度（像素）")
	padding := fs.Int("padding", def.Padding, "四周留白（像素）")
	background := fs.String("background", def.Background, "背景色（CSS 颜色）")
	debug := fs.String("debug", "", "布局调试 JSON 输出路径")
	defaultFamily := fs.String("default-family", "", "找不到字体时使用的默认字体族")
	builtin := fs.Bool("builtin-fonts", false, "注册内置 Go 字体")
	verbose := fs.Bool("v", false, "输出调试日志")
	var fontDirs dirList
	fs.Var(&fontDirs, "font-dir", "额外的字体目录（可重复）")
	fs.StringVar(input, "i", "", "-in 的简写")
	fs.StringVar(output, "o", "output/poster.png", "-out 的简写")
	_ = fs.Parse(os.Args[1:])

	level := slog.LevelWarn
	if *verbose {
		level = slog.LevelDebug
	}
	fonts.SetLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: level})))

	var cfg *config.Config
	var err error
	if *configPath != "" {
		cfg, err = config.Load(*configPath)
	} else {
		cfg, err = config.LoadOptional(config.DefaultPath)
	}
	if err != nil {
		log.Fatalf("加载配置失败: %v", err)
	}
	// 命令行显式给出的参数覆盖配置文件
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "in", "i":
			cfg.Input = *input
		case "out", "o":
			cfg.Output = *output
		case "width":
			cfg.Width = *width
		case "height":
			cfg.Height = *height
		case "padding":
			cfg.Padding = *padding
		case "background":
			cfg.Background = *background
		case "debug":
			cfg.Debug = *debug
		case "default-family":
			cfg.DefaultFamily = *defaultFamily
		case "builtin-fonts":
			cfg.BuiltinFonts = *builtin
		case "font-dir":
			cfg.FontDirs = append(cfg.FontDirs, fontDirs...)
		}
	})
	if cfg.Output == "" {
		cfg.Output = *output
	}
	if err := cfg.Validate(); err != nil {
		log.Fatalf("配置无效: %v", err)
	}

	format, err := canvasrenderer.FormatFromPath(cfg.Output)
	if err != nil {
		log.Fatalf("配置无效: %v", err)
	}

	var r renderer.Renderer = canvasrenderer.NewRenderer(format)
	if err := run(cfg, catalogFor(cfg), r); err != nil {
		log.Fatalf("生成海报失败: %v", err)
	}
	fmt.Printf("已生成海报：%s\n", cfg.Output)
}

// catalogFor 组合系统字体与可选的内置字体。
func catalogFor(cfg *config.Config) fonts.Catalog {
	catalogs := fonts.MultiCatalog{fonts.NewSystemCatalog(cfg.FontDirs...)}
	if cfg.BuiltinFonts {
		catalogs = append(catalogs, fonts.Builtin())
	}
	return catalogs
}

// run 串联解析、排版与渲染；只有渲染成功后才写出文件。
func run(cfg *config.Config, catalog fonts.Catalog, r renderer.Renderer) error {
	if r == nil {
		return fmt.Errorf("renderer 不能为空")
	}
	frame, err := cfg.Frame()
	if err != nil {
		return err
	}

	file, err := os.Open(cfg.Input)
	if err != nil {
		return fmt.Errorf("无法打开输入文件 %s: %w", cfg.Input, err)
	}
	defer file.Close()

	root, err := markup.Parse(file)
	if err != nil {
		return fmt.Errorf("解析标记失败: %w", err)
	}

	var opts []fonts.Option
	if cfg.DefaultFamily != "" {
		opts = append(opts, fonts.WithDefaultFamily(cfg.DefaultFamily))
	}
	resolver := fonts.NewResolver(catalog, opts...)
	defKey, err := resolver.DefaultKey()
	if err != nil {
		return err
	}
	fonts.Logger().Debug("default font", "key", defKey.String())

	content, err := layout.Build(root, layout.BuildOptions{
		Fonts: resolver,
		Style: layout.DefaultStyle(defKey),
		Vars:  cfg.Vars,
	})
	if err != nil {
		return fmt.Errorf("构建内容失败: %w", err)
	}

	page := layout.Compose(content, frame)
	data, err := r.Render(page)
	if err != nil {
		return fmt.Errorf("渲染失败: %w", err)
	}
	if cfg.Debug != "" {
		if err := layout.WriteDebugJSON(page, cfg.Debug); err != nil {
			return fmt.Errorf("输出调试 JSON 失败: %w", err)
		}
	}
	if err := os.MkdirAll(filepath.Dir(cfg.Output), 0o755); err != nil {
		return fmt.Errorf("创建输出目录失败: %w", err)
	}
	if err := os.WriteFile(cfg.Output, data, 0o644); err != nil {
		return fmt.Errorf("写入输出文件失败: %w", err)
	}
	return nil
}
