package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/ByLCY/poster/layout"
)

// 默认画布参数。
const (
	DefaultWidth      = 1920
	DefaultHeight     = 1080
	DefaultPadding    = 300
	DefaultBackground = "#FFFFFFFF"
)

// Config 是海报生成的全部可配置项，可由 YAML 文件与命令行共同给出。
type Config struct {
	Width         int            `yaml:"width"`
	Height        int            `yaml:"height"`
	Padding       int            `yaml:"padding"`
	Background    string         `yaml:"background"`
	Input         string         `yaml:"input,omitempty"`
	Output        string         `yaml:"output,omitempty"`
	Debug         string         `yaml:"debug,omitempty"`
	FontDirs      []string       `yaml:"font-dirs,omitempty"`
	DefaultFamily string         `yaml:"default-family,omitempty"`
	BuiltinFonts  bool           `yaml:"builtin-fonts,omitempty"`
	Vars          map[string]any `yaml:"vars,omitempty"`
}

// Default returns the configuration used when nothing else is given.
func Default() *Config {
	return &Config{
		Width:      DefaultWidth,
		Height:     DefaultHeight,
		Padding:    DefaultPadding,
		Background: DefaultBackground,
	}
}

// DefaultPath 是未指定 -config 时尝试读取的配置文件。
const DefaultPath = "poster.yaml"

// Load reads a YAML file on top of the defaults. The file must exist.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}
	return decode(path, data)
}

// LoadOptional is Load for a path nobody asked for explicitly: a missing
// file yields the defaults unchanged.
func LoadOptional(path string) (*Config, error) {
	if strings.TrimSpace(path) == "" {
		return Default(), nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
		return nil, fmt.Errorf("读取配置文件 %s 失败: %w", path, err)
	}
	return decode(path, data)
}

func decode(path string, data []byte) (*Config, error) {
	cfg := Default()
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return nil, fmt.Errorf("解析配置文件 %s 失败: %w", path, err)
	}
	return cfg, nil
}

// Validate 检查尺寸、留白与背景色。
func (c *Config) Validate() error {
	if c.Width <= 0 || c.Height <= 0 {
		return fmt.Errorf("画布尺寸必须为正数: %dx%d", c.Width, c.Height)
	}
	if c.Padding < 0 {
		return fmt.Errorf("留白不能为负数: %d", c.Padding)
	}
	if c.Padding*2 >= c.Width || c.Padding*2 >= c.Height {
		return fmt.Errorf("留白 %d 超出画布 %dx%d", c.Padding, c.Width, c.Height)
	}
	if _, err := c.BackgroundColor(); err != nil {
		return err
	}
	if strings.TrimSpace(c.Input) == "" {
		return errors.New("未指定输入文件")
	}
	if strings.TrimSpace(c.Output) == "" {
		return errors.New("未指定输出文件")
	}
	return nil
}

// BackgroundColor parses Background as a CSS color.
func (c *Config) BackgroundColor() (color.NRGBA, error) {
	bg, err := layout.ParseColor(c.Background)
	if err != nil {
		return color.NRGBA{}, fmt.Errorf("背景色 %q 无效: %w", c.Background, err)
	}
	return bg, nil
}

// Frame 返回排版使用的画布参数。
func (c *Config) Frame() (layout.Frame, error) {
	bg, err := c.BackgroundColor()
	if err != nil {
		return layout.Frame{}, err
	}
	return layout.Frame{Width: c.Width, Height: c.Height, Padding: c.Padding, Background: bg}, nil
}
