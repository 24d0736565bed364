package layout

import (
	"fmt"
	"image/color"
	"math"

	"github.com/alecthomas/participle/v2/lexer"
	"github.com/mazznoer/csscolorparser"

	"github.com/ByLCY/poster/fonts"
	"github.com/ByLCY/poster/markup"
)

// DefaultFontSize 是未指定 size 时的字号（像素）。
const DefaultFontSize = 120

// Style 是沿标记树向下继承的样式上下文，按值传递，子树修改不会影响兄弟节点。
type Style struct {
	FontSize   float64
	Color      color.NRGBA
	Background color.NRGBA
	Font       fonts.Key
	Align      Alignment
}

// DefaultStyle 返回根样式：黑色文字、白色背景、默认字号。
func DefaultStyle(font fonts.Key) Style {
	return Style{
		FontSize:   DefaultFontSize,
		Color:      color.NRGBA{A: 0xff},
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		Font:       font,
	}
}

// AttributeError 表示属性值无法按期望类型解析。
type AttributeError struct {
	Attr     string
	Expected string
	Value    string
	Pos      lexer.Position
}

func (e *AttributeError) Error() string {
	return fmt.Sprintf("%s: invalid %s %q, %s expected", e.Pos, e.Attr, e.Value, e.Expected)
}

// ParseColor 解析 CSS 颜色语法（#rgb、#rrggbbaa、rgb()、颜色名等）。
func ParseColor(value string) (color.NRGBA, error) {
	c, err := csscolorparser.Parse(value)
	if err != nil {
		return color.NRGBA{}, err
	}
	r, g, b, a := c.RGBA255()
	return color.NRGBA{R: r, G: g, B: b, A: a}, nil
}

// withFont 应用 <font> 的属性；未给出的属性保持继承值。
func (s Style) withFont(n *markup.Node) (Style, error) {
	if v, ok := n.Attr("size"); ok {
		l, err := ParseLength(v)
		if err != nil || !(l.Value > 0) || math.IsInf(l.Value, 0) {
			return s, &AttributeError{Attr: "size", Expected: "positive number", Value: v, Pos: n.Pos}
		}
		s.FontSize = l.ToPX()
	}
	for _, attr := range []struct {
		name string
		dst  *color.NRGBA
	}{{"color", &s.Color}, {"background", &s.Background}} {
		v, ok := n.Attr(attr.name)
		if !ok {
			continue
		}
		c, err := ParseColor(v)
		if err != nil {
			return s, &AttributeError{Attr: attr.name, Expected: "CSS color", Value: v, Pos: n.Pos}
		}
		*attr.dst = c
	}
	if v, ok := n.Attr("family"); ok {
		s.Font.Family = v
	}
	if v, ok := n.Attr("weight"); ok {
		s.Font.Weight = fonts.ParseWeight(v)
	}
	if v, ok := n.Attr("style"); ok {
		s.Font.Style = fonts.ParseStyle(v)
	}
	return s, nil
}
