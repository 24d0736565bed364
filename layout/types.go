package layout

// 该文件定义文本片段（Run）、行（Line）与内容（Content）模型，供解析、布局与绘制共用。

import (
	"fmt"
	"image/color"
	"math"
	"strings"

	"github.com/ByLCY/poster/fonts"
)

// Alignment 是文本片段在行内的水平对齐方式；AlignAuto 表示未显式指定。
type Alignment int

const (
	AlignAuto Alignment = iota
	AlignLeft
	AlignCenter
	AlignRight
)

func (a Alignment) String() string {
	switch a {
	case AlignLeft:
		return "left"
	case AlignCenter:
		return "center"
	case AlignRight:
		return "right"
	default:
		return "auto"
	}
}

// MarshalText 让调试 JSON 输出可读的对齐名称。
func (a Alignment) MarshalText() ([]byte, error) { return []byte(a.String()), nil }

// Rect 以像素为单位，Left/Top 可以为负（内容高于画布时）。
type Rect struct {
	Left   int `json:"left"`
	Top    int `json:"top"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Run 是一段样式一致的连续文本。
// Face 在解析阶段写入，Size 与绘制之前必须已经就绪。
type Run struct {
	Content    string
	FontSize   float64
	Color      color.NRGBA
	Background color.NRGBA
	FontKey    fonts.Key
	Face       fonts.Face
	LineIndex  int // 从 1 开始，仅用于默认对齐
	Alignment  Alignment
}

// Align 返回生效的对齐方式：显式指定优先；否则第一行靠左，其余行靠右。
func (r *Run) Align() Alignment {
	if r.Alignment != AlignAuto {
		return r.Alignment
	}
	if r.LineIndex == 1 {
		return AlignLeft
	}
	return AlignRight
}

// Size 返回片段的像素宽高。末尾的单个空格会被替换为 '0' 再测量，
// 否则尾随空白宽度为零，预留的间距会消失。
func (r *Run) Size() (width, height int) {
	text := r.Content
	if strings.HasSuffix(text, " ") {
		text = strings.TrimSuffix(text, " ") + "0"
	}
	w := r.Face.TextWidth(text, r.FontSize)
	m := r.Face.Metrics(r.FontSize)
	return int(math.Ceil(w)), int(math.Ceil(m.Ascent + m.Descent))
}

// Ascent 返回当前字号下字体的上升高度（像素）。
func (r *Run) Ascent() float64 {
	return r.Face.Metrics(r.FontSize).Ascent
}

func (r *Run) String() string {
	return fmt.Sprintf("%q@%d(%s)", r.Content, r.LineIndex, r.Align())
}

// Line 是按文档顺序排列的一组 Run。
type Line struct {
	Runs      []*Run
	maxHeight int
}

// Push 追加一个片段，并单调更新行内最大片段高度。
func (l *Line) Push(r *Run) {
	if _, h := r.Size(); h > l.maxHeight {
		l.maxHeight = h
	}
	l.Runs = append(l.Runs, r)
}

// IsEmpty 表示该行没有任何片段；空行在布局时被跳过。
func (l *Line) IsEmpty() bool { return len(l.Runs) == 0 }

// MaxRunHeight 返回已加入片段的最大高度。
func (l *Line) MaxRunHeight() int { return l.maxHeight }

// Height 返回按行距系数缩放后的行高（四舍五入）。
func (l *Line) Height(spacing float64) int {
	return int(float64(l.maxHeight)*spacing + 0.5)
}

// Content 是解析结果，至少包含一行（可能为空行）。
type Content struct {
	Lines []*Line
}

// NewContent 返回只有一个空行的内容。
func NewContent() *Content {
	return &Content{Lines: []*Line{{}}}
}

// NewLine 结束当前行并开始新的一行。
func (c *Content) NewLine() {
	c.Lines = append(c.Lines, &Line{})
}

// LineSize 返回行数（包含空行）。
func (c *Content) LineSize() int { return len(c.Lines) }

// Push 把片段追加到最后一行。
func (c *Content) Push(r *Run) {
	if len(c.Lines) == 0 {
		c.NewLine()
	}
	c.Lines[len(c.Lines)-1].Push(r)
}

// Height 返回所有行在给定行距下的总高度；空行高度为零。
func (c *Content) Height(spacing float64) int {
	total := 0
	for _, line := range c.Lines {
		total += line.Height(spacing)
	}
	return total
}
