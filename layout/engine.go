package layout

import (
	"image/color"
	"math"
)

// LineSpacing 是行与行之间的行距系数。
const LineSpacing = 1.5

// Frame 描述输出画布：尺寸、四周留白与背景色。
type Frame struct {
	Width      int
	Height     int
	Padding    int
	Background color.NRGBA
}

// ContentRect 返回去掉四周留白后的内容区域。
func (f Frame) ContentRect() Rect {
	return Rect{
		Left:   f.Padding,
		Top:    f.Padding,
		Width:  f.Width - 2*f.Padding,
		Height: f.Height - 2*f.Padding,
	}
}

// Page 是可以直接绘制的排版结果。
type Page struct {
	Width      int         `json:"width"`
	Height     int         `json:"height"`
	Background color.NRGBA `json:"background"`
	Lines      []LineBox   `json:"lines"`
}

// LineBox 是一行的绘制区域，Runs 按绘制顺序排列。
type LineBox struct {
	Rect Rect     `json:"rect"`
	Runs []RunBox `json:"runs"`
}

// RunBox 记录一个片段最终的位置与生效的对齐方式。
type RunBox struct {
	Run   *Run      `json:"-"`
	Text  string    `json:"text"`
	Align Alignment `json:"align"`
	Box   Rect      `json:"box"`
}

// cursor 记录行内左右两侧已经占用的宽度。
type cursor struct {
	left  int
	right int
}

// Compose 在画布的内容区域内排版 content。
func Compose(content *Content, frame Frame) *Page {
	return &Page{
		Width:      frame.Width,
		Height:     frame.Height,
		Background: frame.Background,
		Lines:      Arrange(content, frame.ContentRect()),
	}
}

// Arrange 计算每一行与每个片段的位置。整段文字在 target 中垂直居中，
// 超出 target 时起点为负，不做裁剪。空行被跳过。
func Arrange(content *Content, target Rect) []LineBox {
	startY := target.Top + (target.Height-content.Height(LineSpacing))/2

	var lines []LineBox
	for _, line := range content.Lines {
		if line.IsEmpty() {
			continue
		}
		rect := Rect{
			Left:   target.Left,
			Top:    startY + line.Height(LineSpacing-1)/2,
			Width:  target.Width,
			Height: line.Height(1),
		}
		lines = append(lines, arrangeLine(line, rect))
		startY += line.Height(LineSpacing)
	}
	return lines
}

// drawOrder 返回行内片段的绘制顺序：靠右的片段按文档逆序排在前面，
// 使最后出现的靠右片段先占据最外侧；其余片段保持文档顺序。
func drawOrder(line *Line) []*Run {
	var rights, others []*Run
	for _, r := range line.Runs {
		if r.Align() == AlignRight {
			rights = append([]*Run{r}, rights...)
		} else {
			others = append(others, r)
		}
	}
	return append(rights, others...)
}

func arrangeLine(line *Line, rect Rect) LineBox {
	box := LineBox{Rect: rect}
	var cur cursor
	for _, r := range drawOrder(line) {
		width, height := r.Size()
		// 不同字号的片段共享同一条基线
		top := rect.Top + rect.Height - int(math.Round(r.Ascent()))

		align := r.Align()
		var left int
		switch align {
		case AlignLeft:
			left = rect.Left + cur.left
			cur.left += width
		case AlignRight:
			left = rect.Left + rect.Width - cur.right - width
			cur.right += width
		default:
			left = rect.Left + (rect.Width-width)/2
		}

		box.Runs = append(box.Runs, RunBox{
			Run:   r,
			Text:  r.Content,
			Align: align,
			Box:   Rect{Left: left, Top: top, Width: width, Height: height},
		})
	}
	return box
}

// Paint 把排版结果绘制到 sink：先铺背景，再逐个片段绘制。
// 透明的片段背景不绘制。
func Paint(sink Sink, page *Page) {
	sink.Fill(page.Background)
	for _, line := range page.Lines {
		for _, rb := range line.Runs {
			r := rb.Run
			if r.Background.A != 0 {
				sink.FillRect(rb.Box, r.Background)
			}
			sink.DrawGlyphs(rb.Box.Left, rb.Box.Top, r.Face, r.FontSize, r.Color, r.Content)
		}
	}
}
