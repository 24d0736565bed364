package layout

import (
	"encoding/json"
	"fmt"
	"image/color"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/ByLCY/poster/fonts"
)

func newRun(text string, line int, align Alignment) *Run {
	return &Run{
		Content:    text,
		FontSize:   100,
		Color:      color.NRGBA{A: 0xff},
		Background: color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff},
		FontKey:    defaultKey,
		Face:       testFace,
		LineIndex:  line,
		Alignment:  align,
	}
}

func lineOf(runs ...*Run) *Line {
	l := &Line{}
	for _, r := range runs {
		l.Push(r)
	}
	return l
}

func TestTrailingSpaceKeepsWidth(t *testing.T) {
	withSpace, _ := newRun("AB ", 1, AlignAuto).Size()
	without, _ := newRun("AB", 1, AlignAuto).Size()
	if withSpace <= without {
		t.Fatalf("尾随空格应占宽度: %d <= %d", withSpace, without)
	}
	inner, _ := newRun("A B", 1, AlignAuto).Size()
	if inner != without {
		t.Fatalf("内部空格不做替换: %d != %d", inner, without)
	}
}

func TestLineHeightIsMonotonic(t *testing.T) {
	l := &Line{}
	sizes := []float64{50, 120, 80}
	prev := 0
	for _, size := range sizes {
		r := newRun("A", 1, AlignAuto)
		r.FontSize = size
		l.Push(r)
		if l.MaxRunHeight() < prev {
			t.Fatalf("最大片段高度不应减小: %d < %d", l.MaxRunHeight(), prev)
		}
		prev = l.MaxRunHeight()
	}
	if l.MaxRunHeight() != 120 {
		t.Fatalf("最大片段高度期望 120，实际 %d", l.MaxRunHeight())
	}
	for _, spacing := range []float64{0.5, 1, 1.5} {
		want := int(float64(120)*spacing + 0.5)
		if got := l.Height(spacing); got != want {
			t.Fatalf("Height(%g) = %d，期望 %d", spacing, got, want)
		}
	}
}

func TestDefaultAlignment(t *testing.T) {
	cases := []struct {
		line  int
		align Alignment
		want  Alignment
	}{
		{1, AlignAuto, AlignLeft},
		{2, AlignAuto, AlignRight},
		{7, AlignAuto, AlignRight},
		{1, AlignCenter, AlignCenter},
		{3, AlignLeft, AlignLeft},
	}
	for _, tc := range cases {
		if got := newRun("A", tc.line, tc.align).Align(); got != tc.want {
			t.Fatalf("line %d align %s: got %s, want %s", tc.line, tc.align, got, tc.want)
		}
	}
}

func TestLeftPacking(t *testing.T) {
	a, b := newRun("A", 1, AlignLeft), newRun("B", 1, AlignLeft)
	box := arrangeLine(lineOf(a, b), Rect{Left: 100, Top: 0, Width: 1000, Height: 100})

	if box.Runs[0].Run != a || box.Runs[1].Run != b {
		t.Fatalf("靠左片段应保持文档顺序")
	}
	if got := box.Runs[0].Box.Left; got != 100 {
		t.Fatalf("A 的左边应为 100，实际 %d", got)
	}
	if got := box.Runs[1].Box.Left; got != 110 {
		t.Fatalf("B 的左边应为 A 左边 + 10，实际 %d", got)
	}
}

func TestRightPackingOrder(t *testing.T) {
	x, y := newRun("X", 1, AlignRight), newRun("Y", 1, AlignRight)
	left := newRun("A", 1, AlignLeft)
	box := arrangeLine(lineOf(x, left, y), Rect{Left: 0, Top: 0, Width: 1000, Height: 100})

	order := []string{}
	for _, rb := range box.Runs {
		order = append(order, rb.Text)
	}
	if diff := cmp.Diff([]string{"Y", "X", "A"}, order); diff != "" {
		t.Fatalf("绘制顺序错误 (-want +got):\n%s", diff)
	}
	yBox, xBox := box.Runs[0].Box, box.Runs[1].Box
	if yBox.Left+yBox.Width != 1000 {
		t.Fatalf("Y 应占据最右侧: %+v", yBox)
	}
	if xBox.Left+xBox.Width != yBox.Left {
		t.Fatalf("X 应紧挨 Y 的左侧: x=%+v y=%+v", xBox, yBox)
	}
}

func TestCenterIgnoresCursor(t *testing.T) {
	a, c := newRun("A", 1, AlignLeft), newRun("B", 1, AlignCenter)
	box := arrangeLine(lineOf(a, c), Rect{Left: 10, Top: 0, Width: 100, Height: 100})
	if got := box.Runs[1].Box.Left; got != 10+(100-20)/2 {
		t.Fatalf("居中片段位置错误: %d", got)
	}
}

func TestSharedBaseline(t *testing.T) {
	big, small := newRun("A", 1, AlignLeft), newRun("B", 1, AlignLeft)
	small.FontSize = 50
	line := lineOf(big, small)
	rect := Rect{Left: 0, Top: 40, Width: 1000, Height: line.Height(1)}
	box := arrangeLine(line, rect)

	for _, rb := range box.Runs {
		baseline := float64(rb.Box.Top) + rb.Run.Ascent()
		if want := float64(rect.Top + rect.Height); baseline != want {
			t.Fatalf("%s 的基线 %g，期望 %g", rb.Text, baseline, want)
		}
	}
}

func TestVerticalCentering(t *testing.T) {
	content := &Content{Lines: []*Line{lineOf(newRun("A", 1, AlignAuto))}}
	h := content.Lines[0].Height(1)
	for _, target := range []int{1000, 999, 50} {
		lines := Arrange(content, Rect{Width: 800, Height: target})
		if len(lines) != 1 {
			t.Fatalf("期望一行，实际 %d", len(lines))
		}
		want := (target - h) / 2
		if got := lines[0].Rect.Top; got < want-1 || got > want+1 {
			t.Fatalf("target %d: 行顶 %d，期望约 %d", target, got, want)
		}
	}
}

func TestArrangeSkipsEmptyLines(t *testing.T) {
	first := lineOf(newRun("A", 1, AlignAuto))
	third := lineOf(newRun("B", 3, AlignAuto))
	content := &Content{Lines: []*Line{first, {}, third}}

	lines := Arrange(content, Rect{Left: 0, Top: 0, Width: 1000, Height: 1000})
	if len(lines) != 2 {
		t.Fatalf("空行应被跳过，实际 %d 行", len(lines))
	}
	step := lines[1].Rect.Top - lines[0].Rect.Top
	if step != first.Height(LineSpacing) {
		t.Fatalf("行间距 %d，期望 %d", step, first.Height(LineSpacing))
	}
	if lines[1].Runs[0].Align != AlignRight {
		t.Fatalf("第三行默认应靠右")
	}
}

func TestArrangeOverflowIsNotClamped(t *testing.T) {
	content := &Content{Lines: []*Line{lineOf(newRun("A", 1, AlignAuto)), lineOf(newRun("B", 2, AlignAuto))}}
	lines := Arrange(content, Rect{Width: 100, Height: 10})
	if lines[0].Rect.Top >= 0 {
		t.Fatalf("内容高于区域时起点应为负，实际 %d", lines[0].Rect.Top)
	}
}

func TestFrameContentRect(t *testing.T) {
	f := Frame{Width: 1920, Height: 1080, Padding: 300}
	want := Rect{Left: 300, Top: 300, Width: 1320, Height: 480}
	if got := f.ContentRect(); got != want {
		t.Fatalf("ContentRect = %+v，期望 %+v", got, want)
	}
}

// recordingSink 记录绘制命令。
type recordingSink struct {
	ops []string
}

func (s *recordingSink) Fill(c color.NRGBA) {
	s.ops = append(s.ops, fmt.Sprintf("fill %v", c))
}

func (s *recordingSink) FillRect(r Rect, c color.NRGBA) {
	s.ops = append(s.ops, fmt.Sprintf("rect %d,%d %dx%d a=%d", r.Left, r.Top, r.Width, r.Height, c.A))
}

func (s *recordingSink) DrawGlyphs(x, y int, face fonts.Face, size float64, c color.NRGBA, text string) {
	s.ops = append(s.ops, fmt.Sprintf("text %q at %d,%d size=%g", text, x, y, size))
}

func TestPaint(t *testing.T) {
	opaque := newRun("A", 1, AlignLeft)
	seeThrough := newRun("B", 1, AlignLeft)
	seeThrough.Background = color.NRGBA{}
	content := &Content{Lines: []*Line{lineOf(opaque, seeThrough)}}

	page := Compose(content, Frame{Width: 200, Height: 200, Padding: 0, Background: color.NRGBA{R: 1, A: 0xff}})
	sink := &recordingSink{}
	Paint(sink, page)

	// 单行：行高 100，起点 (200-150)/2=25，行顶 25+25=50，字顶 50+100-80=70
	want := []string{
		"fill {1 0 0 255}",
		"rect 0,70 10x100 a=255",
		`text "A" at 0,70 size=100`,
		`text "B" at 10,70 size=100`,
	}
	if diff := cmp.Diff(want, sink.ops); diff != "" {
		t.Fatalf("绘制命令不符 (-want +got):\n%s", diff)
	}
}

func TestWriteDebugJSON(t *testing.T) {
	content := &Content{Lines: []*Line{lineOf(newRun("A", 1, AlignAuto))}}
	page := Compose(content, Frame{Width: 400, Height: 300, Padding: 10})
	path := filepath.Join(t.TempDir(), "debug", "page.json")
	if err := WriteDebugJSON(page, path); err != nil {
		t.Fatalf("写入调试 JSON 失败: %v", err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("读取调试 JSON 失败: %v", err)
	}
	var decoded struct {
		Lines []struct {
			Runs []struct {
				Text  string `json:"text"`
				Align string `json:"align"`
				Font  string `json:"font"`
				Line  int    `json:"line"`
			} `json:"runs"`
		} `json:"lines"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("调试 JSON 无法解析: %v", err)
	}
	if got := decoded.Lines[0].Runs[0]; got.Text != "A" || got.Align != "left" || got.Font != defaultKey.String() || got.Line != 1 {
		t.Fatalf("调试 JSON 内容不符: %+v", got)
	}
}
