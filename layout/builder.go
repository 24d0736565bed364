package layout

import (
	"fmt"

	"github.com/ByLCY/poster/binding"
	"github.com/ByLCY/poster/markup"
)

// Build 深度优先遍历标记树，把样式沿路径向下传递到文本叶子，
// 按 <br> 分行，生成按文档顺序排列的行与片段。
func Build(root *markup.Node, opts BuildOptions) (*Content, error) {
	if root == nil {
		return nil, fmt.Errorf("文档为空")
	}
	if opts.Fonts == nil {
		return nil, fmt.Errorf("layout: 缺少字体加载器 FontLoader")
	}
	style := opts.Style
	if style.FontSize == 0 {
		style = DefaultStyle(style.Font)
	}

	b := &builder{content: NewContent(), opts: opts}
	for _, child := range root.Children {
		if err := b.walk(child, style); err != nil {
			return nil, err
		}
	}
	return b.content, nil
}

type builder struct {
	content *Content
	opts    BuildOptions
}

func (b *builder) walk(n *markup.Node, style Style) error {
	if n.IsText() {
		return b.text(n, style)
	}

	switch n.Name {
	case "l":
		style.Align = AlignLeft
	case "r":
		style.Align = AlignRight
	case "c":
		style.Align = AlignCenter
	case "font":
		var err error
		if style, err = style.withFont(n); err != nil {
			return err
		}
	case markup.BreakTag:
		b.content.NewLine()
	}

	for _, child := range n.Children {
		if err := b.walk(child, style); err != nil {
			return err
		}
	}
	return nil
}

func (b *builder) text(n *markup.Node, style Style) error {
	face, err := b.opts.Fonts.Load(style.Font)
	if err != nil {
		return fmt.Errorf("加载字体 %s 失败: %w", style.Font, err)
	}
	b.content.Push(&Run{
		Content:    binding.Expand(n.Text, b.opts.Vars),
		FontSize:   style.FontSize,
		Color:      style.Color,
		Background: style.Background,
		FontKey:    style.Font,
		Face:       face,
		LineIndex:  b.content.LineSize(),
		Alignment:  style.Align,
	})
	return nil
}
