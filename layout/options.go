package layout

import (
	"image/color"

	"github.com/ByLCY/poster/fonts"
)

// BuildOptions 配置解析阶段所需的依赖。
type BuildOptions struct {
	Fonts FontLoader
	Style Style          // 根样式，通常由 DefaultStyle 生成
	Vars  map[string]any // 模板变量，用于展开文本中的 ${name}
}

// FontLoader 按字体标识返回已加载的字体；fonts.Resolver 实现了该接口。
type FontLoader interface {
	Load(key fonts.Key) (fonts.Face, error)
}

// Sink 是布局结果的绘制目标，只需要这三种修改操作。
type Sink interface {
	// Fill 用单一颜色填满整个画布。
	Fill(c color.NRGBA)
	// FillRect 填充一个矩形。
	FillRect(r Rect, c color.NRGBA)
	// DrawGlyphs 以 (x, y) 为文本框左上角绘制文字。
	DrawGlyphs(x, y int, face fonts.Face, size float64, c color.NRGBA, text string)
}
