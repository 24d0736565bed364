package renderer

import "github.com/ByLCY/poster/layout"

// Renderer 将排版结果输出为最终文件，例如 PNG 或 PDF。
// Render 返回编码后的字节以及可能的错误。
type Renderer interface {
	Render(page *layout.Page) ([]byte, error)
}
