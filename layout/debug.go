package layout

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

type debugRun struct {
	RunBox
	Font     string  `json:"font"`
	FontSize float64 `json:"fontSize"`
	Line     int     `json:"line"`
}

type debugLine struct {
	Rect Rect       `json:"rect"`
	Runs []debugRun `json:"runs"`
}

type debugPage struct {
	Width  int         `json:"width"`
	Height int         `json:"height"`
	Lines  []debugLine `json:"lines"`
}

// WriteDebugJSON 将排版结果（行区域、片段位置、字体与生效的对齐）写成 JSON，
// 所在目录不存在时会自动创建。
func WriteDebugJSON(page *Page, path string) error {
	if page == nil {
		return nil
	}
	out := debugPage{Width: page.Width, Height: page.Height, Lines: make([]debugLine, 0, len(page.Lines))}
	for _, line := range page.Lines {
		dl := debugLine{Rect: line.Rect, Runs: make([]debugRun, 0, len(line.Runs))}
		for _, rb := range line.Runs {
			dr := debugRun{RunBox: rb}
			if rb.Run != nil {
				dr.Font = rb.Run.FontKey.String()
				dr.FontSize = rb.Run.FontSize
				dr.Line = rb.Run.LineIndex
			}
			dl.Runs = append(dl.Runs, dr)
		}
		out.Lines = append(out.Lines, dl)
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("创建调试目录失败: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
