package canvasrenderer

import (
	"bytes"
	"fmt"
	"image"
	"image/color"
	"image/jpeg"
	"image/png"
	"path/filepath"
	"strings"

	"github.com/tdewolff/canvas"
	"github.com/tdewolff/canvas/renderers/pdf"
	"github.com/tdewolff/canvas/renderers/rasterizer"
	"github.com/tdewolff/canvas/renderers/svg"
	"golang.org/x/image/bmp"
	"golang.org/x/image/tiff"

	"github.com/ByLCY/poster/fonts"
	"github.com/ByLCY/poster/layout"
	"github.com/ByLCY/poster/renderer"
)

// jpegQuality 是 JPEG 输出的压缩质量。
const jpegQuality = 95

// Format 是输出文件格式。
type Format int

const (
	PNG Format = iota
	JPEG
	BMP
	TIFF
	SVG
	PDF
)

func (f Format) String() string {
	switch f {
	case JPEG:
		return "jpeg"
	case BMP:
		return "bmp"
	case TIFF:
		return "tiff"
	case SVG:
		return "svg"
	case PDF:
		return "pdf"
	default:
		return "png"
	}
}

// FormatFromPath 根据输出文件扩展名选择格式。
func FormatFromPath(path string) (Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".png":
		return PNG, nil
	case ".jpg", ".jpeg":
		return JPEG, nil
	case ".bmp":
		return BMP, nil
	case ".tif", ".tiff":
		return TIFF, nil
	case ".svg":
		return SVG, nil
	case ".pdf":
		return PDF, nil
	default:
		return PNG, fmt.Errorf("不支持的输出格式: %q", filepath.Ext(path))
	}
}

// Renderer draws pages via github.com/tdewolff/canvas, one canvas
// millimetre per output pixel.
type Renderer struct {
	format Format
}

var _ renderer.Renderer = (*Renderer)(nil)

// NewRenderer creates a renderer that encodes to format.
func NewRenderer(format Format) *Renderer { return &Renderer{format: format} }

// Render paints the page and returns the encoded file.
func (r *Renderer) Render(page *layout.Page) ([]byte, error) {
	if page == nil {
		return nil, fmt.Errorf("渲染结果为空")
	}
	if page.Width <= 0 || page.Height <= 0 {
		return nil, fmt.Errorf("画布尺寸无效: %dx%d", page.Width, page.Height)
	}

	c := canvas.New(float64(page.Width), float64(page.Height))
	ctx := canvas.NewContext(c)
	ctx.SetCoordSystem(canvas.CartesianIV) // 使坐标与布局保持左上角为原点

	sink := NewSink(ctx, page.Width, page.Height)
	layout.Paint(sink, page)
	if sink.Err() != nil {
		return nil, sink.Err()
	}
	return r.encode(c, float64(page.Width), float64(page.Height))
}

func (r *Renderer) encode(c *canvas.Canvas, width, height float64) ([]byte, error) {
	var buf bytes.Buffer
	switch r.format {
	case SVG:
		w := svg.New(&buf, width, height, nil)
		c.RenderTo(w)
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("写入 SVG 失败: %w", err)
		}
	case PDF:
		w := pdf.New(&buf, width, height, nil)
		c.RenderTo(w)
		if err := w.Close(); err != nil {
			return nil, fmt.Errorf("写入 PDF 失败: %w", err)
		}
	default:
		img := rasterizer.Draw(c, canvas.DPMM(1.0), canvas.DefaultColorSpace)
		if err := encodeRaster(&buf, img, r.format); err != nil {
			return nil, fmt.Errorf("编码 %s 失败: %w", r.format, err)
		}
	}
	return buf.Bytes(), nil
}

func encodeRaster(buf *bytes.Buffer, img image.Image, format Format) error {
	switch format {
	case JPEG:
		return jpeg.Encode(buf, img, &jpeg.Options{Quality: jpegQuality})
	case BMP:
		return bmp.Encode(buf, img)
	case TIFF:
		return tiff.Encode(buf, img, &tiff.Options{Compression: tiff.Deflate})
	default:
		return png.Encode(buf, img)
	}
}

// Sink implements layout.Sink on a canvas context whose coordinate system
// has its origin at the top-left corner.
type Sink struct {
	ctx    *canvas.Context
	width  int
	height int
	err    error
}

var _ layout.Sink = (*Sink)(nil)

// NewSink wraps ctx; width and height are the canvas size in pixels.
func NewSink(ctx *canvas.Context, width, height int) *Sink {
	return &Sink{ctx: ctx, width: width, height: height}
}

// Err returns the first drawing error, if any.
func (s *Sink) Err() error { return s.err }

func (s *Sink) Fill(c color.NRGBA) {
	s.FillRect(layout.Rect{Width: s.width, Height: s.height}, c)
}

func (s *Sink) FillRect(r layout.Rect, c color.NRGBA) {
	s.ctx.SetFillColor(c)
	s.ctx.SetStrokeColor(color.NRGBA{})
	s.ctx.DrawPath(float64(r.Left), float64(r.Top), canvas.Rectangle(float64(r.Width), float64(r.Height)))
}

func (s *Sink) DrawGlyphs(x, y int, face fonts.Face, size float64, c color.NRGBA, text string) {
	cf, ok := face.(fonts.CanvasFace)
	if !ok {
		if s.err == nil {
			s.err = fmt.Errorf("字体 %s 不支持 canvas 绘制", face.Name())
		}
		return
	}
	ff := cf.FontFace(size, c)
	// (x, y) 是文本框左上角，canvas 以基线定位
	baseline := float64(y) + ff.Metrics().Ascent
	s.ctx.DrawText(float64(x), baseline, canvas.NewTextLine(ff, text, canvas.Left))
}
