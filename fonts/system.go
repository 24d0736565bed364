package fonts

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"sync"

	"github.com/tdewolff/font"
)

// SystemCatalog is a Catalog over the fonts installed on the host, found by
// scanning the platform font directories plus any extra directories.
// Scanning happens once, on first use.
type SystemCatalog struct {
	dirs []string

	once  sync.Once
	fonts *font.SystemFonts
	err   error
}

// NewSystemCatalog returns a catalog of the system fonts; extraDirs are
// scanned in addition to the default font directories.
func NewSystemCatalog(extraDirs ...string) *SystemCatalog {
	return &SystemCatalog{dirs: extraDirs}
}

func (c *SystemCatalog) scan() (*font.SystemFonts, error) {
	c.once.Do(func() {
		dirs := append(font.DefaultFontDirs(), c.dirs...)
		c.fonts, c.err = font.FindSystemFonts(dirs)
		if c.err == nil {
			Logger().Debug("scanned system fonts", "dirs", dirs, "families", len(c.fonts.Fonts))
		}
	})
	return c.fonts, c.err
}

func (c *SystemCatalog) Families() []string {
	fonts, err := c.scan()
	if err != nil {
		return nil
	}
	out := make([]string, 0, len(fonts.Fonts))
	for name := range fonts.Fonts {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (c *SystemCatalog) Lookup(family string, weight Weight, style Style) (Source, error) {
	fonts, err := c.scan()
	if err != nil {
		return Source{}, fmt.Errorf("scan system fonts: %w", err)
	}

	var styles map[font.Style]font.FontMetadata
	for name, s := range fonts.Fonts {
		if strings.EqualFold(name, family) {
			styles = s
			break
		}
	}
	if len(styles) == 0 {
		return Source{}, fmt.Errorf("%w: %q", ErrFontNotFound, family)
	}

	var best font.FontMetadata
	bestScore := -1
	for st, md := range styles {
		score := matchScore(systemVariant(st), weight, style)
		if score > bestScore || (score == bestScore && md.Filename < best.Filename) {
			best, bestScore = md, score
		}
	}

	data, err := os.ReadFile(best.Filename)
	if err != nil {
		return Source{}, fmt.Errorf("read font %s: %w", best.Filename, err)
	}
	Logger().Debug("resolved system font", "family", family, "file", best.Filename)
	return Source{ID: best.Filename, Data: data}, nil
}

// systemVariant folds the fine-grained system weights onto Light/Normal/Bold.
func systemVariant(st font.Style) variant {
	v := variant{weight: WeightNormal, style: StyleNormal}
	if st&font.Italic != 0 {
		v.style = StyleItalic
	}
	switch st &^ font.Italic {
	case font.Thin, font.ExtraLight, font.Light:
		v.weight = WeightLight
	case font.SemiBold, font.Bold, font.ExtraBold, font.Black:
		v.weight = WeightBold
	}
	return v
}
