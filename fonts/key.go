package fonts

import (
	"fmt"
	"strings"
)

// Weight is the stroke weight of a font variant.
type Weight int

const (
	WeightNormal Weight = iota
	WeightLight
	WeightBold
)

// ParseWeight maps a weight name to a Weight. Matching is
// case-insensitive; any name other than "light" or "bold" means Normal.
func ParseWeight(s string) Weight {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "bold":
		return WeightBold
	case "light":
		return WeightLight
	default:
		return WeightNormal
	}
}

func (w Weight) String() string {
	switch w {
	case WeightLight:
		return "light"
	case WeightBold:
		return "bold"
	default:
		return "normal"
	}
}

// Style is the slant of a font variant.
type Style int

const (
	StyleNormal Style = iota
	StyleItalic
)

// ParseStyle maps a style name to a Style; only "italic" is recognised.
func ParseStyle(s string) Style {
	if strings.EqualFold(strings.TrimSpace(s), "italic") {
		return StyleItalic
	}
	return StyleNormal
}

func (s Style) String() string {
	if s == StyleItalic {
		return "italic"
	}
	return "normal"
}

// Key identifies a font variant. It is comparable and used as the
// resolver cache key.
type Key struct {
	Family string
	Weight Weight
	Style  Style
}

func (k Key) String() string {
	return fmt.Sprintf("%s (%s, %s)", k.Family, k.Weight, k.Style)
}
