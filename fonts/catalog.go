package fonts

import (
	"fmt"
	"sort"
	"strings"
)

// Source is the raw data of one font file. ID identifies the file so that
// several keys resolving to the same file share a single loaded face.
type Source struct {
	ID    string
	Data  []byte
	Index int
}

// Catalog is a queryable set of installed fonts.
type Catalog interface {
	// Families lists the family names in the catalog, sorted.
	Families() []string
	// Lookup returns the best matching font of a family. A family that is
	// present but lacks the exact variant still matches; an unknown family
	// yields ErrFontNotFound.
	Lookup(family string, weight Weight, style Style) (Source, error)
}

type variant struct {
	weight Weight
	style  Style
}

// MemoryCatalog is a Catalog over font data held in memory.
type MemoryCatalog struct {
	names    map[string]string // lower-case -> display name
	variants map[string]map[variant]Source
}

// NewMemoryCatalog returns an empty in-memory catalog.
func NewMemoryCatalog() *MemoryCatalog {
	return &MemoryCatalog{
		names:    map[string]string{},
		variants: map[string]map[variant]Source{},
	}
}

// Add registers font data for a family variant.
func (c *MemoryCatalog) Add(family string, weight Weight, style Style, data []byte) {
	key := strings.ToLower(family)
	c.names[key] = family
	if c.variants[key] == nil {
		c.variants[key] = map[variant]Source{}
	}
	c.variants[key][variant{weight, style}] = Source{
		ID:   fmt.Sprintf("memory:%s:%s:%s", family, weight, style),
		Data: data,
	}
}

func (c *MemoryCatalog) Families() []string {
	out := make([]string, 0, len(c.names))
	for _, name := range c.names {
		out = append(out, name)
	}
	sort.Strings(out)
	return out
}

func (c *MemoryCatalog) Lookup(family string, weight Weight, style Style) (Source, error) {
	vs, ok := c.variants[strings.ToLower(family)]
	if !ok {
		return Source{}, fmt.Errorf("%w: %q", ErrFontNotFound, family)
	}
	best, bestScore := Source{}, -1
	for v, src := range vs {
		score := matchScore(v, weight, style)
		// ties resolve on ID so that lookups are deterministic
		if score > bestScore || (score == bestScore && src.ID < best.ID) {
			best, bestScore = src, score
		}
	}
	return best, nil
}

// matchScore ranks how well a variant satisfies a request; style counts
// more than weight, and any weight is preferred over a wrong slant.
func matchScore(v variant, weight Weight, style Style) int {
	score := 0
	if v.style == style {
		score += 4
	}
	switch {
	case v.weight == weight:
		score += 2
	case v.weight == WeightNormal:
		score++
	}
	return score
}

// MultiCatalog queries several catalogs in order.
type MultiCatalog []Catalog

func (m MultiCatalog) Families() []string {
	seen := map[string]bool{}
	var out []string
	for _, c := range m {
		for _, name := range c.Families() {
			if !seen[name] {
				seen[name] = true
				out = append(out, name)
			}
		}
	}
	sort.Strings(out)
	return out
}

func (m MultiCatalog) Lookup(family string, weight Weight, style Style) (Source, error) {
	for _, c := range m {
		src, err := c.Lookup(family, weight, style)
		if err == nil {
			return src, nil
		}
	}
	return Source{}, fmt.Errorf("%w: %q", ErrFontNotFound, family)
}
