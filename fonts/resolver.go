package fonts

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// defaultFamilyHints are substrings of CJK-capable family names probed, in
// order, when no default family is configured.
var defaultFamilyHints = []string{
	"yahei",
	"heiti",
	"songti",
	"kaiti",
	"noto sans cjk",
	"noto serif cjk",
	"source han",
	"wenquanyi",
}

// Resolver maps font keys to loaded faces. Faces are cached for the
// lifetime of the resolver and never evicted; equal keys always return the
// same face. A Resolver is safe for concurrent use.
type Resolver struct {
	catalog       Catalog
	defaultFamily string

	mu      sync.Mutex
	faces   map[Key]Face
	sources map[string]Face // by Source.ID
	def     *Key
}

// Option configures a Resolver.
type Option func(*Resolver)

// WithDefaultFamily fixes the fallback family instead of probing the
// catalog for a CJK-capable one.
func WithDefaultFamily(family string) Option {
	return func(r *Resolver) { r.defaultFamily = strings.TrimSpace(family) }
}

// NewResolver creates a resolver over catalog.
func NewResolver(catalog Catalog, opts ...Option) *Resolver {
	r := &Resolver{
		catalog: catalog,
		faces:   map[Key]Face{},
		sources: map[string]Face{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// Families lists every family known to the catalog.
func (r *Resolver) Families() []string { return r.catalog.Families() }

// DefaultKey returns the fallback font key, probing the catalog on first
// use. It fails with ErrNoDefaultFont when no candidate family exists.
func (r *Resolver) DefaultKey() (Key, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.defaultKeyLocked()
}

func (r *Resolver) defaultKeyLocked() (Key, error) {
	if r.def != nil {
		return *r.def, nil
	}
	family := r.defaultFamily
	families := r.catalog.Families()
	if family == "" {
		family = probeDefaultFamily(families)
	}
	if family == "" {
		return Key{}, &FontError{Key: Key{Family: "<default>"}, Families: families, Err: ErrNoDefaultFont}
	}
	key := Key{Family: family, Weight: WeightNormal, Style: StyleNormal}
	if _, err := r.catalog.Lookup(key.Family, key.Weight, key.Style); err != nil {
		return Key{}, &FontError{Key: key, Families: families, Err: fmt.Errorf("%w: %w", ErrNoDefaultFont, err)}
	}
	r.def = &key
	return *r.def, nil
}

func probeDefaultFamily(families []string) string {
	for _, hint := range defaultFamilyHints {
		for _, name := range families {
			if strings.Contains(strings.ToLower(name), hint) {
				return name
			}
		}
	}
	return ""
}

// Load returns the face for key. When the requested font is unavailable
// a warning is logged and the default font is substituted; if the default
// cannot be loaded either, a *FontError listing the available families is
// returned and no text can be rendered.
func (r *Resolver) Load(key Key) (Face, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if face, ok := r.faces[key]; ok {
		return face, nil
	}

	face, err := r.open(key)
	if err != nil {
		families := r.catalog.Families()
		Logger().Warn("font not found, trying default font",
			"family", key.Family, "weight", key.Weight.String(), "style", key.Style.String(), "err", err)
		Logger().Warn("available fonts", "families", families)

		def, derr := r.defaultKeyLocked()
		if derr != nil {
			return nil, derr
		}
		Logger().Warn("loading default font", "family", def.Family)
		face, err = r.open(def)
		if err != nil {
			return nil, &FontError{Key: def, Families: families, Err: err}
		}
	}

	r.faces[key] = face
	return face, nil
}

func (r *Resolver) open(key Key) (Face, error) {
	if key.Family == "" {
		return nil, errors.New("empty family name")
	}
	src, err := r.catalog.Lookup(key.Family, key.Weight, key.Style)
	if err != nil {
		return nil, err
	}
	if face, ok := r.sources[src.ID]; ok {
		return face, nil
	}
	face, err := newFamilyFace(key.Family, src, canvasStyle(key.Weight, key.Style))
	if err != nil {
		return nil, err
	}
	r.sources[src.ID] = face
	return face, nil
}
