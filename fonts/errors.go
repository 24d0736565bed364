package fonts

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrFontNotFound is returned by catalogs when no installed font
	// matches the requested family.
	ErrFontNotFound = errors.New("fonts: font not found")

	// ErrNoDefaultFont is returned when no CJK-capable default family is
	// installed and none was configured.
	ErrNoDefaultFont = errors.New("fonts: no preferred default font found, specify the family explicitly")
)

// FontError reports a font that could not be loaded, together with the
// families that are available, to make the failure diagnosable.
type FontError struct {
	Key      Key
	Families []string
	Err      error
}

func (e *FontError) Error() string {
	var b strings.Builder
	fmt.Fprintf(&b, "failed to load font %s: %v", e.Key, e.Err)
	b.WriteString("\navailable fonts:")
	if len(e.Families) == 0 {
		b.WriteString(" none")
	}
	for _, name := range e.Families {
		b.WriteString("\n- ")
		b.WriteString(name)
	}
	return b.String()
}

func (e *FontError) Unwrap() error { return e.Err }
