package fonts

import (
	"golang.org/x/image/font/gofont/gobold"
	"golang.org/x/image/font/gofont/gobolditalic"
	"golang.org/x/image/font/gofont/goitalic"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/gomonobold"
	"golang.org/x/image/font/gofont/gomonobolditalic"
	"golang.org/x/image/font/gofont/gomonoitalic"
	"golang.org/x/image/font/gofont/goregular"
	"golang.org/x/image/font/gofont/gosmallcaps"
	"golang.org/x/image/font/gofont/gosmallcapsitalic"
)

// Builtin family names.
const (
	GoFamily          = "Go"
	GoMonoFamily      = "Go Mono"
	GoSmallcapsFamily = "Go Smallcaps"
)

// Builtin returns a catalog of the Go font family, which is always
// available regardless of the fonts installed on the host.
func Builtin() *MemoryCatalog {
	c := NewMemoryCatalog()
	c.Add(GoFamily, WeightNormal, StyleNormal, goregular.TTF)
	c.Add(GoFamily, WeightBold, StyleNormal, gobold.TTF)
	c.Add(GoFamily, WeightNormal, StyleItalic, goitalic.TTF)
	c.Add(GoFamily, WeightBold, StyleItalic, gobolditalic.TTF)
	c.Add(GoMonoFamily, WeightNormal, StyleNormal, gomono.TTF)
	c.Add(GoMonoFamily, WeightBold, StyleNormal, gomonobold.TTF)
	c.Add(GoMonoFamily, WeightNormal, StyleItalic, gomonoitalic.TTF)
	c.Add(GoMonoFamily, WeightBold, StyleItalic, gomonobolditalic.TTF)
	c.Add(GoSmallcapsFamily, WeightNormal, StyleNormal, gosmallcaps.TTF)
	c.Add(GoSmallcapsFamily, WeightNormal, StyleItalic, gosmallcapsitalic.TTF)
	return c
}
