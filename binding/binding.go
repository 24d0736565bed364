// Package binding expands ${name} placeholders in poster text with values
// from the configured template variables.
package binding

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
)

var placeholder = regexp.MustCompile(`\$\{\s*([A-Za-z_][A-Za-z0-9_-]*(?:\.[A-Za-z0-9_-]+)*)\s*\}`)

// Expand replaces every ${path} in text with the value found in vars.
// Paths are dotted (${event.date}); numeric segments index into lists.
// Placeholders that do not resolve are left untouched.
func Expand(text string, vars map[string]any) string {
	if len(vars) == 0 || !strings.Contains(text, "${") {
		return text
	}
	return placeholder.ReplaceAllStringFunc(text, func(match string) string {
		path := placeholder.FindStringSubmatch(match)[1]
		if v, ok := Lookup(vars, path); ok {
			return fmt.Sprint(v)
		}
		return match
	})
}

// Lookup resolves a dotted path against nested maps and lists.
func Lookup(vars map[string]any, path string) (any, bool) {
	var current any = vars
	for _, seg := range strings.Split(path, ".") {
		switch c := current.(type) {
		case map[string]any:
			v, ok := c[seg]
			if !ok {
				return nil, false
			}
			current = v
		case []any:
			i, err := strconv.Atoi(seg)
			if err != nil || i < 0 || i >= len(c) {
				return nil, false
			}
			current = c[i]
		default:
			return nil, false
		}
	}
	if current == nil {
		return nil, false
	}
	return current, true
}
