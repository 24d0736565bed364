package binding

import "testing"

func TestExpand(t *testing.T) {
	vars := map[string]any{
		"title": "Launch",
		"event": map[string]any{
			"date":  "2026-10-16",
			"rooms": []any{"A1", 7},
		},
		"empty": nil,
	}
	cases := []struct{ in, want string }{
		{"${title} day", "Launch day"},
		{"on ${ event.date }", "on 2026-10-16"},
		{"room ${event.rooms.1}", "room 7"},
		{"${missing} ${event.nope} ${event.rooms.9}", "${missing} ${event.nope} ${event.rooms.9}"},
		{"${empty}", "${empty}"},
		{"plain $ text {x}", "plain $ text {x}"},
	}
	for _, tc := range cases {
		if got := Expand(tc.in, vars); got != tc.want {
			t.Fatalf("Expand(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestExpandWithoutVars(t *testing.T) {
	if got := Expand("${title}", nil); got != "${title}" {
		t.Fatalf("expected placeholder untouched, got %q", got)
	}
}
