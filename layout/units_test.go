package layout

import (
	"math"
	"testing"
)

// TestParseLength 覆盖无单位、px 与 pt 三种写法。
func TestParseLength(t *testing.T) {
	cases := []struct {
		in   string
		want float64
	}{
		{"120", 120},
		{" 80.5px ", 80.5},
		{"90pt", 120},
		{"90PT", 120},
	}
	for _, tc := range cases {
		l, err := ParseLength(tc.in)
		if err != nil {
			t.Fatalf("ParseLength(%q) 失败: %v", tc.in, err)
		}
		if got := l.ToPX(); math.Abs(got-tc.want) > 1e-9 {
			t.Fatalf("ParseLength(%q).ToPX() = %g，期望 %g", tc.in, got, tc.want)
		}
	}
}

func TestParseLengthRejectsGarbage(t *testing.T) {
	for _, in := range []string{"", "big", "12em", "px", "NaN", "inf", "-Inf", "+infpx", "nanpt"} {
		if _, err := ParseLength(in); err == nil {
			t.Fatalf("ParseLength(%q) 应当失败", in)
		}
	}
}
