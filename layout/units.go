package layout

import (
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Unit 表示字号数值的原始单位。
type Unit int

const (
	UnitPX Unit = iota // 像素（缺省）
	UnitPT             // 点
)

// PtToPx 按 CSS 约定 1pt = 4/3 px。
const PtToPx = 96.0 / 72.0

func (u Unit) String() string {
	if u == UnitPT {
		return "pt"
	}
	return "px"
}

// Length 保留数值及其单位。
type Length struct {
	Value float64
	Unit  Unit
}

// ToPX 把长度换算为像素。
func (l Length) ToPX() float64 {
	if l.Unit == UnitPT {
		return l.Value * PtToPx
	}
	return l.Value
}

// ParseLength 解析 "120"、"120px"、"90pt" 形式的长度。
func ParseLength(value string) (Length, error) {
	v := strings.ToLower(strings.TrimSpace(value))
	unit := UnitPX
	switch {
	case strings.HasSuffix(v, "px"):
		v = strings.TrimSpace(strings.TrimSuffix(v, "px"))
	case strings.HasSuffix(v, "pt"):
		unit = UnitPT
		v = strings.TrimSpace(strings.TrimSuffix(v, "pt"))
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return Length{}, fmt.Errorf("parse length %q: %w", value, err)
	}
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return Length{}, fmt.Errorf("parse length %q: not a finite number", value)
	}
	return Length{Value: f, Unit: unit}, nil
}
