// Package layout computes element boxes from layout style properties.
//
// Boxes form a tree parallel to the element tree. Children either flow
// along their parent's direction, sharing the space left over by children
// with a fixed size, or are positioned absolutely when they declare a left
// or top offset.
package layout

import (
	"fmt"
	"strconv"
	"strings"
)

// Unit qualifies a Dimension.
type Unit int

const (
	UnitAuto Unit = iota
	UnitPixels
	UnitPercent
)

// Dimension is a length in pixels or in percent of the parent content box.
type Dimension struct {
	Value float64
	Unit  Unit
}

// Auto is the unset dimension.
var Auto = Dimension{}

// Px returns a pixel dimension.
func Px(v float64) Dimension {
	return Dimension{Value: v, Unit: UnitPixels}
}

// Percent returns a percentage dimension.
func Percent(v float64) Dimension {
	return Dimension{Value: v, Unit: UnitPercent}
}

// IsAuto reports whether d is unset.
func (d Dimension) IsAuto() bool {
	return d.Unit == UnitAuto
}

// Resolve converts d to pixels against the reference length.
func (d Dimension) Resolve(reference float64) float64 {
	switch d.Unit {
	case UnitPixels:
		return d.Value
	case UnitPercent:
		return reference * d.Value / 100
	default:
		return 0
	}
}

func (d Dimension) String() string {
	switch d.Unit {
	case UnitPixels:
		return strconv.FormatFloat(d.Value, 'f', -1, 64) + "px"
	case UnitPercent:
		return strconv.FormatFloat(d.Value, 'f', -1, 64) + "%"
	default:
		return "auto"
	}
}

// ParseDimension parses "auto", "", "12", "12px" and "50%".
func ParseDimension(s string) (Dimension, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if s == "" || s == "auto" {
		return Auto, nil
	}
	unit := UnitPixels
	switch {
	case strings.HasSuffix(s, "%"):
		unit = UnitPercent
		s = strings.TrimSuffix(s, "%")
	case strings.HasSuffix(s, "px"):
		s = strings.TrimSuffix(s, "px")
	}
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil {
		return Auto, fmt.Errorf("layout: bad dimension %q", s)
	}
	return Dimension{Value: v, Unit: unit}, nil
}

// Direction is the main axis along which flowing children are stacked.
type Direction int

const (
	Column Direction = iota
	Row
)

// ParseDirection maps "row" to Row and everything else to Column.
func ParseDirection(s string) Direction {
	if strings.EqualFold(strings.TrimSpace(s), "row") {
		return Row
	}
	return Column
}

// Style holds the layout inputs of a box.
type Style struct {
	Direction Direction
	Left      Dimension
	Top       Dimension
	Width     Dimension
	Height    Dimension
	Padding   float64
}

// Absolute reports whether the box is taken out of the flow.
func (s Style) Absolute() bool {
	return !s.Left.IsAuto() || !s.Top.IsAuto()
}
