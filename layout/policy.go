// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "image"

// Policy is the sizing behaviour of an item along one axis.
type Policy uint8

const (
	// Minimum items start at their minimum size and may grow up to
	// their maximum to share leftover space.
	Minimum Policy = iota
	// Fixed items are always laid out at their minimum size.
	Fixed
	// Maximum items prefer their maximum size and may shrink to
	// their minimum. The solver treats them like Minimum items.
	Maximum
	// Expanding items take all leftover space before any other
	// item grows past its minimum.
	Expanding
	// Manual items are sized by their owner. The solver keeps them
	// at their minimum size along the axis.
	Manual
)

// SizePolicy is the pair of per-axis policies of an item. The zero
// value is Minimum along both axes.
type SizePolicy struct {
	Horizontal, Vertical Policy
}

// Weight apportions leftover space among items with the same
// disposition. Non-positive components count as 1.
type Weight struct {
	X, Y int
}

// DefaultWeight is the weight of items that do not specify one.
var DefaultWeight = Weight{X: 1, Y: 1}

// Policies returns a SizePolicy with p along both axes.
func Policies(p Policy) SizePolicy {
	return SizePolicy{Horizontal: p, Vertical: p}
}

// Along returns the policy for axis a.
func (s SizePolicy) Along(a Axis) Policy {
	if a == Horizontal {
		return s.Horizontal
	}
	return s.Vertical
}

// Along returns the weight for axis a.
func (w Weight) Along(a Axis) int {
	v := w.X
	if a == Vertical {
		v = w.Y
	}
	if v <= 0 {
		return 1
	}
	return v
}

// pins reports whether p keeps an item at its minimum size.
func (p Policy) pins() bool {
	return p == Fixed || p == Manual
}

// applyPolicy adjusts the bounds min and max of an item for the
// pinning policies in sp.
func applyPolicy(sp SizePolicy, min, max image.Point) (image.Point, image.Point) {
	if sp.Horizontal.pins() {
		max.X = min.X
	}
	if sp.Vertical.pins() {
		max.Y = min.Y
	}
	return min, maxPoint(min, max)
}

func (p Policy) String() string {
	switch p {
	case Minimum:
		return "Minimum"
	case Fixed:
		return "Fixed"
	case Maximum:
		return "Maximum"
	case Expanding:
		return "Expanding"
	case Manual:
		return "Manual"
	default:
		panic("unreachable")
	}
}
