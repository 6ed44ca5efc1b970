// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"image"
	"math"

	"golang.org/x/exp/constraints"

	"boxlayout.org/unit"
)

// Inf is the unbounded size. Arithmetic on sizes saturates at Inf.
const Inf = math.MaxInt32

// Unbounded is the size hint meaning no space constraint.
var Unbounded = image.Point{X: Inf, Y: Inf}

// Axis is the Horizontal or Vertical direction.
type Axis uint8

// Alignment is the placement of an item in the slack space left
// along an axis where it is smaller than its slot.
type Alignment uint8

const (
	Horizontal Axis = iota
	Vertical
)

const (
	Start Alignment = iota
	End
	Middle
)

// Margins are the space around the four edges of a box.
type Margins struct {
	Left, Top, Right, Bottom int
}

// Widget is the geometry contract of a layout participant. The
// solver never inspects anything else about a widget.
//
// Widgets are compared by identity; implementations must be
// comparable, typically pointer types. Adding a widget of an
// uncomparable type fails with ErrUncomparable.
type Widget interface {
	Visible() bool
	SizePolicy() SizePolicy
	Weight() Weight
	// MinSize returns the minimum size given the space hint avail,
	// which is Unbounded when there is no hint.
	MinSize(avail image.Point) image.Point
	// MaxSize is like MinSize for the maximum size. Components may
	// be Inf.
	MaxSize(avail image.Point) image.Point
	Margins() Margins
	// Place assigns the widget its computed rectangle.
	Place(r image.Rectangle)
}

// Owner is the widget a layout is installed on.
type Owner interface {
	// InvalidateLayout asks the owner to run a new layout pass.
	InvalidateLayout()
}

// Parented is implemented by widgets that track the owner of the
// layout they are attached to. SetOwner is called with nil on detach.
type Parented interface {
	SetOwner(o Owner)
}

// Layout is a Widget that arranges items. It is implemented by *Linear
// and *Grid only.
type Layout interface {
	Widget
	// LayoutItems solves the layout for the rectangle at pos with
	// the given size and places every item.
	LayoutItems(pos, size image.Point)
	// SetOwner installs the layout on a widget, or uninstalls it
	// if o is nil.
	SetOwner(o Owner)
	// Invalidate asks the owner for a new layout pass.
	Invalidate()
	base() *Base
}

// Style holds the default spacing values a layout is built with.
type Style struct {
	Margins Margins
	Spacing image.Point
	Align   Alignment
}

// DefaultStyle returns the default style resolved for m: 4dp spacing
// and no margins.
func DefaultStyle(m unit.Metric) Style {
	sp := m.Dp(4)
	return Style{
		Spacing: image.Point{X: sp, Y: sp},
		Align:   Start,
	}
}

// UniformMargins returns Margins with v on every edge.
func UniformMargins(v int) Margins {
	return Margins{Left: v, Top: v, Right: v, Bottom: v}
}

// Size returns the total horizontal and vertical margin.
func (m Margins) Size() image.Point {
	return image.Point{X: m.Left + m.Right, Y: m.Top + m.Bottom}
}

// Inset shrinks r by m. The result is never inverted.
func (m Margins) Inset(r image.Rectangle) image.Rectangle {
	r.Min.X += m.Left
	r.Min.Y += m.Top
	r.Max.X -= m.Right
	r.Max.Y -= m.Bottom
	if r.Max.X < r.Min.X {
		r.Max.X = r.Min.X
	}
	if r.Max.Y < r.Min.Y {
		r.Max.Y = r.Min.Y
	}
	return r
}

// Convert a point in (x, y) coordinates to (main, cross) coordinates,
// or vice versa. Specifically, Convert((x, y)) returns (x, y) unchanged
// for the horizontal axis, or (y, x) for the vertical axis.
func (a Axis) Convert(pt image.Point) image.Point {
	if a == Horizontal {
		return pt
	}
	return image.Point{X: pt.Y, Y: pt.X}
}

// mainAxis returns the component of pt along a.
func (a Axis) mainAxis(pt image.Point) int {
	if a == Horizontal {
		return pt.X
	}
	return pt.Y
}

func (a Axis) crossAxis(pt image.Point) int {
	return a.Other().mainAxis(pt)
}

// point builds a point from (main, cross) coordinates.
func (a Axis) point(main, cross int) image.Point {
	return a.Convert(image.Point{X: main, Y: cross})
}

// Other returns the orthogonal axis.
func (a Axis) Other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// offset returns the position of a box of size sz aligned within
// space. Overflowing boxes start at 0.
func (a Alignment) offset(space, sz int) int {
	if sz >= space {
		return 0
	}
	switch a {
	case End:
		return space - sz
	case Middle:
		return (space - sz) / 2
	default:
		return 0
	}
}

func (a Alignment) String() string {
	switch a {
	case Start:
		return "Start"
	case End:
		return "End"
	case Middle:
		return "Middle"
	default:
		panic("unreachable")
	}
}

func (a Axis) String() string {
	switch a {
	case Horizontal:
		return "Horizontal"
	case Vertical:
		return "Vertical"
	default:
		panic("unreachable")
	}
}

// satAdd adds sizes, saturating at Inf.
func satAdd[T ~int | ~int64](a, b T) T {
	if a >= Inf || b >= Inf {
		return Inf
	}
	if s := a + b; s < Inf {
		return s
	}
	return Inf
}

func clamp[T constraints.Integer](v, lo, hi T) T {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

func maxPoint(a, b image.Point) image.Point {
	return image.Point{X: max(a.X, b.X), Y: max(a.Y, b.Y)}
}

func satAddPoint(a, b image.Point) image.Point {
	return image.Point{X: satAdd(a.X, b.X), Y: satAdd(a.Y, b.Y)}
}

// shrink subtracts d from the size hint avail, leaving unbounded
// components alone.
func shrink(avail, d image.Point) image.Point {
	sub := func(v, d int) int {
		if v >= Inf {
			return Inf
		}
		return max(v-d, 0)
	}
	return image.Point{X: sub(avail.X, d.X), Y: sub(avail.Y, d.Y)}
}
