// SPDX-License-Identifier: Unlicense OR MIT

package layout

import "image"

// Expansion is the set of axes a Spacer expands along.
type Expansion uint8

const (
	// ExpandHorizontally makes the spacer grow along the x axis.
	ExpandHorizontally Expansion = 1 << iota
	// ExpandVertically makes the spacer grow along the y axis.
	ExpandVertically

	// ExpandBoth grows along both axes.
	ExpandBoth = ExpandHorizontally | ExpandVertically
)

// Spacer is an invisible item that injects empty space. Along the
// axes it expands in, it behaves like an Expanding widget; along the
// others it is fixed at its minimum size.
type Spacer struct {
	expand Expansion
	min    image.Point
	max    image.Point
	weight Weight
	bounds image.Rectangle
	parent Layout
}

// NewSpacer returns a spacer with minimum size (0,0) that expands
// along the axes in e.
func NewSpacer(e Expansion) *Spacer {
	s := &Spacer{expand: e, weight: DefaultWeight}
	if e&ExpandHorizontally != 0 {
		s.max.X = Inf
	}
	if e&ExpandVertically != 0 {
		s.max.Y = Inf
	}
	return s
}

// FixedSpacer returns a non-expanding spacer of size sz.
func FixedSpacer(sz image.Point) *Spacer {
	return &Spacer{min: sz, max: sz, weight: DefaultWeight}
}

// Expansion returns the axes the spacer expands along.
func (s *Spacer) Expansion() Expansion {
	return s.expand
}

// SetParent records the layout s belongs to. A nil parent detaches it.
func (s *Spacer) SetParent(l Layout) {
	s.parent = l
}

// Parent returns the layout s belongs to, or nil.
func (s *Spacer) Parent() Layout {
	return s.parent
}

// Invalidate asks the parent layout to run a new layout pass.
func (s *Spacer) Invalidate() error {
	if s.parent == nil {
		return ErrNoParent
	}
	s.parent.base().Invalidate()
	return nil
}

// SetMinSize sets the minimum size. Along non-expanding axes the
// maximum follows the minimum. If update is set, the parent layout is
// invalidated.
func (s *Spacer) SetMinSize(sz image.Point, update bool) error {
	if update && s.parent == nil {
		return ErrNoParent
	}
	s.min = sz
	if s.expand&ExpandHorizontally == 0 {
		s.max.X = sz.X
	}
	if s.expand&ExpandVertically == 0 {
		s.max.Y = sz.Y
	}
	s.max = maxPoint(s.min, s.max)
	if update {
		return s.Invalidate()
	}
	return nil
}

// SetMaxSize sets the maximum size along the expanding axes.
func (s *Spacer) SetMaxSize(sz image.Point, update bool) error {
	if update && s.parent == nil {
		return ErrNoParent
	}
	if s.expand&ExpandHorizontally != 0 {
		s.max.X = max(sz.X, s.min.X)
	}
	if s.expand&ExpandVertically != 0 {
		s.max.Y = max(sz.Y, s.min.Y)
	}
	if update {
		return s.Invalidate()
	}
	return nil
}

// SetWeight sets the weight used to share leftover space with other
// expanding items.
func (s *Spacer) SetWeight(w Weight) {
	s.weight = w
}

// Bounds returns the rectangle assigned by the last layout pass.
func (s *Spacer) Bounds() image.Rectangle {
	return s.bounds
}

// Visible is always true; spacers cannot be hidden.
func (s *Spacer) Visible() bool { return true }

// SizePolicy is Expanding along the expansion axes and Fixed
// elsewhere.
func (s *Spacer) SizePolicy() SizePolicy {
	p := SizePolicy{Horizontal: Fixed, Vertical: Fixed}
	if s.expand&ExpandHorizontally != 0 {
		p.Horizontal = Expanding
	}
	if s.expand&ExpandVertically != 0 {
		p.Vertical = Expanding
	}
	return p
}

// Weight returns the weight set by SetWeight.
func (s *Spacer) Weight() Weight { return s.weight }

// MinSize returns the minimum size.
func (s *Spacer) MinSize(image.Point) image.Point { return s.min }

// MaxSize returns the maximum size.
func (s *Spacer) MaxSize(image.Point) image.Point { return s.max }

// Margins is always zero.
func (s *Spacer) Margins() Margins { return Margins{} }

// Place records r as the spacer bounds.
func (s *Spacer) Place(r image.Rectangle) {
	s.bounds = r
}
