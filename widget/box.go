// SPDX-License-Identifier: Unlicense OR MIT

package widget

import (
	"image"

	"k8s.io/klog/v2"

	"boxlayout.org/layout"
)

// Box is a widget with configurable geometry. A Box may carry a
// layout that arranges child widgets inside its bounds.
type Box struct {
	Name string
	// Placed, if set, is called whenever the box is assigned a
	// rectangle by its parent layout.
	Placed func(r image.Rectangle)

	host    *Host
	owner   layout.Owner
	hidden  bool
	policy  layout.SizePolicy
	weight  layout.Weight
	min     image.Point
	max     image.Point
	margins layout.Margins
	bounds  image.Rectangle
	layout  layout.Layout
	// dirty is set when the layout must run even if the bounds
	// are unchanged.
	dirty bool
}

// NewBox returns a visible box with no minimum size and no maximum.
func NewBox(name string) *Box {
	return &Box{
		Name:   name,
		max:    layout.Unbounded,
		weight: layout.DefaultWeight,
	}
}

// SetLayout installs l on the box, replacing any previous layout.
func (b *Box) SetLayout(l layout.Layout) {
	if b.layout != nil {
		b.layout.SetOwner(nil)
	}
	b.layout = l
	if l != nil {
		l.SetOwner(b)
	}
	b.InvalidateLayout()
}

// Layout returns the installed layout, or nil.
func (b *Box) Layout() layout.Layout {
	return b.layout
}

// SetMinSize sets the minimum size.
func (b *Box) SetMinSize(sz image.Point) {
	mx := image.Point{X: max(b.max.X, sz.X), Y: max(b.max.Y, sz.Y)}
	if sz == b.min && mx == b.max {
		return
	}
	b.min, b.max = sz, mx
	b.invalidateParent()
}

// SetMaxSize sets the maximum size. It is raised to the minimum size.
func (b *Box) SetMaxSize(sz image.Point) {
	mx := image.Point{X: max(sz.X, b.min.X), Y: max(sz.Y, b.min.Y)}
	if mx == b.max {
		return
	}
	b.max = mx
	b.invalidateParent()
}

// SetFixedSize fixes the size of the box to sz.
func (b *Box) SetFixedSize(sz image.Point) {
	p := layout.Policies(layout.Fixed)
	if sz == b.min && sz == b.max && p == b.policy {
		return
	}
	b.min, b.max = sz, sz
	b.policy = p
	b.invalidateParent()
}

// SetSizePolicy sets the size policy.
func (b *Box) SetSizePolicy(p layout.SizePolicy) {
	if p == b.policy {
		return
	}
	b.policy = p
	b.invalidateParent()
}

// SetWeight sets the weight.
func (b *Box) SetWeight(w layout.Weight) {
	if w == b.weight {
		return
	}
	b.weight = w
	b.invalidateParent()
}

// SetMargins sets the outer margins.
func (b *Box) SetMargins(m layout.Margins) {
	if m == b.margins {
		return
	}
	b.margins = m
	b.invalidateParent()
}

// SetVisible shows or hides the box. Hidden boxes keep their place in
// the parent layout but take no space.
func (b *Box) SetVisible(visible bool) {
	if visible != b.hidden {
		return
	}
	b.hidden = !visible
	b.invalidateParent()
}

// Bounds returns the rectangle assigned by the last layout pass.
func (b *Box) Bounds() image.Rectangle {
	return b.bounds
}

// Owner returns the box whose layout holds b, or nil.
func (b *Box) Owner() layout.Owner {
	return b.owner
}

// Host returns the host of the tree b belongs to, or nil.
func (b *Box) Host() *Host {
	for x := b; x != nil; {
		if x.host != nil {
			return x.host
		}
		p, ok := x.owner.(*Box)
		if !ok {
			break
		}
		x = p
	}
	return nil
}

// Visible reports whether the box takes part in layout.
func (b *Box) Visible() bool {
	return !b.hidden
}

// SizePolicy returns the size policy.
func (b *Box) SizePolicy() layout.SizePolicy {
	return b.policy
}

// Weight returns the weight.
func (b *Box) Weight() layout.Weight {
	return b.weight
}

// Margins returns the outer margins.
func (b *Box) Margins() layout.Margins {
	return b.margins
}

// MinSize returns the minimum size of the box, grown to fit its
// layout.
func (b *Box) MinSize(avail image.Point) image.Point {
	sz := b.min
	if b.layout != nil && b.layout.Visible() {
		lsz := b.layout.MinSize(avail)
		sz = image.Point{X: max(sz.X, lsz.X), Y: max(sz.Y, lsz.Y)}
	}
	return sz
}

// MaxSize returns the maximum size of the box, capped by its layout.
func (b *Box) MaxSize(avail image.Point) image.Point {
	sz := b.max
	if b.layout != nil && b.layout.Visible() {
		lsz := b.layout.MaxSize(avail)
		sz = image.Point{X: min(sz.X, lsz.X), Y: min(sz.Y, lsz.Y)}
	}
	mn := b.MinSize(avail)
	return image.Point{X: max(sz.X, mn.X), Y: max(sz.Y, mn.Y)}
}

// Place records r and lays out the installed layout within it if r
// changed or the layout was invalidated.
func (b *Box) Place(r image.Rectangle) {
	changed := r != b.bounds
	b.bounds = r
	if b.Placed != nil {
		b.Placed(r)
	}
	if b.layout == nil || !(changed || b.dirty) {
		return
	}
	b.dirty = false
	if h := b.Host(); h != nil {
		h.queue.Request(b.layout, r)
		return
	}
	b.layout.LayoutItems(r.Min, r.Size())
}

// SetOwner implements layout.Parented.
func (b *Box) SetOwner(o layout.Owner) {
	b.owner = o
}

// InvalidateLayout marks the installed layout for a new pass and
// propagates the request up to the root of the tree.
func (b *Box) InvalidateLayout() {
	b.dirty = true
	klog.V(4).InfoS("Invalidated layout", "box", b.Name)
	switch {
	case b.owner != nil:
		b.owner.InvalidateLayout()
	case b.host != nil:
		b.host.relayout()
	case b.layout != nil:
		b.Place(b.bounds)
	}
}

// invalidateParent notifies the owner of the layout holding b that
// the geometry of b changed.
func (b *Box) invalidateParent() {
	if b.owner != nil {
		b.owner.InvalidateLayout()
	}
}
