// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"image"

	"golang.org/x/exp/slices"
)

// Base holds the state shared by every layout: the ordered items,
// spacing configuration, overrides and the owner back-reference.
// It is embedded by Linear and Grid.
type Base struct {
	self    Layout
	items   []Item
	margins Margins
	spacing image.Point
	align   Alignment

	// Overrides of the computed geometry, nil when unset.
	policy  *SizePolicy
	weight  *Weight
	minSize *image.Point
	maxSize *image.Point

	disabled bool
	owner    Owner
	parent   Layout
	bounds   image.Rectangle
}

func (b *Base) init(self Layout, st Style) {
	b.self = self
	b.margins = st.Margins
	b.spacing = st.Spacing
	b.align = st.Align
}

func (b *Base) base() *Base {
	return b
}

// Len returns the number of items, visible or not.
func (b *Base) Len() int {
	return len(b.items)
}

// VisibleLen returns the number of visible items.
func (b *Base) VisibleLen() int {
	n := 0
	for _, it := range b.items {
		if it.Visible() {
			n++
		}
	}
	return n
}

// Items returns a copy of the items in order.
func (b *Base) Items() []Item {
	return slices.Clone(b.items)
}

// ItemAt returns the item at index i.
func (b *Base) ItemAt(i int) (Item, error) {
	if i < 0 || i >= len(b.items) {
		return Item{}, indexError(i, len(b.items)-1)
	}
	return b.items[i], nil
}

// IndexOf returns the index of the item wrapping v, which is a Widget,
// Layout or *Spacer, or -1.
func (b *Base) IndexOf(v any) int {
	return slices.IndexFunc(b.items, func(it Item) bool {
		return it.is(v)
	})
}

// Margins returns the inner margins of the layout.
func (b *Base) Margins() Margins {
	return b.margins
}

// SetMargins sets the inner margins. Negative values are clamped
// to zero.
func (b *Base) SetMargins(m Margins) {
	b.margins = Margins{
		Left:   max(m.Left, 0),
		Top:    max(m.Top, 0),
		Right:  max(m.Right, 0),
		Bottom: max(m.Bottom, 0),
	}
}

// Spacing returns the horizontal and vertical space between items.
func (b *Base) Spacing() image.Point {
	return b.spacing
}

// SetSpacing sets the space between items. Negative values are
// clamped to zero.
func (b *Base) SetSpacing(sp image.Point) {
	b.spacing = image.Point{X: max(sp.X, 0), Y: max(sp.Y, 0)}
}

// Alignment returns the alignment of items smaller than their slot.
func (b *Base) Alignment() Alignment {
	return b.align
}

// SetAlignment sets the alignment of items smaller than their slot.
func (b *Base) SetAlignment(a Alignment) {
	b.align = a
}

// SizePolicy returns the policy override if set. Otherwise the policy
// along an axis is Expanding if a visible item expands along it, and
// Minimum if not.
func (b *Base) SizePolicy() SizePolicy {
	if b.policy != nil {
		return *b.policy
	}
	var sp SizePolicy
	for _, it := range b.items {
		if !it.Visible() {
			continue
		}
		p := it.SizePolicy()
		if p.Horizontal == Expanding {
			sp.Horizontal = Expanding
		}
		if p.Vertical == Expanding {
			sp.Vertical = Expanding
		}
	}
	return sp
}

// SetSizePolicy overrides the policy of the layout. If update is set,
// the layout is invalidated.
func (b *Base) SetSizePolicy(p SizePolicy, update bool) {
	b.policy = &p
	if update {
		b.Invalidate()
	}
}

// Weight returns the weight override, or DefaultWeight.
func (b *Base) Weight() Weight {
	if b.weight != nil {
		return *b.weight
	}
	return DefaultWeight
}

// SetWeight overrides the weight of the layout.
func (b *Base) SetWeight(w Weight) {
	b.weight = &w
}

// SetMinSize overrides the computed minimum size.
func (b *Base) SetMinSize(sz image.Point) {
	b.minSize = &sz
}

// SetMaxSize overrides the computed maximum size.
func (b *Base) SetMaxSize(sz image.Point) {
	b.maxSize = &sz
}

// ClearOverrides removes every geometry override.
func (b *Base) ClearOverrides() {
	b.policy = nil
	b.weight = nil
	b.minSize = nil
	b.maxSize = nil
}

// overrideBounds applies the min and max overrides to computed
// bounds. The maximum is never below the minimum.
func (b *Base) overrideBounds(min, max image.Point) (image.Point, image.Point) {
	if b.minSize != nil {
		min = *b.minSize
	}
	if b.maxSize != nil {
		max = *b.maxSize
	}
	return min, maxPoint(min, max)
}

// Enabled reports whether the layout takes part in layout passes.
func (b *Base) Enabled() bool {
	return !b.disabled
}

// SetEnabled enables or disables the layout. A disabled layout is
// skipped like a hidden widget.
func (b *Base) SetEnabled(enabled bool) {
	b.disabled = !enabled
}

// Visible is the same as Enabled.
func (b *Base) Visible() bool {
	return !b.disabled
}

// Bounds returns the rectangle of the last layout pass.
func (b *Base) Bounds() image.Rectangle {
	return b.bounds
}

// Owner returns the widget the layout is installed on.
func (b *Base) Owner() Owner {
	return b.owner
}

// Parent returns the layout this layout is nested in, or nil.
func (b *Base) Parent() Layout {
	return b.parent
}

// SetOwner installs the layout on the widget o, or uninstalls it if o
// is nil. The owner is propagated to every item and nested layout.
func (b *Base) SetOwner(o Owner) {
	b.owner = o
	for i := range b.items {
		b.adopt(&b.items[i], o)
	}
}

// Invalidate notifies the owner that a new layout pass is needed.
// Layouts nested in another layout forward to their parent.
func (b *Base) Invalidate() {
	switch {
	case b.owner != nil:
		b.owner.InvalidateLayout()
	case b.parent != nil:
		b.parent.base().Invalidate()
	}
}

func (b *Base) adopt(it *Item, o Owner) {
	it.owner = o
	switch it.kind {
	case KindWidget:
		if p, ok := it.widget.(Parented); ok {
			p.SetOwner(o)
		}
	case KindLayout:
		it.layout.base().SetOwner(o)
	}
}

// insert adds it at index i. On error the layout is unchanged.
func (b *Base) insert(i int, it Item) error {
	if i < 0 || i > len(b.items) {
		return indexError(i, len(b.items))
	}
	if err := b.check(it); err != nil {
		return err
	}
	b.items = slices.Insert(b.items, i, it)
	b.attach(&b.items[i])
	return nil
}

// check validates it for insertion.
func (b *Base) check(it Item) error {
	if it.kind == KindWidget && !isComparable(it.widget) {
		return fmt.Errorf("%w: %T", ErrUncomparable, it.widget)
	}
	if b.IndexOf(it.geometry()) >= 0 {
		return fmt.Errorf("%w: %v", ErrDuplicateItem, it.kind)
	}
	if it.kind == KindLayout {
		if it.layout == b.self {
			return fmt.Errorf("%w: layout added to itself", ErrDuplicateItem)
		}
		if p := it.layout.base().parent; p != nil {
			return fmt.Errorf("%w: layout already nested", ErrDuplicateItem)
		}
	}
	return nil
}

func (b *Base) attach(it *Item) {
	switch it.kind {
	case KindLayout:
		it.layout.base().parent = b.self
	case KindSpacer:
		it.spacer.SetParent(b.self)
	}
	b.adopt(it, b.owner)
}

// removeAt removes the item at index i and detaches it.
func (b *Base) removeAt(i int) (Item, error) {
	if i < 0 || i >= len(b.items) {
		return Item{}, indexError(i, len(b.items)-1)
	}
	it := b.items[i]
	b.items = slices.Delete(b.items, i, i+1)
	b.adopt(&it, nil)
	switch it.kind {
	case KindLayout:
		it.layout.base().parent = nil
	case KindSpacer:
		if it.spacer.Parent() == b.self {
			it.spacer.SetParent(nil)
		}
	}
	return it, nil
}

// visible returns the indices of the visible items.
func (b *Base) visible() []int {
	idx := make([]int, 0, len(b.items))
	for i, it := range b.items {
		if it.Visible() {
			idx = append(idx, i)
		}
	}
	return idx
}

// widgetItem converts w to an item, unwrapping layouts passed as
// widgets.
func widgetItem(w Widget) Item {
	if l, ok := w.(Layout); ok {
		return LayoutItem(l)
	}
	return WidgetItem(w)
}
