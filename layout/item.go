// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"image"
	"reflect"
)

// Kind is the type of value wrapped by an Item.
type Kind uint8

const (
	// KindWidget items wrap a Widget.
	KindWidget Kind = iota
	// KindLayout items wrap a nested Layout.
	KindLayout
	// KindSpacer items wrap a *Spacer.
	KindSpacer
)

// Item is a slot in a layout. It wraps exactly one widget, nested
// layout or spacer, chosen at construction.
type Item struct {
	kind   Kind
	widget Widget
	layout Layout
	spacer *Spacer
	owner  Owner
}

// WidgetItem returns an item wrapping w.
func WidgetItem(w Widget) Item {
	return Item{kind: KindWidget, widget: w}
}

// LayoutItem returns an item wrapping l.
func LayoutItem(l Layout) Item {
	return Item{kind: KindLayout, layout: l}
}

// SpacerItem returns an item wrapping s.
func SpacerItem(s *Spacer) Item {
	return Item{kind: KindSpacer, spacer: s}
}

// Kind returns the type of the wrapped value.
func (it Item) Kind() Kind {
	return it.kind
}

// Widget returns the wrapped widget, or ErrWrongItemType if the item
// wraps something else.
func (it Item) Widget() (Widget, error) {
	if it.kind != KindWidget {
		return nil, fmt.Errorf("%w: %v is not a widget", ErrWrongItemType, it.kind)
	}
	return it.widget, nil
}

// Layout returns the wrapped layout, or ErrWrongItemType.
func (it Item) Layout() (Layout, error) {
	if it.kind != KindLayout {
		return nil, fmt.Errorf("%w: %v is not a layout", ErrWrongItemType, it.kind)
	}
	return it.layout, nil
}

// Spacer returns the wrapped spacer, or ErrWrongItemType.
func (it Item) Spacer() (*Spacer, error) {
	if it.kind != KindSpacer {
		return nil, fmt.Errorf("%w: %v is not a spacer", ErrWrongItemType, it.kind)
	}
	return it.spacer, nil
}

// Owner returns the widget owning the layout this item belongs to, or
// nil if the layout is not installed on a widget.
func (it Item) Owner() Owner {
	return it.owner
}

// geometry returns the wrapped value as a Widget.
func (it Item) geometry() Widget {
	switch it.kind {
	case KindWidget:
		return it.widget
	case KindLayout:
		return it.layout
	case KindSpacer:
		return it.spacer
	default:
		panic("unreachable")
	}
}

// Visible reports whether the item takes part in layout.
func (it Item) Visible() bool {
	return it.geometry().Visible()
}

// SizePolicy of the wrapped value.
func (it Item) SizePolicy() SizePolicy {
	return it.geometry().SizePolicy()
}

// Weight of the wrapped value.
func (it Item) Weight() Weight {
	return it.geometry().Weight()
}

// MinSize returns the minimum size of the wrapped value, or (0,0)
// if it is hidden.
func (it Item) MinSize(avail image.Point) image.Point {
	if !it.Visible() {
		return image.Point{}
	}
	return it.geometry().MinSize(avail)
}

// MaxSize returns the maximum size of the wrapped value, or Unbounded
// if it is hidden.
func (it Item) MaxSize(avail image.Point) image.Point {
	if !it.Visible() {
		return Unbounded
	}
	return it.geometry().MaxSize(avail)
}

// Margins returns the outer margins of the wrapped value. Layout
// margins are inner margins and already part of the layout bounds, so
// layouts report none.
func (it Item) Margins() Margins {
	if it.kind == KindLayout {
		return Margins{}
	}
	return it.geometry().Margins()
}

// bounds returns the effective bounds of a visible item including its
// margins and size policy.
func (it Item) bounds(avail image.Point) (min, max image.Point) {
	m := it.Margins().Size()
	avail = shrink(avail, m)
	min = it.geometry().MinSize(avail)
	max = it.geometry().MaxSize(avail)
	min, max = applyPolicy(it.SizePolicy(), min, max)
	return min.Add(m), satAddPoint(max, m)
}

// place assigns r, minus item margins, to the wrapped value.
func (it Item) place(r image.Rectangle) {
	r = it.Margins().Inset(r)
	switch it.kind {
	case KindLayout:
		it.layout.LayoutItems(r.Min, r.Size())
	default:
		it.geometry().Place(r)
	}
}

// is reports whether the item wraps v.
func (it Item) is(v any) bool {
	switch it.kind {
	case KindWidget:
		w, ok := v.(Widget)
		return ok && isComparable(w) && w == it.widget
	case KindLayout:
		l, ok := v.(Layout)
		return ok && l == it.layout
	case KindSpacer:
		s, ok := v.(*Spacer)
		return ok && s == it.spacer
	default:
		return false
	}
}

// isComparable reports whether v can be compared with == without
// panicking.
func isComparable(v any) bool {
	return v == nil || reflect.TypeOf(v).Comparable()
}

func (k Kind) String() string {
	switch k {
	case KindWidget:
		return "widget"
	case KindLayout:
		return "layout"
	case KindSpacer:
		return "spacer"
	default:
		panic("unreachable")
	}
}
