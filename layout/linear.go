// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"image"

	"k8s.io/klog/v2"
)

// Linear lays out items in a row or a column. Along its axis the
// available space is divided by Distribute; across it every item is
// clamped to its bounds and aligned.
type Linear struct {
	Base
	axis Axis
}

// NewVertical returns a layout stacking items top to bottom.
func NewVertical(st Style) *Linear {
	return newLinear(Vertical, st)
}

// NewHorizontal returns a layout placing items left to right.
func NewHorizontal(st Style) *Linear {
	return newLinear(Horizontal, st)
}

func newLinear(a Axis, st Style) *Linear {
	l := &Linear{axis: a}
	l.init(l, st)
	return l
}

// Axis returns the axis items are laid out along.
func (l *Linear) Axis() Axis {
	return l.axis
}

// AddWidget appends w.
func (l *Linear) AddWidget(w Widget) error {
	return l.InsertWidget(len(l.items), w)
}

// InsertWidget inserts w at index i.
func (l *Linear) InsertWidget(i int, w Widget) error {
	return l.insert(i, widgetItem(w))
}

// AddLayout appends the nested layout sub.
func (l *Linear) AddLayout(sub Layout) error {
	return l.InsertLayout(len(l.items), sub)
}

// InsertLayout inserts the nested layout sub at index i.
func (l *Linear) InsertLayout(i int, sub Layout) error {
	return l.insert(i, LayoutItem(sub))
}

// AddSpacer appends s.
func (l *Linear) AddSpacer(s *Spacer) error {
	return l.InsertSpacer(len(l.items), s)
}

// InsertSpacer inserts s at index i.
func (l *Linear) InsertSpacer(i int, s *Spacer) error {
	return l.insert(i, SpacerItem(s))
}

// AddStretch appends a spacer expanding along the layout axis with
// weight w and returns it.
func (l *Linear) AddStretch(w int) (*Spacer, error) {
	e := ExpandHorizontally
	if l.axis == Vertical {
		e = ExpandVertically
	}
	s := NewSpacer(e)
	s.SetWeight(Weight{X: w, Y: w})
	if err := l.AddSpacer(s); err != nil {
		return nil, err
	}
	return s, nil
}

// AddGap appends a spacer of length n along the layout axis and
// returns it.
func (l *Linear) AddGap(n int) (*Spacer, error) {
	s := FixedSpacer(l.axis.point(n, 0))
	if err := l.AddSpacer(s); err != nil {
		return nil, err
	}
	return s, nil
}

// RemoveAt removes the item at index i.
func (l *Linear) RemoveAt(i int) error {
	_, err := l.removeAt(i)
	return err
}

// Remove removes the item wrapping v, a Widget, Layout or *Spacer.
func (l *Linear) Remove(v any) error {
	i := l.IndexOf(v)
	if i < 0 {
		return fmt.Errorf("%w: item not in layout", ErrInvalidIndex)
	}
	return l.RemoveAt(i)
}

// WidgetAt returns the widget at index i. It fails with
// ErrWrongItemType if the item is not a widget.
func (l *Linear) WidgetAt(i int) (Widget, error) {
	it, err := l.ItemAt(i)
	if err != nil {
		return nil, err
	}
	return it.Widget()
}

// MinSize returns the minimum size of the layout: the sum of the item
// minimums and spacing along the axis, the largest minimum across it,
// plus margins.
func (l *Linear) MinSize(avail image.Point) image.Point {
	sz, _ := l.aggregate(avail)
	return sz
}

// MaxSize is like MinSize for maximums. Unbounded items make the sum
// unbounded.
func (l *Linear) MaxSize(avail image.Point) image.Point {
	_, sz := l.aggregate(avail)
	return sz
}

func (l *Linear) aggregate(avail image.Point) (image.Point, image.Point) {
	margins := l.margins.Size()
	inner := shrink(avail, margins)
	var minMain, minCross, maxMain, maxCross, n int
	for _, it := range l.items {
		if !it.Visible() {
			continue
		}
		mn, mx := it.bounds(inner)
		minMain += l.axis.mainAxis(mn)
		minCross = max(minCross, l.axis.crossAxis(mn))
		maxMain = satAdd(maxMain, l.axis.mainAxis(mx))
		maxCross = max(maxCross, l.axis.crossAxis(mx))
		n++
	}
	if n == 0 {
		return l.overrideBounds(margins, Unbounded)
	}
	gaps := l.axis.mainAxis(l.spacing) * (n - 1)
	minSz := l.axis.point(minMain+gaps, minCross).Add(margins)
	maxSz := satAddPoint(l.axis.point(satAdd(maxMain, gaps), maxCross), margins)
	return l.overrideBounds(minSz, maxSz)
}

// Place lays out the items within r.
func (l *Linear) Place(r image.Rectangle) {
	l.LayoutItems(r.Min, r.Size())
}

// LayoutItems distributes the space along the axis and places every
// visible item. It does nothing if the layout is disabled or has no
// visible items. Items are never given less than their minimum; if
// the minimums do not fit, the items overflow the rectangle.
func (l *Linear) LayoutItems(pos, size image.Point) {
	if l.disabled {
		return
	}
	l.bounds = image.Rectangle{Min: pos, Max: pos.Add(size)}
	vis := l.visible()
	if len(vis) == 0 {
		return
	}
	content := l.margins.Inset(l.bounds)
	csz := content.Size()
	gap := l.axis.mainAxis(l.spacing)
	length := l.axis.mainAxis(csz) - gap*(len(vis)-1)

	spans := make([]Span, len(vis))
	mins := make([]image.Point, len(vis))
	maxs := make([]image.Point, len(vis))
	for k, i := range vis {
		it := l.items[i]
		mins[k], maxs[k] = it.bounds(csz)
		spans[k] = Span{
			Min:    l.axis.mainAxis(mins[k]),
			Max:    l.axis.mainAxis(maxs[k]),
			Policy: it.SizePolicy().Along(l.axis),
			Weight: it.Weight().Along(l.axis),
		}
	}
	shares := Distribute(spans, length)
	logShares(l.axis, length, spans, shares)

	cross := l.axis.crossAxis(csz)
	cursor := l.axis.mainAxis(content.Min)
	for k, i := range vis {
		main := shares[k].Size
		c := clamp(cross, l.axis.crossAxis(mins[k]), l.axis.crossAxis(maxs[k]))
		off := l.align.offset(cross, c)
		origin := l.axis.point(cursor, l.axis.crossAxis(content.Min)+off)
		l.items[i].place(image.Rectangle{Min: origin, Max: origin.Add(l.axis.point(main, c))})
		cursor += main
		if k < len(vis)-1 {
			cursor += gap
		}
	}
}

func logShares(a Axis, length int, spans []Span, shares []Share) {
	klog.V(4).InfoS("Distributed layout space", "axis", a, "length", length, "items", len(spans), "allocated", Sum(shares))
	if v := klog.V(5); v.Enabled() {
		for i, s := range shares {
			v.InfoS("Layout share", "axis", a, "index", i, "min", spans[i].Min, "max", spans[i].Max, "size", s.Size, "disposition", s.Disposition)
		}
	}
}
