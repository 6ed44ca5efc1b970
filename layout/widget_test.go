// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"image"

	"boxlayout.org/layout"
)

// testWidget is a widget with fixed geometry that records its
// placements.
type testWidget struct {
	hidden  bool
	policy  layout.SizePolicy
	weight  layout.Weight
	min     image.Point
	max     image.Point
	margins layout.Margins
	rect    image.Rectangle
	placed  int
	owner   layout.Owner
}

func newWidget(min, max image.Point) *testWidget {
	return &testWidget{min: min, max: max, weight: layout.DefaultWeight}
}

// minWidget returns a widget with the given minimum and no maximum.
func minWidget(x, y int) *testWidget {
	return newWidget(image.Pt(x, y), layout.Unbounded)
}

func fixedWidget(x, y int) *testWidget {
	w := newWidget(image.Pt(x, y), image.Pt(x, y))
	w.policy = layout.Policies(layout.Fixed)
	return w
}

func (w *testWidget) Visible() bool { return !w.hidden }
func (w *testWidget) SizePolicy() layout.SizePolicy { return w.policy }
func (w *testWidget) Weight() layout.Weight { return w.weight }
func (w *testWidget) MinSize(image.Point) image.Point { return w.min }
func (w *testWidget) MaxSize(image.Point) image.Point { return w.max }
func (w *testWidget) Margins() layout.Margins { return w.margins }
func (w *testWidget) SetOwner(o layout.Owner) { w.owner = o }
func (w *testWidget) Place(r image.Rectangle) { w.rect = r; w.placed++ }

// testOwner counts invalidations.
type testOwner struct {
	invalidated int
}

func (o *testOwner) InvalidateLayout() { o.invalidated++ }
