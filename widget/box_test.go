// SPDX-License-Identifier: Unlicense OR MIT

package widget_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxlayout.org/layout"
	"boxlayout.org/widget"
)

func column(t *testing.T, boxes ...*widget.Box) *layout.Linear {
	t.Helper()
	l := layout.NewVertical(layout.Style{})
	for _, b := range boxes {
		require.NoError(t, l.AddWidget(b))
	}
	return l
}

func TestBoxGeometry(t *testing.T) {
	b := widget.NewBox("b")
	assert.Equal(t, image.Point{}, b.MinSize(layout.Unbounded))
	assert.Equal(t, layout.Unbounded, b.MaxSize(layout.Unbounded))
	assert.Equal(t, layout.DefaultWeight, b.Weight())
	assert.True(t, b.Visible())

	b.SetMaxSize(image.Pt(50, 50))
	b.SetMinSize(image.Pt(60, 10))
	assert.Equal(t, image.Pt(60, 50), b.MaxSize(layout.Unbounded))
	b.SetMaxSize(image.Pt(0, 0))
	assert.Equal(t, image.Pt(60, 10), b.MaxSize(layout.Unbounded))

	b.SetFixedSize(image.Pt(7, 8))
	assert.Equal(t, image.Pt(7, 8), b.MinSize(layout.Unbounded))
	assert.Equal(t, image.Pt(7, 8), b.MaxSize(layout.Unbounded))
	assert.Equal(t, layout.Policies(layout.Fixed), b.SizePolicy())
}

func TestBoxLayoutBounds(t *testing.T) {
	child := widget.NewBox("child")
	child.SetMinSize(image.Pt(30, 20))
	child.SetMaxSize(image.Pt(40, layout.Inf))
	b := widget.NewBox("b")
	b.SetMinSize(image.Pt(10, 50))
	b.SetLayout(column(t, child))

	// The box grows to fit its layout and is capped by it.
	assert.Equal(t, image.Pt(30, 50), b.MinSize(layout.Unbounded))
	assert.Equal(t, image.Pt(40, layout.Inf), b.MaxSize(layout.Unbounded))
}

func TestBoxWithoutHost(t *testing.T) {
	a := widget.NewBox("a")
	b := widget.NewBox("b")
	b.SetLayout(column(t, a))
	b.Place(image.Rect(0, 0, 10, 10))
	assert.Equal(t, image.Rect(0, 0, 10, 10), a.Bounds())
	assert.Nil(t, b.Host())
}

func TestBoxSetLayout(t *testing.T) {
	root := widget.NewBox("root")
	a := widget.NewBox("a")
	first := column(t, a)
	root.SetLayout(first)
	assert.Equal(t, layout.Owner(root), a.Owner())
	assert.Equal(t, layout.Owner(root), first.Owner())

	second := layout.NewHorizontal(layout.Style{})
	root.SetLayout(second)
	assert.Equal(t, layout.Layout(second), root.Layout())
	assert.Nil(t, first.Owner())
	assert.Nil(t, a.Owner())
}

func TestHostResize(t *testing.T) {
	root := widget.NewBox("root")
	a, b := widget.NewBox("a"), widget.NewBox("b")
	root.SetLayout(column(t, a, b))
	h := widget.NewHost(root)
	assert.Equal(t, root, h.Root())
	assert.Equal(t, h, a.Host())

	h.Resize(image.Pt(100, 100))
	assert.Equal(t, image.Rect(0, 0, 100, 100), root.Bounds())
	assert.Equal(t, image.Rect(0, 0, 100, 50), a.Bounds())
	assert.Equal(t, image.Rect(0, 50, 100, 100), b.Bounds())
	assert.False(t, h.Queue().Running())
	assert.Zero(t, h.Queue().Pending())
}

func TestHostInvalidate(t *testing.T) {
	root := widget.NewBox("root")
	a, b := widget.NewBox("a"), widget.NewBox("b")
	root.SetLayout(column(t, a, b))
	widget.NewHost(root).Resize(image.Pt(100, 100))

	// A geometry change bubbles up to the host and relays the tree.
	b.SetMinSize(image.Pt(0, 80))
	assert.Equal(t, image.Rect(0, 0, 100, 20), a.Bounds())
	assert.Equal(t, image.Rect(0, 20, 100, 100), b.Bounds())

	b.SetVisible(false)
	assert.Equal(t, image.Rect(0, 0, 100, 100), a.Bounds())
}

func TestHostReentrantLayout(t *testing.T) {
	root := widget.NewBox("root")
	a, b := widget.NewBox("a"), widget.NewBox("b")
	root.SetLayout(column(t, a, b))
	h := widget.NewHost(root)
	var placed []image.Rectangle
	a.Placed = func(r image.Rectangle) {
		placed = append(placed, r)
		if len(placed) == 1 {
			// Resizing a sibling in the middle of a pass schedules
			// another pass instead of nesting one.
			b.SetMinSize(image.Pt(0, 80))
			assert.Equal(t, 1, a.Host().Queue().Pending())
		}
	}
	h.Resize(image.Pt(100, 100))

	assert.Equal(t, []image.Rectangle{
		image.Rect(0, 0, 100, 50),
		image.Rect(0, 0, 100, 20),
	}, placed)
	assert.Equal(t, image.Rect(0, 20, 100, 100), b.Bounds())
	assert.Zero(t, h.Queue().Pending())
}

func TestHostSettles(t *testing.T) {
	root := widget.NewBox("root")
	a, b := widget.NewBox("a"), widget.NewBox("b")
	root.SetLayout(column(t, a, b))
	h := widget.NewHost(root)
	var placed []image.Rectangle
	a.Placed = func(r image.Rectangle) {
		placed = append(placed, r)
		// Reapplying the same size on every placement must not
		// schedule another pass.
		b.SetMinSize(image.Pt(0, 80))
	}
	h.Resize(image.Pt(100, 100))

	assert.Equal(t, []image.Rectangle{
		image.Rect(0, 0, 100, 50),
		image.Rect(0, 0, 100, 20),
	}, placed)
	assert.Zero(t, h.Queue().Pending())
}

type countingOwner struct {
	invalidated int
}

func (o *countingOwner) InvalidateLayout() { o.invalidated++ }

func TestBoxSettersUnchanged(t *testing.T) {
	b := widget.NewBox("b")
	o := new(countingOwner)
	b.SetOwner(o)
	set := func() {
		b.SetMinSize(image.Pt(5, 5))
		b.SetMaxSize(image.Pt(50, 50))
		b.SetSizePolicy(layout.Policies(layout.Expanding))
		b.SetWeight(layout.Weight{X: 2, Y: 2})
		b.SetMargins(layout.UniformMargins(3))
		b.SetVisible(false)
	}
	set()
	assert.Equal(t, 6, o.invalidated)
	set()
	assert.Equal(t, 6, o.invalidated)

	b.SetFixedSize(image.Pt(9, 9))
	b.SetFixedSize(image.Pt(9, 9))
	b.SetVisible(true)
	b.SetVisible(true)
	assert.Equal(t, 8, o.invalidated)
}

func TestHostNestedBoxes(t *testing.T) {
	root := widget.NewBox("root")
	c := widget.NewBox("c")
	d, e := widget.NewBox("d"), widget.NewBox("e")
	row := layout.NewHorizontal(layout.Style{})
	require.NoError(t, row.AddWidget(d))
	require.NoError(t, row.AddWidget(e))
	c.SetLayout(row)
	root.SetLayout(column(t, c))
	assert.Equal(t, layout.Owner(c), d.Owner())
	assert.Equal(t, layout.Owner(root), c.Owner())

	h := widget.NewHost(root)
	assert.Equal(t, h, d.Host())
	h.Resize(image.Pt(100, 40))
	assert.Equal(t, image.Rect(0, 0, 100, 40), c.Bounds())
	assert.Equal(t, image.Rect(0, 0, 50, 40), d.Bounds())
	assert.Equal(t, image.Rect(50, 0, 100, 40), e.Bounds())

	// Invalidating a nested box relays its layout too.
	e.SetFixedSize(image.Pt(20, 10))
	assert.Equal(t, image.Rect(0, 0, 80, 40), d.Bounds())
	assert.Equal(t, image.Rect(80, 0, 100, 10), e.Bounds())
}
