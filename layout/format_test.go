// SPDX-License-Identifier: Unlicense OR MIT

package layout_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"boxlayout.org/layout"
	"boxlayout.org/unit"
)

func TestParse(t *testing.T) {
	m := unit.Metric{PxPerDp: 2}
	st := layout.DefaultStyle(m)
	a, b, c := minWidget(0, 0), minWidget(0, 0), minWidget(0, 0)
	l, err := layout.Parse("vbox(_, hbox(middle, _, space, _))", m, st, a, b, c)
	require.NoError(t, err)

	v, ok := l.(*layout.Linear)
	require.True(t, ok)
	assert.Equal(t, layout.Vertical, v.Axis())
	assert.Equal(t, image.Pt(8, 8), v.Spacing())
	require.Equal(t, 2, v.Len())

	it, err := v.ItemAt(1)
	require.NoError(t, err)
	sub, err := it.Layout()
	require.NoError(t, err)
	h := sub.(*layout.Linear)
	assert.Equal(t, layout.Horizontal, h.Axis())
	assert.Equal(t, layout.Middle, h.Alignment())
	assert.Equal(t, 0, h.IndexOf(b))
	assert.Equal(t, 2, h.IndexOf(c))
	it, err = h.ItemAt(1)
	require.NoError(t, err)
	s, err := it.Spacer()
	require.NoError(t, err)
	assert.Equal(t, layout.ExpandHorizontally, s.Expansion())
}

func TestParseGrid(t *testing.T) {
	ws := []layout.Widget{minWidget(0, 0), minWidget(0, 0), minWidget(0, 0)}
	l, err := layout.Parse("grid(2, _, space, _, _)", unit.Metric{}, layout.Style{}, ws...)
	require.NoError(t, err)
	g := l.(*layout.Grid)
	assert.Equal(t, 2, g.Rows())
	assert.Equal(t, 2, g.Columns())
	it, err := g.Cell(0, 1)
	require.NoError(t, err)
	s, err := it.Spacer()
	require.NoError(t, err)
	assert.Equal(t, layout.ExpandBoth, s.Expansion())
	cell, ok := g.CellOf(ws[2])
	require.True(t, ok)
	assert.Equal(t, layout.Cell{Row: 1, Col: 1}, cell)
}

func TestParseInset(t *testing.T) {
	m := unit.Metric{PxPerDp: 2}
	for _, test := range []struct {
		format  string
		margins layout.Margins
	}{
		{"inset(4dp, vbox(_))", layout.UniformMargins(8)},
		{"inset(1px, 2px, vbox(_))", layout.Margins{Top: 1, Right: 2, Bottom: 1, Left: 2}},
		{"inset(1px, 2px, 3px, vbox(_))", layout.Margins{Top: 1, Right: 2, Bottom: 3, Left: 2}},
		{"inset(1px, 2px, 3px, 4px, vbox(_))", layout.Margins{Top: 1, Right: 2, Bottom: 3, Left: 4}},
	} {
		t.Run(test.format, func(t *testing.T) {
			l, err := layout.Parse(test.format, m, layout.Style{}, minWidget(0, 0))
			require.NoError(t, err)
			assert.Equal(t, test.margins, l.Margins())
			// Inner margins are not outer margins of the layout item.
			assert.Equal(t, image.Pt(test.margins.Left+test.margins.Right, test.margins.Top+test.margins.Bottom), l.MinSize(layout.Unbounded))
		})
	}
}

func TestParseGap(t *testing.T) {
	l, err := layout.Parse("hbox(_, gap(10px), _, hspace, vspace)", unit.Metric{}, layout.Style{}, minWidget(0, 0), minWidget(0, 0))
	require.NoError(t, err)
	h := l.(*layout.Linear)
	require.Equal(t, 5, h.Len())
	it, err := h.ItemAt(1)
	require.NoError(t, err)
	gap, err := it.Spacer()
	require.NoError(t, err)
	assert.Equal(t, image.Pt(10, 0), gap.MinSize(layout.Unbounded))
	assert.Equal(t, image.Pt(10, 0), gap.MaxSize(layout.Unbounded))
	it, err = h.ItemAt(4)
	require.NoError(t, err)
	vs, err := it.Spacer()
	require.NoError(t, err)
	assert.Equal(t, layout.ExpandVertically, vs.Expansion())
}

func TestParseErrors(t *testing.T) {
	w := minWidget(0, 0)
	tests := []struct {
		format  string
		widgets []layout.Widget
		err     string
	}{
		{"", nil, "layout: Parse: empty format"},
		{"vbox(_", []layout.Widget{w}, "layout: Parse: vbox(_✗:6: unexpected end"},
		{"foo(_)", []layout.Widget{w}, `layout: Parse: foo(✗_):4: invalid layout "foo"`},
		{"vbox(_) x", []layout.Widget{w}, "layout: Parse: vbox(_) ✗x:8: unexpected trailing input"},
		{"vbox(_)", []layout.Widget{w, minWidget(0, 0)}, "layout: Parse: vbox(_)✗:7: 2 widgets given but 1 used"},
		{"vbox(_, _)", []layout.Widget{w}, "layout: Parse: vbox(_, _✗):9: widget index 1 out of bounds [0;0]"},
		{"hbox(gap(5))", nil, "layout: Parse: hbox(gap(5✗)):10: unknown unit"},
		{"hbox(gap(5", nil, "layout: Parse: hbox(gap(5✗:10: missing unit"},
		{"inset(4em, vbox())", nil, "layout: Parse: inset(4✗em, vbox()):7: unknown unit"},
		{"vbox(_, _)", []layout.Widget{w, w}, "layout: Parse: vbox(_, _✗):9: layout: item already in layout: widget"},
		{"Vbox()", nil, "layout: Parse: ✗Vbox():0: invalid character 'V' in layout name"},
	}
	for _, test := range tests {
		t.Run(test.format, func(t *testing.T) {
			l, err := layout.Parse(test.format, unit.Metric{}, layout.Style{}, test.widgets...)
			assert.Nil(t, l)
			assert.EqualError(t, err, test.err)
		})
	}
}
