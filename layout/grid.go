// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"fmt"
	"image"

	"golang.org/x/exp/slices"
)

// Cell is the row and column of a grid item.
type Cell struct {
	Row, Col int
}

func (c Cell) String() string {
	return fmt.Sprintf("(%d,%d)", c.Row, c.Col)
}

// Grid lays out items in cells. Row heights and column widths are
// distributed independently; a row is as tall as its tallest minimum
// and a column as wide as its widest.
type Grid struct {
	Base
	// cells[i] is the cell of items[i].
	cells  []Cell
	rows   int
	cols   int
	wrap   int
	cursor Cell
}

// NewGrid returns an empty grid. Items added without a cell fill the
// rows left to right, wrapping after columns cells; columns <= 0
// never wraps.
func NewGrid(st Style, columns int) *Grid {
	g := &Grid{wrap: columns}
	g.init(g, st)
	return g
}

// Rows returns the number of rows ever populated.
func (g *Grid) Rows() int {
	return g.rows
}

// Columns returns the number of columns ever populated.
func (g *Grid) Columns() int {
	return g.cols
}

// AddWidget adds w at the next free cell.
func (g *Grid) AddWidget(w Widget) error {
	return g.add(widgetItem(w))
}

// AddLayout adds sub at the next free cell.
func (g *Grid) AddLayout(sub Layout) error {
	return g.add(LayoutItem(sub))
}

// AddSpacer adds s at the next free cell.
func (g *Grid) AddSpacer(s *Spacer) error {
	return g.add(SpacerItem(s))
}

// AddWidgetAt adds w at (row, col).
func (g *Grid) AddWidgetAt(w Widget, row, col int) error {
	return g.addAt(widgetItem(w), Cell{Row: row, Col: col})
}

// AddLayoutAt adds sub at (row, col).
func (g *Grid) AddLayoutAt(sub Layout, row, col int) error {
	return g.addAt(LayoutItem(sub), Cell{Row: row, Col: col})
}

// AddSpacerAt adds s at (row, col).
func (g *Grid) AddSpacerAt(s *Spacer, row, col int) error {
	return g.addAt(SpacerItem(s), Cell{Row: row, Col: col})
}

func (g *Grid) add(it Item) error {
	for g.occupied(g.cursor) {
		g.cursor = g.next(g.cursor)
	}
	if err := g.addAt(it, g.cursor); err != nil {
		return err
	}
	g.cursor = g.next(g.cursor)
	return nil
}

func (g *Grid) next(c Cell) Cell {
	c.Col++
	if g.wrap > 0 && c.Col >= g.wrap {
		c.Row++
		c.Col = 0
	}
	return c
}

func (g *Grid) addAt(it Item, c Cell) error {
	if c.Row < 0 || c.Col < 0 {
		return fmt.Errorf("%w: cell %v", ErrInvalidIndex, c)
	}
	if g.occupied(c) {
		return &CellError{Cell: c, Err: ErrCellOccupied}
	}
	if err := g.insert(len(g.items), it); err != nil {
		return err
	}
	g.cells = append(g.cells, c)
	g.rows = max(g.rows, c.Row+1)
	g.cols = max(g.cols, c.Col+1)
	return nil
}

func (g *Grid) occupied(c Cell) bool {
	return slices.Contains(g.cells, c)
}

func (g *Grid) lookup(c Cell) (int, error) {
	i := slices.Index(g.cells, c)
	if i < 0 {
		return -1, &CellError{Cell: c, Err: ErrCellUnoccupied}
	}
	return i, nil
}

// Cell returns the item at (row, col).
func (g *Grid) Cell(row, col int) (Item, error) {
	i, err := g.lookup(Cell{Row: row, Col: col})
	if err != nil {
		return Item{}, err
	}
	return g.items[i], nil
}

// CellOf returns the cell of the item wrapping v.
func (g *Grid) CellOf(v any) (Cell, bool) {
	i := g.IndexOf(v)
	if i < 0 {
		return Cell{}, false
	}
	return g.cells[i], true
}

// WidgetAt returns the widget at (row, col). It fails with
// ErrWrongItemType if the cell holds a layout or spacer.
func (g *Grid) WidgetAt(row, col int) (Widget, error) {
	it, err := g.Cell(row, col)
	if err != nil {
		return nil, err
	}
	return it.Widget()
}

// LayoutAt returns the nested layout at (row, col).
func (g *Grid) LayoutAt(row, col int) (Layout, error) {
	it, err := g.Cell(row, col)
	if err != nil {
		return nil, err
	}
	return it.Layout()
}

// RemoveCell removes the item at (row, col). The grid dimensions
// do not shrink.
func (g *Grid) RemoveCell(row, col int) error {
	i, err := g.lookup(Cell{Row: row, Col: col})
	if err != nil {
		return err
	}
	if _, err := g.removeAt(i); err != nil {
		return err
	}
	g.cells = slices.Delete(g.cells, i, i+1)
	return nil
}

// Remove removes the item wrapping v, a Widget, Layout or *Spacer.
func (g *Grid) Remove(v any) error {
	c, ok := g.CellOf(v)
	if !ok {
		return fmt.Errorf("%w: item not in layout", ErrInvalidIndex)
	}
	return g.RemoveCell(c.Row, c.Col)
}

// line is a row or column taking part in a solve.
type line struct {
	index int
	span  Span
}

// lines returns the visible rows (a == Vertical) or columns
// (a == Horizontal) with their aggregated bounds. Lines holding no
// visible item are left out.
func (g *Grid) lines(a Axis, hint image.Point) []line {
	n := g.cols
	if a == Vertical {
		n = g.rows
	}
	spans := make([]Span, n)
	used := make([]bool, n)
	for i, it := range g.items {
		if !it.Visible() {
			continue
		}
		k := g.cells[i].Col
		if a == Vertical {
			k = g.cells[i].Row
		}
		mn, mx := it.bounds(hint)
		s := &spans[k]
		s.Min = max(s.Min, a.mainAxis(mn))
		s.Max = max(s.Max, a.mainAxis(mx))
		if it.SizePolicy().Along(a) == Expanding {
			s.Policy = Expanding
		}
		s.Weight = max(s.Weight, it.Weight().Along(a))
		used[k] = true
	}
	var ls []line
	for k, s := range spans {
		if used[k] {
			ls = append(ls, line{index: k, span: s})
		}
	}
	return ls
}

// MinSize returns the sum of the row and column minimums plus
// spacing and margins.
func (g *Grid) MinSize(avail image.Point) image.Point {
	sz, _ := g.aggregate(avail)
	return sz
}

// MaxSize returns the sum of the row and column maximums plus
// spacing and margins.
func (g *Grid) MaxSize(avail image.Point) image.Point {
	_, sz := g.aggregate(avail)
	return sz
}

func (g *Grid) aggregate(avail image.Point) (image.Point, image.Point) {
	margins := g.margins.Size()
	inner := shrink(avail, margins)
	if g.VisibleLen() == 0 {
		return g.overrideBounds(margins, Unbounded)
	}
	var minSz, maxSz image.Point
	for _, a := range []Axis{Horizontal, Vertical} {
		ls := g.lines(a, inner)
		var lo, hi int
		for _, l := range ls {
			lo += l.span.Min
			hi = satAdd(hi, l.span.Max)
		}
		gaps := a.mainAxis(g.spacing) * (len(ls) - 1)
		lo += gaps + a.mainAxis(margins)
		hi = satAdd(satAdd(hi, gaps), a.mainAxis(margins))
		if a == Horizontal {
			minSz.X, maxSz.X = lo, hi
		} else {
			minSz.Y, maxSz.Y = lo, hi
		}
	}
	return g.overrideBounds(minSz, maxSz)
}

// Place lays out the items within r.
func (g *Grid) Place(r image.Rectangle) {
	g.LayoutItems(r.Min, r.Size())
}

// LayoutItems distributes the rows and columns independently and
// places every visible item in its cell, clamped to its bounds and
// aligned.
func (g *Grid) LayoutItems(pos, size image.Point) {
	if g.disabled {
		return
	}
	g.bounds = image.Rectangle{Min: pos, Max: pos.Add(size)}
	if g.VisibleLen() == 0 {
		return
	}
	content := g.margins.Inset(g.bounds)
	csz := content.Size()
	colX, colW := g.solve(Horizontal, content, csz)
	rowY, rowH := g.solve(Vertical, content, csz)
	for i, it := range g.items {
		if !it.Visible() {
			continue
		}
		c := g.cells[i]
		mn, mx := it.bounds(csz)
		cell := image.Point{X: colW[c.Col], Y: rowH[c.Row]}
		sz := image.Point{
			X: clamp(cell.X, mn.X, mx.X),
			Y: clamp(cell.Y, mn.Y, mx.Y),
		}
		origin := image.Point{
			X: colX[c.Col] + g.align.offset(cell.X, sz.X),
			Y: rowY[c.Row] + g.align.offset(cell.Y, sz.Y),
		}
		it.place(image.Rectangle{Min: origin, Max: origin.Add(sz)})
	}
}

// solve distributes the content length along a among the visible
// lines and returns the offset and size of every line, indexed by
// row or column.
func (g *Grid) solve(a Axis, content image.Rectangle, csz image.Point) (offsets, sizes []int) {
	n := g.cols
	if a == Vertical {
		n = g.rows
	}
	offsets = make([]int, n)
	sizes = make([]int, n)
	ls := g.lines(a, csz)
	if len(ls) == 0 {
		return offsets, sizes
	}
	gap := a.mainAxis(g.spacing)
	length := a.mainAxis(csz) - gap*(len(ls)-1)
	spans := make([]Span, len(ls))
	for k, l := range ls {
		spans[k] = l.span
	}
	shares := Distribute(spans, length)
	logShares(a, length, spans, shares)
	cursor := a.mainAxis(content.Min)
	for k, l := range ls {
		offsets[l.index] = cursor
		sizes[l.index] = shares[k].Size
		cursor += shares[k].Size + gap
	}
	return offsets, sizes
}
