// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"fmt"
	"image"
	"strconv"

	"boxlayout.org/unit"
)

type formatState struct {
	current int
	orig    string
	expr    string
	metric  unit.Converter
	style   Style
	widgets []Widget
}

type formatError string

// Parse builds a layout tree from a format string, similar to how
// fmt.Printf interpolates a string.
//
// The format string is an expression where layouts are similar to
// function calls, and the underscore denotes a widget from the
// arguments. The ith _ adds the ith widget from the arguments. Every
// layout is created with the style st, and values with units are
// converted to pixels by m.
//
// For example,
//
//	layout.Parse("vbox(_, hbox(middle, _, space, _))", m, st, w1, w2, w3)
//
// is a column holding w1 above a row of w2 and w3 pushed apart by a
// stretching spacer.
//
// Available layouts:
//
//	vbox(<alignment>, children...) and hbox(<alignment>, children...)
//	lay out children in a column or a row. If alignment is specified,
//	it must be one of start, middle, end.
//
//	grid(<columns>, children...) lays out children in a grid filled
//	row by row, columns cells wide.
//
//	inset(insets, layout) sets the margins of layout. Insets are either:
//	one value for uniform insets; two values for top/bottom and
//	right/left insets; three values for top, right/left and bottom
//	insets; or four values for top, right, bottom, left insets.
//
// Available children, besides _ and nested layouts:
//
//	space stretches along the axis of the parent layout, or both axes
//	in a grid. hspace and vspace stretch horizontally or vertically.
//
//	gap(<size>) is a fixed gap along the axis of the parent layout.
//
// If the format is invalid, Parse returns an error where a cross, ✗,
// marks the error position.
func Parse(format string, m unit.Converter, st Style, widgets ...Widget) (l Layout, err error) {
	if format == "" {
		return nil, errors.New("layout: Parse: empty format")
	}
	state := formatState{
		orig:    format,
		expr:    format,
		metric:  m,
		style:   st,
		widgets: widgets,
	}
	defer func() {
		if e := recover(); e != nil {
			ferr, ok := e.(formatError)
			if !ok {
				panic(e)
			}
			pos := len(state.orig) - len(state.expr)
			msg := state.orig[:pos] + "✗" + state.orig[pos:]
			l, err = nil, fmt.Errorf("layout: Parse: %s:%d: %s", msg, pos, ferr)
		}
	}()
	l = parseLayout(&state)
	skipWhitespace(&state)
	if state.expr != "" {
		errorf("unexpected trailing input")
	}
	if n := len(widgets); state.current != n {
		errorf("%d widgets given but %d used", n, state.current)
	}
	return l, nil
}

func parseLayout(state *formatState) Layout {
	name := parseName(state)
	if name == "" {
		errorf("missing layout name")
	}
	expect(state, "(")
	var l Layout
	switch name {
	case "vbox":
		l = parseLinear(state, NewVertical(state.style))
	case "hbox":
		l = parseLinear(state, NewHorizontal(state.style))
	case "grid":
		cols := parseInt(state)
		expect(state, ",")
		g := NewGrid(state.style, cols)
		parseChildren(state, g)
		l = g
	case "inset":
		m := parseInset(state)
		l = parseLayout(state)
		l.base().SetMargins(m)
	default:
		errorf("invalid layout %q", name)
	}
	expect(state, ")")
	return l
}

func parseLinear(state *formatState, l *Linear) *Linear {
	// Parse alignment, if present.
	backup := *state
	if c := peek(state); 'a' <= c && c <= 'z' {
		name := parseName(state)
		if align, ok := alignFor(name); ok {
			l.SetAlignment(align)
			if peek(state) == ',' {
				expect(state, ",")
			}
		} else {
			*state = backup
		}
	}
	parseChildren(state, l)
	return l
}

func parseChildren(state *formatState, parent Layout) {
	for {
		switch peek(state) {
		case ')':
			return
		case ',':
			expect(state, ",")
		case '_':
			expect(state, "_")
			if i, max := state.current, len(state.widgets)-1; i > max {
				errorf("widget index %d out of bounds [0;%d]", i, max)
			}
			addWidget(parent, state.widgets[state.current])
			state.current++
		default:
			parseChild(state, parent)
		}
	}
}

func parseChild(state *formatState, parent Layout) {
	backup := *state
	name := parseName(state)
	axis, linear := axisOf(parent)
	switch name {
	case "space":
		e := ExpandBoth
		if linear {
			e = ExpandVertically
			if axis == Horizontal {
				e = ExpandHorizontally
			}
		}
		addSpacer(parent, NewSpacer(e))
	case "hspace":
		addSpacer(parent, NewSpacer(ExpandHorizontally))
	case "vspace":
		addSpacer(parent, NewSpacer(ExpandVertically))
	case "gap":
		expect(state, "(")
		n := state.metric.Px(parseValue(state))
		expect(state, ")")
		sz := image.Point{X: n, Y: n}
		if linear {
			sz = axis.point(n, 0)
		}
		addSpacer(parent, FixedSpacer(sz))
	default:
		*state = backup
		sub := parseLayout(state)
		switch p := parent.(type) {
		case *Linear:
			check(p.AddLayout(sub))
		case *Grid:
			check(p.AddLayout(sub))
		}
	}
}

func axisOf(l Layout) (Axis, bool) {
	if lin, ok := l.(*Linear); ok {
		return lin.Axis(), true
	}
	return Horizontal, false
}

func addWidget(parent Layout, w Widget) {
	switch p := parent.(type) {
	case *Linear:
		check(p.AddWidget(w))
	case *Grid:
		check(p.AddWidget(w))
	}
}

func addSpacer(parent Layout, s *Spacer) {
	switch p := parent.(type) {
	case *Linear:
		check(p.AddSpacer(s))
	case *Grid:
		check(p.AddSpacer(s))
	}
}

func check(err error) {
	if err != nil {
		errorf("%v", err)
	}
}

func parseInset(state *formatState) Margins {
	px := func(v unit.Value) int {
		return state.metric.Px(v)
	}
	v1 := px(parseValue(state))
	if peek(state) == ',' {
		expect(state, ",")
		if !isNumber(peek(state)) {
			return UniformMargins(v1)
		}
	}
	v2 := px(parseValue(state))
	if peek(state) == ',' {
		expect(state, ",")
		if !isNumber(peek(state)) {
			return Margins{Top: v1, Right: v2, Bottom: v1, Left: v2}
		}
	}
	v3 := px(parseValue(state))
	if peek(state) == ',' {
		expect(state, ",")
		if !isNumber(peek(state)) {
			return Margins{Top: v1, Right: v2, Bottom: v3, Left: v2}
		}
	}
	v4 := px(parseValue(state))
	expect(state, ",")
	return Margins{Top: v1, Right: v2, Bottom: v3, Left: v4}
}

func parseValue(state *formatState) unit.Value {
	i := parseFloat(state)
	if len(state.expr) < 2 {
		errorf("missing unit")
	}
	u := state.expr[:2]
	var v unit.Value
	switch u {
	case "dp":
		v = unit.Dp(i)
	case "sp":
		v = unit.Sp(i)
	case "px":
		v = unit.Px(i)
	default:
		errorf("unknown unit")
	}
	state.expr = state.expr[len(u):]
	return v
}

func parseName(state *formatState) string {
	skipWhitespace(state)
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		switch {
		case c == '(' || c == ',' || c == ')' || isSpace(c):
			fname := state.expr[:i]
			state.expr = state.expr[i:]
			return fname
		case c < 'a' || 'z' < c:
			errorf("invalid character '%c' in layout name", c)
		}
	}
	state.expr = state.expr[i:]
	errorf("unexpected end")
	return ""
}

func parseFloat(state *formatState) float32 {
	skipWhitespace(state)
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		if !isNumber(rune(c)) {
			break
		}
	}
	expr := state.expr[:i]
	v, err := strconv.ParseFloat(expr, 32)
	if err != nil {
		errorf("invalid number %q", expr)
	}
	state.expr = state.expr[i:]
	return float32(v)
}

func parseInt(state *formatState) int {
	skipWhitespace(state)
	i := 0
	for ; i < len(state.expr); i++ {
		c := state.expr[i]
		if c < '0' || c > '9' {
			break
		}
	}
	expr := state.expr[:i]
	v, err := strconv.Atoi(expr)
	if err != nil {
		errorf("invalid number %q", expr)
	}
	state.expr = state.expr[i:]
	return v
}

func peek(state *formatState) rune {
	skipWhitespace(state)
	if len(state.expr) == 0 {
		errorf("unexpected end")
	}
	return rune(state.expr[0])
}

func expect(state *formatState, str string) {
	skipWhitespace(state)
	n := len(str)
	if len(state.expr) < n || state.expr[:n] != str {
		errorf("expected %q", str)
	}
	state.expr = state.expr[n:]
}

func skipWhitespace(state *formatState) {
	for len(state.expr) > 0 && isSpace(state.expr[0]) {
		state.expr = state.expr[1:]
	}
}

func isSpace(c byte) bool {
	switch c {
	case '\t', '\n', '\v', '\f', '\r', ' ':
		return true
	}
	return false
}

func isNumber(c rune) bool {
	return ('0' <= c && c <= '9') || c == '.'
}

func alignFor(name string) (Alignment, bool) {
	switch name {
	case "start":
		return Start, true
	case "middle":
		return Middle, true
	case "end":
		return End, true
	default:
		return 0, false
	}
}

func errorf(f string, args ...interface{}) {
	panic(formatError(fmt.Sprintf(f, args...)))
}

func (e formatError) Error() string {
	return string(e)
}
