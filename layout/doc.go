// SPDX-License-Identifier: Unlicense OR MIT

/*
Package layout implements a box-model layout solver.

A layout owns an ordered list of items, each wrapping exactly one of a
Widget, a nested Layout or a Spacer. Every item reports a SizePolicy, a
Weight and minimum and maximum sizes; LayoutItems distributes the
available space among the items so that the allocations fill the space
exactly, then places every item and recurses into nested layouts.

Linear layouts (NewVertical, NewHorizontal) solve along one axis and
clamp along the other. Grid layouts solve rows and columns independently.
Both are driven by the same one dimensional Distribute function.

Sizes are in whole pixels. Use package unit and a Style to express
margins and spacing in device independent units.

Layouts are not safe for concurrent use. Placement callbacks that want
to trigger a new layout pass should go through a Queue, which defers
the request until the running pass completes.
*/
package layout
