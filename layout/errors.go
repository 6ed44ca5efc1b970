// SPDX-License-Identifier: Unlicense OR MIT

package layout

import (
	"errors"
	"fmt"
)

// Structural errors. They report a bug in the construction of a
// widget tree and are never returned by a layout pass.
var (
	ErrDuplicateItem  = errors.New("layout: item already in layout")
	ErrInvalidIndex   = errors.New("layout: invalid index")
	ErrWrongItemType  = errors.New("layout: wrong item type")
	ErrCellOccupied   = errors.New("layout: cell occupied")
	ErrCellUnoccupied = errors.New("layout: cell unoccupied")
	ErrNoParent       = errors.New("layout: no parent")
	ErrUncomparable   = errors.New("layout: widget type not comparable")
)

// CellError records a grid operation that failed at a cell.
type CellError struct {
	Cell Cell
	Err  error
}

func (e *CellError) Error() string {
	return fmt.Sprintf("%v at %v", e.Err, e.Cell)
}

func (e *CellError) Unwrap() error {
	return e.Err
}

func indexError(i, n int) error {
	return fmt.Errorf("%w: %d not in [0;%d]", ErrInvalidIndex, i, n)
}
