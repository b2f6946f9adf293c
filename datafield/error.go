package datafield

import (
	"errors"
	"fmt"
)

// ErrMissingField means a mandatory data field item is absent.
var ErrMissingField = errors.New("mandatory item missing")

// FieldError represents a data field item that could not be decoded.
type FieldError struct {
	Item string
	Err  error
}

// Error returns the error message.
func (e FieldError) Error() string {
	return fmt.Sprintf("data field item '%s': %s", e.Item, e.Err)
}

func (e FieldError) Unwrap() error {
	return e.Err
}

func errField(item string, err error) error {
	if err == nil {
		return nil
	}

	return FieldError{
		Item: item,
		Err:  err,
	}
}

// ShapeError reports a sample grid whose shape does not fit the declared
// resolution, including ragged and empty grids.
type ShapeError struct {
	XRes int
	YRes int
	Rows int
	Cols int
}

// Error returns the error message.
func (e ShapeError) Error() string {
	if e.Rows == 0 || e.Cols == 0 {
		return "empty data grid"
	}

	return fmt.Sprintf("data grid %dx%d does not fit resolution %dx%d",
		e.Rows, e.Cols, e.XRes, e.YRes)
}

func errShape(xres int, yres int, rows int, cols int) error {
	return ShapeError{
		XRes: xres,
		YRes: yres,
		Rows: rows,
		Cols: cols,
	}
}
