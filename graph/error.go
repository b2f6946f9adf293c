package graph

import (
	"errors"
	"fmt"
)

// ErrMissingItem means a mandatory graph item is absent.
var ErrMissingItem = errors.New("mandatory item missing")

// CountError reports a declared element count that disagrees with the
// elements actually given.
type CountError struct {
	Declared int
	Actual   int
}

// Error returns the error message.
func (e CountError) Error() string {
	return fmt.Sprintf("declared count %d does not match actual count %d", e.Declared, e.Actual)
}

func errCount(declared int, actual int) error {
	return CountError{
		Declared: declared,
		Actual:   actual,
	}
}

// ItemError represents a graph item that could not be decoded.
type ItemError struct {
	Item string
	Err  error
}

// Error returns the error message.
func (e ItemError) Error() string {
	return fmt.Sprintf("item '%s': %s", e.Item, e.Err)
}

func (e ItemError) Unwrap() error {
	return e.Err
}

func errItem(item string, err error) error {
	if err == nil {
		return nil
	}

	return ItemError{
		Item: item,
		Err:  err,
	}
}

// CurveError represents one curve of a graph that could not be decoded.
type CurveError struct {
	Index int
	Err   error
}

// Error returns the error message.
func (e CurveError) Error() string {
	return fmt.Sprintf("curve %d: %s", e.Index, e.Err)
}

func (e CurveError) Unwrap() error {
	return e.Err
}

func errCurve(index int, err error) error {
	if err == nil {
		return nil
	}

	return CurveError{
		Index: index,
		Err:   err,
	}
}

// ModelError represents a graph that could not be decoded from its
// container tree.
type ModelError struct {
	ID  int
	Err error
}

// Error returns the error message.
func (e ModelError) Error() string {
	return fmt.Sprintf("graph %d: %s", e.ID, e.Err)
}

func (e ModelError) Unwrap() error {
	return e.Err
}

func errModel(id int, err error) error {
	if err == nil {
		return nil
	}

	return ModelError{
		ID:  id,
		Err: err,
	}
}
