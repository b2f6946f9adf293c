package tree

import (
	"errors"
	"fmt"
)

// ErrNotFound means no item exists at the requested path.
var ErrNotFound = errors.New("item not found")

// ErrOccupied means the requested path already holds an item. Add
// signals the condition by reporting false; writers that need an error
// wrap this one.
var ErrOccupied = errors.New("path already occupied")

// KindError reports a typed read against an item stored under a
// different kind.
type KindError struct {
	Path string
	Want Kind
	Got  Kind
}

// Error returns the error message.
func (e KindError) Error() string {
	return fmt.Sprintf("item '%s' holds %s, not %s", e.Path, e.Got, e.Want)
}

func errKind(path string, want Kind, got Kind) error {
	return KindError{
		Path: path,
		Want: want,
		Got:  got,
	}
}
