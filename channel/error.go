package channel

import (
	"errors"
	"fmt"
)

// ErrNoTitle means a channel was given an empty title.
var ErrNoTitle = errors.New("channel title is empty")

// ErrNoData means a channel was given no data field.
var ErrNoData = errors.New("channel has no data field")

// MissingFieldError reports a mandatory container key that holds no
// item. Only the title and data keys of a channel are mandatory.
type MissingFieldError struct {
	Path string
}

// Error returns the error message.
func (e MissingFieldError) Error() string {
	return fmt.Sprintf("channel missing required field '%s'", e.Path)
}

func errMissing(path string) error {
	return MissingFieldError{
		Path: path,
	}
}

// ItemError wraps a failure on one container key of a channel. The path
// carries the channel id, so the error locates the broken entry exactly.
type ItemError struct {
	Path string
	Err  error
}

// Error returns the error message.
func (e ItemError) Error() string {
	return fmt.Sprintf("channel item '%s': %s", e.Path, e.Err)
}

// Unwrap returns the parent error.
func (e ItemError) Unwrap() error {
	return e.Err
}

func errItem(path string, err error) error {
	if err == nil {
		return nil
	}

	return ItemError{
		Path: path,
		Err:  err,
	}
}
