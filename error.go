package gwyfile

import (
	"errors"
	"fmt"
)

// ErrNilTree means a nil tree was handed to a container operation.
var ErrNilTree = errors.New("container tree is nil")

// ErrNilContainer means a nil container was handed to the encoder.
var ErrNilContainer = errors.New("container is nil")

// ErrNilGraph means the container's graph list holds a nil model.
var ErrNilGraph = errors.New("graph model is nil")

// ClassError reports a root object whose class is not a container's.
type ClassError struct {
	Class string
}

// Error returns the error message.
func (e ClassError) Error() string {
	return fmt.Sprintf("root class '%s' is not '%s'", e.Class, ContainerClass)
}

func errClass(class string) error {
	return ClassError{
		Class: class,
	}
}

// KeyError wraps a failure on one container key.
type KeyError struct {
	Path string
	Err  error
}

// Error returns the error message.
func (e KeyError) Error() string {
	return fmt.Sprintf("container key '%s': %s", e.Path, e.Err)
}

// Unwrap returns the parent error.
func (e KeyError) Unwrap() error {
	return e.Err
}

func errKey(path string, err error) error {
	if err == nil {
		return nil
	}

	return KeyError{
		Path: path,
		Err:  err,
	}
}
