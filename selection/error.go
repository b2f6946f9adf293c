package selection

import (
	"errors"
	"fmt"
)

// ErrEmpty is returned when a selection is constructed with no instances.
var ErrEmpty = errors.New("selection has no instances")

// ErrMissingItem means a mandatory selection item is absent.
var ErrMissingItem = errors.New("mandatory item missing")

// KindUsageError reports a constructor applied to a selection kind of a
// different instance arity.
type KindUsageError struct {
	Kind Kind
	Want int
}

// Error returns the error message.
func (e KindUsageError) Error() string {
	return fmt.Sprintf("selection kind %s groups %d points per instance, not %d",
		e.Kind, e.Kind.PointsPerInstance(), e.Want)
}

func errKindUsage(kind Kind, want int) error {
	return KindUsageError{
		Kind: kind,
		Want: want,
	}
}

// ItemError represents a selection item that could not be decoded.
type ItemError struct {
	Kind Kind
	Item string
	Err  error
}

// Error returns the error message.
func (e ItemError) Error() string {
	return fmt.Sprintf("%s selection item '%s': %s", e.Kind, e.Item, e.Err)
}

func (e ItemError) Unwrap() error {
	return e.Err
}

func errItem(kind Kind, item string, err error) error {
	if err == nil {
		return nil
	}

	return ItemError{
		Kind: kind,
		Item: item,
		Err:  err,
	}
}
