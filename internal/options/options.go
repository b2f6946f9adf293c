// Package options applies functional option callbacks over a defaulted
// option struct. The With... constructors of the codec packages are built
// on it.
package options

// Constructor produces the option struct with its defaults filled in.
type Constructor[T any] func() T

// Option mutates one field of the option struct.
type Option[T any] func(*T)

// Apply builds the defaulted struct and runs every callback over it in
// order, so later options win.
func Apply[T any](constructor Constructor[T], opts []Option[T]) T {
	var applied T

	if constructor != nil {
		applied = constructor()
	}

	for _, opt := range opts {
		opt(&applied)
	}

	return applied
}
