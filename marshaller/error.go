package marshaller

import (
	"errors"
	"fmt"

	"github.com/gwyddion/go-gwyfile/tree"
)

// ErrTreeIsNil is returned when a nil tree is handed to the marshaller.
var ErrTreeIsNil = errors.New("tree is nil")

// ErrChecksum is returned when the tree payload does not match the
// checksum recorded in the envelope.
var ErrChecksum = errors.New("checksum mismatch")

// MarshalError represents an error when marshalling fails.
type MarshalError struct {
	parent error
}

func errMarshal(parent error) error {
	if parent == nil {
		return nil
	}

	return MarshalError{parent: parent}
}

// Unwrap returns the underlying error that caused the marshalling failure.
func (e MarshalError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the marshalling error.
func (e MarshalError) Error() string {
	return fmt.Sprintf("Failed to marshal: %s", e.parent)
}

// UnmarshalError represents an error when unmarshalling fails.
type UnmarshalError struct {
	parent error
}

func errUnmarshal(parent error) error {
	if parent == nil {
		return nil
	}

	return UnmarshalError{parent: parent}
}

// Unwrap returns the underlying error that caused the unmarshalling failure.
func (e UnmarshalError) Unwrap() error {
	return e.parent
}

// Error returns a string representation of the unmarshalling error.
func (e UnmarshalError) Error() string {
	return fmt.Sprintf("Failed to unmarshal: %s", e.parent)
}

// VersionError is returned for an envelope version this package cannot
// read.
type VersionError struct {
	Version int
}

// Error returns the error message.
func (e VersionError) Error() string {
	return fmt.Sprintf("unsupported envelope version %d", e.Version)
}

// UnknownKindError is returned for an item kind the node codec does not
// know.
type UnknownKindError struct {
	Kind tree.Kind
}

// Error returns the error message.
func (e UnknownKindError) Error() string {
	return fmt.Sprintf("unknown item kind %d", int(e.Kind))
}

// EncodingError reports a failure on one step of encoding a tree node.
type EncodingError struct {
	Text string
	Err  error
}

// Error returns the error message.
func (e EncodingError) Error() string {
	return fmt.Sprintf("failed to encode %s: %s", e.Text, e.Err)
}

// Unwrap returns the parent error.
func (e EncodingError) Unwrap() error {
	return e.Err
}

func errEncoding(text string, err error) error {
	if err == nil {
		return nil
	}

	return EncodingError{
		Text: text,
		Err:  err,
	}
}

// DecodingError reports a failure on one step of decoding a tree node.
type DecodingError struct {
	Text string
	Err  error
}

// Error returns the error message.
func (e DecodingError) Error() string {
	return fmt.Sprintf("failed to decode %s: %s", e.Text, e.Err)
}

// Unwrap returns the parent error.
func (e DecodingError) Unwrap() error {
	return e.Err
}

func errDecoding(text string, err error) error {
	if err == nil {
		return nil
	}

	return DecodingError{
		Text: text,
		Err:  err,
	}
}
