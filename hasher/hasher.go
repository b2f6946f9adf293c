// Package hasher provides the checksum algorithms of the container
// envelope.
package hasher

import (
	"crypto/sha256"
	"encoding/binary"
	"errors"
	"fmt"
	"hash/crc32"
)

// ErrDataIsNil is returned if the passed data is nil.
var ErrDataIsNil = errors.New("data is nil")

// Hasher is the interface that envelope checksum algorithms implement.
type Hasher interface {
	Name() string
	Hash(data []byte) ([]byte, error)
}

// UnknownAlgorithmError represents a checksum algorithm name with no
// implementation.
type UnknownAlgorithmError struct {
	Name string
}

func (e UnknownAlgorithmError) Error() string {
	return fmt.Sprintf("unknown checksum algorithm '%s'", e.Name)
}

// FromName returns the hasher registered under the given algorithm name.
// Decoders use it to look up the algorithm an envelope was written with.
func FromName(name string) (Hasher, error) {
	switch name {
	case "sha256":
		return NewSHA256Hasher(), nil
	case "crc32":
		return NewCRC32Hasher(), nil
	default:
		return nil, UnknownAlgorithmError{Name: name}
	}
}

type sha256Hasher struct{}

// NewSHA256Hasher creates a new sha256 hasher instance.
func NewSHA256Hasher() Hasher {
	return sha256Hasher{}
}

// Name implements Hasher interface.
func (sha256Hasher) Name() string {
	return "sha256"
}

// Hash implements Hasher interface.
func (sha256Hasher) Hash(data []byte) ([]byte, error) {
	if data == nil {
		return nil, ErrDataIsNil
	}

	sum := sha256.Sum256(data)

	return sum[:], nil
}

type crc32Hasher struct{}

// NewCRC32Hasher creates a new crc32 hasher instance using the IEEE
// polynomial.
func NewCRC32Hasher() Hasher {
	return crc32Hasher{}
}

// Name implements Hasher interface.
func (crc32Hasher) Name() string {
	return "crc32"
}

// Hash implements Hasher interface.
func (crc32Hasher) Hash(data []byte) ([]byte, error) {
	if data == nil {
		return nil, ErrDataIsNil
	}

	sum := make([]byte, 4)
	binary.BigEndian.PutUint32(sum, crc32.ChecksumIEEE(data))

	return sum, nil
}
