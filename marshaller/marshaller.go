// Package marshaller defines the byte format of a measurement container
// file: a msgpack envelope holding a format version, a checksum and the
// msgpack-encoded item tree the checksum covers. A lossy YAML rendering
// of the tree is also provided for human inspection.
package marshaller

import (
	"bytes"

	"github.com/vmihailenco/msgpack/v5"

	"github.com/gwyddion/go-gwyfile/hasher"
	"github.com/gwyddion/go-gwyfile/internal/options"
	"github.com/gwyddion/go-gwyfile/tree"
)

// formatVersion is the envelope version this package reads and writes.
const formatVersion = 1

type envelope struct {
	Version int    `msgpack:"version"`
	Algo    string `msgpack:"algo"`
	Sum     []byte `msgpack:"sum"`
	Tree    []byte `msgpack:"tree"`
}

type marshalOptions struct {
	hasher hasher.Hasher
}

func defaultMarshalOptions() marshalOptions {
	return marshalOptions{
		hasher: hasher.NewSHA256Hasher(),
	}
}

// WithHasher selects the checksum algorithm recorded in the envelope.
func WithHasher(h hasher.Hasher) options.Option[marshalOptions] {
	return func(o *marshalOptions) {
		o.hasher = h
	}
}

// Marshal serializes the tree into the envelope format. Items encode in
// path order, so the payload bytes are stable for a given tree.
func Marshal(t *tree.Object, opts ...options.Option[marshalOptions]) ([]byte, error) {
	if t == nil {
		return nil, errMarshal(ErrTreeIsNil)
	}

	applied := options.Apply(defaultMarshalOptions, opts)

	var payload bytes.Buffer

	encoder := msgpack.NewEncoder(&payload)
	if err := (node{obj: t}).EncodeMsgpack(encoder); err != nil {
		return nil, errMarshal(err)
	}

	sum, err := applied.hasher.Hash(payload.Bytes())
	if err != nil {
		return nil, errMarshal(err)
	}

	data, err := msgpack.Marshal(envelope{
		Version: formatVersion,
		Algo:    applied.hasher.Name(),
		Sum:     sum,
		Tree:    payload.Bytes(),
	})
	if err != nil {
		return nil, errMarshal(err)
	}

	return data, nil
}

// Unmarshal reads an envelope back into a tree. The checksum is
// verified before any of the payload is decoded.
func Unmarshal(data []byte) (*tree.Object, error) {
	var env envelope

	if err := msgpack.Unmarshal(data, &env); err != nil {
		return nil, errUnmarshal(err)
	}

	if env.Version != formatVersion {
		return nil, errUnmarshal(VersionError{Version: env.Version})
	}

	h, err := hasher.FromName(env.Algo)
	if err != nil {
		return nil, errUnmarshal(err)
	}

	sum, err := h.Hash(env.Tree)
	if err != nil {
		return nil, errUnmarshal(err)
	}

	if !bytes.Equal(sum, env.Sum) {
		return nil, errUnmarshal(ErrChecksum)
	}

	decoder := msgpack.NewDecoder(bytes.NewReader(env.Tree))

	var n node
	if err := n.DecodeMsgpack(decoder); err != nil {
		return nil, errUnmarshal(err)
	}

	return n.obj, nil
}
