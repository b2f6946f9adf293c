package gwyfile

import (
	"os"
	"path/filepath"

	"github.com/gwyddion/go-gwyfile/gwykey"
	"github.com/gwyddion/go-gwyfile/marshaller"
	"github.com/gwyddion/go-gwyfile/tree"
)

const filePerm = 0o644

// ReadFile reads the file at path and unmarshals the container tree it
// holds. A root object of the wrong class is rejected here, before any
// decoding starts.
func ReadFile(path string) (*tree.Object, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	t, err := marshaller.Unmarshal(data)
	if err != nil {
		return nil, err
	}

	if t.Class() != ContainerClass {
		return nil, errClass(t.Class())
	}

	return t, nil
}

// WriteFile marshals the tree and writes it to the file at path.
func WriteFile(t *tree.Object, path string) error {
	if t == nil {
		return ErrNilTree
	}

	data, err := marshaller.Marshal(t)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, filePerm)
}

// Load reads the file at path and decodes the container it holds.
// Partial decode failures come back as a multierror beside the decoded
// remainder, the same way Decode reports them.
func Load(path string) (*Container, error) {
	t, err := ReadFile(path)
	if err != nil {
		return nil, err
	}

	return Decode(t)
}

// Save encodes the container, records the absolute target path under
// the filename key, and writes the file there.
func (c *Container) Save(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	t, err := Encode(c)
	if err != nil {
		return err
	}
	defer t.Close()

	if !t.Add(tree.NewString(gwykey.Filename(), abs)) {
		return errKey(gwykey.Filename(), tree.ErrOccupied)
	}

	return WriteFile(t, abs)
}
