package marshaller_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vmihailenco/msgpack/v5"

	"github.com/gwyddion/go-gwyfile/hasher"
	"github.com/gwyddion/go-gwyfile/marshaller"
	"github.com/gwyddion/go-gwyfile/tree"
)

// sampleTree builds a container covering every item kind.
func sampleTree(t *testing.T) *tree.Object {
	t.Helper()

	field := tree.New("GwyDataField")
	require.True(t, field.Add(tree.NewInt32("xres", 2)))
	require.True(t, field.Add(tree.NewInt32("yres", 2)))
	require.True(t, field.Add(tree.NewDouble("xreal", 1e-6)))
	require.True(t, field.Add(tree.NewString("si_unit_xy", "m")))
	require.True(t, field.Add(tree.NewDoubles("data", []float64{0.5, 1.5, 2.5, 3.5})))

	curve := tree.New("GwyGraphCurveModel")
	require.True(t, curve.Add(tree.NewInt32("ndata", 2)))
	require.True(t, curve.Add(tree.NewDoubles("xdata", []float64{0, 1})))
	require.True(t, curve.Add(tree.NewDoubles("ydata", []float64{0, 10})))

	model := tree.New("GwyGraphModel")
	require.True(t, model.Add(tree.NewInt32("ncurves", 1)))
	require.True(t, model.Add(tree.NewObjects("curves", []*tree.Object{curve})))
	require.True(t, model.Add(tree.NewString("title", "Profiles")))

	root := tree.New("GwyContainer")
	require.True(t, root.Add(tree.NewObject("/0/data", field)))
	require.True(t, root.Add(tree.NewString("/0/data/title", "Height")))
	require.True(t, root.Add(tree.NewBool("/0/data/visible", true)))
	require.True(t, root.Add(tree.NewObject("/0/graph/graph/1", model)))

	return root
}

func TestRoundTrip(t *testing.T) {
	t.Parallel()

	t.Run("default hasher", func(t *testing.T) {
		t.Parallel()

		original := sampleTree(t)

		data, err := marshaller.Marshal(original)
		require.NoError(t, err)

		back, err := marshaller.Unmarshal(data)

		require.NoError(t, err)
		assert.Equal(t, original, back)
	})

	t.Run("crc32 hasher", func(t *testing.T) {
		t.Parallel()

		original := sampleTree(t)

		data, err := marshaller.Marshal(original, marshaller.WithHasher(hasher.NewCRC32Hasher()))
		require.NoError(t, err)

		back, err := marshaller.Unmarshal(data)

		require.NoError(t, err)
		assert.Equal(t, original, back)
	})
}

func TestMarshal(t *testing.T) {
	t.Parallel()

	t.Run("nil tree", func(t *testing.T) {
		t.Parallel()

		_, err := marshaller.Marshal(nil)

		require.ErrorIs(t, err, marshaller.ErrTreeIsNil)
	})

	t.Run("deterministic output", func(t *testing.T) {
		t.Parallel()

		original := sampleTree(t)

		first, err := marshaller.Marshal(original)
		require.NoError(t, err)

		second, err := marshaller.Marshal(original)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestUnmarshal(t *testing.T) {
	t.Parallel()

	t.Run("corrupted payload", func(t *testing.T) {
		t.Parallel()

		data, err := marshaller.Marshal(sampleTree(t))
		require.NoError(t, err)

		data[len(data)-1] ^= 0xff

		_, err = marshaller.Unmarshal(data)

		require.ErrorIs(t, err, marshaller.ErrChecksum)
	})

	t.Run("version mismatch", func(t *testing.T) {
		t.Parallel()

		data, err := msgpack.Marshal(struct {
			Version int    `msgpack:"version"`
			Algo    string `msgpack:"algo"`
			Sum     []byte `msgpack:"sum"`
			Tree    []byte `msgpack:"tree"`
		}{Version: 99, Algo: "sha256"})
		require.NoError(t, err)

		_, err = marshaller.Unmarshal(data)

		var versionErr marshaller.VersionError
		require.ErrorAs(t, err, &versionErr)
		assert.Equal(t, 99, versionErr.Version)
	})

	t.Run("unknown algorithm", func(t *testing.T) {
		t.Parallel()

		data, err := msgpack.Marshal(struct {
			Version int    `msgpack:"version"`
			Algo    string `msgpack:"algo"`
			Sum     []byte `msgpack:"sum"`
			Tree    []byte `msgpack:"tree"`
		}{Version: 1, Algo: "md5"})
		require.NoError(t, err)

		_, err = marshaller.Unmarshal(data)

		var algoErr hasher.UnknownAlgorithmError
		require.ErrorAs(t, err, &algoErr)
		assert.Equal(t, "md5", algoErr.Name)
	})

	t.Run("not an envelope", func(t *testing.T) {
		t.Parallel()

		_, err := marshaller.Unmarshal([]byte("definitely not msgpack"))

		require.Error(t, err)

		var unmarshalErr marshaller.UnmarshalError
		require.ErrorAs(t, err, &unmarshalErr)
	})

	t.Run("empty input", func(t *testing.T) {
		t.Parallel()

		_, err := marshaller.Unmarshal(nil)

		require.Error(t, err)
	})
}
