package main

import (
	"bytes"
	"context"
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	gwyfile "github.com/gwyddion/go-gwyfile"
	"github.com/gwyddion/go-gwyfile/channel"
	"github.com/gwyddion/go-gwyfile/datafield"
	"github.com/gwyddion/go-gwyfile/graph"
	"github.com/gwyddion/go-gwyfile/marshaller"
	"github.com/gwyddion/go-gwyfile/selection"
	"github.com/gwyddion/go-gwyfile/tree"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()

	cmd := newRootCmd()

	buf := new(bytes.Buffer)
	cmd.SetOut(buf)
	cmd.SetErr(io.Discard)
	cmd.SetArgs(args)

	err := cmd.ExecuteContext(context.Background())

	return buf.String(), err
}

func sampleFile(t *testing.T) string {
	t.Helper()

	height, err := datafield.New(
		[][]float64{{1, 2}, {3, 4}},
		datafield.WithSIUnitXY("m"),
		datafield.WithSIUnitZ("V"),
	)
	require.NoError(t, err)

	mask, err := datafield.New([][]float64{{0, 1}, {1, 0}})
	require.NoError(t, err)

	point, err := selection.NewPoints(selection.KindPoint, []selection.Point{{X: 0.5, Y: 0.5}})
	require.NoError(t, err)

	first, err := channel.New("Height", height,
		channel.WithMask(mask),
		channel.WithSelection(point),
	)
	require.NoError(t, err)

	phase, err := datafield.New([][]float64{{5, 6}, {7, 8}})
	require.NoError(t, err)

	second, err := channel.New("Phase", phase)
	require.NoError(t, err)

	one, err := graph.NewCurve([]float64{0, 1, 2}, []float64{0, 10, 40})
	require.NoError(t, err)

	two, err := graph.NewCurve([]float64{0, 1}, []float64{3, 4})
	require.NoError(t, err)

	profile, err := graph.NewModel(
		[]*graph.Curve{one, two},
		graph.WithTitle("Profile"),
		graph.WithVisible(true),
	)
	require.NoError(t, err)

	c := &gwyfile.Container{
		Channels: []*channel.Channel{first, second},
		Graphs:   []*graph.Model{profile},
	}

	path := filepath.Join(t.TempDir(), "sample.gwy")
	require.NoError(t, c.Save(path))

	return path
}

func TestChannelsCmd(t *testing.T) {
	t.Parallel()

	path := sampleFile(t)

	t.Run("table output", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "channels", path)

		require.NoError(t, err)
		assert.Contains(t, out, "TITLE")
		assert.Contains(t, out, "Height")
		assert.Contains(t, out, "Phase")
		assert.Contains(t, out, "yes")
		assert.Contains(t, out, "point")
	})

	t.Run("csv output", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "channels", "--csv", path)

		require.NoError(t, err)
		assert.Contains(t, out, "ID,TITLE")
		assert.Contains(t, out, "Height")
	})

	t.Run("broken channel is skipped", func(t *testing.T) {
		t.Parallel()

		root := tree.New(gwyfile.ContainerClass)

		good, err := datafield.New([][]float64{{1}})
		require.NoError(t, err)

		ch, err := channel.New("Good", good)
		require.NoError(t, err)
		require.NoError(t, channel.Encode(root, 0, ch))

		broken := tree.New(datafield.ObjectClass)
		require.True(t, broken.Add(tree.NewInt32("xres", 2)))
		require.True(t, root.Add(tree.NewObject("/1/data", broken)))
		require.True(t, root.Add(tree.NewString("/1/data/title", "Bad")))

		data, err := marshaller.Marshal(root)
		require.NoError(t, err)

		path := filepath.Join(t.TempDir(), "partial.gwy")
		require.NoError(t, os.WriteFile(path, data, 0o600))

		out, err := execute(t, "channels", path)

		require.NoError(t, err)
		assert.Contains(t, out, "Good")
		assert.NotContains(t, out, "Bad")
	})

	t.Run("missing file", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "channels", filepath.Join(t.TempDir(), "absent.gwy"))

		require.Error(t, err)
	})
}

func TestGraphsCmd(t *testing.T) {
	t.Parallel()

	path := sampleFile(t)

	out, err := execute(t, "graphs", path)

	require.NoError(t, err)
	assert.Contains(t, out, "Profile")
	assert.Contains(t, out, "2")
	assert.Contains(t, out, "true")
}

func TestTreeCmd(t *testing.T) {
	t.Parallel()

	path := sampleFile(t)

	out, err := execute(t, "tree", path)

	require.NoError(t, err)
	assert.Contains(t, out, "GwyContainer")
	assert.Contains(t, out, "/0/data/title")
	assert.Contains(t, out, "Height")
}

func TestExportCmd(t *testing.T) {
	t.Parallel()

	path := sampleFile(t)

	t.Run("writes two columns to stdout", func(t *testing.T) {
		t.Parallel()

		out, err := execute(t, "export", path, "--graph", "1", "--curve", "0")

		require.NoError(t, err)
		assert.Equal(t, "0\t0\n1\t10\n2\t40\n", out)
	})

	t.Run("writes to a file", func(t *testing.T) {
		t.Parallel()

		target := filepath.Join(t.TempDir(), "curve.txt")

		_, err := execute(t, "export", path, "--curve", "1", "-o", target)

		require.NoError(t, err)

		data, err := os.ReadFile(target)
		require.NoError(t, err)
		assert.Equal(t, "0\t3\n1\t4\n", string(data))
	})

	t.Run("curve index out of range", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "export", path, "--curve", "7")

		require.ErrorContains(t, err, "no curve 7")
	})

	t.Run("unknown graph id", func(t *testing.T) {
		t.Parallel()

		_, err := execute(t, "export", path, "--graph", "9")

		require.Error(t, err)
	})
}
