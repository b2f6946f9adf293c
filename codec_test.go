package gwyfile_test

import (
	"testing"

	"github.com/hashicorp/go-multierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"

	gwyfile "github.com/gwyddion/go-gwyfile"
	"github.com/gwyddion/go-gwyfile/channel"
	"github.com/gwyddion/go-gwyfile/datafield"
	"github.com/gwyddion/go-gwyfile/graph"
	"github.com/gwyddion/go-gwyfile/tree"
)

func testChannel(t *testing.T, title string) *channel.Channel {
	t.Helper()

	df, err := datafield.New([][]float64{{1, 2}, {3, 4}})
	require.NoError(t, err)

	ch, err := channel.New(title, df)
	require.NoError(t, err)

	return ch
}

func testGraph(t *testing.T, title string) *graph.Model {
	t.Helper()

	c, err := graph.NewCurve([]float64{0, 1}, []float64{0, 10})
	require.NoError(t, err)

	m, err := graph.NewModel([]*graph.Curve{c}, graph.WithTitle(title))
	require.NoError(t, err)

	return m
}

func brokenField(t *testing.T) *tree.Object {
	t.Helper()

	o := tree.New(datafield.ObjectClass)
	require.True(t, o.Add(tree.NewInt32("xres", 2)))

	return o
}

func TestEnumerateChannelIDs(t *testing.T) {
	t.Parallel()

	t.Run("ascending numeric order", func(t *testing.T) {
		t.Parallel()

		root := tree.New(gwyfile.ContainerClass)
		require.NoError(t, channel.Encode(root, 2, testChannel(t, "A")))
		require.NoError(t, channel.Encode(root, 10, testChannel(t, "B")))
		require.NoError(t, channel.Encode(root, 0, testChannel(t, "C")))

		// Lexical path order would report 0, 10, 2.
		assert.Equal(t, []int{0, 2, 10}, gwyfile.EnumerateChannelIDs(root))
	})

	t.Run("only data keys count", func(t *testing.T) {
		t.Parallel()

		root := tree.New(gwyfile.ContainerClass)
		require.True(t, root.Add(tree.NewString("/1/data/title", "Orphan")))
		require.True(t, root.Add(tree.NewString("/filename", "x.gwy")))

		assert.Empty(t, gwyfile.EnumerateChannelIDs(root))
	})

	t.Run("nil tree", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, gwyfile.EnumerateChannelIDs(nil))
	})
}

func TestEnumerateGraphIDs(t *testing.T) {
	t.Parallel()

	t.Run("ascending numeric order", func(t *testing.T) {
		t.Parallel()

		root := tree.New(gwyfile.ContainerClass)
		require.True(t, root.Add(tree.NewObject("/0/graph/graph/2", graph.EncodeModel(testGraph(t, "B")))))
		require.True(t, root.Add(tree.NewObject("/0/graph/graph/11", graph.EncodeModel(testGraph(t, "C")))))
		require.True(t, root.Add(tree.NewObject("/0/graph/graph/1", graph.EncodeModel(testGraph(t, "A")))))

		assert.Equal(t, []int{1, 2, 11}, gwyfile.EnumerateGraphIDs(root))
	})

	t.Run("sibling keys do not count", func(t *testing.T) {
		t.Parallel()

		root := tree.New(gwyfile.ContainerClass)
		require.True(t, root.Add(tree.NewBool("/0/graph/graph/1/visible", true)))

		assert.Empty(t, gwyfile.EnumerateGraphIDs(root))
	})

	t.Run("nil tree", func(t *testing.T) {
		t.Parallel()

		assert.Nil(t, gwyfile.EnumerateGraphIDs(nil))
	})
}

func TestEncode(t *testing.T) {
	t.Parallel()

	t.Run("assigns ids by position", func(t *testing.T) {
		t.Parallel()

		c := &gwyfile.Container{
			Channels: []*channel.Channel{
				testChannel(t, "Height"),
				testChannel(t, "Phase"),
				testChannel(t, "Current"),
			},
			Graphs: []*graph.Model{
				testGraph(t, "Profile 1"),
				testGraph(t, "Profile 2"),
			},
			Filename: option.None[string](),
		}

		root, err := gwyfile.Encode(c)

		require.NoError(t, err)
		assert.Equal(t, gwyfile.ContainerClass, root.Class())
		assert.Equal(t, []int{0, 1, 2}, gwyfile.EnumerateChannelIDs(root))
		assert.Equal(t, []int{1, 2}, gwyfile.EnumerateGraphIDs(root))

		back, err := gwyfile.Decode(root)

		require.NoError(t, err)
		assert.Equal(t, c, back)
	})

	t.Run("renumbers sparse ids contiguously", func(t *testing.T) {
		t.Parallel()

		sparse := tree.New(gwyfile.ContainerClass)
		require.NoError(t, channel.Encode(sparse, 3, testChannel(t, "A")))
		require.NoError(t, channel.Encode(sparse, 7, testChannel(t, "B")))

		c, err := gwyfile.Decode(sparse)
		require.NoError(t, err)
		require.Len(t, c.Channels, 2)

		root, err := gwyfile.Encode(c)

		require.NoError(t, err)
		assert.Equal(t, []int{0, 1}, gwyfile.EnumerateChannelIDs(root))
	})

	t.Run("writes the sibling visibility flag only when set", func(t *testing.T) {
		t.Parallel()

		curve, err := graph.NewCurve([]float64{0}, []float64{1})
		require.NoError(t, err)

		shown, err := graph.NewModel([]*graph.Curve{curve}, graph.WithVisible(true))
		require.NoError(t, err)

		c := &gwyfile.Container{
			Graphs: []*graph.Model{shown, testGraph(t, "Plain")},
		}

		root, err := gwyfile.Encode(c)
		require.NoError(t, err)

		visible, err := root.Bool("/0/graph/graph/1/visible")
		require.NoError(t, err)
		assert.Equal(t, option.Some(true), visible)

		_, err = root.Item("/0/graph/graph/2/visible")
		assert.ErrorIs(t, err, tree.ErrNotFound)
	})

	t.Run("nil container", func(t *testing.T) {
		t.Parallel()

		_, err := gwyfile.Encode(nil)

		require.ErrorIs(t, err, gwyfile.ErrNilContainer)
	})

	t.Run("nil channel", func(t *testing.T) {
		t.Parallel()

		_, err := gwyfile.Encode(&gwyfile.Container{
			Channels: []*channel.Channel{nil},
		})

		require.ErrorIs(t, err, channel.ErrNoData)

		var keyErr gwyfile.KeyError
		require.ErrorAs(t, err, &keyErr)
		assert.Equal(t, "/0/data", keyErr.Path)
	})

	t.Run("nil graph", func(t *testing.T) {
		t.Parallel()

		_, err := gwyfile.Encode(&gwyfile.Container{
			Graphs: []*graph.Model{nil},
		})

		require.ErrorIs(t, err, gwyfile.ErrNilGraph)

		var keyErr gwyfile.KeyError
		require.ErrorAs(t, err, &keyErr)
		assert.Equal(t, "/0/graph/graph/1", keyErr.Path)
	})
}

func TestDecode(t *testing.T) {
	t.Parallel()

	t.Run("nil tree", func(t *testing.T) {
		t.Parallel()

		_, err := gwyfile.Decode(nil)

		require.ErrorIs(t, err, gwyfile.ErrNilTree)
	})

	t.Run("wrong root class", func(t *testing.T) {
		t.Parallel()

		_, err := gwyfile.Decode(tree.New("GwyDataField"))

		var classErr gwyfile.ClassError
		require.ErrorAs(t, err, &classErr)
		assert.Equal(t, "GwyDataField", classErr.Class)
	})

	t.Run("broken channel is skipped and reported", func(t *testing.T) {
		t.Parallel()

		root := tree.New(gwyfile.ContainerClass)
		require.NoError(t, channel.Encode(root, 0, testChannel(t, "First")))
		require.True(t, root.Add(tree.NewObject("/1/data", brokenField(t))))
		require.True(t, root.Add(tree.NewString("/1/data/title", "Broken")))
		require.NoError(t, channel.Encode(root, 2, testChannel(t, "Third")))

		c, err := gwyfile.Decode(root)

		require.Error(t, err)

		var errs *multierror.Error
		require.ErrorAs(t, err, &errs)
		require.Len(t, errs.Errors, 1)
		assert.ErrorIs(t, errs.Errors[0], datafield.ErrMissingField)

		require.NotNil(t, c)
		require.Len(t, c.Channels, 2)
		assert.Equal(t, "First", c.Channels[0].Title)
		assert.Equal(t, "Third", c.Channels[1].Title)
	})

	t.Run("broken graph is skipped and reported", func(t *testing.T) {
		t.Parallel()

		short := tree.New(graph.ModelClass)
		require.True(t, short.Add(tree.NewInt32("ncurves", 2)))

		root := tree.New(gwyfile.ContainerClass)
		require.True(t, root.Add(tree.NewObject("/0/graph/graph/1", graph.EncodeModel(testGraph(t, "Good")))))
		require.True(t, root.Add(tree.NewObject("/0/graph/graph/2", short)))

		c, err := gwyfile.Decode(root)

		require.Error(t, err)

		var modelErr graph.ModelError
		require.ErrorAs(t, err, &modelErr)
		assert.Equal(t, 2, modelErr.ID)

		require.NotNil(t, c)
		require.Len(t, c.Graphs, 1)
		assert.Equal(t, "Good", c.Graphs[0].Title)
	})

	t.Run("filename keeps only the base name", func(t *testing.T) {
		t.Parallel()

		root := tree.New(gwyfile.ContainerClass)
		require.True(t, root.Add(tree.NewString("/filename", "/data/scans/sample.gwy")))

		c, err := gwyfile.Decode(root)

		require.NoError(t, err)
		assert.Equal(t, option.Some("sample.gwy"), c.Filename)
	})

	t.Run("absent filename stays unset", func(t *testing.T) {
		t.Parallel()

		c, err := gwyfile.Decode(tree.New(gwyfile.ContainerClass))

		require.NoError(t, err)
		assert.False(t, c.Filename.IsSome())
	})

	t.Run("non contiguous ids decode as found", func(t *testing.T) {
		t.Parallel()

		root := tree.New(gwyfile.ContainerClass)
		require.NoError(t, channel.Encode(root, 4, testChannel(t, "Sparse")))

		c, err := gwyfile.Decode(root)

		require.NoError(t, err)
		require.Len(t, c.Channels, 1)
		assert.Equal(t, "Sparse", c.Channels[0].Title)
	})
}

func TestRetention(t *testing.T) {
	t.Parallel()

	t.Run("holds encoded graph objects until close", func(t *testing.T) {
		t.Parallel()

		c := &gwyfile.Container{
			Graphs: []*graph.Model{testGraph(t, "One"), testGraph(t, "Two")},
		}

		root, err := gwyfile.Encode(c)
		require.NoError(t, err)

		held := gwyfile.RetainedGraphObjects(root)
		require.Len(t, held, 2)

		first, err := root.Object("/0/graph/graph/1")
		require.NoError(t, err)
		assert.Same(t, first, held[0])

		second, err := root.Object("/0/graph/graph/2")
		require.NoError(t, err)
		assert.Same(t, second, held[1])

		root.Close()

		assert.Empty(t, gwyfile.RetainedGraphObjects(root))
	})

	t.Run("no graphs means no entry", func(t *testing.T) {
		t.Parallel()

		root, err := gwyfile.Encode(&gwyfile.Container{
			Channels: []*channel.Channel{testChannel(t, "Height")},
		})
		require.NoError(t, err)

		assert.Empty(t, gwyfile.RetainedGraphObjects(root))
	})

	t.Run("distinct trees are tracked independently", func(t *testing.T) {
		t.Parallel()

		first, err := gwyfile.Encode(&gwyfile.Container{
			Graphs: []*graph.Model{testGraph(t, "A")},
		})
		require.NoError(t, err)

		second, err := gwyfile.Encode(&gwyfile.Container{
			Graphs: []*graph.Model{testGraph(t, "B")},
		})
		require.NoError(t, err)

		first.Close()

		assert.Empty(t, gwyfile.RetainedGraphObjects(first))
		assert.Len(t, gwyfile.RetainedGraphObjects(second), 1)
	})
}
