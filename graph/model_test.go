package graph_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tarantool/go-option"

	"github.com/gwyddion/go-gwyfile/graph"
)

func curves(t *testing.T, n int) []*graph.Curve {
	t.Helper()

	out := make([]*graph.Curve, 0, n)

	for i := 0; i < n; i++ {
		xdata, ydata := series()

		c, err := graph.NewCurve(xdata, ydata)
		require.NoError(t, err)

		out = append(out, c)
	}

	return out
}

func TestNewModel(t *testing.T) {
	t.Parallel()

	t.Run("metadata defaults", func(t *testing.T) {
		t.Parallel()

		m, err := graph.NewModel(curves(t, 1))

		require.NoError(t, err)
		assert.Len(t, m.Curves, 1)
		assert.Empty(t, m.Title)
		assert.Empty(t, m.XUnit)
		assert.Empty(t, m.YUnit)
		assert.False(t, m.XMin.IsSome())
		assert.False(t, m.XMax.IsSome())
		assert.False(t, m.YMin.IsSome())
		assert.False(t, m.YMax.IsSome())
		assert.False(t, m.XLog)
		assert.False(t, m.YLog)
		assert.True(t, m.LabelVisible)
		assert.True(t, m.LabelHasFrame)
		assert.False(t, m.LabelReverse)
		assert.Equal(t, int32(1), m.LabelFrameThickness)
		assert.Equal(t, int32(0), m.LabelPosition)
		assert.Equal(t, int32(1), m.GridType)
		assert.False(t, m.Visible.IsSome())
	})

	t.Run("with options", func(t *testing.T) {
		t.Parallel()

		m, err := graph.NewModel(curves(t, 2),
			graph.WithTitle("Profiles"),
			graph.WithXUnit("m"),
			graph.WithYUnit("V"),
			graph.WithXMin(0),
			graph.WithXMax(2e-6),
			graph.WithYMin(-1),
			graph.WithYMax(1),
			graph.WithXLog(false),
			graph.WithYLog(true),
			graph.WithVisible(true),
		)

		require.NoError(t, err)
		assert.Equal(t, "Profiles", m.Title)
		assert.Equal(t, "m", m.XUnit)
		assert.Equal(t, "V", m.YUnit)
		assert.Equal(t, option.Some(0.0), m.XMin)
		assert.Equal(t, option.Some(2e-6), m.XMax)
		assert.Equal(t, option.Some(-1.0), m.YMin)
		assert.Equal(t, option.Some(1.0), m.YMax)
		assert.True(t, m.YLog)
		assert.Equal(t, option.Some(true), m.Visible)
	})

	t.Run("matching declared count", func(t *testing.T) {
		t.Parallel()

		m, err := graph.NewModel(curves(t, 2), graph.WithNCurves(2))

		require.NoError(t, err)
		assert.Len(t, m.Curves, 2)
	})

	t.Run("declaring three curves over two fails", func(t *testing.T) {
		t.Parallel()

		_, err := graph.NewModel(curves(t, 2), graph.WithNCurves(3))

		require.Error(t, err)

		var countErr graph.CountError
		require.ErrorAs(t, err, &countErr)
		assert.Equal(t, 3, countErr.Declared)
		assert.Equal(t, 2, countErr.Actual)
	})

	t.Run("no curves", func(t *testing.T) {
		t.Parallel()

		m, err := graph.NewModel(nil)

		require.NoError(t, err)
		assert.Empty(t, m.Curves)
	})
}
