package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molgraph/matrix"
)

// adjacency builds a symmetric binary adjacency matrix over n nodes.
func adjacency(t *testing.T, n int, edges [][2]int) *matrix.Dense {
	t.Helper()
	d, err := matrix.NewDense(n, n)
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, d.Set(e[0], e[1], 1))
		require.NoError(t, d.Set(e[1], e[0], 1))
	}

	return d
}

// at is a fatal-on-error element read.
func at(t *testing.T, d *matrix.Dense, i, j int) float64 {
	t.Helper()
	v, err := d.At(i, j)
	require.NoError(t, err)

	return v
}

// TestMetricClosure_Chain: a 3-node path has hop distances 0/1/2.
func TestMetricClosure_Chain(t *testing.T) {
	adj := adjacency(t, 3, [][2]int{{0, 1}, {1, 2}})

	dist, err := matrix.MetricClosure(adj)
	require.NoError(t, err)

	want := [3][3]float64{
		{0, 1, 2},
		{1, 0, 1},
		{2, 1, 0},
	}
	for i := 0; i < 3; i++ {
		for j := 0; j < 3; j++ {
			require.Equal(t, want[i][j], at(t, dist, i, j), "dist[%d][%d]", i, j)
		}
	}

	// Input adjacency must be untouched.
	require.Equal(t, 0.0, at(t, adj, 0, 2))
	require.Equal(t, 1.0, at(t, adj, 0, 1))
}

// TestMetricClosure_CycleTakesShorterArc: in a 5-cycle the distance between
// opposite-ish nodes goes the short way round.
func TestMetricClosure_CycleTakesShorterArc(t *testing.T) {
	adj := adjacency(t, 5, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 4}, {4, 0}})

	dist, err := matrix.MetricClosure(adj)
	require.NoError(t, err)

	require.Equal(t, 2.0, at(t, dist, 0, 3), "0→3 via 4")
	require.Equal(t, 2.0, at(t, dist, 1, 4), "1→4 via 0")
	require.Equal(t, 1.0, at(t, dist, 4, 0))
}

// TestMetricClosure_DisconnectedIsInf: components never connect.
func TestMetricClosure_DisconnectedIsInf(t *testing.T) {
	adj := adjacency(t, 4, [][2]int{{0, 1}, {2, 3}})

	dist, err := matrix.MetricClosure(adj)
	require.NoError(t, err)

	require.True(t, math.IsInf(at(t, dist, 0, 2), 1))
	require.True(t, math.IsInf(at(t, dist, 3, 1), 1))
	require.Equal(t, 1.0, at(t, dist, 0, 1))
	require.Equal(t, 0.0, at(t, dist, 2, 2))
}

// TestMetricClosure_Symmetric: undirected input yields a symmetric closure.
func TestMetricClosure_Symmetric(t *testing.T) {
	adj := adjacency(t, 6, [][2]int{{0, 1}, {1, 2}, {2, 3}, {3, 0}, {3, 4}, {4, 5}})

	dist, err := matrix.MetricClosure(adj)
	require.NoError(t, err)

	for i := 0; i < 6; i++ {
		for j := 0; j < 6; j++ {
			require.Equal(t, at(t, dist, i, j), at(t, dist, j, i), "asymmetry at (%d,%d)", i, j)
		}
	}
}

// TestMetricClosure_Errors covers nil and non-square inputs.
func TestMetricClosure_Errors(t *testing.T) {
	_, err := matrix.MetricClosure(nil)
	require.ErrorIs(t, err, matrix.ErrNilMatrix)

	rect, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	_, err = matrix.MetricClosure(rect)
	require.ErrorIs(t, err, matrix.ErrNotSquare)

	require.ErrorIs(t, matrix.FloydWarshall(nil), matrix.ErrNilMatrix)
	require.ErrorIs(t, matrix.FloydWarshall(rect), matrix.ErrNotSquare)
}
