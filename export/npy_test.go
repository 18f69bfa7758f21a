package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/sbinet/npyio"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/molgraph/export"
	"github.com/katalvlaran/molgraph/feat"
)

// readNPY loads a 2-D .npy file back into a gonum matrix.
func readNPY(t *testing.T, path string) *mat.Dense {
	t.Helper()
	f, err := os.Open(path)
	require.NoError(t, err)
	defer f.Close()

	var m mat.Dense
	require.NoError(t, npyio.Read(f, &m))

	return &m
}

// TestWriteMolGraph_RoundTrip: the three arrays land on disk and read back
// with the exact shapes and values the featurizer produced.
func TestWriteMolGraph_RoundTrip(t *testing.T) {
	g, err := feat.Featurize("CCC")
	require.NoError(t, err)

	dir := t.TempDir()
	require.NoError(t, export.WriteMolGraph(dir, "propane", g))

	nodes := readNPY(t, filepath.Join(dir, "propane_nodes.npy"))
	r, c := nodes.Dims()
	require.Equal(t, 4, r)
	require.Equal(t, feat.NumAtomFeatures, c)

	dist := readNPY(t, filepath.Join(dir, "propane_distance.npy"))
	require.Equal(t, feat.DummyDistance, dist.At(0, 0))
	require.Equal(t, 1.0, dist.At(1, 2))
	require.Equal(t, 2.0, dist.At(1, 3))

	adj := readNPY(t, filepath.Join(dir, "propane_adjacency.npy"))
	require.Equal(t, 1.0, adj.At(2, 3))
	require.Equal(t, 0.0, adj.At(1, 3))
}

// TestWriteBatch_FilesAndTargets checks numbering, ordering, and the
// targets array.
func TestWriteBatch_FilesAndTargets(t *testing.T) {
	graphs, err := feat.FeaturizeBatch([]string{"C", "CC"})
	require.NoError(t, err)

	dir := filepath.Join(t.TempDir(), "out")
	require.NoError(t, export.WriteBatch(dir, graphs, []float64{-0.5, 1.25}))

	for _, name := range []string{
		"mol_000000_nodes.npy", "mol_000000_adjacency.npy", "mol_000000_distance.npy",
		"mol_000001_nodes.npy", "mol_000001_adjacency.npy", "mol_000001_distance.npy",
	} {
		_, serr := os.Stat(filepath.Join(dir, name))
		require.NoError(t, serr, "missing %s", name)
	}

	f, err := os.Open(filepath.Join(dir, "targets.npy"))
	require.NoError(t, err)
	defer f.Close()
	var targets []float64
	require.NoError(t, npyio.Read(f, &targets))
	require.Equal(t, []float64{-0.5, 1.25}, targets)
}

// TestWriteBatch_Errors covers nil graphs and target length mismatches.
func TestWriteBatch_Errors(t *testing.T) {
	graphs, err := feat.FeaturizeBatch([]string{"C"})
	require.NoError(t, err)

	err = export.WriteBatch(t.TempDir(), graphs, []float64{1, 2})
	require.ErrorIs(t, err, export.ErrLengthMismatch)

	err = export.WriteMolGraph(t.TempDir(), "x", nil)
	require.ErrorIs(t, err, export.ErrNilGraph)

	err = export.WriteMatrix(filepath.Join(t.TempDir(), "m.npy"), nil)
	require.ErrorIs(t, err, export.ErrNilMatrix)
}
