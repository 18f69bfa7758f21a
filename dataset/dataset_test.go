package dataset_test

import (
	"os"
	"path/filepath"
	"sort"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/molgraph/dataset"
)

// writeCSV drops a file into a temp dir and returns its path.
func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

const esolSample = `Compound ID,smiles,measured log solubility in mols per litre
Amigdalin,OCC3OC(OCC2OC(OC(C#N)c1ccccc1)C(O)C(O)C2O)C(O)C(O)C3O,-0.77
Estradiol,CC12CCC3c4ccc(O)cc4CCC3C1CCC2O,-5.03
Propane,CCC,-1.94
`

// TestLoadCSV_HeaderAddressing: columns are found by name, any order,
// case-insensitively.
func TestLoadCSV_HeaderAddressing(t *testing.T) {
	path := writeCSV(t, "esol.csv", esolSample)

	d, err := dataset.LoadCSV(path,
		dataset.WithSMILESColumn("SMILES"),
		dataset.WithTargetColumn("measured log solubility in mols per litre"),
	)
	require.NoError(t, err)

	require.Equal(t, "esol", d.Name)
	require.Equal(t, 3, d.Len())
	require.Equal(t, "CCC", d.Records[2].SMILES)
	require.InDelta(t, -1.94, d.Records[2].Target, 1e-12)
	require.Equal(t, []float64{-0.77, -5.03, -1.94}, d.Targets())
	require.Len(t, d.SMILES(), 3)
}

// TestLoadCSV_Defaults: conventional header names need no options.
func TestLoadCSV_Defaults(t *testing.T) {
	path := writeCSV(t, "toy.csv", "smiles,target\nCC,1.5\nCCO,-0.25\n")

	d, err := dataset.LoadCSV(path, dataset.WithName("toy-bench"))
	require.NoError(t, err)
	require.Equal(t, "toy-bench", d.Name)
	require.Equal(t, []string{"CC", "CCO"}, d.SMILES())
}

// TestLoadCSV_Errors covers missing files, missing columns, bad targets,
// and empty bodies.
func TestLoadCSV_Errors(t *testing.T) {
	_, err := dataset.LoadCSV(filepath.Join(t.TempDir(), "absent.csv"))
	require.Error(t, err)

	path := writeCSV(t, "nocol.csv", "smiles,value\nCC,1\n")
	_, err = dataset.LoadCSV(path)
	require.ErrorIs(t, err, dataset.ErrMissingColumn)

	path = writeCSV(t, "badnum.csv", "smiles,target\nCC,abc\n")
	_, err = dataset.LoadCSV(path)
	require.ErrorIs(t, err, dataset.ErrBadTarget)

	path = writeCSV(t, "empty.csv", "smiles,target\n")
	_, err = dataset.LoadCSV(path)
	require.ErrorIs(t, err, dataset.ErrEmptyDataset)
}

// numbered builds a dataset with n distinguishable records.
func numbered(n int) *dataset.Dataset {
	d := &dataset.Dataset{Name: "bench"}
	for i := 0; i < n; i++ {
		d.Records = append(d.Records, dataset.Record{SMILES: "C", Target: float64(i)})
	}

	return d
}

// TestSplit_PartitionAndDeterminism: splits partition the records exactly
// and are reproducible per seed.
func TestSplit_PartitionAndDeterminism(t *testing.T) {
	d := numbered(100)

	train, valid, test, err := d.Split(dataset.WithSeed(42))
	require.NoError(t, err)

	require.Equal(t, 80, train.Len())
	require.Equal(t, 10, valid.Len())
	require.Equal(t, 10, test.Len())
	require.Equal(t, "bench/train", train.Name)

	// Exact partition: every target appears exactly once across splits.
	var all []float64
	all = append(all, train.Targets()...)
	all = append(all, valid.Targets()...)
	all = append(all, test.Targets()...)
	sort.Float64s(all)
	for i, v := range all {
		require.Equal(t, float64(i), v, "partition lost or duplicated a record")
	}

	// Same seed reproduces the same split.
	train2, _, _, err := d.Split(dataset.WithSeed(42))
	require.NoError(t, err)
	require.Equal(t, train.Records, train2.Records)

	// A different seed moves records around.
	train3, _, _, err := d.Split(dataset.WithSeed(43))
	require.NoError(t, err)
	require.NotEqual(t, train.Records, train3.Records)
}

// TestSplit_FractionsAndErrors covers custom fractions, bad fractions, and
// the empty dataset.
func TestSplit_FractionsAndErrors(t *testing.T) {
	d := numbered(10)

	train, valid, test, err := d.Split(dataset.WithFractions(0.5, 0.3, 0.2))
	require.NoError(t, err)
	require.Equal(t, 5, train.Len())
	require.Equal(t, 3, valid.Len())
	require.Equal(t, 2, test.Len())

	_, _, _, err = d.Split(dataset.WithFractions(0.9, 0.2, 0.1))
	require.ErrorIs(t, err, dataset.ErrBadFractions)

	_, _, _, err = d.Split(dataset.WithFractions(-0.1, 1.0, 0.1))
	require.ErrorIs(t, err, dataset.ErrBadFractions)

	empty := &dataset.Dataset{Name: "empty"}
	_, _, _, err = empty.Split()
	require.ErrorIs(t, err, dataset.ErrEmptyDataset)
}
