package export

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/sbinet/npyio"
	"gonum.org/v1/gonum/mat"

	"github.com/katalvlaran/molgraph/feat"
	"github.com/katalvlaran/molgraph/matrix"
)

// Sentinel errors for export operations.
var (
	// ErrNilGraph indicates a nil *feat.MolGraph.
	ErrNilGraph = errors.New("export: nil molecule graph")

	// ErrNilMatrix indicates a nil *matrix.Dense.
	ErrNilMatrix = errors.New("export: nil matrix")

	// ErrLengthMismatch indicates targets whose length differs from the
	// graph batch.
	ErrLengthMismatch = errors.New("export: graphs/targets length mismatch")
)

// WriteMatrix writes one matrix to path as a 2-D float64 .npy array.
// The write goes through a temp file and rename, so readers never observe
// a truncated array.
func WriteMatrix(path string, d *matrix.Dense) error {
	if d == nil {
		return fmt.Errorf("WriteMatrix(%s): %w", path, ErrNilMatrix)
	}

	tmp, err := os.CreateTemp(filepath.Dir(path), ".npy-*")
	if err != nil {
		return fmt.Errorf("export: create temp for %s: %w", path, err)
	}
	tmpName := tmp.Name()

	werr := npyio.Write(tmp, mat.NewDense(d.Rows(), d.Cols(), d.Raw()))
	cerr := tmp.Close()
	if werr != nil {
		os.Remove(tmpName)

		return fmt.Errorf("export: write %s: %w", path, werr)
	}
	if cerr != nil {
		os.Remove(tmpName)

		return fmt.Errorf("export: close %s: %w", path, cerr)
	}
	if err = os.Rename(tmpName, path); err != nil {
		os.Remove(tmpName)

		return fmt.Errorf("export: rename %s: %w", path, err)
	}

	return nil
}

// WriteMolGraph writes the three arrays of one featurized molecule into
// dir under the given base name.
func WriteMolGraph(dir, base string, g *feat.MolGraph) error {
	if g == nil {
		return fmt.Errorf("WriteMolGraph(%s): %w", base, ErrNilGraph)
	}

	parts := []struct {
		suffix string
		m      *matrix.Dense
	}{
		{"nodes", g.Nodes},
		{"adjacency", g.Adjacency},
		{"distance", g.Distance},
	}
	for _, p := range parts {
		path := filepath.Join(dir, fmt.Sprintf("%s_%s.npy", base, p.suffix))
		if err := WriteMatrix(path, p.m); err != nil {
			return err
		}
	}

	return nil
}

// WriteBatch writes a featurized batch in input order as mol_000000,
// mol_000001, …, plus targets.npy when targets is non-nil.
// Returns ErrLengthMismatch when targets is non-nil with a different
// length than graphs.
func WriteBatch(dir string, graphs []*feat.MolGraph, targets []float64) error {
	if targets != nil && len(targets) != len(graphs) {
		return fmt.Errorf("%w: %d graphs, %d targets", ErrLengthMismatch, len(graphs), len(targets))
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("export: mkdir %s: %w", dir, err)
	}

	for i, g := range graphs {
		if err := WriteMolGraph(dir, fmt.Sprintf("mol_%06d", i), g); err != nil {
			return fmt.Errorf("export: molecule %d: %w", i, err)
		}
	}

	if targets == nil {
		return nil
	}

	f, err := os.Create(filepath.Join(dir, "targets.npy"))
	if err != nil {
		return fmt.Errorf("export: create targets.npy: %w", err)
	}
	werr := npyio.Write(f, targets)
	cerr := f.Close()
	if werr != nil {
		return fmt.Errorf("export: write targets.npy: %w", werr)
	}
	if cerr != nil {
		return fmt.Errorf("export: close targets.npy: %w", cerr)
	}

	return nil
}
