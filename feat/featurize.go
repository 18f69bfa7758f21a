package feat

import (
	"fmt"
	"math"

	"github.com/katalvlaran/molgraph/matrix"
	"github.com/katalvlaran/molgraph/mol"
	"github.com/katalvlaran/molgraph/smiles"
)

// Featurize parses a descriptor string and featurizes the molecule.
// Parse failures surface the smiles package sentinels unchanged.
func Featurize(descriptor string, opts ...Option) (*MolGraph, error) {
	m, err := smiles.Parse(descriptor)
	if err != nil {
		return nil, err
	}

	return FeaturizeMolecule(m, opts...)
}

// FeaturizeBatch featurizes a list of descriptors, preserving order: the
// i-th result belongs to the i-th descriptor. The first failure aborts the
// batch, wrapped with the offending index and descriptor.
// Complexity: sum over molecules of O(V³) (the metric closure dominates).
func FeaturizeBatch(descriptors []string, opts ...Option) ([]*MolGraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	out := make([]*MolGraph, 0, len(descriptors))
	for i, d := range descriptors {
		// cancellation check between molecules
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		g, err := Featurize(d, opts...)
		if err != nil {
			return nil, fmt.Errorf("feat: descriptor %d (%q): %w", i, d, err)
		}
		out = append(out, g)
	}

	return out, nil
}

// FeaturizeMolecule featurizes an already-parsed molecule.
// Returns ErrNilMolecule for nil or atomless input, ErrOptionViolation for
// bad options, ErrTooManyAtoms when WithMaxAtoms is exceeded.
func FeaturizeMolecule(m *mol.Molecule, opts ...Option) (*MolGraph, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	if m == nil || m.NumAtoms() == 0 {
		return nil, ErrNilMolecule
	}

	n := m.NumAtoms()
	if o.MaxAtoms > 0 && n > o.MaxAtoms {
		return nil, fmt.Errorf("%w: %d atoms, limit %d", ErrTooManyAtoms, n, o.MaxAtoms)
	}

	pad := 0
	if o.DummyNode {
		pad = 1
	}
	atomRows := n
	if o.MaxAtoms > 0 {
		atomRows = o.MaxAtoms
	}
	total := atomRows + pad

	nodes, err := buildNodes(&o, m, n, pad, total)
	if err != nil {
		return nil, err
	}
	adj, err := buildAdjacency(m, pad, total)
	if err != nil {
		return nil, err
	}
	dist, err := buildDistance(m, n, pad, total)
	if err != nil {
		return nil, err
	}

	return &MolGraph{
		Nodes:     nodes,
		Adjacency: adj,
		Distance:  dist,
		Size:      n + pad,
	}, nil
}

// buildNodes assembles the node-feature matrix: the reserved slot first,
// real atoms in parse order, then padding slots.
func buildNodes(o *Options, m *mol.Molecule, n, pad, total int) (*matrix.Dense, error) {
	nodes, err := matrix.NewDense(total, NumAtomFeatures)
	if err != nil {
		return nil, fmt.Errorf("feat: nodes: %w", err)
	}

	setRow := func(r int, row []float64) error {
		for j, v := range row {
			if err = nodes.Set(r, j, v); err != nil {
				return fmt.Errorf("feat: nodes row %d: %w", r, err)
			}
		}

		return nil
	}

	if pad == 1 {
		if err = setRow(0, dummyRow()); err != nil {
			return nil, err
		}
	}
	for i := 0; i < n; i++ {
		// cancellation check once per atom
		select {
		case <-o.Ctx.Done():
			return nil, o.Ctx.Err()
		default:
		}

		row, rerr := atomRow(m, i)
		if rerr != nil {
			return nil, rerr
		}
		if err = setRow(pad+i, row); err != nil {
			return nil, err
		}
	}
	for r := pad + n; r < total; r++ {
		if err = setRow(r, dummyRow()); err != nil {
			return nil, err
		}
	}

	return nodes, nil
}

// buildAdjacency mirrors every bond into a symmetric 0/1 matrix offset by
// the reserved slot. Dummy and padding slots stay all-zero.
func buildAdjacency(m *mol.Molecule, pad, total int) (*matrix.Dense, error) {
	adj, err := matrix.NewDense(total, total)
	if err != nil {
		return nil, fmt.Errorf("feat: adjacency: %w", err)
	}

	for _, b := range m.Bonds() {
		if err = adj.Set(pad+b.From, pad+b.To, 1); err != nil {
			return nil, fmt.Errorf("feat: adjacency: %w", err)
		}
		if err = adj.Set(pad+b.To, pad+b.From, 1); err != nil {
			return nil, fmt.Errorf("feat: adjacency: %w", err)
		}
	}

	return adj, nil
}

// buildDistance runs the metric closure over the atom subgraph, then embeds
// it with every dummy, padding, and unreachable entry forced to
// DummyDistance.
func buildDistance(m *mol.Molecule, n, pad, total int) (*matrix.Dense, error) {
	atomAdj, err := matrix.NewDense(n, n)
	if err != nil {
		return nil, fmt.Errorf("feat: distance: %w", err)
	}
	for _, b := range m.Bonds() {
		if err = atomAdj.Set(b.From, b.To, 1); err != nil {
			return nil, fmt.Errorf("feat: distance: %w", err)
		}
		if err = atomAdj.Set(b.To, b.From, 1); err != nil {
			return nil, fmt.Errorf("feat: distance: %w", err)
		}
	}

	closure, err := matrix.MetricClosure(atomAdj)
	if err != nil {
		return nil, fmt.Errorf("feat: distance: %w", err)
	}

	dist, err := matrix.NewDense(total, total)
	if err != nil {
		return nil, fmt.Errorf("feat: distance: %w", err)
	}
	dist.Fill(DummyDistance)

	var v float64
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			if v, err = closure.At(i, j); err != nil {
				return nil, fmt.Errorf("feat: distance: %w", err)
			}
			if math.IsInf(v, 1) {
				v = DummyDistance // disconnected components
			}
			if err = dist.Set(pad+i, pad+j, v); err != nil {
				return nil, fmt.Errorf("feat: distance: %w", err)
			}
		}
	}

	return dist, nil
}
