// Package feat - result type, options, constants, and sentinel errors.
package feat

import (
	"context"
	"errors"
	"fmt"

	"github.com/katalvlaran/molgraph/matrix"
)

// Sentinel errors for featurization.
var (
	// ErrNilMolecule indicates a nil *mol.Molecule or one with no atoms.
	ErrNilMolecule = errors.New("feat: nil or empty molecule")

	// ErrTooManyAtoms indicates the molecule exceeds the WithMaxAtoms limit.
	ErrTooManyAtoms = errors.New("feat: molecule exceeds max atoms")

	// ErrOptionViolation indicates an invalid Option was supplied.
	ErrOptionViolation = errors.New("feat: invalid option supplied")
)

// NumAtomFeatures is the fixed node-feature width: every row of
// MolGraph.Nodes has exactly this many columns.
const NumAtomFeatures = 36

// DummyDistance is the sentinel distance assigned to every entry in a
// dummy slot's row and column, and to unreachable atom pairs
// (dot-disconnected components). The value replicates the reference
// featurization convention bit for bit and must not be redefined.
const DummyDistance = 1e6

// Feature block offsets within a node-feature row. The blocks partition
// [0, NumAtomFeatures) exactly; see the package documentation.
const (
	offElement   = 0  // 11 slots: B C N O F P S Cl Br I other
	offDegree    = 11 // 6 slots: degree 0..5
	offHydrogens = 17 // 5 slots: total H 0..4
	offCharge    = 22 // 5 slots: formal charge -2..+2
	offRingSize  = 27 // 6 slots: none,3,4,5,6,7+
	idxAromatic  = 33
	idxInRing    = 34
	idxDummy     = 35
)

// MolGraph bundles the three arrays produced for one molecule. All three
// matrices share the same leading dimension; Size is the number of rows in
// use (real atoms plus the reserved dummy slot when enabled), which equals
// the full row count unless WithMaxAtoms padded the shape.
type MolGraph struct {
	// Nodes is the per-slot feature matrix, NumAtomFeatures columns wide.
	Nodes *matrix.Dense

	// Adjacency is the symmetric 0/1 bond matrix with a zero diagonal.
	Adjacency *matrix.Dense

	// Distance is the pairwise hop-count matrix; dummy slots and
	// unreachable pairs carry DummyDistance.
	Distance *matrix.Dense

	// Size is the number of occupied leading rows: atoms + dummy slot.
	Size int
}

// Option configures featurization via functional arguments. An invalid
// Option is recorded and surfaced as ErrOptionViolation at call time.
type Option func(*Options)

// Options holds the featurization parameters.
type Options struct {
	// Ctx allows cancellation between per-atom encoding steps.
	Ctx context.Context

	// MaxAtoms, if > 0, fixes the output shape to MaxAtoms atom rows
	// (plus the dummy slot); molecules with more atoms are rejected.
	// 0 sizes every output exactly to its molecule.
	MaxAtoms int

	// DummyNode controls the reserved slot at index 0.
	DummyNode bool

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns the canonical configuration: background context,
// exact sizing (MaxAtoms == 0), dummy slot enabled.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		MaxAtoms:  0,
		DummyNode: true,
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithMaxAtoms fixes the padded output shape.
//
//	n > 0: every output has n atom rows; larger molecules are rejected
//	n == 0: exact sizing per molecule
//	n < 0: invalid option → ErrOptionViolation
func WithMaxAtoms(n int) Option {
	return func(o *Options) {
		if n < 0 {
			o.err = fmt.Errorf("%w: MaxAtoms cannot be negative (%d)", ErrOptionViolation, n)

			return
		}
		o.MaxAtoms = n
	}
}

// WithoutDummyNode drops the reserved slot at index 0, producing arrays
// indexed directly by atom.
func WithoutDummyNode() Option {
	return func(o *Options) {
		o.DummyNode = false
	}
}
