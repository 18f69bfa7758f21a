// Package mol core types: Atom, Bond, BondOrder, Molecule, and the sentinel
// errors shared by all Molecule operations. Methods live in methods.go,
// hydrogen accounting in valence.go, ring queries in rings.go.
package mol

import "errors"

// Sentinel errors for molecule construction and queries.
var (
	// ErrAtomIndex indicates an atom index outside 0..NumAtoms()-1.
	ErrAtomIndex = errors.New("mol: atom index out of range")

	// ErrBondIndex indicates a bond index outside 0..NumBonds()-1.
	ErrBondIndex = errors.New("mol: bond index out of range")

	// ErrSelfBond indicates an attempt to bond an atom to itself.
	ErrSelfBond = errors.New("mol: self bond not allowed")

	// ErrDuplicateBond indicates a second bond between the same atom pair.
	ErrDuplicateBond = errors.New("mol: duplicate bond not allowed")

	// ErrBadOrder indicates a BondOrder outside the supported set.
	ErrBadOrder = errors.New("mol: unsupported bond order")
)

// ImplicitH marks an atom whose hydrogen count was not written explicitly
// and must be derived from the valence model (see TotalHydrogens).
const ImplicitH = -1

// BondOrder enumerates the bond types the featurizer distinguishes.
type BondOrder int

const (
	// Single is an ordinary two-electron bond.
	Single BondOrder = iota + 1
	// Double is a four-electron bond.
	Double
	// Triple is a six-electron bond.
	Triple
	// Aromatic is a delocalized ring bond.
	Aromatic
)

// Value returns the fractional bond order used in valence arithmetic:
// 1, 2, 3, or 1.5 for aromatic bonds.
func (o BondOrder) Value() float64 {
	switch o {
	case Single:
		return 1
	case Double:
		return 2
	case Triple:
		return 3
	case Aromatic:
		return 1.5
	default:
		return 0
	}
}

// Valid reports whether o is one of the supported bond orders.
func (o BondOrder) Valid() bool {
	return o >= Single && o <= Aromatic
}

// Atom describes a single heavy atom.
//
// Hydrogens is the explicit hydrogen count for bracket atoms; ImplicitH
// means "derive from valence". Isotope is 0 when unspecified.
type Atom struct {
	// Element is the element symbol in canonical case ("C", "Cl", "Br").
	Element string

	// Aromatic marks atoms written in aromatic (lowercase) form.
	Aromatic bool

	// Charge is the formal charge.
	Charge int

	// Isotope is the mass number, or 0 when unspecified.
	Isotope int

	// Hydrogens is the explicit H count, or ImplicitH.
	Hydrogens int
}

// Bond connects two atoms by index. From < To is not required; bonds are
// undirected and stored exactly once.
type Bond struct {
	// From is the lower-indexed endpoint as written.
	From int

	// To is the other endpoint.
	To int

	// Order is the bond order.
	Order BondOrder
}

// Other returns the endpoint of b that is not atom i.
// The caller must pass one of the two endpoints.
func (b Bond) Other(i int) int {
	if b.From == i {
		return b.To
	}

	return b.From
}

// Molecule is an undirected simple graph of atoms and bonds.
// The zero value is not usable; construct with NewMolecule.
type Molecule struct {
	atoms []Atom
	bonds []Bond
	// incident[i] lists bond indices touching atom i, in insertion order.
	incident [][]int
}
