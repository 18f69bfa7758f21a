package mol

import (
	"fmt"
	"sort"
)

// defaultAtomReserve sizes the initial atom/bond slices; most drug-like
// molecules stay well under it.
const defaultAtomReserve = 16

// NewMolecule returns an empty Molecule ready for AddAtom/AddBond.
func NewMolecule() *Molecule {
	return &Molecule{
		atoms:    make([]Atom, 0, defaultAtomReserve),
		bonds:    make([]Bond, 0, defaultAtomReserve),
		incident: make([][]int, 0, defaultAtomReserve),
	}
}

// AddAtom appends a and returns its index. Indices are dense and stable:
// the first atom added is 0, the next 1, and so on.
// Complexity: O(1) amortized.
func (m *Molecule) AddAtom(a Atom) int {
	m.atoms = append(m.atoms, a)
	m.incident = append(m.incident, nil)

	return len(m.atoms) - 1
}

// AddBond connects atoms u and v with the given order and returns the new
// bond's index.
// Returns ErrAtomIndex for endpoints out of range, ErrSelfBond for u==v,
// ErrDuplicateBond if the pair is already bonded, ErrBadOrder for an
// unsupported order.
// Complexity: O(deg(u)).
func (m *Molecule) AddBond(u, v int, order BondOrder) (int, error) {
	if u < 0 || u >= len(m.atoms) {
		return 0, fmt.Errorf("AddBond(%d,%d): %w", u, v, ErrAtomIndex)
	}
	if v < 0 || v >= len(m.atoms) {
		return 0, fmt.Errorf("AddBond(%d,%d): %w", u, v, ErrAtomIndex)
	}
	if u == v {
		return 0, fmt.Errorf("AddBond(%d,%d): %w", u, v, ErrSelfBond)
	}
	if !order.Valid() {
		return 0, fmt.Errorf("AddBond(%d,%d): order %d: %w", u, v, order, ErrBadOrder)
	}
	if _, ok := m.BondBetween(u, v); ok {
		return 0, fmt.Errorf("AddBond(%d,%d): %w", u, v, ErrDuplicateBond)
	}

	m.bonds = append(m.bonds, Bond{From: u, To: v, Order: order})
	idx := len(m.bonds) - 1
	m.incident[u] = append(m.incident[u], idx)
	m.incident[v] = append(m.incident[v], idx)

	return idx, nil
}

// NumAtoms returns the number of atoms.
func (m *Molecule) NumAtoms() int { return len(m.atoms) }

// NumBonds returns the number of bonds.
func (m *Molecule) NumBonds() int { return len(m.bonds) }

// Atom returns the atom at index i.
func (m *Molecule) Atom(i int) (Atom, error) {
	if i < 0 || i >= len(m.atoms) {
		return Atom{}, fmt.Errorf("Atom(%d): %w", i, ErrAtomIndex)
	}

	return m.atoms[i], nil
}

// Bond returns the bond at index i.
func (m *Molecule) Bond(i int) (Bond, error) {
	if i < 0 || i >= len(m.bonds) {
		return Bond{}, fmt.Errorf("Bond(%d): %w", i, ErrBondIndex)
	}

	return m.bonds[i], nil
}

// Bonds returns a copy of all bonds in insertion order.
func (m *Molecule) Bonds() []Bond {
	out := make([]Bond, len(m.bonds))
	copy(out, m.bonds)

	return out
}

// SetCharge replaces the formal charge of atom i.
func (m *Molecule) SetCharge(i, charge int) error {
	if i < 0 || i >= len(m.atoms) {
		return fmt.Errorf("SetCharge(%d): %w", i, ErrAtomIndex)
	}
	m.atoms[i].Charge = charge

	return nil
}

// Neighbors returns the atom indices bonded to i, in increasing order.
// Complexity: O(deg log deg).
func (m *Molecule) Neighbors(i int) ([]int, error) {
	if i < 0 || i >= len(m.atoms) {
		return nil, fmt.Errorf("Neighbors(%d): %w", i, ErrAtomIndex)
	}

	out := make([]int, 0, len(m.incident[i]))
	for _, bi := range m.incident[i] {
		out = append(out, m.bonds[bi].Other(i))
	}
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of bonded heavy-atom neighbors of i.
func (m *Molecule) Degree(i int) (int, error) {
	if i < 0 || i >= len(m.atoms) {
		return 0, fmt.Errorf("Degree(%d): %w", i, ErrAtomIndex)
	}

	return len(m.incident[i]), nil
}

// BondBetween returns the bond connecting u and v, if any.
// Out-of-range indices report no bond; construction paths validate first.
func (m *Molecule) BondBetween(u, v int) (Bond, bool) {
	if u < 0 || u >= len(m.atoms) || v < 0 || v >= len(m.atoms) {
		return Bond{}, false
	}
	for _, bi := range m.incident[u] {
		if m.bonds[bi].Other(u) == v {
			return m.bonds[bi], true
		}
	}

	return Bond{}, false
}

// Clone returns a deep copy of m. The copy shares nothing with the original.
// Complexity: O(V + E).
func (m *Molecule) Clone() *Molecule {
	c := &Molecule{
		atoms:    make([]Atom, len(m.atoms)),
		bonds:    make([]Bond, len(m.bonds)),
		incident: make([][]int, len(m.incident)),
	}
	copy(c.atoms, m.atoms)
	copy(c.bonds, m.bonds)
	for i, inc := range m.incident {
		c.incident[i] = make([]int, len(inc))
		copy(c.incident[i], inc)
	}

	return c
}
