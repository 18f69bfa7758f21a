// Package mol provides the molecular graph primitives used across molgraph:
// atoms, bonds, and the Molecule container, plus the derived chemistry
// queries featurization needs (implicit hydrogens, ring membership).
//
// What
//
//   - Molecule: an undirected simple graph of atoms and bonds, built
//     incrementally (AddAtom, AddBond) and treated as immutable afterwards.
//   - Atom: element symbol, aromatic flag, formal charge, isotope, and an
//     explicit hydrogen count (bracket atoms) or ImplicitH.
//   - Bond: endpoints by atom index with a BondOrder (single, double,
//     triple, aromatic).
//   - Derived queries: Neighbors, Degree, BondBetween, TotalHydrogens,
//     SmallestRingSize, InRing.
//
// Determinism
//
//	Atom indices are dense 0..NumAtoms()-1 in insertion order, which for a
//	parsed descriptor is parse order. Neighbors returns atom indices in
//	increasing order, so every traversal over a Molecule is reproducible.
//
// Concurrency
//
//	A Molecule is not safe for concurrent mutation. Build it on one
//	goroutine (the parser does), then share it freely: all query methods
//	are read-only.
//
// Complexity (V = atoms, E = bonds)
//
//   - AddAtom, AddBond: O(1) amortized (AddBond is O(deg) for the
//     duplicate check).
//   - Neighbors: O(deg log deg) for the sorted copy.
//   - SmallestRingSize / InRing: O(deg · (V + E)) BFS per query.
//
// Errors
//
//	ErrAtomIndex, ErrBondIndex, ErrSelfBond, ErrDuplicateBond, ErrBadOrder.
package mol
