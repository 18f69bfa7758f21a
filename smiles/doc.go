// Package smiles parses a practical subset of the SMILES line notation into
// a mol.Molecule, covering the inputs molecular property benchmarks use.
//
// What
//
//   - Organic-subset atoms: B, C, N, O, P, S, F, Cl, Br, I, written bare.
//   - Aromatic atoms in lowercase form: b, c, n, o, p, s.
//   - Bracket atoms: [isotope? symbol chirality? Hcount? charge? class?],
//     e.g. [NH4+], [13CH4], [O-]. Chirality tags (@, @@) and atom classes
//     (:n) are accepted and ignored.
//   - Bonds: - = # :, with / and \ read as single bonds (stereo ignored).
//   - Branches in parentheses, ring-bond closures 1..9 and %nn, and
//     dot-separated disconnected components.
//
// Semantics
//
//	An unwritten bond between two aromatic atoms is aromatic, otherwise
//	single. Ring closures may carry the bond symbol on either side; writing
//	conflicting symbols on the two sides is an error. Atom indices in the
//	resulting Molecule follow the order atoms appear in the string, which
//	is the ordering every downstream array is built over.
//
// Out of scope
//
//	Stereochemistry, wildcards (*), reaction arrows, and multi-digit ring
//	bond reuse beyond %99. Kekulization is not performed; aromatic systems
//	keep their aromatic bond order.
//
// Errors
//
//	All failures return one of the package sentinels (ErrEmptyInput,
//	ErrSyntax, ErrUnknownElement, ErrBadBracket, ErrUnclosedBranch,
//	ErrExtraBranchClose, ErrUnclosedRing, ErrRingBondConflict,
//	ErrDanglingBond), wrapped with the byte offset of the offense.
package smiles
