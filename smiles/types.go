// Package smiles sentinel errors and element tables.
package smiles

import "errors"

// Sentinel errors for SMILES parsing.
var (
	// ErrEmptyInput indicates an empty descriptor string.
	ErrEmptyInput = errors.New("smiles: empty input")

	// ErrSyntax indicates a character that fits no production at its position.
	ErrSyntax = errors.New("smiles: unexpected character")

	// ErrUnknownElement indicates an element symbol outside the table.
	ErrUnknownElement = errors.New("smiles: unknown element")

	// ErrBadBracket indicates a malformed or unterminated bracket atom.
	ErrBadBracket = errors.New("smiles: malformed bracket atom")

	// ErrUnclosedBranch indicates a '(' without a matching ')'.
	ErrUnclosedBranch = errors.New("smiles: unclosed branch")

	// ErrExtraBranchClose indicates a ')' without an open branch.
	ErrExtraBranchClose = errors.New("smiles: unmatched branch close")

	// ErrUnclosedRing indicates a ring-bond digit left open at end of input.
	ErrUnclosedRing = errors.New("smiles: unclosed ring bond")

	// ErrRingBondConflict indicates the two sides of a ring closure carry
	// different explicit bond symbols.
	ErrRingBondConflict = errors.New("smiles: conflicting ring bond orders")

	// ErrDanglingBond indicates a bond symbol not followed by an atom.
	ErrDanglingBond = errors.New("smiles: dangling bond")
)

// organicSubset lists the elements that may be written without brackets.
// Two-letter symbols (Cl, Br) are matched greedily before one-letter ones.
var organicSubset = map[string]bool{
	"B": true, "C": true, "N": true, "O": true, "P": true, "S": true,
	"F": true, "Cl": true, "Br": true, "I": true,
}

// aromaticSubset lists the lowercase aromatic forms and their canonical
// element symbols.
var aromaticSubset = map[byte]string{
	'b': "B", 'c': "C", 'n': "N", 'o': "O", 'p': "P", 's': "S",
}

// periodicTable lists the element symbols accepted inside brackets. Kept to
// the species that actually occur in property-prediction benchmarks.
var periodicTable = map[string]bool{
	"H": true, "He": true, "Li": true, "Be": true, "B": true, "C": true,
	"N": true, "O": true, "F": true, "Ne": true, "Na": true, "Mg": true,
	"Al": true, "Si": true, "P": true, "S": true, "Cl": true, "Ar": true,
	"K": true, "Ca": true, "Ti": true, "Cr": true, "Mn": true, "Fe": true,
	"Co": true, "Ni": true, "Cu": true, "Zn": true, "Ga": true, "Ge": true,
	"As": true, "Se": true, "Br": true, "Kr": true, "Sr": true, "Zr": true,
	"Mo": true, "Pd": true, "Ag": true, "Cd": true, "In": true, "Sn": true,
	"Sb": true, "Te": true, "I": true, "Ba": true, "Pt": true, "Au": true,
	"Hg": true, "Tl": true, "Pb": true, "Bi": true,
}
