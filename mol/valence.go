// Package mol - hydrogen accounting for the SMILES organic subset.
//
// Bracket atoms carry their hydrogen count explicitly and are returned
// verbatim. For organic-subset atoms the count is derived from the standard
// valence model: the smallest allowed valence (shifted by formal charge)
// that covers the atom's current bond order sum, minus that sum.
//
// This is the usual toolkit-free simplification: it matches the reference
// chemistry toolkits on neutral organic-subset molecules and on the common
// charged forms (ammonium nitrogen, alkoxide oxygen), which is the input
// space the featurizer is specified over.
package mol

import (
	"fmt"
	"math"
)

// allowedValences lists the permitted valences per organic-subset element,
// smallest first. Elements absent from the table get zero implicit
// hydrogens, matching bracket-atom semantics.
var allowedValences = map[string][]int{
	"B":  {3},
	"C":  {4},
	"N":  {3, 5},
	"O":  {2},
	"P":  {3, 5},
	"S":  {2, 4, 6},
	"F":  {1},
	"Cl": {1},
	"Br": {1},
	"I":  {1},
}

// bondOrderSum accumulates the fractional bond orders incident to atom i,
// counting aromatic bonds as 1.5, and rounds up. Benzene carbon therefore
// contributes 3, which yields the expected single implicit hydrogen.
func (m *Molecule) bondOrderSum(i int) int {
	var sum float64
	for _, bi := range m.incident[i] {
		sum += m.bonds[bi].Order.Value()
	}

	return int(math.Ceil(sum))
}

// TotalHydrogens returns the hydrogen count of atom i: the explicit bracket
// count when present, otherwise the implicit count from the valence model.
// An atom whose bonds exceed every allowed valence gets zero hydrogens
// rather than an error; the parser has already accepted the structure.
// Complexity: O(deg).
func (m *Molecule) TotalHydrogens(i int) (int, error) {
	if i < 0 || i >= len(m.atoms) {
		return 0, fmt.Errorf("TotalHydrogens(%d): %w", i, ErrAtomIndex)
	}

	a := m.atoms[i]
	if a.Hydrogens != ImplicitH {
		return a.Hydrogens, nil
	}

	valences, ok := allowedValences[a.Element]
	if !ok {
		return 0, nil
	}

	used := m.bondOrderSum(i)
	for _, v := range valences {
		// Formal charge shifts the effective valence: N+ binds like C (4),
		// O- binds like F (1).
		adjusted := v + a.Charge
		if adjusted < 0 {
			continue
		}
		if used <= adjusted {
			return adjusted - used, nil
		}
	}

	return 0, nil
}
