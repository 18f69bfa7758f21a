// Package feat - per-atom feature row encoding.
package feat

import (
	"fmt"

	"github.com/katalvlaran/molgraph/mol"
)

// elementSlots maps the explicitly encoded elements to their one-hot slot;
// everything else falls into otherElementSlot.
var elementSlots = map[string]int{
	"B": 0, "C": 1, "N": 2, "O": 3, "F": 4,
	"P": 5, "S": 6, "Cl": 7, "Br": 8, "I": 9,
}

// otherElementSlot is the catch-all element slot.
const otherElementSlot = 10

// One-hot clamp bounds. Values beyond a block's range land in its last
// (respectively first) slot rather than erroring: a degree-7 phosphorus is
// exotic input, not invalid input.
const (
	maxDegreeSlot   = 5
	maxHydrogenSlot = 4
	minChargeSlot   = -2
	maxChargeSlot   = 2
	maxRingSlot     = 7
)

// atomRow encodes atom i into a fresh NumAtomFeatures-wide feature row.
func atomRow(m *mol.Molecule, i int) ([]float64, error) {
	row := make([]float64, NumAtomFeatures)

	a, err := m.Atom(i)
	if err != nil {
		return nil, fmt.Errorf("feat: atom %d: %w", i, err)
	}

	slot, ok := elementSlots[a.Element]
	if !ok {
		slot = otherElementSlot
	}
	row[offElement+slot] = 1

	deg, err := m.Degree(i)
	if err != nil {
		return nil, fmt.Errorf("feat: atom %d: %w", i, err)
	}
	row[offDegree+clamp(deg, 0, maxDegreeSlot)] = 1

	hyd, err := m.TotalHydrogens(i)
	if err != nil {
		return nil, fmt.Errorf("feat: atom %d: %w", i, err)
	}
	row[offHydrogens+clamp(hyd, 0, maxHydrogenSlot)] = 1

	charge := clamp(a.Charge, minChargeSlot, maxChargeSlot)
	row[offCharge+(charge-minChargeSlot)] = 1

	ringSize, err := m.SmallestRingSize(i)
	if err != nil {
		return nil, fmt.Errorf("feat: atom %d: %w", i, err)
	}
	row[offRingSize+ringSlot(ringSize)] = 1

	if a.Aromatic {
		row[idxAromatic] = 1
	}
	if ringSize != 0 {
		row[idxInRing] = 1
	}

	return row, nil
}

// dummyRow encodes the reserved non-atom slot: zero everywhere except the
// dummy indicator.
func dummyRow() []float64 {
	row := make([]float64, NumAtomFeatures)
	row[idxDummy] = 1

	return row
}

// ringSlot maps a smallest-ring size onto its one-hot slot:
// 0 (acyclic) → 0, 3 → 1, 4 → 2, 5 → 3, 6 → 4, 7+ → 5.
func ringSlot(size int) int {
	if size == 0 {
		return 0
	}

	return clamp(size, 3, maxRingSlot) - 2
}

// clamp bounds v to [lo, hi].
func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}

	return v
}
