// Package mol - ring queries via per-atom breadth-first search.
//
// The smallest ring through atom v is found by deleting each incident bond
// (v,u) in turn and measuring the surviving shortest path v→u; the cheapest
// detour plus the deleted bond closes the smallest cycle using that bond.
// Exact for simple graphs; O(deg · (V + E)) per atom, which is negligible at
// molecule sizes.
package mol

import "fmt"

// ringNone is the SmallestRingSize result for acyclic atoms.
const ringNone = 0

// SmallestRingSize returns the size of the smallest ring containing atom i,
// or 0 when i is not part of any ring.
func (m *Molecule) SmallestRingSize(i int) (int, error) {
	if i < 0 || i >= len(m.atoms) {
		return 0, fmt.Errorf("SmallestRingSize(%d): %w", i, ErrAtomIndex)
	}

	best := ringNone
	for _, bi := range m.incident[i] {
		u := m.bonds[bi].Other(i)
		d := m.hopDistanceExcluding(i, u, bi)
		if d < 0 {
			continue // bond (i,u) is a bridge; no ring through it
		}
		if size := d + 1; best == ringNone || size < best {
			best = size
		}
	}

	return best, nil
}

// InRing reports whether atom i belongs to at least one ring.
func (m *Molecule) InRing(i int) (bool, error) {
	size, err := m.SmallestRingSize(i)
	if err != nil {
		return false, err
	}

	return size != ringNone, nil
}

// BondInRing reports whether bond b belongs to a ring, i.e. whether its
// endpoints stay connected after deleting it.
func (m *Molecule) BondInRing(b int) (bool, error) {
	if b < 0 || b >= len(m.bonds) {
		return false, fmt.Errorf("BondInRing(%d): %w", b, ErrBondIndex)
	}

	bond := m.bonds[b]

	return m.hopDistanceExcluding(bond.From, bond.To, b) >= 0, nil
}

// hopDistanceExcluding runs BFS from src to dst with bond skip removed,
// returning the hop count or -1 when dst is unreachable.
// Plain slice queue, seen bitmap; the structure mirrors every other BFS in
// this module so traversal order stays deterministic.
func (m *Molecule) hopDistanceExcluding(src, dst, skip int) int {
	type item struct {
		atom  int
		depth int
	}

	seen := make([]bool, len(m.atoms))
	queue := make([]item, 0, len(m.atoms))
	queue = append(queue, item{atom: src})
	seen[src] = true

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]
		if cur.atom == dst {
			return cur.depth
		}
		for _, bi := range m.incident[cur.atom] {
			if bi == skip {
				continue
			}
			nbr := m.bonds[bi].Other(cur.atom)
			if !seen[nbr] {
				seen[nbr] = true
				queue = append(queue, item{atom: nbr, depth: cur.depth + 1})
			}
		}
	}

	return -1
}
