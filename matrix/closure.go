// Package matrix - metric closure over a binary adjacency matrix.
//
// Contract shared by both entry points:
//   - Square matrix; +Inf means "no path"; the diagonal is 0.
//   - Fixed k→i→j relaxation order, strict improvement only, so the
//     accumulation order (and therefore the result) is deterministic.
package matrix

import (
	"fmt"
	"math"
)

// Operation name constants used in error wrapping.
const (
	opMetricClosure = "MetricClosure"
	opFloydWarshall = "FloydWarshall"
)

// MetricClosure converts a binary adjacency matrix into an all-pairs
// hop-distance matrix: 0 on the diagonal, 1 where a bond exists, shortest
// hop count elsewhere, +Inf for pairs with no connecting path.
// The input is not modified.
// Returns ErrNilMatrix or ErrNotSquare on invalid input.
// Complexity: Time O(n³), Space O(n²) for the result.
func MetricClosure(adj *Dense) (*Dense, error) {
	if adj == nil {
		return nil, fmt.Errorf("%s: %w", opMetricClosure, ErrNilMatrix)
	}
	if adj.r != adj.c {
		return nil, fmt.Errorf("%s: %dx%d: %w", opMetricClosure, adj.r, adj.c, ErrNotSquare)
	}

	dist := adj.Clone()
	n := dist.r
	// Seed distances: diagonal 0; any non-zero adjacency entry is one hop;
	// absent edges start at +Inf and wait for relaxation.
	var i, j int
	for i = 0; i < n; i++ {
		for j = 0; j < n; j++ {
			switch {
			case i == j:
				dist.data[i*n+j] = 0
			case dist.data[i*n+j] != 0:
				dist.data[i*n+j] = 1
			default:
				dist.data[i*n+j] = math.Inf(1)
			}
		}
	}

	if err := FloydWarshall(dist); err != nil {
		return nil, fmt.Errorf("%s: %w", opMetricClosure, err)
	}

	return dist, nil
}

// FloydWarshall runs all-pairs shortest paths in place on d.
// The caller guarantees the metric-closure contract: square shape, zero
// diagonal, +Inf for missing edges.
// Complexity: Time O(n³), extra space O(1).
func FloydWarshall(d *Dense) error {
	if d == nil {
		return fmt.Errorf("%s: %w", opFloydWarshall, ErrNilMatrix)
	}
	if d.r != d.c {
		return fmt.Errorf("%s: %dx%d: %w", opFloydWarshall, d.r, d.c, ErrNotSquare)
	}

	n := d.r
	data := d.data

	// Predeclared counters and temporaries keep the hot loops allocation-free.
	var (
		k, i, j      int
		baseK, baseI int
		ik, kj, cand float64
	)
	for k = 0; k < n; k++ {
		baseK = k * n
		for i = 0; i < n; i++ {
			ik = data[i*n+k]
			if math.IsInf(ik, 1) {
				continue // i cannot reach k; no path via k can improve i→j
			}
			baseI = i * n
			for j = 0; j < n; j++ {
				kj = data[baseK+j]
				if math.IsInf(kj, 1) {
					continue
				}
				cand = ik + kj
				if cand < data[baseI+j] {
					data[baseI+j] = cand
				}
			}
		}
	}

	return nil
}
