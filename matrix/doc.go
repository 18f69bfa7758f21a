// Package matrix provides the dense float64 matrices backing featurized
// molecule arrays, plus the metric-closure transform that turns a binary
// adjacency matrix into all-pairs hop distances.
//
// What
//
//   - Dense: a bounds-checked row-major float64 matrix (Rows, Cols, At,
//     Set, Fill, Row, Clone, Equal).
//   - MetricClosure: adjacency → pairwise shortest hop counts, with +Inf
//     for unreachable pairs and 0 on the diagonal.
//   - FloydWarshall: the in-place APSP kernel behind MetricClosure, for
//     callers that prepare their own distance matrix.
//
// Determinism
//
//	FloydWarshall relaxes with a fixed k→i→j loop order and strict
//	improvement only, so results are reproducible bit for bit.
//
// Sizing
//
//	Matrices here are per-molecule: tens of rows, not thousands. The O(n³)
//	closure is deliberate; at these sizes it beats the bookkeeping of
//	anything asymptotically smarter.
//
// Errors
//
//	ErrInvalidDimensions, ErrIndexOutOfBounds, ErrNilMatrix, ErrNotSquare.
package matrix
