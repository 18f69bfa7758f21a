// Package export persists featurized molecules as NumPy .npy files, the
// interchange format model-side tooling reads directly.
//
// Layout
//
//	WriteMolGraph(dir, "mol", g) produces
//	    dir/mol_nodes.npy       (Size+padding × 36, float64)
//	    dir/mol_adjacency.npy   (square, float64)
//	    dir/mol_distance.npy    (square, float64)
//	WriteBatch numbers molecules mol_000000, mol_000001, … in input order
//	and adds targets.npy (1-D float64) when targets are supplied.
//
// Files are written atomically per array: a failure leaves no partially
// written .npy behind.
package export
