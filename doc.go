// Package molgraph turns molecule descriptor strings into the fixed-shape
// numeric arrays that graph-transformer property-prediction models consume.
//
// 🚀 What is molgraph?
//
//	A small, deterministic, pure-Go featurization library:
//		• smiles/  — SMILES-subset parsing into an atom/bond graph
//		• mol/     — molecular graph primitives: atoms, bonds, valence, rings
//		• matrix/  — dense float64 matrices + Floyd–Warshall metric closure
//		• feat/    — the featurizer: node features, adjacency, hop distances
//		• dataset/ — CSV regression benchmarks with seeded three-way splits
//		• metrics/ — MAE, RMSE, R², Pearson r for scoring model output
//		• export/  — .npy export of featurized batches
//
// ✨ Why molgraph?
//
//   - Deterministic — same descriptor in, byte-identical arrays out
//   - Explicit contracts — the dummy-slot and sentinel-distance conventions
//     are documented types, not conventions inferred from usage
//   - Pure Go library core — no cgo, no chemistry toolkit binding
//
// The model itself (attention layers, training loop, optimizer) is out of
// scope on purpose: molgraph produces model input and scores model output,
// nothing in between.
//
// Quick ASCII example — propane ("CCC") with the reserved dummy slot *:
//
//	    *   C───C───C
//	   row0 row1 row2 row3
//
// featurizes into a 4×36 node-feature matrix, a 4×4 adjacency matrix and a
// 4×4 hop-distance matrix whose row/column 0 carries the sentinel 1e6.
//
//	go get github.com/katalvlaran/molgraph
package molgraph
