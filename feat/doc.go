// Package feat implements the molecule featurizer: it turns a descriptor
// string (or a parsed mol.Molecule) into the three fixed-shape arrays a
// graph-transformer property model consumes — node features, adjacency,
// and pairwise hop distances — bundled in a MolGraph.
//
// Layout contract
//
//	Row and column 0 of every matrix is a reserved dummy slot that stands
//	for "no atom". Real atoms occupy rows 1..N in parse order. The dummy
//	slot carries DummyDistance (1e6) in every distance entry of its row
//	and column, zero adjacency, and a node-feature row that is zero except
//	for the dummy indicator. WithMaxAtoms pads to a fixed shape with
//	additional dummy slots after the real atoms. WithoutDummyNode drops
//	the reserved slot for callers that want bare atom-indexed arrays.
//
// Node features (NumAtomFeatures = 36 columns)
//
//	[0..10]  element one-hot: B, C, N, O, F, P, S, Cl, Br, I, other
//	[11..16] heavy-atom degree one-hot: 0..5 (clamped at 5)
//	[17..21] total hydrogen count one-hot: 0..4 (clamped at 4)
//	[22..26] formal charge one-hot: −2..+2 (clamped)
//	[27..32] smallest ring size one-hot: none, 3, 4, 5, 6, 7+
//	[33]     aromatic flag
//	[34]     in-ring flag
//	[35]     dummy-slot flag
//
// Determinism
//
//	Featurizing the same descriptor twice yields byte-identical matrices:
//	parse order fixes the atom ordering, and the metric closure relaxes in
//	a fixed loop order. FeaturizeBatch preserves input order exactly.
//
// Usage
//
//	g, err := feat.Featurize("CCC")
//	// g.Nodes: 4×36, g.Adjacency: 4×4, g.Distance: 4×4, g.Size: 4
//
//	batch, err := feat.FeaturizeBatch(smilesList,
//	    feat.WithContext(ctx),
//	    feat.WithMaxAtoms(64),
//	)
//
// Errors
//
//	ErrNilMolecule, ErrTooManyAtoms, ErrOptionViolation, and any smiles
//	parse sentinel from the descriptor entry points.
package feat
