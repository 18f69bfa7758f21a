// Package dataset loads molecular regression benchmarks from CSV files and
// produces the deterministic train/validation/test splits the model-side
// tooling consumes.
//
// What
//
//   - Dataset: named list of (descriptor, target) records with SMILES()
//     and Targets() projections.
//   - LoadCSV: header-addressed CSV ingestion; the descriptor and target
//     column names are options, so ESOL-style files with verbose headers
//     load without preprocessing.
//   - Split: seeded three-way shuffle split with validated fractions.
//     Same seed, same file ⇒ identical splits on every platform.
//
// Downloading and caching benchmark archives is out of scope; this package
// reads local files only.
//
// Errors
//
//	ErrMissingColumn, ErrBadTarget, ErrEmptyDataset, ErrBadFractions,
//	ErrOptionViolation, plus wrapped I/O and CSV errors.
package dataset
