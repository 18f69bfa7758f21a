// Package dataset core types, options, and sentinel errors.
package dataset

import (
	"errors"

	"github.com/samber/lo"
)

// Sentinel errors for dataset loading and splitting.
var (
	// ErrMissingColumn indicates the descriptor or target column is absent
	// from the CSV header.
	ErrMissingColumn = errors.New("dataset: column not found in header")

	// ErrBadTarget indicates a target cell that does not parse as a float.
	ErrBadTarget = errors.New("dataset: target value is not numeric")

	// ErrEmptyDataset indicates a file with a header but no data rows, or
	// an operation on a dataset with no records.
	ErrEmptyDataset = errors.New("dataset: no records")

	// ErrBadFractions indicates split fractions that are negative or do
	// not sum to one.
	ErrBadFractions = errors.New("dataset: split fractions must be non-negative and sum to 1")
)

// Record pairs one molecule descriptor with its regression target.
type Record struct {
	// SMILES is the molecule descriptor string, verbatim from the file.
	SMILES string

	// Target is the regression label.
	Target float64
}

// Dataset is an ordered, immutable-by-convention list of records.
type Dataset struct {
	// Name identifies the benchmark (defaults to the file base name).
	Name string

	// Records holds the rows in file order.
	Records []Record
}

// Len returns the number of records.
func (d *Dataset) Len() int { return len(d.Records) }

// SMILES returns the descriptor strings in record order.
func (d *Dataset) SMILES() []string {
	return lo.Map(d.Records, func(r Record, _ int) string { return r.SMILES })
}

// Targets returns the regression labels in record order.
func (d *Dataset) Targets() []float64 {
	return lo.Map(d.Records, func(r Record, _ int) float64 { return r.Target })
}

// Option configures LoadCSV.
type Option func(*Options)

// Options holds CSV ingestion parameters.
type Options struct {
	// SMILESColumn is the header name of the descriptor column.
	SMILESColumn string

	// TargetColumn is the header name of the regression target column.
	TargetColumn string

	// Comma is the field delimiter.
	Comma rune

	// Name overrides the dataset name derived from the file path.
	Name string
}

// DefaultOptions returns the conventional column names and delimiter.
func DefaultOptions() Options {
	return Options{
		SMILESColumn: "smiles",
		TargetColumn: "target",
		Comma:        ',',
	}
}

// WithSMILESColumn sets the descriptor column header name.
func WithSMILESColumn(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.SMILESColumn = name
		}
	}
}

// WithTargetColumn sets the target column header name.
func WithTargetColumn(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.TargetColumn = name
		}
	}
}

// WithComma sets the field delimiter (e.g. '\t' for TSV benchmarks).
func WithComma(c rune) Option {
	return func(o *Options) {
		if c != 0 {
			o.Comma = c
		}
	}
}

// WithName overrides the dataset name.
func WithName(name string) Option {
	return func(o *Options) {
		if name != "" {
			o.Name = name
		}
	}
}
