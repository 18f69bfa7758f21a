package dataset

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cast"
)

// LoadCSV reads a benchmark CSV with a header row into a Dataset.
// Column lookup is case-insensitive on trimmed header names. Rows shorter
// than the header are rejected by the csv reader; non-numeric targets
// return ErrBadTarget with the offending line number.
// Complexity: O(rows).
func LoadCSV(path string, opts ...Option) (*Dataset, error) {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open: %w", err)
	}
	defer f.Close()

	r := csv.NewReader(f)
	r.Comma = o.Comma
	r.TrimLeadingSpace = true

	rows, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("dataset: read %s: %w", path, err)
	}
	if len(rows) == 0 {
		return nil, fmt.Errorf("dataset: %s: %w", path, ErrEmptyDataset)
	}

	smilesIdx, err := columnIndex(rows[0], o.SMILESColumn)
	if err != nil {
		return nil, err
	}
	targetIdx, err := columnIndex(rows[0], o.TargetColumn)
	if err != nil {
		return nil, err
	}

	name := o.Name
	if name == "" {
		name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	d := &Dataset{Name: name, Records: make([]Record, 0, len(rows)-1)}
	for i, row := range rows[1:] {
		target, cerr := cast.ToFloat64E(strings.TrimSpace(row[targetIdx]))
		if cerr != nil {
			return nil, fmt.Errorf("%w: line %d: %q", ErrBadTarget, i+2, row[targetIdx])
		}
		d.Records = append(d.Records, Record{
			SMILES: strings.TrimSpace(row[smilesIdx]),
			Target: target,
		})
	}
	if len(d.Records) == 0 {
		return nil, fmt.Errorf("dataset: %s: %w", path, ErrEmptyDataset)
	}

	return d, nil
}

// columnIndex resolves a header name case-insensitively.
func columnIndex(header []string, name string) (int, error) {
	for i, h := range header {
		if strings.EqualFold(strings.TrimSpace(h), name) {
			return i, nil
		}
	}

	return 0, fmt.Errorf("%w: %q (header: %v)", ErrMissingColumn, name, header)
}
