// Package dataset - deterministic three-way splitting.
//
// All randomness flows through a single seeded source: same seed, same
// record list ⇒ identical splits on every platform. The seed is avalanched
// through a SplitMix64-style finalizer first, so adjacent seeds (0, 1, 2…)
// still produce uncorrelated shuffles.
package dataset

import (
	"fmt"
	"math"
	"math/rand"
)

// defaultSplitSeed is the fixed seed used when callers pass seed==0,
// keeping reproducible defaults without a hidden time source.
const defaultSplitSeed int64 = 1

// fractionTolerance absorbs float noise when checking that fractions sum to 1.
const fractionTolerance = 1e-9

// SplitOption configures Split.
type SplitOption func(*SplitOptions)

// SplitOptions holds split parameters.
type SplitOptions struct {
	// Train, Valid, Test are the split fractions; they must be
	// non-negative and sum to 1.
	Train, Valid, Test float64

	// Seed drives the shuffle; 0 selects the fixed default seed.
	Seed int64

	// internal error recorded during option parsing
	err error
}

// DefaultSplitOptions returns the conventional 80/10/10 split with the
// default seed.
func DefaultSplitOptions() SplitOptions {
	return SplitOptions{Train: 0.8, Valid: 0.1, Test: 0.1}
}

// WithFractions sets the train/valid/test fractions.
func WithFractions(train, valid, test float64) SplitOption {
	return func(o *SplitOptions) {
		if train < 0 || valid < 0 || test < 0 ||
			math.Abs(train+valid+test-1) > fractionTolerance {
			o.err = fmt.Errorf("%w: %v/%v/%v", ErrBadFractions, train, valid, test)

			return
		}
		o.Train, o.Valid, o.Test = train, valid, test
	}
}

// WithSeed sets the shuffle seed; 0 keeps the fixed default.
func WithSeed(seed int64) SplitOption {
	return func(o *SplitOptions) { o.Seed = seed }
}

// Split shuffles the records with a seeded source and cuts them into
// train/valid/test datasets named "<name>/train" and so on. Record order
// inside each split follows the shuffle, and the three splits partition
// the input exactly.
// Returns ErrEmptyDataset for an empty dataset and ErrBadFractions via
// WithFractions.
// Complexity: O(n).
func (d *Dataset) Split(opts ...SplitOption) (train, valid, test *Dataset, err error) {
	o := DefaultSplitOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, nil, nil, o.err
	}
	if d.Len() == 0 {
		return nil, nil, nil, fmt.Errorf("Split: %w", ErrEmptyDataset)
	}

	shuffled := make([]Record, d.Len())
	copy(shuffled, d.Records)

	rng := rand.New(rand.NewSource(mixSeed(o.Seed)))
	rng.Shuffle(len(shuffled), func(i, j int) {
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	})

	n := len(shuffled)
	nTrain := int(math.Floor(o.Train * float64(n)))
	nValid := int(math.Floor(o.Valid * float64(n)))
	// Test takes the remainder so the three parts always partition n.

	train = &Dataset{Name: d.Name + "/train", Records: shuffled[:nTrain]}
	valid = &Dataset{Name: d.Name + "/valid", Records: shuffled[nTrain : nTrain+nValid]}
	test = &Dataset{Name: d.Name + "/test", Records: shuffled[nTrain+nValid:]}

	return train, valid, test, nil
}

// mixSeed maps a caller seed onto a well-diffused 64-bit source seed using
// the canonical SplitMix64 multipliers (Vigna 2014).
func mixSeed(seed int64) int64 {
	s := seed
	if s == 0 {
		s = defaultSplitSeed
	}

	x := uint64(s) + 0x9e3779b97f4a7c15
	x = (x ^ (x >> 30)) * 0xbf58476d1ce4e5b9
	x = (x ^ (x >> 27)) * 0x94d049bb133111eb
	x ^= x >> 31

	return int64(x)
}
