package metrics

import (
	"errors"
	"fmt"
	"math"
	"strings"
)

// Sentinel errors for metric computation.
var (
	// ErrLengthMismatch indicates prediction and target slices of
	// different lengths.
	ErrLengthMismatch = errors.New("metrics: prediction/target length mismatch")

	// ErrEmptyInput indicates empty input slices.
	ErrEmptyInput = errors.New("metrics: empty input")

	// ErrZeroVariance indicates a correlation-family metric over a
	// constant series, where the statistic is undefined.
	ErrZeroVariance = errors.New("metrics: zero variance")

	// ErrUnknownMetric indicates a metric name Evaluate does not know.
	ErrUnknownMetric = errors.New("metrics: unknown metric name")
)

// Canonical metric names accepted by Evaluate (case-insensitive).
const (
	NameMAE     = "mae"
	NameMSE     = "mse"
	NameRMSE    = "rmse"
	NameR2      = "r2"
	NamePearson = "pearson"
)

// Evaluate computes each named metric over (pred, target) and returns a
// name → value map, the shape model-evaluation call sites expect.
// Names are matched case-insensitively against the Name* constants.
func Evaluate(pred, target []float64, names []string) (map[string]float64, error) {
	out := make(map[string]float64, len(names))
	for _, name := range names {
		var (
			v   float64
			err error
		)
		switch strings.ToLower(name) {
		case NameMAE:
			v, err = MAE(pred, target)
		case NameMSE:
			v, err = MSE(pred, target)
		case NameRMSE:
			v, err = RMSE(pred, target)
		case NameR2:
			v, err = R2(pred, target)
		case NamePearson:
			v, err = Pearson(pred, target)
		default:
			return nil, fmt.Errorf("%w: %q", ErrUnknownMetric, name)
		}
		if err != nil {
			return nil, fmt.Errorf("metrics: %s: %w", name, err)
		}
		out[strings.ToLower(name)] = v
	}

	return out, nil
}

// MAE returns the mean absolute error. Complexity: O(n).
func MAE(pred, target []float64) (float64, error) {
	if err := checkPair(pred, target); err != nil {
		return 0, err
	}

	var sum float64
	for i := range pred {
		sum += math.Abs(pred[i] - target[i])
	}

	return sum / float64(len(pred)), nil
}

// MSE returns the mean squared error. Complexity: O(n).
func MSE(pred, target []float64) (float64, error) {
	if err := checkPair(pred, target); err != nil {
		return 0, err
	}

	var sum float64
	for i := range pred {
		d := pred[i] - target[i]
		sum += d * d
	}

	return sum / float64(len(pred)), nil
}

// RMSE returns the root mean squared error. Complexity: O(n).
func RMSE(pred, target []float64) (float64, error) {
	mse, err := MSE(pred, target)
	if err != nil {
		return 0, err
	}

	return math.Sqrt(mse), nil
}

// R2 returns the coefficient of determination 1 − SSres/SStot.
// Returns ErrZeroVariance when the targets are constant.
// Complexity: O(n).
func R2(pred, target []float64) (float64, error) {
	if err := checkPair(pred, target); err != nil {
		return 0, err
	}

	mean := sum(target) / float64(len(target))

	var ssRes, ssTot float64
	for i := range target {
		r := target[i] - pred[i]
		ssRes += r * r
		d := target[i] - mean
		ssTot += d * d
	}
	if ssTot == 0 {
		return 0, ErrZeroVariance
	}

	return 1 - ssRes/ssTot, nil
}

// Pearson returns the Pearson correlation coefficient.
// Returns ErrZeroVariance when either series is constant.
// Complexity: O(n).
func Pearson(pred, target []float64) (float64, error) {
	if err := checkPair(pred, target); err != nil {
		return 0, err
	}

	n := float64(len(pred))
	meanP := sum(pred) / n
	meanT := sum(target) / n

	var cov, varP, varT float64
	for i := range pred {
		dp := pred[i] - meanP
		dt := target[i] - meanT
		cov += dp * dt
		varP += dp * dp
		varT += dt * dt
	}
	if varP == 0 || varT == 0 {
		return 0, ErrZeroVariance
	}

	return cov / math.Sqrt(varP*varT), nil
}

// checkPair validates the shared preconditions of every metric.
func checkPair(pred, target []float64) error {
	if len(pred) != len(target) {
		return fmt.Errorf("%w: %d vs %d", ErrLengthMismatch, len(pred), len(target))
	}
	if len(pred) == 0 {
		return ErrEmptyInput
	}

	return nil
}

// sum adds a series in index order (deterministic accumulation).
func sum(xs []float64) float64 {
	var s float64
	for _, x := range xs {
		s += x
	}

	return s
}
