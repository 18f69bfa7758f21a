// Package metrics scores model predictions against regression targets with
// the named metrics benchmark evaluations report: MAE, MSE, RMSE, R², and
// Pearson correlation.
//
// Evaluate mirrors the evaluate-by-name contract of model toolkits: a list
// of metric names in, a name → scalar map out. Individual metric functions
// are exported for callers that want one number without the map.
//
// All functions are pure and deterministic: fixed accumulation order over
// the input slices, no hidden state.
//
// Errors
//
//	ErrLengthMismatch, ErrEmptyInput, ErrZeroVariance, ErrUnknownMetric.
package metrics
