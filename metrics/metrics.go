package metrics

import (
	"errors"
	"math"
	"sort"

	"gonum.org/v1/gonum/stat"
)

// ErrEmptyInput is returned when either input series has no observations.
var ErrEmptyInput = errors.New("metrics: empty input series")

// Result holds the error metrics between two aligned series.
type Result struct {
	RMSE  float64 `json:"rmse"`  // Root mean squared error
	RMdSE float64 `json:"rmdse"` // Root median squared error
	MAE   float64 `json:"mae"`   // Mean absolute error
	MdAE  float64 `json:"mdae"`  // Median absolute error
}

// Calculate computes error metrics between two series.
//
// If the series differ in length, the longer one is truncated from the
// front so both end at the same observation. This matches the common
// case of comparing a reconstructed series against a shorter forecast
// horizon, where the most recent observations are the ones that matter.
func Calculate(series1, series2 []float64) (*Result, error) {
	if len(series1) == 0 || len(series2) == 0 {
		return nil, ErrEmptyInput
	}

	minLen := len(series1)
	if len(series2) < minLen {
		minLen = len(series2)
	}
	a := series1[len(series1)-minLen:]
	b := series2[len(series2)-minLen:]

	sqErrors := make([]float64, minLen)
	absErrors := make([]float64, minLen)
	for i := range a {
		diff := a[i] - b[i]
		sqErrors[i] = diff * diff
		absErrors[i] = math.Abs(diff)
	}

	return &Result{
		RMSE:  math.Sqrt(stat.Mean(sqErrors, nil)),
		RMdSE: math.Sqrt(median(sqErrors)),
		MAE:   stat.Mean(absErrors, nil),
		MdAE:  median(absErrors),
	}, nil
}

// MAPE computes the mean absolute percentage error between actual and
// predicted values. Observations where actual is zero are skipped.
func MAPE(actual, predicted []float64) (float64, error) {
	if len(actual) == 0 || len(predicted) == 0 {
		return 0, ErrEmptyInput
	}

	minLen := len(actual)
	if len(predicted) < minLen {
		minLen = len(predicted)
	}
	a := actual[len(actual)-minLen:]
	p := predicted[len(predicted)-minLen:]

	sum := 0.0
	count := 0
	for i := range a {
		if a[i] != 0 {
			sum += math.Abs((a[i] - p[i]) / a[i])
			count++
		}
	}
	if count == 0 {
		return 0, nil
	}
	return sum / float64(count) * 100, nil
}

// median computes the sample median, averaging the two middle values
// for even-length input.
func median(data []float64) float64 {
	sorted := make([]float64, len(data))
	copy(sorted, data)
	sort.Float64s(sorted)
	n := len(sorted)
	if n%2 == 1 {
		return sorted[n/2]
	}
	return (sorted[n/2-1] + sorted[n/2]) / 2
}
