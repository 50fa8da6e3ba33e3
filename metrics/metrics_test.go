package metrics

import (
	"errors"
	"math"
	"testing"
)

func TestCalculate(t *testing.T) {
	actual := []float64{1, 2, 3, 4, 5}
	predicted := []float64{1.5, 2.5, 2.5, 4.5, 4.5}
	// errors: -0.5, -0.5, 0.5, -0.5, 0.5 -> |e| = 0.5 everywhere

	result, err := Calculate(actual, predicted)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	if math.Abs(result.RMSE-0.5) > 1e-10 {
		t.Errorf("RMSE: expected 0.5, got %f", result.RMSE)
	}
	if math.Abs(result.RMdSE-0.5) > 1e-10 {
		t.Errorf("RMdSE: expected 0.5, got %f", result.RMdSE)
	}
	if math.Abs(result.MAE-0.5) > 1e-10 {
		t.Errorf("MAE: expected 0.5, got %f", result.MAE)
	}
	if math.Abs(result.MdAE-0.5) > 1e-10 {
		t.Errorf("MdAE: expected 0.5, got %f", result.MdAE)
	}
}

func TestCalculatePerfect(t *testing.T) {
	values := []float64{10, 20, 30, 40}

	result, err := Calculate(values, values)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	if result.RMSE != 0 || result.RMdSE != 0 || result.MAE != 0 || result.MdAE != 0 {
		t.Errorf("Expected all metrics to be 0 for identical series, got %+v", result)
	}
}

func TestCalculateOutlierRobustness(t *testing.T) {
	// One large error should inflate RMSE/MAE but leave RMdSE/MdAE small
	actual := []float64{1, 1, 1, 1, 1, 1, 1}
	predicted := []float64{1.1, 0.9, 1.1, 0.9, 1.1, 0.9, 11}

	result, err := Calculate(actual, predicted)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	if result.RMSE <= result.RMdSE {
		t.Errorf("RMSE (%f) should exceed RMdSE (%f) with an outlier", result.RMSE, result.RMdSE)
	}
	if result.MAE <= result.MdAE {
		t.Errorf("MAE (%f) should exceed MdAE (%f) with an outlier", result.MAE, result.MdAE)
	}
	if math.Abs(result.MdAE-0.1) > 1e-10 {
		t.Errorf("MdAE: expected 0.1, got %f", result.MdAE)
	}
}

func TestCalculateLengthAlignment(t *testing.T) {
	// Longer series is truncated from the front: only the last 3 of
	// series1 are compared against series2.
	series1 := []float64{100, 200, 1, 2, 3}
	series2 := []float64{1, 2, 3}

	result, err := Calculate(series1, series2)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}

	if result.RMSE != 0 {
		t.Errorf("Expected RMSE 0 after front truncation, got %f", result.RMSE)
	}

	// Symmetric case
	result2, err := Calculate(series2, series1)
	if err != nil {
		t.Fatalf("Calculate returned error: %v", err)
	}
	if result2.RMSE != 0 {
		t.Errorf("Expected RMSE 0 after front truncation (swapped), got %f", result2.RMSE)
	}
}

func TestCalculateEmptyInput(t *testing.T) {
	if _, err := Calculate(nil, []float64{1, 2}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput for nil first series, got %v", err)
	}
	if _, err := Calculate([]float64{1, 2}, []float64{}); !errors.Is(err, ErrEmptyInput) {
		t.Errorf("Expected ErrEmptyInput for empty second series, got %v", err)
	}
}

func TestMAPE(t *testing.T) {
	actual := []float64{100, 200, 400}
	predicted := []float64{110, 180, 400}
	// percentage errors: 10%, 10%, 0% -> mean 6.666...%

	mape, err := MAPE(actual, predicted)
	if err != nil {
		t.Fatalf("MAPE returned error: %v", err)
	}
	expected := 20.0 / 3.0
	if math.Abs(mape-expected) > 1e-10 {
		t.Errorf("MAPE: expected %f, got %f", expected, mape)
	}
}

func TestMAPESkipsZeros(t *testing.T) {
	actual := []float64{0, 100}
	predicted := []float64{5, 110}

	mape, err := MAPE(actual, predicted)
	if err != nil {
		t.Fatalf("MAPE returned error: %v", err)
	}
	// Only the nonzero observation contributes: 10%
	if math.Abs(mape-10.0) > 1e-10 {
		t.Errorf("MAPE: expected 10.0, got %f", mape)
	}
}

func TestMedian(t *testing.T) {
	tests := []struct {
		name     string
		data     []float64
		expected float64
	}{
		{"odd length", []float64{3, 1, 2}, 2},
		{"even length", []float64{4, 1, 3, 2}, 2.5},
		{"single", []float64{7}, 7},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := median(tt.data)
			if math.Abs(got-tt.expected) > 1e-10 {
				t.Errorf("median(%v) = %f, expected %f", tt.data, got, tt.expected)
			}
		})
	}
}
