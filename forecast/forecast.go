// Package forecast defines the contract that forecasting models satisfy.
//
// The package contains no model implementations. It exists so that code
// which prepares data through differencing, fits a model on the
// stationary series, and inverts the forecasts back to the original
// scale can be written against a single interface.
package forecast

// Forecaster is the interface implemented by forecasting models that
// operate on a stationary series.
//
// The usual workflow difference-transforms a series, fits a Forecaster
// on the result, forecasts forward, and de-differences the forecasts
// back to the original scale.
type Forecaster interface {
	// Fit estimates model parameters from the training series.
	Fit(series []float64) error

	// Forecast returns point forecasts for the given number of steps
	// ahead. Fit must have been called first.
	Forecast(steps int) ([]float64, error)

	// FittedValues returns the in-sample one-step-ahead predictions,
	// aligned with the training series passed to Fit.
	FittedValues() []float64

	// Parameters returns the estimated model parameters by name.
	Parameters() map[string]float64
}
