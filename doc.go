// Package godiff provides reversible differencing transforms for time series.
//
// GoDiff converts a raw time series into a stationary difference series and
// reconstructs the original series from differenced (or externally modified)
// values. Differencing is the standard preprocessing step before fitting
// ARIMA-family models; the inverse operation is often called "integrating",
// though Box, Jenkins, and Reinsel suggest the better term is "summing".
//
// # Features
//
//   - Stateful, invertible simple and seasonal differencing of any order
//   - Exact bookkeeping of the seed values lost by each differencing pass
//   - Statistical tests for stationarity (ADF, KPSS, Phillips-Perron)
//   - Differencing-order advisors (ndiffs, nsdiffs)
//   - Autocorrelation analysis and white-noise diagnostics (ACF, PACF, Ljung-Box)
//   - Classical seasonal decomposition
//   - Reconstruction error metrics (RMSE, RMdSE, MAE, MdAE)
//
// # Quick Start
//
// Difference a series and invert the transform:
//
//	d, _ := differencing.New(1, 1, 12) // one simple pass, one seasonal pass at lag 12
//	stationary, _ := d.Difference(values)
//	// ... fit a model on 'stationary', obtain forecasts in differenced units ...
//	rebuilt, _ := d.DeDifference(stationary) // reproduces 'values'
//
// Let the data choose the orders:
//
//	kd := stats.NDiffs(series, 2, "kpss")
//	ksd := stats.NSDiffs(series, 12, 1)
//	d, _ := differencing.New(kd, ksd, 12)
//
// # Packages
//
// The library is organized into the following packages:
//
//   - differencing: The core reversible transform engine
//   - stats: Stationarity tests, order advisors, and diagnostics
//   - timeseries: Time series data structures and CSV utilities
//   - metrics: Error metrics for comparing two series
//   - forecast: The contract expected of external forecasting collaborators
//
// # References
//
//   - Box, G. E. P., Jenkins, G. M., & Reinsel, G. C. (1994). Time Series Analysis: Forecasting and Control, 3rd ed.
//   - Hyndman, R.J., & Athanasopoulos, G. (2021). Forecasting: Principles and Practice
package godiff
