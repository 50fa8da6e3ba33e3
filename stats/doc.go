// Package stats provides statistical tests and analysis functions for time series.
//
// This package includes stationarity tests, differencing-order advisors,
// autocorrelation functions, and white-noise diagnostics for validating that
// a differencing transform produced a stationary series.
//
// # Stationarity Tests
//
// Test whether a time series is stationary:
//
//	// Augmented Dickey-Fuller test
//	// H0: Series has unit root (non-stationary)
//	adf := stats.ADF(series, 0)
//	fmt.Printf("ADF: stat=%.4f, p=%.4f, stationary=%v\n",
//	    adf.Statistic, adf.PValue, adf.IsStationary)
//
//	// KPSS test (recommended)
//	// H0: Series is stationary
//	kpss := stats.KPSS(series, "c", 0)
//	fmt.Printf("KPSS: stat=%.4f, p=%.4f, stationary=%v\n",
//	    kpss.Statistic, kpss.PValue, kpss.IsStationary)
//
//	// Phillips-Perron test
//	pp := stats.PhillipsPerron(series, 0)
//
// # Differencing-Order Advisors
//
// Determine how many differences a series needs before configuring a
// differencing transform:
//
//	// Number of simple differences needed
//	d := stats.NDiffs(series, 2, "kpss")
//
//	// Number of seasonal differences needed (for seasonal data)
//	sd := stats.NSDiffs(series, 12, 1)  // period=12 for monthly data
//
// # Autocorrelation Functions
//
// Analyze autocorrelation patterns, typically on the differenced series:
//
//	// Autocorrelation Function
//	acf := stats.ACF(series, 20)
//
//	// Partial Autocorrelation Function
//	pacf := stats.PACF(series, 20)
//
//	// ACF with confidence bounds
//	acfResult := stats.ACFWithConfidence(series, 20)
//	significant := stats.SignificantLags(acfResult.Values, acfResult.ConfBounds)
//
// # White-Noise Diagnostics
//
// Test a differenced series for remaining structure:
//
//	// Ljung-Box test for autocorrelation
//	lb := stats.LjungBox(diffed, 10, 0)
//	if lb.PValue > 0.05 {
//	    // Differenced series is white noise
//	}
//
//	// Box-Pierce test
//	bp := stats.BoxPierce(diffed, 10, 0)
//
//	// Durbin-Watson test
//	dw := stats.DurbinWatson(diffed.Values)
//
// # Time Series Decomposition
//
// Decompose a series into trend, seasonal, and residual components:
//
//	decomp := stats.Decompose(series, 12, "additive")
//	// decomp.Trend, decomp.Seasonal, decomp.Residual
package stats
