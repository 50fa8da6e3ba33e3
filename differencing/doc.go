// Package differencing implements an invertible differencing transform for
// time series.
//
// Differencing converts a raw series into a stationary difference series
// suitable for model fitting; de-differencing reconstructs a series in
// original units from differenced values, whether those are the historical
// differences themselves or forecasted continuations expressed in differenced
// units.
//
// # Forward Transform
//
// Seasonal passes are applied before simple passes. Each pass discards a
// handful of leading values; the Differencer records them as seeds so the
// transform can be exactly reversed:
//
//	d, err := differencing.New(1, 0, 1) // first differences, no seasonality
//	diffed, err := d.Difference([]float64{1, 3, 6, 10, 15})
//	// diffed == [2, 3, 4, 5], seed stack == [1]
//
// # Inverse Transform
//
// DeDifference pops the seeds back off and rebuilds original units via
// cumulative summation:
//
//	rebuilt, err := d.DeDifference(diffed)
//	// rebuilt == [1, 3, 6, 10, 15]
//
// Passing a modified difference series (e.g. model forecasts of the
// differenced values) layers it onto the stored differences before
// reconstruction. Passing an empty slice returns the stored original.
//
// # Seed Bookkeeping
//
// The seed stack is strictly LIFO across the two operations: Difference
// pushes seasonal seed blocks first and simple seeds last; DeDifference pops
// simple seeds first and seasonal blocks last. A DeDifference call must
// consume exactly the seeds produced by its matching Difference call;
// out-of-sequence calls are rejected with ErrLengthMismatch rather than
// silently repaired.
//
// # Numerical Behavior
//
// Reconstruction builds cumulative sums from the oldest observation forward,
// so floating-point error accumulates along the series. The drift is small
// (see the package tests) and is an accepted property of the transform, not
// an error condition.
//
// A Differencer is not safe for concurrent use; give each series its own
// instance.
package differencing
