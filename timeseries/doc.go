// Package timeseries provides time series data structures and utilities.
//
// This package includes the Series type for representing time series data,
// along with functions for data loading and transformation.
//
// # Creating a Series
//
// Create a time series from a slice:
//
//	values := []float64{100, 102, 105, 103, 108, 110}
//	series := timeseries.New(values)
//
// # Loading from CSV
//
// Load time series data from CSV files:
//
//	// Load a specific column
//	series, err := timeseries.LoadCSVColumn("data.csv", "value")
//
//	// Load with filtering
//	series, err := timeseries.LoadCSVFiltered(
//	    "data.csv",
//	    "country", "Australia",  // filter column and value
//	    "population",            // value column
//	)
//
// # Basic Statistics
//
// Calculate summary statistics:
//
//	mean := series.Mean()
//	std := series.Std()
//	min := series.Min()
//	max := series.Max()
//	median := series.Median()
//
// # Differencing and Summation
//
// Difference a series and sum it back:
//
//	diff := series.Diff()            // First difference
//	diff2 := series.DiffN(2)         // Iterated second difference
//	sdiff := series.SeasonalDiff(12) // Lag-12 difference
//
//	// Inverses (given exact seed values at the head)
//	summed := diff.CumSum()
//	ssummed := sdiff.SeasonalCumSum(12)
//
// For exact, stateful inversion with seed bookkeeping use the differencing
// package; the Series methods are stateless one-shot operators.
//
// # Other Transformations
//
//	logged := series.Log()           // Natural log
//	normalized := series.Normalize() // Z-score normalization
//	ma := series.MovingAverage(7)    // Moving average
//
// # Slicing and Manipulation
//
//	subset := series.Slice(10, 50)
//	lagged := series.Lag(1)
//	copied := series.Copy()
//
// # CSV Options
//
// Customize CSV loading:
//
//	opts := &timeseries.CSVOptions{
//	    DateColumn:  "date",
//	    ValueColumn: "value",
//	    DateFormat:  "2006-01-02",
//	    HasHeader:   true,
//	}
//	series, err := timeseries.LoadCSVFromReader(reader, opts)
package timeseries
