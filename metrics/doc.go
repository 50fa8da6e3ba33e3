// Package metrics provides error metrics for comparing time series.
//
// The metrics are designed for evaluating reconstructions and forecasts
// against observed data. Calculate returns four complementary measures:
//
//   - RMSE: root mean squared error, sensitive to large errors
//   - RMdSE: root median squared error, robust to outliers
//   - MAE: mean absolute error, in the units of the data
//   - MdAE: median absolute error, robust counterpart of MAE
//
// When the two series differ in length, the longer one is truncated from
// the front so that both end at the same observation before any metric
// is computed.
//
// Example:
//
//	result, err := metrics.Calculate(actual, reconstructed)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("RMSE: %.4f  MAE: %.4f\n", result.RMSE, result.MAE)
package metrics
