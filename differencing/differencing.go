package differencing

import (
	"errors"
	"fmt"

	"gonum.org/v1/gonum/floats"
)

// combineTol is the tolerance used to decide whether the series handed to
// DeDifference is the stored final difference vector itself, rather than a
// delta to be layered on top of it. Upstream pipelines may introduce benign
// floating differences, so a bitwise comparison would be too strict.
const combineTol = 1e-9

var (
	// ErrInvalidInput indicates a series too short for the configured orders,
	// or an invalid order/period configuration.
	ErrInvalidInput = errors.New("differencing: invalid input")

	// ErrMissingState indicates DeDifference was called before Difference.
	ErrMissingState = errors.New("differencing: no differenced series stored")

	// ErrLengthMismatch indicates the input length (or the accumulated seed
	// stack) is inconsistent with the configured orders, e.g. when
	// DeDifference is called out of sequence with its matching Difference.
	ErrLengthMismatch = errors.New("differencing: length mismatch")
)

// Differencer applies simple and seasonal differencing to a time series and
// reconstructs the original series from differenced values. It records the
// seed values each differencing pass discards, so the transform is exactly
// invertible.
//
// A Differencer is stateful: Difference stores the original series, the final
// difference vector, and the seeds; DeDifference consumes those seeds. Use one
// Differencer per series, and do not share an instance between goroutines
// without external synchronization.
type Differencer struct {
	kDiff           int // order of simple differencing
	kSeasonalDiff   int // order of seasonal differencing
	seasonalPeriods int // lag length for seasonal differencing

	originalVector        []float64
	finalDifferenceVector []float64

	// prependVector is a stack of seed values, appended seasonal-seeds-first
	// by Difference and popped from the tail (simple seeds first) by
	// DeDifference.
	prependVector []float64
}

// New creates a Differencer with the given simple order, seasonal order, and
// seasonal period. Orders must be non-negative and the period must be at
// least 1 (use 1 when no seasonal differencing is configured).
func New(kDiff, kSeasonalDiff, seasonalPeriods int) (*Differencer, error) {
	if kDiff < 0 || kSeasonalDiff < 0 {
		return nil, fmt.Errorf("%w: differencing orders must be non-negative, got (%d, %d)",
			ErrInvalidInput, kDiff, kSeasonalDiff)
	}
	if seasonalPeriods < 1 {
		return nil, fmt.Errorf("%w: seasonal period must be at least 1, got %d",
			ErrInvalidInput, seasonalPeriods)
	}
	return &Differencer{
		kDiff:           kDiff,
		kSeasonalDiff:   kSeasonalDiff,
		seasonalPeriods: seasonalPeriods,
	}, nil
}

// DiffTotal returns the number of observations removed by a full Difference
// pass: kDiff + kSeasonalDiff*seasonalPeriods. It is also the number of seed
// values produced per Difference call.
func (d *Differencer) DiffTotal() int {
	return d.kDiff + d.kSeasonalDiff*d.seasonalPeriods
}

// Orders returns the configured simple order, seasonal order, and seasonal
// period.
func (d *Differencer) Orders() (kDiff, kSeasonalDiff, seasonalPeriods int) {
	return d.kDiff, d.kSeasonalDiff, d.seasonalPeriods
}

// Difference applies seasonal differencing kSeasonalDiff times, then simple
// differencing kDiff times, and returns the resulting stationary series.
//
// The input series is copied and stored as the original vector; the seed
// values lost by each pass are pushed onto the seed stack so DeDifference can
// invert the transform. Validation happens before any state is touched, so a
// failed call leaves the Differencer unchanged.
func (d *Differencer) Difference(series []float64) ([]float64, error) {
	minLen := d.kDiff
	if d.kSeasonalDiff > minLen {
		minLen = d.kSeasonalDiff
	}
	if len(series) < minLen {
		return nil, fmt.Errorf("%w: series has %d observations, need at least %d for orders (%d, %d)",
			ErrInvalidInput, len(series), minLen, d.kDiff, d.kSeasonalDiff)
	}
	if len(series) < d.DiffTotal() {
		return nil, fmt.Errorf("%w: series has %d observations but differencing removes %d",
			ErrInvalidInput, len(series), d.DiffTotal())
	}

	work := make([]float64, len(series))
	copy(work, series)

	seeds := make([]float64, 0, d.DiffTotal())

	// Seasonal differencing. Each pass records the first seasonalPeriods
	// values (unrecoverable after subtraction) and shortens the series by
	// seasonalPeriods.
	for i := 0; i < d.kSeasonalDiff; i++ {
		seeds = append(seeds, work[:d.seasonalPeriods]...)
		lagged := make([]float64, len(work)-d.seasonalPeriods)
		for j := range lagged {
			lagged[j] = work[j+d.seasonalPeriods] - work[j]
		}
		work = lagged
	}

	// Simple differencing. The first element of each intermediate order is
	// the seed needed to invert that pass, recorded in increasing order.
	for i := 0; i < d.kDiff; i++ {
		seeds = append(seeds, work[0])
		next := make([]float64, len(work)-1)
		for j := range next {
			next[j] = work[j+1] - work[j]
		}
		work = next
	}

	d.originalVector = make([]float64, len(series))
	copy(d.originalVector, series)
	d.finalDifferenceVector = make([]float64, len(work))
	copy(d.finalDifferenceVector, work)
	d.prependVector = append(d.prependVector, seeds...)

	return work, nil
}

// DeDifference reverses the transform applied by the most recent Difference
// call, returning a series in original units.
//
// The input may be the differenced series itself, in which case the original
// series is reconstructed, or a delta in differenced units (e.g. a forecast of
// the differenced series), in which case the delta is summed element-wise with
// the stored final difference vector before reconstruction. An empty input
// returns a copy of the stored original series.
//
// Each call consumes exactly DiffTotal seed values from the tail of the seed
// stack. Calling DeDifference twice for one Difference call, or interleaving
// calls across rounds, is detected via the length checks and rejected with
// ErrLengthMismatch.
//
// Reconstruction accumulates floating-point error because cumulative sums are
// built from the oldest point forward; over long series the drift stays small
// but is not zero.
func (d *Differencer) DeDifference(series []float64) ([]float64, error) {
	if len(d.originalVector) == 0 {
		return nil, fmt.Errorf("%w: call Difference first", ErrMissingState)
	}

	if len(series) == 0 {
		out := make([]float64, len(d.originalVector))
		copy(out, d.originalVector)
		return out, nil
	}

	if d.kDiff == 0 && d.kSeasonalDiff == 0 {
		out := make([]float64, len(series))
		copy(out, series)
		return out, nil
	}

	diffTotal := d.DiffTotal()
	if len(series)+diffTotal != len(d.originalVector) {
		return nil, fmt.Errorf("%w: got %d values, want %d to invert orders (%d, %d) with period %d",
			ErrLengthMismatch, len(series), len(d.originalVector)-diffTotal,
			d.kDiff, d.kSeasonalDiff, d.seasonalPeriods)
	}
	if len(d.prependVector) < diffTotal {
		return nil, fmt.Errorf("%w: seed stack holds %d values but inversion needs %d; DeDifference may have been called out of sequence",
			ErrLengthMismatch, len(d.prependVector), diffTotal)
	}

	combined := make([]float64, len(series))
	copy(combined, series)
	// If the input is the historical difference series, pass it through
	// unchanged; continuing through the summation code below doubles as a
	// debugging check on the seed bookkeeping. Otherwise the input modifies
	// the stored differences.
	if !floats.EqualApprox(series, d.finalDifferenceVector, combineTol) {
		floats.Add(combined, d.finalDifferenceVector)
	}

	seeds := d.prependVector

	// Undo simple differencing from the innermost pass outward: pop one seed,
	// prepend it, and take the running cumulative sum.
	for i := 0; i < d.kDiff; i++ {
		seed := seeds[len(seeds)-1]
		seeds = seeds[:len(seeds)-1]

		next := make([]float64, len(combined)+1)
		next[0] = seed
		copy(next[1:], combined)
		combined = floats.CumSum(make([]float64, len(next)), next)
	}

	// Undo seasonal differencing: pop a block of seasonalPeriods seeds,
	// prepend it, and accumulate within each residue class mod the period.
	for i := 0; i < d.kSeasonalDiff; i++ {
		block := seeds[len(seeds)-d.seasonalPeriods:]
		seeds = seeds[:len(seeds)-d.seasonalPeriods]

		next := make([]float64, len(combined)+d.seasonalPeriods)
		copy(next, block)
		copy(next[d.seasonalPeriods:], combined)
		combined = PeriodicCumSum(next, d.seasonalPeriods)
	}

	d.prependVector = seeds
	return combined, nil
}

// PeriodicCumSum computes cumulative sums independently within each residue
// class modulo period: result[i] = series[i] for i < period, and
// result[i] = result[i-period] + series[i] otherwise. It inverts lag-period
// differencing when the first period elements are exact seed values. A period
// below 1 returns a copy of the input.
func PeriodicCumSum(series []float64, period int) []float64 {
	out := make([]float64, len(series))
	copy(out, series)
	if period < 1 {
		return out
	}
	for i := period; i < len(out); i++ {
		out[i] += out[i-period]
	}
	return out
}

// Original returns a copy of the series stored by the most recent Difference
// call, or nil if Difference has not been called.
func (d *Differencer) Original() []float64 {
	if d.originalVector == nil {
		return nil
	}
	out := make([]float64, len(d.originalVector))
	copy(out, d.originalVector)
	return out
}

// FinalDifference returns a copy of the fully differenced output of the most
// recent Difference call, or nil if Difference has not been called.
func (d *Differencer) FinalDifference() []float64 {
	if d.finalDifferenceVector == nil {
		return nil
	}
	out := make([]float64, len(d.finalDifferenceVector))
	copy(out, d.finalDifferenceVector)
	return out
}

// SeedStack returns a copy of the accumulated seed values, in production
// order: seasonal seeds first, then simple-differencing seeds.
func (d *Differencer) SeedStack() []float64 {
	out := make([]float64, len(d.prependVector))
	copy(out, d.prependVector)
	return out
}
