package tolerance

import (
	"math"
	"sort"

	"github.com/shopspring/decimal"
)

// Default is the tolerance used when a caller passes none: one currency
// unit, enough to absorb spreadsheet rounding noise in debit/credit totals.
const Default = 1.0

// MinIQRSamples is the minimum number of values required before IQR outlier
// bounds are meaningful. Callers must skip outlier analysis below it.
const MinIQRSamples = 10

// Within reports whether x is within tol of zero.
func Within(x, tol float64) bool {
	return math.Abs(x) <= tol
}

// SafeDiv divides numerator by denominator, returning 0 instead of a
// division by zero, NaN, or infinity.
func SafeDiv(numerator, denominator float64) float64 {
	if denominator == 0 {
		return 0
	}
	q := numerator / denominator
	if math.IsNaN(q) || math.IsInf(q, 0) {
		return 0
	}
	return q
}

// IQRBounds computes the first and third quartiles of values and the Tukey
// fences at 1.5 IQR. The input is not modified. Results are only meaningful
// for len(values) >= MinIQRSamples.
func IQRBounds(values []float64) (q1, q3, lower, upper float64) {
	if len(values) == 0 {
		return 0, 0, 0, 0
	}
	sorted := make([]float64, len(values))
	copy(sorted, values)
	sort.Float64s(sorted)

	n := len(sorted)
	q1 = sorted[n/4]
	q3 = sorted[(3*n)/4]
	iqr := q3 - q1
	lower = q1 - 1.5*iqr
	upper = q3 + 1.5*iqr
	return q1, q3, lower, upper
}

// Round2 rounds v to two decimal places using exact decimal arithmetic.
// Non-finite values pass through unchanged; the finiteness rule reports them.
func Round2(v float64) float64 {
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return v
	}
	return decimal.NewFromFloat(v).Round(2).InexactFloat64()
}
