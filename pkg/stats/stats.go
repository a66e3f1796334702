// Package stats provides the summary statistics used by project reports.
package stats

import (
	"sort"

	"gonum.org/v1/gonum/stat"
)

// Percentile calculates the p-th percentile of a sorted slice using the
// empirical (lower) quantile. The slice must already be sorted in ascending
// order. Returns 0 if the slice is empty.
func Percentile(sorted []float64, p int) float64 {
	if len(sorted) == 0 {
		return 0
	}
	switch {
	case p <= 0:
		return sorted[0]
	case p >= 100:
		return sorted[len(sorted)-1]
	}
	return stat.Quantile(float64(p)/100, stat.Empirical, sorted, nil)
}

// Distribution summarizes a sample.
type Distribution struct {
	Mean float64 `json:"mean"`
	P50  float64 `json:"p50"`
	P90  float64 `json:"p90"`
	P95  float64 `json:"p95"`
	Max  float64 `json:"max"`
}

// Describe summarizes values. The slice is sorted in place.
func Describe(values []float64) Distribution {
	if len(values) == 0 {
		return Distribution{}
	}
	sort.Float64s(values)
	return Distribution{
		Mean: stat.Mean(values, nil),
		P50:  Percentile(values, 50),
		P90:  Percentile(values, 90),
		P95:  Percentile(values, 95),
		Max:  values[len(values)-1],
	}
}
