package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPercentile(t *testing.T) {
	tests := []struct {
		name   string
		sorted []float64
		p      int
		want   float64
	}{
		{"empty", nil, 50, 0},
		{"single", []float64{7}, 90, 7},
		{"median of five", []float64{1, 2, 3, 4, 5}, 50, 3},
		{"p0 is min", []float64{1, 2, 3}, 0, 1},
		{"p100 is max", []float64{1, 2, 3}, 100, 3},
		{"p90 of ten", []float64{1, 2, 3, 4, 5, 6, 7, 8, 9, 10}, 90, 9},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Percentile(tt.sorted, tt.p))
		})
	}
}

func TestDescribe(t *testing.T) {
	assert.Equal(t, Distribution{}, Describe(nil))

	d := Describe([]float64{5, 1, 3, 2, 4})
	assert.InDelta(t, 3.0, d.Mean, 1e-9)
	assert.Equal(t, 3.0, d.P50)
	assert.Equal(t, 5.0, d.Max)
	assert.LessOrEqual(t, d.P90, d.Max)
	assert.LessOrEqual(t, d.P50, d.P95)
}
