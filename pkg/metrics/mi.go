package metrics

import "math"

// MaintainabilityIndex holds the three common maintainability index
// variants.
type MaintainabilityIndex struct {
	Original     float64 `json:"original"`
	SEI          float64 `json:"sei"`
	VisualStudio float64 `json:"visual_studio"`
}

// NewMaintainabilityIndex derives the maintainability index from Halstead
// volume, cyclomatic complexity, source lines and comment lines. Volume and
// SLOC below 1 are clamped to 1 so trivial spaces get finite values.
func NewMaintainabilityIndex(volume float64, cyclomatic uint32, sloc, cloc uint64) MaintainabilityIndex {
	v := math.Max(volume, 1)
	lines := math.Max(float64(sloc), 1)
	cc := float64(cyclomatic)

	original := 171.0 - 5.2*math.Log(v) - 0.23*cc - 16.2*math.Log(lines)

	var commentRatio float64
	if sloc > 0 {
		commentRatio = float64(cloc) / float64(sloc)
	}
	sei := 171.0 - 5.2*math.Log2(v) - 0.23*cc - 16.2*math.Log2(lines) +
		50.0*math.Sin(math.Sqrt(2.4*commentRatio))

	return MaintainabilityIndex{
		Original:     original,
		SEI:          sei,
		VisualStudio: math.Max(0, original*100.0/171.0),
	}
}
