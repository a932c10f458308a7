package stationstats

import "math"

// Stats, as there is no need to keep all readings around, we can compute
// min, max, sum and count on the fly. Temperatures are integer tenths of a
// degree, the sum is wide enough for a billion readings of +-99.9.
type Stats struct {
	Min   int16
	Max   int16
	Sum   int64
	Count uint32
}

// NewStats starts an aggregate from its first observation, so Min and Max
// are always values that actually occurred in the input.
func NewStats(v int16) *Stats {
	return &Stats{
		Min:   v,
		Max:   v,
		Sum:   int64(v),
		Count: 1,
	}
}

// Add folds in a single observation, given in tenths of a degree.
func (s *Stats) Add(v int16) {
	if v > s.Max {
		s.Max = v
	} else if v < s.Min {
		s.Min = v
	}
	s.Sum += int64(v)
	s.Count++
}

// Merge folds another aggregate into s. Merge is associative and
// commutative, so partial results can be combined in any order.
func (s *Stats) Merge(o *Stats) {
	if o.Min < s.Min {
		s.Min = o.Min
	}
	if o.Max > s.Max {
		s.Max = o.Max
	}
	s.Sum += o.Sum
	s.Count += o.Count
}

// Mean returns the mean in degrees, rounded half away from zero to one
// fractional digit. A negative zero folds to plain zero.
func (s *Stats) Mean() float64 {
	mean := math.Round(float64(s.Sum)/float64(s.Count)) / 10
	if mean == 0 {
		return 0
	}
	return mean
}
