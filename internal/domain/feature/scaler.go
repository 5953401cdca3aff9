package feature

// MinMaxScaler maps a numeric feature onto [0,1] using the min and max
// observed at fit time. Transform-time values outside the fitted range
// clamp to the nearest bound, so downstream sub-scores stay in [0,1].
type MinMaxScaler struct {
	min    float64
	max    float64
	fitted bool
}

// Fit records the observed range. A second call fully replaces the
// prior state.
func (s *MinMaxScaler) Fit(values []float64) {
	if len(values) == 0 {
		return
	}
	s.min, s.max = values[0], values[0]
	for _, v := range values[1:] {
		if v < s.min {
			s.min = v
		}
		if v > s.max {
			s.max = v
		}
	}
	s.fitted = true
}

// Transform maps v into [0,1]. The corpus min maps to 0 and the corpus
// max to 1; a degenerate range (min == max) maps everything to 0.
func (s *MinMaxScaler) Transform(v float64) float64 {
	if !s.fitted || s.max == s.min {
		return 0
	}
	scaled := (v - s.min) / (s.max - s.min)
	if scaled < 0 {
		return 0
	}
	if scaled > 1 {
		return 1
	}
	return scaled
}

// Fitted reports whether Fit has been called with data.
func (s *MinMaxScaler) Fitted() bool {
	return s.fitted
}
