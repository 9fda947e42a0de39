package scale

import (
	"github.com/katalvlaran/lvlchart/series"
)

// MinValue returns the minimum observation value across the series.
// Returns ErrEmptySeries if the series has no observations.
// Complexity: O(n).
func MinValue(s *series.DataSeries) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySeries
	}
	minVal := s.At(0).Value
	for i := 1; i < s.Len(); i++ {
		if v := s.At(i).Value; v < minVal {
			minVal = v
		}
	}

	return minVal, nil
}

// MaxValue returns the maximum observation value across the series.
// Returns ErrEmptySeries if the series has no observations.
// Complexity: O(n).
func MaxValue(s *series.DataSeries) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySeries
	}
	maxVal := s.At(0).Value
	for i := 1; i < s.Len(); i++ {
		if v := s.At(i).Value; v > maxVal {
			maxVal = v
		}
	}

	return maxVal, nil
}

// EffectiveMin returns the lower bound used for vertical scaling under the
// given baseline policy:
//
//   - MinimumValue       → series minimum
//   - MinimumWithFloor f → min(series minimum, f)
//   - ZeroBaseline       → 0
//
// Returns ErrEmptySeries on zero observations for every policy, so callers
// never layout an empty chart from a policy that happens not to need the
// data.
// Complexity: O(n).
func EffectiveMin(s *series.DataSeries, b Baseline) (float64, error) {
	if s.Len() == 0 {
		return 0, ErrEmptySeries
	}
	switch b.kind {
	case baselineZero:
		return 0, nil
	case baselineFloor:
		minVal, err := MinValue(s)
		if err != nil {
			return 0, err
		}
		if b.floor < minVal {
			return b.floor, nil
		}

		return minVal, nil
	default:
		return MinValue(s)
	}
}

// EffectiveMax returns the upper bound under the given topline policy:
//
//   - MaximumValue         → series maximum
//   - MaximumWithCeiling c → max(series maximum, c)
//
// Returns ErrEmptySeries on zero observations.
// Complexity: O(n).
func EffectiveMax(s *series.DataSeries, t Topline) (float64, error) {
	maxVal, err := MaxValue(s)
	if err != nil {
		return 0, err
	}
	if t.kind == toplineCeiling && t.ceiling > maxVal {
		return t.ceiling, nil
	}

	return maxVal, nil
}

// EffectiveRange returns the span used for vertical scaling under the given
// baseline policy:
//
//   - MinimumValue       → max − min
//   - MinimumWithFloor f → max − min(min, f)
//   - ZeroBaseline       → max (span measured from zero)
//
// Returns ErrEmptySeries on zero observations. A flat series yields a zero
// range under MinimumValue; see touch.PixelPosition for the precondition
// this imposes on pixel mapping.
// Complexity: O(n).
func EffectiveRange(s *series.DataSeries, b Baseline) (float64, error) {
	maxVal, err := MaxValue(s)
	if err != nil {
		return 0, err
	}
	effMin, err := EffectiveMin(s, b)
	if err != nil {
		return 0, err
	}

	return maxVal - effMin, nil
}

// LabelValues returns labelCount+1 ascending y-axis label values: the
// effective minimum, then effectiveMin + step·k for k in 1..labelCount,
// where step = EffectiveRange / labelCount. The last value equals
// effectiveMin + effectiveRange.
//
// Returns ErrInvalidLabelCount when labelCount ≤ 0 and ErrEmptySeries on
// zero observations.
// Complexity: O(n + labelCount).
func LabelValues(s *series.DataSeries, b Baseline, labelCount int) ([]float64, error) {
	if labelCount <= 0 {
		return nil, ErrInvalidLabelCount
	}
	effMin, err := EffectiveMin(s, b)
	if err != nil {
		return nil, err
	}
	effRange, err := EffectiveRange(s, b)
	if err != nil {
		return nil, err
	}

	step := effRange / float64(labelCount)
	out := make([]float64, labelCount+1)
	for k := 0; k <= labelCount; k++ {
		out[k] = effMin + step*float64(k)
	}

	return out, nil
}
