// Package scale: baseline/topline policies and sentinel errors.
package scale

import "errors"

// Sentinel errors for scale operations.
var (
	// ErrEmptySeries indicates a computation was requested on a series with
	// zero observations.
	ErrEmptySeries = errors.New("scale: series has no observations")

	// ErrInvalidLabelCount indicates LabelValues was called with a
	// non-positive label count, which would divide by zero.
	ErrInvalidLabelCount = errors.New("scale: label count must be positive")
)

type baselineKind uint8

const (
	baselineMinimum baselineKind = iota
	baselineFloor
	baselineZero
)

// Baseline selects how the effective lower bound of the chart is derived.
// The zero value is MinimumValue(). Construct via MinimumValue,
// MinimumWithFloor or ZeroBaseline; the variant set is closed.
type Baseline struct {
	kind  baselineKind
	floor float64
}

// MinimumValue anchors the baseline at the series minimum.
func MinimumValue() Baseline {
	return Baseline{kind: baselineMinimum}
}

// MinimumWithFloor anchors the baseline at min(series minimum, floor),
// so a custom floor can extend — but never clip — the observed data.
func MinimumWithFloor(floor float64) Baseline {
	return Baseline{kind: baselineFloor, floor: floor}
}

// ZeroBaseline anchors the baseline at zero regardless of the data.
func ZeroBaseline() Baseline {
	return Baseline{kind: baselineZero}
}

type toplineKind uint8

const (
	toplineMaximum toplineKind = iota
	toplineCeiling
)

// Topline selects how the effective upper bound of the chart is derived,
// mirroring Baseline. The zero value is MaximumValue().
type Topline struct {
	kind    toplineKind
	ceiling float64
}

// MaximumValue anchors the topline at the series maximum.
func MaximumValue() Topline {
	return Topline{kind: toplineMaximum}
}

// MaximumWithCeiling anchors the topline at max(series maximum, ceiling).
func MaximumWithCeiling(ceiling float64) Topline {
	return Topline{kind: toplineCeiling, ceiling: ceiling}
}
