// Package touch: nearest-index hit-testing and pixel-position mapping.
package touch

import (
	"errors"
	"math"

	"github.com/katalvlaran/lvlchart/series"
)

// Sentinel errors for touch operations.
var (
	// ErrInsufficientSamples indicates pixel mapping was requested on a
	// series of fewer than two observations, where the x-section width
	// (width / (count−1)) is undefined.
	ErrInsufficientSamples = errors.New("touch: series needs at least two observations")

	// ErrIndexOutOfRange indicates an observation index outside [0, count).
	ErrIndexOutOfRange = errors.New("touch: observation index out of range")
)

// Point is a position in surface-local coordinates, origin top-left,
// y growing downward.
type Point struct {
	X, Y float64
}

// Surface is the extent of the rendering area the series is scaled into.
type Surface struct {
	Width, Height float64
}

// NearestIndex snaps pointerX to the closest sample index for a series of
// count observations distributed across width. The half-section offset
// rounds to the nearest sample, not the sample to its left.
//
// Returns ok=false when count < 2 (the section width is undefined; such
// series are non-interactive) or when the snapped index falls outside
// [0, count) — a pointer beyond the surface is not clamped to the edge.
// Complexity: O(1).
func NearestIndex(pointerX, width float64, count int) (int, bool) {
	if count < 2 {
		return 0, false
	}
	section := width / float64(count-1)
	index := int(math.Floor((pointerX + section/2) / section))
	if index < 0 || index >= count {
		return 0, false
	}

	return index, true
}

// PixelPosition returns the surface point occupied by the observation at
// index when the series is linearly scaled into sur using effectiveMin and
// effectiveRange (see scale.EffectiveMin / scale.EffectiveRange).
// The y coordinate is flipped: y = height − (value − effectiveMin)·ySection.
//
// Precondition: effectiveRange must be nonzero. A flat series under a
// minimum-value baseline yields a zero range; callers must substitute a
// minimum nonzero range (or a zero baseline) before mapping — the division
// is not guarded here.
//
// Returns ErrInsufficientSamples when the series has fewer than two
// observations and ErrIndexOutOfRange for an index outside [0, count).
// Complexity: O(1).
func PixelPosition(index int, s *series.DataSeries, sur Surface, effectiveMin, effectiveRange float64) (Point, error) {
	count := s.Len()
	if count < 2 {
		return Point{}, ErrInsufficientSamples
	}
	if index < 0 || index >= count {
		return Point{}, ErrIndexOutOfRange
	}
	xSection := sur.Width / float64(count-1)
	ySection := sur.Height / effectiveRange

	return Point{
		X: float64(index) * xSection,
		Y: sur.Height - (s.At(index).Value-effectiveMin)*ySection,
	}, nil
}

// ResolveTouch composes NearestIndex and PixelPosition: it returns the
// observation nearest to pointer.X and the pixel position that observation
// occupies within sur. ok=false when the series has fewer than two
// observations or the pointer snaps outside the sample range; no error is
// raised for a miss.
//
// The PixelPosition precondition on effectiveRange applies.
// Complexity: O(1).
func ResolveTouch(pointer Point, sur Surface, s *series.DataSeries, effectiveMin, effectiveRange float64) (series.Observation, Point, bool) {
	index, ok := NearestIndex(pointer.X, sur.Width, s.Len())
	if !ok {
		return series.Observation{}, Point{}, false
	}
	pos, err := PixelPosition(index, s, sur, effectiveMin, effectiveRange)
	if err != nil {
		return series.Observation{}, Point{}, false
	}

	return s.At(index), pos, true
}
