// Package touch maps pointer positions within a rendering surface to data
// points: it resolves the nearest observation index and the pixel position
// that observation occupies when the series is linearly scaled into the
// surface.
//
// What:
//
//   - NearestIndex — snaps a pointer x to the closest sample index. The
//     half-section offset rounds to the nearest sample rather than the floor
//     sample; this nearest-neighbor snapping is the deliberate touch policy.
//   - PixelPosition — the on-screen point of a sample, with y flipped
//     because surface coordinates grow downward while chart values grow up.
//   - ResolveTouch — composes the two into (observation, pixel point, ok),
//     used both for highlighting the nearest sample and for positioning an
//     on-screen marker.
//
// "No match" conditions — a series of fewer than two points, or a pointer
// outside [0, width] — yield ok=false rather than an error; pointers are
// never clamped to the surface edge. Typed errors are reserved for
// precondition violations on PixelPosition.
//
// Errors:
//
//   - ErrInsufficientSamples — pixel mapping on a series of length < 2.
//   - ErrIndexOutOfRange — index outside [0, count).
package touch
