// Package series defines the data model of a line chart: individual
// Observations, the ordered DataSeries that owns them, and the closed set
// of fill-style variants used for rendering and legend derivation.
//
// What:
//
//   - Observation — one sample (value + optional labels/timestamp) with a
//     stable unique identity assigned at creation.
//   - DataSeries — an ordered, immutable-after-construction collection of
//     Observations plus a legend title and a FillStyle.
//   - FillStyle — a sealed variant: Solid, GradientColors or GradientStops.
//     Exactly one variant is active at a time; an inconsistent combination
//     (gradient discriminant with absent payload) cannot be expressed.
//   - Generators — deterministic synthetic series (Linear, Pulse) for tests,
//     examples and benchmarks.
//
// Why:
//
//   - Order is significant: the observation sequence is the x-axis order.
//   - Consumers must treat a series of length < 2 as insufficient for
//     hit-testing and range division (division by count−1 is undefined).
//
// Errors: the package itself defines no sentinels; precondition failures
// on empty series surface from scale and touch.
package series
