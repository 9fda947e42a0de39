// Package chart provides the Model aggregate: it owns one DataSeries and a
// style configuration, precomputes legend entries at construction, exposes
// range/label/hit-test operations as one cohesive API, and republishes
// every state transition to subscribed observers.
//
// What:
//
//   - Model — the observable aggregate; the sole mutator of its own derived
//     state (legend list, "no data" fallback).
//   - Options — baseline/topline policy, y-axis label count, x-axis label
//     source, override label list, "no data" placeholder text.
//   - Subscribe — registers an observer invoked synchronously after each
//     mutation, so observers see every state transition, in order.
//
// Concurrency: fields may be read concurrently under the internal RWMutex,
// but mutation is expected on a single logical owner goroutine (the
// presentation layer). Observers run on the mutating goroutine.
//
// Errors: the Model does not swallow computation failures — Range,
// MinValue, YAxisLabels and friends propagate scale.ErrEmptySeries and
// scale.ErrInvalidLabelCount, and the caller is expected to render
// NoDataText when the series is empty.
package chart
