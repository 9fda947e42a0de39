// Package scale computes the vertical-scaling figures of a line chart:
// series minimum / maximum, the effective lower bound and span under a
// selectable baseline policy, and evenly spaced y-axis label values.
//
// What:
//
//   - MinValue / MaxValue — series extrema.
//   - EffectiveMin / EffectiveRange — the lower bound and span actually used
//     for pixel mapping, after applying a Baseline policy.
//   - EffectiveMax — the upper bound under a Topline policy, used for the
//     upper y-axis label.
//   - LabelValues — labelCount+1 ascending values from EffectiveMin to
//     EffectiveMin+EffectiveRange.
//   - Mean / Median — summary statistics for marker lines.
//
// Why:
//
//	The baseline policy is a user-visible axis-scaling choice: true minimum,
//	zero-anchored, or a custom floor (e.g. percentage charts that must never
//	show a floor above observed data). Keeping it a closed variant evaluated
//	by the same two functions guarantees EffectiveMin and EffectiveRange stay
//	consistent for any caller.
//
// Complexity: every function is a single O(n) pass over the series.
//
// Errors:
//
//   - ErrEmptySeries — extrema, range or statistics requested on zero
//     observations. Fatal to the caller; check before chart layout proceeds.
//   - ErrInvalidLabelCount — LabelValues with labelCount ≤ 0.
package scale
