// Package legend derives legend entries from a series' active fill style.
//
// What:
//
//   - Build inspects the FillStyle variant and emits exactly one Entry whose
//     swatch mirrors that variant: a solid color, a gradient-by-colors
//     left-to-right, or a gradient-by-stops using the stop locations as
//     given.
//   - Sort orders entries by ascending Priority, ties broken by insertion
//     order.
//
// A gradient variant with an empty color or stop list emits no entry at
// all — a silent no-op, preserved deliberately for compatibility with
// existing consumers (solid always emits; gradients require a non-empty
// payload; no fallback entry is produced on mismatch).
package legend
