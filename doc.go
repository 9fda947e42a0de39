// Package lvlchart is a line-chart data/geometry engine: it computes the
// value range used for vertical scaling, maps pointer positions to the
// nearest observation and its on-screen location, and derives legend
// entries from the active fill style.
//
// 🚀 What is lvlchart?
//
//	A small, pure-computation library that takes an ordered series of
//	numeric observations plus a style configuration and answers the
//	questions a renderer needs to ask:
//	  • How tall is this chart? (effective min / range under a baseline policy)
//	  • Which sample did the user touch, and where does it sit on screen?
//	  • What swatch describes this series in the legend?
//
// ✨ Why choose lvlchart?
//
//   - Renderer-agnostic — emits geometry and color descriptors, never pixels
//   - Deterministic — every computation is pure and synchronous
//   - Explicit errors — sentinel errors checked with errors.Is, no panics
//   - Observable — the chart aggregate republishes every state transition
//
// Everything is organized under five subpackages:
//
//	series/ — Observation, DataSeries, fill-style variants and generators
//	scale/  — baseline/topline policies, min/max/range and axis label values
//	touch/  — nearest-index hit-testing and pixel-position mapping
//	legend/ — legend entries derived from the active fill style
//	chart/  — the Model aggregate tying a series, policies and legends together
//
// Quick ASCII example:
//
//	value ▲        ●
//	      │   ●───╱ ╲───●
//	      │  ╱           ╲
//	      └──┴───┴───┴───┴──▶ index
//
// See each subpackage's doc.go for details and examples.
package lvlchart
