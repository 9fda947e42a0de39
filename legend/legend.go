package legend

import (
	"sort"

	"github.com/google/uuid"

	"github.com/katalvlaran/lvlchart/series"
)

// ChartType tags the kind of chart an entry belongs to, so mixed-chart
// consumers can group legends by origin.
type ChartType uint8

const (
	// ChartTypeLine marks entries produced for line charts.
	ChartTypeLine ChartType = iota
)

// DefaultPriority is the priority assigned to single-series entries; there
// are no competing series to rank against.
const DefaultPriority = 1

// Entry is a single swatch+label describing how a series is rendered.
// Created once per series and never mutated — only replaced wholesale when
// the series or style changes.
type Entry struct {
	// ID is borrowed from the owning DataSeries.
	ID uuid.UUID

	// Title is the display title shown next to the swatch.
	Title string

	// Swatch mirrors the fill-style variant the entry was derived from.
	Swatch series.FillStyle

	// Stroke describes the line stroke of the owning series.
	Stroke series.StrokeStyle

	// Priority orders entries: lower sorts first, ties by insertion order.
	Priority int

	// ChartType tags the owning chart kind.
	ChartType ChartType
}

// Build inspects the fill style of s and returns exactly one Entry whose
// swatch mirrors the active variant, or no entry when a gradient variant
// carries an empty color/stop list (silent no-op — see the package doc).
// Complexity: O(1).
func Build(s *series.DataSeries) []Entry {
	entry := Entry{
		ID:        s.ID(),
		Title:     s.LegendTitle(),
		Priority:  DefaultPriority,
		ChartType: ChartTypeLine,
	}

	switch st := s.Style().(type) {
	case series.Solid:
		entry.Swatch = st
		entry.Stroke = st.Stroke
	case series.GradientColors:
		if len(st.Colors) == 0 {
			return nil
		}
		entry.Swatch = st
		entry.Stroke = st.Stroke
	case series.GradientStops:
		if len(st.Stops) == 0 {
			return nil
		}
		entry.Swatch = st
		entry.Stroke = st.Stroke
	default:
		return nil
	}

	return []Entry{entry}
}

// Sort orders entries by ascending Priority, preserving insertion order
// among equal priorities.
// Complexity: O(n log n).
func Sort(entries []Entry) {
	sort.SliceStable(entries, func(i, j int) bool {
		return entries[i].Priority < entries[j].Priority
	})
}
