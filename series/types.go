// Package series: Observation and DataSeries types with functional options.
//
// This file declares Observation, DataSeries, their options, and the
// NewObservation / NewDataSeries constructors. Both types are immutable once
// constructed; accessors return copies where aliasing would allow mutation.
package series

import (
	"time"

	"github.com/google/uuid"
)

// Observation is one data sample in a series: a value plus optional x-axis
// label, point label and timestamp. Its identity is a unique id assigned at
// creation, used for diffing and equality; it is never reused.
type Observation struct {
	id uuid.UUID

	// Value is the observed numeric value.
	Value float64

	// XLabel optionally labels this sample on the x-axis. Empty means absent.
	XLabel string

	// PointLabel optionally labels the sample itself (e.g. a marker caption).
	PointLabel string

	// Timestamp optionally records when the sample was observed.
	// The zero time means absent.
	Timestamp time.Time
}

// ObservationOption configures optional fields of an Observation.
type ObservationOption func(*Observation)

// WithXLabel attaches an x-axis label to the observation.
func WithXLabel(label string) ObservationOption {
	return func(o *Observation) { o.XLabel = label }
}

// WithPointLabel attaches a point label to the observation.
func WithPointLabel(label string) ObservationOption {
	return func(o *Observation) { o.PointLabel = label }
}

// WithTimestamp attaches a timestamp to the observation.
func WithTimestamp(ts time.Time) ObservationOption {
	return func(o *Observation) { o.Timestamp = ts }
}

// NewObservation creates an Observation carrying value and a freshly
// assigned unique identity.
// Complexity: O(1).
func NewObservation(value float64, opts ...ObservationOption) Observation {
	o := Observation{id: uuid.New(), Value: value}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// ID returns the stable unique identity assigned at creation.
func (o Observation) ID() uuid.UUID {
	return o.id
}

// HasTimestamp reports whether a timestamp was attached.
func (o Observation) HasTimestamp() bool {
	return !o.Timestamp.IsZero()
}

// DataSeries is an ordered, immutable-after-construction collection of
// Observations with a legend title and a fill style. The sequence order is
// the x-axis order. A series may be empty; consumers must treat length < 2
// as insufficient for hit-testing and range division.
type DataSeries struct {
	id          uuid.UUID
	legendTitle string
	style       FillStyle
	points      []Observation
}

// SeriesOption configures a DataSeries before creation.
type SeriesOption func(*DataSeries)

// WithStyle sets the fill style used for rendering and legend derivation.
func WithStyle(style FillStyle) SeriesOption {
	return func(s *DataSeries) { s.style = style }
}

// NewDataSeries creates a DataSeries owning a copy of points, so later
// mutation of the input slice cannot reach the series. The default style is
// a solid default color; override with WithStyle.
// Complexity: O(n) time and memory, n = len(points).
func NewDataSeries(legendTitle string, points []Observation, opts ...SeriesOption) *DataSeries {
	s := &DataSeries{
		id:          uuid.New(),
		legendTitle: legendTitle,
		style:       DefaultStyle(),
		points:      make([]Observation, len(points)),
	}
	copy(s.points, points)
	for _, opt := range opts {
		opt(s)
	}

	return s
}

// ID returns the stable unique identity of the series.
func (s *DataSeries) ID() uuid.UUID {
	return s.id
}

// LegendTitle returns the display title used in legend entries.
func (s *DataSeries) LegendTitle() string {
	return s.legendTitle
}

// Style returns the active fill style variant.
func (s *DataSeries) Style() FillStyle {
	return s.style
}

// Len returns the number of observations.
// Complexity: O(1).
func (s *DataSeries) Len() int {
	return len(s.points)
}

// At returns the observation at index i in x-axis order.
// Panics if i is out of range, like slice indexing.
// Complexity: O(1).
func (s *DataSeries) At(i int) Observation {
	return s.points[i]
}

// Observations returns a copy of the observation sequence in x-axis order.
// Complexity: O(n).
func (s *DataSeries) Observations() []Observation {
	out := make([]Observation, len(s.points))
	copy(out, s.points)

	return out
}

// Values returns the observation values in x-axis order.
// Complexity: O(n).
func (s *DataSeries) Values() []float64 {
	out := make([]float64, len(s.points))
	for i, o := range s.points {
		out[i] = o.Value
	}

	return out
}
