// Package chart: the Model aggregate, its options and observer wiring.
package chart

import (
	"sync"

	"github.com/katalvlaran/lvlchart/legend"
	"github.com/katalvlaran/lvlchart/scale"
	"github.com/katalvlaran/lvlchart/series"
	"github.com/katalvlaran/lvlchart/touch"
)

// LabelSource selects where x-axis labels come from.
type LabelSource uint8

const (
	// LabelsFromDataPoints takes each observation's XLabel in series order,
	// skipping absent labels without reserving a slot.
	LabelsFromDataPoints LabelSource = iota

	// LabelsFromChart takes the override list configured on the Model
	// (empty if none was provided).
	LabelsFromChart
)

// DefaultLabelCount is the y-axis label count used when none is configured.
const DefaultLabelCount = 10

// Snapshot is the immutable view of the Model delivered to observers after
// each state transition.
type Snapshot struct {
	Series  *series.DataSeries
	Legends []legend.Entry
}

// Observer receives a Snapshot synchronously after each mutation.
type Observer func(Snapshot)

// Option configures a Model before construction completes.
type Option func(*Model)

// WithBaseline sets the baseline policy used for vertical scaling.
func WithBaseline(b scale.Baseline) Option {
	return func(m *Model) { m.baseline = b }
}

// WithTopline sets the topline policy used for the upper y-axis bound.
func WithTopline(t scale.Topline) Option {
	return func(m *Model) { m.topline = t }
}

// WithLabelCount sets the y-axis label count passed to scale.LabelValues.
func WithLabelCount(n int) Option {
	return func(m *Model) { m.labelCount = n }
}

// WithXLabelSource selects per-data-point or whole-chart x-axis labels.
func WithXLabelSource(src LabelSource) Option {
	return func(m *Model) { m.labelSource = src }
}

// WithXLabelOverride sets the whole-chart x-axis label list returned when
// the label source is LabelsFromChart.
func WithXLabelOverride(labels ...string) Option {
	return func(m *Model) { m.xLabels = labels }
}

// WithNoDataText sets the placeholder text the presentation layer should
// render when operations fail with scale.ErrEmptySeries.
func WithNoDataText(text string) Option {
	return func(m *Model) { m.noDataText = text }
}

type subscriber struct {
	id int
	fn Observer
}

// Model owns exactly one DataSeries and one style configuration, and is the
// sole mutator of its own derived state. Reads are safe under concurrent
// access; mutation must happen on a single logical owner goroutine.
type Model struct {
	mu sync.RWMutex

	series      *series.DataSeries
	baseline    scale.Baseline
	topline     scale.Topline
	labelCount  int
	labelSource LabelSource
	xLabels     []string
	noDataText  string

	legends []legend.Entry

	nextSubID int
	subs      []subscriber
}

// NewModel constructs a Model owning s and computes its legend entries
// synchronously before returning. An empty series is legal; operations on
// it fail gracefully with scale.ErrEmptySeries and the caller falls back to
// NoDataText.
// Complexity: O(1) beyond option application.
func NewModel(s *series.DataSeries, opts ...Option) *Model {
	m := &Model{
		series:     s,
		labelCount: DefaultLabelCount,
	}
	for _, opt := range opts {
		opt(m)
	}
	m.legends = legend.Build(m.series)

	return m
}

// Series returns the owned DataSeries.
func (m *Model) Series() *series.DataSeries {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.series
}

// NoDataText returns the configured "no data" placeholder text.
func (m *Model) NoDataText() string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return m.noDataText
}

// Legends returns a copy of the precomputed legend entries (zero or one in
// the single-series case). Recomputation happens only on SetSeries, never
// by in-place mutation.
// Complexity: O(len(legends)).
func (m *Model) Legends() []legend.Entry {
	m.mu.RLock()
	defer m.mu.RUnlock()
	out := make([]legend.Entry, len(m.legends))
	copy(out, m.legends)

	return out
}

// MinValue returns the effective lower bound under the model's baseline.
// Propagates scale.ErrEmptySeries.
func (m *Model) MinValue() (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return scale.EffectiveMin(m.series, m.baseline)
}

// MaxValue returns the series maximum. Propagates scale.ErrEmptySeries.
func (m *Model) MaxValue() (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return scale.MaxValue(m.series)
}

// TopLine returns the effective upper bound under the model's topline
// policy, used as the upper y-axis label. Propagates scale.ErrEmptySeries.
func (m *Model) TopLine() (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return scale.EffectiveMax(m.series, m.topline)
}

// Range returns the span used for vertical scaling under the model's
// baseline. Propagates scale.ErrEmptySeries.
func (m *Model) Range() (float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return scale.EffectiveRange(m.series, m.baseline)
}

// YAxisLabels delegates to scale.LabelValues with the model's baseline and
// configured label count. Propagates scale.ErrInvalidLabelCount and
// scale.ErrEmptySeries.
func (m *Model) YAxisLabels() ([]float64, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	return scale.LabelValues(m.series, m.baseline, m.labelCount)
}

// XAxisLabels returns the x-axis labels according to the configured source:
// the whole-chart override list for LabelsFromChart (empty if absent), or
// each observation's XLabel in series order for LabelsFromDataPoints,
// skipping absent labels without reserving a slot. Never fails; an empty
// series yields an empty result.
// Complexity: O(n).
func (m *Model) XAxisLabels() []string {
	m.mu.RLock()
	defer m.mu.RUnlock()

	if m.labelSource == LabelsFromChart {
		out := make([]string, len(m.xLabels))
		copy(out, m.xLabels)

		return out
	}

	out := make([]string, 0, m.series.Len())
	for i := 0; i < m.series.Len(); i++ {
		if l := m.series.At(i).XLabel; l != "" {
			out = append(out, l)
		}
	}

	return out
}

// ResolveTouch maps a pointer position within sur to the nearest
// observation and its pixel position, delegating to touch.ResolveTouch with
// the model's effective min/range. ok=false for series of length < 2,
// pointers outside the sample range, or an empty series.
// Complexity: O(n) for the range computation.
func (m *Model) ResolveTouch(pointer touch.Point, sur touch.Surface) (series.Observation, touch.Point, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	effMin, err := scale.EffectiveMin(m.series, m.baseline)
	if err != nil {
		return series.Observation{}, touch.Point{}, false
	}
	effRange, err := scale.EffectiveRange(m.series, m.baseline)
	if err != nil {
		return series.Observation{}, touch.Point{}, false
	}

	return touch.ResolveTouch(pointer, sur, m.series, effMin, effRange)
}

// SetSeries replaces the owned series, recomputes the legend list wholesale
// and notifies observers with the new snapshot.
func (m *Model) SetSeries(s *series.DataSeries) {
	m.mu.Lock()
	m.series = s
	m.legends = legend.Build(s)
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
}

// SetBaseline replaces the baseline policy and notifies observers. The
// legend list is unaffected: it derives from the fill style only.
func (m *Model) SetBaseline(b scale.Baseline) {
	m.mu.Lock()
	m.baseline = b
	snap := m.snapshotLocked()
	m.mu.Unlock()

	m.notify(snap)
}

// Subscribe registers an observer invoked synchronously after every
// mutation, in subscription order. The returned cancel removes it.
func (m *Model) Subscribe(fn Observer) (cancel func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	id := m.nextSubID
	m.nextSubID++
	m.subs = append(m.subs, subscriber{id: id, fn: fn})

	return func() {
		m.mu.Lock()
		defer m.mu.Unlock()
		for i, sub := range m.subs {
			if sub.id == id {
				m.subs = append(m.subs[:i], m.subs[i+1:]...)

				return
			}
		}
	}
}

// snapshotLocked builds the observer snapshot; callers hold mu.
func (m *Model) snapshotLocked() Snapshot {
	legends := make([]legend.Entry, len(m.legends))
	copy(legends, m.legends)

	return Snapshot{Series: m.series, Legends: legends}
}

// notify delivers snap to current subscribers outside the write lock, so
// observers may read the model. Mutations are single-writer, so transitions
// reach observers in mutation order.
func (m *Model) notify(snap Snapshot) {
	m.mu.RLock()
	subs := make([]subscriber, len(m.subs))
	copy(subs, m.subs)
	m.mu.RUnlock()

	for _, sub := range subs {
		sub.fn(snap)
	}
}
