package chart_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wcharczuk/go-chart/v2/drawing"

	"github.com/katalvlaran/lvlchart/chart"
	"github.com/katalvlaran/lvlchart/scale"
	"github.com/katalvlaran/lvlchart/series"
	"github.com/katalvlaran/lvlchart/touch"
)

// seriesOf builds a DataSeries from raw values for concise test setup.
func seriesOf(values ...float64) *series.DataSeries {
	obs := make([]series.Observation, len(values))
	for i, v := range values {
		obs[i] = series.NewObservation(v)
	}

	return series.NewDataSeries("test", obs)
}

// TestNewModel_LegendComputedAtConstruction verifies the legend list is
// ready synchronously after NewModel returns.
func TestNewModel_LegendComputedAtConstruction(t *testing.T) {
	s := series.NewDataSeries("sales", series.Linear(3, 1, 3),
		series.WithStyle(series.Solid{Color: drawing.ColorRed, Stroke: series.DefaultStroke()}))
	m := chart.NewModel(s)

	legends := m.Legends()
	require.Len(t, legends, 1)
	assert.Equal(t, s.ID(), legends[0].ID)
	assert.Equal(t, "sales", legends[0].Title)
}

// TestModel_RangeDelegation verifies Range/MinValue/MaxValue/TopLine are
// thin delegations using the model's stored policies.
func TestModel_RangeDelegation(t *testing.T) {
	m := chart.NewModel(seriesOf(10, 20, 15),
		chart.WithBaseline(scale.ZeroBaseline()),
		chart.WithTopline(scale.MaximumWithCeiling(25)),
	)

	r, err := m.Range()
	require.NoError(t, err)
	assert.Equal(t, 20.0, r, "ZeroBaseline range is the maximum")

	minVal, err := m.MinValue()
	require.NoError(t, err)
	assert.Equal(t, 0.0, minVal)

	maxVal, err := m.MaxValue()
	require.NoError(t, err)
	assert.Equal(t, 20.0, maxVal)

	top, err := m.TopLine()
	require.NoError(t, err)
	assert.Equal(t, 25.0, top, "topline ceiling raises the upper bound")
}

// TestModel_YAxisLabels verifies delegation to scale.LabelValues with the
// configured label count.
func TestModel_YAxisLabels(t *testing.T) {
	m := chart.NewModel(seriesOf(5, 5, 5),
		chart.WithBaseline(scale.ZeroBaseline()),
		chart.WithLabelCount(2),
	)

	labels, err := m.YAxisLabels()
	require.NoError(t, err)
	assert.Equal(t, []float64{0, 2.5, 5}, labels)
}

// TestModel_XAxisLabels_FromDataPoints verifies per-point labels are taken
// in series order, skipping absent labels without reserving a slot.
func TestModel_XAxisLabels_FromDataPoints(t *testing.T) {
	obs := []series.Observation{
		series.NewObservation(1, series.WithXLabel("Mon")),
		series.NewObservation(2),
		series.NewObservation(3, series.WithXLabel("Wed")),
	}
	m := chart.NewModel(series.NewDataSeries("week", obs),
		chart.WithXLabelSource(chart.LabelsFromDataPoints))

	assert.Equal(t, []string{"Mon", "Wed"}, m.XAxisLabels())
}

// TestModel_XAxisLabels_FromChart verifies the override list wins when the
// source selector asks for whole-chart labels, and is empty when absent.
func TestModel_XAxisLabels_FromChart(t *testing.T) {
	m := chart.NewModel(seriesOf(1, 2, 3),
		chart.WithXLabelSource(chart.LabelsFromChart),
		chart.WithXLabelOverride("Q1", "Q2", "Q3"),
	)
	assert.Equal(t, []string{"Q1", "Q2", "Q3"}, m.XAxisLabels())

	m = chart.NewModel(seriesOf(1, 2, 3),
		chart.WithXLabelSource(chart.LabelsFromChart))
	assert.Empty(t, m.XAxisLabels(), "no override list yields an empty result")
}

// TestModel_ResolveTouch verifies the reference scenario through the
// aggregate: [10,20,15] across width 300, pointer x=160 → observation 20.
func TestModel_ResolveTouch(t *testing.T) {
	m := chart.NewModel(seriesOf(10, 20, 15))
	sur := touch.Surface{Width: 300, Height: 100}

	obs, pos, ok := m.ResolveTouch(touch.Point{X: 160, Y: 50}, sur)
	require.True(t, ok)
	assert.Equal(t, 20.0, obs.Value)
	assert.Equal(t, touch.Point{X: 150, Y: 0}, pos, "the maximum sits at the top edge")
}

// TestModel_EmptySeries verifies graceful degradation: range operations
// error, label/touch operations return empty results, and the configured
// placeholder text is available.
func TestModel_EmptySeries(t *testing.T) {
	m := chart.NewModel(seriesOf(), chart.WithNoDataText("no data yet"))

	_, err := m.Range()
	assert.ErrorIs(t, err, scale.ErrEmptySeries)
	_, err = m.MinValue()
	assert.ErrorIs(t, err, scale.ErrEmptySeries)
	_, err = m.YAxisLabels()
	assert.ErrorIs(t, err, scale.ErrEmptySeries)

	assert.Empty(t, m.XAxisLabels(), "x labels degrade to empty without raising")

	_, _, ok := m.ResolveTouch(touch.Point{X: 10}, touch.Surface{Width: 300, Height: 100})
	assert.False(t, ok, "touch resolution degrades to a miss without raising")

	assert.Equal(t, "no data yet", m.NoDataText())
}

// TestModel_ResolveTouch_SinglePoint verifies a single-point series never
// produces a touch result through the aggregate either.
func TestModel_ResolveTouch_SinglePoint(t *testing.T) {
	m := chart.NewModel(seriesOf(7))
	_, _, ok := m.ResolveTouch(touch.Point{X: 150}, touch.Surface{Width: 300, Height: 100})
	assert.False(t, ok)
}

// TestModel_SetSeries_RecomputesLegendAndNotifies verifies the legend list
// is replaced wholesale and observers see every transition in order.
func TestModel_SetSeriesRecomputesLegendAndNotifies(t *testing.T) {
	first := series.NewDataSeries("first", series.Linear(3, 0, 2))
	m := chart.NewModel(first)

	var seen []string
	cancel := m.Subscribe(func(snap chart.Snapshot) {
		seen = append(seen, snap.Series.LegendTitle())
	})
	defer cancel()

	second := series.NewDataSeries("second", series.Linear(3, 0, 2))
	third := series.NewDataSeries("third", series.Linear(3, 0, 2),
		series.WithStyle(series.GradientColors{})) // empty payload → no legend

	m.SetSeries(second)
	m.SetSeries(third)

	assert.Equal(t, []string{"second", "third"}, seen, "observers see each transition in order")
	assert.Empty(t, m.Legends(), "legend list is replaced wholesale on SetSeries")
}

// TestModel_SubscribeCancel verifies a cancelled observer stops receiving
// snapshots while others continue.
func TestModel_SubscribeCancel(t *testing.T) {
	m := chart.NewModel(seriesOf(1, 2))

	var a, b int
	cancelA := m.Subscribe(func(chart.Snapshot) { a++ })
	cancelB := m.Subscribe(func(chart.Snapshot) { b++ })
	defer cancelB()

	m.SetBaseline(scale.ZeroBaseline())
	cancelA()
	m.SetBaseline(scale.MinimumValue())

	assert.Equal(t, 1, a, "cancelled observer must not receive further snapshots")
	assert.Equal(t, 2, b, "remaining observer receives every snapshot")
}

// TestModel_SetBaselineAffectsScaling verifies baseline mutation changes
// derived values on subsequent reads.
func TestModel_SetBaselineAffectsScaling(t *testing.T) {
	m := chart.NewModel(seriesOf(10, 20, 15))

	r, err := m.Range()
	require.NoError(t, err)
	assert.Equal(t, 10.0, r)

	m.SetBaseline(scale.ZeroBaseline())
	r, err = m.Range()
	require.NoError(t, err)
	assert.Equal(t, 20.0, r)
}
