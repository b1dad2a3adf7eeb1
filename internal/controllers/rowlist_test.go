package controllers

import (
	"testing"

	"probability-form/internal/models"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingRenderer struct {
	rowRenders [][]models.Row
	aggregates []models.AggregateState
}

func (r *recordingRenderer) RenderRows(rows []models.Row) {
	r.rowRenders = append(r.rowRenders, rows)
}

func (r *recordingRenderer) RenderAggregate(state models.AggregateState) {
	r.aggregates = append(r.aggregates, state)
}

func (r *recordingRenderer) lastRows() []models.Row {
	if len(r.rowRenders) == 0 {
		return nil
	}
	return r.rowRenders[len(r.rowRenders)-1]
}

type notification struct {
	title   string
	message string
}

type recordingNotifier struct {
	notifications []notification
}

func (n *recordingNotifier) NotifyError(title, message string) {
	n.notifications = append(n.notifications, notification{title, message})
}

func newTestController(t *testing.T) (*RowListController, *recordingRenderer, *recordingNotifier) {
	t.Helper()

	renderer := &recordingRenderer{}
	notifier := &recordingNotifier{}
	controller := NewRowListController(renderer, notifier, nil)
	controller.Initialize()
	return controller, renderer, notifier
}

func setProbabilities(t *testing.T, c *RowListController, values ...string) {
	t.Helper()
	for i, v := range values {
		require.NoError(t, c.SetProbability(i, v))
	}
}

func TestInitializeCreatesSingleRow(t *testing.T) {
	c, renderer, _ := newTestController(t)

	rows := c.Rows()
	require.Len(t, rows, 1)
	assert.Equal(t, 1, c.Count())
	assert.Empty(t, rows[0].Label)
	assert.Equal(t, "1", rows[0].Probability)

	require.Len(t, renderer.rowRenders, 1)
	assert.Equal(t, rows, renderer.lastRows())
	require.Len(t, renderer.aggregates, 1)
	assert.Equal(t, models.AggregateState{TotalProbability: 0, RowCount: 1}, renderer.aggregates[0])
}

func TestAddRowDistributesUniformly(t *testing.T) {
	c, _, _ := newTestController(t)

	for n := 1; n <= 6; n++ {
		c.AddRow()

		rows := c.Rows()
		require.Len(t, rows, n+1)
		require.Equal(t, n+1, c.Count())
		for _, row := range rows {
			v, ok := models.ParseProbability(row.Probability)
			require.True(t, ok)
			assert.InDelta(t, 1.0/float64(n+1), v, 0.005)
		}
	}
}

func TestAddRowPreservesLabelsPositionally(t *testing.T) {
	c, renderer, _ := newTestController(t)
	c.AddRow()
	c.AddRow()

	require.NoError(t, c.SetLabel(0, "heads"))
	require.NoError(t, c.SetLabel(2, "edge"))

	c.AddRow()

	rows := renderer.lastRows()
	require.Len(t, rows, 4)
	assert.Equal(t, []string{"heads", "", "edge", ""}, models.Labels(rows))
}

func TestAddRowResetsEnteredProbabilities(t *testing.T) {
	c, _, _ := newTestController(t)
	c.AddRow()
	setProbabilities(t, c, "0.9", "0.1")

	c.AddRow()

	for _, row := range c.Rows() {
		assert.Equal(t, "0.33", row.Probability)
	}
}

func TestAddRowReplacesFullRowSet(t *testing.T) {
	c, renderer, _ := newTestController(t)
	c.AddRow()
	c.AddRow()

	require.Len(t, renderer.rowRenders, 3)
	assert.Len(t, renderer.rowRenders[0], 1)
	assert.Len(t, renderer.rowRenders[1], 2)
	assert.Len(t, renderer.rowRenders[2], 3)
}

func TestOnProbabilityChangedWithinLimit(t *testing.T) {
	c, renderer, notifier := newTestController(t)
	c.AddRow()
	c.AddRow()
	setProbabilities(t, c, "0.3", "0.3", "0.3")

	c.OnProbabilityChanged()

	assert.InDelta(t, 0.9, c.Aggregate().TotalProbability, 1e-9)
	assert.Equal(t, 3, c.Aggregate().RowCount)
	assert.Empty(t, notifier.notifications)

	last := renderer.aggregates[len(renderer.aggregates)-1]
	assert.InDelta(t, 0.9, last.TotalProbability, 1e-9)
}

func TestOnProbabilityChangedOverLimitNotifiesAndResetsTotal(t *testing.T) {
	c, _, notifier := newTestController(t)
	c.AddRow()
	setProbabilities(t, c, "0.7", "0.7")

	c.OnProbabilityChanged()

	require.Len(t, notifier.notifications, 1)
	assert.Equal(t, models.ExceededTitle, notifier.notifications[0].title)
	assert.Equal(t, "合計確率は1.0以下である必要があります。", notifier.notifications[0].message)
	assert.Zero(t, c.Aggregate().TotalProbability)

	for _, row := range c.Rows() {
		assert.Equal(t, "0.7", row.Probability)
	}
}

func TestOnProbabilityChangedIgnoresNonNumericText(t *testing.T) {
	c, _, notifier := newTestController(t)
	c.AddRow()
	setProbabilities(t, c, "abc", "0.4")

	c.OnProbabilityChanged()

	assert.InDelta(t, 0.4, c.Aggregate().TotalProbability, 1e-9)
	assert.Empty(t, notifier.notifications)
}

func TestOnProbabilityChangedExactlyOneIsAccepted(t *testing.T) {
	c, _, notifier := newTestController(t)

	c.OnProbabilityChanged()

	assert.Equal(t, 1.0, c.Aggregate().TotalProbability)
	assert.Empty(t, notifier.notifications)
}

func TestFourRowsOverLimitScenario(t *testing.T) {
	c, _, notifier := newTestController(t)
	for i := 0; i < 3; i++ {
		c.AddRow()
	}

	rows := c.Rows()
	require.Len(t, rows, 4)
	for _, row := range rows {
		assert.Equal(t, "0.25", row.Probability)
	}

	setProbabilities(t, c, "0.3", "0.3", "0.3", "0.3")
	c.OnProbabilityChanged()

	require.Len(t, notifier.notifications, 1)
	assert.Zero(t, c.Aggregate().TotalProbability)
	for _, row := range c.Rows() {
		assert.Equal(t, "0.3", row.Probability)
	}
}

func TestSetFieldOutOfRange(t *testing.T) {
	c, _, _ := newTestController(t)

	err := c.SetLabel(1, "x")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRowIndexOutOfRange))

	err = c.SetProbability(-1, "0.5")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrRowIndexOutOfRange))
}

func TestRowsReturnsCopy(t *testing.T) {
	c, _, _ := newTestController(t)

	rows := c.Rows()
	rows[0].Label = "mutated"

	assert.Empty(t, c.Rows()[0].Label)
}

func TestEventListeners(t *testing.T) {
	c, _, _ := newTestController(t)

	var added []interface{}
	var exceeded []interface{}
	var computed []interface{}
	c.AddEventListener(EventRowAdded, func(data interface{}) { added = append(added, data) })
	c.AddEventListener(EventTotalExceeded, func(data interface{}) { exceeded = append(exceeded, data) })
	c.AddEventListener(EventTotalComputed, func(data interface{}) { computed = append(computed, data) })

	c.AddRow()
	setProbabilities(t, c, "0.8", "0.8")
	c.OnProbabilityChanged()

	assert.Equal(t, []interface{}{2}, added)
	require.Len(t, exceeded, 1)
	assert.InDelta(t, 1.6, exceeded[0].(float64), 1e-9)
	require.Len(t, computed, 1)
	assert.Equal(t, models.AggregateState{TotalProbability: 0, RowCount: 2}, computed[0])
}

func TestOnProbabilityChangedOverflowCountsAsExceeded(t *testing.T) {
	for _, text := range []string{"1e400", "Infinity"} {
		t.Run(text, func(t *testing.T) {
			c, _, notifier := newTestController(t)
			c.AddRow()
			setProbabilities(t, c, "0.1", text)

			c.OnProbabilityChanged()

			require.Len(t, notifier.notifications, 1)
			assert.Equal(t, models.ExceededMessage, notifier.notifications[0].message)
			assert.Zero(t, c.Aggregate().TotalProbability)
			assert.Equal(t, text, c.Rows()[1].Probability)
		})
	}
}
