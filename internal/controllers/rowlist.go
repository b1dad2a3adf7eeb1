package controllers

import (
	"probability-form/internal/logger"
	"probability-form/internal/models"

	"github.com/pkg/errors"
)

const component = "RowListController"

// Event types emitted by RowListController
const (
	EventRowAdded      = "row_added"
	EventTotalComputed = "total_computed"
	EventTotalExceeded = "total_exceeded"
)

// ErrRowIndexOutOfRange is returned when an edit targets a row that does not exist
var ErrRowIndexOutOfRange = errors.New("row index out of range")

// RowRenderer displays the controller state. It receives the full row set on
// every rebuild and must replace any previously displayed rows.
type RowRenderer interface {
	RenderRows(rows []models.Row)
	RenderAggregate(state models.AggregateState)
}

// Notifier surfaces a blocking, user-facing error message
type Notifier interface {
	NotifyError(title, message string)
}

// EventHandler represents a function that observes controller events
type EventHandler func(data interface{})

// RowListController owns the ordered rows of the form and the cached total
// probability. All methods are expected to run on the UI event goroutine.
type RowListController struct {
	rows  []models.Row
	count int
	total float64

	renderer RowRenderer
	notifier Notifier
	logger   logger.Logger

	eventHandlers map[string][]EventHandler
}

// NewRowListController creates a controller. Call Initialize before use.
func NewRowListController(renderer RowRenderer, notifier Notifier, log logger.Logger) *RowListController {
	if log == nil {
		log = logger.NoOpLogger{}
	}

	return &RowListController{
		renderer:      renderer,
		notifier:      notifier,
		logger:        log,
		eventHandlers: make(map[string][]EventHandler),
	}
}

// Initialize resets the form to a single empty row with probability 1
func (c *RowListController) Initialize() {
	c.count = 1
	c.rows = models.NewRowList(c.count, nil)
	c.total = 0

	c.logger.Debug(component, "initialized", map[string]interface{}{
		"rows": c.count,
	})

	c.renderRows()
	c.renderAggregate()
}

// AddRow appends a row. Labels keep their positions; every probability,
// including ones the user typed, is reset to the uniform 1/count value.
func (c *RowListController) AddRow() {
	labels := models.Labels(c.rows)
	c.count++
	c.rows = models.NewRowList(c.count, labels)

	c.logger.Debug(component, "row added", map[string]interface{}{
		"rows":        c.count,
		"probability": models.UniformProbability(c.count),
	})

	c.renderRows()
	c.emitEvent(EventRowAdded, c.count)
}

// OnProbabilityChanged recomputes the cached total after a probability
// field was committed. A total above MaxTotalProbability is reported to the
// user and resets the cached total only; field text is left as entered.
func (c *RowListController) OnProbabilityChanged() {
	total := models.SumProbabilities(c.rows)

	if total > models.MaxTotalProbability {
		c.logger.Warning(component, "total probability exceeded", map[string]interface{}{
			"total": total,
			"rows":  c.count,
		})

		if c.notifier != nil {
			c.notifier.NotifyError(models.ExceededTitle, models.ExceededMessage)
		}
		c.emitEvent(EventTotalExceeded, total)
		total = 0
	}

	c.total = total
	c.logger.Debug(component, "total recomputed", map[string]interface{}{
		"total": c.total,
	})

	c.renderAggregate()
	c.emitEvent(EventTotalComputed, c.Aggregate())
}

// SetLabel records label text edited in the view
func (c *RowListController) SetLabel(index int, text string) error {
	if err := c.checkIndex(index); err != nil {
		return errors.Wrap(err, "set label")
	}
	c.rows[index].Label = text
	return nil
}

// SetProbability records probability text edited in the view. The total is
// not recomputed until OnProbabilityChanged.
func (c *RowListController) SetProbability(index int, text string) error {
	if err := c.checkIndex(index); err != nil {
		return errors.Wrap(err, "set probability")
	}
	c.rows[index].Probability = text
	return nil
}

// Rows returns a copy of the current rows
func (c *RowListController) Rows() []models.Row {
	rows := make([]models.Row, len(c.rows))
	copy(rows, c.rows)
	return rows
}

func (c *RowListController) Count() int {
	return c.count
}

// Aggregate returns the state of the last recomputation
func (c *RowListController) Aggregate() models.AggregateState {
	return models.AggregateState{
		TotalProbability: c.total,
		RowCount:         c.count,
	}
}

// AddEventListener registers a handler for a controller event type
func (c *RowListController) AddEventListener(eventType string, handler EventHandler) {
	c.eventHandlers[eventType] = append(c.eventHandlers[eventType], handler)
}

func (c *RowListController) emitEvent(eventType string, data interface{}) {
	for _, handler := range c.eventHandlers[eventType] {
		handler(data)
	}
}

func (c *RowListController) checkIndex(index int) error {
	if index < 0 || index >= len(c.rows) {
		return errors.Wrapf(ErrRowIndexOutOfRange, "index %d, rows %d", index, len(c.rows))
	}
	return nil
}

func (c *RowListController) renderRows() {
	if c.renderer != nil {
		c.renderer.RenderRows(c.Rows())
	}
}

func (c *RowListController) renderAggregate() {
	if c.renderer != nil {
		c.renderer.RenderAggregate(c.Aggregate())
	}
}
