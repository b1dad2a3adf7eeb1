package components

import (
	"fmt"

	"probability-form/internal/models"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// StatusBar displays the row count and the last computed total
type StatusBar struct {
	container  *fyne.Container
	rowsLabel  *widget.Label
	totalLabel *widget.Label
}

// NewStatusBar creates a new status bar component
func NewStatusBar() *StatusBar {
	sb := &StatusBar{}
	sb.createComponents()
	sb.buildLayout()
	return sb
}

func (sb *StatusBar) createComponents() {
	sb.rowsLabel = widget.NewLabel("")
	sb.totalLabel = widget.NewLabel("")
	sb.Reset()
}

func (sb *StatusBar) buildLayout() {
	sb.container = container.NewHBox(
		sb.rowsLabel,
		widget.NewSeparator(),
		sb.totalLabel,
	)
}

// SetRowCount updates the row count display
func (sb *StatusBar) SetRowCount(count int) {
	sb.rowsLabel.SetText(fmt.Sprintf("項目数: %d", count))
}

// SetTotal updates the total probability display
func (sb *StatusBar) SetTotal(total float64) {
	sb.totalLabel.SetText("合計確率: " + models.FormatProbability(total))
}

// RowCountText returns the row count as displayed
func (sb *StatusBar) RowCountText() string {
	return sb.rowsLabel.Text
}

// TotalText returns the total as displayed
func (sb *StatusBar) TotalText() string {
	return sb.totalLabel.Text
}

// Reset resets the status bar to initial state
func (sb *StatusBar) Reset() {
	sb.rowsLabel.SetText("項目数: --")
	sb.totalLabel.SetText("合計確率: --")
}

// GetContainer returns the status bar container
func (sb *StatusBar) GetContainer() *fyne.Container {
	return sb.container
}
