package views

import (
	"probability-form/internal/models"
	"probability-form/internal/views/components"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/dialog"
	"fyne.io/fyne/v2/theme"
	"fyne.io/fyne/v2/widget"
)

const probabilityFieldWidth = 80

type rowWidgets struct {
	label       *widget.Entry
	probability *components.ProbabilityEntry
}

// MainView renders the probability form. It is a projection of the
// controller rows: every RenderRows call discards the previous widgets.
type MainView struct {
	window        fyne.Window
	mainContainer *fyne.Container
	toolbar       *components.Toolbar
	rowsBox       *fyne.Container
	statusBar     *components.StatusBar

	rows []rowWidgets

	// Event handlers - connected by the application
	addRowHandler            func()
	labelChangeHandler       func(int, string)
	probabilityChangeHandler func(int, string)
	probabilityCommitHandler func()
}

// NewMainView creates the main view and installs it as the window content
func NewMainView(window fyne.Window) *MainView {
	view := &MainView{
		window: window,
	}

	view.initializeComponents()
	view.buildLayout()

	return view
}

func (mv *MainView) initializeComponents() {
	mv.toolbar = components.NewToolbar()
	mv.toolbar.SetAddHandler(func() {
		if mv.addRowHandler != nil {
			mv.addRowHandler()
		}
	})
	mv.rowsBox = container.NewVBox()
	mv.statusBar = components.NewStatusBar()
}

func (mv *MainView) buildLayout() {
	mv.mainContainer = container.NewBorder(
		mv.toolbar.GetContainer(),   // top
		mv.statusBar.GetContainer(), // bottom
		nil,
		nil,
		container.NewVScroll(mv.rowsBox),
	)

	mv.window.SetContent(mv.mainContainer)
}

// Event handler setters

// SetAddRowHandler sets the handler for the add row button
func (mv *MainView) SetAddRowHandler(handler func()) {
	mv.addRowHandler = handler
}

// SetLabelChangeHandler sets the handler receiving label edits by row index
func (mv *MainView) SetLabelChangeHandler(handler func(int, string)) {
	mv.labelChangeHandler = handler
}

// SetProbabilityChangeHandler sets the handler receiving probability edits by row index
func (mv *MainView) SetProbabilityChangeHandler(handler func(int, string)) {
	mv.probabilityChangeHandler = handler
}

// SetProbabilityCommitHandler sets the handler for a committed probability field
func (mv *MainView) SetProbabilityCommitHandler(handler func()) {
	mv.probabilityCommitHandler = handler
}

// RenderRows replaces every displayed row with rows, in order
func (mv *MainView) RenderRows(rows []models.Row) {
	mv.detachRows()

	mv.rows = make([]rowWidgets, 0, len(rows))
	objects := make([]fyne.CanvasObject, 0, len(rows))
	for i, row := range rows {
		widgets := mv.newRowWidgets(i, row)
		mv.rows = append(mv.rows, widgets)

		probability := container.NewGridWrap(
			fyne.NewSize(probabilityFieldWidth, widgets.probability.MinSize().Height),
			widgets.probability,
		)
		objects = append(objects, container.NewBorder(
			nil,
			nil,
			widget.NewLabel("項目: "),
			container.NewHBox(widget.NewLabel("確率: "), probability),
			widgets.label,
		))
	}

	mv.rowsBox.Objects = objects
	mv.rowsBox.Refresh()
	mv.statusBar.SetRowCount(len(rows))
}

// RenderAggregate shows the last computed total
func (mv *MainView) RenderAggregate(state models.AggregateState) {
	mv.statusBar.SetRowCount(state.RowCount)
	mv.statusBar.SetTotal(state.TotalProbability)
}

// NotifyError shows a modal error dialog
func (mv *MainView) NotifyError(title, message string) {
	content := container.NewHBox(
		widget.NewIcon(theme.ErrorIcon()),
		widget.NewLabel(message),
	)
	dialog.NewCustom(title, "OK", content, mv.window).Show()
}

// RowCount returns the number of displayed rows
func (mv *MainView) RowCount() int {
	return len(mv.rows)
}

// Entries returns the label and probability widgets of the row at index
func (mv *MainView) Entries(index int) (*widget.Entry, *components.ProbabilityEntry) {
	if index < 0 || index >= len(mv.rows) {
		return nil, nil
	}
	return mv.rows[index].label, mv.rows[index].probability
}

// Toolbar returns the toolbar component
func (mv *MainView) Toolbar() *components.Toolbar {
	return mv.toolbar
}

// StatusBar returns the status bar component
func (mv *MainView) StatusBar() *components.StatusBar {
	return mv.statusBar
}

// Show displays the window
func (mv *MainView) Show() {
	mv.window.Show()
}

// newRowWidgets sets text before attaching callbacks so a rebuild does not
// echo values back to the handlers.
func (mv *MainView) newRowWidgets(index int, row models.Row) rowWidgets {
	label := widget.NewEntry()
	label.SetText(row.Label)
	label.OnChanged = func(text string) {
		if mv.labelChangeHandler != nil {
			mv.labelChangeHandler(index, text)
		}
	}

	probability := components.NewProbabilityEntry(row.Probability)
	probability.OnChanged = func(text string) {
		if mv.probabilityChangeHandler != nil {
			mv.probabilityChangeHandler(index, text)
		}
	}
	probability.OnCommit = func() {
		if mv.probabilityCommitHandler != nil {
			mv.probabilityCommitHandler()
		}
	}

	return rowWidgets{label: label, probability: probability}
}

// detachRows silences the outgoing widgets; a focused entry may still
// report focus loss after it has been replaced.
func (mv *MainView) detachRows() {
	for _, row := range mv.rows {
		row.label.OnChanged = nil
		row.probability.OnChanged = nil
		row.probability.OnCommit = nil
	}
}
