package components

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"
)

// Toolbar holds the form actions
type Toolbar struct {
	container *fyne.Container
	addButton *widget.Button

	addHandler func()
}

// NewToolbar creates a new toolbar component
func NewToolbar() *Toolbar {
	toolbar := &Toolbar{}
	toolbar.createComponents()
	toolbar.buildLayout()
	return toolbar
}

func (t *Toolbar) createComponents() {
	t.addButton = widget.NewButton("項目を追加", func() {
		if t.addHandler != nil {
			t.addHandler()
		}
	})
	t.addButton.Importance = widget.HighImportance
}

func (t *Toolbar) buildLayout() {
	t.container = container.NewHBox(t.addButton)
}

// SetAddHandler sets the handler for the add row button
func (t *Toolbar) SetAddHandler(handler func()) {
	t.addHandler = handler
}

// AddButton exposes the add row button
func (t *Toolbar) AddButton() *widget.Button {
	return t.addButton
}

// GetContainer returns the toolbar container
func (t *Toolbar) GetContainer() *fyne.Container {
	return t.container
}
