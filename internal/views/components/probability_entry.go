package components

import (
	"fyne.io/fyne/v2/widget"
)

// ProbabilityEntry is a single line entry that reports a commit when the user
// presses Enter, or moves focus away after editing the value.
type ProbabilityEntry struct {
	widget.Entry

	OnCommit func()

	committed string
}

// NewProbabilityEntry creates an entry holding text
func NewProbabilityEntry(text string) *ProbabilityEntry {
	entry := &ProbabilityEntry{committed: text}
	entry.ExtendBaseWidget(entry)
	entry.SetText(text)
	entry.OnSubmitted = func(string) {
		entry.commit()
	}
	return entry
}

// FocusLost commits an edited value in addition to the default behaviour.
// Leaving an untouched field does not commit again.
func (e *ProbabilityEntry) FocusLost() {
	e.Entry.FocusLost()
	if e.Text != e.committed {
		e.commit()
	}
}

func (e *ProbabilityEntry) commit() {
	e.committed = e.Text
	if e.OnCommit != nil {
		e.OnCommit()
	}
}
