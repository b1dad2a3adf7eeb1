package app

import (
	"sync"

	"probability-form/internal/logger"

	"fyne.io/fyne/v2"
)

// Lifecycle closes the main window exactly once, from whichever side asks
// first: the user, or a termination signal.
type Lifecycle struct {
	window     fyne.Window
	logger     logger.Logger
	mu         sync.Mutex
	isShutdown bool
}

func NewLifecycle(window fyne.Window, log logger.Logger) *Lifecycle {
	return &Lifecycle{
		window: window,
		logger: log,
	}
}

// Shutdown may be called from any goroutine
func (l *Lifecycle) Shutdown() {
	if !l.markShutdown() {
		return
	}

	l.logger.Info("Lifecycle", "shutdown sequence initiated", nil)
	fyne.Do(func() {
		l.window.Close()
	})
}

// Closed records a close initiated from the window itself
func (l *Lifecycle) Closed() {
	if l.markShutdown() {
		l.logger.Info("Lifecycle", "window closed", nil)
	}
}

func (l *Lifecycle) IsShutdown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.isShutdown
}

func (l *Lifecycle) markShutdown() bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.isShutdown {
		return false
	}
	l.isShutdown = true
	return true
}
