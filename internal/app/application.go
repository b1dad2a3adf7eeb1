package app

import (
	"probability-form/internal/config"
	"probability-form/internal/controllers"
	"probability-form/internal/logger"
	"probability-form/internal/models"
	"probability-form/internal/shutdown"
	"probability-form/internal/views"

	"fyne.io/fyne/v2"
	"github.com/pkg/errors"
)

const (
	AppName    = "Dynamic Text Field Example"
	AppID      = "com.example.probabilityform"
	AppVersion = "1.0.0"
)

type Application struct {
	fyneApp    fyne.App
	window     fyne.Window
	view       *views.MainView
	controller *controllers.RowListController
	lifecycle  *Lifecycle
	shutdown   *shutdown.Manager
	logger     logger.Logger
}

// NewApplication builds the window, view and controller and leaves the form
// initialized with a single row. fyneApp is created by the caller so tests can
// pass a headless app.
func NewApplication(fyneApp fyne.App, cfg config.Config, log logger.Logger) (*Application, error) {
	if fyneApp == nil {
		return nil, errors.New("fyne app is required")
	}
	if log == nil {
		log = logger.NoOpLogger{}
	}

	window := fyneApp.NewWindow(AppName)
	window.Resize(fyne.NewSize(cfg.WindowWidth, cfg.WindowHeight))
	window.CenterOnScreen()
	window.SetMaster()

	log.Info("Application", "starting application", map[string]interface{}{
		"version":       AppVersion,
		"window_width":  cfg.WindowWidth,
		"window_height": cfg.WindowHeight,
	})

	view := views.NewMainView(window)
	controller := controllers.NewRowListController(view, view, log)
	lifecycle := NewLifecycle(window, log)

	shutdownManager := shutdown.NewManager(log)
	shutdownManager.Register(lifecycle)

	application := &Application{
		fyneApp:    fyneApp,
		window:     window,
		view:       view,
		controller: controller,
		lifecycle:  lifecycle,
		shutdown:   shutdownManager,
		logger:     log,
	}

	application.setupHandlers()
	controller.Initialize()

	log.Info("Application", "initialization complete", nil)
	return application, nil
}

func (a *Application) setupHandlers() {
	handlers := NewHandlers(a.controller, a.logger)

	a.view.SetAddRowHandler(handlers.HandleAddRow)
	a.view.SetLabelChangeHandler(handlers.HandleLabelChange)
	a.view.SetProbabilityChangeHandler(handlers.HandleProbabilityChange)
	a.view.SetProbabilityCommitHandler(handlers.HandleProbabilityCommit)

	a.controller.AddEventListener(controllers.EventRowAdded, func(data interface{}) {
		a.logger.Info("Application", "row added", map[string]interface{}{
			"rows": data,
		})
	})
	a.controller.AddEventListener(controllers.EventTotalComputed, func(data interface{}) {
		if state, ok := data.(models.AggregateState); ok {
			a.logger.Info("Application", "total probability committed", map[string]interface{}{
				"total": state.TotalProbability,
				"rows":  state.RowCount,
			})
		}
	})

	a.window.SetOnClosed(func() {
		a.lifecycle.Closed()
		a.shutdown.Shutdown()
	})
}

// Run shows the window and blocks until it is closed
func (a *Application) Run() error {
	a.shutdown.Listen()

	a.view.Show()
	a.logger.Info("Application", "GUI displayed", nil)
	a.fyneApp.Run()

	a.logger.Info("Application", "application terminated", nil)
	return nil
}

// Shutdown closes the window as a termination signal would
func (a *Application) Shutdown() {
	a.shutdown.Shutdown()
}

func (a *Application) Window() fyne.Window {
	return a.window
}

func (a *Application) View() *views.MainView {
	return a.view
}

func (a *Application) Controller() *controllers.RowListController {
	return a.controller
}
