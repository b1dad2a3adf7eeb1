package app

import (
	"probability-form/internal/controllers"
	"probability-form/internal/logger"
)

// Handlers translates view events into controller operations
type Handlers struct {
	controller *controllers.RowListController
	logger     logger.Logger
}

func NewHandlers(controller *controllers.RowListController, log logger.Logger) *Handlers {
	return &Handlers{
		controller: controller,
		logger:     log,
	}
}

func (h *Handlers) HandleAddRow() {
	h.controller.AddRow()
}

func (h *Handlers) HandleLabelChange(index int, text string) {
	if err := h.controller.SetLabel(index, text); err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{
			"index": index,
		})
	}
}

func (h *Handlers) HandleProbabilityChange(index int, text string) {
	if err := h.controller.SetProbability(index, text); err != nil {
		h.logger.Error("Handlers", err, map[string]interface{}{
			"index": index,
		})
	}
}

func (h *Handlers) HandleProbabilityCommit() {
	h.controller.OnProbabilityChanged()
}
