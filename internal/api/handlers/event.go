package handlers

import (
	"net/http"
	"strconv"

	"github.com/telewatch/telewatch/internal/api/dto"
	"github.com/telewatch/telewatch/internal/api/middleware"
	"github.com/telewatch/telewatch/internal/pkg/logger"
	"github.com/telewatch/telewatch/internal/pkg/utils"
	"github.com/telewatch/telewatch/internal/services"
)

const (
	defaultEventLimit = 50
	maxEventLimit     = 200
)

type AlertEventHandler struct {
	service *services.EventService
	logger  *logger.Logger
}

func NewAlertEventHandler(service *services.EventService, log *logger.Logger) *AlertEventHandler {
	return &AlertEventHandler{service: service, logger: log}
}

// List returns recent alert events for the caller's tenant, newest first
// @Summary List recent alert events
// @Tags Events
// @Produce json
// @Param limit query int false "Max events to return (default 50, max 200)"
// @Success 200 {object} utils.SuccessResponse{data=[]dto.AlertEventDTO}
// @Security BearerAuth
// @Router /events [get]
func (h *AlertEventHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantID(r)

	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 {
		limit = defaultEventLimit
	}
	if limit > maxEventLimit {
		limit = maxEventLimit
	}

	events, err := h.service.ListRecent(r.Context(), tenantID, limit)
	if err != nil {
		writeServiceError(w, err, "Failed to list alert events")
		return
	}

	dtos := make([]dto.AlertEventDTO, len(events))
	for i, e := range events {
		dtos[i] = dto.AlertEventDTO{
			ID:          e.ID,
			AlertID:     e.AlertID,
			Message:     e.Message,
			TriggeredAt: e.TriggeredAt,
		}
	}

	utils.WriteSuccess(w, http.StatusOK, dtos)
}
