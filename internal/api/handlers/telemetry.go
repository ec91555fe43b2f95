package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/telewatch/telewatch/internal/api/dto"
	"github.com/telewatch/telewatch/internal/api/middleware"
	"github.com/telewatch/telewatch/internal/pkg/errors"
	"github.com/telewatch/telewatch/internal/pkg/logger"
	"github.com/telewatch/telewatch/internal/pkg/utils"
	"github.com/telewatch/telewatch/internal/pkg/validator"
	"github.com/telewatch/telewatch/internal/services"
)

type TelemetryHandler struct {
	service   *services.TelemetryService
	logger    *logger.Logger
	validator *validator.Validator
}

func NewTelemetryHandler(service *services.TelemetryService, log *logger.Logger, val *validator.Validator) *TelemetryHandler {
	return &TelemetryHandler{service: service, logger: log, validator: val}
}

// Ingest persists one telemetry reading for the caller's tenant
// @Summary Ingest a telemetry reading
// @Tags Telemetry
// @Accept json
// @Produce json
// @Param request body dto.IngestTelemetryRequest true "Telemetry reading"
// @Success 201 {object} utils.SuccessResponse{data=dto.TelemetryEventDTO}
// @Security BearerAuth
// @Router /telemetry [post]
func (h *TelemetryHandler) Ingest(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantID(r)

	var req dto.IngestTelemetryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if verrs := h.validator.Validate(req); len(verrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", verrs))
		return
	}

	e, err := h.service.Ingest(r.Context(), tenantID, req.DeviceID, req.Payload)
	if err != nil {
		writeServiceError(w, err, "Failed to ingest telemetry")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, dto.TelemetryEventDTO{
		ID:         e.ID,
		DeviceID:   e.DeviceID,
		IngestedAt: e.IngestedAt,
	})
}
