package handlers

import (
	"net/http"

	"github.com/telewatch/telewatch/internal/api/dto"
	"github.com/telewatch/telewatch/internal/api/middleware"
	"github.com/telewatch/telewatch/internal/domain/evaluation"
	"github.com/telewatch/telewatch/internal/pkg/logger"
	"github.com/telewatch/telewatch/internal/pkg/utils"
)

type EvaluationHandler struct {
	service evaluation.Service
	logger  *logger.Logger
}

func NewEvaluationHandler(service evaluation.Service, log *logger.Logger) *EvaluationHandler {
	return &EvaluationHandler{service: service, logger: log}
}

// Run triggers an on-demand evaluation for the caller's tenant
// @Summary Evaluate alert rules now
// @Description Computes current metric windows, evaluates all enabled rules and persists non-suppressed firings
// @Tags Alerts
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=dto.EvaluationReportDTO}
// @Failure 500 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /evaluate [post]
func (h *EvaluationHandler) Run(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantID(r)

	report, err := h.service.Run(r.Context(), tenantID)
	if err != nil {
		writeServiceError(w, err, "Evaluation failed")
		return
	}

	metrics := make(map[string]float64, len(report.Metrics))
	for k, v := range report.Metrics {
		metrics[string(k)] = v
	}

	utils.WriteSuccess(w, http.StatusOK, dto.EvaluationReportDTO{
		OK:             report.OK,
		Metrics:        metrics,
		RulesEvaluated: report.RulesEvaluated,
		EventsCreated:  report.EventsCreated,
	})
}
