package handlers

import (
	"encoding/json"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/telewatch/telewatch/internal/api/dto"
	"github.com/telewatch/telewatch/internal/api/middleware"
	"github.com/telewatch/telewatch/internal/domain/metric"
	"github.com/telewatch/telewatch/internal/domain/rule"
	"github.com/telewatch/telewatch/internal/pkg/errors"
	"github.com/telewatch/telewatch/internal/pkg/logger"
	"github.com/telewatch/telewatch/internal/pkg/utils"
	"github.com/telewatch/telewatch/internal/pkg/validator"
)

type AlertRuleHandler struct {
	service   rule.Service
	logger    *logger.Logger
	validator *validator.Validator
}

func NewAlertRuleHandler(service rule.Service, log *logger.Logger, val *validator.Validator) *AlertRuleHandler {
	return &AlertRuleHandler{service: service, logger: log, validator: val}
}

// List returns all alert rules for the caller's tenant
// @Summary List alert rules
// @Tags Alerts
// @Produce json
// @Success 200 {object} utils.SuccessResponse{data=[]dto.AlertRuleDTO}
// @Security BearerAuth
// @Router /alerts [get]
func (h *AlertRuleHandler) List(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantID(r)

	rules, err := h.service.List(r.Context(), tenantID)
	if err != nil {
		writeServiceError(w, err, "Failed to list alert rules")
		return
	}

	dtos := make([]dto.AlertRuleDTO, len(rules))
	for i, a := range rules {
		dtos[i] = toRuleDTO(a)
	}

	utils.WriteSuccess(w, http.StatusOK, dtos)
}

// Create creates a new alert rule
// @Summary Create alert rule
// @Tags Alerts
// @Accept json
// @Produce json
// @Param request body dto.CreateAlertRuleRequest true "Rule definition"
// @Success 201 {object} utils.SuccessResponse{data=dto.AlertRuleDTO}
// @Failure 400 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /alerts [post]
func (h *AlertRuleHandler) Create(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantID(r)

	var req dto.CreateAlertRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if verrs := h.validator.Validate(req); len(verrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", verrs))
		return
	}

	enabled := true
	if req.Enabled != nil {
		enabled = *req.Enabled
	}

	a := &rule.AlertRule{
		TenantID:        tenantID,
		Name:            req.Name,
		Metric:          metric.Key(req.Metric),
		Operator:        rule.Operator(req.Operator),
		Threshold:       req.Threshold,
		CooldownSeconds: req.CooldownSeconds,
		Enabled:         enabled,
	}

	if _, err := h.service.Create(r.Context(), a); err != nil {
		writeServiceError(w, err, "Failed to create alert rule")
		return
	}

	utils.WriteSuccess(w, http.StatusCreated, toRuleDTO(a))
}

// Update applies partial updates to an alert rule
// @Summary Update alert rule
// @Tags Alerts
// @Accept json
// @Produce json
// @Param id path string true "Rule ID"
// @Param request body dto.UpdateAlertRuleRequest true "Fields to update"
// @Success 200 {object} utils.SuccessResponse{data=dto.AlertRuleDTO}
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /alerts/{id} [patch]
func (h *AlertRuleHandler) Update(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantID(r)
	id := chi.URLParam(r, "id")

	var req dto.UpdateAlertRuleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.WriteError(w, errors.BadRequest("Invalid request body"))
		return
	}

	if verrs := h.validator.Validate(req); len(verrs) > 0 {
		utils.WriteError(w, errors.ValidationError("Validation failed", verrs))
		return
	}

	updates := make(map[string]interface{})
	if req.Name != nil {
		updates["name"] = *req.Name
	}
	if req.Metric != nil {
		updates["metric"] = *req.Metric
	}
	if req.Operator != nil {
		updates["operator"] = *req.Operator
	}
	if req.Threshold != nil {
		updates["threshold"] = *req.Threshold
	}
	if req.CooldownSeconds != nil {
		updates["cooldown_seconds"] = *req.CooldownSeconds
	}
	if req.Enabled != nil {
		updates["enabled"] = *req.Enabled
	}

	a, err := h.service.Update(r.Context(), tenantID, id, updates)
	if err != nil {
		writeServiceError(w, err, "Failed to update alert rule")
		return
	}

	utils.WriteSuccess(w, http.StatusOK, toRuleDTO(a))
}

// Delete deletes an alert rule
// @Summary Delete alert rule
// @Tags Alerts
// @Param id path string true "Rule ID"
// @Success 200 {object} utils.SuccessResponse
// @Failure 404 {object} utils.ErrorResponse
// @Security BearerAuth
// @Router /alerts/{id} [delete]
func (h *AlertRuleHandler) Delete(w http.ResponseWriter, r *http.Request) {
	tenantID, _ := middleware.GetTenantID(r)
	id := chi.URLParam(r, "id")

	if err := h.service.Delete(r.Context(), tenantID, id); err != nil {
		writeServiceError(w, err, "Failed to delete alert rule")
		return
	}

	utils.WriteSuccessWithMessage(w, http.StatusOK, "Alert rule deleted", nil)
}

func toRuleDTO(a *rule.AlertRule) dto.AlertRuleDTO {
	return dto.AlertRuleDTO{
		ID:              a.ID,
		Name:            a.Name,
		Metric:          string(a.Metric),
		Operator:        string(a.Operator),
		Threshold:       a.Threshold,
		CooldownSeconds: a.CooldownSeconds,
		Enabled:         a.Enabled,
		CreatedAt:       a.CreatedAt,
	}
}
