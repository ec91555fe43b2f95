package handlers

import (
	"context"
	"database/sql"
	"net/http"
	"time"

	"github.com/telewatch/telewatch/internal/pkg/errors"
	"github.com/telewatch/telewatch/internal/pkg/utils"
)

type HealthHandler struct {
	db *sql.DB
}

func NewHealthHandler(db *sql.DB) *HealthHandler {
	return &HealthHandler{db: db}
}

// Healthz reports process liveness
// @Summary Liveness probe
// @Tags Health
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Router /healthz [get]
func (h *HealthHandler) Healthz(w http.ResponseWriter, r *http.Request) {
	utils.WriteSuccess(w, http.StatusOK, map[string]string{"status": "ok"})
}

// Readyz reports readiness, including database connectivity
// @Summary Readiness probe
// @Tags Health
// @Produce json
// @Success 200 {object} utils.SuccessResponse
// @Failure 503 {object} utils.ErrorResponse
// @Router /readyz [get]
func (h *HealthHandler) Readyz(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
	defer cancel()

	if err := h.db.PingContext(ctx); err != nil {
		utils.WriteError(w, errors.Wrap(err, "SERVICE_UNAVAILABLE", "Database unreachable", http.StatusServiceUnavailable))
		return
	}

	utils.WriteSuccess(w, http.StatusOK, map[string]string{"status": "ready"})
}
