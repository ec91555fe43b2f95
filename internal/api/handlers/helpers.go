package handlers

import (
	"net/http"

	"github.com/telewatch/telewatch/internal/pkg/errors"
	"github.com/telewatch/telewatch/internal/pkg/utils"
)

// writeServiceError writes an AppError as-is and wraps anything else as an
// internal error so raw driver messages never reach the client.
func writeServiceError(w http.ResponseWriter, err error, fallback string) {
	if appErr, ok := err.(*errors.AppError); ok {
		utils.WriteError(w, appErr)
		return
	}
	utils.WriteError(w, errors.Internal(fallback, err))
}
