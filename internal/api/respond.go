package api

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	apperrors "katering/internal/errors"
)

type MessageResponse struct {
	Message string `json:"message"`
}

type validationErrorResponse struct {
	Error   string                       `json:"error"`
	Message string                       `json:"message"`
	Details []apperrors.ValidationDetail `json:"details"`
}

func WriteJSON(w http.ResponseWriter, logger *zap.Logger, status int, data interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		logger.Error("failed to encode response", zap.Error(err))
	}
}

func WriteValidationError(w http.ResponseWriter, logger *zap.Logger, message string, details ...apperrors.ValidationDetail) {
	WriteJSON(w, logger, http.StatusBadRequest, validationErrorResponse{
		Error:   "VALIDATION_ERROR",
		Message: message,
		Details: details,
	})
}

// WriteError maps the application error taxonomy to HTTP statuses. Unknown
// errors become a generic 500 so internal detail never reaches clients.
func WriteError(w http.ResponseWriter, logger *zap.Logger, err error) {
	if ve, ok := apperrors.IsValidationError(err); ok {
		WriteValidationError(w, logger, ve.Message, ve.Details...)
		return
	}
	if nf, ok := apperrors.IsNotFoundError(err); ok {
		WriteJSON(w, logger, http.StatusNotFound, MessageResponse{Message: nf.Message})
		return
	}
	if ue, ok := apperrors.IsUnauthorizedError(err); ok {
		WriteJSON(w, logger, http.StatusUnauthorized, MessageResponse{Message: ue.Message})
		return
	}
	if fe, ok := apperrors.IsForbiddenError(err); ok {
		WriteJSON(w, logger, http.StatusForbidden, MessageResponse{Message: fe.Message})
		return
	}
	if ce, ok := apperrors.IsConflictError(err); ok {
		WriteJSON(w, logger, http.StatusConflict, MessageResponse{Message: ce.Message})
		return
	}
	if nc, ok := apperrors.IsNotConfiguredError(err); ok {
		logger.Error("configuration error", zap.Error(nc))
		WriteJSON(w, logger, http.StatusInternalServerError, MessageResponse{Message: nc.Message})
		return
	}
	if uv, ok := apperrors.IsUnavailableError(err); ok {
		logger.Warn("upstream unavailable", zap.Error(uv))
		WriteJSON(w, logger, http.StatusBadGateway, MessageResponse{Message: uv.Message})
		return
	}

	logger.Error("unexpected error", zap.Error(err))
	WriteJSON(w, logger, http.StatusInternalServerError, MessageResponse{Message: "an unexpected error occurred"})
}
