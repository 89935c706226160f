package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"go.uber.org/zap"

	"katering/internal/api"
	"katering/internal/auth"
	"katering/internal/domain"
	"katering/internal/dto"
	apperrors "katering/internal/errors"
)

type CreateUseCase interface {
	Create(ctx context.Context, req dto.CreatePesananRequest) (*dto.CreatePesananResponse, error)
}

type UpdateStatusUseCase interface {
	UpdateStatus(ctx context.Context, pesananID uint, target domain.PesananStatus, claims *auth.Claims) error
}

type QueryUseCase interface {
	ListByUser(ctx context.Context, userID uint) (*dto.PesananListResponse, error)
	ListAll(ctx context.Context) (*dto.PesananListResponse, error)
	Detail(ctx context.Context, pesananID uint) (*dto.PesananDetailResponse, error)
	Statistics(ctx context.Context) (*dto.StatisticsResponse, error)
}

type Controller struct {
	create  CreateUseCase
	status  UpdateStatusUseCase
	queries QueryUseCase
	logger  *zap.Logger
}

func NewController(create CreateUseCase, status UpdateStatusUseCase, queries QueryUseCase, logger *zap.Logger) *Controller {
	return &Controller{
		create:  create,
		status:  status,
		queries: queries,
		logger:  logger,
	}
}

func (c *Controller) HandleCreate(w http.ResponseWriter, r *http.Request) {
	traceID := uuid.New().String()
	logger := c.logger.With(zap.String("traceId", traceID))

	var req dto.CreatePesananRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		logger.Warn("invalid JSON body", zap.Error(err))
		api.WriteValidationError(w, logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.create.Create(r.Context(), req)
	if err != nil {
		api.WriteError(w, logger, err)
		return
	}

	api.WriteJSON(w, logger, http.StatusCreated, resp)
}

func (c *Controller) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	pesananID, err := pathID(r, "id")
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	var req dto.UpdateStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	claims := auth.ClaimsFromContext(r.Context())
	target := domain.PesananStatus(req.Status)

	if err := c.status.UpdateStatus(r.Context(), pesananID, target, claims); err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, api.MessageResponse{
		Message: fmt.Sprintf("Status pesanan berhasil diubah menjadi %s", target),
	})
}

func (c *Controller) HandleListByUser(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "user_id")
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	resp, err := c.queries.ListByUser(r.Context(), userID)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, resp)
}

func (c *Controller) HandleListAll(w http.ResponseWriter, r *http.Request) {
	resp, err := c.queries.ListAll(r.Context())
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, resp)
}

func (c *Controller) HandleDetail(w http.ResponseWriter, r *http.Request) {
	pesananID, err := pathID(r, "id")
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	resp, err := c.queries.Detail(r.Context(), pesananID)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, resp)
}

func (c *Controller) HandleStatistics(w http.ResponseWriter, r *http.Request) {
	resp, err := c.queries.Statistics(r.Context())
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, resp)
}

func pathID(r *http.Request, param string) (uint, error) {
	raw := chi.URLParam(r, param)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, apperrors.NewValidationError("invalid "+param, apperrors.ValidationDetail{
			Field:   param,
			Message: param + " must be a positive integer",
		})
	}
	return uint(id), nil
}
