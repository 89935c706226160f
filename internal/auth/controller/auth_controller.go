package controller

import (
	"context"
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"katering/internal/api"
	"katering/internal/domain"
	"katering/internal/dto"
	apperrors "katering/internal/errors"
)

type AuthService interface {
	Register(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResponse, error)
	PendingUsers(ctx context.Context) (*dto.UserListResponse, error)
	AllUsers(ctx context.Context) (*dto.UserListResponse, error)
	UpdateUserStatus(ctx context.Context, id uint, status domain.UserStatus) error
	UpdateUserRole(ctx context.Context, id uint, role domain.UserRole) error
	CreateAdmin(ctx context.Context, req dto.RegisterRequest) (*dto.RegisterResponse, error)
}

type Controller struct {
	service AuthService
	logger  *zap.Logger
}

func NewController(service AuthService, logger *zap.Logger) *Controller {
	return &Controller{service: service, logger: logger}
}

func (c *Controller) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.service.Register(r.Context(), req)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusCreated, resp)
}

func (c *Controller) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.service.Login(r.Context(), req)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, resp)
}

func (c *Controller) HandleListPending(w http.ResponseWriter, r *http.Request) {
	resp, err := c.service.PendingUsers(r.Context())
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, resp)
}

func (c *Controller) HandleListAll(w http.ResponseWriter, r *http.Request) {
	resp, err := c.service.AllUsers(r.Context())
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, resp)
}

func (c *Controller) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	var req dto.UpdateUserStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.service.UpdateUserStatus(r.Context(), userID, domain.UserStatus(req.Status)); err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, api.MessageResponse{Message: "Status user berhasil diubah"})
}

func (c *Controller) HandleUpdateRole(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "id")
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	var req dto.UpdateUserRoleRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	if err := c.service.UpdateUserRole(r.Context(), userID, domain.UserRole(req.Role)); err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusOK, api.MessageResponse{Message: "Role user berhasil diubah"})
}

func (c *Controller) HandleCreateAdmin(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		api.WriteValidationError(w, c.logger, "invalid JSON body", apperrors.ValidationDetail{
			Field:   "body",
			Message: "request body must be valid JSON",
		})
		return
	}

	resp, err := c.service.CreateAdmin(r.Context(), req)
	if err != nil {
		api.WriteError(w, c.logger, err)
		return
	}

	api.WriteJSON(w, c.logger, http.StatusCreated, resp)
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
