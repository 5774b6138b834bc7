package adaptor

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"user-registration/internal/dto/request"
	"user-registration/internal/usecase"
	"user-registration/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

type UserHandler struct {
	service usecase.UserService
	log     *zap.Logger
}

func NewUserHandler(service usecase.UserService, log *zap.Logger) *UserHandler {
	return &UserHandler{
		service: service,
		log:     log,
	}
}

// Signup handles POST /signup
func (h *UserHandler) Signup(w http.ResponseWriter, r *http.Request) {
	var req request.SignupRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseUnprocessable(w, "Invalid request body", nil)
		return
	}
	req.TrimSpace()

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseUnprocessable(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.Signup(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "signup")
		return
	}

	utils.ResponseSuccess(w, user)
}

// Activate handles POST /activate
func (h *UserHandler) Activate(w http.ResponseWriter, r *http.Request) {
	var req request.ActivateRequest

	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		utils.ResponseUnprocessable(w, "Invalid request body", nil)
		return
	}
	req.TrimSpace()

	if validationErrors := utils.ValidateStruct(req); len(validationErrors) > 0 {
		utils.ResponseUnprocessable(w, "Validation failed", validationErrors)
		return
	}

	user, err := h.service.Activate(r.Context(), &req)
	if err != nil {
		h.handleServiceError(w, err, "activate")
		return
	}

	utils.ResponseSuccess(w, user)
}

// GetUser handles GET /users/{id}
func (h *UserHandler) GetUser(w http.ResponseWriter, r *http.Request) {
	user, err := h.service.GetUser(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.handleServiceError(w, err, "get user")
		return
	}

	utils.ResponseSuccess(w, user)
}

// ListUsers handles GET /users?page=1&per_page=10
func (h *UserHandler) ListUsers(w http.ResponseWriter, r *http.Request) {
	query := r.URL.Query()
	req := &request.PaginatedRequest{
		Page:    h.parseInt(query.Get("page"), 1),
		PerPage: h.parseInt(query.Get("per_page"), request.DefaultPerPage),
	}

	users, err := h.service.ListUsers(r.Context(), req)
	if err != nil {
		h.handleServiceError(w, err, "list users")
		return
	}

	utils.ResponseSuccess(w, users)
}

// handleServiceError maps service errors to status codes. Client errors are logged as warnings only.
func (h *UserHandler) handleServiceError(w http.ResponseWriter, err error, operation string) {
	var validationErr *usecase.ValidationError

	switch {
	case errors.As(err, &validationErr):
		h.log.Warn(operation+" validation failed", zap.Error(err))
		utils.ResponseUnprocessable(w, "Validation failed", validationErr.Fields)

	case errors.Is(err, usecase.ErrEmailRegistered):
		h.log.Warn(operation+" failed - email registered", zap.Error(err))
		utils.ResponseBadRequest(w, "Email already registered!")

	case errors.Is(err, usecase.ErrAlreadyActivated):
		h.log.Warn(operation+" failed - already activated", zap.Error(err))
		utils.ResponseBadRequest(w, "User is already activated!")

	case errors.Is(err, usecase.ErrUserNotFound):
		h.log.Warn(operation+" failed - not found", zap.Error(err))
		utils.ResponseNotFound(w, "User not found!")

	default:
		h.log.Error("Failed to "+operation,
			zap.Error(err),
			zap.String("operation", operation))
		utils.ResponseInternalError(w, "Internal server error")
	}
}

// parseInt parses a positive query parameter, falling back to defaultValue
func (h *UserHandler) parseInt(value string, defaultValue int) int {
	if value == "" {
		return defaultValue
	}

	result, err := strconv.Atoi(value)
	if err != nil || result < 1 {
		return defaultValue
	}

	return result
}
