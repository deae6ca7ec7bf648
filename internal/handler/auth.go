package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/devlinkhq/devlink-api/internal/payload"
	"github.com/devlinkhq/devlink-api/internal/usecase"
	"github.com/devlinkhq/devlink-api/internal/validation"
)

// AuthHandler serves registration, login and the current-identity lookup.
type AuthHandler struct {
	authUsecase usecase.AuthUsecase
	validator   *validation.Validator
	logger      *zerolog.Logger
}

// NewAuthHandler creates an AuthHandler.
func NewAuthHandler(
	authUsecase usecase.AuthUsecase,
	validator *validation.Validator,
	logger *zerolog.Logger,
) *AuthHandler {
	return &AuthHandler{
		authUsecase: authUsecase,
		validator:   validator,
		logger:      logger,
	}
}

// Register handles POST /api/register.
func (h *AuthHandler) Register(w http.ResponseWriter, r *http.Request) {
	var req payload.RegisterRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := h.validator.Struct(req); fieldErrors != nil {
		respondValidationErrors(w, fieldErrors)
		return
	}

	token, err := h.authUsecase.Register(r.Context(), usecase.RegisterParams{
		Name:     req.Name,
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrAccountExists) {
			respondError(w, http.StatusBadRequest, "account already exists")
			return
		}

		respondServerError(h.logger, w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, payload.TokenResponse{Token: token})
}

// Login handles POST /api/login.
func (h *AuthHandler) Login(w http.ResponseWriter, r *http.Request) {
	var req payload.LoginRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := h.validator.Struct(req); fieldErrors != nil {
		respondValidationErrors(w, fieldErrors)
		return
	}

	token, err := h.authUsecase.Login(r.Context(), usecase.LoginParams{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			respondError(w, http.StatusBadRequest, "invalid credentials")
			return
		}

		respondServerError(h.logger, w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, payload.TokenResponse{Token: token})
}

// Identity handles GET /api/identity, returning the authenticated account
// without its password hash.
func (h *AuthHandler) Identity(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "no token, authorization denied")
		return
	}

	user, err := h.authUsecase.CurrentAccount(r.Context(), identity.AccountID)
	if err != nil {
		if errors.Is(err, usecase.ErrAccountNotFound) {
			respondMessage(w, http.StatusNotFound, "account not found")
			return
		}

		respondServerError(h.logger, w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, user)
}
