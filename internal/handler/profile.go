package handler

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/devlinkhq/devlink-api/internal/model"
	"github.com/devlinkhq/devlink-api/internal/payload"
	"github.com/devlinkhq/devlink-api/internal/usecase"
	"github.com/devlinkhq/devlink-api/internal/validation"
)

// ProfileHandler serves profile reads and mutations.
type ProfileHandler struct {
	profileUsecase usecase.ProfileUsecase
	validator      *validation.Validator
	logger         *zerolog.Logger
}

// NewProfileHandler creates a ProfileHandler.
func NewProfileHandler(
	profileUsecase usecase.ProfileUsecase,
	validator *validation.Validator,
	logger *zerolog.Logger,
) *ProfileHandler {
	return &ProfileHandler{
		profileUsecase: profileUsecase,
		validator:      validator,
		logger:         logger,
	}
}

// Me handles GET /api/profile/me.
func (h *ProfileHandler) Me(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "no token, authorization denied")
		return
	}

	profile, err := h.profileUsecase.GetOwn(r.Context(), identity.AccountID)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			respondMessage(w, http.StatusBadRequest, "there is no profile for this user")
			return
		}

		respondServerError(h.logger, w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// Upsert handles POST /api/profile, creating or partially updating the
// authenticated account's profile.
func (h *ProfileHandler) Upsert(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "no token, authorization denied")
		return
	}

	var req payload.UpsertProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := h.validator.Struct(req); fieldErrors != nil {
		respondValidationErrors(w, fieldErrors)
		return
	}

	profile, err := h.profileUsecase.Upsert(r.Context(), identity.AccountID, usecase.UpsertProfileParams{
		Status:         req.Status,
		Skills:         req.Skills,
		Company:        req.Company,
		Location:       req.Location,
		Website:        req.Website,
		Bio:            req.Bio,
		GithubUsername: req.GithubUsername,
		Youtube:        req.Youtube,
		Twitter:        req.Twitter,
		Facebook:       req.Facebook,
		Instagram:      req.Instagram,
		Linkedin:       req.Linkedin,
	})
	if err != nil {
		respondServerError(h.logger, w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// List handles GET /api/profile.
func (h *ProfileHandler) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.profileUsecase.GetAll(r.Context())
	if err != nil {
		respondServerError(h.logger, w, r, err)
		return
	}

	if profiles == nil {
		profiles = []*model.Profile{}
	}

	respondJSON(w, http.StatusOK, profiles)
}

// ByOwner handles GET /api/profile/user/{ownerID}.
func (h *ProfileHandler) ByOwner(w http.ResponseWriter, r *http.Request) {
	ownerID := chi.URLParam(r, "ownerID")

	profile, err := h.profileUsecase.GetByOwner(r.Context(), ownerID)
	if err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			respondMessage(w, http.StatusBadRequest, "profile not found")
			return
		}

		respondServerError(h.logger, w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// Delete handles DELETE /api/profile, removing the profile and then the
// account.
func (h *ProfileHandler) Delete(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "no token, authorization denied")
		return
	}

	if err := h.profileUsecase.DeleteAccount(r.Context(), identity.AccountID); err != nil {
		if errors.Is(err, usecase.ErrProfileNotFound) {
			respondMessage(w, http.StatusBadRequest, "account not found")
			return
		}

		respondServerError(h.logger, w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, payload.MessageResponse{Msg: "user deleted"})
}

// AddExperience handles PUT /api/profile/experience.
func (h *ProfileHandler) AddExperience(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "no token, authorization denied")
		return
	}

	var req payload.ExperienceRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := h.validator.Struct(req); fieldErrors != nil {
		respondValidationErrors(w, fieldErrors)
		return
	}

	profile, err := h.profileUsecase.AddExperience(r.Context(), identity.AccountID, usecase.ExperienceParams{
		Title:       req.Title,
		Company:     req.Company,
		Location:    req.Location,
		From:        req.From,
		To:          req.To,
		Current:     req.Current,
		Description: req.Description,
	})
	if err != nil {
		h.respondProfileMutation(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// RemoveExperience handles DELETE /api/profile/experience/{entryID}. An
// unknown entry id is not an error; the unchanged profile is returned.
func (h *ProfileHandler) RemoveExperience(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "no token, authorization denied")
		return
	}

	profile, err := h.profileUsecase.RemoveExperience(r.Context(), identity.AccountID, chi.URLParam(r, "entryID"))
	if err != nil {
		h.respondProfileMutation(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// AddEducation handles PUT /api/profile/education.
func (h *ProfileHandler) AddEducation(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "no token, authorization denied")
		return
	}

	var req payload.EducationRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if fieldErrors := h.validator.Struct(req); fieldErrors != nil {
		respondValidationErrors(w, fieldErrors)
		return
	}

	profile, err := h.profileUsecase.AddEducation(r.Context(), identity.AccountID, usecase.EducationParams{
		School:       req.School,
		Degree:       req.Degree,
		FieldOfStudy: req.FieldOfStudy,
		From:         req.From,
		To:           req.To,
		Current:      req.Current,
		Description:  req.Description,
	})
	if err != nil {
		h.respondProfileMutation(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

// RemoveEducation handles DELETE /api/profile/education/{entryID}.
func (h *ProfileHandler) RemoveEducation(w http.ResponseWriter, r *http.Request) {
	identity, ok := IdentityFromContext(r.Context())
	if !ok {
		respondError(w, http.StatusUnauthorized, "no token, authorization denied")
		return
	}

	profile, err := h.profileUsecase.RemoveEducation(r.Context(), identity.AccountID, chi.URLParam(r, "entryID"))
	if err != nil {
		h.respondProfileMutation(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, profile)
}

func (h *ProfileHandler) respondProfileMutation(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, usecase.ErrProfileNotFound) {
		respondMessage(w, http.StatusBadRequest, "there is no profile for this user")
		return
	}

	respondServerError(h.logger, w, r, err)
}
