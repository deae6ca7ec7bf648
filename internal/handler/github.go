package handler

import (
	"context"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"

	"github.com/devlinkhq/devlink-api/internal/github"
)

// RepoLister is the subset of the GitHub client consumed here.
type RepoLister interface {
	RecentRepositories(ctx context.Context, username string) ([]github.Repository, error)
}

// GithubHandler relays public repository listings.
type GithubHandler struct {
	repos  RepoLister
	logger *zerolog.Logger
}

// NewGithubHandler creates a GithubHandler.
func NewGithubHandler(repos RepoLister, logger *zerolog.Logger) *GithubHandler {
	return &GithubHandler{
		repos:  repos,
		logger: logger,
	}
}

// Repos handles GET /api/github/{username}.
func (h *GithubHandler) Repos(w http.ResponseWriter, r *http.Request) {
	username := chi.URLParam(r, "username")

	repos, err := h.repos.RecentRepositories(r.Context(), username)
	if err != nil {
		if errors.Is(err, github.ErrUserNotFound) {
			respondMessage(w, http.StatusNotFound, "no github profile found")
			return
		}

		respondServerError(h.logger, w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, repos)
}
