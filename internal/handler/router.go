package handler

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"

	"github.com/devlinkhq/devlink-api/internal/auth"
)

// NewRouter assembles the full route table. Public reads stay outside the auth
// group; everything that mutates or reveals account-scoped data requires a
// verified token.
func NewRouter(
	logger *zerolog.Logger,
	tokens *auth.TokenService,
	authHandler *AuthHandler,
	profileHandler *ProfileHandler,
	githubHandler *GithubHandler,
) *chi.Mux {
	r := chi.NewRouter()

	r.Use(chimiddleware.RequestID)
	r.Use(chimiddleware.RealIP)
	r.Use(RequestLogger(logger))
	r.Use(chimiddleware.Recoverer)

	r.Route("/api", func(r chi.Router) {
		r.Post("/register", authHandler.Register)
		r.Post("/login", authHandler.Login)
		r.Get("/profile", profileHandler.List)
		r.Get("/profile/user/{ownerID}", profileHandler.ByOwner)
		r.Get("/github/{username}", githubHandler.Repos)

		r.Group(func(r chi.Router) {
			r.Use(RequireAuth(tokens))

			r.Get("/identity", authHandler.Identity)
			r.Get("/profile/me", profileHandler.Me)
			r.Post("/profile", profileHandler.Upsert)
			r.Delete("/profile", profileHandler.Delete)
			r.Put("/profile/experience", profileHandler.AddExperience)
			r.Delete("/profile/experience/{entryID}", profileHandler.RemoveExperience)
			r.Put("/profile/education", profileHandler.AddEducation)
			r.Delete("/profile/education/{entryID}", profileHandler.RemoveEducation)
		})
	})

	return r
}
