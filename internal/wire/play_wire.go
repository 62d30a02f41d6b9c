package wire

import (
	"net/http"

	"github.com/Roman28101/theatre-service-api/internal/adaptor"
	"github.com/Roman28101/theatre-service-api/internal/data/repository"
	"github.com/Roman28101/theatre-service-api/pkg/middleware"
	"github.com/Roman28101/theatre-service-api/pkg/utils"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wirePlay(
	r chi.Router,
	playHandler *adaptor.PlayHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/plays", func(r chi.Router) {
		// Reads require an authenticated caller, writes a staff one
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/", playHandler.GetPlays)
		r.Get("/{id}", playHandler.GetPlayByID)
		r.With(middleware.Staff(log)).Post("/", playHandler.CreatePlay)

		// Delete is never wired for plays, no matter the role
		r.Delete("/{id}", func(w http.ResponseWriter, r *http.Request) {
			utils.ResponseMethodNotAllowed(w, "Method not allowed")
		})
	})
}
