package wire

import (
	"github.com/Roman28101/theatre-service-api/internal/adaptor"
	"github.com/Roman28101/theatre-service-api/internal/data/repository"
	"github.com/Roman28101/theatre-service-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireGenre(
	r chi.Router,
	genreHandler *adaptor.GenreHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/genres", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/", genreHandler.GetGenres)
		r.With(middleware.Staff(log)).Post("/", genreHandler.CreateGenre)
	})
}
