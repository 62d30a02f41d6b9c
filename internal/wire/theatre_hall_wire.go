package wire

import (
	"github.com/Roman28101/theatre-service-api/internal/adaptor"
	"github.com/Roman28101/theatre-service-api/internal/data/repository"
	"github.com/Roman28101/theatre-service-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireTheatreHall(
	r chi.Router,
	hallHandler *adaptor.TheatreHallHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	r.Route("/theatre-halls", func(r chi.Router) {
		r.Use(middleware.AuthSession(repo.Session, repo.User, log))

		r.Get("/", hallHandler.GetTheatreHalls)
		r.Get("/{id}", hallHandler.GetTheatreHallByID)
		r.With(middleware.Staff(log)).Post("/", hallHandler.CreateTheatreHall)
	})
}
