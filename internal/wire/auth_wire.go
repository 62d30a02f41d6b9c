package wire

import (
	"github.com/Roman28101/theatre-service-api/internal/adaptor"
	"github.com/Roman28101/theatre-service-api/internal/data/repository"
	"github.com/Roman28101/theatre-service-api/pkg/middleware"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
)

func wireAuth(
	r chi.Router,
	authHandler *adaptor.AuthHandler,
	repo *repository.Repository,
	log *zap.Logger,
) {
	// Public routes: registration and token exchange
	r.Post("/users", authHandler.Register)
	r.Post("/auth/token", authHandler.IssueToken)

	// Logout needs a valid token to revoke
	r.With(middleware.AuthSession(repo.Session, repo.User, log)).Post("/auth/logout", authHandler.Logout)
}
