package usecase

import (
	"github.com/Roman28101/theatre-service-api/internal/data/repository"
	"github.com/Roman28101/theatre-service-api/pkg/utils"

	"go.uber.org/zap"
)

type Service struct {
	Auth        AuthService
	User        UserService
	Actor       ActorService
	Genre       GenreService
	TheatreHall TheatreHallService
	Play        PlayService
}

func NewService(repo *repository.Repository, config *utils.Config, log *zap.Logger) *Service {
	return &Service{
		Auth:        NewAuthService(repo, config, log),
		User:        NewUserService(repo.User, log),
		Actor:       NewActorService(repo.Actor, log),
		Genre:       NewGenreService(repo.Genre, log),
		TheatreHall: NewTheatreHallService(repo.TheatreHall, log),
		Play:        NewPlayService(repo, log),
	}
}
