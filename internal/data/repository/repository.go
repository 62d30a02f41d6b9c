package repository

import (
	"github.com/Roman28101/theatre-service-api/pkg/database"

	"go.uber.org/zap"
)

type Repository struct {
	User        UserRepository
	Session     SessionRepository
	Actor       ActorRepository
	Genre       GenreRepository
	TheatreHall TheatreHallRepository
	Play        PlayRepository
	PlayActor   PlayActorRepository
	PlayGenre   PlayGenreRepository
}

func NewRepository(db database.PgxIface, log *zap.Logger) *Repository {
	return &Repository{
		User:        NewUserRepository(db, log),
		Session:     NewSessionRepository(db, log),
		Actor:       NewActorRepository(db, log),
		Genre:       NewGenreRepository(db, log),
		TheatreHall: NewTheatreHallRepository(db, log),
		Play:        NewPlayRepository(db, log),
		PlayActor:   NewPlayActorRepository(db, log),
		PlayGenre:   NewPlayGenreRepository(db, log),
	}
}
