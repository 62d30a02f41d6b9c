package repository

import (
	"context"
	"fmt"

	"github.com/Roman28101/theatre-service-api/internal/data/entity"
	"github.com/Roman28101/theatre-service-api/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PlayActorRepository interface {
	// Add links an actor to a play. Adding an existing link is a no-op.
	Add(ctx context.Context, playActor *entity.PlayActor) error
	FindByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.PlayActor, error)
}

type playActorRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlayActorRepository(db database.PgxIface, log *zap.Logger) PlayActorRepository {
	return &playActorRepository{
		db:  db,
		log: log.With(zap.String("repository", "play_actor")),
	}
}

func (r *playActorRepository) Add(ctx context.Context, playActor *entity.PlayActor) error {
	query := `
		INSERT INTO play_actors (id, play_id, actor_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		playActor.ID,
		playActor.PlayID,
		playActor.ActorID,
		playActor.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to add play_actor",
			zap.Error(err),
			zap.String("play_id", playActor.PlayID.String()),
			zap.String("actor_id", playActor.ActorID.String()),
		)
		return fmt.Errorf("failed to add play_actor: %w", err)
	}

	return nil
}

func (r *playActorRepository) FindByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.PlayActor, error) {
	query := `SELECT id, play_id, actor_id, created_at FROM play_actors WHERE play_id = $1`

	rows, err := r.db.Query(ctx, query, playID)
	if err != nil {
		r.log.Error("Failed to find play_actors by play ID",
			zap.Error(err),
			zap.String("play_id", playID.String()),
		)
		return nil, fmt.Errorf("failed to find play_actors: %w", err)
	}
	defer rows.Close()

	var playActors []*entity.PlayActor
	for rows.Next() {
		var pa entity.PlayActor
		err := rows.Scan(
			&pa.ID,
			&pa.PlayID,
			&pa.ActorID,
			&pa.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan play_actor row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan play_actor: %w", err)
		}
		playActors = append(playActors, &pa)
	}

	return playActors, nil
}
