package repository

import (
	"context"
	"fmt"

	"github.com/Roman28101/theatre-service-api/internal/data/entity"
	"github.com/Roman28101/theatre-service-api/pkg/database"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type PlayGenreRepository interface {
	// Add links a genre to a play. Adding an existing link is a no-op.
	Add(ctx context.Context, playGenre *entity.PlayGenre) error
	FindByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.PlayGenre, error)
}

type playGenreRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlayGenreRepository(db database.PgxIface, log *zap.Logger) PlayGenreRepository {
	return &playGenreRepository{
		db:  db,
		log: log.With(zap.String("repository", "play_genre")),
	}
}

func (r *playGenreRepository) Add(ctx context.Context, playGenre *entity.PlayGenre) error {
	query := `
		INSERT INTO play_genres (id, play_id, genre_id, created_at)
		VALUES ($1, $2, $3, $4)
		ON CONFLICT DO NOTHING
	`

	_, err := r.db.Exec(ctx, query,
		playGenre.ID,
		playGenre.PlayID,
		playGenre.GenreID,
		playGenre.CreatedAt,
	)

	if err != nil {
		r.log.Error("Failed to add play_genre",
			zap.Error(err),
			zap.String("play_id", playGenre.PlayID.String()),
			zap.String("genre_id", playGenre.GenreID.String()),
		)
		return fmt.Errorf("failed to add play_genre: %w", err)
	}

	return nil
}

func (r *playGenreRepository) FindByPlayID(ctx context.Context, playID uuid.UUID) ([]*entity.PlayGenre, error) {
	query := `SELECT id, play_id, genre_id, created_at FROM play_genres WHERE play_id = $1`

	rows, err := r.db.Query(ctx, query, playID)
	if err != nil {
		r.log.Error("Failed to find play_genres by play ID",
			zap.Error(err),
			zap.String("play_id", playID.String()),
		)
		return nil, fmt.Errorf("failed to find play_genres: %w", err)
	}
	defer rows.Close()

	var playGenres []*entity.PlayGenre
	for rows.Next() {
		var pg entity.PlayGenre
		err := rows.Scan(
			&pg.ID,
			&pg.PlayID,
			&pg.GenreID,
			&pg.CreatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan play_genre row", zap.Error(err))
			return nil, fmt.Errorf("failed to scan play_genre: %w", err)
		}
		playGenres = append(playGenres, &pg)
	}

	return playGenres, nil
}
