package repository

import (
	"context"
	"fmt"
	"strings"

	"github.com/Roman28101/theatre-service-api/internal/data/entity"
	"github.com/Roman28101/theatre-service-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type PlayRepository interface {
	// CreateWithRelations persists the play and its initial associations in one
	// transaction. Either everything lands or nothing does.
	CreateWithRelations(ctx context.Context, play *entity.Play, actorIDs, genreIDs []uuid.UUID) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.Play, error)
	FindAll(ctx context.Context, actorIDs, genreIDs []uuid.UUID) ([]*entity.Play, error)
}

type playRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewPlayRepository(db database.PgxIface, log *zap.Logger) PlayRepository {
	return &playRepository{
		db:  db,
		log: log.With(zap.String("repository", "play")),
	}
}

func (r *playRepository) CreateWithRelations(ctx context.Context, play *entity.Play, actorIDs, genreIDs []uuid.UUID) error {
	tx, err := r.db.Begin(ctx)
	if err != nil {
		r.log.Error("Failed to begin transaction", zap.Error(err))
		return fmt.Errorf("begin tx: %w", err)
	}
	defer tx.Rollback(ctx)

	query := `
		INSERT INTO plays (id, title, description, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err = tx.Exec(ctx, query,
		play.ID,
		play.Title,
		play.Description,
		play.CreatedAt,
		play.UpdatedAt,
	)
	if err != nil {
		r.log.Error("Failed to create play",
			zap.Error(err),
			zap.String("title", play.Title),
		)
		return fmt.Errorf("failed to create play: %w", err)
	}

	if err := r.insertBridge(ctx, tx, "play_actors", "actor_id", play, actorIDs); err != nil {
		return err
	}
	if err := r.insertBridge(ctx, tx, "play_genres", "genre_id", play, genreIDs); err != nil {
		return err
	}

	if err := tx.Commit(ctx); err != nil {
		r.log.Error("Failed to commit play create",
			zap.Error(err),
			zap.String("play_id", play.ID.String()),
		)
		return fmt.Errorf("commit play create: %w", err)
	}

	return nil
}

// insertBridge batch-inserts association rows inside the create transaction
func (r *playRepository) insertBridge(ctx context.Context, tx pgx.Tx, table, column string, play *entity.Play, ids []uuid.UUID) error {
	if len(ids) == 0 {
		return nil
	}

	query := fmt.Sprintf(`INSERT INTO %s (id, play_id, %s, created_at) VALUES `, table, column)
	args := []interface{}{}

	for i, id := range ids {
		if i > 0 {
			query += ", "
		}
		query += fmt.Sprintf("($%d, $%d, $%d, $%d)", i*4+1, i*4+2, i*4+3, i*4+4)
		args = append(args, uuid.New(), play.ID, id, play.CreatedAt)
	}
	query += " ON CONFLICT DO NOTHING"

	if _, err := tx.Exec(ctx, query, args...); err != nil {
		r.log.Error("Failed to create play relations",
			zap.Error(err),
			zap.String("table", table),
			zap.String("play_id", play.ID.String()),
		)
		return fmt.Errorf("failed to create %s: %w", table, err)
	}

	return nil
}

func (r *playRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.Play, error) {
	query := `
		SELECT id, title, description, created_at, updated_at
		FROM plays
		WHERE id = $1
	`

	var play entity.Play
	err := r.db.QueryRow(ctx, query, id).Scan(
		&play.ID,
		&play.Title,
		&play.Description,
		&play.CreatedAt,
		&play.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find play by ID",
			zap.Error(err),
			zap.String("play_id", id.String()),
		)
		return nil, fmt.Errorf("find play by id: %w", err)
	}

	return &play, nil
}

// FindAll lists plays, optionally narrowed to those having at least one of the
// given actors and at least one of the given genres. Empty slices mean no
// constraint for that relation.
func (r *playRepository) FindAll(ctx context.Context, actorIDs, genreIDs []uuid.UUID) ([]*entity.Play, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(`
		SELECT p.id, p.title, p.description, p.created_at, p.updated_at
		FROM plays p
		WHERE 1=1
	`)

	args := []interface{}{}
	argCount := 1

	if len(actorIDs) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM play_actors pa WHERE pa.play_id = p.id AND pa.actor_id = ANY($%d))", argCount))
		args = append(args, actorIDs)
		argCount++
	}

	if len(genreIDs) > 0 {
		queryBuilder.WriteString(fmt.Sprintf(
			" AND EXISTS (SELECT 1 FROM play_genres pg WHERE pg.play_id = p.id AND pg.genre_id = ANY($%d))", argCount))
		args = append(args, genreIDs)
		argCount++
	}

	queryBuilder.WriteString(" ORDER BY p.created_at, p.id")

	rows, err := r.db.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		r.log.Error("Failed to find plays",
			zap.Error(err),
			zap.Int("actor_ids", len(actorIDs)),
			zap.Int("genre_ids", len(genreIDs)),
		)
		return nil, fmt.Errorf("find plays: %w", err)
	}
	defer rows.Close()

	var plays []*entity.Play
	for rows.Next() {
		var play entity.Play
		err := rows.Scan(
			&play.ID,
			&play.Title,
			&play.Description,
			&play.CreatedAt,
			&play.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan play row", zap.Error(err))
			return nil, fmt.Errorf("scan play row: %w", err)
		}
		plays = append(plays, &play)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate play rows: %w", err)
	}

	r.log.Debug("Plays found", zap.Int("count", len(plays)))

	return plays, nil
}
