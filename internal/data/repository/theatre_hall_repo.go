package repository

import (
	"context"
	"fmt"

	"github.com/Roman28101/theatre-service-api/internal/data/entity"
	"github.com/Roman28101/theatre-service-api/pkg/database"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"go.uber.org/zap"
)

type TheatreHallRepository interface {
	Create(ctx context.Context, hall *entity.TheatreHall) error
	FindByID(ctx context.Context, id uuid.UUID) (*entity.TheatreHall, error)
	FindAll(ctx context.Context) ([]*entity.TheatreHall, error)
}

type theatreHallRepository struct {
	db  database.PgxIface
	log *zap.Logger
}

func NewTheatreHallRepository(db database.PgxIface, log *zap.Logger) TheatreHallRepository {
	return &theatreHallRepository{
		db:  db,
		log: log.With(zap.String("repository", "theatre_hall")),
	}
}

func (r *theatreHallRepository) Create(ctx context.Context, hall *entity.TheatreHall) error {
	query := `
		INSERT INTO theatre_halls (id, name, row_count, seats_in_row, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.Exec(ctx, query,
		hall.ID,
		hall.Name,
		hall.Rows,
		hall.SeatsInRow,
		hall.CreatedAt,
		hall.UpdatedAt,
	)

	if err != nil {
		r.log.Error("Failed to create theatre hall",
			zap.Error(err),
			zap.String("name", hall.Name),
		)
		return fmt.Errorf("failed to create theatre hall: %w", err)
	}

	return nil
}

func (r *theatreHallRepository) FindByID(ctx context.Context, id uuid.UUID) (*entity.TheatreHall, error) {
	query := `
		SELECT id, name, row_count, seats_in_row, created_at, updated_at
		FROM theatre_halls
		WHERE id = $1
	`

	var hall entity.TheatreHall
	err := r.db.QueryRow(ctx, query, id).Scan(
		&hall.ID,
		&hall.Name,
		&hall.Rows,
		&hall.SeatsInRow,
		&hall.CreatedAt,
		&hall.UpdatedAt,
	)

	if err == pgx.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		r.log.Error("Failed to find theatre hall by ID",
			zap.Error(err),
			zap.String("hall_id", id.String()),
		)
		return nil, fmt.Errorf("find theatre hall by id: %w", err)
	}

	return &hall, nil
}

func (r *theatreHallRepository) FindAll(ctx context.Context) ([]*entity.TheatreHall, error) {
	query := `
		SELECT id, name, row_count, seats_in_row, created_at, updated_at
		FROM theatre_halls
		ORDER BY created_at, id
	`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		r.log.Error("Failed to find all theatre halls", zap.Error(err))
		return nil, fmt.Errorf("find theatre halls: %w", err)
	}
	defer rows.Close()

	var halls []*entity.TheatreHall
	for rows.Next() {
		var hall entity.TheatreHall
		err := rows.Scan(
			&hall.ID,
			&hall.Name,
			&hall.Rows,
			&hall.SeatsInRow,
			&hall.CreatedAt,
			&hall.UpdatedAt,
		)
		if err != nil {
			r.log.Error("Failed to scan theatre hall row", zap.Error(err))
			return nil, fmt.Errorf("scan theatre hall row: %w", err)
		}
		halls = append(halls, &hall)
	}

	if err := rows.Err(); err != nil {
		r.log.Error("Rows iteration error", zap.Error(err))
		return nil, fmt.Errorf("iterate theatre hall rows: %w", err)
	}

	return halls, nil
}
