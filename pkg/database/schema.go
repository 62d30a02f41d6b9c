package database

import (
	"context"
	"fmt"

	"go.uber.org/zap"
)

// schemaStatements run in dependency order
var schemaStatements = []string{
	createUsersTable,
	createSessionsTable,
	createActorsTable,
	createGenresTable,
	createTheatreHallsTable,
	createPlaysTable,
	createPlayActorsTable,
	createPlayGenresTable,
}

// RunSchema applies the idempotent DDL at startup
func RunSchema(ctx context.Context, db PgxIface, log *zap.Logger) error {
	for i, stmt := range schemaStatements {
		if _, err := db.Exec(ctx, stmt); err != nil {
			return fmt.Errorf("schema statement %d: %w", i+1, err)
		}
	}

	log.Info("Database schema ready", zap.Int("statements", len(schemaStatements)))
	return nil
}

const createUsersTable = `
CREATE TABLE IF NOT EXISTS users (
    id UUID PRIMARY KEY,
    email VARCHAR(255) UNIQUE NOT NULL,
    password VARCHAR(255) NOT NULL,
    is_staff BOOLEAN NOT NULL DEFAULT FALSE,
    is_active BOOLEAN NOT NULL DEFAULT TRUE,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createSessionsTable = `
CREATE TABLE IF NOT EXISTS sessions (
    id UUID PRIMARY KEY,
    user_id UUID NOT NULL REFERENCES users(id),
    token UUID UNIQUE NOT NULL,
    expires_at TIMESTAMPTZ NOT NULL,
    revoked_at TIMESTAMPTZ,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createActorsTable = `
CREATE TABLE IF NOT EXISTS actors (
    id UUID PRIMARY KEY,
    first_name VARCHAR(100) NOT NULL,
    last_name VARCHAR(100) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createGenresTable = `
CREATE TABLE IF NOT EXISTS genres (
    id UUID PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createTheatreHallsTable = `
CREATE TABLE IF NOT EXISTS theatre_halls (
    id UUID PRIMARY KEY,
    name VARCHAR(255) NOT NULL,
    row_count INTEGER NOT NULL CHECK (row_count > 0),
    seats_in_row INTEGER NOT NULL CHECK (seats_in_row > 0),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createPlaysTable = `
CREATE TABLE IF NOT EXISTS plays (
    id UUID PRIMARY KEY,
    title VARCHAR(255) NOT NULL,
    description TEXT NOT NULL,
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
);`

const createPlayActorsTable = `
CREATE TABLE IF NOT EXISTS play_actors (
    id UUID PRIMARY KEY,
    play_id UUID NOT NULL REFERENCES plays(id),
    actor_id UUID NOT NULL REFERENCES actors(id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (play_id, actor_id)
);`

const createPlayGenresTable = `
CREATE TABLE IF NOT EXISTS play_genres (
    id UUID PRIMARY KEY,
    play_id UUID NOT NULL REFERENCES plays(id),
    genre_id UUID NOT NULL REFERENCES genres(id),
    created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
    UNIQUE (play_id, genre_id)
);`
