package database

import (
	"context"
	"strings"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// execRecorder captures every statement RunSchema issues
type execRecorder struct {
	sqls []string
}

func (e *execRecorder) Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error) {
	e.sqls = append(e.sqls, sql)
	return pgconn.CommandTag{}, nil
}

func (e *execRecorder) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	return nil, nil
}

func (e *execRecorder) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	return nil
}

func (e *execRecorder) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, nil
}

func (e *execRecorder) Ping(ctx context.Context) error { return nil }

func (e *execRecorder) Close() {}

func TestRunSchemaIssuesAllStatements(t *testing.T) {
	db := &execRecorder{}

	err := RunSchema(context.Background(), db, zap.NewNop())
	require.NoError(t, err)
	assert.Len(t, db.sqls, len(schemaStatements))

	joined := strings.Join(db.sqls, "\n")
	assert.Contains(t, joined, "row_count INTEGER NOT NULL CHECK (row_count > 0)")
}

// Fully reserved PostgreSQL key words: unusable as unquoted column names.
var reservedIdentifiers = map[string]struct{}{
	"all": {}, "analyse": {}, "analyze": {}, "and": {}, "any": {}, "array": {},
	"as": {}, "asc": {}, "both": {}, "case": {}, "cast": {}, "collate": {},
	"column": {}, "constraint": {}, "create": {}, "default": {}, "desc": {},
	"distinct": {}, "do": {}, "else": {}, "end": {}, "except": {}, "fetch": {},
	"for": {}, "from": {}, "grant": {}, "group": {}, "having": {}, "in": {},
	"intersect": {}, "into": {}, "lateral": {}, "leading": {}, "limit": {},
	"localtime": {}, "not": {}, "null": {}, "offset": {}, "on": {}, "only": {},
	"or": {}, "order": {}, "placing": {}, "returning": {}, "row": {}, "rows": {},
	"select": {}, "some": {}, "table": {}, "then": {}, "to": {}, "trailing": {},
	"union": {}, "user": {}, "using": {}, "variadic": {}, "when": {}, "where": {},
	"window": {}, "with": {},
}

// constraint clauses that may open a column-definition line
func isConstraintClause(word string) bool {
	switch word {
	case "unique", "check", "primary", "foreign", "constraint":
		return true
	}
	return false
}

func TestSchemaColumnNamesAreNotReserved(t *testing.T) {
	for _, stmt := range schemaStatements {
		for _, line := range strings.Split(stmt, "\n") {
			line = strings.TrimSpace(line)
			if line == "" || strings.HasPrefix(line, "CREATE TABLE") || strings.HasPrefix(line, ")") {
				continue
			}

			column := strings.ToLower(strings.TrimSuffix(strings.Fields(line)[0], ","))
			if isConstraintClause(column) {
				continue
			}

			_, reserved := reservedIdentifiers[column]
			assert.Falsef(t, reserved, "column %q needs quoting or renaming", column)
		}
	}
}
