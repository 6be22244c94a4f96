package postgres

import (
	"errors"
	"testing"

	sq "github.com/Masterminds/squirrel"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"invtrack/internal/domain/inventory"
)

func TestMapError(t *testing.T) {
	other := errors.New("connection reset")

	tests := []struct {
		name string
		err  error
		want error
	}{
		{name: "nil", err: nil, want: nil},
		{name: "no rows", err: pgx.ErrNoRows, want: inventory.ErrNotFound},
		{name: "unique violation", err: &pgconn.PgError{Code: pgUniqueViolation, ConstraintName: "rooms_name_key"}, want: inventory.ErrInvalidInput},
		{name: "foreign key violation", err: &pgconn.PgError{Code: pgForeignKeyViolation, ConstraintName: "devices_room_id_fkey"}, want: inventory.ErrInvalidInput},
		{name: "other", err: other, want: other},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := mapError(tt.err)
			if tt.want == nil {
				assert.NoError(t, got)
				return
			}
			assert.ErrorIs(t, got, tt.want)
		})
	}
}

func TestQueries(t *testing.T) {
	tests := []struct {
		name     string
		query    sqlizer
		wantSQL  string
		wantArgs []any
	}{
		{
			name:     "devices by ids",
			query:    psql.Select(deviceColumns...).From("devices").Where(sq.Eq{"id": []int{3, 1}}),
			wantSQL:  "SELECT id, name, type, inventory_number, price, status, details, employee_id, room_id FROM devices WHERE id IN ($1,$2)",
			wantArgs: []any{3, 1},
		},
		{
			name: "create room",
			query: psql.Insert("rooms").
				Columns("name", "floor").
				Values("101", 1).
				Suffix("RETURNING id, name, floor"),
			wantSQL:  "INSERT INTO rooms (name,floor) VALUES ($1,$2) RETURNING id, name, floor",
			wantArgs: []any{"101", 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			sql, args, err := tt.query.ToSql()
			require.NoError(t, err)
			assert.Equal(t, tt.wantSQL, sql)
			assert.Equal(t, tt.wantArgs, args)
		})
	}
}
