package db

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWithinTx_CommitsOnSuccess(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	uow := NewSQLiteUnitOfWork(database)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		_, err := tx.ExecContext(ctx,
			`INSERT INTO custom_day_types (key, label) VALUES ('gym_day', 'Gym Day')`)
		return err
	})
	require.NoError(t, err)

	var label string
	require.NoError(t, database.QueryRow(
		`SELECT label FROM custom_day_types WHERE key = 'gym_day'`).Scan(&label))
	assert.Equal(t, "Gym Day", label)
}

func TestWithinTx_RollsBackOnError(t *testing.T) {
	database, err := Open(":memory:")
	require.NoError(t, err)
	defer database.Close()

	boom := errors.New("boom")
	uow := NewSQLiteUnitOfWork(database)
	err = uow.WithinTx(context.Background(), func(ctx context.Context, tx DBTX) error {
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO custom_day_types (key, label) VALUES ('gym_day', 'Gym Day')`); err != nil {
			return err
		}
		return boom
	})
	require.ErrorIs(t, err, boom)

	var count int
	require.NoError(t, database.QueryRow(
		`SELECT COUNT(*) FROM custom_day_types`).Scan(&count))
	assert.Equal(t, 0, count, "insert must be rolled back")
}
