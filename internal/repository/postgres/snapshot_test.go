package postgres

import (
	"context"
	"errors"
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avc/ecocart-rewards/internal/domain"
)

func TestSnapshotRepository_Save(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSnapshotRepository(mock)
	value := []byte(`{"balance":100}`)

	mock.ExpectExec("INSERT INTO snapshots").
		WithArgs("wallet", value).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.Save(context.Background(), "wallet", value)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_Save_Error(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSnapshotRepository(mock)

	mock.ExpectExec("INSERT INTO snapshots").
		WithArgs("wallet", []byte(`{}`)).
		WillReturnError(errors.New("connection refused"))

	err = repo.Save(context.Background(), "wallet", []byte(`{}`))

	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to save snapshot")
}

func TestSnapshotRepository_Load(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSnapshotRepository(mock)
	stored := []byte(`{"streak_days":3}`)

	mock.ExpectQuery("SELECT value FROM snapshots").
		WithArgs("streaks").
		WillReturnRows(pgxmock.NewRows([]string{"value"}).AddRow(stored))

	value, err := repo.Load(context.Background(), "streaks")

	require.NoError(t, err)
	assert.Equal(t, stored, value)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSnapshotRepository_Load_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewSnapshotRepository(mock)

	mock.ExpectQuery("SELECT value FROM snapshots").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows([]string{"value"}))

	_, err = repo.Load(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrSnapshotNotFound)
}
