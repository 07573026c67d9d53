package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/avc/ecocart-rewards/internal/domain"
)

var packageTestColumns = []string{
	"id", "product_name", "status", "reported_condition", "assessed_condition",
	"reward_coins", "drop_off_code", "return_by", "initiated_at", "processed_at",
}

func TestPackageRepository_GetPackageByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPackageRepository(mock)
	returnBy := time.Date(2024, time.March, 19, 0, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM returnable_packages").
		WithArgs("pkg-001").
		WillReturnRows(pgxmock.NewRows(packageTestColumns).
			AddRow("pkg-001", "Organic Coffee Beans 1kg", domain.PackageStatusAvailableForReturn,
				nil, nil, 0, "QR-CB-8842", &returnBy, nil, nil))

	pkg, err := repo.GetPackageByID(context.Background(), "pkg-001")

	require.NoError(t, err)
	assert.Equal(t, "Organic Coffee Beans 1kg", pkg.ProductName)
	assert.Equal(t, domain.PackageStatusAvailableForReturn, pkg.Status)
	assert.Empty(t, pkg.ReportedCondition)
	require.NotNil(t, pkg.ReturnBy)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPackageRepository_GetPackageByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPackageRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM returnable_packages").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(packageTestColumns))

	_, err = repo.GetPackageByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrPackageNotFound)
}

func TestPackageRepository_GetInitiatedReturns(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPackageRepository(mock)
	reported := string(domain.ConditionGood)
	initiatedAt := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM returnable_packages").
		WithArgs(domain.PackageStatusReturnInitiated).
		WillReturnRows(pgxmock.NewRows(packageTestColumns).
			AddRow("pkg-001", "Coffee Beans", domain.PackageStatusReturnInitiated,
				&reported, nil, 0, "QR-CB-8842", nil, &initiatedAt, nil))

	packages, err := repo.GetInitiatedReturns(context.Background())

	require.NoError(t, err)
	require.Len(t, packages, 1)
	assert.Equal(t, domain.ConditionGood, packages[0].ReportedCondition)
	require.NotNil(t, packages[0].InitiatedAt)
}

func TestPackageRepository_InitiateReturn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPackageRepository(mock)

	mock.ExpectExec("UPDATE returnable_packages").
		WithArgs(domain.PackageStatusReturnInitiated, domain.ConditionGood,
			"pkg-001", domain.PackageStatusAvailableForReturn).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.InitiateReturn(context.Background(), "pkg-001", domain.ConditionGood)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPackageRepository_InitiateReturn_WrongState(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPackageRepository(mock)

	// Условный UPDATE не находит строку в ожидаемом статусе
	mock.ExpectExec("UPDATE returnable_packages").
		WithArgs(domain.PackageStatusReturnInitiated, domain.ConditionGood,
			"pkg-001", domain.PackageStatusAvailableForReturn).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.InitiateReturn(context.Background(), "pkg-001", domain.ConditionGood)

	assert.ErrorIs(t, err, domain.ErrInvalidPackageState)
}

func TestPackageRepository_SettleReturn(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPackageRepository(mock)

	mock.ExpectExec("UPDATE returnable_packages").
		WithArgs(domain.PackageStatusReturnCompleted, domain.ConditionGood, 30,
			"pkg-001", domain.PackageStatusReturnInitiated).
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.SettleReturn(context.Background(), "pkg-001",
		domain.PackageStatusReturnCompleted, domain.ConditionGood, 30)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestPackageRepository_SettleReturn_WrongState(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewPackageRepository(mock)

	mock.ExpectExec("UPDATE returnable_packages").
		WithArgs(domain.PackageStatusReturnRejected, domain.ConditionHeavilyDamaged, 0,
			"pkg-003", domain.PackageStatusReturnInitiated).
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.SettleReturn(context.Background(), "pkg-003",
		domain.PackageStatusReturnRejected, domain.ConditionHeavilyDamaged, 0)

	assert.ErrorIs(t, err, domain.ErrInvalidPackageState)
}
