package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avc/ecocart-rewards/internal/domain"
)

const packageColumns = `id, product_name, status, reported_condition, assessed_condition,
	reward_coins, drop_off_code, return_by, initiated_at, processed_at`

// PackageRepository реализует хранилище возвратной упаковки
type PackageRepository struct {
	db DBTX
}

// NewPackageRepository создает новый PackageRepository
func NewPackageRepository(db DBTX) *PackageRepository {
	return &PackageRepository{db: db}
}

// GetPackageByID возвращает упаковку по идентификатору
func (r *PackageRepository) GetPackageByID(ctx context.Context, id string) (*domain.ReturnablePackage, error) {
	query := `SELECT ` + packageColumns + ` FROM returnable_packages WHERE id = $1`

	pkg, err := scanPackage(r.db.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrPackageNotFound
		}
		return nil, fmt.Errorf("failed to get package: %w", err)
	}
	return pkg, nil
}

// GetPackages возвращает все упаковки
func (r *PackageRepository) GetPackages(ctx context.Context) ([]*domain.ReturnablePackage, error) {
	query := `SELECT ` + packageColumns + ` FROM returnable_packages ORDER BY id`
	return r.queryPackages(ctx, query)
}

// GetInitiatedReturns возвращает упаковки, ожидающие инспекции
func (r *PackageRepository) GetInitiatedReturns(ctx context.Context) ([]*domain.ReturnablePackage, error) {
	query := `SELECT ` + packageColumns + ` FROM returnable_packages WHERE status = $1 ORDER BY initiated_at`
	return r.queryPackages(ctx, query, domain.PackageStatusReturnInitiated)
}

// InitiateReturn переводит упаковку в RETURN_INITIATED.
// Переход защищен условием по текущему статусу: конкурирующая инициация
// одного возврата не проходит.
func (r *PackageRepository) InitiateReturn(ctx context.Context, id string, condition domain.PackageCondition) error {
	query := `
		UPDATE returnable_packages
		SET status = $1, reported_condition = $2, initiated_at = NOW()
		WHERE id = $3 AND status = $4`

	tag, err := r.db.Exec(ctx, query,
		domain.PackageStatusReturnInitiated, condition, id, domain.PackageStatusAvailableForReturn)
	if err != nil {
		return fmt.Errorf("failed to initiate return: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidPackageState
	}
	return nil
}

// SettleReturn завершает возврат: терминальный статус, оценка и награда
func (r *PackageRepository) SettleReturn(ctx context.Context, id string, status domain.ReturnPackageStatus, assessed domain.PackageCondition, rewardCoins int) error {
	query := `
		UPDATE returnable_packages
		SET status = $1, assessed_condition = $2, reward_coins = $3, processed_at = NOW()
		WHERE id = $4 AND status = $5`

	tag, err := r.db.Exec(ctx, query,
		status, assessed, rewardCoins, id, domain.PackageStatusReturnInitiated)
	if err != nil {
		return fmt.Errorf("failed to settle return: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrInvalidPackageState
	}
	return nil
}

func (r *PackageRepository) queryPackages(ctx context.Context, query string, args ...any) ([]*domain.ReturnablePackage, error) {
	rows, err := r.db.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to get packages: %w", err)
	}
	defer rows.Close()

	var packages []*domain.ReturnablePackage
	for rows.Next() {
		pkg, err := scanPackage(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan package: %w", err)
		}
		packages = append(packages, pkg)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate packages: %w", err)
	}
	return packages, nil
}

func scanPackage(row pgx.Row) (*domain.ReturnablePackage, error) {
	var pkg domain.ReturnablePackage
	var reported, assessed *string

	err := row.Scan(
		&pkg.ID, &pkg.ProductName, &pkg.Status, &reported, &assessed,
		&pkg.RewardCoins, &pkg.DropOffCode, &pkg.ReturnBy, &pkg.InitiatedAt, &pkg.ProcessedAt)
	if err != nil {
		return nil, err
	}

	if reported != nil {
		pkg.ReportedCondition = domain.PackageCondition(*reported)
	}
	if assessed != nil {
		pkg.AssessedCondition = domain.PackageCondition(*assessed)
	}
	return &pkg, nil
}
