package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"

	"github.com/avc/ecocart-rewards/internal/domain"
)

// ListingRepository реализует хранилище объявлений маркетплейса
type ListingRepository struct {
	db DBTX
}

// NewListingRepository создает новый ListingRepository
func NewListingRepository(db DBTX) *ListingRepository {
	return &ListingRepository{db: db}
}

// CreateListing сохраняет новое объявление
func (r *ListingRepository) CreateListing(ctx context.Context, listing *domain.MarketplaceListing) error {
	query := `
		INSERT INTO marketplace_listings
			(id, seller_id, title, description, category, price, status, estimated_co2_saved_kg, listed_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`

	_, err := r.db.Exec(ctx, query,
		listing.ID, listing.SellerID, listing.Title, listing.Description,
		listing.Category, listing.Price, listing.Status, listing.EstimatedCo2SavedKg, listing.ListedAt)
	if err != nil {
		return fmt.Errorf("failed to create listing: %w", err)
	}
	return nil
}

// GetListingByID возвращает объявление по идентификатору
func (r *ListingRepository) GetListingByID(ctx context.Context, id string) (*domain.MarketplaceListing, error) {
	query := `
		SELECT id, seller_id, title, description, category, price, status, estimated_co2_saved_kg, listed_at
		FROM marketplace_listings
		WHERE id = $1`

	var listing domain.MarketplaceListing
	err := r.db.QueryRow(ctx, query, id).Scan(
		&listing.ID, &listing.SellerID, &listing.Title, &listing.Description,
		&listing.Category, &listing.Price, &listing.Status, &listing.EstimatedCo2SavedKg, &listing.ListedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, domain.ErrListingNotFound
		}
		return nil, fmt.Errorf("failed to get listing: %w", err)
	}
	return &listing, nil
}

// GetListings возвращает все объявления, свежие первыми
func (r *ListingRepository) GetListings(ctx context.Context) ([]*domain.MarketplaceListing, error) {
	query := `
		SELECT id, seller_id, title, description, category, price, status, estimated_co2_saved_kg, listed_at
		FROM marketplace_listings
		ORDER BY listed_at DESC`

	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to get listings: %w", err)
	}
	defer rows.Close()

	var listings []*domain.MarketplaceListing
	for rows.Next() {
		var listing domain.MarketplaceListing
		err := rows.Scan(
			&listing.ID, &listing.SellerID, &listing.Title, &listing.Description,
			&listing.Category, &listing.Price, &listing.Status, &listing.EstimatedCo2SavedKg, &listing.ListedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan listing: %w", err)
		}
		listings = append(listings, &listing)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate listings: %w", err)
	}
	return listings, nil
}

// UpdateListingStatus меняет статус объявления
func (r *ListingRepository) UpdateListingStatus(ctx context.Context, id string, status domain.MarketplaceListingStatus) error {
	query := `UPDATE marketplace_listings SET status = $1 WHERE id = $2`

	tag, err := r.db.Exec(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update listing status: %w", err)
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrListingNotFound
	}
	return nil
}
