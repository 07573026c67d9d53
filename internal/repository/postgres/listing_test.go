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

var listingColumns = []string{
	"id", "seller_id", "title", "description", "category",
	"price", "status", "estimated_co2_saved_kg", "listed_at",
}

func TestListingRepository_CreateListing(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepository(mock)
	listing := &domain.MarketplaceListing{
		ID:                  "mp-item-1",
		SellerID:            domain.LocalUserID,
		Title:               "Used Blender",
		Description:         "Works great",
		Category:            "kitchen",
		Price:               25,
		Status:              domain.ListingStatusAvailable,
		EstimatedCo2SavedKg: 2.5,
		ListedAt:            time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC),
	}

	mock.ExpectExec("INSERT INTO marketplace_listings").
		WithArgs(listing.ID, listing.SellerID, listing.Title, listing.Description,
			listing.Category, listing.Price, listing.Status, listing.EstimatedCo2SavedKg, listing.ListedAt).
		WillReturnResult(pgxmock.NewResult("INSERT", 1))

	err = repo.CreateListing(context.Background(), listing)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_GetListingByID(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepository(mock)
	listedAt := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM marketplace_listings").
		WithArgs("mp-item-1").
		WillReturnRows(pgxmock.NewRows(listingColumns).
			AddRow("mp-item-1", "seed-seller-1", "Refurbished Coffee Grinder", "Fully serviced", "kitchen",
				35.0, domain.ListingStatusAvailable, 2.5, listedAt))

	listing, err := repo.GetListingByID(context.Background(), "mp-item-1")

	require.NoError(t, err)
	assert.Equal(t, "Refurbished Coffee Grinder", listing.Title)
	assert.Equal(t, domain.ListingStatusAvailable, listing.Status)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_GetListingByID_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepository(mock)

	mock.ExpectQuery("SELECT (.+) FROM marketplace_listings").
		WithArgs("missing").
		WillReturnRows(pgxmock.NewRows(listingColumns))

	_, err = repo.GetListingByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}

func TestListingRepository_GetListings(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepository(mock)
	listedAt := time.Date(2024, time.March, 5, 12, 0, 0, 0, time.UTC)

	mock.ExpectQuery("SELECT (.+) FROM marketplace_listings").
		WillReturnRows(pgxmock.NewRows(listingColumns).
			AddRow("mp-item-1", "seed-seller-1", "Grinder", "", "kitchen", 35.0, domain.ListingStatusAvailable, 2.5, listedAt).
			AddRow("mp-item-2", "seed-seller-2", "Tote Bags", "", "accessories", 12.0, domain.ListingStatusSold, 2.5, listedAt))

	listings, err := repo.GetListings(context.Background())

	require.NoError(t, err)
	require.Len(t, listings, 2)
	assert.Equal(t, "mp-item-1", listings[0].ID)
	assert.Equal(t, domain.ListingStatusSold, listings[1].Status)
}

func TestListingRepository_UpdateListingStatus(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepository(mock)

	mock.ExpectExec("UPDATE marketplace_listings").
		WithArgs(domain.ListingStatusSold, "mp-item-1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	err = repo.UpdateListingStatus(context.Background(), "mp-item-1", domain.ListingStatusSold)

	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListingRepository_UpdateListingStatus_NotFound(t *testing.T) {
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	defer mock.Close()

	repo := NewListingRepository(mock)

	mock.ExpectExec("UPDATE marketplace_listings").
		WithArgs(domain.ListingStatusSold, "missing").
		WillReturnResult(pgxmock.NewResult("UPDATE", 0))

	err = repo.UpdateListingStatus(context.Background(), "missing", domain.ListingStatusSold)

	assert.ErrorIs(t, err, domain.ErrListingNotFound)
}
