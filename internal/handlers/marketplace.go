package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"

	"github.com/avc/ecocart-rewards/internal/domain"
	"github.com/avc/ecocart-rewards/internal/service"
)

// MarketplaceService определяет операции маркетплейса б/у товаров.
type MarketplaceService interface {
	Listings(ctx context.Context) ([]*domain.MarketplaceListing, error)
	CreateListing(ctx context.Context, event domain.ListingEvent) (*domain.MarketplaceListing, error)
	PurchaseListing(ctx context.Context, listingID string) (*domain.MarketplaceListing, error)
	MarkListingSold(ctx context.Context, listingID string) (*domain.MarketplaceListing, error)
}

type MarketplaceHandler struct {
	marketplaceService MarketplaceService
	logger             *zap.Logger
}

func NewMarketplaceHandler(marketplaceService MarketplaceService, logger *zap.Logger) *MarketplaceHandler {
	return &MarketplaceHandler{
		marketplaceService: marketplaceService,
		logger:             logger,
	}
}

func (h *MarketplaceHandler) GetListings(w http.ResponseWriter, r *http.Request) {
	listings, err := h.marketplaceService.Listings(r.Context())
	if err != nil {
		h.logger.Error("failed to get listings", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(listings) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(listings); err != nil {
		h.logger.Error("failed to encode listings response", zap.Error(err))
	}
}

func (h *MarketplaceHandler) CreateListing(w http.ResponseWriter, r *http.Request) {
	var event domain.ListingEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	listing, err := h.marketplaceService.CreateListing(r.Context(), event)
	if err != nil {
		if errors.Is(err, service.ErrInvalidListing) {
			http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("failed to create listing", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusCreated)
	if err := json.NewEncoder(w).Encode(listing); err != nil {
		h.logger.Error("failed to encode listing response", zap.Error(err))
	}
}

func (h *MarketplaceHandler) PurchaseListing(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "id")

	listing, err := h.marketplaceService.PurchaseListing(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrListingNotAvailable) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		if errors.Is(err, domain.ErrOwnListing) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		h.logger.Error("failed to purchase listing", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(listing); err != nil {
		h.logger.Error("failed to encode listing response", zap.Error(err))
	}
}

// MarkSold помечает собственное объявление проданным вне площадки.
// Монеты не начисляются, растет только счетчик продаж.
func (h *MarketplaceHandler) MarkSold(w http.ResponseWriter, r *http.Request) {
	listingID := chi.URLParam(r, "id")

	listing, err := h.marketplaceService.MarkListingSold(r.Context(), listingID)
	if err != nil {
		if errors.Is(err, domain.ErrListingNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrListingNotAvailable) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		if errors.Is(err, domain.ErrNotSellerListing) {
			http.Error(w, "Forbidden", http.StatusForbidden)
			return
		}
		h.logger.Error("failed to mark listing sold", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(listing); err != nil {
		h.logger.Error("failed to encode listing response", zap.Error(err))
	}
}
