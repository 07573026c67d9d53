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

// ReturnsService определяет операции жизненного цикла возвратной упаковки.
type ReturnsService interface {
	Packages(ctx context.Context) ([]*domain.ReturnablePackage, error)
	InitiateReturn(ctx context.Context, packageID string, condition domain.PackageCondition) (*domain.ReturnablePackage, error)
	ProcessReturn(ctx context.Context, packageID string) (*domain.ReturnablePackage, error)
}

type ReturnsHandler struct {
	returnsService ReturnsService
	logger         *zap.Logger
}

func NewReturnsHandler(returnsService ReturnsService, logger *zap.Logger) *ReturnsHandler {
	return &ReturnsHandler{
		returnsService: returnsService,
		logger:         logger,
	}
}

func (h *ReturnsHandler) GetPackages(w http.ResponseWriter, r *http.Request) {
	packages, err := h.returnsService.Packages(r.Context())
	if err != nil {
		h.logger.Error("failed to get packages", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	if len(packages) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(packages); err != nil {
		h.logger.Error("failed to encode packages response", zap.Error(err))
	}
}

type initiateReturnRequest struct {
	Condition domain.PackageCondition `json:"condition"`
}

func (h *ReturnsHandler) InitiateReturn(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "id")

	var req initiateReturnRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	pkg, err := h.returnsService.InitiateReturn(r.Context(), packageID, req.Condition)
	if err != nil {
		if errors.Is(err, service.ErrInvalidCondition) {
			http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
			return
		}
		if errors.Is(err, domain.ErrPackageNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrInvalidPackageState) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		h.logger.Error("failed to initiate return", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(pkg); err != nil {
		h.logger.Error("failed to encode package response", zap.Error(err))
	}
}

// ProcessReturn запускает инспекцию возврата немедленно, не дожидаясь
// фонового воркера. Гонка с воркером разрешается на уровне хранилища.
func (h *ReturnsHandler) ProcessReturn(w http.ResponseWriter, r *http.Request) {
	packageID := chi.URLParam(r, "id")

	pkg, err := h.returnsService.ProcessReturn(r.Context(), packageID)
	if err != nil {
		if errors.Is(err, domain.ErrPackageNotFound) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrInvalidPackageState) {
			http.Error(w, "Conflict", http.StatusConflict)
			return
		}
		h.logger.Error("failed to process return", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(pkg); err != nil {
		h.logger.Error("failed to encode package response", zap.Error(err))
	}
}
