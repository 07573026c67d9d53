package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/avc/ecocart-rewards/internal/domain"
)

// WalletService определяет методы чтения кошелька и обмена наград.
type WalletService interface {
	Wallet(ctx context.Context) *domain.WalletView
	Transactions(ctx context.Context) []domain.CoinTransaction
	Achievements(ctx context.Context) []string
	Rewards(ctx context.Context) []domain.CoinReward
	RedeemReward(ctx context.Context, rewardID string) (*domain.CoinReward, error)
}

type WalletHandler struct {
	walletService WalletService
	logger        *zap.Logger
}

func NewWalletHandler(walletService WalletService, logger *zap.Logger) *WalletHandler {
	return &WalletHandler{
		walletService: walletService,
		logger:        logger,
	}
}

func (h *WalletHandler) GetWallet(w http.ResponseWriter, r *http.Request) {
	wallet := h.walletService.Wallet(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(wallet); err != nil {
		h.logger.Error("failed to encode wallet response", zap.Error(err))
	}
}

func (h *WalletHandler) GetTransactions(w http.ResponseWriter, r *http.Request) {
	transactions := h.walletService.Transactions(r.Context())

	if len(transactions) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(transactions); err != nil {
		h.logger.Error("failed to encode transactions response", zap.Error(err))
	}
}

func (h *WalletHandler) GetAchievements(w http.ResponseWriter, r *http.Request) {
	achievements := h.walletService.Achievements(r.Context())

	if len(achievements) == 0 {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(achievements); err != nil {
		h.logger.Error("failed to encode achievements response", zap.Error(err))
	}
}

func (h *WalletHandler) GetRewards(w http.ResponseWriter, r *http.Request) {
	rewards := h.walletService.Rewards(r.Context())

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(rewards); err != nil {
		h.logger.Error("failed to encode rewards response", zap.Error(err))
	}
}

type redeemRequest struct {
	RewardID string `json:"reward_id"`
}

func (h *WalletHandler) Redeem(w http.ResponseWriter, r *http.Request) {
	var req redeemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	reward, err := h.walletService.RedeemReward(r.Context(), req.RewardID)
	if err != nil {
		if errors.Is(err, domain.ErrUnknownReward) {
			http.Error(w, "Not Found", http.StatusNotFound)
			return
		}
		if errors.Is(err, domain.ErrInsufficientFunds) {
			http.Error(w, "Payment Required", http.StatusPaymentRequired)
			return
		}
		h.logger.Error("failed to redeem reward", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(reward); err != nil {
		h.logger.Error("failed to encode reward response", zap.Error(err))
	}
}
