package handlers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"go.uber.org/zap"

	"github.com/avc/ecocart-rewards/internal/domain"
	"github.com/avc/ecocart-rewards/internal/service"
)

// EventService определяет операции обработки пользовательских событий.
type EventService interface {
	DailyLogin(ctx context.Context) (*domain.CoinTransaction, error)
	CartItemAdded(ctx context.Context, event domain.CartEvent) (int, error)
	AnalysisCompleted(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisOutcome, error)
	QuizCompleted(ctx context.Context, event domain.QuizEvent) (int, error)
	FeedbackSubmitted(ctx context.Context, event domain.FeedbackEvent) (int, error)
	ProfileCompleted(ctx context.Context) (bool, error)
}

type EventsHandler struct {
	eventService EventService
	logger       *zap.Logger
}

func NewEventsHandler(eventService EventService, logger *zap.Logger) *EventsHandler {
	return &EventsHandler{
		eventService: eventService,
		logger:       logger,
	}
}

type dailyLoginResponse struct {
	Awarded     bool                    `json:"awarded"`
	Transaction *domain.CoinTransaction `json:"transaction,omitempty"`
}

// DailyLogin начисляет ежедневный бонус. Повторный вызов в тот же день
// возвращает awarded=false без начисления.
func (h *EventsHandler) DailyLogin(w http.ResponseWriter, r *http.Request) {
	tx, err := h.eventService.DailyLogin(r.Context())
	if err != nil {
		h.logger.Error("failed to process daily login", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, dailyLoginResponse{Awarded: tx != nil, Transaction: tx})
}

type coinsAwardedResponse struct {
	CoinsAwarded int `json:"coins_awarded"`
}

func (h *EventsHandler) CartItemAdded(w http.ResponseWriter, r *http.Request) {
	var event domain.CartEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	coins, err := h.eventService.CartItemAdded(r.Context(), event)
	if err != nil {
		h.logger.Error("failed to process cart event", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, coinsAwardedResponse{CoinsAwarded: coins})
}

func (h *EventsHandler) AnalysisCompleted(w http.ResponseWriter, r *http.Request) {
	var req domain.AnalysisRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	outcome, err := h.eventService.AnalysisCompleted(r.Context(), req)
	if err != nil {
		if errors.Is(err, service.ErrEmptyAnalysisRequest) {
			http.Error(w, "Bad Request", http.StatusBadRequest)
			return
		}
		h.logger.Error("failed to process analysis event", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, outcome)
}

func (h *EventsHandler) QuizCompleted(w http.ResponseWriter, r *http.Request) {
	var event domain.QuizEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	coins, err := h.eventService.QuizCompleted(r.Context(), event)
	if err != nil {
		if errors.Is(err, service.ErrInvalidQuizResult) {
			http.Error(w, "Unprocessable Entity", http.StatusUnprocessableEntity)
			return
		}
		h.logger.Error("failed to process quiz event", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, coinsAwardedResponse{CoinsAwarded: coins})
}

func (h *EventsHandler) FeedbackSubmitted(w http.ResponseWriter, r *http.Request) {
	var event domain.FeedbackEvent
	if err := json.NewDecoder(r.Body).Decode(&event); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	coins, err := h.eventService.FeedbackSubmitted(r.Context(), event)
	if err != nil {
		h.logger.Error("failed to process feedback event", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, coinsAwardedResponse{CoinsAwarded: coins})
}

type profileCompletedResponse struct {
	Unlocked bool `json:"unlocked"`
}

// ProfileCompleted фиксирует первичное заполнение эко-интересов.
// Достижение одноразовое, повторные вызовы возвращают unlocked=false.
func (h *EventsHandler) ProfileCompleted(w http.ResponseWriter, r *http.Request) {
	unlocked, err := h.eventService.ProfileCompleted(r.Context())
	if err != nil {
		h.logger.Error("failed to process profile completion", zap.Error(err))
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	h.writeJSON(w, profileCompletedResponse{Unlocked: unlocked})
}

func (h *EventsHandler) writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		h.logger.Error("failed to encode response", zap.Error(err))
	}
}
