package app

import (
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"go.uber.org/zap"

	"github.com/avc/ecocart-rewards/internal/handlers"
)

// setupRouter создает и настраивает роутер
func setupRouter(deps *dependencies, logger *zap.Logger) *chi.Mux {
	r := chi.NewRouter()

	// Глобальные middleware
	setupMiddleware(r, logger)

	// Маршруты
	setupRoutes(r, deps)

	return r
}

// setupMiddleware настраивает middleware для роутера
func setupMiddleware(r *chi.Mux, logger *zap.Logger) {
	r.Use(handlers.RequestIDMiddleware())
	r.Use(handlers.LoggingMiddleware(logger))
	r.Use(handlers.RecoveryMiddleware(logger))
	r.Use(middleware.Compress(5))
}

// setupRoutes настраивает маршруты приложения
func setupRoutes(r *chi.Mux, deps *dependencies) {
	// Health check эндпоинты
	r.Get("/health", deps.handlers.health.Health)
	r.Get("/ready", deps.handlers.health.Ready)

	// События
	r.Post("/api/events/login", deps.handlers.events.DailyLogin)
	r.Post("/api/events/cart", deps.handlers.events.CartItemAdded)
	r.Post("/api/events/analysis", deps.handlers.events.AnalysisCompleted)
	r.Post("/api/events/quiz", deps.handlers.events.QuizCompleted)
	r.Post("/api/events/feedback", deps.handlers.events.FeedbackSubmitted)
	r.Post("/api/events/profile", deps.handlers.events.ProfileCompleted)

	// Кошелек и награды
	r.Get("/api/wallet", deps.handlers.wallet.GetWallet)
	r.Get("/api/wallet/transactions", deps.handlers.wallet.GetTransactions)
	r.Get("/api/wallet/achievements", deps.handlers.wallet.GetAchievements)
	r.Post("/api/wallet/redeem", deps.handlers.wallet.Redeem)
	r.Get("/api/rewards", deps.handlers.wallet.GetRewards)

	// Маркетплейс б/у товаров
	r.Get("/api/marketplace/listings", deps.handlers.marketplace.GetListings)
	r.Post("/api/marketplace/listings", deps.handlers.marketplace.CreateListing)
	r.Post("/api/marketplace/listings/{id}/purchase", deps.handlers.marketplace.PurchaseListing)
	r.Post("/api/marketplace/listings/{id}/sold", deps.handlers.marketplace.MarkSold)

	// Возвратная упаковка
	r.Get("/api/returns", deps.handlers.returns.GetPackages)
	r.Post("/api/returns/{id}/initiate", deps.handlers.returns.InitiateReturn)
	r.Post("/api/returns/{id}/process", deps.handlers.returns.ProcessReturn)

	// Уведомления
	r.Get("/api/notifications", deps.handlers.notifications.GetNotifications)
}
