package app

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/zap"

	"github.com/avc/ecocart-rewards/internal/config"
	"github.com/avc/ecocart-rewards/internal/domain"
	"github.com/avc/ecocart-rewards/internal/handlers"
	"github.com/avc/ecocart-rewards/internal/repository/postgres"
	"github.com/avc/ecocart-rewards/internal/service"
	"github.com/avc/ecocart-rewards/internal/worker"
)

// repositories содержит все репозитории приложения
type repositories struct {
	snapshots domain.SnapshotStore
	listings  domain.ListingRepository
	packages  domain.PackageRepository
}

// services содержит все сервисы приложения
type services struct {
	notifier     *service.Notifier
	ledger       *service.Ledger
	achievements *service.AchievementTracker
	streaks      *service.StreakTracker
	dispatcher   *service.Dispatcher
}

// handlerSet содержит все хендлеры приложения
type handlerSet struct {
	events        *handlers.EventsHandler
	wallet        *handlers.WalletHandler
	marketplace   *handlers.MarketplaceHandler
	returns       *handlers.ReturnsHandler
	notifications *handlers.NotificationsHandler
	health        *handlers.HealthHandler
}

// dependencies содержит все зависимости приложения
type dependencies struct {
	repos      *repositories
	services   *services
	handlers   *handlerSet
	workerPool *worker.Pool
}

// initDependencies создает все зависимости приложения и восстанавливает
// состояние кошелька, вех и серии дней из снимков
func initDependencies(ctx context.Context, cfg *config.Config, dbPool *pgxpool.Pool, logger *zap.Logger) (*dependencies, error) {
	// Создание репозиториев
	repos := &repositories{
		snapshots: postgres.NewSnapshotRepository(dbPool),
		listings:  postgres.NewListingRepository(dbPool),
		packages:  postgres.NewPackageRepository(dbPool),
	}

	// Создание сервисов
	notifier := service.NewNotifier()
	ledger := service.NewLedger(cfg.Rewards.InitialBalance, repos.snapshots, notifier, logger)
	achievements := service.NewAchievementTracker(service.DefaultAchievementRules(), ledger, repos.snapshots, logger)
	streaks := service.NewStreakTracker(repos.snapshots, logger)

	// Восстановление состояния из снимков
	if err := ledger.Restore(ctx); err != nil {
		return nil, fmt.Errorf("failed to restore wallet state: %w", err)
	}
	if err := achievements.Restore(ctx); err != nil {
		return nil, fmt.Errorf("failed to restore milestone state: %w", err)
	}
	if err := streaks.Restore(ctx); err != nil {
		return nil, fmt.Errorf("failed to restore streak state: %w", err)
	}

	// AI-сервис анализа опционален: без адреса диспетчер работает на фолбэках
	var analysisClient domain.AnalysisClient
	if cfg.AnalysisServiceAddress != "" {
		analysisClient = service.NewAnalysisClient(cfg.AnalysisServiceAddress)
	} else {
		logger.Warn("analysis service address is not set, using local fallback analysis")
	}

	dispatcher := service.NewDispatcher(
		ledger,
		achievements,
		streaks,
		notifier,
		analysisClient,
		repos.listings,
		repos.packages,
		cfg.Rewards,
		logger,
	)

	svcs := &services{
		notifier:     notifier,
		ledger:       ledger,
		achievements: achievements,
		streaks:      streaks,
		dispatcher:   dispatcher,
	}

	// Создание handlers
	hdlrs := &handlerSet{
		events:        handlers.NewEventsHandler(dispatcher, logger),
		wallet:        handlers.NewWalletHandler(dispatcher, logger),
		marketplace:   handlers.NewMarketplaceHandler(dispatcher, logger),
		returns:       handlers.NewReturnsHandler(dispatcher, logger),
		notifications: handlers.NewNotificationsHandler(notifier, logger),
		health:        handlers.NewHealthHandler(dbPool, logger),
	}

	// Создание worker pool инспекции возвратов
	workerPool := worker.NewPool(
		cfg.WorkerPoolSize,
		cfg.WorkerQueueSize,
		cfg.WorkerScanInterval,
		repos.packages,
		dispatcher,
		logger,
	)

	return &dependencies{
		repos:      repos,
		services:   svcs,
		handlers:   hdlrs,
		workerPool: workerPool,
	}, nil
}
