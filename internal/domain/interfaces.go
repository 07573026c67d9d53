package domain

import "context"

// SnapshotStore определяет методы долговременного key-value хранилища снимков.
// Load возвращает ErrSnapshotNotFound, если снимок отсутствует.
type SnapshotStore interface {
	Save(ctx context.Context, key string, value []byte) error
	Load(ctx context.Context, key string) ([]byte, error)
}

// ListingRepository определяет методы для работы с объявлениями маркетплейса
type ListingRepository interface {
	CreateListing(ctx context.Context, listing *MarketplaceListing) error
	GetListingByID(ctx context.Context, id string) (*MarketplaceListing, error)
	GetListings(ctx context.Context) ([]*MarketplaceListing, error)
	UpdateListingStatus(ctx context.Context, id string, status MarketplaceListingStatus) error
}

// PackageRepository определяет методы для работы с возвратной упаковкой
type PackageRepository interface {
	GetPackageByID(ctx context.Context, id string) (*ReturnablePackage, error)
	GetPackages(ctx context.Context) ([]*ReturnablePackage, error)
	GetInitiatedReturns(ctx context.Context) ([]*ReturnablePackage, error)
	InitiateReturn(ctx context.Context, id string, condition PackageCondition) error
	SettleReturn(ctx context.Context, id string, status ReturnPackageStatus, assessed PackageCondition, rewardCoins int) error
}

// AnalysisClient определяет методы взаимодействия с AI-сервисом анализа
type AnalysisClient interface {
	AnalyzeProduct(ctx context.Context, req AnalysisRequest) (*AnalysisResult, error)
}

// NotificationSink принимает пользовательские уведомления (fire-and-forget).
// coinRelated продлевает время жизни уведомления.
type NotificationSink interface {
	Notify(message string, severity AlertSeverity, coinRelated bool)
}

// EventDispatcher определяет операции обработки доменных событий.
// Каждая операция — одна атомарная оркестровка: начисление, счетчики,
// серия дней, проверка порогов достижений.
type EventDispatcher interface {
	DailyLogin(ctx context.Context) (*CoinTransaction, error)
	CartItemAdded(ctx context.Context, event CartEvent) (int, error)
	AnalysisCompleted(ctx context.Context, req AnalysisRequest) (*AnalysisOutcome, error)
	QuizCompleted(ctx context.Context, event QuizEvent) (int, error)
	FeedbackSubmitted(ctx context.Context, event FeedbackEvent) (int, error)
	ProfileCompleted(ctx context.Context) (bool, error)
	CreateListing(ctx context.Context, event ListingEvent) (*MarketplaceListing, error)
	PurchaseListing(ctx context.Context, listingID string) (*MarketplaceListing, error)
	MarkListingSold(ctx context.Context, listingID string) (*MarketplaceListing, error)
	Listings(ctx context.Context) ([]*MarketplaceListing, error)
	RedeemReward(ctx context.Context, rewardID string) (*CoinReward, error)
	InitiateReturn(ctx context.Context, packageID string, condition PackageCondition) (*ReturnablePackage, error)
	ProcessReturn(ctx context.Context, packageID string) (*ReturnablePackage, error)
	Packages(ctx context.Context) ([]*ReturnablePackage, error)
}

// WalletReader определяет методы чтения состояния кошелька
type WalletReader interface {
	Wallet(ctx context.Context) *WalletView
	Transactions(ctx context.Context) []CoinTransaction
	Achievements(ctx context.Context) []string
	Rewards(ctx context.Context) []CoinReward
}
