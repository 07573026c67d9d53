package domain

import "time"

// TransactionType представляет тип транзакции EcoCoins
type TransactionType string

const (
	TransactionTypeEarned TransactionType = "earned"
	TransactionTypeSpent  TransactionType = "spent"
)

// AlertSeverity представляет важность уведомления
type AlertSeverity string

const (
	AlertSeveritySuccess AlertSeverity = "success"
	AlertSeverityInfo    AlertSeverity = "info"
	AlertSeverityError   AlertSeverity = "error"
)

// MarketplaceListingStatus представляет статус объявления на маркетплейсе
type MarketplaceListingStatus string

const (
	ListingStatusAvailable MarketplaceListingStatus = "AVAILABLE"
	ListingStatusSold      MarketplaceListingStatus = "SOLD"
)

// ReturnPackageStatus представляет статус возвратной упаковки
type ReturnPackageStatus string

const (
	PackageStatusAvailableForReturn ReturnPackageStatus = "AVAILABLE_FOR_RETURN"
	PackageStatusReturnInitiated    ReturnPackageStatus = "RETURN_INITIATED"
	PackageStatusReturnCompleted    ReturnPackageStatus = "RETURN_COMPLETED"
	PackageStatusReturnRejected     ReturnPackageStatus = "RETURN_REJECTED"
)

// PackageCondition представляет состояние возвращаемой упаковки
type PackageCondition string

const (
	ConditionGood            PackageCondition = "GOOD"
	ConditionSlightlyDamaged PackageCondition = "SLIGHTLY_DAMAGED"
	ConditionHeavilyDamaged  PackageCondition = "HEAVILY_DAMAGED"
)

// Имена счетчиков вех. Счетчики монотонно растут, CO2 накапливается дробно.
const (
	CounterProductsAnalyzed     = "productsAnalyzedCount"
	CounterSustainablePurchases = "sustainablePurchasesCount"
	CounterTotalCo2Analyzed     = "totalCo2EstimatedFromAnalysesKg"
	CounterQuizzesCompleted     = "quizzesCompletedCount"
	CounterItemsListed          = "marketplaceItemsListed"
	CounterItemsSold            = "marketplaceItemsSold"
	CounterItemsPurchased       = "marketplaceItemsPurchased"
	CounterPackagesReturned     = "packagesReturnedSuccessfully"
	// Псевдосчетчик: текущая длина серии дней анализа. Подается в таблицу правил
	// диспетчером, в MilestoneState не хранится.
	CounterStreakDays = "analysisStreakDays"
)

// Ключи достижений
const (
	AchievementFirstAnalysis       = "first_analysis"
	AchievementNoviceAnalyzer      = "novice_analyzer"
	AchievementEcoExplorer         = "eco_explorer"
	AchievementCarbonCrusher       = "carbon_crusher"
	AchievementFirstSustainableBuy = "first_ever_sustainable_purchase"
	AchievementFirstQuiz           = "first_quiz_completed"
	AchievementStreak3Days         = "analysis_streak_3_days"
	AchievementStreak7Days         = "analysis_streak_7_days"
	AchievementProfileCompletion   = "profile_completion"
)

// LocalUserID — идентификатор единственного пользователя демо-приложения.
// Система однопользовательская по построению, аутентификации нет.
const LocalUserID = "local-user"

// TransactionContext содержит корреляционные данные транзакции
type TransactionContext struct {
	ProductID       string  `json:"product_id,omitempty"`
	QuizID          string  `json:"quiz_id,omitempty"`
	FeedbackID      string  `json:"feedback_id,omitempty"`
	ListingID       string  `json:"listing_id,omitempty"`
	ReturnPackageID string  `json:"return_package_id,omitempty"`
	AchievementKey  string  `json:"achievement_key,omitempty"`
	AnalyzedCo2Kg   float64 `json:"analyzed_co2_kg,omitempty"`
}

// CoinTransaction представляет неизменяемую запись об операции с EcoCoins
type CoinTransaction struct {
	ID      string              `json:"id"`
	Type    TransactionType     `json:"type"`
	Amount  int                 `json:"amount"`
	Reason  string              `json:"reason"`
	Date    time.Time           `json:"date"`
	Context *TransactionContext `json:"context,omitempty"`
}

// WalletState представляет снимок состояния кошелька для персистентности
type WalletState struct {
	Balance      int               `json:"balance"`
	Transactions []CoinTransaction `json:"transactions"`
}

// MilestoneState представляет снимок счетчиков вех и множества достижений.
// AchievementsUnlocked растет строго монотонно: ключ никогда не удаляется.
type MilestoneState struct {
	Counters             map[string]float64 `json:"counters"`
	AchievementsUnlocked []string           `json:"achievements_unlocked"`
}

// StreakState представляет состояние серии дней с активностью.
// LastActivityDate хранится в формате YYYY-MM-DD, пустая строка — активности не было.
type StreakState struct {
	StreakDays       int    `json:"streak_days"`
	LastActivityDate string `json:"last_activity_date"`
}

// CoinReward представляет награду, доступную для обмена на EcoCoins
type CoinReward struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	Cost        int    `json:"cost"`
}

// Notification представляет пользовательское уведомление с автоистечением
type Notification struct {
	ID        string        `json:"id"`
	Message   string        `json:"message"`
	Severity  AlertSeverity `json:"severity"`
	CreatedAt time.Time     `json:"created_at"`
	ExpiresAt time.Time     `json:"-"`
}

// MarketplaceListing представляет объявление о продаже б/у товара
type MarketplaceListing struct {
	ID                  string                   `json:"id"`
	SellerID            string                   `json:"seller_id"`
	Title               string                   `json:"title"`
	Description         string                   `json:"description"`
	Category            string                   `json:"category"`
	Price               float64                  `json:"price"`
	Status              MarketplaceListingStatus `json:"status"`
	EstimatedCo2SavedKg float64                  `json:"estimated_co2_saved_kg"`
	ListedAt            time.Time                `json:"listed_at"`
}

// ReturnablePackage представляет возвратную упаковку и ее жизненный цикл
type ReturnablePackage struct {
	ID                string              `json:"id"`
	ProductName       string              `json:"product_name"`
	Status            ReturnPackageStatus `json:"status"`
	ReportedCondition PackageCondition    `json:"reported_condition,omitempty"`
	AssessedCondition PackageCondition    `json:"assessed_condition,omitempty"`
	RewardCoins       int                 `json:"reward_coins"`
	DropOffCode       string              `json:"drop_off_code"`
	ReturnBy          *time.Time          `json:"return_by,omitempty"`
	InitiatedAt       *time.Time          `json:"initiated_at,omitempty"`
	ProcessedAt       *time.Time          `json:"processed_at,omitempty"`
}

// AnalysisRequest представляет запрос к AI-сервису анализа продукта
type AnalysisRequest struct {
	Prompt     string `json:"prompt,omitempty"`
	ImageData  string `json:"image_data,omitempty"`
	SourceType string `json:"source_type"` // "url" или "image"
}

// AnalysisResult представляет структурированный ответ AI-сервиса
type AnalysisResult struct {
	ProductName         string  `json:"product_name"`
	Co2FootprintKg      float64 `json:"co2_footprint_kg"`
	SustainabilityScore int     `json:"sustainability_score"`
	SimulatedBarcode    string  `json:"simulated_barcode,omitempty"`
}

// AnalysisOutcome представляет итог обработки события анализа
type AnalysisOutcome struct {
	Result       AnalysisResult `json:"result"`
	CoinsAwarded int            `json:"coins_awarded"`
	StreakDays   int            `json:"streak_days"`
	Degraded     bool           `json:"degraded"` // AI был недоступен, применен локальный фолбэк
}

// CartEvent представляет добавление товара в корзину.
// Если EcoScore не указан (0), рейтинг вычисляется из составляющих продукта.
type CartEvent struct {
	ProductID         string  `json:"product_id"`
	ProductName       string  `json:"product_name"`
	EcoScore          int     `json:"eco_score"`
	CarbonFootprintKg float64 `json:"carbon_footprint_kg,omitempty"`
	DurabilityScore   int     `json:"durability_score,omitempty"`
	PackagingScore    int     `json:"packaging_score,omitempty"`
	HealthImpactScore int     `json:"health_impact_score,omitempty"`
}

// QuizEvent представляет завершение викторины
type QuizEvent struct {
	QuizID         string `json:"quiz_id"`
	Title          string `json:"title"`
	Score          int    `json:"score"`
	TotalQuestions int    `json:"total_questions"`
}

// FeedbackEvent представляет отправку обратной связи
type FeedbackEvent struct {
	FeedbackID string `json:"feedback_id"`
	Category   string `json:"category"`
	Title      string `json:"title"`
}

// ListingEvent представляет создание объявления на маркетплейсе
type ListingEvent struct {
	Title       string  `json:"title"`
	Description string  `json:"description"`
	Category    string  `json:"category"`
	Price       float64 `json:"price"`
}

// WalletView представляет агрегированное состояние кошелька для API
type WalletView struct {
	Balance          int                `json:"balance"`
	StreakDays       int                `json:"streak_days"`
	LastActivityDate string             `json:"last_activity_date,omitempty"`
	Counters         map[string]float64 `json:"counters"`
	Achievements     []string           `json:"achievements"`
	AnalysisHistory  []AnalysisResult   `json:"analysis_history,omitempty"`
}
