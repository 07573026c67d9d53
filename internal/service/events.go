package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"math/rand"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avc/ecocart-rewards/internal/config"
	"github.com/avc/ecocart-rewards/internal/domain"
	"github.com/avc/ecocart-rewards/internal/utils/ecoscore"
)

const (
	dailyLoginReason = "Daily Login Bonus"

	// maxAnalysisHistory ограничивает недавнюю историю анализов в кошельке
	maxAnalysisHistory = 10

	// estimatedCo2SavedPerUsedItemKg — условная экономия CO2 от покупки б/у товара
	estimatedCo2SavedPerUsedItemKg = 2.5
)

// assessableConditions — варианты оценки состояния упаковки при инспекции
var assessableConditions = []domain.PackageCondition{
	domain.ConditionGood,
	domain.ConditionSlightlyDamaged,
	domain.ConditionHeavilyDamaged,
}

// Dispatcher оркестрирует обработку доменных событий: начисления и списания,
// счетчики вех, серию дней, проверку порогов достижений. Обработчики
// сериализуются общим мьютексом, поэтому каждое событие наблюдает состояние
// целиком до или целиком после других событий.
type Dispatcher struct {
	mu sync.Mutex

	ledger       *Ledger
	achievements *AchievementTracker
	streaks      *StreakTracker
	notifier     domain.NotificationSink
	analysis     domain.AnalysisClient // nil — сервис анализа не сконфигурирован
	listings     domain.ListingRepository
	packages     domain.PackageRepository

	rewards  config.Rewards
	catalog  []domain.CoinReward
	feedback map[string]int
	logger   *zap.Logger

	history []domain.AnalysisResult

	now  func() time.Time
	pick func(n int) int
}

// NewDispatcher создает диспетчер доменных событий
func NewDispatcher(
	ledger *Ledger,
	achievements *AchievementTracker,
	streaks *StreakTracker,
	notifier domain.NotificationSink,
	analysis domain.AnalysisClient,
	listings domain.ListingRepository,
	packages domain.PackageRepository,
	rewards config.Rewards,
	logger *zap.Logger,
) *Dispatcher {
	return &Dispatcher{
		ledger:       ledger,
		achievements: achievements,
		streaks:      streaks,
		notifier:     notifier,
		analysis:     analysis,
		listings:     listings,
		packages:     packages,
		rewards:      rewards,
		catalog:      DefaultRewardCatalog(),
		feedback:     DefaultFeedbackRewards(),
		logger:       logger,
		now:          time.Now,
		pick:         rand.Intn,
	}
}

// DailyLogin начисляет дневной бонус за вход. Повторный вход в тот же
// календарный день бонуса не дает и возвращает nil-транзакцию.
func (d *Dispatcher) DailyLogin(ctx context.Context) (*domain.CoinTransaction, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.ledger.HasTransactionOn(dailyLoginReason, d.now()) {
		return nil, nil
	}
	return d.ledger.Credit(ctx, d.rewards.DailyLoginCoins, dailyLoginReason, nil), nil
}

// CartItemAdded обрабатывает добавление товара в корзину. Награда положена
// только товарам с высоким эко-рейтингом; рейтинг без явного значения
// вычисляется из составляющих продукта.
func (d *Dispatcher) CartItemAdded(ctx context.Context, event domain.CartEvent) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	score := event.EcoScore
	if score == 0 {
		score = ecoscore.Comprehensive(
			event.CarbonFootprintKg,
			event.DurabilityScore,
			event.PackagingScore,
			event.HealthImpactScore)
	}
	if score < d.rewards.HighEcoScoreThreshold {
		return 0, nil
	}

	coins := d.rewards.SustainablePurchaseCoins
	d.ledger.Credit(ctx, coins,
		fmt.Sprintf("Sustainable pick: %s", truncate(event.ProductName, 20)),
		&domain.TransactionContext{ProductID: event.ProductID})

	value := d.achievements.IncrementCounter(ctx, domain.CounterSustainablePurchases, 1)
	d.evaluate(ctx, domain.CounterSustainablePurchases, value)
	return coins, nil
}

// AnalysisCompleted обрабатывает завершение анализа продукта: вызывает
// AI-сервис (или локальный фолбэк), начисляет монеты пропорционально
// найденному CO2, обновляет счетчики, серию дней и историю анализов.
func (d *Dispatcher) AnalysisCompleted(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisOutcome, error) {
	if strings.TrimSpace(req.Prompt) == "" && req.ImageData == "" {
		return nil, ErrEmptyAnalysisRequest
	}

	// Внешний вызов идет до критической секции: начисления стартуют
	// только после ответа (или отказа) AI-сервиса.
	result, degraded := d.analyze(ctx, req)

	d.mu.Lock()
	defer d.mu.Unlock()

	co2 := math.Max(0, result.Co2FootprintKg)
	coins := int(math.Floor(co2 * float64(d.rewards.CoinsPerKgCo2)))
	if coins < d.rewards.MinCoinsPerAnalysis {
		coins = d.rewards.MinCoinsPerAnalysis
	}

	reason := fmt.Sprintf("Product Analysis (%s)", truncate(result.ProductName, 20))
	if result.SimulatedBarcode != "" {
		reason = fmt.Sprintf("Image Scan: %s (BC: ...%s)",
			truncate(result.ProductName, 15), lastChars(result.SimulatedBarcode, 4))
	}
	d.ledger.Credit(ctx, coins, reason,
		&domain.TransactionContext{AnalyzedCo2Kg: result.Co2FootprintKg})

	analyzed := d.achievements.IncrementCounter(ctx, domain.CounterProductsAnalyzed, 1)
	totalCo2 := d.achievements.IncrementCounter(ctx, domain.CounterTotalCo2Analyzed, co2)
	d.evaluate(ctx, domain.CounterProductsAnalyzed, analyzed)
	d.evaluate(ctx, domain.CounterTotalCo2Analyzed, totalCo2)

	streakDays, _ := d.streaks.RecordActivity(ctx, d.now())
	d.evaluate(ctx, domain.CounterStreakDays, float64(streakDays))

	d.history = append([]domain.AnalysisResult{*result}, d.history...)
	if len(d.history) > maxAnalysisHistory {
		d.history = d.history[:maxAnalysisHistory]
	}

	return &domain.AnalysisOutcome{
		Result:       *result,
		CoinsAwarded: coins,
		StreakDays:   streakDays,
		Degraded:     degraded,
	}, nil
}

// QuizCompleted обрабатывает завершение викторины
func (d *Dispatcher) QuizCompleted(ctx context.Context, event domain.QuizEvent) (int, error) {
	if event.TotalQuestions <= 0 || event.Score < 0 || event.Score > event.TotalQuestions {
		return 0, ErrInvalidQuizResult
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	title := truncate(event.Title, 20)
	coins := d.rewards.QuizCompletionCoins
	d.ledger.Credit(ctx, coins,
		fmt.Sprintf("Quiz Completed: %s", title),
		&domain.TransactionContext{QuizID: event.QuizID})

	if event.Score == event.TotalQuestions {
		d.ledger.Credit(ctx, d.rewards.QuizPerfectScoreBonus,
			fmt.Sprintf("Perfect Score: %s", title),
			&domain.TransactionContext{QuizID: event.QuizID})
		coins += d.rewards.QuizPerfectScoreBonus
	}

	value := d.achievements.IncrementCounter(ctx, domain.CounterQuizzesCompleted, 1)
	d.evaluate(ctx, domain.CounterQuizzesCompleted, value)
	return coins, nil
}

// FeedbackSubmitted начисляет награду за обратную связь по таблице категорий
func (d *Dispatcher) FeedbackSubmitted(ctx context.Context, event domain.FeedbackEvent) (int, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	coins, ok := d.feedback[event.Category]
	if !ok {
		coins = fallbackFeedbackCoins
	}
	d.ledger.Credit(ctx, coins,
		fmt.Sprintf("Feedback: %s", truncate(event.Title, 20)),
		&domain.TransactionContext{FeedbackID: event.FeedbackID})
	return coins, nil
}

// ProfileCompleted разблокирует одноразовое достижение за заполнение профиля
func (d *Dispatcher) ProfileCompleted(ctx context.Context) (bool, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	unlocked := d.achievements.TryUnlock(ctx, domain.AchievementProfileCompletion,
		d.rewards.ProfileCompletionCoins, "Profile Setup: Eco-Interests Selected")
	return unlocked, nil
}

// CreateListing создает объявление на маркетплейсе и начисляет награду
func (d *Dispatcher) CreateListing(ctx context.Context, event domain.ListingEvent) (*domain.MarketplaceListing, error) {
	if strings.TrimSpace(event.Title) == "" {
		return nil, ErrInvalidListing
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	listing := &domain.MarketplaceListing{
		ID:                  "mp-item-" + uuid.NewString(),
		SellerID:            domain.LocalUserID,
		Title:               event.Title,
		Description:         event.Description,
		Category:            event.Category,
		Price:               event.Price,
		Status:              domain.ListingStatusAvailable,
		EstimatedCo2SavedKg: estimatedCo2SavedPerUsedItemKg,
		ListedAt:            d.now(),
	}
	if err := d.listings.CreateListing(ctx, listing); err != nil {
		return nil, fmt.Errorf("dispatcher: failed to create listing: %w", err)
	}

	d.ledger.Credit(ctx, d.rewards.ListingCreatedCoins,
		fmt.Sprintf("Listed: %s", truncate(event.Title, 20)),
		&domain.TransactionContext{ListingID: listing.ID})

	value := d.achievements.IncrementCounter(ctx, domain.CounterItemsListed, 1)
	d.evaluate(ctx, domain.CounterItemsListed, value)
	return listing, nil
}

// PurchaseListing обрабатывает покупку чужого объявления
func (d *Dispatcher) PurchaseListing(ctx context.Context, listingID string) (*domain.MarketplaceListing, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	listing, err := d.listings.GetListingByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.Status != domain.ListingStatusAvailable {
		return nil, domain.ErrListingNotAvailable
	}
	if listing.SellerID == domain.LocalUserID {
		return nil, domain.ErrOwnListing
	}

	if err := d.listings.UpdateListingStatus(ctx, listingID, domain.ListingStatusSold); err != nil {
		return nil, fmt.Errorf("dispatcher: failed to update listing status: %w", err)
	}
	listing.Status = domain.ListingStatusSold

	d.ledger.Credit(ctx, d.rewards.MarketplacePurchaseCoins,
		fmt.Sprintf("Purchased used: %s", truncate(listing.Title, 15)),
		&domain.TransactionContext{ListingID: listing.ID})

	purchased := d.achievements.IncrementCounter(ctx, domain.CounterItemsPurchased, 1)
	d.evaluate(ctx, domain.CounterItemsPurchased, purchased)
	// Покупка б/у товара засчитывается и как устойчивая покупка
	sustainable := d.achievements.IncrementCounter(ctx, domain.CounterSustainablePurchases, 1)
	d.evaluate(ctx, domain.CounterSustainablePurchases, sustainable)

	d.notifier.Notify(
		fmt.Sprintf("Purchase complete! You saved ~%.1f kg CO2 by buying used.", listing.EstimatedCo2SavedKg),
		domain.AlertSeveritySuccess, false)
	return listing, nil
}

// MarkListingSold помечает собственное объявление проданным (продажа
// внешнему покупателю). Монеты за это не начисляются.
func (d *Dispatcher) MarkListingSold(ctx context.Context, listingID string) (*domain.MarketplaceListing, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	listing, err := d.listings.GetListingByID(ctx, listingID)
	if err != nil {
		return nil, err
	}
	if listing.SellerID != domain.LocalUserID {
		return nil, domain.ErrNotSellerListing
	}
	if listing.Status != domain.ListingStatusAvailable {
		return nil, domain.ErrListingNotAvailable
	}

	if err := d.listings.UpdateListingStatus(ctx, listingID, domain.ListingStatusSold); err != nil {
		return nil, fmt.Errorf("dispatcher: failed to update listing status: %w", err)
	}
	listing.Status = domain.ListingStatusSold

	d.achievements.IncrementCounter(ctx, domain.CounterItemsSold, 1)
	d.notifier.Notify(
		fmt.Sprintf("Your listing %q found a new home!", truncate(listing.Title, 20)),
		domain.AlertSeverityInfo, false)
	return listing, nil
}

// Listings возвращает объявления маркетплейса
func (d *Dispatcher) Listings(ctx context.Context) ([]*domain.MarketplaceListing, error) {
	return d.listings.GetListings(ctx)
}

// RedeemReward списывает монеты за награду из каталога
func (d *Dispatcher) RedeemReward(ctx context.Context, rewardID string) (*domain.CoinReward, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	var reward *domain.CoinReward
	for i := range d.catalog {
		if d.catalog[i].ID == rewardID {
			reward = &d.catalog[i]
			break
		}
	}
	if reward == nil {
		return nil, domain.ErrUnknownReward
	}

	_, ok := d.ledger.Debit(ctx, reward.Cost,
		fmt.Sprintf("Redeemed: %s", reward.Name),
		&domain.TransactionContext{},
	)
	if !ok {
		shortfall := reward.Cost - d.ledger.Balance()
		d.notifier.Notify(
			fmt.Sprintf("Not enough EcoCoins for %q. You need %d more.", reward.Name, shortfall),
			domain.AlertSeverityError, false)
		return nil, domain.ErrInsufficientFunds
	}

	redeemed := *reward
	return &redeemed, nil
}

// InitiateReturn переводит упаковку в статус RETURN_INITIATED
func (d *Dispatcher) InitiateReturn(ctx context.Context, packageID string, condition domain.PackageCondition) (*domain.ReturnablePackage, error) {
	if !validCondition(condition) {
		return nil, ErrInvalidCondition
	}

	d.mu.Lock()
	defer d.mu.Unlock()

	pkg, err := d.packages.GetPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pkg.Status != domain.PackageStatusAvailableForReturn {
		return nil, domain.ErrInvalidPackageState
	}

	if err := d.packages.InitiateReturn(ctx, packageID, condition); err != nil {
		return nil, fmt.Errorf("dispatcher: failed to initiate return: %w", err)
	}

	initiatedAt := d.now()
	pkg.Status = domain.PackageStatusReturnInitiated
	pkg.ReportedCondition = condition
	pkg.InitiatedAt = &initiatedAt

	d.notifier.Notify(
		fmt.Sprintf("Return initiated for %s. Use drop-off code %s.", pkg.ProductName, pkg.DropOffCode),
		domain.AlertSeverityInfo, false)
	return pkg, nil
}

// ProcessReturn завершает инициированный возврат: оценивает состояние
// упаковки (без заявленного состояния — случайно), начисляет награду или
// отклоняет возврат со штрафом.
func (d *Dispatcher) ProcessReturn(ctx context.Context, packageID string) (*domain.ReturnablePackage, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	pkg, err := d.packages.GetPackageByID(ctx, packageID)
	if err != nil {
		return nil, err
	}
	if pkg.Status != domain.PackageStatusReturnInitiated {
		return nil, domain.ErrInvalidPackageState
	}

	assessed := pkg.ReportedCondition
	if assessed == "" {
		assessed = assessableConditions[d.pick(len(assessableConditions))]
	}

	status := domain.PackageStatusReturnCompleted
	reward := 0
	switch assessed {
	case domain.ConditionGood:
		reward = d.rewards.PackageReturnBaseCoins + d.rewards.PackageGoodConditionBonus
	case domain.ConditionSlightlyDamaged:
		reward = d.rewards.PackageReturnBaseCoins - d.rewards.PackageSlightDamagePenalty
		if reward < 0 {
			reward = 0
		}
	case domain.ConditionHeavilyDamaged:
		status = domain.PackageStatusReturnRejected
	}

	if err := d.packages.SettleReturn(ctx, packageID, status, assessed, reward); err != nil {
		return nil, fmt.Errorf("dispatcher: failed to settle return: %w", err)
	}

	processedAt := d.now()
	pkg.Status = status
	pkg.AssessedCondition = assessed
	pkg.RewardCoins = reward
	pkg.ProcessedAt = &processedAt

	if status == domain.PackageStatusReturnRejected {
		d.applyReturnPenalty(ctx, pkg)
		return pkg, nil
	}

	d.ledger.Credit(ctx, reward,
		fmt.Sprintf("Package Return: %s", truncate(pkg.ProductName, 20)),
		&domain.TransactionContext{ReturnPackageID: pkg.ID})

	returned := d.achievements.IncrementCounter(ctx, domain.CounterPackagesReturned, 1)
	d.evaluate(ctx, domain.CounterPackagesReturned, returned)
	return pkg, nil
}

// applyReturnPenalty списывает штраф за тяжело поврежденную упаковку.
// При нехватке средств штраф не применяется: баланс не уходит в минус,
// пользователь получает только уведомление.
func (d *Dispatcher) applyReturnPenalty(ctx context.Context, pkg *domain.ReturnablePackage) {
	penalty := d.rewards.PackageHeavyDamagePenalty
	_, ok := d.ledger.Debit(ctx, penalty,
		fmt.Sprintf("Return penalty: %s", truncate(pkg.ProductName, 20)),
		&domain.TransactionContext{ReturnPackageID: pkg.ID})
	if !ok {
		d.logger.Info("return penalty skipped, insufficient balance",
			zap.String("package_id", pkg.ID), zap.Int("penalty", penalty))
	}

	d.notifier.Notify(
		fmt.Sprintf("Return of %s was rejected: packaging heavily damaged.", pkg.ProductName),
		domain.AlertSeverityError, false)
}

// Packages возвращает возвратные упаковки
func (d *Dispatcher) Packages(ctx context.Context) ([]*domain.ReturnablePackage, error) {
	return d.packages.GetPackages(ctx)
}

// Wallet возвращает агрегированное представление кошелька
func (d *Dispatcher) Wallet(ctx context.Context) *domain.WalletView {
	d.mu.Lock()
	defer d.mu.Unlock()

	streak := d.streaks.State()
	history := make([]domain.AnalysisResult, len(d.history))
	copy(history, d.history)

	return &domain.WalletView{
		Balance:          d.ledger.Balance(),
		StreakDays:       streak.StreakDays,
		LastActivityDate: streak.LastActivityDate,
		Counters:         d.achievements.Counters(),
		Achievements:     d.achievements.Unlocked(),
		AnalysisHistory:  history,
	}
}

// Transactions возвращает журнал транзакций
func (d *Dispatcher) Transactions(ctx context.Context) []domain.CoinTransaction {
	return d.ledger.Transactions()
}

// Achievements возвращает разблокированные достижения
func (d *Dispatcher) Achievements(ctx context.Context) []string {
	return d.achievements.Unlocked()
}

// Rewards возвращает каталог наград
func (d *Dispatcher) Rewards(ctx context.Context) []domain.CoinReward {
	result := make([]domain.CoinReward, len(d.catalog))
	copy(result, d.catalog)
	return result
}

// evaluate проверяет пороги достижений и публикует подсказку о близком пороге
func (d *Dispatcher) evaluate(ctx context.Context, counter string, value float64) {
	d.achievements.Evaluate(ctx, counter, value)

	if rule, remaining, ok := d.achievements.NearMiss(counter, value); ok {
		d.notifier.Notify(nearMissMessage(rule, remaining), domain.AlertSeverityInfo, false)
	}
}

// analyze вызывает AI-сервис; любой сбой деградирует до локального фолбэка
func (d *Dispatcher) analyze(ctx context.Context, req domain.AnalysisRequest) (*domain.AnalysisResult, bool) {
	if d.analysis == nil {
		return fallbackAnalysis(req), true
	}

	result, err := d.analysis.AnalyzeProduct(ctx, req)
	if err != nil {
		var rateLimitErr *RateLimitError
		if errors.As(err, &rateLimitErr) {
			d.logger.Warn("analysis service rate limited, using local fallback",
				zap.Duration("retry_after", rateLimitErr.RetryAfter))
		} else {
			d.logger.Warn("analysis service unavailable, using local fallback", zap.Error(err))
		}
		return fallbackAnalysis(req), true
	}
	if result == nil {
		return fallbackAnalysis(req), true
	}
	return result, false
}

// fallbackAnalysis строит нейтральный результат, когда AI-сервис недоступен
func fallbackAnalysis(req domain.AnalysisRequest) *domain.AnalysisResult {
	name := strings.TrimSpace(req.Prompt)
	if name == "" {
		name = "Unknown Product"
	}
	return &domain.AnalysisResult{
		ProductName:         truncate(name, 40),
		Co2FootprintKg:      0,
		SustainabilityScore: 3,
	}
}

func nearMissMessage(rule AchievementRule, remaining float64) string {
	if rule.Counter == domain.CounterTotalCo2Analyzed {
		return fmt.Sprintf("You're close to the %s! Only %.1f kg CO2 more from analyses.", rule.Reason, remaining)
	}
	return fmt.Sprintf("Almost there: %.0f more for the %s!", remaining, rule.Reason)
}

func validCondition(condition domain.PackageCondition) bool {
	switch condition {
	case domain.ConditionGood, domain.ConditionSlightlyDamaged, domain.ConditionHeavilyDamaged:
		return true
	}
	return false
}

func truncate(value string, limit int) string {
	runes := []rune(value)
	if len(runes) <= limit {
		return value
	}
	return string(runes[:limit]) + "..."
}

func lastChars(value string, count int) string {
	runes := []rune(value)
	if len(runes) <= count {
		return value
	}
	return string(runes[len(runes)-count:])
}
