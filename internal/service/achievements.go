package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"sync"

	"go.uber.org/zap"

	"github.com/avc/ecocart-rewards/internal/domain"
)

// SnapshotKeyMilestones — ключ снимка счетчиков и достижений в хранилище
const SnapshotKeyMilestones = "milestones"

// AchievementRule описывает пороговое правило разблокировки достижения.
// Правила одного счетчика проверяются по возрастанию порога, поэтому большой
// скачок счетчика может разблокировать несколько достижений за одно событие.
type AchievementRule struct {
	Counter   string
	Threshold float64
	Key       string
	Bonus     int
	Reason    string
	// NearMissMargin > 0 включает подсказку «почти получилось», когда до
	// порога остается не больше этого значения
	NearMissMargin float64
}

// DefaultAchievementRules возвращает таблицу правил достижений
func DefaultAchievementRules() []AchievementRule {
	return []AchievementRule{
		{
			Counter:   domain.CounterProductsAnalyzed,
			Threshold: 1,
			Key:       domain.AchievementFirstAnalysis,
			Bonus:     25,
			Reason:    "First Analysis Bonus",
		},
		{
			Counter:        domain.CounterProductsAnalyzed,
			Threshold:      5,
			Key:            domain.AchievementNoviceAnalyzer,
			Bonus:          50,
			Reason:         "Novice Analyzer Bonus (5 analyses)",
			NearMissMargin: 1,
		},
		{
			Counter:   domain.CounterProductsAnalyzed,
			Threshold: 15,
			Key:       domain.AchievementEcoExplorer,
			Bonus:     100,
			Reason:    "Eco Explorer Bonus (15 analyses)",
		},
		{
			Counter:        domain.CounterTotalCo2Analyzed,
			Threshold:      50,
			Key:            domain.AchievementCarbonCrusher,
			Bonus:          75,
			Reason:         "Carbon Crusher Bonus (50kg CO2 analyzed)",
			NearMissMargin: 10,
		},
		{
			Counter:   domain.CounterSustainablePurchases,
			Threshold: 1,
			Key:       domain.AchievementFirstSustainableBuy,
			Bonus:     20,
			Reason:    "First Sustainable Purchase Bonus",
		},
		{
			Counter:   domain.CounterQuizzesCompleted,
			Threshold: 1,
			Key:       domain.AchievementFirstQuiz,
			Bonus:     10,
			Reason:    "First Quiz Completed Bonus",
		},
		{
			Counter:   domain.CounterStreakDays,
			Threshold: 3,
			Key:       domain.AchievementStreak3Days,
			Bonus:     30,
			Reason:    "3-Day Analysis Streak Bonus",
		},
		{
			Counter:   domain.CounterStreakDays,
			Threshold: 7,
			Key:       domain.AchievementStreak7Days,
			Bonus:     70,
			Reason:    "7-Day Analysis Streak Bonus",
		},
	}
}

// AchievementTracker отслеживает счетчики вех и идемпотентно разблокирует
// достижения по декларативной таблице правил
type AchievementTracker struct {
	mu       sync.Mutex
	counters map[string]float64
	unlocked map[string]struct{}
	// порядок разблокировки сохраняется для снимка и API
	unlockedList []string

	rules  []AchievementRule
	ledger *Ledger
	store  domain.SnapshotStore
	logger *zap.Logger
}

// NewAchievementTracker создает трекер с указанной таблицей правил
func NewAchievementTracker(rules []AchievementRule, ledger *Ledger, store domain.SnapshotStore, logger *zap.Logger) *AchievementTracker {
	sorted := make([]AchievementRule, len(rules))
	copy(sorted, rules)
	sort.SliceStable(sorted, func(i, j int) bool {
		if sorted[i].Counter != sorted[j].Counter {
			return sorted[i].Counter < sorted[j].Counter
		}
		return sorted[i].Threshold < sorted[j].Threshold
	})

	return &AchievementTracker{
		counters: make(map[string]float64),
		unlocked: make(map[string]struct{}),
		rules:    sorted,
		ledger:   ledger,
		store:    store,
		logger:   logger,
	}
}

// Restore загружает счетчики и достижения из хранилища снимков
func (t *AchievementTracker) Restore(ctx context.Context) error {
	data, err := t.store.Load(ctx, SnapshotKeyMilestones)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			return nil
		}
		return fmt.Errorf("achievements: failed to load milestone snapshot: %w", err)
	}

	var state domain.MilestoneState
	if err := json.Unmarshal(data, &state); err != nil {
		t.logger.Warn("milestone snapshot is corrupted, starting fresh", zap.Error(err))
		return nil
	}

	t.mu.Lock()
	defer t.mu.Unlock()
	if state.Counters != nil {
		t.counters = state.Counters
	}
	for _, key := range state.AchievementsUnlocked {
		if _, ok := t.unlocked[key]; ok {
			continue
		}
		t.unlocked[key] = struct{}{}
		t.unlockedList = append(t.unlockedList, key)
	}
	return nil
}

// TryUnlock идемпотентно разблокирует достижение. Возвращает true только
// при первой разблокировке; бонус начисляется тоже только тогда.
func (t *AchievementTracker) TryUnlock(ctx context.Context, key string, bonus int, reason string) bool {
	t.mu.Lock()
	if _, ok := t.unlocked[key]; ok {
		t.mu.Unlock()
		return false
	}
	t.unlocked[key] = struct{}{}
	t.unlockedList = append(t.unlockedList, key)
	t.persist(ctx)
	t.mu.Unlock()

	t.ledger.Credit(ctx, bonus, reason, &domain.TransactionContext{AchievementKey: key})
	return true
}

// IncrementCounter монотонно увеличивает счетчик и возвращает новое значение.
// Отрицательная дельта игнорируется: счетчики вех не убывают.
func (t *AchievementTracker) IncrementCounter(ctx context.Context, name string, delta float64) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	if delta > 0 {
		t.counters[name] += delta
		t.persist(ctx)
	}
	return t.counters[name]
}

// Counter возвращает текущее значение счетчика
func (t *AchievementTracker) Counter(name string) float64 {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.counters[name]
}

// Counters возвращает копию всех счетчиков
func (t *AchievementTracker) Counters() map[string]float64 {
	t.mu.Lock()
	defer t.mu.Unlock()

	result := make(map[string]float64, len(t.counters))
	for name, value := range t.counters {
		result[name] = value
	}
	return result
}

// Evaluate проверяет правила счетчика по возрастанию порога и разблокирует
// все достигнутые. Возвращает правила, разблокированные этим вызовом.
func (t *AchievementTracker) Evaluate(ctx context.Context, counter string, value float64) []AchievementRule {
	var unlocked []AchievementRule
	for _, rule := range t.rules {
		if rule.Counter != counter || value < rule.Threshold {
			continue
		}
		if t.TryUnlock(ctx, rule.Key, rule.Bonus, rule.Reason) {
			unlocked = append(unlocked, rule)
		}
	}
	return unlocked
}

// NearMiss возвращает ближайшее неразблокированное правило счетчика, до
// порога которого осталось не больше NearMissMargin
func (t *AchievementTracker) NearMiss(counter string, value float64) (AchievementRule, float64, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()

	for _, rule := range t.rules {
		if rule.Counter != counter || rule.NearMissMargin <= 0 {
			continue
		}
		if _, ok := t.unlocked[rule.Key]; ok {
			continue
		}
		remaining := rule.Threshold - value
		if remaining > 0 && remaining <= rule.NearMissMargin {
			return rule, remaining, true
		}
	}
	return AchievementRule{}, 0, false
}

// IsUnlocked проверяет, разблокировано ли достижение
func (t *AchievementTracker) IsUnlocked(key string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	_, ok := t.unlocked[key]
	return ok
}

// Unlocked возвращает ключи достижений в порядке разблокировки
func (t *AchievementTracker) Unlocked() []string {
	t.mu.Lock()
	defer t.mu.Unlock()

	result := make([]string, len(t.unlockedList))
	copy(result, t.unlockedList)
	return result
}

// persist сохраняет снимок вех; вызывается под t.mu
func (t *AchievementTracker) persist(ctx context.Context) {
	counters := make(map[string]float64, len(t.counters))
	for name, value := range t.counters {
		counters[name] = value
	}
	unlocked := make([]string, len(t.unlockedList))
	copy(unlocked, t.unlockedList)

	data, err := json.Marshal(domain.MilestoneState{
		Counters:             counters,
		AchievementsUnlocked: unlocked,
	})
	if err != nil {
		t.logger.Error("failed to marshal milestone snapshot", zap.Error(err))
		return
	}
	if err := t.store.Save(ctx, SnapshotKeyMilestones, data); err != nil {
		t.logger.Warn("failed to persist milestone snapshot", zap.Error(err))
	}
}
