package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"

	"github.com/avc/ecocart-rewards/internal/domain"
	"github.com/avc/ecocart-rewards/internal/utils/dates"
)

// SnapshotKeyStreaks — ключ снимка серии активности в хранилище
const SnapshotKeyStreaks = "streaks"

// StreakTracker считает серию календарных дней с активностью.
// Гранулярность — день: повторная активность в тот же день серию не меняет,
// пропуск хотя бы одного дня сбрасывает ее до 1.
type StreakTracker struct {
	mu    sync.Mutex
	state domain.StreakState

	store  domain.SnapshotStore
	logger *zap.Logger
}

// NewStreakTracker создает новый StreakTracker
func NewStreakTracker(store domain.SnapshotStore, logger *zap.Logger) *StreakTracker {
	return &StreakTracker{store: store, logger: logger}
}

// Restore загружает состояние серии из хранилища снимков
func (s *StreakTracker) Restore(ctx context.Context) error {
	data, err := s.store.Load(ctx, SnapshotKeyStreaks)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			return nil
		}
		return fmt.Errorf("streak: failed to load streak snapshot: %w", err)
	}

	var state domain.StreakState
	if err := json.Unmarshal(data, &state); err != nil {
		s.logger.Warn("streak snapshot is corrupted, starting fresh", zap.Error(err))
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = state
	return nil
}

// RecordActivity фиксирует активность в день today и возвращает длину серии
// после учета. Второе значение — true, если это первая активность за день.
func (s *StreakTracker) RecordActivity(ctx context.Context, today time.Time) (int, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	todayKey := dates.DayKey(today)
	if s.state.LastActivityDate == todayKey {
		return s.state.StreakDays, false
	}

	streak := 1
	if s.state.LastActivityDate != "" {
		last, err := dates.ParseDay(s.state.LastActivityDate)
		if err != nil {
			s.logger.Warn("streak state has invalid date, resetting",
				zap.String("last_activity_date", s.state.LastActivityDate))
		} else if dates.DaysBetween(last, today) == 1 {
			streak = s.state.StreakDays + 1
		}
	}

	s.state = domain.StreakState{StreakDays: streak, LastActivityDate: todayKey}
	s.persist(ctx)
	return streak, true
}

// State возвращает текущее состояние серии
func (s *StreakTracker) State() domain.StreakState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *StreakTracker) persist(ctx context.Context) {
	data, err := json.Marshal(s.state)
	if err != nil {
		s.logger.Error("failed to marshal streak snapshot", zap.Error(err))
		return
	}
	if err := s.store.Save(ctx, SnapshotKeyStreaks, data); err != nil {
		s.logger.Warn("failed to persist streak snapshot", zap.Error(err))
	}
}
