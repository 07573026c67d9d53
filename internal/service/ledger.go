package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/avc/ecocart-rewards/internal/domain"
	"github.com/avc/ecocart-rewards/internal/utils/dates"
)

// maxTransactionLog ограничивает журнал транзакций: старые записи вытесняются
const maxTransactionLog = 50

// SnapshotKeyWallet — ключ снимка кошелька в хранилище
const SnapshotKeyWallet = "wallet"

// Ledger управляет балансом EcoCoins и журналом транзакций.
// Состояние живет в памяти и асинхронно по смыслу (ошибка только логируется)
// сбрасывается в хранилище снимков после каждой мутации.
type Ledger struct {
	mu           sync.Mutex
	balance      int
	transactions []domain.CoinTransaction

	store    domain.SnapshotStore
	notifier domain.NotificationSink
	logger   *zap.Logger
	now      func() time.Time
}

// NewLedger создает новый Ledger со стартовым балансом
func NewLedger(initialBalance int, store domain.SnapshotStore, notifier domain.NotificationSink, logger *zap.Logger) *Ledger {
	if initialBalance < 0 {
		initialBalance = 0
	}
	return &Ledger{
		balance:  initialBalance,
		store:    store,
		notifier: notifier,
		logger:   logger,
		now:      time.Now,
	}
}

// Restore загружает состояние кошелька из хранилища снимков.
// Отсутствие снимка не ошибка: остается стартовое состояние.
func (l *Ledger) Restore(ctx context.Context) error {
	data, err := l.store.Load(ctx, SnapshotKeyWallet)
	if err != nil {
		if errors.Is(err, domain.ErrSnapshotNotFound) {
			return nil
		}
		return fmt.Errorf("ledger: failed to load wallet snapshot: %w", err)
	}

	var state domain.WalletState
	if err := json.Unmarshal(data, &state); err != nil {
		l.logger.Warn("wallet snapshot is corrupted, starting fresh", zap.Error(err))
		return nil
	}
	if state.Balance < 0 {
		l.logger.Warn("wallet snapshot has negative balance, starting fresh",
			zap.Int("balance", state.Balance))
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()
	l.balance = state.Balance
	l.transactions = state.Transactions
	return nil
}

// Credit начисляет EcoCoins и записывает транзакцию в журнал.
// Нулевые и отрицательные суммы игнорируются.
func (l *Ledger) Credit(ctx context.Context, amount int, reason string, txContext *domain.TransactionContext) *domain.CoinTransaction {
	if amount <= 0 {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	tx := l.appendTransaction(domain.TransactionTypeEarned, amount, reason, txContext)
	l.balance += amount
	l.persist(ctx)

	l.notifier.Notify(
		fmt.Sprintf("You earned %d EcoCoin(s) for: %s!", amount, reason),
		domain.AlertSeveritySuccess, true)
	return tx
}

// Debit списывает EcoCoins, если баланса хватает.
// При нехватке средств состояние не меняется и возвращается false;
// сообщение пользователю в этом случае формирует вызывающая сторона.
func (l *Ledger) Debit(ctx context.Context, amount int, reason string, txContext *domain.TransactionContext) (*domain.CoinTransaction, bool) {
	if amount <= 0 {
		return nil, false
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if l.balance < amount {
		return nil, false
	}

	tx := l.appendTransaction(domain.TransactionTypeSpent, amount, reason, txContext)
	l.balance -= amount
	l.persist(ctx)

	l.notifier.Notify(
		fmt.Sprintf("%d EcoCoin(s) spent: %s", amount, reason),
		domain.AlertSeveritySuccess, true)
	return tx, true
}

// Balance возвращает текущий баланс
func (l *Ledger) Balance() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.balance
}

// Transactions возвращает копию журнала транзакций, новые записи первыми
func (l *Ledger) Transactions() []domain.CoinTransaction {
	l.mu.Lock()
	defer l.mu.Unlock()

	result := make([]domain.CoinTransaction, len(l.transactions))
	copy(result, l.transactions)
	return result
}

// HasTransactionOn проверяет, была ли в календарный день day транзакция
// с указанной причиной. Журнал ограничен, поэтому проверка надежна только
// для недавних дней — для дневных бонусов этого достаточно.
func (l *Ledger) HasTransactionOn(reason string, day time.Time) bool {
	l.mu.Lock()
	defer l.mu.Unlock()

	for _, tx := range l.transactions {
		if tx.Reason == reason && dates.SameDay(tx.Date, day) {
			return true
		}
	}
	return false
}

// State возвращает снимок состояния кошелька
func (l *Ledger) State() domain.WalletState {
	l.mu.Lock()
	defer l.mu.Unlock()

	transactions := make([]domain.CoinTransaction, len(l.transactions))
	copy(transactions, l.transactions)
	return domain.WalletState{Balance: l.balance, Transactions: transactions}
}

func (l *Ledger) appendTransaction(txType domain.TransactionType, amount int, reason string, txContext *domain.TransactionContext) *domain.CoinTransaction {
	tx := domain.CoinTransaction{
		ID:      uuid.NewString(),
		Type:    txType,
		Amount:  amount,
		Reason:  reason,
		Date:    l.now(),
		Context: txContext,
	}

	l.transactions = append([]domain.CoinTransaction{tx}, l.transactions...)
	if len(l.transactions) > maxTransactionLog {
		l.transactions = l.transactions[:maxTransactionLog]
	}
	return &tx
}

// persist сохраняет снимок кошелька. Ошибка сохранения не прерывает
// операцию: память остается источником истины, сбой только логируется.
func (l *Ledger) persist(ctx context.Context) {
	transactions := make([]domain.CoinTransaction, len(l.transactions))
	copy(transactions, l.transactions)
	state := domain.WalletState{Balance: l.balance, Transactions: transactions}

	data, err := json.Marshal(state)
	if err != nil {
		l.logger.Error("failed to marshal wallet snapshot", zap.Error(err))
		return
	}
	if err := l.store.Save(ctx, SnapshotKeyWallet, data); err != nil {
		l.logger.Warn("failed to persist wallet snapshot", zap.Error(err))
	}
}
