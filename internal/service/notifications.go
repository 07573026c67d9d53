package service

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/avc/ecocart-rewards/internal/domain"
)

// Время жизни уведомлений: «монетные» живут дольше
const (
	coinNotificationTTL    = 7 * time.Second
	defaultNotificationTTL = 5 * time.Second
)

// maxNotifications ограничивает ленту активных уведомлений
const maxNotifications = 20

// Notifier хранит ленту пользовательских уведомлений с автоистечением.
// Истекшие записи лениво вычищаются при чтении ленты.
type Notifier struct {
	mu    sync.Mutex
	items []domain.Notification
	now   func() time.Time
}

// NewNotifier создает новый Notifier
func NewNotifier() *Notifier {
	return &Notifier{now: time.Now}
}

// Notify добавляет уведомление в ленту
func (n *Notifier) Notify(message string, severity domain.AlertSeverity, coinRelated bool) {
	n.mu.Lock()
	defer n.mu.Unlock()

	ttl := defaultNotificationTTL
	if coinRelated {
		ttl = coinNotificationTTL
		message = "💰 " + message
	}

	createdAt := n.now()
	item := domain.Notification{
		ID:        uuid.NewString(),
		Message:   message,
		Severity:  severity,
		CreatedAt: createdAt,
		ExpiresAt: createdAt.Add(ttl),
	}

	n.items = append([]domain.Notification{item}, n.items...)
	if len(n.items) > maxNotifications {
		n.items = n.items[:maxNotifications]
	}
}

// Active возвращает неистекшие уведомления, новые первыми
func (n *Notifier) Active() []domain.Notification {
	n.mu.Lock()
	defer n.mu.Unlock()

	current := n.now()
	alive := n.items[:0]
	for _, item := range n.items {
		if item.ExpiresAt.After(current) {
			alive = append(alive, item)
		}
	}
	n.items = alive

	result := make([]domain.Notification, len(n.items))
	copy(result, n.items)
	return result
}
