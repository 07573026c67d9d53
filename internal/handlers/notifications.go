package handlers

import (
	"encoding/json"
	"net/http"

	"go.uber.org/zap"

	"github.com/avc/ecocart-rewards/internal/domain"
)

// NotificationFeed отдает активные (не истекшие) уведомления.
type NotificationFeed interface {
	Active() []domain.Notification
}

type NotificationsHandler struct {
	feed   NotificationFeed
	logger *zap.Logger
}

func NewNotificationsHandler(feed NotificationFeed, logger *zap.Logger) *NotificationsHandler {
	return &NotificationsHandler{
		feed:   feed,
		logger: logger,
	}
}

// GetNotifications возвращает ленту для поллинга клиентом.
// Пустая лента — обычное состояние, а не ошибка.
func (h *NotificationsHandler) GetNotifications(w http.ResponseWriter, r *http.Request) {
	notifications := h.feed.Active()
	if notifications == nil {
		notifications = []domain.Notification{}
	}

	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(notifications); err != nil {
		h.logger.Error("failed to encode notifications response", zap.Error(err))
	}
}
