package service

import (
	"errors"
	"fmt"
	"time"
)

// Ошибки валидации входящих событий
var (
	ErrEmptyAnalysisRequest = errors.New("analysis request has neither prompt nor image")
	ErrInvalidQuizResult    = errors.New("invalid quiz result")
	ErrInvalidListing       = errors.New("listing title is required")
	ErrInvalidCondition     = errors.New("unknown package condition")
)

// RateLimitError представляет ошибку превышения лимита запросов
type RateLimitError struct {
	RetryAfter time.Duration
}

func (e *RateLimitError) Error() string {
	return fmt.Sprintf("rate limit exceeded, retry after %s", e.RetryAfter)
}

// NewRateLimitError создает новую ошибку rate limit
func NewRateLimitError(retryAfter time.Duration) *RateLimitError {
	return &RateLimitError{RetryAfter: retryAfter}
}
