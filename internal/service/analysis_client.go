package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/avc/ecocart-rewards/internal/domain"
)

const defaultRetryAfter = 60 * time.Second

// HTTPAnalysisClient — клиент внешнего AI-сервиса анализа продуктов.
// Транзиентные сбои ретраятся, лимит запросов отдается вызывающей стороне
// как RateLimitError, чтобы она могла перейти на локальный фолбэк.
type HTTPAnalysisClient struct {
	baseURL    string
	httpClient *retryablehttp.Client
}

// NewAnalysisClient создает клиент AI-сервиса анализа
func NewAnalysisClient(baseURL string) *HTTPAnalysisClient {
	client := retryablehttp.NewClient()
	client.RetryMax = 2
	client.RetryWaitMin = 500 * time.Millisecond
	client.RetryWaitMax = 2 * time.Second
	client.HTTPClient.Timeout = 10 * time.Second
	client.Logger = nil
	// 429 не ретраим: лимит обрабатывается на уровне диспетчера
	client.CheckRetry = func(ctx context.Context, resp *http.Response, err error) (bool, error) {
		if resp != nil && resp.StatusCode == http.StatusTooManyRequests {
			return false, nil
		}
		return retryablehttp.DefaultRetryPolicy(ctx, resp, err)
	}

	return &HTTPAnalysisClient{
		baseURL:    baseURL,
		httpClient: client,
	}
}

// AnalyzeProduct отправляет запрос анализа и возвращает результат.
// Возвращает (nil, nil), если сервису нечего сказать о продукте.
func (c *HTTPAnalysisClient) AnalyzeProduct(ctx context.Context, request domain.AnalysisRequest) (*domain.AnalysisResult, error) {
	body, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("analysis client: failed to marshal request: %w", err)
	}

	url := fmt.Sprintf("%s/api/analyze", c.baseURL)
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("analysis client: failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("analysis client: request failed: %w", err)
	}
	defer resp.Body.Close()

	switch resp.StatusCode {
	case http.StatusOK:
		var result domain.AnalysisResult
		if err := json.NewDecoder(resp.Body).Decode(&result); err != nil {
			return nil, fmt.Errorf("analysis client: failed to decode response: %w", err)
		}
		return &result, nil

	case http.StatusNoContent:
		return nil, nil

	case http.StatusTooManyRequests:
		retryAfter := parseRetryAfter(resp.Header.Get("Retry-After"))
		return nil, NewRateLimitError(retryAfter)

	default:
		io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("analysis client: unexpected status code %d", resp.StatusCode)
	}
}

func parseRetryAfter(header string) time.Duration {
	if header == "" {
		return defaultRetryAfter
	}
	seconds, err := strconv.Atoi(header)
	if err != nil || seconds <= 0 {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}
