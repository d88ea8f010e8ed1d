package franchiseservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с FranchiseService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента FranchiseService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetFranchise получает франшизу по ID
func (c *Client) GetFranchise(ctx context.Context, franchiseID string) (*Franchise, error) {
	url := fmt.Sprintf("%s/internal/franchises/%s", c.baseURL, franchiseID)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid franchise ID format", ErrInvalidResponse)
	case http.StatusNotFound:
		return nil, ErrFranchiseNotFound
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var franchise Franchise
	if err := json.NewDecoder(resp.Body).Decode(&franchise); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &franchise, nil
}

// GetFranchiseWithGracefulDegradation получает франшизу с graceful degradation
// При недоступности FranchiseService возвращает ErrServiceDegraded,
// что позволяет вызывающему коду пропустить проверки вместимости
func (c *Client) GetFranchiseWithGracefulDegradation(ctx context.Context, franchiseID string) (*Franchise, error) {
	c.log.Info("Fetching franchise franchise_id=%s", franchiseID)

	franchise, err := c.GetFranchise(ctx, franchiseID)
	if err != nil {
		// Если это критичная бизнес-ошибка (франшиза не найдена),
		// пробрасываем её дальше
		if err == ErrFranchiseNotFound {
			c.log.Info("Franchise not found franchise_id=%s", franchiseID)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		// Повышаем уровень логирования до ERROR, чтобы быстрее заметить проблему
		c.log.Error("FranchiseService unavailable, applying graceful degradation for franchise_id=%s: %v", franchiseID, err)
		return nil, fmt.Errorf("%w: franchise_id=%s, error=%v", ErrServiceDegraded, franchiseID, err)
	}

	c.log.Info("Successfully fetched franchise franchise_id=%s, tables=%d", franchiseID, franchise.Tables)
	return franchise, nil
}
