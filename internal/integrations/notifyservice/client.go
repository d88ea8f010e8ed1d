package notifyservice

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"
)

// Client клиент для работы с NotifyService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента NotifyService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// SendCartReminder отправляет гостю напоминание о незавершенном бронировании
func (c *Client) SendCartReminder(ctx context.Context, request ReminderRequest) (*ReminderResponse, error) {
	url := fmt.Sprintf("%s/internal/notifications/cart-reminder", c.baseURL)

	payload, err := json.Marshal(request)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to marshal request: %v", ErrInternal, err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(payload))
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
	case http.StatusOK, http.StatusAccepted:
		// Продолжаем обработку
	case http.StatusBadRequest, http.StatusUnprocessableEntity:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: %s", ErrDeliveryRejected, string(body))
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	// Парсим ответ
	var response ReminderResponse
	if err := json.NewDecoder(resp.Body).Decode(&response); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &response, nil
}

// SendCartReminderWithGracefulDegradation отправляет напоминание с graceful degradation
// При недоступности NotifyService возвращает ErrServiceDegraded,
// чтобы вызывающий код не помечал напоминание как отправленное
func (c *Client) SendCartReminderWithGracefulDegradation(ctx context.Context, request ReminderRequest) (*ReminderResponse, error) {
	c.log.Info("Sending cart reminder franchise_id=%s, guest_email=%s", request.FranchiseID, request.GuestEmail)

	response, err := c.SendCartReminder(ctx, request)
	if err != nil {
		// Отклонение доставки - бизнес-ошибка, пробрасываем дальше
		if errors.Is(err, ErrDeliveryRejected) {
			c.log.Warn("Cart reminder rejected franchise_id=%s: %v", request.FranchiseID, err)
			return nil, err
		}

		// Для всех остальных ошибок (недоступность сервиса, timeout, ошибки парсинга и т.д.)
		// применяем graceful degradation - возвращаем ErrServiceDegraded с контекстом
		c.log.Error("NotifyService unavailable, applying graceful degradation for franchise_id=%s: %v", request.FranchiseID, err)
		return nil, fmt.Errorf("%w: franchise_id=%s, error=%v", ErrServiceDegraded, request.FranchiseID, err)
	}

	c.log.Info("Cart reminder sent message_id=%s, channel=%s", response.MessageID, response.Channel)
	return response, nil
}
