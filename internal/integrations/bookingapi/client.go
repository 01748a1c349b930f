package bookingapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/m04kA/SMC-BookingCalendar/internal/domain"
	"github.com/m04kA/SMC-BookingCalendar/internal/session"
)

const (
	pathGetAll = "/booking/getAllBookings"
	pathCreate = "/booking/booking-create"
	pathUpdate = "/booking/updateBooking/"
	pathDelete = "/booking/deleteBooking/"
)

// Client клиент REST бэкенда бронирований
type Client struct {
	baseURL      string
	serviceToken string
	httpClient   *http.Client
	log          Logger
}

// NewClient создает новый экземпляр клиента.
// serviceToken используется, когда в контексте нет сессии пользователя (фоновые задачи)
func NewClient(baseURL string, timeout time.Duration, serviceToken string, log Logger) *Client {
	return &Client{
		baseURL:      strings.TrimRight(baseURL, "/"),
		serviceToken: serviceToken,
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchBookings получает все бронирования в порядке, в котором их отдаёт бэкенд
func (c *Client) FetchBookings(ctx context.Context) ([]domain.RawBooking, error) {
	env, err := c.do(ctx, http.MethodGet, pathGetAll, nil)
	if err != nil {
		return nil, err
	}
	if !env.Success {
		return nil, fmt.Errorf("%w: FetchBookings - %s", ErrRejected, env.Message)
	}

	bookings := make([]domain.RawBooking, 0)
	if len(env.Data) > 0 && !bytes.Equal(env.Data, []byte("null")) {
		if err := json.Unmarshal(env.Data, &bookings); err != nil {
			return nil, fmt.Errorf("%w: FetchBookings - decode data: %v", ErrInvalidResponse, err)
		}
	}

	c.log.Info("Fetched %d bookings from booking backend", len(bookings))
	return bookings, nil
}

// CreateBooking создает бронирование
func (c *Client) CreateBooking(ctx context.Context, in domain.BookingInput) error {
	env, err := c.do(ctx, http.MethodPost, pathCreate, toPayload(in))
	if err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("%w: CreateBooking - %s", ErrRejected, env.Message)
	}
	return nil
}

// UpdateBooking изменяет бронирование
func (c *Client) UpdateBooking(ctx context.Context, id string, in domain.BookingInput) error {
	env, err := c.do(ctx, http.MethodPut, pathUpdate+url.PathEscape(id), toPayload(in))
	if err != nil {
		return err
	}
	if !env.Success {
		return fmt.Errorf("%w: UpdateBooking - id=%s: %s", ErrRejected, id, env.Message)
	}
	return nil
}

// DeleteBooking удаляет бронирование. Успехом считается только statusCode=200 в теле ответа
func (c *Client) DeleteBooking(ctx context.Context, id string) error {
	env, err := c.do(ctx, http.MethodDelete, pathDelete+url.PathEscape(id), nil)
	if err != nil {
		return err
	}
	if env.StatusCode != http.StatusOK {
		return fmt.Errorf("%w: DeleteBooking - id=%s, statusCode=%d: %s", ErrRejected, id, env.StatusCode, env.Message)
	}
	return nil
}

func (c *Client) do(ctx context.Context, method, path string, body interface{}) (*Envelope, error) {
	var reader io.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: failed to encode request: %v", ErrInternal, err)
		}
		reader = bytes.NewReader(data)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Content-Type", "application/json")
	if token := c.token(ctx); token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.log.Error("Booking backend request %s %s failed: %v", method, path, err)
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK, http.StatusCreated:
		// Продолжаем обработку
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: %s", ErrRejected, readMessage(resp.Body))
	case http.StatusUnauthorized, http.StatusForbidden:
		return nil, fmt.Errorf("%w: status %d", ErrUnauthorized, resp.StatusCode)
	case http.StatusNotFound:
		return nil, fmt.Errorf("%w: %s %s", ErrBookingNotFound, method, path)
	default:
		respBody, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(respBody))
	}

	// Парсим ответ
	var env Envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &env, nil
}

// token токен текущего пользователя, иначе служебный
func (c *Client) token(ctx context.Context) string {
	if s, ok := session.FromContext(ctx); ok && s.Token != "" {
		return s.Token
	}
	return c.serviceToken
}

// readMessage достаёт message из тела ошибки, если оно в формате Envelope
func readMessage(r io.Reader) string {
	data, _ := io.ReadAll(r)

	var env Envelope
	if err := json.Unmarshal(data, &env); err == nil && env.Message != "" {
		return env.Message
	}
	return string(data)
}
