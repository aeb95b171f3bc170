package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"golang.org/x/exp/slog"

	"heroes/internal/app/client/config"
)

const (
	healthPath      = "/api/v1/health"
	requestIDHeader = "X-Request-ID"
)

type httpClient struct {
	client     *http.Client
	log        *slog.Logger
	baseURL    string
	heroesPath string
	userAgent  string
}

func newHTTPClient(cfg *config.Config, log *slog.Logger) *httpClient {
	client := &http.Client{
		Timeout: cfg.RequestTimeout,
		Transport: &http.Transport{
			MaxIdleConns:        100,
			IdleConnTimeout:     90 * time.Second,
			MaxIdleConnsPerHost: 10,
		},
	}

	return &httpClient{
		client:     client,
		log:        log,
		baseURL:    cfg.BaseURL(),
		heroesPath: cfg.HeroesPath,
		userAgent:  "Heroes-Client/1.0",
	}
}

// heroesURL собирает адрес коллекции: suffix вида "", "/12" или "/"
func (h *httpClient) heroesURL(suffix string, query url.Values) string {
	u := h.baseURL + h.heroesPath + suffix
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// healthCheck проверяет доступность сервера
func (h *httpClient) healthCheck(ctx context.Context) error {
	resp, err := h.doRequest(ctx, http.MethodGet, h.baseURL+healthPath, nil)
	if err != nil {
		return err
	}
	return h.parseResponse(resp, nil)
}

func (h *httpClient) doRequest(ctx context.Context, method, rawURL string, body any) (*http.Response, error) {
	var reqBody io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("%w: маршалинг тела запроса: %v", ErrRequestFailed, err)
		}
		reqBody = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, rawURL, reqBody)
	if err != nil {
		return nil, fmt.Errorf("%w: создание запроса: %v", ErrRequestFailed, err)
	}

	requestID := uuid.NewString()
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("User-Agent", h.userAgent)
	req.Header.Set(requestIDHeader, requestID)

	h.log.Debug("Отправка запроса",
		"method", method,
		"url", req.URL.String(),
		"request_id", requestID,
	)

	resp, err := h.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrRequestFailed, err)
	}

	return resp, nil
}

// parseResponse декодирует 2xx-ответ в result; пустое тело оставляет result нетронутым
func (h *httpClient) parseResponse(resp *http.Response, result any) error {
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: чтение ответа: %v", ErrRequestFailed, err)
	}

	h.log.Debug("Получен ответ",
		"status", resp.StatusCode,
		"body", string(body),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		if text := errorText(body); text != "" {
			return fmt.Errorf("%w: статус %d: %s", ErrRequestFailed, resp.StatusCode, text)
		}
		return fmt.Errorf("%w: статус %d", ErrRequestFailed, resp.StatusCode)
	}

	if result == nil || len(bytes.TrimSpace(body)) == 0 {
		return nil
	}
	if err := json.Unmarshal(body, result); err != nil {
		return fmt.Errorf("%w: парсинг ответа: %v", ErrRequestFailed, err)
	}
	return nil
}

// errorText достает текст ошибки из problem+json (detail) или {"error": ...}
func errorText(body []byte) string {
	var errResp struct {
		Error  string `json:"error"`
		Detail string `json:"detail"`
		Title  string `json:"title"`
	}
	if err := json.Unmarshal(body, &errResp); err != nil {
		return ""
	}
	switch {
	case errResp.Detail != "":
		return errResp.Detail
	case errResp.Error != "":
		return errResp.Error
	default:
		return errResp.Title
	}
}
