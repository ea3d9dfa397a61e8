// Package client HTTP клиент платежного шлюза.
package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
)

const RoutePaymentStatus = "/api/payments/%s"

// Границы значения заголовка Retry-After в секундах.
const (
	minRetryAfter     = 1
	maxRetryAfter     = 120
	defaultRetryAfter = 60 * time.Second
)

type StatusType string

const (
	StatusPending StatusType = "PENDING"
	StatusPaid    StatusType = "PAID"
	StatusFailed  StatusType = "FAILED"
)

type Response struct {
	ExternalID string          `json:"payment"`
	Status     StatusType      `json:"status"`
	Amount     decimal.Decimal `json:"amount"`
}

// HTTPClient реализация Client поверх net/http.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// GetPaymentStatus запрашивает статус платежа по его внешнему идентификатору.
// На 429 возвращает *TooManyRequestError, на любой другой статус кроме 200 - *StatusCodeError.
//
//nolint:nonamedreturns
func (c HTTPClient) GetPaymentStatus(ctx context.Context, externalID string) (response *Response, err error) {
	reqURL := c.baseURL + fmt.Sprintf(RoutePaymentStatus, url.PathEscape(externalID))

	req, reqErr := http.NewRequestWithContext(ctx, http.MethodGet, reqURL, nil)
	if reqErr != nil {
		return nil, fmt.Errorf("create request: %w", reqErr)
	}

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return nil, fmt.Errorf("do request: %w", doErr)
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			err = errors.Join(err, closeErr)
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return nil, NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}
	if resp.StatusCode != http.StatusOK {
		return nil, NewStatusCodeError(resp.StatusCode)
	}

	body, readErr := io.ReadAll(resp.Body)
	if readErr != nil {
		return nil, fmt.Errorf("read response: %w", readErr)
	}
	if jsonErr := json.Unmarshal(body, &response); jsonErr != nil {
		return nil, fmt.Errorf("parse response: %w", jsonErr)
	}
	return response, nil
}

// parseRetryAfter некорректное или выходящее за границы значение заменяется на 60 секунд.
func parseRetryAfter(v string) time.Duration {
	seconds, err := strconv.Atoi(v)
	if err != nil || seconds < minRetryAfter || seconds > maxRetryAfter {
		return defaultRetryAfter
	}
	return time.Duration(seconds) * time.Second
}
