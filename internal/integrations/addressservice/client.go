package addressservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"
)

// Client клиент для работы с AddressService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента AddressService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// Lookup ищет адрес по postcode, huisnummer и toevoeging
func (c *Client) Lookup(ctx context.Context, postcode, huisnummer, toevoeging string) (*Address, error) {
	query := url.Values{}
	query.Set("postcode", strings.ReplaceAll(postcode, " ", ""))
	query.Set("huisnummer", huisnummer)
	if toevoeging != "" {
		query.Set("toevoeging", toevoeging)
	}
	endpoint := fmt.Sprintf("%s/internal/addresses?%s", c.baseURL, query.Encode())

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to create request: %v", ErrInternal, err)
	}

	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to execute request: %v", ErrInternal, err)
	}
	defer resp.Body.Close()

	// Обработка статус-кодов
	switch resp.StatusCode {
	case http.StatusOK:
		// Продолжаем обработку
	case http.StatusNotFound:
		c.log.Info("Address not found postcode=%s huisnummer=%s", postcode, huisnummer)
		return nil, ErrAddressNotFound
	case http.StatusBadRequest:
		return nil, fmt.Errorf("%w: invalid address parameters", ErrInvalidResponse)
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var address Address
	if err := json.NewDecoder(resp.Body).Decode(&address); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	return &address, nil
}
