package providerservice

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"github.com/m04kA/SMC-IntakeService/internal/domain"
)

// Client клиент для работы с ProviderService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента ProviderService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// FetchCandidates получает исполнителей рядом с адресом вместе с их недельной доступностью
func (c *Client) FetchCandidates(ctx context.Context, params Params) ([]domain.Provider, error) {
	query := url.Values{}
	if params.Postcode != "" {
		query.Set("postcode", params.Postcode)
	}
	query.Set("lat", strconv.FormatFloat(params.Latitude, 'f', -1, 64))
	query.Set("lng", strconv.FormatFloat(params.Longitude, 'f', -1, 64))
	endpoint := fmt.Sprintf("%s/internal/providers?%s", c.baseURL, query.Encode())

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
		// Нет исполнителей в регионе
		c.log.Info("No providers found postcode=%s", params.Postcode)
		return []domain.Provider{}, nil
	default:
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("%w: failed to read response: %v", ErrInternal, err)
	}

	result, err := ParseProviders(body, c.log)
	if err != nil {
		return nil, fmt.Errorf("%w: response is not a provider list", err)
	}

	c.log.Info("Fetched %d providers postcode=%s", len(result), params.Postcode)
	return result, nil
}
