package pricingservice

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"
)

// Client клиент для работы с PricingService
type Client struct {
	baseURL    string
	httpClient *http.Client
	log        Logger
}

// NewClient создает новый экземпляр клиента PricingService
func NewClient(baseURL string, timeout time.Duration, log Logger) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
		},
		log: log,
	}
}

// GetConfig получает конфигурацию цен абонемента
func (c *Client) GetConfig(ctx context.Context) (*Config, error) {
	endpoint := fmt.Sprintf("%s/internal/pricing/abonnement", c.baseURL)

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

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return nil, fmt.Errorf("%w: unexpected status code %d: %s", ErrInvalidResponse, resp.StatusCode, string(body))
	}

	var cfg Config
	if err := json.NewDecoder(resp.Body).Decode(&cfg); err != nil {
		return nil, fmt.Errorf("%w: failed to decode response: %v", ErrInvalidResponse, err)
	}

	// Проверяем, что по конфигурации можно посчитать часы и цену
	if cfg.HourlyRate <= 0 || cfg.SquareMetersPerHour <= 0 {
		return nil, fmt.Errorf("%w: hourly_rate=%v square_meters_per_hour=%v",
			ErrInvalidConfig, cfg.HourlyRate, cfg.SquareMetersPerHour)
	}

	c.log.Info("Fetched pricing config hourly_rate=%.2f m2_per_hour=%.1f", cfg.HourlyRate, cfg.SquareMetersPerHour)
	return &cfg, nil
}
