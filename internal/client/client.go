package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/kjstillabower/weathercli/internal/observability"
)

var (
	// ErrLocationNotFound means the geocoder returned zero matches.
	ErrLocationNotFound = errors.New("location not found")
	// ErrNetwork covers transport failures, timeouts, and non-2xx responses.
	ErrNetwork = errors.New("network failure")
	// ErrBadResponse means the endpoint answered but the body was malformed
	// or missing required fields.
	ErrBadResponse = errors.New("bad response")
)

// Options configures a Client. Zero-value fields fall back to safe defaults.
type Options struct {
	GeocodeURL   string
	ForecastURL  string
	Timeout      time.Duration
	GeocodeLimit int
	ForecastDays int
	Limiter      *rate.Limiter // optional; polite throttle for the free API
}

// Client talks to the Open-Meteo geocoding and forecast endpoints. One
// outbound request per call, no retries: a failed call surfaces immediately
// to the caller.
type Client struct {
	geocodeURL   string
	forecastURL  string
	geocodeLimit int
	forecastDays int
	limiter      *rate.Limiter
	http         *http.Client
	logger       *zap.Logger
}

func New(opts Options, logger *zap.Logger) *Client {
	if logger == nil {
		logger = zap.NewNop()
	}
	if opts.Timeout <= 0 {
		opts.Timeout = 10 * time.Second
	}
	if opts.GeocodeLimit <= 0 {
		opts.GeocodeLimit = 5
	}
	if opts.ForecastDays <= 0 {
		opts.ForecastDays = 5
	}
	return &Client{
		geocodeURL:   opts.GeocodeURL,
		forecastURL:  opts.ForecastURL,
		geocodeLimit: opts.GeocodeLimit,
		forecastDays: opts.ForecastDays,
		limiter:      opts.Limiter,
		http:         &http.Client{Timeout: opts.Timeout},
		logger:       logger,
	}
}

// get issues a single GET against endpoint with params and decodes the JSON
// body into v. The endpoint name labels metrics and logs.
func (c *Client) get(ctx context.Context, name, endpoint string, params url.Values, v any) error {
	if c.limiter != nil {
		if err := c.limiter.Wait(ctx); err != nil {
			return fmt.Errorf("%w: %v", ErrNetwork, err)
		}
	}

	reqCtx, cancel := context.WithTimeout(ctx, c.http.Timeout)
	defer cancel()

	base, err := url.Parse(endpoint)
	if err != nil {
		return fmt.Errorf("%w: invalid endpoint URL %q: %v", ErrNetwork, endpoint, err)
	}
	base.RawQuery = params.Encode()

	req, err := http.NewRequestWithContext(reqCtx, http.MethodGet, base.String(), nil)
	if err != nil {
		return fmt.Errorf("%w: build request: %v", ErrNetwork, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Correlation-ID", uuid.NewString())

	start := time.Now()
	resp, err := c.http.Do(req)
	duration := time.Since(start)
	if err != nil {
		observability.APICallsTotal.WithLabelValues(name, "error").Inc()
		observability.APIDuration.WithLabelValues(name).Observe(duration.Seconds())
		if errors.Is(err, context.DeadlineExceeded) || errors.Is(err, context.Canceled) {
			return fmt.Errorf("%w: request timeout: %v", ErrNetwork, err)
		}
		return fmt.Errorf("%w: %v", ErrNetwork, err)
	}
	defer resp.Body.Close()

	status := statusLabel(resp.StatusCode)
	observability.APICallsTotal.WithLabelValues(name, status).Inc()
	observability.APIDuration.WithLabelValues(name).Observe(duration.Seconds())
	c.logger.Debug("api call",
		zap.String("endpoint", name),
		zap.Int("status", resp.StatusCode),
		zap.Duration("duration", duration),
	)

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return fmt.Errorf("%w: HTTP %d from %s endpoint", ErrNetwork, resp.StatusCode, name)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: read response body: %v", ErrNetwork, err)
	}
	if err := json.Unmarshal(body, v); err != nil {
		return fmt.Errorf("%w: parse %s response: %v", ErrBadResponse, name, err)
	}
	return nil
}

func statusLabel(statusCode int) string {
	if statusCode >= 200 && statusCode < 300 {
		return "success"
	}
	if statusCode >= 400 && statusCode < 500 {
		return "client_error"
	}
	if statusCode >= 500 {
		return "server_error"
	}
	return "error"
}
