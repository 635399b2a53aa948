package heavens

import (
	"context"
	"log/slog"
	"strconv"
	"time"

	"github.com/go-resty/resty/v2"

	"github.com/kiyo-astro/heavens-above/internal/metrics"
)

// DefaultBaseURL is the heavens-above site root.
const DefaultBaseURL = "https://www.heavens-above.com"

const defaultTimeout = 30 * time.Second

// Endpoints, relative to the base URL.
const (
	PassSummaryPath   = "/PassSummary.aspx"
	PassDetailPath    = "/passdetails.aspx"
	PassSkyChartPath  = "/PassSkyChart2.ashx"
	WholeSkyChartPath = "/wholeskychart.ashx"
)

// endpoint names used in logs and metric labels.
const (
	endpointSummary   = "pass_summary"
	endpointDetail    = "pass_detail"
	endpointPassChart = "pass_chart"
	endpointSkyChart  = "wholesky_chart"
)

// Client issues single-shot GET requests against heavens-above.
// It never retries; every non-2xx response is an error.
type Client struct {
	rc     *resty.Client
	logger *slog.Logger
}

// Option configures a Client.
type Option func(*Client)

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(c *Client) {
		c.rc.SetTimeout(d)
	}
}

// WithUserAgent sets the User-Agent header sent with every request.
func WithUserAgent(ua string) Option {
	return func(c *Client) {
		if ua != "" {
			c.rc.SetHeader("User-Agent", ua)
		}
	}
}

// NewClient creates a Client rooted at baseURL (DefaultBaseURL if empty).
func NewClient(baseURL string, logger *slog.Logger, opts ...Option) *Client {
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	c := &Client{
		rc: resty.New().
			SetBaseURL(baseURL).
			SetTimeout(defaultTimeout).
			SetRetryCount(0),
		logger: logger,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// FetchSummary returns the raw pass summary HTML.
func (c *Client) FetchSummary(ctx context.Context, req SummaryRequest) (string, error) {
	body, err := c.get(ctx, endpointSummary, PassSummaryPath, req.params())
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchDetail returns the raw pass detail HTML.
func (c *Client) FetchDetail(ctx context.Context, req DetailRequest) (string, error) {
	body, err := c.get(ctx, endpointDetail, PassDetailPath, req.params())
	if err != nil {
		return "", err
	}
	return string(body), nil
}

// FetchPassChart returns the chart image for one pass.
func (c *Client) FetchPassChart(ctx context.Context, req PassChartRequest) ([]byte, error) {
	return c.get(ctx, endpointPassChart, PassSkyChartPath, req.params())
}

// FetchSkyChart returns the whole-sky chart image.
func (c *Client) FetchSkyChart(ctx context.Context, req SkyChartRequest) ([]byte, error) {
	return c.get(ctx, endpointSkyChart, WholeSkyChartPath, req.params())
}

func (c *Client) get(ctx context.Context, endpoint, path string, params map[string]string) ([]byte, error) {
	start := time.Now()
	resp, err := c.rc.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)
	duration := time.Since(start)

	if err != nil {
		metrics.ObserveUpstream(endpoint, "error", duration)
		c.logger.Warn("upstream request failed",
			"component", "heavens",
			"endpoint", endpoint,
			"duration_ms", duration.Milliseconds(),
			"error", err,
		)
		return nil, &RequestError{Endpoint: endpoint, Err: err}
	}

	code := resp.StatusCode()
	metrics.ObserveUpstream(endpoint, strconv.Itoa(code), duration)
	c.logger.Debug("upstream request",
		"component", "heavens",
		"endpoint", endpoint,
		"status", code,
		"bytes", len(resp.Body()),
		"duration_ms", duration.Milliseconds(),
	)

	if !resp.IsSuccess() {
		return nil, &RequestError{Endpoint: endpoint, StatusCode: code}
	}
	return resp.Body(), nil
}
