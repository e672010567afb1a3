// Package api implements the dashboard fetch capability against the EMIS
// REST API.
package api

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/time/rate"

	"github.com/kingrea/emis-dashboard/internal/alerts"
	"github.com/kingrea/emis-dashboard/internal/config"
	"github.com/kingrea/emis-dashboard/internal/plans"
	"github.com/kingrea/emis-dashboard/internal/settings"
	"github.com/kingrea/emis-dashboard/internal/stakeholders"
	"github.com/kingrea/emis-dashboard/internal/store"
)

// RequestIDHeader carries a per-request id so server logs can be matched
// against the dashboard log.
const RequestIDHeader = "X-Request-ID"

const maxErrorBody = 64 << 10

// Logger records client diagnostics. It matches logging.Logger's signature.
type Logger interface {
	Printf(format string, args ...any)
}

// Client talks to the EMIS API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	requestID  func() string
	logger     Logger
}

// Option customizes client construction.
type Option func(*Client)

// WithHTTPClient overrides the underlying HTTP client.
func WithHTTPClient(hc *http.Client) Option {
	return func(c *Client) {
		if hc != nil {
			c.httpClient = hc
		}
	}
}

// WithLogger overrides the default no-op logger.
func WithLogger(l Logger) Option {
	return func(c *Client) {
		if l != nil {
			c.logger = l
		}
	}
}

// WithRequestID replaces the request id generator.
func WithRequestID(gen func() string) Option {
	return func(c *Client) {
		if gen != nil {
			c.requestID = gen
		}
	}
}

// New builds a client from the api section of the project config. A zero
// RequestsPerSecond disables throttling.
func New(cfg config.APIConfig, opts ...Option) *Client {
	limit := rate.Inf
	if cfg.RequestsPerSecond > 0 {
		limit = rate.Limit(cfg.RequestsPerSecond)
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 30 * time.Second
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: timeout},
		limiter:    rate.NewLimiter(limit, 1),
		requestID:  uuid.NewString,
		logger:     nopLogger{},
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	return c
}

// GetAlerts lists alerts.
func (c *Client) GetAlerts(ctx context.Context) (alerts.Page, error) {
	var page alerts.Page
	err := c.get(ctx, "/alerts", nil, &page)
	return page, err
}

// GetAlert fetches one alert by id.
func (c *Client) GetAlert(ctx context.Context, id string) (alerts.Alert, error) {
	var alert alerts.Alert
	err := c.get(ctx, "/alerts/"+url.PathEscape(id), nil, &alert)
	return alert, err
}

// GetPlans lists incident response plans.
func (c *Client) GetPlans(ctx context.Context) (plans.Page, error) {
	var page plans.Page
	err := c.get(ctx, "/plans", nil, &page)
	return page, err
}

// GetPlanActivities lists the activities of one plan.
func (c *Client) GetPlanActivities(ctx context.Context, planID string) (plans.ActivityPage, error) {
	var page plans.ActivityPage
	err := c.get(ctx, "/activities", url.Values{"plan": {planID}}, &page)
	return page, err
}

// GetStakeholders lists stakeholders, optionally matching a free text query.
func (c *Client) GetStakeholders(ctx context.Context, query string) ([]stakeholders.Stakeholder, error) {
	var params url.Values
	if q := strings.TrimSpace(query); q != "" {
		params = url.Values{"q": {q}}
	}
	var page struct {
		Data []stakeholders.Stakeholder `json:"data"`
	}
	if err := c.get(ctx, "/stakeholders", params, &page); err != nil {
		return nil, err
	}
	if page.Data == nil {
		page.Data = []stakeholders.Stakeholder{}
	}
	return page.Data, nil
}

// GetIncidentTypes lists configured incident types.
func (c *Client) GetIncidentTypes(ctx context.Context) (settings.Page, error) {
	var page settings.Page
	err := c.get(ctx, "/incidenttypes", nil, &page)
	return page, err
}

func (c *Client) get(ctx context.Context, path string, params url.Values, out any) error {
	if err := c.limiter.Wait(ctx); err != nil {
		return fmt.Errorf("api: GET %s: %w", path, err)
	}
	target := c.baseURL + path
	if len(params) > 0 {
		target += "?" + params.Encode()
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, target, nil)
	if err != nil {
		return fmt.Errorf("api: build request: %w", err)
	}
	id := c.requestID()
	req.Header.Set("Accept", "application/json")
	req.Header.Set(RequestIDHeader, id)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Printf("api: GET %s [%s] failed: %v", path, id, err)
		return fmt.Errorf("api: GET %s: %w", path, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		errObj := decodeError(resp)
		c.logger.Printf("api: GET %s [%s] -> %d", path, id, resp.StatusCode)
		return errObj
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		if errors.Is(err, io.EOF) {
			return fmt.Errorf("api: GET %s: empty response", path)
		}
		return fmt.Errorf("api: GET %s: decode response: %w", path, err)
	}
	return nil
}

// decodeError reads the server's JSON error body. Bodies that are not JSON
// still produce an ErrorObject carrying the HTTP status.
func decodeError(resp *http.Response) store.ErrorObject {
	var obj store.ErrorObject
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	if len(body) > 0 && json.Unmarshal(body, &obj) != nil {
		obj = store.ErrorObject{DeveloperMessage: strings.TrimSpace(string(body))}
	}
	if obj.Status == 0 {
		obj.Status = resp.StatusCode
	}
	if obj.Code == 0 {
		obj.Code = resp.StatusCode
	}
	if obj.Name == "" {
		obj.Name = "Error"
	}
	if obj.Message == "" {
		obj.Message = http.StatusText(resp.StatusCode)
	}
	return obj
}

type nopLogger struct{}

func (nopLogger) Printf(string, ...any) {}
