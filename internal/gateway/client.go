// Package gateway is the single point of outbound communication with the
// remote HR service. Every request goes through one client that attaches
// the bearer token, bounds the call with a fixed timeout, and classifies
// failures uniformly before handing them back to the caller.
package gateway

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"net"
	"net/http"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/spec-kit/hr-console/internal/config"
	"github.com/spec-kit/hr-console/internal/events"
	"github.com/spec-kit/hr-console/internal/observability"
	"github.com/spec-kit/hr-console/internal/session"
	"github.com/spec-kit/hr-console/pkg/util"
)

// Dependencies bundles collaborators for the client.
type Dependencies struct {
	Store      session.Store
	Notifier   Notifier
	Navigator  Navigator
	Dispatcher events.Dispatcher
	Metrics    *observability.Metrics
	Logger     *zap.Logger
}

// Client executes requests against the remote HR service.
type Client struct {
	baseURL    string
	http       *http.Client
	store      session.Store
	notifier   Notifier
	navigator  Navigator
	dispatcher events.Dispatcher
	metrics    *observability.Metrics
	logger     *zap.Logger
}

// New builds the client. The timeout applies to every request.
func New(cfg config.APIConfig, deps Dependencies) *Client {
	return &Client{
		baseURL:    cfg.BaseURL,
		http:       &http.Client{Timeout: cfg.Timeout()},
		store:      deps.Store,
		notifier:   deps.Notifier,
		navigator:  deps.Navigator,
		dispatcher: deps.Dispatcher,
		metrics:    deps.Metrics,
		logger:     deps.Logger,
	}
}

// Get issues a GET and decodes the response into out.
func (c *Client) Get(ctx context.Context, path string, out any) error {
	return c.do(ctx, http.MethodGet, path, nil, out)
}

// Post issues a POST with a JSON body.
func (c *Client) Post(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPost, path, body, out)
}

// Put issues a PUT with a JSON body.
func (c *Client) Put(ctx context.Context, path string, body, out any) error {
	return c.do(ctx, http.MethodPut, path, body, out)
}

// Delete issues a DELETE.
func (c *Client) Delete(ctx context.Context, path string) error {
	return c.do(ctx, http.MethodDelete, path, nil, nil)
}

func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	started := time.Now()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		if err != nil {
			return util.NewParseError(err)
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return util.NewNetworkError(err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("X-Request-ID", uuid.NewString())
	if token := c.store.Current().Token; token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return c.fail(method, path, c.classifyTransport(err))
	}
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return c.fail(method, path, util.NewNetworkError(err))
	}

	c.metrics.RecordRequest(path, method, resp.StatusCode, time.Since(started))

	switch {
	case resp.StatusCode == http.StatusUnauthorized:
		return c.fail(method, path, c.expireSession(path))
	case resp.StatusCode >= http.StatusInternalServerError:
		c.notifier.Error("Server error. Please try again later.")
		return c.fail(method, path, util.NewServerError(resp.StatusCode, serverMessage(raw)))
	case resp.StatusCode >= http.StatusBadRequest:
		message := serverMessage(raw)
		c.notifier.Error(message)
		return c.fail(method, path, util.NewValidationError(resp.StatusCode, message))
	}

	if out != nil {
		if err := json.Unmarshal(raw, out); err != nil {
			return c.fail(method, path, util.NewParseError(err))
		}
	}
	return nil
}

// expireSession implements the unconditional 401 policy: clear token and
// user together, surface the notice, and command navigation to login. The
// error is still returned so the caller can react locally.
func (c *Client) expireSession(path string) error {
	if err := c.store.Clear(); err != nil {
		c.logger.Warn("failed to clear session", zap.Error(err))
	}
	c.notifier.Error("Session expired. Please login again.")
	c.navigator.GoToLogin()

	if c.dispatcher != nil {
		_ = c.dispatcher.Publish(context.Background(), events.Event{
			ID:        uuid.NewString(),
			Type:      events.EventSessionExpired,
			Timestamp: time.Now(),
			Payload:   events.SessionExpiredPayload{Endpoint: path},
		})
	}
	return util.NewAuthExpired("session expired")
}

func (c *Client) classifyTransport(err error) error {
	if errors.Is(err, context.DeadlineExceeded) {
		c.notifier.Error("Request timeout. Check your internet connection.")
		return util.NewTimeout(err)
	}
	var netErr net.Error
	if errors.As(err, &netErr) && netErr.Timeout() {
		c.notifier.Error("Request timeout. Check your internet connection.")
		return util.NewTimeout(err)
	}
	c.notifier.Error("Unknown error")
	return util.NewNetworkError(err)
}

func (c *Client) fail(method, path string, err error) error {
	apiErr := util.ToAPIError(err)
	c.metrics.RecordError(path, method, string(apiErr.Kind))
	c.logger.Warn("request failed",
		zap.String("method", method),
		zap.String("path", path),
		zap.String("kind", string(apiErr.Kind)),
		zap.Error(apiErr),
	)
	return err
}

// serverMessage extracts the service-provided message from an error body.
// The remote service uses both "message" and "error" fields.
func serverMessage(raw []byte) string {
	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return "Unknown error"
}
