package wordpress

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"laundry-admin/internal/entities"
	"laundry-admin/internal/pkg/session"
	"laundry-admin/pkg/logger"
	retrierconfig "laundry-admin/pkg/retrier"
	"laundry-admin/pkg/retrier/backoff_adapter"
)

const (
	serviceName = "wordpress"

	// WordPress caps per_page at 100; one page is the whole working set
	// for a single camp operator.
	perPage = 100

	coreAPIPrefix   = "/wp/v2"
	customAPIPrefix = "/ama/v1"
)

const (
	initialInterval = 100 * time.Millisecond
	maxInterval     = 2 * time.Second
	maxElapsedTime  = 5 * time.Second
	randomization   = 0.5
	multiplier      = 2.0
)

var (
	// ErrSessionExpired means the backend rejected the nonce/cookie pair.
	// The gateway clears the session store before returning it; the current
	// session is over, the process is not.
	ErrSessionExpired = errors.New("wordpress session expired")

	// ErrNotArray marks a list endpoint answering with something other than
	// a JSON array; it is that resource's hard failure.
	ErrNotArray = errors.New("wordpress list response is not an array")
)

type Gateway struct {
	log     gatewayLogger
	client  *http.Client
	baseURL string
	session session.Store
	retrier retrier
}

func New(log gatewayLogger, client *http.Client, baseURL string, store session.Store) *Gateway {
	retryConfig := retrierconfig.Config{
		InitialInterval: initialInterval,
		MaxInterval:     maxInterval,
		MaxElapsedTime:  maxElapsedTime,
		Randomization:   randomization,
		Multiplier:      multiplier,
		ShouldRetry:     isRetryable,
	}

	return &Gateway{
		log:     log.With(logger.NewField("gateway", serviceName)),
		client:  client,
		baseURL: baseURL,
		session: store,
		retrier: backoff_adapter.New(retryConfig),
	}
}

func (g *Gateway) ListOrders(ctx context.Context) ([]entities.RawOrder, error) {
	var models []wpOrder
	if err := g.list(ctx, "laundry_order", &models); err != nil {
		return nil, err
	}

	orders := make([]entities.RawOrder, 0, len(models))
	for _, model := range models {
		orders = append(orders, toRawOrder(model))
	}
	return orders, nil
}

func (g *Gateway) ListServices(ctx context.Context) ([]entities.Service, error) {
	var models []wpService
	if err := g.list(ctx, "service", &models); err != nil {
		return nil, err
	}

	services := make([]entities.Service, 0, len(models))
	for _, model := range models {
		services = append(services, toService(model))
	}
	return services, nil
}

func (g *Gateway) ListPickupSlots(ctx context.Context) ([]entities.PickupSlot, error) {
	var models []wpPickupSlot
	if err := g.list(ctx, "pickup_slot", &models); err != nil {
		return nil, err
	}

	slots := make([]entities.PickupSlot, 0, len(models))
	for _, model := range models {
		slots = append(slots, toPickupSlot(model))
	}
	return slots, nil
}

func (g *Gateway) ListCamps(ctx context.Context) ([]entities.Camp, error) {
	var models []wpCamp
	if err := g.list(ctx, "camp", &models); err != nil {
		return nil, err
	}

	camps := make([]entities.Camp, 0, len(models))
	for _, model := range models {
		camps = append(camps, toCamp(model))
	}
	return camps, nil
}

// UpdateOrderStatus confirms an optimistic status change with the backend.
// Deliberately not retried: the caller reverts and alerts the operator on
// failure instead.
func (g *Gateway) UpdateOrderStatus(ctx context.Context, orderID int64, status entities.OrderStatusType) error {
	body, err := json.Marshal(statusUpdateBody{
		ACF: statusUpdateACF{OrderStatus: status.String()},
	})
	if err != nil {
		return fmt.Errorf("gateway wordpress, encode status update: %w", err)
	}

	url := fmt.Sprintf("%s%s/orders/%d", g.baseURL, customAPIPrefix, orderID)

	start := time.Now()
	statusCode, err := g.do(ctx, http.MethodPut, url, body, nil)
	observeRequest("UpdateOrderStatus", statusCode, start, err)
	if err != nil {
		return fmt.Errorf("gateway wordpress, update order %d: %w", orderID, err)
	}
	return nil
}

// list fetches one page of a wp/v2 resource through the retrier, counting
// attempts and latency in the gateway metrics.
func (g *Gateway) list(ctx context.Context, resource string, out any) error {
	url := fmt.Sprintf("%s%s/%s?per_page=%d", g.baseURL, coreAPIPrefix, resource, perPage)

	var (
		attempt    uint64
		statusCode int
	)
	start := time.Now()

	err := g.retrier.ExecuteWithContext(ctx, func(ctx context.Context) error {
		attempt++
		var err error
		statusCode, err = g.do(ctx, http.MethodGet, url, nil, out)
		return err
	})

	observeRequest(resource, statusCode, start, err)
	if attempt > 1 {
		observeRetries(resource, statusCode, err)
	}

	if err != nil {
		return fmt.Errorf("gateway wordpress, list %s: %w", resource, err)
	}
	return nil
}

// do runs a single HTTP exchange. A 401/403 clears the session store and is
// never retried; out, when non-nil, must decode from a JSON array.
func (g *Gateway) do(ctx context.Context, method, url string, body []byte, out any) (int, error) {
	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reader)
	if err != nil {
		return 0, fmt.Errorf("build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	if creds, ok := g.session.Get(); ok {
		if creds.Nonce != "" {
			req.Header.Set("X-WP-Nonce", creds.Nonce)
		}
		if creds.Cookie != "" {
			req.Header.Set("Cookie", creds.Cookie)
		}
	}

	resp, err := g.client.Do(req)
	if err != nil {
		return 0, err
	}
	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil {
			g.log.Warn("close response body",
				logger.NewField("error", closeErr),
			)
		}
	}()

	if resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden {
		g.session.Clear()
		return resp.StatusCode, ErrSessionExpired
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return resp.StatusCode, &httpError{status: resp.StatusCode}
	}

	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return resp.StatusCode, nil
	}

	payload, err := io.ReadAll(resp.Body)
	if err != nil {
		return resp.StatusCode, fmt.Errorf("read response: %w", err)
	}

	if !looksLikeArray(payload) {
		return resp.StatusCode, ErrNotArray
	}

	if err := json.Unmarshal(payload, out); err != nil {
		return resp.StatusCode, fmt.Errorf("decode response: %w", err)
	}
	return resp.StatusCode, nil
}

func looksLikeArray(payload []byte) bool {
	for _, b := range payload {
		switch b {
		case ' ', '\t', '\n', '\r':
			continue
		default:
			return b == '['
		}
	}
	return false
}

type httpError struct {
	status int
}

func (e *httpError) Error() string {
	return "unexpected http status " + strconv.Itoa(e.status)
}

// isRetryable allows retries on throttling, server-side failures and
// transport errors. Session expiry and client errors are permanent.
func isRetryable(err error) bool {
	if err == nil {
		return false
	}
	if errors.Is(err, ErrSessionExpired) || errors.Is(err, ErrNotArray) {
		return false
	}

	var httpErr *httpError
	if errors.As(err, &httpErr) {
		return httpErr.status == http.StatusTooManyRequests || httpErr.status >= http.StatusInternalServerError
	}

	// Transport-level failure.
	return true
}
