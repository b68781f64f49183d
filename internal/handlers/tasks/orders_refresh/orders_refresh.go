package orders_refresh

import (
	"context"
	"time"
)

type Service interface {
	Refresh(ctx context.Context) error
}

// OrdersRefresh re-pulls the backend snapshot on a timer so the dashboard
// stays current even when no events arrive.
type OrdersRefresh struct {
	service  Service
	interval time.Duration
}

func NewOrdersRefresh(service Service, interval time.Duration) *OrdersRefresh {
	return &OrdersRefresh{
		service:  service,
		interval: interval,
	}
}

func (o *OrdersRefresh) TTL() time.Duration {
	return o.interval
}

func (o *OrdersRefresh) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, o.interval)
	defer cancel()

	return o.service.Refresh(ctxWithTimeout)
}

func (o *OrdersRefresh) Info() string {
	return "orders refresh"
}
