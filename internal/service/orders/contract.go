//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_test
package orders

import (
	"context"

	"laundry-admin/internal/entities"
	"laundry-admin/pkg/logger"
)

type serviceLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// Gateway is the WordPress backend read/write surface.
type Gateway interface {
	ListOrders(ctx context.Context) ([]entities.RawOrder, error)
	ListServices(ctx context.Context) ([]entities.Service, error)
	ListPickupSlots(ctx context.Context) ([]entities.PickupSlot, error)
	ListCamps(ctx context.Context) ([]entities.Camp, error)
	UpdateOrderStatus(ctx context.Context, orderID int64, status entities.OrderStatusType) error
}

// Cache is the in-memory snapshot the view engine reads from.
type Cache interface {
	Replace(orders []entities.Order)
	All() []entities.Order
	Get(id int64) (entities.Order, bool)
	SetStatus(id int64, status entities.OrderStatusType) (entities.OrderStatusType, bool)
}

// Repository persists the last good snapshot across restarts and backend
// outages.
type Repository interface {
	ReplaceSnapshot(ctx context.Context, orders []entities.Order) error
	LoadSnapshot(ctx context.Context) ([]entities.Order, error)
}

// ViewEngine is re-evaluated after every snapshot or status change.
type ViewEngine interface {
	Evaluate()
}
