//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orderview_test
package orderview

import (
	"time"

	"laundry-admin/internal/entities"
	"laundry-admin/pkg/logger"
)

type engineLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

// OrderSource yields the current order snapshot. The returned slice is
// treated as read-only.
type OrderSource interface {
	All() []entities.Order
}

// Normalizer turns a raw order timestamp into an instant.
type Normalizer interface {
	Parse(raw string) (time.Time, bool)
}

// Notifier pushes view events towards connected dashboard clients.
type Notifier interface {
	OrderHighlighted(orderID int64)
}
