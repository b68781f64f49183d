//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=order_created_test
package order_created

import (
	"context"

	"laundry-admin/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type OrdersService interface {
	Refresh(ctx context.Context) error
}

type ViewEngine interface {
	RequestHighlight(orderID int64)
}

type Broadcaster interface {
	BroadcastNewOrder(message string, orderID int64)
}
