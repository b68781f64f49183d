//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=orders_get_test
package orders_get

import (
	"laundry-admin/internal/entities"
	"laundry-admin/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	View() entities.OrderView
}

type Formatter interface {
	FormatPerth(raw string) string
}
