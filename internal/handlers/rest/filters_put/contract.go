//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=filters_put_test
package filters_put

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
	StageFilters(filters entities.Filters)
}
