//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=filter_options_get_test
package filter_options_get

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
	FilterOptions() entities.FilterOptions
}
