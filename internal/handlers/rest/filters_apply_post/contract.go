//go:generate mockgen -source=contract.go -destination=./contract_mocks_test.go -package=filters_apply_post_test
package filters_apply_post

import (
	"laundry-admin/pkg/logger"
)

type handlerLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type Service interface {
	ApplyFilters()
}
