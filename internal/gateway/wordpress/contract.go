package wordpress

import (
	"context"

	"laundry-admin/pkg/logger"
)

type gatewayLogger interface {
	Info(msg string, fields ...logger.Field)
	Warn(msg string, fields ...logger.Field)
	Error(msg string, fields ...logger.Field)
	With(fields ...logger.Field) logger.Logger
}

type retrier interface {
	ExecuteWithContext(ctx context.Context, fn func(context.Context) error) error
}
