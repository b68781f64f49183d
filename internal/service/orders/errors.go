package orders

import "errors"

var (
	ErrInvalidStatus = errors.New("invalid order status")
	ErrOrderNotFound = errors.New("order not found")
	ErrBackendUpdate = errors.New("backend rejected the status update")
)
