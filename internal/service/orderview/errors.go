package orderview

import "errors"

var (
	ErrInvalidViewMode = errors.New("invalid view mode")
)
