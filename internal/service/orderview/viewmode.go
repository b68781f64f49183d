package orderview

import (
	"strings"

	"laundry-admin/internal/entities"
)

// matchesMode applies the coarse view-mode selector. It runs strictly after
// the filter predicate set; an order must pass both.
func (e *Engine) matchesMode(order entities.Order) bool {
	switch e.mode {
	case entities.ViewToday:
		return e.isToday(order)
	case entities.ViewPending:
		return order.Status != entities.OrderCompleted && order.Status != entities.OrderCancelled
	case entities.ViewCompleted:
		return order.Status == entities.OrderCompleted
	case entities.ViewCancelled:
		return order.Status == entities.OrderCancelled
	default: // entities.ViewAll
		return true
	}
}

// isToday keeps orders whose instant falls on the current calendar date in
// the display zone. Orders whose timestamp cannot be normalized fall back to
// a raw DD/MM/YYYY substring match; absent timestamps are excluded.
func (e *Engine) isToday(order entities.Order) bool {
	if order.Timestamp == "" || order.Timestamp == entities.Sentinel {
		return false
	}

	now := e.now().In(e.loc)

	if instant, ok := e.normalizer.Parse(order.Timestamp); ok {
		local := instant.In(e.loc)
		return local.Year() == now.Year() &&
			local.Month() == now.Month() &&
			local.Day() == now.Day()
	}

	return strings.Contains(order.Timestamp, now.Format("02/01/2006"))
}
