package orderview

import (
	"github.com/shopspring/decimal"
	"laundry-admin/internal/entities"
)

// matchesFilters evaluates the fine-grained predicate set as a conjunction.
// A sentinel selection ("all", or an empty price bound) always passes, so an
// all-default filter state is the identity over any order list.
func matchesFilters(order entities.Order, filters entities.Filters) bool {
	if filters.CustomerName != entities.FilterAll && order.CustomerName != filters.CustomerName {
		return false
	}
	if filters.CampName != entities.FilterAll && order.CampName != filters.CampName {
		return false
	}
	if filters.RoomNumber != entities.FilterAll && order.RoomNumber != filters.RoomNumber {
		return false
	}
	if filters.Service != entities.FilterAll && !hasService(order, filters.Service) {
		return false
	}
	if filters.PaymentStatus != entities.FilterAll {
		confirmed := filters.PaymentStatus == "confirmed"
		if order.PaymentConfirmed != confirmed {
			return false
		}
	}
	if filters.PickupMethod != entities.FilterAll && order.PickupMethod != filters.PickupMethod {
		return false
	}

	if filters.MinPrice != "" {
		bound, err := decimal.NewFromString(filters.MinPrice)
		if err != nil || totalPrice(order).LessThan(bound) {
			return false
		}
	}
	if filters.MaxPrice != "" {
		bound, err := decimal.NewFromString(filters.MaxPrice)
		if err != nil || totalPrice(order).GreaterThan(bound) {
			return false
		}
	}

	return true
}

func hasService(order entities.Order, name string) bool {
	for _, service := range order.Services {
		if service.Name == name {
			return true
		}
	}
	return false
}

// totalPrice reads the order total for numeric comparison. Prices stay
// decimal strings everywhere else; unparseable totals count as zero.
func totalPrice(order entities.Order) decimal.Decimal {
	total, err := decimal.NewFromString(order.TotalPrice)
	if err != nil {
		return decimal.Zero
	}
	return total
}
