package orders

import (
	"encoding/json"
	"fmt"

	"laundry-admin/internal/entities"
)

func FromDomain(position int, order *entities.Order) (*OrderDB, error) {
	if order == nil {
		return nil, nil
	}

	services, err := json.Marshal(order.Services)
	if err != nil {
		return nil, fmt.Errorf("marshal services for order %d: %w", order.ID, err)
	}

	var pickupSlot []byte
	if order.PickupSlot != nil {
		pickupSlot, err = json.Marshal(order.PickupSlot)
		if err != nil {
			return nil, fmt.Errorf("marshal pickup slot for order %d: %w", order.ID, err)
		}
	}

	return &OrderDB{
		Position:            position,
		ID:                  order.ID,
		Title:               order.Title,
		CustomerName:        order.CustomerName,
		RoomNumber:          order.RoomNumber,
		PickupMethod:        order.PickupMethod,
		PaymentConfirmed:    order.PaymentConfirmed,
		TotalPrice:          order.TotalPrice,
		SpecialInstructions: order.SpecialInstructions,
		Status:              order.Status.String(),
		OrderTimestamp:      order.Timestamp,
		CampName:            order.CampName,
		Services:            services,
		PickupSlot:          pickupSlot,
		DateCreated:         order.DateCreated,
	}, nil
}

func ToDomain(model *OrderDB) (*entities.Order, error) {
	if model == nil {
		return nil, nil
	}

	var services []entities.Service
	if len(model.Services) > 0 {
		if err := json.Unmarshal(model.Services, &services); err != nil {
			return nil, fmt.Errorf("unmarshal services for order %d: %w", model.ID, err)
		}
	}

	var pickupSlot *entities.PickupSlot
	if len(model.PickupSlot) > 0 {
		pickupSlot = &entities.PickupSlot{}
		if err := json.Unmarshal(model.PickupSlot, pickupSlot); err != nil {
			return nil, fmt.Errorf("unmarshal pickup slot for order %d: %w", model.ID, err)
		}
	}

	status := entities.OrderStatusType(model.Status)
	if !entities.IsValidOrderStatus(model.Status) {
		status = entities.OrderPending
	}

	return &entities.Order{
		ID:                  model.ID,
		Title:               model.Title,
		CustomerName:        model.CustomerName,
		RoomNumber:          model.RoomNumber,
		PickupMethod:        model.PickupMethod,
		PaymentConfirmed:    model.PaymentConfirmed,
		TotalPrice:          model.TotalPrice,
		SpecialInstructions: model.SpecialInstructions,
		Status:              status,
		Timestamp:           model.OrderTimestamp,
		CampName:            model.CampName,
		Services:            services,
		PickupSlot:          pickupSlot,
		DateCreated:         model.DateCreated,
	}, nil
}
