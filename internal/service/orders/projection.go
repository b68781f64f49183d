package orders

import "laundry-admin/internal/entities"

// projectOrders joins the four backend resources into flat display orders.
// Service references with no match are dropped, preserving input order; a
// missing slot or camp resolves to its documented default. No field changes
// semantic type here: prices stay decimal strings until a filter compares
// them numerically.
func projectOrders(
	rawOrders []entities.RawOrder,
	services []entities.Service,
	slots []entities.PickupSlot,
	camps []entities.Camp,
) []entities.Order {
	servicesByID := make(map[int64]entities.Service, len(services))
	for _, service := range services {
		servicesByID[service.ID] = service
	}
	slotsByID := make(map[int64]entities.PickupSlot, len(slots))
	for _, slot := range slots {
		slotsByID[slot.ID] = slot
	}
	campsByID := make(map[int64]string, len(camps))
	for _, camp := range camps {
		campsByID[camp.ID] = camp.Name
	}

	projected := make([]entities.Order, 0, len(rawOrders))
	for _, raw := range rawOrders {
		projected = append(projected, projectOrder(raw, servicesByID, slotsByID, campsByID))
	}
	return projected
}

func projectOrder(
	raw entities.RawOrder,
	servicesByID map[int64]entities.Service,
	slotsByID map[int64]entities.PickupSlot,
	campsByID map[int64]string,
) entities.Order {
	resolved := make([]entities.Service, 0, len(raw.ServiceIDs))
	for _, id := range raw.ServiceIDs {
		if service, ok := servicesByID[id]; ok {
			resolved = append(resolved, service)
		}
	}

	var slot *entities.PickupSlot
	if found, ok := slotsByID[raw.SlotID]; ok {
		slot = &found
	}

	campName, ok := campsByID[raw.CampID]
	if !ok {
		campName = entities.Sentinel
	}

	status := entities.OrderStatusType(raw.Status)
	if !entities.IsValidOrderStatus(raw.Status) {
		status = entities.OrderPending
	}

	return entities.Order{
		ID:                  raw.ID,
		Title:               raw.Title,
		CustomerName:        textOrSentinel(raw.CustomerName),
		RoomNumber:          textOrSentinel(raw.RoomNumber),
		PickupMethod:        textOrSentinel(raw.PickupMethod),
		PaymentConfirmed:    raw.PaymentConfirmed,
		TotalPrice:          defaultString(raw.TotalPrice, "0.00"),
		SpecialInstructions: textOrSentinel(raw.SpecialInstructions),
		Status:              status,
		Timestamp:           textOrSentinel(raw.Timestamp),
		CampName:            campName,
		Services:            resolved,
		PickupSlot:          slot,
		DateCreated:         raw.DateCreated,
	}
}

func textOrSentinel(value string) string {
	return defaultString(value, entities.Sentinel)
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
