package wordpress

import (
	"encoding/json"
	"strconv"
	"strings"

	"laundry-admin/internal/entities"
)

func toRawOrder(model wpOrder) entities.RawOrder {
	dateCreated := model.Date
	if dateCreated == "" {
		dateCreated = model.Modified
	}

	return entities.RawOrder{
		ID:                  model.ID,
		Title:               model.Title.Rendered,
		CustomerName:        model.ACF.CustomerName,
		RoomNumber:          flexString(model.ACF.RoomNumber),
		PickupMethod:        model.ACF.PickupMethod,
		PaymentConfirmed:    model.ACF.PaymentConfirmed,
		TotalPrice:          flexString(model.ACF.TotalPrice),
		SpecialInstructions: model.ACF.SpecialInstructions,
		Status:              model.ACF.OrderStatus,
		Timestamp:           model.ACF.OrderTimestamp,
		ServiceIDs:          flexIDList(model.ACF.ServiceID),
		SlotID:              model.ACF.SlotID,
		CampID:              firstID(model.ACF.CampName),
		DateCreated:         dateCreated,
	}
}

func toService(model wpService) entities.Service {
	return entities.Service{
		ID:    model.ID,
		Name:  model.Title.Rendered,
		Slug:  model.ACF.Slug,
		Price: flexString(model.ACF.Price),
	}
}

func toPickupSlot(model wpPickupSlot) entities.PickupSlot {
	return entities.PickupSlot{
		ID:   model.ID,
		Time: model.ACF.Time,
	}
}

func toCamp(model wpCamp) entities.Camp {
	return entities.Camp{
		ID:   model.ID,
		Name: model.Title.Rendered,
	}
}

// flexString coerces an ACF value that may arrive as a JSON string or a
// number into its string form. This is where a numeric room number 12
// becomes "12" for the room filter's equality check.
func flexString(raw json.RawMessage) string {
	if len(raw) == 0 || string(raw) == "null" {
		return ""
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		return asString
	}

	var asNumber json.Number
	if err := json.Unmarshal(raw, &asNumber); err == nil {
		return asNumber.String()
	}

	return strings.Trim(string(raw), `"`)
}

// flexIDList accepts a scalar id or a list of ids.
func flexIDList(raw json.RawMessage) []int64 {
	if len(raw) == 0 || string(raw) == "null" {
		return nil
	}

	var list []int64
	if err := json.Unmarshal(raw, &list); err == nil {
		return list
	}

	if id, ok := flexID(raw); ok {
		return []int64{id}
	}
	return nil
}

// firstID resolves a scalar-or-list reference to its first id, the way the
// dashboard always treated camp references.
func firstID(raw json.RawMessage) int64 {
	ids := flexIDList(raw)
	if len(ids) == 0 {
		return 0
	}
	return ids[0]
}

func flexID(raw json.RawMessage) (int64, bool) {
	var id int64
	if err := json.Unmarshal(raw, &id); err == nil {
		return id, true
	}

	var asString string
	if err := json.Unmarshal(raw, &asString); err == nil {
		if parsed, err := strconv.ParseInt(asString, 10, 64); err == nil {
			return parsed, true
		}
	}
	return 0, false
}
