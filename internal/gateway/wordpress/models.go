package wordpress

import "encoding/json"

// WordPress REST wire shapes. ACF fields are loosely typed upstream: a room
// number may arrive as a JSON number or a string, service references as a
// scalar or a list, so those fields stay raw until the converters coerce
// them.

type wpRendered struct {
	Rendered string `json:"rendered"`
}

type wpOrder struct {
	ID       int64      `json:"id"`
	Title    wpRendered `json:"title"`
	Date     string     `json:"date"`
	Modified string     `json:"modified"`
	ACF      wpOrderACF `json:"acf"`
}

type wpOrderACF struct {
	CustomerName        string          `json:"customer_name"`
	RoomNumber          json.RawMessage `json:"room_number"`
	PickupMethod        string          `json:"pickup_method"`
	PaymentConfirmed    bool            `json:"payment_confirmed"`
	TotalPrice          json.RawMessage `json:"total_price"`
	SpecialInstructions string          `json:"Special_Instructions"`
	OrderStatus         string          `json:"order_status"`
	OrderTimestamp      string          `json:"order_timestamp"`
	ServiceID           json.RawMessage `json:"service_id"`
	SlotID              int64           `json:"slot_id"`
	CampName            json.RawMessage `json:"camp_name"`
}

type wpService struct {
	ID    int64        `json:"id"`
	Title wpRendered   `json:"title"`
	ACF   wpServiceACF `json:"acf"`
}

type wpServiceACF struct {
	Slug  string          `json:"slug"`
	Price json.RawMessage `json:"price"`
}

type wpPickupSlot struct {
	ID  int64     `json:"id"`
	ACF wpSlotACF `json:"acf"`
}

type wpSlotACF struct {
	Time string `json:"time"`
}

type wpCamp struct {
	ID    int64      `json:"id"`
	Title wpRendered `json:"title"`
}

type statusUpdateBody struct {
	ACF statusUpdateACF `json:"acf"`
}

type statusUpdateACF struct {
	OrderStatus string `json:"order_status"`
}
