// Package dto holds the JSON shapes of the dashboard REST surface.
package dto

type PingResponse struct {
	Message *string `json:"message,omitempty"`
}

type Service struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Slug  string `json:"slug,omitempty"`
	Price string `json:"price,omitempty"`
}

type PickupSlot struct {
	ID   int64  `json:"id"`
	Time string `json:"time"`
}

type Order struct {
	ID                  int64       `json:"id"`
	Title               string      `json:"title"`
	CustomerName        string      `json:"customer_name"`
	RoomNumber          string      `json:"room_number"`
	PickupMethod        string      `json:"pickup_method"`
	PaymentConfirmed    bool        `json:"payment_confirmed"`
	TotalPrice          string      `json:"total_price"`
	SpecialInstructions string      `json:"special_instructions,omitempty"`
	Status              string      `json:"status"`
	Timestamp           string      `json:"timestamp"`
	CampName            string      `json:"camp_name"`
	Services            []Service   `json:"services"`
	PickupSlot          *PickupSlot `json:"pickup_slot,omitempty"`
	DateCreated         string      `json:"date_created,omitempty"`
}

type Filters struct {
	CustomerName  string `json:"customer_name"`
	CampName      string `json:"camp_name"`
	RoomNumber    string `json:"room_number"`
	Service       string `json:"service"`
	PaymentStatus string `json:"payment_status"`
	PickupMethod  string `json:"pickup_method"`
	MinPrice      string `json:"min_price"`
	MaxPrice      string `json:"max_price"`
}

type OrderView struct {
	Orders        []Order `json:"orders"`
	Mode          string  `json:"mode"`
	Applied       Filters `json:"applied_filters"`
	Pending       Filters `json:"pending_filters"`
	ShowFilters   bool    `json:"show_filters"`
	HighlightedID int64   `json:"highlighted_id,omitempty"`
	TotalCount    int     `json:"total_count"`
	FilteredCount int     `json:"filtered_count"`
}

type FilterOptions struct {
	CustomerNames []string `json:"customer_names"`
	CampNames     []string `json:"camp_names"`
	RoomNumbers   []string `json:"room_numbers"`
	Services      []string `json:"services"`
	PickupMethods []string `json:"pickup_methods"`
}

type ViewModeUpdate struct {
	Mode string `json:"mode"`
}

type OrderStatusUpdate struct {
	Status string `json:"status"`
}
