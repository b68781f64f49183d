package entities

// RawOrder is an order exactly as the backend returns it, before the
// cross-resource joins. Reference fields still hold foreign keys; textual
// fields may be empty or carry the sentinel.
type RawOrder struct {
	ID                  int64
	Title               string
	CustomerName        string
	RoomNumber          string
	PickupMethod        string
	PaymentConfirmed    bool
	TotalPrice          string
	SpecialInstructions string
	Status              string
	Timestamp           string
	ServiceIDs          []int64
	SlotID              int64
	CampID              int64
	DateCreated         string
}
