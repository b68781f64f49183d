package orders

import "time"

type OrderDB struct {
	Position            int
	ID                  int64
	Title               string
	CustomerName        string
	RoomNumber          string
	PickupMethod        string
	PaymentConfirmed    bool
	TotalPrice          string
	SpecialInstructions string
	Status              string
	OrderTimestamp      string
	CampName            string
	Services            []byte
	PickupSlot          []byte
	DateCreated         string
	RefreshedAt         time.Time
}
