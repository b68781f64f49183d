package entities

// Sentinel is the backend's marker for a field that is intentionally absent.
// Distinct from an empty string: the backend emits it on purpose.
const Sentinel = "—"

type Order struct {
	ID                  int64
	Title               string
	CustomerName        string
	RoomNumber          string
	PickupMethod        string
	PaymentConfirmed    bool
	TotalPrice          string
	SpecialInstructions string
	Status              OrderStatusType
	Timestamp           string
	CampName            string
	Services            []Service
	PickupSlot          *PickupSlot
	DateCreated         string
}

type OrderStatusType string

const (
	OrderPending   OrderStatusType = "pending"
	OrderCompleted OrderStatusType = "completed"
	OrderCancelled OrderStatusType = "cancelled"
)

func (s OrderStatusType) String() string {
	return string(s)
}

func IsValidOrderStatus(status string) bool {
	switch OrderStatusType(status) {
	case OrderPending, OrderCompleted, OrderCancelled:
		return true
	default:
		return false
	}
}

type Service struct {
	ID    int64
	Name  string
	Slug  string
	Price string
}

type PickupSlot struct {
	ID   int64
	Time string
}

type Camp struct {
	ID   int64
	Name string
}
