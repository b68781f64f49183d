package order_created

// createdEvent is the payload published when a booking lands in the backend.
// OrderID is optional; older publishers only send the text.
type createdEvent struct {
	Message string `json:"message"`
	OrderID int64  `json:"order_id,omitempty"`
}
