package events

import "time"

// EventType enumerates supported event identifiers.
type EventType string

const (
	EventOrderCreated       EventType = "order_created"
	EventOrderUpdated       EventType = "order_updated"
	EventOrderDeactivated   EventType = "order_deactivated"
	EventUserDeactivated    EventType = "user_deactivated"
	EventProductDeactivated EventType = "product_deactivated"
)

// Event represents a domain event emitted by services.
type Event struct {
	ID        string      `json:"id"`
	Type      EventType   `json:"type"`
	Timestamp time.Time   `json:"timestamp"`
	Payload   interface{} `json:"payload"`
}

// OrderCreatedPayload payload.
type OrderCreatedPayload struct {
	OrderID   int64   `json:"order_id"`
	UserID    int64   `json:"user_id"`
	Total     float64 `json:"total"`
	LineCount int     `json:"line_count"`
}

// OrderUpdatedPayload payload.
type OrderUpdatedPayload struct {
	OrderID   int64   `json:"order_id"`
	OldTotal  float64 `json:"old_total"`
	NewTotal  float64 `json:"new_total"`
	LineCount int     `json:"line_count"`
}

// OrderDeactivatedPayload payload.
type OrderDeactivatedPayload struct {
	OrderID int64 `json:"order_id"`
	UserID  int64 `json:"user_id"`
}

// ResourceDeactivatedPayload payload for user/product soft deletes.
type ResourceDeactivatedPayload struct {
	Resource string `json:"resource"`
	ID       int64  `json:"id"`
}
