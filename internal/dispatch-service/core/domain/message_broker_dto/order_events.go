package messagebrokerdto

import "time"

const (
	OrderCreatedKey = "order.created"
	OrderClaimedKey = "order.claimed"
	OrderRemovedKey = "order.removed"
)

// OrderEvent is published to the order topic exchange on every lifecycle
// transition so downstream consumers (audit, analytics) can follow along.
type OrderEvent struct {
	Event      string    `json:"event"`
	OrderID    int64     `json:"order_id"`
	Title      string    `json:"title,omitempty"`
	DriverID   int64     `json:"driver_id,omitempty"`
	OccurredAt time.Time `json:"occurred_at"`
}
