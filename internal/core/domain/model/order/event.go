package order

import "time"

// EventType names the kind of change an Event reports.
type EventType string

const (
	EventCreated EventType = "order.created"
	EventUpdated EventType = "order.updated"
	EventDeleted EventType = "order.deleted"
)

// Event is emitted after an order change has been stored.
type Event struct {
	Type       EventType
	OrderID    string
	Status     Status
	OccurredAt time.Time
}

// NewEvent captures the state of o for an event of type t.
func NewEvent(t EventType, o *Order, at time.Time) Event {
	return Event{
		Type:       t,
		OrderID:    o.ID(),
		Status:     o.Status(),
		OccurredAt: at.UTC(),
	}
}
