package events

import "time"

// Event is the contract for everything published on the bus.
type Event interface {
	// EventType returns the unique code for this event (e.g. "ADMIN_LOGIN").
	EventType() string

	// Payload returns the data associated with the event.
	Payload() map[string]interface{}

	// Timestamp returns when the event occurred.
	Timestamp() time.Time
}

type BaseEvent struct {
	Type       string
	Data       map[string]interface{}
	OccurredAt time.Time
}

func (e BaseEvent) EventType() string {
	return e.Type
}

func (e BaseEvent) Payload() map[string]interface{} {
	return e.Data
}

func (e BaseEvent) Timestamp() time.Time {
	return e.OccurredAt
}

func NewEvent(eventType string, data map[string]interface{}) BaseEvent {
	return BaseEvent{
		Type:       eventType,
		Data:       data,
		OccurredAt: time.Now(),
	}
}

// Event types emitted by the backend.
const (
	TypeAdminLogin       = "ADMIN_LOGIN"
	TypeAdminCreated     = "ADMIN_CREATED"
	TypeInvoiceCreated   = "INVOICE_CREATED"
	TypePaymentSettled   = "PAYMENT_SETTLED"
	TypePaymentFailed    = "PAYMENT_FAILED"
	TypeContentPublished = "CONTENT_PUBLISHED"
)
