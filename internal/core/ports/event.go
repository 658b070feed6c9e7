package ports

import (
	"context"
)

// RentReminderEvent is the payload queued through the outbox and delivered
// to the mailer queue by the relay.
type RentReminderEvent struct {
	Username   string  `json:"username"`
	Email      string  `json:"email"`
	RentAmount float64 `json:"rent_amount"`
	Month      string  `json:"month"`
	DueDate    string  `json:"due_date"`
}

type ReminderPublisher interface {
	PublishRentReminder(ctx context.Context, evt RentReminderEvent) error
}
