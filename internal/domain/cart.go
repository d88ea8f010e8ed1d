package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/m04kA/RBM-DashboardService/pkg/types"
)

// ReminderStatus represents the recovery reminder state of an abandoned cart
type ReminderStatus string

const (
	ReminderStatusNotSent    ReminderStatus = "not_sent"
	ReminderStatusSent       ReminderStatus = "sent"
	ReminderStatusResponded  ReminderStatus = "responded"
	ReminderStatusNoResponse ReminderStatus = "no_response"
)

// AbandonedCart represents a booking attempt the guest never completed
type AbandonedCart struct {
	ID          uuid.UUID
	FranchiseID string

	GuestName  string
	GuestEmail string
	GuestPhone string

	PartySize   int
	DesiredDate time.Time
	DesiredTime types.TimeString
	CartValue   float64

	ReminderStatus ReminderStatus
	ReminderSentAt *time.Time

	// Independent flags: may be toggled regardless of reminder status
	IsArchived  bool
	IsRecovered bool

	AbandonedAt time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ReminderPending returns true if no recovery reminder has been sent yet
func (c *AbandonedCart) ReminderPending() bool {
	return c.ReminderStatus == ReminderStatusNotSent
}

// AwaitingResponse returns true if a reminder was sent but no outcome recorded
func (c *AbandonedCart) AwaitingResponse() bool {
	return c.ReminderStatus == ReminderStatusSent
}

// ValidReminderStatuses список допустимых статусов напоминания
var ValidReminderStatuses = []ReminderStatus{
	ReminderStatusNotSent,
	ReminderStatusSent,
	ReminderStatusResponded,
	ReminderStatusNoResponse,
}
