package notifications

import (
	"encoding/json"
	"time"

	"github.com/google/uuid"
)

type NotificationType string

const (
	NotificationTypePurchaseConfirmed NotificationType = "TICKET_PURCHASE_CONFIRMED"
	NotificationTypeRefundConfirmed   NotificationType = "TICKET_REFUND_CONFIRMED"
)

type NotificationStatus string

const (
	NotificationStatusPending NotificationStatus = "PENDING"
	NotificationStatusQueued  NotificationStatus = "QUEUED"
	NotificationStatusSent    NotificationStatus = "SENT"
	NotificationStatusFailed  NotificationStatus = "FAILED"
)

// TicketNotification is an SMS-style confirmation for one ticket operation,
// keyed by the purchaser phone number.
type TicketNotification struct {
	ID     uuid.UUID          `json:"id"`
	Type   NotificationType   `json:"type"`
	Status NotificationStatus `json:"status"`

	// Recipient
	PhoneNumber string `json:"phone_number"`

	// Ticket info
	TicketID      uint      `json:"ticket_id"`
	PerformanceID uint      `json:"performance_id"`
	ScheduleID    uint      `json:"schedule_id"`
	SeatID        uint      `json:"seat_id"`
	Amount        float64   `json:"amount"`
	OccurredAt    time.Time `json:"occurred_at"`
	CreatedAt     time.Time `json:"created_at"`
}

// ToJSON serializes the notification for the wire
func (n *TicketNotification) ToJSON() ([]byte, error) {
	return json.Marshal(n)
}

// FromJSON deserializes a notification from the wire
func FromJSON(data []byte) (*TicketNotification, error) {
	var n TicketNotification
	if err := json.Unmarshal(data, &n); err != nil {
		return nil, err
	}
	return &n, nil
}
