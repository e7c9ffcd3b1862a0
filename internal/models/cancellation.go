package models

import (
	"time"

	"github.com/google/uuid"
)

// cancellation status
const (
	CancellationStatusConfirmed = "CONFIRMED"
)

// refund status
const (
	RefundStatusNone      = "NONE"
	RefundStatusRequested = "REQUESTED"
	RefundStatusCompleted = "COMPLETED"
	RefundStatusFailed    = "FAILED"
)

// OrderCancellation records a confirmed cancellation and gates the refund
// lifecycle of the order's payment
type OrderCancellation struct {
	ID           uuid.UUID
	OrderID      uuid.UUID
	RequestedBy  uuid.UUID
	Reason       string
	Status       string
	RefundStatus string
	// RefundRef is the gateway refund object id once a refund is requested
	RefundRef string
	CreatedAt time.Time
	UpdatedAt time.Time
}
