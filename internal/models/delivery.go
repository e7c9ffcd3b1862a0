package models

import (
	"time"

	"github.com/google/uuid"
)

// delivery status
const (
	DeliveryStatusUnassigned = "UNASSIGNED"
	DeliveryStatusAssigned   = "ASSIGNED"
	DeliveryStatusPickedUp   = "PICKED_UP"
	DeliveryStatusInTransit  = "IN_TRANSIT"
	DeliveryStatusCompleted  = "COMPLETED"
	DeliveryStatusFailed     = "FAILED"
)

// driver availability
const (
	DriverAvailable = "AVAILABLE"
	DriverBusy      = "BUSY"
)

var nextDeliveryStatus = map[string]string{
	DeliveryStatusUnassigned: DeliveryStatusAssigned,
	DeliveryStatusAssigned:   DeliveryStatusPickedUp,
	DeliveryStatusPickedUp:   DeliveryStatusInTransit,
	DeliveryStatusInTransit:  DeliveryStatusCompleted,
}

// DeliveryCanTransition reports whether from -> to is a valid step. FAILED is
// reachable from any post-assignment non-terminal status.
func DeliveryCanTransition(from, to string) bool {
	if to == DeliveryStatusFailed {
		switch from {
		case DeliveryStatusAssigned, DeliveryStatusPickedUp, DeliveryStatusInTransit:
			return true
		}
		return false
	}
	return nextDeliveryStatus[from] == to
}

// DeliveryStatusIsTerminal reports whether the delivery can no longer move
func DeliveryStatusIsTerminal(status string) bool {
	return status == DeliveryStatusCompleted || status == DeliveryStatusFailed
}

// DeliveryStatusIsActive reports whether a driver is still engaged
func DeliveryStatusIsActive(status string) bool {
	switch status {
	case DeliveryStatusAssigned, DeliveryStatusPickedUp, DeliveryStatusInTransit:
		return true
	}
	return false
}

// Delivery is delivery entity
type Delivery struct {
	ID        uuid.UUID
	OrderID   uuid.UUID
	DriverID  *uuid.UUID
	Status    string
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Driver is driver entity
type Driver struct {
	ID           uuid.UUID
	TenantID     uuid.UUID
	Name         string
	Availability string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}
