package models

import "github.com/google/uuid"

// Closed filter types per list endpoint. Handlers build these from the query
// string and reject unknown keys; the authorization engine then narrows them
// with ownership constraints the caller cannot override.

// OrderFilter selects orders in list queries
type OrderFilter struct {
	CustomerID   *uuid.UUID
	RestaurantID *uuid.UUID
	Status       *string
	// RestaurantIDs is set only by the authorization engine when forcing a
	// restaurant-role caller onto its own restaurants
	RestaurantIDs []uuid.UUID
}

// DeliveryFilter selects deliveries in list queries
type DeliveryFilter struct {
	OrderID  *uuid.UUID
	DriverID *uuid.UUID
	Status   *string
	// narrowing constraints injected by the authorization engine
	CustomerID    *uuid.UUID
	RestaurantIDs []uuid.UUID
}

// CancellationFilter selects order cancellations in list queries
type CancellationFilter struct {
	OrderID      *uuid.UUID
	RefundStatus *string
	// narrowing constraints injected by the authorization engine
	CustomerID    *uuid.UUID
	RestaurantIDs []uuid.UUID
}
