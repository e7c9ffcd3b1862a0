package models

import (
	"math"
	"time"

	"github.com/google/uuid"
)

// order status
const (
	OrderStatusPending        = "PENDING"
	OrderStatusConfirmed      = "CONFIRMED"
	OrderStatusPreparing      = "PREPARING"
	OrderStatusOutForDelivery = "OUT_FOR_DELIVERY"
	OrderStatusDelivered      = "DELIVERED"
	OrderStatusCancelled      = "CANCELLED"
)

// nextOrderStatus maps each status to its only valid successor on the
// forward chain. CANCELLED is reachable solely through the cancellation flow.
var nextOrderStatus = map[string]string{
	OrderStatusPending:        OrderStatusConfirmed,
	OrderStatusConfirmed:      OrderStatusPreparing,
	OrderStatusPreparing:      OrderStatusOutForDelivery,
	OrderStatusOutForDelivery: OrderStatusDelivered,
}

// OrderStatusIsTerminal reports whether no forward transition exists
func OrderStatusIsTerminal(status string) bool {
	return status == OrderStatusDelivered || status == OrderStatusCancelled
}

// OrderCanTransition reports whether from -> to is an adjacent forward step
func OrderCanTransition(from, to string) bool {
	return nextOrderStatus[from] == to
}

// OrderStatusIsCancellable reports whether an order in this status may still
// be cancelled
func OrderStatusIsCancellable(status string) bool {
	switch status {
	case OrderStatusPending, OrderStatusConfirmed, OrderStatusPreparing:
		return true
	}
	return false
}

// OrderItem is a snapshot of a purchased menu item
type OrderItem struct {
	ID         uuid.UUID
	OrderID    uuid.UUID
	MenuItemID uuid.UUID
	Quantity   int32
	UnitPrice  float64
}

// Order is order entity
type Order struct {
	ID           uuid.UUID
	CustomerID   uuid.UUID
	RestaurantID uuid.UUID
	TenantID     uuid.UUID
	Items        []OrderItem
	Total        float64
	Status       string
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

// ItemsTotal computes the order total from its line items
func (o *Order) ItemsTotal() float64 {
	var total float64
	for _, item := range o.Items {
		total += float64(item.Quantity) * item.UnitPrice
	}
	return total
}

// AmountsEqual compares two monetary amounts within half a minor unit
func AmountsEqual(a, b float64) bool {
	return math.Abs(a-b) < 0.005
}

// MenuItem is the priced catalog entry an order line refers to
type MenuItem struct {
	ID           uuid.UUID
	RestaurantID uuid.UUID
	Name         string
	Price        float64
	Available    bool
}
