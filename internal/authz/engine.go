package authz

import (
	"github.com/feastly/feastly/internal/models"
)

// Engine makes role and ownership based access decisions. It holds no state,
// performs no IO and never mutates its inputs; unknown roles always deny.
type Engine struct{}

// New creates new Engine instance
func New() *Engine {
	return &Engine{}
}

// CanAccessOrder reports whether the actor may read the order
func (e *Engine) CanAccessOrder(actor models.Actor, order *models.Order) bool {
	switch actor.Role {
	case models.RoleCustomer:
		return actor.ID == order.CustomerID
	case models.RoleRestaurantStaff, models.RoleRestaurantOwner:
		return actor.OwnsRestaurant(order.RestaurantID)
	case models.RoleAdmin, models.RoleSuperAdmin:
		return true
	}
	return false
}

// CanUpdateOrder reports whether the actor may change the order's
// operational status
func (e *Engine) CanUpdateOrder(actor models.Actor, order *models.Order) bool {
	switch actor.Role {
	case models.RoleRestaurantStaff, models.RoleRestaurantOwner:
		return actor.OwnsRestaurant(order.RestaurantID)
	case models.RoleAdmin, models.RoleSuperAdmin:
		return true
	}
	return false
}

// CanCancelOrder reports whether the actor may request cancellation of the
// order. Status eligibility is the cancellation service's concern.
func (e *Engine) CanCancelOrder(actor models.Actor, order *models.Order) bool {
	switch actor.Role {
	case models.RoleCustomer:
		return actor.ID == order.CustomerID
	case models.RoleRestaurantStaff, models.RoleRestaurantOwner:
		return actor.OwnsRestaurant(order.RestaurantID)
	case models.RoleAdmin, models.RoleSuperAdmin:
		return true
	}
	return false
}

// CanInitiatePayment reports whether the actor may start a payment for the
// order. Paying is the customer's move; admins may act on their behalf.
func (e *Engine) CanInitiatePayment(actor models.Actor, order *models.Order) bool {
	switch actor.Role {
	case models.RoleCustomer:
		return actor.ID == order.CustomerID
	case models.RoleAdmin, models.RoleSuperAdmin:
		return true
	}
	return false
}

// CanAccessDelivery reports whether the actor may read the delivery. The
// parent order carries the ownership information.
func (e *Engine) CanAccessDelivery(actor models.Actor, delivery *models.Delivery, order *models.Order) bool {
	switch actor.Role {
	case models.RoleDriver:
		return delivery.DriverID != nil && *delivery.DriverID == actor.ID
	case models.RoleCustomer:
		return actor.ID == order.CustomerID
	case models.RoleRestaurantStaff, models.RoleRestaurantOwner:
		return actor.OwnsRestaurant(order.RestaurantID)
	case models.RoleAdmin, models.RoleSuperAdmin:
		return true
	}
	return false
}

// CanUpdateDelivery reports whether the actor may advance the delivery
func (e *Engine) CanUpdateDelivery(actor models.Actor, delivery *models.Delivery, order *models.Order) bool {
	switch actor.Role {
	case models.RoleDriver:
		return delivery.DriverID != nil && *delivery.DriverID == actor.ID
	case models.RoleRestaurantStaff, models.RoleRestaurantOwner:
		return actor.OwnsRestaurant(order.RestaurantID)
	case models.RoleAdmin, models.RoleSuperAdmin:
		return true
	}
	return false
}

// CanAccessCancellation reports whether the actor may read the cancellation
func (e *Engine) CanAccessCancellation(actor models.Actor, order *models.Order) bool {
	return e.CanAccessOrder(actor, order)
}

// CanUpdateCancellation reports whether the actor may amend a cancellation
// record, e.g. settle its refund status out of band
func (e *Engine) CanUpdateCancellation(actor models.Actor) bool {
	return actor.IsAdmin()
}

// CanManageDrivers reports whether the actor may create or update drivers
func (e *Engine) CanManageDrivers(actor models.Actor) bool {
	return actor.IsAdmin()
}

// CanUpdateDriver reports whether the actor may update the driver record.
// A driver may flip its own availability.
func (e *Engine) CanUpdateDriver(actor models.Actor, driver *models.Driver) bool {
	if actor.Role == models.RoleDriver {
		return actor.ID == driver.ID
	}
	return actor.IsAdmin()
}
