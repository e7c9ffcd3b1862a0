package authz

import (
	"github.com/feastly/feastly/internal/models"
)

// NarrowOrderFilter injects ownership constraints into a list filter. A
// client-supplied field that conflicts with a forced constraint is an
// authorization error, never silently overwritten.
func (e *Engine) NarrowOrderFilter(actor models.Actor, filter models.OrderFilter) (models.OrderFilter, error) {
	switch actor.Role {
	case models.RoleCustomer:
		if filter.CustomerID != nil && *filter.CustomerID != actor.ID {
			return models.OrderFilter{}, models.ErrForbidden
		}
		id := actor.ID
		filter.CustomerID = &id
		// a restaurant filter only narrows within the customer's own orders
		return filter, nil
	case models.RoleRestaurantStaff, models.RoleRestaurantOwner:
		if filter.RestaurantID != nil && !actor.OwnsRestaurant(*filter.RestaurantID) {
			return models.OrderFilter{}, models.ErrForbidden
		}
		if filter.RestaurantID == nil {
			filter.RestaurantIDs = actor.RestaurantIDs
		}
		return filter, nil
	case models.RoleAdmin, models.RoleSuperAdmin:
		return filter, nil
	}
	return models.OrderFilter{}, models.ErrForbidden
}

// NarrowDeliveryFilter injects ownership constraints into a delivery list
// filter
func (e *Engine) NarrowDeliveryFilter(actor models.Actor, filter models.DeliveryFilter) (models.DeliveryFilter, error) {
	switch actor.Role {
	case models.RoleDriver:
		if filter.DriverID != nil && *filter.DriverID != actor.ID {
			return models.DeliveryFilter{}, models.ErrForbidden
		}
		id := actor.ID
		filter.DriverID = &id
		return filter, nil
	case models.RoleCustomer:
		id := actor.ID
		filter.CustomerID = &id
		return filter, nil
	case models.RoleRestaurantStaff, models.RoleRestaurantOwner:
		filter.RestaurantIDs = actor.RestaurantIDs
		return filter, nil
	case models.RoleAdmin, models.RoleSuperAdmin:
		return filter, nil
	}
	return models.DeliveryFilter{}, models.ErrForbidden
}

// NarrowCancellationFilter injects ownership constraints into a cancellation
// list filter
func (e *Engine) NarrowCancellationFilter(actor models.Actor, filter models.CancellationFilter) (models.CancellationFilter, error) {
	switch actor.Role {
	case models.RoleCustomer:
		id := actor.ID
		filter.CustomerID = &id
		return filter, nil
	case models.RoleRestaurantStaff, models.RoleRestaurantOwner:
		filter.RestaurantIDs = actor.RestaurantIDs
		return filter, nil
	case models.RoleAdmin, models.RoleSuperAdmin:
		return filter, nil
	}
	return models.CancellationFilter{}, models.ErrForbidden
}
