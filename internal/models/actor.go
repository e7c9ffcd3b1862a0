package models

import "github.com/google/uuid"

// actor roles
const (
	RoleCustomer        = "CUSTOMER"
	RoleRestaurantStaff = "RESTAURANT_STAFF"
	RoleRestaurantOwner = "RESTAURANT_OWNER"
	RoleAdmin           = "ADMIN"
	RoleSuperAdmin      = "SUPER_ADMIN"
	RoleDriver          = "DRIVER"
)

// Actor is an authenticated caller
type Actor struct {
	ID            uuid.UUID
	Role          string
	TenantID      uuid.UUID
	RestaurantIDs []uuid.UUID
}

// IsAdmin reports whether the actor holds an administrative role
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin || a.Role == RoleSuperAdmin
}

// IsRestaurantRole reports whether the actor works for a restaurant
func (a Actor) IsRestaurantRole() bool {
	return a.Role == RoleRestaurantStaff || a.Role == RoleRestaurantOwner
}

// OwnsRestaurant reports whether the actor belongs to the given restaurant
func (a Actor) OwnsRestaurant(id uuid.UUID) bool {
	for _, rid := range a.RestaurantIDs {
		if rid == id {
			return true
		}
	}
	return false
}

// TokenPayload is the verified content of a bearer token
type TokenPayload struct {
	ActorID       uuid.UUID
	Role          string
	TenantID      uuid.UUID
	RestaurantIDs []uuid.UUID
}

// Actor builds an Actor from the token payload
func (tp *TokenPayload) Actor() Actor {
	return Actor{
		ID:            tp.ActorID,
		Role:          tp.Role,
		TenantID:      tp.TenantID,
		RestaurantIDs: tp.RestaurantIDs,
	}
}
