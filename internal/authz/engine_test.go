package authz

import (
	"testing"

	"github.com/feastly/feastly/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestEngine_CanAccessOrder(t *testing.T) {
	customerID := uuid.New()
	restaurantID := uuid.New()

	order := &models.Order{
		ID:           uuid.New(),
		CustomerID:   customerID,
		RestaurantID: restaurantID,
	}

	tests := []struct {
		name  string
		actor models.Actor
		want  bool
	}{
		{
			name:  "owning_customer_allowed",
			actor: models.Actor{ID: customerID, Role: models.RoleCustomer},
			want:  true,
		},
		{
			name:  "other_customer_denied",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleCustomer},
			want:  false,
		},
		{
			name:  "staff_of_restaurant_allowed",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleRestaurantStaff, RestaurantIDs: []uuid.UUID{restaurantID}},
			want:  true,
		},
		{
			name:  "staff_of_other_restaurant_denied",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleRestaurantStaff, RestaurantIDs: []uuid.UUID{uuid.New()}},
			want:  false,
		},
		{
			name:  "owner_of_restaurant_allowed",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleRestaurantOwner, RestaurantIDs: []uuid.UUID{restaurantID}},
			want:  true,
		},
		{
			name:  "admin_allowed",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleAdmin},
			want:  true,
		},
		{
			name:  "super_admin_allowed",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleSuperAdmin},
			want:  true,
		},
		{
			name:  "driver_denied",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleDriver},
			want:  false,
		},
		{
			name:  "unknown_role_denied",
			actor: models.Actor{ID: customerID, Role: "AUDITOR"},
			want:  false,
		},
	}

	engine := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.CanAccessOrder(tt.actor, order))
		})
	}
}

func TestEngine_CanUpdateOrder(t *testing.T) {
	customerID := uuid.New()
	restaurantID := uuid.New()

	order := &models.Order{
		ID:           uuid.New(),
		CustomerID:   customerID,
		RestaurantID: restaurantID,
	}

	tests := []struct {
		name  string
		actor models.Actor
		want  bool
	}{
		{
			// customers request cancellation, they do not drive the kitchen
			name:  "owning_customer_denied",
			actor: models.Actor{ID: customerID, Role: models.RoleCustomer},
			want:  false,
		},
		{
			name:  "staff_of_restaurant_allowed",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleRestaurantStaff, RestaurantIDs: []uuid.UUID{restaurantID}},
			want:  true,
		},
		{
			name:  "staff_of_other_restaurant_denied",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleRestaurantStaff, RestaurantIDs: []uuid.UUID{uuid.New()}},
			want:  false,
		},
		{
			name:  "admin_allowed",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleAdmin},
			want:  true,
		},
	}

	engine := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.CanUpdateOrder(tt.actor, order))
		})
	}
}

func TestEngine_CanInitiatePayment(t *testing.T) {
	customerID := uuid.New()
	restaurantID := uuid.New()

	order := &models.Order{
		ID:           uuid.New(),
		CustomerID:   customerID,
		RestaurantID: restaurantID,
	}

	tests := []struct {
		name  string
		actor models.Actor
		want  bool
	}{
		{
			name:  "owning_customer_allowed",
			actor: models.Actor{ID: customerID, Role: models.RoleCustomer},
			want:  true,
		},
		{
			name:  "other_customer_denied",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleCustomer},
			want:  false,
		},
		{
			name:  "staff_denied",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleRestaurantStaff, RestaurantIDs: []uuid.UUID{restaurantID}},
			want:  false,
		},
		{
			name:  "admin_allowed",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleAdmin},
			want:  true,
		},
	}

	engine := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.CanInitiatePayment(tt.actor, order))
		})
	}
}

func TestEngine_CanUpdateDelivery(t *testing.T) {
	driverID := uuid.New()
	restaurantID := uuid.New()

	delivery := &models.Delivery{
		ID:       uuid.New(),
		DriverID: &driverID,
		Status:   models.DeliveryStatusAssigned,
	}
	unassigned := &models.Delivery{
		ID:     uuid.New(),
		Status: models.DeliveryStatusUnassigned,
	}
	order := &models.Order{
		ID:           uuid.New(),
		RestaurantID: restaurantID,
	}

	tests := []struct {
		name     string
		actor    models.Actor
		delivery *models.Delivery
		want     bool
	}{
		{
			name:     "assigned_driver_allowed",
			actor:    models.Actor{ID: driverID, Role: models.RoleDriver},
			delivery: delivery,
			want:     true,
		},
		{
			name:     "other_driver_denied",
			actor:    models.Actor{ID: uuid.New(), Role: models.RoleDriver},
			delivery: delivery,
			want:     false,
		},
		{
			name:     "driver_on_unassigned_delivery_denied",
			actor:    models.Actor{ID: driverID, Role: models.RoleDriver},
			delivery: unassigned,
			want:     false,
		},
		{
			name:     "staff_of_restaurant_allowed",
			actor:    models.Actor{ID: uuid.New(), Role: models.RoleRestaurantStaff, RestaurantIDs: []uuid.UUID{restaurantID}},
			delivery: delivery,
			want:     true,
		},
		{
			name:     "customer_denied",
			actor:    models.Actor{ID: uuid.New(), Role: models.RoleCustomer},
			delivery: delivery,
			want:     false,
		},
		{
			name:     "admin_allowed",
			actor:    models.Actor{ID: uuid.New(), Role: models.RoleAdmin},
			delivery: delivery,
			want:     true,
		},
	}

	engine := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, engine.CanUpdateDelivery(tt.actor, tt.delivery, order))
		})
	}
}

func TestEngine_CanUpdateDriver(t *testing.T) {
	driverID := uuid.New()
	driver := &models.Driver{ID: driverID, Name: "pat"}

	engine := New()

	assert.True(t, engine.CanUpdateDriver(models.Actor{ID: driverID, Role: models.RoleDriver}, driver))
	assert.False(t, engine.CanUpdateDriver(models.Actor{ID: uuid.New(), Role: models.RoleDriver}, driver))
	assert.True(t, engine.CanUpdateDriver(models.Actor{ID: uuid.New(), Role: models.RoleAdmin}, driver))
	assert.False(t, engine.CanUpdateDriver(models.Actor{ID: uuid.New(), Role: models.RoleRestaurantOwner}, driver))
}
