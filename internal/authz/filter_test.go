package authz

import (
	"errors"
	"testing"

	"github.com/feastly/feastly/internal/models"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEngine_NarrowOrderFilter(t *testing.T) {
	customerID := uuid.New()
	otherCustomerID := uuid.New()
	restaurantID := uuid.New()
	otherRestaurantID := uuid.New()

	tests := []struct {
		name    string
		actor   models.Actor
		filter  models.OrderFilter
		check   func(t *testing.T, got models.OrderFilter)
		wantErr error
	}{
		{
			name:   "customer_gets_own_id_forced",
			actor:  models.Actor{ID: customerID, Role: models.RoleCustomer},
			filter: models.OrderFilter{},
			check: func(t *testing.T, got models.OrderFilter) {
				require.NotNil(t, got.CustomerID)
				assert.Equal(t, customerID, *got.CustomerID)
			},
		},
		{
			name:  "customer_matching_filter_kept",
			actor: models.Actor{ID: customerID, Role: models.RoleCustomer},
			filter: models.OrderFilter{
				CustomerID: &customerID,
			},
			check: func(t *testing.T, got models.OrderFilter) {
				require.NotNil(t, got.CustomerID)
				assert.Equal(t, customerID, *got.CustomerID)
			},
		},
		{
			name:  "customer_filtering_other_customer_forbidden",
			actor: models.Actor{ID: customerID, Role: models.RoleCustomer},
			filter: models.OrderFilter{
				CustomerID: &otherCustomerID,
			},
			wantErr: models.ErrForbidden,
		},
		{
			// a restaurant filter narrows within the customer's own orders
			name:  "customer_restaurant_filter_kept",
			actor: models.Actor{ID: customerID, Role: models.RoleCustomer},
			filter: models.OrderFilter{
				RestaurantID: &restaurantID,
			},
			check: func(t *testing.T, got models.OrderFilter) {
				require.NotNil(t, got.CustomerID)
				assert.Equal(t, customerID, *got.CustomerID)
				require.NotNil(t, got.RestaurantID)
				assert.Equal(t, restaurantID, *got.RestaurantID)
			},
		},
		{
			name:   "staff_gets_own_restaurants_forced",
			actor:  models.Actor{ID: uuid.New(), Role: models.RoleRestaurantStaff, RestaurantIDs: []uuid.UUID{restaurantID}},
			filter: models.OrderFilter{},
			check: func(t *testing.T, got models.OrderFilter) {
				assert.Equal(t, []uuid.UUID{restaurantID}, got.RestaurantIDs)
			},
		},
		{
			name:  "staff_filtering_own_restaurant_kept",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleRestaurantStaff, RestaurantIDs: []uuid.UUID{restaurantID}},
			filter: models.OrderFilter{
				RestaurantID: &restaurantID,
			},
			check: func(t *testing.T, got models.OrderFilter) {
				require.NotNil(t, got.RestaurantID)
				assert.Equal(t, restaurantID, *got.RestaurantID)
				assert.Empty(t, got.RestaurantIDs)
			},
		},
		{
			name:  "staff_filtering_foreign_restaurant_forbidden",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleRestaurantStaff, RestaurantIDs: []uuid.UUID{restaurantID}},
			filter: models.OrderFilter{
				RestaurantID: &otherRestaurantID,
			},
			wantErr: models.ErrForbidden,
		},
		{
			name:  "admin_passes_through",
			actor: models.Actor{ID: uuid.New(), Role: models.RoleAdmin},
			filter: models.OrderFilter{
				CustomerID: &otherCustomerID,
			},
			check: func(t *testing.T, got models.OrderFilter) {
				require.NotNil(t, got.CustomerID)
				assert.Equal(t, otherCustomerID, *got.CustomerID)
			},
		},
		{
			name:    "unknown_role_forbidden",
			actor:   models.Actor{ID: uuid.New(), Role: "AUDITOR"},
			filter:  models.OrderFilter{},
			wantErr: models.ErrForbidden,
		},
	}

	engine := New()
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := engine.NarrowOrderFilter(tt.actor, tt.filter)
			if tt.wantErr != nil {
				assert.True(t, errors.Is(err, tt.wantErr))
				return
			}
			require.NoError(t, err)
			tt.check(t, got)
		})
	}
}

func TestEngine_NarrowDeliveryFilter(t *testing.T) {
	driverID := uuid.New()
	otherDriverID := uuid.New()
	customerID := uuid.New()
	restaurantID := uuid.New()

	engine := New()

	t.Run("driver_gets_own_id_forced", func(t *testing.T) {
		got, err := engine.NarrowDeliveryFilter(models.Actor{ID: driverID, Role: models.RoleDriver}, models.DeliveryFilter{})
		require.NoError(t, err)
		require.NotNil(t, got.DriverID)
		assert.Equal(t, driverID, *got.DriverID)
	})

	t.Run("driver_filtering_other_driver_forbidden", func(t *testing.T) {
		_, err := engine.NarrowDeliveryFilter(models.Actor{ID: driverID, Role: models.RoleDriver}, models.DeliveryFilter{DriverID: &otherDriverID})
		assert.True(t, errors.Is(err, models.ErrForbidden))
	})

	t.Run("customer_narrowed_to_own_orders", func(t *testing.T) {
		got, err := engine.NarrowDeliveryFilter(models.Actor{ID: customerID, Role: models.RoleCustomer}, models.DeliveryFilter{})
		require.NoError(t, err)
		require.NotNil(t, got.CustomerID)
		assert.Equal(t, customerID, *got.CustomerID)
	})

	t.Run("staff_narrowed_to_own_restaurants", func(t *testing.T) {
		actor := models.Actor{ID: uuid.New(), Role: models.RoleRestaurantOwner, RestaurantIDs: []uuid.UUID{restaurantID}}
		got, err := engine.NarrowDeliveryFilter(actor, models.DeliveryFilter{})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{restaurantID}, got.RestaurantIDs)
	})

	t.Run("unknown_role_forbidden", func(t *testing.T) {
		_, err := engine.NarrowDeliveryFilter(models.Actor{ID: uuid.New(), Role: "AUDITOR"}, models.DeliveryFilter{})
		assert.True(t, errors.Is(err, models.ErrForbidden))
	})
}

func TestEngine_NarrowCancellationFilter(t *testing.T) {
	customerID := uuid.New()
	restaurantID := uuid.New()

	engine := New()

	t.Run("customer_narrowed_to_own_orders", func(t *testing.T) {
		got, err := engine.NarrowCancellationFilter(models.Actor{ID: customerID, Role: models.RoleCustomer}, models.CancellationFilter{})
		require.NoError(t, err)
		require.NotNil(t, got.CustomerID)
		assert.Equal(t, customerID, *got.CustomerID)
	})

	t.Run("staff_narrowed_to_own_restaurants", func(t *testing.T) {
		actor := models.Actor{ID: uuid.New(), Role: models.RoleRestaurantStaff, RestaurantIDs: []uuid.UUID{restaurantID}}
		got, err := engine.NarrowCancellationFilter(actor, models.CancellationFilter{})
		require.NoError(t, err)
		assert.Equal(t, []uuid.UUID{restaurantID}, got.RestaurantIDs)
	})

	t.Run("driver_forbidden", func(t *testing.T) {
		_, err := engine.NarrowCancellationFilter(models.Actor{ID: uuid.New(), Role: models.RoleDriver}, models.CancellationFilter{})
		assert.True(t, errors.Is(err, models.ErrForbidden))
	})
}
