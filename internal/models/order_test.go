package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"pending_to_confirmed", OrderStatusPending, OrderStatusConfirmed, true},
		{"confirmed_to_preparing", OrderStatusConfirmed, OrderStatusPreparing, true},
		{"preparing_to_out_for_delivery", OrderStatusPreparing, OrderStatusOutForDelivery, true},
		{"out_for_delivery_to_delivered", OrderStatusOutForDelivery, OrderStatusDelivered, true},
		{"skipping_a_stage_rejected", OrderStatusPending, OrderStatusPreparing, false},
		{"backwards_rejected", OrderStatusPreparing, OrderStatusConfirmed, false},
		{"cancel_is_not_a_forward_step", OrderStatusPending, OrderStatusCancelled, false},
		{"delivered_is_terminal", OrderStatusDelivered, OrderStatusConfirmed, false},
		{"cancelled_is_terminal", OrderStatusCancelled, OrderStatusConfirmed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, OrderCanTransition(tt.from, tt.to))
		})
	}
}

func TestOrderStatusIsCancellable(t *testing.T) {
	assert.True(t, OrderStatusIsCancellable(OrderStatusPending))
	assert.True(t, OrderStatusIsCancellable(OrderStatusConfirmed))
	assert.True(t, OrderStatusIsCancellable(OrderStatusPreparing))
	assert.False(t, OrderStatusIsCancellable(OrderStatusOutForDelivery))
	assert.False(t, OrderStatusIsCancellable(OrderStatusDelivered))
	assert.False(t, OrderStatusIsCancellable(OrderStatusCancelled))
}

func TestAmountsEqual(t *testing.T) {
	assert.True(t, AmountsEqual(10.00, 10.004))
	assert.True(t, AmountsEqual(0.1+0.2, 0.3))
	assert.False(t, AmountsEqual(10.00, 10.01))
}

func TestDeliveryCanTransition(t *testing.T) {
	tests := []struct {
		name string
		from string
		to   string
		want bool
	}{
		{"unassigned_to_assigned", DeliveryStatusUnassigned, DeliveryStatusAssigned, true},
		{"assigned_to_picked_up", DeliveryStatusAssigned, DeliveryStatusPickedUp, true},
		{"picked_up_to_in_transit", DeliveryStatusPickedUp, DeliveryStatusInTransit, true},
		{"in_transit_to_completed", DeliveryStatusInTransit, DeliveryStatusCompleted, true},
		{"skipping_a_stage_rejected", DeliveryStatusAssigned, DeliveryStatusInTransit, false},
		{"assigned_may_fail", DeliveryStatusAssigned, DeliveryStatusFailed, true},
		{"in_transit_may_fail", DeliveryStatusInTransit, DeliveryStatusFailed, true},
		{"unassigned_may_not_fail_as_transition", DeliveryStatusUnassigned, DeliveryStatusFailed, false},
		{"completed_is_terminal", DeliveryStatusCompleted, DeliveryStatusFailed, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeliveryCanTransition(tt.from, tt.to))
		})
	}
}
