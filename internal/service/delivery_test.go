package service

import (
	"context"
	"errors"
	"testing"

	"github.com/feastly/feastly/internal/authz"
	"github.com/feastly/feastly/internal/models"
	"github.com/feastly/feastly/internal/service/mocks"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type deliveryMocks struct {
	repo     *mocks.MockDeliveryRepository
	drivers  *mocks.MockDriverRepository
	payments *mocks.MockDeliveryPaymentReader
	orders   *mocks.MockDeliveryOrderService
}

func newDeliveryService(ctrl *gomock.Controller) (*DeliveryService, deliveryMocks) {
	m := deliveryMocks{
		repo:     mocks.NewMockDeliveryRepository(ctrl),
		drivers:  mocks.NewMockDriverRepository(ctrl),
		payments: mocks.NewMockDeliveryPaymentReader(ctrl),
		orders:   mocks.NewMockDeliveryOrderService(ctrl),
	}
	return NewDeliveryService(m.repo, m.drivers, m.payments, m.orders, authz.New(), zap.NewNop()), m
}

func TestDeliveryService_AssignDriver(t *testing.T) {
	deliveryID := uuid.New()
	driverID := uuid.New()
	orderID := uuid.New()
	tenantID := uuid.New()
	admin := models.Actor{ID: uuid.New(), Role: models.RoleAdmin, TenantID: tenantID}

	order := &models.Order{ID: orderID, TenantID: tenantID, Status: models.OrderStatusConfirmed}
	unassigned := func() *models.Delivery {
		return &models.Delivery{ID: deliveryID, OrderID: orderID, Status: models.DeliveryStatusUnassigned}
	}

	t.Run("claims_the_driver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.repo.EXPECT().GetDeliveryByID(gomock.Any(), deliveryID).Return(unassigned(), nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), orderID).Return(order, nil)
		m.drivers.EXPECT().GetDriverByID(gomock.Any(), driverID).Return(&models.Driver{
			ID:           driverID,
			TenantID:     tenantID,
			Availability: models.DriverAvailable,
		}, nil)
		m.repo.EXPECT().AssignDriver(gomock.Any(), deliveryID, driverID).Return(nil)

		got, err := svc.AssignDriver(context.Background(), admin, deliveryID, driverID)
		require.NoError(t, err)
		assert.Equal(t, models.DeliveryStatusAssigned, got.Status)
		assert.Equal(t, driverID, *got.DriverID)
	})

	t.Run("foreign_tenant_driver_forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.repo.EXPECT().GetDeliveryByID(gomock.Any(), deliveryID).Return(unassigned(), nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), orderID).Return(order, nil)
		m.drivers.EXPECT().GetDriverByID(gomock.Any(), driverID).Return(&models.Driver{
			ID:       driverID,
			TenantID: uuid.New(),
		}, nil)
		m.repo.EXPECT().AssignDriver(gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.AssignDriver(context.Background(), admin, deliveryID, driverID)
		assert.True(t, errors.Is(err, models.ErrForbidden))
	})

	t.Run("already_assigned_conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		other := uuid.New()
		m.repo.EXPECT().GetDeliveryByID(gomock.Any(), deliveryID).Return(&models.Delivery{
			ID:       deliveryID,
			OrderID:  orderID,
			DriverID: &other,
			Status:   models.DeliveryStatusAssigned,
		}, nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), orderID).Return(order, nil)

		_, err := svc.AssignDriver(context.Background(), admin, deliveryID, driverID)
		assert.True(t, errors.Is(err, models.ErrInvalidTransition))
	})

	t.Run("lost_claim_race_propagates", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.repo.EXPECT().GetDeliveryByID(gomock.Any(), deliveryID).Return(unassigned(), nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), orderID).Return(order, nil)
		m.drivers.EXPECT().GetDriverByID(gomock.Any(), driverID).Return(&models.Driver{
			ID:       driverID,
			TenantID: tenantID,
		}, nil)
		// a concurrent assignment flipped the driver to BUSY first
		m.repo.EXPECT().AssignDriver(gomock.Any(), deliveryID, driverID).Return(models.ErrDriverUnavailable)

		_, err := svc.AssignDriver(context.Background(), admin, deliveryID, driverID)
		assert.True(t, errors.Is(err, models.ErrDriverUnavailable))
	})

	t.Run("customer_may_not_assign", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.repo.EXPECT().GetDeliveryByID(gomock.Any(), deliveryID).Return(unassigned(), nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), orderID).Return(order, nil)

		customer := models.Actor{ID: uuid.New(), Role: models.RoleCustomer}
		_, err := svc.AssignDriver(context.Background(), customer, deliveryID, driverID)
		assert.True(t, errors.Is(err, models.ErrForbidden))
	})
}

func TestDeliveryService_UpdateStatus(t *testing.T) {
	deliveryID := uuid.New()
	driverID := uuid.New()
	orderID := uuid.New()
	driver := models.Actor{ID: driverID, Role: models.RoleDriver}

	delivery := func(status string) *models.Delivery {
		return &models.Delivery{ID: deliveryID, OrderID: orderID, DriverID: &driverID, Status: status}
	}
	order := &models.Order{ID: orderID, Status: models.OrderStatusPreparing}

	t.Run("pickup_drags_the_order_along", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.repo.EXPECT().GetDeliveryByID(gomock.Any(), deliveryID).Return(delivery(models.DeliveryStatusAssigned), nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), orderID).Return(order, nil)
		m.orders.EXPECT().AdvanceOnPickup(gomock.Any(), orderID).Return(nil)
		m.repo.EXPECT().UpdateDeliveryStatus(gomock.Any(), deliveryID, models.DeliveryStatusAssigned, models.DeliveryStatusPickedUp).Return(nil)

		got, err := svc.UpdateStatus(context.Background(), driver, deliveryID, models.DeliveryStatusPickedUp)
		require.NoError(t, err)
		assert.Equal(t, models.DeliveryStatusPickedUp, got.Status)
	})

	t.Run("pickup_before_preparing_conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.repo.EXPECT().GetDeliveryByID(gomock.Any(), deliveryID).Return(delivery(models.DeliveryStatusAssigned), nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), orderID).Return(&models.Order{ID: orderID, Status: models.OrderStatusConfirmed}, nil)
		m.orders.EXPECT().AdvanceOnPickup(gomock.Any(), gomock.Any()).Times(0)
		m.repo.EXPECT().UpdateDeliveryStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.UpdateStatus(context.Background(), driver, deliveryID, models.DeliveryStatusPickedUp)
		assert.True(t, errors.Is(err, models.ErrInvalidTransition))
	})

	t.Run("lost_delivery_race_never_advances_order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.repo.EXPECT().GetDeliveryByID(gomock.Any(), deliveryID).Return(delivery(models.DeliveryStatusAssigned), nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), orderID).Return(order, nil)
		// staff failed the delivery concurrently with the driver's pickup
		m.repo.EXPECT().UpdateDeliveryStatus(gomock.Any(), deliveryID, models.DeliveryStatusAssigned, models.DeliveryStatusPickedUp).Return(models.ErrConflictData)
		m.orders.EXPECT().AdvanceOnPickup(gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.UpdateStatus(context.Background(), driver, deliveryID, models.DeliveryStatusPickedUp)
		assert.True(t, errors.Is(err, models.ErrInvalidTransition))
	})

	t.Run("completion_requires_settled_payment", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.repo.EXPECT().GetDeliveryByID(gomock.Any(), deliveryID).Return(delivery(models.DeliveryStatusInTransit), nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), orderID).Return(&models.Order{ID: orderID, Status: models.OrderStatusOutForDelivery}, nil)
		m.payments.EXPECT().GetPaymentsByOrderID(gomock.Any(), orderID).Return([]models.Payment{
			{Status: models.PaymentStatusPending},
		}, nil)
		m.repo.EXPECT().UpdateDeliveryStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		_, err := svc.UpdateStatus(context.Background(), driver, deliveryID, models.DeliveryStatusCompleted)
		assert.True(t, errors.Is(err, models.ErrPaymentNotSettled))
	})

	t.Run("completion_releases_the_driver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.repo.EXPECT().GetDeliveryByID(gomock.Any(), deliveryID).Return(delivery(models.DeliveryStatusInTransit), nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), orderID).Return(&models.Order{ID: orderID, Status: models.OrderStatusOutForDelivery}, nil)
		m.payments.EXPECT().GetPaymentsByOrderID(gomock.Any(), orderID).Return([]models.Payment{
			{Status: models.PaymentStatusSucceeded, Amount: 42.50},
		}, nil)
		m.repo.EXPECT().UpdateDeliveryStatus(gomock.Any(), deliveryID, models.DeliveryStatusInTransit, models.DeliveryStatusCompleted).Return(nil)
		m.orders.EXPECT().AdvanceOnDeliveryCompleted(gomock.Any(), orderID).Return(nil)
		m.drivers.EXPECT().SetAvailability(gomock.Any(), driverID, models.DriverBusy, models.DriverAvailable).Return(nil)

		got, err := svc.UpdateStatus(context.Background(), driver, deliveryID, models.DeliveryStatusCompleted)
		require.NoError(t, err)
		assert.Equal(t, models.DeliveryStatusCompleted, got.Status)
	})

	t.Run("skipping_a_stage_conflicts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.repo.EXPECT().GetDeliveryByID(gomock.Any(), deliveryID).Return(delivery(models.DeliveryStatusAssigned), nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), orderID).Return(order, nil)

		_, err := svc.UpdateStatus(context.Background(), driver, deliveryID, models.DeliveryStatusInTransit)
		assert.True(t, errors.Is(err, models.ErrInvalidTransition))
	})

	t.Run("foreign_driver_forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.repo.EXPECT().GetDeliveryByID(gomock.Any(), deliveryID).Return(delivery(models.DeliveryStatusAssigned), nil)
		m.orders.EXPECT().GetOrderByID(gomock.Any(), orderID).Return(order, nil)

		other := models.Actor{ID: uuid.New(), Role: models.RoleDriver}
		_, err := svc.UpdateStatus(context.Background(), other, deliveryID, models.DeliveryStatusPickedUp)
		assert.True(t, errors.Is(err, models.ErrForbidden))
	})
}

func TestDeliveryService_FailForOrder(t *testing.T) {
	orderID := uuid.New()
	deliveryID := uuid.New()
	driverID := uuid.New()

	t.Run("fails_active_delivery_and_releases_driver", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.repo.EXPECT().GetDeliveryByOrderID(gomock.Any(), orderID).Return(&models.Delivery{
			ID:       deliveryID,
			OrderID:  orderID,
			DriverID: &driverID,
			Status:   models.DeliveryStatusAssigned,
		}, nil)
		m.repo.EXPECT().UpdateDeliveryStatus(gomock.Any(), deliveryID, models.DeliveryStatusAssigned, models.DeliveryStatusFailed).Return(nil)
		m.drivers.EXPECT().SetAvailability(gomock.Any(), driverID, models.DriverBusy, models.DriverAvailable).Return(nil)

		require.NoError(t, svc.FailForOrder(context.Background(), orderID))
	})

	t.Run("no_delivery_is_a_noop", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.repo.EXPECT().GetDeliveryByOrderID(gomock.Any(), orderID).Return(nil, models.ErrDataNotFound)

		require.NoError(t, svc.FailForOrder(context.Background(), orderID))
	})

	t.Run("completed_delivery_left_alone", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.repo.EXPECT().GetDeliveryByOrderID(gomock.Any(), orderID).Return(&models.Delivery{
			ID:      deliveryID,
			OrderID: orderID,
			Status:  models.DeliveryStatusCompleted,
		}, nil)
		m.repo.EXPECT().UpdateDeliveryStatus(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Times(0)

		require.NoError(t, svc.FailForOrder(context.Background(), orderID))
	})
}

func TestDeliveryService_UpdateDriver(t *testing.T) {
	driverID := uuid.New()
	tenantID := uuid.New()

	t.Run("driver_flips_own_availability", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.drivers.EXPECT().GetDriverByID(gomock.Any(), driverID).Return(&models.Driver{
			ID:           driverID,
			TenantID:     tenantID,
			Name:         "sam",
			Availability: models.DriverAvailable,
		}, nil)
		m.drivers.EXPECT().SetAvailability(gomock.Any(), driverID, models.DriverAvailable, models.DriverBusy).Return(nil)

		self := models.Actor{ID: driverID, Role: models.RoleDriver}
		got, err := svc.UpdateDriver(context.Background(), self, driverID, "", models.DriverBusy)
		require.NoError(t, err)
		assert.Equal(t, models.DriverBusy, got.Availability)
	})

	t.Run("driver_may_not_rename_itself", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.drivers.EXPECT().GetDriverByID(gomock.Any(), driverID).Return(&models.Driver{
			ID:           driverID,
			TenantID:     tenantID,
			Name:         "sam",
			Availability: models.DriverAvailable,
		}, nil)
		m.drivers.EXPECT().UpdateDriver(gomock.Any(), gomock.Any()).Times(0)

		self := models.Actor{ID: driverID, Role: models.RoleDriver}
		_, err := svc.UpdateDriver(context.Background(), self, driverID, "samuel", "")
		assert.True(t, errors.Is(err, models.ErrForbidden))
	})

	t.Run("foreign_driver_forbidden", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		svc, m := newDeliveryService(ctrl)
		m.drivers.EXPECT().GetDriverByID(gomock.Any(), driverID).Return(&models.Driver{
			ID:       driverID,
			TenantID: tenantID,
		}, nil)

		other := models.Actor{ID: uuid.New(), Role: models.RoleDriver}
		_, err := svc.UpdateDriver(context.Background(), other, driverID, "", models.DriverBusy)
		assert.True(t, errors.Is(err, models.ErrForbidden))
	})
}
