package service

import (
	"context"
	"errors"

	"github.com/feastly/feastly/internal/authz"
	"github.com/feastly/feastly/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// DeliveryRepository is interface for interacting with delivery-related data
type DeliveryRepository interface {
	CreateDelivery(ctx context.Context, delivery *models.Delivery) (*models.Delivery, error)
	GetDeliveryByID(ctx context.Context, id uuid.UUID) (*models.Delivery, error)
	GetDeliveryByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Delivery, error)
	ListDeliveries(ctx context.Context, filter models.DeliveryFilter) ([]models.Delivery, error)
	// AssignDriver claims the driver and assigns the delivery atomically
	AssignDriver(ctx context.Context, deliveryID, driverID uuid.UUID) error
	UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, from, to string) error
}

// DriverRepository is interface for interacting with driver-related data
type DriverRepository interface {
	CreateDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error)
	GetDriverByID(ctx context.Context, id uuid.UUID) (*models.Driver, error)
	ListDrivers(ctx context.Context, tenantID uuid.UUID) ([]models.Driver, error)
	UpdateDriver(ctx context.Context, driver *models.Driver) error
	SetAvailability(ctx context.Context, id uuid.UUID, from, to string) error
}

// DeliveryPaymentReader checks settlement before a delivery may complete
type DeliveryPaymentReader interface {
	GetPaymentsByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.Payment, error)
}

// DeliveryOrderService is the slice of order behavior deliveries drive
type DeliveryOrderService interface {
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	AdvanceOnPickup(ctx context.Context, orderID uuid.UUID) error
	AdvanceOnDeliveryCompleted(ctx context.Context, orderID uuid.UUID) error
}

// DeliveryService assigns drivers and advances delivery status
type DeliveryService struct {
	repo     DeliveryRepository
	drivers  DriverRepository
	payments DeliveryPaymentReader
	orders   DeliveryOrderService
	engine   *authz.Engine
	logger   *zap.Logger
}

// NewDeliveryService creates new DeliveryService instance
func NewDeliveryService(repo DeliveryRepository, drivers DriverRepository, payments DeliveryPaymentReader, orders DeliveryOrderService, engine *authz.Engine, logger *zap.Logger) *DeliveryService {
	return &DeliveryService{
		repo:     repo,
		drivers:  drivers,
		payments: payments,
		orders:   orders,
		engine:   engine,
		logger:   logger,
	}
}

// Get returns the delivery if the actor may read it
func (ds *DeliveryService) Get(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Delivery, error) {
	delivery, err := ds.repo.GetDeliveryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order, err := ds.orders.GetOrderByID(ctx, delivery.OrderID)
	if err != nil {
		return nil, err
	}

	if !ds.engine.CanAccessDelivery(actor, delivery, order) {
		return nil, models.ErrForbidden
	}

	return delivery, nil
}

// List returns deliveries visible to the actor
func (ds *DeliveryService) List(ctx context.Context, actor models.Actor, filter models.DeliveryFilter) ([]models.Delivery, error) {
	narrowed, err := ds.engine.NarrowDeliveryFilter(actor, filter)
	if err != nil {
		return nil, err
	}

	return ds.repo.ListDeliveries(ctx, narrowed)
}

// Create creates a delivery for an order by hand. Normally the order flow
// creates it on confirmation; this is an administrative repair path.
func (ds *DeliveryService) Create(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.Delivery, error) {
	if !actor.IsAdmin() {
		return nil, models.ErrForbidden
	}

	if _, err := ds.orders.GetOrderByID(ctx, orderID); err != nil {
		return nil, err
	}

	delivery := models.Delivery{
		ID:      uuid.New(),
		OrderID: orderID,
		Status:  models.DeliveryStatusUnassigned,
	}

	return ds.repo.CreateDelivery(ctx, &delivery)
}

// AssignDriver claims an available driver for an unassigned delivery. Of two
// concurrent assignments exactly one wins; the loser gets a conflict.
func (ds *DeliveryService) AssignDriver(ctx context.Context, actor models.Actor, deliveryID, driverID uuid.UUID) (*models.Delivery, error) {
	delivery, err := ds.repo.GetDeliveryByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}

	order, err := ds.orders.GetOrderByID(ctx, delivery.OrderID)
	if err != nil {
		return nil, err
	}

	if !(actor.IsAdmin() || (actor.IsRestaurantRole() && actor.OwnsRestaurant(order.RestaurantID))) {
		return nil, models.ErrForbidden
	}

	if delivery.Status != models.DeliveryStatusUnassigned {
		return nil, models.ErrInvalidTransition
	}

	driver, err := ds.drivers.GetDriverByID(ctx, driverID)
	if err != nil {
		return nil, err
	}
	if driver.TenantID != order.TenantID {
		return nil, models.ErrForbidden
	}

	if err := ds.repo.AssignDriver(ctx, deliveryID, driverID); err != nil {
		return nil, err
	}

	delivery.DriverID = &driverID
	delivery.Status = models.DeliveryStatusAssigned
	return delivery, nil
}

// UpdateStatus advances the delivery one step. Completion requires a settled
// payment and drags the order to DELIVERED; FAILED releases the driver.
func (ds *DeliveryService) UpdateStatus(ctx context.Context, actor models.Actor, id uuid.UUID, to string) (*models.Delivery, error) {
	switch to {
	case models.DeliveryStatusPickedUp, models.DeliveryStatusInTransit,
		models.DeliveryStatusCompleted, models.DeliveryStatusFailed:
	default:
		return nil, models.ErrValidation
	}

	delivery, err := ds.repo.GetDeliveryByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order, err := ds.orders.GetOrderByID(ctx, delivery.OrderID)
	if err != nil {
		return nil, err
	}

	if !ds.engine.CanUpdateDelivery(actor, delivery, order) {
		return nil, models.ErrForbidden
	}

	if !models.DeliveryCanTransition(delivery.Status, to) {
		return nil, models.ErrInvalidTransition
	}

	switch to {
	case models.DeliveryStatusPickedUp:
		if order.Status != models.OrderStatusPreparing && order.Status != models.OrderStatusOutForDelivery {
			return nil, models.ErrInvalidTransition
		}
	case models.DeliveryStatusCompleted:
		settled, err := ds.orderHasSettledPayment(ctx, order.ID)
		if err != nil {
			return nil, err
		}
		if !settled {
			return nil, models.ErrPaymentNotSettled
		}
		if order.Status != models.OrderStatusOutForDelivery && order.Status != models.OrderStatusDelivered {
			return nil, models.ErrInvalidTransition
		}
	}

	if err := ds.repo.UpdateDeliveryStatus(ctx, id, delivery.Status, to); err != nil {
		if errors.Is(err, models.ErrConflictData) {
			return nil, models.ErrInvalidTransition
		}
		return nil, err
	}

	// the delivery write committed; drag the order along. A conflicting order
	// advance here means another actor already moved it, which is fine.
	switch to {
	case models.DeliveryStatusPickedUp:
		if err := ds.orders.AdvanceOnPickup(ctx, order.ID); err != nil && !errors.Is(err, models.ErrInvalidTransition) {
			ds.logger.Error("advance order on pickup", zap.String("order_id", order.ID.String()), zap.Error(err))
		}
	case models.DeliveryStatusCompleted:
		if err := ds.orders.AdvanceOnDeliveryCompleted(ctx, order.ID); err != nil && !errors.Is(err, models.ErrInvalidTransition) {
			ds.logger.Error("advance order on delivery completion", zap.String("order_id", order.ID.String()), zap.Error(err))
		}
	}

	if (to == models.DeliveryStatusCompleted || to == models.DeliveryStatusFailed) && delivery.DriverID != nil {
		ds.releaseDriver(ctx, *delivery.DriverID)
	}

	delivery.Status = to
	return delivery, nil
}

// FailForOrder marks an order's active delivery FAILED and releases its
// driver. Used by the cancellation flow; an order without an active delivery
// is a no-op.
func (ds *DeliveryService) FailForOrder(ctx context.Context, orderID uuid.UUID) error {
	delivery, err := ds.repo.GetDeliveryByOrderID(ctx, orderID)
	if err != nil {
		if errors.Is(err, models.ErrDataNotFound) {
			return nil
		}
		return err
	}

	if delivery.Status == models.DeliveryStatusUnassigned {
		// nothing in flight; remove the slot from the board by failing it
		if err := ds.repo.UpdateDeliveryStatus(ctx, delivery.ID, delivery.Status, models.DeliveryStatusFailed); err != nil && !errors.Is(err, models.ErrConflictData) {
			return err
		}
		return nil
	}

	if !models.DeliveryStatusIsActive(delivery.Status) {
		return nil
	}

	if err := ds.repo.UpdateDeliveryStatus(ctx, delivery.ID, delivery.Status, models.DeliveryStatusFailed); err != nil {
		if errors.Is(err, models.ErrConflictData) {
			return nil
		}
		return err
	}

	if delivery.DriverID != nil {
		ds.releaseDriver(ctx, *delivery.DriverID)
	}

	return nil
}

func (ds *DeliveryService) orderHasSettledPayment(ctx context.Context, orderID uuid.UUID) (bool, error) {
	payments, err := ds.payments.GetPaymentsByOrderID(ctx, orderID)
	if err != nil {
		return false, err
	}
	for _, p := range payments {
		if p.Status == models.PaymentStatusSucceeded {
			return true, nil
		}
	}
	return false, nil
}

func (ds *DeliveryService) releaseDriver(ctx context.Context, driverID uuid.UUID) {
	if err := ds.drivers.SetAvailability(ctx, driverID, models.DriverBusy, models.DriverAvailable); err != nil && !errors.Is(err, models.ErrConflictData) {
		ds.logger.Error("release driver", zap.String("driver_id", driverID.String()), zap.Error(err))
	}
}

// CreateDriver registers a new driver in the actor's tenant
func (ds *DeliveryService) CreateDriver(ctx context.Context, actor models.Actor, driver *models.Driver) (*models.Driver, error) {
	if !ds.engine.CanManageDrivers(actor) {
		return nil, models.ErrForbidden
	}

	driver.ID = uuid.New()
	driver.TenantID = actor.TenantID
	if driver.Availability == "" {
		driver.Availability = models.DriverAvailable
	}

	return ds.drivers.CreateDriver(ctx, driver)
}

// GetDriver returns a driver record
func (ds *DeliveryService) GetDriver(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Driver, error) {
	driver, err := ds.drivers.GetDriverByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !(actor.IsAdmin() || actor.IsRestaurantRole() || actor.ID == driver.ID) {
		return nil, models.ErrForbidden
	}

	return driver, nil
}

// ListDrivers returns the tenant's drivers
func (ds *DeliveryService) ListDrivers(ctx context.Context, actor models.Actor) ([]models.Driver, error) {
	if !(actor.IsAdmin() || actor.IsRestaurantRole()) {
		return nil, models.ErrForbidden
	}

	return ds.drivers.ListDrivers(ctx, actor.TenantID)
}

// UpdateDriver updates a driver's name or flips availability. A driver may
// only toggle its own availability, and never while claimed by an active
// delivery (the guarded write refuses BUSY -> AVAILABLE races).
func (ds *DeliveryService) UpdateDriver(ctx context.Context, actor models.Actor, id uuid.UUID, name string, availability string) (*models.Driver, error) {
	driver, err := ds.drivers.GetDriverByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !ds.engine.CanUpdateDriver(actor, driver) {
		return nil, models.ErrForbidden
	}

	if name != "" && name != driver.Name {
		if !ds.engine.CanManageDrivers(actor) {
			return nil, models.ErrForbidden
		}
		driver.Name = name
		if err := ds.drivers.UpdateDriver(ctx, driver); err != nil {
			return nil, err
		}
	}

	if availability != "" && availability != driver.Availability {
		switch availability {
		case models.DriverAvailable, models.DriverBusy:
		default:
			return nil, models.ErrValidation
		}
		if err := ds.drivers.SetAvailability(ctx, id, driver.Availability, availability); err != nil {
			return nil, err
		}
		driver.Availability = availability
	}

	return driver, nil
}
