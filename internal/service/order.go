package service

import (
	"context"
	"errors"

	"github.com/feastly/feastly/internal/authz"
	"github.com/feastly/feastly/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderRepository is interface for interacting with order-related data
type OrderRepository interface {
	// CreateOrder inserts new order with line items
	CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error)
	// GetOrderByID returns order with line items
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	// ListOrders returns orders matching the narrowed filter
	ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error)
	// UpdateOrderStatus moves order status guarded by the expected prior status
	UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to string) error
}

// MenuRepository is interface for reading the menu catalog
type MenuRepository interface {
	GetMenuItems(ctx context.Context, ids []uuid.UUID) ([]models.MenuItem, error)
}

// OrderDeliveryRepository creates the delivery once an order is confirmed
type OrderDeliveryRepository interface {
	CreateDelivery(ctx context.Context, delivery *models.Delivery) (*models.Delivery, error)
}

// OrderService owns order state transitions
type OrderService struct {
	repo       OrderRepository
	menu       MenuRepository
	deliveries OrderDeliveryRepository
	engine     *authz.Engine
	logger     *zap.Logger
}

// NewOrderService creates new OrderService instance
func NewOrderService(repo OrderRepository, menu MenuRepository, deliveries OrderDeliveryRepository, engine *authz.Engine, logger *zap.Logger) *OrderService {
	return &OrderService{
		repo:       repo,
		menu:       menu,
		deliveries: deliveries,
		engine:     engine,
		logger:     logger,
	}
}

// Create validates line items against the menu catalog and inserts a PENDING
// order. A client-supplied total that disagrees with the computed one is a
// validation error, never silently corrected.
func (os *OrderService) Create(ctx context.Context, actor models.Actor, order *models.Order) (*models.Order, error) {
	switch actor.Role {
	case models.RoleCustomer:
		order.CustomerID = actor.ID
	case models.RoleAdmin, models.RoleSuperAdmin:
		// admins may place an order on a customer's behalf
	default:
		return nil, models.ErrForbidden
	}

	if len(order.Items) == 0 {
		return nil, models.ErrEmptyOrder
	}

	ids := make([]uuid.UUID, 0, len(order.Items))
	for _, item := range order.Items {
		if item.Quantity <= 0 {
			return nil, models.ErrValidation
		}
		ids = append(ids, item.MenuItemID)
	}

	catalog, err := os.menu.GetMenuItems(ctx, ids)
	if err != nil {
		return nil, err
	}
	byID := make(map[uuid.UUID]models.MenuItem, len(catalog))
	for _, mi := range catalog {
		byID[mi.ID] = mi
	}

	for i := range order.Items {
		item := &order.Items[i]
		mi, ok := byID[item.MenuItemID]
		if !ok || !mi.Available || mi.RestaurantID != order.RestaurantID {
			return nil, models.ErrUnknownMenuItem
		}
		// prices come from the catalog, not the client
		item.UnitPrice = mi.Price
		item.ID = uuid.New()
	}

	computed := order.ItemsTotal()
	if order.Total != 0 && !models.AmountsEqual(order.Total, computed) {
		return nil, models.ErrTotalMismatch
	}
	order.Total = computed

	order.ID = uuid.New()
	order.TenantID = actor.TenantID
	order.Status = models.OrderStatusPending

	return os.repo.CreateOrder(ctx, order)
}

// GetOrderByID loads an order without access checks. It serves the sibling
// services, which authorize against the loaded order themselves.
func (os *OrderService) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	return os.repo.GetOrderByID(ctx, id)
}

// Get returns the order if the actor may read it
func (os *OrderService) Get(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Order, error) {
	order, err := os.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !os.engine.CanAccessOrder(actor, order) {
		return nil, models.ErrForbidden
	}

	return order, nil
}

// List returns orders visible to the actor, with ownership constraints
// forced into the filter
func (os *OrderService) List(ctx context.Context, actor models.Actor, filter models.OrderFilter) ([]models.Order, error) {
	narrowed, err := os.engine.NarrowOrderFilter(actor, filter)
	if err != nil {
		return nil, err
	}

	return os.repo.ListOrders(ctx, narrowed)
}

// UpdateStatus advances the order one step along the forward chain.
// CANCELLED is not reachable here; that belongs to the cancellation flow.
func (os *OrderService) UpdateStatus(ctx context.Context, actor models.Actor, id uuid.UUID, to string) (*models.Order, error) {
	switch to {
	case models.OrderStatusConfirmed, models.OrderStatusPreparing,
		models.OrderStatusOutForDelivery, models.OrderStatusDelivered:
	default:
		return nil, models.ErrValidation
	}

	order, err := os.repo.GetOrderByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !os.engine.CanUpdateOrder(actor, order) {
		return nil, models.ErrForbidden
	}

	if models.OrderStatusIsTerminal(order.Status) || !models.OrderCanTransition(order.Status, to) {
		return nil, models.ErrInvalidTransition
	}

	if err := os.repo.UpdateOrderStatus(ctx, id, order.Status, to); err != nil {
		if errors.Is(err, models.ErrConflictData) {
			return nil, models.ErrInvalidTransition
		}
		return nil, err
	}

	order.Status = to

	if to == models.OrderStatusConfirmed {
		os.ensureDelivery(ctx, order.ID)
	}

	return order, nil
}

// AdvanceOnPaymentSettled moves a PENDING order to CONFIRMED after its
// payment succeeded. An order that already moved on is left alone.
func (os *OrderService) AdvanceOnPaymentSettled(ctx context.Context, orderID uuid.UUID) error {
	order, err := os.repo.GetOrderByID(ctx, orderID)
	if err != nil {
		return err
	}

	if order.Status == models.OrderStatusCancelled {
		// cancelled while the payment was settling; no delivery may appear
		// for it, and the money needs an operator-driven refund
		os.logger.Warn("payment settled for cancelled order", zap.String("order_id", orderID.String()))
		return nil
	}

	if order.Status == models.OrderStatusPending {
		err := os.repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusPending, models.OrderStatusConfirmed)
		if err != nil && !errors.Is(err, models.ErrConflictData) {
			return err
		}
	}

	os.ensureDelivery(ctx, orderID)
	return nil
}

// AdvanceOnPickup moves the order to OUT_FOR_DELIVERY when the driver picks
// the food up. The restaurant must have marked it PREPARING first.
func (os *OrderService) AdvanceOnPickup(ctx context.Context, orderID uuid.UUID) error {
	err := os.repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusPreparing, models.OrderStatusOutForDelivery)
	if err != nil {
		if errors.Is(err, models.ErrConflictData) {
			return models.ErrInvalidTransition
		}
		return err
	}
	return nil
}

// AdvanceOnDeliveryCompleted moves the order to DELIVERED
func (os *OrderService) AdvanceOnDeliveryCompleted(ctx context.Context, orderID uuid.UUID) error {
	err := os.repo.UpdateOrderStatus(ctx, orderID, models.OrderStatusOutForDelivery, models.OrderStatusDelivered)
	if err != nil {
		if errors.Is(err, models.ErrConflictData) {
			return models.ErrInvalidTransition
		}
		return err
	}
	return nil
}

// ensureDelivery creates the order's delivery row if it does not exist yet.
// The unique order_id constraint makes a duplicate attempt a harmless no-op.
func (os *OrderService) ensureDelivery(ctx context.Context, orderID uuid.UUID) {
	delivery := models.Delivery{
		ID:      uuid.New(),
		OrderID: orderID,
		Status:  models.DeliveryStatusUnassigned,
	}
	if _, err := os.deliveries.CreateDelivery(ctx, &delivery); err != nil && !errors.Is(err, models.ErrConflictData) {
		os.logger.Error("create delivery for confirmed order", zap.String("order_id", orderID.String()), zap.Error(err))
	}
}
