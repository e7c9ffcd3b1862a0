package service

import (
	"context"
	"errors"

	"github.com/feastly/feastly/internal/authz"
	"github.com/feastly/feastly/internal/gateway"
	"github.com/feastly/feastly/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

// CancellationRepository is interface for interacting with cancellation data
type CancellationRepository interface {
	// CreateCancellation writes the cancellation and cancels the order in one
	// guarded transaction
	CreateCancellation(ctx context.Context, c *models.OrderCancellation, eligible []string) (*models.OrderCancellation, error)
	GetCancellationByID(ctx context.Context, id uuid.UUID) (*models.OrderCancellation, error)
	GetCancellationByOrderID(ctx context.Context, orderID uuid.UUID) (*models.OrderCancellation, error)
	ListCancellations(ctx context.Context, filter models.CancellationFilter) ([]models.OrderCancellation, error)
	MarkRefundRequested(ctx context.Context, id uuid.UUID, refundRef string) error
	UpdateRefundStatus(ctx context.Context, id uuid.UUID, from, to string) error
}

// CancellationOrderReader loads orders for eligibility and access checks
type CancellationOrderReader interface {
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
}

// CancellationPaymentReader finds the settled payment to refund
type CancellationPaymentReader interface {
	GetPaymentsByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.Payment, error)
}

// RefundGateway initiates refunds at the payment gateway
type RefundGateway interface {
	CreateRefund(ctx context.Context, paymentRef string, amount float64) (*gateway.RefundObject, error)
}

// DeliveryFailer winds down an order's active delivery on cancellation
type DeliveryFailer interface {
	FailForOrder(ctx context.Context, orderID uuid.UUID) error
}

var cancellableStatuses = []string{
	models.OrderStatusPending,
	models.OrderStatusConfirmed,
	models.OrderStatusPreparing,
}

// CancellationService validates eligibility, records cancellations and
// drives the refund lifecycle
type CancellationService struct {
	repo       CancellationRepository
	orders     CancellationOrderReader
	payments   CancellationPaymentReader
	gw         RefundGateway
	deliveries DeliveryFailer
	engine     *authz.Engine
	logger     *zap.Logger
}

// NewCancellationService creates new CancellationService instance
func NewCancellationService(repo CancellationRepository, orders CancellationOrderReader, payments CancellationPaymentReader, gw RefundGateway, deliveries DeliveryFailer, engine *authz.Engine, logger *zap.Logger) *CancellationService {
	return &CancellationService{
		repo:       repo,
		orders:     orders,
		payments:   payments,
		gw:         gw,
		deliveries: deliveries,
		engine:     engine,
		logger:     logger,
	}
}

// Create cancels an order. The order write is conditional on the order still
// being cancellable at commit time, so an order that progressed past
// PREPARING after the eligibility check conflicts rather than cancels. A
// duplicate request against an already-cancelled order is rejected.
func (cs *CancellationService) Create(ctx context.Context, actor models.Actor, orderID uuid.UUID, reason string) (*models.OrderCancellation, error) {
	order, err := cs.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !cs.engine.CanCancelOrder(actor, order) {
		return nil, models.ErrForbidden
	}

	if !models.OrderStatusIsCancellable(order.Status) {
		return nil, models.ErrOrderNotCancellable
	}

	c := models.OrderCancellation{
		ID:           uuid.New(),
		OrderID:      orderID,
		RequestedBy:  actor.ID,
		Reason:       reason,
		Status:       models.CancellationStatusConfirmed,
		RefundStatus: models.RefundStatusNone,
	}

	if _, err := cs.repo.CreateCancellation(ctx, &c, cancellableStatuses); err != nil {
		return nil, err
	}

	if err := cs.deliveries.FailForOrder(ctx, orderID); err != nil {
		cs.logger.Error("fail delivery for cancelled order",
			zap.String("order_id", orderID.String()), zap.Error(err))
	}

	cs.initiateRefund(ctx, &c)

	return &c, nil
}

// initiateRefund asks the gateway to refund the order's settled payment, if
// any, and records refund_status = REQUESTED. A gateway failure leaves the
// refund unrequested; the cancellation itself stands and an operator can
// re-drive the refund through the update path.
func (cs *CancellationService) initiateRefund(ctx context.Context, c *models.OrderCancellation) {
	payments, err := cs.payments.GetPaymentsByOrderID(ctx, c.OrderID)
	if err != nil {
		cs.logger.Error("load payments for refund", zap.String("order_id", c.OrderID.String()), zap.Error(err))
		return
	}

	var settled *models.Payment
	for i := range payments {
		if payments[i].Status == models.PaymentStatusSucceeded {
			settled = &payments[i]
			break
		}
	}
	if settled == nil {
		return
	}

	refund, err := cs.gw.CreateRefund(ctx, settled.GatewayRef, settled.Amount)
	if err != nil {
		cs.logger.Error("request refund at gateway",
			zap.String("order_id", c.OrderID.String()),
			zap.String("gateway_ref", settled.GatewayRef),
			zap.Error(err))
		return
	}

	if err := cs.repo.MarkRefundRequested(ctx, c.ID, refund.Ref); err != nil {
		cs.logger.Error("record requested refund",
			zap.String("cancellation_id", c.ID.String()), zap.Error(err))
		return
	}

	c.RefundStatus = models.RefundStatusRequested
	c.RefundRef = refund.Ref
}

// Get returns the cancellation if the actor may read it
func (cs *CancellationService) Get(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.OrderCancellation, error) {
	c, err := cs.repo.GetCancellationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	order, err := cs.orders.GetOrderByID(ctx, c.OrderID)
	if err != nil {
		return nil, err
	}

	if !cs.engine.CanAccessCancellation(actor, order) {
		return nil, models.ErrForbidden
	}

	return c, nil
}

// List returns cancellations visible to the actor
func (cs *CancellationService) List(ctx context.Context, actor models.Actor, filter models.CancellationFilter) ([]models.OrderCancellation, error) {
	narrowed, err := cs.engine.NarrowCancellationFilter(actor, filter)
	if err != nil {
		return nil, err
	}

	return cs.repo.ListCancellations(ctx, narrowed)
}

// UpdateRefundStatus lets an administrator settle a refund out of band, e.g.
// after refunding manually in the gateway dashboard
func (cs *CancellationService) UpdateRefundStatus(ctx context.Context, actor models.Actor, id uuid.UUID, to string) (*models.OrderCancellation, error) {
	if !cs.engine.CanUpdateCancellation(actor) {
		return nil, models.ErrForbidden
	}

	switch to {
	case models.RefundStatusCompleted, models.RefundStatusFailed:
	default:
		return nil, models.ErrValidation
	}

	c, err := cs.repo.GetCancellationByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if c.RefundStatus != models.RefundStatusRequested {
		return nil, models.ErrInvalidTransition
	}

	if err := cs.repo.UpdateRefundStatus(ctx, id, models.RefundStatusRequested, to); err != nil {
		if errors.Is(err, models.ErrConflictData) {
			return nil, models.ErrInvalidTransition
		}
		return nil, err
	}

	c.RefundStatus = to
	return c, nil
}
