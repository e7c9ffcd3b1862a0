package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/feastly/feastly/internal/authz"
	"github.com/feastly/feastly/internal/gateway"
	"github.com/feastly/feastly/internal/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

const defaultCurrency = "USD"

// PaymentRepository is interface for interacting with payment-related data
type PaymentRepository interface {
	CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error)
	GetPaymentByGatewayRef(ctx context.Context, ref string) (*models.Payment, error)
	GetPaymentsByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.Payment, error)
	GetStalePendingPayments(ctx context.Context, olderThan time.Duration) ([]models.Payment, error)
	// SettleWithEvent records the event id and applies the guarded status
	// transition in one transaction
	SettleWithEvent(ctx context.Context, eventID, eventType, gatewayRef, toStatus string) (*models.Payment, bool, error)
}

// RefundRepository applies refund events to cancellations
type RefundRepository interface {
	SettleRefundWithEvent(ctx context.Context, eventID, eventType, refundRef, toStatus string) (*models.OrderCancellation, bool, error)
}

// OrderAdvancer moves orders forward in reaction to payment settlement
type OrderAdvancer interface {
	GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error)
	AdvanceOnPaymentSettled(ctx context.Context, orderID uuid.UUID) error
}

// GatewayClient is the payment gateway surface the service needs
type GatewayClient interface {
	CreatePaymentIntent(ctx context.Context, req gateway.CreateRequest) (*gateway.PaymentObject, error)
	CreateCheckoutSession(ctx context.Context, req gateway.CreateRequest) (*gateway.PaymentObject, error)
	GetPayment(ctx context.Context, ref string) (*gateway.PaymentObject, error)
}

// PaymentService creates gateway payments and reconciles gateway events into
// local payment and order state
type PaymentService struct {
	repo    PaymentRepository
	refunds RefundRepository
	orders  OrderAdvancer
	gw      GatewayClient
	engine  *authz.Engine
	logger  *zap.Logger

	// pending payments older than this are swept against the gateway
	staleAfter time.Duration
}

// NewPaymentService creates new PaymentService instance
func NewPaymentService(repo PaymentRepository, refunds RefundRepository, orders OrderAdvancer, gw GatewayClient, engine *authz.Engine, logger *zap.Logger) *PaymentService {
	return &PaymentService{
		repo:       repo,
		refunds:    refunds,
		orders:     orders,
		gw:         gw,
		engine:     engine,
		logger:     logger,
		staleAfter: 10 * time.Minute,
	}
}

// CreatePaymentIntent creates a gateway payment intent for the order's
// outstanding balance and records the local payment
func (ps *PaymentService) CreatePaymentIntent(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.PaymentConnection, error) {
	return ps.initiate(ctx, actor, orderID, models.PaymentKindIntent)
}

// CreateCheckoutSession creates a hosted checkout session for the order's
// outstanding balance and records the local payment
func (ps *PaymentService) CreateCheckoutSession(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.PaymentConnection, error) {
	return ps.initiate(ctx, actor, orderID, models.PaymentKindCheckout)
}

func (ps *PaymentService) initiate(ctx context.Context, actor models.Actor, orderID uuid.UUID, kind string) (*models.PaymentConnection, error) {
	order, err := ps.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !ps.engine.CanInitiatePayment(actor, order) {
		return nil, models.ErrForbidden
	}

	if order.Status != models.OrderStatusPending {
		return nil, models.ErrOrderNotPayable
	}

	payments, err := ps.repo.GetPaymentsByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	// the amount sent to the gateway is the recomputed outstanding balance,
	// never a client-supplied figure
	outstanding := order.Total
	for _, p := range payments {
		switch p.Status {
		case models.PaymentStatusPending:
			return nil, models.ErrPaymentInFlight
		case models.PaymentStatusSucceeded:
			outstanding -= p.Amount
		}
	}
	if outstanding <= 0 {
		return nil, models.ErrOrderNotPayable
	}

	req := gateway.CreateRequest{
		OrderRef: order.ID.String(),
		Amount:   outstanding,
		Currency: defaultCurrency,
	}

	var obj *gateway.PaymentObject
	if kind == models.PaymentKindCheckout {
		obj, err = ps.gw.CreateCheckoutSession(ctx, req)
	} else {
		obj, err = ps.gw.CreatePaymentIntent(ctx, req)
	}
	if err != nil {
		return nil, err
	}

	// the local row is committed only after the gateway answered, so a
	// timed-out creation never leaves an orphaned PENDING payment
	payment := models.Payment{
		ID:         uuid.New(),
		OrderID:    order.ID,
		Amount:     outstanding,
		Currency:   defaultCurrency,
		Status:     models.PaymentStatusPending,
		Kind:       kind,
		GatewayRef: obj.Ref,
	}

	if _, err := ps.repo.CreatePayment(ctx, &payment); err != nil {
		if errors.Is(err, models.ErrConflictData) {
			return nil, models.ErrPaymentInFlight
		}
		return nil, err
	}

	return &models.PaymentConnection{
		PaymentID:    payment.ID,
		GatewayRef:   obj.Ref,
		ClientSecret: obj.ClientSecret,
		RedirectURL:  obj.RedirectURL,
	}, nil
}

// GetLatestPayment returns the most recent payment recorded for the order
func (ps *PaymentService) GetLatestPayment(ctx context.Context, actor models.Actor, orderID uuid.UUID) (*models.Payment, error) {
	order, err := ps.orders.GetOrderByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	if !ps.engine.CanAccessOrder(actor, order) {
		return nil, models.ErrForbidden
	}

	payments, err := ps.repo.GetPaymentsByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if len(payments) == 0 {
		return nil, models.ErrDataNotFound
	}

	return &payments[0], nil
}

// HandleWebhook reconciles a signature-verified gateway event. Replays and
// events for unknown objects are acknowledged without effect; only transient
// infrastructure failures propagate, inviting gateway redelivery.
func (ps *PaymentService) HandleWebhook(ctx context.Context, event *models.GatewayEvent) error {
	switch event.Type {
	case models.GatewayEventPaymentSucceeded:
		return ps.applyPaymentEvent(ctx, event, models.PaymentStatusSucceeded)
	case models.GatewayEventPaymentFailed:
		return ps.applyPaymentEvent(ctx, event, models.PaymentStatusFailed)
	case models.GatewayEventRefundCompleted:
		return ps.applyRefundEvent(ctx, event, models.RefundStatusCompleted)
	case models.GatewayEventRefundFailed:
		return ps.applyRefundEvent(ctx, event, models.RefundStatusFailed)
	default:
		ps.logger.Info("ignoring gateway event of unknown type",
			zap.String("event_id", event.ID), zap.String("type", event.Type))
		return nil
	}
}

func (ps *PaymentService) applyPaymentEvent(ctx context.Context, event *models.GatewayEvent, toStatus string) error {
	payment, applied, err := ps.repo.SettleWithEvent(ctx, event.ID, event.Type, event.GatewayRef, toStatus)
	switch {
	case errors.Is(err, models.ErrEventReplayed):
		// duplicate delivery: no new effects, but make sure the order
		// advance was not lost the first time round
		ps.logger.Info("gateway event replayed", zap.String("event_id", event.ID))
		payment, err = ps.repo.GetPaymentByGatewayRef(ctx, event.GatewayRef)
		if err != nil {
			return nil
		}
		if payment.Status == models.PaymentStatusSucceeded {
			ps.advanceOrder(ctx, payment.OrderID)
		}
		return nil
	case errors.Is(err, models.ErrDataNotFound):
		// an event for an object we never created; acknowledge to avoid a
		// redelivery storm
		ps.logger.Warn("gateway event for unknown payment",
			zap.String("event_id", event.ID), zap.String("gateway_ref", event.GatewayRef))
		return nil
	case err != nil:
		return err
	}

	if applied && toStatus == models.PaymentStatusSucceeded {
		ps.advanceOrder(ctx, payment.OrderID)
	}
	// a FAILED payment leaves the order unchanged; cancellation is an
	// explicit decision, not a side effect

	return nil
}

func (ps *PaymentService) applyRefundEvent(ctx context.Context, event *models.GatewayEvent, toStatus string) error {
	_, _, err := ps.refunds.SettleRefundWithEvent(ctx, event.ID, event.Type, event.GatewayRef, toStatus)
	switch {
	case errors.Is(err, models.ErrEventReplayed):
		ps.logger.Info("refund event replayed", zap.String("event_id", event.ID))
		return nil
	case errors.Is(err, models.ErrDataNotFound):
		ps.logger.Warn("refund event for unknown refund",
			zap.String("event_id", event.ID), zap.String("refund_ref", event.GatewayRef))
		return nil
	}
	return err
}

func (ps *PaymentService) advanceOrder(ctx context.Context, orderID uuid.UUID) {
	if err := ps.orders.AdvanceOnPaymentSettled(ctx, orderID); err != nil {
		ps.logger.Error("advance order after settlement",
			zap.String("order_id", orderID.String()), zap.Error(err))
	}
}

// ReconcilePayments drains gateway references from the channel and settles
// any that reached a terminal state at the gateway without us seeing the
// webhook. Synthetic event ids keep repeated sweeps idempotent.
func (ps *PaymentService) ReconcilePayments(ctx context.Context, refCh <-chan string) {
	for {
		var errTooManyReq models.TooManyRequestsError
		select {
		case <-ctx.Done():
			ps.logger.Debug("payment reconciliation is done")
			return
		case ref, ok := <-refCh:
			if !ok {
				return
			}

			obj, err := ps.gw.GetPayment(ctx, ref)
			if err != nil {
				switch {
				case errors.As(err, &errTooManyReq):
					// back off but keep draining, the ticker keeps feeding us
					ps.logger.Debug("gateway throttled sweep", zap.Duration("retry-after", errTooManyReq.RetryAfter))
					time.Sleep(errTooManyReq.RetryAfter)
				case errors.Is(err, models.ErrDataNotFound):
					ps.logger.Warn("pending payment unknown to gateway", zap.String("gateway_ref", ref))
				default:
					ps.logger.Error("gateway sweep request", zap.Error(err))
				}
				continue
			}

			var toStatus string
			switch obj.Status {
			case gateway.ObjectStatusSucceeded:
				toStatus = models.PaymentStatusSucceeded
			case gateway.ObjectStatusFailed:
				toStatus = models.PaymentStatusFailed
			default:
				continue
			}

			eventID := fmt.Sprintf("sweep:%s:%s", ref, toStatus)
			eventType := models.GatewayEventPaymentSucceeded
			if toStatus == models.PaymentStatusFailed {
				eventType = models.GatewayEventPaymentFailed
			}

			event := models.GatewayEvent{
				ID:         eventID,
				Type:       eventType,
				GatewayRef: ref,
				Amount:     obj.Amount,
				Currency:   obj.Currency,
				ReceivedAt: time.Now(),
			}
			if err := ps.HandleWebhook(ctx, &event); err != nil {
				ps.logger.Error("apply swept settlement", zap.String("gateway_ref", ref), zap.Error(err))
			}
		}
	}
}

// GetStaleForReconcile writes gateway references of stale pending payments
// to the channel for the sweeper
func (ps *PaymentService) GetStaleForReconcile(ctx context.Context, refCh chan<- string) error {
	payments, err := ps.repo.GetStalePendingPayments(ctx, ps.staleAfter)
	if err != nil {
		return err
	}

	for _, payment := range payments {
		refCh <- payment.GatewayRef
	}

	return nil
}
