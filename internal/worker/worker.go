package worker

import (
	"context"
	"time"

	"go.uber.org/zap"
)

// PaymentService feeds the sweeper with stale pending payments
type PaymentService interface {
	ReconcilePayments(ctx context.Context, refCh <-chan string)
	GetStaleForReconcile(ctx context.Context, refCh chan<- string) error
}

// PaymentProcessor periodically reconciles pending payments whose webhook
// never arrived against the gateway
type PaymentProcessor struct {
	svc    PaymentService
	every  time.Duration
	logger *zap.Logger
}

// NewPaymentProcessor creates new payment processor
func NewPaymentProcessor(svc PaymentService, every time.Duration, logger *zap.Logger) *PaymentProcessor {
	return &PaymentProcessor{
		svc:    svc,
		every:  every,
		logger: logger,
	}
}

// ProcessPayments runs the sweep loop until the context is cancelled
func (pp *PaymentProcessor) ProcessPayments(ctx context.Context) {
	refs := make(chan string, 10)

	go pp.svc.ReconcilePayments(ctx, refs)

	ticker := time.NewTicker(pp.every)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			pp.logger.Debug("payment processor is done")
			return
		case <-ticker.C:
			if err := pp.svc.GetStaleForReconcile(ctx, refs); err != nil {
				pp.logger.Error("error collecting stale payments", zap.Error(err))
			}
		}
	}
}
