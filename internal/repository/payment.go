package repository

import (
	"context"
	"errors"
	"time"

	"github.com/feastly/feastly/internal/models"
	"github.com/feastly/feastly/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertPaymentQuery = `
						INSERT INTO payments (id, order_id, amount, currency, status, kind, gateway_ref)
						VALUES ($1, $2, $3, $4, $5, $6, $7)
						RETURNING id, order_id, amount, currency, status, kind, gateway_ref, idempotency_key, created_at, updated_at
`
	selectPaymentColumns = `id, order_id, amount, currency, status, kind, gateway_ref, idempotency_key, created_at, updated_at`

	selectPaymentByRefQuery = `
						SELECT ` + selectPaymentColumns + ` FROM payments
						WHERE gateway_ref = $1
`
	selectPaymentByRefForUpdateQuery = selectPaymentByRefQuery + ` FOR UPDATE`

	selectPaymentsByOrderQuery = `
						SELECT ` + selectPaymentColumns + ` FROM payments
						WHERE order_id = $1
						ORDER BY created_at DESC
`
	selectStalePendingQuery = `
						SELECT ` + selectPaymentColumns + ` FROM payments
						WHERE status = 'PENDING' AND created_at < $1
`
	insertEventQuery = `
						INSERT INTO gateway_events (id, event_type)
						VALUES ($1, $2)
						ON CONFLICT (id) DO NOTHING
`
	settlePaymentQuery = `
						UPDATE payments
						SET status = $1, idempotency_key = $2, updated_at = now()
						WHERE id = $3 AND status = $4
`
)

// PaymentRepository implements payment persistence over postgres
type PaymentRepository struct {
	db *postgres.DB
}

// NewPaymentRepository creates new PaymentRepository instance
func NewPaymentRepository(db *postgres.DB) *PaymentRepository {
	return &PaymentRepository{db: db}
}

// CreatePayment inserts a new payment row. The partial unique index on
// pending payments turns a second in-flight payment into a conflict.
func (pr *PaymentRepository) CreatePayment(ctx context.Context, payment *models.Payment) (*models.Payment, error) {
	err := pr.db.QueryRow(ctx, insertPaymentQuery,
		payment.ID, payment.OrderID, payment.Amount, payment.Currency, payment.Status, payment.Kind, payment.GatewayRef).
		Scan(&payment.ID, &payment.OrderID, &payment.Amount, &payment.Currency, &payment.Status, &payment.Kind,
			&payment.GatewayRef, &payment.IdempotencyKey, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		if errCode := pr.db.ErrorCode(err); errCode == postgres.ErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return payment, nil
}

// GetPaymentByGatewayRef returns the payment recorded for a gateway object
func (pr *PaymentRepository) GetPaymentByGatewayRef(ctx context.Context, ref string) (*models.Payment, error) {
	payment := models.Payment{}
	err := pr.db.QueryRow(ctx, selectPaymentByRefQuery, ref).
		Scan(&payment.ID, &payment.OrderID, &payment.Amount, &payment.Currency, &payment.Status, &payment.Kind,
			&payment.GatewayRef, &payment.IdempotencyKey, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &payment, nil
}

// GetPaymentsByOrderID returns all payments recorded for an order
func (pr *PaymentRepository) GetPaymentsByOrderID(ctx context.Context, orderID uuid.UUID) ([]models.Payment, error) {
	rows, err := pr.db.Query(ctx, selectPaymentsByOrderQuery, orderID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []models.Payment{}

	for rows.Next() {
		payment := models.Payment{}
		err = rows.Scan(&payment.ID, &payment.OrderID, &payment.Amount, &payment.Currency, &payment.Status, &payment.Kind,
			&payment.GatewayRef, &payment.IdempotencyKey, &payment.CreatedAt, &payment.UpdatedAt)
		if err != nil {
			continue
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

// GetStalePendingPayments returns pending payments older than the cutoff,
// candidates for gateway reconciliation by the sweeper
func (pr *PaymentRepository) GetStalePendingPayments(ctx context.Context, olderThan time.Duration) ([]models.Payment, error) {
	rows, err := pr.db.Query(ctx, selectStalePendingQuery, time.Now().Add(-olderThan))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	payments := []models.Payment{}

	for rows.Next() {
		payment := models.Payment{}
		err = rows.Scan(&payment.ID, &payment.OrderID, &payment.Amount, &payment.Currency, &payment.Status, &payment.Kind,
			&payment.GatewayRef, &payment.IdempotencyKey, &payment.CreatedAt, &payment.UpdatedAt)
		if err != nil {
			continue
		}
		payments = append(payments, payment)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return payments, nil
}

// SettleWithEvent applies a gateway event to its payment in one transaction:
// the event id is recorded for idempotency, then the payment moves
// PENDING -> toStatus guarded by its current status.
//
// Returns ErrEventReplayed when the event id was already processed,
// ErrDataNotFound when no payment matches the gateway reference. A payment
// already in a terminal status is returned unchanged with applied=false;
// gateways may redeliver terminal events under fresh ids.
func (pr *PaymentRepository) SettleWithEvent(ctx context.Context, eventID, eventType, gatewayRef, toStatus string) (*models.Payment, bool, error) {
	tx, err := pr.db.Begin(ctx)
	if err != nil {
		return nil, false, err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, insertEventQuery, eventID, eventType)
	if err != nil {
		return nil, false, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, false, models.ErrEventReplayed
	}

	payment := models.Payment{}
	err = tx.QueryRow(ctx, selectPaymentByRefForUpdateQuery, gatewayRef).
		Scan(&payment.ID, &payment.OrderID, &payment.Amount, &payment.Currency, &payment.Status, &payment.Kind,
			&payment.GatewayRef, &payment.IdempotencyKey, &payment.CreatedAt, &payment.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			// record the event anyway so a redelivery short-circuits
			if err := tx.Commit(ctx); err != nil {
				return nil, false, err
			}
			return nil, false, models.ErrDataNotFound
		}
		return nil, false, err
	}

	if models.PaymentStatusIsTerminal(payment.Status) {
		if err := tx.Commit(ctx); err != nil {
			return nil, false, err
		}
		return &payment, false, nil
	}

	cmd, err = tx.Exec(ctx, settlePaymentQuery, toStatus, eventID, payment.ID, models.PaymentStatusPending)
	if err != nil {
		return nil, false, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, false, models.ErrConflictData
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}

	payment.Status = toStatus
	payment.IdempotencyKey = eventID
	return &payment, true, nil
}
