package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/feastly/feastly/internal/models"
	"github.com/feastly/feastly/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertCancellationQuery = `
						INSERT INTO order_cancellations (id, order_id, requested_by, reason, status, refund_status)
						VALUES ($1, $2, $3, $4, $5, $6)
						RETURNING id, order_id, requested_by, reason, status, refund_status, refund_ref, created_at, updated_at
`
	selectCancellationColumns = `c.id, c.order_id, c.requested_by, c.reason, c.status, c.refund_status, c.refund_ref, c.created_at, c.updated_at`

	selectCancellationByIDQuery = `
						SELECT ` + selectCancellationColumns + ` FROM order_cancellations c
						WHERE c.id = $1
`
	selectCancellationByOrderQuery = `
						SELECT ` + selectCancellationColumns + ` FROM order_cancellations c
						WHERE c.order_id = $1
`
	selectCancellationByRefundRefQuery = `
						SELECT ` + selectCancellationColumns + ` FROM order_cancellations c
						WHERE c.refund_ref = $1
`
	selectCancellationsBaseQuery = `
						SELECT ` + selectCancellationColumns + ` FROM order_cancellations c
						JOIN orders o ON o.id = c.order_id
`
	markRefundRequestedQuery = `
						UPDATE order_cancellations
						SET refund_status = $1, refund_ref = $2, updated_at = now()
						WHERE id = $3 AND refund_status = $4
`
	updateRefundStatusQuery = `
						UPDATE order_cancellations
						SET refund_status = $1, updated_at = now()
						WHERE id = $2 AND refund_status = $3
`
)

// CancellationRepository implements cancellation persistence over postgres
type CancellationRepository struct {
	db *postgres.DB
}

// NewCancellationRepository creates new CancellationRepository instance
func NewCancellationRepository(db *postgres.DB) *CancellationRepository {
	return &CancellationRepository{db: db}
}

// CreateCancellation writes the cancellation row and moves the order to
// CANCELLED in one transaction. The order write is guarded by the eligible
// statuses, so an order that progressed past PREPARING between the
// eligibility check and this call conflicts instead of being cancelled.
// The unique order_id constraint rejects a second cancellation attempt.
func (cr *CancellationRepository) CreateCancellation(ctx context.Context, c *models.OrderCancellation, eligible []string) (*models.OrderCancellation, error) {
	tx, err := cr.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, cancelOrderQuery, models.OrderStatusCancelled, c.OrderID, eligible)
	if err != nil {
		return nil, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, models.ErrOrderNotCancellable
	}

	err = tx.QueryRow(ctx, insertCancellationQuery,
		c.ID, c.OrderID, c.RequestedBy, c.Reason, c.Status, c.RefundStatus).
		Scan(&c.ID, &c.OrderID, &c.RequestedBy, &c.Reason, &c.Status, &c.RefundStatus, &c.RefundRef, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errCode := cr.db.ErrorCode(err); errCode == postgres.ErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return c, nil
}

// GetCancellationByID returns cancellation by id
func (cr *CancellationRepository) GetCancellationByID(ctx context.Context, id uuid.UUID) (*models.OrderCancellation, error) {
	return cr.getOne(ctx, selectCancellationByIDQuery, id)
}

// GetCancellationByOrderID returns the cancellation recorded for an order
func (cr *CancellationRepository) GetCancellationByOrderID(ctx context.Context, orderID uuid.UUID) (*models.OrderCancellation, error) {
	return cr.getOne(ctx, selectCancellationByOrderQuery, orderID)
}

// GetCancellationByRefundRef returns the cancellation owning a gateway refund
func (cr *CancellationRepository) GetCancellationByRefundRef(ctx context.Context, refundRef string) (*models.OrderCancellation, error) {
	return cr.getOne(ctx, selectCancellationByRefundRefQuery, refundRef)
}

func (cr *CancellationRepository) getOne(ctx context.Context, query string, arg interface{}) (*models.OrderCancellation, error) {
	c := models.OrderCancellation{}
	err := cr.db.QueryRow(ctx, query, arg).
		Scan(&c.ID, &c.OrderID, &c.RequestedBy, &c.Reason, &c.Status, &c.RefundStatus, &c.RefundRef, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &c, nil
}

// ListCancellations returns cancellations matching the narrowed filter
func (cr *CancellationRepository) ListCancellations(ctx context.Context, filter models.CancellationFilter) ([]models.OrderCancellation, error) {
	var conds []string
	var args []interface{}

	addCond := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.OrderID != nil {
		addCond("c.order_id = $%d", *filter.OrderID)
	}
	if filter.RefundStatus != nil {
		addCond("c.refund_status = $%d", *filter.RefundStatus)
	}
	if filter.CustomerID != nil {
		addCond("o.customer_id = $%d", *filter.CustomerID)
	}
	if len(filter.RestaurantIDs) > 0 {
		addCond("o.restaurant_id = ANY($%d)", uuidStrings(filter.RestaurantIDs))
	}

	query := selectCancellationsBaseQuery
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY c.created_at DESC"

	rows, err := cr.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cancellations := []models.OrderCancellation{}

	for rows.Next() {
		c := models.OrderCancellation{}
		err = rows.Scan(&c.ID, &c.OrderID, &c.RequestedBy, &c.Reason, &c.Status, &c.RefundStatus, &c.RefundRef, &c.CreatedAt, &c.UpdatedAt)
		if err != nil {
			continue
		}
		cancellations = append(cancellations, c)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return cancellations, nil
}

// MarkRefundRequested records the gateway refund reference, guarded by the
// current refund status
func (cr *CancellationRepository) MarkRefundRequested(ctx context.Context, id uuid.UUID, refundRef string) error {
	cmd, err := cr.db.Exec(ctx, markRefundRequestedQuery, models.RefundStatusRequested, refundRef, id, models.RefundStatusNone)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrConflictData
	}

	return nil
}

// UpdateRefundStatus moves the refund from an expected status to a new one
func (cr *CancellationRepository) UpdateRefundStatus(ctx context.Context, id uuid.UUID, from, to string) error {
	cmd, err := cr.db.Exec(ctx, updateRefundStatusQuery, to, id, from)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrConflictData
	}

	return nil
}

// SettleRefundWithEvent applies a gateway refund event in one transaction:
// the event id is recorded for idempotency, then the refund status moves
// REQUESTED -> toStatus. A refund already settled is a no-op.
func (cr *CancellationRepository) SettleRefundWithEvent(ctx context.Context, eventID, eventType, refundRef, toStatus string) (*models.OrderCancellation, bool, error) {
	tx, err := cr.db.Begin(ctx)
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

	c := models.OrderCancellation{}
	err = tx.QueryRow(ctx, selectCancellationByRefundRefQuery+` FOR UPDATE OF c`, refundRef).
		Scan(&c.ID, &c.OrderID, &c.RequestedBy, &c.Reason, &c.Status, &c.RefundStatus, &c.RefundRef, &c.CreatedAt, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			if err := tx.Commit(ctx); err != nil {
				return nil, false, err
			}
			return nil, false, models.ErrDataNotFound
		}
		return nil, false, err
	}

	if c.RefundStatus != models.RefundStatusRequested {
		if err := tx.Commit(ctx); err != nil {
			return nil, false, err
		}
		return &c, false, nil
	}

	cmd, err = tx.Exec(ctx, updateRefundStatusQuery, toStatus, c.ID, models.RefundStatusRequested)
	if err != nil {
		return nil, false, err
	}
	if cmd.RowsAffected() == 0 {
		return nil, false, models.ErrConflictData
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, false, err
	}

	c.RefundStatus = toStatus
	return &c, true, nil
}
