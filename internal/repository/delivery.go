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
	insertDeliveryQuery = `
						INSERT INTO deliveries (id, order_id, status)
						VALUES ($1, $2, $3)
						RETURNING id, order_id, driver_id, status, created_at, updated_at
`
	selectDeliveryByIDQuery = `
						SELECT id, order_id, driver_id, status, created_at, updated_at FROM deliveries
						WHERE id = $1
`
	selectDeliveryByOrderQuery = `
						SELECT id, order_id, driver_id, status, created_at, updated_at FROM deliveries
						WHERE order_id = $1
`
	selectDeliveriesBaseQuery = `
						SELECT d.id, d.order_id, d.driver_id, d.status, d.created_at, d.updated_at FROM deliveries d
						JOIN orders o ON o.id = d.order_id
`
	claimDriverQuery = `
						UPDATE drivers
						SET availability = $1, updated_at = now()
						WHERE id = $2 AND availability = $3
`
	assignDeliveryQuery = `
						UPDATE deliveries
						SET driver_id = $1, status = $2, updated_at = now()
						WHERE id = $3 AND status = $4 AND driver_id IS NULL
`
	updateDeliveryStatusQuery = `
						UPDATE deliveries
						SET status = $1, updated_at = now()
						WHERE id = $2 AND status = $3
`
)

// DeliveryRepository implements delivery persistence over postgres
type DeliveryRepository struct {
	db *postgres.DB
}

// NewDeliveryRepository creates new DeliveryRepository instance
func NewDeliveryRepository(db *postgres.DB) *DeliveryRepository {
	return &DeliveryRepository{db: db}
}

// CreateDelivery inserts a new unassigned delivery for an order
func (dr *DeliveryRepository) CreateDelivery(ctx context.Context, delivery *models.Delivery) (*models.Delivery, error) {
	err := dr.db.QueryRow(ctx, insertDeliveryQuery, delivery.ID, delivery.OrderID, delivery.Status).
		Scan(&delivery.ID, &delivery.OrderID, &delivery.DriverID, &delivery.Status, &delivery.CreatedAt, &delivery.UpdatedAt)
	if err != nil {
		if errCode := dr.db.ErrorCode(err); errCode == postgres.ErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return delivery, nil
}

// GetDeliveryByID returns delivery by id
func (dr *DeliveryRepository) GetDeliveryByID(ctx context.Context, id uuid.UUID) (*models.Delivery, error) {
	delivery := models.Delivery{}
	err := dr.db.QueryRow(ctx, selectDeliveryByIDQuery, id).
		Scan(&delivery.ID, &delivery.OrderID, &delivery.DriverID, &delivery.Status, &delivery.CreatedAt, &delivery.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &delivery, nil
}

// GetDeliveryByOrderID returns the delivery created for an order
func (dr *DeliveryRepository) GetDeliveryByOrderID(ctx context.Context, orderID uuid.UUID) (*models.Delivery, error) {
	delivery := models.Delivery{}
	err := dr.db.QueryRow(ctx, selectDeliveryByOrderQuery, orderID).
		Scan(&delivery.ID, &delivery.OrderID, &delivery.DriverID, &delivery.Status, &delivery.CreatedAt, &delivery.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &delivery, nil
}

// ListDeliveries returns deliveries matching the narrowed filter. Ownership
// constraints reach through the parent order.
func (dr *DeliveryRepository) ListDeliveries(ctx context.Context, filter models.DeliveryFilter) ([]models.Delivery, error) {
	var conds []string
	var args []interface{}

	addCond := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.OrderID != nil {
		addCond("d.order_id = $%d", *filter.OrderID)
	}
	if filter.DriverID != nil {
		addCond("d.driver_id = $%d", *filter.DriverID)
	}
	if filter.Status != nil {
		addCond("d.status = $%d", *filter.Status)
	}
	if filter.CustomerID != nil {
		addCond("o.customer_id = $%d", *filter.CustomerID)
	}
	if len(filter.RestaurantIDs) > 0 {
		addCond("o.restaurant_id = ANY($%d)", uuidStrings(filter.RestaurantIDs))
	}

	query := selectDeliveriesBaseQuery
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY d.created_at DESC"

	rows, err := dr.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	deliveries := []models.Delivery{}

	for rows.Next() {
		delivery := models.Delivery{}
		err = rows.Scan(&delivery.ID, &delivery.OrderID, &delivery.DriverID, &delivery.Status, &delivery.CreatedAt, &delivery.UpdatedAt)
		if err != nil {
			continue
		}
		deliveries = append(deliveries, delivery)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return deliveries, nil
}

// AssignDriver claims the driver and assigns the delivery in one
// transaction. Both writes are guarded by current state, so of two
// concurrent assignments exactly one commits and the other conflicts.
func (dr *DeliveryRepository) AssignDriver(ctx context.Context, deliveryID, driverID uuid.UUID) error {
	tx, err := dr.db.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	cmd, err := tx.Exec(ctx, claimDriverQuery, models.DriverBusy, driverID, models.DriverAvailable)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return models.ErrDriverUnavailable
	}

	cmd, err = tx.Exec(ctx, assignDeliveryQuery, driverID, models.DeliveryStatusAssigned, deliveryID, models.DeliveryStatusUnassigned)
	if err != nil {
		return err
	}
	if cmd.RowsAffected() == 0 {
		return models.ErrConflictData
	}

	return tx.Commit(ctx)
}

// UpdateDeliveryStatus moves the delivery from an expected status to a new one
func (dr *DeliveryRepository) UpdateDeliveryStatus(ctx context.Context, id uuid.UUID, from, to string) error {
	cmd, err := dr.db.Exec(ctx, updateDeliveryStatusQuery, to, id, from)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrConflictData
	}

	return nil
}
