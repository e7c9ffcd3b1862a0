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
	insertOrderQuery = `
						INSERT INTO orders (id, customer_id, restaurant_id, tenant_id, total, status)
						VALUES ($1, $2, $3, $4, $5, $6)
						RETURNING id, customer_id, restaurant_id, tenant_id, total, status, created_at, updated_at
`
	insertOrderItemQuery = `
						INSERT INTO order_items (id, order_id, menu_item_id, quantity, unit_price)
						VALUES ($1, $2, $3, $4, $5)
`
	selectOrderByIDQuery = `
						SELECT id, customer_id, restaurant_id, tenant_id, total, status, created_at, updated_at FROM orders
						WHERE id = $1
`
	selectOrderItemsQuery = `
						SELECT id, order_id, menu_item_id, quantity, unit_price FROM order_items
						WHERE order_id = $1
`
	selectOrdersBaseQuery = `
						SELECT id, customer_id, restaurant_id, tenant_id, total, status, created_at, updated_at FROM orders
`
	updateOrderStatusQuery = `
						UPDATE orders
						SET status = $1, updated_at = now()
						WHERE id = $2 AND status = $3
`
	cancelOrderQuery = `
						UPDATE orders
						SET status = $1, updated_at = now()
						WHERE id = $2 AND status = ANY($3)
`
)

// OrderRepository implements order persistence over postgres
type OrderRepository struct {
	db *postgres.DB
}

// NewOrderRepository creates new OrderRepository instance
func NewOrderRepository(db *postgres.DB) *OrderRepository {
	return &OrderRepository{db: db}
}

// CreateOrder inserts a new order with its line items in one transaction
func (or *OrderRepository) CreateOrder(ctx context.Context, order *models.Order) (*models.Order, error) {
	tx, err := or.db.Begin(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback(ctx)

	err = tx.QueryRow(ctx, insertOrderQuery,
		order.ID, order.CustomerID, order.RestaurantID, order.TenantID, order.Total, order.Status).
		Scan(&order.ID, &order.CustomerID, &order.RestaurantID, &order.TenantID, &order.Total, &order.Status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errCode := or.db.ErrorCode(err); errCode == postgres.ErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		if _, err := tx.Exec(ctx, insertOrderItemQuery,
			item.ID, item.OrderID, item.MenuItemID, item.Quantity, item.UnitPrice); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, err
	}

	return order, nil
}

// GetOrderByID returns an order with its line items
func (or *OrderRepository) GetOrderByID(ctx context.Context, id uuid.UUID) (*models.Order, error) {
	order := models.Order{}
	err := or.db.QueryRow(ctx, selectOrderByIDQuery, id).
		Scan(&order.ID, &order.CustomerID, &order.RestaurantID, &order.TenantID, &order.Total, &order.Status, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	rows, err := or.db.Query(ctx, selectOrderItemsQuery, id)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	for rows.Next() {
		item := models.OrderItem{}
		err = rows.Scan(&item.ID, &item.OrderID, &item.MenuItemID, &item.Quantity, &item.UnitPrice)
		if err != nil {
			continue
		}
		order.Items = append(order.Items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return &order, nil
}

// ListOrders returns orders matching the narrowed filter, newest first
func (or *OrderRepository) ListOrders(ctx context.Context, filter models.OrderFilter) ([]models.Order, error) {
	var conds []string
	var args []interface{}

	addCond := func(cond string, arg interface{}) {
		args = append(args, arg)
		conds = append(conds, fmt.Sprintf(cond, len(args)))
	}

	if filter.CustomerID != nil {
		addCond("customer_id = $%d", *filter.CustomerID)
	}
	if filter.RestaurantID != nil {
		addCond("restaurant_id = $%d", *filter.RestaurantID)
	}
	if len(filter.RestaurantIDs) > 0 {
		addCond("restaurant_id = ANY($%d)", uuidStrings(filter.RestaurantIDs))
	}
	if filter.Status != nil {
		addCond("status = $%d", *filter.Status)
	}

	query := selectOrdersBaseQuery
	if len(conds) > 0 {
		query += " WHERE " + strings.Join(conds, " AND ")
	}
	query += " ORDER BY created_at DESC"

	rows, err := or.db.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}

	for rows.Next() {
		order := models.Order{}
		err = rows.Scan(&order.ID, &order.CustomerID, &order.RestaurantID, &order.TenantID, &order.Total, &order.Status, &order.CreatedAt, &order.UpdatedAt)
		if err != nil {
			continue
		}
		orders = append(orders, order)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return orders, nil
}

// UpdateOrderStatus moves the order from an expected status to a new one.
// A lost race or an already-moved order surfaces as a conflict.
func (or *OrderRepository) UpdateOrderStatus(ctx context.Context, id uuid.UUID, from, to string) error {
	cmd, err := or.db.Exec(ctx, updateOrderStatusQuery, to, id, from)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrConflictData
	}

	return nil
}

// CancelOrder moves the order to CANCELLED only while it is still in one of
// the eligible statuses
func (or *OrderRepository) CancelOrder(ctx context.Context, id uuid.UUID, eligible []string) error {
	cmd, err := or.db.Exec(ctx, cancelOrderQuery, models.OrderStatusCancelled, id, eligible)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrConflictData
	}

	return nil
}

func uuidStrings(ids []uuid.UUID) []string {
	out := make([]string, 0, len(ids))
	for _, id := range ids {
		out = append(out, id.String())
	}
	return out
}
