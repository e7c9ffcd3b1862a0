package repository

import (
	"context"

	"github.com/feastly/feastly/internal/models"
	"github.com/feastly/feastly/internal/repository/postgres"
	"github.com/google/uuid"
)

const (
	selectMenuItemsByIDsQuery = `
						SELECT id, restaurant_id, name, price, available FROM menu_items
						WHERE id = ANY($1)
`
)

// MenuRepository reads the menu catalog orders are priced against
type MenuRepository struct {
	db *postgres.DB
}

// NewMenuRepository creates new MenuRepository instance
func NewMenuRepository(db *postgres.DB) *MenuRepository {
	return &MenuRepository{db: db}
}

// GetMenuItems returns the catalog entries for the given ids. Missing ids are
// simply absent from the result; the caller decides whether that is an error.
func (mr *MenuRepository) GetMenuItems(ctx context.Context, ids []uuid.UUID) ([]models.MenuItem, error) {
	rows, err := mr.db.Query(ctx, selectMenuItemsByIDsQuery, uuidStrings(ids))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	items := []models.MenuItem{}

	for rows.Next() {
		item := models.MenuItem{}
		err = rows.Scan(&item.ID, &item.RestaurantID, &item.Name, &item.Price, &item.Available)
		if err != nil {
			continue
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}
