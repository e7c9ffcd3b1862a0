package repository

import (
	"context"
	"errors"

	"github.com/feastly/feastly/internal/models"
	"github.com/feastly/feastly/internal/repository/postgres"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

const (
	insertDriverQuery = `
						INSERT INTO drivers (id, tenant_id, name, availability)
						VALUES ($1, $2, $3, $4)
						RETURNING id, tenant_id, name, availability, created_at, updated_at
`
	selectDriverByIDQuery = `
						SELECT id, tenant_id, name, availability, created_at, updated_at FROM drivers
						WHERE id = $1
`
	selectDriversByTenantQuery = `
						SELECT id, tenant_id, name, availability, created_at, updated_at FROM drivers
						WHERE tenant_id = $1
						ORDER BY created_at DESC
`
	updateDriverQuery = `
						UPDATE drivers
						SET name = $1, updated_at = now()
						WHERE id = $2
`
	setAvailabilityQuery = `
						UPDATE drivers
						SET availability = $1, updated_at = now()
						WHERE id = $2 AND availability = $3
`
)

// DriverRepository implements driver persistence over postgres
type DriverRepository struct {
	db *postgres.DB
}

// NewDriverRepository creates new DriverRepository instance
func NewDriverRepository(db *postgres.DB) *DriverRepository {
	return &DriverRepository{db: db}
}

// CreateDriver inserts a new driver
func (dr *DriverRepository) CreateDriver(ctx context.Context, driver *models.Driver) (*models.Driver, error) {
	err := dr.db.QueryRow(ctx, insertDriverQuery, driver.ID, driver.TenantID, driver.Name, driver.Availability).
		Scan(&driver.ID, &driver.TenantID, &driver.Name, &driver.Availability, &driver.CreatedAt, &driver.UpdatedAt)
	if err != nil {
		if errCode := dr.db.ErrorCode(err); errCode == postgres.ErrUniqueViolationCode {
			return nil, models.ErrConflictData
		}
		return nil, err
	}

	return driver, nil
}

// GetDriverByID returns driver by id
func (dr *DriverRepository) GetDriverByID(ctx context.Context, id uuid.UUID) (*models.Driver, error) {
	driver := models.Driver{}
	err := dr.db.QueryRow(ctx, selectDriverByIDQuery, id).
		Scan(&driver.ID, &driver.TenantID, &driver.Name, &driver.Availability, &driver.CreatedAt, &driver.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, models.ErrDataNotFound
		}
		return nil, err
	}

	return &driver, nil
}

// ListDrivers returns drivers for a tenant
func (dr *DriverRepository) ListDrivers(ctx context.Context, tenantID uuid.UUID) ([]models.Driver, error) {
	rows, err := dr.db.Query(ctx, selectDriversByTenantQuery, tenantID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	drivers := []models.Driver{}

	for rows.Next() {
		driver := models.Driver{}
		err = rows.Scan(&driver.ID, &driver.TenantID, &driver.Name, &driver.Availability, &driver.CreatedAt, &driver.UpdatedAt)
		if err != nil {
			continue
		}
		drivers = append(drivers, driver)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return drivers, nil
}

// UpdateDriver updates mutable driver fields other than availability
func (dr *DriverRepository) UpdateDriver(ctx context.Context, driver *models.Driver) error {
	cmd, err := dr.db.Exec(ctx, updateDriverQuery, driver.Name, driver.ID)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrDataNotFound
	}

	return nil
}

// SetAvailability flips driver availability guarded by the expected current
// value
func (dr *DriverRepository) SetAvailability(ctx context.Context, id uuid.UUID, from, to string) error {
	cmd, err := dr.db.Exec(ctx, setAvailabilityQuery, to, id, from)
	if err != nil {
		return err
	}

	if cmd.RowsAffected() == 0 {
		return models.ErrConflictData
	}

	return nil
}
