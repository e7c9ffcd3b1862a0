package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/feastly/feastly/internal/models"
	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
)

// DriverService is interface for driver management
type DriverService interface {
	CreateDriver(ctx context.Context, actor models.Actor, driver *models.Driver) (*models.Driver, error)
	GetDriver(ctx context.Context, actor models.Actor, id uuid.UUID) (*models.Driver, error)
	ListDrivers(ctx context.Context, actor models.Actor) ([]models.Driver, error)
	UpdateDriver(ctx context.Context, actor models.Actor, id uuid.UUID, name, availability string) (*models.Driver, error)
}

// DriverHandler represents HTTP handler for driver-related requests
type DriverHandler struct {
	svc      DriverService
	validate *validator.Validate
}

// NewDriverHandler creates new DriverHandler instance
func NewDriverHandler(svc DriverService) *DriverHandler {
	return &DriverHandler{
		svc:      svc,
		validate: validator.New(),
	}
}

type driverResponse struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Availability string `json:"availability"`
	CreatedAt    string `json:"created_at"`
}

func newDriverResponse(driver *models.Driver) driverResponse {
	return driverResponse{
		ID:           driver.ID.String(),
		Name:         driver.Name,
		Availability: driver.Availability,
		CreatedAt:    driver.CreatedAt.Format(time.RFC3339),
	}
}

type createDriverRequest struct {
	Name string `json:"name" validate:"required"`
}

// CreateDriver registers a new driver
func (dh *DriverHandler) CreateDriver() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		var req createDriverRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := dh.validate.Struct(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		driver := models.Driver{Name: req.Name}

		created, err := dh.svc.CreateDriver(r.Context(), actor, &driver)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusCreated, newDriverResponse(created))
	}
}

// GetDriver returns driver by id
func (dh *DriverHandler) GetDriver() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "bad driver id", http.StatusBadRequest)
			return
		}

		driver, err := dh.svc.GetDriver(r.Context(), actor, id)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newDriverResponse(driver))
	}
}

// ListDrivers returns the tenant's drivers
func (dh *DriverHandler) ListDrivers() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		drivers, err := dh.svc.ListDrivers(r.Context(), actor)
		if err != nil {
			respondError(w, err)
			return
		}

		resp := []driverResponse{}
		for i := range drivers {
			resp = append(resp, newDriverResponse(&drivers[i]))
		}

		writeJSON(w, http.StatusOK, resp)
	}
}

type updateDriverRequest struct {
	Name         string `json:"name" validate:"omitempty"`
	Availability string `json:"availability" validate:"omitempty,oneof=AVAILABLE BUSY"`
}

// UpdateDriver updates driver name or availability
func (dh *DriverHandler) UpdateDriver() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		actor, ok := actorFromContext(r.Context())
		if !ok {
			http.Error(w, "unauthorized", http.StatusUnauthorized)
			return
		}

		id, err := uuid.Parse(chi.URLParam(r, "id"))
		if err != nil {
			http.Error(w, "bad driver id", http.StatusBadRequest)
			return
		}

		var req updateDriverRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			http.Error(w, "bad request", http.StatusBadRequest)
			return
		}
		defer r.Body.Close()

		if err := dh.validate.Struct(&req); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}

		driver, err := dh.svc.UpdateDriver(r.Context(), actor, id, req.Name, req.Availability)
		if err != nil {
			respondError(w, err)
			return
		}

		writeJSON(w, http.StatusOK, newDriverResponse(driver))
	}
}
