package location

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

type WarehouseLookup interface {
	Lookup(ctx context.Context, id string) (model.Warehouse, error)
}

// Capacity describes how much of a warehouse is allocated to locations.
type Capacity struct {
	Total     float64 `json:"total"`
	Used      float64 `json:"used"`
	Remaining float64 `json:"remaining"`
	// Unlimited is set when the warehouse has no capacity configured.
	Unlimited bool `json:"unlimited"`
}

func Schema(warehouses WarehouseLookup) listctl.Schema[model.WarehouseLocation] {
	return listctl.Schema[model.WarehouseLocation]{
		Resource: model.ResourceWarehouseLocations,
		ID:       func(l model.WarehouseLocation) string { return l.ID },
		Normalize: func(l model.WarehouseLocation) model.WarehouseLocation {
			l.LocationID = listctl.NormalizeCode(l.LocationID)
			l.LocationName = strings.TrimSpace(l.LocationName)
			if l.Status == "" {
				l.Status = model.StatusActive
			}
			return l
		},
		Validate: func(l model.WarehouseLocation) error {
			if err := listctl.Required(
				"warehouse", l.WarehouseID,
				"location id", l.LocationID,
				"location name", l.LocationName,
			); err != nil {
				return err
			}
			if l.Capacity < 0 {
				return listctl.Invalid("capacity must be a positive number")
			}
			if !l.Status.Valid() {
				return listctl.Invalid("unknown status %q", l.Status)
			}
			return nil
		},
		Keys: []listctl.Key[model.WarehouseLocation]{
			{
				Name:  "location id",
				Value: func(l model.WarehouseLocation) string { return l.LocationID },
				Scope: func(l model.WarehouseLocation) string { return l.WarehouseID },
			},
		},
		Searchable: func(l model.WarehouseLocation) []string {
			return []string{l.LocationID, l.LocationName, l.LocationType}
		},
		Order: listctl.NewestFirst(func(l model.WarehouseLocation) time.Time { return l.CreatedAt }),
		Fields: func(l model.WarehouseLocation) model.Fields {
			return model.Fields{
				"warehouseId":  l.WarehouseID,
				"locationId":   l.LocationID,
				"locationName": l.LocationName,
				"locationType": l.LocationType,
				"capacity":     l.Capacity,
				"remarks":      l.Remarks,
				"status":       l.Status,
			}
		},
		Stamp: func(l model.WarehouseLocation, now time.Time) model.WarehouseLocation {
			l.CreatedAt, l.UpdatedAt = now, now
			return l
		},
		Check: func(ctx context.Context, items []model.WarehouseLocation, l model.WarehouseLocation, editingID string) error {
			wh, err := warehouses.Lookup(ctx, l.WarehouseID)
			if err != nil {
				return err
			}
			if l.Capacity == 0 {
				return nil
			}

			c := capacity(wh, items, editingID)
			if !c.Unlimited && l.Capacity > c.Remaining {
				return fmt.Errorf("%w: max allowed %s", model.ErrCapacityExceeded, formatCapacity(c.Remaining))
			}
			return nil
		},
	}
}

type service struct {
	ctl        *listctl.Controller[model.WarehouseLocation]
	warehouses WarehouseLookup
}

func NewLocationService(ctl *listctl.Controller[model.WarehouseLocation], warehouses WarehouseLookup) *service {
	return &service{ctl: ctl, warehouses: warehouses}
}

func (s *service) List(ctx context.Context, query string, start int) (model.Page[model.WarehouseLocation], error) {
	return s.ctl.Browse(ctx, query, start)
}

func (s *service) Get(ctx context.Context, id string) (model.WarehouseLocation, error) {
	return s.ctl.Lookup(ctx, id)
}

func (s *service) Items(ctx context.Context) ([]model.WarehouseLocation, error) {
	return s.ctl.Items(ctx)
}

// ByWarehouse lists the locations of one warehouse.
func (s *service) ByWarehouse(ctx context.Context, warehouseID string) ([]model.WarehouseLocation, error) {
	items, err := s.ctl.Items(ctx)
	if err != nil {
		return nil, err
	}

	out := make([]model.WarehouseLocation, 0)
	for _, l := range items {
		if l.WarehouseID == warehouseID {
			out = append(out, l)
		}
	}
	return out, nil
}

// RemainingCapacity reports the warehouse capacity left for locations,
// ignoring excludeID so an edited location does not count against itself.
func (s *service) RemainingCapacity(ctx context.Context, warehouseID, excludeID string) (Capacity, error) {
	const op = "location.service.RemainingCapacity"

	wh, err := s.warehouses.Lookup(ctx, warehouseID)
	if err != nil {
		return Capacity{}, fmt.Errorf("%s: %w", op, err)
	}

	items, err := s.ctl.Items(ctx)
	if err != nil {
		return Capacity{}, fmt.Errorf("%s: %w", op, err)
	}

	return capacity(wh, items, excludeID), nil
}

func (s *service) Create(ctx context.Context, auth model.AuthorizationContext, l model.WarehouseLocation) (string, error) {
	const op = "location.service.Create"
	log := logger.With(
		logger.String("warehouse_id", l.WarehouseID),
		logger.String("location_id", l.LocationID),
	)

	l.ID = ""
	id, err := s.ctl.Create(ctx, auth, l)
	if err != nil {
		if errors.Is(err, model.ErrCapacityExceeded) {
			log.Warn(ctx, "location capacity rejected", logger.Float64("capacity", l.Capacity))
		} else {
			log.Error(ctx, "create location", logger.ErrorF(err))
		}
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *service) Update(ctx context.Context, auth model.AuthorizationContext, id string, l model.WarehouseLocation) error {
	const op = "location.service.Update"

	if err := s.ctl.Update(ctx, auth, id, l); err != nil {
		logger.Error(ctx, "update location", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, auth model.AuthorizationContext, id string) error {
	const op = "location.service.Delete"

	if err := s.ctl.Delete(ctx, auth, id); err != nil {
		logger.Error(ctx, "delete location", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func capacity(wh model.Warehouse, items []model.WarehouseLocation, excludeID string) Capacity {
	var used float64
	for _, l := range items {
		if l.WarehouseID == wh.ID && l.ID != excludeID {
			used += l.Capacity
		}
	}

	if wh.Capacity <= 0 {
		return Capacity{Used: used, Unlimited: true}
	}
	return Capacity{Total: wh.Capacity, Used: used, Remaining: wh.Capacity - used}
}

func formatCapacity(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}
