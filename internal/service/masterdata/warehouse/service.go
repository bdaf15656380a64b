package warehouse

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

const idPrefix = "WH-"

func Schema() listctl.Schema[model.Warehouse] {
	return listctl.Schema[model.Warehouse]{
		Resource: model.ResourceWarehouseMaster,
		ID:       func(w model.Warehouse) string { return w.ID },
		Normalize: func(w model.Warehouse) model.Warehouse {
			w.Code = listctl.NormalizeCode(w.Code)
			w.Name = strings.TrimSpace(w.Name)
			w.Location = strings.TrimSpace(w.Location)
			if w.Status == "" {
				w.Status = model.StatusActive
			}
			return w
		},
		Validate: func(w model.Warehouse) error {
			if err := listctl.Required("warehouse code", w.Code, "warehouse name", w.Name); err != nil {
				return err
			}
			if w.Capacity < 0 {
				return listctl.Invalid("capacity must not be negative")
			}
			if !w.Status.Valid() {
				return listctl.Invalid("unknown status %q", w.Status)
			}
			return nil
		},
		Keys: []listctl.Key[model.Warehouse]{
			{Name: "warehouse code", Value: func(w model.Warehouse) string { return w.Code }},
		},
		Searchable: func(w model.Warehouse) []string {
			return []string{w.WarehouseID, w.Code, w.Name, w.Location}
		},
		Order: listctl.NewestFirst(func(w model.Warehouse) time.Time { return w.CreatedAt }),
		Fields: func(w model.Warehouse) model.Fields {
			return model.Fields{
				"warehouseCode": w.Code,
				"warehouseName": w.Name,
				"location":      w.Location,
				"capacity":      w.Capacity,
				"remarks":       w.Remarks,
				"status":        w.Status,
			}
		},
		Stamp: func(w model.Warehouse, now time.Time) model.Warehouse {
			w.CreatedAt, w.UpdatedAt = now, now
			return w
		},
	}
}

type Stats struct {
	Total    int `json:"total"`
	Active   int `json:"active"`
	Inactive int `json:"inactive"`
}

type service struct {
	ctl *listctl.Controller[model.Warehouse]
}

func NewWarehouseService(ctl *listctl.Controller[model.Warehouse]) *service {
	return &service{ctl: ctl}
}

func (s *service) List(ctx context.Context, query string, start int) (model.Page[model.Warehouse], error) {
	return s.ctl.Browse(ctx, query, start)
}

func (s *service) Get(ctx context.Context, id string) (model.Warehouse, error) {
	return s.ctl.Lookup(ctx, id)
}

func (s *service) Items(ctx context.Context) ([]model.Warehouse, error) {
	return s.ctl.Items(ctx)
}

func (s *service) NextID(ctx context.Context) (string, error) {
	items, err := s.ctl.Items(ctx)
	if err != nil {
		return "", err
	}
	return nextID(items), nil
}

func (s *service) Stats(ctx context.Context) (Stats, error) {
	items, err := s.ctl.Items(ctx)
	if err != nil {
		return Stats{}, err
	}

	return Stats{
		Total:    len(items),
		Active:   lo.CountBy(items, func(w model.Warehouse) bool { return w.Status == model.StatusActive }),
		Inactive: lo.CountBy(items, func(w model.Warehouse) bool { return w.Status == model.StatusInactive }),
	}, nil
}

func (s *service) Create(ctx context.Context, auth model.AuthorizationContext, w model.Warehouse) (string, error) {
	const op = "warehouse.service.Create"
	log := logger.With(logger.String("warehouse_code", w.Code))

	items, err := s.ctl.Items(ctx)
	if err != nil {
		log.Error(ctx, "load warehouses", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	w.ID = ""
	w.WarehouseID = nextID(items)

	id, err := s.ctl.Create(ctx, auth, w)
	if err != nil {
		log.Error(ctx, "create warehouse", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *service) Update(ctx context.Context, auth model.AuthorizationContext, id string, w model.Warehouse) error {
	const op = "warehouse.service.Update"

	if err := s.ctl.Update(ctx, auth, id, w); err != nil {
		logger.Error(ctx, "update warehouse", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, auth model.AuthorizationContext, id string) error {
	const op = "warehouse.service.Delete"

	if err := s.ctl.Delete(ctx, auth, id); err != nil {
		logger.Error(ctx, "delete warehouse", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func nextID(items []model.Warehouse) string {
	ids := lo.Map(items, func(w model.Warehouse, _ int) string { return w.WarehouseID })
	return listctl.NextSequence(ids, idPrefix, 3)
}
