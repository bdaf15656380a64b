package department

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

const idPrefix = "DEPT-"

func Schema() listctl.Schema[model.Department] {
	return listctl.Schema[model.Department]{
		Resource: model.ResourceDepartmentMaster,
		ID:       func(d model.Department) string { return d.ID },
		Normalize: func(d model.Department) model.Department {
			d.Code = listctl.NormalizeCode(d.Code)
			d.Name = strings.TrimSpace(d.Name)
			d.Description = strings.TrimSpace(d.Description)
			if d.Status == "" {
				d.Status = model.StatusActive
			}
			return d
		},
		Validate: func(d model.Department) error {
			if err := listctl.Required("department code", d.Code, "department name", d.Name); err != nil {
				return err
			}
			if !d.Status.Valid() {
				return listctl.Invalid("unknown status %q", d.Status)
			}
			return nil
		},
		Keys: []listctl.Key[model.Department]{
			{Name: "department code", Value: func(d model.Department) string { return d.Code }},
		},
		Searchable: func(d model.Department) []string {
			return []string{d.DepartmentID, d.Code, d.Name, d.Description}
		},
		Order: listctl.NewestFirst(func(d model.Department) time.Time { return d.CreatedAt }),
		Fields: func(d model.Department) model.Fields {
			return model.Fields{
				"departmentCode": d.Code,
				"departmentName": d.Name,
				"description":    d.Description,
				"status":         d.Status,
			}
		},
		Stamp: func(d model.Department, now time.Time) model.Department {
			d.CreatedAt, d.UpdatedAt = now, now
			return d
		},
	}
}

type service struct {
	ctl *listctl.Controller[model.Department]
}

func NewDepartmentService(ctl *listctl.Controller[model.Department]) *service {
	return &service{ctl: ctl}
}

func (s *service) List(ctx context.Context, query string, start int) (model.Page[model.Department], error) {
	return s.ctl.Browse(ctx, query, start)
}

func (s *service) Get(ctx context.Context, id string) (model.Department, error) {
	return s.ctl.Lookup(ctx, id)
}

func (s *service) Items(ctx context.Context) ([]model.Department, error) {
	return s.ctl.Items(ctx)
}

// NextID previews the id the next created department will get.
func (s *service) NextID(ctx context.Context) (string, error) {
	items, err := s.ctl.Items(ctx)
	if err != nil {
		return "", err
	}
	return nextID(items), nil
}

func (s *service) Create(ctx context.Context, auth model.AuthorizationContext, d model.Department) (string, error) {
	const op = "department.service.Create"
	log := logger.With(logger.String("department_code", d.Code))

	items, err := s.ctl.Items(ctx)
	if err != nil {
		log.Error(ctx, "load departments", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	d.ID = ""
	d.DepartmentID = nextID(items)

	id, err := s.ctl.Create(ctx, auth, d)
	if err != nil {
		log.Error(ctx, "create department", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	return id, nil
}

func (s *service) Update(ctx context.Context, auth model.AuthorizationContext, id string, d model.Department) error {
	const op = "department.service.Update"

	if err := s.ctl.Update(ctx, auth, id, d); err != nil {
		logger.Error(ctx, "update department", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, auth model.AuthorizationContext, id string) error {
	const op = "department.service.Delete"

	if err := s.ctl.Delete(ctx, auth, id); err != nil {
		logger.Error(ctx, "delete department", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func nextID(items []model.Department) string {
	ids := lo.Map(items, func(d model.Department, _ int) string { return d.DepartmentID })
	return listctl.NextSequence(ids, idPrefix, 3)
}
