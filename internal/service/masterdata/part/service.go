package part

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

type GroupLookup interface {
	Lookup(ctx context.Context, id string) (model.MaterialGroup, error)
}

func Schema(groups GroupLookup) listctl.Schema[model.Part] {
	return listctl.Schema[model.Part]{
		Resource: model.ResourcePartMaster,
		ID:       func(p model.Part) string { return p.ID },
		Normalize: func(p model.Part) model.Part {
			p.SAPNumber = strings.TrimSpace(p.SAPNumber)
			p.InternalRef = strings.TrimSpace(p.InternalRef)
			p.Name = strings.TrimSpace(p.Name)
			p.Category = strings.TrimSpace(p.Category)
			p.Unit = strings.TrimSpace(p.Unit)
			if p.Unit == "" {
				p.Unit = model.DefaultUnit
			}
			p.RackNumber = strings.TrimSpace(p.RackNumber)
			p.RackLevel = listctl.NormalizeCode(p.RackLevel)
			return p
		},
		Validate: func(p model.Part) error {
			if err := listctl.Required("SAP number", p.SAPNumber, "part name", p.Name); err != nil {
				return err
			}
			if p.RackNumber != "" && !listctl.IsRackNumber(p.RackNumber) {
				return listctl.Invalid("rack number must be 2 digits, got %q", p.RackNumber)
			}
			if p.RackLevel != "" && !listctl.IsRackLevel(p.RackLevel) {
				return listctl.Invalid("rack level must be one of A, B, C, D, got %q", p.RackLevel)
			}
			switch {
			case p.CurrentStock < 0:
				return listctl.Invalid("current stock cannot be negative")
			case p.SafetyLevel < 0, p.MinStockLevel < 0:
				return listctl.Invalid("stock levels cannot be negative")
			case p.UnitPrice < 0:
				return listctl.Invalid("unit price cannot be negative")
			}
			return nil
		},
		Keys: []listctl.Key[model.Part]{
			{Name: "SAP number", Value: func(p model.Part) string { return p.SAPNumber }},
		},
		Searchable: func(p model.Part) []string {
			return []string{p.SAPNumber, p.InternalRef, p.Name, p.Category, p.Location()}
		},
		// Stock is changed only through stock transactions.
		Fields: func(p model.Part) model.Fields {
			return model.Fields{
				"sapNumber":                    p.SAPNumber,
				"internalRef":                  p.InternalRef,
				"name":                         p.Name,
				"category":                     p.Category,
				"unit":                         p.Unit,
				model.PartFieldMaterialGroupID: p.MaterialGroupID,
				model.PartFieldRackNumber:      p.RackNumber,
				model.PartFieldRackLevel:       p.RackLevel,
				"safetyLevel":                  p.SafetyLevel,
				"minStockLevel":                p.MinStockLevel,
				"unitPrice":                    p.UnitPrice,
			}
		},
		Stamp: func(p model.Part, now time.Time) model.Part {
			p.CreatedAt, p.UpdatedAt = now, now
			return p
		},
		Check: func(ctx context.Context, _ []model.Part, p model.Part, _ string) error {
			if p.MaterialGroupID == "" {
				return nil
			}
			_, err := groups.Lookup(ctx, p.MaterialGroupID)
			return err
		},
	}
}

type service struct {
	ctl *listctl.Controller[model.Part]
}

func NewPartService(ctl *listctl.Controller[model.Part]) *service {
	return &service{ctl: ctl}
}

func (s *service) List(ctx context.Context, query string, start int) (model.Page[model.Part], error) {
	return s.ctl.Browse(ctx, query, start)
}

func (s *service) Get(ctx context.Context, id string) (model.Part, error) {
	return s.ctl.Lookup(ctx, id)
}

func (s *service) Items(ctx context.Context) ([]model.Part, error) {
	return s.ctl.Items(ctx)
}

// BySAPNumber matches case-insensitively.
func (s *service) BySAPNumber(ctx context.Context, sap string) (model.Part, error) {
	items, err := s.ctl.Items(ctx)
	if err != nil {
		return model.Part{}, err
	}

	want := strings.TrimSpace(sap)
	for _, p := range items {
		if strings.EqualFold(p.SAPNumber, want) {
			return p, nil
		}
	}
	return model.Part{}, fmt.Errorf("part %q: %w", sap, model.ErrNotFound)
}

func (s *service) Create(ctx context.Context, auth model.AuthorizationContext, p model.Part) (string, error) {
	const op = "part.service.Create"

	p.ID = ""
	id, err := s.ctl.Create(ctx, auth, p)
	if err != nil {
		logger.Error(ctx, "create part", logger.String("sap_number", p.SAPNumber), logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *service) Update(ctx context.Context, auth model.AuthorizationContext, id string, p model.Part) error {
	const op = "part.service.Update"

	if err := s.ctl.Update(ctx, auth, id, p); err != nil {
		logger.Error(ctx, "update part", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, auth model.AuthorizationContext, id string) error {
	const op = "part.service.Delete"

	if err := s.ctl.Delete(ctx, auth, id); err != nil {
		logger.Error(ctx, "delete part", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
