package supplier

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

func Schema() listctl.Schema[model.Supplier] {
	return listctl.Schema[model.Supplier]{
		Resource: model.ResourceSupplierMaster,
		ID:       func(s model.Supplier) string { return s.ID },
		Normalize: func(s model.Supplier) model.Supplier {
			s.Name = strings.TrimSpace(s.Name)
			s.ContactPerson = strings.TrimSpace(s.ContactPerson)
			s.Email = strings.TrimSpace(s.Email)
			s.Phone = strings.TrimSpace(s.Phone)
			s.Address = strings.TrimSpace(s.Address)
			s.Country = strings.TrimSpace(s.Country)
			if s.Country == "" {
				s.Country = model.DefaultCountry
			}
			return s
		},
		Validate: func(s model.Supplier) error {
			return listctl.Required("supplier name", s.Name)
		},
		Keys: []listctl.Key[model.Supplier]{
			{Name: "supplier name", Value: func(s model.Supplier) string { return s.Name }},
		},
		Searchable: func(s model.Supplier) []string {
			return []string{s.Name, s.ContactPerson, s.Email, s.Phone, s.Address, s.Country}
		},
		Fields: func(s model.Supplier) model.Fields {
			return model.Fields{
				"name":          s.Name,
				"contactPerson": s.ContactPerson,
				"email":         s.Email,
				"phone":         s.Phone,
				"address":       s.Address,
				"country":       s.Country,
			}
		},
		Stamp: func(s model.Supplier, now time.Time) model.Supplier {
			s.CreatedAt, s.UpdatedAt = now, now
			return s
		},
	}
}

// Draft is a supplier as entered, with the address split into parts.
type Draft struct {
	model.Supplier
	AddressParts *model.SupplierAddress
}

// Compose fills Address and Country from AddressParts when given.
func (d Draft) Compose() model.Supplier {
	s := d.Supplier
	if d.AddressParts != nil {
		s.Address = d.AddressParts.String()
		if c := strings.TrimSpace(d.AddressParts.Country); c != "" {
			s.Country = c
		}
	}
	return s
}

type service struct {
	ctl *listctl.Controller[model.Supplier]
}

func NewSupplierService(ctl *listctl.Controller[model.Supplier]) *service {
	return &service{ctl: ctl}
}

func (s *service) List(ctx context.Context, query string, start int) (model.Page[model.Supplier], error) {
	return s.ctl.Browse(ctx, query, start)
}

func (s *service) Get(ctx context.Context, id string) (model.Supplier, error) {
	return s.ctl.Lookup(ctx, id)
}

func (s *service) Items(ctx context.Context) ([]model.Supplier, error) {
	return s.ctl.Items(ctx)
}

func (s *service) Create(ctx context.Context, auth model.AuthorizationContext, sup model.Supplier) (string, error) {
	const op = "supplier.service.Create"

	sup.ID = ""
	id, err := s.ctl.Create(ctx, auth, sup)
	if err != nil {
		logger.Error(ctx, "create supplier", logger.String("name", sup.Name), logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *service) Update(ctx context.Context, auth model.AuthorizationContext, id string, sup model.Supplier) error {
	const op = "supplier.service.Update"

	if err := s.ctl.Update(ctx, auth, id, sup); err != nil {
		logger.Error(ctx, "update supplier", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, auth model.AuthorizationContext, id string) error {
	const op = "supplier.service.Delete"

	if err := s.ctl.Delete(ctx, auth, id); err != nil {
		logger.Error(ctx, "delete supplier", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
