package machine

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

func Schema() listctl.Schema[model.Machine] {
	return listctl.Schema[model.Machine]{
		Resource: model.ResourceMachineMaster,
		ID:       func(m model.Machine) string { return m.ID },
		Normalize: func(m model.Machine) model.Machine {
			m.Name = strings.TrimSpace(m.Name)
			m.Model = strings.TrimSpace(m.Model)
			m.SerialNumber = strings.TrimSpace(m.SerialNumber)
			m.Location = strings.TrimSpace(m.Location)
			if m.Status == "" {
				m.Status = model.StatusActive
			}
			return m
		},
		Validate: func(m model.Machine) error {
			if err := listctl.Required("machine name", m.Name, "serial number", m.SerialNumber); err != nil {
				return err
			}
			if !m.Status.Valid() {
				return listctl.Invalid("unknown status %q", m.Status)
			}
			return nil
		},
		Keys: []listctl.Key[model.Machine]{
			{Name: "machine name", Value: func(m model.Machine) string { return m.Name }},
			{Name: "serial number", Value: func(m model.Machine) string { return m.SerialNumber }},
		},
		Searchable: func(m model.Machine) []string {
			return []string{m.Name, m.Model, m.SerialNumber, m.Location}
		},
		Fields: func(m model.Machine) model.Fields {
			return model.Fields{
				"name":         m.Name,
				"model":        m.Model,
				"serialNumber": m.SerialNumber,
				"location":     m.Location,
				"status":       m.Status,
			}
		},
		Stamp: func(m model.Machine, now time.Time) model.Machine {
			m.CreatedAt, m.UpdatedAt = now, now
			return m
		},
	}
}

type service struct {
	ctl *listctl.Controller[model.Machine]
}

func NewMachineService(ctl *listctl.Controller[model.Machine]) *service {
	return &service{ctl: ctl}
}

func (s *service) List(ctx context.Context, query string, start int) (model.Page[model.Machine], error) {
	return s.ctl.Browse(ctx, query, start)
}

// Filter applies the search query and, when status is set, keeps only
// machines in that status.
func (s *service) Filter(ctx context.Context, query string, status model.RecordStatus) ([]model.Machine, error) {
	const op = "machine.service.Filter"

	if status != "" && !status.Valid() {
		return nil, fmt.Errorf("%s: %w", op, listctl.Invalid("unknown status %q", status))
	}

	matched, err := s.ctl.Search(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if status == "" {
		return matched, nil
	}
	return lo.Filter(matched, func(m model.Machine, _ int) bool { return m.Status == status }), nil
}

func (s *service) Get(ctx context.Context, id string) (model.Machine, error) {
	return s.ctl.Lookup(ctx, id)
}

func (s *service) Create(ctx context.Context, auth model.AuthorizationContext, m model.Machine) (string, error) {
	const op = "machine.service.Create"

	m.ID = ""
	id, err := s.ctl.Create(ctx, auth, m)
	if err != nil {
		logger.Error(ctx, "create machine", logger.String("serial_number", m.SerialNumber), logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *service) Update(ctx context.Context, auth model.AuthorizationContext, id string, m model.Machine) error {
	const op = "machine.service.Update"

	if err := s.ctl.Update(ctx, auth, id, m); err != nil {
		logger.Error(ctx, "update machine", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, auth model.AuthorizationContext, id string) error {
	const op = "machine.service.Delete"

	if err := s.ctl.Delete(ctx, auth, id); err != nil {
		logger.Error(ctx, "delete machine", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
