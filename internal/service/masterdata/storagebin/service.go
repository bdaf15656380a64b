package storagebin

import (
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/export"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

func Schema() listctl.Schema[model.StorageBin] {
	return listctl.Schema[model.StorageBin]{
		Resource: model.ResourceStorageMaster,
		ID:       func(b model.StorageBin) string { return b.ID },
		Normalize: func(b model.StorageBin) model.StorageBin {
			b.BinID = listctl.NormalizeCode(b.BinID)
			b.MaterialGroup = strings.TrimSpace(b.MaterialGroup)
			b.Description = strings.TrimSpace(b.Description)
			b.RackNumber = strings.TrimSpace(b.RackNumber)
			b.RackLevel = listctl.NormalizeCode(b.RackLevel)
			return b
		},
		Validate: func(b model.StorageBin) error {
			if !listctl.IsBinCode(b.BinID) {
				return listctl.Invalid("bin id must be exactly 4 letters, got %q", b.BinID)
			}
			if !listctl.IsRackNumber(b.RackNumber) {
				return listctl.Invalid("rack number must be 2 digits, got %q", b.RackNumber)
			}
			if !listctl.IsRackLevel(b.RackLevel) {
				return listctl.Invalid("rack level must be one of A, B, C, D, got %q", b.RackLevel)
			}
			return nil
		},
		Keys: []listctl.Key[model.StorageBin]{
			{Name: "bin id", Value: func(b model.StorageBin) string { return b.BinID }},
		},
		Searchable: func(b model.StorageBin) []string {
			return []string{b.BinID, b.MaterialGroup, b.Description, b.Location()}
		},
		Fields: func(b model.StorageBin) model.Fields {
			return model.Fields{
				"binId":         b.BinID,
				"materialGroup": b.MaterialGroup,
				"description":   b.Description,
				"rackNumber":    b.RackNumber,
				"rackLevel":     b.RackLevel,
			}
		},
		Stamp: func(b model.StorageBin, now time.Time) model.StorageBin {
			b.CreatedAt, b.UpdatedAt = now, now
			return b
		},
	}
}

type service struct {
	ctl *listctl.Controller[model.StorageBin]
}

func NewStorageBinService(ctl *listctl.Controller[model.StorageBin]) *service {
	return &service{ctl: ctl}
}

func (s *service) List(ctx context.Context, query string, start int) (model.Page[model.StorageBin], error) {
	return s.ctl.Browse(ctx, query, start)
}

func (s *service) Get(ctx context.Context, id string) (model.StorageBin, error) {
	return s.ctl.Lookup(ctx, id)
}

func (s *service) Items(ctx context.Context) ([]model.StorageBin, error) {
	return s.ctl.Items(ctx)
}

func (s *service) Create(ctx context.Context, auth model.AuthorizationContext, b model.StorageBin) (string, error) {
	const op = "storagebin.service.Create"

	b.ID = ""
	id, err := s.ctl.Create(ctx, auth, b)
	if err != nil {
		logger.Error(ctx, "create storage bin", logger.String("bin_id", b.BinID), logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return id, nil
}

func (s *service) Update(ctx context.Context, auth model.AuthorizationContext, id string, b model.StorageBin) error {
	const op = "storagebin.service.Update"

	if err := s.ctl.Update(ctx, auth, id, b); err != nil {
		logger.Error(ctx, "update storage bin", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) Delete(ctx context.Context, auth model.AuthorizationContext, id string) error {
	const op = "storagebin.service.Delete"

	if err := s.ctl.Delete(ctx, auth, id); err != nil {
		logger.Error(ctx, "delete storage bin", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Labels writes a QR label sheet for the given bins, in the given order.
// No ids means every bin.
func (s *service) Labels(ctx context.Context, w io.Writer, ids []string) error {
	const op = "storagebin.service.Labels"

	bins, err := s.ctl.Items(ctx)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	selected := bins
	if len(ids) > 0 {
		byID := make(map[string]model.StorageBin, len(bins))
		for _, b := range bins {
			byID[b.ID] = b
		}

		selected = make([]model.StorageBin, 0, len(ids))
		for _, id := range ids {
			b, ok := byID[id]
			if !ok {
				return fmt.Errorf("%s: bin %q: %w", op, id, model.ErrNotFound)
			}
			selected = append(selected, b)
		}
	}
	if len(selected) == 0 {
		return fmt.Errorf("%s: %w", op, listctl.Invalid("no storage bins to label"))
	}

	labels := make([]export.Label, 0, len(selected))
	for _, b := range selected {
		labels = append(labels, export.Label{
			Code:     b.BinID,
			Title:    b.MaterialGroup,
			Subtitle: "Rack " + b.Location(),
		})
	}

	if err := export.WriteLabelsPDF(w, labels, export.DefaultLabelLayout); err != nil {
		logger.Error(ctx, "render bin labels", logger.Int("bins", len(labels)), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
