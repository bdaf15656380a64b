package requisition

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

func Schema() listctl.Schema[model.PurchaseRequisition] {
	return listctl.Schema[model.PurchaseRequisition]{
		Resource:  model.ResourcePurchaseRequisition,
		ID:        func(pr model.PurchaseRequisition) string { return pr.ID },
		Normalize: normalize,
		Validate:  validate,
		Searchable: func(pr model.PurchaseRequisition) []string {
			fields := []string{pr.SupplierName, pr.RequesterName, pr.StorageLocationName, pr.Remarks}
			for _, l := range pr.Lines {
				fields = append(fields, l.SAPNumber, l.PartName)
			}
			return fields
		},
		Order: listctl.NewestFirst(func(pr model.PurchaseRequisition) time.Time { return pr.CreatedAt }),
		Fields: func(pr model.PurchaseRequisition) model.Fields {
			return model.Fields{
				"supplierId":          pr.SupplierID,
				"supplierName":        pr.SupplierName,
				"requiredDate":        pr.RequiredDate,
				"storageLocationId":   pr.StorageLocationID,
				"storageLocationName": pr.StorageLocationName,
				"remarks":             pr.Remarks,
				"lines":               pr.Lines,
				"totalAmount":         pr.TotalAmount,
			}
		},
		Stamp: func(pr model.PurchaseRequisition, now time.Time) model.PurchaseRequisition {
			pr.CreatedAt, pr.UpdatedAt = now, now
			if pr.PRDate.IsZero() {
				pr.PRDate = now
			}
			return pr
		},
	}
}

func normalize(pr model.PurchaseRequisition) model.PurchaseRequisition {
	pr.SupplierID = strings.TrimSpace(pr.SupplierID)
	pr.StorageLocationID = strings.TrimSpace(pr.StorageLocationID)
	pr.Remarks = strings.TrimSpace(pr.Remarks)
	if pr.Status == "" {
		pr.Status = model.PRPending
	}

	total := decimal.Zero
	lines := make([]model.PRLine, 0, len(pr.Lines))
	for _, l := range pr.Lines {
		l.PartID = strings.TrimSpace(l.PartID)
		if l.Unit == "" {
			l.Unit = model.DefaultUnit
		}
		lineTotal := LineTotal(l.Quantity, l.UnitPrice)
		l.TotalPrice = lineTotal.InexactFloat64()
		total = total.Add(lineTotal)
		lines = append(lines, l)
	}
	pr.Lines = lines
	pr.TotalAmount = total.Round(2).InexactFloat64()
	return pr
}

func validate(pr model.PurchaseRequisition) error {
	if err := listctl.Required("supplier", pr.SupplierID, "storage location", pr.StorageLocationID); err != nil {
		return err
	}
	if pr.RequiredDate.IsZero() {
		return listctl.Invalid("required date is required")
	}
	if len(pr.Lines) == 0 {
		return listctl.Invalid("at least one line is required")
	}
	for i, l := range pr.Lines {
		if l.PartID == "" {
			return listctl.Invalid("line %d: part is required", i+1)
		}
		if l.Quantity <= 0 {
			return listctl.Invalid("line %d: quantity must be greater than zero", i+1)
		}
		if l.UnitPrice < 0 {
			return listctl.Invalid("line %d: unit price cannot be negative", i+1)
		}
	}
	return nil
}

// LineTotal is quantity × unit price rounded to cents.
func LineTotal(qty int64, unitPrice float64) decimal.Decimal {
	return decimal.NewFromInt(qty).Mul(decimal.NewFromFloat(unitPrice)).Round(2)
}

type service struct {
	ctl *listctl.Controller[model.PurchaseRequisition]
	now func() time.Time
}

func NewRequisitionService(ctl *listctl.Controller[model.PurchaseRequisition]) *service {
	return &service{ctl: ctl, now: time.Now}
}

func (s *service) List(ctx context.Context, query string, start int) (model.Page[model.PurchaseRequisition], error) {
	return s.ctl.Browse(ctx, query, start)
}

func (s *service) Get(ctx context.Context, id string) (model.PurchaseRequisition, error) {
	return s.ctl.Lookup(ctx, id)
}

// Save creates a requisition when draft.ID is empty, otherwise replaces a
// pending one. The requester is always the acting user.
func (s *service) Save(ctx context.Context, auth model.AuthorizationContext, draft model.PurchaseRequisition) (string, error) {
	const op = "requisition.service.Save"
	log := logger.With(logger.String("id", draft.ID), logger.String("supplier_id", draft.SupplierID))

	draft.Lines = slices.Clone(draft.Lines)
	draft.Status = model.PRPending
	draft.RequesterID = auth.UserID
	draft.RequesterName = auth.DisplayName()

	if draft.ID == "" {
		id, err := s.ctl.Create(ctx, auth, draft)
		if err != nil {
			log.Error(ctx, "create requisition", logger.ErrorF(err))
			return "", fmt.Errorf("%s: %w", op, err)
		}
		log.Info(ctx, "requisition created", logger.String("id", id), logger.Int("lines", len(draft.Lines)))
		return id, nil
	}

	current, err := s.ctl.Lookup(ctx, draft.ID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if current.Status != model.PRPending {
		return "", fmt.Errorf("%s: %w: %s requisition cannot be edited", op, model.ErrInvalidTransition, current.Status)
	}

	if err := s.ctl.Update(ctx, auth, draft.ID, draft); err != nil {
		log.Error(ctx, "update requisition", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return draft.ID, nil
}

func (s *service) Approve(ctx context.Context, auth model.AuthorizationContext, id string) error {
	const op = "requisition.service.Approve"
	return s.decide(ctx, op, auth, id, model.PRApproved, model.Fields{
		"approvedAt": s.now(),
	})
}

func (s *service) Reject(ctx context.Context, auth model.AuthorizationContext, id, reason string) error {
	const op = "requisition.service.Reject"

	reason = strings.TrimSpace(reason)
	if reason == "" {
		return fmt.Errorf("%s: %w", op, listctl.Invalid("rejection reason is required"))
	}
	return s.decide(ctx, op, auth, id, model.PRRejected, model.Fields{
		"rejectionReason": reason,
	})
}

func (s *service) decide(ctx context.Context, op string, auth model.AuthorizationContext, id string, to model.PRStatus, fields model.Fields) error {
	log := logger.With(logger.String("id", id), logger.String("to", string(to)))

	if !auth.CanEdit(model.ResourcePurchaseRequisition) {
		return fmt.Errorf("%s: %w", op, model.ErrPermissionDenied)
	}

	current, err := s.ctl.Lookup(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !current.Status.CanTransition(to) {
		return fmt.Errorf("%s: %w: %s -> %s", op, model.ErrInvalidTransition, current.Status, to)
	}

	fields["status"] = to
	fields["approverId"] = auth.UserID
	fields["approverName"] = auth.DisplayName()
	if err := s.ctl.Patch(ctx, id, fields); err != nil {
		log.Error(ctx, "change requisition status", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.ctl.Refresh(ctx); err != nil {
		log.Warn(ctx, "requisition mirror left stale", logger.ErrorF(err))
	}

	log.Info(ctx, "requisition decided", logger.String("approver", auth.DisplayName()))
	return nil
}

func (s *service) Delete(ctx context.Context, auth model.AuthorizationContext, id string) error {
	const op = "requisition.service.Delete"

	if err := s.ctl.Delete(ctx, auth, id); err != nil {
		logger.Error(ctx, "delete requisition", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) Stats(ctx context.Context) (model.PRStats, error) {
	items, err := s.ctl.Items(ctx)
	if err != nil {
		return model.PRStats{}, err
	}

	count := func(st model.PRStatus) int {
		return lo.CountBy(items, func(pr model.PurchaseRequisition) bool { return pr.Status == st })
	}
	return model.PRStats{
		Total:    len(items),
		Pending:  count(model.PRPending),
		Approved: count(model.PRApproved),
		Rejected: count(model.PRRejected),
	}, nil
}

// Pending counts requisitions awaiting a decision.
func (s *service) Pending(ctx context.Context) (int, error) {
	stats, err := s.Stats(ctx)
	if err != nil {
		return 0, err
	}
	return stats.Pending, nil
}

func (s *service) Filter(ctx context.Context, search string, status model.PRStatus) ([]model.PurchaseRequisition, error) {
	const op = "requisition.service.Filter"

	items, err := s.ctl.Search(ctx, search)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	if status == "" {
		return items, nil
	}
	return lo.Filter(items, func(pr model.PurchaseRequisition, _ int) bool { return pr.Status == status }), nil
}
