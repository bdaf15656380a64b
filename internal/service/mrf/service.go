package mrf

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

const PageSize = 10

func Schema() listctl.Schema[model.MRF] {
	return listctl.Schema[model.MRF]{
		Resource:  model.ResourceMRF,
		ID:        func(m model.MRF) string { return m.ID },
		Normalize: normalize,
		Validate:  validate,
		Keys: []listctl.Key[model.MRF]{
			{Name: "MRF number", Value: func(m model.MRF) string { return m.Number }},
		},
		Searchable: func(m model.MRF) []string {
			return []string{m.Number, m.RequestedBy, m.Department, m.Project, m.Justification}
		},
		Order: listctl.NewestFirst(func(m model.MRF) time.Time { return m.CreatedAt }),
		Fields: func(m model.MRF) model.Fields {
			return model.Fields{
				"date":          m.Date,
				"requestedBy":   m.RequestedBy,
				"department":    m.Department,
				"project":       m.Project,
				"priority":      m.Priority,
				"requiredDate":  m.RequiredDate,
				"justification": m.Justification,
				"items":         m.Items,
				"status":        m.Status,
				"totalItems":    m.TotalItems,
				"totalQuantity": m.TotalQuantity,
			}
		},
		Stamp: func(m model.MRF, now time.Time) model.MRF {
			m.CreatedAt, m.UpdatedAt = now, now
			if m.Date.IsZero() {
				m.Date = now
			}
			return m
		},
	}
}

func normalize(m model.MRF) model.MRF {
	m.RequestedBy = strings.TrimSpace(m.RequestedBy)
	m.Department = strings.TrimSpace(m.Department)
	m.Project = strings.TrimSpace(m.Project)
	m.Justification = strings.TrimSpace(m.Justification)
	if m.Priority == "" {
		m.Priority = model.PriorityMedium
	}
	if m.Status == "" {
		m.Status = model.MRFDraft
	}

	items := make([]model.MRFItem, 0, len(m.Items))
	for _, it := range m.Items {
		it.SAPNumber = strings.TrimSpace(it.SAPNumber)
		it.PartName = strings.TrimSpace(it.PartName)
		it.Unit = strings.TrimSpace(it.Unit)
		if it.Unit == "" {
			it.Unit = model.DefaultUnit
		}
		items = append(items, it)
	}
	m.Items = items

	m.TotalItems = len(items)
	m.TotalQuantity = lo.SumBy(items, func(it model.MRFItem) int64 { return it.Quantity })
	return m
}

func validate(m model.MRF) error {
	if err := listctl.Required("requested by", m.RequestedBy); err != nil {
		return err
	}
	if !m.Priority.Valid() {
		return listctl.Invalid("unknown priority %q", m.Priority)
	}
	if len(m.Items) == 0 {
		return listctl.Invalid("at least one item is required")
	}
	for i, it := range m.Items {
		if it.SAPNumber == "" {
			return listctl.Invalid("item %d: SAP number is required", i+1)
		}
		if it.Quantity <= 0 {
			return listctl.Invalid("item %d: quantity must be greater than zero", i+1)
		}
	}
	return nil
}

type PartStock interface {
	Items(ctx context.Context) ([]model.Part, error)
}

type service struct {
	ctl   *listctl.Controller[model.MRF]
	parts PartStock
	now   func() time.Time
}

func NewMRFService(ctl *listctl.Controller[model.MRF], parts PartStock) *service {
	return &service{ctl: ctl, parts: parts, now: time.Now}
}

func (s *service) List(ctx context.Context, query string, start int) (model.Page[model.MRF], error) {
	return s.ctl.Browse(ctx, query, start)
}

func (s *service) Get(ctx context.Context, id string) (model.MRF, error) {
	return s.ctl.Lookup(ctx, id)
}

// NextNumber returns the next MRF-YYYY-NNN for year.
func (s *service) NextNumber(ctx context.Context, year int) (string, error) {
	items, err := s.ctl.Items(ctx)
	if err != nil {
		return "", err
	}
	return nextNumber(items, year), nil
}

// Save creates a new MRF when draft.ID is empty, otherwise replaces an
// existing draft. With submit set the MRF is stored as Submitted.
func (s *service) Save(ctx context.Context, auth model.AuthorizationContext, draft model.MRF, submit bool) (string, error) {
	const op = "mrf.service.Save"
	log := logger.With(logger.String("id", draft.ID), logger.Bool("submit", submit))

	draft.Status = model.MRFDraft
	if submit {
		draft.Status = model.MRFSubmitted
	}

	draft.Items = slices.Clone(draft.Items)
	if err := s.fillStock(ctx, draft.Items); err != nil {
		log.Error(ctx, "load part stock", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	if draft.ID == "" {
		items, err := s.ctl.Items(ctx)
		if err != nil {
			return "", fmt.Errorf("%s: %w", op, err)
		}
		draft.Number = nextNumber(items, s.now().Year())
		draft.CreatedBy = auth.DisplayName()

		id, err := s.ctl.Create(ctx, auth, draft)
		if err != nil {
			log.Error(ctx, "create mrf", logger.ErrorF(err))
			return "", fmt.Errorf("%s: %w", op, err)
		}
		log.Info(ctx, "mrf saved", logger.String("mrf_number", draft.Number), logger.String("status", string(draft.Status)))
		return id, nil
	}

	current, err := s.ctl.Lookup(ctx, draft.ID)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}
	if current.Status != model.MRFDraft {
		return "", fmt.Errorf("%s: %w: %s MRF cannot be edited", op, model.ErrInvalidTransition, current.Status)
	}
	draft.Number = current.Number
	if draft.Date.IsZero() {
		draft.Date = current.Date
	}

	if err := s.ctl.Update(ctx, auth, draft.ID, draft); err != nil {
		log.Error(ctx, "update mrf", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	return draft.ID, nil
}

func (s *service) Submit(ctx context.Context, auth model.AuthorizationContext, id string) error {
	const op = "mrf.service.Submit"
	return s.transition(ctx, op, auth, id, model.MRFSubmitted, model.Fields{})
}

func (s *service) Approve(ctx context.Context, auth model.AuthorizationContext, id, comments string) error {
	const op = "mrf.service.Approve"
	return s.transition(ctx, op, auth, id, model.MRFApproved, model.Fields{
		"approvedBy":       auth.DisplayName(),
		"approvalComments": strings.TrimSpace(comments),
		"approvalDate":     s.now(),
	})
}

func (s *service) Reject(ctx context.Context, auth model.AuthorizationContext, id, comments string) error {
	const op = "mrf.service.Reject"
	return s.transition(ctx, op, auth, id, model.MRFRejected, model.Fields{
		"rejectedBy":        auth.DisplayName(),
		"rejectionComments": strings.TrimSpace(comments),
		"rejectionDate":     s.now(),
	})
}

func (s *service) transition(ctx context.Context, op string, auth model.AuthorizationContext, id string, to model.MRFStatus, fields model.Fields) error {
	log := logger.With(logger.String("id", id), logger.String("to", string(to)))

	if !auth.CanEdit(model.ResourceMRF) {
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
	if err := s.ctl.Patch(ctx, id, fields); err != nil {
		log.Error(ctx, "change mrf status", logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	if err := s.ctl.Refresh(ctx); err != nil {
		log.Warn(ctx, "mrf mirror left stale", logger.ErrorF(err))
	}

	log.Info(ctx, "mrf status changed", logger.String("mrf_number", current.Number))
	return nil
}

// Delete removes a draft. Submitted and decided MRFs are kept.
func (s *service) Delete(ctx context.Context, auth model.AuthorizationContext, id string) error {
	const op = "mrf.service.Delete"

	current, err := s.ctl.Lookup(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if current.Status != model.MRFDraft {
		return fmt.Errorf("%s: %w: only drafts can be deleted", op, model.ErrInvalidTransition)
	}

	if err := s.ctl.Delete(ctx, auth, id); err != nil {
		logger.Error(ctx, "delete mrf", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) Stats(ctx context.Context) (model.MRFStats, error) {
	items, err := s.ctl.Items(ctx)
	if err != nil {
		return model.MRFStats{}, err
	}

	count := func(st model.MRFStatus) int {
		return lo.CountBy(items, func(m model.MRF) bool { return m.Status == st })
	}
	return model.MRFStats{
		Total:    len(items),
		Draft:    count(model.MRFDraft),
		Pending:  count(model.MRFSubmitted),
		Approved: count(model.MRFApproved),
		Rejected: count(model.MRFRejected),
	}, nil
}

// Filter applies search, status, priority and an inclusive date range on
// the MRF date. The end date covers the whole day.
func (s *service) Filter(ctx context.Context, f model.MRFFilter) ([]model.MRF, error) {
	const op = "mrf.service.Filter"

	items, err := s.ctl.Search(ctx, f.Search)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lo.Filter(items, func(m model.MRF, _ int) bool {
		switch {
		case f.Status != "" && m.Status != f.Status:
			return false
		case f.Priority != "" && m.Priority != f.Priority:
			return false
		case f.From != nil && m.Date.Before(dayStart(*f.From)):
			return false
		case f.To != nil && !m.Date.Before(dayStart(*f.To).AddDate(0, 0, 1)):
			return false
		}
		return true
	}), nil
}

func (s *service) fillStock(ctx context.Context, items []model.MRFItem) error {
	if len(items) == 0 {
		return nil
	}

	parts, err := s.parts.Items(ctx)
	if err != nil {
		return err
	}
	bySAP := lo.KeyBy(parts, func(p model.Part) string { return strings.ToUpper(p.SAPNumber) })

	for i := range items {
		p, ok := bySAP[strings.ToUpper(strings.TrimSpace(items[i].SAPNumber))]
		if !ok {
			items[i].StockAvailable = 0
			continue
		}
		items[i].StockAvailable = p.CurrentStock
		if items[i].PartName == "" {
			items[i].PartName = p.Name
		}
		if items[i].Unit == "" {
			items[i].Unit = p.Unit
		}
	}
	return nil
}

func nextNumber(items []model.MRF, year int) string {
	numbers := lo.Map(items, func(m model.MRF, _ int) string { return m.Number })
	return listctl.NextSequence(numbers, fmt.Sprintf("MRF-%d-", year), 3)
}

func dayStart(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
