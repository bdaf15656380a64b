package stocktake

import (
	"cmp"
	"context"
	"fmt"
	"io"
	"slices"
	"strings"
	"time"

	"github.com/samber/lo"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/export"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

func Schema() listctl.Schema[model.StockTakeSession] {
	return listctl.Schema[model.StockTakeSession]{
		Resource: model.ResourceStockTake,
		ID:       func(s model.StockTakeSession) string { return s.ID },
		Validate: func(s model.StockTakeSession) error {
			if s.Month < time.January || s.Month > time.December {
				return listctl.Invalid("month must be between 1 and 12")
			}
			if s.Year <= 0 {
				return listctl.Invalid("year is required")
			}
			if !s.SelectionMode.Valid() {
				return listctl.Invalid("unknown selection mode %q", s.SelectionMode)
			}
			if !s.Status.Valid() {
				return listctl.Invalid("unknown status %q", s.Status)
			}
			return nil
		},
		Searchable: func(s model.StockTakeSession) []string {
			return []string{s.Period(), string(s.Status), s.StartedBy, string(s.SelectionMode)}
		},
		Order: listctl.NewestFirst(func(s model.StockTakeSession) time.Time { return s.CreatedAt }),
		Fields: func(s model.StockTakeSession) model.Fields {
			return model.Fields{
				"items":  s.Items,
				"status": s.Status,
			}
		},
		Stamp: func(s model.StockTakeSession, now time.Time) model.StockTakeSession {
			s.CreatedAt, s.UpdatedAt = now, now
			if s.StartDate.IsZero() {
				s.StartDate = now
			}
			return s
		},
	}
}

type PartReader interface {
	Items(ctx context.Context) ([]model.Part, error)
}

type BinLookup interface {
	Lookup(ctx context.Context, id string) (model.StorageBin, error)
}

type GroupLookup interface {
	Lookup(ctx context.Context, id string) (model.MaterialGroup, error)
}

type Adjuster interface {
	Adjust(ctx context.Context, auth model.AuthorizationContext, p model.AdjustParams) (model.MovementLog, error)
}

type service struct {
	ctl    *listctl.Controller[model.StockTakeSession]
	parts  PartReader
	bins   BinLookup
	groups GroupLookup
	stock  Adjuster
	now    func() time.Time
}

func NewStockTakeService(
	ctl *listctl.Controller[model.StockTakeSession],
	parts PartReader,
	bins BinLookup,
	groups GroupLookup,
	stock Adjuster,
) *service {
	return &service{
		ctl:    ctl,
		parts:  parts,
		bins:   bins,
		groups: groups,
		stock:  stock,
		now:    time.Now,
	}
}

func (s *service) List(ctx context.Context, query string, start int) (model.Page[model.StockTakeSession], error) {
	return s.ctl.Browse(ctx, query, start)
}

func (s *service) Get(ctx context.Context, id string) (model.StockTakeSession, error) {
	return s.ctl.Lookup(ctx, id)
}

// Start snapshots the stock of every part in scope into a new In Progress
// session.
func (s *service) Start(ctx context.Context, auth model.AuthorizationContext, p model.StockTakeParams) (string, error) {
	const op = "stocktake.service.Start"
	log := logger.With(
		logger.String("mode", string(p.SelectionMode)),
		logger.Int("year", p.Year),
		logger.Int("month", int(p.Month)),
	)

	if p.SelectionMode == "" {
		p.SelectionMode = model.SelectAll
	}

	inScope, err := s.scope(ctx, p)
	if err != nil {
		return "", fmt.Errorf("%s: %w", op, err)
	}

	parts, err := s.parts.Items(ctx)
	if err != nil {
		log.Error(ctx, "load parts", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}
	items := lo.FilterMap(parts, func(part model.Part, _ int) (model.CountEntry, bool) {
		if !inScope(part) {
			return model.CountEntry{}, false
		}
		return model.CountEntry{
			SAPNumber: part.SAPNumber,
			PartID:    part.ID,
			PartName:  part.Name,
			Location:  part.Location(),
			StockQty:  part.CurrentStock,
		}, true
	})
	if len(items) == 0 {
		return "", fmt.Errorf("%s: %w", op, listctl.Invalid("no parts in the selected scope"))
	}
	slices.SortFunc(items, func(a, b model.CountEntry) int {
		return cmp.Or(cmp.Compare(a.Location, b.Location), cmp.Compare(a.SAPNumber, b.SAPNumber))
	})

	id, err := s.ctl.Create(ctx, auth, model.StockTakeSession{
		Month:              p.Month,
		Year:               p.Year,
		SelectionMode:      p.SelectionMode,
		SelectedLocationID: p.SelectedLocationID,
		SelectedGroupID:    p.SelectedGroupID,
		StartedBy:          auth.DisplayName(),
		Status:             model.StockTakeInProgress,
		Items:              items,
	})
	if err != nil {
		log.Error(ctx, "create stock take session", logger.ErrorF(err))
		return "", fmt.Errorf("%s: %w", op, err)
	}

	log.Info(ctx, "stock take started", logger.String("id", id), logger.Int("items", len(items)))
	return id, nil
}

func (s *service) scope(ctx context.Context, p model.StockTakeParams) (func(model.Part) bool, error) {
	switch p.SelectionMode {
	case model.SelectAll:
		return func(model.Part) bool { return true }, nil
	case model.SelectByLocation:
		if p.SelectedLocationID == "" {
			return nil, listctl.Invalid("storage location is required")
		}
		bin, err := s.bins.Lookup(ctx, p.SelectedLocationID)
		if err != nil {
			return nil, err
		}
		return func(part model.Part) bool {
			return part.RackNumber == bin.RackNumber && strings.EqualFold(part.RackLevel, bin.RackLevel)
		}, nil
	case model.SelectByGroup:
		if p.SelectedGroupID == "" {
			return nil, listctl.Invalid("material group is required")
		}
		group, err := s.groups.Lookup(ctx, p.SelectedGroupID)
		if err != nil {
			return nil, err
		}
		return func(part model.Part) bool { return part.MaterialGroupID == group.ID }, nil
	}
	return nil, listctl.Invalid("unknown selection mode %q", p.SelectionMode)
}

// SaveProgress records counted quantities keyed by SAP number. Entries not
// present in counts keep their previous value.
func (s *service) SaveProgress(ctx context.Context, auth model.AuthorizationContext, id string, counts map[string]int64) (model.StockTakeProgress, error) {
	const op = "stocktake.service.SaveProgress"

	if !auth.CanEdit(model.ResourceStockTake) {
		return model.StockTakeProgress{}, fmt.Errorf("%s: %w", op, model.ErrPermissionDenied)
	}

	session, err := s.ctl.Lookup(ctx, id)
	if err != nil {
		return model.StockTakeProgress{}, fmt.Errorf("%s: %w", op, err)
	}
	if session.Status != model.StockTakeInProgress {
		return model.StockTakeProgress{}, fmt.Errorf("%s: %w: session is %s", op, model.ErrInvalidTransition, session.Status)
	}

	bySAP := make(map[string]int64, len(counts))
	for sap, qty := range counts {
		if qty < 0 {
			return model.StockTakeProgress{}, fmt.Errorf("%s: %w", op, listctl.Invalid("count for %s cannot be negative", sap))
		}
		bySAP[strings.ToUpper(strings.TrimSpace(sap))] = qty
	}

	items := slices.Clone(session.Items)
	matched := 0
	for i := range items {
		if qty, ok := bySAP[strings.ToUpper(items[i].SAPNumber)]; ok {
			items[i].CountQty = lo.ToPtr(qty)
			matched++
		}
	}
	if matched != len(bySAP) {
		return model.StockTakeProgress{}, fmt.Errorf("%s: %w", op, listctl.Invalid("%d counted SAP numbers are not in this session", len(bySAP)-matched))
	}

	if err := s.ctl.Patch(ctx, id, model.Fields{"items": items}); err != nil {
		logger.Error(ctx, "save stock take counts", logger.String("id", id), logger.ErrorF(err))
		return model.StockTakeProgress{}, fmt.Errorf("%s: %w", op, err)
	}
	s.refresh(ctx, id)

	session.Items = items
	return session.Progress(), nil
}

func (s *service) Progress(ctx context.Context, id string) (model.StockTakeProgress, error) {
	session, err := s.ctl.Lookup(ctx, id)
	if err != nil {
		return model.StockTakeProgress{}, err
	}
	return session.Progress(), nil
}

func (s *service) Variance(ctx context.Context, id string) (model.VarianceReport, error) {
	session, err := s.ctl.Lookup(ctx, id)
	if err != nil {
		return model.VarianceReport{}, err
	}
	return session.Variance(), nil
}

// Approve posts every non-zero variance as a stock adjustment, one part at
// a time, and then marks the session Approved. A failed adjustment stops
// the run; parts adjusted before it stay adjusted.
func (s *service) Approve(ctx context.Context, auth model.AuthorizationContext, id, comments string) error {
	const op = "stocktake.service.Approve"
	log := logger.With(logger.String("id", id))

	if !auth.CanEdit(model.ResourceStockTake) {
		return fmt.Errorf("%s: %w", op, model.ErrPermissionDenied)
	}
	comments = strings.TrimSpace(comments)
	if comments == "" {
		return fmt.Errorf("%s: %w", op, listctl.Invalid("approval comments are required"))
	}

	session, err := s.ctl.Lookup(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !session.Status.CanTransition(model.StockTakeApproved) {
		return fmt.Errorf("%s: %w: %s -> %s", op, model.ErrInvalidTransition, session.Status, model.StockTakeApproved)
	}
	if p := session.Progress(); p.Remaining > 0 {
		return fmt.Errorf("%s: %w", op, listctl.Invalid("%d of %d items are not counted", p.Remaining, p.Total))
	}

	remarks := fmt.Sprintf("Stock Take Adjustment: %s (Session %s)", comments, session.Period())
	adjusted := 0
	for _, it := range session.Items {
		if it.Variance() == 0 {
			continue
		}
		if _, err := s.stock.Adjust(ctx, auth, model.AdjustParams{
			PartID:     it.PartID,
			CountedQty: *it.CountQty,
			Variance:   it.Variance(),
			Remarks:    remarks,
		}); err != nil {
			log.Error(ctx, "stock take adjustment stopped",
				logger.String("sap_number", it.SAPNumber),
				logger.Int("adjusted", adjusted),
				logger.ErrorF(err),
			)
			return fmt.Errorf("%s: adjust %s: %w", op, it.SAPNumber, err)
		}
		adjusted++
	}

	if err := s.ctl.Patch(ctx, id, model.Fields{
		"status":           model.StockTakeApproved,
		"approvalComments": comments,
		"approvedBy":       auth.DisplayName(),
		"approvedAt":       s.now(),
	}); err != nil {
		log.Error(ctx, "stock adjusted but session not approved", logger.Int("adjusted", adjusted), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	s.refresh(ctx, id)

	log.Info(ctx, "stock take approved", logger.Int("adjusted", adjusted))
	return nil
}

// Reject discards an in-progress session without touching stock.
func (s *service) Reject(ctx context.Context, auth model.AuthorizationContext, id string) error {
	const op = "stocktake.service.Reject"

	session, err := s.ctl.Lookup(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !session.Status.CanTransition(model.StockTakeRejected) {
		return fmt.Errorf("%s: %w: %s -> %s", op, model.ErrInvalidTransition, session.Status, model.StockTakeRejected)
	}

	if err := s.ctl.Delete(ctx, auth, id); err != nil {
		logger.Error(ctx, "delete stock take session", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

// Complete closes an in-progress session without any adjustment.
func (s *service) Complete(ctx context.Context, auth model.AuthorizationContext, id string) error {
	const op = "stocktake.service.Complete"

	session, err := s.ctl.Lookup(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	if !session.Status.CanTransition(model.StockTakeComplete) {
		return fmt.Errorf("%s: %w: %s -> %s", op, model.ErrInvalidTransition, session.Status, model.StockTakeComplete)
	}
	return s.setStatus(ctx, op, auth, id, model.StockTakeComplete)
}

// SetStatus overrides the session status with any known value.
func (s *service) SetStatus(ctx context.Context, auth model.AuthorizationContext, id string, status model.StockTakeStatus) error {
	const op = "stocktake.service.SetStatus"

	if !status.Valid() {
		return fmt.Errorf("%s: %w", op, listctl.Invalid("unknown status %q", status))
	}
	if _, err := s.ctl.Lookup(ctx, id); err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return s.setStatus(ctx, op, auth, id, status)
}

func (s *service) setStatus(ctx context.Context, op string, auth model.AuthorizationContext, id string, status model.StockTakeStatus) error {
	if !auth.CanEdit(model.ResourceStockTake) {
		return fmt.Errorf("%s: %w", op, model.ErrPermissionDenied)
	}
	if err := s.ctl.Patch(ctx, id, model.Fields{"status": status}); err != nil {
		logger.Error(ctx, "set stock take status", logger.String("id", id), logger.ErrorF(err))
		return fmt.Errorf("%s: %w", op, err)
	}
	s.refresh(ctx, id)
	return nil
}

var countSheetHeader = []string{"SAP Number", "Part Name", "Location", "System Quantity", "Actual Quantity"}

// CountSheet renders the session's count list. Uncounted items leave the
// actual quantity blank for manual entry.
func (s *service) CountSheet(ctx context.Context, w io.Writer, id string, format export.Format) error {
	const op = "stocktake.service.CountSheet"

	session, err := s.ctl.Lookup(ctx, id)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	title := "Stock Take " + session.Period()

	switch format {
	case export.FormatPDF:
		rows := make([][]string, 0, len(session.Items))
		for _, it := range session.Items {
			rows = append(rows, []string{it.SAPNumber, it.PartName, it.Location, fmt.Sprint(it.StockQty), countText(it)})
		}
		err = export.WriteTablePDF(w, export.Table{
			Title:    title,
			Subtitle: fmt.Sprintf("%s, started by %s", session.Status, session.StartedBy),
			Header:   countSheetHeader,
			Widths:   []float64{35, 65, 25},
			Rows:     rows,
		})
	default:
		rows := make([][]any, 0, len(session.Items))
		for _, it := range session.Items {
			rows = append(rows, []any{it.SAPNumber, it.PartName, it.Location, it.StockQty, countText(it)})
		}
		err = export.WriteXLSX(w, export.Sheet{Name: title, Header: countSheetHeader, Rows: rows})
	}
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}

func (s *service) refresh(ctx context.Context, id string) {
	if err := s.ctl.Refresh(ctx); err != nil {
		logger.Warn(ctx, "stock take mirror left stale", logger.String("id", id), logger.ErrorF(err))
	}
}

func countText(it model.CountEntry) string {
	if it.CountQty == nil {
		return ""
	}
	return fmt.Sprint(*it.CountQty)
}
