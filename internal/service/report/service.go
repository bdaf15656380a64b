package report

import (
	"cmp"
	"context"
	"fmt"
	"slices"
	"strings"

	"github.com/samber/lo"
	"github.com/shopspring/decimal"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/metrics"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

const uncategorized = "Uncategorized"

type PartReader interface {
	Items(ctx context.Context) ([]model.Part, error)
}

type PendingCounter interface {
	Pending(ctx context.Context) (int, error)
}

// service computes reports over the part mirror. Three stock thresholds
// are in use: ClassifyStock for the low-stock report, ClassifyAvailability
// for inquiry and BelowMinimum for the dashboard counter.
type service struct {
	parts        PartReader
	requisitions PendingCounter
}

func NewReportService(parts PartReader, requisitions PendingCounter) *service {
	return &service{parts: parts, requisitions: requisitions}
}

// LowStock lists parts at or below 125% of their safety level, critical
// first and then by ascending stock. A part with no safety or minimum
// level shows as Warning once it runs out. The query matches name, SAP
// number and internal reference.
func (s *service) LowStock(ctx context.Context, query string) ([]model.LowStockRow, error) {
	const op = "report.service.LowStock"

	parts, err := s.parts.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	query = strings.ToLower(strings.TrimSpace(query))
	rows := lo.FilterMap(parts, func(p model.Part, _ int) (model.LowStockRow, bool) {
		safety := p.EffectiveSafetyLevel()
		level := model.ClassifyStock(p.CurrentStock, safety)
		if level == model.StockGood {
			return model.LowStockRow{}, false
		}
		if query != "" && !containsAny(query, p.Name, p.SAPNumber, p.InternalRef) {
			return model.LowStockRow{}, false
		}
		return model.LowStockRow{
			PartID:       p.ID,
			SAPNumber:    p.SAPNumber,
			Name:         p.Name,
			Location:     p.Location(),
			CurrentStock: p.CurrentStock,
			SafetyLevel:  safety,
			Status:       level,
		}, true
	})

	slices.SortStableFunc(rows, func(a, b model.LowStockRow) int {
		return cmp.Or(cmp.Compare(a.Status.Rank(), b.Status.Rank()), cmp.Compare(a.CurrentStock, b.CurrentStock))
	})

	for _, level := range []model.StockLevel{model.StockCritical, model.StockWarning} {
		n := lo.CountBy(rows, func(r model.LowStockRow) bool { return r.Status == level })
		metrics.LowStockParts.WithLabelValues(string(level)).Set(float64(n))
	}
	return rows, nil
}

func (s *service) Valuation(ctx context.Context, filters []model.FieldFilter, logic model.FilterLogic) (model.ValuationReport, error) {
	const op = "report.service.Valuation"

	match, err := compile(filters, logic, valuationFields)
	if err != nil {
		return model.ValuationReport{}, fmt.Errorf("%s: %w", op, err)
	}

	parts, err := s.parts.Items(ctx)
	if err != nil {
		return model.ValuationReport{}, fmt.Errorf("%s: %w", op, err)
	}

	total := decimal.Zero
	rows := make([]model.ValuationRow, 0, len(parts))
	for _, p := range parts {
		if !match(p) {
			continue
		}
		value := partValue(p)
		total = total.Add(value)
		rows = append(rows, model.ValuationRow{
			PartID:       p.ID,
			SAPNumber:    p.SAPNumber,
			Name:         p.Name,
			Category:     p.Category,
			InternalRef:  p.InternalRef,
			CurrentStock: p.CurrentStock,
			UnitPrice:    p.UnitPrice,
			TotalValue:   value.InexactFloat64(),
		})
	}

	return model.ValuationReport{Rows: rows, TotalValue: total.Round(2).InexactFloat64()}, nil
}

// Inquiry lists parts matching filters. An empty status keeps every
// availability.
func (s *service) Inquiry(ctx context.Context, filters []model.FieldFilter, logic model.FilterLogic, status model.StockAvailability) ([]model.InquiryRow, error) {
	const op = "report.service.Inquiry"

	switch status {
	case "", model.InStock, model.LowStock, model.OutOfStock:
	default:
		return nil, fmt.Errorf("%s: %w", op, listctl.Invalid("unknown stock status %q", status))
	}

	match, err := compile(filters, logic, inquiryFields)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	parts, err := s.parts.Items(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return lo.FilterMap(parts, func(p model.Part, _ int) (model.InquiryRow, bool) {
		if !match(p) {
			return model.InquiryRow{}, false
		}
		availability := model.ClassifyAvailability(p.CurrentStock, p.SafetyLevel)
		if status != "" && availability != status {
			return model.InquiryRow{}, false
		}
		return model.InquiryRow{
			PartID:       p.ID,
			SAPNumber:    p.SAPNumber,
			Name:         p.Name,
			InternalRef:  p.InternalRef,
			Category:     p.Category,
			RackNumber:   p.RackNumber,
			RackLevel:    p.RackLevel,
			Location:     p.Location(),
			CurrentStock: p.CurrentStock,
			SafetyLevel:  p.SafetyLevel,
			StockStatus:  availability,
		}, true
	}), nil
}

func (s *service) Dashboard(ctx context.Context) (model.Dashboard, error) {
	const op = "report.service.Dashboard"

	parts, err := s.parts.Items(ctx)
	if err != nil {
		return model.Dashboard{}, fmt.Errorf("%s: %w", op, err)
	}

	pending, err := s.requisitions.Pending(ctx)
	if err != nil {
		logger.Error(ctx, "count pending requisitions", logger.ErrorF(err))
		return model.Dashboard{}, fmt.Errorf("%s: %w", op, err)
	}

	total := decimal.Zero
	for _, p := range parts {
		total = total.Add(partValue(p))
	}

	byCategory := lo.CountValuesBy(parts, func(p model.Part) string {
		if c := strings.TrimSpace(p.Category); c != "" {
			return c
		}
		return uncategorized
	})
	categories := lo.MapToSlice(byCategory, func(name string, n int) model.CategoryCount {
		return model.CategoryCount{Name: name, Value: n}
	})
	slices.SortFunc(categories, func(a, b model.CategoryCount) int {
		return cmp.Or(cmp.Compare(b.Value, a.Value), cmp.Compare(a.Name, b.Name))
	})

	return model.Dashboard{
		TotalParts: len(parts),
		LowStockCount: lo.CountBy(parts, func(p model.Part) bool {
			return model.BelowMinimum(p.CurrentStock, p.MinStockLevel)
		}),
		PendingPRs:      pending,
		TotalStockValue: total.Round(2).InexactFloat64(),
		Categories:      categories,
	}, nil
}

func partValue(p model.Part) decimal.Decimal {
	return decimal.NewFromInt(p.CurrentStock).Mul(decimal.NewFromFloat(p.UnitPrice)).Round(2)
}

func containsAny(query string, fields ...string) bool {
	return lo.SomeBy(fields, func(f string) bool { return strings.Contains(strings.ToLower(f), query) })
}
