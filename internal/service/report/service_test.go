package report

import (
	"bytes"
	"context"
	"errors"
	"testing"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

var errBoom = errors.New("mirror unavailable")

type partList []model.Part

func (p partList) Items(context.Context) ([]model.Part, error) { return p, nil }

type failingParts struct{}

func (failingParts) Items(context.Context) ([]model.Part, error) { return nil, errBoom }

type pendingCount struct {
	n   int
	err error
}

func (p pendingCount) Pending(context.Context) (int, error) { return p.n, p.err }

var parts = partList{
	{ID: "p1", SAPNumber: "SP-BEARING-6205", Name: "Bearing 6205", Category: "Bearings", InternalRef: "BRG-01", RackNumber: "01", RackLevel: "A", CurrentStock: 5, SafetyLevel: 10, UnitPrice: 12.5},
	{ID: "p2", SAPNumber: "SP-BEARING-6206", Name: "Bearing 6206", Category: "Bearings", RackNumber: "01", RackLevel: "B", CurrentStock: 11, SafetyLevel: 10, UnitPrice: 14.1},
	{ID: "p3", SAPNumber: "SP-BELT-A42", Name: "V-Belt A42", Category: "Belts", CurrentStock: 20, SafetyLevel: 10, UnitPrice: 0.1},
	{ID: "p4", SAPNumber: "SP-SEAL-30", Name: "Oil Seal 30", CurrentStock: 0, MinStockLevel: 4, UnitPrice: 3},
	{ID: "p5", SAPNumber: "SP-FUSE-10A", Name: "Fuse 10A", Category: "Electrical", CurrentStock: 7},
}

func TestServiceLowStock(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		parts PartReader
		query string
		want  []model.LowStockRow
		err   error
	}{
		{
			name:  "critical before warning, then by stock",
			parts: parts,
			want: []model.LowStockRow{
				{PartID: "p4", SAPNumber: "SP-SEAL-30", Name: "Oil Seal 30", Location: "Not Specified", CurrentStock: 0, SafetyLevel: 4, Status: model.StockCritical},
				{PartID: "p1", SAPNumber: "SP-BEARING-6205", Name: "Bearing 6205", Location: "01-A", CurrentStock: 5, SafetyLevel: 10, Status: model.StockCritical},
				{PartID: "p2", SAPNumber: "SP-BEARING-6206", Name: "Bearing 6206", Location: "01-B", CurrentStock: 11, SafetyLevel: 10, Status: model.StockWarning},
			},
		},
		{
			name:  "query on internal ref",
			parts: parts,
			query: "brg",
			want: []model.LowStockRow{
				{PartID: "p1", SAPNumber: "SP-BEARING-6205", Name: "Bearing 6205", Location: "01-A", CurrentStock: 5, SafetyLevel: 10, Status: model.StockCritical},
			},
		},
		{
			name:  "location is not searched",
			parts: parts,
			query: "01-b",
			want:  []model.LowStockRow{},
		},
		{
			name: "no levels set and out of stock",
			parts: partList{
				{ID: "p6", SAPNumber: "SP-LAMP-24V", Name: "Pilot Lamp 24V", CurrentStock: 0},
				{ID: "p7", SAPNumber: "SP-LAMP-12V", Name: "Pilot Lamp 12V", CurrentStock: 3},
			},
			want: []model.LowStockRow{
				{PartID: "p6", SAPNumber: "SP-LAMP-24V", Name: "Pilot Lamp 24V", Location: "Not Specified", CurrentStock: 0, SafetyLevel: 0, Status: model.StockWarning},
			},
		},
		{
			name:  "mirror failure",
			parts: failingParts{},
			err:   errBoom,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewReportService(tt.parts, pendingCount{})
			got, err := s.LowStock(context.Background(), tt.query)
			if tt.err != nil {
				require.ErrorIs(t, err, tt.err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestServiceValuation(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name      string
		filters   []model.FieldFilter
		logic     model.FilterLogic
		wantIDs   []string
		wantTotal float64
		wantErr   error
	}{
		{
			name:      "no filters",
			wantIDs:   []string{"p1", "p2", "p3", "p4", "p5"},
			wantTotal: 62.5 + 155.1 + 2,
		},
		{
			name:      "all filters must match",
			filters:   []model.FieldFilter{{Field: "category", Value: "bear"}, {Field: "internalRef", Value: "brg"}},
			logic:     model.MatchAll,
			wantIDs:   []string{"p1"},
			wantTotal: 62.5,
		},
		{
			name:      "any filter matches",
			filters:   []model.FieldFilter{{Field: "name", Value: "belt"}, {Field: "currentStock", Value: "11"}},
			logic:     model.MatchAny,
			wantIDs:   []string{"p2", "p3"},
			wantTotal: 157.1,
		},
		{
			name:      "blank values are ignored",
			filters:   []model.FieldFilter{{Field: "sapNumber", Value: " "}, {Field: "sapNumber", Value: "seal"}},
			wantIDs:   []string{"p4"},
			wantTotal: 0,
		},
		{
			name:    "unknown field",
			filters: []model.FieldFilter{{Field: "rackLevel", Value: "A"}},
			wantErr: model.ErrValidation,
		},
		{
			name:    "unknown logic",
			logic:   "XOR",
			wantErr: model.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewReportService(parts, pendingCount{})
			got, err := s.Valuation(context.Background(), tt.filters, tt.logic)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, lo.Map(got.Rows, func(r model.ValuationRow, _ int) string { return r.PartID }))
			assert.InDelta(t, tt.wantTotal, got.TotalValue, 0.001)
		})
	}
}

func TestServiceInquiry(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		filters []model.FieldFilter
		status  model.StockAvailability
		wantIDs []string
		wantErr error
	}{
		{
			name:    "low stock only",
			status:  model.LowStock,
			wantIDs: []string{"p1"},
		},
		{
			name:    "out of stock",
			status:  model.OutOfStock,
			wantIDs: []string{"p4"},
		},
		{
			name:    "rack filter and in stock",
			filters: []model.FieldFilter{{Field: "rackNumber", Value: "01"}},
			status:  model.InStock,
			wantIDs: []string{"p2"},
		},
		{
			name:    "unknown status",
			status:  "Reserved",
			wantErr: model.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewReportService(parts, pendingCount{})
			got, err := s.Inquiry(context.Background(), tt.filters, model.MatchAll, tt.status)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantIDs, lo.Map(got, func(r model.InquiryRow, _ int) string { return r.PartID }))
		})
	}
}

func TestServiceDashboard(t *testing.T) {
	t.Parallel()

	s := NewReportService(parts, pendingCount{n: 4})
	d, err := s.Dashboard(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 5, d.TotalParts)
	// Only p4 (0 <= min 4); p1 is under its safety level but has no minimum.
	assert.Equal(t, 1, d.LowStockCount)
	assert.Equal(t, 4, d.PendingPRs)
	assert.InDelta(t, 219.6, d.TotalStockValue, 0.001)
	assert.Equal(t, []model.CategoryCount{
		{Name: "Bearings", Value: 2},
		{Name: "Belts", Value: 1},
		{Name: "Electrical", Value: 1},
		{Name: uncategorized, Value: 1},
	}, d.Categories)

	s = NewReportService(parts, pendingCount{err: errBoom})
	_, err = s.Dashboard(context.Background())
	assert.ErrorIs(t, err, errBoom)
}

func TestServiceDashboardLowStockCount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		part model.Part
		want int
	}{
		{name: "at minimum", part: model.Part{ID: "p1", CurrentStock: 2, MinStockLevel: 2}, want: 1},
		{name: "above minimum", part: model.Part{ID: "p1", CurrentStock: 3, MinStockLevel: 2}, want: 0},
		{name: "under safety but above minimum", part: model.Part{ID: "p1", CurrentStock: 5, SafetyLevel: 10, MinStockLevel: 2}, want: 0},
		{name: "out of stock with no levels", part: model.Part{ID: "p1"}, want: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s := NewReportService(partList{tt.part}, pendingCount{})
			d, err := s.Dashboard(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, d.LowStockCount)
		})
	}
}

func TestExports(t *testing.T) {
	t.Parallel()

	s := NewReportService(parts, pendingCount{n: 1})
	ctx := context.Background()

	valuation, err := s.Valuation(ctx, nil, model.MatchAll)
	require.NoError(t, err)

	var buf bytes.Buffer
	require.NoError(t, ExportValuation(&buf, valuation))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	rows, err := f.GetRows("Stock Valuation")
	require.NoError(t, err)
	require.Len(t, rows, len(parts)+2)
	assert.Equal(t, "Total", rows[len(rows)-1][5])
	require.NoError(t, f.Close())

	dashboard, err := s.Dashboard(ctx)
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, ExportDashboard(&buf, dashboard))

	f, err = excelize.OpenReader(&buf)
	require.NoError(t, err)
	assert.Equal(t, []string{"Summary", "Categories"}, f.GetSheetList())
	require.NoError(t, f.Close())

	low, err := s.LowStock(ctx, "")
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, ExportLowStock(&buf, low))
	assert.NotZero(t, buf.Len())

	inquiry, err := s.Inquiry(ctx, nil, model.MatchAny, "")
	require.NoError(t, err)
	buf.Reset()
	require.NoError(t, ExportInquiry(&buf, inquiry))
	assert.NotZero(t, buf.Len())
}
