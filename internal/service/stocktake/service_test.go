package stocktake

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/samber/lo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/export"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl/listctltest"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/mocks"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/movement"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/stock"
)

var (
	admin   = model.AuthorizationContext{UserID: "u-1", UserName: "Hafiz", GroupID: "a"}
	now     = time.Date(2025, 3, 28, 17, 0, 0, 0, time.UTC)
	errBoom = errors.New("store unavailable")
)

type partList []model.Part

func (p partList) Items(context.Context) ([]model.Part, error) { return p, nil }

type binMap map[string]model.StorageBin

func (b binMap) Lookup(_ context.Context, id string) (model.StorageBin, error) {
	bin, ok := b[id]
	if !ok {
		return model.StorageBin{}, model.ErrNotFound
	}
	return bin, nil
}

type groupMap map[string]model.MaterialGroup

func (g groupMap) Lookup(_ context.Context, id string) (model.MaterialGroup, error) {
	group, ok := g[id]
	if !ok {
		return model.MaterialGroup{}, model.ErrNotFound
	}
	return group, nil
}

var (
	parts = partList{
		{ID: "p1", SAPNumber: "SP-BEARING-6205", Name: "Bearing 6205", MaterialGroupID: "g1", RackNumber: "01", RackLevel: "A", CurrentStock: 12},
		{ID: "p2", SAPNumber: "SP-BELT-A42", Name: "V-Belt A42", MaterialGroupID: "g2", RackNumber: "01", RackLevel: "A", CurrentStock: 3},
		{ID: "p3", SAPNumber: "SP-SEAL-30", Name: "Oil Seal 30", MaterialGroupID: "g1", RackNumber: "02", RackLevel: "C", CurrentStock: 40},
	}
	bins   = binMap{"b1": {ID: "b1", BinID: "BRGS", RackNumber: "01", RackLevel: "A"}}
	groups = groupMap{"g1": {ID: "g1", GroupID: "BRGS", Name: "Bearings"}}
)

func newService(t *testing.T, stock Adjuster, seed ...model.StockTakeSession) (*service, *listctltest.MemStore[model.StockTakeSession]) {
	t.Helper()

	store := listctltest.NewMemStore(seed...)
	ctl := listctl.New[model.StockTakeSession](store, Schema(), listctl.Options{
		PageSize: 20,
		Now:      func() time.Time { return now },
	})
	s := NewStockTakeService(ctl, parts, bins, groups, stock)
	s.now = func() time.Time { return now }
	return s, store
}

func TestServiceStart(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		params  model.StockTakeParams
		wantSAP []string
		wantErr error
	}{
		{
			name:    "all parts",
			params:  model.StockTakeParams{Month: time.March, Year: 2025, SelectionMode: model.SelectAll},
			wantSAP: []string{"SP-BEARING-6205", "SP-BELT-A42", "SP-SEAL-30"},
		},
		{
			name:    "empty mode means all",
			params:  model.StockTakeParams{Month: time.March, Year: 2025},
			wantSAP: []string{"SP-BEARING-6205", "SP-BELT-A42", "SP-SEAL-30"},
		},
		{
			name:    "by storage location",
			params:  model.StockTakeParams{Month: time.March, Year: 2025, SelectionMode: model.SelectByLocation, SelectedLocationID: "b1"},
			wantSAP: []string{"SP-BEARING-6205", "SP-BELT-A42"},
		},
		{
			name:    "by material group",
			params:  model.StockTakeParams{Month: time.March, Year: 2025, SelectionMode: model.SelectByGroup, SelectedGroupID: "g1"},
			wantSAP: []string{"SP-BEARING-6205", "SP-SEAL-30"},
		},
		{
			name:    "unknown location",
			params:  model.StockTakeParams{Month: time.March, Year: 2025, SelectionMode: model.SelectByLocation, SelectedLocationID: "nope"},
			wantErr: model.ErrNotFound,
		},
		{
			name:    "group mode without group",
			params:  model.StockTakeParams{Month: time.March, Year: 2025, SelectionMode: model.SelectByGroup},
			wantErr: model.ErrValidation,
		},
		{
			name:    "invalid month",
			params:  model.StockTakeParams{Month: 13, Year: 2025},
			wantErr: model.ErrValidation,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, store := newService(t, mocks.NewMockAdjuster(t))
			id, err := s.Start(context.Background(), admin, tt.params)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, store.Writes())
				return
			}
			require.NoError(t, err)

			session, err := s.Get(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, model.StockTakeInProgress, session.Status)
			assert.Equal(t, "Hafiz", session.StartedBy)
			assert.Equal(t, "March 2025", session.Period())
			assert.Equal(t, tt.wantSAP, lo.Map(session.Items, func(it model.CountEntry, _ int) string { return it.SAPNumber }))
			for _, it := range session.Items {
				assert.False(t, it.Counted())
			}
			assert.Equal(t, "01-A", session.Items[0].Location)
			assert.Equal(t, int64(12), session.Items[0].StockQty)
		})
	}
}

func inProgress() model.StockTakeSession {
	return model.StockTakeSession{
		ID:            "st1",
		Month:         time.March,
		Year:          2025,
		SelectionMode: model.SelectAll,
		Status:        model.StockTakeInProgress,
		Items: []model.CountEntry{
			{SAPNumber: "SP-BEARING-6205", PartID: "p1", StockQty: 12},
			{SAPNumber: "SP-BELT-A42", PartID: "p2", StockQty: 3},
			{SAPNumber: "SP-SEAL-30", PartID: "p3", StockQty: 40},
		},
	}
}

func TestServiceSaveProgress(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newService(t, mocks.NewMockAdjuster(t), inProgress())

	p, err := s.SaveProgress(ctx, admin, "st1", map[string]int64{"sp-bearing-6205": 10, "SP-SEAL-30": 40})
	require.NoError(t, err)
	assert.Equal(t, model.StockTakeProgress{Total: 3, Counted: 2, Remaining: 1, Percentage: 200.0 / 3}, p)

	p, err = s.Progress(ctx, "st1")
	require.NoError(t, err)
	assert.Equal(t, 2, p.Counted)

	_, err = s.SaveProgress(ctx, admin, "st1", map[string]int64{"SP-UNKNOWN": 1})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = s.SaveProgress(ctx, admin, "st1", map[string]int64{"SP-BELT-A42": -1})
	assert.ErrorIs(t, err, model.ErrValidation)

	_, err = s.SaveProgress(ctx, model.AuthorizationContext{UserID: "viewer"}, "st1", map[string]int64{"SP-BELT-A42": 1})
	assert.ErrorIs(t, err, model.ErrPermissionDenied)

	v, err := s.Variance(ctx, "st1")
	require.NoError(t, err)
	assert.Equal(t, 1, v.Negative)
	assert.Equal(t, 2, v.Zero)
	assert.Equal(t, int64(-2), v.Lines[0].Variance)
}

func counted(qty ...int64) model.StockTakeSession {
	session := inProgress()
	for i := range session.Items {
		session.Items[i].CountQty = lo.ToPtr(qty[i])
	}
	return session
}

func TestServiceApprove(t *testing.T) {
	t.Parallel()

	const remarks = "Stock Take Adjustment: March count (Session March 2025)"

	tests := []struct {
		name     string
		session  model.StockTakeSession
		comments string
		deps     func(m *mocks.MockAdjuster)
		wantErr  error
		want     model.StockTakeStatus
	}{
		{
			name:     "adjusts only non-zero variances",
			session:  counted(10, 3, 45),
			comments: " March count ",
			deps: func(m *mocks.MockAdjuster) {
				m.On("Adjust", mock.Anything, admin, model.AdjustParams{PartID: "p1", CountedQty: 10, Variance: -2, Remarks: remarks}).
					Return(model.MovementLog{ID: "m1", Quantity: -2}, nil).Once()
				m.On("Adjust", mock.Anything, admin, model.AdjustParams{PartID: "p3", CountedQty: 45, Variance: 5, Remarks: remarks}).
					Return(model.MovementLog{ID: "m2", Quantity: 5}, nil).Once()
			},
			want: model.StockTakeApproved,
		},
		{
			name:     "nothing to adjust",
			session:  counted(12, 3, 40),
			comments: "March count",
			want:     model.StockTakeApproved,
		},
		{
			name:     "uncounted items",
			session:  inProgress(),
			comments: "March count",
			wantErr:  model.ErrValidation,
			want:     model.StockTakeInProgress,
		},
		{
			name:    "comments required",
			session: counted(10, 3, 45),
			wantErr: model.ErrValidation,
			want:    model.StockTakeInProgress,
		},
		{
			name: "already approved",
			session: func() model.StockTakeSession {
				s := counted(10, 3, 45)
				s.Status = model.StockTakeApproved
				return s
			}(),
			comments: "again",
			wantErr:  model.ErrInvalidTransition,
			want:     model.StockTakeApproved,
		},
		{
			name:     "adjustment failure stops the run",
			session:  counted(10, 3, 45),
			comments: "March count",
			deps: func(m *mocks.MockAdjuster) {
				m.On("Adjust", mock.Anything, admin, mock.MatchedBy(func(p model.AdjustParams) bool { return p.PartID == "p1" })).
					Return(model.MovementLog{}, errBoom).Once()
			},
			wantErr: errBoom,
			want:    model.StockTakeInProgress,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			adj := mocks.NewMockAdjuster(t)
			if tt.deps != nil {
				tt.deps(adj)
			}
			s, _ := newService(t, adj, tt.session)

			err := s.Approve(context.Background(), admin, "st1", tt.comments)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
			} else {
				require.NoError(t, err)
			}

			session, err := s.Get(context.Background(), "st1")
			require.NoError(t, err)
			assert.Equal(t, tt.want, session.Status)
			if tt.wantErr == nil {
				assert.Equal(t, "Hafiz", session.ApprovedBy)
				assert.Equal(t, "March count", session.ApprovalComments)
				require.NotNil(t, session.ApprovedAt)
			}
		})
	}
}

func TestServiceApproveLogsSessionVariance(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	partStore := listctltest.NewMemStore(model.Part{ID: "p1", SAPNumber: "SP-BEARING-6205", Name: "Bearing 6205", CurrentStock: 10})
	movementStore := listctltest.NewMemStore[model.MovementLog]()
	partCtl := listctl.New[model.Part](partStore, listctl.Schema[model.Part]{
		Resource: model.ResourcePartMaster,
		ID:       func(p model.Part) string { return p.ID },
	}, listctl.Options{})
	movementCtl := listctl.New[model.MovementLog](movementStore, movement.Schema(), listctl.Options{
		Now: func() time.Time { return now },
	})
	stockSvc := stock.NewStockService(partCtl, movementCtl, nil)

	session := model.StockTakeSession{
		ID:            "st1",
		Month:         time.March,
		Year:          2025,
		SelectionMode: model.SelectAll,
		Status:        model.StockTakeInProgress,
		Items: []model.CountEntry{
			{SAPNumber: "SP-BEARING-6205", PartID: "p1", StockQty: 10, CountQty: lo.ToPtr(int64(12))},
		},
	}
	s, _ := newService(t, stockSvc, session)

	_, err := stockSvc.StockIn(ctx, admin, model.StockInParams{PartID: "p1", Quantity: 2, Supplier: "Bearing Supply Sdn Bhd"})
	require.NoError(t, err)

	require.NoError(t, s.Approve(ctx, admin, "st1", "March count"))

	takes := lo.Filter(movementStore.Docs(), func(m model.MovementLog, _ int) bool {
		return m.Type == model.MovementStockTake
	})
	require.Len(t, takes, 1)
	assert.Equal(t, int64(2), takes[0].Quantity)

	parts := partStore.Docs()
	require.Len(t, parts, 1)
	assert.Equal(t, int64(12), parts[0].CurrentStock)
}

func TestServiceStatusChanges(t *testing.T) {
	t.Parallel()

	ctx := context.Background()

	t.Run("complete", func(t *testing.T) {
		t.Parallel()

		s, _ := newService(t, mocks.NewMockAdjuster(t), inProgress())
		require.NoError(t, s.Complete(ctx, admin, "st1"))
		assert.ErrorIs(t, s.Complete(ctx, admin, "st1"), model.ErrInvalidTransition)

		session, err := s.Get(ctx, "st1")
		require.NoError(t, err)
		assert.Equal(t, model.StockTakeComplete, session.Status)
	})

	t.Run("reject deletes the session", func(t *testing.T) {
		t.Parallel()

		s, store := newService(t, mocks.NewMockAdjuster(t), inProgress())
		require.NoError(t, s.Reject(ctx, admin, "st1"))
		assert.Empty(t, store.Docs())

		_, err := s.Get(ctx, "st1")
		assert.ErrorIs(t, err, model.ErrNotFound)
	})

	t.Run("set status accepts any known status", func(t *testing.T) {
		t.Parallel()

		session := inProgress()
		session.Status = model.StockTakeApproved
		s, _ := newService(t, mocks.NewMockAdjuster(t), session)

		require.NoError(t, s.SetStatus(ctx, admin, "st1", model.StockTakeNotStarted))
		assert.ErrorIs(t, s.SetStatus(ctx, admin, "st1", "Paused"), model.ErrValidation)

		got, err := s.Get(ctx, "st1")
		require.NoError(t, err)
		assert.Equal(t, model.StockTakeNotStarted, got.Status)
	})
}

func TestServiceCountSheet(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	session := inProgress()
	session.Items[1].CountQty = lo.ToPtr(int64(4))
	s, _ := newService(t, mocks.NewMockAdjuster(t), session)

	var buf bytes.Buffer
	require.NoError(t, s.CountSheet(ctx, &buf, "st1", export.FormatXLSX))

	f, err := excelize.OpenReader(&buf)
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows(f.GetSheetList()[0])
	require.NoError(t, err)
	require.Len(t, rows, 4)
	assert.Equal(t, countSheetHeader, rows[0])
	assert.Equal(t, []string{"SP-BELT-A42", "", "", "3", "4"}, rows[2])

	buf.Reset()
	require.NoError(t, s.CountSheet(ctx, &buf, "st1", export.FormatPDF))
	assert.True(t, bytes.HasPrefix(buf.Bytes(), []byte("%PDF")))

	assert.ErrorIs(t, s.CountSheet(ctx, &buf, "missing", export.FormatPDF), model.ErrNotFound)
}
