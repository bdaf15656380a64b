package department

import (
	"context"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl/listctltest"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

var admin = model.AuthorizationContext{UserID: "u-1", GroupID: "a"}

func newService(seed ...model.Department) (*service, *listctltest.MemStore[model.Department]) {
	store := listctltest.NewMemStore(seed...)
	ctl := listctl.New[model.Department](store, Schema(), listctl.Options{PageSize: 50})
	return NewDepartmentService(ctl), store
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		seed   []model.Department
		auth   model.AuthorizationContext
		draft  model.Department
		assert func(t *testing.T, s *service, store *listctltest.MemStore[model.Department], id string, err error)
	}

	tests := []testCase{
		{
			name:  "first department gets DEPT-001",
			auth:  admin,
			draft: model.Department{Code: " mnt ", Name: " Maintenance "},
			assert: func(t *testing.T, s *service, store *listctltest.MemStore[model.Department], id string, err error) {
				require.NoError(t, err)

				d, err := s.Get(context.Background(), id)
				require.NoError(t, err)
				assert.Equal(t, "DEPT-001", d.DepartmentID)
				assert.Equal(t, "MNT", d.Code)
				assert.Equal(t, "Maintenance", d.Name)
				assert.Equal(t, model.StatusActive, d.Status)
				assert.Equal(t, 1, store.Writes())
			},
		},
		{
			name: "next id follows the largest existing suffix",
			seed: []model.Department{
				{ID: "d1", DepartmentID: "DEPT-002", Code: "PRD", Name: "Production"},
				{ID: "d2", DepartmentID: "DEPT-007", Code: "QA", Name: "Quality"},
			},
			auth:  admin,
			draft: model.Department{Code: "ENG", Name: "Engineering"},
			assert: func(t *testing.T, s *service, _ *listctltest.MemStore[model.Department], id string, err error) {
				require.NoError(t, err)

				d, err := s.Get(context.Background(), id)
				require.NoError(t, err)
				assert.Equal(t, "DEPT-008", d.DepartmentID)
			},
		},
		{
			name:  "duplicate code is rejected without a write",
			seed:  []model.Department{{ID: "d1", DepartmentID: "DEPT-001", Code: "ENG", Name: "Engineering"}},
			auth:  admin,
			draft: model.Department{Code: "eng", Name: "Another"},
			assert: func(t *testing.T, _ *service, store *listctltest.MemStore[model.Department], id string, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrDuplicateKey)
				assert.Empty(t, id)
				assert.Zero(t, store.Writes())
			},
		},
		{
			name:  "unknown status",
			auth:  admin,
			draft: model.Department{Code: "ENG", Name: "Engineering", Status: "Retired"},
			assert: func(t *testing.T, _ *service, store *listctltest.MemStore[model.Department], _ string, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
				assert.Zero(t, store.Writes())
			},
		},
		{
			name: "edit access cannot create",
			auth: model.AuthorizationContext{
				GroupID:     "store",
				Permissions: map[model.Resource]model.Access{model.ResourceDepartmentMaster: model.AccessEdit},
			},
			draft: model.Department{Code: "ENG", Name: "Engineering"},
			assert: func(t *testing.T, _ *service, store *listctltest.MemStore[model.Department], _ string, err error) {
				assert.ErrorIs(t, err, model.ErrPermissionDenied)
				assert.Zero(t, store.Writes())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, store := newService(tt.seed...)
			id, err := s.Create(context.Background(), tt.auth, tt.draft)
			tt.assert(t, s, store, id, err)
		})
	}
}

func TestServiceListNewestFirst(t *testing.T) {
	t.Parallel()

	base := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s, _ := newService(
		model.Department{ID: "d1", DepartmentID: "DEPT-001", Code: "OLD", Name: "Oldest", CreatedAt: base},
		model.Department{ID: "d2", DepartmentID: "DEPT-002", Code: "NEW", Name: "Newest", CreatedAt: base.Add(48 * time.Hour)},
		model.Department{ID: "d3", DepartmentID: "DEPT-003", Code: "MID", Name: "Middle", Description: "spare parts store", CreatedAt: base.Add(24 * time.Hour)},
	)

	page, err := s.List(context.Background(), "", 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, []string{"NEW", "MID", "OLD"}, []string{page.Items[0].Code, page.Items[1].Code, page.Items[2].Code})

	page, err = s.List(context.Background(), "SPARE", 0)
	require.NoError(t, err)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "DEPT-003", page.Items[0].DepartmentID)
}

func TestServiceUpdateAndDelete(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, store := newService(
		model.Department{ID: "d1", DepartmentID: "DEPT-001", Code: "ENG", Name: "Engineering", Status: model.StatusActive},
		model.Department{ID: "d2", DepartmentID: "DEPT-002", Code: "QA", Name: "Quality", Status: model.StatusActive},
	)

	err := s.Update(ctx, admin, "d1", model.Department{Code: "qa", Name: "Engineering"})
	require.ErrorIs(t, err, model.ErrDuplicateKey)

	name := gofakeit.Company()
	require.NoError(t, s.Update(ctx, admin, "d1", model.Department{Code: "ENG", Name: name, Status: model.StatusInactive}))

	d, err := s.Get(ctx, "d1")
	require.NoError(t, err)
	assert.Equal(t, name, d.Name)
	assert.Equal(t, model.StatusInactive, d.Status)
	assert.Equal(t, "DEPT-001", d.DepartmentID)

	require.NoError(t, s.Delete(ctx, admin, "d2"))
	assert.ErrorIs(t, s.Delete(ctx, admin, "d2"), model.ErrNotFound)
	assert.Len(t, store.Docs(), 1)

	next, err := s.NextID(ctx)
	require.NoError(t, err)
	assert.Equal(t, "DEPT-002", next)
}
