package materialgroup

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl/listctltest"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/part"
)

var (
	admin   = model.AuthorizationContext{UserID: "u-1", GroupID: "a"}
	errBoom = errors.New("connection reset")
)

type deps struct {
	groups *listctltest.MemStore[model.MaterialGroup]
	parts  *listctltest.MemStore[model.Part]
}

func newService(groups []model.MaterialGroup, parts []model.Part) (*service, deps) {
	d := deps{
		groups: listctltest.NewMemStore(groups...),
		parts:  listctltest.NewMemStore(parts...),
	}
	groupCtl := listctl.New[model.MaterialGroup](d.groups, Schema(), listctl.Options{PageSize: 50})
	partCtl := listctl.New[model.Part](d.parts, part.Schema(groupCtl), listctl.Options{PageSize: 50})
	return NewMaterialGroupService(groupCtl, partCtl), d
}

func bearingParts(n int) []model.Part {
	parts := make([]model.Part, 0, n+1)
	for i := range n {
		parts = append(parts, model.Part{
			ID:              fmt.Sprintf("p%d", i+1),
			SAPNumber:       fmt.Sprintf("SP-BEARING-%d", 6200+i),
			Name:            gofakeit.ProductName(),
			MaterialGroupID: "g-bear",
		})
	}
	return append(parts, model.Part{ID: "belt", SAPNumber: "SP-BELT-A42", Name: "V-Belt", MaterialGroupID: "g-belt"})
}

var seedGroups = []model.MaterialGroup{
	{ID: "g-bear", GroupID: "BEAR", Name: "BEARINGS"},
	{ID: "g-belt", GroupID: "BELT", Name: "BELTS"},
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		draft   model.MaterialGroup
		wantErr error
	}{
		{name: "lower-case code is normalized", draft: model.MaterialGroup{GroupID: " seal ", Name: "Seals"}},
		{name: "three letters", draft: model.MaterialGroup{GroupID: "SEA", Name: "Seals"}, wantErr: model.ErrValidation},
		{name: "digit in code", draft: model.MaterialGroup{GroupID: "SEA1", Name: "Seals"}, wantErr: model.ErrValidation},
		{name: "missing name", draft: model.MaterialGroup{GroupID: "SEAL"}, wantErr: model.ErrValidation},
		{name: "duplicate code", draft: model.MaterialGroup{GroupID: "bear", Name: "Other"}, wantErr: model.ErrDuplicateKey},
		{name: "duplicate name", draft: model.MaterialGroup{GroupID: "BRGS", Name: "bearings"}, wantErr: model.ErrDuplicateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, d := newService(seedGroups, nil)
			id, err := s.Create(context.Background(), admin, tt.draft)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, d.groups.Writes())
				return
			}

			require.NoError(t, err)
			g, err := s.Get(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, "SEAL", g.GroupID)
		})
	}
}

func TestServiceDeleteCascade(t *testing.T) {
	t.Parallel()

	type testCase struct {
		name   string
		parts  int
		auth   model.AuthorizationContext
		setup  func(d deps)
		assert func(t *testing.T, s *service, d deps, err error)
	}

	tests := []testCase{
		{
			name:  "unassigns every part of the group, one write each",
			parts: 4,
			auth:  admin,
			assert: func(t *testing.T, s *service, d deps, err error) {
				require.NoError(t, err)

				assert.Equal(t, 4, d.parts.Calls(listctltest.OpUpdate))
				assert.Equal(t, 1, d.groups.Calls(listctltest.OpDelete))

				for _, p := range d.parts.Docs() {
					if p.ID == "belt" {
						assert.Equal(t, "g-belt", p.MaterialGroupID)
						continue
					}
					assert.True(t, p.Pending(), p.ID)
				}

				_, err = s.Get(context.Background(), "g-bear")
				assert.ErrorIs(t, err, model.ErrNotFound)

				pending, err := s.PendingParts(context.Background(), "")
				require.NoError(t, err)
				assert.Len(t, pending, 4)
			},
		},
		{
			name:  "group without parts is deleted directly",
			parts: 0,
			auth:  admin,
			assert: func(t *testing.T, _ *service, d deps, err error) {
				require.NoError(t, err)
				assert.Zero(t, d.parts.Calls(listctltest.OpUpdate))
				assert.Len(t, d.groups.Docs(), 1)
			},
		},
		{
			name:  "failure mid-sequence keeps the group and earlier unassigns",
			parts: 3,
			auth:  admin,
			setup: func(d deps) {
				d.parts.FailAt(listctltest.OpUpdate, 2, errBoom)
			},
			assert: func(t *testing.T, _ *service, d deps, err error) {
				require.Error(t, err)
				assert.ErrorIs(t, err, model.ErrWriteFailed)
				assert.ErrorIs(t, err, errBoom)

				assert.Zero(t, d.groups.Calls(listctltest.OpDelete))
				assert.Len(t, d.groups.Docs(), 2)

				pending := 0
				for _, p := range d.parts.Docs() {
					if p.Pending() {
						pending++
					}
				}
				assert.Equal(t, 1, pending)
			},
		},
		{
			name:  "edit access cannot delete",
			parts: 2,
			auth: model.AuthorizationContext{
				GroupID:     "store",
				Permissions: map[model.Resource]model.Access{model.ResourcePartGroupMaster: model.AccessEdit},
			},
			assert: func(t *testing.T, _ *service, d deps, err error) {
				require.ErrorIs(t, err, model.ErrPermissionDenied)
				assert.Zero(t, d.parts.Writes())
				assert.Zero(t, d.groups.Writes())
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, d := newService(seedGroups, bearingParts(tt.parts))
			if tt.setup != nil {
				tt.setup(d)
			}

			err := s.Delete(context.Background(), tt.auth, "g-bear")
			tt.assert(t, s, d, err)
		})
	}
}

func TestServiceDeleteUnknownGroup(t *testing.T) {
	t.Parallel()

	s, d := newService(seedGroups, bearingParts(2))
	err := s.Delete(context.Background(), admin, "g-none")
	require.ErrorIs(t, err, model.ErrNotFound)
	assert.Zero(t, d.parts.Writes())
}

func TestServiceAssignParts(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, d := newService(seedGroups, []model.Part{
		{ID: "p1", SAPNumber: "SP-SEAL-35X52", Name: "Oil Seal 35x52"},
		{ID: "p2", SAPNumber: "SP-FUSE-10A", Name: "Fuse 10A"},
		{ID: "p3", SAPNumber: "SP-BELT-A42", Name: "V-Belt", MaterialGroupID: "g-belt"},
	})

	pending, err := s.PendingParts(ctx, "seal")
	require.NoError(t, err)
	require.Len(t, pending, 1)
	assert.Equal(t, "p1", pending[0].ID)

	require.ErrorIs(t, s.AssignParts(ctx, admin, "g-bear", nil), model.ErrValidation)
	require.ErrorIs(t, s.AssignParts(ctx, admin, "g-none", []string{"p1"}), model.ErrNotFound)
	require.ErrorIs(t, s.AssignParts(ctx, admin, "g-bear", []string{"p9"}), model.ErrNotFound)
	assert.Zero(t, d.parts.Writes())

	require.NoError(t, s.AssignParts(ctx, admin, "g-bear", []string{"p1", "p2"}))

	pending, err = s.PendingParts(ctx, "")
	require.NoError(t, err)
	assert.Empty(t, pending)
	assert.Equal(t, 2, d.parts.Writes())
}
