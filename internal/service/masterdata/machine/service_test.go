package machine

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl/listctltest"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

var admin = model.AuthorizationContext{UserID: "u-1", GroupID: "a"}

func newService(seed ...model.Machine) (*service, *listctltest.MemStore[model.Machine]) {
	store := listctltest.NewMemStore(seed...)
	ctl := listctl.New[model.Machine](store, Schema(), listctl.Options{PageSize: 50})
	return NewMachineService(ctl), store
}

var seed = []model.Machine{
	{ID: "m1", Name: "Lathe 1", Model: "CK6140", SerialNumber: "SN-1001", Location: "Bay A", Status: model.StatusActive},
	{ID: "m2", Name: "Press 2", Model: "HP-200", SerialNumber: "SN-2002", Location: "Bay B", Status: model.StatusInactive},
	{ID: "m3", Name: "Lathe 3", Model: "CK6150", SerialNumber: "SN-3003", Location: "Bay A", Status: model.StatusActive},
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		draft   model.Machine
		wantErr error
	}{
		{name: "valid", draft: model.Machine{Name: "Mill 4", SerialNumber: "SN-4004"}},
		{name: "duplicate name", draft: model.Machine{Name: "lathe 1", SerialNumber: "SN-9999"}, wantErr: model.ErrDuplicateKey},
		{name: "duplicate serial", draft: model.Machine{Name: "Mill 4", SerialNumber: "sn-2002"}, wantErr: model.ErrDuplicateKey},
		{name: "missing serial", draft: model.Machine{Name: "Mill 4"}, wantErr: model.ErrValidation},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, store := newService(seed...)
			id, err := s.Create(context.Background(), admin, tt.draft)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, store.Writes())
				return
			}

			require.NoError(t, err)
			m, err := s.Get(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, model.StatusActive, m.Status)
		})
	}
}

func TestServiceFilter(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newService(seed...)

	ids := func(ms []model.Machine) []string {
		out := make([]string, 0, len(ms))
		for _, m := range ms {
			out = append(out, m.ID)
		}
		return out
	}

	got, err := s.Filter(ctx, "lathe", "")
	require.NoError(t, err)
	assert.Equal(t, []string{"m1", "m3"}, ids(got))

	got, err = s.Filter(ctx, "bay", model.StatusInactive)
	require.NoError(t, err)
	assert.Equal(t, []string{"m2"}, ids(got))

	_, err = s.Filter(ctx, "", "Broken")
	assert.ErrorIs(t, err, model.ErrValidation)
}
