package storagebin

import (
	"bytes"
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl/listctltest"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

var admin = model.AuthorizationContext{UserID: "u-1", GroupID: "a"}

func newService(seed ...model.StorageBin) (*service, *listctltest.MemStore[model.StorageBin]) {
	store := listctltest.NewMemStore(seed...)
	ctl := listctl.New[model.StorageBin](store, Schema(), listctl.Options{PageSize: 50})
	return NewStorageBinService(ctl), store
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		draft   model.StorageBin
		wantErr error
	}{
		{name: "valid", draft: model.StorageBin{BinID: "bear", RackNumber: "01", RackLevel: "a"}},
		{name: "bin id with digit", draft: model.StorageBin{BinID: "BEA1", RackNumber: "01", RackLevel: "A"}, wantErr: model.ErrValidation},
		{name: "bin id too long", draft: model.StorageBin{BinID: "TOOLONG", RackNumber: "01", RackLevel: "A"}, wantErr: model.ErrValidation},
		{name: "single digit rack", draft: model.StorageBin{BinID: "BEAR", RackNumber: "1", RackLevel: "A"}, wantErr: model.ErrValidation},
		{name: "three digit rack", draft: model.StorageBin{BinID: "BEAR", RackNumber: "001", RackLevel: "A"}, wantErr: model.ErrValidation},
		{name: "level E", draft: model.StorageBin{BinID: "BEAR", RackNumber: "01", RackLevel: "E"}, wantErr: model.ErrValidation},
		{name: "duplicate bin", draft: model.StorageBin{BinID: "Belt", RackNumber: "02", RackLevel: "B"}, wantErr: model.ErrDuplicateKey},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			s, store := newService(model.StorageBin{ID: "b1", BinID: "BELT", RackNumber: "02", RackLevel: "A"})
			id, err := s.Create(context.Background(), admin, tt.draft)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				assert.Zero(t, store.Writes())
				return
			}

			require.NoError(t, err)
			b, err := s.Get(context.Background(), id)
			require.NoError(t, err)
			assert.Equal(t, "BEAR", b.BinID)
			assert.Equal(t, "01-A", b.Location())
		})
	}
}

func TestServiceLabels(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, _ := newService(
		model.StorageBin{ID: "b1", BinID: "BELT", MaterialGroup: "BELTS", RackNumber: "02", RackLevel: "A"},
		model.StorageBin{ID: "b2", BinID: "BEAR", MaterialGroup: "BEARINGS", RackNumber: "01", RackLevel: "C"},
	)

	var all bytes.Buffer
	require.NoError(t, s.Labels(ctx, &all, nil))
	assert.True(t, bytes.HasPrefix(all.Bytes(), []byte("%PDF")))

	var one bytes.Buffer
	require.NoError(t, s.Labels(ctx, &one, []string{"b2"}))
	assert.NotZero(t, one.Len())

	assert.ErrorIs(t, s.Labels(ctx, &bytes.Buffer{}, []string{"b9"}), model.ErrNotFound)

	empty, _ := newService()
	assert.ErrorIs(t, empty.Labels(ctx, &bytes.Buffer{}, nil), model.ErrValidation)
}
