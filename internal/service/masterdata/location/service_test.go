package location

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl/listctltest"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/service/masterdata/warehouse"
)

var admin = model.AuthorizationContext{UserID: "u-1", GroupID: "a"}

type fixture struct {
	svc       *service
	locations *listctltest.MemStore[model.WarehouseLocation]
}

func newFixture(warehouses []model.Warehouse, locations ...model.WarehouseLocation) fixture {
	whCtl := listctl.New[model.Warehouse](listctltest.NewMemStore(warehouses...), warehouse.Schema(), listctl.Options{})
	store := listctltest.NewMemStore(locations...)
	ctl := listctl.New[model.WarehouseLocation](store, Schema(whCtl), listctl.Options{PageSize: 50})
	return fixture{svc: NewLocationService(ctl, whCtl), locations: store}
}

func TestServiceCreateCapacity(t *testing.T) {
	t.Parallel()

	warehouses := []model.Warehouse{
		{ID: "w1", WarehouseID: "WH-001", Code: "KL1", Name: "Kuala Lumpur", Capacity: 100},
		{ID: "w2", WarehouseID: "WH-002", Code: "PNG", Name: "Penang"},
	}
	used := model.WarehouseLocation{ID: "l1", WarehouseID: "w1", LocationID: "A01", LocationName: "Aisle 1", Capacity: 60}

	tests := []struct {
		name   string
		draft  model.WarehouseLocation
		assert func(t *testing.T, f fixture, err error)
	}{
		{
			name:  "over remaining capacity",
			draft: model.WarehouseLocation{WarehouseID: "w1", LocationID: "A02", LocationName: "Aisle 2", Capacity: 50},
			assert: func(t *testing.T, f fixture, err error) {
				require.ErrorIs(t, err, model.ErrCapacityExceeded)
				assert.Contains(t, err.Error(), "max allowed 40")
				assert.Zero(t, f.locations.Writes())
			},
		},
		{
			name:  "exactly the remaining capacity",
			draft: model.WarehouseLocation{WarehouseID: "w1", LocationID: "A02", LocationName: "Aisle 2", Capacity: 40},
			assert: func(t *testing.T, f fixture, err error) {
				require.NoError(t, err)
				assert.Equal(t, 1, f.locations.Writes())

				c, err := f.svc.RemainingCapacity(context.Background(), "w1", "")
				require.NoError(t, err)
				assert.Equal(t, Capacity{Total: 100, Used: 100, Remaining: 0}, c)
			},
		},
		{
			name:  "warehouse without capacity is unlimited",
			draft: model.WarehouseLocation{WarehouseID: "w2", LocationID: "B01", LocationName: "Bay 1", Capacity: 5000},
			assert: func(t *testing.T, _ fixture, err error) {
				require.NoError(t, err)
			},
		},
		{
			name:  "unknown warehouse",
			draft: model.WarehouseLocation{WarehouseID: "w9", LocationID: "A02", LocationName: "Aisle 2"},
			assert: func(t *testing.T, f fixture, err error) {
				assert.ErrorIs(t, err, model.ErrNotFound)
				assert.Zero(t, f.locations.Writes())
			},
		},
		{
			name:  "location id is unique within a warehouse",
			draft: model.WarehouseLocation{WarehouseID: "w1", LocationID: "a01", LocationName: "Aisle 1 again"},
			assert: func(t *testing.T, _ fixture, err error) {
				assert.ErrorIs(t, err, model.ErrDuplicateKey)
			},
		},
		{
			name:  "same location id in another warehouse",
			draft: model.WarehouseLocation{WarehouseID: "w2", LocationID: "A01", LocationName: "Aisle 1"},
			assert: func(t *testing.T, _ fixture, err error) {
				require.NoError(t, err)
			},
		},
		{
			name:  "negative capacity",
			draft: model.WarehouseLocation{WarehouseID: "w1", LocationID: "A03", LocationName: "Aisle 3", Capacity: -5},
			assert: func(t *testing.T, _ fixture, err error) {
				assert.ErrorIs(t, err, model.ErrValidation)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			f := newFixture(warehouses, used)
			_, err := f.svc.Create(context.Background(), admin, tt.draft)
			tt.assert(t, f, err)
		})
	}
}

func TestServiceUpdateExcludesOwnCapacity(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	f := newFixture(
		[]model.Warehouse{{ID: "w1", Code: "KL1", Name: "Kuala Lumpur", Capacity: 100}},
		model.WarehouseLocation{ID: "l1", WarehouseID: "w1", LocationID: "A01", LocationName: "Aisle 1", Capacity: 60},
		model.WarehouseLocation{ID: "l2", WarehouseID: "w1", LocationID: "A02", LocationName: "Aisle 2", Capacity: 30},
	)

	c, err := f.svc.RemainingCapacity(ctx, "w1", "l1")
	require.NoError(t, err)
	assert.Equal(t, float64(70), c.Remaining)

	require.NoError(t, f.svc.Update(ctx, admin, "l1", model.WarehouseLocation{
		WarehouseID: "w1", LocationID: "A01", LocationName: "Aisle 1", Capacity: 70,
	}))

	err = f.svc.Update(ctx, admin, "l2", model.WarehouseLocation{
		WarehouseID: "w1", LocationID: "A02", LocationName: "Aisle 2", Capacity: 31,
	})
	require.ErrorIs(t, err, model.ErrCapacityExceeded)
	assert.Contains(t, err.Error(), "max allowed 30")

	byWh, err := f.svc.ByWarehouse(ctx, "w1")
	require.NoError(t, err)
	assert.Len(t, byWh, 2)
}
