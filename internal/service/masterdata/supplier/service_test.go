package supplier

import (
	"context"
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/listctl/listctltest"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

var admin = model.AuthorizationContext{UserID: "u-1", GroupID: "a"}

func newService(seed ...model.Supplier) (*service, *listctltest.MemStore[model.Supplier]) {
	store := listctltest.NewMemStore(seed...)
	ctl := listctl.New[model.Supplier](store, Schema(), listctl.Options{PageSize: 50})
	return NewSupplierService(ctl), store
}

func TestServiceCreate(t *testing.T) {
	t.Parallel()

	ctx := context.Background()
	s, store := newService(model.Supplier{ID: "s1", Name: "SKF Malaysia"})

	id, err := s.Create(ctx, admin, model.Supplier{Name: gofakeit.Company(), Email: gofakeit.Email()})
	require.NoError(t, err)

	sup, err := s.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, model.DefaultCountry, sup.Country)

	_, err = s.Create(ctx, admin, model.Supplier{Name: "skf malaysia"})
	assert.ErrorIs(t, err, model.ErrDuplicateKey)

	_, err = s.Create(ctx, admin, model.Supplier{Name: "  "})
	assert.ErrorIs(t, err, model.ErrValidation)

	assert.Equal(t, 1, store.Writes())
}

func TestDraftCompose(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name        string
		draft       Draft
		wantAddress string
		wantCountry string
	}{
		{
			name: "joins non-empty parts",
			draft: Draft{
				Supplier: model.Supplier{Name: "Gates"},
				AddressParts: &model.SupplierAddress{
					HouseNo: "12", Street: "Jalan Industri 3", PostalCode: "47100", State: "Selangor", Country: "Malaysia",
				},
			},
			wantAddress: "12, Jalan Industri 3, 47100, Selangor, Malaysia",
			wantCountry: "Malaysia",
		},
		{
			name: "address country overrides",
			draft: Draft{
				Supplier:     model.Supplier{Name: "NSK", Country: "Malaysia"},
				AddressParts: &model.SupplierAddress{Street: "Chuo-ku", Country: "Japan"},
			},
			wantAddress: "Chuo-ku, Japan",
			wantCountry: "Japan",
		},
		{
			name:        "no parts keeps the free-form address",
			draft:       Draft{Supplier: model.Supplier{Name: "Local", Address: "Lot 5, Shah Alam"}},
			wantAddress: "Lot 5, Shah Alam",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := tt.draft.Compose()
			assert.Equal(t, tt.wantAddress, got.Address)
			assert.Equal(t, tt.wantCountry, got.Country)
		})
	}
}
