package converter

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

func TestPayloadToMovementRecorded(t *testing.T) {
	t.Parallel()

	c := NewKafkaConverter()

	tests := []struct {
		name    string
		data    []byte
		want    model.MovementRecorded
		wantErr bool
	}{
		{
			name: "valid",
			data: []byte(`{"eventId":"e1","movementId":"m1","type":"OUT","partId":"p1","sapNumber":"SP-BELT-A42","quantity":3,"stockAfter":2,"safetyLevel":5,"occurredAt":"2024-03-14T10:30:00Z"}`),
			want: model.MovementRecorded{
				EventID: "e1", MovementID: "m1", Type: model.MovementOut, PartID: "p1", SAPNumber: "SP-BELT-A42",
				Quantity: 3, StockAfter: 2, SafetyLevel: 5, OccurredAt: time.Date(2024, 3, 14, 10, 30, 0, 0, time.UTC),
			},
		},
		{name: "not json", data: []byte("\x08\x01"), wantErr: true},
		{name: "missing part", data: []byte(`{"eventId":"e2","type":"IN"}`), wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got, err := c.PayloadToMovementRecorded(tt.data)
			if tt.wantErr {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}
