package middleware

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/kafka"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

func TestRecovery(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		handler kafka.MessageHandler
		wantErr string
	}{
		{
			name: "panic becomes error",
			handler: func(context.Context, kafka.Message) error {
				panic("bad payload")
			},
			wantErr: "kafka handler panic: bad payload",
		},
		{
			name: "handler error passes through",
			handler: func(context.Context, kafka.Message) error {
				return errors.New("decode failed")
			},
			wantErr: "decode failed",
		},
		{
			name: "success",
			handler: func(context.Context, kafka.Message) error {
				return nil
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			h := Logging(logger.NoopLogger{})(Recovery(logger.NoopLogger{})(tt.handler))
			err := h(context.Background(), kafka.Message{Topic: "warehouse.movements"})
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr)
		})
	}
}
