package middleware

import (
	"context"

	"go.uber.org/zap"

	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/kafka"
)

type DebugLogger interface {
	Debug(ctx context.Context, msg string, fields ...zap.Field)
}

func Logging(logger DebugLogger) kafka.Middleware {
	return func(next kafka.MessageHandler) kafka.MessageHandler {
		return func(ctx context.Context, msg kafka.Message) error {
			logger.Debug(ctx, "kafka message received",
				zap.String("topic", msg.Topic),
				zap.Int32("partition", msg.Partition),
				zap.Int64("offset", msg.Offset),
			)
			return next(ctx, msg)
		}
	}
}
