package movconsumer

import (
	"context"
	"fmt"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/metrics"
	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/kafka"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/logger"
)

type Converter interface {
	PayloadToMovementRecorded(data []byte) (model.MovementRecorded, error)
}

type service struct {
	consumer kafka.Consumer
	conv     Converter
}

func NewMovementConsumer(consumer kafka.Consumer, conv Converter) *service {
	return &service{consumer: consumer, conv: conv}
}

func (s *service) RunLowStockConsume(ctx context.Context) error {
	logger.Info(ctx, "Starting low stock consumer")

	if err := s.consumer.Consume(ctx, s.movementHandler); err != nil {
		logger.Error(ctx, "Consume from movement topic error", logger.ErrorF(err))
		return err
	}

	return nil
}

// movementHandler raises a low-stock alert when an issue or a stock-take
// adjustment leaves a part below its safety level.
func (s *service) movementHandler(ctx context.Context, msg kafka.Message) error {
	event, err := s.conv.PayloadToMovementRecorded(msg.Value)
	if err != nil {
		logger.Error(ctx, "Failed to decode MovementRecorded", logger.ErrorF(err))
		return fmt.Errorf("converter payload_to_movement_recorded error: %w", err)
	}

	if !lowersStock(event.Type) || event.SafetyLevel <= 0 {
		return nil
	}

	level := model.ClassifyStock(event.StockAfter, event.SafetyLevel)
	if level != model.StockCritical {
		return nil
	}

	metrics.LowStockAlerts.WithLabelValues(string(level)).Inc()
	logger.Warn(ctx, "low stock alert",
		logger.String("part_id", event.PartID),
		logger.String("sap_number", event.SAPNumber),
		logger.String("part_name", event.PartName),
		logger.Int64("stock", event.StockAfter),
		logger.Int64("safety_level", event.SafetyLevel),
		logger.String("movement_id", event.MovementID),
	)

	return nil
}

func lowersStock(t model.MovementType) bool {
	return t == model.MovementOut || t == model.MovementStockTake
}
