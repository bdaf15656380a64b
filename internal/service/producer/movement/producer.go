package movproducer

import (
	"context"
	"fmt"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
	"github.com/syazwan-nazri/AD-XPDC-sub000/platform/kafka"
)

type Converter interface {
	MovementRecordedToPayload(e model.MovementRecorded) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewMovementProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// PublishMovement keys the record by part id so events of one part stay
// ordered within a partition.
func (s *service) PublishMovement(ctx context.Context, event model.MovementRecorded) error {
	payload, err := s.conv.MovementRecordedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter movement_recorded_to_payload error: %w", err)
	}

	if err := s.producer.Send(ctx, []byte(event.PartID), payload); err != nil {
		return fmt.Errorf("producer to movement topic error: %w", err)
	}

	return nil
}
