package converter

import (
	"encoding/json"
	"fmt"

	"github.com/syazwan-nazri/AD-XPDC-sub000/internal/model"
)

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) MovementRecordedToPayload(e model.MovementRecorded) ([]byte, error) {
	payload, err := json.Marshal(e)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal movement event: %w", err)
	}
	return payload, nil
}

func (c *kafkaConverter) PayloadToMovementRecorded(data []byte) (model.MovementRecorded, error) {
	var e model.MovementRecorded
	if err := json.Unmarshal(data, &e); err != nil {
		return model.MovementRecorded{}, fmt.Errorf("failed to unmarshal movement event: %w", err)
	}
	if e.PartID == "" || e.Type == "" {
		return model.MovementRecorded{}, fmt.Errorf("movement event %q: missing part or type", e.EventID)
	}
	return e, nil
}
