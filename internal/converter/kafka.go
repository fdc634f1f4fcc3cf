package converter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/you-humble/repair-fulfillment/internal/model"
)

// stockMovedRecord is the wire form of a stock movement event. JSON keeps
// the consumer contract language-neutral.
type stockMovedRecord struct {
	EventID     string    `json:"eventId"`
	Kind        string    `json:"kind"`
	SparePartID string    `json:"sparePartId"`
	DeviceID    string    `json:"deviceId"`
	Quantity    int64     `json:"quantity"`
	ActorID     string    `json:"actorId"`
	OccurredAt  time.Time `json:"occurredAt"`
}

type kafkaConverter struct{}

func NewKafkaConverter() *kafkaConverter { return &kafkaConverter{} }

func (c *kafkaConverter) StockMovedToPayload(m model.StockMovedEvent) ([]byte, error) {
	rec := stockMovedRecord{
		EventID:     m.EventID.String(),
		Kind:        string(m.Kind),
		SparePartID: m.SparePartID.String(),
		DeviceID:    m.DeviceID.String(),
		Quantity:    m.Quantity,
		ActorID:     m.ActorID.String(),
		OccurredAt:  m.OccurredAt,
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal stock moved record: %w", err)
	}

	return payload, nil
}
