package stockproducer

import (
	"context"
	"fmt"

	"github.com/you-humble/repair-fulfillment/internal/model"
	"github.com/you-humble/repair-fulfillment/platform/kafka"
)

type Converter interface {
	StockMovedToPayload(m model.StockMovedEvent) ([]byte, error)
}

type service struct {
	producer kafka.Producer
	conv     Converter
}

func NewStockProducer(producer kafka.Producer, conv Converter) *service {
	return &service{producer: producer, conv: conv}
}

// SendStockMoved publishes one stock movement, keyed by spare part so
// movements of the same part stay ordered.
func (s *service) SendStockMoved(ctx context.Context, event model.StockMovedEvent) error {
	payload, err := s.conv.StockMovedToPayload(event)
	if err != nil {
		return fmt.Errorf("converter stock_moved_to_payload error: %w", err)
	}

	if err := s.producer.Send(ctx, event.SparePartID[:], payload); err != nil {
		return fmt.Errorf("producer to stock events topic error: %w", err)
	}

	return nil
}
