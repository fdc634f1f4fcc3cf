package model

import (
	"time"

	"github.com/google/uuid"
)

type StockEventKind string

const (
	StockEventReserved StockEventKind = "reserved"
	StockEventUsed     StockEventKind = "used"
)

// StockMovedEvent is published to the notification collaborator whenever
// repair-parts fulfillment moves stock. Delivery is best effort.
type StockMovedEvent struct {
	EventID     uuid.UUID
	Kind        StockEventKind
	SparePartID uuid.UUID
	DeviceID    uuid.UUID
	Quantity    int64
	ActorID     uuid.UUID
	OccurredAt  time.Time
}
