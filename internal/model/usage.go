package model

import (
	"time"

	"github.com/google/uuid"
)

// UsageRecord is an immutable stock-ledger fact: N units of a spare part
// were consumed for a device repair by an actor. Records are only ever
// appended, never updated or deleted.
type UsageRecord struct {
	ID          uuid.UUID
	SparePartID uuid.UUID
	Quantity    int64
	DeviceID    uuid.UUID
	Reason      string
	Notes       string
	UsedBy      uuid.UUID
	CreatedAt   time.Time
}
