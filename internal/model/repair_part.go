package model

import (
	"time"

	"github.com/google/uuid"
)

type RepairPartStatus string

const (
	StatusNeeded   RepairPartStatus = "needed"
	StatusOrdered  RepairPartStatus = "ordered"
	StatusAccepted RepairPartStatus = "accepted"
	StatusReceived RepairPartStatus = "received"
	StatusUsed     RepairPartStatus = "used"
)

// KnownStatus reports whether s is part of the declared status domain.
func KnownStatus(s RepairPartStatus) bool {
	switch s {
	case StatusNeeded, StatusOrdered, StatusAccepted, StatusReceived, StatusUsed:
		return true
	default:
		return false
	}
}

// ReadyStatus reports whether a repair part in status s counts towards
// device readiness.
func ReadyStatus(s RepairPartStatus) bool {
	return s == StatusAccepted || s == StatusReceived || s == StatusUsed
}

// RepairPart reserves a quantity of one spare part (optionally one of its
// variants) against one device repair job.
type RepairPart struct {
	ID uuid.UUID
	// Opaque device/job reference. Existence is not validated here.
	DeviceID    uuid.UUID
	SparePartID uuid.UUID
	VariantID   *uuid.UUID

	QuantityNeeded int64
	QuantityUsed   int64
	CostPerUnit    float64
	// Always quantity needed times cost per unit.
	TotalCost float64

	Status RepairPartStatus
	Notes  string

	CreatedBy uuid.UUID
	UpdatedBy uuid.UUID
	CreatedAt time.Time
	UpdatedAt time.Time
}

// SparePartSummary is the joined spare-part view attached to repair parts
// for display.
type SparePartSummary struct {
	ID           uuid.UUID
	Name         string
	PartNumber   string
	Quantity     int64
	MinQuantity  int64
	CostPrice    float64
	SellingPrice float64
	IsActive     bool
	CategoryName *string
	SupplierName *string
}

type VariantSummary struct {
	ID           uuid.UUID
	Name         string
	SKU          string
	Quantity     int64
	SellingPrice float64
}

type RepairPartDetails struct {
	RepairPart
	SparePart SparePartSummary
	Variant   *VariantSummary
}

type CreateRepairPartParams struct {
	DeviceID       uuid.UUID
	SparePartID    uuid.UUID
	VariantID      *uuid.UUID
	QuantityNeeded int64
	CostPerUnit    float64
	Notes          string
}

// AuxOutcome records one auxiliary step (stock decrement, ledger append,
// event publish) performed after the primary rows were created. A failed
// step never fails the operation; it is surfaced here instead.
type AuxOutcome struct {
	Step        string     `json:"step"`
	SparePartID uuid.UUID  `json:"sparePartId"`
	RepairPart  *uuid.UUID `json:"repairPartId,omitempty"`
	Err         error      `json:"-"`
	Message     string     `json:"error,omitempty"`
}

const (
	AuxStepStockDecrement = "stock_decrement"
	AuxStepUsageRecord    = "usage_record"
	AuxStepStockEvent     = "stock_event"
)

type CreateRepairPartsResult struct {
	Parts []*RepairPart
	Aux   []AuxOutcome
}

// StatusUpdate is a bulk mutation applied to a set of repair parts.
type StatusUpdate struct {
	Status    RepairPartStatus
	UpdatedBy uuid.UUID
	// Overwrites notes when non-nil.
	Notes *string
	// Overwrites quantity_used when non-nil.
	QuantityUsed *int64
}

// Readiness is the derived all-parts-ready signal for one device.
// A device with zero reserved parts is never ready: "no parts needed" is
// indistinguishable from "not yet assessed".
type Readiness struct {
	Ready      bool   `json:"ready"`
	TotalParts int    `json:"totalParts"`
	ReadyParts int    `json:"readyParts"`
	Message    string `json:"message"`
}

type RepairPartsStats struct {
	TotalParts         int     `json:"totalParts"`
	TotalCost          float64 `json:"totalCost"`
	PartsNeeded        int     `json:"partsNeeded"`
	PartsOrdered       int     `json:"partsOrdered"`
	PartsAccepted      int     `json:"partsAccepted"`
	PartsReceived      int     `json:"partsReceived"`
	PartsUsed          int     `json:"partsUsed"`
	ProgressPercentage int     `json:"progressPercentage"`
}
