package model

import (
	"time"

	"github.com/google/uuid"
)

// Metadata keys of the derived variant rollup stored on a spare part.
const (
	MetaUseVariants   = "useVariants"
	MetaVariantCount  = "variantCount"
	MetaTotalQuantity = "totalQuantity"
	MetaTotalValue    = "totalValue"
)

type SparePart struct {
	// Globally unique identifier of the spare part.
	ID uuid.UUID
	// Human-readable part name.
	Name string
	// Manufacturer or internal part number.
	PartNumber string
	// Purchase cost per unit.
	CostPrice float64
	// Selling price per unit.
	SellingPrice float64
	// Units currently on hand. Never negative.
	Quantity int64
	// Reorder threshold; at or below this the part counts as low stock.
	MinQuantity int64
	// Inactive parts are hidden from search but stay referenceable.
	IsActive bool
	// Optional references into the categories/suppliers tables.
	CategoryID *uuid.UUID
	SupplierID *uuid.UUID
	// Free-form key-value metadata. When the part uses variants this carries
	// the derived rollup block (useVariants, variantCount, totalQuantity,
	// totalValue) kept in sync by ReplaceVariants.
	Metadata map[string]any

	CreatedAt time.Time
	UpdatedAt time.Time
}

type SparePartVariant struct {
	ID uuid.UUID
	// Owning spare part.
	SparePartID uuid.UUID
	// Variant display name, e.g. "Black / 128GB".
	Name string
	// Globally unique stock keeping unit.
	SKU          string
	CostPrice    float64
	SellingPrice float64
	Quantity     int64
	MinQuantity  int64
	// Distinguishing attributes, e.g. {"color": "black", "capacity": "128GB"}.
	Attributes map[string]any
	ImageURL   *string

	CreatedAt time.Time
	UpdatedAt time.Time
}

// VariantRollup is the derived state written onto the parent spare part
// whenever its variant set is replaced.
type VariantRollup struct {
	UseVariants   bool
	VariantCount  int
	TotalQuantity int64
	TotalValue    float64
}

// VariantStats is the aggregate view over a spare part's variants.
type VariantStats struct {
	TotalVariants int     `json:"totalVariants"`
	TotalValue    float64 `json:"totalValue"`
	InStock       int     `json:"inStockVariants"`
	OutOfStock    int     `json:"outOfStockVariants"`
	LowStock      int     `json:"lowStockVariants"`
	// Mean of strictly positive selling prices; zero when none.
	AveragePrice float64    `json:"averagePrice"`
	PriceRange   PriceRange `json:"priceRange"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}
