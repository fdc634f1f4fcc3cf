package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/repair-fulfillment/internal/model"
)

type createItem struct {
	DeviceID       uuid.UUID  `json:"deviceId"`
	SparePartID    uuid.UUID  `json:"sparePartId"`
	VariantID      *uuid.UUID `json:"variantId,omitempty"`
	QuantityNeeded int64      `json:"quantityNeeded"`
	CostPerUnit    float64    `json:"costPerUnit"`
	Notes          string     `json:"notes,omitempty"`
}

type createRequest struct {
	Items []createItem `json:"items"`
}

type idsRequest struct {
	IDs []uuid.UUID `json:"ids"`
}

type rejectRequest struct {
	IDs    []uuid.UUID `json:"ids"`
	Reason string      `json:"reason"`
}

type repairPartDTO struct {
	ID             uuid.UUID  `json:"id"`
	DeviceID       uuid.UUID  `json:"deviceId"`
	SparePartID    uuid.UUID  `json:"sparePartId"`
	VariantID      *uuid.UUID `json:"variantId,omitempty"`
	QuantityNeeded int64      `json:"quantityNeeded"`
	QuantityUsed   int64      `json:"quantityUsed"`
	CostPerUnit    float64    `json:"costPerUnit"`
	TotalCost      float64    `json:"totalCost"`
	Status         string     `json:"status"`
	Notes          string     `json:"notes,omitempty"`
	CreatedBy      uuid.UUID  `json:"createdBy"`
	UpdatedBy      uuid.UUID  `json:"updatedBy"`
	CreatedAt      time.Time  `json:"createdAt"`
	UpdatedAt      time.Time  `json:"updatedAt"`
}

type sparePartSummaryDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	PartNumber   string    `json:"partNumber"`
	Quantity     int64     `json:"quantity"`
	MinQuantity  int64     `json:"minQuantity"`
	CostPrice    float64   `json:"costPrice"`
	SellingPrice float64   `json:"sellingPrice"`
	IsActive     bool      `json:"isActive"`
	CategoryName *string   `json:"categoryName,omitempty"`
	SupplierName *string   `json:"supplierName,omitempty"`
}

type variantSummaryDTO struct {
	ID           uuid.UUID `json:"id"`
	Name         string    `json:"name"`
	SKU          string    `json:"sku"`
	Quantity     int64     `json:"quantity"`
	SellingPrice float64   `json:"sellingPrice"`
}

type detailsDTO struct {
	repairPartDTO
	SparePart sparePartSummaryDTO `json:"sparePart"`
	Variant   *variantSummaryDTO  `json:"variant,omitempty"`
}

type createResponse struct {
	Parts []repairPartDTO    `json:"parts"`
	Aux   []model.AuxOutcome `json:"aux,omitempty"`
}

type updatedResponse struct {
	Parts   []repairPartDTO `json:"parts"`
	Updated int             `json:"updated"`
}

type useResponse struct {
	Part repairPartDTO      `json:"part"`
	Aux  []model.AuxOutcome `json:"aux,omitempty"`
}

func toCreateParams(items []createItem) []model.CreateRepairPartParams {
	return lo.Map(items, func(it createItem, _ int) model.CreateRepairPartParams {
		return model.CreateRepairPartParams{
			DeviceID:       it.DeviceID,
			SparePartID:    it.SparePartID,
			VariantID:      it.VariantID,
			QuantityNeeded: it.QuantityNeeded,
			CostPerUnit:    it.CostPerUnit,
			Notes:          it.Notes,
		}
	})
}

func toUpdatedResponse(parts []*model.RepairPart) updatedResponse {
	return updatedResponse{
		Parts: lo.Map(parts, func(p *model.RepairPart, _ int) repairPartDTO {
			return toRepairPartDTO(p)
		}),
		Updated: len(parts),
	}
}

func toRepairPartDTO(p *model.RepairPart) repairPartDTO {
	return repairPartDTO{
		ID:             p.ID,
		DeviceID:       p.DeviceID,
		SparePartID:    p.SparePartID,
		VariantID:      p.VariantID,
		QuantityNeeded: p.QuantityNeeded,
		QuantityUsed:   p.QuantityUsed,
		CostPerUnit:    p.CostPerUnit,
		TotalCost:      p.TotalCost,
		Status:         string(p.Status),
		Notes:          p.Notes,
		CreatedBy:      p.CreatedBy,
		UpdatedBy:      p.UpdatedBy,
		CreatedAt:      p.CreatedAt,
		UpdatedAt:      p.UpdatedAt,
	}
}

func toDetailsDTO(d *model.RepairPartDetails) detailsDTO {
	out := detailsDTO{
		repairPartDTO: toRepairPartDTO(&d.RepairPart),
		SparePart: sparePartSummaryDTO{
			ID:           d.SparePart.ID,
			Name:         d.SparePart.Name,
			PartNumber:   d.SparePart.PartNumber,
			Quantity:     d.SparePart.Quantity,
			MinQuantity:  d.SparePart.MinQuantity,
			CostPrice:    d.SparePart.CostPrice,
			SellingPrice: d.SparePart.SellingPrice,
			IsActive:     d.SparePart.IsActive,
			CategoryName: d.SparePart.CategoryName,
			SupplierName: d.SparePart.SupplierName,
		},
	}

	if d.Variant != nil {
		out.Variant = &variantSummaryDTO{
			ID:           d.Variant.ID,
			Name:         d.Variant.Name,
			SKU:          d.Variant.SKU,
			Quantity:     d.Variant.Quantity,
			SellingPrice: d.Variant.SellingPrice,
		}
	}

	return out
}
