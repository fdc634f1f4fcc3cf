package http

import (
	"time"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/you-humble/repair-fulfillment/internal/model"
)

type adjustRequest struct {
	Delta int64 `json:"delta"`
}

type adjustResponse struct {
	Quantity int64 `json:"quantity"`
}

type variantItem struct {
	Name         string         `json:"name"`
	SKU          string         `json:"sku"`
	CostPrice    float64        `json:"costPrice"`
	SellingPrice float64        `json:"sellingPrice"`
	Quantity     int64          `json:"quantity"`
	MinQuantity  int64          `json:"minQuantity"`
	Attributes   map[string]any `json:"attributes,omitempty"`
	ImageURL     *string        `json:"imageUrl,omitempty"`
}

type replaceVariantsRequest struct {
	Variants []variantItem `json:"variants"`
}

type sparePartDTO struct {
	ID           uuid.UUID      `json:"id"`
	Name         string         `json:"name"`
	PartNumber   string         `json:"partNumber"`
	CostPrice    float64        `json:"costPrice"`
	SellingPrice float64        `json:"sellingPrice"`
	Quantity     int64          `json:"quantity"`
	MinQuantity  int64          `json:"minQuantity"`
	IsActive     bool           `json:"isActive"`
	CategoryID   *uuid.UUID     `json:"categoryId,omitempty"`
	SupplierID   *uuid.UUID     `json:"supplierId,omitempty"`
	Metadata     map[string]any `json:"metadata,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

type variantDTO struct {
	ID           uuid.UUID      `json:"id"`
	SparePartID  uuid.UUID      `json:"sparePartId"`
	Name         string         `json:"name"`
	SKU          string         `json:"sku"`
	CostPrice    float64        `json:"costPrice"`
	SellingPrice float64        `json:"sellingPrice"`
	Quantity     int64          `json:"quantity"`
	MinQuantity  int64          `json:"minQuantity"`
	Attributes   map[string]any `json:"attributes,omitempty"`
	ImageURL     *string        `json:"imageUrl,omitempty"`
	CreatedAt    time.Time      `json:"createdAt"`
	UpdatedAt    time.Time      `json:"updatedAt"`
}

func toVariantModels(items []variantItem) []*model.SparePartVariant {
	return lo.Map(items, func(it variantItem, _ int) *model.SparePartVariant {
		return &model.SparePartVariant{
			Name:         it.Name,
			SKU:          it.SKU,
			CostPrice:    it.CostPrice,
			SellingPrice: it.SellingPrice,
			Quantity:     it.Quantity,
			MinQuantity:  it.MinQuantity,
			Attributes:   it.Attributes,
			ImageURL:     it.ImageURL,
		}
	})
}

func toSparePartDTO(sp *model.SparePart) sparePartDTO {
	return sparePartDTO{
		ID:           sp.ID,
		Name:         sp.Name,
		PartNumber:   sp.PartNumber,
		CostPrice:    sp.CostPrice,
		SellingPrice: sp.SellingPrice,
		Quantity:     sp.Quantity,
		MinQuantity:  sp.MinQuantity,
		IsActive:     sp.IsActive,
		CategoryID:   sp.CategoryID,
		SupplierID:   sp.SupplierID,
		Metadata:     sp.Metadata,
		CreatedAt:    sp.CreatedAt,
		UpdatedAt:    sp.UpdatedAt,
	}
}

func toVariantDTOs(variants []*model.SparePartVariant) []variantDTO {
	return lo.Map(variants, func(v *model.SparePartVariant, _ int) variantDTO {
		return variantDTO{
			ID:           v.ID,
			SparePartID:  v.SparePartID,
			Name:         v.Name,
			SKU:          v.SKU,
			CostPrice:    v.CostPrice,
			SellingPrice: v.SellingPrice,
			Quantity:     v.Quantity,
			MinQuantity:  v.MinQuantity,
			Attributes:   v.Attributes,
			ImageURL:     v.ImageURL,
			CreatedAt:    v.CreatedAt,
			UpdatedAt:    v.UpdatedAt,
		}
	})
}
