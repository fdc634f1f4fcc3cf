package variantstats

import (
	"fmt"
	"strings"

	"github.com/samber/lo"

	"github.com/you-humble/repair-fulfillment/internal/model"
)

// Aggregate derives the stats block for a variant set. Average price and
// the price range only consider strictly positive selling prices; when no
// variant has one, both stay zero.
func Aggregate(variants []*model.SparePartVariant) model.VariantStats {
	stats := model.VariantStats{
		TotalVariants: len(variants),
	}

	for _, v := range variants {
		stats.TotalValue += v.SellingPrice * float64(v.Quantity)

		switch {
		case v.Quantity <= 0:
			stats.OutOfStock++
		case v.Quantity <= v.MinQuantity:
			stats.InStock++
			stats.LowStock++
		default:
			stats.InStock++
		}
	}

	prices := lo.FilterMap(variants, func(v *model.SparePartVariant, _ int) (float64, bool) {
		return v.SellingPrice, v.SellingPrice > 0
	})
	if len(prices) == 0 {
		return stats
	}

	stats.AveragePrice = lo.Sum(prices) / float64(len(prices))
	stats.PriceRange = model.PriceRange{
		Min: lo.Min(prices),
		Max: lo.Max(prices),
	}

	return stats
}

// Filter narrows a variant set by a free-text query and an attribute
// filter. The query is a case-insensitive substring match on name or SKU.
// Attribute filtering is a conjunction: every requested key must exist and
// its value's string form must contain the requested value,
// case-insensitively.
func Filter(variants []*model.SparePartVariant, query string, attrs map[string]string) []*model.SparePartVariant {
	query = strings.ToLower(strings.TrimSpace(query))

	return lo.Filter(variants, func(v *model.SparePartVariant, _ int) bool {
		if query != "" &&
			!strings.Contains(strings.ToLower(v.Name), query) &&
			!strings.Contains(strings.ToLower(v.SKU), query) {
			return false
		}

		for key, want := range attrs {
			got, ok := v.Attributes[key]
			if !ok {
				return false
			}
			if !strings.Contains(
				strings.ToLower(fmt.Sprintf("%v", got)),
				strings.ToLower(want),
			) {
				return false
			}
		}

		return true
	})
}

// Rollup is the compact form of Aggregate written onto the parent spare
// part when its variant set changes.
func Rollup(variants []*model.SparePartVariant) model.VariantRollup {
	return model.VariantRollup{
		UseVariants:  len(variants) > 0,
		VariantCount: len(variants),
		TotalQuantity: lo.SumBy(variants, func(v *model.SparePartVariant) int64 {
			return v.Quantity
		}),
		TotalValue: lo.SumBy(variants, func(v *model.SparePartVariant) float64 {
			return v.SellingPrice * float64(v.Quantity)
		}),
	}
}
