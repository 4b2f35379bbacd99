package catalog

import (
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

// PriceBounds returns [floor(min price), ceil(max price)] over ps,
// the default price range of a listing. Empty input yields a zero range.
func PriceBounds(ps []domain.Product) domain.PriceRange {
	if len(ps) == 0 {
		return domain.PriceRange{Low: decimal.Zero, High: decimal.Zero}
	}

	lo, hi := ps[0].Price, ps[0].Price
	for _, p := range ps[1:] {
		lo = decimal.Min(lo, p.Price)
		hi = decimal.Max(hi, p.Price)
	}
	return domain.PriceRange{Low: lo.Floor(), High: hi.Ceil()}
}

// Categories returns the distinct categories of ps in first-seen order.
func Categories(ps []domain.Product) []string {
	seen := make(map[string]struct{}, len(ps))
	out := make([]string, 0)
	for _, p := range ps {
		if _, ok := seen[p.Category]; ok {
			continue
		}
		seen[p.Category] = struct{}{}
		out = append(out, p.Category)
	}
	return out
}

// Related returns the products of sameCategory except the one with currentID.
func Related(sameCategory []domain.Product, currentID int) []domain.Product {
	out := make([]domain.Product, 0, len(sameCategory))
	for _, p := range sameCategory {
		if p.ID != currentID {
			out = append(out, p)
		}
	}
	return out
}
