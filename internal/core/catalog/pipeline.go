// Package catalog holds the pure transformations over product listings:
// the filter/sort pipeline, listing aggregates and the synthetic enrichment
// used by the storefront demo.
package catalog

import (
	"slices"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Apply returns the products that satisfy every active filter in c,
// ordered by c.Sort. The input slice is left untouched.
//
// Price bounds are not validated: an inverted range simply matches nothing.
func Apply(
	ps []domain.ColoredProduct, c domain.Criteria,
) []domain.ColoredProduct {
	out := make([]domain.ColoredProduct, 0, len(ps))
	for _, p := range ps {
		if matches(p, c) {
			out = append(out, p)
		}
	}

	switch c.Sort {
	case domain.SortPriceAsc:
		slices.SortStableFunc(out, func(a, b domain.ColoredProduct) int {
			return a.Price.Cmp(b.Price)
		})
	case domain.SortPriceDesc:
		slices.SortStableFunc(out, func(a, b domain.ColoredProduct) int {
			return b.Price.Cmp(a.Price)
		})
	}
	return out
}

func matches(p domain.ColoredProduct, c domain.Criteria) bool {
	if c.Category != "" && p.Category != c.Category {
		return false
	}
	if c.Color != "" && p.Color != c.Color {
		return false
	}
	if r := c.PriceRange; r != nil {
		if p.Price.LessThan(r.Low) || p.Price.GreaterThan(r.High) {
			return false
		}
	}
	// unrated products are never excluded by rating
	if p.Rating != nil && p.Rating.Rate.LessThan(c.MinRating) {
		return false
	}
	return true
}
