package domain

import (
	"fmt"

	"github.com/shopspring/decimal"
)

type SortOrder uint8

const (
	SortNone SortOrder = iota
	SortPriceAsc
	SortPriceDesc
)

func (o SortOrder) String() string {
	switch o {
	case SortPriceAsc:
		return "asc"
	case SortPriceDesc:
		return "desc"
	default:
		return ""
	}
}

// ParseSortOrder accepts "", "asc" and "desc".
func ParseSortOrder(s string) (SortOrder, error) {
	switch s {
	case "":
		return SortNone, nil
	case "asc":
		return SortPriceAsc, nil
	case "desc":
		return SortPriceDesc, nil
	}
	return SortNone, fmt.Errorf("%q: %w", s, ErrInvalidSortOrder)
}

// A PriceRange is inclusive on both bounds.
type PriceRange struct {
	Low  decimal.Decimal
	High decimal.Decimal
}

// Criteria narrows and orders a product listing.
//
// Zero values are inactive filters.
type Criteria struct {
	Category   string
	Color      string
	PriceRange *PriceRange
	MinRating  decimal.Decimal
	Sort       SortOrder
}
