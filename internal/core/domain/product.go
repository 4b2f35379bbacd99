package domain

import "github.com/shopspring/decimal"

type (
	// A Product is a catalog entry as served by the upstream product API.
	Product struct {
		ID          int
		Title       string
		Price       decimal.Decimal
		Description string
		Category    string
		Image       string
		Rating      *Rating
	}

	Rating struct {
		Rate  decimal.Decimal
		Count int
	}

	// A ColoredProduct is a Product decorated with a synthetic color.
	//
	// Color is not upstream data, see catalog.Colorizer.
	ColoredProduct struct {
		Product
		Color string
	}
)

// Clone returns a deep copy of p.
func (p Product) Clone() Product {
	if p.Rating != nil {
		r := *p.Rating
		p.Rating = &r
	}
	return p
}

type Review struct {
	ID       int
	Reviewer string
	Rating   int
	Comment  string
}

type Listing struct {
	Products    []ColoredProduct
	Categories  []string
	Colors      []string
	PriceBounds PriceRange
}

type ProductDetail struct {
	Product    Product
	BestSeller bool
	Related    []Product
	Reviews    []Review
	InCart     *LineItem
}
