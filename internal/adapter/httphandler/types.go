package httphandler

import (
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

type (
	Product struct {
		ID          int             `json:"id"`
		Title       string          `json:"title"`
		Price       decimal.Decimal `json:"price"`
		Description string          `json:"description"`
		Category    string          `json:"category"`
		Image       string          `json:"image"`
		Rating      *Rating         `json:"rating,omitempty"`
	}

	Rating struct {
		Rate  decimal.Decimal `json:"rate"`
		Count int             `json:"count"`
	}

	// Color is synthetic demo data, it is not part of the upstream product.
	ListedProduct struct {
		Product
		Color      string `json:"color"`
		BestSeller bool   `json:"best_seller"`
	}

	PriceRange struct {
		Min decimal.Decimal `json:"min"`
		Max decimal.Decimal `json:"max"`
	}

	Listing struct {
		Products    []ListedProduct `json:"products"`
		Categories  []string        `json:"categories"`
		Colors      []string        `json:"colors"`
		PriceBounds PriceRange      `json:"price_bounds"`
		Error       string          `json:"error,omitempty"`
	}

	Review struct {
		ID       int    `json:"id"`
		Reviewer string `json:"reviewer"`
		Rating   int    `json:"rating"`
		Comment  string `json:"comment"`
	}

	ProductDetail struct {
		Product
		BestSeller bool      `json:"best_seller"`
		Related    []Product `json:"related"`
		Reviews    []Review  `json:"reviews"`
		InCart     int       `json:"in_cart"`
	}

	CartLine struct {
		Product
		Quantity int             `json:"quantity"`
		Subtotal decimal.Decimal `json:"subtotal"`
	}

	Cart struct {
		Items         []CartLine      `json:"items"`
		TotalQuantity int             `json:"total_quantity"`
		TotalPrice    decimal.Decimal `json:"total_price"`
	}

	Receipt struct {
		Shipped []CartLine      `json:"shipped"`
		Total   decimal.Decimal `json:"total"`
	}

	AddItemRequest struct {
		ProductID int `json:"product_id"`
	}

	ErrorResponse struct {
		Error string `json:"error"`
	}
)

func fromProduct(p domain.Product) Product {
	v := Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
	}
	if p.Rating != nil {
		v.Rating = &Rating{Rate: p.Rating.Rate, Count: p.Rating.Count}
	}
	return v
}

func fromProducts(ps []domain.Product) []Product {
	out := make([]Product, len(ps))
	for i, p := range ps {
		out[i] = fromProduct(p)
	}
	return out
}

func fromLines(lines []domain.LineItem) []CartLine {
	out := make([]CartLine, len(lines))
	for i, li := range lines {
		out[i] = CartLine{
			Product:  fromProduct(li.Product),
			Quantity: li.Quantity,
			Subtotal: li.Subtotal(),
		}
	}
	return out
}

func fromCart(s domain.CartState) Cart {
	return Cart{
		Items:         fromLines(s.Lines()),
		TotalQuantity: s.TotalQuantity(),
		TotalPrice:    s.TotalPrice(),
	}
}
