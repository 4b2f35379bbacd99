package fakestore

import (
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

type (
	product struct {
		ID          int             `json:"id"`
		Title       string          `json:"title"`
		Price       decimal.Decimal `json:"price"`
		Description string          `json:"description"`
		Category    string          `json:"category"`
		Image       string          `json:"image"`
		Rating      *rating         `json:"rating,omitempty"`
	}

	// rate arrives as a JSON number or a quoted decimal,
	// decimal.Decimal accepts both.
	rating struct {
		Rate  decimal.Decimal `json:"rate"`
		Count int             `json:"count"`
	}
)

func (p product) toDomain() domain.Product {
	v := domain.Product{
		ID:          p.ID,
		Title:       p.Title,
		Price:       p.Price,
		Description: p.Description,
		Category:    p.Category,
		Image:       p.Image,
	}
	if p.Rating != nil {
		v.Rating = &domain.Rating{Rate: p.Rating.Rate, Count: p.Rating.Count}
	}
	return v
}

func toDomain(ps []product) []domain.Product {
	out := make([]domain.Product, len(ps))
	for i, p := range ps {
		out[i] = p.toDomain()
	}
	return out
}
