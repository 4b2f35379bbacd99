package catalog

import (
	"math/rand/v2"
	"sync"

	"github.com/niksmo/storefront/internal/core/domain"
)

// Colors are the values a Colorizer may assign.
var Colors = []string{"Red", "Blue", "Green", "Black", "White", "Yellow"}

// A Colorizer decorates fetched products with a random color.
//
// The color is a demo attribute: the upstream API has no such field,
// and the same product may get a different color on every fetch.
type Colorizer struct {
	mu  sync.Mutex
	rnd *rand.Rand
}

// NewColorizer returns a Colorizer drawing from rnd.
// A nil rnd uses the global source.
func NewColorizer(rnd *rand.Rand) *Colorizer {
	return &Colorizer{rnd: rnd}
}

func (c *Colorizer) Enrich(ps []domain.Product) []domain.ColoredProduct {
	out := make([]domain.ColoredProduct, len(ps))
	for i, p := range ps {
		out[i] = domain.ColoredProduct{Product: p, Color: Colors[c.intN(len(Colors))]}
	}
	return out
}

func (c *Colorizer) intN(n int) int {
	if c.rnd == nil {
		return rand.IntN(n)
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.rnd.IntN(n)
}

// IsBestSeller is the demo "Best Selling" badge rule. It has no sales
// data behind it.
func IsBestSeller(productID int) bool {
	return productID%2 == 0
}

// DemoReviews returns the placeholder reviews shown on every product page.
func DemoReviews() []domain.Review {
	return []domain.Review{
		{ID: 1, Reviewer: "John Doe", Rating: 4, Comment: "Great product, highly recommended!"},
		{ID: 2, Reviewer: "Jane Smith", Rating: 5, Comment: "Excellent quality and fast shipping."},
		{ID: 3, Reviewer: "Sam Wilson", Rating: 3, Comment: "Average product, does the job."},
	}
}
