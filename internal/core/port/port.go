package port

import (
	"context"

	"github.com/niksmo/storefront/internal/core/cart"
	"github.com/niksmo/storefront/internal/core/domain"
)

type CatalogBrowser interface {
	ListProducts(context.Context, domain.Criteria) (domain.Listing, error)
	Product(ctx context.Context, id int) (domain.ProductDetail, error)
	Categories(context.Context) ([]string, error)
	ProductsInCategory(ctx context.Context, category string) ([]domain.Product, error)
}

type CartManager interface {
	Cart(context.Context) domain.CartState
	AddToCart(ctx context.Context, productID int) (domain.CartState, error)
	Increment(ctx context.Context, productID int) domain.CartState
	Decrement(ctx context.Context, productID int) domain.CartState
	RemoveFromCart(ctx context.Context, productID int) domain.CartState
	Checkout(context.Context) domain.Receipt
}

// A ProductSource is the read-only upstream product API.
type ProductSource interface {
	Products(context.Context) ([]domain.Product, error)
	Product(ctx context.Context, id int) (domain.Product, error)
	Categories(context.Context) ([]string, error)
	ProductsInCategory(ctx context.Context, category string) ([]domain.Product, error)
}

type ProductEnricher interface {
	Enrich([]domain.Product) []domain.ColoredProduct
}

type CartStore interface {
	Transition(cart.Action) (prev, next domain.CartState)
	Read() domain.CartState
}

type CartEventEmitter interface {
	EmitCartEvent(context.Context, domain.CartEvent) error
}
