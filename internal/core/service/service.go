package service

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/niksmo/storefront/internal/core/catalog"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
)

var _ port.CatalogBrowser = (*Service)(nil)
var _ port.CartManager = (*Service)(nil)

type Service struct {
	productSource port.ProductSource
	enricher      port.ProductEnricher
	cartStore     port.CartStore
	cartEvents    port.CartEventEmitter
	now           func() time.Time
}

// New returns a Service. A nil cartEvents disables event emission.
func New(
	productSource port.ProductSource,
	enricher port.ProductEnricher,
	cartStore port.CartStore,
	cartEvents port.CartEventEmitter,
) Service {
	if cartEvents == nil {
		cartEvents = nopEmitter{}
	}
	return Service{
		productSource: productSource,
		enricher:      enricher,
		cartStore:     cartStore,
		cartEvents:    cartEvents,
		now:           time.Now,
	}
}

func (s Service) ListProducts(
	ctx context.Context, c domain.Criteria,
) (domain.Listing, error) {
	const op = "Service.ListProducts"

	if err := ctx.Err(); err != nil {
		return domain.Listing{}, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.productSource.Products(ctx)
	if err != nil {
		return domain.Listing{}, fmt.Errorf("%s: %w", op, err)
	}

	return domain.Listing{
		Products:    catalog.Apply(s.enricher.Enrich(ps), c),
		Categories:  catalog.Categories(ps),
		Colors:      catalog.Colors,
		PriceBounds: catalog.PriceBounds(ps),
	}, nil
}

func (s Service) Product(
	ctx context.Context, id int,
) (domain.ProductDetail, error) {
	const op = "Service.Product"
	log := slog.With("op", op)

	if err := ctx.Err(); err != nil {
		return domain.ProductDetail{}, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.productSource.Product(ctx, id)
	if err != nil {
		return domain.ProductDetail{}, fmt.Errorf("%s: %w", op, err)
	}

	detail := domain.ProductDetail{
		Product:    p,
		BestSeller: catalog.IsBestSeller(p.ID),
		Related:    []domain.Product{},
		Reviews:    catalog.DemoReviews(),
	}

	sameCategory, err := s.productSource.ProductsInCategory(ctx, p.Category)
	if err != nil {
		log.Warn("failed to fetch related products", "err", err)
	} else {
		detail.Related = catalog.Related(sameCategory, p.ID)
	}

	if li, ok := s.cartStore.Read()[p.ID]; ok {
		detail.InCart = &li
	}

	return detail, nil
}

func (s Service) Categories(ctx context.Context) ([]string, error) {
	const op = "Service.Categories"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	categories, err := s.productSource.Categories(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return categories, nil
}

func (s Service) ProductsInCategory(
	ctx context.Context, category string,
) ([]domain.Product, error) {
	const op = "Service.ProductsInCategory"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	ps, err := s.productSource.ProductsInCategory(ctx, category)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}
	return ps, nil
}

type nopEmitter struct{}

func (nopEmitter) EmitCartEvent(context.Context, domain.CartEvent) error {
	return nil
}
