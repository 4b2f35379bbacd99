package httphandler

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"net/url"

	"github.com/niksmo/storefront/internal/core/catalog"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/niksmo/storefront/internal/core/port"
	"github.com/shopspring/decimal"
)

// GET v1/products?category=&color=&min_price=&max_price=&min_rating=&sort=asc|desc
// GET v1/products/{id}
// GET v1/categories
// GET v1/categories/{category}/products

type CatalogHandler struct {
	browser port.CatalogBrowser
}

func RegisterCatalog(mux *http.ServeMux, browser port.CatalogBrowser) {
	h := CatalogHandler{browser}
	mux.HandleFunc("GET /v1/products", h.GetProducts)
	mux.HandleFunc("GET /v1/products/{id}", h.GetProduct)
	mux.HandleFunc("GET /v1/categories", h.GetCategories)
	mux.HandleFunc("GET /v1/categories/{category}/products", h.GetCategoryProducts)
}

func (h CatalogHandler) GetProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProducts"
	log := slog.With("op", op)

	c, err := criteriaFromQuery(r.URL.Query())
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		log.Warn("invalid criteria", "err", err)
		return
	}

	listing, err := h.browser.ListProducts(r.Context(), c)
	if err != nil {
		if errors.Is(err, domain.ErrUpstream) {
			log.Error("product source failure", "err", err)
			writeJSON(w, http.StatusBadGateway, Listing{
				Products:   []ListedProduct{},
				Categories: []string{},
				Colors:     catalog.Colors,
				Error:      "product source unavailable",
			})
			return
		}
		writeServiceError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, toListing(listing))
	log.Debug("listed", "nProducts", len(listing.Products))
}

func (h CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetProduct"
	log := slog.With("op", op)

	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	detail, err := h.browser.Product(r.Context(), id)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	v := ProductDetail{
		Product:    fromProduct(detail.Product),
		BestSeller: detail.BestSeller,
		Related:    fromProducts(detail.Related),
		Reviews:    make([]Review, len(detail.Reviews)),
	}
	for i, rv := range detail.Reviews {
		v.Reviews[i] = Review(rv)
	}
	if detail.InCart != nil {
		v.InCart = detail.InCart.Quantity
	}

	writeJSON(w, http.StatusOK, v)
}

func (h CatalogHandler) GetCategories(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCategories"
	log := slog.With("op", op)

	cs, err := h.browser.Categories(r.Context())
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, cs)
}

func (h CatalogHandler) GetCategoryProducts(w http.ResponseWriter, r *http.Request) {
	const op = "CatalogHandler.GetCategoryProducts"
	log := slog.With("op", op)

	category := r.PathValue("category")
	ps, err := h.browser.ProductsInCategory(r.Context(), category)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}
	writeJSON(w, http.StatusOK, fromProducts(ps))
}

func toListing(l domain.Listing) Listing {
	v := Listing{
		Products:   make([]ListedProduct, len(l.Products)),
		Categories: l.Categories,
		Colors:     l.Colors,
		PriceBounds: PriceRange{
			Min: l.PriceBounds.Low,
			Max: l.PriceBounds.High,
		},
	}
	for i, p := range l.Products {
		v.Products[i] = ListedProduct{
			Product:    fromProduct(p.Product),
			Color:      p.Color,
			BestSeller: catalog.IsBestSeller(p.ID),
		}
	}
	return v
}

// criteriaFromQuery builds criteria from query params. The price filter
// is active only when both bounds are given.
func criteriaFromQuery(q url.Values) (domain.Criteria, error) {
	var (
		c    domain.Criteria
		errs []error
	)

	c.Category = q.Get("category")
	c.Color = q.Get("color")

	sort, err := domain.ParseSortOrder(q.Get("sort"))
	if err != nil {
		errs = append(errs, fmt.Errorf("sort: %w", err))
	}
	c.Sort = sort

	minPrice, minErr := decimalParam(q, "min_price")
	maxPrice, maxErr := decimalParam(q, "max_price")
	errs = append(errs, minErr, maxErr)

	switch {
	case minPrice != nil && maxPrice != nil:
		c.PriceRange = &domain.PriceRange{Low: *minPrice, High: *maxPrice}
	case minPrice != nil || maxPrice != nil:
		errs = append(errs, errors.New("min_price and max_price must be set together"))
	}

	minRating, err := decimalParam(q, "min_rating")
	errs = append(errs, err)
	if minRating != nil {
		if minRating.IsNegative() || minRating.GreaterThan(decimal.NewFromInt(5)) {
			errs = append(errs, errors.New("min_rating: must be within [0, 5]"))
		}
		c.MinRating = *minRating
	}

	return c, errors.Join(errs...)
}

func decimalParam(q url.Values, name string) (*decimal.Decimal, error) {
	raw := q.Get(name)
	if raw == "" {
		return nil, nil
	}
	d, err := decimal.NewFromString(raw)
	if err != nil {
		return nil, fmt.Errorf("%s: invalid decimal %q", name, raw)
	}
	return &d, nil
}
