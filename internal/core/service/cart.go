package service

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/niksmo/storefront/internal/core/cart"
	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
)

func (s Service) Cart(context.Context) domain.CartState {
	return s.cartStore.Read()
}

// AddToCart fetches the product and adds its snapshot to the cart.
func (s Service) AddToCart(
	ctx context.Context, productID int,
) (domain.CartState, error) {
	const op = "Service.AddToCart"

	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	p, err := s.productSource.Product(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", op, err)
	}

	return s.dispatch(ctx, cart.AddToCart(p)), nil
}

func (s Service) Increment(ctx context.Context, productID int) domain.CartState {
	return s.dispatch(ctx, cart.Increment(productID))
}

func (s Service) Decrement(ctx context.Context, productID int) domain.CartState {
	return s.dispatch(ctx, cart.Decrement(productID))
}

func (s Service) RemoveFromCart(
	ctx context.Context, productID int,
) domain.CartState {
	return s.dispatch(ctx, cart.RemoveFromCart(productID))
}

// Checkout ships every line: each one is reported in the receipt and
// removed from the cart. Nothing is persisted.
//
// A line is reported as it was at the moment of its removal, so units
// added while checkout runs are shipped rather than dropped.
func (s Service) Checkout(ctx context.Context) domain.Receipt {
	const op = "Service.Checkout"
	log := slog.With("op", op)

	receipt := domain.Receipt{Shipped: []domain.LineItem{}, Total: decimal.Zero}

	for _, pending := range s.cartStore.Read().Lines() {
		prev, _ := s.transition(ctx, cart.RemoveFromCart(pending.ID))
		li, ok := prev[pending.ID]
		if !ok {
			continue
		}
		receipt.Shipped = append(receipt.Shipped, li)
		receipt.Total = receipt.Total.Add(li.Subtotal())
		log.Info("shipped", "productID", li.ID, "title", li.Title, "quantity", li.Quantity)
	}

	return receipt
}

func (s Service) dispatch(ctx context.Context, a cart.Action) domain.CartState {
	_, next := s.transition(ctx, a)
	return next
}

// transition applies a and emits an event when the line changed.
func (s Service) transition(
	ctx context.Context, a cart.Action,
) (prev, next domain.CartState) {
	const op = "Service.transition"
	log := slog.With("op", op)

	prev, next = s.cartStore.Transition(a)

	before, wasIn := prev[a.ProductID]
	after, isIn := next[a.ProductID]
	if wasIn == isIn && before.Quantity == after.Quantity {
		log.Debug("no-op cart action", "action", a.Kind.String(), "productID", a.ProductID)
		return prev, next
	}

	li := after
	if !isIn {
		li = before
		li.Quantity = 0
	}

	evt := domain.CartEvent{
		Action:        a.Kind.String(),
		ProductID:     li.ID,
		Title:         li.Title,
		Price:         li.Price,
		Quantity:      li.Quantity,
		TotalQuantity: next.TotalQuantity(),
		OccurredAt:    s.now(),
	}

	if err := s.cartEvents.EmitCartEvent(ctx, evt); err != nil {
		log.Error("failed to emit cart event", "err", err, "productID", li.ID)
	}
	return prev, next
}
