package cart

import "github.com/niksmo/storefront/internal/core/domain"

type Kind uint8

const (
	KindAdd Kind = iota + 1
	KindIncrement
	KindDecrement
	KindRemove
)

func (k Kind) String() string {
	switch k {
	case KindAdd:
		return "add"
	case KindIncrement:
		return "increment"
	case KindDecrement:
		return "decrement"
	case KindRemove:
		return "remove"
	default:
		return "unknown"
	}
}

// An Action is a cart transition request.
//
// Product is set only for KindAdd.
type Action struct {
	Kind      Kind
	ProductID int
	Product   domain.Product
}

// AddToCart snapshots p at the time the action is created.
func AddToCart(p domain.Product) Action {
	return Action{Kind: KindAdd, ProductID: p.ID, Product: p.Clone()}
}

func Increment(productID int) Action {
	return Action{Kind: KindIncrement, ProductID: productID}
}

func Decrement(productID int) Action {
	return Action{Kind: KindDecrement, ProductID: productID}
}

func RemoveFromCart(productID int) Action {
	return Action{Kind: KindRemove, ProductID: productID}
}

// Reduce returns the state that results from applying a to s.
//
// s is never modified. Actions on absent ids and unknown kinds yield
// a state equal to s.
func Reduce(s domain.CartState, a Action) domain.CartState {
	next := s.Clone()
	li, ok := next[a.ProductID]

	switch a.Kind {
	case KindAdd:
		if ok {
			li.Quantity++
			next[a.ProductID] = li
			break
		}
		next[a.ProductID] = domain.LineItem{
			Product:  a.Product.Clone(),
			Quantity: 1,
		}
	case KindIncrement:
		if ok {
			li.Quantity++
			next[a.ProductID] = li
		}
	case KindDecrement:
		if ok && li.Quantity > 1 {
			li.Quantity--
			next[a.ProductID] = li
			break
		}
		delete(next, a.ProductID)
	case KindRemove:
		delete(next, a.ProductID)
	}
	return next
}
