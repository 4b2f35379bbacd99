package domain

import (
	"cmp"
	"slices"
	"time"

	"github.com/shopspring/decimal"
)

// A LineItem is a cart entry: a product snapshot and its quantity.
//
// Quantity is always >= 1, a line that would drop to zero is removed.
type LineItem struct {
	Product
	Quantity int
}

func (li LineItem) Subtotal() decimal.Decimal {
	return li.Price.Mul(decimal.NewFromInt(int64(li.Quantity)))
}

// A CartState maps product id to its line item.
type CartState map[int]LineItem

// Clone returns a copy of s that shares nothing with it. Never returns nil.
func (s CartState) Clone() CartState {
	c := make(CartState, len(s))
	for id, li := range s {
		li.Product = li.Product.Clone()
		c[id] = li
	}
	return c
}

// TotalQuantity is recomputed on every call.
func (s CartState) TotalQuantity() int {
	var n int
	for _, li := range s {
		n += li.Quantity
	}
	return n
}

// TotalPrice is recomputed on every call.
func (s CartState) TotalPrice() decimal.Decimal {
	total := decimal.Zero
	for _, li := range s {
		total = total.Add(li.Subtotal())
	}
	return total
}

// Lines returns the line items ordered by product id.
func (s CartState) Lines() []LineItem {
	lines := make([]LineItem, 0, len(s))
	for _, li := range s {
		lines = append(lines, li)
	}
	slices.SortFunc(lines, func(a, b LineItem) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return lines
}

// A CartEvent describes one applied cart transition.
//
// Quantity is the resulting quantity of the line, 0 when the line is gone.
type CartEvent struct {
	Action        string
	ProductID     int
	Title         string
	Price         decimal.Decimal
	Quantity      int
	TotalQuantity int
	OccurredAt    time.Time
}

type Receipt struct {
	Shipped []LineItem
	Total   decimal.Decimal
}
