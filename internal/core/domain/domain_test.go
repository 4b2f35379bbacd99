package domain_test

import (
	"math"
	"testing"

	"github.com/niksmo/storefront/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSortOrder(t *testing.T) {
	for in, want := range map[string]domain.SortOrder{
		"":     domain.SortNone,
		"asc":  domain.SortPriceAsc,
		"desc": domain.SortPriceDesc,
	} {
		got, err := domain.ParseSortOrder(in)
		require.NoError(t, err)
		assert.Equal(t, want, got)
		assert.Equal(t, in, got.String())
	}

	_, err := domain.ParseSortOrder("price")
	assert.ErrorIs(t, err, domain.ErrInvalidSortOrder)
}

func TestCartStateTotals(t *testing.T) {
	s := domain.CartState{
		1: {Product: domain.Product{ID: 1, Price: decimal.RequireFromString("109.95")}, Quantity: 2},
		2: {Product: domain.Product{ID: 2, Price: decimal.RequireFromString("0.1")}, Quantity: 3},
	}

	assert.Equal(t, 5, s.TotalQuantity())
	assert.Equal(t, "220.20", s.TotalPrice().StringFixed(2))

	var empty domain.CartState
	assert.Zero(t, empty.TotalQuantity())
	assert.True(t, empty.TotalPrice().IsZero())
}

func TestCartStateLinesAndClone(t *testing.T) {
	s := domain.CartState{
		9: {Product: domain.Product{ID: 9, Rating: &domain.Rating{Count: 1}}, Quantity: 1},
		3: {Product: domain.Product{ID: 3}, Quantity: 4},
	}

	lines := s.Lines()
	require.Len(t, lines, 2)
	assert.Equal(t, 3, lines[0].ID)
	assert.Equal(t, 9, lines[1].ID)

	c := s.Clone()
	c[9].Rating.Count = 100
	assert.Equal(t, 1, s[9].Rating.Count)

	assert.NotNil(t, domain.CartState(nil).Clone())
}

func TestCartStateLinesExtremeIDs(t *testing.T) {
	st := domain.CartState{
		math.MaxInt: {Product: domain.Product{ID: math.MaxInt}, Quantity: 1},
		0:           {Product: domain.Product{ID: 0}, Quantity: 1},
		math.MinInt: {Product: domain.Product{ID: math.MinInt}, Quantity: 1},
	}

	lines := st.Lines()
	require.Len(t, lines, 3)
	assert.Equal(t, math.MinInt, lines[0].ID)
	assert.Equal(t, 0, lines[1].ID)
	assert.Equal(t, math.MaxInt, lines[2].ID)
}
