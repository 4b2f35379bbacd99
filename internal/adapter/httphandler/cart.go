package httphandler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/niksmo/storefront/internal/core/port"
)

// GET v1/cart
// POST v1/cart/items JSON {"product_id": int}
// POST v1/cart/items/{id}/increment
// POST v1/cart/items/{id}/decrement
// DELETE v1/cart/items/{id}
// POST v1/cart/checkout
//
// Actions on ids missing from the cart are no-ops and answer 200.

type CartHandler struct {
	manager port.CartManager
}

func RegisterCart(mux *http.ServeMux, manager port.CartManager) {
	h := CartHandler{manager}
	mux.HandleFunc("GET /v1/cart", h.GetCart)
	mux.HandleFunc("POST /v1/cart/items", h.PostItem)
	mux.HandleFunc("POST /v1/cart/items/{id}/increment", h.PostIncrement)
	mux.HandleFunc("POST /v1/cart/items/{id}/decrement", h.PostDecrement)
	mux.HandleFunc("DELETE /v1/cart/items/{id}", h.DeleteItem)
	mux.HandleFunc("POST /v1/cart/checkout", h.PostCheckout)
}

func (h CartHandler) GetCart(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, fromCart(h.manager.Cart(r.Context())))
}

func (h CartHandler) PostItem(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostItem"
	log := slog.With("op", op)

	var req AddItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON data")
		log.Warn("failed to parse JSON", "err", err)
		return
	}
	if req.ProductID <= 0 {
		writeError(w, http.StatusBadRequest, "invalid product id")
		return
	}

	st, err := h.manager.AddToCart(r.Context(), req.ProductID)
	if err != nil {
		writeServiceError(w, log, err)
		return
	}

	writeJSON(w, http.StatusOK, fromCart(st))
	log.Info("added to cart", "productID", req.ProductID)
}

func (h CartHandler) PostIncrement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fromCart(h.manager.Increment(r.Context(), id)))
}

func (h CartHandler) PostDecrement(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fromCart(h.manager.Decrement(r.Context(), id)))
}

func (h CartHandler) DeleteItem(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	writeJSON(w, http.StatusOK, fromCart(h.manager.RemoveFromCart(r.Context(), id)))
}

func (h CartHandler) PostCheckout(w http.ResponseWriter, r *http.Request) {
	const op = "CartHandler.PostCheckout"
	log := slog.With("op", op)

	receipt := h.manager.Checkout(r.Context())

	writeJSON(w, http.StatusOK, Receipt{
		Shipped: fromLines(receipt.Shipped),
		Total:   receipt.Total,
	})
	log.Info("checked out", "nLines", len(receipt.Shipped))
}
