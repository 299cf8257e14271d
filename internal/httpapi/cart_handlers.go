package httpapi

import (
	"encoding/json"
	"net/http"
)

const msgInvalidItemID = "Invalid item id"

type addCartItemRequest struct {
	ItemID   int64 `json:"item_id"`
	Quantity int   `json:"quantity"`
}

type setCartItemRequest struct {
	Quantity int `json:"quantity"`
}

func (h *Handler) getCart(w http.ResponseWriter, r *http.Request) {
	cart, err := h.carts.GetCart(r.Context(), principalOf(r))
	if err != nil {
		h.writeError(w, r, err, "Server error while fetching cart")
		return
	}

	writeJSON(w, http.StatusOK, ok("", toCartResponse(cart, h.currency)))
}

func (h *Handler) addCartItem(w http.ResponseWriter, r *http.Request) {
	var req addCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, msgInvalidBody)
		return
	}

	cart, err := h.carts.AddItem(r.Context(), principalOf(r), req.ItemID, req.Quantity)
	if err != nil {
		h.writeError(w, r, err, "Server error while updating cart")
		return
	}

	writeJSON(w, http.StatusCreated, ok("Item added to cart", toCartResponse(cart, h.currency)))
}

func (h *Handler) setCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, valid := pathID(r, "item_id")
	if !valid {
		h.badRequest(w, msgInvalidItemID)
		return
	}

	var req setCartItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, msgInvalidBody)
		return
	}

	cart, err := h.carts.SetQuantity(r.Context(), principalOf(r), itemID, req.Quantity)
	if err != nil {
		h.writeError(w, r, err, "Server error while updating cart")
		return
	}

	writeJSON(w, http.StatusOK, ok("Cart updated", toCartResponse(cart, h.currency)))
}

func (h *Handler) removeCartItem(w http.ResponseWriter, r *http.Request) {
	itemID, valid := pathID(r, "item_id")
	if !valid {
		h.badRequest(w, msgInvalidItemID)
		return
	}

	cart, err := h.carts.RemoveItem(r.Context(), principalOf(r), itemID)
	if err != nil {
		h.writeError(w, r, err, "Server error while updating cart")
		return
	}

	writeJSON(w, http.StatusOK, ok("Item removed from cart", toCartResponse(cart, h.currency)))
}

func (h *Handler) clearCart(w http.ResponseWriter, r *http.Request) {
	if err := h.carts.Clear(r.Context(), principalOf(r)); err != nil {
		h.writeError(w, r, err, "Server error while clearing cart")
		return
	}

	writeJSON(w, http.StatusOK, ok("Cart cleared", nil))
}

func (h *Handler) checkout(w http.ResponseWriter, r *http.Request) {
	principal := principalOf(r)

	order, err := h.carts.Checkout(r.Context(), principal)
	if err != nil {
		h.writeError(w, r, err, "Server error while creating order")
		return
	}

	writeJSON(w, http.StatusCreated, ok("Order created successfully", toOrderResponse(order, principal.IsStaff())))
}
