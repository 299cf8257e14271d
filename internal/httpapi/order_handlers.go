package httpapi

import (
	"bytes"
	"encoding/json"
	"net/http"

	"github.com/google/uuid"
	"github.com/nikolayk812/canteen/internal/domain"
)

const (
	msgInvalidBody    = "Invalid request body"
	msgNoItems        = "Please provide items array with at least one item"
	msgIncompleteLine = "Each item must have item_id and quantity"
	msgInvalidOrderID = "Invalid order id"
)

type createOrderRequest struct {
	Items json.RawMessage `json:"items"`
}

type lineRequest struct {
	ItemID   *int64 `json:"item_id"`
	Quantity *int   `json:"quantity"`
}

type setStatusRequest struct {
	Status string `json:"status"`
}

// decodeLines accepts only a JSON array of {item_id, quantity}; absent fields are
// left zero so the pricing validation reports them.
func decodeLines(raw json.RawMessage) ([]domain.LineRequest, string) {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 || raw[0] != '[' {
		return nil, msgNoItems
	}

	var reqs []lineRequest
	if err := json.Unmarshal(raw, &reqs); err != nil {
		return nil, msgIncompleteLine
	}

	lines := make([]domain.LineRequest, 0, len(reqs))
	for _, req := range reqs {
		var line domain.LineRequest
		if req.ItemID != nil {
			line.ItemID = *req.ItemID
		}
		if req.Quantity != nil {
			line.Quantity = *req.Quantity
		}
		lines = append(lines, line)
	}

	return lines, ""
}

func (h *Handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var req createOrderRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, msgInvalidBody)
		return
	}

	lines, msg := decodeLines(req.Items)
	if msg != "" {
		h.badRequest(w, msg)
		return
	}

	principal := principalOf(r)

	order, err := h.orders.CreateOrder(r.Context(), principal, lines)
	if err != nil {
		h.writeError(w, r, err, "Server error while creating order")
		return
	}

	writeJSON(w, http.StatusCreated, ok("Order created successfully", toOrderResponse(order, principal.IsStaff())))
}

func (h *Handler) listMyOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListMine(r.Context(), principalOf(r))
	if err != nil {
		h.writeError(w, r, err, "Server error while fetching orders")
		return
	}

	writeJSON(w, http.StatusOK, list(toOrderResponses(orders, false)))
}

func (h *Handler) listAllOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.orders.ListAll(r.Context(), principalOf(r), r.URL.Query().Get("status"))
	if err != nil {
		h.writeError(w, r, err, "Server error while fetching orders")
		return
	}

	writeJSON(w, http.StatusOK, list(toOrderResponses(orders, true)))
}

func (h *Handler) getOrder(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.badRequest(w, msgInvalidOrderID)
		return
	}

	principal := principalOf(r)

	order, err := h.orders.GetOrder(r.Context(), principal, orderID)
	if err != nil {
		h.writeError(w, r, err, "Server error while fetching order")
		return
	}

	writeJSON(w, http.StatusOK, ok("", toOrderResponse(order, principal.IsStaff())))
}

func (h *Handler) setOrderStatus(w http.ResponseWriter, r *http.Request) {
	orderID, err := uuid.Parse(r.PathValue("id"))
	if err != nil {
		h.badRequest(w, msgInvalidOrderID)
		return
	}

	var req setStatusRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, msgInvalidBody)
		return
	}

	order, err := h.orders.SetStatus(r.Context(), principalOf(r), orderID, req.Status)
	if err != nil {
		h.writeError(w, r, err, "Server error while updating order status")
		return
	}

	writeJSON(w, http.StatusOK, ok("Order status updated successfully", toOrderResponse(order, true)))
}
