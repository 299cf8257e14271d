package httpapi

import (
	"encoding/json"
	"net/http"
	"strconv"

	"github.com/nikolayk812/canteen/internal/domain"
	"github.com/shopspring/decimal"
	"golang.org/x/text/currency"
)

const msgInvalidMenuItemID = "Invalid menu item id"

type addMenuItemRequest struct {
	Name        string           `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Currency    string           `json:"currency"`
	Category    string           `json:"category"`
	Image       *string          `json:"image"`
	Available   *bool            `json:"available"`
}

type updateMenuItemRequest struct {
	Name        *string          `json:"name"`
	Description *string          `json:"description"`
	Price       *decimal.Decimal `json:"price"`
	Category    *string          `json:"category"`
	Image       *string          `json:"image"`
	Available   *bool            `json:"available"`
}

func pathID(r *http.Request, name string) (int64, bool) {
	id, err := strconv.ParseInt(r.PathValue(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func (h *Handler) listMenu(w http.ResponseWriter, r *http.Request) {
	var filter domain.MenuFilter

	query := r.URL.Query()
	if category := query.Get("category"); category != "" {
		filter.Category = &category
	}
	if raw := query.Get("available"); raw != "" {
		available, err := strconv.ParseBool(raw)
		if err != nil {
			h.badRequest(w, "available must be true or false")
			return
		}
		filter.Available = &available
	}

	items, err := h.menu.ListMenu(r.Context(), filter)
	if err != nil {
		h.writeError(w, r, err, "Server error while fetching menu items")
		return
	}

	resp := make([]menuItemResponse, 0, len(items))
	for _, item := range items {
		resp = append(resp, toMenuItemResponse(item))
	}

	writeJSON(w, http.StatusOK, list(resp))
}

func (h *Handler) getMenuItem(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(r, "id")
	if !valid {
		h.badRequest(w, msgInvalidMenuItemID)
		return
	}

	item, err := h.menu.GetMenuItem(r.Context(), id)
	if err != nil {
		h.writeError(w, r, err, "Server error while fetching menu item")
		return
	}

	writeJSON(w, http.StatusOK, ok("", toMenuItemResponse(item)))
}

func (h *Handler) addMenuItem(w http.ResponseWriter, r *http.Request) {
	var req addMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, msgInvalidBody)
		return
	}

	item := domain.MenuItem{
		Name:        req.Name,
		Description: req.Description,
		Category:    req.Category,
		Image:       req.Image,
		Available:   req.Available == nil || *req.Available,
	}
	if req.Price != nil {
		item.Price.Amount = *req.Price
	}
	if req.Currency != "" {
		unit, err := currency.ParseISO(req.Currency)
		if err != nil {
			h.badRequest(w, "Invalid currency")
			return
		}
		item.Price.Currency = unit
	}

	added, err := h.menu.AddMenuItem(r.Context(), principalOf(r), item)
	if err != nil {
		h.writeError(w, r, err, "Server error while adding menu item")
		return
	}

	writeJSON(w, http.StatusCreated, ok("Menu item added successfully", toMenuItemResponse(added)))
}

func (h *Handler) updateMenuItem(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(r, "id")
	if !valid {
		h.badRequest(w, msgInvalidMenuItemID)
		return
	}

	var req updateMenuItemRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.badRequest(w, msgInvalidBody)
		return
	}

	updated, err := h.menu.UpdateMenuItem(r.Context(), principalOf(r), id, domain.MenuItemUpdate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
		Category:    req.Category,
		Image:       req.Image,
		Available:   req.Available,
	})
	if err != nil {
		h.writeError(w, r, err, "Server error while updating menu item")
		return
	}

	writeJSON(w, http.StatusOK, ok("Menu item updated successfully", toMenuItemResponse(updated)))
}

func (h *Handler) deleteMenuItem(w http.ResponseWriter, r *http.Request) {
	id, valid := pathID(r, "id")
	if !valid {
		h.badRequest(w, msgInvalidMenuItemID)
		return
	}

	if err := h.menu.DeleteMenuItem(r.Context(), principalOf(r), id); err != nil {
		h.writeError(w, r, err, "Server error while deleting menu item")
		return
	}

	writeJSON(w, http.StatusOK, ok("Menu item deleted successfully", nil))
}
