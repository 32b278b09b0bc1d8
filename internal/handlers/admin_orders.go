package handlers

import (
	"net/http"
)

// ListOrders returns every submitted order, newest first. Orders are
// never mutated or deleted, so this is the whole admin order surface.
func (h *AdminHandler) ListOrders(w http.ResponseWriter, r *http.Request) {
	orders, err := h.Store.ListOrders(r.Context())
	if err != nil {
		serverError(w, "Error fetching orders", err)
		return
	}
	writeJSON(w, http.StatusOK, orders)
}
