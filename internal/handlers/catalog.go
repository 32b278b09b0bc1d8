package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/kevinjame2233/Carryluxe-Full1/internal/store"
)

// CatalogHandler serves the public product listing.
type CatalogHandler struct {
	Store store.Store
}

func (h *CatalogHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.ListProducts(r.Context(), store.ProductQuery{
		ActiveOnly: true,
		Brand:      r.URL.Query().Get("brand"),
	})
	if err != nil {
		serverError(w, "Error fetching products", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *CatalogHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	// Direct links are looked up without a status filter, so a hidden
	// product still resolves here even though the listing omits it.
	product, err := h.Store.GetProduct(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		serverError(w, "Error fetching product", err)
		return
	}
	writeJSON(w, http.StatusOK, product)
}
