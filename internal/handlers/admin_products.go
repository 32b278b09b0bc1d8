package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/kevinjame2233/Carryluxe-Full1/internal/models"
	"github.com/kevinjame2233/Carryluxe-Full1/internal/store"
)

// Catalog limits carried over from the storefront contract.
const (
	maxCatalogSize  = 50
	maxImages       = 10
	maxUploadFiles  = 5
	maxUploadSize   = 5 << 20 // per file
	maxMultipartMem = 32 << 20
)

// productPayload is a partial product: nil fields were not supplied
// and must not overwrite existing values on update. It is filled
// either from a JSON body or from a multipart form with image files.
type productPayload struct {
	Brand       *string  `json:"brand"`
	Name        *string  `json:"name"`
	Price       *float64 `json:"price"`
	Currency    *string  `json:"currency"`
	Description *string  `json:"description"`
	Status      *string  `json:"status"`
	Stock       *int     `json:"stock"`
	// Additional external image URLs (create).
	ImageURLs []string `json:"imageUrls"`
	// Images to keep on update; anything omitted is removed.
	ExistingImages *[]string `json:"existingImages"`

	// URLs of freshly uploaded files, already offloaded to the media
	// host or local disk.
	uploaded []string
}

func (h *AdminHandler) ListProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.Store.ListProducts(r.Context(), store.ProductQuery{})
	if err != nil {
		serverError(w, "Error fetching admin products", err)
		return
	}
	writeJSON(w, http.StatusOK, products)
}

func (h *AdminHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	payload, ok := h.parseProductPayload(w, r)
	if !ok {
		return
	}
	if payload.Brand == nil || *payload.Brand == "" || payload.Name == nil || *payload.Name == "" {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}
	if !validPayload(w, payload) {
		return
	}

	// The cap applies to the whole catalog regardless of backend.
	count, err := h.Store.CountProducts(r.Context())
	if err != nil {
		serverError(w, "Error saving product", err)
		return
	}
	if count >= maxCatalogSize {
		writeError(w, http.StatusBadRequest, "Product limit reached (50)")
		return
	}

	product := &models.Product{
		ID:       store.NewID(),
		Brand:    *payload.Brand,
		Name:     *payload.Name,
		Currency: models.DefaultCurrency,
		Status:   models.StatusActive,
		Images:   capImages(append(payload.uploaded, payload.ImageURLs...)),
	}
	if payload.Price != nil {
		product.Price = *payload.Price
	}
	if payload.Currency != nil && *payload.Currency != "" {
		product.Currency = *payload.Currency
	}
	if payload.Description != nil {
		product.Description = *payload.Description
	}
	if payload.Status != nil && *payload.Status != "" {
		product.Status = *payload.Status
	}
	if payload.Stock != nil {
		product.Stock = *payload.Stock
	}
	product.CreatedAt = time.Now()

	if err := h.Store.PutProduct(r.Context(), product); err != nil {
		serverError(w, "Error saving product", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "product": product})
}

func (h *AdminHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}

	payload, ok := h.parseProductPayload(w, r)
	if !ok {
		return
	}
	if !validPayload(w, payload) {
		return
	}

	product, err := h.Store.GetProduct(r.Context(), id)
	if errors.Is(err, store.ErrNotFound) {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if err != nil {
		serverError(w, "Error updating product", err)
		return
	}

	// Partial merge: untouched fields keep their stored values.
	if payload.Brand != nil {
		product.Brand = *payload.Brand
	}
	if payload.Name != nil {
		product.Name = *payload.Name
	}
	if payload.Price != nil {
		product.Price = *payload.Price
	}
	if payload.Currency != nil {
		product.Currency = *payload.Currency
	}
	if payload.Description != nil {
		product.Description = *payload.Description
	}
	if payload.Status != nil {
		product.Status = *payload.Status
	}
	if payload.Stock != nil {
		product.Stock = *payload.Stock
	}

	// The image list becomes the explicitly kept entries plus any new
	// uploads. Supplying existingImages without an old entry removes
	// that image.
	images := product.Images
	if payload.ExistingImages != nil {
		images = *payload.ExistingImages
	}
	product.Images = capImages(append(images, payload.uploaded...))

	if err := h.Store.PutProduct(r.Context(), product); err != nil {
		serverError(w, "Error updating product", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true, "product": product})
}

// DeleteProduct removes a product. Unknown ids still report success so
// retries stay harmless.
func (h *AdminHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.ParseInt(r.PathValue("id"), 10, 64)
	if err != nil {
		writeError(w, http.StatusNotFound, "Not found")
		return
	}
	if err := h.Store.DeleteProduct(r.Context(), id); err != nil {
		serverError(w, "Error deleting product", err)
		return
	}
	writeJSON(w, http.StatusOK, map[string]any{"success": true})
}

func validPayload(w http.ResponseWriter, p *productPayload) bool {
	if p.Price != nil && *p.Price < 0 {
		writeError(w, http.StatusBadRequest, "Invalid price")
		return false
	}
	if p.Stock != nil && *p.Stock < 0 {
		writeError(w, http.StatusBadRequest, "Invalid stock")
		return false
	}
	if p.Status != nil && *p.Status != "" &&
		*p.Status != models.StatusActive && *p.Status != models.StatusHidden {
		writeError(w, http.StatusBadRequest, "Invalid status")
		return false
	}
	return true
}

func capImages(images []string) []string {
	if images == nil {
		return []string{}
	}
	if len(images) > maxImages {
		return images[:maxImages]
	}
	return images
}

// parseImageURLs accepts either a JSON array or a comma separated
// string, which is how the admin UI has always sent extra URLs.
func parseImageURLs(raw string) []string {
	var urls []string
	if err := json.Unmarshal([]byte(raw), &urls); err == nil {
		return urls
	}
	for _, s := range strings.Split(raw, ",") {
		if s = strings.TrimSpace(s); s != "" {
			urls = append(urls, s)
		}
	}
	return urls
}
