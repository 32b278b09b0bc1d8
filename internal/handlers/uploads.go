package handlers

import (
	"io"
	"log/slog"
	"mime/multipart"
	"net/http"
	"strconv"
	"strings"
)

// parseProductPayload reads a product create/update request. Plain
// JSON bodies decode directly; multipart forms additionally carry
// image files which are offloaded to the media uploader here, so the
// rest of the handler only ever sees URLs. Responds with the error
// itself when parsing fails.
func (h *AdminHandler) parseProductPayload(w http.ResponseWriter, r *http.Request) (*productPayload, bool) {
	if !strings.HasPrefix(r.Header.Get("Content-Type"), "multipart/form-data") {
		var payload productPayload
		if !decodeJSON(w, r, &payload) {
			return nil, false
		}
		return &payload, true
	}

	if err := r.ParseMultipartForm(maxMultipartMem); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid form data")
		return nil, false
	}

	payload := &productPayload{}
	form := r.MultipartForm

	stringField := func(name string) *string {
		if vals, ok := form.Value[name]; ok && len(vals) > 0 {
			return &vals[0]
		}
		return nil
	}

	payload.Brand = stringField("brand")
	payload.Name = stringField("name")
	payload.Currency = stringField("currency")
	payload.Description = stringField("description")
	payload.Status = stringField("status")

	if raw := stringField("price"); raw != nil {
		price, err := strconv.ParseFloat(*raw, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid price")
			return nil, false
		}
		payload.Price = &price
	}
	if raw := stringField("stock"); raw != nil {
		stock, err := strconv.Atoi(*raw)
		if err != nil {
			writeError(w, http.StatusBadRequest, "Invalid stock")
			return nil, false
		}
		payload.Stock = &stock
	}
	if raw := stringField("imageUrls"); raw != nil {
		payload.ImageURLs = parseImageURLs(*raw)
	}
	if raw := stringField("existingImages"); raw != nil {
		kept := parseImageURLs(*raw)
		payload.ExistingImages = &kept
	}

	files := form.File["images"]
	if len(files) > maxUploadFiles {
		writeError(w, http.StatusBadRequest, "Too many files")
		return nil, false
	}
	for _, header := range files {
		if header.Size > maxUploadSize {
			writeError(w, http.StatusBadRequest, "File too large. Max 5MB.")
			return nil, false
		}
		url, err := h.uploadFile(r, header)
		if err != nil {
			// Matches the storefront's historical behavior: a failed
			// image upload skips that image, it does not fail the
			// product write.
			slog.Error("Image upload failed", "filename", header.Filename, "error", err)
			continue
		}
		if url != "" {
			payload.uploaded = append(payload.uploaded, url)
		}
	}

	return payload, true
}

func (h *AdminHandler) uploadFile(r *http.Request, header *multipart.FileHeader) (string, error) {
	if h.Uploader == nil {
		return "", nil
	}
	file, err := header.Open()
	if err != nil {
		return "", err
	}
	defer file.Close()

	data, err := io.ReadAll(file)
	if err != nil {
		return "", err
	}
	return h.Uploader.Upload(r.Context(), data, header.Filename)
}
