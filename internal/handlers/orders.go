package handlers

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/kevinjame2233/Carryluxe-Full1/internal/mail"
	"github.com/kevinjame2233/Carryluxe-Full1/internal/models"
	"github.com/kevinjame2233/Carryluxe-Full1/internal/store"
)

var validate = validator.New()

// OrderHandler records purchase inquiries and notifies the operator.
type OrderHandler struct {
	Store    store.Store
	Mailer   mail.Mailer
	NotifyTo string
}

type orderRequest struct {
	ProductID int64  `json:"productId" validate:"required"`
	Name      string `json:"name" validate:"required"`
	Phone     string `json:"phone" validate:"required"`
	Address   string `json:"address" validate:"required"`
	Email     string `json:"email" validate:"omitempty,email"`
	Note      string `json:"note"`
}

func (h *OrderHandler) SubmitOrder(w http.ResponseWriter, r *http.Request) {
	var req orderRequest
	if !decodeJSON(w, r, &req) {
		return
	}
	if err := validate.Struct(req); err != nil {
		writeError(w, http.StatusBadRequest, "Missing fields")
		return
	}

	// Snapshot the product as it is right now. If it has been deleted
	// since the customer loaded the page, the order still goes through
	// with a placeholder snapshot.
	snapshot := models.ProductSnapshot{ID: req.ProductID, Name: "Unknown"}
	product, err := h.Store.GetProduct(r.Context(), req.ProductID)
	if err != nil && !errors.Is(err, store.ErrNotFound) {
		serverError(w, "Order creation failed", err)
		return
	}
	if product != nil {
		snapshot = models.ProductSnapshot{ID: product.ID, Name: product.Name, Price: product.Price}
	}

	order := &models.Order{
		ID:      store.NewID(),
		Product: snapshot,
		Name:    req.Name,
		Phone:   req.Phone,
		Email:   req.Email,
		Address: req.Address,
		Note:    req.Note,
		Date:    time.Now(),
		Status:  "Pending",
	}

	if err := h.Store.CreateOrder(r.Context(), order); err != nil {
		serverError(w, "Order creation failed", err)
		return
	}

	// Post-commit hook: the order is durable at this point, so the
	// notification is a single detached attempt that can never fail
	// the request.
	h.notify(order)

	writeJSON(w, http.StatusOK, map[string]any{"success": true, "order": order})
}

func (h *OrderHandler) notify(order *models.Order) {
	if h.Mailer == nil || h.NotifyTo == "" {
		return
	}
	go func() {
		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		defer cancel()
		if err := h.Mailer.Send(ctx, h.NotifyTo, mail.OrderSubject(order), mail.OrderBody(order)); err != nil {
			slog.Error("Order email failed", "order_id", order.ID, "error", err)
			return
		}
		slog.Info("Order email sent", "order_id", order.ID)
	}()
}
