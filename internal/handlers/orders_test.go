package handlers

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinjame2233/Carryluxe-Full1/internal/models"
	"github.com/kevinjame2233/Carryluxe-Full1/internal/store"
)

func validOrderBody(productID int64) map[string]any {
	return map[string]any{
		"productId": productID,
		"name":      "Jane Doe",
		"phone":     "+1 555 0100",
		"address":   "1 Main St, Springfield",
		"email":     "jane@example.com",
		"note":      "Gift wrap please",
	}
}

func TestSubmitOrderValidation(t *testing.T) {
	env := newTestEnv(t)

	for _, missing := range []string{"productId", "name", "phone", "address"} {
		t.Run("missing "+missing, func(t *testing.T) {
			body := validOrderBody(1)
			delete(body, missing)

			rec := env.do(t, http.MethodPost, "/api/orders", body)
			assert.Equal(t, http.StatusBadRequest, rec.Code)
		})
	}

	t.Run("malformed email", func(t *testing.T) {
		body := validOrderBody(1)
		body["email"] = "not-an-email"
		rec := env.do(t, http.MethodPost, "/api/orders", body)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	// None of the rejected submissions may have been persisted.
	orders, err := env.Store.ListOrders(context.Background())
	require.NoError(t, err)
	assert.Empty(t, orders)
}

func TestSubmitOrderSnapshotsPrice(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	product := &models.Product{ID: store.NewID(), Brand: "Acme", Name: "Bag", Price: 100, Status: models.StatusActive}
	require.NoError(t, env.Store.PutProduct(ctx, product))

	rec := env.do(t, http.MethodPost, "/api/orders", validOrderBody(product.ID))
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())

	var resp struct {
		Success bool         `json:"success"`
		Order   models.Order `json:"order"`
	}
	decodeBody(t, rec, &resp)
	assert.True(t, resp.Success)
	assert.Equal(t, product.ID, resp.Order.Product.ID)
	assert.Equal(t, float64(100), resp.Order.Product.Price)
	assert.Equal(t, "Pending", resp.Order.Status)

	// A later price change must not touch the recorded order.
	product.Price = 250
	require.NoError(t, env.Store.PutProduct(ctx, product))

	cookies := env.login(t)
	list := env.do(t, http.MethodGet, "/api/admin/orders", nil, cookies...)
	require.Equal(t, http.StatusOK, list.Code)

	var orders []models.Order
	decodeBody(t, list, &orders)
	require.Len(t, orders, 1)
	assert.Equal(t, float64(100), orders[0].Product.Price)
}

func TestSubmitOrderDeletedProduct(t *testing.T) {
	env := newTestEnv(t)

	// The product is gone, but intake still succeeds with a
	// placeholder snapshot.
	rec := env.do(t, http.MethodPost, "/api/orders", validOrderBody(424242))
	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Order models.Order `json:"order"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, int64(424242), resp.Order.Product.ID)
	assert.Equal(t, "Unknown", resp.Order.Product.Name)
	assert.Zero(t, resp.Order.Product.Price)
}

func TestSubmitOrderNotifiesOperator(t *testing.T) {
	env := newTestEnv(t)

	rec := env.do(t, http.MethodPost, "/api/orders", validOrderBody(1))
	require.Equal(t, http.StatusOK, rec.Code)

	select {
	case m := <-env.Mailer.sent:
		assert.Equal(t, "ops@carryluxe.test", m.To)
		assert.Contains(t, m.Subject, "New Order")
		assert.Contains(t, m.Body, "Jane Doe")
		assert.Contains(t, m.Body, "Birkin 30")
	case <-time.After(2 * time.Second):
		t.Fatal("expected an order notification")
	}
}
