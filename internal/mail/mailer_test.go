package mail

import (
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/kevinjame2233/Carryluxe-Full1/internal/models"
)

func TestOrderMessage(t *testing.T) {
	order := &models.Order{
		ID:      1700000000000,
		Product: models.ProductSnapshot{ID: 3, Name: "Classic Flap Medium", Price: 10200},
		Name:    "Jane Doe",
		Phone:   "+1 555 0100",
		Email:   "jane@example.com",
		Address: "1 Main St, Springfield",
		Note:    "Gift wrap please",
		Date:    time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC),
		Status:  "Pending",
	}

	assert.Equal(t, "CarryLuxe - New Order #1700000000000", OrderSubject(order))

	body := OrderBody(order)
	assert.Contains(t, body, fmt.Sprintf("Order ID: %d", order.ID))
	assert.Contains(t, body, "Product: Classic Flap Medium")
	assert.Contains(t, body, "Price: 10200")
	assert.Contains(t, body, "Name: Jane Doe")
	assert.Contains(t, body, "Phone: +1 555 0100")
	assert.Contains(t, body, "Address: 1 Main St, Springfield")
	assert.Contains(t, body, "Note: Gift wrap please")
	assert.Contains(t, body, "2026-08-01T12:00:00Z")
}
