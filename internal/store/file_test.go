package store

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kevinjame2233/Carryluxe-Full1/internal/models"
)

func newTestStore(t *testing.T) *FileStore {
	t.Helper()
	s, err := NewFileStore(t.TempDir())
	require.NoError(t, err)
	return s
}

func TestFileStoreSeedsCatalog(t *testing.T) {
	s := newTestStore(t)

	products, err := s.ListProducts(context.Background(), ProductQuery{})
	require.NoError(t, err)
	assert.Len(t, products, 6)

	count, err := s.CountProducts(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 6, count)
}

func TestFileStoreProductLifecycle(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	p := &models.Product{
		ID:        NewID(),
		Brand:     "Acme",
		Name:      "Bag",
		Price:     100,
		Currency:  models.DefaultCurrency,
		Status:    models.StatusActive,
		Images:    []string{"/uploads/a.jpg"},
		CreatedAt: time.Now(),
	}
	require.NoError(t, s.PutProduct(ctx, p))

	got, err := s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Acme", got.Brand)
	assert.Equal(t, float64(100), got.Price)

	// Put with the same id replaces, it does not duplicate.
	p.Price = 150
	require.NoError(t, s.PutProduct(ctx, p))
	got, err = s.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, float64(150), got.Price)

	count, err := s.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	require.NoError(t, s.DeleteProduct(ctx, p.ID))
	_, err = s.GetProduct(ctx, p.ID)
	assert.ErrorIs(t, err, ErrNotFound)

	// Deleting an unknown id is still fine.
	require.NoError(t, s.DeleteProduct(ctx, p.ID))
}

func TestFileStoreListFilters(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	hidden := &models.Product{ID: NewID(), Brand: "Acme", Name: "Hidden Bag", Status: models.StatusHidden}
	require.NoError(t, s.PutProduct(ctx, hidden))

	// Records written before the status field existed have an empty
	// status and must show up in active listings.
	legacy := &models.Product{ID: NewID(), Brand: "Acme", Name: "Legacy Bag"}
	require.NoError(t, s.PutProduct(ctx, legacy))

	active, err := s.ListProducts(ctx, ProductQuery{ActiveOnly: true})
	require.NoError(t, err)
	for _, p := range active {
		assert.NotEqual(t, models.StatusHidden, p.Status)
	}
	assert.Len(t, active, 7) // 6 seeded + legacy

	// Brand filter is a case-insensitive exact match.
	acme, err := s.ListProducts(ctx, ProductQuery{ActiveOnly: true, Brand: "acme"})
	require.NoError(t, err)
	require.Len(t, acme, 1)
	assert.Equal(t, "Legacy Bag", acme[0].Name)

	gucci, err := s.ListProducts(ctx, ProductQuery{ActiveOnly: true, Brand: "GUCCI"})
	require.NoError(t, err)
	require.Len(t, gucci, 1)

	none, err := s.ListProducts(ctx, ProductQuery{Brand: "Prada"})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestFileStoreGetIgnoresStatus(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	hidden := &models.Product{ID: NewID(), Brand: "Acme", Name: "Hidden Bag", Status: models.StatusHidden}
	require.NoError(t, s.PutProduct(ctx, hidden))

	got, err := s.GetProduct(ctx, hidden.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StatusHidden, got.Status)
}

func TestFileStoreOrdersNewestFirst(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	first := &models.Order{ID: NewID(), Name: "First", Status: "Pending", Date: time.Now()}
	require.NoError(t, s.CreateOrder(ctx, first))
	second := &models.Order{ID: NewID(), Name: "Second", Status: "Pending", Date: time.Now()}
	require.NoError(t, s.CreateOrder(ctx, second))

	orders, err := s.ListOrders(ctx)
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.Equal(t, "Second", orders[0].Name)
	assert.Equal(t, "First", orders[1].Name)
}

func TestFileStoreAdminSingleton(t *testing.T) {
	s := newTestStore(t)
	ctx := context.Background()

	_, err := s.GetAdmin(ctx)
	assert.ErrorIs(t, err, ErrNotFound)

	require.NoError(t, s.PutAdmin(ctx, &models.Admin{Email: "admin@example.com", Hash: "not-a-real-hash"}))

	admin, err := s.GetAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "admin@example.com", admin.Email)

	// A second put replaces the singleton.
	require.NoError(t, s.PutAdmin(ctx, &models.Admin{Email: "other@example.com", Hash: "h"}))
	admin, err = s.GetAdmin(ctx)
	require.NoError(t, err)
	assert.Equal(t, "other@example.com", admin.Email)
}

func TestFileStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()
	ctx := context.Background()

	s, err := NewFileStore(dir)
	require.NoError(t, err)
	p := &models.Product{ID: NewID(), Brand: "Acme", Name: "Bag", Status: models.StatusActive}
	require.NoError(t, s.PutProduct(ctx, p))

	// Reopening must not re-seed or lose the write.
	s2, err := NewFileStore(dir)
	require.NoError(t, err)
	count, err := s2.CountProducts(ctx)
	require.NoError(t, err)
	assert.Equal(t, 7, count)

	got, err := s2.GetProduct(ctx, p.ID)
	require.NoError(t, err)
	assert.Equal(t, "Bag", got.Name)
}

func TestNewIDMonotonic(t *testing.T) {
	prev := NewID()
	for i := 0; i < 1000; i++ {
		id := NewID()
		require.Greater(t, id, prev)
		prev = id
	}
}
