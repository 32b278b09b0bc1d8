package store

import (
	"context"
	"errors"
	"sync/atomic"
	"time"

	"github.com/kevinjame2233/Carryluxe-Full1/internal/models"
)

var ErrNotFound = errors.New("record not found")

// ProductQuery narrows ListProducts. The zero value returns everything.
type ProductQuery struct {
	ActiveOnly bool
	Brand      string // case-insensitive exact match when non-empty
}

// Store is the persistence contract shared by the file-backed and the
// Mongo-backed adapters. Handlers only ever talk to this interface, so
// business logic never forks per backend.
type Store interface {
	ListProducts(ctx context.Context, q ProductQuery) ([]models.Product, error)
	GetProduct(ctx context.Context, id int64) (*models.Product, error)
	// PutProduct inserts or replaces the product keyed by its id.
	PutProduct(ctx context.Context, p *models.Product) error
	// DeleteProduct removes the product. Deleting an unknown id is not
	// an error.
	DeleteProduct(ctx context.Context, id int64) error
	CountProducts(ctx context.Context) (int, error)

	CreateOrder(ctx context.Context, o *models.Order) error
	// ListOrders returns all orders, newest first.
	ListOrders(ctx context.Context) ([]models.Order, error)

	// GetAdmin returns the singleton credential, or ErrNotFound if the
	// admin has not been set up yet.
	GetAdmin(ctx context.Context) (*models.Admin, error)
	PutAdmin(ctx context.Context, a *models.Admin) error

	Close(ctx context.Context) error
}

var lastID atomic.Int64

// NewID returns a time-based identifier, used for both products and
// orders on both backends. Monotonic within the process so that rapid
// writes in the same millisecond still get distinct ids; uniqueness is
// not cryptographically guaranteed, which matches the expected
// single-admin, low-volume write rate.
func NewID() int64 {
	for {
		now := time.Now().UnixMilli()
		prev := lastID.Load()
		if now <= prev {
			now = prev + 1
		}
		if lastID.CompareAndSwap(prev, now) {
			return now
		}
	}
}
