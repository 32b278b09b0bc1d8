package models

import (
	"time"
)

// Product statuses. Older records may carry an empty status, which the
// catalog treats as active.
const (
	StatusActive = "active"
	StatusHidden = "hidden"
)

const DefaultCurrency = "USD"

type Product struct {
	ID          int64     `json:"id" bson:"id"`
	Brand       string    `json:"brand" bson:"brand"`
	Name        string    `json:"name" bson:"name"`
	Price       float64   `json:"price" bson:"price"`
	Currency    string    `json:"currency" bson:"currency"`
	Description string    `json:"description" bson:"description"`
	Images      []string  `json:"images" bson:"images"`
	Status      string    `json:"status" bson:"status"`
	Stock       int       `json:"stock,omitempty" bson:"stock,omitempty"`
	CreatedAt   time.Time `json:"createdAt" bson:"created_at"`
}

// Active reports whether the product is publicly visible. A missing
// status counts as active for records written before the field existed.
func (p *Product) Active() bool {
	return p.Status == StatusActive || p.Status == ""
}

// ProductSnapshot is the point-in-time product state embedded in an
// order. Later product edits never touch historical orders.
type ProductSnapshot struct {
	ID    int64   `json:"id" bson:"id"`
	Name  string  `json:"name" bson:"name"`
	Price float64 `json:"price" bson:"price"`
}

type Order struct {
	ID      int64           `json:"id" bson:"id"`
	Product ProductSnapshot `json:"product" bson:"product"`
	Name    string          `json:"name" bson:"name"`
	Phone   string          `json:"phone" bson:"phone"`
	Email   string          `json:"email" bson:"email"`
	Address string          `json:"address" bson:"address"`
	Note    string          `json:"note" bson:"note"`
	Date    time.Time       `json:"date" bson:"date"`
	Status  string          `json:"status" bson:"status"`
}

// Admin is the singleton operator credential. At most one exists.
type Admin struct {
	Email string `json:"email" bson:"email"`
	Hash  string `json:"hash" bson:"hash"`
}
