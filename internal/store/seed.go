package store

import (
	"time"

	"github.com/kevinjame2233/Carryluxe-Full1/internal/models"
)

// seedProducts is the starter catalog written on first run so a fresh
// install has something to show.
func seedProducts() []models.Product {
	now := time.Now()
	return []models.Product{
		{
			ID:          1,
			Brand:       "Hermès",
			Name:        "Birkin 30",
			Price:       12500,
			Stock:       1,
			Currency:    models.DefaultCurrency,
			Images:      []string{"/assets/images/hermes-birkin.jpg"},
			Description: "Classic Hermès Birkin 30 in Gold Togo leather with Gold hardware. Pristine condition.",
			Status:      models.StatusActive,
			CreatedAt:   now,
		},
		{
			ID:          2,
			Brand:       "Louis Vuitton",
			Name:        "Capucines MM",
			Price:       6800,
			Stock:       1,
			Currency:    models.DefaultCurrency,
			Images:      []string{"/assets/images/lv-capucines.jpg"},
			Description: "Elegant Louis Vuitton Capucines in Black Taurillon leather. Includes strap and dustbag.",
			Status:      models.StatusActive,
			CreatedAt:   now,
		},
		{
			ID:          3,
			Brand:       "Chanel",
			Name:        "Classic Flap Medium",
			Price:       10200,
			Stock:       1,
			Currency:    models.DefaultCurrency,
			Images:      []string{"https://images.unsplash.com/photo-1548036328-c9fa89d128fa?auto=format&fit=crop&w=800&q=80"},
			Description: "Timeless Chanel Classic Double Flap in Black Caviar leather with Gold hardware.",
			Status:      models.StatusActive,
			CreatedAt:   now,
		},
		{
			ID:          4,
			Brand:       "Dior",
			Name:        "Lady Dior Medium",
			Price:       5900,
			Stock:       1,
			Currency:    models.DefaultCurrency,
			Images:      []string{"https://images.unsplash.com/photo-1591561954557-26941169b49e?auto=format&fit=crop&w=800&q=80"},
			Description: "Iconic Lady Dior in Cannage Lambskin. Excellent condition with card.",
			Status:      models.StatusActive,
			CreatedAt:   now,
		},
		{
			ID:          5,
			Brand:       "Gucci",
			Name:        "Jackie 1961 Small",
			Price:       2950,
			Stock:       2,
			Currency:    models.DefaultCurrency,
			Images:      []string{"https://images.unsplash.com/photo-1584917865442-de89df76afd3?auto=format&fit=crop&w=800&q=80"},
			Description: "The signature Gucci Jackie 1961 in GG Supreme canvas.",
			Status:      models.StatusActive,
			CreatedAt:   now,
		},
		{
			ID:          6,
			Brand:       "Bottega Veneta",
			Name:        "Cassette Bag",
			Price:       3200,
			Stock:       1,
			Currency:    models.DefaultCurrency,
			Images:      []string{"https://images.unsplash.com/photo-1590874103328-eac38a683ce7?auto=format&fit=crop&w=800&q=80"},
			Description: "Padded Cassette in signature Intrecciato weave. Parakeet Green.",
			Status:      models.StatusActive,
			CreatedAt:   now,
		},
	}
}
