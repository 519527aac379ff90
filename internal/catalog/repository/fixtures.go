package repository

import (
	"time"

	"github.com/Heybro1122/ShopHub/internal/model"
)

func strPtr(s string) *string { return &s }

func floatPtr(f float64) *float64 { return &f }

// Fixtures returns the seed catalog used by the in-memory backend. Creation
// times are staggered so the "newest" sort has a defined order.
func Fixtures() []*model.Product {
	base := time.Date(2025, time.January, 15, 12, 0, 0, 0, time.UTC)
	at := func(days int) time.Time { return base.AddDate(0, 0, days) }

	mk := func(id string, created time.Time, p model.Product) *model.Product {
		p.ID = id
		p.CreatedAt = created
		p.UpdatedAt = created
		p.Status = model.ProductActive
		return &p
	}

	return []*model.Product{
		mk("1", at(0), model.Product{
			Name:          "Wireless Headphones Pro",
			Description:   "Premium noise-cancelling wireless headphones with exceptional sound quality and 30-hour battery life.",
			Price:         299.99,
			OriginalPrice: floatPtr(399.99),
			Rating:        4.8,
			ReviewsCount:  234,
			Badge:         strPtr("Best Seller"),
			Category:      "Electronics",
			ImageURL:      "/products/headphones.jpg",
			Stock:         15,
			SalesCount:    412,
			Features:      model.StringList{"Noise Cancelling", "30hr Battery", "Bluetooth 5.0", "Premium Sound"},
			Tags:          model.StringList{"audio", "wireless", "headphones"},
		}),
		mk("2", at(21), model.Product{
			Name:          "Smart Watch Ultra",
			Description:   "Advanced fitness tracking, heart rate monitoring, and smartphone integration in a sleek design.",
			Price:         449.99,
			OriginalPrice: floatPtr(599.99),
			Rating:        4.9,
			ReviewsCount:  567,
			Badge:         strPtr("New"),
			Category:      "Electronics",
			ImageURL:      "/products/smartwatch.jpg",
			Stock:         8,
			SalesCount:    389,
			Features:      model.StringList{"Heart Rate Monitor", "GPS Tracking", "Water Resistant", "7-day Battery"},
			Tags:          model.StringList{"wearable", "fitness", "watch"},
		}),
		mk("3", at(3), model.Product{
			Name:          "Premium Backpack",
			Description:   "Durable and stylish backpack with laptop compartment and multiple pockets for organization.",
			Price:         89.99,
			OriginalPrice: floatPtr(129.99),
			Rating:        4.7,
			ReviewsCount:  123,
			Badge:         strPtr("Sale"),
			Category:      "Fashion",
			ImageURL:      "/products/backpack.jpg",
			Stock:         25,
			SalesCount:    198,
			Features:      model.StringList{"Laptop Compartment", "Water Resistant", "USB Charging", "Ergonomic Design"},
			Tags:          model.StringList{"bag", "travel"},
		}),
		mk("4", at(10), model.Product{
			Name:          "Wireless Speaker",
			Description:   "Portable Bluetooth speaker with 360-degree sound and waterproof design.",
			Price:         159.99,
			OriginalPrice: floatPtr(199.99),
			Rating:        4.6,
			ReviewsCount:  89,
			Badge:         strPtr("Popular"),
			Category:      "Electronics",
			ImageURL:      "/products/speaker.jpg",
			Stock:         12,
			SalesCount:    156,
			Features:      model.StringList{"360° Sound", "Waterproof", "12hr Battery", "Party Mode"},
			Tags:          model.StringList{"audio", "wireless", "speaker"},
		}),
		mk("5", at(6), model.Product{
			Name:          "Yoga Mat Premium",
			Description:   "Extra thick, non-slip yoga mat with alignment markers for perfect practice.",
			Price:         49.99,
			OriginalPrice: floatPtr(69.99),
			Rating:        4.8,
			ReviewsCount:  456,
			Badge:         strPtr("Eco-Friendly"),
			Category:      "Sports",
			ImageURL:      "/products/yoga-mat.jpg",
			Stock:         30,
			SalesCount:    521,
			Features:      model.StringList{"Non-Slip Surface", "6mm Thick", "Eco-Friendly", "Carrying Strap"},
			Tags:          model.StringList{"yoga", "fitness"},
		}),
		mk("6", at(14), model.Product{
			Name:          "Coffee Maker Deluxe",
			Description:   "Programmable coffee maker with thermal carafe and customizable brew strength.",
			Price:         129.99,
			OriginalPrice: floatPtr(179.99),
			Rating:        4.5,
			ReviewsCount:  178,
			Badge:         strPtr("Top Rated"),
			Category:      "Home & Living",
			ImageURL:      "/products/coffee-maker.jpg",
			Stock:         18,
			SalesCount:    243,
			Features:      model.StringList{"Programmable", "Thermal Carafe", "Auto Shut-off", "Multiple Brew Sizes"},
			Tags:          model.StringList{"kitchen", "coffee"},
		}),
		mk("7", at(8), model.Product{
			Name:          "Running Shoes Pro",
			Description:   "Lightweight running shoes with advanced cushioning and breathable mesh upper.",
			Price:         119.99,
			OriginalPrice: floatPtr(159.99),
			Rating:        4.7,
			ReviewsCount:  289,
			Badge:         strPtr("Athletic"),
			Category:      "Sports",
			ImageURL:      "/products/running-shoes.jpg",
			Stock:         22,
			SalesCount:    334,
			Features:      model.StringList{"Breathable Mesh", "Cushioned Sole", "Lightweight", "Reflective Details"},
			Tags:          model.StringList{"running", "shoes", "fitness"},
		}),
		mk("8", at(1), model.Product{
			Name:          "Desk Organizer Set",
			Description:   "Complete desk organization solution with multiple compartments and modern design.",
			Price:         34.99,
			OriginalPrice: floatPtr(49.99),
			Rating:        4.4,
			ReviewsCount:  92,
			Badge:         strPtr("Office Essential"),
			Category:      "Home & Living",
			ImageURL:      "/products/desk-organizer.jpg",
			Stock:         40,
			SalesCount:    87,
			Features:      model.StringList{"Multiple Compartments", "Modern Design", "Durable Material", "Easy Assembly"},
			Tags:          model.StringList{"office", "desk"},
		}),
	}
}
