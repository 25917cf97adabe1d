package catalog

func floatPtr(f float64) *float64 { return &f }

func strPtr(s string) *string { return &s }

const teeImage = "https://images.unsplash.com/photo-1523381210434-271e8be1f52b?auto=format&fit=crop&w=1770&q=80"

// Fixture returns the built-in storefront catalog. It seeds the database via
// cmd/migrate and backs tests; production data lives in the products table.
func Fixture() []Product {
	return []Product{
		{
			ID:      1,
			Name:    "Basic Tee",
			Price:   24.00,
			Image:   teeImage,
			InStock: true,
			Colors:  []string{"red", "blue"},
		},
		{
			ID:      2,
			Name:    "Classic Tee",
			Price:   29.00,
			Image:   teeImage,
			InStock: false,
			Colors:  []string{"green", "purple"},
		},
		{
			ID:      3,
			Name:    "Premium Tee",
			Price:   34.00,
			Image:   teeImage,
			InStock: true,
			Colors:  []string{"blue", "teal"},
		},
		{
			ID:              4,
			Name:            "Linen Summer Dress",
			Price:           89.00,
			DiscountedPrice: floatPtr(69.00),
			Category:        "dresses",
			Image:           "https://images.unsplash.com/photo-1595777457583-95e059d581b8?auto=format&fit=crop&w=1770&q=80",
			InStock:         true,
			Colors:          []string{"white", "teal"},
			Description:     strPtr("Lightweight linen dress for warm days."),
			Rating:          floatPtr(4.5),
		},
		{
			ID:          5,
			Name:        "Denim Jacket",
			Price:       120.00,
			Category:    "jackets",
			Image:       "https://images.unsplash.com/photo-1551537482-f2075a1d41f2?auto=format&fit=crop&w=1770&q=80",
			InStock:     true,
			Colors:      []string{"blue"},
			Description: strPtr("Stonewashed denim with a relaxed fit."),
			Rating:      floatPtr(4.8),
		},
		{
			ID:              6,
			Name:            "Wool Winter Coat",
			Price:           210.00,
			DiscountedPrice: floatPtr(180.00),
			Category:        "winter-essentials",
			Image:           "https://images.unsplash.com/photo-1539533394607-b70a4a4b4ff1?auto=format&fit=crop&w=1770&q=80",
			InStock:         false,
			Colors:          []string{"black", "grey"},
			Description:     strPtr("Heavy wool blend coat with satin lining."),
			Rating:          floatPtr(4.2),
		},
		{
			ID:       7,
			Name:     "Canvas Tote Bag",
			Price:    39.00,
			Category: "bags",
			Image:    "https://images.unsplash.com/photo-1544816155-12df9643f363?auto=format&fit=crop&w=1770&q=80",
			InStock:  true,
			Colors:   []string{"beige", "black"},
			Rating:   floatPtr(3.9),
		},
		{
			ID:              8,
			Name:            "Performance Leggings",
			Price:           54.00,
			DiscountedPrice: floatPtr(45.00),
			Category:        "activewear",
			Image:           "https://images.unsplash.com/photo-1506629082955-511b1aa562c8?auto=format&fit=crop&w=1770&q=80",
			InStock:         true,
			Colors:          []string{"black", "purple"},
			Description:     strPtr("Four-way stretch with a high waistband."),
			Rating:          floatPtr(4.6),
		},
	}
}
