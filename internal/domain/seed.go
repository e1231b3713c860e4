package domain

import "time"

// SeedProducts returns the fixed demo catalog used to initialize the product
// store on first run. Eight products, four of them featured.
func SeedProducts() []Product {
	return []Product{
		{
			ID:          "1",
			Name:        "Urban Style Tee",
			Description: "A 100% cotton t-shirt with a unique urban-style print. Perfect for everyday wear.",
			Price:       2490,
			Category:    CategoryTShirt,
			Images:      []string{PlaceholderImage},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Black", "Grey"},
			InStock:     true,
			Featured:    true,
			CreatedAt:   time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "2",
			Name:        "Minimal Black Hoodie",
			Description: "A warm hoodie with a minimalist design for cooler weather. 80% cotton, 20% polyester.",
			Price:       4990,
			Category:    CategoryHoodie,
			Images:      []string{PlaceholderImage},
			Sizes:       []string{"S", "M", "L", "XL", "XXL"},
			Colors:      []string{"Black"},
			InStock:     true,
			Featured:    true,
			CreatedAt:   time.Date(2024, 5, 2, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "3",
			Name:        "Geometric Art Tee",
			Description: "A t-shirt with a geometric print. Modern design for those who value individuality.",
			Price:       2690,
			Category:    CategoryTShirt,
			Images:      []string{PlaceholderImage},
			Sizes:       []string{"S", "M", "L"},
			Colors:      []string{"White", "Black"},
			InStock:     true,
			Featured:    true,
			CreatedAt:   time.Date(2024, 5, 3, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "4",
			Name:        "Street Art Hoodie",
			Description: "A hoodie with bright street-art prints, for those who are not afraid to stand out.",
			Price:       5290,
			Category:    CategoryHoodie,
			Images:      []string{PlaceholderImage},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "Grey"},
			InStock:     true,
			Featured:    true,
			CreatedAt:   time.Date(2024, 5, 4, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "5",
			Name:        "Couple Vibes Tee",
			Description: "A special t-shirt for couples. Two designs that complement each other.",
			Price:       3990,
			Category:    CategoryTShirt,
			Images:      []string{PlaceholderImage},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Black", "Pink"},
			InStock:     true,
			CreatedAt:   time.Date(2024, 5, 5, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "6",
			Name:        "Couple Edition Hoodie",
			Description: "Matching hoodies with unique prints. Comfort and style for two.",
			Price:       8990,
			Category:    CategoryHoodie,
			Images:      []string{PlaceholderImage},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Black", "White"},
			InStock:     true,
			CreatedAt:   time.Date(2024, 5, 6, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "7",
			Name:        "Minimalist Tee",
			Description: "A minimalist t-shirt with a clean design that goes with any outfit.",
			Price:       1990,
			Category:    CategoryTShirt,
			Images:      []string{PlaceholderImage},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"White", "Black", "Beige"},
			InStock:     true,
			CreatedAt:   time.Date(2024, 5, 7, 12, 0, 0, 0, time.UTC),
		},
		{
			ID:          "8",
			Name:        "Urban Comfort Hoodie",
			Description: "A comfortable hoodie for city life. Stylish and practical.",
			Price:       4490,
			Category:    CategoryHoodie,
			Images:      []string{PlaceholderImage},
			Sizes:       []string{"S", "M", "L", "XL"},
			Colors:      []string{"Grey", "Black", "Green"},
			InStock:     true,
			CreatedAt:   time.Date(2024, 5, 8, 12, 0, 0, 0, time.UTC),
		},
	}
}
