package catalog

// Compiled-in defaults used to seed the store on first access.

func SeedCategories() []string {
	return []string{"T-Shirts", "Hoodies", "Pants", "Shoes", "Accessories", "Limited Drop"}
}

func SeedSizes() []string {
	return []string{"S", "M", "L", "XL", "XXL"}
}

func SeedCoupons() []Coupon {
	return []Coupon{
		{Code: "DRIP10", Type: CouponPercentage, Value: 10},
		{Code: "WELCOME20", Type: CouponPercentage, Value: 20},
		{Code: "FLAT500", Type: CouponFixed, Value: 500},
	}
}

func SeedProducts() []Product {
	return []Product{
		{
			ID:            "1",
			Name:          "Cyberpunk Oversized Tee",
			Slug:          "drip-cyberpunk-oversized-tee",
			Description:   "Heavyweight cotton tee with distressed cyber prints. Perfect for the urban explorer.",
			Price:         1999,
			OriginalPrice: 2499,
			Category:      "T-Shirts",
			Brand:         "DRIP ORIGINALS",
			Color:         "Black",
			Images: []string{
				"https://picsum.photos/id/1060/800/1000",
				"https://picsum.photos/id/1062/800/1000",
				"https://picsum.photos/id/1069/800/1000",
			},
			Sizes: []string{"M", "L", "XL"},
			Stock: 50,
			Variants: []ProductVariant{
				{
					ID:     "v1",
					Name:   "Standard Fit",
					Images: []string{},
					Sizes: []VariantSize{
						{Size: "M", Stock: 10},
						{Size: "L", Stock: 6},
						{Size: "XL", Stock: 4},
					},
				},
				{
					ID:     "v2",
					Name:   "Boxy Fit",
					Images: []string{"https://picsum.photos/id/1074/800/1000"},
					Sizes: []VariantSize{
						{Size: "M", Stock: 12},
						{Size: "L", Stock: 10},
						{Size: "XL", Stock: 8},
					},
				},
			},
			Ratings:     []int{5, 5, 4, 5},
			IsNewDrop:   true,
			SEOTitle:    "Cyberpunk Oversized Tee - Limited Edition Streetwear",
			SEOKeywords: []string{"cyberpunk", "streetwear", "oversized tee", "black t-shirt"},
		},
		{
			ID:          "2",
			Name:        "Neon Glitch Hoodie",
			Slug:        "neon-neon-glitch-hoodie",
			Description: "French terry hoodie featuring neon glitch aesthetics and dropped shoulders.",
			Price:       3499,
			Category:    "Hoodies",
			Brand:       "NEON WAVE",
			Color:       "Blue",
			Images: []string{
				"https://picsum.photos/id/1067/800/1000",
				"https://picsum.photos/id/1011/800/1000",
			},
			Sizes:       []string{"S", "M", "L", "XL"},
			Stock:       20,
			Ratings:     []int{4, 3, 5},
			SEOTitle:    "Neon Glitch Hoodie - Premium Cotton",
			SEOKeywords: []string{"hoodie", "neon", "streetwear", "winter wear"},
		},
		{
			ID:            "3",
			Name:          "Cargo Tech Pants",
			Slug:          "tactical-cargo-tech-pants",
			Description:   "Utility focused cargo pants with multiple pockets and adjustable ankle straps.",
			Price:         2899,
			OriginalPrice: 3500,
			Category:      "Pants",
			Brand:         "TACTICAL OPS",
			Color:         "Green",
			Images:        []string{"https://picsum.photos/id/103/800/1000"},
			Sizes:         []string{"30", "32", "34", "36"},
			Stock:         35,
			Ratings:       []int{5, 5},
		},
		{
			ID:          "4",
			Name:        "Obsidian Chain",
			Slug:        "drip-obsidian-chain",
			Description: "Stainless steel industrial chain with obsidian finish.",
			Price:       999,
			Category:    "Accessories",
			Brand:       "DRIP ORIGINALS",
			Color:       "Silver",
			Images:      []string{"https://picsum.photos/id/114/800/1000"},
			Sizes:       []string{"One Size"},
			Stock:       100,
			Ratings:     []int{4},
			IsNewDrop:   true,
		},
		{
			ID:            "5",
			Name:          "Velocity Runner V1",
			Slug:          "speed-velocity-runner-v1",
			Description:   "High-performance chunky sneakers with reflective detailing and air-cushion sole.",
			Price:         6999,
			OriginalPrice: 8999,
			Category:      "Shoes",
			Brand:         "SPEED INC",
			Color:         "White",
			Images: []string{
				"https://picsum.photos/id/103/800/1000",
				"https://picsum.photos/id/21/800/1000",
				"https://picsum.photos/id/75/800/1000",
			},
			Sizes:     []string{"US 8", "US 9", "US 10", "US 11"},
			Stock:     15,
			Ratings:   []int{5, 5, 5, 5, 5},
			IsNewDrop: true,
		},
		{
			ID:          "6",
			Name:        "Urban Trekker Boots",
			Slug:        "drip-urban-trekker-boots",
			Description: "Rugged combat boots designed for the concrete jungle. Waterproof leather.",
			Price:       5499,
			Category:    "Shoes",
			Brand:       "DRIP ORIGINALS",
			Color:       "Black",
			Images:      []string{"https://picsum.photos/id/1070/800/1000"},
			Sizes:       []string{"US 7", "US 8", "US 9", "US 10", "US 11", "US 12"},
			Stock:       25,
			Ratings:     []int{3, 4},
		},
	}
}
