package seed

import "marketplace-catalog/internal/models"

// Retail is the supermarket storefront: household staples and groceries.
func Retail() Storefront {
	return Storefront{
		Info: models.StorefrontInfo{
			Key:         "retail",
			Name:        "Retail & Supermarket",
			Description: "Household staples and groceries from local supermarkets",
		},
		Taxonomy: models.Taxonomy{
			Storefront: "retail",
			Categories: []models.TaxonomyNode{
				{
					ID: "groceries", Name: "Groceries", Icon: "🛒",
					Children: []models.TaxonomyNode{
						{ID: "cooking-oil", Name: "Cooking Oil"},
						{ID: "rice", Name: "Rice", Children: []models.TaxonomyNode{
							{ID: "pishori", Name: "Pishori"},
							{ID: "basmati", Name: "Basmati"},
						}},
						{ID: "sugar", Name: "Sugar"},
					},
				},
				{
					ID: "household", Name: "Household", Icon: "🧼",
					Children: []models.TaxonomyNode{
						{ID: "detergents", Name: "Detergents"},
						{ID: "tissue", Name: "Tissue & Paper"},
					},
				},
				{
					ID: "beverages", Name: "Beverages", Icon: "🥤",
					Children: []models.TaxonomyNode{
						{ID: "tea-coffee", Name: "Tea & Coffee"},
						{ID: "soft-drinks", Name: "Soft Drinks"},
					},
				},
			},
		},
		Vendors: []models.Vendor{
			{
				ID: "rtl-jambo-mart", Storefront: "retail",
				Name:         "Jambo Mart",
				Location:     "Nairobi, Westlands",
				Description:  "Neighborhood supermarket with same-day delivery",
				Logo:         "https://img.sokoni.example/vendors/jambo-mart.png",
				Rating:       4.2,
				DeliveryTime: "2-4 hours",
				Contact: models.Contact{
					Phone:    "+254 740 221 678",
					WhatsApp: "+254 740 221 678",
					Email:    "orders@jambomart.co.ke",
				},
				Products: []models.Product{
					{
						ID: "pishori-5kg", Name: "Mwea Pishori Rice 5kg",
						Description:   "Aromatic pishori rice from Mwea",
						Brand:         "Mwea Classic",
						ImageURL:      "https://img.sokoni.example/products/pishori-5kg.jpg",
						CurrentPrice:  ksh(1150),
						OriginalPrice: ksh(1300),
						Category:      "Groceries",
						Subcategory:   "Rice",
						Subtype:       "Pishori",
						Unit:          "5kg bag",
						IsPopular:     true,
						DateAdded:     day("2026-08-18"),
						Rating:        4.6,
						ReviewCount:   57,
						Recipes:       []string{"Pilau", "Coconut rice"},
					},
					{
						ID: "cooking-oil-3l", Name: "Vegetable Cooking Oil 3L",
						Description:   "Cholesterol-free vegetable oil",
						Brand:         "Fresh Fri",
						ImageURL:      "https://img.sokoni.example/products/cooking-oil-3l.jpg",
						CurrentPrice:  ksh(920),
						OriginalPrice: ksh(1050),
						Category:      "Groceries",
						Subcategory:   "Cooking Oil",
						Unit:          "3L bottle",
						IsHotDeal:     true,
						DealEndsAt:    deal("2026-09-05"),
						DateAdded:     day("2026-08-21"),
						Rating:        4.3,
						ReviewCount:   41,
					},
					{
						ID: "detergent-2kg", Name: "Washing Powder 2kg",
						Description:   "Multi-purpose washing powder",
						Brand:         "Omo",
						ImageURL:      "https://img.sokoni.example/products/detergent-2kg.jpg",
						CurrentPrice:  ksh(560),
						OriginalPrice: ksh(560),
						Category:      "Household",
						Subcategory:   "Detergents",
						Unit:          "2kg pack",
						DateAdded:     day("2026-07-05"),
						Rating:        4.1,
						ReviewCount:   23,
					},
				},
			},
			{
				ID: "rtl-coast-stores", Storefront: "retail",
				Name:         "Coast General Stores",
				Location:     "Mombasa",
				Description:  "Wholesale and retail groceries at coastal prices",
				Logo:         "https://img.sokoni.example/vendors/coast-stores.png",
				Rating:       4.0,
				DeliveryTime: "next day",
				Contact: models.Contact{
					Phone: "+254 727 803 450",
					Email: "info@coastgeneral.co.ke",
				},
				Products: []models.Product{
					{
						ID: "basmati-10kg", Name: "Basmati Rice 10kg",
						Description:   "Long-grain basmati, wholesale pack",
						ImageURL:      "https://img.sokoni.example/products/basmati-10kg.jpg",
						CurrentPrice:  ksh(2450),
						OriginalPrice: ksh(2700),
						Category:      "Groceries",
						Subcategory:   "Rice",
						Subtype:       "Basmati",
						Unit:          "10kg bag",
						DateAdded:     day("2026-08-02"),
						Rating:        4.4,
						ReviewCount:   18,
					},
					{
						ID: "ketepa-tea-500g", Name: "Kenya Tea Leaves 500g",
						Description:   "Strong highland tea leaves",
						Brand:         "Ketepa",
						ImageURL:      "https://img.sokoni.example/products/ketepa-500g.jpg",
						CurrentPrice:  ksh(340),
						OriginalPrice: ksh(380),
						Category:      "Beverages",
						Subcategory:   "Tea & Coffee",
						Unit:          "500g pack",
						IsNew:         true,
						DateAdded:     day("2026-08-26"),
						Rating:        4.7,
						ReviewCount:   9,
					},
				},
			},
		},
	}
}
