package seed

import "marketplace-catalog/internal/models"

// Flour is the milled-flour storefront: maize, wheat and fortified blends
// from regional millers.
func Flour() Storefront {
	return Storefront{
		Info: models.StorefrontInfo{
			Key:         "flour",
			Name:        "Flour",
			Description: "Maize, wheat and fortified flours from regional millers",
		},
		Taxonomy: models.Taxonomy{
			Storefront: "flour",
			Categories: []models.TaxonomyNode{
				{
					ID: "maize-flour", Name: "Maize Flour", Icon: "🌽",
					Children: []models.TaxonomyNode{
						{ID: "sifted", Name: "Sifted", Children: []models.TaxonomyNode{
							{ID: "fortified", Name: "Fortified"},
							{ID: "plain", Name: "Plain"},
						}},
						{ID: "whole-grain", Name: "Whole Grain"},
					},
				},
				{
					ID: "wheat-flour", Name: "Wheat Flour", Icon: "🌾",
					Children: []models.TaxonomyNode{
						{ID: "all-purpose", Name: "All Purpose"},
						{ID: "self-raising", Name: "Self Raising"},
					},
				},
				{
					ID: "specialty", Name: "Specialty Flours", Icon: "🥣",
					Children: []models.TaxonomyNode{
						{ID: "millet", Name: "Millet"},
						{ID: "cassava", Name: "Cassava"},
					},
				},
			},
		},
		Vendors: []models.Vendor{
			{
				ID: "flr-rift-millers", Storefront: "flour",
				Name:         "Rift Valley Millers",
				Location:     "Nakuru",
				Description:  "Large-scale miller supplying fortified maize and wheat flour",
				Logo:         "https://img.sokoni.example/vendors/rift-millers.png",
				Rating:       4.5,
				DeliveryTime: "1-3 days",
				Contact: models.Contact{
					Phone:    "+254 726 330 415",
					WhatsApp: "+254 726 330 415",
					Email:    "orders@riftmillers.co.ke",
					Website:  "https://riftmillers.co.ke",
				},
				Products: []models.Product{
					{
						ID: "sifted-fortified-2kg", Name: "Fortified Sifted Maize Flour 2kg",
						Description:   "Vitamin-fortified sifted maize flour for ugali",
						Brand:         "Rafiki",
						ImageURL:      "https://img.sokoni.example/products/sifted-fortified-2kg.jpg",
						CurrentPrice:  ksh(165),
						OriginalPrice: ksh(185),
						Category:      "Maize Flour",
						Subcategory:   "Sifted",
						Subtype:       "Fortified",
						Unit:          "2kg pack",
						IsPopular:     true,
						DateAdded:     day("2026-08-19"),
						Rating:        4.5,
						ReviewCount:   71,
						Nutrition: map[string]string{
							"Energy": "353 kcal per 100g",
							"Iron":   "fortified",
							"Zinc":   "fortified",
						},
						Recipes: []string{"Ugali", "Uji"},
					},
					{
						ID: "all-purpose-2kg", Name: "All Purpose Wheat Flour 2kg",
						Description:   "Home-baking wheat flour",
						Brand:         "Rafiki",
						ImageURL:      "https://img.sokoni.example/products/all-purpose-2kg.jpg",
						CurrentPrice:  ksh(210),
						OriginalPrice: ksh(240),
						Category:      "Wheat Flour",
						Subcategory:   "All Purpose",
						Unit:          "2kg pack",
						IsHotDeal:     true,
						DealEndsAt:    deal("2026-09-12"),
						DateAdded:     day("2026-08-08"),
						Rating:        4.3,
						ReviewCount:   34,
						Recipes:       []string{"Chapati", "Mandazi"},
					},
				},
			},
			{
				ID: "flr-ukambani-posho", Storefront: "flour",
				Name:         "Ukambani Posho Mill",
				Location:     "Machakos",
				Description:  "Community mill grinding whole-grain and specialty flours to order",
				Logo:         "https://img.sokoni.example/vendors/ukambani-posho.png",
				Rating:       4.7,
				DeliveryTime: "2-4 days",
				Contact: models.Contact{
					Phone: "+254 748 115 099",
					Email: "mill@ukambaniposho.co.ke",
				},
				Products: []models.Product{
					{
						ID: "whole-grain-5kg", Name: "Whole Grain Maize Flour 5kg",
						Description:   "Stone-ground whole maize flour, nothing removed",
						ImageURL:      "https://img.sokoni.example/products/whole-grain-5kg.jpg",
						CurrentPrice:  ksh(380),
						OriginalPrice: ksh(380),
						Category:      "Maize Flour",
						Subcategory:   "Whole Grain",
						Unit:          "5kg bag",
						DateAdded:     day("2026-07-22"),
						Rating:        4.8,
						ReviewCount:   28,
						Nutrition: map[string]string{
							"Fibre": "7g per 100g",
						},
					},
					{
						ID: "millet-1kg", Name: "Finger Millet Flour 1kg",
						Description:   "Wimbi flour for porridge",
						ImageURL:      "https://img.sokoni.example/products/millet-1kg.jpg",
						CurrentPrice:  ksh(190),
						OriginalPrice: ksh(210),
						Category:      "Specialty Flours",
						Subcategory:   "Millet",
						Unit:          "1kg pack",
						IsNew:         true,
						DateAdded:     day("2026-08-29"),
						Rating:        4.6,
						ReviewCount:   12,
						Recipes:       []string{"Wimbi porridge"},
					},
				},
			},
		},
	}
}
