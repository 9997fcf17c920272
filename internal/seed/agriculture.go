package seed

import "marketplace-catalog/internal/models"

// Agriculture is the farm-produce storefront: honey, cereals and fresh
// produce from smallholder vendors.
func Agriculture() Storefront {
	return Storefront{
		Info: models.StorefrontInfo{
			Key:         "agriculture",
			Name:        "Agriculture Products",
			Description: "Farm produce, honey and cereals direct from the source",
		},
		Taxonomy: models.Taxonomy{
			Storefront: "agriculture",
			Categories: []models.TaxonomyNode{
				{
					ID: "honey-bee", Name: "Honey & Bee Products", Icon: "🍯",
					Children: []models.TaxonomyNode{
						{ID: "raw-honey", Name: "Raw Honey", Children: []models.TaxonomyNode{
							{ID: "acacia", Name: "Acacia"},
							{ID: "wildflower", Name: "Wildflower"},
						}},
						{ID: "comb-honey", Name: "Comb Honey"},
						{ID: "beeswax", Name: "Beeswax"},
					},
				},
				{
					ID: "cereals", Name: "Cereals & Grains", Icon: "🌾",
					Children: []models.TaxonomyNode{
						{ID: "maize", Name: "Maize"},
						{ID: "beans", Name: "Beans", Children: []models.TaxonomyNode{
							{ID: "rosecoco", Name: "Rosecoco"},
							{ID: "yellow-beans", Name: "Yellow Beans"},
						}},
					},
				},
				{
					ID: "fresh-produce", Name: "Fresh Produce", Icon: "🥬",
					Children: []models.TaxonomyNode{
						{ID: "vegetables", Name: "Vegetables"},
						{ID: "fruits", Name: "Fruits"},
					},
				},
			},
		},
		Vendors: []models.Vendor{
			{
				ID: "agr-baringo-apiaries", Storefront: "agriculture",
				Name:         "Baringo Highland Apiaries",
				Location:     "Kabarnet, Baringo",
				Description:  "Family-run apiary producing raw and comb honey from acacia forests",
				Logo:         "https://img.sokoni.example/vendors/baringo-apiaries.png",
				Rating:       4.7,
				DeliveryTime: "1-2 days",
				Contact: models.Contact{
					Phone:    "+254 712 345 678",
					WhatsApp: "+254 712 345 678",
					Email:    "orders@baringoapiaries.co.ke",
					MapLink:  "https://maps.example/baringo-apiaries",
				},
				Products: []models.Product{
					{
						ID: "raw-acacia-1kg", Name: "Raw Acacia Honey 1kg",
						Description:   "Unprocessed acacia honey, cold-extracted and coarse-filtered",
						Brand:         "Baringo Gold",
						ImageURL:      "https://img.sokoni.example/products/raw-acacia-1kg.jpg",
						ExtraImages:   []string{"https://img.sokoni.example/products/raw-acacia-1kg-2.jpg"},
						CurrentPrice:  ksh(650),
						OriginalPrice: ksh(750),
						Category:      "Honey & Bee Products",
						Subcategory:   "Raw Honey",
						Subtype:       "Acacia",
						Tags:          []string{"organic", "unprocessed"},
						Unit:          "1kg jar",
						IsPopular:     true,
						DateAdded:     day("2026-07-14"),
						Rating:        4.8,
						ReviewCount:   42,
						Nutrition: map[string]string{
							"Energy":  "304 kcal per 100g",
							"Sugars":  "82g per 100g",
							"Protein": "0.3g per 100g",
						},
						Recipes: []string{"Honey-lemon tea", "Glazed roast vegetables"},
					},
					{
						ID: "comb-honey-500g", Name: "Comb Honey 500g",
						Description:   "Cut comb honey straight from the frame",
						Brand:         "Baringo Gold",
						ImageURL:      "https://img.sokoni.example/products/comb-honey-500g.jpg",
						CurrentPrice:  ksh(1200),
						OriginalPrice: ksh(1200),
						Category:      "Honey & Bee Products",
						Subcategory:   "Comb Honey",
						Unit:          "500g tray",
						IsNew:         true,
						DateAdded:     day("2026-08-20"),
						Rating:        4.6,
						ReviewCount:   11,
					},
					{
						ID: "beeswax-block", Name: "Pure Beeswax Block",
						Description:   "Filtered beeswax for candles and cosmetics",
						ImageURL:      "https://img.sokoni.example/products/beeswax-block.jpg",
						CurrentPrice:  ksh(450),
						OriginalPrice: ksh(500),
						Category:      "Honey & Bee Products",
						Subcategory:   "Beeswax",
						Unit:          "250g block",
						DateAdded:     day("2026-06-02"),
						Rating:        4.4,
						ReviewCount:   8,
					},
				},
			},
			{
				ID: "agr-uasin-grains", Storefront: "agriculture",
				Name:         "Uasin Gishu Grain Stores",
				Location:     "Eldoret",
				Description:  "Bulk maize and beans from Rift Valley farms",
				Logo:         "https://img.sokoni.example/vendors/uasin-grains.png",
				Rating:       4.3,
				DeliveryTime: "2-3 days",
				Contact: models.Contact{
					Phone:    "+254 733 222 110",
					WhatsApp: "+254 733 222 110",
					Email:    "sales@uasingrains.co.ke",
				},
				Products: []models.Product{
					{
						ID: "maize-90kg", Name: "Dry Maize 90kg Bag",
						Description:   "Grade 1 dry maize, moisture tested",
						ImageURL:      "https://img.sokoni.example/products/maize-90kg.jpg",
						CurrentPrice:  ksh(4200),
						OriginalPrice: ksh(4800),
						Category:      "Cereals & Grains",
						Subcategory:   "Maize",
						Tags:          []string{"bulk", "grade 1"},
						Unit:          "90kg bag",
						IsHotDeal:     true,
						DealEndsAt:    deal("2026-09-30"),
						DateAdded:     day("2026-08-01"),
						Rating:        4.2,
						ReviewCount:   27,
					},
					{
						ID: "rosecoco-2kg", Name: "Rosecoco Beans 2kg",
						Description:   "Hand-sorted rosecoco beans",
						ImageURL:      "https://img.sokoni.example/products/rosecoco-2kg.jpg",
						CurrentPrice:  ksh(520),
						OriginalPrice: ksh(560),
						Category:      "Cereals & Grains",
						Subcategory:   "Beans",
						Subtype:       "Rosecoco",
						Unit:          "2kg pack",
						DateAdded:     day("2026-07-25"),
						Rating:        4.5,
						ReviewCount:   19,
						Recipes:       []string{"Githeri", "Bean stew"},
					},
				},
			},
			{
				ID: "agr-kinangop-fresh", Storefront: "agriculture",
				Name:         "Kinangop Fresh Growers",
				Location:     "Nyandarua",
				Description:  "Highland vegetables picked to order",
				Logo:         "https://img.sokoni.example/vendors/kinangop-fresh.png",
				Rating:       4.9,
				DeliveryTime: "same day",
				Contact: models.Contact{
					Phone: "+254 700 818 233",
					Email: "hello@kinangopfresh.co.ke",
				},
				Products: []models.Product{
					{
						ID: "kale-bundle", Name: "Sukuma Wiki Bundle",
						Description:   "Fresh kale bundle, harvested daily",
						ImageURL:      "https://img.sokoni.example/products/kale-bundle.jpg",
						CurrentPrice:  ksh(60),
						OriginalPrice: ksh(60),
						Category:      "Fresh Produce",
						Subcategory:   "Vegetables",
						Unit:          "bundle",
						IsPopular:     true,
						DateAdded:     day("2026-08-28"),
						Rating:        4.9,
						ReviewCount:   88,
					},
					{
						ID: "hass-avocado-tray", Name: "Hass Avocado Tray",
						Description:   "Export-grade hass avocados, tray of 12",
						ImageURL:      "https://img.sokoni.example/products/hass-avocado.jpg",
						CurrentPrice:  ksh(540),
						OriginalPrice: ksh(600),
						Category:      "Fresh Produce",
						Subcategory:   "Fruits",
						Unit:          "tray of 12",
						IsNew:         true,
						DateAdded:     day("2026-08-25"),
						Rating:        4.7,
						ReviewCount:   14,
						Nutrition: map[string]string{
							"Energy": "160 kcal per 100g",
							"Fat":    "15g per 100g",
						},
					},
				},
			},
		},
	}
}
