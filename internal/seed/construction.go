package seed

import "marketplace-catalog/internal/models"

// Construction is the building-materials storefront.
func Construction() Storefront {
	return Storefront{
		Info: models.StorefrontInfo{
			Key:         "construction",
			Name:        "Construction Materials",
			Description: "Cement, steel and finishing materials from hardware suppliers",
		},
		Taxonomy: models.Taxonomy{
			Storefront: "construction",
			Categories: []models.TaxonomyNode{
				{
					ID: "cement-aggregate", Name: "Cement & Aggregate", Icon: "🧱",
					Children: []models.TaxonomyNode{
						{ID: "cement", Name: "Cement", Children: []models.TaxonomyNode{
							{ID: "32-5", Name: "32.5R"},
							{ID: "42-5", Name: "42.5N"},
						}},
						{ID: "ballast", Name: "Ballast"},
						{ID: "sand", Name: "Sand"},
					},
				},
				{
					ID: "steel", Name: "Steel & Reinforcement", Icon: "🔩",
					Children: []models.TaxonomyNode{
						{ID: "rebar", Name: "Rebar"},
						{ID: "wire-mesh", Name: "Wire Mesh"},
					},
				},
				{
					ID: "finishing", Name: "Finishing", Icon: "🎨",
					Children: []models.TaxonomyNode{
						{ID: "paint", Name: "Paint"},
						{ID: "tiles", Name: "Tiles"},
					},
				},
			},
		},
		Vendors: []models.Vendor{
			{
				ID: "con-industrial-hw", Storefront: "construction",
				Name:         "Industrial Area Hardware",
				Location:     "Nairobi, Industrial Area",
				Description:  "Wholesale cement and steel with site delivery",
				Logo:         "https://img.sokoni.example/vendors/industrial-hw.png",
				Rating:       4.4,
				DeliveryTime: "next day",
				Contact: models.Contact{
					Phone:    "+254 720 909 111",
					WhatsApp: "+254 720 909 111",
					Email:    "quotes@industrialhardware.co.ke",
					MapLink:  "https://maps.example/industrial-hw",
				},
				Products: []models.Product{
					{
						ID: "cement-42-5", Name: "Cement 42.5N 50kg",
						Description:   "High-strength cement for structural work",
						Brand:         "Simba",
						ImageURL:      "https://img.sokoni.example/products/cement-42-5.jpg",
						CurrentPrice:  ksh(780),
						OriginalPrice: ksh(850),
						Category:      "Cement & Aggregate",
						Subcategory:   "Cement",
						Subtype:       "42.5N",
						Tags:          []string{"structural", "wholesale"},
						Unit:          "50kg bag",
						IsHotDeal:     true,
						DealEndsAt:    deal("2026-09-10"),
						DateAdded:     day("2026-08-05"),
						Rating:        4.5,
						ReviewCount:   33,
					},
					{
						ID: "rebar-d12", Name: "Rebar D12 x 12m",
						Description:   "Twisted deformed bar, KEBS certified",
						ImageURL:      "https://img.sokoni.example/products/rebar-d12.jpg",
						CurrentPrice:  ksh(1150),
						OriginalPrice: ksh(1150),
						Category:      "Steel & Reinforcement",
						Subcategory:   "Rebar",
						Unit:          "12m length",
						DateAdded:     day("2026-07-30"),
						Rating:        4.6,
						ReviewCount:   17,
						Specs: map[string]string{
							"Diameter": "12mm",
							"Standard": "KS 02-22",
						},
					},
				},
			},
			{
				ID: "con-lakeside-tiles", Storefront: "construction",
				Name:         "Lakeside Tiles & Paint",
				Location:     "Kisumu",
				Description:  "Finishing materials showroom with fitting referrals",
				Logo:         "https://img.sokoni.example/vendors/lakeside-tiles.png",
				Rating:       4.8,
				DeliveryTime: "2-4 days",
				Contact: models.Contact{
					Phone:   "+254 735 662 240",
					Email:   "showroom@lakesidetiles.co.ke",
					Website: "https://lakesidetiles.co.ke",
				},
				Products: []models.Product{
					{
						ID: "porcelain-60x60", Name: "Porcelain Tiles 60x60",
						Description:   "Polished porcelain floor tiles, sold per carton of 4",
						ImageURL:      "https://img.sokoni.example/products/porcelain-60x60.jpg",
						CurrentPrice:  ksh(2100),
						OriginalPrice: ksh(2400),
						Category:      "Finishing",
						Subcategory:   "Tiles",
						Unit:          "carton (1.44 sqm)",
						IsPopular:     true,
						DateAdded:     day("2026-08-12"),
						Rating:        4.8,
						ReviewCount:   26,
					},
					{
						ID: "weatherguard-20l", Name: "Exterior Paint 20L",
						Description:   "Weather-resistant exterior emulsion",
						Brand:         "Crown",
						ImageURL:      "https://img.sokoni.example/products/weatherguard-20l.jpg",
						CurrentPrice:  ksh(6500),
						OriginalPrice: ksh(7200),
						Category:      "Finishing",
						Subcategory:   "Paint",
						Unit:          "20L bucket",
						DateAdded:     day("2026-06-20"),
						Rating:        4.4,
						ReviewCount:   12,
					},
				},
			},
		},
	}
}
