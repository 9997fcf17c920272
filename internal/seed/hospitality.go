package seed

import "marketplace-catalog/internal/models"

// Hospitality is the lodging-and-dining storefront; its "products" are
// offerings such as room nights and event packages.
func Hospitality() Storefront {
	return Storefront{
		Info: models.StorefrontInfo{
			Key:         "hospitality",
			Name:        "Hospitality",
			Description: "Hotels, lodges and event venues",
		},
		Taxonomy: models.Taxonomy{
			Storefront: "hospitality",
			Categories: []models.TaxonomyNode{
				{
					ID: "accommodation", Name: "Accommodation", Icon: "🛏️",
					Children: []models.TaxonomyNode{
						{ID: "standard-room", Name: "Standard Room"},
						{ID: "suite", Name: "Suite", Children: []models.TaxonomyNode{
							{ID: "family", Name: "Family"},
							{ID: "executive-suite", Name: "Executive"},
						}},
					},
				},
				{
					ID: "dining", Name: "Dining", Icon: "🍽️",
					Children: []models.TaxonomyNode{
						{ID: "buffet", Name: "Buffet"},
						{ID: "a-la-carte", Name: "A La Carte"},
					},
				},
				{
					ID: "events", Name: "Events & Conferencing", Icon: "🎪",
					Children: []models.TaxonomyNode{
						{ID: "conference", Name: "Conference Package"},
						{ID: "wedding", Name: "Wedding Package"},
					},
				},
			},
		},
		Vendors: []models.Vendor{
			{
				ID: "hsp-lakeview-resort", Storefront: "hospitality",
				Name:         "Lakeview Resort Naivasha",
				Location:     "Naivasha",
				Description:  "Lakefront resort with conference facilities",
				Logo:         "https://img.sokoni.example/vendors/lakeview-resort.png",
				Rating:       4.6,
				DeliveryTime: "instant confirmation",
				Contact: models.Contact{
					Phone:    "+254 705 118 900",
					WhatsApp: "+254 705 118 900",
					Email:    "reservations@lakeviewnaivasha.co.ke",
					Website:  "https://lakeviewnaivasha.co.ke",
					MapLink:  "https://maps.example/lakeview-resort",
				},
				Products: []models.Product{
					{
						ID: "deluxe-lakeview", Name: "Deluxe Lake View Room",
						Description:   "King bed, balcony facing the lake, breakfast included",
						ImageURL:      "https://img.sokoni.example/products/deluxe-lakeview.jpg",
						ExtraImages:   []string{"https://img.sokoni.example/products/deluxe-lakeview-2.jpg"},
						CurrentPrice:  ksh(9500),
						OriginalPrice: ksh(12000),
						Category:      "Accommodation",
						Subcategory:   "Standard Room",
						Unit:          "per night",
						IsHotDeal:     true,
						DealEndsAt:    deal("2026-09-20"),
						DateAdded:     day("2026-08-15"),
						Rating:        4.7,
						ReviewCount:   64,
						Amenities:     []string{"WiFi", "Breakfast", "Pool access", "Balcony"},
					},
					{
						ID: "family-suite", Name: "Family Suite",
						Description:   "Two-bedroom suite sleeping four, garden view",
						ImageURL:      "https://img.sokoni.example/products/family-suite.jpg",
						CurrentPrice:  ksh(18500),
						OriginalPrice: ksh(18500),
						Category:      "Accommodation",
						Subcategory:   "Suite",
						Subtype:       "Family",
						Unit:          "per night",
						DateAdded:     day("2026-07-10"),
						Rating:        4.5,
						ReviewCount:   22,
						Amenities:     []string{"WiFi", "Kitchenette", "Two bathrooms"},
					},
					{
						ID: "conference-day", Name: "Full-Day Conference Package",
						Description:   "Meeting room for 40, two tea breaks and buffet lunch",
						ImageURL:      "https://img.sokoni.example/products/conference-day.jpg",
						CurrentPrice:  ksh(3500),
						OriginalPrice: ksh(4000),
						Category:      "Events & Conferencing",
						Subcategory:   "Conference Package",
						Unit:          "per person per day",
						DateAdded:     day("2026-06-28"),
						Rating:        4.4,
						ReviewCount:   15,
						Features:      []string{"Projector", "Flipcharts", "High-speed WiFi"},
					},
				},
			},
			{
				ID: "hsp-highlands-bistro", Storefront: "hospitality",
				Name:         "Highlands Bistro",
				Location:     "Nyeri",
				Description:  "Farm-to-table dining in the central highlands",
				Logo:         "https://img.sokoni.example/vendors/highlands-bistro.png",
				Rating:       4.8,
				DeliveryTime: "reservations recommended",
				Contact: models.Contact{
					Phone: "+254 718 550 362",
					Email: "book@highlandsbistro.co.ke",
				},
				Products: []models.Product{
					{
						ID: "sunday-buffet", Name: "Sunday Family Buffet",
						Description:   "Unlimited buffet with nyama choma station",
						ImageURL:      "https://img.sokoni.example/products/sunday-buffet.jpg",
						CurrentPrice:  ksh(1800),
						OriginalPrice: ksh(2200),
						Category:      "Dining",
						Subcategory:   "Buffet",
						Unit:          "per person",
						IsPopular:     true,
						DateAdded:     day("2026-08-24"),
						Rating:        4.9,
						ReviewCount:   102,
					},
				},
			},
		},
	}
}
