package seed

import "marketplace-catalog/internal/models"

// Cars is the vehicle-deals storefront: dealers listing used and new stock.
func Cars() Storefront {
	return Storefront{
		Info: models.StorefrontInfo{
			Key:         "cars",
			Name:        "Car Deals",
			Description: "New and used vehicles from verified dealers",
		},
		Taxonomy: models.Taxonomy{
			Storefront: "cars",
			Categories: []models.TaxonomyNode{
				{
					ID: "suvs", Name: "SUVs", Icon: "🚙",
					Children: []models.TaxonomyNode{
						{ID: "compact-suv", Name: "Compact SUV"},
						{ID: "full-size-suv", Name: "Full-Size SUV", Children: []models.TaxonomyNode{
							{ID: "diesel", Name: "Diesel"},
							{ID: "petrol", Name: "Petrol"},
						}},
					},
				},
				{
					ID: "sedans", Name: "Sedans", Icon: "🚗",
					Children: []models.TaxonomyNode{
						{ID: "executive", Name: "Executive"},
						{ID: "economy", Name: "Economy"},
					},
				},
				{
					ID: "pickups", Name: "Pickups", Icon: "🛻",
					Children: []models.TaxonomyNode{
						{ID: "single-cab", Name: "Single Cab"},
						{ID: "double-cab", Name: "Double Cab"},
					},
				},
			},
		},
		Vendors: []models.Vendor{
			{
				ID: "car-mombasa-motors", Storefront: "cars",
				Name:         "Mombasa Road Motors",
				Location:     "Nairobi, Mombasa Road",
				Description:  "Fresh imports and locally used vehicles with inspection reports",
				Logo:         "https://img.sokoni.example/vendors/mombasa-motors.png",
				Rating:       4.5,
				DeliveryTime: "viewing by appointment",
				Contact: models.Contact{
					Phone:    "+254 722 555 019",
					WhatsApp: "+254 722 555 019",
					Email:    "sales@mombasaroadmotors.co.ke",
					Website:  "https://mombasaroadmotors.co.ke",
					MapLink:  "https://maps.example/mombasa-road-motors",
				},
				Products: []models.Product{
					{
						ID: "xtrail-2019", Name: "Nissan X-Trail 2019",
						Description:   "Fresh import, 45,000km, sunroof, leather interior",
						Brand:         "Nissan",
						ImageURL:      "https://img.sokoni.example/products/xtrail-2019.jpg",
						ExtraImages:   []string{"https://img.sokoni.example/products/xtrail-2019-interior.jpg"},
						CurrentPrice:  ksh(2850000),
						OriginalPrice: ksh(3100000),
						Category:      "SUVs",
						Subcategory:   "Compact SUV",
						Tags:          []string{"fresh import", "sunroof"},
						IsHotDeal:     true,
						DealEndsAt:    deal("2026-09-15"),
						DateAdded:     day("2026-08-10"),
						Rating:        4.6,
						ReviewCount:   9,
						Specs: map[string]string{
							"Engine":       "2000cc petrol",
							"Transmission": "CVT",
							"Mileage":      "45,000 km",
							"Year":         "2019",
						},
					},
					{
						ID: "landcruiser-v8", Name: "Toyota Land Cruiser V8 2018",
						Description:   "Locally used, full service history, diesel",
						Brand:         "Toyota",
						ImageURL:      "https://img.sokoni.example/products/landcruiser-v8.jpg",
						CurrentPrice:  ksh(9800000),
						OriginalPrice: ksh(10500000),
						Category:      "SUVs",
						Subcategory:   "Full-Size SUV",
						Subtype:       "Diesel",
						DateAdded:     day("2026-07-18"),
						Rating:        4.9,
						ReviewCount:   5,
						Specs: map[string]string{
							"Engine":       "4500cc diesel",
							"Transmission": "Automatic",
							"Year":         "2018",
						},
					},
				},
			},
			{
				ID: "car-nakuru-auto", Storefront: "cars",
				Name:         "Nakuru Auto Hub",
				Location:     "Nakuru",
				Description:  "Economy sedans and work pickups at trade-in friendly prices",
				Logo:         "https://img.sokoni.example/vendors/nakuru-auto.png",
				Rating:       4.1,
				DeliveryTime: "nationwide delivery",
				Contact: models.Contact{
					Phone:   "+254 710 404 787",
					Email:   "info@nakuruautohub.co.ke",
					Website: "https://nakuruautohub.co.ke",
				},
				Products: []models.Product{
					{
						ID: "axio-2017", Name: "Toyota Axio 2017",
						Description:   "Clean economy sedan, 1500cc, low consumption",
						Brand:         "Toyota",
						ImageURL:      "https://img.sokoni.example/products/axio-2017.jpg",
						CurrentPrice:  ksh(1250000),
						OriginalPrice: ksh(1380000),
						Category:      "Sedans",
						Subcategory:   "Economy",
						IsPopular:     true,
						DateAdded:     day("2026-08-22"),
						Rating:        4.3,
						ReviewCount:   21,
						Specs: map[string]string{
							"Engine": "1500cc petrol",
							"Year":   "2017",
						},
					},
					{
						ID: "hilux-double-cab", Name: "Toyota Hilux Double Cab 2020",
						Description:   "Workhorse pickup with canopy, one owner",
						Brand:         "Toyota",
						ImageURL:      "https://img.sokoni.example/products/hilux-2020.jpg",
						CurrentPrice:  ksh(4650000),
						OriginalPrice: ksh(4650000),
						Category:      "Pickups",
						Subcategory:   "Double Cab",
						IsNew:         true,
						DateAdded:     day("2026-08-27"),
						Rating:        4.7,
						ReviewCount:   3,
						Specs: map[string]string{
							"Engine": "2800cc diesel",
							"Year":   "2020",
						},
					},
				},
			},
		},
	}
}
