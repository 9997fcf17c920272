// Package seed holds the static catalogs of the six marketplace storefronts.
// In a full deployment this data would come from vendor onboarding; here it
// is the fixture set the memory repository serves directly and cmd/seed
// imports into MongoDB.
package seed

import (
	"time"

	"marketplace-catalog/internal/models"
)

// Storefront bundles one storefront's metadata, taxonomy and vendor catalog.
type Storefront struct {
	Info     models.StorefrontInfo
	Taxonomy models.Taxonomy
	Vendors  []models.Vendor
}

// Storefronts returns all seed storefronts in display order.
func Storefronts() []Storefront {
	return []Storefront{
		Agriculture(),
		Cars(),
		Construction(),
		Hospitality(),
		Retail(),
		Flour(),
	}
}

func day(date string) time.Time {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		panic("seed: bad date " + date)
	}
	return t
}

func deal(date string) *time.Time {
	t := day(date)
	return &t
}

func ksh(amount float64) models.Price {
	return models.Price{Amount: amount, Currency: "KSH"}
}
