package catalog

import (
	"math"
	"sort"
	"time"

	"marketplace-catalog/internal/models"
)

// sortVendors orders the filtered vendors in place. All orders use a stable
// sort so tied vendors keep their input order.
func sortVendors(vendors []models.Vendor, s Sort) {
	switch s {
	case SortPriceAsc:
		sort.SliceStable(vendors, func(i, j int) bool {
			return minPrice(&vendors[i]) < minPrice(&vendors[j])
		})
	case SortPriceDesc:
		sort.SliceStable(vendors, func(i, j int) bool {
			return maxPrice(&vendors[i]) > maxPrice(&vendors[j])
		})
	case SortRating:
		sort.SliceStable(vendors, func(i, j int) bool {
			return vendors[i].Rating > vendors[j].Rating
		})
	case SortNewest:
		sort.SliceStable(vendors, func(i, j int) bool {
			return newestAdded(&vendors[i]).After(newestAdded(&vendors[j]))
		})
	}
}

func minPrice(v *models.Vendor) float64 {
	min := math.Inf(1)
	for _, p := range v.Products {
		if p.CurrentPrice.Amount < min {
			min = p.CurrentPrice.Amount
		}
	}
	return min
}

func maxPrice(v *models.Vendor) float64 {
	max := math.Inf(-1)
	for _, p := range v.Products {
		if p.CurrentPrice.Amount > max {
			max = p.CurrentPrice.Amount
		}
	}
	return max
}

func newestAdded(v *models.Vendor) time.Time {
	var newest time.Time
	for _, p := range v.Products {
		if p.DateAdded.After(newest) {
			newest = p.DateAdded
		}
	}
	return newest
}

// PriceBounds returns the lowest and highest current price across all
// products of all vendors, for the storefront's price-slider metadata.
// Returns zeros for an empty catalog.
func PriceBounds(vendors []models.Vendor) (min, max float64) {
	first := true
	for _, v := range vendors {
		for _, p := range v.Products {
			a := p.CurrentPrice.Amount
			if first {
				min, max = a, a
				first = false
				continue
			}
			if a < min {
				min = a
			}
			if a > max {
				max = a
			}
		}
	}
	return min, max
}
