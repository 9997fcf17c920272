// Package catalog implements the storefront filter/sort pipeline: pure
// functions from a vendor list plus filter criteria to the vendor list to
// display, with each vendor's products pre-filtered.
package catalog

import (
	"strings"

	"marketplace-catalog/internal/models"
)

// Filter applies the criteria to the vendor list and returns a new slice.
//
// Every filter is applied product-first: a product survives if it passes the
// taxonomy and price constraints AND the search term (either because the term
// hits one of its own text fields or one of its vendor's). A vendor is
// included iff at least one of its products survives, and its product list is
// replaced by the surviving products. The input is never mutated.
func Filter(vendors []models.Vendor, c Criteria) []models.Vendor {
	term := strings.ToLower(strings.TrimSpace(c.SearchTerm))

	out := make([]models.Vendor, 0, len(vendors))
	for _, v := range vendors {
		vendorHit := term == "" || vendorMatchesTerm(&v, term)

		kept := make([]models.Product, 0, len(v.Products))
		for _, p := range v.Products {
			if !matchesTaxonomy(&p, c) || !matchesPrice(&p, c) {
				continue
			}
			if !vendorHit && !productMatchesTerm(&p, term) {
				continue
			}
			kept = append(kept, p)
		}
		if len(kept) == 0 {
			continue
		}
		filtered := v
		filtered.Products = kept
		out = append(out, filtered)
	}

	sortVendors(out, c.Sort)
	return out
}

func matchesTaxonomy(p *models.Product, c Criteria) bool {
	if c.Category != "" && !strings.EqualFold(p.Category, c.Category) {
		return false
	}
	if c.Subcategory != "" && !strings.EqualFold(p.Subcategory, c.Subcategory) {
		return false
	}
	if c.Subtype != "" {
		// Products without a subtype never match a subtype filter.
		if p.Subtype == "" || !strings.EqualFold(p.Subtype, c.Subtype) {
			return false
		}
	}
	return true
}

func matchesPrice(p *models.Product, c Criteria) bool {
	amount := p.CurrentPrice.Amount
	if amount < c.PriceMin {
		return false
	}
	if c.PriceMax > 0 && amount > c.PriceMax {
		return false
	}
	return true
}

func vendorMatchesTerm(v *models.Vendor, term string) bool {
	return contains(v.Name, term) ||
		contains(v.Location, term) ||
		contains(v.Description, term)
}

func productMatchesTerm(p *models.Product, term string) bool {
	if contains(p.Name, term) || contains(p.Description, term) || contains(p.Brand, term) {
		return true
	}
	for _, tag := range p.Tags {
		if contains(tag, term) {
			return true
		}
	}
	return false
}

func contains(field, lowerTerm string) bool {
	return field != "" && strings.Contains(strings.ToLower(field), lowerTerm)
}
