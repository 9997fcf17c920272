package catalog

import (
	"fmt"
	"strings"

	"marketplace-catalog/internal/models"
)

// Sort selects how filtered vendors are ordered.
type Sort string

const (
	SortDefault   Sort = "default"    // input order
	SortPriceAsc  Sort = "price-asc"  // cheapest surviving product per vendor, ascending
	SortPriceDesc Sort = "price-desc" // priciest surviving product per vendor, descending
	SortRating    Sort = "rating"     // vendor rating descending, missing rating = 0
	SortNewest    Sort = "newest"     // most recently added surviving product, descending
)

// ParseSort maps a query value to a Sort, falling back to SortDefault.
func ParseSort(s string) Sort {
	switch Sort(strings.ToLower(strings.TrimSpace(s))) {
	case SortPriceAsc:
		return SortPriceAsc
	case SortPriceDesc:
		return SortPriceDesc
	case SortRating:
		return SortRating
	case SortNewest:
		return SortNewest
	default:
		return SortDefault
	}
}

// Criteria is the full set of user-selected constraints. Empty strings mean
// "no constraint at that level". PriceMax <= 0 means unbounded above.
type Criteria struct {
	SearchTerm  string
	Category    string
	Subcategory string
	Subtype     string
	PriceMin    float64
	PriceMax    float64
	Sort        Sort
}

// Normalize enforces the drill-down rules against a storefront's taxonomy:
// a subcategory only holds together with its parent category, a subtype only
// with both ancestors. Selections that don't exist in the tree are cleared,
// which matches the page behavior of resetting lower levels to "all" whenever
// a higher level changes.
func (c Criteria) Normalize(tax *models.Taxonomy) Criteria {
	if tax == nil {
		return c
	}
	if c.Category == "" {
		c.Subcategory = ""
		c.Subtype = ""
		return c
	}
	if _, ok := tax.Category(c.Category); !ok {
		c.Category = ""
		c.Subcategory = ""
		c.Subtype = ""
		return c
	}
	if c.Subcategory == "" {
		c.Subtype = ""
		return c
	}
	if _, ok := tax.Subcategory(c.Category, c.Subcategory); !ok {
		c.Subcategory = ""
		c.Subtype = ""
		return c
	}
	if c.Subtype == "" {
		return c
	}
	if _, ok := tax.Subtype(c.Category, c.Subcategory, c.Subtype); !ok {
		c.Subtype = ""
	}
	return c
}

// CacheKey is a stable string form of the criteria, used to key cached
// filter results.
func (c Criteria) CacheKey() string {
	return fmt.Sprintf("q=%s|cat=%s|sub=%s|typ=%s|min=%g|max=%g|sort=%s",
		strings.ToLower(strings.TrimSpace(c.SearchTerm)),
		strings.ToLower(c.Category),
		strings.ToLower(c.Subcategory),
		strings.ToLower(c.Subtype),
		c.PriceMin, c.PriceMax, c.Sort)
}
