package catalog

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-catalog/internal/models"
)

func ksh(amount float64) models.Price {
	return models.Price{Amount: amount, Currency: "KSH"}
}

func honeyVendor() models.Vendor {
	return models.Vendor{
		ID:       "v1",
		Name:     "Baringo Apiaries",
		Location: "Kabarnet",
		Rating:   4.7,
		Products: []models.Product{
			{
				ID:            "p1",
				Name:          "Raw Acacia Honey",
				CurrentPrice:  ksh(650),
				OriginalPrice: ksh(750),
				Category:      "Honey & Bee Products",
				Subcategory:   "Raw Honey",
				Subtype:       "Acacia",
				DateAdded:     time.Date(2026, 7, 14, 0, 0, 0, 0, time.UTC),
			},
			{
				ID:            "p2",
				Name:          "Comb Honey",
				CurrentPrice:  ksh(1200),
				OriginalPrice: ksh(1200),
				Category:      "Honey & Bee Products",
				Subcategory:   "Comb Honey",
				DateAdded:     time.Date(2026, 8, 20, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}

func grainVendor() models.Vendor {
	return models.Vendor{
		ID:       "v2",
		Name:     "Uasin Grain Stores",
		Location: "Eldoret",
		Rating:   4.3,
		Products: []models.Product{
			{
				ID:            "p3",
				Name:          "Dry Maize",
				Brand:         "Rift Harvest",
				Tags:          []string{"bulk"},
				CurrentPrice:  ksh(4200),
				OriginalPrice: ksh(4800),
				Category:      "Cereals & Grains",
				Subcategory:   "Maize",
				DateAdded:     time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
			},
		},
	}
}

func TestFilterCategorySubcategoryPriceRange(t *testing.T) {
	// One vendor, two honey products at 650 and 1200 KSH; only the first is
	// Raw Honey. Category + subcategory + price cap of 1000 must leave
	// exactly the first product.
	vendors := []models.Vendor{honeyVendor(), grainVendor()}

	got := Filter(vendors, Criteria{
		Category:    "Honey & Bee Products",
		Subcategory: "Raw Honey",
		PriceMax:    1000,
	})

	require.Len(t, got, 1)
	require.Len(t, got[0].Products, 1)
	assert.Equal(t, "p1", got[0].Products[0].ID)
}

func TestFilterCategoryContainment(t *testing.T) {
	vendors := []models.Vendor{honeyVendor(), grainVendor()}

	got := Filter(vendors, Criteria{Category: "honey & bee products"})

	require.NotEmpty(t, got)
	for _, v := range got {
		for _, p := range v.Products {
			assert.Equal(t, "Honey & Bee Products", p.Category)
		}
	}
}

func TestFilterIdempotent(t *testing.T) {
	vendors := []models.Vendor{honeyVendor(), grainVendor()}
	c := Criteria{SearchTerm: "honey", Sort: SortPriceAsc}

	once := Filter(vendors, c)
	twice := Filter(once, c)
	assert.Equal(t, once, twice)
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	vendors := []models.Vendor{honeyVendor()}

	Filter(vendors, Criteria{Subcategory: "Raw Honey"})

	assert.Len(t, vendors[0].Products, 2)
}

func TestFilterPriceBoundsInclusive(t *testing.T) {
	vendors := []models.Vendor{honeyVendor()}

	exact := Filter(vendors, Criteria{PriceMin: 650, PriceMax: 650})
	require.Len(t, exact, 1)
	require.Len(t, exact[0].Products, 1)
	assert.Equal(t, "p1", exact[0].Products[0].ID)

	below := Filter(vendors, Criteria{PriceMin: 651, PriceMax: 1199})
	assert.Empty(t, below)
}

func TestFilterSubtypeRequiresSubtype(t *testing.T) {
	vendors := []models.Vendor{honeyVendor()}

	got := Filter(vendors, Criteria{Subtype: "Acacia"})
	require.Len(t, got, 1)
	require.Len(t, got[0].Products, 1)
	// p2 has no subtype and must never match a non-empty subtype filter.
	assert.Equal(t, "p1", got[0].Products[0].ID)
}

func TestFilterSearchMatchesVendorFields(t *testing.T) {
	vendors := []models.Vendor{honeyVendor(), grainVendor()}

	// "eldoret" only appears in the grain vendor's location; all its
	// products that pass the remaining filters count as matches.
	got := Filter(vendors, Criteria{SearchTerm: "ELDORET"})
	require.Len(t, got, 1)
	assert.Equal(t, "v2", got[0].ID)
	assert.Len(t, got[0].Products, 1)
}

func TestFilterSearchMatchesProductTag(t *testing.T) {
	vendors := []models.Vendor{honeyVendor(), grainVendor()}

	got := Filter(vendors, Criteria{SearchTerm: "bulk"})
	require.Len(t, got, 1)
	assert.Equal(t, "v2", got[0].ID)
}

func TestFilterNoMatchesYieldsEmptyList(t *testing.T) {
	vendors := []models.Vendor{honeyVendor(), grainVendor()}

	var got []models.Vendor
	assert.NotPanics(t, func() {
		got = Filter(vendors, Criteria{SearchTerm: "zzz-nothing-matches"})
	})
	assert.Empty(t, got)
}

func TestFilterExcludesVendorsWithNoSurvivingProducts(t *testing.T) {
	vendors := []models.Vendor{honeyVendor(), grainVendor()}

	got := Filter(vendors, Criteria{Category: "Cereals & Grains"})
	require.Len(t, got, 1)
	assert.Equal(t, "v2", got[0].ID)
}

func TestSortPriceAscStableForTies(t *testing.T) {
	a := models.Vendor{ID: "a", Products: []models.Product{{ID: "x", CurrentPrice: ksh(100)}}}
	b := models.Vendor{ID: "b", Products: []models.Product{{ID: "y", CurrentPrice: ksh(100)}}}
	c := models.Vendor{ID: "c", Products: []models.Product{{ID: "z", CurrentPrice: ksh(50)}}}

	got := Filter([]models.Vendor{a, b, c}, Criteria{Sort: SortPriceAsc})

	require.Len(t, got, 3)
	assert.Equal(t, "c", got[0].ID)
	// a and b share the same min price and keep their input order.
	assert.Equal(t, "a", got[1].ID)
	assert.Equal(t, "b", got[2].ID)
}

func TestSortRatingMissingTreatedAsZero(t *testing.T) {
	rated := honeyVendor()
	unrated := grainVendor()
	unrated.Rating = 0

	got := Filter([]models.Vendor{unrated, rated}, Criteria{Sort: SortRating})

	require.Len(t, got, 2)
	assert.Equal(t, "v1", got[0].ID)
	assert.Equal(t, "v2", got[1].ID)
}

func TestSortNewestUsesSurvivingProducts(t *testing.T) {
	got := Filter([]models.Vendor{grainVendor(), honeyVendor()}, Criteria{Sort: SortNewest})

	require.Len(t, got, 2)
	// Honey vendor's comb honey (2026-08-20) is newer than the maize
	// (2026-08-01).
	assert.Equal(t, "v1", got[0].ID)
}

func TestSortPriceDescUsesMaxSurvivingPrice(t *testing.T) {
	got := Filter([]models.Vendor{honeyVendor(), grainVendor()}, Criteria{Sort: SortPriceDesc})

	require.Len(t, got, 2)
	assert.Equal(t, "v2", got[0].ID) // maize at 4200 beats honey max 1200
}

func TestNormalizeDrillDownResets(t *testing.T) {
	tax := &models.Taxonomy{
		Storefront: "agriculture",
		Categories: []models.TaxonomyNode{
			{ID: "honey", Name: "Honey & Bee Products", Children: []models.TaxonomyNode{
				{ID: "raw", Name: "Raw Honey", Children: []models.TaxonomyNode{
					{ID: "acacia", Name: "Acacia"},
				}},
			}},
			{ID: "cereals", Name: "Cereals & Grains"},
		},
	}

	t.Run("valid chain kept", func(t *testing.T) {
		c := Criteria{Category: "honey & bee products", Subcategory: "raw honey", Subtype: "ACACIA"}
		got := c.Normalize(tax)
		assert.Equal(t, c, got)
	})

	t.Run("subcategory from another category cleared", func(t *testing.T) {
		got := Criteria{Category: "Cereals & Grains", Subcategory: "Raw Honey", Subtype: "Acacia"}.Normalize(tax)
		assert.Empty(t, got.Subcategory)
		assert.Empty(t, got.Subtype)
	})

	t.Run("empty category clears lower levels", func(t *testing.T) {
		got := Criteria{Subcategory: "Raw Honey", Subtype: "Acacia"}.Normalize(tax)
		assert.Empty(t, got.Subcategory)
		assert.Empty(t, got.Subtype)
	})

	t.Run("unknown category clears everything", func(t *testing.T) {
		got := Criteria{Category: "Fish", Subcategory: "Raw Honey"}.Normalize(tax)
		assert.Empty(t, got.Category)
		assert.Empty(t, got.Subcategory)
	})

	t.Run("unknown subtype cleared", func(t *testing.T) {
		got := Criteria{Category: "Honey & Bee Products", Subcategory: "Raw Honey", Subtype: "Wildflower"}.Normalize(tax)
		assert.Equal(t, "Raw Honey", got.Subcategory)
		assert.Empty(t, got.Subtype)
	})
}

func TestPriceBounds(t *testing.T) {
	min, max := PriceBounds([]models.Vendor{honeyVendor(), grainVendor()})
	assert.Equal(t, 650.0, min)
	assert.Equal(t, 4200.0, max)

	min, max = PriceBounds(nil)
	assert.Zero(t, min)
	assert.Zero(t, max)
}
