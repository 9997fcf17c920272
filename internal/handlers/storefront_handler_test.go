package handlers_test

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marketplace-catalog/internal/cache"
	"marketplace-catalog/internal/handlers"
	"marketplace-catalog/internal/middleware"
	"marketplace-catalog/internal/models"
	"marketplace-catalog/internal/repository"
	"marketplace-catalog/internal/routes"
	"marketplace-catalog/internal/seed"
)

func newTestRouter(t *testing.T, storefronts []seed.Storefront) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	store := cache.NewMemory(time.Minute)
	t.Cleanup(store.Close)

	h := &handlers.StorefrontHandler{
		Repo:     repository.NewMemoryRepository(storefronts),
		Cache:    store,
		PageSize: 6,
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	routes.RegisterRoutes(router, h)
	return router
}

func seedRouter(t *testing.T) *gin.Engine {
	return newTestRouter(t, seed.Storefronts())
}

func get(router *gin.Engine, url string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, url, nil)
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestGetVendorsDrillDownScenario(t *testing.T) {
	// Category + subcategory + price cap must return exactly the raw acacia
	// honey at 650 KSH and exclude the 1200 KSH comb honey.
	router := seedRouter(t)

	w := get(router, "/v1/storefronts/agriculture/vendors?category=Honey+%26+Bee+Products&subcategory=Raw+Honey&max_price=1000")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[handlers.VendorListResponse](t, w)
	require.Len(t, resp.Vendors, 1)
	require.Len(t, resp.Vendors[0].Products, 1)
	assert.Equal(t, "raw-acacia-1kg", resp.Vendors[0].Products[0].ID)
}

func TestGetVendorsEmptyResult(t *testing.T) {
	router := seedRouter(t)

	w := get(router, "/v1/storefronts/agriculture/vendors?q=zzz-no-such-thing")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[handlers.VendorListResponse](t, w)
	assert.Empty(t, resp.Vendors)
	assert.Contains(t, resp.Message, "no vendors matched")
	assert.Zero(t, resp.Pagination.Total)
}

func TestGetVendorsPagination(t *testing.T) {
	router := seedRouter(t)

	w := get(router, "/v1/storefronts/agriculture/vendors?limit=2&page=1")
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[handlers.VendorListResponse](t, w)
	assert.Len(t, first.Vendors, 2)
	assert.True(t, first.Pagination.HasMore)
	assert.Equal(t, int64(3), first.Pagination.Total)

	w = get(router, "/v1/storefronts/agriculture/vendors?limit=2&page=2")
	second := decode[handlers.VendorListResponse](t, w)
	assert.Len(t, second.Vendors, 1)
	assert.False(t, second.Pagination.HasMore)
}

func TestGetVendorsUnknownStorefront(t *testing.T) {
	router := seedRouter(t)

	w := get(router, "/v1/storefronts/gadgets/vendors")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetVendorsMalformedPriceIgnored(t *testing.T) {
	router := seedRouter(t)

	w := get(router, "/v1/storefronts/agriculture/vendors?min_price=abc&max_price=-5")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[handlers.VendorListResponse](t, w)
	assert.NotEmpty(t, resp.Vendors)
}

func TestGetProductDetail(t *testing.T) {
	router := seedRouter(t)

	w := get(router, "/v1/storefronts/agriculture/vendors/agr-baringo-apiaries/products/raw-acacia-1kg")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[handlers.ProductDetailResponse](t, w)
	assert.Equal(t, 13, resp.DiscountPercent) // 750 -> 650
	assert.Len(t, resp.Gallery, 2)
	assert.Equal(t, "tel:+254712345678", resp.Contact.Phone)
	assert.Contains(t, resp.Contact.WhatsApp, "https://wa.me/254712345678")
	assert.NotEmpty(t, resp.Product.Nutrition)

	w = get(router, "/v1/storefronts/agriculture/vendors/agr-baringo-apiaries/products/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTaxonomyWithPriceRange(t *testing.T) {
	router := seedRouter(t)

	w := get(router, "/v1/storefronts/agriculture/taxonomy")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[handlers.TaxonomyResponse](t, w)
	require.Len(t, resp.Taxonomy.Categories, 3)
	assert.Equal(t, 60.0, resp.PriceRange.Min)   // kale bundle
	assert.Equal(t, 4200.0, resp.PriceRange.Max) // maize bag
}

func TestListStorefronts(t *testing.T) {
	router := seedRouter(t)

	w := get(router, "/v1/storefronts")
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Storefronts []models.StorefrontInfo `json:"storefronts"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Storefronts, 6)
}

func TestHotDealsExcludeExpired(t *testing.T) {
	future := time.Now().Add(24 * time.Hour)
	past := time.Now().Add(-24 * time.Hour)

	router := newTestRouter(t, []seed.Storefront{{
		Info:     models.StorefrontInfo{Key: "deals", Name: "Deals"},
		Taxonomy: models.Taxonomy{Storefront: "deals"},
		Vendors: []models.Vendor{{
			ID: "v1", Storefront: "deals", Name: "Dealer",
			Products: []models.Product{
				{
					ID: "live", Name: "Live Deal",
					CurrentPrice:  models.Price{Amount: 650, Currency: "KSH"},
					OriginalPrice: models.Price{Amount: 750, Currency: "KSH"},
					IsHotDeal:     true, DealEndsAt: &future,
				},
				{
					ID: "expired", Name: "Expired Deal",
					CurrentPrice:  models.Price{Amount: 100, Currency: "KSH"},
					OriginalPrice: models.Price{Amount: 400, Currency: "KSH"},
					IsHotDeal:     true, DealEndsAt: &past,
				},
				{
					ID: "plain", Name: "Not a deal",
					CurrentPrice:  models.Price{Amount: 50, Currency: "KSH"},
					OriginalPrice: models.Price{Amount: 50, Currency: "KSH"},
				},
			},
		}},
	}})

	w := get(router, "/v1/storefronts/deals/hot-deals")
	require.Equal(t, http.StatusOK, w.Code)

	resp := decode[handlers.HotDealsResponse](t, w)
	require.Len(t, resp.Deals, 1)
	assert.Equal(t, "live", resp.Deals[0].Product.ID)
	assert.Equal(t, 13, resp.Deals[0].DiscountPercent)
}

func TestVendorListServedFromCache(t *testing.T) {
	router := seedRouter(t)
	url := "/v1/storefronts/retail/vendors?q=rice"

	first := get(router, url)
	require.Equal(t, http.StatusOK, first.Code)

	second := get(router, url)
	require.Equal(t, http.StatusOK, second.Code)
	assert.Equal(t, first.Body.String(), second.Body.String())
}

func TestRequestIDHeader(t *testing.T) {
	router := seedRouter(t)

	w := get(router, "/healthz")
	require.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	w2 := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/healthz", nil)
	req.Header.Set("X-Request-ID", "abc-123")
	router.ServeHTTP(w2, req)
	assert.Equal(t, "abc-123", w2.Header().Get("X-Request-ID"))
}
