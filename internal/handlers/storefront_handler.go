package handlers

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"net/http"
	"sort"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"

	"marketplace-catalog/internal/cache"
	"marketplace-catalog/internal/catalog"
	"marketplace-catalog/internal/links"
	"marketplace-catalog/internal/models"
	"marketplace-catalog/internal/pagination"
	"marketplace-catalog/internal/repository"
)

const maxPageSize = 50

type StorefrontHandler struct {
	Repo     repository.Repository
	Cache    cache.Store
	PageSize int
}

type ErrorResponse struct {
	Error string `json:"error"`
}

type VendorListResponse struct {
	Message    string          `json:"message,omitempty"`
	Vendors    []models.Vendor `json:"vendors"`
	Pagination pagination.Meta `json:"pagination"`
}

type VendorSummary struct {
	ID           string  `json:"id"`
	Name         string  `json:"name"`
	Location     string  `json:"location,omitempty"`
	Logo         string  `json:"logo,omitempty"`
	Rating       float64 `json:"rating,omitempty"`
	DeliveryTime string  `json:"delivery_time,omitempty"`
}

// ProductDetailResponse is the expanded modal view of one product: full
// attribute set, image gallery, computed discount and ready-to-open contact
// links for the owning vendor.
type ProductDetailResponse struct {
	Product         models.Product     `json:"product"`
	Vendor          VendorSummary      `json:"vendor"`
	Gallery         []string           `json:"gallery"`
	DiscountPercent int                `json:"discount_percent"`
	Contact         links.ContactLinks `json:"contact"`
}

type PriceRange struct {
	Min float64 `json:"min"`
	Max float64 `json:"max"`
}

type TaxonomyResponse struct {
	Taxonomy   models.Taxonomy `json:"taxonomy"`
	PriceRange PriceRange      `json:"price_range"`
}

type HotDealItem struct {
	VendorID        string         `json:"vendor_id"`
	VendorName      string         `json:"vendor_name"`
	Product         models.Product `json:"product"`
	DiscountPercent int            `json:"discount_percent"`
}

type HotDealsResponse struct {
	Deals []HotDealItem `json:"deals"`
}

// GET /v1/storefronts
func (h *StorefrontHandler) ListStorefronts(c *gin.Context) {
	infos, err := h.Repo.Storefronts(c.Request.Context())
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not list storefronts"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"storefronts": infos})
}

// GET /v1/storefronts/:storefront/vendors
func (h *StorefrontHandler) GetVendors(c *gin.Context) {
	storefront := c.Param("storefront")
	criteria := h.parseCriteria(c)
	page := parseIntQuery(c, "page", 1)
	limit := parseIntQuery(c, "limit", h.PageSize)
	if limit > maxPageSize {
		limit = maxPageSize
	}

	key := fmt.Sprintf(cache.KeyVendorList, storefront, criteria.CacheKey(), page, limit)
	if h.serveCached(c, key) {
		return
	}

	tax, err := h.Repo.Taxonomy(c.Request.Context(), storefront)
	if err != nil {
		h.fail(c, err, "could not load storefront")
		return
	}
	criteria = criteria.Normalize(tax)

	vendors, err := h.Repo.Vendors(c.Request.Context(), storefront)
	if err != nil {
		h.fail(c, err, "could not fetch vendors")
		return
	}

	filtered := catalog.Filter(vendors, criteria)
	start, end, meta := pagination.Slice(len(filtered), page, limit)

	resp := VendorListResponse{
		Vendors:    filtered[start:end],
		Pagination: meta,
	}
	if len(filtered) == 0 {
		resp.Message = "no vendors matched the selected filters — try adjusting your search or price range"
	}
	h.reply(c, key, cache.TTLVendorList, resp)
}

// GET /v1/storefronts/:storefront/vendors/:vendorID
func (h *StorefrontHandler) GetVendor(c *gin.Context) {
	storefront := c.Param("storefront")
	vendorID := c.Param("vendorID")

	key := fmt.Sprintf(cache.KeyVendor, storefront, vendorID)
	if h.serveCached(c, key) {
		return
	}

	vendor, err := h.Repo.Vendor(c.Request.Context(), storefront, vendorID)
	if err != nil {
		h.fail(c, err, "could not fetch vendor")
		return
	}
	h.reply(c, key, cache.TTLDetail, vendor)
}

// GET /v1/storefronts/:storefront/vendors/:vendorID/products/:productID
func (h *StorefrontHandler) GetProduct(c *gin.Context) {
	storefront := c.Param("storefront")
	vendorID := c.Param("vendorID")
	productID := c.Param("productID")

	key := fmt.Sprintf(cache.KeyProduct, storefront, vendorID, productID)
	if h.serveCached(c, key) {
		return
	}

	vendor, err := h.Repo.Vendor(c.Request.Context(), storefront, vendorID)
	if err != nil {
		h.fail(c, err, "could not fetch vendor")
		return
	}
	product, ok := vendor.FindProduct(productID)
	if !ok {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "product not found"})
		return
	}

	resp := ProductDetailResponse{
		Product: product,
		Vendor: VendorSummary{
			ID:           vendor.ID,
			Name:         vendor.Name,
			Location:     vendor.Location,
			Logo:         vendor.Logo,
			Rating:       vendor.Rating,
			DeliveryTime: vendor.DeliveryTime,
		},
		Gallery:         product.Gallery(),
		DiscountPercent: catalog.DiscountPercent(product.OriginalPrice.Amount, product.CurrentPrice.Amount),
		Contact:         links.ForVendor(vendor, product.Name),
	}
	h.reply(c, key, cache.TTLDetail, resp)
}

// GET /v1/storefronts/:storefront/taxonomy
func (h *StorefrontHandler) GetTaxonomy(c *gin.Context) {
	storefront := c.Param("storefront")

	key := fmt.Sprintf(cache.KeyTaxonomy, storefront)
	if h.serveCached(c, key) {
		return
	}

	tax, err := h.Repo.Taxonomy(c.Request.Context(), storefront)
	if err != nil {
		h.fail(c, err, "could not load taxonomy")
		return
	}
	vendors, err := h.Repo.Vendors(c.Request.Context(), storefront)
	if err != nil {
		h.fail(c, err, "could not load catalog")
		return
	}
	min, max := catalog.PriceBounds(vendors)

	h.reply(c, key, cache.TTLTaxonomy, TaxonomyResponse{
		Taxonomy:   *tax,
		PriceRange: PriceRange{Min: min, Max: max},
	})
}

// GET /v1/storefronts/:storefront/hot-deals
func (h *StorefrontHandler) GetHotDeals(c *gin.Context) {
	storefront := c.Param("storefront")

	key := fmt.Sprintf(cache.KeyHotDeals, storefront)
	if h.serveCached(c, key) {
		return
	}

	vendors, err := h.Repo.Vendors(c.Request.Context(), storefront)
	if err != nil {
		h.fail(c, err, "could not fetch vendors")
		return
	}

	now := time.Now()
	deals := make([]HotDealItem, 0)
	for _, v := range vendors {
		for _, p := range v.Products {
			if !p.DealActive(now) {
				continue
			}
			deals = append(deals, HotDealItem{
				VendorID:        v.ID,
				VendorName:      v.Name,
				Product:         p,
				DiscountPercent: catalog.DiscountPercent(p.OriginalPrice.Amount, p.CurrentPrice.Amount),
			})
		}
	}
	sort.SliceStable(deals, func(i, j int) bool {
		return deals[i].DiscountPercent > deals[j].DiscountPercent
	})

	h.reply(c, key, cache.TTLHotDeals, HotDealsResponse{Deals: deals})
}

func (h *StorefrontHandler) parseCriteria(c *gin.Context) catalog.Criteria {
	return catalog.Criteria{
		SearchTerm:  c.Query("q"),
		Category:    c.Query("category"),
		Subcategory: c.Query("subcategory"),
		Subtype:     c.Query("subtype"),
		PriceMin:    parseFloatQuery(c, "min_price"),
		PriceMax:    parseFloatQuery(c, "max_price"),
		Sort:        catalog.ParseSort(c.Query("sort")),
	}
}

// serveCached writes a cached response body if present. Cache errors are
// logged and treated as misses.
func (h *StorefrontHandler) serveCached(c *gin.Context, key string) bool {
	data, found, err := h.Cache.Get(c.Request.Context(), key)
	if err != nil {
		log.Println("⚠️ cache get failed:", err)
		return false
	}
	if !found {
		return false
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
	return true
}

func (h *StorefrontHandler) reply(c *gin.Context, key string, ttl time.Duration, payload any) {
	data, err := json.Marshal(payload)
	if err != nil {
		c.JSON(http.StatusInternalServerError, ErrorResponse{Error: "could not encode response"})
		return
	}
	if err := h.Cache.Set(c.Request.Context(), key, data, ttl); err != nil {
		log.Println("⚠️ cache set failed:", err)
	}
	c.Data(http.StatusOK, "application/json; charset=utf-8", data)
}

func (h *StorefrontHandler) fail(c *gin.Context, err error, msg string) {
	if errors.Is(err, repository.ErrNotFound) {
		c.JSON(http.StatusNotFound, ErrorResponse{Error: "not found"})
		return
	}
	c.JSON(http.StatusInternalServerError, ErrorResponse{Error: msg})
}

// Malformed numeric query values fall back to the default, mirroring the
// storefront pages where a broken slider value means "no constraint".
func parseFloatQuery(c *gin.Context, name string) float64 {
	raw := c.Query(name)
	if raw == "" {
		return 0
	}
	f, err := strconv.ParseFloat(raw, 64)
	if err != nil || f < 0 {
		return 0
	}
	return f
}

func parseIntQuery(c *gin.Context, name string, fallback int) int {
	raw := c.Query(name)
	if raw == "" {
		return fallback
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n < 1 {
		return fallback
	}
	return n
}
