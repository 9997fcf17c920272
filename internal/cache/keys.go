package cache

import "time"

const (
	// Filtered vendor pages: vendors:{storefront}:{criteria}:{page}:{limit}
	KeyVendorList = "vendors:%s:%s:%d:%d"

	// Single vendor: vendor:{storefront}:{vendor_id}
	KeyVendor = "vendor:%s:%s"

	// Product detail: product:{storefront}:{vendor_id}:{product_id}
	KeyProduct = "product:%s:%s:%s"

	// Taxonomy + filter metadata: taxonomy:{storefront}
	KeyTaxonomy = "taxonomy:%s"

	// Active hot deals: hotdeals:{storefront}
	KeyHotDeals = "hotdeals:%s"
)

var (
	TTLVendorList = 2 * time.Minute
	TTLDetail     = 5 * time.Minute
	TTLTaxonomy   = 30 * time.Minute
	TTLHotDeals   = 1 * time.Minute
)
