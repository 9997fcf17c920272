// Package repository abstracts where the catalog data lives so the filter
// pipeline and handlers never care whether vendors come from the in-process
// seed data or a MongoDB collection.
package repository

import (
	"context"
	"errors"

	"marketplace-catalog/internal/models"
)

// ErrNotFound is returned for unknown storefronts, vendors, and products.
var ErrNotFound = errors.New("not found")

// Repository is a read-only view of the marketplace catalog.
type Repository interface {
	// Storefronts lists the marketplace's storefront pages.
	Storefronts(ctx context.Context) ([]models.StorefrontInfo, error)

	// Vendors returns the full vendor list of a storefront in display order.
	Vendors(ctx context.Context, storefront string) ([]models.Vendor, error)

	// Vendor returns a single vendor of a storefront.
	Vendor(ctx context.Context, storefront, vendorID string) (*models.Vendor, error)

	// Taxonomy returns a storefront's category tree.
	Taxonomy(ctx context.Context, storefront string) (*models.Taxonomy, error)
}
