package models

import "time"

// Price is a monetary amount in a display currency (KSH for every seed
// storefront). Amount is never negative.
type Price struct {
	Amount   float64 `json:"amount" bson:"amount"`
	Currency string  `json:"currency" bson:"currency"`
}

// Product is a sellable item (or hospitality offering) owned by exactly one
// vendor. IDs are unique within the owning vendor's list only.
//
// Optional attribute groups (Nutrition, Specs, Amenities, Features, Recipes)
// are domain-specific: an agriculture product carries nutrition facts, a car
// deal carries specs, a hotel offering carries amenities. Absent groups are
// omitted from JSON entirely, never rendered blank.
type Product struct {
	ID            string            `json:"id" bson:"id"`
	Name          string            `json:"name" bson:"name"`
	Description   string            `json:"description,omitempty" bson:"description,omitempty"`
	Brand         string            `json:"brand,omitempty" bson:"brand,omitempty"`
	ImageURL      string            `json:"image_url" bson:"image_url"`
	ExtraImages   []string          `json:"extra_images,omitempty" bson:"extra_images,omitempty"`
	CurrentPrice  Price             `json:"current_price" bson:"current_price"`
	OriginalPrice Price             `json:"original_price" bson:"original_price"`
	Category      string            `json:"category" bson:"category"`
	Subcategory   string            `json:"subcategory,omitempty" bson:"subcategory,omitempty"`
	Subtype       string            `json:"subtype,omitempty" bson:"subtype,omitempty"`
	Tags          []string          `json:"tags,omitempty" bson:"tags,omitempty"`
	Unit          string            `json:"unit,omitempty" bson:"unit,omitempty"`
	IsNew         bool              `json:"is_new,omitempty" bson:"is_new,omitempty"`
	IsPopular     bool              `json:"is_popular,omitempty" bson:"is_popular,omitempty"`
	IsHotDeal     bool              `json:"is_hot_deal,omitempty" bson:"is_hot_deal,omitempty"`
	DealEndsAt    *time.Time        `json:"deal_ends_at,omitempty" bson:"deal_ends_at,omitempty"`
	DateAdded     time.Time         `json:"date_added" bson:"date_added"`
	Rating        float64           `json:"rating,omitempty" bson:"rating,omitempty"`
	ReviewCount   int               `json:"review_count,omitempty" bson:"review_count,omitempty"`
	Nutrition     map[string]string `json:"nutrition,omitempty" bson:"nutrition,omitempty"`
	Specs         map[string]string `json:"specs,omitempty" bson:"specs,omitempty"`
	Amenities     []string          `json:"amenities,omitempty" bson:"amenities,omitempty"`
	Features      []string          `json:"features,omitempty" bson:"features,omitempty"`
	Recipes       []string          `json:"recipes,omitempty" bson:"recipes,omitempty"`
}

// Gallery returns the main image followed by any extra images.
func (p *Product) Gallery() []string {
	if p.ImageURL == "" {
		return append([]string{}, p.ExtraImages...)
	}
	gallery := make([]string, 0, 1+len(p.ExtraImages))
	gallery = append(gallery, p.ImageURL)
	return append(gallery, p.ExtraImages...)
}

// DealActive reports whether the product is a hot deal that has not expired
// at the given instant. A hot deal without an expiry never expires.
func (p *Product) DealActive(now time.Time) bool {
	if !p.IsHotDeal {
		return false
	}
	return p.DealEndsAt == nil || p.DealEndsAt.After(now)
}
