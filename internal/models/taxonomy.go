package models

import "strings"

// TaxonomyNode is one node of the fixed three-level classification tree
// (Category -> Subcategory -> Subtype). Filtering matches on case-insensitive
// name equality against a product's category/subcategory/subtype fields.
type TaxonomyNode struct {
	ID       string         `json:"id" bson:"id"`
	Name     string         `json:"name" bson:"name"`
	Icon     string         `json:"icon,omitempty" bson:"icon,omitempty"`
	Children []TaxonomyNode `json:"children,omitempty" bson:"children,omitempty"`
}

// Taxonomy is a storefront's full category tree.
type Taxonomy struct {
	Storefront string         `json:"storefront" bson:"storefront"`
	Categories []TaxonomyNode `json:"categories" bson:"categories"`
}

// StorefrontInfo describes one storefront page of the marketplace.
type StorefrontInfo struct {
	Key         string `json:"key" bson:"key"`
	Name        string `json:"name" bson:"name"`
	Description string `json:"description,omitempty" bson:"description,omitempty"`
}

func findNode(nodes []TaxonomyNode, name string) (TaxonomyNode, bool) {
	for _, n := range nodes {
		if strings.EqualFold(n.Name, name) {
			return n, true
		}
	}
	return TaxonomyNode{}, false
}

// Category looks up a top-level category by display name, case-insensitive.
func (t *Taxonomy) Category(name string) (TaxonomyNode, bool) {
	return findNode(t.Categories, name)
}

// Subcategory looks up a subcategory by name under the named category.
func (t *Taxonomy) Subcategory(category, name string) (TaxonomyNode, bool) {
	c, ok := t.Category(category)
	if !ok {
		return TaxonomyNode{}, false
	}
	return findNode(c.Children, name)
}

// Subtype looks up a subtype by name under the named category/subcategory.
func (t *Taxonomy) Subtype(category, subcategory, name string) (TaxonomyNode, bool) {
	s, ok := t.Subcategory(category, subcategory)
	if !ok {
		return TaxonomyNode{}, false
	}
	return findNode(s.Children, name)
}
