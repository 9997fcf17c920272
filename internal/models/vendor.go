package models

// Contact holds a vendor's static contact record. The detail endpoint turns
// these into tel:, mailto: and wa.me links; no delivery confirmation exists.
type Contact struct {
	Phone    string `json:"phone,omitempty" bson:"phone,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty" bson:"whatsapp,omitempty"`
	Email    string `json:"email,omitempty" bson:"email,omitempty"`
	Website  string `json:"website,omitempty" bson:"website,omitempty"`
	MapLink  string `json:"map_link,omitempty" bson:"map_link,omitempty"`
}

// Vendor is a seller entity owning an ordered list of products. Ownership is
// exclusive: no product appears under more than one vendor.
type Vendor struct {
	ID           string    `json:"id" bson:"id"`
	Storefront   string    `json:"storefront" bson:"storefront"`
	Name         string    `json:"name" bson:"name"`
	Location     string    `json:"location,omitempty" bson:"location,omitempty"`
	Description  string    `json:"description,omitempty" bson:"description,omitempty"`
	Logo         string    `json:"logo,omitempty" bson:"logo,omitempty"`
	Rating       float64   `json:"rating,omitempty" bson:"rating,omitempty"`
	DeliveryTime string    `json:"delivery_time,omitempty" bson:"delivery_time,omitempty"`
	Contact      Contact   `json:"contact,omitempty" bson:"contact,omitempty"`
	Products     []Product `json:"products" bson:"products"`
}

// FindProduct returns the vendor's product with the given ID, or false.
func (v *Vendor) FindProduct(id string) (Product, bool) {
	for _, p := range v.Products {
		if p.ID == id {
			return p, true
		}
	}
	return Product{}, false
}
