// Package links builds the client-side contact URLs (tel:, mailto:, wa.me)
// from a vendor's static contact record.
package links

import (
	"net/url"
	"strings"

	"marketplace-catalog/internal/models"
)

// ContactLinks is the set of ready-to-open contact URLs for a vendor. Empty
// contact fields produce no link.
type ContactLinks struct {
	Phone    string `json:"phone,omitempty"`
	WhatsApp string `json:"whatsapp,omitempty"`
	Email    string `json:"email,omitempty"`
	Website  string `json:"website,omitempty"`
	MapLink  string `json:"map_link,omitempty"`
}

// ForVendor builds the contact links for a vendor, using the product name as
// the mail subject and WhatsApp prefill text.
func ForVendor(v *models.Vendor, productName string) ContactLinks {
	return ContactLinks{
		Phone:    Phone(v.Contact.Phone),
		WhatsApp: WhatsApp(v.Contact.WhatsApp, productName),
		Email:    Email(v.Contact.Email, productName),
		Website:  v.Contact.Website,
		MapLink:  v.Contact.MapLink,
	}
}

// Phone returns a tel: URL with whitespace stripped, or "" for no number.
func Phone(number string) string {
	n := compact(number)
	if n == "" {
		return ""
	}
	return "tel:" + n
}

// WhatsApp returns a wa.me URL for the number. wa.me expects digits only, no
// leading + or zeros-with-plus; non-digit characters are dropped.
func WhatsApp(number, text string) string {
	digits := strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return r
		}
		return -1
	}, number)
	if digits == "" {
		return ""
	}
	u := "https://wa.me/" + digits
	if text != "" {
		u += "?text=" + url.QueryEscape("Hi, I'm interested in "+text)
	}
	return u
}

// Email returns a mailto: URL with an optional subject, or "" for no address.
func Email(addr, subject string) string {
	a := compact(addr)
	if a == "" {
		return ""
	}
	u := "mailto:" + a
	if subject != "" {
		u += "?subject=" + url.QueryEscape("Inquiry: "+subject)
	}
	return u
}

func compact(s string) string {
	return strings.Join(strings.Fields(s), "")
}
