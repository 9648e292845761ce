// Package contact builds the outbound inquiry links a product card or detail
// page offers: a messaging deep link and a mailto link, both with prefilled,
// percent-encoded text.
package contact

import (
	"net/url"
	"strings"
)

// Merchant holds the storefront's contact points.
type Merchant struct {
	Name     string
	WhatsApp string // international number, digits only
	Email    string
	BaseURL  string
}

// MessageLink builds a wa.me chat link with prefilled text.
func MessageLink(number, text string) string {
	return "https://wa.me/" + url.PathEscape(strings.TrimSpace(number)) + "?text=" + encode(text)
}

// MailLink builds a mailto link with encoded subject and body.
func MailLink(email, subject, body string) string {
	return "mailto:" + strings.TrimSpace(email) + "?subject=" + encode(subject) + "&body=" + encode(body)
}

// encode percent-encodes prefilled text. Spaces become %20, not "+": mail
// clients and the wa.me endpoint take "+" literally.
func encode(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// ProductMessageLink builds the merchant's chat link for a prefilled text.
func (m Merchant) ProductMessageLink(text string) string {
	return MessageLink(m.WhatsApp, text)
}

// ProductMailLink builds the merchant's mail link.
func (m Merchant) ProductMailLink(subject, body string) string {
	return MailLink(m.Email, subject, body)
}

// DetailURL returns the canonical absolute URL of a product detail page.
func (m Merchant) DetailURL(id string) string {
	return strings.TrimRight(m.BaseURL, "/") + "/products/" + url.PathEscape(id)
}
