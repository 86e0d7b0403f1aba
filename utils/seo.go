package utils

import (
	"fmt"
	"os"
	"strings"

	"github.com/LearnPlayAI/HeartCart-sub006/models"
)

// Structured-data builders for the storefront. Output follows
// schema.org vocabulary with ZAR pricing for the South African market.

type ProductJSONLD struct {
	Context     string      `json:"@context"`
	Type        string      `json:"@type"`
	Name        string      `json:"name"`
	Description string      `json:"description,omitempty"`
	Sku         string      `json:"sku"`
	Brand       *BrandLD    `json:"brand,omitempty"`
	Image       string      `json:"image,omitempty"`
	Offers      OfferJSONLD `json:"offers"`
}

type BrandLD struct {
	Type string `json:"@type"`
	Name string `json:"name"`
}

type OfferJSONLD struct {
	Type          string `json:"@type"`
	URL           string `json:"url"`
	PriceCurrency string `json:"priceCurrency"`
	Price         string `json:"price"`
	Availability  string `json:"availability"`
}

// BaseURL is the public storefront origin used in canonical URLs.
func BaseURL() string {
	if u := os.Getenv("SITE_BASE_URL"); u != "" {
		return strings.TrimSuffix(u, "/")
	}
	return "https://heartcart.co.za"
}

// BuildProductJSONLD renders schema.org Product markup for a product
// page.
func BuildProductJSONLD(p *models.Product) *ProductJSONLD {
	availability := "https://schema.org/OutOfStock"
	if p.IsActive && p.InStock() {
		availability = "https://schema.org/InStock"
	}

	ld := &ProductJSONLD{
		Context: "https://schema.org",
		Type:    "Product",
		Name:    p.Name,
		Sku:     p.Sku,
		Offers: OfferJSONLD{
			Type:          "Offer",
			URL:           fmt.Sprintf("%s/products/%s", BaseURL(), p.Slug),
			PriceCurrency: "ZAR",
			Price:         p.Price.StringFixed(2),
			Availability:  availability,
		},
	}
	if p.Description != nil {
		ld.Description = *p.Description
	}
	if p.Brand != nil {
		ld.Brand = &BrandLD{Type: "Brand", Name: *p.Brand}
	}
	if p.ImageURL != nil {
		ld.Image = *p.ImageURL
	}
	return ld
}

// MetaDescription builds a trimmed meta description for a product.
func MetaDescription(p *models.Product) string {
	desc := fmt.Sprintf("Buy %s online in South Africa for R%s.", p.Name, p.Price.StringFixed(2))
	if p.Description != nil && *p.Description != "" {
		desc = desc + " " + *p.Description
	}
	if len(desc) > 160 {
		desc = desc[:157] + "..."
	}
	return desc
}

// SitemapEntry is one URL in the storefront sitemap.
type SitemapEntry struct {
	Loc        string `json:"loc"`
	ChangeFreq string `json:"changefreq"`
	Priority   string `json:"priority"`
}

// BuildSitemapEntries lists canonical URLs for active categories and
// products.
func BuildSitemapEntries(categories []models.Category, products []models.Product) []SitemapEntry {
	entries := []SitemapEntry{
		{Loc: BaseURL(), ChangeFreq: "daily", Priority: "1.0"},
	}
	for i := range categories {
		entries = append(entries, SitemapEntry{
			Loc:        fmt.Sprintf("%s/categories/%s", BaseURL(), categories[i].Slug),
			ChangeFreq: "weekly",
			Priority:   "0.7",
		})
	}
	for i := range products {
		entries = append(entries, SitemapEntry{
			Loc:        fmt.Sprintf("%s/products/%s", BaseURL(), products[i].Slug),
			ChangeFreq: "daily",
			Priority:   "0.8",
		})
	}
	return entries
}
