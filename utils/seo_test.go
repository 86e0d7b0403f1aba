package utils

import (
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/LearnPlayAI/HeartCart-sub006/models"
)

func strPtr(s string) *string { return &s }

func TestBuildProductJSONLD(t *testing.T) {
	p := &models.Product{
		Name:          "Veldskoen Classic",
		Slug:          "veldskoen-classic",
		Sku:           "VELD-001",
		Brand:         strPtr("Veldskoen"),
		Description:   strPtr("Handmade leather shoe."),
		Price:         decimal.NewFromFloat(899.50),
		StockQuantity: 4,
		IsActive:      true,
		ImageURL:      strPtr("https://res.cloudinary.com/demo/image/upload/veld.jpg"),
	}

	ld := BuildProductJSONLD(p)

	assert.Equal(t, "https://schema.org", ld.Context)
	assert.Equal(t, "Product", ld.Type)
	assert.Equal(t, "VELD-001", ld.Sku)
	assert.Equal(t, "ZAR", ld.Offers.PriceCurrency)
	assert.Equal(t, "899.50", ld.Offers.Price)
	assert.Equal(t, "https://schema.org/InStock", ld.Offers.Availability)
	assert.Contains(t, ld.Offers.URL, "/products/veldskoen-classic")
	assert.Equal(t, "Veldskoen", ld.Brand.Name)
}

func TestBuildProductJSONLDOutOfStock(t *testing.T) {
	p := &models.Product{
		Name:     "Sold Out Item",
		Slug:     "sold-out",
		Sku:      "SO-1",
		Price:    decimal.NewFromInt(100),
		IsActive: true,
	}

	ld := BuildProductJSONLD(p)
	assert.Equal(t, "https://schema.org/OutOfStock", ld.Offers.Availability)
	assert.Nil(t, ld.Brand)
}

func TestMetaDescriptionTruncates(t *testing.T) {
	long := strings.Repeat("quality leather goods ", 20)
	p := &models.Product{
		Name:        "Bag",
		Price:       decimal.NewFromInt(500),
		Description: &long,
	}

	desc := MetaDescription(p)
	assert.LessOrEqual(t, len(desc), 160)
	assert.True(t, strings.HasSuffix(desc, "..."))
	assert.Contains(t, desc, "South Africa")
}

func TestBuildSitemapEntries(t *testing.T) {
	categories := []models.Category{{Slug: "shoes"}}
	products := []models.Product{{Slug: "veldskoen-classic"}}

	entries := BuildSitemapEntries(categories, products)

	assert.Len(t, entries, 3)
	assert.Equal(t, BaseURL(), entries[0].Loc)
	assert.Contains(t, entries[1].Loc, "/categories/shoes")
	assert.Contains(t, entries[2].Loc, "/products/veldskoen-classic")
}
