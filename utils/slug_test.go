package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSlugify(t *testing.T) {
	cases := map[string]string{
		"Shoes":                 "shoes",
		"Men's Running Shoes":   "men-s-running-shoes",
		"  Padded   Jacket  ":   "padded-jacket",
		"Winter 2026 Catalogue": "winter-2026-catalogue",
		"Ünïcode Näme":          "n-code-n-me",
	}
	for in, want := range cases {
		assert.Equal(t, want, Slugify(in), "input %q", in)
	}
}
