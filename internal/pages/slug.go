package pages

import "strings"

// Slug converts a product name into the suffix the shop uses in per-product
// data-test identifiers, e.g. "Sauce Labs Backpack" -> "sauce-labs-backpack".
// Punctuation is kept as rendered: "Test.allTheThings() T-Shirt (Red)" ->
// "test.allthethings()-t-shirt-(red)".
func Slug(name string) string {
	return strings.Join(strings.Fields(strings.ToLower(name)), "-")
}
