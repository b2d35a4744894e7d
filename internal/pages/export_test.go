package pages

// ScreenDescriptors returns each screen's descriptor list keyed by screen name
func ScreenDescriptors() map[string][]Descriptor {
	return map[string][]Descriptor{
		"login":                loginDescriptors,
		"products":             productsDescriptors,
		"product details":      productDetailsDescriptors,
		"cart":                 cartDescriptors,
		"checkout information": checkoutInfoDescriptors,
		"checkout overview":    checkoutOverviewDescriptors,
		"checkout complete":    checkoutCompleteDescriptors,
	}
}
