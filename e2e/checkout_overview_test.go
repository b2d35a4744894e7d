//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
	"github.com/themizzi/swaglabs-e2e/internal/flows"
	"github.com/themizzi/swaglabs-e2e/internal/models"
)

// atOverview logs in, adds products and submits valid information
func atOverview(t *testing.T, products ...string) *flows.Helper {
	t.Helper()
	h := loggedIn(t)
	info := fixtures.ValidCheckoutInfo()
	require.NoError(t, h.AddProductsToCart(products...))
	require.NoError(t, h.OpenCartAndCheckout())
	require.NoError(t, h.Pages().CheckoutInfo.CompleteCheckoutInformation(info.FirstName, info.LastName, info.PostalCode))
	return h
}

// TestCheckoutOverviewStructure
// Feature: Checkout overview
//
//	Scenario: The overview shows items, payment, shipping and totals
//	  Given I submitted my information for two products
//	  Then I see both items with their prices
//	  And the payment and shipping information
//	  And a balanced price summary
func TestCheckoutOverviewStructure(t *testing.T) {
	products := []string{fixtures.SauceLabsBackpack, fixtures.SauceLabsFleeceJacket}
	overview := atOverview(t, products...).Pages().Overview

	require.NoError(t, overview.VerifyCompletePageStructure())
	for _, name := range products {
		require.NoError(t, overview.VerifyItemInOverview(name))
	}
	require.NoError(t, overview.VerifyPaymentInformation())
	require.NoError(t, overview.VerifyShippingInformation())
	require.NoError(t, overview.VerifyOrderSummarySection())
	require.NoError(t, overview.VerifyOrderCalculations())
	require.NoError(t, overview.VerifyActionButtons())

	payment, err := overview.PaymentInfo()
	require.NoError(t, err)
	assert.Equal(t, fixtures.PaymentInfo, payment)

	shipping, err := overview.ShippingInfo()
	require.NoError(t, err)
	assert.Equal(t, fixtures.ShippingInfo, shipping)
}

// TestCheckoutOverviewTotals
// Feature: Checkout overview
//
//	Scenario Outline: Totals follow the catalog prices and tax rate
//	  Given I submitted my information for <products>
//	  Then the subtotal, tax and total match the expected breakdown
func TestCheckoutOverviewTotals(t *testing.T) {
	tests := []struct {
		name     string
		products []string
	}{
		{"single item", []string{fixtures.SauceLabsOnesie}},
		{"two items", []string{fixtures.SauceLabsBackpack, fixtures.SauceLabsBikeLight}},
		{"whole catalog", []string{
			fixtures.SauceLabsBackpack, fixtures.SauceLabsBikeLight, fixtures.SauceLabsBoltTShirt,
			fixtures.SauceLabsFleeceJacket, fixtures.SauceLabsOnesie, fixtures.TestAllTheThingsTShirt,
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			overview := atOverview(t, tt.products...).Pages().Overview

			prices, ok := fixtures.PricesOf(tt.products...)
			require.True(t, ok)
			want, err := models.NewOrderSummary(prices, cfg.TaxRate)
			require.NoError(t, err)

			require.NoError(t, overview.VerifySummary(want))
			require.NoError(t, overview.VerifyTaxRate(cfg.TaxRate))

			got, err := overview.Summary()
			require.NoError(t, err)
			assert.True(t, got.Balanced(), got.String())
		})
	}
}

// TestCheckoutOverviewCancel
// Feature: Checkout overview
//
//	Scenario: Cancel returns to the listing and keeps the cart
//	  Given I am on the overview
//	  When I cancel
//	  Then I am on the listing and the badge still shows my item
func TestCheckoutOverviewCancel(t *testing.T) {
	p := atOverview(t, fixtures.SauceLabsBikeLight).Pages()

	require.NoError(t, p.Overview.ClickCancel())
	require.NoError(t, p.Products.VerifyLoaded())
	require.NoError(t, p.Products.VerifyCartBadge(1))
}

// TestCheckoutOverviewOpenItem
// Feature: Checkout overview
//
//	Scenario: Open an item from the overview
//	  Given I am on the overview
//	  When I click the item name
//	  Then I see its detail page
func TestCheckoutOverviewOpenItem(t *testing.T) {
	p := atOverview(t, fixtures.SauceLabsBoltTShirt).Pages()

	require.NoError(t, p.Overview.ClickItemName(fixtures.SauceLabsBoltTShirt))
	require.NoError(t, p.ProductDetails.VerifyLoaded())

	name, err := p.ProductDetails.ProductName()
	require.NoError(t, err)
	assert.Equal(t, fixtures.SauceLabsBoltTShirt, name)
}
