//go:build e2e

package e2e

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
	"github.com/themizzi/swaglabs-e2e/internal/models"
)

// TestCartEmpty
// Feature: Cart
//
//	Scenario: A fresh session has an empty cart
//	  Given I am logged in
//	  When I open the cart
//	  Then it has no items and no badge
func TestCartEmpty(t *testing.T) {
	p := loggedIn(t).Pages()

	require.NoError(t, p.Products.ClickShoppingCart())
	require.NoError(t, p.Cart.VerifyLoaded())
	require.NoError(t, p.Cart.VerifyCartIsEmpty())
	require.NoError(t, p.Cart.VerifyCartBadge(0))
	require.NoError(t, p.Cart.VerifyCartLabels())
}

// TestCartContents
// Feature: Cart
//
//	Scenario: The cart lists what I added in order
//	  Given I added three products
//	  When I open the cart
//	  Then each appears once with its catalog price
//	  And the items keep the order I added them in
func TestCartContents(t *testing.T) {
	h := loggedIn(t)
	cart := h.Pages().Cart
	added := []string{fixtures.SauceLabsBoltTShirt, fixtures.SauceLabsBackpack, fixtures.SauceLabsOnesie}

	require.NoError(t, h.AddProductsToCart(added...))
	require.NoError(t, cart.ClickShoppingCart())
	require.NoError(t, cart.VerifyCompletePageStructure())
	require.NoError(t, cart.VerifyCartHasItems(len(added)))
	require.NoError(t, cart.VerifyItemOrder(added...))

	for _, name := range added {
		product, ok := fixtures.ProductByName(name)
		require.True(t, ok, name)
		require.NoError(t, cart.VerifyItemDetails(name, product.Price, 1))
	}

	prices, ok := fixtures.PricesOf(added...)
	require.True(t, ok)
	total, err := cart.TotalPrice()
	require.NoError(t, err)

	var want models.Money
	for _, p := range prices {
		want += p
	}
	assert.Equal(t, want, total)
}

// TestCartBadgeTracksCount
// Feature: Cart
//
//	Scenario: The badge always equals the number of items
//	  Given I am logged in
//	  When I add and remove products in any order
//	  Then after each step the badge shows the count, and is absent at zero
func TestCartBadgeTracksCount(t *testing.T) {
	products := loggedIn(t).Pages().Products

	steps := []struct {
		add  bool
		name string
		want int
	}{
		{true, fixtures.SauceLabsBackpack, 1},
		{true, fixtures.SauceLabsBikeLight, 2},
		{false, fixtures.SauceLabsBackpack, 1},
		{true, fixtures.SauceLabsFleeceJacket, 2},
		{true, fixtures.TestAllTheThingsTShirt, 3},
		{false, fixtures.SauceLabsBikeLight, 2},
		{false, fixtures.SauceLabsFleeceJacket, 1},
		{false, fixtures.TestAllTheThingsTShirt, 0},
	}

	for i, step := range steps {
		if step.add {
			require.NoError(t, products.AddProductToCart(step.name), "step %d", i)
		} else {
			require.NoError(t, products.RemoveProductFromCart(step.name), "step %d", i)
		}
		require.NoError(t, products.VerifyCartBadge(step.want), "step %d", i)

		count, err := products.CartBadgeCount()
		require.NoError(t, err)
		assert.Equal(t, step.want, count, "step %d", i)
	}
}

// TestCartRemoveItems
// Feature: Cart
//
//	Scenario: Remove items from the cart
//	  Given I have two items in the cart
//	  When I remove one
//	  Then only the other remains and the badge shows 1
//	  When I clear the cart
//	  Then it is empty
func TestCartRemoveItems(t *testing.T) {
	h := loggedIn(t)
	cart := h.Pages().Cart

	require.NoError(t, h.AddProductsToCart(fixtures.SauceLabsBackpack, fixtures.SauceLabsBikeLight))
	require.NoError(t, cart.ClickShoppingCart())
	require.NoError(t, cart.VerifyLoaded())

	require.NoError(t, cart.RemoveItem(fixtures.SauceLabsBackpack))
	require.NoError(t, cart.VerifyItemNotInCart(fixtures.SauceLabsBackpack))
	require.NoError(t, cart.VerifyItemInCart(fixtures.SauceLabsBikeLight))
	require.NoError(t, cart.VerifyCartBadge(1))

	require.NoError(t, cart.ClearCart())
	require.NoError(t, cart.VerifyCartIsEmpty())
	require.NoError(t, cart.VerifyCartBadge(0))
}

// TestCartNavigation
// Feature: Cart
//
//	Scenario: Leave the cart
//	  Given I have an item in the cart
//	  When I continue shopping
//	  Then I am back on the listing with the badge intact
//	  When I open the item from the cart
//	  Then I see its detail page
func TestCartNavigation(t *testing.T) {
	h := loggedIn(t)
	p := h.Pages()

	require.NoError(t, h.AddProductsToCart(fixtures.SauceLabsOnesie))
	require.NoError(t, p.Cart.ClickShoppingCart())
	require.NoError(t, p.Cart.ClickContinueShopping())
	require.NoError(t, p.Products.VerifyLoaded())
	require.NoError(t, p.Products.VerifyCartBadge(1))

	require.NoError(t, p.Products.ClickShoppingCart())
	require.NoError(t, p.Cart.ClickItemTitle(fixtures.SauceLabsOnesie))
	require.NoError(t, p.ProductDetails.VerifyLoaded())
	require.NoError(t, p.ProductDetails.VerifyButtonState(true))
}
