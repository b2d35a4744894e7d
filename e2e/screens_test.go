//go:build e2e

package e2e

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
	"github.com/themizzi/swaglabs-e2e/internal/flows"
	"github.com/themizzi/swaglabs-e2e/internal/pages"
)

// visitAll walks the checkout path and calls visit on every screen it lands on
func visitAll(t *testing.T, h *flows.Helper, visit func(current pages.Page)) {
	t.Helper()
	p := h.Pages()
	info := fixtures.ValidCheckoutInfo()

	require.NoError(t, p.Login.Navigate())
	visit(p.Login)

	require.NoError(t, p.Login.Login(fixtures.StandardUser, fixtures.Password))
	visit(p.Products)

	require.NoError(t, p.Products.ClickProductTitle(fixtures.SauceLabsBackpack))
	visit(p.ProductDetails)

	require.NoError(t, p.ProductDetails.AddToCart())
	require.NoError(t, p.ProductDetails.ClickShoppingCart())
	visit(p.Cart)

	require.NoError(t, p.Cart.ClickCheckout())
	visit(p.CheckoutInfo)

	require.NoError(t, p.CheckoutInfo.CompleteCheckoutInformation(info.FirstName, info.LastName, info.PostalCode))
	visit(p.Overview)

	require.NoError(t, p.Overview.ClickFinish())
	visit(p.Complete)
}

// TestScreensIdentifiers
// Feature: Screens
//
//	Scenario: Every screen is recognised on arrival
//	  When I walk from login to confirmation
//	  Then each screen's identifying elements are visible
//	  And checking twice gives the same result
func TestScreensIdentifiers(t *testing.T) {
	h := open(t)

	visitAll(t, h, func(current pages.Page) {
		require.NoError(t, current.VerifyLoaded(), current.Name())
		require.NoError(t, current.VerifyLoaded(), current.Name())
		assert.NotEmpty(t, current.IdentifyingElements(), current.Name())
	})
}

// TestScreensWrongScreen
// Feature: Screens
//
//	Scenario: A screen is never mistaken for another
//	  When I walk from login to confirmation
//	  Then on each screen every other page object fails VerifyLoaded
//	  And the failure names the screen that was expected
func TestScreensWrongScreen(t *testing.T) {
	h := open(t)
	all := h.Pages().All()
	short := pages.WithTimeout(300 * time.Millisecond)
	others := flows.New(h.Pages().Login.Browser(), short).Pages().All()

	visitAll(t, h, func(current pages.Page) {
		require.NoError(t, current.VerifyLoaded())
		for i, other := range others {
			if all[i].Name() == current.Name() {
				continue
			}
			err := other.VerifyLoaded()
			require.Error(t, err, "%s passed on %s", other.Name(), current.Name())

			var ae *pages.AssertionError
			require.True(t, errors.As(err, &ae), "%v", err)
			assert.Equal(t, other.Name(), ae.Page)
		}
	})
}
