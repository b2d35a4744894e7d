// Package flows composes page objects into the fixed happy paths scenarios
// use as preconditions. A flow either leaves the browser on its terminal
// screen or returns the first failure, wrapped with the step that failed.
package flows

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
	"github.com/themizzi/swaglabs-e2e/internal/pages"
)

// Pages holds one page object per screen, all bound to the same tab
type Pages struct {
	Login          *pages.LoginPage
	Products       *pages.ProductsPage
	ProductDetails *pages.ProductDetailsPage
	Cart           *pages.ShoppingCartPage
	CheckoutInfo   *pages.CheckoutInfoPage
	Overview       *pages.CheckoutOverviewPage
	Complete       *pages.CheckoutCompletePage
}

// All returns the page objects in navigation order
func (p Pages) All() []pages.Page {
	return []pages.Page{p.Login, p.Products, p.ProductDetails, p.Cart, p.CheckoutInfo, p.Overview, p.Complete}
}

// Helper runs composed flows in one tab
type Helper struct {
	pages Pages
}

func New(page playwright.Page, opts ...pages.Option) *Helper {
	return &Helper{pages: Pages{
		Login:          pages.NewLoginPage(page, opts...),
		Products:       pages.NewProductsPage(page, opts...),
		ProductDetails: pages.NewProductDetailsPage(page, opts...),
		Cart:           pages.NewShoppingCartPage(page, opts...),
		CheckoutInfo:   pages.NewCheckoutInfoPage(page, opts...),
		Overview:       pages.NewCheckoutOverviewPage(page, opts...),
		Complete:       pages.NewCheckoutCompletePage(page, opts...),
	}}
}

// Pages returns the page objects the helper drives
func (h *Helper) Pages() Pages {
	return h.pages
}

func step(name string, err error) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", name, err)
}

// LoginAsStandardUser logs in with the standard account and lands on the listing
func (h *Helper) LoginAsStandardUser() error {
	return h.LoginWithCredentials(fixtures.Standard())
}

// LoginWithCredentials logs in and requires the listing to load
func (h *Helper) LoginWithCredentials(c fixtures.Credentials) error {
	login := h.pages.Login
	if err := login.Navigate(); err != nil {
		return step("open login", err)
	}
	if err := login.VerifyLoaded(); err != nil {
		return step("open login", err)
	}
	if err := login.Login(c.Username, c.Password); err != nil {
		return step("login as "+c.Username, err)
	}
	return step("login as "+c.Username, h.pages.Products.VerifyLoaded())
}

// AddProductsToCart adds each product from the listing and checks the badge
// counts every addition. The cart is expected to start empty.
func (h *Helper) AddProductsToCart(names ...string) error {
	products := h.pages.Products
	if err := products.VerifyLoaded(); err != nil {
		return step("add to cart", err)
	}
	for i, name := range names {
		if err := products.AddProductToCart(name); err != nil {
			return step("add "+name, err)
		}
		if err := products.VerifyCartBadge(i + 1); err != nil {
			return step("add "+name, err)
		}
	}
	return nil
}

// OpenCartAndCheckout opens the cart and starts checkout
func (h *Helper) OpenCartAndCheckout() error {
	cart := h.pages.Cart
	if err := cart.ClickShoppingCart(); err != nil {
		return step("open cart", err)
	}
	if err := cart.VerifyLoaded(); err != nil {
		return step("open cart", err)
	}
	if err := cart.ClickCheckout(); err != nil {
		return step("checkout", err)
	}
	return step("checkout", h.pages.CheckoutInfo.VerifyLoaded())
}

// CompleteCheckoutFlow runs login, cart, information, overview and finish,
// ending on the confirmation screen
func (h *Helper) CompleteCheckoutFlow(products []string, info fixtures.CheckoutInfo) error {
	if err := h.LoginAsStandardUser(); err != nil {
		return err
	}
	if err := h.AddProductsToCart(products...); err != nil {
		return err
	}
	if err := h.OpenCartAndCheckout(); err != nil {
		return err
	}
	if err := h.pages.CheckoutInfo.CompleteCheckoutInformation(info.FirstName, info.LastName, info.PostalCode); err != nil {
		return step("checkout information", err)
	}
	if err := h.pages.Overview.CompleteCheckout(); err != nil {
		return step("finish", err)
	}
	return step("confirmation", h.pages.Complete.VerifyLoaded())
}
