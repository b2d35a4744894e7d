package pages

import (
	"fmt"
	"net/url"
	"strconv"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
	"github.com/themizzi/swaglabs-e2e/internal/models"
)

var productDetailsDescriptors = withShell(
	TestID("inventory-container", "inventory-container"),
	TestID("back-to-products", "back-to-products"),
	TestID("name", "inventory-item-name"),
	TestID("description", "inventory-item-desc"),
	TestID("price", "inventory-item-price"),
	TestID("add-to-cart", "add-to-cart"),
	TestID("remove", "remove"),
	TestIDAffix("image", "item-", "-img"),
)

// ProductDetailsPage shows a single product
type ProductDetailsPage struct {
	appShell
}

func NewProductDetailsPage(page playwright.Page, opts ...Option) *ProductDetailsPage {
	return &ProductDetailsPage{appShell{newBasePage(page, screen{
		name:        "product details",
		path:        fixtures.RouteInventoryItem,
		identifying: []string{"back-to-products", "name", "description", "price"},
	}, productDetailsDescriptors, opts...)}}
}

// NavigateToItem loads the detail screen of the product with the given id
func (p *ProductDetailsPage) NavigateToItem(id int) error {
	return p.goTo(p.screen.path + "?id=" + strconv.Itoa(id))
}

func (p *ProductDetailsPage) ProductName() (string, error) {
	return p.text("name")
}

func (p *ProductDetailsPage) ProductDescription() (string, error) {
	return p.text("description")
}

// ProductPrice returns the price as rendered
func (p *ProductDetailsPage) ProductPrice() (string, error) {
	return p.text("price")
}

func (p *ProductDetailsPage) PriceValue() (models.Money, error) {
	return p.money("price")
}

// ProductID returns the id query parameter of the current URL
func (p *ProductDetailsPage) ProductID() (int, error) {
	u, err := url.Parse(p.URL())
	if err != nil {
		return 0, fmt.Errorf("failed to parse product details url: %w", err)
	}
	raw := u.Query().Get("id")
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, p.fail("product id", fmt.Errorf("%w: id=%q", ErrMismatch, raw))
	}
	return id, nil
}

func (p *ProductDetailsPage) ImageSource() (string, error) {
	return p.attribute("image", "src")
}

func (p *ProductDetailsPage) AddToCart() error {
	return p.click("add-to-cart")
}

func (p *ProductDetailsPage) RemoveFromCart() error {
	return p.click("remove")
}

// IsProductInCart reports whether the screen offers removal
func (p *ProductDetailsPage) IsProductInCart() (bool, error) {
	return p.isVisible("remove")
}

// VerifyButtonState asserts the remove button is shown when inCart and the add button otherwise
func (p *ProductDetailsPage) VerifyButtonState(inCart bool) error {
	shown, hidden, label := "add-to-cart", "remove", fixtures.AddToCartLabel
	if inCart {
		shown, hidden, label = "remove", "add-to-cart", fixtures.RemoveLabel
	}
	if err := p.verifyVisible(shown); err != nil {
		return err
	}
	if err := p.verifyText(shown, label); err != nil {
		return err
	}
	return p.verifyAbsent(hidden, p.Locator(hidden))
}

func (p *ProductDetailsPage) ClickBackToProducts() error {
	return p.click("back-to-products")
}

// VerifyProductInformation asserts name, description and price match want
func (p *ProductDetailsPage) VerifyProductInformation(want ProductInfo) error {
	if err := p.verifyText("name", want.Name); err != nil {
		return err
	}
	if want.Description != "" {
		if err := p.verifyText("description", want.Description); err != nil {
			return err
		}
	}
	return p.verifyText("price", want.Price.String())
}

func (p *ProductDetailsPage) VerifyPriceFormat() error {
	price, err := p.ProductPrice()
	if err != nil {
		return err
	}
	if !models.IsPriceFormat(price) {
		return p.fail("price format", fmt.Errorf("%w: %q", ErrMismatch, price))
	}
	return nil
}

func (p *ProductDetailsPage) VerifyCompletePageStructure() error {
	if err := p.VerifyLoaded(); err != nil {
		return err
	}
	if err := p.VerifyHeader(); err != nil {
		return err
	}
	if err := p.verifyVisible("image"); err != nil {
		return err
	}
	if err := p.VerifyPriceFormat(); err != nil {
		return err
	}
	return p.VerifyFooter()
}
