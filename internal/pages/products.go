package pages

import (
	"fmt"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
	"github.com/themizzi/swaglabs-e2e/internal/models"
)

var productsDescriptors = withShell(
	TestID("title", "title"),
	TestID("inventory-container", "inventory-container"),
	TestID("inventory-list", "inventory-list"),
	TestID("item", "inventory-item"),
	TestID("item-name", "inventory-item-name"),
	TestID("item-desc", "inventory-item-desc"),
	TestID("item-price", "inventory-item-price"),
	TestID("sort", "product-sort-container"),
	TestID("active-sort", "active-option"),
	TestIDAffix("add-buttons", "add-to-cart-", ""),
	TestIDAffix("item-images", "inventory-item-", "-img"),
)

// ProductInfo is what a listing or detail screen shows for one product
type ProductInfo struct {
	Name        string
	Description string
	Price       models.Money
}

// ProductsPage is the inventory listing
type ProductsPage struct {
	appShell
}

func NewProductsPage(page playwright.Page, opts ...Option) *ProductsPage {
	return &ProductsPage{appShell{newBasePage(page, screen{
		name:        "products",
		path:        fixtures.RouteInventory,
		identifying: []string{"title", "inventory-list", "sort", "cart-link"},
		heading:     fixtures.TitleProducts,
	}, productsDescriptors, opts...)}}
}

// VerifyLoadedWithin is VerifyLoaded with every wait extended to d, for
// accounts that render the listing slowly
func (p *ProductsPage) VerifyLoadedWithin(d time.Duration) error {
	return p.within(d).VerifyLoaded()
}

func (p *ProductsPage) PageTitle() (string, error) {
	return p.text("title")
}

func (p *ProductsPage) ProductNames() ([]string, error) {
	return p.texts("product names", p.Locator("item-name"))
}

func (p *ProductsPage) ProductPrices() ([]models.Money, error) {
	texts, err := p.texts("product prices", p.Locator("item-price"))
	if err != nil {
		return nil, err
	}
	prices := make([]models.Money, len(texts))
	for i, t := range texts {
		prices[i] = models.ParseMoney(t)
	}
	return prices, nil
}

func (p *ProductsPage) ProductCount() (int, error) {
	return p.count("products", p.Locator("item"))
}

// VerifyAllProductsDisplayed asserts the listing holds exactly the named products
func (p *ProductsPage) VerifyAllProductsDisplayed(names ...string) error {
	if err := p.verifyCount("products", p.Locator("item"), len(names)); err != nil {
		return err
	}
	for _, name := range names {
		if err := p.verifyLocatorVisible(name, p.ProductRow(name)); err != nil {
			return err
		}
	}
	return nil
}

// ProductRow returns the listing row whose name equals name exactly
func (p *ProductsPage) ProductRow(name string) playwright.Locator {
	return p.rowByName("item", "inventory-item-name", name)
}

func (p *ProductsPage) AddProductToCart(name string) error {
	return p.clickProductButton("add-to-cart-", name)
}

func (p *ProductsPage) RemoveProductFromCart(name string) error {
	return p.clickProductButton("remove-", name)
}

func (p *ProductsPage) clickProductButton(prefix, name string) error {
	if err := p.page.Locator(testIDSelector(prefix + Slug(name))).Click(); err != nil {
		return fmt.Errorf("failed to click %s%s on products page: %w", prefix, Slug(name), err)
	}
	return nil
}

// VerifyButtonState asserts the row's button offers removal when inCart and adding otherwise
func (p *ProductsPage) VerifyButtonState(name string, inCart bool) error {
	id, label := "add-to-cart-"+Slug(name), fixtures.AddToCartLabel
	if inCart {
		id, label = "remove-"+Slug(name), fixtures.RemoveLabel
	}
	if err := p.expect.Locator(p.page.Locator(testIDSelector(id))).ToHaveText(label); err != nil {
		return p.fail(id+" button", err)
	}
	return nil
}

// ClickProductTitle opens the detail screen through the product name link
func (p *ProductsPage) ClickProductTitle(name string) error {
	if err := p.ProductRow(name).Locator(testIDSelector("inventory-item-name")).Click(); err != nil {
		return fmt.Errorf("failed to click title of %s: %w", name, err)
	}
	return nil
}

// ClickProductImage opens the detail screen through the product image
func (p *ProductsPage) ClickProductImage(name string) error {
	if err := p.page.Locator(testIDSelector("inventory-item-" + Slug(name) + "-img")).Click(); err != nil {
		return fmt.Errorf("failed to click image of %s: %w", name, err)
	}
	return nil
}

// ProductDetails reads name, description and price from the product's row
func (p *ProductsPage) ProductDetails(name string) (ProductInfo, error) {
	row, err := p.singleRow("item", "inventory-item-name", name)
	if err != nil {
		return ProductInfo{}, err
	}
	desc, err := p.locatorText("description", row.Locator(testIDSelector("inventory-item-desc")))
	if err != nil {
		return ProductInfo{}, err
	}
	price, err := p.locatorText("price", row.Locator(testIDSelector("inventory-item-price")))
	if err != nil {
		return ProductInfo{}, err
	}
	return ProductInfo{Name: name, Description: desc, Price: models.ParseMoney(price)}, nil
}

// SortProducts selects a sort order by option value (az, za, lohi, hilo)
func (p *ProductsPage) SortProducts(value string) error {
	if _, err := p.Locator("sort").SelectOption(playwright.SelectOptionValues{
		Values: &[]string{value},
	}); err != nil {
		return fmt.Errorf("failed to sort products by %s: %w", value, err)
	}
	return nil
}

// CurrentSortOption returns the label of the active sort order
func (p *ProductsPage) CurrentSortOption() (string, error) {
	return p.text("active-sort")
}

// VerifySortOptions asserts the dropdown offers exactly the known orders
func (p *ProductsPage) VerifySortOptions() error {
	options := p.Locator("sort").Locator("option")
	opts := fixtures.SortOptions()
	if err := p.verifyCount("sort options", options, len(opts)); err != nil {
		return err
	}
	for i, opt := range opts {
		if err := p.expect.Locator(options.Nth(i)).ToHaveAttribute("value", opt.Value); err != nil {
			return p.fail("sort option "+opt.Value, err)
		}
		if err := p.expect.Locator(options.Nth(i)).ToHaveText(opt.Label); err != nil {
			return p.fail("sort option "+opt.Value+" label", err)
		}
	}
	return nil
}

// VerifyProductPricesFormat asserts every price reads $<dollars>.<cents>
func (p *ProductsPage) VerifyProductPricesFormat() error {
	prices, err := p.texts("product prices", p.Locator("item-price"))
	if err != nil {
		return err
	}
	if len(prices) == 0 {
		return p.fail("price format", fmt.Errorf("%w: no prices rendered", ErrNotFound))
	}
	for _, price := range prices {
		if !models.IsPriceFormat(price) {
			return p.fail("price format", fmt.Errorf("%w: %q", ErrMismatch, price))
		}
	}
	return nil
}

// VerifyAddToCartButtons asserts every listed product offers an enabled add button
func (p *ProductsPage) VerifyAddToCartButtons() error {
	n, err := p.ProductCount()
	if err != nil {
		return err
	}
	buttons := p.Locator("add-buttons")
	if err := p.verifyCount("add to cart buttons", buttons, n); err != nil {
		return err
	}
	for i := 0; i < n; i++ {
		b := buttons.Nth(i)
		if err := p.expect.Locator(b).ToBeEnabled(); err != nil {
			return p.fail(fmt.Sprintf("add to cart button %d enabled", i), err)
		}
		if err := p.expect.Locator(b).ToHaveText(fixtures.AddToCartLabel); err != nil {
			return p.fail(fmt.Sprintf("add to cart button %d label", i), err)
		}
	}
	return nil
}

// VerifyProductImagesLoaded asserts every product image finished loading with a non-zero size
func (p *ProductsPage) VerifyProductImagesLoaded() error {
	images := p.Locator("item-images")
	n, err := p.count("product images", images)
	if err != nil {
		return err
	}
	if n == 0 {
		return p.fail("product images", fmt.Errorf("%w: no images rendered", ErrNotFound))
	}
	for i := 0; i < n; i++ {
		img := images.Nth(i)
		if err := p.expect.Locator(img).ToBeVisible(); err != nil {
			return p.fail(fmt.Sprintf("product image %d visible", i), err)
		}
		loaded, err := img.Evaluate("img => img.complete && img.naturalWidth > 0", nil)
		if err != nil {
			return fmt.Errorf("failed to inspect product image %d: %w", i, err)
		}
		if ok, _ := loaded.(bool); !ok {
			return p.fail(fmt.Sprintf("product image %d loaded", i), ErrMismatch)
		}
	}
	return nil
}
