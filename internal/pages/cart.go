package pages

import (
	"fmt"
	"slices"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
	"github.com/themizzi/swaglabs-e2e/internal/models"
)

var cartDescriptors = withShell(append(lineItemDescriptors(),
	TestID("title", "title"),
	TestID("cart-contents", "cart-contents-container"),
	TestID("cart-list", "cart-list"),
	TestID("continue-shopping", "continue-shopping"),
	TestID("checkout", "checkout"),
	TestIDAffix("remove-buttons", "remove-", ""),
)...)

// ShoppingCartPage lists the products added to the cart
type ShoppingCartPage struct {
	appShell
	lineItems
}

func NewShoppingCartPage(page playwright.Page, opts ...Option) *ShoppingCartPage {
	b := newBasePage(page, screen{
		name:        "cart",
		path:        fixtures.RouteCart,
		identifying: []string{"title", "cart-list", "continue-shopping", "checkout"},
		heading:     fixtures.TitleCart,
	}, cartDescriptors, opts...)
	return &ShoppingCartPage{appShell: appShell{b}, lineItems: lineItems{b}}
}

// CartItem returns the row whose product name equals name exactly
func (p *ShoppingCartPage) CartItem(name string) playwright.Locator {
	return p.Item(name)
}

func (p *ShoppingCartPage) RemoveItem(name string) error {
	if err := p.page.Locator(testIDSelector("remove-" + Slug(name))).Click(); err != nil {
		return fmt.Errorf("failed to remove %s from cart: %w", name, err)
	}
	return nil
}

func (p *ShoppingCartPage) ClickItemTitle(name string) error {
	return p.clickItemName(name)
}

func (p *ShoppingCartPage) ClickContinueShopping() error {
	return p.click("continue-shopping")
}

func (p *ShoppingCartPage) ClickCheckout() error {
	return p.click("checkout")
}

// VerifyCartIsEmpty asserts no rows are listed and the badge is gone
func (p *ShoppingCartPage) VerifyCartIsEmpty() error {
	if err := p.verifyCount("cart items", p.Locator("item"), 0); err != nil {
		return err
	}
	return p.VerifyCartBadge(0)
}

// VerifyCartHasItems asserts n rows are listed and the badge agrees
func (p *ShoppingCartPage) VerifyCartHasItems(n int) error {
	if err := p.verifyCount("cart items", p.Locator("item"), n); err != nil {
		return err
	}
	return p.VerifyCartBadge(n)
}

func (p *ShoppingCartPage) VerifyItemInCart(name string) error {
	return p.verifyItemPresent(name)
}

func (p *ShoppingCartPage) VerifyItemNotInCart(name string) error {
	return p.verifyAbsent(name+" row", p.Item(name))
}

// VerifyItemOrder asserts the rows are listed in exactly this order
func (p *ShoppingCartPage) VerifyItemOrder(names ...string) error {
	if err := p.verifyCount("cart items", p.Locator("item"), len(names)); err != nil {
		return err
	}
	got, err := p.ItemNames()
	if err != nil {
		return err
	}
	if !slices.Equal(got, names) {
		return p.fail("item order", mismatch(got, names))
	}
	return nil
}

func (p *ShoppingCartPage) VerifyCartLabels() error {
	if err := p.verifyText("quantity-label", fixtures.QuantityLabel); err != nil {
		return err
	}
	return p.verifyText("desc-label", fixtures.DescriptionLabel)
}

// ClearCart removes every row one by one and asserts the cart ends empty
func (p *ShoppingCartPage) ClearCart() error {
	buttons := p.Locator("remove-buttons")
	n, err := p.count("remove buttons", buttons)
	if err != nil {
		return err
	}
	for i := n; i > 0; i-- {
		if err := buttons.First().Click(); err != nil {
			return fmt.Errorf("failed to remove cart item: %w", err)
		}
		if err := p.verifyCount("remove buttons", buttons, i-1); err != nil {
			return err
		}
	}
	return p.VerifyCartIsEmpty()
}

// TotalPrice sums price times quantity of every row
func (p *ShoppingCartPage) TotalPrice() (models.Money, error) {
	return p.Total()
}

func (p *ShoppingCartPage) VerifyCompletePageStructure() error {
	if err := p.VerifyLoaded(); err != nil {
		return err
	}
	if err := p.VerifyHeader(); err != nil {
		return err
	}
	if err := p.verifyAllVisible("cart-contents", "quantity-label", "desc-label"); err != nil {
		return err
	}
	if err := p.VerifyCartLabels(); err != nil {
		return err
	}
	if err := p.verifyText("continue-shopping", "Continue Shopping"); err != nil {
		return err
	}
	if err := p.verifyText("checkout", "Checkout"); err != nil {
		return err
	}
	return p.VerifyFooter()
}
