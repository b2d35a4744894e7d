package pages

import (
	"fmt"
	"strconv"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/swaglabs-e2e/internal/models"
)

// lineItemDescriptors are the rows shared by the cart and the checkout overview
func lineItemDescriptors() []Descriptor {
	return []Descriptor{
		TestID("item", "inventory-item"),
		TestID("item-name", "inventory-item-name"),
		TestID("item-desc", "inventory-item-desc"),
		TestID("item-price", "inventory-item-price"),
		TestID("item-quantity", "item-quantity"),
		TestID("quantity-label", "cart-quantity-label"),
		TestID("desc-label", "cart-desc-label"),
	}
}

// lineItems reads the product rows of the cart and the checkout overview
type lineItems struct {
	b *BasePage
}

func (li lineItems) ItemCount() (int, error) {
	return li.b.count("items", li.b.Locator("item"))
}

// Item returns the row whose product name equals name exactly
func (li lineItems) Item(name string) playwright.Locator {
	return li.b.rowByName("item", "inventory-item-name", name)
}

func (li lineItems) ItemNames() ([]string, error) {
	return li.b.texts("item names", li.b.Locator("item-name"))
}

func (li lineItems) ItemPrices() ([]models.Money, error) {
	texts, err := li.b.texts("item prices", li.b.Locator("item-price"))
	if err != nil {
		return nil, err
	}
	prices := make([]models.Money, len(texts))
	for i, t := range texts {
		prices[i] = models.ParseMoney(t)
	}
	return prices, nil
}

func (li lineItems) ItemQuantities() ([]int, error) {
	texts, err := li.b.texts("item quantities", li.b.Locator("item-quantity"))
	if err != nil {
		return nil, err
	}
	quantities := make([]int, len(texts))
	for i, t := range texts {
		q, err := strconv.Atoi(t)
		if err != nil {
			return nil, li.b.fail("item quantity", fmt.Errorf("%w: %q", ErrMismatch, t))
		}
		quantities[i] = q
	}
	return quantities, nil
}

func (li lineItems) field(name, testID string) (string, error) {
	row, err := li.b.singleRow("item", "inventory-item-name", name)
	if err != nil {
		return "", err
	}
	return li.b.locatorText(name+" "+testID, row.Locator(testIDSelector(testID)))
}

func (li lineItems) ItemPrice(name string) (models.Money, error) {
	s, err := li.field(name, "inventory-item-price")
	if err != nil {
		return 0, err
	}
	return models.ParseMoney(s), nil
}

func (li lineItems) ItemQuantity(name string) (int, error) {
	s, err := li.field(name, "item-quantity")
	if err != nil {
		return 0, err
	}
	q, err := strconv.Atoi(s)
	if err != nil {
		return 0, li.b.fail(name+" quantity", fmt.Errorf("%w: %q", ErrMismatch, s))
	}
	return q, nil
}

func (li lineItems) ItemDescription(name string) (string, error) {
	return li.field(name, "inventory-item-desc")
}

// clickItemName opens the detail screen through the row's name link
func (li lineItems) clickItemName(name string) error {
	if err := li.Item(name).Locator(testIDSelector("inventory-item-name")).Click(); err != nil {
		return fmt.Errorf("failed to click %s on %s page: %w", name, li.b.screen.name, err)
	}
	return nil
}

// VerifyItemDetails asserts the row for name shows price and quantity
func (li lineItems) VerifyItemDetails(name string, price models.Money, quantity int) error {
	row, err := li.b.singleRow("item", "inventory-item-name", name)
	if err != nil {
		return err
	}
	if err := li.b.expect.Locator(row.Locator(testIDSelector("inventory-item-price"))).ToHaveText(price.String()); err != nil {
		return li.b.fail(name+" price", err)
	}
	if err := li.b.expect.Locator(row.Locator(testIDSelector("item-quantity"))).ToHaveText(strconv.Itoa(quantity)); err != nil {
		return li.b.fail(name+" quantity", err)
	}
	return nil
}

// verifyItemPresent asserts exactly one row for name is visible
func (li lineItems) verifyItemPresent(name string) error {
	row, err := li.b.singleRow("item", "inventory-item-name", name)
	if err != nil {
		return err
	}
	return li.b.verifyLocatorVisible(name, row)
}

// Total sums price times quantity over every row
func (li lineItems) Total() (models.Money, error) {
	prices, err := li.ItemPrices()
	if err != nil {
		return 0, err
	}
	quantities, err := li.ItemQuantities()
	if err != nil {
		return 0, err
	}
	if len(prices) != len(quantities) {
		return 0, li.b.fail("line items", mismatch(len(quantities), len(prices)))
	}
	var total models.Money
	for i, p := range prices {
		total += p * models.Money(quantities[i])
	}
	return total, nil
}
