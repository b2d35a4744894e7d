package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
	"github.com/themizzi/swaglabs-e2e/internal/models"
)

var checkoutOverviewDescriptors = withShell(append(lineItemDescriptors(),
	TestID("title", "title"),
	TestID("cart-list", "cart-list"),
	TestID("summary-info", "summary-info"),
	TestID("payment-label", "payment-info-label"),
	TestID("payment-value", "payment-info-value"),
	TestID("shipping-label", "shipping-info-label"),
	TestID("shipping-value", "shipping-info-value"),
	TestID("total-info-label", "total-info-label"),
	TestID("subtotal", "subtotal-label"),
	TestID("tax", "tax-label"),
	TestID("total", "total-label"),
	TestID("finish", "finish"),
	TestID("cancel", "cancel"),
)...)

// CheckoutOverviewPage is the second checkout step with the order summary
type CheckoutOverviewPage struct {
	appShell
	lineItems
}

func NewCheckoutOverviewPage(page playwright.Page, opts ...Option) *CheckoutOverviewPage {
	b := newBasePage(page, screen{
		name:        "checkout overview",
		path:        fixtures.RouteCheckoutOverview,
		identifying: []string{"title", "cart-list", "summary-info", "finish", "cancel"},
		heading:     fixtures.TitleCheckoutOverview,
	}, checkoutOverviewDescriptors, opts...)
	return &CheckoutOverviewPage{appShell: appShell{b}, lineItems: lineItems{b}}
}

func (p *CheckoutOverviewPage) VerifyItemInOverview(name string) error {
	return p.verifyItemPresent(name)
}

// ClickItemName opens the detail screen of a listed product
func (p *CheckoutOverviewPage) ClickItemName(name string) error {
	return p.clickItemName(name)
}

func (p *CheckoutOverviewPage) PaymentInfo() (string, error) {
	return p.text("payment-value")
}

func (p *CheckoutOverviewPage) ShippingInfo() (string, error) {
	return p.text("shipping-value")
}

// SubtotalValue parses "Item total: $x.yy"
func (p *CheckoutOverviewPage) SubtotalValue() (models.Money, error) {
	return p.money("subtotal")
}

// TaxValue parses "Tax: $x.yy"
func (p *CheckoutOverviewPage) TaxValue() (models.Money, error) {
	return p.money("tax")
}

// TotalValue parses "Total: $x.yy"
func (p *CheckoutOverviewPage) TotalValue() (models.Money, error) {
	return p.money("total")
}

// Summary reads the displayed breakdown
func (p *CheckoutOverviewPage) Summary() (models.OrderSummary, error) {
	if err := p.verifyAllVisible("subtotal", "tax", "total"); err != nil {
		return models.OrderSummary{}, err
	}
	subtotal, err := p.SubtotalValue()
	if err != nil {
		return models.OrderSummary{}, err
	}
	tax, err := p.TaxValue()
	if err != nil {
		return models.OrderSummary{}, err
	}
	total, err := p.TotalValue()
	if err != nil {
		return models.OrderSummary{}, err
	}
	return models.OrderSummary{Subtotal: subtotal, Tax: tax, Total: total}, nil
}

// VerifyOrderCalculations asserts the subtotal equals the listed items and
// the total equals subtotal plus tax within one cent
func (p *CheckoutOverviewPage) VerifyOrderCalculations() error {
	summary, err := p.Summary()
	if err != nil {
		return err
	}
	items, err := p.Total()
	if err != nil {
		return err
	}
	if summary.Subtotal != items {
		return p.fail("subtotal matches items", mismatch(summary.Subtotal, items))
	}
	if !summary.Balanced() {
		return p.fail("total equals subtotal plus tax", fmt.Errorf("%w: %s", ErrMismatch, summary))
	}
	return nil
}

// VerifySummary asserts the displayed amounts equal want exactly
func (p *CheckoutOverviewPage) VerifySummary(want models.OrderSummary) error {
	checks := []struct {
		name   string
		amount models.Money
	}{
		{"subtotal", want.Subtotal},
		{"tax", want.Tax},
		{"total", want.Total},
	}
	for _, c := range checks {
		if err := p.verifyContains(c.name, c.amount.String()); err != nil {
			return err
		}
	}
	return nil
}

// VerifyTaxRate computes the expected breakdown of the listed items at rate
// and asserts the screen shows it
func (p *CheckoutOverviewPage) VerifyTaxRate(rate float64) error {
	prices, err := p.ItemPrices()
	if err != nil {
		return err
	}
	quantities, err := p.ItemQuantities()
	if err != nil {
		return err
	}
	if len(prices) != len(quantities) {
		return p.fail("line items", mismatch(len(quantities), len(prices)))
	}
	var expanded []models.Money
	for i, price := range prices {
		for q := 0; q < quantities[i]; q++ {
			expanded = append(expanded, price)
		}
	}
	want, err := models.NewOrderSummary(expanded, rate)
	if err != nil {
		return err
	}
	return p.VerifySummary(want)
}

func (p *CheckoutOverviewPage) VerifyPaymentInformation() error {
	if err := p.verifyText("payment-label", fixtures.PaymentInfoLabel); err != nil {
		return err
	}
	return p.verifyText("payment-value", fixtures.PaymentInfo)
}

func (p *CheckoutOverviewPage) VerifyShippingInformation() error {
	if err := p.verifyText("shipping-label", fixtures.ShippingInfoLabel); err != nil {
		return err
	}
	return p.verifyText("shipping-value", fixtures.ShippingInfo)
}

// VerifyOrderSummarySection checks every summary label and value is shown
func (p *CheckoutOverviewPage) VerifyOrderSummarySection() error {
	if err := p.verifyVisible("summary-info"); err != nil {
		return err
	}
	if err := p.VerifyPaymentInformation(); err != nil {
		return err
	}
	if err := p.VerifyShippingInformation(); err != nil {
		return err
	}
	if err := p.verifyText("total-info-label", fixtures.PriceTotalLabel); err != nil {
		return err
	}
	labels := []struct{ name, prefix string }{
		{"subtotal", "Item total: $"},
		{"tax", "Tax: $"},
		{"total", "Total: $"},
	}
	for _, l := range labels {
		if err := p.verifyContains(l.name, l.prefix); err != nil {
			return err
		}
	}
	return nil
}

func (p *CheckoutOverviewPage) VerifyActionButtons() error {
	if err := p.verifyText("finish", fixtures.FinishLabel); err != nil {
		return err
	}
	if err := p.expect.Locator(p.Locator("finish")).ToBeEnabled(); err != nil {
		return p.fail("finish enabled", err)
	}
	return p.verifyContains("cancel", fixtures.CancelLabel)
}

func (p *CheckoutOverviewPage) ClickFinish() error {
	return p.click("finish")
}

func (p *CheckoutOverviewPage) ClickCancel() error {
	return p.click("cancel")
}

// CompleteCheckout confirms the overview is shown and finishes the order
func (p *CheckoutOverviewPage) CompleteCheckout() error {
	if err := p.VerifyLoaded(); err != nil {
		return err
	}
	return p.ClickFinish()
}

func (p *CheckoutOverviewPage) VerifyCompletePageStructure() error {
	if err := p.VerifyLoaded(); err != nil {
		return err
	}
	if err := p.VerifyHeader(); err != nil {
		return err
	}
	if err := p.verifyText("quantity-label", fixtures.QuantityLabel); err != nil {
		return err
	}
	if err := p.verifyText("desc-label", fixtures.DescriptionLabel); err != nil {
		return err
	}
	if err := p.VerifyOrderSummarySection(); err != nil {
		return err
	}
	if err := p.VerifyActionButtons(); err != nil {
		return err
	}
	return p.VerifyFooter()
}
