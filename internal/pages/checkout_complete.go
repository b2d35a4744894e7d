package pages

import (
	"fmt"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
)

// BackHomeTimeout is how long ClickBackHomeAndVerify waits for the listing
const BackHomeTimeout = 10 * time.Second

var checkoutCompleteDescriptors = withShell(
	TestID("title", "title"),
	TestID("complete-container", "checkout-complete-container"),
	TestID("complete-header", "complete-header"),
	TestID("complete-text", "complete-text"),
	TestID("pony-express", "pony-express"),
	TestID("back-home", "back-to-products"),
)

// CheckoutCompletePage confirms a placed order
type CheckoutCompletePage struct {
	appShell
}

func NewCheckoutCompletePage(page playwright.Page, opts ...Option) *CheckoutCompletePage {
	return &CheckoutCompletePage{appShell{newBasePage(page, screen{
		name:        "checkout complete",
		path:        fixtures.RouteCheckoutComplete,
		identifying: []string{"title", "complete-header", "complete-text", "back-home"},
		heading:     fixtures.TitleCheckoutComplete,
	}, checkoutCompleteDescriptors, opts...)}}
}

func (p *CheckoutCompletePage) CompletionHeader() (string, error) {
	return p.text("complete-header")
}

func (p *CheckoutCompletePage) CompletionText() (string, error) {
	return p.text("complete-text")
}

// VerifyOrderCompletion asserts the thank-you header and dispatch message
func (p *CheckoutCompletePage) VerifyOrderCompletion() error {
	if err := p.verifyText("complete-header", fixtures.CompleteHeader); err != nil {
		return err
	}
	return p.verifyText("complete-text", fixtures.CompleteText)
}

func (p *CheckoutCompletePage) VerifyCompletionImage() error {
	if err := p.verifyVisible("pony-express"); err != nil {
		return err
	}
	return p.verifyAttribute("pony-express", "alt", fixtures.PonyExpressAlt)
}

func (p *CheckoutCompletePage) VerifyBackHomeButton() error {
	if err := p.verifyVisible("back-home"); err != nil {
		return err
	}
	if err := p.expect.Locator(p.Locator("back-home")).ToBeEnabled(); err != nil {
		return p.fail("back-home enabled", err)
	}
	return p.verifyText("back-home", fixtures.BackHomeLabel)
}

func (p *CheckoutCompletePage) ClickBackHome() error {
	return p.click("back-home")
}

// ClickBackHomeAndVerify returns to the listing and waits up to
// BackHomeTimeout for its URL
func (p *CheckoutCompletePage) ClickBackHomeAndVerify() error {
	if err := p.ClickBackHome(); err != nil {
		return err
	}
	if err := p.page.WaitForURL("**"+fixtures.RouteInventory, playwright.PageWaitForURLOptions{
		Timeout: playwright.Float(milliseconds(BackHomeTimeout)),
	}); err != nil {
		return p.fail("back home reaches "+fixtures.RouteInventory, err)
	}
	return nil
}

func (p *CheckoutCompletePage) IsCartBadgeVisible() (bool, error) {
	return p.isVisible("cart-badge")
}

// VerifyCartReset asserts the order emptied the cart
func (p *CheckoutCompletePage) VerifyCartReset() error {
	return p.VerifyCartBadge(0)
}

// VerifySuccessfulCheckout is the terminal check of a checkout flow
func (p *CheckoutCompletePage) VerifySuccessfulCheckout() error {
	if err := p.VerifyLoaded(); err != nil {
		return err
	}
	if err := p.VerifyOrderCompletion(); err != nil {
		return err
	}
	if err := p.VerifyCompletionImage(); err != nil {
		return err
	}
	if err := p.VerifyBackHomeButton(); err != nil {
		return err
	}
	return p.VerifyCartReset()
}

func (p *CheckoutCompletePage) VerifyCompletePageStructure() error {
	if err := p.VerifyLoaded(); err != nil {
		return err
	}
	if err := p.VerifyHeader(); err != nil {
		return err
	}
	if err := p.verifyVisible("complete-container"); err != nil {
		return err
	}
	if err := p.VerifyOrderCompletion(); err != nil {
		return err
	}
	if err := p.VerifyCompletionImage(); err != nil {
		return err
	}
	if err := p.VerifyBackHomeButton(); err != nil {
		return err
	}
	return p.VerifyFooter()
}

// VisibleText returns the rendered text of the confirmation panel
func (p *CheckoutCompletePage) VisibleText() (string, error) {
	text, err := p.Locator("complete-container").InnerText()
	if err != nil {
		return "", fmt.Errorf("failed to read checkout complete text: %w", err)
	}
	return strings.TrimSpace(text), nil
}
