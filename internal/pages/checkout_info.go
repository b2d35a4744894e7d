package pages

import (
	"fmt"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
)

// CheckoutField names an input of the checkout information form
type CheckoutField string

const (
	FieldFirstName  CheckoutField = "first-name"
	FieldLastName   CheckoutField = "last-name"
	FieldPostalCode CheckoutField = "postal-code"
)

var checkoutFields = []CheckoutField{FieldFirstName, FieldLastName, FieldPostalCode}

var checkoutInfoDescriptors = withShell(
	TestID("title", "title"),
	TestID("info-container", "checkout-info-container"),
	TestID(string(FieldFirstName), "firstName"),
	TestID(string(FieldLastName), "lastName"),
	TestID(string(FieldPostalCode), "postalCode"),
	TestID("continue", "continue"),
	TestID("cancel", "cancel"),
	TestID("error", "error"),
	TestID("error-button", "error-button"),
	CSS("first-name-icon", `[data-test="firstName"] + .error_icon`),
	CSS("last-name-icon", `[data-test="lastName"] + .error_icon`),
	CSS("postal-code-icon", `[data-test="postalCode"] + .error_icon`),
)

// CheckoutInfoPage is the first checkout step
type CheckoutInfoPage struct {
	appShell
}

func NewCheckoutInfoPage(page playwright.Page, opts ...Option) *CheckoutInfoPage {
	return &CheckoutInfoPage{appShell{newBasePage(page, screen{
		name:        "checkout information",
		path:        fixtures.RouteCheckoutInfo,
		identifying: []string{"title", string(FieldFirstName), string(FieldLastName), string(FieldPostalCode), "continue", "cancel"},
		heading:     fixtures.TitleCheckoutInfo,
	}, checkoutInfoDescriptors, opts...)}}
}

func (p *CheckoutInfoPage) EnterFirstName(v string) error {
	return p.fill(string(FieldFirstName), v)
}

func (p *CheckoutInfoPage) EnterLastName(v string) error {
	return p.fill(string(FieldLastName), v)
}

func (p *CheckoutInfoPage) EnterPostalCode(v string) error {
	return p.fill(string(FieldPostalCode), v)
}

// FillCheckoutInformation types all three fields verbatim
func (p *CheckoutInfoPage) FillCheckoutInformation(first, last, postalCode string) error {
	if err := p.EnterFirstName(first); err != nil {
		return err
	}
	if err := p.EnterLastName(last); err != nil {
		return err
	}
	return p.EnterPostalCode(postalCode)
}

// CompleteCheckoutInformation fills the form and continues
func (p *CheckoutInfoPage) CompleteCheckoutInformation(first, last, postalCode string) error {
	if err := p.FillCheckoutInformation(first, last, postalCode); err != nil {
		return err
	}
	return p.ClickContinue()
}

// FieldValues returns what the inputs currently hold
func (p *CheckoutInfoPage) FieldValues() (fixtures.CheckoutInfo, error) {
	var values [3]string
	for i, f := range checkoutFields {
		v, err := p.Locator(string(f)).InputValue()
		if err != nil {
			return fixtures.CheckoutInfo{}, fmt.Errorf("failed to read %s on checkout information page: %w", f, err)
		}
		values[i] = v
	}
	return fixtures.CheckoutInfo{FirstName: values[0], LastName: values[1], PostalCode: values[2]}, nil
}

func (p *CheckoutInfoPage) ClearAllFields() error {
	for _, f := range checkoutFields {
		if err := p.fill(string(f), ""); err != nil {
			return err
		}
	}
	return nil
}

// SubmitEmptyForm clears every field and continues
func (p *CheckoutInfoPage) SubmitEmptyForm() error {
	if err := p.ClearAllFields(); err != nil {
		return err
	}
	return p.ClickContinue()
}

func (p *CheckoutInfoPage) ClickContinue() error {
	return p.click("continue")
}

func (p *CheckoutInfoPage) ClickCancel() error {
	return p.click("cancel")
}

// ErrorMessage waits for the error banner and returns its text
func (p *CheckoutInfoPage) ErrorMessage() (string, error) {
	if err := p.verifyVisible("error"); err != nil {
		return "", err
	}
	return p.text("error")
}

func (p *CheckoutInfoPage) VerifyErrorMessage(want string) error {
	if err := p.verifyVisible("error"); err != nil {
		return err
	}
	return p.verifyContains("error", want)
}

func (p *CheckoutInfoPage) VerifyNoErrorMessage() error {
	return p.verifyAbsent("error", p.Locator("error"))
}

func (p *CheckoutInfoPage) IsErrorMessageVisible() (bool, error) {
	return p.isVisible("error")
}

// DismissErrorIfPresent clicks the banner's close button when it is shown
// and reports whether it did
func (p *CheckoutInfoPage) DismissErrorIfPresent() (bool, error) {
	visible, err := p.isVisible("error-button")
	if err != nil || !visible {
		return false, err
	}
	if err := p.click("error-button"); err != nil {
		return false, err
	}
	return true, p.verifyAbsent("error", p.Locator("error"))
}

// VerifyErrorIcon asserts the error icon next to field is shown
func (p *CheckoutInfoPage) VerifyErrorIcon(field CheckoutField) error {
	return p.verifyVisible(string(field) + "-icon")
}

func (p *CheckoutInfoPage) VerifyNoErrorIcons() error {
	for _, f := range checkoutFields {
		name := string(f) + "-icon"
		if err := p.verifyAbsent(name, p.Locator(name)); err != nil {
			return err
		}
	}
	return nil
}

// VerifyFormFieldsPopulated asserts the inputs hold want
func (p *CheckoutInfoPage) VerifyFormFieldsPopulated(want fixtures.CheckoutInfo) error {
	values := map[CheckoutField]string{
		FieldFirstName:  want.FirstName,
		FieldLastName:   want.LastName,
		FieldPostalCode: want.PostalCode,
	}
	for _, f := range checkoutFields {
		if err := p.expect.Locator(p.Locator(string(f))).ToHaveValue(values[f]); err != nil {
			return p.fail(string(f)+" value", err)
		}
	}
	return nil
}

func (p *CheckoutInfoPage) VerifyCompletePageStructure() error {
	if err := p.VerifyLoaded(); err != nil {
		return err
	}
	if err := p.VerifyHeader(); err != nil {
		return err
	}
	if err := p.verifyVisible("info-container"); err != nil {
		return err
	}
	placeholders := map[CheckoutField]string{
		FieldFirstName:  "First Name",
		FieldLastName:   "Last Name",
		FieldPostalCode: "Zip/Postal Code",
	}
	for _, f := range checkoutFields {
		if err := p.verifyAttribute(string(f), "placeholder", placeholders[f]); err != nil {
			return err
		}
	}
	if err := p.verifyAttribute("continue", "value", fixtures.ContinueLabel); err != nil {
		return err
	}
	if err := p.verifyContains("cancel", fixtures.CancelLabel); err != nil {
		return err
	}
	return p.VerifyFooter()
}
