package pages

import (
	"fmt"
	"strings"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
)

var loginDescriptors = []Descriptor{
	TestID("username", "username"),
	TestID("password", "password"),
	TestID("login-button", "login-button"),
	TestID("error", "error"),
	TestID("error-button", "error-button"),
	TestID("login-container", "login-container"),
	TestID("credentials", "login-credentials"),
	TestID("password-hint", "login-password"),
	CSS("logo", ".login_logo"),
}

// LoginPage is the root screen
type LoginPage struct {
	*BasePage
}

func NewLoginPage(page playwright.Page, opts ...Option) *LoginPage {
	return &LoginPage{BasePage: newBasePage(page, screen{
		name:        "login",
		path:        fixtures.RouteLogin,
		identifying: []string{"username", "password", "login-button"},
		docTitle:    fixtures.DocumentTitle,
	}, loginDescriptors, opts...)}
}

func (p *LoginPage) EnterUsername(username string) error {
	return p.fill("username", username)
}

func (p *LoginPage) EnterPassword(password string) error {
	return p.fill("password", password)
}

func (p *LoginPage) ClickLogin() error {
	return p.click("login-button")
}

// Login types both credentials and submits the form
func (p *LoginPage) Login(username, password string) error {
	if err := p.EnterUsername(username); err != nil {
		return err
	}
	if err := p.EnterPassword(password); err != nil {
		return err
	}
	return p.ClickLogin()
}

// SubmitWithEnter submits the form by pressing Enter in the password field
func (p *LoginPage) SubmitWithEnter() error {
	if err := p.Locator("password").Press("Enter"); err != nil {
		return fmt.Errorf("failed to press enter on login page: %w", err)
	}
	return nil
}

func (p *LoginPage) ClearCredentials() error {
	if err := p.fill("username", ""); err != nil {
		return err
	}
	return p.fill("password", "")
}

func (p *LoginPage) UsernameValue() (string, error) {
	return p.inputValue("username")
}

func (p *LoginPage) PasswordValue() (string, error) {
	return p.inputValue("password")
}

func (p *LoginPage) UsernamePlaceholder() (string, error) {
	return p.attribute("username", "placeholder")
}

func (p *LoginPage) PasswordPlaceholder() (string, error) {
	return p.attribute("password", "placeholder")
}

// LoginButtonText returns the label of the submit input
func (p *LoginPage) LoginButtonText() (string, error) {
	return p.attribute("login-button", "value")
}

func (p *LoginPage) LogoText() (string, error) {
	return p.text("logo")
}

// ErrorMessage waits for the error banner and returns its text
func (p *LoginPage) ErrorMessage() (string, error) {
	if err := p.verifyVisible("error"); err != nil {
		return "", err
	}
	return p.text("error")
}

// VerifyErrorMessage asserts the banner is shown and contains want
func (p *LoginPage) VerifyErrorMessage(want string) error {
	if err := p.verifyVisible("error"); err != nil {
		return err
	}
	return p.verifyContains("error", want)
}

func (p *LoginPage) IsErrorMessageVisible() (bool, error) {
	return p.isVisible("error")
}

// DismissErrorIfPresent clicks the banner's close button when it is shown
// and reports whether it did
func (p *LoginPage) DismissErrorIfPresent() (bool, error) {
	visible, err := p.isVisible("error-button")
	if err != nil || !visible {
		return false, err
	}
	if err := p.click("error-button"); err != nil {
		return false, err
	}
	return true, p.verifyAbsent("error", p.Locator("error"))
}

// AcceptedUsernames returns the usernames listed under the form
func (p *LoginPage) AcceptedUsernames() ([]string, error) {
	text, err := p.Locator("credentials").InnerText()
	if err != nil {
		return nil, fmt.Errorf("failed to read credentials on login page: %w", err)
	}
	var names []string
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if strings.Contains(line, "_user") {
			names = append(names, line)
		}
	}
	return names, nil
}

// PasswordHint returns the shared password shown under the form
func (p *LoginPage) PasswordHint() (string, error) {
	text, err := p.Locator("password-hint").InnerText()
	if err != nil {
		return "", fmt.Errorf("failed to read password hint on login page: %w", err)
	}
	if _, after, ok := strings.Cut(text, ":"); ok {
		return strings.TrimSpace(after), nil
	}
	return strings.TrimSpace(text), nil
}

// VerifyFieldAttributes checks input types, placeholders and the submit label
func (p *LoginPage) VerifyFieldAttributes() error {
	checks := []struct {
		name, attr, want string
	}{
		{"username", "type", "text"},
		{"username", "placeholder", fixtures.UsernamePlaceholder},
		{"password", "type", "password"},
		{"password", "placeholder", fixtures.PasswordPlaceholder},
		{"login-button", "type", "submit"},
		{"login-button", "value", fixtures.LoginButtonLabel},
	}
	for _, c := range checks {
		if err := p.verifyAttribute(c.name, c.attr, c.want); err != nil {
			return err
		}
	}
	return nil
}

// HasUsernameError reports whether the username field carries the "error"
// class. Both inputs always carry "input_error", so that one is not a signal.
func (p *LoginPage) HasUsernameError() (bool, error) {
	return p.hasErrorClass("username")
}

// HasPasswordError reports whether the password field carries error styling
func (p *LoginPage) HasPasswordError() (bool, error) {
	return p.hasErrorClass("password")
}

func (p *LoginPage) hasErrorClass(name string) (bool, error) {
	class, err := p.attribute(name, "class")
	if err != nil {
		return false, err
	}
	for _, c := range strings.Fields(class) {
		if c == "error" {
			return true, nil
		}
	}
	return false, nil
}

// VerifyAllElementsPresent checks the form, logo, credential lists and every listed account
func (p *LoginPage) VerifyAllElementsPresent() error {
	if err := p.VerifyLoaded(); err != nil {
		return err
	}
	if err := p.verifyAllVisible("login-container", "logo", "credentials", "password-hint"); err != nil {
		return err
	}
	if err := p.verifyText("logo", fixtures.AppLogo); err != nil {
		return err
	}
	for _, user := range fixtures.AcceptedUsers() {
		if err := p.verifyContains("credentials", user); err != nil {
			return err
		}
	}
	return p.verifyContains("password-hint", fixtures.Password)
}

func (p *LoginPage) inputValue(name string) (string, error) {
	v, err := p.Locator(name).InputValue()
	if err != nil {
		return "", fmt.Errorf("failed to read %s value on login page: %w", name, err)
	}
	return v, nil
}
