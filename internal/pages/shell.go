package pages

import (
	"fmt"
	"strconv"

	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
)

// shellDescriptors are the header, burger menu, cart badge and footer
// rendered on every screen after login
func shellDescriptors() []Descriptor {
	return []Descriptor{
		TestID("header", "header-container"),
		TestID("primary-header", "primary-header"),
		TestID("secondary-header", "secondary-header"),
		CSS("app-logo", ".app_logo"),
		Role("open-menu", "button", "Open Menu"),
		Role("close-menu", "button", "Close Menu"),
		TestID("all-items-link", "inventory-sidebar-link"),
		TestID("about-link", "about-sidebar-link"),
		TestID("logout-link", "logout-sidebar-link"),
		TestID("reset-link", "reset-sidebar-link"),
		TestID("cart-link", "shopping-cart-link"),
		TestID("cart-badge", "shopping-cart-badge"),
		TestID("footer", "footer"),
		TestID("footer-copy", "footer-copy"),
		TestID("social-twitter", "social-twitter"),
		TestID("social-facebook", "social-facebook"),
		TestID("social-linkedin", "social-linkedin"),
	}
}

func withShell(own ...Descriptor) []Descriptor {
	return append(shellDescriptors(), own...)
}

var menuLinks = []string{"all-items-link", "about-link", "logout-link", "reset-link"}

// appShell implements the shared chrome once for every post-login screen
type appShell struct {
	*BasePage
}

// OpenMenu opens the burger menu and waits for its links
func (s appShell) OpenMenu() error {
	if err := s.click("open-menu"); err != nil {
		return err
	}
	return s.VerifyMenuOpen()
}

// CloseMenu closes the burger menu and waits for its links to hide
func (s appShell) CloseMenu() error {
	if err := s.click("close-menu"); err != nil {
		return err
	}
	return s.VerifyMenuClosed()
}

func (s appShell) VerifyMenuOpen() error {
	return s.verifyAllVisible(menuLinks...)
}

func (s appShell) VerifyMenuClosed() error {
	for _, name := range menuLinks {
		if err := s.expect.Locator(s.Locator(name)).Not().ToBeVisible(); err != nil {
			return s.fail(name+" hidden", err)
		}
	}
	return nil
}

// NavigateToAllItems uses the menu to return to the product listing
func (s appShell) NavigateToAllItems() error {
	if err := s.OpenMenu(); err != nil {
		return err
	}
	return s.click("all-items-link")
}

// Logout uses the menu to end the session
func (s appShell) Logout() error {
	if err := s.OpenMenu(); err != nil {
		return err
	}
	return s.click("logout-link")
}

// ResetAppState empties the cart through the menu and closes it again
func (s appShell) ResetAppState() error {
	if err := s.OpenMenu(); err != nil {
		return err
	}
	if err := s.click("reset-link"); err != nil {
		return err
	}
	return s.CloseMenu()
}

func (s appShell) ClickShoppingCart() error {
	return s.click("cart-link")
}

// CartBadgeCount returns the number on the cart badge, zero when it is absent
func (s appShell) CartBadgeCount() (int, error) {
	n, err := s.count("cart badge", s.Locator("cart-badge"))
	if err != nil || n == 0 {
		return 0, err
	}
	text, err := s.text("cart-badge")
	if err != nil {
		return 0, err
	}
	count, err := strconv.Atoi(text)
	if err != nil {
		return 0, s.fail("cart badge number", fmt.Errorf("%w: %q", ErrMismatch, text))
	}
	return count, nil
}

// VerifyCartBadge asserts the badge shows n. For zero the badge must be
// absent rather than showing "0".
func (s appShell) VerifyCartBadge(n int) error {
	badge := s.Locator("cart-badge")
	if n == 0 {
		return s.verifyAbsent("cart badge", badge)
	}
	if err := s.expect.Locator(badge).ToHaveText(strconv.Itoa(n)); err != nil {
		return s.fail("cart badge shows "+strconv.Itoa(n), err)
	}
	return nil
}

func (s appShell) VerifyHeader() error {
	if err := s.verifyAllVisible("header", "primary-header", "open-menu", "cart-link"); err != nil {
		return err
	}
	return s.verifyText("app-logo", fixtures.AppLogo)
}

func (s appShell) VerifyFooter() error {
	if err := s.verifyVisible("footer"); err != nil {
		return err
	}
	if err := s.verifyContains("footer-copy", fixtures.FooterCopy); err != nil {
		return err
	}
	return s.VerifySocialLinks()
}

func (s appShell) VerifySocialLinks() error {
	links := []struct {
		name string
		href string
	}{
		{"social-twitter", fixtures.TwitterURL},
		{"social-facebook", fixtures.FacebookURL},
		{"social-linkedin", fixtures.LinkedInURL},
	}
	for _, l := range links {
		if err := s.verifyVisible(l.name); err != nil {
			return err
		}
		if err := s.verifyAttribute(l.name, "href", l.href); err != nil {
			return err
		}
	}
	return nil
}

func (s appShell) FooterCopyright() (string, error) {
	return s.text("footer-copy")
}
