// Package pages is the page object layer over the SwagLabs shop. Every screen
// is a type that owns a locator registry built from a static descriptor list
// and exposes gestures, read accessors and verifications. Page objects hold no
// state besides the browser handle: everything they report is read from the
// live document on demand.
package pages

import (
	"fmt"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/playwright-community/playwright-go"

	"github.com/themizzi/swaglabs-e2e/internal/models"
)

// DefaultTimeout bounds every assertion unless WithTimeout overrides it
const DefaultTimeout = 5 * time.Second

// Page is the contract every screen implements
type Page interface {
	Name() string
	Path() string
	Navigate() error
	VerifyLoaded() error
	IdentifyingElements() map[string]playwright.Locator
}

// Option configures a page object
type Option func(*BasePage)

// WithTimeout sets the assertion timeout
func WithTimeout(d time.Duration) Option {
	return func(b *BasePage) {
		if d > 0 {
			b.timeout = d
		}
	}
}

// screen describes what identifies a loaded screen
type screen struct {
	name        string
	path        string
	identifying []string
	// heading is the expected text of the "title" element, empty when the screen has none
	heading string
	// docTitle is the expected document title, empty to skip the check
	docTitle string
}

// BasePage carries the browser handle, the locator registry and the
// verification shared by every screen
type BasePage struct {
	page     playwright.Page
	screen   screen
	locators *Registry
	timeout  time.Duration
	expect   playwright.PlaywrightAssertions
}

func newBasePage(page playwright.Page, s screen, descriptors []Descriptor, opts ...Option) *BasePage {
	b := &BasePage{
		page:     page,
		screen:   s,
		locators: NewRegistry(page, descriptors...),
		timeout:  DefaultTimeout,
	}
	for _, opt := range opts {
		opt(b)
	}
	b.expect = playwright.NewPlaywrightAssertions(milliseconds(b.timeout))
	return b
}

// Name returns the screen name used in assertion errors
func (b *BasePage) Name() string {
	return b.screen.name
}

// Path returns the route of the screen
func (b *BasePage) Path() string {
	return b.screen.path
}

// Timeout returns the assertion timeout
func (b *BasePage) Timeout() time.Duration {
	return b.timeout
}

// Browser returns the underlying playwright page
func (b *BasePage) Browser() playwright.Page {
	return b.page
}

// URL returns the current document URL
func (b *BasePage) URL() string {
	return b.page.URL()
}

// Locator returns a registered locator by name
func (b *BasePage) Locator(name string) playwright.Locator {
	return b.locators.Get(name)
}

// Navigate loads the screen's path relative to the context base URL
func (b *BasePage) Navigate() error {
	return b.goTo(b.screen.path)
}

func (b *BasePage) goTo(path string) error {
	if _, err := b.page.Goto(path); err != nil {
		return fmt.Errorf("%w: %s page at %s: %v", ErrNavigation, b.screen.name, path, err)
	}
	return nil
}

// VerifyLoaded checks that the identifying elements are visible, the heading
// and document title match and the URL contains the screen path
func (b *BasePage) VerifyLoaded() error {
	for _, name := range b.screen.identifying {
		if err := b.verifyVisible(name); err != nil {
			return err
		}
	}
	if b.screen.heading != "" {
		if err := b.verifyText("title", b.screen.heading); err != nil {
			return err
		}
	}
	if b.screen.docTitle != "" {
		if err := b.expect.Page(b.page).ToHaveTitle(b.screen.docTitle); err != nil {
			return b.fail("document title", err)
		}
	}
	return b.verifyURL()
}

// IdentifyingElements returns the elements VerifyLoaded checks for visibility
func (b *BasePage) IdentifyingElements() map[string]playwright.Locator {
	return b.locators.Subset(b.screen.identifying...)
}

// TakeScreenshot writes a full page PNG into dir and returns its path
func (b *BasePage) TakeScreenshot(dir, name string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create screenshot dir: %w", err)
	}
	path := filepath.Join(dir, screenshotFile(name))
	if _, err := b.page.Screenshot(playwright.PageScreenshotOptions{
		Path:     playwright.String(path),
		FullPage: playwright.Bool(true),
	}); err != nil {
		return "", fmt.Errorf("failed to take screenshot of %s page: %w", b.screen.name, err)
	}
	return path, nil
}

var unsafeFileChars = regexp.MustCompile(`[^a-zA-Z0-9._-]+`)

func screenshotFile(name string) string {
	name = strings.Trim(unsafeFileChars.ReplaceAllString(name, "-"), "-")
	if name == "" {
		name = "screenshot"
	}
	return name + ".png"
}

func (b *BasePage) fail(check string, err error) error {
	return &AssertionError{Page: b.screen.name, Check: check, Err: err}
}

func (b *BasePage) verifyURL() error {
	pattern := regexp.MustCompile(regexp.QuoteMeta(b.screen.path))
	if err := b.expect.Page(b.page).ToHaveURL(pattern); err != nil {
		return b.fail("url contains "+b.screen.path, err)
	}
	return nil
}

// within returns a copy of the page whose assertions wait up to d
func (b *BasePage) within(d time.Duration) *BasePage {
	ext := *b
	ext.timeout = d
	ext.expect = playwright.NewPlaywrightAssertions(milliseconds(d))
	return &ext
}

func (b *BasePage) verifyVisible(name string) error {
	return b.verifyLocatorVisible(name, b.Locator(name))
}

func (b *BasePage) verifyLocatorVisible(check string, l playwright.Locator) error {
	if err := b.expect.Locator(l).ToBeVisible(); err != nil {
		return b.fail(check+" visible", err)
	}
	return nil
}

func (b *BasePage) verifyAllVisible(names ...string) error {
	for _, name := range names {
		if err := b.verifyVisible(name); err != nil {
			return err
		}
	}
	return nil
}

func (b *BasePage) verifyAbsent(check string, l playwright.Locator) error {
	if err := b.expect.Locator(l).ToHaveCount(0); err != nil {
		return b.fail(check+" absent", err)
	}
	return nil
}

func (b *BasePage) verifyText(name, want string) error {
	if err := b.expect.Locator(b.Locator(name)).ToHaveText(want); err != nil {
		return b.fail(name+" text", err)
	}
	return nil
}

func (b *BasePage) verifyContains(name, want string) error {
	if err := b.expect.Locator(b.Locator(name)).ToContainText(want); err != nil {
		return b.fail(name+" contains "+want, err)
	}
	return nil
}

func (b *BasePage) verifyAttribute(name, attr, want string) error {
	if err := b.expect.Locator(b.Locator(name)).ToHaveAttribute(attr, want); err != nil {
		return b.fail(fmt.Sprintf("%s %s attribute", name, attr), err)
	}
	return nil
}

func (b *BasePage) verifyCount(check string, l playwright.Locator, n int) error {
	if err := b.expect.Locator(l).ToHaveCount(n); err != nil {
		return b.fail(check+" count", err)
	}
	return nil
}

func (b *BasePage) click(name string) error {
	if err := b.Locator(name).Click(); err != nil {
		return fmt.Errorf("failed to click %s on %s page: %w", name, b.screen.name, err)
	}
	return nil
}

func (b *BasePage) fill(name, value string) error {
	if err := b.Locator(name).Fill(value); err != nil {
		return fmt.Errorf("failed to fill %s on %s page: %w", name, b.screen.name, err)
	}
	return nil
}

func (b *BasePage) text(name string) (string, error) {
	return b.locatorText(name, b.Locator(name))
}

func (b *BasePage) locatorText(check string, l playwright.Locator) (string, error) {
	s, err := l.TextContent()
	if err != nil {
		return "", fmt.Errorf("failed to read %s on %s page: %w", check, b.screen.name, err)
	}
	return strings.TrimSpace(s), nil
}

func (b *BasePage) texts(check string, l playwright.Locator) ([]string, error) {
	all, err := l.AllTextContents()
	if err != nil {
		return nil, fmt.Errorf("failed to read %s on %s page: %w", check, b.screen.name, err)
	}
	for i := range all {
		all[i] = strings.TrimSpace(all[i])
	}
	return all, nil
}

func (b *BasePage) money(name string) (models.Money, error) {
	s, err := b.text(name)
	if err != nil {
		return 0, err
	}
	return models.ParseMoney(s), nil
}

func (b *BasePage) count(check string, l playwright.Locator) (int, error) {
	n, err := l.Count()
	if err != nil {
		return 0, fmt.Errorf("failed to count %s on %s page: %w", check, b.screen.name, err)
	}
	return n, nil
}

// isVisible is the presence query of the two step optional affordance
func (b *BasePage) isVisible(name string) (bool, error) {
	visible, err := b.Locator(name).IsVisible()
	if err != nil {
		return false, fmt.Errorf("failed to query %s on %s page: %w", name, b.screen.name, err)
	}
	return visible, nil
}

// rowByName returns the rows whose name element text equals itemName exactly
func (b *BasePage) rowByName(row, nameID, itemName string) playwright.Locator {
	return b.Locator(row).Filter(playwright.LocatorFilterOptions{
		Has: b.page.Locator(testIDSelector(nameID)).Filter(playwright.LocatorFilterOptions{
			HasText: exactText(itemName),
		}),
	})
}

// singleRow resolves a row by name and fails unless exactly one matches
func (b *BasePage) singleRow(row, nameID, itemName string) (playwright.Locator, error) {
	l := b.rowByName(row, nameID, itemName)
	if err := b.verifyCount(itemName+" row", l, 1); err != nil {
		return nil, err
	}
	return l, nil
}

func milliseconds(d time.Duration) float64 {
	return float64(d.Milliseconds())
}

func (b *BasePage) attribute(name, attr string) (string, error) {
	v, err := b.Locator(name).GetAttribute(attr)
	if err != nil {
		return "", fmt.Errorf("failed to read %s %s on %s page: %w", name, attr, b.screen.name, err)
	}
	return v, nil
}
