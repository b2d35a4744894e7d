package pages

import (
	"fmt"
	"regexp"

	"github.com/playwright-community/playwright-go"
)

// Strategy selects how a Descriptor is resolved against the document
type Strategy int

const (
	// StrategyTestID matches the data-test attribute. Preferred.
	StrategyTestID Strategy = iota
	// StrategyCSS is a class or structural selector, used where the markup has no test id
	StrategyCSS
	// StrategyRole matches an ARIA role and accessible name
	StrategyRole
	// StrategyText matches visible text
	StrategyText
	// StrategyTestIDAffix matches a family of data-test values sharing a prefix and suffix
	StrategyTestIDAffix
)

func (s Strategy) String() string {
	switch s {
	case StrategyTestID:
		return "test-id"
	case StrategyCSS:
		return "css"
	case StrategyRole:
		return "role"
	case StrategyText:
		return "text"
	case StrategyTestIDAffix:
		return "test-id-affix"
	default:
		return fmt.Sprintf("strategy(%d)", int(s))
	}
}

// Descriptor binds a semantic element name to a selection strategy
type Descriptor struct {
	Name     string
	Strategy Strategy
	// Selector is the test id, CSS selector, accessible name or text depending on Strategy.
	// For StrategyTestIDAffix it is the test id prefix.
	Selector string
	// Suffix is the test id suffix for StrategyTestIDAffix
	Suffix string
	// Role is the ARIA role for StrategyRole
	Role  string
	Exact bool
}

// TestID describes an element by its data-test attribute
func TestID(name, id string) Descriptor {
	return Descriptor{Name: name, Strategy: StrategyTestID, Selector: id}
}

// TestIDAffix describes every element whose data-test starts with prefix and
// ends with suffix, such as the per-product "inventory-item-<slug>-img" images
func TestIDAffix(name, prefix, suffix string) Descriptor {
	return Descriptor{Name: name, Strategy: StrategyTestIDAffix, Selector: prefix, Suffix: suffix}
}

// CSS describes an element by a CSS selector
func CSS(name, selector string) Descriptor {
	return Descriptor{Name: name, Strategy: StrategyCSS, Selector: selector}
}

// Role describes an element by ARIA role and exact accessible name
func Role(name, role, accessibleName string) Descriptor {
	return Descriptor{Name: name, Strategy: StrategyRole, Role: role, Selector: accessibleName, Exact: true}
}

// Text describes an element by its exact visible text
func Text(name, text string) Descriptor {
	return Descriptor{Name: name, Strategy: StrategyText, Selector: text, Exact: true}
}

func (d Descriptor) validate() error {
	if d.Name == "" {
		return fmt.Errorf("descriptor with selector %q has no name", d.Selector)
	}
	if d.Selector == "" && d.Suffix == "" {
		return fmt.Errorf("descriptor %q has an empty selector", d.Name)
	}
	switch d.Strategy {
	case StrategyTestIDAffix:
	case StrategyTestID, StrategyCSS, StrategyText:
		if d.Selector == "" {
			return fmt.Errorf("descriptor %q has an empty selector", d.Name)
		}
	case StrategyRole:
		if d.Role == "" {
			return fmt.Errorf("descriptor %q uses the role strategy without a role", d.Name)
		}
	default:
		return fmt.Errorf("descriptor %q has unknown %s", d.Name, d.Strategy)
	}
	return nil
}

func (d Descriptor) resolve(page playwright.Page) playwright.Locator {
	switch d.Strategy {
	case StrategyCSS:
		return page.Locator(d.Selector)
	case StrategyTestIDAffix:
		return page.Locator(testIDAffixSelector(d.Selector, d.Suffix))
	case StrategyRole:
		return page.GetByRole(playwright.AriaRole(d.Role), playwright.PageGetByRoleOptions{
			Name:  d.Selector,
			Exact: playwright.Bool(d.Exact),
		})
	case StrategyText:
		return page.GetByText(d.Selector, playwright.PageGetByTextOptions{
			Exact: playwright.Bool(d.Exact),
		})
	default:
		return page.Locator(testIDSelector(d.Selector))
	}
}

// validateDescriptors checks every descriptor and rejects duplicate names
func validateDescriptors(descriptors []Descriptor) error {
	seen := make(map[string]struct{}, len(descriptors))
	for _, d := range descriptors {
		if err := d.validate(); err != nil {
			return err
		}
		if _, dup := seen[d.Name]; dup {
			return fmt.Errorf("duplicate descriptor name %q", d.Name)
		}
		seen[d.Name] = struct{}{}
	}
	return nil
}

// Registry maps semantic element names to resolved locators.
// It is built once per page object and never changes afterwards.
type Registry struct {
	locators map[string]playwright.Locator
	names    []string
}

// NewRegistry resolves every descriptor against page. It panics when a
// descriptor is invalid or a name is used twice, since descriptor lists are
// static literals and such a mistake is a programming error.
func NewRegistry(page playwright.Page, descriptors ...Descriptor) *Registry {
	if err := validateDescriptors(descriptors); err != nil {
		panic("pages: " + err.Error())
	}
	r := &Registry{
		locators: make(map[string]playwright.Locator, len(descriptors)),
		names:    make([]string, 0, len(descriptors)),
	}
	for _, d := range descriptors {
		r.locators[d.Name] = d.resolve(page)
		r.names = append(r.names, d.Name)
	}
	return r
}

// Get returns the locator registered under name. Unknown names panic.
func (r *Registry) Get(name string) playwright.Locator {
	l, ok := r.locators[name]
	if !ok {
		panic(fmt.Sprintf("pages: no locator named %q", name))
	}
	return l
}

// Names returns the registered names in declaration order
func (r *Registry) Names() []string {
	return append([]string(nil), r.names...)
}

// Subset returns a fresh map holding the named locators
func (r *Registry) Subset(names ...string) map[string]playwright.Locator {
	out := make(map[string]playwright.Locator, len(names))
	for _, name := range names {
		out[name] = r.Get(name)
	}
	return out
}

func testIDSelector(id string) string {
	return `[data-test="` + id + `"]`
}

func testIDAffixSelector(prefix, suffix string) string {
	var sel string
	if prefix != "" {
		sel += `[data-test^="` + prefix + `"]`
	}
	if suffix != "" {
		sel += `[data-test$="` + suffix + `"]`
	}
	return sel
}

// exactText matches an element whose whole text equals s
func exactText(s string) *regexp.Regexp {
	return regexp.MustCompile(`^\s*` + regexp.QuoteMeta(s) + `\s*$`)
}
