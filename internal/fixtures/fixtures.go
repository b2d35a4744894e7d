// Package fixtures holds the shared, read-only data scenarios drive the shop
// with: credentials, the product catalog, checkout field values, expected copy
// and routes.
//
// Strings are constants. Composite records are returned by value from
// accessor functions, so a scenario that modifies what it received cannot
// affect any other scenario.
package fixtures

import "github.com/themizzi/swaglabs-e2e/internal/models"

// Password shared by every demo account
const Password = "secret_sauce"

// Demo account usernames
const (
	StandardUser          = "standard_user"
	LockedOutUser         = "locked_out_user"
	ProblemUser           = "problem_user"
	PerformanceGlitchUser = "performance_glitch_user"
	ErrorUser             = "error_user"
	VisualUser            = "visual_user"
)

// Product names in catalog order
const (
	SauceLabsBackpack      = "Sauce Labs Backpack"
	SauceLabsBikeLight     = "Sauce Labs Bike Light"
	SauceLabsBoltTShirt    = "Sauce Labs Bolt T-Shirt"
	SauceLabsFleeceJacket  = "Sauce Labs Fleece Jacket"
	SauceLabsOnesie        = "Sauce Labs Onesie"
	TestAllTheThingsTShirt = "Test.allTheThings() T-Shirt (Red)"
)

// Routes served by the shop
const (
	RouteLogin            = "/"
	RouteInventory        = "/inventory.html"
	RouteInventoryItem    = "/inventory-item.html"
	RouteCart             = "/cart.html"
	RouteCheckoutInfo     = "/checkout-step-one.html"
	RouteCheckoutOverview = "/checkout-step-two.html"
	RouteCheckoutComplete = "/checkout-complete.html"
)

// Expected login errors
const (
	ErrorLockedOut          = "Epic sadface: Sorry, this user has been locked out."
	ErrorInvalidCredentials = "Epic sadface: Username and password do not match any user in this service"
	ErrorUsernameRequired   = "Epic sadface: Username is required"
	ErrorPasswordRequired   = "Epic sadface: Password is required"
)

// Expected checkout validation errors
const (
	ErrorFirstNameRequired  = "Error: First Name is required"
	ErrorLastNameRequired   = "Error: Last Name is required"
	ErrorPostalCodeRequired = "Error: Postal Code is required"
)

// Screen copy
const (
	DocumentTitle         = "Swag Labs"
	AppLogo               = "Swag Labs"
	TitleProducts         = "Products"
	TitleCart             = "Your Cart"
	TitleCheckoutInfo     = "Checkout: Your Information"
	TitleCheckoutOverview = "Checkout: Overview"
	TitleCheckoutComplete = "Checkout: Complete!"
	CompleteHeader        = "Thank you for your order!"
	CompleteText          = "Your order has been dispatched, and will arrive just as fast as the pony can get there!"
	PaymentInfoLabel      = "Payment Information:"
	PaymentInfo           = "SauceCard #31337"
	ShippingInfoLabel     = "Shipping Information:"
	ShippingInfo          = "Free Pony Express Delivery!"
	PriceTotalLabel       = "Price Total"
	QuantityLabel         = "QTY"
	DescriptionLabel      = "Description"
	AddToCartLabel        = "Add to cart"
	RemoveLabel           = "Remove"
	BackHomeLabel         = "Back Home"
	BackToProductsLabel   = "Back to products"
	ContinueLabel         = "Continue"
	FinishLabel           = "Finish"
	CancelLabel           = "Cancel"
	LoginButtonLabel      = "Login"
	UsernamePlaceholder   = "Username"
	PasswordPlaceholder   = "Password"
	PonyExpressAlt        = "Pony Express"
	FooterCopy            = "Sauce Labs. All Rights Reserved."
	AcceptedUsernames     = "Accepted usernames are:"
	PasswordForAllUsers   = "Password for all users:"
)

// Social links in the footer
const (
	TwitterURL  = "https://twitter.com/saucelabs"
	FacebookURL = "https://www.facebook.com/saucelabs"
	LinkedInURL = "https://www.linkedin.com/company/sauce-labs/"
)

// DefaultTaxRate is the rate the shop applies at checkout
const DefaultTaxRate = 0.08

// Credentials is a username/password pair
type Credentials struct {
	Username string
	Password string
}

// CheckoutInfo is the set of values typed into the checkout information form
type CheckoutInfo struct {
	FirstName  string
	LastName   string
	PostalCode string
}

// Product is a catalog entry as the shop displays it
type Product struct {
	ID          int
	Name        string
	Description string
	Price       models.Money
}

// SortOption is a value of the product sort dropdown
type SortOption struct {
	Value string
	Label string
}

// Sort dropdown values
const (
	SortValueNameAsc   = "az"
	SortValueNameDesc  = "za"
	SortValuePriceAsc  = "lohi"
	SortValuePriceDesc = "hilo"
)

// Sort dropdown labels
const (
	SortLabelNameAsc   = "Name (A to Z)"
	SortLabelNameDesc  = "Name (Z to A)"
	SortLabelPriceAsc  = "Price (low to high)"
	SortLabelPriceDesc = "Price (high to low)"
)

func SortNameAsc() SortOption {
	return SortOption{Value: SortValueNameAsc, Label: SortLabelNameAsc}
}

func SortNameDesc() SortOption {
	return SortOption{Value: SortValueNameDesc, Label: SortLabelNameDesc}
}

func SortPriceAsc() SortOption {
	return SortOption{Value: SortValuePriceAsc, Label: SortLabelPriceAsc}
}

func SortPriceDesc() SortOption {
	return SortOption{Value: SortValuePriceDesc, Label: SortLabelPriceDesc}
}

// SortOptions returns a fresh list of the dropdown options in display order
func SortOptions() []SortOption {
	return []SortOption{SortNameAsc(), SortNameDesc(), SortPriceAsc(), SortPriceDesc()}
}

// Standard returns the credentials of the standard account
func Standard() Credentials {
	return Credentials{Username: StandardUser, Password: Password}
}

// LockedOut returns the credentials of the locked out account
func LockedOut() Credentials {
	return Credentials{Username: LockedOutUser, Password: Password}
}

// Users returns every account listed on the login screen, in display order
func Users() []Credentials {
	names := AcceptedUsers()
	users := make([]Credentials, len(names))
	for i, name := range names {
		users[i] = Credentials{Username: name, Password: Password}
	}
	return users
}

// AcceptedUsers returns the usernames listed on the login screen
func AcceptedUsers() []string {
	return []string{StandardUser, LockedOutUser, ProblemUser, PerformanceGlitchUser, ErrorUser, VisualUser}
}

// ValidCheckoutInfo returns a complete, valid set of checkout values
func ValidCheckoutInfo() CheckoutInfo {
	return CheckoutInfo{FirstName: "John", LastName: "Doe", PostalCode: "12345"}
}

// EmptyCheckoutInfo returns a set with every field empty
func EmptyCheckoutInfo() CheckoutInfo {
	return CheckoutInfo{}
}

// Catalog returns the product catalog in the shop's default (name ascending) order
func Catalog() []Product {
	return []Product{
		{ID: 4, Name: SauceLabsBackpack, Price: 2999,
			Description: "carry.allTheThings() with the sleek, streamlined Sly Pack that melds uncompromising style with unequaled laptop and tablet protection."},
		{ID: 0, Name: SauceLabsBikeLight, Price: 999,
			Description: "A red light isn't the desired state in testing but it sure helps when riding your bike at night. Water-resistant with 3 lighting modes, 1 AAA battery included."},
		{ID: 1, Name: SauceLabsBoltTShirt, Price: 1599,
			Description: "Get your testing superhero on with the Sauce Labs bolt T-shirt. From American Apparel, 100% ringspun combed cotton, heather gray with red bolt."},
		{ID: 5, Name: SauceLabsFleeceJacket, Price: 4999,
			Description: "It's not every day that you come across a midweight quarter-zip fleece jacket capable of handling everything from a relaxing day outdoors to a busy day at the office."},
		{ID: 2, Name: SauceLabsOnesie, Price: 799,
			Description: "Rib snap infant onesie for the junior automation engineer in development. Reinforced 3-snap bottom closure, two-needle hemmed sleeved and bottom won't unravel."},
		{ID: 3, Name: TestAllTheThingsTShirt, Price: 1599,
			Description: "This classic Sauce Labs t-shirt is perfect to wear when cozying up to your keyboard to automate a few tests. Super-soft and comfy ringspun combed cotton."},
	}
}

// ProductByName looks a product up in the catalog
func ProductByName(name string) (Product, bool) {
	for _, p := range Catalog() {
		if p.Name == name {
			return p, true
		}
	}
	return Product{}, false
}

// PricesOf returns the catalog prices of the named products. Unknown names
// are reported through ok.
func PricesOf(names ...string) (prices []models.Money, ok bool) {
	prices = make([]models.Money, 0, len(names))
	for _, name := range names {
		p, found := ProductByName(name)
		if !found {
			return nil, false
		}
		prices = append(prices, p.Price)
	}
	return prices, true
}
