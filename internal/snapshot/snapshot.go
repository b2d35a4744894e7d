// Package snapshot serves static markup of every SwagLabs screen, rendered
// from the fixture catalog with the shop's data-test identifiers. It replays
// markup only: no login, cart or checkout rule is implemented, every request
// renders the same configured state. Page objects are tested against it
// without reaching the live shop, and selectors can be debugged offline.
package snapshot

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
	"net/http"
	"strconv"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
	"github.com/themizzi/swaglabs-e2e/internal/models"
	"github.com/themizzi/swaglabs-e2e/internal/pages"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

// Item is one product as the templates render it
type Item struct {
	ID          int
	Name        string
	Description string
	Price       string
	Slug        string
	InCart      bool
}

// view is the data every screen template receives
type view struct {
	Title     string
	Catalog   []Item
	Cart      []Item
	CartCount int
	Product   Item
	Sort      []fixtures.SortOption
	Users     []string
	Password  string
	Summary   models.OrderSummary
	Year      int
}

// Option configures the rendered state
type Option func(*Handler)

// WithCart renders the named products as the cart contents
func WithCart(names ...string) Option {
	return func(h *Handler) {
		h.cartNames = names
	}
}

// WithTaxRate sets the rate used for the overview summary
func WithTaxRate(rate float64) Option {
	return func(h *Handler) {
		h.taxRate = rate
	}
}

// Handler serves the seven screens plus their static images
type Handler struct {
	templates *template.Template
	catalog   []fixtures.Product
	cartNames []string
	taxRate   float64
	mux       *http.ServeMux
}

// DefaultCart is rendered when WithCart is not given
func DefaultCart() []string {
	return []string{fixtures.SauceLabsBackpack, fixtures.SauceLabsBikeLight}
}

// NewHandler parses the embedded templates and registers the screen routes
func NewHandler(opts ...Option) (*Handler, error) {
	tmpl, err := template.ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse snapshot templates: %w", err)
	}

	h := &Handler{
		templates: tmpl,
		catalog:   fixtures.Catalog(),
		cartNames: DefaultCart(),
		taxRate:   fixtures.DefaultTaxRate,
		mux:       http.NewServeMux(),
	}
	for _, opt := range opts {
		opt(h)
	}
	for _, name := range h.cartNames {
		if _, ok := fixtures.ProductByName(name); !ok {
			return nil, fmt.Errorf("cart product %q is not in the catalog", name)
		}
	}
	if _, err := models.NewOrderSummary(nil, h.taxRate); err != nil {
		return nil, err
	}

	static, err := fs.Sub(staticFS, "static")
	if err != nil {
		return nil, err
	}

	h.mux.Handle("/{$}", h.screen("login", ""))
	h.mux.Handle(fixtures.RouteInventory, h.screen("inventory", fixtures.TitleProducts))
	h.mux.Handle(fixtures.RouteInventoryItem, http.HandlerFunc(h.serveItem))
	h.mux.Handle(fixtures.RouteCart, h.screen("cart", fixtures.TitleCart))
	h.mux.Handle(fixtures.RouteCheckoutInfo, h.screen("checkout-step-one", fixtures.TitleCheckoutInfo))
	h.mux.Handle(fixtures.RouteCheckoutOverview, h.screen("checkout-step-two", fixtures.TitleCheckoutOverview))
	h.mux.Handle(fixtures.RouteCheckoutComplete, h.screen("checkout-complete", fixtures.TitleCheckoutComplete))
	h.mux.Handle("/static/", http.StripPrefix("/static/", http.FileServer(http.FS(static))))

	return h, nil
}

// ServeHTTP dispatches to the screen routes
func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	h.mux.ServeHTTP(w, r)
}

func (h *Handler) screen(name, title string) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodGet {
			http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
			return
		}
		v := h.view(title)
		if name == "checkout-complete" {
			v.CartCount = 0
		}
		h.render(w, name, v)
	})
}

// serveItem renders the detail screen of the product named by the id query parameter
func (h *Handler) serveItem(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return
	}
	id, err := strconv.Atoi(r.URL.Query().Get("id"))
	if err != nil {
		http.Error(w, "Invalid product id", http.StatusBadRequest)
		return
	}
	v := h.view("")
	found := false
	for _, item := range v.Catalog {
		if item.ID == id {
			v.Product = item
			found = true
			break
		}
	}
	if !found {
		http.NotFound(w, r)
		return
	}
	h.render(w, "inventory-item", v)
}

func (h *Handler) render(w http.ResponseWriter, name string, v view) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	if err := h.templates.ExecuteTemplate(w, name, v); err != nil {
		log.Error().Err(err).Str("screen", name).Msg("failed to render snapshot")
		http.Error(w, "Internal server error", http.StatusInternalServerError)
	}
}

func (h *Handler) view(title string) view {
	inCart := make(map[string]bool, len(h.cartNames))
	for _, name := range h.cartNames {
		inCart[name] = true
	}

	v := view{
		Title:    title,
		Sort:     fixtures.SortOptions(),
		Users:    fixtures.AcceptedUsers(),
		Password: fixtures.Password,
		Year:     time.Now().Year(),
	}

	var prices []models.Money
	for _, p := range h.catalog {
		item := Item{
			ID:          p.ID,
			Name:        p.Name,
			Description: p.Description,
			Price:       p.Price.String(),
			Slug:        pages.Slug(p.Name),
			InCart:      inCart[p.Name],
		}
		v.Catalog = append(v.Catalog, item)
	}
	// cart rows keep the order products were added in
	for _, name := range h.cartNames {
		for _, item := range v.Catalog {
			if item.Name == name {
				v.Cart = append(v.Cart, item)
				p, _ := fixtures.ProductByName(name)
				prices = append(prices, p.Price)
			}
		}
	}
	v.CartCount = len(v.Cart)
	// the rate was validated in NewHandler and catalog prices are positive
	v.Summary, _ = models.NewOrderSummary(prices, h.taxRate)
	return v
}
