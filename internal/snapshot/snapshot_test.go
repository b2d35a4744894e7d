package snapshot

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
)

func TestHandler_Screens(t *testing.T) {
	h, err := NewHandler()
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	tests := []struct {
		name         string
		path         string
		expectedCode int
		contains     []string
		excludes     []string
	}{
		{
			name:         "login",
			path:         "/",
			expectedCode: http.StatusOK,
			contains: []string{
				`data-test="username"`, `data-test="password"`, `data-test="login-button"`,
				"<title>Swag Labs</title>", fixtures.LockedOutUser, fixtures.Password,
			},
			excludes: []string{`data-test="error"`, `data-test="shopping-cart-link"`},
		},
		{
			name:         "inventory",
			path:         fixtures.RouteInventory,
			expectedCode: http.StatusOK,
			contains: []string{
				`data-test="title">Products<`, `data-test="inventory-list"`,
				`data-test="remove-sauce-labs-backpack"`,
				`data-test="add-to-cart-test.allthethings()-t-shirt-(red)"`,
				`data-test="inventory-item-sauce-labs-onesie-img"`,
				`<option value="hilo">Price (high to low)</option>`,
				`data-test="shopping-cart-badge">2<`,
			},
			excludes: []string{`data-test="add-to-cart-sauce-labs-backpack"`},
		},
		{
			name:         "product details",
			path:         fixtures.RouteInventoryItem + "?id=1",
			expectedCode: http.StatusOK,
			contains: []string{
				`data-test="back-to-products"`, fixtures.SauceLabsBoltTShirt, "$15.99",
				`data-test="add-to-cart"`,
			},
		},
		{
			name:         "product details in cart",
			path:         fixtures.RouteInventoryItem + "?id=4",
			expectedCode: http.StatusOK,
			contains:     []string{fixtures.SauceLabsBackpack, `data-test="remove"`},
		},
		{
			name:         "unknown product",
			path:         fixtures.RouteInventoryItem + "?id=99",
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "invalid product id",
			path:         fixtures.RouteInventoryItem + "?id=abc",
			expectedCode: http.StatusBadRequest,
		},
		{
			name:         "cart",
			path:         fixtures.RouteCart,
			expectedCode: http.StatusOK,
			contains: []string{
				`data-test="title">Your Cart<`, `data-test="cart-quantity-label">QTY<`,
				`data-test="remove-sauce-labs-bike-light"`, `data-test="checkout"`,
			},
		},
		{
			name:         "checkout information",
			path:         fixtures.RouteCheckoutInfo,
			expectedCode: http.StatusOK,
			contains: []string{
				`data-test="firstName"`, `data-test="lastName"`, `data-test="postalCode"`,
				`placeholder="Zip/Postal Code"`, `value="Continue"`,
			},
			excludes: []string{"error_icon"},
		},
		{
			name:         "checkout overview",
			path:         fixtures.RouteCheckoutOverview,
			expectedCode: http.StatusOK,
			contains: []string{
				"Item total: $39.98", "Tax: $3.20", "Total: $43.18",
				fixtures.PaymentInfo, fixtures.ShippingInfo, `data-test="finish"`,
			},
			excludes: []string{`data-test="remove-`},
		},
		{
			name:         "checkout complete",
			path:         fixtures.RouteCheckoutComplete,
			expectedCode: http.StatusOK,
			contains: []string{
				fixtures.CompleteHeader, `alt="Pony Express"`, `data-test="back-to-products"`,
			},
			excludes: []string{`data-test="shopping-cart-badge"`},
		},
		{
			name:         "unknown route",
			path:         "/nope.html",
			expectedCode: http.StatusNotFound,
		},
		{
			name:         "static image",
			path:         "/static/product.svg",
			expectedCode: http.StatusOK,
			contains:     []string{"<svg"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, tt.path, nil)
			w := httptest.NewRecorder()

			h.ServeHTTP(w, req)

			if w.Code != tt.expectedCode {
				t.Fatalf("expected status %d, got %d", tt.expectedCode, w.Code)
			}
			body := w.Body.String()
			for _, s := range tt.contains {
				if !strings.Contains(body, s) {
					t.Errorf("expected response to contain %q", s)
				}
			}
			for _, s := range tt.excludes {
				if strings.Contains(body, s) {
					t.Errorf("expected response not to contain %q", s)
				}
			}
		})
	}
}

func TestHandler_MethodNotAllowed(t *testing.T) {
	h, err := NewHandler()
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	for _, path := range []string{"/", fixtures.RouteCart, fixtures.RouteInventoryItem + "?id=4"} {
		req := httptest.NewRequest(http.MethodPost, path, nil)
		w := httptest.NewRecorder()

		h.ServeHTTP(w, req)

		if w.Code != http.StatusMethodNotAllowed {
			t.Errorf("POST %s: expected status %d, got %d", path, http.StatusMethodNotAllowed, w.Code)
		}
	}
}

func TestNewHandler_Options(t *testing.T) {
	t.Run("empty cart hides the badge", func(t *testing.T) {
		h, err := NewHandler(WithCart())
		if err != nil {
			t.Fatalf("NewHandler() error = %v", err)
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fixtures.RouteCart, nil))
		if strings.Contains(w.Body.String(), "shopping-cart-badge") {
			t.Error("expected no cart badge for an empty cart")
		}
	})

	t.Run("custom tax rate", func(t *testing.T) {
		h, err := NewHandler(WithCart(fixtures.SauceLabsFleeceJacket), WithTaxRate(0.1))
		if err != nil {
			t.Fatalf("NewHandler() error = %v", err)
		}
		w := httptest.NewRecorder()
		h.ServeHTTP(w, httptest.NewRequest(http.MethodGet, fixtures.RouteCheckoutOverview, nil))
		for _, s := range []string{"Item total: $49.99", "Tax: $5.00", "Total: $54.99"} {
			if !strings.Contains(w.Body.String(), s) {
				t.Errorf("expected response to contain %q", s)
			}
		}
	})

	t.Run("unknown cart product", func(t *testing.T) {
		if _, err := NewHandler(WithCart("Sauce Labs Mug")); err == nil {
			t.Error("expected error for a product outside the catalog")
		}
	})

	t.Run("invalid tax rate", func(t *testing.T) {
		if _, err := NewHandler(WithTaxRate(1.5)); err == nil {
			t.Error("expected error for an invalid tax rate")
		}
	})
}
