// Package browsertest runs page objects against the snapshot server in a
// headless browser, for tests that must not depend on the live shop.
package browsertest

import (
	"net/http/httptest"
	"testing"
	"time"

	"github.com/themizzi/swaglabs-e2e/internal/browser"
	"github.com/themizzi/swaglabs-e2e/internal/config"
	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
	"github.com/themizzi/swaglabs-e2e/internal/snapshot"
)

// ExpectTimeout is short because snapshot markup is complete on first paint
const ExpectTimeout = 2 * time.Second

// Env is a snapshot server plus a browser session pointed at it
type Env struct {
	Server  *httptest.Server
	Session *browser.Session
	// Err is why the browser could not start. Tabs skip when it is set.
	Err error
}

// Start serves a snapshot handler and launches headless chromium against it.
// It panics only when the snapshot itself is invalid.
func Start(opts ...snapshot.Option) *Env {
	h, err := snapshot.NewHandler(opts...)
	if err != nil {
		panic(err)
	}
	env := &Env{Server: httptest.NewServer(h)}
	env.Session, env.Err = browser.Start(Config(env.Server.URL))
	return env
}

// Config returns a suite configuration for a headless run against baseURL
func Config(baseURL string) config.SuiteConfig {
	return config.SuiteConfig{
		BaseURL:       baseURL,
		Browser:       config.BrowserChromium,
		Headless:      true,
		Timeout:       10 * time.Second,
		ExpectTimeout: ExpectTimeout,
		ScreenshotDir: "screenshots",
		TaxRate:       fixtures.DefaultTaxRate,
		LogLevel:      "info",
	}
}

// Tab opens an isolated tab closed at the end of the test, or skips the
// test when no browser is available
func (e *Env) Tab(t testing.TB) *browser.Tab {
	t.Helper()
	if e.Err != nil {
		t.Skipf("browser unavailable: %v", e.Err)
	}
	tab, err := e.Session.NewTab()
	if err != nil {
		t.Fatalf("failed to open tab: %v", err)
	}
	t.Cleanup(func() {
		if err := tab.Close(); err != nil {
			t.Logf("failed to close tab: %v", err)
		}
	})
	return tab
}

// Close stops the browser and the server
func (e *Env) Close() {
	if e.Session != nil {
		_ = e.Session.Close()
	}
	e.Server.Close()
}
