package browser_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/playwright-community/playwright-go"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/themizzi/swaglabs-e2e/internal/browser"
	"github.com/themizzi/swaglabs-e2e/internal/browser/browsertest"
	"github.com/themizzi/swaglabs-e2e/internal/config"
	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
	"github.com/themizzi/swaglabs-e2e/internal/pages"
)

var env *browsertest.Env

func TestMain(m *testing.M) {
	env = browsertest.Start()
	code := m.Run()
	env.Close()
	os.Exit(code)
}

func TestStart_InvalidConfig(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(cfg *config.SuiteConfig)
	}{
		{name: "relative base url", mutate: func(c *config.SuiteConfig) { c.BaseURL = "/shop" }},
		{name: "unknown browser", mutate: func(c *config.SuiteConfig) { c.Browser = "netscape" }},
		{name: "zero timeout", mutate: func(c *config.SuiteConfig) { c.Timeout = 0 }},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := browsertest.Config("http://127.0.0.1:1")
			tt.mutate(&cfg)

			_, err := browser.Start(cfg)

			assert.Error(t, err)
		})
	}
}

func TestSession_NewTabResolvesBaseURL(t *testing.T) {
	tab := env.Tab(t)

	login := pages.NewLoginPage(tab.Page, env.Session.PageOptions()...)
	require.NoError(t, login.Navigate())

	assert.Equal(t, env.Server.URL+fixtures.RouteLogin, tab.Page.URL())
	assert.Equal(t, browsertest.ExpectTimeout, login.Timeout())
}

func TestSession_TabsAreIsolated(t *testing.T) {
	first := env.Tab(t)
	second := env.Tab(t)

	assert.NotSame(t, first.Context, second.Context)
	require.NoError(t, first.Context.AddCookies([]playwright.OptionalCookie{{
		Name:  "session-username",
		Value: fixtures.StandardUser,
		URL:   playwright.String(env.Server.URL),
	}}))

	cookies, err := second.Context.Cookies()
	require.NoError(t, err)
	assert.Empty(t, cookies)
}

func TestBasePage_TakeScreenshot(t *testing.T) {
	tab := env.Tab(t)
	products := pages.NewProductsPage(tab.Page, env.Session.PageOptions()...)
	require.NoError(t, products.Navigate())

	dir := t.TempDir()
	path, err := products.TakeScreenshot(dir, "products listing/1")

	require.NoError(t, err)
	assert.Equal(t, filepath.Join(dir, "products-listing-1.png"), path)
	info, err := os.Stat(path)
	require.NoError(t, err)
	assert.Positive(t, info.Size())
}
