// Package browser manages the playwright driver, one browser per process and
// one isolated context per scenario.
package browser

import (
	"errors"
	"fmt"

	"github.com/playwright-community/playwright-go"
	"github.com/rs/zerolog/log"

	"github.com/themizzi/swaglabs-e2e/internal/config"
	"github.com/themizzi/swaglabs-e2e/internal/pages"
)

// Install downloads the playwright driver and the given browsers
func Install(browsers ...string) error {
	if len(browsers) == 0 {
		browsers = []string{config.BrowserChromium}
	}
	log.Info().Strs("browsers", browsers).Msg("installing playwright driver")
	if err := playwright.Install(&playwright.RunOptions{Browsers: browsers}); err != nil {
		return fmt.Errorf("failed to install playwright: %w", err)
	}
	return nil
}

// Session owns the playwright driver and a launched browser
type Session struct {
	cfg     config.SuiteConfig
	pw      *playwright.Playwright
	browser playwright.Browser
}

// Start runs the driver and launches the configured browser
func Start(cfg config.SuiteConfig) (*Session, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	pw, err := playwright.Run()
	if err != nil {
		return nil, fmt.Errorf("failed to start playwright: %w", err)
	}

	browserType, err := engine(pw, cfg.Browser)
	if err != nil {
		_ = pw.Stop()
		return nil, err
	}

	b, err := browserType.Launch(playwright.BrowserTypeLaunchOptions{
		Headless: playwright.Bool(cfg.Headless),
		SlowMo:   playwright.Float(config.Milliseconds(cfg.SlowMo)),
	})
	if err != nil {
		_ = pw.Stop()
		return nil, fmt.Errorf("failed to launch %s: %w", cfg.Browser, err)
	}

	log.Debug().
		Str("browser", cfg.Browser).
		Bool("headless", cfg.Headless).
		Str("base_url", cfg.BaseURL).
		Msg("browser session started")

	return &Session{cfg: cfg, pw: pw, browser: b}, nil
}

func engine(pw *playwright.Playwright, name string) (playwright.BrowserType, error) {
	switch name {
	case config.BrowserChromium:
		return pw.Chromium, nil
	case config.BrowserFirefox:
		return pw.Firefox, nil
	case config.BrowserWebKit:
		return pw.WebKit, nil
	default:
		return nil, fmt.Errorf("unsupported browser %q", name)
	}
}

// Config returns the configuration the session was started with
func (s *Session) Config() config.SuiteConfig {
	return s.cfg
}

// PageOptions returns the page object options matching the configuration
func (s *Session) PageOptions() []pages.Option {
	return []pages.Option{pages.WithTimeout(s.cfg.ExpectTimeout)}
}

// Tab is an isolated browser context with a single page
type Tab struct {
	Context playwright.BrowserContext
	Page    playwright.Page
}

// NewTab opens a fresh context whose relative navigations resolve against
// the configured base URL. Nothing is shared with other tabs.
func (s *Session) NewTab() (*Tab, error) {
	ctx, err := s.browser.NewContext(playwright.BrowserNewContextOptions{
		BaseURL: playwright.String(s.cfg.Origin()),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to create browser context: %w", err)
	}
	ctx.SetDefaultTimeout(config.Milliseconds(s.cfg.Timeout))
	ctx.SetDefaultNavigationTimeout(config.Milliseconds(s.cfg.Timeout))

	page, err := ctx.NewPage()
	if err != nil {
		_ = ctx.Close()
		return nil, fmt.Errorf("failed to open page: %w", err)
	}
	return &Tab{Context: ctx, Page: page}, nil
}

// Close discards the context and everything in it
func (t *Tab) Close() error {
	if err := t.Context.Close(); err != nil {
		return fmt.Errorf("failed to close browser context: %w", err)
	}
	return nil
}

// Close shuts the browser and stops the driver
func (s *Session) Close() error {
	var errs []error
	if s.browser != nil {
		if err := s.browser.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close browser: %w", err))
		}
	}
	if s.pw != nil {
		if err := s.pw.Stop(); err != nil {
			errs = append(errs, fmt.Errorf("failed to stop playwright: %w", err))
		}
	}
	return errors.Join(errs...)
}
