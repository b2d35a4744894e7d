package config

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/kelseyhightower/envconfig"
)

// Supported browser engines
const (
	BrowserChromium = "chromium"
	BrowserFirefox  = "firefox"
	BrowserWebKit   = "webkit"
)

// SuiteConfig holds configuration for driving a browser against the target shop
type SuiteConfig struct {
	BaseURL       string        `envconfig:"SWAGLABS_BASE_URL" default:"https://www.saucedemo.com"`
	Browser       string        `envconfig:"SWAGLABS_BROWSER" default:"chromium"`
	Headless      bool          `envconfig:"SWAGLABS_HEADLESS" default:"true"`
	SlowMo        time.Duration `envconfig:"SWAGLABS_SLOW_MO" default:"0s"`
	Timeout       time.Duration `envconfig:"SWAGLABS_TIMEOUT" default:"30s"`
	ExpectTimeout time.Duration `envconfig:"SWAGLABS_EXPECT_TIMEOUT" default:"5s"`
	ScreenshotDir string        `envconfig:"SWAGLABS_SCREENSHOT_DIR" default:"screenshots"`
	// Tax rate the target applies at checkout. Used only to compute expected totals.
	TaxRate  float64 `envconfig:"SWAGLABS_TAX_RATE" default:"0.08"`
	LogLevel string  `envconfig:"SWAGLABS_LOG_LEVEL" default:"info"`
}

// LoadSuiteConfig loads suite configuration from environment variables
func LoadSuiteConfig() (SuiteConfig, error) {
	var cfg SuiteConfig
	if err := envconfig.Process("", &cfg); err != nil {
		return SuiteConfig{}, fmt.Errorf("failed to process suite config: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return SuiteConfig{}, err
	}

	return cfg, nil
}

// Validate checks the configuration for values the suite cannot run with
func (c SuiteConfig) Validate() error {
	u, err := url.Parse(c.BaseURL)
	if err != nil || u.Scheme == "" || u.Host == "" {
		return fmt.Errorf("SWAGLABS_BASE_URL must be an absolute URL, got %q", c.BaseURL)
	}

	switch c.Browser {
	case BrowserChromium, BrowserFirefox, BrowserWebKit:
	default:
		return fmt.Errorf("SWAGLABS_BROWSER must be one of chromium, firefox, webkit, got %q", c.Browser)
	}

	if c.Timeout <= 0 {
		return fmt.Errorf("SWAGLABS_TIMEOUT must be positive")
	}
	if c.ExpectTimeout <= 0 {
		return fmt.Errorf("SWAGLABS_EXPECT_TIMEOUT must be positive")
	}
	if c.TaxRate < 0 || c.TaxRate >= 1 {
		return fmt.Errorf("SWAGLABS_TAX_RATE must be in [0, 1), got %v", c.TaxRate)
	}

	return nil
}

// Origin returns the base URL without a trailing slash
func (c SuiteConfig) Origin() string {
	return strings.TrimRight(c.BaseURL, "/")
}

// Milliseconds converts a duration to the float milliseconds playwright expects
func Milliseconds(d time.Duration) float64 {
	return float64(d) / float64(time.Millisecond)
}
