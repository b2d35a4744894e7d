package config

import (
	"os"
	"strings"
	"testing"
	"time"
)

// unsetenv removes key for the duration of the test; envconfig treats an
// empty but present variable as set.
func unsetenv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	os.Unsetenv(key)
}

func TestLoadSuiteConfig_Defaults(t *testing.T) {
	for _, key := range []string{
		"SWAGLABS_BASE_URL", "SWAGLABS_BROWSER", "SWAGLABS_HEADLESS", "SWAGLABS_SLOW_MO",
		"SWAGLABS_TIMEOUT", "SWAGLABS_EXPECT_TIMEOUT", "SWAGLABS_SCREENSHOT_DIR",
		"SWAGLABS_TAX_RATE", "SWAGLABS_LOG_LEVEL",
	} {
		unsetenv(t, key)
	}

	cfg, err := LoadSuiteConfig()
	if err != nil {
		t.Fatalf("LoadSuiteConfig() unexpected error = %v", err)
	}

	if cfg.BaseURL != "https://www.saucedemo.com" {
		t.Errorf("expected default base URL, got %q", cfg.BaseURL)
	}
	if cfg.Browser != BrowserChromium {
		t.Errorf("expected chromium, got %q", cfg.Browser)
	}
	if !cfg.Headless {
		t.Error("expected headless by default")
	}
	if cfg.Timeout != 30*time.Second {
		t.Errorf("expected 30s timeout, got %v", cfg.Timeout)
	}
	if cfg.ExpectTimeout != 5*time.Second {
		t.Errorf("expected 5s expect timeout, got %v", cfg.ExpectTimeout)
	}
	if cfg.TaxRate != 0.08 {
		t.Errorf("expected tax rate 0.08, got %v", cfg.TaxRate)
	}
}

func TestLoadSuiteConfig_Overrides(t *testing.T) {
	t.Setenv("SWAGLABS_BASE_URL", "http://localhost:9999/")
	t.Setenv("SWAGLABS_BROWSER", "firefox")
	t.Setenv("SWAGLABS_HEADLESS", "false")
	t.Setenv("SWAGLABS_EXPECT_TIMEOUT", "750ms")
	t.Setenv("SWAGLABS_TAX_RATE", "0.1")

	cfg, err := LoadSuiteConfig()
	if err != nil {
		t.Fatalf("LoadSuiteConfig() unexpected error = %v", err)
	}

	if cfg.Origin() != "http://localhost:9999" {
		t.Errorf("expected origin without trailing slash, got %q", cfg.Origin())
	}
	if cfg.Browser != BrowserFirefox {
		t.Errorf("expected firefox, got %q", cfg.Browser)
	}
	if cfg.Headless {
		t.Error("expected headed browser")
	}
	if cfg.ExpectTimeout != 750*time.Millisecond {
		t.Errorf("expected 750ms, got %v", cfg.ExpectTimeout)
	}
	if cfg.TaxRate != 0.1 {
		t.Errorf("expected 0.1, got %v", cfg.TaxRate)
	}
}

func TestSuiteConfig_Validate(t *testing.T) {
	valid := SuiteConfig{
		BaseURL:       "https://www.saucedemo.com",
		Browser:       BrowserChromium,
		Timeout:       time.Second,
		ExpectTimeout: time.Second,
		TaxRate:       0.08,
	}

	tests := []struct {
		name    string
		mutate  func(c *SuiteConfig)
		wantErr string
	}{
		{name: "valid", mutate: func(c *SuiteConfig) {}},
		{name: "relative base URL", mutate: func(c *SuiteConfig) { c.BaseURL = "/inventory.html" }, wantErr: "SWAGLABS_BASE_URL"},
		{name: "unknown browser", mutate: func(c *SuiteConfig) { c.Browser = "opera" }, wantErr: "SWAGLABS_BROWSER"},
		{name: "zero timeout", mutate: func(c *SuiteConfig) { c.Timeout = 0 }, wantErr: "SWAGLABS_TIMEOUT"},
		{name: "zero expect timeout", mutate: func(c *SuiteConfig) { c.ExpectTimeout = 0 }, wantErr: "SWAGLABS_EXPECT_TIMEOUT"},
		{name: "negative tax rate", mutate: func(c *SuiteConfig) { c.TaxRate = -0.1 }, wantErr: "SWAGLABS_TAX_RATE"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := valid
			tt.mutate(&cfg)

			err := cfg.Validate()
			if tt.wantErr == "" {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}
			if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
				t.Errorf("expected error mentioning %s, got %v", tt.wantErr, err)
			}
		})
	}
}

func TestMilliseconds(t *testing.T) {
	if got := Milliseconds(1500 * time.Millisecond); got != 1500 {
		t.Errorf("expected 1500, got %v", got)
	}
}

func TestLoadServerConfig(t *testing.T) {
	unsetenv(t, "PORT")
	cfg, err := LoadServerConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "8080" {
		t.Errorf("expected default port 8080, got %s", cfg.Port)
	}

	t.Setenv("PORT", "9090")
	cfg, err = LoadServerConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if cfg.Port != "9090" {
		t.Errorf("expected port 9090, got %s", cfg.Port)
	}
}

func setPostgresEnv(t *testing.T) {
	t.Helper()
	t.Setenv("POSTGRES_USER", "suite")
	t.Setenv("POSTGRES_PASSWORD", "secret")
	t.Setenv("POSTGRES_DB", "runs")
	t.Setenv("POSTGRES_HOSTNAME", "db")
	unsetenv(t, "POSTGRES_PORT")
	unsetenv(t, "POSTGRES_SSLMODE")
}

func TestLoadPostgresConfig(t *testing.T) {
	setPostgresEnv(t)

	cfg, err := LoadPostgresConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	want := "host=db port=5432 user=suite password=secret dbname=runs sslmode=disable"
	if cfg.ConnectionString() != want {
		t.Errorf("expected %q, got %q", want, cfg.ConnectionString())
	}
}

func TestLoadPostgresConfig_Overrides(t *testing.T) {
	setPostgresEnv(t)
	t.Setenv("POSTGRES_PORT", "6543")
	t.Setenv("POSTGRES_SSLMODE", "require")

	cfg, err := LoadPostgresConfig()
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if cfg.Port != 6543 {
		t.Errorf("expected port 6543, got %d", cfg.Port)
	}
	if cfg.SSLMode != "require" {
		t.Errorf("expected sslmode require, got %q", cfg.SSLMode)
	}
}

func TestLoadPostgresConfig_MissingRequired(t *testing.T) {
	for _, missing := range []string{"POSTGRES_USER", "POSTGRES_PASSWORD", "POSTGRES_DB", "POSTGRES_HOSTNAME"} {
		t.Run(missing, func(t *testing.T) {
			setPostgresEnv(t)
			unsetenv(t, missing)

			cfg, err := LoadPostgresConfig()
			if err == nil || !strings.Contains(err.Error(), missing) {
				t.Errorf("expected error for %s, got %v", missing, err)
			}
			if cfg != nil {
				t.Errorf("expected no config, got %+v", cfg)
			}
		})
	}
}

func TestLoadPostgresConfig_InvalidPort(t *testing.T) {
	setPostgresEnv(t)
	t.Setenv("POSTGRES_PORT", "not-a-port")

	if _, err := LoadPostgresConfig(); err == nil {
		t.Error("expected error for a non-numeric port")
	}
}
