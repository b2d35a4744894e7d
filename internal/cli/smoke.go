package cli

import (
	"errors"
	"fmt"

	"github.com/rs/zerolog/log"

	"github.com/themizzi/swaglabs-e2e/internal/browser"
	"github.com/themizzi/swaglabs-e2e/internal/config"
	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
	"github.com/themizzi/swaglabs-e2e/internal/flows"
	"github.com/themizzi/swaglabs-e2e/internal/models"
)

// SmokeScenario is the name recorded for smoke runs
const SmokeScenario = "smoke-complete-checkout"

// Recorder stores the outcome of a run. services.RunService satisfies it.
type Recorder interface {
	StartRun(scenario, baseURL, browser string) (*models.Run, error)
	CompleteRun(run *models.Run, runErr error) error
}

// SmokeOptions selects what the smoke run buys and where it is recorded
type SmokeOptions struct {
	Products []string
	Info     fixtures.CheckoutInfo
	// Recorder is optional
	Recorder Recorder
}

// DefaultSmokeOptions buys two products with the fixture customer
func DefaultSmokeOptions() SmokeOptions {
	return SmokeOptions{
		Products: []string{fixtures.SauceLabsBackpack, fixtures.SauceLabsBikeLight},
		Info:     fixtures.ValidCheckoutInfo(),
	}
}

// RunSmoke launches the configured browser and runs Smoke in it
func RunSmoke(cfg config.SuiteConfig, opts SmokeOptions) error {
	session, err := browser.Start(cfg)
	if err != nil {
		return err
	}
	defer func() {
		if err := session.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close browser session")
		}
	}()

	return Smoke(session, opts)
}

// Smoke runs the complete checkout flow once in a fresh tab. A failing run
// leaves a full-page screenshot in the configured screenshot directory.
func Smoke(session *browser.Session, opts SmokeOptions) error {
	cfg := session.Config()
	if len(opts.Products) == 0 {
		return fmt.Errorf("smoke run needs at least one product")
	}

	var run *models.Run
	if opts.Recorder != nil {
		var err error
		run, err = opts.Recorder.StartRun(SmokeScenario, cfg.BaseURL, cfg.Browser)
		if err != nil {
			return fmt.Errorf("failed to record smoke run: %w", err)
		}
	}

	runErr := smoke(session, opts)
	if runErr != nil {
		log.Error().Err(runErr).Str("base_url", cfg.BaseURL).Msg("smoke run failed")
	} else {
		log.Info().Strs("products", opts.Products).Str("base_url", cfg.BaseURL).Msg("smoke run passed")
	}

	if run != nil {
		if err := opts.Recorder.CompleteRun(run, runErr); err != nil {
			return errors.Join(runErr, fmt.Errorf("failed to record smoke result: %w", err))
		}
	}
	return runErr
}

func smoke(session *browser.Session, opts SmokeOptions) error {
	tab, err := session.NewTab()
	if err != nil {
		return err
	}
	defer func() {
		if err := tab.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close tab")
		}
	}()

	h := flows.New(tab.Page, session.PageOptions()...)
	err = h.CompleteCheckoutFlow(opts.Products, opts.Info)
	if err == nil {
		err = h.Pages().Complete.VerifySuccessfulCheckout()
	}
	if err != nil {
		dir := session.Config().ScreenshotDir
		path, shotErr := h.Pages().Complete.TakeScreenshot(dir, "smoke failure")
		if shotErr != nil {
			log.Warn().Err(shotErr).Msg("failed to capture failure screenshot")
		} else {
			log.Info().Str("path", path).Msg("failure screenshot saved")
		}
	}
	return err
}
