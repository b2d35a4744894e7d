package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/themizzi/swaglabs-e2e/internal/browser"
	internalcli "github.com/themizzi/swaglabs-e2e/internal/cli"
	"github.com/themizzi/swaglabs-e2e/internal/config"
	"github.com/themizzi/swaglabs-e2e/internal/database"
	"github.com/themizzi/swaglabs-e2e/internal/fixtures"
	"github.com/themizzi/swaglabs-e2e/internal/logging"
	"github.com/themizzi/swaglabs-e2e/internal/repository"
	"github.com/themizzi/swaglabs-e2e/internal/services"
	"github.com/themizzi/swaglabs-e2e/internal/snapshot"
)

var version = "0.1.0"

// connectRunService opens the run history database and migrates it
func connectRunService() (services.RunService, func(), error) {
	if err := database.Connect(); err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}
	closeDB := func() {
		if err := database.Close(); err != nil {
			log.Warn().Err(err).Msg("failed to close database")
		}
	}
	if err := database.RunMigrations(); err != nil {
		closeDB()
		return nil, nil, fmt.Errorf("failed to run database migrations: %w", err)
	}
	return services.NewRunService(repository.NewRunRepository()), closeDB, nil
}

// InstallCommand returns the install command
func InstallCommand() *cli.Command {
	return &cli.Command{
		Name:  "install",
		Usage: "Download the playwright driver and browsers",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "browser",
				Usage: "browser engine to install (repeatable)",
				Value: cli.NewStringSlice(config.BrowserChromium),
			},
		},
		Action: func(c *cli.Context) error {
			return browser.Install(c.StringSlice("browser")...)
		},
	}
}

// SmokeCommand returns the smoke command
func SmokeCommand() *cli.Command {
	return &cli.Command{
		Name:  "smoke",
		Usage: "Run the complete checkout flow against the configured shop",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "product",
				Usage: "product to buy (repeatable)",
				Value: cli.NewStringSlice(fixtures.SauceLabsBackpack, fixtures.SauceLabsBikeLight),
			},
			&cli.BoolFlag{
				Name:  "record",
				Usage: "store the run in the run history database",
			},
		},
		Action: func(c *cli.Context) error {
			cfg, err := config.LoadSuiteConfig()
			if err != nil {
				return err
			}

			opts := internalcli.DefaultSmokeOptions()
			opts.Products = c.StringSlice("product")

			if c.Bool("record") {
				runs, closeDB, err := connectRunService()
				if err != nil {
					return err
				}
				defer closeDB()
				opts.Recorder = runs
			}

			return internalcli.RunSmoke(cfg, opts)
		},
	}
}

// SnapshotsCommand returns the snapshots command
func SnapshotsCommand() *cli.Command {
	return &cli.Command{
		Name:  "snapshots",
		Usage: "Serve static markup snapshots of every screen",
		Flags: []cli.Flag{
			&cli.StringSliceFlag{
				Name:  "cart",
				Usage: "product rendered in the cart and overview (repeatable)",
			},
			&cli.Float64Flag{
				Name:  "tax-rate",
				Usage: "tax rate applied on the overview",
				Value: fixtures.DefaultTaxRate,
			},
		},
		Action: func(c *cli.Context) error {
			serverConfig, err := config.LoadServerConfig()
			if err != nil {
				return err
			}

			opts := []snapshot.Option{snapshot.WithTaxRate(c.Float64("tax-rate"))}
			if cart := c.StringSlice("cart"); len(cart) > 0 {
				opts = append(opts, snapshot.WithCart(cart...))
			}
			handler, err := snapshot.NewHandler(opts...)
			if err != nil {
				return err
			}

			return internalcli.RunServe(internalcli.ServerDependencies{
				ServerConfig:    serverConfig,
				SnapshotHandler: handler,
			})
		},
	}
}

// RunsCommand returns the runs command
func RunsCommand() *cli.Command {
	return &cli.Command{
		Name:  "runs",
		Usage: "List recorded runs, newest first",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "limit",
				Usage: "number of runs to show",
				Value: 20,
			},
		},
		Action: func(c *cli.Context) error {
			runs, closeDB, err := connectRunService()
			if err != nil {
				return err
			}
			defer closeDB()

			return internalcli.ListRuns(c.App.Writer, runs, c.Int("limit"))
		},
	}
}

func main() {
	envErr := godotenv.Load()

	level := os.Getenv("SWAGLABS_LOG_LEVEL")
	if level == "" {
		level = "info"
	}
	if err := logging.Setup(level, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	if envErr != nil {
		log.Warn().Msg(".env file not found, using environment variables")
	}

	app := &cli.App{
		Name:    "swaglabs",
		Usage:   "Browser checks for the Swag Labs demo shop",
		Version: version,
		Commands: []*cli.Command{
			InstallCommand(),
			SmokeCommand(),
			SnapshotsCommand(),
			RunsCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("command failed")
	}
}
