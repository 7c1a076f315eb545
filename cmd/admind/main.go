package main

import (
	"fmt"
	"os"

	"github.com/joho/godotenv"
	"github.com/mattn/go-isatty"
	"go.uber.org/zap"

	"github.com/alexanderramin/admind/internal/cli"
	"github.com/alexanderramin/admind/internal/config"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	// Optional .env for local development; missing file is fine.
	_ = godotenv.Load()

	cfgPath := os.Getenv("ADMIND_CONFIG")
	if cfgPath == "" {
		cfgPath = "config/admind.toml"
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return err
	}

	log, err := newLogger()
	if err != nil {
		return fmt.Errorf("initializing logger: %w", err)
	}
	defer log.Sync()

	app := &cli.App{
		Config: cfg,
		Log:    log,
		IsInteractive: func() bool {
			return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
		},
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

func newLogger() (*zap.Logger, error) {
	if os.Getenv("ADMIND_DEBUG") != "" {
		return zap.NewDevelopment()
	}
	return zap.NewProduction()
}
