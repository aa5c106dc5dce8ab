package main

import (
	"fmt"
	"os"

	"github.com/alexanderramin/dutyreport/internal/cli"
	"github.com/alexanderramin/dutyreport/internal/config"
	"github.com/alexanderramin/dutyreport/internal/loader"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("loading configuration: %w", err)
	}

	app := &cli.App{
		Config: cfg,
		Loader: loader.New(cfg.TimestampLayout),
	}

	// Detect interactive terminal for the launcher menu and pickers.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}
