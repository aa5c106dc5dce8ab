package config

import (
	"errors"

	"github.com/caarlos0/env/v11"
)

// Config holds all runtime configuration, read from DUTYREPORT_*
// environment variables. Command flags override individual values.
type Config struct {
	// InputGlob selects the duty log CSV files to merge, in lexical order.
	InputGlob string `env:"INPUT_GLOB" envDefault:"duty_log.csv"`
	// OutputDir receives the derived CSV reports.
	OutputDir string `env:"OUTPUT_DIR" envDefault:"."`
	// HTMLPath is where the static dashboard page is written.
	HTMLPath string `env:"HTML_PATH" envDefault:"duty_dashboard.html"`
	// TimestampLayout is the Go layout for the DateTime column.
	TimestampLayout string `env:"TIMESTAMP_LAYOUT" envDefault:"2006-01-02 15:04:05"`
}

// Load reads configuration from the environment, falling back to
// defaults for unset values.
func Load() (*Config, error) {
	cfg := &Config{}
	opts := env.Options{Prefix: "DUTYREPORT_"}
	if err := env.ParseWithOptions(cfg, opts); err != nil {
		aggErr := env.AggregateError{}
		if ok := errors.As(err, &aggErr); ok {
			// Surface only the first error to keep the message readable.
			return nil, aggErr.Errors[0]
		}
		return nil, err
	}
	return cfg, nil
}
