// Package config parses the command line and environment into AppConfig.
//
// Priority is CLI flags, then OFFICEAI_* environment variables, then the
// defaults below.
package config

import (
	"flag"
	"io"
	"os"
	"time"

	apperrors "github.com/MaybeLow/OfficeAI/internal/errors"
	"github.com/MaybeLow/OfficeAI/internal/logging"
)

// EnvPrefix is prepended to every environment variable the application reads.
const EnvPrefix = "OFFICEAI_"

// DefaultTimeout bounds a whole wizard run, interactive or scripted.
const DefaultTimeout = 30 * time.Minute

// AppConfig aggregates the application's configuration parameters.
type AppConfig struct {
	// AnswersFile, when set, replays a YAML answers script instead of
	// starting the terminal UI.
	AnswersFile string
	// NoColor disables styling in the terminal UI.
	NoColor bool
	// LogFile receives structured logs. Empty discards logs in the UI and
	// writes them to stderr in scripted mode.
	LogFile string
	// LogLevel is one of debug, info, warn or error.
	LogLevel string
	// MetricsFile, when set, receives a Prometheus textfile snapshot once
	// the run ends.
	MetricsFile string
	// Trace records the run as OpenTelemetry spans and logs their ids.
	Trace bool
	// Timeout bounds the whole run.
	Timeout time.Duration
	// Completion, when set, prints a completion script for that shell and
	// exits.
	Completion string
}

// Scripted reports whether the run replays an answers file.
func (c AppConfig) Scripted() bool { return c.AnswersFile != "" }

// Validate checks the configuration for semantic errors.
func (c AppConfig) Validate() error {
	if c.Timeout <= 0 {
		return apperrors.NewConfigError("timeout must be positive, got %s", c.Timeout)
	}
	if _, ok := logging.ParseLevel(c.LogLevel); !ok {
		return apperrors.NewConfigError("unknown log level %q (want debug, info, warn or error)", c.LogLevel)
	}
	if c.LogFile != "" && c.LogFile == c.MetricsFile {
		return apperrors.NewConfigError("log file and metrics file must differ")
	}
	return nil
}

// ParseConfig parses args (without the program name) into an AppConfig,
// applies environment overrides for flags that were not given, and
// validates the result. Help requests return flag.ErrHelp.
func ParseConfig(programName string, args []string, errorWriter io.Writer) (AppConfig, error) {
	fs := flag.NewFlagSet(programName, flag.ContinueOnError)
	fs.SetOutput(errorWriter)

	cfg := AppConfig{}
	fs.StringVar(&cfg.AnswersFile, "answers", "", "Replay the wizard from a YAML answers file.")
	fs.StringVar(&cfg.AnswersFile, "a", "", "Shorthand for --answers.")
	fs.BoolVar(&cfg.NoColor, "no-color", false, "Disable colors in the terminal UI.")
	fs.StringVar(&cfg.LogFile, "log-file", "", "Write structured logs to this file.")
	fs.StringVar(&cfg.LogLevel, "log-level", "info", "Log level: debug, info, warn or error.")
	fs.StringVar(&cfg.MetricsFile, "metrics-file", "", "Write a Prometheus textfile snapshot when the run ends.")
	fs.BoolVar(&cfg.Trace, "trace", false, "Record the run as OpenTelemetry spans.")
	fs.DurationVar(&cfg.Timeout, "timeout", DefaultTimeout, "Maximum duration of the whole run.")
	fs.StringVar(&cfg.Completion, "completion", "", "Print a completion script for bash, zsh or fish.")

	if err := fs.Parse(args); err != nil {
		return AppConfig{}, err
	}
	if fs.NArg() > 0 {
		return AppConfig{}, apperrors.NewConfigError("unexpected argument %q", fs.Arg(0))
	}

	applyEnvOverrides(&cfg, fs)
	// The informal NO_COLOR convention is honoured too.
	if !isFlagSet(fs, "no-color") && os.Getenv("NO_COLOR") != "" {
		cfg.NoColor = true
	}

	if err := cfg.Validate(); err != nil {
		return AppConfig{}, err
	}
	return cfg, nil
}
