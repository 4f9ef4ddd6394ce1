// Package app wires configuration, logging, telemetry and the onboarding
// controller together and runs the wizard either interactively or from an
// answers file.
package app

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
	sdktrace "go.opentelemetry.io/otel/sdk/trace"

	"github.com/MaybeLow/OfficeAI/internal/answers"
	"github.com/MaybeLow/OfficeAI/internal/cli"
	"github.com/MaybeLow/OfficeAI/internal/config"
	apperrors "github.com/MaybeLow/OfficeAI/internal/errors"
	"github.com/MaybeLow/OfficeAI/internal/logging"
	"github.com/MaybeLow/OfficeAI/internal/metrics"
	"github.com/MaybeLow/OfficeAI/internal/onboarding"
	"github.com/MaybeLow/OfficeAI/internal/tracing"
	"github.com/MaybeLow/OfficeAI/internal/tui"
	"github.com/MaybeLow/OfficeAI/internal/ui"
)

// Application represents the officeai application instance.
type Application struct {
	Config    config.AppConfig
	ErrWriter io.Writer

	programOptions []tea.ProgramOption
}

// AppOption configures an Application during construction.
type AppOption func(*Application)

// WithProgramOptions passes extra options to the bubbletea program, e.g.
// custom input and output for tests.
func WithProgramOptions(opts ...tea.ProgramOption) AppOption {
	return func(a *Application) { a.programOptions = append(a.programOptions, opts...) }
}

// New creates a new Application instance by parsing command-line arguments.
// args includes the program name.
func New(args []string, errWriter io.Writer, opts ...AppOption) (*Application, error) {
	app := &Application{ErrWriter: errWriter}
	for _, opt := range opts {
		opt(app)
	}

	programName := "officeai"
	var cmdArgs []string
	if len(args) > 0 {
		programName = args[0]
		cmdArgs = args[1:]
	}

	cfg, err := config.ParseConfig(programName, cmdArgs, errWriter)
	if err != nil {
		var configErr apperrors.ConfigError
		if errors.As(err, &configErr) {
			fmt.Fprintf(errWriter, "Error: %v\n", err)
		}
		return nil, err
	}

	app.Config = cfg
	return app, nil
}

// Run executes the wizard and returns the process exit code.
func (a *Application) Run(ctx context.Context, out io.Writer) int {
	ui.InitTheme(a.Config.NoColor)
	if a.Config.Completion != "" {
		return a.runCompletion(out)
	}

	logger, closeLog, err := a.openLogger()
	if err != nil {
		return a.report(err)
	}
	defer closeLog()

	ctx, cancelTimeout := context.WithTimeout(ctx, a.Config.Timeout)
	defer cancelTimeout()
	ctx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	sessionID := uuid.NewString()
	var script *answers.Script
	if a.Config.Scripted() {
		script, err = answers.LoadFile(a.Config.AnswersFile)
		if err != nil {
			return a.report(err)
		}
		if script.Session != "" {
			sessionID = script.Session
		}
	}

	recorder := metrics.NewRecorder()
	ctrlOpts := []onboarding.ControllerOption{
		onboarding.WithLogger(logger),
		onboarding.WithSessionID(sessionID),
		onboarding.WithObserver(recorder),
	}

	var tracer *tracing.Observer
	if a.Config.Trace {
		tp := sdktrace.NewTracerProvider()
		defer func() { _ = tp.Shutdown(context.Background()) }()
		tracer = tracing.Start(ctx, sessionID, tracing.WithTracerProvider(tp), tracing.WithLogger(logger))
		ctrlOpts = append(ctrlOpts, onboarding.WithObserver(tracer))
	}

	var offline bool
	ctrl := onboarding.NewController(func(o bool) { offline = o }, ctrlOpts...)
	start := time.Now()

	if script != nil {
		err = answers.Replay(ctx, ctrl, script)
	} else {
		err = tui.Run(ctx, ctrl, tui.Options{Version: Version, Logger: logger}, a.programOptions...)
	}
	if errors.Is(err, context.DeadlineExceeded) {
		err = apperrors.TimeoutError{Operation: "onboarding", Limit: a.Config.Timeout}
	}

	if err != nil && tracer != nil {
		tracer.Abandon(ctrl.Step())
	}
	if a.Config.MetricsFile != "" {
		if werr := recorder.WriteTextfile(a.Config.MetricsFile); werr != nil && err == nil {
			err = apperrors.WrapError(werr, "writing metrics file")
		}
	}
	if err != nil {
		logger.Error("onboarding failed", err, logging.String("step", ctrl.Step().String()))
		return a.report(err)
	}

	cli.DisplayResult(out, onboarding.Result{
		SessionID: ctrl.SessionID(),
		Terminal:  ctrl.Step(),
		Offline:   offline,
		Summary:   ctrl.Summary(),
	}, time.Since(start))
	return apperrors.ExitSuccess
}

// runCompletion prints a shell completion script.
func (a *Application) runCompletion(out io.Writer) int {
	if err := cli.GenerateCompletion(out, a.Config.Completion, "officeai"); err != nil {
		return a.report(err)
	}
	return apperrors.ExitSuccess
}

// openLogger builds the run's logger. Without a log file, logs go to the
// error writer in scripted mode and are discarded while the UI owns the
// terminal.
func (a *Application) openLogger() (logging.Logger, func(), error) {
	level, _ := logging.ParseLevel(a.Config.LogLevel)
	var w io.Writer = io.Discard
	closer := func() {}

	switch {
	case a.Config.LogFile != "":
		f, err := os.OpenFile(a.Config.LogFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			return nil, nil, apperrors.NewConfigError("cannot open log file: %v", err)
		}
		w = f
		closer = func() { _ = f.Close() }
	case a.Config.Scripted():
		w = a.ErrWriter
	}

	zl := zerolog.New(w).Level(level).With().Timestamp().Str("component", "officeai").Logger()
	return logging.NewZerologAdapter(zl), closer, nil
}

func (a *Application) report(err error) int {
	theme := ui.GetCurrentTheme()
	fmt.Fprintf(a.ErrWriter, "%s %v\n", theme.Paint(theme.Error, "Error:"), err)
	return apperrors.ExitCodeFor(err)
}

// IsHelpError checks if the error is a help flag error (--help was used).
func IsHelpError(err error) bool {
	return errors.Is(err, flag.ErrHelp)
}
