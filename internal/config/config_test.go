package config

import (
	"errors"
	"flag"
	"io"
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"

	apperrors "github.com/MaybeLow/OfficeAI/internal/errors"
)

// TestParseConfig covers flag parsing. NO_COLOR is cleared so the
// caller's terminal settings do not leak in.
func TestParseConfig(t *testing.T) {
	t.Setenv("NO_COLOR", "")
	tests := []struct {
		name string
		args []string
		want AppConfig
	}{
		{
			name: "defaults",
			want: AppConfig{LogLevel: "info", Timeout: DefaultTimeout},
		},
		{
			name: "long answers flag",
			args: []string{"--answers", "run.yaml"},
			want: AppConfig{AnswersFile: "run.yaml", LogLevel: "info", Timeout: DefaultTimeout},
		},
		{
			name: "short answers flag",
			args: []string{"-a", "run.yaml", "--log-level", "debug", "--trace"},
			want: AppConfig{AnswersFile: "run.yaml", LogLevel: "debug", Trace: true, Timeout: DefaultTimeout},
		},
		{
			name: "everything",
			args: []string{"--no-color", "--log-file", "run.log", "--metrics-file", "run.prom", "--timeout", "2m"},
			want: AppConfig{NoColor: true, LogFile: "run.log", LogLevel: "info", MetricsFile: "run.prom", Timeout: 2 * time.Minute},
		},
		{
			name: "completion",
			args: []string{"--completion", "fish"},
			want: AppConfig{LogLevel: "info", Timeout: DefaultTimeout, Completion: "fish"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseConfig("officeai", tt.args, io.Discard)
			if err != nil {
				t.Fatalf("ParseConfig: %v", err)
			}
			if diff := cmp.Diff(tt.want, got); diff != "" {
				t.Errorf("config (-want +got):\n%s", diff)
			}
		})
	}
}

func TestParseConfig_Errors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name     string
		args     []string
		isConfig bool
	}{
		{"unknown flag", []string{"--fast"}, false},
		{"bad log level", []string{"--log-level", "loud"}, true},
		{"zero timeout", []string{"--timeout", "0s"}, true},
		{"negative timeout", []string{"--timeout", "-1s"}, true},
		{"stray argument", []string{"extra"}, true},
		{"same output files", []string{"--log-file", "x", "--metrics-file", "x"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			_, err := ParseConfig("officeai", tt.args, io.Discard)
			if err == nil {
				t.Fatal("expected error")
			}
			var cfgErr apperrors.ConfigError
			if errors.As(err, &cfgErr) != tt.isConfig {
				t.Errorf("ConfigError = %v for %v", !tt.isConfig, err)
			}
		})
	}
}

func TestParseConfig_Help(t *testing.T) {
	t.Parallel()
	if _, err := ParseConfig("officeai", []string{"-h"}, io.Discard); !errors.Is(err, flag.ErrHelp) {
		t.Errorf("expected flag.ErrHelp, got %v", err)
	}
}

// Environment tests use t.Setenv and therefore cannot run in parallel.

func TestParseConfig_EnvOverrides(t *testing.T) {
	t.Setenv("OFFICEAI_ANSWERS", "env.yaml")
	t.Setenv("OFFICEAI_LOG_LEVEL", "DEBUG")
	t.Setenv("OFFICEAI_TIMEOUT", "90s")
	t.Setenv("OFFICEAI_TRACE", "yes")
	t.Setenv("OFFICEAI_METRICS_FILE", "env.prom")

	got, err := ParseConfig("officeai", nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	want := AppConfig{
		AnswersFile: "env.yaml",
		LogLevel:    "debug",
		MetricsFile: "env.prom",
		Trace:       true,
		Timeout:     90 * time.Second,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("config (-want +got):\n%s", diff)
	}
}

func TestParseConfig_FlagsBeatEnv(t *testing.T) {
	t.Setenv("OFFICEAI_ANSWERS", "env.yaml")
	t.Setenv("OFFICEAI_TRACE", "true")

	got, err := ParseConfig("officeai", []string{"-a", "flag.yaml", "--trace=false"}, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if got.AnswersFile != "flag.yaml" {
		t.Errorf("AnswersFile = %q, want flag.yaml", got.AnswersFile)
	}
	if got.Trace {
		t.Error("explicit --trace=false should win over the environment")
	}
}

func TestParseConfig_InvalidEnvIgnored(t *testing.T) {
	t.Setenv("OFFICEAI_TIMEOUT", "soon")
	t.Setenv("OFFICEAI_NO_COLOR", "maybe")

	got, err := ParseConfig("officeai", nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if got.Timeout != DefaultTimeout || got.NoColor {
		t.Errorf("invalid env values should be ignored, got %+v", got)
	}
}

func TestParseConfig_NoColorConvention(t *testing.T) {
	t.Setenv("NO_COLOR", "1")

	got, err := ParseConfig("officeai", nil, io.Discard)
	if err != nil {
		t.Fatal(err)
	}
	if !got.NoColor {
		t.Error("NO_COLOR should disable colors")
	}
}

func TestParseBoolEnv(t *testing.T) {
	t.Parallel()
	tests := []struct {
		in   string
		def  bool
		want bool
	}{
		{"true", false, true},
		{"YES", false, true},
		{"1", false, true},
		{"false", true, false},
		{"No", true, false},
		{"0", true, false},
		{"maybe", true, true},
		{"maybe", false, false},
	}
	for _, tt := range tests {
		if got := parseBoolEnv(tt.in, tt.def); got != tt.want {
			t.Errorf("parseBoolEnv(%q, %v) = %v", tt.in, tt.def, got)
		}
	}
}

func TestAppConfig_Scripted(t *testing.T) {
	t.Parallel()
	if (AppConfig{}).Scripted() {
		t.Error("empty config should not be scripted")
	}
	if !(AppConfig{AnswersFile: "x"}).Scripted() {
		t.Error("answers file should make the run scripted")
	}
}
