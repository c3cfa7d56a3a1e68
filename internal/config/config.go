// Package config loads and validates signpad's runtime configuration.
package config

import (
	"fmt"
	"log/slog"
	"net/http"
	"net/url"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v2"
	"k8s.io/apimachinery/pkg/util/validation/field"

	"github.com/miles-w-3/signpad/internal/theme"
)

// Environment variable names
const (
	EnvEndpoint      = "SIGNPAD_ENDPOINT"
	EnvAccount       = "SIGNPAD_ACCOUNT"
	EnvAuthJSON      = "SIGNPAD_AUTH_JSON"
	EnvTimeout       = "SIGNPAD_TIMEOUT"
	EnvToastDuration = "SIGNPAD_TOAST_DURATION"
	EnvTheme         = "SIGNPAD_THEME"
	EnvLogFile       = "SIGNPAD_LOG_FILE"
	EnvLogLevel      = "SIGNPAD_LOG_LEVEL"
	EnvEnvFile       = "SIGNPAD_ENV_FILE"
)

// Defaults
const (
	DefaultTimeout       = 30 * time.Second
	DefaultToastDuration = 3 * time.Second
	DefaultLogFile       = "signpad.log"
	DefaultEnvFile       = ".env"
)

// Flag names
const (
	FlagEndpoint      = "endpoint"
	FlagAccount       = "account"
	FlagAuthJSON      = "auth-json"
	FlagTimeout       = "timeout"
	FlagToastDuration = "toast-duration"
	FlagTheme         = "theme"
	FlagLogFile       = "log-file"
	FlagLogLevel      = "log-level"
	FlagHeader        = "header"
)

var logLevels = map[string]slog.Level{
	"debug": slog.LevelDebug,
	"info":  slog.LevelInfo,
	"warn":  slog.LevelWarn,
	"error": slog.LevelError,
}

// Config holds everything needed to start the signer UI
type Config struct {
	Endpoint      string
	AccountFile   string
	AuthJSON      string
	Timeout       time.Duration
	ToastDuration time.Duration
	Theme         string
	LogFile       string
	LogLevel      string
	Headers       []string
}

// LoadDotEnv loads environment variables from a dotenv file. The file named by
// SIGNPAD_ENV_FILE wins over the default. A missing file is not an error.
func LoadDotEnv() (string, error) {
	path := os.Getenv(EnvEnvFile)
	if path == "" {
		path = DefaultEnvFile
	}

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return path, nil
	}

	if err := godotenv.Load(path); err != nil {
		return path, fmt.Errorf("failed to load env file %s: %w", path, err)
	}
	return path, nil
}

// Flags returns the CLI flags backing Config
func Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    FlagEndpoint,
			Usage:   "GraphQL endpoint of the signing service",
			EnvVars: []string{EnvEndpoint},
		},
		&cli.StringFlag{
			Name:    FlagAccount,
			Usage:   "Path to an account file (YAML or JSON)",
			EnvVars: []string{EnvAccount},
		},
		&cli.StringFlag{
			Name:    FlagAuthJSON,
			Usage:   "Inline JSON credential, used instead of an account file",
			EnvVars: []string{EnvAuthJSON},
		},
		&cli.DurationFlag{
			Name:    FlagTimeout,
			Usage:   "Timeout for a single signing request",
			Value:   DefaultTimeout,
			EnvVars: []string{EnvTimeout},
		},
		&cli.DurationFlag{
			Name:    FlagToastDuration,
			Usage:   "How long notifications stay on screen",
			Value:   DefaultToastDuration,
			EnvVars: []string{EnvToastDuration},
		},
		&cli.StringFlag{
			Name:    FlagTheme,
			Usage:   "Color mode: auto, light or dark",
			Value:   string(theme.ModeAuto),
			EnvVars: []string{EnvTheme},
		},
		&cli.StringFlag{
			Name:    FlagLogFile,
			Usage:   "File that receives the application log",
			Value:   DefaultLogFile,
			EnvVars: []string{EnvLogFile},
		},
		&cli.StringFlag{
			Name:    FlagLogLevel,
			Usage:   "Log level: debug, info, warn or error",
			Value:   "info",
			EnvVars: []string{EnvLogLevel},
		},
		&cli.StringSliceFlag{
			Name:  FlagHeader,
			Usage: "Extra request header as 'Key: Value' (repeatable)",
		},
	}
}

// FromContext builds a Config from parsed CLI flags and validates it
func FromContext(c *cli.Context) (*Config, error) {
	cfg := &Config{
		Endpoint:      c.String(FlagEndpoint),
		AccountFile:   c.String(FlagAccount),
		AuthJSON:      c.String(FlagAuthJSON),
		Timeout:       c.Duration(FlagTimeout),
		ToastDuration: c.Duration(FlagToastDuration),
		Theme:         c.String(FlagTheme),
		LogFile:       c.String(FlagLogFile),
		LogLevel:      c.String(FlagLogLevel),
		Headers:       c.StringSlice(FlagHeader),
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// Validate reports every configuration problem at once
func (c *Config) Validate() error {
	var allErrs field.ErrorList

	endpointPath := field.NewPath(FlagEndpoint)
	if c.Endpoint == "" {
		allErrs = append(allErrs, field.Required(endpointPath, "signing service endpoint is required"))
	} else if u, err := url.Parse(c.Endpoint); err != nil || u.Host == "" || (u.Scheme != "http" && u.Scheme != "https") {
		allErrs = append(allErrs, field.Invalid(endpointPath, c.Endpoint, "must be an absolute http or https URL"))
	}

	switch {
	case c.AccountFile == "" && c.AuthJSON == "":
		allErrs = append(allErrs, field.Required(field.NewPath(FlagAccount), "an account file or inline credential is required"))
	case c.AccountFile != "" && c.AuthJSON != "":
		allErrs = append(allErrs, field.Forbidden(field.NewPath(FlagAuthJSON), "cannot be combined with --account"))
	}

	if c.Timeout <= 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath(FlagTimeout), c.Timeout.String(), "must be positive"))
	}
	if c.ToastDuration <= 0 {
		allErrs = append(allErrs, field.Invalid(field.NewPath(FlagToastDuration), c.ToastDuration.String(), "must be positive"))
	}

	if _, err := theme.ParseMode(c.Theme); err != nil {
		allErrs = append(allErrs, field.NotSupported(field.NewPath(FlagTheme), c.Theme,
			[]string{string(theme.ModeAuto), string(theme.ModeLight), string(theme.ModeDark)}))
	}

	if _, ok := logLevels[strings.ToLower(c.LogLevel)]; !ok {
		allErrs = append(allErrs, field.NotSupported(field.NewPath(FlagLogLevel), c.LogLevel,
			[]string{"debug", "info", "warn", "error"}))
	}

	if c.LogFile == "" {
		allErrs = append(allErrs, field.Required(field.NewPath(FlagLogFile), "log file path is required"))
	}

	for i, h := range c.Headers {
		if _, _, err := parseHeader(h); err != nil {
			allErrs = append(allErrs, field.Invalid(field.NewPath(FlagHeader).Index(i), h, err.Error()))
		}
	}

	return allErrs.ToAggregate()
}

// SlogLevel returns the configured log level
func (c *Config) SlogLevel() slog.Level {
	if lvl, ok := logLevels[strings.ToLower(c.LogLevel)]; ok {
		return lvl
	}
	return slog.LevelInfo
}

// ThemeMode returns the configured color mode
func (c *Config) ThemeMode() theme.Mode {
	mode, err := theme.ParseMode(c.Theme)
	if err != nil {
		return theme.ModeAuto
	}
	return mode
}

// HTTPHeaders returns the extra request headers
func (c *Config) HTTPHeaders() http.Header {
	headers := http.Header{}
	for _, h := range c.Headers {
		name, value, err := parseHeader(h)
		if err != nil {
			continue
		}
		headers.Add(name, value)
	}
	return headers
}

func parseHeader(h string) (string, string, error) {
	name, value, ok := strings.Cut(h, ":")
	if !ok {
		return "", "", fmt.Errorf("expected 'Key: Value'")
	}
	name = strings.TrimSpace(name)
	if name == "" {
		return "", "", fmt.Errorf("header name is empty")
	}
	return name, strings.TrimSpace(value), nil
}
