package internal

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

const (
	// EnvPrefix prefixes every environment variable read by LoadConfig.
	EnvPrefix = "DOCKMAN"

	// DefaultLogLevel keeps diagnostics quiet unless something goes wrong.
	DefaultLogLevel = "warn"

	// DefaultLogFormat is human readable text on stderr.
	DefaultLogFormat = "text"

	hostKey      = "host"
	logLevelKey  = "log-level"
	logFormatKey = "log-format"
)

var logFormats = map[string]log.Formatter{
	"text":   log.TextFormatter,
	"json":   log.JSONFormatter,
	"logfmt": log.LogfmtFormatter,
}

type Config struct {
	// Host overrides the daemon endpoint. Empty means DOCKER_HOST or the
	// platform default socket.
	Host string

	LogLevel  log.Level
	LogFormat log.Formatter
}

// RegisterFlags adds the global configuration flags to fs.
func RegisterFlags(fs *pflag.FlagSet) {
	fs.String(hostKey, "", "daemon socket to connect to (defaults to DOCKER_HOST)")
	fs.String(logLevelKey, DefaultLogLevel, "log level (debug, info, warn, error)")
	fs.String(logFormatKey, DefaultLogFormat, "log format (text, json, logfmt)")
}

// LoadConfig resolves the configuration from built-in defaults, DOCKMAN_*
// variables found in environment, and the flags registered by RegisterFlags,
// in increasing order of precedence.
func LoadConfig(fs *pflag.FlagSet, environment []string) (Config, error) {
	v := viper.New()

	v.SetDefault(hostKey, "")
	v.SetDefault(logLevelKey, DefaultLogLevel)
	v.SetDefault(logFormatKey, DefaultLogFormat)

	// Environment values replace the built-in defaults so that flags still
	// take precedence over them.
	lookup := make(map[string]string)
	for _, variable := range environment {
		key, value, ok := strings.Cut(variable, "=")
		if ok {
			lookup[key] = value
		}
	}
	for _, key := range []string{hostKey, logLevelKey, logFormatKey} {
		if value, ok := lookup[envName(key)]; ok {
			v.SetDefault(key, value)
		}
	}

	if fs != nil {
		if err := v.BindPFlags(fs); err != nil {
			return Config{}, fmt.Errorf("failed to bind flags: %w", err)
		}
	}

	level, err := log.ParseLevel(v.GetString(logLevelKey))
	if err != nil {
		return Config{}, fmt.Errorf("failed to parse log level: %w\nValid levels are debug, info, warn, error", err)
	}

	format, ok := logFormats[strings.ToLower(v.GetString(logFormatKey))]
	if !ok {
		return Config{}, fmt.Errorf("unknown log format %q\nValid formats are text, json, logfmt", v.GetString(logFormatKey))
	}

	return Config{
		Host:      v.GetString(hostKey),
		LogLevel:  level,
		LogFormat: format,
	}, nil
}

// NewLogger builds the diagnostic logger described by the configuration.
func (c Config) NewLogger(w io.Writer) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Prefix:    "dockman",
		Level:     c.LogLevel,
		Formatter: c.LogFormat,
	})
}

func envName(key string) string {
	return EnvPrefix + "_" + strings.ToUpper(strings.ReplaceAll(key, "-", "_"))
}
