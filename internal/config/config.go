package config

import (
	"os"

	"github.com/m-mizutani/goerr/v2"
	"gopkg.in/yaml.v3"
)

const (
	configPathEnv = "CIVICWATCH_CONFIG"
	logLevelEnv   = "CIVICWATCH_LOG_LEVEL"
	logFormatEnv  = "CIVICWATCH_LOG_FORMAT"
)

// Config holds high-level settings required across the application.
type Config struct {
	Logging    LoggingConfig    `yaml:"logging"`
	Console    ConsoleConfig    `yaml:"console"`
	AirQuality AirQualityConfig `yaml:"airQuality"`
	News       NewsConfig       `yaml:"news"`
}

// LoggingConfig selects slog verbosity and handler.
type LoggingConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// ConsoleConfig controls how verdict lines are rendered.
type ConsoleConfig struct {
	Color bool `yaml:"color"`
}

// AirQualityConfig overrides subscriber policies by subscriber name.
type AirQualityConfig struct {
	Subscribers map[string]SubscriberConfig `yaml:"subscribers"`
}

// SubscriberConfig is a per-subscriber threshold policy. Zero values keep the built-in setting.
type SubscriberConfig struct {
	Threshold *int   `yaml:"threshold"`
	High      string `yaml:"high"`
	Normal    string `yaml:"normal"`
}

// NewsConfig tunes the article review chain. The chain order itself is fixed.
type NewsConfig struct {
	StripMarkup bool                   `yaml:"stripMarkup"`
	Checks      map[string]CheckConfig `yaml:"checks"`
}

// CheckConfig overrides trigger phrases and wording of a single check.
type CheckConfig struct {
	Phrases []string `yaml:"phrases"`
	Reject  string   `yaml:"reject"`
	Accept  string   `yaml:"accept"`
}

// Load reads YAML configuration (if present) and applies environment overrides.
// An empty path falls back to CIVICWATCH_CONFIG. When the file cannot be read
// or parsed, Load still returns usable defaults along with the error so the
// caller can log it.
func Load(path string) (Config, error) {
	cfg := defaultConfig()

	if path == "" {
		path = os.Getenv(configPathEnv)
	}

	var loadErr error
	if path != "" {
		if raw, err := os.ReadFile(path); err != nil {
			loadErr = goerr.Wrap(err, "cannot read config, falling back to defaults", goerr.V("path", path))
		} else {
			var fileCfg Config
			if err := yaml.Unmarshal(raw, &fileCfg); err != nil {
				loadErr = goerr.Wrap(err, "cannot parse config, falling back to defaults", goerr.V("path", path))
			} else {
				cfg = mergeConfig(cfg, fileCfg)
			}
		}
	}

	cfg.applyEnvOverrides()
	return cfg, loadErr
}

func (c *Config) applyEnvOverrides() {
	if v := os.Getenv(logLevelEnv); v != "" {
		c.Logging.Level = v
	}

	if v := os.Getenv(logFormatEnv); v != "" {
		c.Logging.Format = v
	}
}

func mergeConfig(base, override Config) Config {
	if override.Logging.Level != "" {
		base.Logging.Level = override.Logging.Level
	}
	if override.Logging.Format != "" {
		base.Logging.Format = override.Logging.Format
	}

	if override.Console.Color {
		base.Console.Color = true
	}

	if len(override.AirQuality.Subscribers) > 0 {
		base.AirQuality.Subscribers = override.AirQuality.Subscribers
	}

	if override.News.StripMarkup {
		base.News.StripMarkup = true
	}
	if len(override.News.Checks) > 0 {
		base.News.Checks = override.News.Checks
	}

	return base
}

func defaultConfig() Config {
	return Config{
		Logging: LoggingConfig{Level: "warn", Format: "text"},
		Console: ConsoleConfig{Color: false},
	}
}
