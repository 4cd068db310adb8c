package config

import (
	"errors"
	"fmt"
	"path/filepath"
	"reflect"
	"strings"

	"unity-bridge/core/bridge"
	"unity-bridge/core/logger"
	"unity-bridge/core/server"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
)

// ErrValidation marks a resolved configuration that violates an invariant
// (port out of range, negative tuning value, unknown log level).
var ErrValidation = errors.New("invalid configuration")

// Config holds all configuration for the bridge process.
// It is resolved exactly once at startup and treated as read-only afterwards;
// consumers receive it by value or behind their own sub-config copies.
type Config struct {
	// Unity holds the editor endpoint and connection tuning.
	Unity bridge.Config `mapstructure:"unity"`
	// Server holds the bridge's own listener settings.
	Server server.Config `mapstructure:"server"`
	// Log holds configuration for the logger.
	Log logger.Config `mapstructure:"log"`
}

// Default returns a fresh Config populated entirely with compiled-in
// defaults. It performs no I/O and never fails.
func Default() Config {
	return Config{
		Unity: bridge.Config{
			Host:           "localhost",
			Port:           6400,
			ConnectTimeout: 86400,
			BufferSize:     16 * 1024 * 1024,
			MaxRetries:     3,
			RetryDelay:     1,
		},
		Server: server.Config{
			Port: 6500,
		},
		Log: logger.Config{
			Level:  logger.LevelInfo,
			Format: logger.FormatConsole,
		},
	}
}

// Load returns the defaults overlaid with environment variables and an
// optional .env file found at path. Environment keys follow the nested
// structure with underscores, e.g. UNITY_HOST, UNITY_PORT, SERVER_PORT,
// LOG_LEVEL, UNITY_MAX_RETRIES.
func Load(path string) (Config, error) {
	// Ignore error if the file doesn't exist (e.g. production)
	_ = godotenv.Overload(filepath.Join(path, ".env"))

	v := viper.New()

	// Walk the defaults so every key is registered for AutomaticEnv
	bindDefaults(v, Default(), "")

	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	var config Config
	if err := v.Unmarshal(&config); err != nil {
		return Config{}, fmt.Errorf("failed to load configuration: %w", err)
	}

	return config, nil
}

// bindDefaults uses reflection to iterate over the struct and register its
// values as Viper defaults, keyed by the 'mapstructure' tags.
func bindDefaults(v *viper.Viper, iface any, prefix string) {
	val := reflect.ValueOf(iface)
	t := val.Type()

	for i := 0; i < t.NumField(); i++ {
		field := t.Field(i)
		tag := field.Tag.Get("mapstructure")

		// Skip if no tag
		if tag == "" {
			continue
		}

		// Build the key
		key := tag
		if prefix != "" {
			key = prefix + "." + tag
		}

		// If it's a nested struct, recurse
		if field.Type.Kind() == reflect.Struct {
			bindDefaults(v, val.Field(i).Interface(), key)
			continue
		}

		v.SetDefault(key, val.Field(i).Interface())
	}
}

// Validate checks every resolved field against its allowed range. A Config
// that fails validation must not be published to the rest of the process.
func (c Config) Validate() error {
	if err := c.Unity.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if err := c.Server.Validate(); err != nil {
		return fmt.Errorf("%w: %v", ErrValidation, err)
	}
	if !c.Log.IsValidLevel() {
		return fmt.Errorf("%w: unknown log level %q", ErrValidation, c.Log.Level)
	}
	return nil
}

// Resolve is the single startup entry point: defaults, overlaid with the
// environment, overlaid with command-line overrides, then validated.
// The returned value is never mutated afterwards; callers pass it down
// explicitly to every consumer.
func Resolve(args []string) (Config, error) {
	cfg, err := Load(".")
	if err != nil {
		return Config{}, err
	}

	overrides, err := ParseOverrides(args)
	if err != nil {
		return Config{}, err
	}

	cfg = cfg.Apply(overrides)

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}

	return cfg, nil
}
