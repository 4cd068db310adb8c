package config

import (
	"errors"
	"fmt"
	"io"

	"unity-bridge/core/logger"

	"github.com/spf13/pflag"
)

// ErrArgument marks a malformed or unrecognized command-line override.
var ErrArgument = errors.New("invalid argument")

// Flag names recognized as configuration overrides.
const (
	FlagUnityHost = "unity-host"
	FlagUnityPort = "unity-port"
	FlagLogLevel  = "log-level"
)

// Overrides carries the command-line-supplied values that supersede the
// resolved configuration. A nil field means the flag was not given.
type Overrides struct {
	UnityHost *string
	UnityPort *int
	LogLevel  *string
}

// BindFlags declares the override flags on the given flag set. The schema is
// declared once here and shared by the cobra commands and ParseOverrides.
func BindFlags(fs *pflag.FlagSet) {
	defaults := Default()
	fs.String(FlagUnityHost, defaults.Unity.Host, "Unity editor host to connect to")
	fs.Int(FlagUnityPort, defaults.Unity.Port, "Unity editor TCP port")
	fs.String(FlagLogLevel, defaults.Log.Level, "log level (DEBUG, INFO, WARNING, ERROR, CRITICAL)")
}

// FromFlags collects overrides from an already-parsed flag set. Only flags
// the user actually changed are carried over.
func FromFlags(fs *pflag.FlagSet) Overrides {
	var o Overrides
	if fs.Changed(FlagUnityHost) {
		v, _ := fs.GetString(FlagUnityHost)
		o.UnityHost = &v
	}
	if fs.Changed(FlagUnityPort) {
		v, _ := fs.GetInt(FlagUnityPort)
		o.UnityPort = &v
	}
	if fs.Changed(FlagLogLevel) {
		v, _ := fs.GetString(FlagLogLevel)
		o.LogLevel = &v
	}
	return o
}

// ParseOverrides parses a raw argument list against the override schema.
// Unknown flags, a non-integer port, or a log level outside the accepted
// set fail with an error wrapping ErrArgument that names the offending flag.
func ParseOverrides(args []string) (Overrides, error) {
	fs := pflag.NewFlagSet("unity-bridge", pflag.ContinueOnError)
	fs.SetOutput(io.Discard)
	BindFlags(fs)

	if err := fs.Parse(args); err != nil {
		return Overrides{}, fmt.Errorf("%w: %v", ErrArgument, err)
	}

	o := FromFlags(fs)

	if o.LogLevel != nil {
		if lvl := (logger.Config{Level: *o.LogLevel}); !lvl.IsValidLevel() {
			return Overrides{}, fmt.Errorf("%w: invalid value %q for --%s", ErrArgument, *o.LogLevel, FlagLogLevel)
		}
	}

	return o, nil
}

// Apply returns a copy of the configuration with the given overrides merged
// in. Fields absent from the overrides keep their current value; the
// receiver itself is never mutated.
func (c Config) Apply(o Overrides) Config {
	if o.UnityHost != nil {
		c.Unity.Host = *o.UnityHost
	}
	if o.UnityPort != nil {
		c.Unity.Port = *o.UnityPort
	}
	if o.LogLevel != nil {
		c.Log.Level = *o.LogLevel
	}
	return c
}
