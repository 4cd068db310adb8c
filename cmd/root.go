package cmd

import (
	"fmt"
	"os"

	"unity-bridge/core/config"
	"unity-bridge/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// version is stamped into health responses and the MCP server identity.
const version = "1.0.0"

// RootCmd represents the base command when called without any subcommands
var RootCmd = &cobra.Command{
	Use:   "unity-bridge",
	Short: "Unity MCP Bridge Server",
	Long: `Unity Bridge exposes a running Unity editor instance to MCP clients.
It relays tool calls to the editor's TCP command listener and serves a small
HTTP management surface next to the MCP endpoint.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() {
	if err := RootCmd.Execute(); err != nil {
		// Use the application's standard logger for error reporting.
		// Console format with DEBUG gives human-readable timestamps (CLI tool).
		cfg := &logger.Config{
			Level:  logger.LevelDebug,
			Format: logger.FormatConsole,
		}

		l, logErr := logger.New(cfg)
		if logErr == nil {
			l.Error("command failed", zap.Error(err))
			_ = l.Sync()
		} else {
			// Absolute fallback if logger creation fails (rare)
			fmt.Println(err)
		}
		os.Exit(1)
	}
}

// resolveFromCommand produces the process configuration for a command:
// defaults and environment first, then whichever override flags were set.
func resolveFromCommand(cmd *cobra.Command) (config.Config, error) {
	cfg, err := config.Load(".")
	if err != nil {
		return config.Config{}, err
	}

	cfg = cfg.Apply(config.FromFlags(cmd.Flags()))

	if err := cfg.Validate(); err != nil {
		return config.Config{}, err
	}
	return cfg, nil
}

func init() {
	config.BindFlags(RootCmd.PersistentFlags())

	// Bad flags still get the usage text despite SilenceUsage
	RootCmd.SetFlagErrorFunc(func(cmd *cobra.Command, err error) error {
		return fmt.Errorf("%v\n\n%s", err, cmd.UsageString())
	})
}
