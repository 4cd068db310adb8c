package cmd

import (
	"errors"
	"fmt"
	"os"
	"os/exec"

	"unity-bridge/core/bridge"
	"unity-bridge/core/logger"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var runPattern string

// testCmd represents the test command
var testCmd = &cobra.Command{
	Use:   "test [dir]",
	Short: "Run integration tests against a live Unity editor",
	Long: `Checks that the configured Unity editor is reachable, then invokes the Go
test runner in the given directory (default ".") and propagates its exit code
unchanged. Exits 1 when the editor is unreachable.`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveFromCommand(cmd)
		if err != nil {
			return err
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()

		if !bridge.Probe(cfg.Unity.Host, cfg.Unity.Port, bridge.DefaultProbeTimeout) {
			logg.Error("Unity editor is not reachable",
				zap.String("host", cfg.Unity.Host),
				zap.Int("port", cfg.Unity.Port))
			os.Exit(1)
		}
		logg.Info("Unity editor is reachable", zap.String("addr", cfg.Unity.Addr()))

		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}

		runnerArgs := []string{"test", "./..."}
		if runPattern != "" {
			runnerArgs = append(runnerArgs, "-run", runPattern)
		}

		runner := exec.CommandContext(cmd.Context(), "go", runnerArgs...)
		runner.Dir = dir
		runner.Stdout = os.Stdout
		runner.Stderr = os.Stderr
		// Hand the resolved editor endpoint to the tests under run
		runner.Env = append(os.Environ(),
			fmt.Sprintf("UNITY_HOST=%s", cfg.Unity.Host),
			fmt.Sprintf("UNITY_PORT=%d", cfg.Unity.Port),
		)

		logg.Info("Running tests", zap.String("dir", dir), zap.String("pattern", runPattern))

		if err := runner.Run(); err != nil {
			var exitErr *exec.ExitError
			if errors.As(err, &exitErr) {
				os.Exit(exitErr.ExitCode())
			}
			return fmt.Errorf("failed to start test runner: %w", err)
		}
		return nil
	},
}

func init() {
	RootCmd.AddCommand(testCmd)
	testCmd.Flags().StringVar(&runPattern, "run", "", "Regexp selecting which tests to run")
}
