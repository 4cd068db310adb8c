package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"unity-bridge/core/bridge"
	"unity-bridge/core/loader"
	"unity-bridge/core/logger"
	"unity-bridge/core/middleware/rayid"
	"unity-bridge/feature/status"
	"unity-bridge/feature/tools"

	"github.com/gofiber/fiber/v2"
	mcpserver "github.com/mark3labs/mcp-go/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the Unity MCP bridge server",
	Long:  `Starts the MCP SSE endpoint, the HTTP management surface and the editor bridge.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		// 1. Resolve Configuration (once; read-only afterwards)
		cfg, err := resolveFromCommand(cmd)
		if err != nil {
			return err
		}

		// 2. Initialize Logger
		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 3. Editor Bridge (connects lazily on the first tool call)
		client := bridge.NewClient(cfg.Unity, logg)
		defer client.Close()

		// 4. MCP Server and Tool Registry
		mcpSrv := mcpserver.NewMCPServer("unity-bridge", version)
		tools.NewRegistry(client, logg).Register(mcpSrv)

		// 5. Management App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true, // We will log our own startup message
		})

		app.Use(rayid.New())
		app.Use(func(c *fiber.Ctx) error {
			l := logger.WithRayID(logg, c)
			l.Info("Request started",
				zap.String("method", c.Method()),
				zap.String("path", c.Path()),
				zap.String("ip", c.IP()),
			)
			err := c.Next()
			if err != nil {
				l.Error("Request error", zap.Error(err))
			}
			return err
		})

		mgr := loader.NewManager()
		mgr.Register(status.NewFeature(client, cfg, logg, version))
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Servers
		go func() {
			addr := fmt.Sprintf(":%d", cfg.Server.ManagementPort())
			logg.Info("Starting management server", zap.String("addr", addr))
			if err := app.Listen(addr); err != nil {
				logg.Fatal("Management server failed to start", zap.Error(err))
			}
		}()

		sse := mcpserver.NewSSEServer(mcpSrv, fmt.Sprintf("http://localhost:%d", cfg.Server.Port))
		go func() {
			logg.Info("Starting MCP server",
				zap.Int("port", cfg.Server.Port),
				zap.String("unity_addr", cfg.Unity.Addr()))
			if err := sse.Start(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
				logg.Fatal("MCP server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
		return nil
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
