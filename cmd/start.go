package cmd

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"param-host/core/loader"
	"param-host/core/logger"
	"param-host/core/middleware/auth"
	"param-host/core/middleware/rayid"

	"param-host/feature/integrity"
	"param-host/feature/parameters"

	"github.com/gofiber/fiber/v2"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var startSession string

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the parameter host server",
	Long:  `Opens the configured parameter document in a session and serves it over HTTP.`,
	Run: func(cmd *cobra.Command, args []string) {
		// 1. Configuration, logger and optional backends
		h, err := bootstrap(cmd.Context())
		if err != nil {
			log.Fatalf("Failed to start: %v", err)
		}
		logg := h.logger
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// 2. Open the session
		svc, err := h.open(cmd.Context(), startSession, "")
		if err != nil {
			logg.Fatal("Failed to open parameters", zap.Error(err))
		}
		logg = logger.WithSession(logg, svc.Session())

		// 3. Initialize Fiber App
		app := fiber.New(fiber.Config{
			DisableStartupMessage: true,
			BodyLimit:             h.cfg.Server.BodyLimit,
		})

		// 4. Register Features
		mgr := loader.NewManager(logg)
		mgr.Register(parameters.NewFeature(svc, logg))
		mgr.Register(integrity.NewFeature(h.store, h.cfg.Storage.Bucket, logg, h.db, svc))

		// RayID goes first so every later log line carries it
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

		app.Use(auth.New(auth.Config{ApiKey: h.cfg.Server.ApiKey}))

		// 5. Load Features
		if err := mgr.LoadAll(app); err != nil {
			logg.Fatal("Failed to load features", zap.Error(err))
		}

		// 6. Start Server
		go func() {
			logg.Info("Starting server", zap.String("port", h.cfg.Server.Port))
			if err := app.Listen(h.cfg.Server.Address()); err != nil {
				logg.Fatal("Server failed to start", zap.Error(err))
			}
		}()

		// 7. Graceful Shutdown
		c := make(chan os.Signal, 1)
		signal.Notify(c, os.Interrupt, syscall.SIGTERM)
		<-c
		logg.Info("Shutting down server...")
		_ = app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
	startCmd.Flags().StringVar(&startSession, "session", "", "Session name for snapshots and exports (default: random)")
}
