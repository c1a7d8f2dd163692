package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"asset-tracker/core/config"
	"asset-tracker/core/database"
	"asset-tracker/core/loader"
	"asset-tracker/core/logger"
	"asset-tracker/core/middleware/rayid"
	"asset-tracker/core/server"

	"asset-tracker/feature/asset"
	"asset-tracker/feature/health"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/swagger"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	_ "asset-tracker/docs/swagger"
)

// @title Asset Tracker API
// @version 1.0
// @description API for tracking company assets assigned to employees.
// @host localhost:8080
// @BasePath /

// startCmd represents the start command
var startCmd = &cobra.Command{
	Use:   "start",
	Short: "Start the asset tracker server",
	Long:  `Connects to the document database and starts the HTTP server with all enabled features.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load configuration: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		defer logg.Sync()
		zap.ReplaceGlobals(logg)

		// The store is required: without it no endpoint can answer.
		client, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection required: %w", err)
		}
		defer func() {
			if err := database.Disconnect(client, cfg.Database); err != nil {
				logg.Warn("Database disconnect failed", zap.Error(err))
			}
			logg.Info("Disconnected from database")
		}()
		logg.Info("Connected to database",
			zap.String("database", cfg.Database.Name),
			zap.String("collection", cfg.Database.Collection))

		coll := database.Collection(client, cfg.Database)
		if _, err := database.EnsureIndexes(cmd.Context(), coll); err != nil {
			logg.Warn("Index creation failed, lookups by employee will scan", zap.Error(err))
		}

		app := server.NewApp(cfg.Server)

		mgr := loader.NewManager(logg)
		mgr.Register(health.NewFeature(client, cfg.Database.Timeout(), logg))
		mgr.Register(asset.NewFeature(asset.NewMongoStore(coll), logg))

		// RayID first so everything after it can be traced
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

		app.Get("/swagger/*", swagger.HandlerDefault)

		if err := mgr.LoadAll(app); err != nil {
			return err
		}

		serveErr := make(chan error, 1)
		go func() {
			logg.Info("Starting server", zap.String("port", cfg.Server.Port))
			serveErr <- app.Listen(cfg.Server.Address())
		}()

		quit := make(chan os.Signal, 1)
		signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
		select {
		case err := <-serveErr:
			return fmt.Errorf("server failed: %w", err)
		case <-quit:
		}

		logg.Info("Shutting down server...")
		return app.Shutdown()
	},
}

func init() {
	RootCmd.AddCommand(startCmd)
}
