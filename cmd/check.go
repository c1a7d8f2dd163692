package cmd

import (
	"fmt"
	"time"

	"asset-tracker/core/config"
	"asset-tracker/core/database"
	"asset-tracker/core/logger"
	"asset-tracker/feature/health"

	"github.com/spf13/cobra"
	"go.mongodb.org/mongo-driver/bson"
	"go.uber.org/zap"
)

// checkCmd represents the check command
var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify configuration and database connectivity",
	Long:  `Loads the configuration, connects to the document database, pings it, ensures the asset indexes exist and reports the collection size.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		startTime := time.Now()

		cfg, err := config.LoadConfig(".")
		if err != nil {
			return fmt.Errorf("failed to load config: %w", err)
		}
		if err := cfg.Validate(); err != nil {
			return fmt.Errorf("invalid configuration: %w", err)
		}

		logg, err := logger.New(&cfg.Log)
		if err != nil {
			return fmt.Errorf("failed to create logger: %w", err)
		}
		defer logg.Sync()

		client, err := database.Connect(cfg.Database)
		if err != nil {
			return fmt.Errorf("database connection failed: %w", err)
		}
		defer database.Disconnect(client, cfg.Database)

		if err := health.NewService(client, cfg.Database.Timeout(), logg).CheckDatabase(ctx); err != nil {
			return err
		}

		coll := database.Collection(client, cfg.Database)
		indexes, err := database.EnsureIndexes(ctx, coll)
		if err != nil {
			return err
		}

		count, err := coll.CountDocuments(ctx, bson.M{})
		if err != nil {
			return fmt.Errorf("failed to count assets: %w", err)
		}

		executionTime := time.Since(startTime)

		fmt.Println("\n=== Asset Store Check ===")
		fmt.Printf("Database: %s\n", cfg.Database.Name)
		fmt.Printf("Collection: %s\n", cfg.Database.Collection)
		fmt.Printf("Indexes: %v\n", indexes)
		fmt.Printf("Assets: %d\n", count)
		fmt.Printf("Execution Time: %s\n", executionTime.String())

		logg.Info("Asset store check completed",
			zap.String("database", cfg.Database.Name),
			zap.Int64("assets", count),
			zap.Duration("execution_time", executionTime),
		)
		return nil
	},
}

func init() {
	RootCmd.AddCommand(checkCmd)
}
