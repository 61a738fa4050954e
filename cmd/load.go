package cmd

import (
	"context"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"synthkit/internal/engine"
	"synthkit/internal/loader"
)

var loadCmd = &cobra.Command{
	Use:   "load <domain> <table>",
	Short: "Generate a table and insert it into the configured database",
	Long: `Generate rows and load them straight into the database named by the config,
skipping the file step. The target table must already exist for SQL providers;
MongoDB collections are created on insert.`,
	Args: cobra.ExactArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		eng := newEngine(cfg)

		opts, err := generationOptions(cmd, cfg)
		if err != nil {
			return err
		}
		rows, _ := cmd.Flags().GetInt("rows")

		data, err := eng.Generate(args[0], args[1], rows, opts)
		if err != nil {
			return err
		}

		dbURL, err := cfg.GetDatabaseURL()
		if err != nil {
			return err
		}

		ctx, cancel := context.WithTimeout(context.Background(), 5*time.Minute)
		defer cancel()

		targetTable, _ := cmd.Flags().GetString("target-table")
		if targetTable == "" {
			targetTable = args[1]
		}

		inserted, err := loadDataset(ctx, cfg.Database.Provider, dbURL, targetTable, data)
		if err != nil {
			return err
		}
		color.Green("✅ Loaded %d rows into %s", inserted, targetTable)
		return nil
	},
}

func loadDataset(ctx context.Context, provider, url, table string, data engine.Dataset) (int, error) {
	if provider == "mongodb" {
		ml, err := loader.OpenMongo(ctx, url)
		if err != nil {
			return 0, err
		}
		defer ml.Close(ctx)
		return ml.LoadTable(ctx, table, data)
	}

	sl, err := loader.OpenSQL(ctx, provider, url)
	if err != nil {
		return 0, err
	}
	defer sl.Close()
	return sl.LoadTable(ctx, table, data)
}

func init() {
	loadCmd.Flags().Int("rows", 100, "Number of rows to generate and load")
	loadCmd.Flags().String("target-table", "", "Database table name (default: the schema table name)")
	addGenerationFlags(loadCmd)
	rootCmd.AddCommand(loadCmd)
}
