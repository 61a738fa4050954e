package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"synthkit/internal/config"
	"synthkit/internal/ecosystem"
	"synthkit/internal/engine"
	"synthkit/internal/quality"
	"synthkit/internal/schema"
	"synthkit/internal/synth"
)

// loadConfig loads and validates the project config.
func loadConfig() (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

func newEngine(cfg *config.Config) *engine.Engine {
	return engine.New(schema.NewResolver(cfg.SchemasDir))
}

func loadEcosystems(cfg *config.Config, eng *engine.Engine) (*ecosystem.Catalog, []ecosystem.CatalogIssue, error) {
	return ecosystem.LoadCatalog(cfg.EcosystemsDir, eng.Schemas())
}

// generationOptions builds engine options from the flags every generating
// command shares. Defaults fall back to the config file.
func generationOptions(cmd *cobra.Command, cfg *config.Config) (engine.Options, error) {
	opts := engine.Options{}

	if cmd.Flags().Changed("seed") {
		seed, _ := cmd.Flags().GetInt64("seed")
		opts.Seed = &seed
	}

	opts.ErrorProfile, _ = cmd.Flags().GetString("error-profile")
	if opts.ErrorProfile == "" {
		opts.ErrorProfile = cfg.Defaults.ErrorProfile
	}

	opts.Geography, _ = cmd.Flags().GetString("geography")
	if opts.Geography == "" {
		opts.Geography = cfg.Defaults.Geography
	}

	if pct, _ := cmd.Flags().GetFloat64("error-pct"); pct > 0 {
		mode, _ := cmd.Flags().GetString("error-mode")
		if mode != "cell" && mode != "row" {
			return opts, fmt.Errorf("invalid error mode %q, expected cell or row", mode)
		}
		opts.Budget = &quality.BudgetProfile{GlobalErrorPct: pct, Mode: mode}
	}

	if dates, _ := cmd.Flags().GetString("dates"); dates != "" {
		start, end, ok := strings.Cut(dates, ":")
		if !ok {
			return opts, fmt.Errorf("invalid date range %q, expected START:END", dates)
		}
		dr, err := synth.ParseDateRange(start, end)
		if err != nil {
			return opts, err
		}
		opts.DateRange = dr
	}

	return opts, nil
}

// addGenerationFlags registers the flags shared by generating commands.
func addGenerationFlags(cmd *cobra.Command) {
	cmd.Flags().Int64("seed", 0, "Random seed (default: SYNTH_SEED env or 42)")
	cmd.Flags().String("error-profile", "", "Error injection profile: none, light, moderate, heavy")
	cmd.Flags().String("geography", "", "Geography context: global, ecuador, colombia, mexico, spain, usa")
	cmd.Flags().String("dates", "", "Date window, e.g. 2023-01:2024-06")
	cmd.Flags().Float64("error-pct", 0, "Error budget as percent of the dataset, spent instead of a profile")
	cmd.Flags().String("error-mode", "cell", "How the error budget is spent: cell or row")
}

// outputFormat resolves the format flag against the config default.
func outputFormat(cmd *cobra.Command, cfg *config.Config) (string, error) {
	format, _ := cmd.Flags().GetString("format")
	if format == "" {
		format = cfg.Defaults.Format
	}
	if format != "csv" && format != "json" {
		return "", fmt.Errorf("unsupported output format: %s", format)
	}
	return format, nil
}
