package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"synthkit/internal/i18n"
	"synthkit/internal/writer"
)

var generateCmd = &cobra.Command{
	Use:   "generate <domain> <table>",
	Short: "Generate one table and write it to disk",
	Long: `Generate a full synthetic dataset for one table and write it under the
configured output directory as <domain>__<table>.<format>.`,
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
		format, err := outputFormat(cmd, cfg)
		if err != nil {
			return err
		}
		rows, _ := cmd.Flags().GetInt("rows")

		data, err := eng.Generate(args[0], args[1], rows, opts)
		if err != nil {
			return err
		}

		if lang, _ := cmd.Flags().GetString("translate"); lang != "" {
			data, err = i18n.TranslateDataset(data, lang)
			if err != nil {
				return err
			}
		}

		path, err := writer.WriteDataset(cfg.OutputPath, args[0], args[1], format, data, nil)
		if err != nil {
			return err
		}
		color.Green("✅ Wrote %d rows to %s", len(data), path)

		if report, _ := cmd.Flags().GetBool("dq-report"); report {
			rep := writer.BuildQualityReport(data)
			for _, col := range rep.Columns {
				if col.NullCount > 0 {
					color.Yellow("   %s: %d nulls (%.1f%%)", col.Column, col.NullCount, col.NullPct)
				}
			}
		}
		return nil
	},
}

func init() {
	generateCmd.Flags().Int("rows", 100, "Number of rows to generate")
	generateCmd.Flags().String("format", "", "Output format: csv or json")
	generateCmd.Flags().String("translate", "", "Translate column names, e.g. es")
	generateCmd.Flags().Bool("dq-report", false, "Print per-column null counts after writing")
	addGenerationFlags(generateCmd)
	rootCmd.AddCommand(generateCmd)
}
