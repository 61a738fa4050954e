package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"synthkit/internal/engine"
	"synthkit/internal/writer"
)

var multiCmd = &cobra.Command{
	Use:   "multi <domain> <primary-table> <secondary-table>",
	Short: "Generate a related table pair with valid foreign keys",
	Long: `Generate a primary table and a secondary table whose foreign-key column
cycles through the primary table's ids, so every reference resolves.`,
	Args: cobra.ExactArgs(3),
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
		primaryRows, _ := cmd.Flags().GetInt("primary-rows")
		secondaryRows, _ := cmd.Flags().GetInt("secondary-rows")
		fkField, _ := cmd.Flags().GetString("fk-field")
		scd2, _ := cmd.Flags().GetBool("scd2")
		changeProb, _ := cmd.Flags().GetFloat64("change-prob")

		datasets, err := eng.GenerateTwoTables(
			engine.TableSpec{Domain: args[0], Table: args[1]},
			engine.TableSpec{Domain: args[0], Table: args[2], FKField: fkField},
			primaryRows, secondaryRows,
			engine.TwoTableOptions{Options: opts, SCD2: scd2, ChangeProb: changeProb},
		)
		if err != nil {
			return err
		}

		for table, data := range datasets {
			path, err := writer.WriteDataset(cfg.OutputPath, args[0], table, format, data, nil)
			if err != nil {
				return err
			}
			color.Green("✅ Wrote %d rows to %s", len(data), path)
		}
		return nil
	},
}

func init() {
	multiCmd.Flags().Int("primary-rows", 50, "Rows for the primary table")
	multiCmd.Flags().Int("secondary-rows", 200, "Rows for the secondary table")
	multiCmd.Flags().String("fk-field", "", "Foreign-key column on the secondary table (required)")
	multiCmd.Flags().Bool("scd2", false, "Version the primary table before stitching")
	multiCmd.Flags().Float64("change-prob", 0.3, "SCD2 change probability")
	multiCmd.MarkFlagRequired("fk-field")
	addGenerationFlags(multiCmd)
	multiCmd.Flags().String("format", "", "Output format: csv or json")
	rootCmd.AddCommand(multiCmd)
}
