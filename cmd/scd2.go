package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"synthkit/internal/writer"
)

var scd2Cmd = &cobra.Command{
	Use:   "scd2 <domain> <table>",
	Short: "Generate a table with slowly-changing-dimension history",
	Long: `Generate base rows and expand a fraction of them into version pairs: the
original version closed out, a changed version left open.`,
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
		changeProb, _ := cmd.Flags().GetFloat64("change-prob")

		data, err := eng.GenerateSCD2(args[0], args[1], rows, changeProb, opts)
		if err != nil {
			return err
		}

		path, err := writer.WriteDataset(cfg.OutputPath, args[0], args[1], format, data, nil)
		if err != nil {
			return err
		}
		color.Green("✅ Wrote %d versioned rows to %s", len(data), path)
		return nil
	},
}

func init() {
	scd2Cmd.Flags().Int("rows", 100, "Number of base rows before versioning")
	scd2Cmd.Flags().Float64("change-prob", 0.3, "Probability a row gains a second version")
	scd2Cmd.Flags().String("format", "", "Output format: csv or json")
	addGenerationFlags(scd2Cmd)
	rootCmd.AddCommand(scd2Cmd)
}
