package cmd

import (
	"encoding/json"
	"fmt"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var previewCmd = &cobra.Command{
	Use:   "preview <domain> <table>",
	Short: "Generate a handful of rows and print them",
	Long:  `Generate rows in memory and print them as JSON, without writing any files.`,
	Args:  cobra.ExactArgs(2),
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

		color.Cyan("📋 %s.%s (%d rows)", args[0], args[1], len(data))
		for _, row := range data {
			line, err := json.Marshal(row)
			if err != nil {
				return fmt.Errorf("failed to marshal row: %w", err)
			}
			fmt.Println(string(line))
		}
		return nil
	},
}

func init() {
	previewCmd.Flags().Int("rows", 5, "Number of rows to preview")
	addGenerationFlags(previewCmd)
	rootCmd.AddCommand(previewCmd)
}
