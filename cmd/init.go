package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"synthkit/internal/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Initialize a new synthkit project",
	Long:  `Create synth.config.json plus the schemas, ecosystems and outputs directories.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		if err := config.InitializeProject(); err != nil {
			return err
		}
		color.Green("✅ Project initialized")
		color.Cyan("📁 Put table schemas under schemas/<domain>/ and ecosystem definitions under ecosystems/")
		return nil
	},
}

func init() {
	rootCmd.AddCommand(initCmd)
}
