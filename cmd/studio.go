package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"synthkit/internal/studio"
)

var studioCmd = &cobra.Command{
	Use:   "studio",
	Short: "Serve a read-only HTTP API for browsing schemas and previewing data",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		eng := newEngine(cfg)

		catalog, issues, err := loadEcosystems(cfg, eng)
		if err != nil {
			// Missing ecosystems directory is fine; studio still serves schemas.
			catalog = nil
		}
		for _, issue := range issues {
			color.Yellow("⚠️  %s: %s", issue.File, issue.Reason)
		}

		port, _ := cmd.Flags().GetInt("port")
		server := studio.NewServer(eng, catalog, port)
		return server.Start()
	},
}

func init() {
	studioCmd.Flags().Int("port", 5555, "Port to listen on")
	rootCmd.AddCommand(studioCmd)
}
