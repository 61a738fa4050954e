package cmd

import (
	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"synthkit/internal/ecosystem"
	"synthkit/internal/writer"
)

var listEcosystemsCmd = &cobra.Command{
	Use:   "list-ecosystems",
	Short: "List available ecosystem definitions",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		eng := newEngine(cfg)
		catalog, issues, err := loadEcosystems(cfg, eng)
		if err != nil {
			return err
		}
		for _, key := range catalog.Keys() {
			def, _ := catalog.Get(key)
			color.Cyan("🌐 %s — %s", key, def.DisplayName)
		}
		for _, issue := range issues {
			color.Yellow("⚠️  %s: %s", issue.File, issue.Reason)
		}
		return nil
	},
}

var ecosystemCmd = &cobra.Command{
	Use:   "ecosystem <key>",
	Short: "Generate every table of a business ecosystem",
	Long: `Generate all tables an ecosystem definition declares, scaling each table's
row count by its volume ratio, then write the datasets and a run summary.`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		eng := newEngine(cfg)
		catalog, issues, err := loadEcosystems(cfg, eng)
		if err != nil {
			return err
		}
		for _, issue := range issues {
			color.Yellow("⚠️  %s: %s", issue.File, issue.Reason)
		}

		opts, err := generationOptions(cmd, cfg)
		if err != nil {
			return err
		}
		format, err := outputFormat(cmd, cfg)
		if err != nil {
			return err
		}
		volume, _ := cmd.Flags().GetInt("volume")
		translate, _ := cmd.Flags().GetString("translate")

		runOpts := ecosystem.RunOptions{
			Options:     opts,
			TranslateTo: translate,
			Progress: func(phase ecosystem.Phase) {
				color.Cyan("▶ %s", phase)
			},
			OnTable: func(ref ecosystem.TableRef, rows int, err error) {
				if err != nil {
					color.Red("  ❌ %s.%s: %v", ref.Domain, ref.Table, err)
					return
				}
				color.Green("  ✅ %s.%s: %d rows", ref.Domain, ref.Table, rows)
			},
		}

		orch := ecosystem.NewOrchestrator(catalog, eng)
		datasets, summary, err := orch.Generate(args[0], volume, runOpts)
		if err != nil {
			return err
		}

		def, _ := catalog.Get(args[0])
		for table, data := range datasets {
			domain := "unknown"
			for _, ref := range def.Tables() {
				if ref.Table == table {
					domain = ref.Domain
					break
				}
			}
			if _, err := writer.WriteDataset(cfg.OutputPath, domain, table, format, data, nil); err != nil {
				return err
			}
		}

		path, err := writer.WriteSummary(cfg.OutputPath, summary)
		if err != nil {
			return err
		}
		color.Green("✅ %s: %d tables, %d records (summary: %s)",
			summary.Name, summary.TotalTables, summary.TotalRecords, path)
		return nil
	},
}

func init() {
	ecosystemCmd.Flags().Int("volume", 1000, "Base volume scaled by each table's ratio")
	ecosystemCmd.Flags().String("translate", "", "Translate column names, e.g. es")
	ecosystemCmd.Flags().String("format", "", "Output format: csv or json")
	addGenerationFlags(ecosystemCmd)
	rootCmd.AddCommand(ecosystemCmd)
	rootCmd.AddCommand(listEcosystemsCmd)
}
