package cmd

import (
	"sort"

	"github.com/fatih/color"
	"github.com/spf13/cobra"
)

var listDomainsCmd = &cobra.Command{
	Use:   "list-domains",
	Short: "List schema domains and their tables",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		eng := newEngine(cfg)

		domains, issues := eng.Schemas().ListDomains()
		names := make([]string, 0, len(domains))
		for d := range domains {
			names = append(names, d)
		}
		sort.Strings(names)

		for _, domain := range names {
			color.Cyan("📂 %s (%d tables)", domain, len(domains[domain]))
			for _, table := range domains[domain] {
				color.White("   - %s", table)
			}
		}
		for _, issue := range issues {
			color.Yellow("⚠️  %s/%s: %s", issue.Domain, issue.File, issue.Reason)
		}
		return nil
	},
}

var listTablesCmd = &cobra.Command{
	Use:   "list-tables <domain>",
	Short: "List the tables of one domain",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		eng := newEngine(cfg)

		tables, issues, err := eng.Schemas().ListTables(args[0])
		if err != nil {
			return err
		}
		for _, table := range tables {
			color.White("- %s", table)
		}
		for _, issue := range issues {
			color.Yellow("⚠️  %s: %s", issue.File, issue.Reason)
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listDomainsCmd)
	rootCmd.AddCommand(listTablesCmd)
}
