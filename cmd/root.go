package cmd

import (
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var (
	cfgFile string
	Version = "1.3.0"
)

func showBanner() {
	greenColor := color.New(color.FgGreen, color.Bold)

	banner := []string{
		"╔══════════════════════════════════════════════════════════╗",
		"║   ███████╗██╗   ██╗███╗   ██╗████████╗██╗  ██╗           ║",
		"║   ██╔════╝╚██╗ ██╔╝████╗  ██║╚══██╔══╝██║  ██║           ║",
		"║   ███████╗ ╚████╔╝ ██╔██╗ ██║   ██║   ███████║           ║",
		"║   ╚════██║  ╚██╔╝  ██║╚██╗██║   ██║   ██╔══██║           ║",
		"║   ███████║   ██║   ██║ ╚████║   ██║   ██║  ██║           ║",
		"║   ╚══════╝   ╚═╝   ╚═╝  ╚═══╝   ╚═╝   ╚═╝  ╚═╝           ║",
		"║                                                          ║",
		"║        ⚡ Deterministic Synthetic Data Toolkit ⚡         ║",
		"╚══════════════════════════════════════════════════════════╝",
	}

	for _, line := range banner {
		greenColor.Println(line)
	}

	fmt.Print("              ")
	color.New(color.FgCyan, color.Bold).Print("Version: ")
	color.New(color.FgYellow, color.Bold).Printf("%s\n", Version)
}

var rootCmd = &cobra.Command{
	Use:   "synthkit",
	Short: "Deterministic synthetic tabular data for analytics and testing",
	Long: `
Synthkit generates reproducible synthetic datasets from declarative YAML
schemas: single tables, slowly-changing dimensions, related table pairs,
and whole business ecosystems.

Every run is seed-driven, so the same seed always yields the same data.

Output targets:
- CSV and JSON files
- PostgreSQL, MySQL, SQLite (direct load)
- MongoDB (collections)`,

	Run: func(cmd *cobra.Command, args []string) {
		showVersion, _ := cmd.Flags().GetBool("version")
		if showVersion {
			fmt.Printf("synthkit version %s\n", Version)
			os.Exit(0)
		}

		if len(args) == 0 {
			showBanner()
			fmt.Println()
			cmd.Help()
		}
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default is ./synth.config.json)")

	rootCmd.Flags().BoolP("version", "v", false, "Show CLI version")
}

func initConfig() {
	if err := godotenv.Load(); err != nil {
		godotenv.Load(".env")
		godotenv.Load(".env.local")
	}

	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.AddConfigPath(".")
		viper.SetConfigType("json")
		viper.SetConfigName("synth.config")
	}

	viper.AutomaticEnv()

	viper.ReadInConfig()
}
