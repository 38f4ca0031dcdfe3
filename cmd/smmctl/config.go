package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"smmhub/pkg/config"
)

// configCmd represents the config command
var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect the server configuration",
	Long:  `Inspect the server configuration.`,
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("error: Command 'config' requires a subcommand (show)")
		fmt.Println()
		_ = cmd.Help()
		os.Exit(1)
	},
}

// configShowCmd represents the config show command
var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the effective configuration and value sources",
	Run: func(cmd *cobra.Command, args []string) {
		cfg := config.Get()

		asJSON, _ := cmd.Flags().GetBool("json")
		if asJSON {
			out, err := cfg.FormatJSON()
			if err != nil {
				fmt.Fprintf(os.Stderr, "Failed to format configuration: %v\n", err)
				os.Exit(1)
			}
			fmt.Println(out)
			return
		}
		fmt.Print(cfg.FormatText())
	},
}

func init() {
	rootCmd.AddCommand(configCmd)
	configCmd.AddCommand(configShowCmd)

	configShowCmd.Flags().Bool("json", false, "output as JSON")
}
