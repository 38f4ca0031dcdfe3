package main

import (
	"os"

	"github.com/spf13/cobra"
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "smmctl",
	Short: "Run and administer the smmhub server",
	Long: `smmctl runs and administers the smmhub server.

smmhub is a multi-tenant account and organization-membership service.
Use 'smmctl server' to start the API server, 'smmctl db migrate' to
prepare the database, and the user subcommands for administration.`,
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func main() {
	Execute()
}
