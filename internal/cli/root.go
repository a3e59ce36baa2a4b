package cli

import (
	"os"

	"github.com/spf13/cobra"
)

var outputFormat string

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "courseflowctl",
		Short: "Operations tool for the courseflow registration service",
		Long: `courseflowctl is an operations tool for the courseflow course
registration service.

It talks directly to the configured storage backend (STORAGE_TYPE,
REDIS_URL, DATABASE_URL) and supports user lookups, database
migrations, and offline evaluation of the course recommendation table.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().StringVarP(&outputFormat, "output", "o", "text", "Output format: text, json")

	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newUserCmd())
	rootCmd.AddCommand(newRecommendCmd())

	return rootCmd
}

// Execute runs the root command
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
