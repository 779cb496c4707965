// Package cmd provides the postboard command-line interface.
package cmd

import (
	"github.com/postboard/postboard-backend/logger"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root command. Running it without a subcommand starts the server.
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "postboard",
		Short: "Postboard users and posts API",
		Long: `Postboard serves a JSON API for users and their posts backed by PostgreSQL.

Configuration is read from environment variables (SERVER_*, DB_*, REDIS_*, RATE_LIMIT_*).`,
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logger.InitLogger()
		},
		PersistentPostRun: func(cmd *cobra.Command, args []string) {
			_ = logger.Close()
		},
		RunE: func(cmd *cobra.Command, args []string) error {
			return runServe(cmd.Context())
		},
	}

	rootCmd.AddCommand(newServeCmd())
	rootCmd.AddCommand(newMigrateCmd())
	rootCmd.AddCommand(newSeedCmd())

	return rootCmd
}
