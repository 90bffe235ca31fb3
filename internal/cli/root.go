// Package cli defines the cobra command tree for the comments API.
package cli

import (
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// NewRootCmd creates the root cobra command.
func NewRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "comments",
		Short:         "Comment management API",
		Long:          "An HTTP API for listing, creating, updating and soft-deleting threaded comments attached to arbitrary target objects, gated by a pluggable permission policy.",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			// A missing .env is fine; real environment variables win.
			_ = godotenv.Load()
		},
	}

	root.AddCommand(
		newServeCmd(),
		newMigrateCmd(),
		newSeedCmd(),
		newVersionCmd(),
	)

	return root
}
