package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/blockpress/am"
	"github.com/teranos/blockpress/cmd/blockpress/commands"
	"github.com/teranos/blockpress/logger"
)

var rootCmd = &cobra.Command{
	Use:   "blockpress",
	Short: "blockpress - Block-based document editor and publisher",
	Long: `blockpress - Block-based document editing, storage, and publishing.

Documents are stored as delimiter-framed block markup, kept in a local
SQLite library, and pushed to or pulled from a remote publishing endpoint.

Examples:
  blockpress fmt draft.html        # Canonicalize a document file in place
  blockpress blocks draft.html     # Show the decoded block tree
  blockpress import draft.html     # Add a document to the local library
  blockpress status                # Show sync state for every document
  blockpress push <id>             # Publish local changes
  blockpress pull <id>             # Overwrite local with remote content`,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		jsonLogs := false
		if cfg, err := am.Load(); err == nil {
			jsonLogs = cfg.Log.JSON
		}
		if err := logger.Initialize(jsonLogs); err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		logger.Cleanup()
	},
}

func init() {
	rootCmd.AddCommand(commands.FmtCmd)
	rootCmd.AddCommand(commands.BlocksCmd)
	rootCmd.AddCommand(commands.ImportCmd)
	rootCmd.AddCommand(commands.StatusCmd)
	rootCmd.AddCommand(commands.PushCmd)
	rootCmd.AddCommand(commands.PullCmd)
	rootCmd.AddCommand(commands.VersionCmd)
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
