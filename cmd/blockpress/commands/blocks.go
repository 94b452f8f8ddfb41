package commands

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/blockpress/block"
	"github.com/teranos/blockpress/errors"
	"github.com/teranos/blockpress/wire"
)

// BlocksCmd prints the decoded block tree of a document file
var BlocksCmd = &cobra.Command{
	Use:   "blocks <file>",
	Short: "Show the decoded block tree of a document",
	Args:  cobra.ExactArgs(1),
	RunE:  runBlocks,
}

func runBlocks(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", args[0])
	}

	printBlocks(cmd, wire.Decode(string(data)), 0)
	return nil
}

func printBlocks(cmd *cobra.Command, blocks []*block.Block, depth int) {
	indent := strings.Repeat("  ", depth)
	for _, b := range blocks {
		line := indent + string(b.Kind)
		if b.Kind == block.KindUnknown {
			line += " (" + b.WireName + ")"
		}
		if attrs := b.Attrs.JSON(); attrs != "{}" {
			line += " " + attrs
		}
		if b.Content != "" && len(b.Children) == 0 {
			preview := b.Content
			if len(preview) > 60 {
				preview = preview[:57] + "..."
			}
			line += fmt.Sprintf(" %q", preview)
		}
		fmt.Fprintln(cmd.OutOrStdout(), line)
		printBlocks(cmd, b.Children, depth+1)
	}
}
