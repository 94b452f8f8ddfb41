package commands

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/teranos/blockpress/errors"
	"github.com/teranos/blockpress/wire"
)

// FmtCmd canonicalizes a wire-format document file
var FmtCmd = &cobra.Command{
	Use:   "fmt <file>",
	Short: "Canonicalize a block document file",
	Long: `Decode a block document and re-encode it in canonical form:
deterministic attribute ordering, normalized delimiters, and blank-line
separation between top-level blocks. Unframed content is promoted to
blocks by the classic fallback.`,
	Args: cobra.ExactArgs(1),
	RunE: runFmt,
}

var fmtWriteFlag bool

func init() {
	FmtCmd.Flags().BoolVarP(&fmtWriteFlag, "write", "w", false, "Write result back to the file instead of stdout")
}

func runFmt(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}

	canonical := wire.Encode(wire.Decode(string(data)))

	if fmtWriteFlag {
		if err := os.WriteFile(path, []byte(canonical+"\n"), 0644); err != nil {
			return errors.Wrapf(err, "failed to write %s", path)
		}
		return nil
	}

	fmt.Fprintln(cmd.OutOrStdout(), canonical)
	return nil
}
