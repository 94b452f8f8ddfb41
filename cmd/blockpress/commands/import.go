package commands

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/teranos/blockpress/errors"
	"github.com/teranos/blockpress/wire"
)

// ImportCmd adds a document file to the local library
var ImportCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Add a document file to the local library",
	Long: `Read a wire-format document file, canonicalize it, and store it in
the local library. The document starts unpushed: its first push creates
the remote copy.`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

var importTitleFlag string

func init() {
	ImportCmd.Flags().StringVarP(&importTitleFlag, "title", "t", "", "Document title (default: file name)")
}

func runImport(cmd *cobra.Command, args []string) error {
	path := args[0]
	data, err := os.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "failed to read %s", path)
	}

	title := importTitleFlag
	if title == "" {
		title = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
	}

	s, database, err := openStore()
	if err != nil {
		return err
	}
	defer database.Close()

	canonical := wire.Encode(wire.Decode(string(data)))
	doc, err := s.Create(title, canonical)
	if err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "Imported %q as %s\n", title, doc.ID)
	return nil
}
