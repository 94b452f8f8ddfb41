package commands

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/blockpress/errors"
	"github.com/teranos/blockpress/sync"
	"github.com/teranos/blockpress/wire"
)

// PullCmd overwrites local content with the remote copy
var PullCmd = &cobra.Command{
	Use:   "pull <id>",
	Short: "Overwrite local content with the remote copy",
	Long: `Fetch the remote content for a document and replace the local copy.
Local edits are refused unless --force is given.`,
	Args: cobra.ExactArgs(1),
	RunE: runPull,
}

var pullForceFlag bool

func init() {
	PullCmd.Flags().BoolVarP(&pullForceFlag, "force", "f", false, "Pull even when local edits would be lost")
}

func runPull(cmd *cobra.Command, args []string) error {
	s, database, err := openStore()
	if err != nil {
		return err
	}
	defer database.Close()

	doc, err := resolveDocument(s, args[0])
	if err != nil {
		return err
	}
	if doc.RemoteID == "" {
		return errors.Newf("document %s has never been pushed; nothing to pull", doc.ID)
	}

	state := sync.Classify(doc.SyncRecord())
	if (state == sync.UpdateAvailable || state == sync.Conflict) && !pullForceFlag {
		return errors.Wrapf(errors.ErrConflict, "document %s has local edits (use --force to discard them)", doc.ID)
	}

	tr, err := newTransport()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout())
	defer cancel()

	remote, err := tr.Fetch(ctx, doc.RemoteID)
	if errors.IsRemoteGoneError(err) {
		return errors.Wrapf(err, "remote copy of %s no longer exists", doc.ID)
	}
	if err != nil {
		return err
	}

	// Canonicalize on the way in so the stored fingerprint is stable.
	canonical := wire.Encode(wire.Decode(remote.Content))

	title := remote.Title
	if title == "" {
		title = doc.Title
	}
	if err := s.Save(doc.ID, title, canonical); err != nil {
		return err
	}
	if err := s.TouchSynced(doc.ID, remote.ID, remote.ModifiedAt); err != nil {
		return err
	}

	pterm.Success.Printf("Pulled %q from %s\n", title, remote.ID)
	return nil
}
