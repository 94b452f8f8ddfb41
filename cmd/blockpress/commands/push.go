package commands

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/blockpress/errors"
	"github.com/teranos/blockpress/sync"
)

// PushCmd publishes local changes to the remote
var PushCmd = &cobra.Command{
	Use:   "push <id>",
	Short: "Publish local changes to the remote",
	Long: `Push a document's current content to the remote endpoint. Documents
without a remote id are created; others are updated in place.

A conflicting document (both sides changed) is refused unless --force is
given, in which case the local content overwrites the remote.`,
	Args: cobra.ExactArgs(1),
	RunE: runPush,
}

var pushForceFlag bool

func init() {
	PushCmd.Flags().BoolVarP(&pushForceFlag, "force", "f", false, "Push even when the document is in conflict")
}

func runPush(cmd *cobra.Command, args []string) error {
	s, database, err := openStore()
	if err != nil {
		return err
	}
	defer database.Close()

	doc, err := resolveDocument(s, args[0])
	if err != nil {
		return err
	}

	tr, err := newTransport()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout())
	defer cancel()

	// Refresh remote state so the conflict check is not based on stale
	// metadata.
	if doc.RemoteID != "" {
		modifiedAt, err := tr.Head(ctx, doc.RemoteID)
		switch {
		case errors.IsRemoteGoneError(err):
			// Remote copy vanished: recreate on push.
			doc.RemoteID = ""
		case err != nil:
			return err
		default:
			doc.RemoteModifiedAt = modifiedAt
		}
	}

	state := sync.Classify(doc.SyncRecord())
	switch state {
	case sync.UpToDate:
		pterm.Info.Println("Nothing to push: document is up to date.")
		return nil
	case sync.PullAvailable:
		return errors.New("remote has newer content; pull first")
	case sync.Conflict:
		if !pushForceFlag {
			return errors.Wrapf(errors.ErrConflict, "document %s changed on both sides (use --force to overwrite remote)", doc.ID)
		}
		pterm.Warning.Println("Conflict: overwriting remote with local content.")
	}

	var remoteID string
	var modifiedAt = doc.RemoteModifiedAt
	if doc.RemoteID == "" {
		remote, err := tr.Create(ctx, doc.Title, doc.WireText)
		if err != nil {
			return err
		}
		remoteID, modifiedAt = remote.ID, remote.ModifiedAt
	} else {
		remote, err := tr.Update(ctx, doc.RemoteID, doc.Title, doc.WireText)
		if err != nil {
			return err
		}
		remoteID, modifiedAt = remote.ID, remote.ModifiedAt
	}

	if err := s.TouchSynced(doc.ID, remoteID, modifiedAt); err != nil {
		return err
	}

	pterm.Success.Printf("Pushed %q to %s\n", doc.Title, remoteID)
	return nil
}
