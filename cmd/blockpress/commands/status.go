package commands

import (
	"context"

	"github.com/pterm/pterm"
	"github.com/spf13/cobra"

	"github.com/teranos/blockpress/sync"
)

// StatusCmd shows the sync classification of every library document
var StatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show sync state for every document in the library",
	Long: `List all documents with their synchronization state:

  up-to-date        neither side changed since the last sync
  update-available  local changes not yet pushed
  pull-available    remote changed, no local edits
  conflict          both sides changed`,
	RunE: runStatus,
}

var statusRemoteFlag bool

func init() {
	StatusCmd.Flags().BoolVarP(&statusRemoteFlag, "remote", "r", false, "Poll the remote for fresh modification times")
}

func runStatus(cmd *cobra.Command, args []string) error {
	s, database, err := openStore()
	if err != nil {
		return err
	}
	defer database.Close()

	docs, err := s.List()
	if err != nil {
		return err
	}
	if len(docs) == 0 {
		pterm.Info.Println("Library is empty. Use 'blockpress import' to add documents.")
		return nil
	}

	// Optionally refresh remote modification times before classifying.
	if statusRemoteFlag {
		tr, err := newTransport()
		if err != nil {
			return err
		}
		ctx, cancel := context.WithTimeout(cmd.Context(), requestTimeout())
		defer cancel()

		for _, doc := range docs {
			if doc.RemoteID == "" {
				continue
			}
			modifiedAt, err := tr.Head(ctx, doc.RemoteID)
			if err != nil {
				pterm.Warning.Printf("Remote check failed for %s: %v\n", doc.ID, err)
				continue
			}
			doc.RemoteModifiedAt = modifiedAt
		}
	}

	rows := pterm.TableData{{"ID", "Title", "State", "Remote", "Updated"}}
	for _, doc := range docs {
		state := sync.Classify(doc.SyncRecord())

		remote := doc.RemoteID
		if remote == "" {
			remote = "-"
		}

		rows = append(rows, []string{
			doc.ID[:8],
			doc.Title,
			renderState(state),
			remote,
			doc.UpdatedAt.Local().Format("2006-01-02 15:04"),
		})
	}

	return pterm.DefaultTable.WithHasHeader().WithData(rows).Render()
}

func renderState(state sync.State) string {
	switch state {
	case sync.UpToDate:
		return pterm.Green(state.String())
	case sync.UpdateAvailable:
		return pterm.Yellow(state.String())
	case sync.PullAvailable:
		return pterm.Cyan(state.String())
	case sync.Conflict:
		return pterm.Red(state.String())
	}
	return state.String()
}
