package sync

import "time"

// State is a document's synchronization classification.
type State int

const (
	// UpToDate means neither side changed since the last sync.
	UpToDate State = iota
	// UpdateAvailable means local changes have not been pushed. Documents
	// that were never pushed (no remote id) are always in this state.
	UpdateAvailable
	// PullAvailable means the remote changed and there is no conflicting
	// local edit.
	PullAvailable
	// Conflict means both sides changed since the last common sync point.
	Conflict
)

func (s State) String() string {
	switch s {
	case UpToDate:
		return "up-to-date"
	case UpdateAvailable:
		return "update-available"
	case PullAvailable:
		return "pull-available"
	case Conflict:
		return "conflict"
	}
	return "unknown"
}

// Record carries the classification inputs for one document. Callers must
// snapshot all fields consistently from one moment before classifying;
// comparing a stale fingerprint against a fresh timestamp can misclassify
// a conflict as a clean pull or vice versa.
type Record struct {
	// Current is the fingerprint of the current serialized wire text,
	// recomputed on every content mutation.
	Current Fingerprint

	// LastSynced is the fingerprint recorded at the moment of the last
	// successful push or pull. Only a successful sync moves it; local
	// edits never do.
	LastSynced Fingerprint

	// RemoteID identifies the remote copy. Empty means the document has
	// never been pushed and must be created on the next push.
	RemoteID string

	// RemoteModifiedAt is the remote's last known modification time.
	RemoteModifiedAt time.Time

	// LastSyncedAt is when the last successful push or pull completed
	// (refreshed by remote checks that confirm no change).
	LastSyncedAt time.Time
}

// Classify computes the synchronization state. It is pure and total: every
// input combination maps to exactly one of the four states.
func Classify(r Record) State {
	// Never synced: only a push (create) is meaningful, regardless of
	// fingerprints or timestamps.
	if r.RemoteID == "" {
		return UpdateAvailable
	}

	localDirty := r.Current != r.LastSynced
	remoteDirty := r.RemoteModifiedAt.After(r.LastSyncedAt)

	switch {
	case localDirty && remoteDirty:
		return Conflict
	case localDirty:
		return UpdateAvailable
	case remoteDirty:
		return PullAvailable
	}
	return UpToDate
}
