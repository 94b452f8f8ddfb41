package sync

import (
	"testing"
	"time"
)

func TestFingerprintDeterministic(t *testing.T) {
	text := "<!-- wp:paragraph -->\n<p>hello</p>\n<!-- /wp:paragraph -->"

	a := FingerprintText(text)
	b := FingerprintText(text)
	if a != b {
		t.Errorf("same text produced different fingerprints: %s vs %s", a, b)
	}
	if a == "" {
		t.Error("fingerprint should not be empty")
	}

	c := FingerprintText(text + " ")
	if a == c {
		t.Error("different text produced the same fingerprint")
	}
}

func TestClassify(t *testing.T) {
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)
	later := base.Add(time.Hour)

	tests := []struct {
		name string
		rec  Record
		want State
	}{
		{
			name: "clean",
			rec: Record{
				Current:          "fp1",
				LastSynced:       "fp1",
				RemoteID:         "r1",
				RemoteModifiedAt: base,
				LastSyncedAt:     base,
			},
			want: UpToDate,
		},
		{
			name: "local edit only",
			rec: Record{
				Current:          "fp2",
				LastSynced:       "fp1",
				RemoteID:         "r1",
				RemoteModifiedAt: base,
				LastSyncedAt:     base,
			},
			want: UpdateAvailable,
		},
		{
			name: "remote edit only",
			rec: Record{
				Current:          "fp1",
				LastSynced:       "fp1",
				RemoteID:         "r1",
				RemoteModifiedAt: later,
				LastSyncedAt:     base,
			},
			want: PullAvailable,
		},
		{
			name: "both edited",
			rec: Record{
				Current:          "fp2",
				LastSynced:       "fp1",
				RemoteID:         "r1",
				RemoteModifiedAt: later,
				LastSyncedAt:     base,
			},
			want: Conflict,
		},
		{
			name: "never pushed",
			rec:  Record{Current: "fp1"},
			want: UpdateAvailable,
		},
		{
			name: "never pushed but remote timestamp set",
			rec: Record{
				Current:          "fp1",
				LastSynced:       "fp1",
				RemoteModifiedAt: later,
			},
			want: UpdateAvailable,
		},
		{
			name: "remote equal to sync point is not dirty",
			rec: Record{
				Current:          "fp1",
				LastSynced:       "fp1",
				RemoteID:         "r1",
				RemoteModifiedAt: base,
				LastSyncedAt:     base,
			},
			want: UpToDate,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Classify(tt.rec); got != tt.want {
				t.Errorf("Classify() = %s, want %s", got, tt.want)
			}
		})
	}
}

// Every combination of the three boolean inputs must map to exactly one
// state, with an absent remote id dominating everything else.
func TestClassifyTotality(t *testing.T) {
	base := time.Date(2026, 1, 10, 12, 0, 0, 0, time.UTC)

	for _, hasRemote := range []bool{false, true} {
		for _, localDirty := range []bool{false, true} {
			for _, remoteDirty := range []bool{false, true} {
				rec := Record{
					Current:      "fp-local",
					LastSynced:   "fp-local",
					LastSyncedAt: base,
				}
				if hasRemote {
					rec.RemoteID = "r1"
				}
				if localDirty {
					rec.Current = "fp-edited"
				}
				if remoteDirty {
					rec.RemoteModifiedAt = base.Add(time.Minute)
				} else {
					rec.RemoteModifiedAt = base
				}

				got := Classify(rec)

				var want State
				switch {
				case !hasRemote:
					want = UpdateAvailable
				case localDirty && remoteDirty:
					want = Conflict
				case localDirty:
					want = UpdateAvailable
				case remoteDirty:
					want = PullAvailable
				default:
					want = UpToDate
				}

				if got != want {
					t.Errorf("remote=%v local=%v remoteDirty=%v: got %s, want %s",
						hasRemote, localDirty, remoteDirty, got, want)
				}
			}
		}
	}
}

func TestClassifyScenarios(t *testing.T) {
	syncedAt := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)
	text := "<!-- wp:paragraph -->\n<p>draft</p>\n<!-- /wp:paragraph -->"
	fp := FingerprintText(text)

	// Synced document, untouched on both sides since.
	clean := Record{
		Current:          fp,
		LastSynced:       fp,
		RemoteID:         "post-42",
		RemoteModifiedAt: syncedAt.Add(-time.Minute),
		LastSyncedAt:     syncedAt,
	}
	if got := Classify(clean); got != UpToDate {
		t.Errorf("clean document = %s, want up-to-date", got)
	}

	// Local edit lands while the remote also moved forward.
	edited := clean
	edited.Current = FingerprintText(text + "\n\n<!-- wp:separator -->\n<hr/>\n<!-- /wp:separator -->")
	edited.RemoteModifiedAt = syncedAt.Add(time.Minute)
	if got := Classify(edited); got != Conflict {
		t.Errorf("diverged document = %s, want conflict", got)
	}
}

func TestStateString(t *testing.T) {
	for s, want := range map[State]string{
		UpToDate:        "up-to-date",
		UpdateAvailable: "update-available",
		PullAvailable:   "pull-available",
		Conflict:        "conflict",
		State(99):       "unknown",
	} {
		if got := s.String(); got != want {
			t.Errorf("State(%d).String() = %q, want %q", int(s), got, want)
		}
	}
}
