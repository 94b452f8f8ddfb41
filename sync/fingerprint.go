// Package sync classifies a document's synchronization state from content
// fingerprints and remote metadata.
//
// Fingerprinting produces a deterministic digest of the encoded wire text.
// Two encodes of the same tree produce the same fingerprint, so a changed
// fingerprint always means changed content — including attribute-only
// changes, since attributes are part of the encoded text.
//
// The state machine itself is a pure, total function of its inputs: it
// never performs I/O and never fails. Resolution actions (push, pull) live
// with the transport collaborator.
package sync

import (
	"crypto/sha256"

	"github.com/mr-tron/base58"
)

// Fingerprint is a content hash of encoded wire text, rendered base58 for
// compact display and storage.
type Fingerprint string

// FingerprintText computes the fingerprint of wire-format text. Identical
// text always produces an identical fingerprint across runs.
func FingerprintText(wireText string) Fingerprint {
	sum := sha256.Sum256([]byte(wireText))
	return Fingerprint(base58.Encode(sum[:]))
}
