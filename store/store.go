// Package store persists documents in the local SQLite library and tracks
// the sync bookkeeping fields alongside the wire text.
package store

import (
	"database/sql"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/teranos/blockpress/errors"
	"github.com/teranos/blockpress/sync"
)

// Document is one row of the local library. WireText is the canonical
// content; Fingerprint always matches it.
type Document struct {
	ID                    string
	Title                 string
	WireText              string
	Fingerprint           sync.Fingerprint
	LastSyncedFingerprint sync.Fingerprint
	RemoteID              string
	RemoteModifiedAt      time.Time
	LastSyncedAt          time.Time
	CreatedAt             time.Time
	UpdatedAt             time.Time
}

// SyncRecord projects the document's sync bookkeeping into classification
// inputs.
func (d *Document) SyncRecord() sync.Record {
	return sync.Record{
		Current:          d.Fingerprint,
		LastSynced:       d.LastSyncedFingerprint,
		RemoteID:         d.RemoteID,
		RemoteModifiedAt: d.RemoteModifiedAt,
		LastSyncedAt:     d.LastSyncedAt,
	}
}

// Query constants
const (
	documentInsertQuery = `
		INSERT INTO documents (id, title, wire_text, fingerprint, last_synced_fingerprint, remote_id, remote_modified_at, last_synced_at, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`

	documentSelectQuery = `
		SELECT id, title, wire_text, fingerprint, last_synced_fingerprint, remote_id, remote_modified_at, last_synced_at, created_at, updated_at
		FROM documents WHERE id = ?`

	documentListQuery = `
		SELECT id, title, wire_text, fingerprint, last_synced_fingerprint, remote_id, remote_modified_at, last_synced_at, created_at, updated_at
		FROM documents ORDER BY updated_at DESC`

	documentUpdateContentQuery = `
		UPDATE documents SET title = ?, wire_text = ?, fingerprint = ?, updated_at = ? WHERE id = ?`

	documentTouchSyncedQuery = `
		UPDATE documents SET last_synced_fingerprint = fingerprint, remote_id = ?, remote_modified_at = ?, last_synced_at = ?, updated_at = ? WHERE id = ?`

	documentDeleteQuery = `
		DELETE FROM documents WHERE id = ?`
)

// Store is the SQLite-backed document library.
type Store struct {
	db     *sql.DB
	logger *zap.SugaredLogger
}

// NewStore creates a document store over an open database.
func NewStore(db *sql.DB, logger *zap.SugaredLogger) *Store {
	return &Store{
		db:     db,
		logger: logger,
	}
}

// Create inserts a new document with the given title and wire text and
// returns the stored row. The fingerprint is computed here so it can never
// drift from the text.
func (s *Store) Create(title, wireText string) (*Document, error) {
	now := time.Now().UTC()
	doc := &Document{
		ID:          uuid.NewString(),
		Title:       title,
		WireText:    wireText,
		Fingerprint: sync.FingerprintText(wireText),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := s.db.Exec(documentInsertQuery,
		doc.ID, doc.Title, doc.WireText,
		string(doc.Fingerprint), string(doc.LastSyncedFingerprint),
		doc.RemoteID, nullTime(doc.RemoteModifiedAt), nullTime(doc.LastSyncedAt),
		doc.CreatedAt, doc.UpdatedAt,
	)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to insert document %s", doc.ID)
	}

	if s.logger != nil {
		s.logger.Debugw("Document created",
			"doc_id", doc.ID,
			"title", doc.Title,
		)
	}
	return doc, nil
}

// Get loads one document by id. Returns ErrNotFound when absent.
func (s *Store) Get(id string) (*Document, error) {
	doc, err := scanDocument(s.db.QueryRow(documentSelectQuery, id))
	if err == sql.ErrNoRows {
		return nil, errors.Wrapf(errors.ErrNotFound, "document %s", id)
	}
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load document %s", id)
	}
	return doc, nil
}

// List returns all documents, most recently updated first.
func (s *Store) List() ([]*Document, error) {
	rows, err := s.db.Query(documentListQuery)
	if err != nil {
		return nil, errors.Wrap(err, "failed to list documents")
	}
	defer rows.Close()

	var docs []*Document
	for rows.Next() {
		doc, err := scanDocument(rows)
		if err != nil {
			return nil, errors.Wrap(err, "failed to scan document row")
		}
		docs = append(docs, doc)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrap(err, "failed to iterate documents")
	}
	return docs, nil
}

// Save stores new content for a document, recomputing the fingerprint. The
// last-synced fingerprint is deliberately untouched: only TouchSynced moves
// it.
func (s *Store) Save(id, title, wireText string) error {
	fp := sync.FingerprintText(wireText)
	res, err := s.db.Exec(documentUpdateContentQuery,
		title, wireText, string(fp), time.Now().UTC(), id,
	)
	if err != nil {
		return errors.Wrapf(err, "failed to save document %s", id)
	}
	return requireRow(res, id)
}

// TouchSynced records a successful push or pull: the last-synced fingerprint
// converges on the current one and the remote metadata advances.
func (s *Store) TouchSynced(id, remoteID string, remoteModifiedAt time.Time) error {
	now := time.Now().UTC()
	res, err := s.db.Exec(documentTouchSyncedQuery,
		remoteID, nullTime(remoteModifiedAt), now, now, id,
	)
	if err != nil {
		return errors.Wrapf(err, "failed to mark document %s synced", id)
	}
	if err := requireRow(res, id); err != nil {
		return err
	}
	if s.logger != nil {
		s.logger.Debugw("Document marked synced",
			"doc_id", id,
			"remote_id", remoteID,
		)
	}
	return nil
}

// Delete removes a document. Deleting an absent id returns ErrNotFound.
func (s *Store) Delete(id string) error {
	res, err := s.db.Exec(documentDeleteQuery, id)
	if err != nil {
		return errors.Wrapf(err, "failed to delete document %s", id)
	}
	return requireRow(res, id)
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanDocument(row rowScanner) (*Document, error) {
	var (
		doc              Document
		fp, lastSynced   string
		remoteModifiedAt sql.NullTime
		lastSyncedAt     sql.NullTime
	)
	err := row.Scan(
		&doc.ID, &doc.Title, &doc.WireText,
		&fp, &lastSynced, &doc.RemoteID,
		&remoteModifiedAt, &lastSyncedAt,
		&doc.CreatedAt, &doc.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	doc.Fingerprint = sync.Fingerprint(fp)
	doc.LastSyncedFingerprint = sync.Fingerprint(lastSynced)
	doc.RemoteModifiedAt = remoteModifiedAt.Time
	doc.LastSyncedAt = lastSyncedAt.Time
	return &doc, nil
}

func requireRow(res sql.Result, id string) error {
	n, err := res.RowsAffected()
	if err != nil {
		return errors.Wrapf(err, "failed to read affected rows for %s", id)
	}
	if n == 0 {
		return errors.Wrapf(errors.ErrNotFound, "document %s", id)
	}
	return nil
}

func nullTime(t time.Time) sql.NullTime {
	return sql.NullTime{Time: t, Valid: !t.IsZero()}
}
