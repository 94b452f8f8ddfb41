// Package commands implements the blockpress CLI subcommands.
package commands

import (
	"database/sql"
	"strings"
	"time"

	"github.com/teranos/blockpress/am"
	"github.com/teranos/blockpress/db"
	"github.com/teranos/blockpress/errors"
	"github.com/teranos/blockpress/logger"
	"github.com/teranos/blockpress/store"
	"github.com/teranos/blockpress/transport"
)

// openStore opens the configured library database and wraps it in a store.
// The caller owns closing the returned database.
func openStore() (*store.Store, *sql.DB, error) {
	dbPath, err := am.GetDatabasePath()
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to resolve database path")
	}

	database, err := db.OpenWithMigrations(dbPath, logger.Logger)
	if err != nil {
		return nil, nil, errors.Wrap(err, "failed to open library database")
	}

	return store.NewStore(database, logger.Logger), database, nil
}

// newTransport builds the remote transport from the configured site.
func newTransport() (transport.Transport, error) {
	cfg, err := am.Load()
	if err != nil {
		return nil, errors.Wrap(err, "failed to load configuration")
	}
	if cfg.Site.BaseURL == "" {
		return nil, errors.New("no remote site configured (set site.base_url)")
	}

	var creds transport.Credentials
	switch {
	case cfg.Site.Token != "":
		creds = transport.TokenAuth{Token: cfg.Site.Token}
	case cfg.Site.Username != "":
		creds = transport.BasicAuth{Username: cfg.Site.Username, Password: cfg.Site.AppPassword}
	}

	return transport.NewHTTPTransport(cfg.Site.BaseURL, creds, logger.Logger), nil
}

// resolveDocument finds a document by full id or unique id prefix.
func resolveDocument(s *store.Store, idOrPrefix string) (*store.Document, error) {
	if doc, err := s.Get(idOrPrefix); err == nil {
		return doc, nil
	} else if !errors.IsNotFoundError(err) {
		return nil, err
	}

	docs, err := s.List()
	if err != nil {
		return nil, err
	}

	var match *store.Document
	for _, doc := range docs {
		if strings.HasPrefix(doc.ID, idOrPrefix) {
			if match != nil {
				return nil, errors.Newf("ambiguous document id %q", idOrPrefix)
			}
			match = doc
		}
	}
	if match == nil {
		return nil, errors.Wrapf(errors.ErrNotFound, "document %q", idOrPrefix)
	}
	return match, nil
}

// requestTimeout returns the configured per-request timeout.
func requestTimeout() time.Duration {
	cfg, err := am.Load()
	if err != nil || cfg.Sync.TimeoutSeconds <= 0 {
		return 30 * time.Second
	}
	return time.Duration(cfg.Sync.TimeoutSeconds) * time.Second
}
