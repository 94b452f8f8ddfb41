// Package transport moves documents between the local library and a remote
// publishing endpoint.
package transport

import (
	"context"
	"net/http"
	"time"
)

// RemoteDocument is the remote's view of one document.
type RemoteDocument struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Content    string    `json:"content"`
	ModifiedAt time.Time `json:"modified"`
}

// Transport is the remote publishing surface. Implementations must map a
// missing remote document to errors.ErrRemoteGone and rejected credentials
// to errors.ErrUnauthorized so callers can branch on sentinel identity.
type Transport interface {
	// Create publishes a new document and returns the assigned remote id.
	Create(ctx context.Context, title, wireText string) (*RemoteDocument, error)
	// Update overwrites the remote content for an existing document.
	Update(ctx context.Context, remoteID, title, wireText string) (*RemoteDocument, error)
	// Fetch downloads the current remote content.
	Fetch(ctx context.Context, remoteID string) (*RemoteDocument, error)
	// Head returns only the remote modification time, for cheap sync checks.
	Head(ctx context.Context, remoteID string) (time.Time, error)
	// Delete removes the remote document.
	Delete(ctx context.Context, remoteID string) error
}

// Credentials attaches authentication to an outgoing request.
type Credentials interface {
	Apply(req *http.Request)
}

// BasicAuth authenticates with a username and an application password.
type BasicAuth struct {
	Username string
	Password string
}

func (a BasicAuth) Apply(req *http.Request) {
	req.SetBasicAuth(a.Username, a.Password)
}

// TokenAuth authenticates with a bearer token.
type TokenAuth struct {
	Token string
}

func (a TokenAuth) Apply(req *http.Request) {
	req.Header.Set("Authorization", "Bearer "+a.Token)
}
