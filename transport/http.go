package transport

import (
	"bytes"
	"context"
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/teranos/blockpress/errors"
	"github.com/teranos/blockpress/internal/httpclient"
)

const defaultTimeout = 30 * time.Second

// HTTPTransport talks to a REST endpoint exposing documents under
// {base}/documents. Responses are JSON RemoteDocument bodies.
type HTTPTransport struct {
	base   string
	creds  Credentials
	client *httpclient.SaferClient
	logger *zap.SugaredLogger
}

// NewHTTPTransport creates a transport for the given base URL. Credentials
// may be nil for endpoints that allow anonymous reads.
func NewHTTPTransport(base string, creds Credentials, logger *zap.SugaredLogger) *HTTPTransport {
	return &HTTPTransport{
		base:   strings.TrimRight(base, "/"),
		creds:  creds,
		client: httpclient.NewSaferClient(defaultTimeout),
		logger: logger,
	}
}

// SetClient replaces the HTTP client. Tests use this with
// httpclient.WrapClient to reach httptest servers on loopback.
func (t *HTTPTransport) SetClient(c *httpclient.SaferClient) {
	t.client = c
}

type documentPayload struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// Create publishes a new document.
func (t *HTTPTransport) Create(ctx context.Context, title, wireText string) (*RemoteDocument, error) {
	doc, err := t.roundTrip(ctx, http.MethodPost, t.base+"/documents", &documentPayload{Title: title, Content: wireText})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create remote document")
	}
	if t.logger != nil {
		t.logger.Infow("Remote document created",
			"remote_id", doc.ID,
			"title", title,
		)
	}
	return doc, nil
}

// Update overwrites an existing remote document.
func (t *HTTPTransport) Update(ctx context.Context, remoteID, title, wireText string) (*RemoteDocument, error) {
	doc, err := t.roundTrip(ctx, http.MethodPut, t.base+"/documents/"+remoteID, &documentPayload{Title: title, Content: wireText})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to update remote document %s", remoteID)
	}
	return doc, nil
}

// Fetch downloads the current remote content.
func (t *HTTPTransport) Fetch(ctx context.Context, remoteID string) (*RemoteDocument, error) {
	doc, err := t.roundTrip(ctx, http.MethodGet, t.base+"/documents/"+remoteID, nil)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch remote document %s", remoteID)
	}
	return doc, nil
}

// Head returns the remote modification time without the content body.
func (t *HTTPTransport) Head(ctx context.Context, remoteID string) (time.Time, error) {
	doc, err := t.roundTrip(ctx, http.MethodGet, t.base+"/documents/"+remoteID+"?fields=modified", nil)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "failed to check remote document %s", remoteID)
	}
	return doc.ModifiedAt, nil
}

// Delete removes the remote document.
func (t *HTTPTransport) Delete(ctx context.Context, remoteID string) error {
	if _, err := t.roundTrip(ctx, http.MethodDelete, t.base+"/documents/"+remoteID, nil); err != nil {
		return errors.Wrapf(err, "failed to delete remote document %s", remoteID)
	}
	return nil
}

// roundTrip sends one request and decodes the RemoteDocument response.
// Status codes are mapped onto the sentinel errors callers branch on.
func (t *HTTPTransport) roundTrip(ctx context.Context, method, url string, payload *documentPayload) (*RemoteDocument, error) {
	var body io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return nil, errors.Wrap(err, "failed to encode request body")
		}
		body = bytes.NewReader(raw)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return nil, errors.Wrap(err, "failed to build request")
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if t.creds != nil {
		t.creds.Apply(req)
	}

	resp, err := t.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errors.ErrRemoteGone
	case resp.StatusCode == http.StatusUnauthorized || resp.StatusCode == http.StatusForbidden:
		return nil, errors.ErrUnauthorized
	case resp.StatusCode >= 400:
		msg, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return nil, errors.Newf("remote returned %d: %s", resp.StatusCode, strings.TrimSpace(string(msg)))
	}

	if resp.StatusCode == http.StatusNoContent {
		return nil, nil
	}

	var doc RemoteDocument
	if err := json.NewDecoder(resp.Body).Decode(&doc); err != nil {
		return nil, errors.Wrap(err, "failed to decode response body")
	}
	return &doc, nil
}
