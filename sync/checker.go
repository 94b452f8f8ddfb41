package sync

import (
	"context"
	stdsync "sync"
	"time"

	"go.uber.org/zap"
	"golang.org/x/time/rate"

	"github.com/teranos/blockpress/errors"
)

// MetaFunc fetches the remote modification time for one remote id. The
// transport layer provides the real implementation; tests use a closure.
type MetaFunc func(ctx context.Context, remoteID string) (time.Time, error)

// Observer is notified when a tracked document's classification changes.
// Notifications fire on the goroutine that caused the change, under the
// checker's lock: observers must not call back into the checker.
type Observer interface {
	OnStateChange(docID string, state State)
}

// ObserverFunc adapts a plain function to the Observer interface.
type ObserverFunc func(docID string, state State)

func (f ObserverFunc) OnStateChange(docID string, state State) { f(docID, state) }

// Checker tracks classification inputs for a set of documents and polls the
// remote for modification times. All input fields for one document are held
// together under one lock, so every classification sees a consistent
// snapshot.
type Checker struct {
	mu      stdsync.Mutex
	records map[string]Record
	states  map[string]State

	fetch     MetaFunc
	limiter   *rate.Limiter
	observers []Observer
	logger    *zap.SugaredLogger
}

// NewChecker creates a checker over the given metadata fetcher. Remote polls
// are rate-limited to one per interval with a burst of one; local updates
// are never limited.
func NewChecker(fetch MetaFunc, interval time.Duration, logger *zap.SugaredLogger) *Checker {
	return &Checker{
		records: make(map[string]Record),
		states:  make(map[string]State),
		fetch:   fetch,
		limiter: rate.NewLimiter(rate.Every(interval), 1),
		logger:  logger,
	}
}

// RegisterObserver adds a state-change observer. Not safe to call
// concurrently with notifications.
func (c *Checker) RegisterObserver(o Observer) {
	c.observers = append(c.observers, o)
}

// Track begins (or resets) tracking for a document with the given inputs.
func (c *Checker) Track(docID string, rec Record) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.records[docID] = rec
	c.reclassifyLocked(docID)
}

// Forget stops tracking a document.
func (c *Checker) Forget(docID string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.records, docID)
	delete(c.states, docID)
}

// SetContent records a local edit: the current fingerprint moves, the sync
// point does not.
func (c *Checker) SetContent(docID string, fp Fingerprint) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.records[docID]
	if !ok {
		return
	}
	rec.Current = fp
	c.records[docID] = rec
	c.reclassifyLocked(docID)
}

// MarkSynced records a successful push or pull: both fingerprints converge
// on fp and the sync point advances. This is the only operation that moves
// the last-synced fingerprint.
func (c *Checker) MarkSynced(docID string, fp Fingerprint, remoteID string, modifiedAt time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.records[docID]
	if !ok {
		return
	}
	rec.Current = fp
	rec.LastSynced = fp
	rec.RemoteID = remoteID
	rec.RemoteModifiedAt = modifiedAt
	rec.LastSyncedAt = time.Now()
	c.records[docID] = rec
	c.reclassifyLocked(docID)
}

// State returns the last computed classification for a document.
func (c *Checker) State(docID string) (State, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	s, ok := c.states[docID]
	return s, ok
}

// Record returns a copy of the tracked inputs for a document.
func (c *Checker) Record(docID string) (Record, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok := c.records[docID]
	return rec, ok
}

// CheckRemote polls the remote modification time for one document and
// reclassifies. Documents without a remote id are already classified and
// skip the poll. The poll is rate-limited; CheckRemote blocks until a slot
// is available or ctx is done.
func (c *Checker) CheckRemote(ctx context.Context, docID string) (State, error) {
	c.mu.Lock()
	rec, ok := c.records[docID]
	c.mu.Unlock()
	if !ok {
		return UpToDate, errors.Wrapf(errors.ErrNotFound, "document %s is not tracked", docID)
	}
	if rec.RemoteID == "" {
		return UpdateAvailable, nil
	}

	if err := c.limiter.Wait(ctx); err != nil {
		return UpToDate, errors.Wrap(err, "remote check cancelled")
	}

	modifiedAt, err := c.fetch(ctx, rec.RemoteID)
	if err != nil {
		if c.logger != nil {
			c.logger.Warnw("Remote metadata check failed",
				"doc_id", docID,
				"remote_id", rec.RemoteID,
				"error", err,
			)
		}
		return UpToDate, errors.Wrapf(err, "failed to check remote for %s", docID)
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	rec, ok = c.records[docID]
	if !ok {
		return UpToDate, errors.Wrapf(errors.ErrNotFound, "document %s is not tracked", docID)
	}
	rec.RemoteModifiedAt = modifiedAt
	c.records[docID] = rec
	c.reclassifyLocked(docID)
	return c.states[docID], nil
}

// Run polls every tracked document on each tick until ctx is done. Poll
// failures are logged and do not stop the loop.
func (c *Checker) Run(ctx context.Context, tick time.Duration) {
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			c.mu.Lock()
			ids := make([]string, 0, len(c.records))
			for id := range c.records {
				ids = append(ids, id)
			}
			c.mu.Unlock()

			for _, id := range ids {
				if _, err := c.CheckRemote(ctx, id); err != nil {
					if ctx.Err() != nil {
						return
					}
				}
			}
		}
	}
}

// reclassifyLocked recomputes one document's state and notifies observers on
// change. Caller holds c.mu.
func (c *Checker) reclassifyLocked(docID string) {
	next := Classify(c.records[docID])
	prev, seen := c.states[docID]
	c.states[docID] = next
	if seen && prev == next {
		return
	}
	if c.logger != nil {
		c.logger.Debugw("Sync state changed",
			"doc_id", docID,
			"state", next.String(),
		)
	}
	for _, o := range c.observers {
		o.OnStateChange(docID, next)
	}
}
