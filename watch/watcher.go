// Package watch re-decodes a wire-format document file when it changes on
// disk, so external edits show up in the running editor.
package watch

import (
	"os"
	stdsync "sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"github.com/teranos/blockpress/document"
	"github.com/teranos/blockpress/errors"
	"github.com/teranos/blockpress/sync"
)

// ChangeCallback receives the freshly decoded document and its fingerprint
// after a debounced file change.
type ChangeCallback func(doc *document.Document, fp sync.Fingerprint)

// FileWatcher watches one wire-format file for external modifications.
type FileWatcher struct {
	path           string
	watcher        *fsnotify.Watcher
	callbacks      []ChangeCallback
	mu             stdsync.Mutex
	debounceTimer  *time.Timer
	debouncePeriod time.Duration
	logger         *zap.SugaredLogger
}

// NewFileWatcher creates a watcher for the given document file.
func NewFileWatcher(path string, logger *zap.SugaredLogger) (*FileWatcher, error) {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errors.Wrap(err, "failed to create fsnotify watcher")
	}

	if err := watcher.Add(path); err != nil {
		watcher.Close()
		return nil, errors.Wrapf(err, "failed to watch document file %s", path)
	}

	return &FileWatcher{
		path:           path,
		watcher:        watcher,
		debouncePeriod: 250 * time.Millisecond,
		logger:         logger,
	}, nil
}

// OnChange registers a callback for debounced file changes. Register before
// Start.
func (fw *FileWatcher) OnChange(callback ChangeCallback) {
	fw.callbacks = append(fw.callbacks, callback)
}

// Start begins watching in a background goroutine.
func (fw *FileWatcher) Start() {
	go fw.watchLoop()
}

// Stop stops watching and releases the underlying watcher.
func (fw *FileWatcher) Stop() error {
	return fw.watcher.Close()
}

func (fw *FileWatcher) watchLoop() {
	for {
		select {
		case event, ok := <-fw.watcher.Events:
			if !ok {
				return
			}
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				if fw.logger != nil {
					fw.logger.Debugw("Document file changed",
						"file", event.Name,
						"op", event.Op.String())
				}
				fw.scheduleReload()
			}

		case err, ok := <-fw.watcher.Errors:
			if !ok {
				return
			}
			if fw.logger != nil {
				fw.logger.Warnw("Document watcher error",
					"error", err)
			}
		}
	}
}

// scheduleReload debounces editor-style rapid write bursts.
func (fw *FileWatcher) scheduleReload() {
	fw.mu.Lock()
	defer fw.mu.Unlock()

	if fw.debounceTimer != nil {
		fw.debounceTimer.Stop()
	}

	fw.debounceTimer = time.AfterFunc(fw.debouncePeriod, func() {
		if err := fw.reload(); err != nil && fw.logger != nil {
			fw.logger.Errorw("Document reload failed",
				"file", fw.path,
				"error", err)
		}
	})
}

// reload decodes the file and notifies callbacks.
func (fw *FileWatcher) reload() error {
	data, err := os.ReadFile(fw.path)
	if err != nil {
		return errors.Wrapf(err, "failed to read document file %s", fw.path)
	}

	text := string(data)
	doc := document.FromWire(text)
	fp := sync.FingerprintText(text)

	if fw.logger != nil {
		fw.logger.Infow("Document reloaded from disk",
			"file", fw.path,
			"blocks", doc.Len(),
			"fingerprint", fp)
	}

	fw.mu.Lock()
	callbacks := make([]ChangeCallback, len(fw.callbacks))
	copy(callbacks, fw.callbacks)
	fw.mu.Unlock()

	for _, callback := range callbacks {
		callback(doc, fp)
	}
	return nil
}
