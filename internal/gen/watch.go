package gen

import (
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceDelay coalesces the burst of events editors emit on save.
const debounceDelay = 500 * time.Millisecond

// Watcher keeps the asset set in sync with the source SVG, regenerating the
// full set on every change.
type Watcher struct {
	srcPath string
	outDir  string
	fs      *fsnotify.Watcher
}

// NewWatcher creates a watcher for the source at srcPath writing assets to
// outDir. It watches the source's directory rather than the file itself:
// editors that save via rename would otherwise drop the watch.
func NewWatcher(srcPath, outDir string) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch: %w", err)
	}
	dir := filepath.Dir(srcPath)
	if err := fs.Add(dir); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}
	return &Watcher{srcPath: srcPath, outDir: outDir, fs: fs}, nil
}

// Run performs one initial generation, then regenerates whenever the source
// file is written, created or renamed, until Close is called. Per-run
// failures are logged and do not stop the loop.
func (w *Watcher) Run() error {
	w.regenerate()

	var debounce *time.Timer
	defer func() {
		if debounce != nil {
			debounce.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.fs.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(w.srcPath) {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, w.regenerate)
		case err, ok := <-w.fs.Errors:
			if !ok {
				return nil
			}
			log.Printf("watch: %v", err)
		}
	}
}

// Close stops the watcher; a blocked Run returns once pending events drain.
func (w *Watcher) Close() error {
	return w.fs.Close()
}

func (w *Watcher) regenerate() {
	if err := Generate(w.srcPath, w.outDir); err != nil {
		log.Printf("generate: %v", err)
		return
	}
	log.Printf("assets regenerated from %s", w.srcPath)
}
