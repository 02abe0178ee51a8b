package server

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"seo-pages-go/pkg/logger"
)

// Watcher reloads the catalog when the registry file changes. Bursts of
// events are coalesced into one reload after the debounce interval.
type Watcher struct {
	path       string
	cat        *Catalog
	watcher    *fsnotify.Watcher
	debounce   time.Duration
	reloadChan chan struct{}
	stopChan   chan struct{}
	stopOnce   sync.Once
	wg         sync.WaitGroup
	log        *logger.Logger

	// onReload is called after every reload attempt; tests hook it.
	onReload func(error)
}

func NewWatcher(path string, cat *Catalog, debounce time.Duration, log *logger.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	absPath, err := filepath.Abs(path)
	if err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to resolve pages path: %w", err)
	}
	if log == nil {
		log = logger.GetLogger()
	}
	return &Watcher{
		path:       absPath,
		cat:        cat,
		watcher:    fw,
		debounce:   debounce,
		reloadChan: make(chan struct{}, 1),
		stopChan:   make(chan struct{}),
		log:        log.WithField("component", "watcher"),
	}, nil
}

// Start watches the directory holding the registry file; atomic saves
// replace the file, so watching the file itself would lose track of it.
func (w *Watcher) Start(ctx context.Context) error {
	dir := filepath.Dir(w.path)
	if err := w.watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch directory %s: %w", dir, err)
	}
	w.log.WithField("path", w.path).Info("Watching pages file")

	w.wg.Add(2)
	go w.watchLoop(ctx)
	go w.reloadLoop(ctx)
	return nil
}

func (w *Watcher) Stop() error {
	var err error
	w.stopOnce.Do(func() {
		close(w.stopChan)
		err = w.watcher.Close()
		w.wg.Wait()
	})
	return err
}

func (w *Watcher) watchLoop(ctx context.Context) {
	defer w.wg.Done()
	name := filepath.Base(w.path)

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopChan:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != name {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) || event.Has(fsnotify.Rename) {
				w.log.WithField("op", event.Op.String()).Debug("Pages file changed")
				w.trigger()
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.log.WithError(err).Warn("File watcher error")
		}
	}
}

func (w *Watcher) reloadLoop(ctx context.Context) {
	defer w.wg.Done()
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.stopChan:
			if timer != nil {
				timer.Stop()
			}
			return
		case <-w.reloadChan:
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C
		case <-fire:
			fire = nil
			w.reload(ctx)
		}
	}
}

func (w *Watcher) trigger() {
	select {
	case w.reloadChan <- struct{}{}:
	default:
	}
}

func (w *Watcher) reload(ctx context.Context) {
	err := w.cat.Reload(ctx)
	if err != nil {
		w.log.WithError(err).Error("Reload failed, keeping previous pages")
	} else {
		w.log.WithField("pages", w.cat.Snapshot().Len()).Info("Pages reloaded")
	}
	if w.onReload != nil {
		w.onReload(err)
	}
}
