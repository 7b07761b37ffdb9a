package backdrop

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long a file must stay quiet before it is re-read.
const DefaultDebounce = 100 * time.Millisecond

// Watcher re-reads an imported image whenever its file changes on disk.
// Callbacks run on the watcher goroutine.
type Watcher struct {
	watcher  *fsnotify.Watcher
	path     string
	delay    time.Duration
	onReload func(*Image)
	onError  func(error)
	closeCh  chan struct{}
	done     chan struct{}
	once     sync.Once
}

// NewWatcher watches path. The parent directory is watched rather than the
// file itself so editors that replace the file on save keep working.
func NewWatcher(path string, onReload func(*Image), onError func(error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		_ = fw.Close()
		return nil, fmt.Errorf("watch %s: %w", path, err)
	}

	if onError == nil {
		onError = func(error) {}
	}
	w := &Watcher{
		watcher:  fw,
		path:     abs,
		delay:    DefaultDebounce,
		onReload: onReload,
		onError:  onError,
		closeCh:  make(chan struct{}),
		done:     make(chan struct{}),
	}
	go w.run()
	return w, nil
}

// Path returns the watched file.
func (w *Watcher) Path() string { return w.path }

// Close stops watching. It is safe to call more than once.
func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)

	var timer *time.Timer
	var fire <-chan time.Time
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.delay)
			} else {
				timer.Reset(w.delay)
			}
			fire = timer.C
		case <-fire:
			fire = nil
			img, err := ReadFile(w.path)
			if err != nil {
				w.onError(err)
				continue
			}
			if w.onReload != nil {
				w.onReload(img)
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.onError(err)
		case <-w.closeCh:
			return
		}
	}
}
