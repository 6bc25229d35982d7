// Package watcher reports debounced changes to HCL configuration files.
package watcher

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is used when Config.Debounce is zero.
const DefaultDebounce = 250 * time.Millisecond

// Config holds watcher configuration options.
type Config struct {
	// Paths are .hcl files or directories, as given to the config loader.
	Paths     []string
	Extension string
	Debounce  time.Duration
}

// Watcher monitors configuration files and signals when any of them change.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	ext       string
	debounce  time.Duration
	files     map[string]struct{} // explicitly watched files
	dirs      map[string]struct{} // directories whose matching files count
	onChange  chan struct{}
	errs      chan error
	done      chan struct{}
}

// New creates a watcher over cfg.Paths. Missing paths are skipped, the same
// way the loader skips them.
func New(cfg Config) (*Watcher, error) {
	if cfg.Extension == "" {
		cfg.Extension = ".hcl"
	}
	if cfg.Debounce <= 0 {
		cfg.Debounce = DefaultDebounce
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating fsnotify watcher: %w", err)
	}

	w := &Watcher{
		fsWatcher: fsw,
		ext:       cfg.Extension,
		debounce:  cfg.Debounce,
		files:     make(map[string]struct{}),
		dirs:      make(map[string]struct{}),
		onChange:  make(chan struct{}, 1),
		errs:      make(chan error, 1),
		done:      make(chan struct{}),
	}
	for _, p := range cfg.Paths {
		if err := w.add(p); err != nil {
			_ = fsw.Close()
			return nil, err
		}
	}
	return w, nil
}

func (w *Watcher) add(p string) error {
	abs, err := filepath.Abs(p)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", p, err)
	}
	info, err := os.Stat(abs)
	if os.IsNotExist(err) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("stat %s: %w", p, err)
	}

	if !info.IsDir() {
		w.files[abs] = struct{}{}
		return w.watchDir(filepath.Dir(abs), false)
	}
	return filepath.WalkDir(abs, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return w.watchDir(path, true)
		}
		return nil
	})
}

func (w *Watcher) watchDir(dir string, recursive bool) error {
	if recursive {
		w.dirs[dir] = struct{}{}
	}
	if err := w.fsWatcher.Add(dir); err != nil {
		return fmt.Errorf("watching directory %s: %w", dir, err)
	}
	return nil
}

// Start begins watching. The returned channel receives a signal once per
// burst of changes.
func (w *Watcher) Start() <-chan struct{} {
	go w.loop()
	return w.onChange
}

// Errors carries watcher failures. Only the most recent unread error is kept.
func (w *Watcher) Errors() <-chan error {
	return w.errs
}

// Stop terminates the watcher and releases resources.
func (w *Watcher) Stop() error {
	close(w.done)
	return w.fsWatcher.Close()
}

func (w *Watcher) loop() {
	var timer *time.Timer
	var timerC <-chan time.Time

	for {
		select {
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if event.Has(fsnotify.Create) {
				// New subdirectories of a watched tree are watched too.
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					if _, ok := w.dirs[filepath.Dir(event.Name)]; ok {
						_ = w.add(event.Name)
					}
					continue
				}
			}
			if !w.isRelevantEvent(event) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
			} else {
				timer.Reset(w.debounce)
			}
			timerC = timer.C

		case <-timerC:
			timerC = nil
			select {
			case w.onChange <- struct{}{}:
			default:
			}

		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			select {
			case w.errs <- err:
			default:
			}

		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		}
	}
}

// isRelevantEvent reports whether event touches a watched configuration file.
func (w *Watcher) isRelevantEvent(event fsnotify.Event) bool {
	if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
		return false
	}
	name := filepath.Clean(event.Name)
	if _, ok := w.files[name]; ok {
		return true
	}
	if !strings.HasSuffix(name, w.ext) {
		return false
	}
	_, ok := w.dirs[filepath.Dir(name)]
	return ok
}
