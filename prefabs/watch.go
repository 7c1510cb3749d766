package prefabs

import (
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

const debounce = 100 * time.Millisecond

// AssetKind tells which loader a changed file belongs to.
type AssetKind int

const (
	AssetWeapon AssetKind = iota
	AssetRange
	AssetScript
)

func (k AssetKind) String() string {
	switch k {
	case AssetWeapon:
		return "weapon"
	case AssetRange:
		return "range"
	case AssetScript:
		return "script"
	}
	return "unknown"
}

// Change is one debounced edit to a prefab file.
type Change struct {
	Path string
	Name string
	Kind AssetKind
}

type Watcher struct {
	watcher *fsnotify.Watcher
	Events  chan Change
	Errors  chan error
	closeCh chan struct{}
	done    chan struct{}
	once    sync.Once
}

// Watch follows the prefab folders of the library on disk.
func (l Library) Watch() (*Watcher, error) {
	var dirs []string
	for _, d := range []string{weaponsDir, rangesDir, scriptsDir} {
		dirs = append(dirs, filepath.Join(l.Dir, d))
	}
	return NewWatcher(dirs...)
}

// NewWatcher watches dirs. Missing folders are skipped unless none of them
// can be watched.
func NewWatcher(dirs ...string) (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	var added int
	var addErr error
	for _, dir := range dirs {
		if err := w.Add(dir); err != nil {
			addErr = err
			continue
		}
		added++
	}
	if added == 0 && addErr != nil {
		_ = w.Close()
		return nil, addErr
	}

	watcher := &Watcher{
		watcher: w,
		Events:  make(chan Change, 16),
		Errors:  make(chan error, 1),
		closeCh: make(chan struct{}),
		done:    make(chan struct{}),
	}
	go watcher.run()
	return watcher, nil
}

func (w *Watcher) Close() error {
	var err error
	w.once.Do(func() {
		close(w.closeCh)
		err = w.watcher.Close()
		<-w.done
		close(w.Events)
		close(w.Errors)
	})
	return err
}

func (w *Watcher) run() {
	defer close(w.done)
	last := make(map[string]time.Time)
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			change, ok := classify(event.Name)
			if !ok {
				continue
			}
			now := time.Now()
			if t, ok := last[event.Name]; ok && now.Sub(t) < debounce {
				continue
			}
			last[event.Name] = now
			select {
			case w.Events <- change:
			case <-w.closeCh:
				return
			}
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			select {
			case w.Errors <- err:
			default:
			}
		case <-w.closeCh:
			return
		}
	}
}

func classify(path string) (Change, bool) {
	c := Change{Path: path, Name: filepath.Base(path)}
	switch {
	case isScriptFile(path):
		c.Kind = AssetScript
	case isSpecFile(path) && filepath.Base(filepath.Dir(path)) == rangesDir:
		c.Kind = AssetRange
	case isSpecFile(path):
		c.Kind = AssetWeapon
	default:
		return Change{}, false
	}
	return c, true
}

func isSpecFile(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".yaml" || ext == ".yml"
}

func isScriptFile(path string) bool {
	return strings.ToLower(filepath.Ext(path)) == ".tengo"
}
