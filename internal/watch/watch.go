// Package watch wraps fsnotify for the translator's watch mode, which
// re-translates input files whenever they change on disk.
package watch

import (
	"strings"

	"github.com/fsnotify/fsnotify"
)

// Op is a bit set of file operations observed on a watched path.
type Op uint8

const (
	OpCreate Op = 1 << iota
	OpWrite
	OpRemove
	OpRename
	OpChmod
)

// Has returns true if o contains all operations in mask.
func (o Op) Has(mask Op) bool { return o&mask == mask }

// String returns a "|"-joined list of the operations in o.
func (o Op) String() string {
	var names []string
	if o.Has(OpCreate) {
		names = append(names, "CREATE")
	}
	if o.Has(OpWrite) {
		names = append(names, "WRITE")
	}
	if o.Has(OpRemove) {
		names = append(names, "REMOVE")
	}
	if o.Has(OpRename) {
		names = append(names, "RENAME")
	}
	if o.Has(OpChmod) {
		names = append(names, "CHMOD")
	}
	if len(names) == 0 {
		return "NONE"
	}
	return strings.Join(names, "|")
}

// Event describes a change to a watched path.
type Event struct {
	Path string
	Op   Op
}

// Watcher delivers file change events using OS-native notifications.
type Watcher struct {
	w   *fsnotify.Watcher
	evC chan Event
	erC chan error
}

// New creates a Watcher and starts its delivery loop.
func New() (*Watcher, error) {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	fw := &Watcher{w: w, evC: make(chan Event, 128), erC: make(chan error, 1)}
	go fw.loop()
	return fw, nil
}

func (fw *Watcher) loop() {
	for {
		select {
		case ev, ok := <-fw.w.Events:
			if !ok {
				close(fw.evC)
				return
			}
			fw.evC <- Event{Path: ev.Name, Op: mapOp(ev.Op)}
		case err, ok := <-fw.w.Errors:
			if !ok {
				return
			}
			fw.erC <- err
		}
	}
}

// mapOp converts fsnotify's operation bits to this package's Op.
func mapOp(op fsnotify.Op) Op {
	var out Op
	if op&fsnotify.Create != 0 {
		out |= OpCreate
	}
	if op&fsnotify.Write != 0 {
		out |= OpWrite
	}
	if op&fsnotify.Remove != 0 {
		out |= OpRemove
	}
	if op&fsnotify.Rename != 0 {
		out |= OpRename
	}
	if op&fsnotify.Chmod != 0 {
		out |= OpChmod
	}
	return out
}

// Events returns the channel of watched-path changes.
func (fw *Watcher) Events() <-chan Event { return fw.evC }

// Errors returns the channel of watcher errors.
func (fw *Watcher) Errors() <-chan error { return fw.erC }

// Add starts watching the named path.
func (fw *Watcher) Add(name string) error { return fw.w.Add(name) }

// Remove stops watching the named path.
func (fw *Watcher) Remove(name string) error { return fw.w.Remove(name) }

// Close stops the watcher and its delivery loop.
func (fw *Watcher) Close() error { return fw.w.Close() }
