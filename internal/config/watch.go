package config

import (
	"path/filepath"

	"analogue-clock/internal/utils"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// Watcher re-reads the theme file whenever it changes and publishes the
// result on Updates. The render loop drains the channel between frames,
// so a stale update is simply replaced by the next one.
type Watcher struct {
	Updates <-chan Config

	fsw *fsnotify.Watcher
}

// Watch starts watching the theme file at path. The parent directory is
// watched rather than the file itself so editors that replace the file on
// save keep triggering events.
func Watch(path string) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(filepath.Dir(path)); err != nil {
		fsw.Close()
		return nil, err
	}

	updates := make(chan Config, 1)
	w := &Watcher{Updates: updates, fsw: fsw}

	go func() {
		defer close(updates)
		name := filepath.Base(path)
		for {
			select {
			case ev, ok := <-fsw.Events:
				if !ok {
					return
				}
				if filepath.Base(ev.Name) != name {
					continue
				}
				if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
					continue
				}
				cfg, err := Load(afero.NewOsFs(), path)
				if err != nil {
					utils.Warn("Theme reload skipped: %v", err)
					continue
				}
				// Replace any update the loop has not drained yet.
				select {
				case <-updates:
				default:
				}
				updates <- cfg
				utils.Info("Theme reloaded from %s", path)
			case err, ok := <-fsw.Errors:
				if !ok {
					return
				}
				utils.Warn("Theme watcher: %v", err)
			}
		}
	}()

	return w, nil
}

func (w *Watcher) Close() error { return w.fsw.Close() }
