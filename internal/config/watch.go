package config

import (
	"path/filepath"

	"github.com/fsnotify/fsnotify"
)

// Watch re-reads the user config whenever the file changes on disk and
// delivers the result to onChange. Parse errors are skipped so a half-saved
// file never clobbers the running configuration. The watcher stops when the
// returned function is called.
func Watch(onChange func(*UserConfig)) (stop func(), err error) {
	path, err := ConfigPath()
	if err != nil {
		return nil, err
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}

	// Watch the directory, not the file: editors typically rename a temp
	// file over the original, which drops a file-level watch.
	if err := watcher.Add(filepath.Dir(path)); err != nil {
		_ = watcher.Close()
		return nil, err
	}

	go func() {
		for {
			select {
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Name != path {
					continue
				}
				if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
					continue
				}
				if cfg, err := LoadUserConfig(); err == nil {
					onChange(cfg)
				}
			case _, ok := <-watcher.Errors:
				if !ok {
					return
				}
			}
		}
	}()

	return func() { _ = watcher.Close() }, nil
}
