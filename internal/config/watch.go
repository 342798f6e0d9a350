package config

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/fsnotify/fsnotify"
)

// ChangeFunc receives the game ID whose config file changed (file name
// without the .yaml extension).
type ChangeFunc func(game string)

// ErrorFunc receives watcher errors. It may be nil.
type ErrorFunc func(err error)

// Watch observes the given directories for config file changes and calls
// onChange until ctx is cancelled. Directories that do not exist are skipped;
// at least one must be watchable.
func Watch(ctx context.Context, dirs []string, onChange ChangeFunc, onError ErrorFunc) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("config: cannot create watcher: %w", err)
	}

	watched := 0
	for _, dir := range dirs {
		if dir == "" {
			continue
		}
		if info, statErr := os.Stat(dir); statErr != nil || !info.IsDir() {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("config: cannot watch %s: %w", dir, err)
		}
		watched++
	}
	if watched == 0 {
		watcher.Close()
		return fmt.Errorf("config: no config directory to watch in %v", dirs)
	}

	go func() {
		defer watcher.Close()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-watcher.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				if game, ok := gameFromPath(event.Name); ok {
					onChange(game)
				}
			case err, ok := <-watcher.Errors:
				if !ok {
					return
				}
				if onError != nil {
					onError(err)
				}
			}
		}
	}()

	return nil
}

// WatchDirs returns the directories Load* searches on disk.
func WatchDirs() []string {
	return []string{UserDir(), LocalDir}
}

func gameFromPath(path string) (string, bool) {
	base := filepath.Base(path)
	if !strings.HasSuffix(base, ".yaml") {
		return "", false
	}
	return strings.TrimSuffix(base, ".yaml"), true
}
