package fiber

import (
	"context"
	"fmt"
	"log"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/aydenstechdungeon/modalkit/config"
)

// DefaultDebounce is how long the watcher waits for writes to settle.
const DefaultDebounce = 100 * time.Millisecond

// WatchConfig reloads the server whenever the config file at path changes.
// It blocks until ctx is done. The parent directory is watched so editors
// that replace the file on save are handled.
func (s *Server) WatchConfig(ctx context.Context, path string, debounce time.Duration) error {
	return Watch(ctx, path, debounce, func(cfg config.Config) {
		s.Load(cfg)
	})
}

// Watch calls onChange with the freshly loaded config after each change to
// path. Files that fail to load are logged and skipped.
func Watch(ctx context.Context, path string, debounce time.Duration, onChange func(config.Config)) error {
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolving %s: %w", path, err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("creating watcher: %w", err)
	}
	defer watcher.Close()

	if err := watcher.Add(filepath.Dir(abs)); err != nil {
		return fmt.Errorf("watching %s: %w", filepath.Dir(abs), err)
	}
	log.Printf("Watching %s for changes", abs)

	reload := make(chan struct{}, 1)
	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != abs || event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounce, func() {
				select {
				case reload <- struct{}{}:
				default:
				}
			})
		case <-reload:
			cfg, err := config.Load(abs)
			if err != nil {
				log.Printf("Config reload failed: %v", err)
				continue
			}
			log.Printf("Config reloaded from %s", abs)
			onChange(cfg)
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			log.Println("watch error:", err)
		}
	}
}
