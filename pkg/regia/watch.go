package regia

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/tlasser/regia/pkg/core"
	"github.com/tlasser/regia/pkg/db"
)

// debounceWindow coalesces the create/write/rename burst a single atomic
// save produces into one reload.
const debounceWindow = 50 * time.Millisecond

// Watch reloads the database and invokes onChange whenever the file at the
// service's path is rewritten, until ctx is done. The containing directory
// is watched rather than the file itself, since saves replace the file by
// rename.
func (s *Service) Watch(ctx context.Context, onChange func(*db.Database)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(s.path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}
	base := filepath.Base(s.path)

	timer := time.NewTimer(debounceWindow)
	if !timer.Stop() {
		<-timer.C
	}
	pending := false

	s.logger.Debug("watching database", "path", s.path)

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != base {
				continue
			}
			if !event.Has(fsnotify.Create) && !event.Has(fsnotify.Write) && !event.Has(fsnotify.Rename) {
				continue
			}
			if pending && !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			pending = true
			timer.Reset(debounceWindow)

		case <-timer.C:
			if !pending {
				continue
			}
			pending = false

			database, err := db.Load(s.path)
			if err != nil {
				if errors.Is(err, core.ErrNotFound) {
					database = db.New()
				} else {
					// A bad write should not kill the watch.
					s.logger.Debug("reload failed", "error", err)
					continue
				}
			}
			s.db = database
			onChange(database)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			return fmt.Errorf("watcher error: %w", err)
		}
	}
}
