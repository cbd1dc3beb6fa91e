package actions

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"

	"classtree.dev/classtree/internal/runtime"
	"classtree.dev/classtree/internal/treefile"
)

// WatchOptions contains options for the watch command
type WatchOptions struct {
	// Debounce is how long rapid saves are batched before reloading
	Debounce time.Duration

	// Logger receives the event trace; nil disables it
	Logger *zap.Logger
}

// WatchAction re-renders the tree whenever the document changes on disk.
// It blocks until the context is canceled.
func WatchAction(ctx context.Context, rtx *runtime.Context, opts WatchOptions) error {
	console := rtx.Console

	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = 500 * time.Millisecond
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to start watcher: %w", err)
	}
	defer watcher.Close()

	// Watch the directory; editors replace the file on save, which would
	// silently drop a watch on the file itself.
	dir := filepath.Dir(rtx.TreePath)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("failed to watch %s: %w", dir, err)
	}

	console.Info("Watching %s for changes. Press Ctrl+C to stop.", rtx.TreePath)
	renderTree(rtx)

	timer := time.NewTimer(debounce)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != filepath.Clean(rtx.TreePath) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename|fsnotify.Remove) == 0 {
				continue
			}

			logger.Debug("tree document event",
				zap.String("op", event.Op.String()),
				zap.String("path", event.Name))

			// Debounce rapid saves
			if !timer.Stop() {
				select {
				case <-timer.C:
				default:
				}
			}
			timer.Reset(debounce)

		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watcher error", zap.Error(err))
			console.Warn("Watcher error: %v", err)

		case <-timer.C:
			root, err := treefile.Load(rtx.TreePath)
			if err != nil {
				console.Warn("Failed to reload %s: %v", rtx.TreePath, err)
				continue
			}
			if rtx.Swap(root) {
				logger.Info("tree document reloaded", zap.String("path", rtx.TreePath))
				console.Info("Tree document changed on disk.")
				renderTree(rtx)
			}
		}
	}
}
