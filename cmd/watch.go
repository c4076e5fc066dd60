package cmd

import (
	"context"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var watchCmd = &cobra.Command{
	Use:   "watch <path.yaml>",
	Short: "Re-solve a YAML equation system every time the file changes",
	Run: func(cmd *cobra.Command, args []string) {
		if len(args) != 1 {
			logger.Fatal("watch takes exactly one file path")
		}
		if err := runWatch(args[0]); err != nil {
			logger.Fatal("watch failed", zap.Error(err))
		}
	},
}

// runWatch mirrors the teacher's fsnotify-driven watch loop
// (internal/watch.go's StartWatching/watchLoop/handleFileEvent): watch the
// containing directory (fsnotify has no single-file watch primitive), and on
// every write event for the file wait 100ms, then re-solve. Bursts of writes
// are not coalesced: each write event leads to its own re-solve.
func runWatch(path string) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	if err := solveFile(ctx, path); err != nil {
		logger.Error("initial solve failed", zap.Error(err))
	}

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if event.Op&fsnotify.Write != fsnotify.Write {
				continue
			}
			if filepath.Clean(event.Name) != filepath.Clean(path) {
				continue
			}
			if !strings.HasSuffix(event.Name, ".yaml") && !strings.HasSuffix(event.Name, ".yml") {
				continue
			}
			time.Sleep(100 * time.Millisecond)
			if err := solveFile(ctx, path); err != nil {
				logger.Error("re-solve failed", zap.Error(err))
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher error", zap.Error(err))
		case <-ctx.Done():
			return ctx.Err()
		}
	}
}
