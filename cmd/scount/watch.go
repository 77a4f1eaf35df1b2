package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/raven-computing/reckon/internal/debug"
)

// watchAndRecount re-runs runCount whenever a file changes under root.
// This is a CLI-only feature: the library's statistics coordinator
// remains a one-shot, non-watching API. It returns once ctx is
// cancelled, giving callers (and tests) a clean way to stop the watch
// loop.
func watchAndRecount(ctx context.Context, root string, stdout, stderr io.Writer, log *debug.Logger, runCount func() error) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("scount: failed to start watcher: %w", err)
	}
	defer watcher.Close()

	if err := addWatchRecursive(watcher, root); err != nil {
		return err
	}

	if err := runCount(); err != nil {
		fmt.Fprintln(stderr, err)
	}

	debounce := time.NewTimer(0)
	if !debounce.Stop() {
		<-debounce.C
	}
	pending := false

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			log.Log("watch", "event %s on %s", event.Op, event.Name)
			if event.Op&fsnotify.Create != 0 {
				if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
					watcher.Add(event.Name)
				}
			}
			if !pending {
				pending = true
				debounce.Reset(200 * time.Millisecond)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			fmt.Fprintln(stderr, "scount: watch error:", err)
		case <-debounce.C:
			pending = false
			if err := runCount(); err != nil {
				fmt.Fprintln(stderr, err)
			}
		}
	}
}

func addWatchRecursive(watcher *fsnotify.Watcher, root string) error {
	return filepath.Walk(root, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return nil
		}
		if info.IsDir() {
			return watcher.Add(path)
		}
		return nil
	})
}
