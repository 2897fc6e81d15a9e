// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"

	"cogentcore.org/solarsys/frame"
	"github.com/fsnotify/fsnotify"
)

// Watcher applies edits of a TOML controls file to a [Panel].
type Watcher struct {
	File  string
	Panel *Panel
	Queue *frame.Queue

	// Ready, when non-nil, is closed once the file is being watched.
	Ready chan struct{}
}

// Run watches the directory of File until ctx is done. Every write or
// create of File is decoded on the watching goroutine and the changed
// fields are applied on the frame goroutine through Queue.
func (w *Watcher) Run(ctx context.Context) error {
	abs, err := filepath.Abs(w.File)
	if err != nil {
		return err
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer fw.Close()
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		return err
	}
	if w.Ready != nil {
		close(w.Ready)
	}
	for {
		select {
		case <-ctx.Done():
			return nil
		case ev, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(ev.Name) != abs || !(ev.Has(fsnotify.Write) || ev.Has(fsnotify.Create)) {
				continue
			}
			w.reload(abs)
		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			slog.Error("controls.Watcher", "file", abs, "error", err)
		}
	}
}

func (w *Watcher) reload(file string) {
	if fi, err := os.Stat(file); err != nil || fi.Size() == 0 {
		return
	}
	next := NewState()
	if err := next.Open(file); err != nil {
		// partial writes are common; the next event retries
		slog.Debug("controls.Watcher: decode", "file", file, "error", err)
		return
	}
	w.Queue.Post(func() {
		if ch := w.Panel.Apply(next); len(ch) > 0 {
			slog.Info("controls changed", "file", file, "fields", ch)
		}
	})
}
