// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package loader loads external model files into detached scene groups
// in the background. Every callback is delivered through a
// [frame.Queue], so callers see completions on the frame goroutine and
// never concurrently with scene updates.
package loader

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"sync"

	"cogentcore.org/solarsys/frame"
	"cogentcore.org/solarsys/scene"
	"golang.org/x/sync/semaphore"
)

// Callbacks are the three completion hooks of a load request; any may be nil.
type Callbacks struct {

	// OnLoad receives the loaded model, not yet attached to any parent.
	OnLoad func(model *scene.Group)

	// OnProgress receives the fraction of the file read so far, in [0, 1].
	OnProgress func(fraction float64)

	// OnError receives the load failure.
	OnError func(err error)
}

// Loader runs model loads in background goroutines, with at most
// Workers file reads and parses in flight at once. Loads are never
// retried or canceled, and no timeout is applied.
type Loader struct {

	// Queue receives all callbacks.
	Queue *frame.Queue

	sem *semaphore.Weighted
	wg  sync.WaitGroup
}

// NewLoader returns a loader delivering callbacks to q.
func NewLoader(q *frame.Queue, workers int) *Loader {
	if workers < 1 {
		workers = 1
	}
	return &Loader{Queue: q, sem: semaphore.NewWeighted(int64(workers))}
}

// Load requests the model at path and returns immediately.
func (ld *Loader) Load(path string, cb Callbacks) {
	ld.wg.Add(1)
	go func() {
		defer ld.wg.Done()
		if err := ld.sem.Acquire(context.Background(), 1); err != nil {
			return
		}
		defer ld.sem.Release(1)
		model, err := ld.safeLoad(path, cb.OnProgress)
		if err != nil {
			slog.Error("loader: model load failed", "file", path, "error", err)
			if cb.OnError != nil {
				ld.Queue.Post(func() { cb.OnError(err) })
			}
			return
		}
		slog.Debug("loader: model loaded", "file", path, "solids", len(model.Children()))
		if cb.OnLoad != nil {
			ld.Queue.Post(func() { cb.OnLoad(model) })
		}
	}()
}

// Wait blocks until every requested load has finished and posted its
// callbacks; it does not drain the queue.
func (ld *Loader) Wait() {
	ld.wg.Wait()
}

// safeLoad runs load, turning a decoder panic into an error.
func (ld *Loader) safeLoad(path string, progress func(float64)) (model *scene.Group, err error) {
	defer func() {
		if r := recover(); r != nil {
			model, err = nil, fmt.Errorf("loader: %s: panic while decoding: %v", path, r)
		}
	}()
	return ld.load(path, progress)
}

func (ld *Loader) load(path string, progress func(float64)) (*scene.Group, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var size int64
	if st, err := f.Stat(); err == nil {
		size = st.Size()
	}
	pr := &progressReader{r: f, total: size}
	if progress != nil {
		pr.report = func(frac float64) {
			ld.Queue.Post(func() { progress(frac) })
		}
	}
	data, err := io.ReadAll(pr)
	if err != nil {
		return nil, err
	}
	pr.finish()

	switch format := Detect(data, path); format {
	case OBJ:
		return ReadOBJ(bytes.NewReader(data), modelName(path))
	case GLB:
		return ReadGLB(bytes.NewReader(data), modelName(path))
	case GLTF:
		return OpenGLTF(path)
	default:
		return nil, fmt.Errorf("loader: %s: unrecognized model format", path)
	}
}

// progressReader reports the fraction read each time it grows by at
// least a tenth.
type progressReader struct {
	r      io.Reader
	total  int64
	read   int64
	last   float64
	report func(float64)
}

func (pr *progressReader) Read(p []byte) (int, error) {
	n, err := pr.r.Read(p)
	pr.read += int64(n)
	if pr.report != nil && pr.total > 0 {
		frac := float64(pr.read) / float64(pr.total)
		if frac > 1 {
			frac = 1
		}
		if frac-pr.last >= 0.1 && frac < 1 {
			pr.last = frac
			pr.report(frac)
		}
	}
	return n, err
}

func (pr *progressReader) finish() {
	if pr.report != nil {
		pr.report(1)
	}
}
