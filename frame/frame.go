// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package frame provides the single-goroutine frame loop that drives
// scene updates, and a queue through which other goroutines hand work
// to that loop so the scene graph is only ever mutated in one place.
package frame

import (
	"context"
	"sync"
	"time"
)

// Queue collects functions posted from any goroutine and runs them,
// in posting order, when Drain is called on the frame goroutine.
type Queue struct {
	mu      sync.Mutex
	pending []func()
}

// Post adds fn to the queue. It never blocks on the frame loop.
func (q *Queue) Post(fn func()) {
	if fn == nil {
		return
	}
	q.mu.Lock()
	q.pending = append(q.pending, fn)
	q.mu.Unlock()
}

// Len returns the number of functions waiting to run.
func (q *Queue) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return len(q.pending)
}

// Drain runs everything posted so far and returns the number of
// functions run. Functions posted while draining wait for the next Drain.
func (q *Queue) Drain() int {
	q.mu.Lock()
	fns := q.pending
	q.pending = nil
	q.mu.Unlock()
	for _, fn := range fns {
		fn()
	}
	return len(fns)
}

// Loop calls Frame once per tick until the context is done,
// MaxFrames frames have run, or Frame returns an error.
type Loop struct {

	// FPS is the target number of frames per second; 0 runs frames back to back.
	FPS int

	// MaxFrames stops the loop after that many frames; 0 means unbounded.
	MaxFrames int

	// Queue is drained at the start of every frame, before Frame is called.
	Queue *Queue

	// Frame is called with the zero-based frame index.
	Frame func(n int) error
}

// Run runs the loop on the calling goroutine. It returns nil when the
// context is canceled or MaxFrames is reached.
func (l *Loop) Run(ctx context.Context) error {
	var tick <-chan time.Time
	if l.FPS > 0 {
		tk := time.NewTicker(time.Second / time.Duration(l.FPS))
		defer tk.Stop()
		tick = tk.C
	}
	for n := 0; l.MaxFrames == 0 || n < l.MaxFrames; n++ {
		if ctx.Err() != nil {
			return nil
		}
		if tick != nil {
			select {
			case <-ctx.Done():
				return nil
			case <-tick:
			}
		}
		if l.Queue != nil {
			l.Queue.Drain()
		}
		if l.Frame == nil {
			continue
		}
		if err := l.Frame(n); err != nil {
			return err
		}
	}
	return nil
}
