// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package stats reports frame rate statistics on a terminal.
package stats

import (
	"fmt"
	"io"
	"time"

	"github.com/muesli/termenv"
)

// Meter counts frames and reports the frame rate once per Interval.
type Meter struct {

	// Interval between reports.
	Interval time.Duration

	// Now returns the current time; defaults to [time.Now].
	Now func() time.Time

	frames int
	total  int
	start  time.Time
	fps    float64
	out    *termenv.Output
	w      io.Writer
}

// NewMeter returns a meter writing reports to w every interval.
// A nil w disables reports.
func NewMeter(w io.Writer, interval time.Duration) *Meter {
	m := &Meter{Interval: interval, Now: time.Now, w: w}
	if w != nil {
		m.out = termenv.NewOutput(w)
	}
	return m
}

// Tick records one frame.
func (m *Meter) Tick() {
	now := m.Now()
	if m.start.IsZero() {
		m.start = now
	}
	m.frames++
	m.total++
	el := now.Sub(m.start)
	if el < m.Interval || el <= 0 {
		return
	}
	m.fps = float64(m.frames) / el.Seconds()
	m.frames = 0
	m.start = now
	m.report()
}

// FPS returns the frame rate over the last complete interval.
func (m *Meter) FPS() float64 {
	return m.fps
}

// Frames returns the total number of frames recorded.
func (m *Meter) Frames() int {
	return m.total
}

func (m *Meter) report() {
	if m.w == nil {
		return
	}
	clr := "1"
	switch {
	case m.fps >= 50:
		clr = "2"
	case m.fps >= 30:
		clr = "3"
	}
	fps := m.out.String(fmt.Sprintf("%5.1f", m.fps)).Foreground(m.out.Color(clr)).Bold()
	fmt.Fprintf(m.w, "fps %s  frames %d\n", fps, m.total)
}
