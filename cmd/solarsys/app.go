// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"context"
	"errors"
	"image"
	"io/fs"
	"log/slog"
	"os"
	"time"

	"cogentcore.org/lab/base/randx"
	"cogentcore.org/solarsys/controls"
	"cogentcore.org/solarsys/frame"
	"cogentcore.org/solarsys/loader"
	"cogentcore.org/solarsys/render"
	"cogentcore.org/solarsys/scene"
	"cogentcore.org/solarsys/solar"
	"cogentcore.org/solarsys/stats"
	"github.com/mitchellh/go-homedir"
)

// app holds everything one run needs.
type app struct {
	cfg      *Config
	queue    *frame.Queue
	state    *controls.State
	panel    *controls.Panel
	scene    *scene.Scene
	sys      *solar.System
	anim     *solar.Animator
	raster   *render.Raster
	viewport *render.Viewport
	loader   *loader.Loader
	meter    *stats.Meter
}

func newApp(c *Config) (*app, error) {
	assets, err := homedir.Expand(c.Assets)
	if err != nil {
		return nil, err
	}
	cat := solar.DefaultCatalog()
	if c.Catalog != "" {
		if cat, err = solar.OpenCatalog(c.Catalog); err != nil {
			return nil, err
		}
	}

	a := &app{cfg: c, queue: &frame.Queue{}, state: controls.NewState()}
	if c.Controls != "" {
		err := a.state.Open(c.Controls)
		switch {
		case errors.Is(err, fs.ErrNotExist):
			if err := a.state.Save(c.Controls); err != nil {
				return nil, err
			}
		case err != nil:
			return nil, err
		}
	}
	a.panel = controls.NewPanel(a.state)

	a.scene = scene.NewScene("solarsys")
	a.sys = solar.Build(a.scene, cat, assets, a.state)
	a.sys.Bind(a.panel)
	a.anim = solar.NewAnimator(a.sys, c.Seed)

	a.raster = render.NewRaster(image.Pt(c.Width, c.Height))
	a.viewport = &render.Viewport{Engine: a.raster, Camera: &a.scene.Camera}
	a.viewport.Resize(c.Width, c.Height)

	a.loader = loader.NewLoader(a.queue, c.Workers)
	a.sys.LoadScripted(a.loader, randx.NewSysRand(c.Seed))

	a.meter = stats.NewMeter(nil, time.Second)
	if c.Stats {
		a.meter = stats.NewMeter(os.Stdout, time.Second)
	}
	return a, nil
}

// run starts the background watchers and runs the frame loop.
func (a *app) run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	if a.cfg.Controls != "" {
		w := &controls.Watcher{File: a.cfg.Controls, Panel: a.panel, Queue: a.queue}
		go func() {
			if err := w.Run(ctx); err != nil {
				slog.Error("controls watcher stopped", "file", a.cfg.Controls, "error", err)
			}
		}()
	}
	if a.cfg.Console {
		con := controls.NewConsole(a.panel, a.queue, os.Stdout)
		con.OnResize = a.viewport.Resize
		con.OnQuit = cancel
		go func() {
			if err := con.Run(ctx, os.Stdin); err != nil {
				slog.Error("console stopped", "error", err)
			}
		}()
	}

	loop := &frame.Loop{FPS: a.cfg.FPS, MaxFrames: a.cfg.Frames, Queue: a.queue, Frame: a.frame}
	err := loop.Run(ctx)
	if a.cfg.Snapshot != "" && a.raster.Frames > 0 {
		if serr := a.raster.Save(a.cfg.Snapshot); serr != nil && err == nil {
			err = serr
		}
	}
	slog.Info("solarsys: done", "frames", a.meter.Frames())
	return err
}

// frame advances and renders one frame.
func (a *app) frame(n int) error {
	a.anim.Step(a.state)
	if err := a.raster.Render(a.scene); err != nil {
		return err
	}
	a.meter.Tick()
	if every := a.cfg.SnapshotEvery; every > 0 && a.cfg.Snapshot != "" && (n+1)%every == 0 {
		return a.raster.Save(a.cfg.Snapshot)
	}
	return nil
}
