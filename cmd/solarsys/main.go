// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command solarsys renders an animated solar system, headless, to
// image snapshots, with controls editable from a console or a
// watched TOML file.
package main

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"cogentcore.org/core/cli"
	"cogentcore.org/solarsys/solar"
)

// Config is the configuration for the solarsys command.
type Config struct {

	// Assets is the directory holding img/, models/ and assets/.
	// A leading ~ is expanded to the home directory.
	Assets string `default:"." flag:"a,assets"`

	// Width and Height are the initial viewport size in pixels.
	Width  int `default:"960"`
	Height int `default:"540"`

	// FPS is the target frame rate; 0 renders frames back to back.
	FPS int `default:"60" flag:"fps"`

	// Frames stops after that many frames; 0 runs until interrupted.
	Frames int `default:"0" flag:"n,frames"`

	// Seed seeds the meteorite field and spins.
	Seed int64 `default:"1"`

	// Workers is the maximum number of concurrent model loads.
	Workers int `default:"8"`

	// Snapshot is the image file written at exit; empty disables it.
	Snapshot string `default:"solarsys.png" flag:"o,snapshot"`

	// SnapshotEvery also writes Snapshot every that many frames.
	SnapshotEvery int `flag:"snapshot-every"`

	// Controls is a TOML controls file, created if missing and
	// applied whenever it is written.
	Controls string `flag:"c,controls"`

	// Catalog is a YAML catalog file replacing the standard system.
	// For the catalog command, it is the output file.
	Catalog string `default:"" flag:"catalog"`

	// Console reads control commands from standard input.
	Console bool `flag:"console"`

	// Stats prints the frame rate every second.
	Stats bool `flag:"stats"`

	// Debug enables debug logging.
	Debug bool `flag:"d,debug"`
}

func main() {
	opts := cli.DefaultOptions("solarsys", "An animated solar system renderer.")
	cli.Run(opts, &Config{},
		&cli.Cmd[*Config]{Func: Run, Name: "run", Doc: "Run renders the animated system.", Root: true},
		&cli.Cmd[*Config]{Func: Catalog, Name: "catalog", Doc: "Catalog writes the standard catalog as YAML."},
	)
}

// Run renders the animated system until interrupted, the console
// quits, or the configured number of frames have run.
func Run(c *Config) error {
	if c.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	a, err := newApp(c)
	if err != nil {
		return err
	}
	return a.run(ctx)
}

// Catalog writes the standard catalog to the catalog file,
// or to standard output.
func Catalog(c *Config) error {
	cat := solar.DefaultCatalog()
	if c.Catalog == "" {
		return cat.Write(os.Stdout)
	}
	return cat.Save(c.Catalog)
}
