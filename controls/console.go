// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package controls

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"cogentcore.org/solarsys/frame"
	"github.com/mattn/go-shellwords"
	"github.com/muesli/termenv"
)

// Console edits a [Panel] from text commands, one per line.
type Console struct {
	Panel *Panel

	// Queue receives each command so that it runs on the frame goroutine.
	// When nil, commands run on the reading goroutine.
	Queue *frame.Queue

	// OnResize is called for "resize W H".
	OnResize func(w, h int)

	// OnQuit is called for "quit".
	OnQuit func()

	out *termenv.Output
	w   io.Writer
}

// NewConsole returns a console writing replies to w.
func NewConsole(p *Panel, q *frame.Queue, w io.Writer) *Console {
	return &Console{Panel: p, Queue: q, w: w, out: termenv.NewOutput(w)}
}

const consoleHelp = `commands:
  set NAME VALUE   set a control
  get NAME         show a control
  list             show all controls
  reset            restore initial values
  resize W H       resize the viewport
  save FILE        write controls as TOML
  help             show this help
  quit             stop`

// Run reads commands from r until EOF or ctx is done.
func (c *Console) Run(ctx context.Context, r io.Reader) error {
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		if ctx.Err() != nil {
			return nil
		}
		line := sc.Text()
		if c.Queue == nil {
			c.Exec(line)
			continue
		}
		c.Queue.Post(func() { c.Exec(line) })
	}
	return sc.Err()
}

// Exec runs one command line, printing the reply.
func (c *Console) Exec(line string) error {
	args, err := shellwords.Parse(line)
	if err != nil {
		return c.fail(err)
	}
	if len(args) == 0 {
		return nil
	}
	switch args[0] {
	case "set":
		if len(args) != 3 {
			return c.fail(fmt.Errorf("usage: set NAME VALUE"))
		}
		if err := c.Panel.Set(args[1], args[2]); err != nil {
			return c.fail(err)
		}
		v, _ := c.Panel.Get(args[1])
		c.ok(args[1] + " = " + v)
	case "get":
		if len(args) != 2 {
			return c.fail(fmt.Errorf("usage: get NAME"))
		}
		v, err := c.Panel.Get(args[1])
		if err != nil {
			return c.fail(err)
		}
		c.ok(args[1] + " = " + v)
	case "list":
		for _, f := range c.Panel.Fields() {
			fmt.Fprintln(c.w, f.String())
		}
	case "reset":
		ch := c.Panel.Reset()
		c.ok("reset " + strings.Join(ch, ", "))
	case "resize":
		if len(args) != 3 {
			return c.fail(fmt.Errorf("usage: resize W H"))
		}
		w, err := strconv.Atoi(args[1])
		if err != nil {
			return c.fail(err)
		}
		h, err := strconv.Atoi(args[2])
		if err != nil {
			return c.fail(err)
		}
		if c.OnResize != nil {
			c.OnResize(w, h)
		}
		c.ok(fmt.Sprintf("size %dx%d", w, h))
	case "save":
		if len(args) != 2 {
			return c.fail(fmt.Errorf("usage: save FILE"))
		}
		if err := c.Panel.State.Save(args[1]); err != nil {
			return c.fail(err)
		}
		c.ok("saved " + args[1])
	case "help":
		fmt.Fprintln(c.w, consoleHelp)
	case "quit", "exit":
		if c.OnQuit != nil {
			c.OnQuit()
		}
	default:
		return c.fail(fmt.Errorf("unknown command %q, try help", args[0]))
	}
	return nil
}

func (c *Console) ok(msg string) {
	fmt.Fprintln(c.w, c.out.String(msg).Foreground(c.out.Color("2")))
}

func (c *Console) fail(err error) error {
	fmt.Fprintln(c.w, c.out.String(err.Error()).Foreground(c.out.Color("1")))
	return err
}
