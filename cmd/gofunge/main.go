// Command gofunge runs a Befunge-93-family program on the concurrent
// interpreter in package engine, the way cmd/bbc-disasm wires urfave/cli
// subcommands around a decoding core.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/golang/glog"
	"github.com/urfave/cli/v2"

	"gofunge93/engine"
	"gofunge93/internal/ioport"
	"gofunge93/internal/loader"
)

func main() {
	app := &cli.App{
		Name:  "gofunge",
		Usage: "run a Befunge-93-family program",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "debug", Usage: "dump each IP's stack and the grid after every tick"},
			&cli.BoolFlag{Name: "step", Usage: "start in single-step mode, controlled from stdin"},
			&cli.BoolFlag{Name: "verbose", Usage: "log console I/O through glog in addition to the normal streams"},
		},
		ArgsUsage: "<path-to-program>",
		Action:    run,
	}

	if err := app.Run(os.Args); err != nil {
		glog.Flush()
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
	glog.Flush()
}

func run(c *cli.Context) error {
	path := c.Args().First()
	if path == "" {
		return cli.NewExitError("missing required program path", 1)
	}

	console := ioport.NewConsole(os.Stdin, os.Stdout, os.Stderr, c.Bool("verbose"))

	var l loader.FileLoader
	plane, err := l.Load(path)
	if err != nil {
		return cli.NewExitError(err.Error(), 1)
	}

	sched := engine.NewScheduler(plane, console, c.Bool("debug"))

	if c.Bool("step") {
		sched.EnableStep()
		go runStepREPL(sched)
	}

	sched.Run()
	return nil
}

// runStepREPL reads step-control commands from stdin: a bare line (or
// "s"/"step") releases one worker's next tick, and "q"/"quit" disables
// step mode so every live worker runs freely to completion, the way
// original_source/src/main.rs's own REPL loop calls disable_step_mode
// and then joins the run handle rather than killing the process, a
// pattern also seen in jyane-jnes/nes/debug_console.go's Step loop.
func runStepREPL(sched *engine.Scheduler) {
	rdr := bufio.NewScanner(os.Stdin)
	for rdr.Scan() {
		cmd := strings.TrimSpace(rdr.Text())
		switch cmd {
		case "q", "quit":
			sched.DisableStep()
			return
		default:
			sched.Step()
		}
	}
}
