// Command sweetrt is a demo driver for the runtime library. It stands in for
// compiler-generated code: a small hand-written program that exercises every
// runtime primitive, with flags for the knobs the library exposes.
package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"

	"github.com/sweet-lang/sweetrt"
	"github.com/sweet-lang/sweetrt/internal/debug"
)

func main() {
	app := &cli.App{
		Name:  "sweetrt",
		Usage: "echo stdin lines through the sweet runtime",
		Flags: []cli.Flag{
			&cli.IntFlag{
				Name:  "block-size",
				Usage: "arena block capacity in bytes (0 for the default)",
			},
			&cli.BoolFlag{
				Name:  "debug",
				Usage: "log runtime diagnostics to stderr",
			},
			&cli.BoolFlag{
				Name:  "stats",
				Usage: "print arena metrics to stderr before teardown",
			},
		},
		Action: run,
	}
	if err := app.Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.Bool("debug") {
		debug.Enable()
	}

	arena := sweetrt.NewArena(c.Int("block-size"))
	rt := sweetrt.NewRuntime(arena, nil, nil)

	arena.Init()
	program(rt)
	if c.Bool("stats") {
		m := arena.Metrics()
		fmt.Fprintf(os.Stderr, "arena: %d/%d bytes in %d blocks (%.1f%% utilized)\n",
			m.BytesInUse, m.Capacity, m.NumBlocks, m.Utilization*100)
	}
	arena.Teardown()
	return nil
}

// program plays the role of the generated entry function: it numbers and
// echoes lines until end-of-stream or the quit word.
func program(rt *sweetrt.Runtime) {
	a := rt.Arena()
	rt.PrintStr(sweetrt.NewStr(a, "sweetrt demo: type lines, \"quit\" stops\n"))

	quit := sweetrt.NewStr(a, "quit")
	sep := sweetrt.NewStr(a, ": ")
	nl := sweetrt.NewStr(a, "\n")

	var n int64
	for {
		line, ok := rt.ReadLine()
		if !ok {
			break
		}
		if sweetrt.EqualStr(line, quit) {
			break
		}
		n++
		rt.PrintInt(n)
		rt.PrintStr(sep)
		rt.PrintStr(line)
		rt.PrintStr(nl)
	}
}
