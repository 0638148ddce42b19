// Command gbcore runs a ROM against the CPU core for a machine-cycle
// budget, reporting whether STOP was reached and printing any serial
// test-ROM output it captured. There is no display or input; this binary
// exists to exercise the core, the way the teacher's headless mode
// exercises its emulator.
package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"

	"github.com/urfave/cli"

	"github.com/kjhall/gbcore/internal/console"
)

func main() {
	app := cli.NewApp()
	app.Name = "gbcore"
	app.Description = "A cycle-counted Game Boy CPU core"
	app.Usage = "gbcore [options] <ROM file>"
	app.Version = "1.0.0"
	app.Flags = []cli.Flag{
		cli.StringFlag{
			Name:  "rom",
			Usage: "Path to the ROM file",
		},
		cli.IntFlag{
			Name:  "cycles",
			Usage: "Machine-cycle budget to run (required; the core has no frame clock to stop on)",
			Value: 0,
		},
		cli.BoolFlag{
			Name:  "trace",
			Usage: "Log every instruction executed",
		},
	}
	app.Action = run

	if err := app.Run(os.Args); err != nil {
		slog.Error("gbcore exiting", "error", err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	romPath := c.String("rom")
	if romPath == "" {
		if c.NArg() > 0 {
			romPath = c.Args().Get(0)
		} else {
			cli.ShowAppHelp(c)
			return errors.New("no ROM path provided")
		}
	}

	budget := c.Int("cycles")
	if budget <= 0 {
		return errors.New("gbcore requires --cycles with a positive machine-cycle budget")
	}

	data, err := os.ReadFile(romPath)
	if err != nil {
		return fmt.Errorf("reading ROM: %w", err)
	}

	co := console.New(nil)
	co.Trace = c.Bool("trace")
	if co.Trace {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}

	if err := co.LoadROM(data); err != nil {
		return fmt.Errorf("loading ROM: %w", err)
	}

	slog.Info("running", "rom", romPath, "cycles", budget)

	ran := co.RunCycles(uint64(budget))
	co.Serial.Flush()

	slog.Info("finished", "cycles_ran", ran, "stopped", co.Stopped())
	if out := co.Serial.String(); out != "" {
		fmt.Print(out)
	}

	return nil
}
