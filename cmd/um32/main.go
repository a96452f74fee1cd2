// Command um32 runs a UM-32 Universal Machine program image.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/davecgh/go-spew/spew"
	"github.com/sirupsen/logrus"
	"github.com/urfave/cli/v2"

	"github.com/cammcgurer/um32/pkg/vm"
)

func main() {
	app := &cli.App{
		Name:      "um32",
		Usage:     "run a UM-32 program image",
		ArgsUsage: "<program-file>",
		Flags: []cli.Flag{
			&cli.BoolFlag{
				Name:    "verbose",
				Aliases: []string{"v"},
				Usage:   "log lifecycle events (load, halt, fatal abort)",
			},
			&cli.BoolFlag{
				Name:    "dump-state",
				Aliases: []string{"d"},
				Usage:   "on fatal abort, print a full postmortem state dump to stderr",
			},
		},
		Action: run,
	}

	if err := app.Run(os.Args); err != nil {
		var exitErr cli.ExitCoder
		if errors.As(err, &exitErr) {
			os.Exit(exitErr.ExitCode())
		}
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(c *cli.Context) error {
	if c.NArg() != 1 {
		return cli.Exit("usage: um32 [-v] [-d] <program-file>", 2)
	}
	path := c.Args().Get(0)

	log := logrus.New()
	log.SetOutput(os.Stderr)
	if c.Bool("verbose") {
		log.SetLevel(logrus.InfoLevel)
	} else {
		log.SetLevel(logrus.ErrorLevel)
	}

	words, err := vm.LoadProgramFile(path)
	if err != nil {
		return cli.Exit(err.Error(), 1)
	}
	log.WithField("words", len(words)).Info("um32: program loaded")

	io := vm.NewIOGate(os.Stdin, os.Stdout)
	machine := vm.New(words, io, log)

	if err := machine.Run(); err != nil {
		if c.Bool("dump-state") {
			fmt.Fprintln(os.Stderr, "um32: postmortem state dump:")
			spew.Fdump(os.Stderr, machine.State())
		}
		return cli.Exit(err.Error(), 1)
	}
	return nil
}
