//go:build linux

/*
Zaparoo Clock
Copyright (C) 2026 The Zaparoo Project Contributors.

This file is part of Zaparoo Clock.

Zaparoo Clock is free software: you can redistribute it and/or modify
it under the terms of the GNU General Public License as published by
the Free Software Foundation, either version 3 of the License, or
(at your option) any later version.

Zaparoo Clock is distributed in the hope that it will be useful,
but WITHOUT ANY WARRANTY; without even the implied warranty of
MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
GNU General Public License for more details.

You should have received a copy of the GNU General Public License
along with Zaparoo Clock.  If not, see <http://www.gnu.org/licenses/>.
*/

package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ZaparooProject/zaparoo-clock/pkg/cli"
	"github.com/ZaparooProject/zaparoo-clock/pkg/config"
	"github.com/ZaparooProject/zaparoo-clock/pkg/platforms/linux"
)

func main() {
	if err := run(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "Error: %s\n", err)
		os.Exit(1)
	}
}

func run() error {
	pl := &linux.Platform{}
	flags := cli.SetupFlags()

	daemonMode := flag.Bool(
		"daemon",
		false,
		"run the clock in foreground with no UI",
	)

	flags.Pre(pl)

	var logWriters []io.Writer
	if *daemonMode {
		logWriters = []io.Writer{os.Stderr}
	}

	cfg, err := cli.Setup(pl, config.BaseDefaults, logWriters)
	if err != nil {
		return err
	}

	flags.Post(cfg, pl)

	return cli.RunApp(pl, cfg, *daemonMode)
}
