// Zaparoo Clock
// Copyright (c) 2026 The Zaparoo Project Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of Zaparoo Clock.
//
// Zaparoo Clock is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// Zaparoo Clock is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with Zaparoo Clock.  If not, see <http://www.gnu.org/licenses/>.

// Package cli holds the flags and startup shared by every platform's
// entrypoint.
package cli

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/ZaparooProject/zaparoo-clock/pkg/config"
	"github.com/ZaparooProject/zaparoo-clock/pkg/helpers"
	"github.com/ZaparooProject/zaparoo-clock/pkg/platforms"
	"github.com/ZaparooProject/zaparoo-clock/pkg/service"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

type Flags struct {
	set       *flag.FlagSet
	Version   *bool
	ListPorts *bool
	Reset     *bool
	Debug     *bool
}

// SetupFlags defines all common CLI flags between platforms.
func SetupFlags() *Flags {
	return newFlags(flag.CommandLine)
}

func newFlags(set *flag.FlagSet) *Flags {
	return &Flags{
		set: set,
		Version: set.Bool(
			"version",
			false,
			"print version and exit",
		),
		ListPorts: set.Bool(
			"list-ports",
			false,
			"list serial ports usable as a keypad and exit",
		),
		Reset: set.Bool(
			"reset",
			false,
			"erase the saved date and time and exit",
		),
		Debug: set.Bool(
			"debug",
			false,
			"enable debug logging for this run",
		),
	}
}

// Pre runs flag parsing and actions any immediate flags that don't
// require environment setup. Add any custom flags before running this.
func (f *Flags) Pre(pl platforms.Platform) {
	if err := f.set.Parse(os.Args[1:]); err != nil {
		os.Exit(2)
	}
	if f.pre(os.Stdout, pl, helpers.GetSerialDeviceList) {
		os.Exit(0)
	}
}

func (f *Flags) pre(w io.Writer, pl platforms.Platform, listPorts func() ([]string, error)) bool {
	switch {
	case *f.Version:
		_, _ = fmt.Fprintf(w, "Zaparoo Clock v%s (%s)\n", config.AppVersion, pl.ID())
		return true
	case *f.ListPorts:
		ports, err := listPorts()
		if err != nil {
			_, _ = fmt.Fprintf(w, "Error listing serial ports: %v\n", err)
			return true
		}
		if len(ports) == 0 {
			_, _ = fmt.Fprintln(w, "No serial ports found.")
		}
		for _, p := range ports {
			_, _ = fmt.Fprintln(w, p)
		}
		return true
	default:
		return false
	}
}

// Post actions all remaining common flags that require the environment to be
// set up. Logging is allowed.
func (f *Flags) Post(cfg *config.Instance, pl platforms.Platform) {
	f.applyDebug(cfg)
	if !*f.Reset {
		return
	}
	if err := service.ResetStorage(afero.NewOsFs(), pl, cfg); err != nil {
		log.Error().Err(err).Msg("error resetting storage")
		_, _ = fmt.Fprintf(os.Stderr, "Error resetting storage: %v\n", err)
		os.Exit(1)
	}
	_, _ = fmt.Println("Saved date and time erased.")
	os.Exit(0)
}

// applyDebug turns on debug logging for this run without saving it to
// the config file.
func (f *Flags) applyDebug(cfg *config.Instance) {
	if !*f.Debug {
		return
	}
	cfg.SetDebugLogging(true)
	helpers.SetLogLevel(cfg.DebugLogging())
	log.Debug().Msg("debug logging enabled by flag")
}

// Setup creates the platform directories, starts logging and loads the
// user config.
//
//nolint:gocritic // config struct copied for immutability
func Setup(
	pl platforms.Platform,
	defaultConfig config.Values,
	writers []io.Writer,
) (*config.Instance, error) {
	if err := helpers.EnsureDirectories(pl); err != nil {
		return nil, fmt.Errorf("error creating directories: %w", err)
	}

	if err := helpers.InitLogging(pl, writers, false); err != nil {
		return nil, fmt.Errorf("error initializing logging: %w", err)
	}

	cfg, err := config.NewConfig(afero.NewOsFs(), pl.Settings().ConfigDir, defaultConfig)
	if err != nil {
		return nil, fmt.Errorf("error loading config: %w", err)
	}

	helpers.SetLogLevel(cfg.DebugLogging())

	return cfg, nil
}
