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

package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/ZaparooProject/zaparoo-clock/pkg/config"
	"github.com/ZaparooProject/zaparoo-clock/pkg/input"
	"github.com/ZaparooProject/zaparoo-clock/pkg/menu"
	"github.com/ZaparooProject/zaparoo-clock/pkg/platforms"
	"github.com/ZaparooProject/zaparoo-clock/pkg/service"
	"github.com/ZaparooProject/zaparoo-clock/pkg/ui/tui"
	"github.com/rs/zerolog/log"
)

// startSerialInput reads key presses from the configured serial port
// until ctx is done. A missing or broken port is logged, not fatal.
func startSerialInput(ctx context.Context, cfg *config.Instance, cmds chan<- menu.Command) {
	path, baud := cfg.SerialPort()
	if path == "" {
		return
	}

	port, err := input.OpenSerial(path, baud)
	if err != nil {
		log.Error().Err(err).Str("device", path).Msg("serial keypad unavailable")
		return
	}

	go func() {
		<-ctx.Done()
		if err := port.Close(); err != nil {
			log.Warn().Err(err).Msg("error closing serial port")
		}
	}()

	go func() {
		if err := input.Pump(ctx, port, cmds); err != nil && ctx.Err() == nil {
			log.Error().Err(err).Msg("serial keypad stopped")
		}
	}()
}

// RunApp runs the clock in either daemon or TUI mode.
// It handles signal handling, service lifecycle, and graceful shutdown.
func RunApp(pl platforms.Platform, cfg *config.Instance, daemonMode bool) (returnErr error) {
	defer func() {
		if r := recover(); r != nil {
			_, _ = fmt.Fprintf(os.Stderr, "Panic: %v\n", r)
			log.Error().Msgf("panic recovered: %v", r)
			returnErr = fmt.Errorf("panic: %v", r)
		}
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigs)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	cmds := make(chan menu.Command, 8)
	opts := service.Options{Commands: cmds}

	var lcd *tui.LCD
	if !daemonMode {
		cols, rows := cfg.DisplaySize()
		lcd = tui.New(cols, rows, cmds, tui.Themes[cfg.DisplayTheme()])
		opts.Show = lcd.Show
	}

	stopSvc, svcDone, err := service.Start(pl, cfg, opts)
	if err != nil {
		log.Error().Msgf("error starting clock: %s", err)
		return fmt.Errorf("error starting clock: %w", err)
	}
	defer func() {
		if err := stopSvc(); err != nil {
			log.Error().Msgf("error stopping clock: %s", err)
		}
	}()

	startSerialInput(ctx, cfg, cmds)

	if daemonMode {
		log.Info().Msg("started in daemon mode")
		select {
		case <-sigs:
		case <-svcDone:
			log.Info().Msg("clock shut down internally")
		}
		return nil
	}

	go func() {
		select {
		case <-sigs:
			lcd.Stop()
		case <-svcDone:
			lcd.Stop()
		case <-ctx.Done():
		}
	}()

	if err := lcd.Run(); err != nil {
		log.Error().Err(err).Msg("error running UI")
		return fmt.Errorf("error running UI: %w", err)
	}

	return nil
}
