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

// Package service assembles the clock from config and runs its main loop.
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/ZaparooProject/zaparoo-clock/pkg/config"
	"github.com/ZaparooProject/zaparoo-clock/pkg/menu"
	"github.com/ZaparooProject/zaparoo-clock/pkg/persist"
	"github.com/ZaparooProject/zaparoo-clock/pkg/platforms"
	"github.com/ZaparooProject/zaparoo-clock/pkg/rtc"
	"github.com/ZaparooProject/zaparoo-clock/pkg/sensor"
	"github.com/ZaparooProject/zaparoo-clock/pkg/session"
	"github.com/ZaparooProject/zaparoo-clock/pkg/storage"
	"github.com/ZaparooProject/zaparoo-clock/pkg/ui/tui"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
	"golang.org/x/sync/errgroup"
)

type Options struct {
	// FS holds the EEPROM image and sensor files. Defaults to the OS.
	FS afero.Fs
	// Clock drives the software RTC. Defaults to the real clock.
	Clock clockwork.Clock
	// Show receives every rendered frame. Nil logs frames at debug level.
	Show func(tui.Frame)
	// Commands are menu key presses from the UI and input devices.
	Commands <-chan menu.Command
}

type clockApp struct {
	nv   storage.NVStorage
	rtc  *rtc.Software
	ctrl *session.Controller
	menu *menu.Menu
	show func(tui.Frame)
}

func openStorage(fs afero.Fs, pl platforms.Platform, cfg *config.Instance) (storage.NVStorage, error) {
	backend := cfg.StorageBackend()
	path := cfg.StoragePath(pl.Settings().DataDir)
	nv, err := storage.Open(fs, backend, path, cfg.StorageSize())
	if err != nil {
		return nil, fmt.Errorf("failed to open %s storage: %w", backend, err)
	}
	log.Info().Str("backend", backend).Str("path", path).Msg("opened storage")
	return nv, nil
}

func (a *clockApp) render() {
	f := tui.Frame{
		Lines:  a.menu.Render(),
		Light:  a.ctrl.LightLevel(),
		Dimmed: a.ctrl.IsDark(),
	}
	if a.show == nil {
		log.Debug().Strs("lines", f.Lines).Msg("display")
		return
	}
	a.show(f)
}

func (a *clockApp) close() error {
	var errs []error
	if err := a.rtc.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to stop clock: %w", err))
	}
	if err := a.nv.Close(); err != nil {
		errs = append(errs, fmt.Errorf("failed to close storage: %w", err))
	}
	return errors.Join(errs...)
}

// forward turns key presses into main loop actions.
func (a *clockApp) forward(ctx context.Context, cmds <-chan menu.Command, actions chan<- func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd, ok := <-cmds:
			if !ok {
				return nil
			}
			select {
			case actions <- func() {
				a.menu.Process(cmd)
				a.render()
			}:
			case <-ctx.Done():
				return nil
			}
		}
	}
}

// Start builds the clock, restores the saved date and time and runs the
// main loop in the background. stop ends the loop and releases storage;
// done is closed when the loop has exited.
func Start(
	pl platforms.Platform,
	cfg *config.Instance,
	opts Options,
) (stop func() error, done <-chan struct{}, err error) {
	log.Info().Msgf("version: %s", config.AppVersion)

	if opts.FS == nil {
		opts.FS = afero.NewOsFs()
	}

	period, err := rtc.ParsePeriod(cfg.TickPeriod())
	if err != nil {
		return nil, nil, fmt.Errorf("invalid tick period: %w", err)
	}

	nv, err := openStorage(opts.FS, pl, cfg)
	if err != nil {
		return nil, nil, err
	}

	a := &clockApp{
		nv:   nv,
		rtc:  rtc.NewSoftware(opts.Clock, rtc.DefaultStartTime),
		show: opts.Show,
	}

	sopts := session.Options{
		OnRender:       a.render,
		OnReturn:       func() { a.menu.Home() },
		LightThreshold: cfg.LightThreshold(),
		Period:         period,
	}
	if path := cfg.LightSensorPath(); path != "" {
		log.Info().Str("path", path).Msg("using light sensor")
		sopts.Sensor = sensor.NewFileLight(opts.FS, path)
	}

	a.ctrl = session.New(a.rtc, persist.NewStore(nv, cfg.StorageAddress()), sopts)
	cols, rows := cfg.DisplaySize()
	a.menu = menu.New(menu.Build(a.ctrl), cols, rows)

	outcome, err := a.ctrl.Boot()
	if err != nil {
		if closeErr := a.close(); closeErr != nil {
			log.Error().Err(closeErr).Msg("error cleaning up after failed boot")
		}
		return nil, nil, fmt.Errorf("failed to boot clock: %w", err)
	}
	log.Info().Msgf("clock booted: %s", outcome)
	a.render()

	ctx, cancel := context.WithCancel(context.Background())
	g, gctx := errgroup.WithContext(ctx)
	actions := make(chan func())

	g.Go(func() error {
		return a.ctrl.Run(gctx, actions)
	})
	if opts.Commands != nil {
		g.Go(func() error {
			return a.forward(gctx, opts.Commands, actions)
		})
	}

	doneCh := make(chan struct{})
	var runErr error
	go func() {
		runErr = g.Wait()
		close(doneCh)
	}()

	var once sync.Once
	var stopErr error
	stop = func() error {
		once.Do(func() {
			log.Info().Msg("stopping clock")
			cancel()
			<-doneCh
			stopErr = errors.Join(runErr, a.close())
		})
		return stopErr
	}

	return stop, doneCh, nil
}

// ResetStorage erases the saved date and time.
func ResetStorage(fs afero.Fs, pl platforms.Platform, cfg *config.Instance) error {
	nv, err := openStorage(fs, pl, cfg)
	if err != nil {
		return err
	}
	clearErr := persist.NewStore(nv, cfg.StorageAddress()).Clear()
	if err := nv.Close(); err != nil {
		log.Warn().Err(err).Msg("failed to close storage")
	}
	if clearErr != nil {
		return fmt.Errorf("failed to clear saved time: %w", clearErr)
	}
	log.Info().Msg("cleared saved date/time")
	return nil
}
