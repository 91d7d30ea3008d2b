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

// Package session sequences the clock core: restoring the saved time at
// boot, seeding the editor from the clock, committing edits to the clock
// and storage, and refreshing the display from the periodic tick.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync/atomic"

	"github.com/ZaparooProject/zaparoo-clock/pkg/calendar"
	"github.com/ZaparooProject/zaparoo-clock/pkg/datetime"
	"github.com/ZaparooProject/zaparoo-clock/pkg/helpers/syncutil"
	"github.com/ZaparooProject/zaparoo-clock/pkg/persist"
	"github.com/ZaparooProject/zaparoo-clock/pkg/rtc"
	"github.com/rs/zerolog/log"
)

// BootState tracks the boot sequence.
type BootState int

const (
	StateBoot BootState = iota
	StateLoaded
	StateDefaultTime
	StateRunning
)

func (s BootState) String() string {
	switch s {
	case StateBoot:
		return "boot"
	case StateLoaded:
		return "loaded"
	case StateDefaultTime:
		return "default-time"
	case StateRunning:
		return "running"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// LightSensor returns a raw ambient light sample in 0..1023.
type LightSensor interface {
	Read() (int, error)
}

const (
	maxLightSample        = 1023
	DefaultLightThreshold = 50
)

type Options struct {
	// Sensor is read on every refresh. Optional.
	Sensor LightSensor
	// OnRender is called after the display strings change.
	OnRender func()
	// OnReturn is called after a save so the menu can go back to its
	// main screen.
	OnReturn func()
	// LightThreshold is the light level in percent below which the
	// display is dark. 0 never dims.
	LightThreshold int
	// Period is the tick rate; the zero value ticks at 4 Hz.
	Period rtc.Period
}

// Controller owns the edit buffer. Apart from the display getters,
// LightLevel and the pending flag, its methods must be called from the
// main loop goroutine.
type Controller struct {
	clock      rtc.RTC
	store      *persist.Store
	flag       *PendingFlag
	opts       Options
	timeStr    string
	dateStr    string
	buf        datetime.EditBuffer
	lightLevel atomic.Int32
	state      atomic.Int32
	mu         syncutil.RWMutex
}

func New(clock rtc.RTC, store *persist.Store, opts Options) *Controller {
	c := &Controller{
		clock: clock,
		store: store,
		flag:  NewPendingFlag(),
		opts:  opts,
		buf:   datetime.NewEditBuffer(),
	}
	c.lightLevel.Store(-1)
	return c
}

// Boot restores the saved time if storage holds a valid record, otherwise
// leaves the clock at its default and seeds the buffer from it. It then
// refreshes the display and starts the periodic tick. The returned state
// is the boot outcome (StateLoaded or StateDefaultTime).
func (c *Controller) Boot() (BootState, error) {
	c.setState(StateBoot)

	outcome := StateDefaultTime
	saved, err := c.store.Load()
	switch {
	case err == nil:
		c.buf = datetime.Clamped(saved)
		if err := rtc.Push(c.clock, c.buf); err != nil {
			log.Error().Err(err).Msg("failed to restore saved time to clock")
		} else {
			outcome = StateLoaded
			log.Info().
				Str("month", calendar.MonthName(c.buf.Month)).
				Msgf("loaded date/time from storage: %s", c.buf)
		}
	case errors.Is(err, persist.ErrNoValidRecord):
		log.Info().Msg("no saved date/time, keeping clock default")
	default:
		log.Warn().Err(err).Msg("failed to load saved date/time, keeping clock default")
	}

	if outcome == StateDefaultTime {
		if err := rtc.Pull(c.clock, &c.buf); err != nil {
			log.Error().Err(err).Msg("failed to read clock")
		}
	}
	c.setState(outcome)

	c.refreshDisplay()

	if err := c.clock.SetPeriodicCallback(c.flag.Set, c.opts.Period); err != nil {
		return outcome, fmt.Errorf("failed to register periodic callback: %w", err)
	}

	c.setState(StateRunning)
	return outcome, nil
}

func (c *Controller) setState(s BootState) {
	c.state.Store(int32(s)) //nolint:gosec // small enum
	log.Debug().Msgf("boot state: %s", s)
}

// State returns the current boot state.
func (c *Controller) State() BootState {
	return BootState(c.state.Load())
}

// Flag returns the pending-update flag raised by the periodic tick.
func (c *Controller) Flag() *PendingFlag {
	return c.flag
}

// Buffer returns a copy of the edit buffer.
func (c *Controller) Buffer() datetime.EditBuffer {
	return c.buf
}

// Field returns one field of the edit buffer.
func (c *Controller) Field(f datetime.Field) int {
	return c.buf.Get(f)
}

// SetField stores v into the edit buffer unvalidated. Validation happens on
// save.
func (c *Controller) SetField(f datetime.Field, v int) {
	c.buf.Set(f, v)
}

// OnEnterEditScreen refreshes the display and seeds the buffer from the
// clock so editing starts from the current time.
func (c *Controller) OnEnterEditScreen() {
	c.refreshDisplay()
	if err := rtc.Pull(c.clock, &c.buf); err != nil {
		log.Error().Err(err).Msg("failed to seed editor from clock")
	}
}

// OnSaveCommand clamps the buffer, writes it to the clock, persists it and
// returns the menu to its main screen. A clock write failure does not stop
// the save; all failures are returned joined.
func (c *Controller) OnSaveCommand() error {
	datetime.Clamp(&c.buf)

	var errs []error
	if err := rtc.Push(c.clock, c.buf); err != nil {
		log.Error().Err(err).Msg("failed to set clock")
		errs = append(errs, err)
	}

	c.refreshDisplay()

	if err := c.store.Save(&c.buf); err != nil {
		log.Error().Err(err).Msg("failed to save date/time")
		errs = append(errs, err)
	}

	if c.opts.OnReturn != nil {
		c.opts.OnReturn()
	}
	c.render()

	return errors.Join(errs...)
}

// RunIteration performs one main loop pass: if the pending flag was raised
// it is cleared and the display is refreshed. It reports whether a refresh
// happened.
func (c *Controller) RunIteration() bool {
	if !c.flag.TestAndClear() {
		return false
	}
	c.refreshDisplay()
	c.readLight()
	c.render()
	return true
}

// Run is the main loop. Actions posted by the UI and input goroutines run
// here so that only this goroutine touches the buffer and the clock.
func (c *Controller) Run(ctx context.Context, actions <-chan func()) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case fn, ok := <-actions:
			if !ok {
				return nil
			}
			fn()
		case <-c.flag.Wake():
		}
		c.RunIteration()
	}
}

func (c *Controller) render() {
	if c.opts.OnRender != nil {
		c.opts.OnRender()
	}
}

func (c *Controller) refreshDisplay() {
	ht, err := c.clock.GetTime()
	if err != nil {
		log.Error().Err(err).Msg("failed to read clock for display")
		return
	}

	c.mu.Lock()
	c.timeStr = fmt.Sprintf("%02d:%02d:%02d", ht.Hour, ht.Minute, ht.Second)
	c.dateStr = fmt.Sprintf("%02d/%02d/%04d", int(ht.Month), ht.Day, ht.Year)
	c.mu.Unlock()
}

// TimeString returns the displayed time as HH:MM:SS.
func (c *Controller) TimeString() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.timeStr
}

// DateString returns the displayed date as MM/DD/YYYY.
func (c *Controller) DateString() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.dateStr
}

func (c *Controller) readLight() {
	if c.opts.Sensor == nil {
		return
	}
	raw, err := c.opts.Sensor.Read()
	if err != nil {
		log.Warn().Err(err).Msg("failed to read light sensor")
		return
	}
	level := LightPercent(raw)
	c.lightLevel.Store(int32(level)) //nolint:gosec // 0..100
	log.Debug().Msgf("light level: %d", level)
}

// LightPercent maps a raw 0..1023 sample to 0..100, saturating out-of-range
// samples.
func LightPercent(raw int) int {
	raw = max(0, min(raw, maxLightSample))
	return raw * 100 / maxLightSample
}

// LightLevel returns the last light reading in percent, or -1 if none.
func (c *Controller) LightLevel() int {
	return int(c.lightLevel.Load())
}

// IsDark reports whether the last light reading is below the threshold.
func (c *Controller) IsDark() bool {
	level := c.LightLevel()
	return level >= 0 && level < c.opts.LightThreshold
}
