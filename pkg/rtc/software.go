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

package rtc

import (
	"errors"
	"sync"
	"time"

	"github.com/ZaparooProject/zaparoo-clock/pkg/helpers/syncutil"
	"github.com/jonboulle/clockwork"
	"github.com/rs/zerolog/log"
)

// DefaultStartTime is the time a freshly powered clock reports before any
// saved value is restored: Monday 1 January 2024, 00:00:00.
var DefaultStartTime = HardwareTime{
	Day:        1,
	Month:      time.January,
	Year:       2024,
	Weekday:    time.Monday,
	SavingTime: SavingTimeInactive,
}

// Software is an RTC kept in memory as an offset from a clockwork clock.
// The periodic callback is driven by a ticker on the same clock.
type Software struct {
	clock   clockwork.Clock
	base    time.Time
	anchor  time.Time
	ticker  clockwork.Ticker
	stop    chan struct{}
	wg      sync.WaitGroup
	saving  SaveLight
	mu      syncutil.Mutex
	running bool
}

// NewSoftware returns a software clock reading start. A nil clock uses the
// host's real clock.
func NewSoftware(clock clockwork.Clock, start HardwareTime) *Software {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &Software{
		clock:  clock,
		base:   start.Time(),
		anchor: clock.Now(),
		saving: start.SavingTime,
	}
}

func (s *Software) GetTime() (HardwareTime, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	now := s.base.Add(s.clock.Since(s.anchor))
	return FromTime(now, s.saving), nil
}

// SetTime restarts the clock at ht. The weekday is derived from the date.
func (s *Software) SetTime(ht HardwareTime) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.base = ht.Time()
	s.anchor = s.clock.Now()
	s.saving = ht.SavingTime
	log.Debug().Msgf("software clock set to %s", s.base.Format(time.DateTime))
	return nil
}

// SetPeriodicCallback replaces any running callback with fn firing every
// period.
func (s *Software) SetPeriodicCallback(fn func(), period Period) error {
	interval, err := period.Interval()
	if err != nil {
		return err
	}
	if fn == nil {
		return errors.New("nil periodic callback")
	}

	s.stopTicker()

	s.mu.Lock()
	ticker := s.clock.NewTicker(interval)
	stop := make(chan struct{})
	s.ticker = ticker
	s.stop = stop
	s.running = true
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		for {
			select {
			case <-stop:
				return
			case <-ticker.Chan():
				fn()
			}
		}
	}()

	log.Debug().Msgf("periodic callback registered every %s", interval)
	return nil
}

func (s *Software) stopTicker() {
	s.mu.Lock()
	if !s.running {
		s.mu.Unlock()
		return
	}
	s.ticker.Stop()
	close(s.stop)
	s.running = false
	s.mu.Unlock()

	s.wg.Wait()
}

// Close stops the periodic callback goroutine.
func (s *Software) Close() error {
	s.stopTicker()
	return nil
}
