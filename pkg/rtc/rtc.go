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

// Package rtc defines the real-time clock capability consumed by the
// clock core, the pull/push bridge between the clock and an edit buffer,
// and a software clock for hosts without RTC hardware.
package rtc

import (
	"errors"
	"fmt"
	"time"
)

// ErrUnknownPeriod is returned when a periodic callback is registered
// with a period the clock does not support.
var ErrUnknownPeriod = errors.New("unknown periodic callback period")

// SaveLight is the daylight saving flag carried by a HardwareTime. It is
// passed through unmodified.
type SaveLight int

const (
	SavingTimeInactive SaveLight = iota
	SavingTimeActive
)

// HardwareTime is the clock's own view of the current time. Month uses the
// one-based time.Month enumeration.
type HardwareTime struct {
	Hour       int
	Minute     int
	Second     int
	Day        int
	Month      time.Month
	Year       int
	Weekday    time.Weekday
	SavingTime SaveLight
}

// FromTime builds a HardwareTime from t.
func FromTime(t time.Time, saving SaveLight) HardwareTime {
	return HardwareTime{
		Hour:       t.Hour(),
		Minute:     t.Minute(),
		Second:     t.Second(),
		Day:        t.Day(),
		Month:      t.Month(),
		Year:       t.Year(),
		Weekday:    t.Weekday(),
		SavingTime: saving,
	}
}

// Time converts ht to a UTC time.Time. Weekday and saving flag are not
// part of the result.
func (ht HardwareTime) Time() time.Time {
	return time.Date(ht.Year, ht.Month, ht.Day, ht.Hour, ht.Minute, ht.Second, 0, time.UTC)
}

// Period selects how often a periodic callback fires.
type Period int

// The zero value is the default 4 Hz tick.
const (
	N4TimesEverySec Period = iota
	N2TimesEverySec
	N8TimesEverySec
	EverySec
	Every2Sec
)

// Interval returns the time between two callbacks for p.
func (p Period) Interval() (time.Duration, error) {
	switch p {
	case N2TimesEverySec:
		return time.Second / 2, nil
	case N4TimesEverySec:
		return time.Second / 4, nil
	case N8TimesEverySec:
		return time.Second / 8, nil
	case EverySec:
		return time.Second, nil
	case Every2Sec:
		return 2 * time.Second, nil
	default:
		return 0, fmt.Errorf("%w: %d", ErrUnknownPeriod, int(p))
	}
}

// ParsePeriod maps a config name like "4hz" to a Period.
func ParsePeriod(name string) (Period, error) {
	switch name {
	case "2hz":
		return N2TimesEverySec, nil
	case "4hz", "":
		return N4TimesEverySec, nil
	case "8hz":
		return N8TimesEverySec, nil
	case "1s":
		return EverySec, nil
	case "2s":
		return Every2Sec, nil
	default:
		return 0, fmt.Errorf("%w: %q", ErrUnknownPeriod, name)
	}
}

// RTC is the minimal clock capability used by the core. The periodic
// callback runs outside the caller's goroutine and must only do
// non-blocking work.
type RTC interface {
	GetTime() (HardwareTime, error)
	SetTime(ht HardwareTime) error
	SetPeriodicCallback(fn func(), period Period) error
}
