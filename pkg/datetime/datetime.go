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

// Package datetime holds the editable date/time staging buffer and the
// clamp that normalizes it before it reaches the clock or storage.
package datetime

import (
	"fmt"

	"github.com/ZaparooProject/zaparoo-clock/pkg/calendar"
)

const (
	MinHour   = 0
	MaxHour   = 23
	MinMinute = 0
	MaxMinute = 59
	MinSecond = 0
	MaxSecond = 59
	MinDay    = 1
	MaxDay    = 31
	MinMonth  = 0
	MaxMonth  = 11
	MinYear   = 2000
	MaxYear   = 2099
)

// Editor defaults used before the buffer is seeded from the clock.
const (
	DefaultDay  = 1
	DefaultYear = 2024
)

// Field identifies one editable value of an EditBuffer.
type Field int

const (
	FieldHour Field = iota
	FieldMinute
	FieldSecond
	FieldDay
	FieldMonth
	FieldYear
)

func (f Field) String() string {
	switch f {
	case FieldHour:
		return "hour"
	case FieldMinute:
		return "minute"
	case FieldSecond:
		return "second"
	case FieldDay:
		return "day"
	case FieldMonth:
		return "month"
	case FieldYear:
		return "year"
	default:
		return fmt.Sprintf("field(%d)", int(f))
	}
}

// EditBuffer stages the six editable date/time fields. Month is a
// zero-based index (0 = January).
type EditBuffer struct {
	Hour   int
	Minute int
	Second int
	Day    int
	Month  int
	Year   int
}

// NewEditBuffer returns a buffer holding the editor defaults.
func NewEditBuffer() EditBuffer {
	return EditBuffer{
		Day:  DefaultDay,
		Year: DefaultYear,
	}
}

// Get returns the value of field f.
func (b EditBuffer) Get(f Field) int {
	switch f {
	case FieldHour:
		return b.Hour
	case FieldMinute:
		return b.Minute
	case FieldSecond:
		return b.Second
	case FieldDay:
		return b.Day
	case FieldMonth:
		return b.Month
	case FieldYear:
		return b.Year
	default:
		return 0
	}
}

// Set stores v into field f without validation. Unknown fields are ignored.
func (b *EditBuffer) Set(f Field, v int) {
	switch f {
	case FieldHour:
		b.Hour = v
	case FieldMinute:
		b.Minute = v
	case FieldSecond:
		b.Second = v
	case FieldDay:
		b.Day = v
	case FieldMonth:
		b.Month = v
	case FieldYear:
		b.Year = v
	}
}

// Valid reports whether every field lies in its range, with the day
// bounded by the buffer's own month and year.
func (b EditBuffer) Valid() bool {
	return inRange(b.Hour, MinHour, MaxHour) &&
		inRange(b.Minute, MinMinute, MaxMinute) &&
		inRange(b.Second, MinSecond, MaxSecond) &&
		inRange(b.Month, MinMonth, MaxMonth) &&
		inRange(b.Year, MinYear, MaxYear) &&
		inRange(b.Day, MinDay, calendar.DaysInMonth(b.Month, b.Year))
}

// TimeString formats the buffer as HH:MM:SS.
func (b EditBuffer) TimeString() string {
	return fmt.Sprintf("%02d:%02d:%02d", b.Hour, b.Minute, b.Second)
}

// DateString formats the buffer as MM/DD/YYYY with a one-based month.
func (b EditBuffer) DateString() string {
	return fmt.Sprintf("%02d/%02d/%04d", b.Month+1, b.Day, b.Year)
}

func (b EditBuffer) String() string {
	return b.DateString() + " " + b.TimeString()
}

func inRange(v, lo, hi int) bool {
	return v >= lo && v <= hi
}
