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

package datetime

import "github.com/ZaparooProject/zaparoo-clock/pkg/calendar"

func saturate(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}

// Clamp saturates every field of b into its valid range in place. Values
// are pinned to the nearest bound, never wrapped. Day is clamped last
// against the already clamped month and year, so a month or year change
// can never leave a day past the end of the month.
func Clamp(b *EditBuffer) {
	b.Hour = saturate(b.Hour, MinHour, MaxHour)
	b.Minute = saturate(b.Minute, MinMinute, MaxMinute)
	b.Second = saturate(b.Second, MinSecond, MaxSecond)
	b.Month = saturate(b.Month, MinMonth, MaxMonth)
	b.Year = saturate(b.Year, MinYear, MaxYear)
	b.Day = saturate(b.Day, MinDay, calendar.DaysInMonth(b.Month, b.Year))
}

// Clamped returns a clamped copy of b.
func Clamped(b EditBuffer) EditBuffer {
	Clamp(&b)
	return b
}
