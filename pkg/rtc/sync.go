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
	"fmt"
	"time"

	"github.com/ZaparooProject/zaparoo-clock/pkg/datetime"
)

// Pull reads the clock into b, converting the one-based hardware month to
// the buffer's zero-based index, and clamps the result. On error b is
// left untouched.
func Pull(r RTC, b *datetime.EditBuffer) error {
	ht, err := r.GetTime()
	if err != nil {
		return fmt.Errorf("failed to read clock: %w", err)
	}

	b.Hour = ht.Hour
	b.Minute = ht.Minute
	b.Second = ht.Second
	b.Day = ht.Day
	b.Month = int(ht.Month) - 1
	b.Year = ht.Year
	datetime.Clamp(b)

	return nil
}

// Push writes the six fields of b to the clock. The current clock value is
// read first so weekday and saving flag carry over. b must already be
// clamped.
func Push(r RTC, b datetime.EditBuffer) error {
	ht, err := r.GetTime()
	if err != nil {
		return fmt.Errorf("failed to read clock: %w", err)
	}

	ht.Hour = b.Hour
	ht.Minute = b.Minute
	ht.Second = b.Second
	ht.Day = b.Day
	ht.Month = time.Month(b.Month + 1)
	ht.Year = b.Year

	if err := r.SetTime(ht); err != nil {
		return fmt.Errorf("failed to write clock: %w", err)
	}
	return nil
}
