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

// Package calendar holds the Gregorian calendar arithmetic used to bound
// the day-of-month field of an edited date.
package calendar

var monthDays = [12]int{31, 28, 31, 30, 31, 30, 31, 31, 30, 31, 30, 31}

// MonthNames are the short month labels shown by the month list item.
var MonthNames = []string{
	"Jan", "Feb", "Mar", "Apr", "May", "Jun",
	"Jul", "Aug", "Sep", "Oct", "Nov", "Dec",
}

// IsLeapYear reports whether year has a 29th of February.
func IsLeapYear(year int) bool {
	return year%4 == 0 && (year%100 != 0 || year%400 == 0)
}

// normalizeMonth reduces a zero-based month index into 0..11. Negative
// indexes wrap the same way as positive ones.
func normalizeMonth(month int) int {
	m := month % 12
	if m < 0 {
		m += 12
	}
	return m
}

// DaysInMonth returns the number of days in the zero-based month of year.
// Out-of-range month indexes are reduced modulo 12, so it never fails.
func DaysInMonth(month, year int) int {
	m := normalizeMonth(month)
	if m == 1 && IsLeapYear(year) {
		return 29
	}
	return monthDays[m]
}

// MonthName returns the short label for a zero-based month index.
func MonthName(month int) string {
	return MonthNames[normalizeMonth(month)]
}
