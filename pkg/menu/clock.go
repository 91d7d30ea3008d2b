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

package menu

import (
	"github.com/ZaparooProject/zaparoo-clock/pkg/calendar"
	"github.com/ZaparooProject/zaparoo-clock/pkg/datetime"
	"github.com/rs/zerolog/log"
)

// Editor is the edit session surface the clock menu is built on.
type Editor interface {
	Field(f datetime.Field) int
	SetField(f datetime.Field, v int)
	TimeString() string
	DateString() string
	OnEnterEditScreen()
	OnSaveCommand() error
}

func fieldRange(ed Editor, label string, f datetime.Field, minVal, maxVal int, format string) Item {
	return Range(
		label,
		func() int { return ed.Field(f) },
		func(v int) { ed.SetField(f, v) },
		1, minVal, maxVal, format,
	)
}

// Build returns the clock's main screen. Its "Change Date" entry seeds the
// editor from the clock before opening the edit screen, whose "Save"
// entry commits through the editor.
func Build(ed Editor) *Screen {
	changeDate := &Screen{
		Title: "Change Date",
		Items: []Item{
			fieldRange(ed, "Hour", datetime.FieldHour, datetime.MinHour, datetime.MaxHour, "%02d"),
			fieldRange(ed, "Min", datetime.FieldMinute, datetime.MinMinute, datetime.MaxMinute, "%02d"),
			fieldRange(ed, "Sec", datetime.FieldSecond, datetime.MinSecond, datetime.MaxSecond, "%02d"),
			fieldRange(ed, "Day", datetime.FieldDay, datetime.MinDay, datetime.MaxDay, "%02d"),
			List(
				"Month",
				calendar.MonthNames,
				func() int { return ed.Field(datetime.FieldMonth) },
				func(v int) { ed.SetField(datetime.FieldMonth, v) },
			),
			fieldRange(ed, "Year", datetime.FieldYear, datetime.MinYear, datetime.MaxYear, "%04d"),
			Action("Save", func() {
				if err := ed.OnSaveCommand(); err != nil {
					log.Error().Err(err).Msg("save failed")
				}
			}),
			Back("Back"),
		},
	}

	return &Screen{
		Title: "Main",
		Items: []Item{
			Value("Time", ed.TimeString),
			Value("Day", ed.DateString),
			SubMenu("Change Date", changeDate, ed.OnEnterEditScreen),
			Action("Print Message", func() { log.Info().Msg("Hello, world!") }),
		},
	}
}
