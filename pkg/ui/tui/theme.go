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

package tui

import "github.com/gdamore/tcell/v2"

// Theme defines the colors of the simulated LCD.
type Theme struct {
	Name            string
	BorderColor     tcell.Color
	BacklightColor  tcell.Color
	DimmedColor     tcell.Color
	TextColor       tcell.Color
	StatusTextColor tcell.Color
}

// ThemeBlueLCD imitates the common blue-backlit HD44780 modules.
var ThemeBlueLCD = Theme{
	Name:            "blue",
	BorderColor:     tcell.ColorLightYellow,
	BacklightColor:  tcell.ColorBlue,
	DimmedColor:     tcell.ColorNavy,
	TextColor:       tcell.ColorWhite,
	StatusTextColor: tcell.ColorGray,
}

// ThemeGreenLCD imitates yellow-green backlit modules with dark text.
var ThemeGreenLCD = Theme{
	Name:            "green",
	BorderColor:     tcell.ColorWhite,
	BacklightColor:  tcell.ColorYellowGreen,
	DimmedColor:     tcell.ColorDarkOliveGreen,
	TextColor:       tcell.ColorBlack,
	StatusTextColor: tcell.ColorGray,
}

// Themes lists the available themes by name.
var Themes = map[string]*Theme{
	ThemeBlueLCD.Name:  &ThemeBlueLCD,
	ThemeGreenLCD.Name: &ThemeGreenLCD,
}
