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

// Package tui renders the clock menu on a terminal as a simulated
// character LCD and turns key presses into menu commands.
package tui

import (
	"fmt"
	"strings"

	"github.com/ZaparooProject/zaparoo-clock/pkg/menu"
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"
	"github.com/rs/zerolog/log"
)

// Frame is one rendered state of the display.
type Frame struct {
	Lines []string
	// Light is the ambient light level in percent, or -1 if unknown.
	Light int
	// Dimmed turns the simulated backlight down.
	Dimmed bool
}

// LCD is the terminal front end. Show may be called from any goroutine.
type LCD struct {
	app    *tview.Application
	lcd    *tview.TextView
	status *tview.TextView
	cmds   chan<- menu.Command
	theme  *Theme
}

// New builds the LCD view for a cols x rows display. Key presses are sent
// to cmds without blocking; presses are dropped while cmds is full.
func New(cols, rows int, cmds chan<- menu.Command, theme *Theme) *LCD {
	if theme == nil {
		theme = &ThemeBlueLCD
	}

	app := tview.NewApplication()

	lcdView := tview.NewTextView().
		SetWrap(false).
		SetScrollable(false)
	lcdView.SetBorder(true).
		SetTitle(" Zaparoo Clock ").
		SetBorderColor(theme.BorderColor)
	lcdView.SetBackgroundColor(theme.BacklightColor)
	lcdView.SetTextColor(theme.TextColor)

	status := tview.NewTextView().
		SetTextAlign(tview.AlignCenter)
	status.SetTextColor(theme.StatusTextColor)
	status.SetText(hints())

	// border adds one cell on every side
	width := cols + 2
	height := rows + 2

	inner := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(nil, 0, 1, false).
		AddItem(lcdView, height, 0, false).
		AddItem(status, 1, 0, false).
		AddItem(nil, 0, 1, false)

	root := tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(inner, max(width, tview.TaggedStringWidth(hints())), 0, false).
		AddItem(nil, 0, 1, false)

	l := &LCD{
		app:    app,
		lcd:    lcdView,
		status: status,
		cmds:   cmds,
		theme:  theme,
	}

	app.SetInputCapture(l.handleKey)
	app.SetRoot(root, true)

	return l
}

func hints() string {
	return "↑↓ Navigate | Enter Select | Esc Back | Ctrl+C Quit"
}

// KeyCommand maps a key press to a menu command.
func KeyCommand(ev *tcell.EventKey) (menu.Command, bool) {
	switch ev.Key() {
	case tcell.KeyUp:
		return menu.Up, true
	case tcell.KeyDown:
		return menu.Down, true
	case tcell.KeyEnter, tcell.KeyRight:
		return menu.Enter, true
	case tcell.KeyEscape, tcell.KeyLeft, tcell.KeyBackspace, tcell.KeyBackspace2:
		return menu.BackCmd, true
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'w', 'k':
			return menu.Up, true
		case 's', 'j':
			return menu.Down, true
		case ' ':
			return menu.Enter, true
		case 'q':
			return menu.BackCmd, true
		}
	default:
	}
	return 0, false
}

func (l *LCD) handleKey(ev *tcell.EventKey) *tcell.EventKey {
	if ev.Key() == tcell.KeyCtrlC {
		l.app.Stop()
		return nil
	}

	cmd, ok := KeyCommand(ev)
	if !ok {
		return ev
	}

	select {
	case l.cmds <- cmd:
	default:
		log.Warn().Msgf("dropped key press: %s", cmd)
	}
	return nil
}

// apply updates the views. Must run on the tview goroutine.
func (l *LCD) apply(f Frame) {
	l.lcd.SetText(strings.Join(f.Lines, "\n"))
	if f.Dimmed {
		l.lcd.SetBackgroundColor(l.theme.DimmedColor)
	} else {
		l.lcd.SetBackgroundColor(l.theme.BacklightColor)
	}
	if f.Light >= 0 {
		l.status.SetText(fmt.Sprintf("light %d%% | %s", f.Light, hints()))
	} else {
		l.status.SetText(hints())
	}
}

// Show queues f for display.
func (l *LCD) Show(f Frame) {
	l.app.QueueUpdateDraw(func() { l.apply(f) })
}

// Run blocks until the UI is stopped.
func (l *LCD) Run() error {
	if err := l.app.Run(); err != nil {
		return fmt.Errorf("error running UI: %w", err)
	}
	return nil
}

func (l *LCD) Stop() {
	l.app.Stop()
}

// App returns the underlying application, used by tests to attach a
// simulation screen.
func (l *LCD) App() *tview.Application {
	return l.app
}
