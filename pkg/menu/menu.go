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
	"strings"

	"github.com/rs/zerolog/log"
)

// Command is a navigation input.
type Command int

const (
	Up Command = iota
	Down
	Enter
	BackCmd
)

func (c Command) String() string {
	switch c {
	case Up:
		return "up"
	case Down:
		return "down"
	case Enter:
		return "enter"
	case BackCmd:
		return "back"
	default:
		return "unknown"
	}
}

const (
	DefaultCols = 16
	DefaultRows = 2
)

// Menu navigates screens and renders the visible rows. It is not safe for
// concurrent use; the clock drives it from the main loop.
type Menu struct {
	root    *Screen
	screen  *Screen
	history []*Screen
	cursor  int
	top     int
	cols    int
	rows    int
	editing bool
}

func New(root *Screen, cols, rows int) *Menu {
	if cols <= 0 {
		cols = DefaultCols
	}
	if rows <= 0 {
		rows = DefaultRows
	}
	return &Menu{root: root, screen: root, cols: cols, rows: rows}
}

// Current returns the displayed screen.
func (m *Menu) Current() *Screen {
	return m.screen
}

// Cursor returns the selected item index.
func (m *Menu) Cursor() int {
	return m.cursor
}

// Editing reports whether the selected item is being edited.
func (m *Menu) Editing() bool {
	return m.editing
}

// SetScreen shows s with the cursor on its first item and forgets the
// navigation history.
func (m *Menu) SetScreen(s *Screen) {
	m.screen = s
	m.history = nil
	m.reset()
}

// Home shows the root screen.
func (m *Menu) Home() {
	m.SetScreen(m.root)
}

func (m *Menu) reset() {
	m.cursor = 0
	m.top = 0
	m.editing = false
}

func (m *Menu) selected() *Item {
	if m.screen == nil || m.cursor >= len(m.screen.Items) {
		return nil
	}
	return &m.screen.Items[m.cursor]
}

// Process applies one navigation command.
func (m *Menu) Process(cmd Command) {
	it := m.selected()
	if it == nil {
		return
	}

	if m.editing {
		switch cmd {
		case Up:
			it.step(1)
		case Down:
			it.step(-1)
		case Enter, BackCmd:
			m.editing = false
		}
		return
	}

	switch cmd {
	case Up:
		if m.cursor > 0 {
			m.cursor--
		}
	case Down:
		if m.cursor < len(m.screen.Items)-1 {
			m.cursor++
		}
	case Enter:
		m.activate(it)
	case BackCmd:
		m.back()
	}
	m.scroll()
}

func (m *Menu) activate(it *Item) {
	switch it.Kind {
	case KindRange, KindList:
		m.editing = true
	case KindCommand:
		if it.Action != nil {
			it.Action()
		}
	case KindSubMenu:
		if it.Target == nil {
			return
		}
		if it.Action != nil {
			it.Action()
		}
		m.history = append(m.history, m.screen)
		m.screen = it.Target
		m.reset()
		log.Debug().Msgf("menu: entered %q", it.Label)
	case KindBack:
		m.back()
	default:
	}
}

func (m *Menu) back() {
	if len(m.history) == 0 {
		return
	}
	m.screen = m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	m.reset()
}

func (m *Menu) scroll() {
	if m.cursor < m.top {
		m.top = m.cursor
	}
	if m.cursor >= m.top+m.rows {
		m.top = m.cursor - m.rows + 1
	}
}

// Render returns exactly rows lines of exactly cols characters. The first
// column holds the cursor: '>' when selected, '*' while editing.
func (m *Menu) Render() []string {
	lines := make([]string, m.rows)
	for row := range m.rows {
		idx := m.top + row
		var line string
		if m.screen != nil && idx < len(m.screen.Items) {
			prefix := " "
			if idx == m.cursor {
				prefix = ">"
				if m.editing {
					prefix = "*"
				}
			}
			line = prefix + m.screen.Items[idx].Text()
		}
		lines[row] = fit(line, m.cols)
	}
	return lines
}

func fit(s string, width int) string {
	r := []rune(s)
	if len(r) > width {
		return string(r[:width])
	}
	return s + strings.Repeat(" ", width-len(r))
}
