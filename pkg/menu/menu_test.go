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
	"testing"

	"github.com/ZaparooProject/zaparoo-clock/pkg/datetime"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEditor struct {
	buf     datetime.EditBuffer
	entered int
	saved   int
}

func (f *fakeEditor) Field(fd datetime.Field) int { return f.buf.Get(fd) }
func (f *fakeEditor) SetField(fd datetime.Field, v int) { f.buf.Set(fd, v) }
func (f *fakeEditor) TimeString() string { return f.buf.TimeString() }
func (f *fakeEditor) DateString() string { return f.buf.DateString() }
func (f *fakeEditor) OnEnterEditScreen() { f.entered++ }

func (f *fakeEditor) OnSaveCommand() error {
	f.saved++
	datetime.Clamp(&f.buf)
	return nil
}

func newClockMenu() (*Menu, *fakeEditor) {
	ed := &fakeEditor{buf: datetime.EditBuffer{Hour: 9, Minute: 5, Second: 0, Day: 31, Month: 0, Year: 2024}}
	return New(Build(ed), 16, 2), ed
}

func press(m *Menu, cmds ...Command) {
	for _, c := range cmds {
		m.Process(c)
	}
}

func TestRenderMainScreen(t *testing.T) {
	t.Parallel()
	m, _ := newClockMenu()

	assert.Equal(t, []string{
		">Time 09:05:00  ",
		" Day 01/31/2024 ",
	}, m.Render())

	press(m, Down, Down)
	assert.Equal(t, []string{
		" Day 01/31/2024 ",
		">Change Date    ",
	}, m.Render())

	press(m, Down, Down)
	assert.Equal(t, 3, m.Cursor())
	assert.Equal(t, []string{
		" Change Date    ",
		">Print Message  ",
	}, m.Render())

	press(m, Up, Up, Up, Up)
	assert.Equal(t, 0, m.Cursor())
	assert.Equal(t, ">Time 09:05:00  ", m.Render()[0])
}

func TestEnterChangeDateCallsHook(t *testing.T) {
	t.Parallel()
	m, ed := newClockMenu()

	press(m, Down, Down, Enter)
	assert.Equal(t, 1, ed.entered)
	assert.Equal(t, "Change Date", m.Current().Title)
	assert.Equal(t, []string{
		">Hour 09        ",
		" Min 05         ",
	}, m.Render())
}

func TestRangeItemSaturates(t *testing.T) {
	t.Parallel()
	m, ed := newClockMenu()
	press(m, Down, Down, Enter)

	press(m, Enter)
	require.True(t, m.Editing())
	assert.Equal(t, "*Hour 09        ", m.Render()[0])

	for range 20 {
		m.Process(Up)
	}
	assert.Equal(t, 23, ed.buf.Hour)

	for range 30 {
		m.Process(Down)
	}
	assert.Equal(t, 0, ed.buf.Hour)

	press(m, BackCmd)
	assert.False(t, m.Editing())
	assert.Equal(t, "Change Date", m.Current().Title)
}

func TestYearItemBounds(t *testing.T) {
	t.Parallel()
	m, ed := newClockMenu()
	press(m, Down, Down, Enter)
	press(m, Down, Down, Down, Down, Down)
	assert.Equal(t, ">Year 2024      ", m.Render()[1])

	press(m, Enter)
	for range 100 {
		m.Process(Up)
	}
	press(m, Enter)
	assert.Equal(t, 2099, ed.buf.Year)
}

func TestMonthListWraps(t *testing.T) {
	t.Parallel()
	m, ed := newClockMenu()
	press(m, Down, Down, Enter)
	press(m, Down, Down, Down, Down)
	assert.Equal(t, ">Month Jan      ", m.Render()[1])

	press(m, Enter, Down)
	assert.Equal(t, 11, ed.buf.Month)
	assert.Equal(t, "*Month Dec      ", m.Render()[1])

	press(m, Up, Up)
	assert.Equal(t, 1, ed.buf.Month)
	press(m, Enter)
	assert.Equal(t, ">Month Feb      ", m.Render()[1])
}

func TestSaveAndBack(t *testing.T) {
	t.Parallel()
	m, ed := newClockMenu()
	press(m, Down, Down, Enter)

	// month -> Feb leaves day 31 until save clamps it
	press(m, Down, Down, Down, Down, Enter, Up, Enter)
	assert.Equal(t, 31, ed.buf.Day)

	press(m, Down, Down, Enter)
	assert.Equal(t, 1, ed.saved)
	assert.Equal(t, 29, ed.buf.Day)

	press(m, Down, Enter)
	assert.Equal(t, "Main", m.Current().Title)
	assert.Equal(t, 0, m.Cursor())
}

func TestBackCommandLeavesSubMenu(t *testing.T) {
	t.Parallel()
	m, _ := newClockMenu()

	press(m, BackCmd)
	assert.Equal(t, "Main", m.Current().Title)

	press(m, Down, Down, Enter, Down, BackCmd)
	assert.Equal(t, "Main", m.Current().Title)
}

func TestHome(t *testing.T) {
	t.Parallel()
	m, _ := newClockMenu()
	press(m, Down, Down, Enter, Down)

	m.Home()
	assert.Equal(t, "Main", m.Current().Title)
	assert.Equal(t, 0, m.Cursor())
	press(m, BackCmd)
	assert.Equal(t, "Main", m.Current().Title)
}

func TestRenderTruncatesAndPads(t *testing.T) {
	t.Parallel()

	s := &Screen{Items: []Item{
		Action("A very long command label", func() {}),
	}}
	m := New(s, 8, 3)
	assert.Equal(t, []string{">A very ", "        ", "        "}, m.Render())
}

func TestNewDefaults(t *testing.T) {
	t.Parallel()

	m := New(&Screen{}, 0, 0)
	assert.Len(t, m.Render(), DefaultRows)
	assert.Len(t, m.Render()[0], DefaultCols)
	m.Process(Enter)
}

func TestListOutOfRangeIndex(t *testing.T) {
	t.Parallel()

	v := 7
	it := List("X", []string{"a", "b"}, func() int { return v }, func(n int) { v = n })
	assert.Equal(t, "X ?", it.Text())
	it.step(1)
	assert.Equal(t, 0, v)
}

func TestCommandString(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "up", Up.String())
	assert.Equal(t, "down", Down.String())
	assert.Equal(t, "enter", Enter.String())
	assert.Equal(t, "back", BackCmd.String())
	assert.Equal(t, "unknown", Command(9).String())
}
