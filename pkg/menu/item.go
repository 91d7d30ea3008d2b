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

// Package menu describes the clock's character-LCD menu as data: screens
// made of item descriptors, and a navigator that applies Up/Down/Enter/Back
// commands and renders the visible window.
package menu

import (
	"fmt"
)

// Kind selects how an item behaves when selected.
type Kind int

const (
	KindValue Kind = iota
	KindRange
	KindList
	KindCommand
	KindSubMenu
	KindBack
)

// Item is one menu line. Which fields are used depends on Kind.
type Item struct {
	Value   func() string
	Get     func() int
	Set     func(int)
	Action  func()
	Target  *Screen
	Label   string
	Format  string
	Options []string
	Kind    Kind
	Min     int
	Max     int
	Step    int
}

// Screen is an ordered list of items.
type Screen struct {
	Title string
	Items []Item
}

// Value is a read-only line showing fn's result.
func Value(label string, fn func() string) Item {
	return Item{Kind: KindValue, Label: label, Value: fn}
}

// Range is an editable integer saturating at min and max.
func Range(label string, get func() int, set func(int), step, minVal, maxVal int, format string) Item {
	return Item{
		Kind:   KindRange,
		Label:  label,
		Get:    get,
		Set:    set,
		Step:   step,
		Min:    minVal,
		Max:    maxVal,
		Format: format,
	}
}

// List is an editable index into options that wraps around.
func List(label string, options []string, get func() int, set func(int)) Item {
	return Item{Kind: KindList, Label: label, Options: options, Get: get, Set: set}
}

// Action runs fn when selected.
func Action(label string, fn func()) Item {
	return Item{Kind: KindCommand, Label: label, Action: fn}
}

// SubMenu opens target when selected, calling before first if set.
func SubMenu(label string, target *Screen, before func()) Item {
	return Item{Kind: KindSubMenu, Label: label, Target: target, Action: before}
}

// Back returns to the previous screen.
func Back(label string) Item {
	return Item{Kind: KindBack, Label: label}
}

func (it *Item) editable() bool {
	return it.Kind == KindRange || it.Kind == KindList
}

// Text is the line content without the cursor column.
func (it *Item) Text() string {
	switch it.Kind {
	case KindValue:
		return it.Label + " " + it.Value()
	case KindRange:
		format := it.Format
		if format == "" {
			format = "%d"
		}
		return it.Label + " " + fmt.Sprintf(format, it.Get())
	case KindList:
		idx := it.Get()
		if idx < 0 || idx >= len(it.Options) {
			return it.Label + " ?"
		}
		return it.Label + " " + it.Options[idx]
	default:
		return it.Label
	}
}

func (it *Item) step(dir int) {
	switch it.Kind {
	case KindRange:
		step := it.Step
		if step <= 0 {
			step = 1
		}
		v := it.Get() + dir*step
		it.Set(max(it.Min, min(v, it.Max)))
	case KindList:
		n := len(it.Options)
		if n == 0 {
			return
		}
		v := ((it.Get()+dir)%n + n) % n
		it.Set(v)
	default:
	}
}
