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

package session

import "sync/atomic"

// PendingFlag is the single boolean shared between the clock's periodic
// callback and the main loop. Set may be called from any goroutine;
// TestAndClear is called by the main loop only.
type PendingFlag struct {
	wake chan struct{}
	set  atomic.Bool
}

func NewPendingFlag() *PendingFlag {
	return &PendingFlag{wake: make(chan struct{}, 1)}
}

// Set raises the flag and wakes the main loop if it is waiting. It never
// blocks.
func (f *PendingFlag) Set() {
	f.set.Store(true)
	select {
	case f.wake <- struct{}{}:
	default:
	}
}

// TestAndClear reports whether the flag was raised and lowers it.
func (f *PendingFlag) TestAndClear() bool {
	return f.set.Swap(false)
}

// IsSet reports the flag without clearing it.
func (f *PendingFlag) IsSet() bool {
	return f.set.Load()
}

// Wake is signalled at least once after every Set.
func (f *PendingFlag) Wake() <-chan struct{} {
	return f.wake
}
