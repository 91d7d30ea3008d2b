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

package storage

import "github.com/ZaparooProject/zaparoo-clock/pkg/helpers/syncutil"

// Memory is a volatile NVStorage held in a byte slice.
type Memory struct {
	data []byte
	mu   syncutil.RWMutex
}

// NewMemory returns an erased in-memory storage of size bytes.
func NewMemory(size int) *Memory {
	return &Memory{data: erased(size)}
}

func (m *Memory) ReadAt(addr int, buf []byte) error {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if err := checkRange(addr, len(buf), len(m.data)); err != nil {
		return err
	}
	copy(buf, m.data[addr:])
	return nil
}

func (m *Memory) WriteAt(addr int, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if err := checkRange(addr, len(data), len(m.data)); err != nil {
		return err
	}
	copy(m.data[addr:], data)
	return nil
}

func (m *Memory) Size() int {
	return len(m.data)
}

func (*Memory) Close() error {
	return nil
}
