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

// Package storage provides byte-addressed non-volatile storage backends
// that behave like an EEPROM: cells start erased and keep their value
// across restarts.
package storage

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/spf13/afero"
)

const (
	// ErasedByte is the value of a cell that has never been written.
	ErasedByte = 0xFF
	// DefaultSize is the EEPROM image size used when none is configured.
	DefaultSize = 1024
)

var ErrOutOfRange = errors.New("storage access out of range")

// NVStorage is the minimal non-volatile storage capability consumed by the
// clock core.
type NVStorage interface {
	ReadAt(addr int, buf []byte) error
	WriteAt(addr int, data []byte) error
	Size() int
	Close() error
}

func checkRange(addr, n, size int) error {
	if addr < 0 || n < 0 || addr+n > size {
		return fmt.Errorf("%w: addr=%d len=%d size=%d", ErrOutOfRange, addr, n, size)
	}
	return nil
}

func erased(n int) []byte {
	return bytes.Repeat([]byte{ErasedByte}, n)
}

// Erase resets n cells starting at addr to ErasedByte.
func Erase(s NVStorage, addr, n int) error {
	if err := s.WriteAt(addr, erased(n)); err != nil {
		return fmt.Errorf("failed to erase storage: %w", err)
	}
	return nil
}

const (
	BackendMemory = "memory"
	BackendFile   = "file"
	BackendBolt   = "bolt"
)

// Open returns the storage backend named by backend. File images are
// opened on fs.
func Open(fs afero.Fs, backend, path string, size int) (NVStorage, error) {
	switch backend {
	case BackendMemory:
		return NewMemory(size), nil
	case BackendFile:
		return OpenFile(fs, path, size)
	case BackendBolt:
		return OpenBolt(path, size)
	default:
		return nil, fmt.Errorf("unknown storage backend: %q", backend)
	}
}
