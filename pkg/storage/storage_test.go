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

import (
	"path/filepath"
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type backendCase struct {
	open func(t *testing.T) NVStorage
	name string
}

func backends() []backendCase {
	return []backendCase{
		{
			name: "memory",
			open: func(*testing.T) NVStorage { return NewMemory(64) },
		},
		{
			name: "file",
			open: func(t *testing.T) NVStorage {
				s, err := OpenFile(afero.NewMemMapFs(), "/data/eeprom.bin", 64)
				require.NoError(t, err)
				return s
			},
		},
		{
			name: "bolt",
			open: func(t *testing.T) NVStorage {
				s, err := OpenBolt(filepath.Join(t.TempDir(), "eeprom.db"), 64)
				require.NoError(t, err)
				return s
			},
		},
	}
}

func TestBackendsStartErased(t *testing.T) {
	t.Parallel()

	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			t.Parallel()
			s := bc.open(t)
			defer func() { _ = s.Close() }()

			assert.Equal(t, 64, s.Size())
			buf := make([]byte, 64)
			require.NoError(t, s.ReadAt(0, buf))
			for i, v := range buf {
				assert.Equal(t, byte(ErasedByte), v, "cell %d", i)
			}
		})
	}
}

func TestBackendsReadWrite(t *testing.T) {
	t.Parallel()

	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			t.Parallel()
			s := bc.open(t)
			defer func() { _ = s.Close() }()

			require.NoError(t, s.WriteAt(10, []byte{1, 2, 3}))
			buf := make([]byte, 5)
			require.NoError(t, s.ReadAt(9, buf))
			assert.Equal(t, []byte{ErasedByte, 1, 2, 3, ErasedByte}, buf)

			require.NoError(t, Erase(s, 10, 3))
			require.NoError(t, s.ReadAt(9, buf))
			assert.Equal(t, erased(5), buf)
		})
	}
}

func TestBackendsOutOfRange(t *testing.T) {
	t.Parallel()

	for _, bc := range backends() {
		t.Run(bc.name, func(t *testing.T) {
			t.Parallel()
			s := bc.open(t)
			defer func() { _ = s.Close() }()

			require.ErrorIs(t, s.ReadAt(60, make([]byte, 8)), ErrOutOfRange)
			require.ErrorIs(t, s.WriteAt(-1, []byte{0}), ErrOutOfRange)
			require.ErrorIs(t, s.WriteAt(64, []byte{0}), ErrOutOfRange)
			require.NoError(t, s.WriteAt(63, []byte{0}))
		})
	}
}

func TestFilePersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	s, err := OpenFile(fs, "/data/eeprom.bin", 32)
	require.NoError(t, err)
	require.NoError(t, s.WriteAt(0, []byte{0xA5, 7}))
	require.NoError(t, s.Close())

	s, err = OpenFile(fs, "/data/eeprom.bin", 32)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	buf := make([]byte, 3)
	require.NoError(t, s.ReadAt(0, buf))
	assert.Equal(t, []byte{0xA5, 7, ErasedByte}, buf)
}

func TestFileGrowsShortImage(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	require.NoError(t, afero.WriteFile(fs, "/eeprom.bin", []byte{1, 2}, 0o600))

	s, err := OpenFile(fs, "/eeprom.bin", 4)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	buf := make([]byte, 4)
	require.NoError(t, s.ReadAt(0, buf))
	assert.Equal(t, []byte{1, 2, ErasedByte, ErasedByte}, buf)
}

func TestFileClosed(t *testing.T) {
	t.Parallel()

	s, err := OpenFile(afero.NewMemMapFs(), "/eeprom.bin", 4)
	require.NoError(t, err)
	require.NoError(t, s.Close())
	require.NoError(t, s.Close())
	require.Error(t, s.ReadAt(0, make([]byte, 1)))
}

func TestBoltPersistsAcrossReopen(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "eeprom.db")
	s, err := OpenBolt(path, 16)
	require.NoError(t, err)
	require.NoError(t, s.WriteAt(2, []byte{9, 8}))
	require.NoError(t, s.Close())

	s, err = OpenBolt(path, 32)
	require.NoError(t, err)
	defer func() { _ = s.Close() }()

	buf := make([]byte, 32)
	require.NoError(t, s.ReadAt(0, buf))
	want := erased(32)
	want[2], want[3] = 9, 8
	assert.Equal(t, want, buf)
}

func TestOpenBackends(t *testing.T) {
	t.Parallel()

	fs := afero.NewMemMapFs()
	dir := t.TempDir()

	for _, backend := range []string{BackendMemory, BackendFile, BackendBolt} {
		s, err := Open(fs, backend, filepath.Join(dir, backend+".img"), 16)
		require.NoError(t, err, backend)
		assert.Equal(t, 16, s.Size())
		require.NoError(t, s.Close())
	}

	_, err := Open(fs, "flash", "", 16)
	require.Error(t, err)

	_, err = OpenFile(fs, "/x.bin", 0)
	require.Error(t, err)
}
