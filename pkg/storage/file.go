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
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/ZaparooProject/zaparoo-clock/pkg/helpers/syncutil"
	"github.com/rs/zerolog/log"
	"github.com/spf13/afero"
)

// File is an NVStorage backed by an EEPROM image file.
type File struct {
	f    afero.File
	path string
	size int
	mu   syncutil.Mutex
}

// OpenFile opens the image at path on fs, creating it erased if it does
// not exist and padding it with erased cells if it is shorter than size.
func OpenFile(fs afero.Fs, path string, size int) (*File, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid storage size: %d", size)
	}

	if err := fs.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	f, err := fs.OpenFile(path, os.O_RDWR|os.O_CREATE, 0o600)
	if err != nil {
		return nil, fmt.Errorf("failed to open storage image: %w", err)
	}

	info, err := f.Stat()
	if err != nil {
		_ = f.Close()
		return nil, fmt.Errorf("failed to stat storage image: %w", err)
	}

	if cur := int(info.Size()); cur < size {
		log.Info().Msgf("initializing storage image %s (%d -> %d bytes)", path, cur, size)
		if _, err := f.WriteAt(erased(size-cur), int64(cur)); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to initialize storage image: %w", err)
		}
		if err := f.Sync(); err != nil {
			_ = f.Close()
			return nil, fmt.Errorf("failed to sync storage image: %w", err)
		}
	}

	return &File{f: f, path: path, size: size}, nil
}

func (s *File) ReadAt(addr int, buf []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := checkRange(addr, len(buf), s.size); err != nil {
		return err
	}
	if s.f == nil {
		return errors.New("storage image closed")
	}
	if _, err := s.f.ReadAt(buf, int64(addr)); err != nil {
		return fmt.Errorf("failed to read storage image: %w", err)
	}
	return nil
}

func (s *File) WriteAt(addr int, data []byte) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := checkRange(addr, len(data), s.size); err != nil {
		return err
	}
	if s.f == nil {
		return errors.New("storage image closed")
	}
	if _, err := s.f.WriteAt(data, int64(addr)); err != nil {
		return fmt.Errorf("failed to write storage image: %w", err)
	}
	if err := s.f.Sync(); err != nil {
		return fmt.Errorf("failed to sync storage image: %w", err)
	}
	return nil
}

func (s *File) Size() int {
	return s.size
}

func (s *File) Close() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.f == nil {
		return nil
	}
	err := s.f.Close()
	s.f = nil
	if err != nil {
		return fmt.Errorf("failed to close storage image: %w", err)
	}
	return nil
}
