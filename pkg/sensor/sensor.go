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

// Package sensor reads the ambient light level used to dim the display.
package sensor

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/afero"
)

// FileLight reads raw 0..1023 light samples from a file such as an ADC
// sysfs node (in_voltage0_raw). It implements session.LightSensor.
type FileLight struct {
	fs   afero.Fs
	path string
}

func NewFileLight(fs afero.Fs, path string) *FileLight {
	return &FileLight{fs: fs, path: path}
}

func (s *FileLight) Read() (int, error) {
	data, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return 0, fmt.Errorf("failed to read light sensor: %w", err)
	}
	v, err := strconv.Atoi(strings.TrimSpace(string(data)))
	if err != nil {
		return 0, fmt.Errorf("invalid light sample %q: %w", strings.TrimSpace(string(data)), err)
	}
	return v, nil
}
