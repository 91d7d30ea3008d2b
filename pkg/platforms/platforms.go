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

// Package platforms describes the host the clock runs on: where it keeps
// its config, persistent data and logs.
package platforms

const (
	PlatformIDLinux = "linux"
	PlatformIDTest  = "test"
)

// Settings holds the platform's directories.
type Settings struct {
	// DataDir is the root folder where the EEPROM image is stored.
	DataDir string
	// ConfigDir is the directory where the config file is stored.
	ConfigDir string
	// TempDir is where logs are written. Expect it to be deleted.
	TempDir string
}

// Platform is implemented by each supported host.
type Platform interface {
	// ID returns the unique ID of this platform.
	ID() string
	// Settings returns the platform's directories.
	Settings() Settings
}
