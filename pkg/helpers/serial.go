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

package helpers

import (
	"fmt"
	"runtime"
	"strings"

	"go.bug.st/serial"
)

var serialPrefixes = map[string][]string{
	"linux":   {"/dev/ttyUSB", "/dev/ttyACM", "/dev/ttyS"},
	"darwin":  {"/dev/tty.usbserial", "/dev/tty.usbmodem"},
	"windows": {"COM"},
}

// filterSerialPorts keeps the ports that look like a usable keypad link
// on the given OS. Unknown OSes keep everything.
func filterSerialPorts(goos string, ports []string) []string {
	prefixes, ok := serialPrefixes[goos]
	if !ok {
		return ports
	}

	devices := make([]string, 0, len(ports))
	for _, p := range ports {
		for _, prefix := range prefixes {
			if strings.HasPrefix(p, prefix) {
				devices = append(devices, p)
				break
			}
		}
	}
	return devices
}

// GetSerialDeviceList returns serial ports an input device may be
// attached to.
func GetSerialDeviceList() ([]string, error) {
	ports, err := serial.GetPortsList()
	if err != nil {
		return nil, fmt.Errorf("failed to get serial ports list: %w", err)
	}
	return filterSerialPorts(runtime.GOOS, ports), nil
}
