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

// Package input turns a keyboard byte stream (a terminal or a serial
// console) into menu navigation commands.
package input

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/ZaparooProject/zaparoo-clock/pkg/menu"
	"github.com/rs/zerolog/log"
	"go.bug.st/serial"
)

const (
	keyEsc       = 0x1b
	keyBackspace = 0x08
	keyDelete    = 0x7f
)

// Decoder reads keys from a byte stream. Arrow escape sequences, vi and
// WASD keys, Enter and Backspace are recognized; other bytes are skipped.
type Decoder struct {
	r      *bufio.Reader
	lastCR bool
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: bufio.NewReader(r)}
}

// Next returns the next recognized command.
func (d *Decoder) Next() (menu.Command, error) {
	for {
		b, err := d.r.ReadByte()
		if err != nil {
			return 0, err //nolint:wrapcheck // io.EOF must stay comparable
		}

		wasCR := d.lastCR
		d.lastCR = b == '\r'

		switch b {
		case keyEsc:
			cmd, ok, err := d.escape()
			if err != nil {
				return 0, err
			}
			if ok {
				return cmd, nil
			}
		case 'w', 'W', 'k':
			return menu.Up, nil
		case 's', 'S', 'j':
			return menu.Down, nil
		case '\r', ' ':
			return menu.Enter, nil
		case '\n':
			if !wasCR {
				return menu.Enter, nil
			}
		case keyBackspace, keyDelete, 'q', 'Q':
			return menu.BackCmd, nil
		}
	}
}

// escape decodes the remainder of an ESC [ X sequence.
func (d *Decoder) escape() (menu.Command, bool, error) {
	b, err := d.r.ReadByte()
	if err != nil {
		return 0, false, err //nolint:wrapcheck // io.EOF must stay comparable
	}
	if b != '[' && b != 'O' {
		return 0, false, nil
	}
	b, err = d.r.ReadByte()
	if err != nil {
		return 0, false, err //nolint:wrapcheck // io.EOF must stay comparable
	}
	switch b {
	case 'A':
		return menu.Up, true, nil
	case 'B':
		return menu.Down, true, nil
	case 'C':
		return menu.Enter, true, nil
	case 'D':
		return menu.BackCmd, true, nil
	default:
		return 0, false, nil
	}
}

// Pump decodes r until it ends or ctx is done, sending each command to
// out. A clean end of stream returns nil.
func Pump(ctx context.Context, r io.Reader, out chan<- menu.Command) error {
	d := NewDecoder(r)
	for {
		cmd, err := d.Next()
		if errors.Is(err, io.EOF) {
			return nil
		} else if err != nil {
			return fmt.Errorf("failed to read input: %w", err)
		}

		log.Debug().Msgf("input: %s", cmd)
		select {
		case out <- cmd:
		case <-ctx.Done():
			return nil
		}
	}
}

// OpenSerial opens a serial console used as the keyboard.
func OpenSerial(path string, baud int) (serial.Port, error) {
	port, err := serial.Open(path, &serial.Mode{
		BaudRate: baud,
		DataBits: 8,
		Parity:   serial.NoParity,
		StopBits: serial.OneStopBit,
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open serial port: %w", err)
	}
	log.Info().Str("device", path).Int("baud", baud).Msg("serial keyboard connected")
	return port, nil
}
