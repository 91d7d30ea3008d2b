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

// Package persist stores the edited date/time in non-volatile storage as a
// fixed 8-byte record guarded by a marker byte.
package persist

import (
	"encoding/binary"
	"fmt"

	"github.com/ZaparooProject/zaparoo-clock/pkg/datetime"
)

const (
	// Marker identifies a valid record. It differs from both the erased
	// (0xFF) and zeroed (0x00) cell patterns.
	Marker byte = 0xA5
	// RecordSize is the encoded length of a Record.
	RecordSize = 8
	// DefaultAddress is the storage offset of the record.
	DefaultAddress = 0
)

// Record is the persisted layout:
//
//	[marker:1][hour:1][minute:1][second:1][day:1][month:1][year:2 LE]
//
// Month is stored zero-based, the same as the edit buffer.
type Record struct {
	Marker byte
	Hour   uint8
	Minute uint8
	Second uint8
	Day    uint8
	Month  uint8
	Year   uint16
}

// NewRecord builds a marked record from b. b should already be clamped;
// the narrowing conversions assume in-range fields.
func NewRecord(b datetime.EditBuffer) Record {
	return Record{
		Marker: Marker,
		Hour:   uint8(b.Hour),   //nolint:gosec // clamped to 0..23
		Minute: uint8(b.Minute), //nolint:gosec // clamped to 0..59
		Second: uint8(b.Second), //nolint:gosec // clamped to 0..59
		Day:    uint8(b.Day),    //nolint:gosec // clamped to 1..31
		Month:  uint8(b.Month),  //nolint:gosec // clamped to 0..11
		Year:   uint16(b.Year),  //nolint:gosec // clamped to 2000..2099
	}
}

// Valid reports whether the record carries the marker.
func (r Record) Valid() bool {
	return r.Marker == Marker
}

// Buffer returns the record's fields as an unclamped edit buffer.
func (r Record) Buffer() datetime.EditBuffer {
	return datetime.EditBuffer{
		Hour:   int(r.Hour),
		Minute: int(r.Minute),
		Second: int(r.Second),
		Day:    int(r.Day),
		Month:  int(r.Month),
		Year:   int(r.Year),
	}
}

// MarshalBinary encodes r field by field in the fixed order.
func (r Record) MarshalBinary() ([]byte, error) {
	buf := make([]byte, RecordSize)
	buf[0] = r.Marker
	buf[1] = r.Hour
	buf[2] = r.Minute
	buf[3] = r.Second
	buf[4] = r.Day
	buf[5] = r.Month
	binary.LittleEndian.PutUint16(buf[6:], r.Year)
	return buf, nil
}

// UnmarshalBinary decodes a record. It does not check the marker.
func (r *Record) UnmarshalBinary(data []byte) error {
	if len(data) < RecordSize {
		return fmt.Errorf("record too short: %d bytes", len(data))
	}
	r.Marker = data[0]
	r.Hour = data[1]
	r.Minute = data[2]
	r.Second = data[3]
	r.Day = data[4]
	r.Month = data[5]
	r.Year = binary.LittleEndian.Uint16(data[6:])
	return nil
}

func (r Record) String() string {
	return fmt.Sprintf("%d:%d:%d %d/%d/%d", r.Hour, r.Minute, r.Second, r.Day, r.Month, r.Year)
}
