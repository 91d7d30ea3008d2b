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

package persist

import (
	"errors"
	"testing"

	"github.com/ZaparooProject/zaparoo-clock/pkg/calendar"
	"github.com/ZaparooProject/zaparoo-clock/pkg/datetime"
	"github.com/ZaparooProject/zaparoo-clock/pkg/storage"
	"github.com/ZaparooProject/zaparoo-clock/pkg/testing/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"pgregory.net/rapid"
)

func TestRecordLayout(t *testing.T) {
	t.Parallel()

	rec := NewRecord(datetime.EditBuffer{Hour: 23, Minute: 59, Second: 58, Day: 31, Month: 11, Year: 2099})
	data, err := rec.MarshalBinary()
	require.NoError(t, err)
	// 2099 = 0x0833
	assert.Equal(t, []byte{0xA5, 23, 59, 58, 31, 11, 0x33, 0x08}, data)

	var back Record
	require.NoError(t, back.UnmarshalBinary(data))
	assert.Equal(t, rec, back)
	assert.True(t, back.Valid())

	require.Error(t, back.UnmarshalBinary(data[:7]))
}

func TestBoundarySaveLoad(t *testing.T) {
	t.Parallel()

	s := NewStore(storage.NewMemory(storage.DefaultSize), DefaultAddress)
	b := datetime.EditBuffer{Hour: 23, Minute: 59, Second: 59, Day: 31, Month: 11, Year: 2099}
	want := b

	require.NoError(t, s.Save(&b))
	assert.Equal(t, want, b)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, want, got)
}

func TestSaveClampsBuffer(t *testing.T) {
	t.Parallel()

	s := NewStore(storage.NewMemory(64), 16)
	b := datetime.EditBuffer{Hour: 99, Minute: 5, Second: 5, Day: 35, Month: 1, Year: 2023}
	require.NoError(t, s.Save(&b))
	assert.Equal(t, datetime.EditBuffer{Hour: 23, Minute: 5, Second: 5, Day: 28, Month: 1, Year: 2023}, b)

	got, err := s.Load()
	require.NoError(t, err)
	assert.Equal(t, b, got)
}

func TestSaveWritesOnceThenReadsBack(t *testing.T) {
	t.Parallel()

	b := datetime.EditBuffer{Hour: 1, Minute: 2, Second: 3, Day: 4, Month: 5, Year: 2030}
	data, err := NewRecord(b).MarshalBinary()
	require.NoError(t, err)

	m := &mocks.MockStorage{}
	write := m.On("WriteAt", 3, data).Return(nil).Once()
	m.On("ReadAt", 3, RecordSize).Return(data, nil).Once().NotBefore(write)

	require.NoError(t, NewStore(m, 3).Save(&b))
	m.AssertExpectations(t)
	m.AssertNumberOfCalls(t, "WriteAt", 1)
	m.AssertNumberOfCalls(t, "ReadAt", 1)
}

func TestSaveReadBackFailureIsNotFatal(t *testing.T) {
	t.Parallel()

	m := &mocks.MockStorage{}
	m.On("WriteAt", 0, mock.Anything).Return(nil)
	m.On("ReadAt", 0, RecordSize).Return(nil, errors.New("read fault"))

	b := datetime.NewEditBuffer()
	require.NoError(t, NewStore(m, 0).Save(&b))
}

func TestSaveWriteError(t *testing.T) {
	t.Parallel()

	s := NewStore(storage.NewMemory(4), 0)
	b := datetime.NewEditBuffer()
	err := s.Save(&b)
	require.ErrorIs(t, err, storage.ErrOutOfRange)
}

func TestLoadRejectsInvalidMarker(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data []byte
	}{
		{name: "erased storage", data: []byte{0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF, 0xFF}},
		{name: "zeroed storage", data: []byte{0, 0, 0, 0, 0, 0, 0, 0}},
		{name: "other layout", data: []byte{0x5A, 12, 0, 0, 1, 0, 0xE8, 0x07}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			nv := storage.NewMemory(16)
			require.NoError(t, nv.WriteAt(0, tt.data))

			got, err := NewStore(nv, 0).Load()
			require.ErrorIs(t, err, ErrNoValidRecord)
			assert.Equal(t, datetime.EditBuffer{}, got)

			after := make([]byte, len(tt.data))
			require.NoError(t, nv.ReadAt(0, after))
			assert.Equal(t, tt.data, after)
		})
	}
}

func TestLoadClampsCorruptedRecord(t *testing.T) {
	t.Parallel()

	nv := storage.NewMemory(16)
	// marker valid but fields from a broken write
	require.NoError(t, nv.WriteAt(0, []byte{Marker, 200, 77, 60, 31, 1, 0xFF, 0xFF}))

	got, err := NewStore(nv, 0).Load()
	require.NoError(t, err)
	assert.Equal(t, datetime.EditBuffer{Hour: 23, Minute: 59, Second: 59, Day: 28, Month: 1, Year: 2099}, got)
}

func TestLoadReadError(t *testing.T) {
	t.Parallel()

	_, err := NewStore(storage.NewMemory(4), 0).Load()
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoValidRecord)
}

func TestClear(t *testing.T) {
	t.Parallel()

	s := NewStore(storage.NewMemory(16), 0)
	b := datetime.NewEditBuffer()
	require.NoError(t, s.Save(&b))
	require.NoError(t, s.Clear())

	_, err := s.Load()
	require.ErrorIs(t, err, ErrNoValidRecord)
}

// TestPropertySaveLoadRoundTrip verifies load(save(v)) == v for valid buffers.
func TestPropertySaveLoadRoundTrip(t *testing.T) {
	t.Parallel()
	rapid.Check(t, func(t *rapid.T) {
		month := rapid.IntRange(datetime.MinMonth, datetime.MaxMonth).Draw(t, "month")
		year := rapid.IntRange(datetime.MinYear, datetime.MaxYear).Draw(t, "year")
		v := datetime.EditBuffer{
			Hour:   rapid.IntRange(datetime.MinHour, datetime.MaxHour).Draw(t, "hour"),
			Minute: rapid.IntRange(datetime.MinMinute, datetime.MaxMinute).Draw(t, "minute"),
			Second: rapid.IntRange(datetime.MinSecond, datetime.MaxSecond).Draw(t, "second"),
			Day:    rapid.IntRange(datetime.MinDay, calendar.DaysInMonth(month, year)).Draw(t, "day"),
			Month:  month,
			Year:   year,
		}
		addr := rapid.IntRange(0, storage.DefaultSize-RecordSize).Draw(t, "addr")

		s := NewStore(storage.NewMemory(storage.DefaultSize), addr)
		b := v
		if err := s.Save(&b); err != nil {
			t.Fatalf("save: %v", err)
		}
		got, err := s.Load()
		if err != nil {
			t.Fatalf("load: %v", err)
		}
		if got != v {
			t.Fatalf("round trip mismatch: %+v != %+v", got, v)
		}
	})
}
