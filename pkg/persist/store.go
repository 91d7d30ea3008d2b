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
	"fmt"

	"github.com/ZaparooProject/zaparoo-clock/pkg/datetime"
	"github.com/ZaparooProject/zaparoo-clock/pkg/storage"
	"github.com/rs/zerolog/log"
)

// ErrNoValidRecord is returned by Load when the storage holds no marked
// record, either because it was never written or it holds another layout.
var ErrNoValidRecord = errors.New("no valid saved record")

// Store saves and loads the edit buffer at a fixed storage address.
type Store struct {
	nv   storage.NVStorage
	addr int
}

func NewStore(nv storage.NVStorage, addr int) *Store {
	return &Store{nv: nv, addr: addr}
}

// Save clamps b, writes it as a marked record and reads the record back
// for the diagnostic log.
func (s *Store) Save(b *datetime.EditBuffer) error {
	datetime.Clamp(b)
	rec := NewRecord(*b)

	data, err := rec.MarshalBinary()
	if err != nil {
		return fmt.Errorf("failed to encode record: %w", err)
	}

	if err := s.nv.WriteAt(s.addr, data); err != nil {
		return fmt.Errorf("failed to write record: %w", err)
	}

	check, err := s.read()
	if err != nil {
		log.Warn().Err(err).Msg("saved record read-back failed")
		return nil
	}
	if check != rec {
		log.Warn().Msgf("saved record read-back mismatch: wrote %s, read %s", rec, check)
		return nil
	}
	log.Info().Msgf("saved date/time to storage: %s", check)

	return nil
}

// Load reads the record and returns it as a clamped buffer. If the marker
// does not match, ErrNoValidRecord is returned and nothing else happens.
func (s *Store) Load() (datetime.EditBuffer, error) {
	rec, err := s.read()
	if err != nil {
		return datetime.EditBuffer{}, err
	}
	if !rec.Valid() {
		log.Debug().Msgf("storage marker 0x%02X does not match 0x%02X", rec.Marker, Marker)
		return datetime.EditBuffer{}, ErrNoValidRecord
	}

	log.Info().Msgf("loaded raw record from storage: %s", rec)

	b := rec.Buffer()
	datetime.Clamp(&b)
	return b, nil
}

func (s *Store) read() (Record, error) {
	buf := make([]byte, RecordSize)
	if err := s.nv.ReadAt(s.addr, buf); err != nil {
		return Record{}, fmt.Errorf("failed to read record: %w", err)
	}
	var rec Record
	if err := rec.UnmarshalBinary(buf); err != nil {
		return Record{}, err
	}
	return rec, nil
}

// Clear erases the record so the next Load reports ErrNoValidRecord.
func (s *Store) Clear() error {
	return storage.Erase(s.nv, s.addr, RecordSize)
}
