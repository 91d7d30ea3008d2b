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

	bolt "go.etcd.io/bbolt"
)

const (
	BucketEEPROM = "eeprom"
	keyImage     = "image"
)

// Bolt is an NVStorage that keeps the whole EEPROM image as a single
// value in a bbolt database.
type Bolt struct {
	bdb  *bolt.DB
	size int
}

// OpenBolt opens or creates the database at path. A missing or short image
// is extended with erased cells.
func OpenBolt(path string, size int) (*Bolt, error) {
	if size <= 0 {
		return nil, fmt.Errorf("invalid storage size: %d", size)
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o750); err != nil {
		return nil, fmt.Errorf("failed to create storage directory: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{})
	if err != nil {
		return nil, fmt.Errorf("failed to open bolt database: %w", err)
	}

	err = db.Update(func(txn *bolt.Tx) error {
		b, err := txn.CreateBucketIfNotExists([]byte(BucketEEPROM))
		if err != nil {
			return fmt.Errorf("failed to create bucket: %w", err)
		}
		cur := b.Get([]byte(keyImage))
		if len(cur) >= size {
			return nil
		}
		img := erased(size)
		copy(img, cur)
		return b.Put([]byte(keyImage), img)
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to initialize bolt storage: %w", err)
	}

	return &Bolt{bdb: db, size: size}, nil
}

func (s *Bolt) ReadAt(addr int, buf []byte) error {
	if err := checkRange(addr, len(buf), s.size); err != nil {
		return err
	}
	err := s.bdb.View(func(txn *bolt.Tx) error {
		img, err := image(txn)
		if err != nil {
			return err
		}
		copy(buf, img[addr:])
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to view bolt database: %w", err)
	}
	return nil
}

func (s *Bolt) WriteAt(addr int, data []byte) error {
	if err := checkRange(addr, len(data), s.size); err != nil {
		return err
	}
	err := s.bdb.Update(func(txn *bolt.Tx) error {
		cur, err := image(txn)
		if err != nil {
			return err
		}
		// values returned by bolt are only valid inside the transaction
		// and must not be modified
		img := make([]byte, len(cur))
		copy(img, cur)
		copy(img[addr:], data)
		return txn.Bucket([]byte(BucketEEPROM)).Put([]byte(keyImage), img)
	})
	if err != nil {
		return fmt.Errorf("failed to update bolt database: %w", err)
	}
	return nil
}

func image(txn *bolt.Tx) ([]byte, error) {
	b := txn.Bucket([]byte(BucketEEPROM))
	if b == nil {
		return nil, fmt.Errorf("bucket %q does not exist", BucketEEPROM)
	}
	img := b.Get([]byte(keyImage))
	if img == nil {
		return nil, errors.New("eeprom image missing")
	}
	return img, nil
}

func (s *Bolt) Size() int {
	return s.size
}

func (s *Bolt) Close() error {
	if err := s.bdb.Close(); err != nil {
		return fmt.Errorf("failed to close bolt database: %w", err)
	}
	return nil
}
