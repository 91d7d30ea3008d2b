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

package mocks

import (
	"fmt"

	"github.com/stretchr/testify/mock"
)

// MockStorage is a mock implementation of storage.NVStorage using testify/mock.
// ReadAt fills buf from the bytes passed as the second return argument.
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) ReadAt(addr int, buf []byte) error {
	args := m.Called(addr, len(buf))
	if data, ok := args.Get(0).([]byte); ok {
		copy(buf, data)
	}
	if err := args.Error(1); err != nil {
		return fmt.Errorf("mock operation failed: %w", err)
	}
	return nil
}

func (m *MockStorage) WriteAt(addr int, data []byte) error {
	args := m.Called(addr, data)
	if err := args.Error(0); err != nil {
		return fmt.Errorf("mock operation failed: %w", err)
	}
	return nil
}

func (m *MockStorage) Size() int {
	args := m.Called()
	return args.Int(0)
}

func (m *MockStorage) Close() error {
	args := m.Called()
	if err := args.Error(0); err != nil {
		return fmt.Errorf("mock operation failed: %w", err)
	}
	return nil
}
