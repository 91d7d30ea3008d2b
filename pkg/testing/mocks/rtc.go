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

	"github.com/ZaparooProject/zaparoo-clock/pkg/rtc"
	"github.com/stretchr/testify/mock"
)

// MockRTC is a mock implementation of the rtc.RTC interface using testify/mock.
type MockRTC struct {
	mock.Mock
	callback func()
}

// NewMockRTC creates a new MockRTC.
func NewMockRTC() *MockRTC {
	return &MockRTC{}
}

// GetTime returns the mocked hardware time
func (m *MockRTC) GetTime() (rtc.HardwareTime, error) {
	args := m.Called()
	ht, _ := args.Get(0).(rtc.HardwareTime)
	if err := args.Error(1); err != nil {
		return ht, fmt.Errorf("mock operation failed: %w", err)
	}
	return ht, nil
}

// SetTime records the written hardware time
func (m *MockRTC) SetTime(ht rtc.HardwareTime) error {
	args := m.Called(ht)
	if err := args.Error(0); err != nil {
		return fmt.Errorf("mock operation failed: %w", err)
	}
	return nil
}

// SetPeriodicCallback records the period and keeps fn so tests can fire it with Tick.
func (m *MockRTC) SetPeriodicCallback(fn func(), period rtc.Period) error {
	args := m.Called(period)
	m.callback = fn
	if err := args.Error(0); err != nil {
		return fmt.Errorf("mock operation failed: %w", err)
	}
	return nil
}

// Tick invokes the registered periodic callback, if any.
func (m *MockRTC) Tick() {
	if m.callback != nil {
		m.callback()
	}
}
