// SAMKit
// Copyright (c) 2026 The SAMKit Contributors.
// SPDX-License-Identifier: GPL-3.0-or-later
//
// This file is part of SAMKit.
//
// SAMKit is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// SAMKit is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with SAMKit.  If not, see <http://www.gnu.org/licenses/>.

package mocks

import (
	"fmt"

	"github.com/stretchr/testify/mock"
)

// MockSteamSession is a mock Steam client session using testify/mock.
type MockSteamSession struct {
	mock.Mock
}

// IsOwned reports the scripted ownership of appID.
func (m *MockSteamSession) IsOwned(appID uint32) (bool, error) {
	args := m.Called(appID)
	if err := args.Error(1); err != nil {
		return false, fmt.Errorf("mock operation failed: %w", err)
	}
	return args.Bool(0), nil
}

// Close releases the session.
func (m *MockSteamSession) Close() error {
	args := m.Called()
	if err := args.Error(0); err != nil {
		return fmt.Errorf("mock operation failed: %w", err)
	}
	return nil
}
