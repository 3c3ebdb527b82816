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
	"context"
	"fmt"

	"github.com/samkit-project/samkit/pkg/storefront"
	"github.com/stretchr/testify/mock"
)

// MockProber is a mock implementation of the filter Prober interface using
// testify/mock.
type MockProber struct {
	mock.Mock
}

// Probe returns the scripted result for appID.
func (m *MockProber) Probe(ctx context.Context, appID uint32) (storefront.ProbeResult, error) {
	args := m.Called(ctx, appID)
	res, _ := args.Get(0).(storefront.ProbeResult)
	if err := args.Error(1); err != nil {
		return res, fmt.Errorf("mock operation failed: %w", err)
	}
	return res, nil
}
