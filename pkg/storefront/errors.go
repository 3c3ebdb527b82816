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

package storefront

import (
	"errors"
	"fmt"
)

var (
	ErrTransport       = errors.New("app list request failed")
	ErrDeserialization = errors.New("app list response could not be decoded")
)

// TransportError means no usable response was obtained. StatusCode is set
// when the server answered with something other than 200.
type TransportError struct {
	Err        error
	StatusCode int
}

func (e *TransportError) Error() string {
	if e.StatusCode != 0 {
		return fmt.Sprintf("%s: unexpected status %d", ErrTransport, e.StatusCode)
	}
	return fmt.Sprintf("%s: %v", ErrTransport, e.Err)
}

func (e *TransportError) Unwrap() error {
	return e.Err
}

func (*TransportError) Is(target error) bool {
	return target == ErrTransport
}

// DeserializationError carries the decoder's diagnostic for a response that
// did not match the expected schema.
type DeserializationError struct {
	Err    error
	Detail string
}

func (e *DeserializationError) Error() string {
	return fmt.Sprintf("%s: '%s'", ErrDeserialization, e.Detail)
}

func (e *DeserializationError) Unwrap() error {
	return e.Err
}

func (*DeserializationError) Is(target error) bool {
	return target == ErrDeserialization
}
