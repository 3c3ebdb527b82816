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

package steamclient

import (
	"errors"
	"fmt"
)

var (
	// ErrNoSession means the library loaded but Steam refused a pipe or
	// user, usually because the client is not running or nobody is
	// logged in.
	ErrNoSession = errors.New("no Steam client session available")
	ErrClosed    = errors.New("steam client session is closed")
)

// LibraryLoadError is returned when the native library cannot be loaded.
type LibraryLoadError struct {
	Err  error
	Path string
}

func (e *LibraryLoadError) Error() string {
	return fmt.Sprintf("failed to load Steam client library %s: %v", e.Path, e.Err)
}

func (e *LibraryLoadError) Unwrap() error {
	return e.Err
}

// SymbolResolutionError is returned when an entry point or interface
// cannot be resolved from a loaded library.
type SymbolResolutionError struct {
	Err    error
	Symbol string
}

func (e *SymbolResolutionError) Error() string {
	if e.Err == nil {
		return "failed to resolve " + e.Symbol
	}
	return fmt.Sprintf("failed to resolve %s: %v", e.Symbol, e.Err)
}

func (e *SymbolResolutionError) Unwrap() error {
	return e.Err
}
