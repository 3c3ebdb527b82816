//go:build linux || darwin

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
	"fmt"

	"github.com/ebitengine/purego"
	"golang.org/x/sys/unix"
)

func callN(fn uintptr, args ...uintptr) uintptr {
	r1, _, _ := purego.SyscallN(fn, args...)
	return r1
}

func cString(s string) (*byte, error) {
	p, err := unix.BytePtrFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid C string %q: %w", s, err)
	}
	return p, nil
}

func loadLibrary(path string) (nativeAPI, error) {
	handle, err := purego.Dlopen(path, purego.RTLD_NOW|purego.RTLD_LOCAL)
	if err != nil {
		return nil, &LibraryLoadError{Path: path, Err: err}
	}

	closeFn := func() error {
		if err := purego.Dlclose(handle); err != nil {
			return fmt.Errorf("failed to unload %s: %w", path, err)
		}
		return nil
	}

	sym, err := purego.Dlsym(handle, "CreateInterface")
	if err != nil {
		_ = closeFn()
		return nil, &SymbolResolutionError{Symbol: "CreateInterface", Err: err}
	}

	return &library{createInterface: sym, closeFn: closeFn}, nil
}
