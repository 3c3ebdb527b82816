//go:build windows

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
	"path/filepath"
	"syscall"

	"golang.org/x/sys/windows"
)

// LibraryPath returns the client library inside a Steam install.
func LibraryPath(steamDir string) string {
	return filepath.Join(steamDir, "steamclient64.dll")
}

func callN(fn uintptr, args ...uintptr) uintptr {
	r1, _, _ := syscall.SyscallN(fn, args...)
	return r1
}

func cString(s string) (*byte, error) {
	p, err := windows.BytePtrFromString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid C string %q: %w", s, err)
	}
	return p, nil
}

func loadLibrary(path string) (nativeAPI, error) {
	// the DLL pulls in siblings from the Steam dir
	handle, err := windows.LoadLibraryEx(path, 0, windows.LOAD_WITH_ALTERED_SEARCH_PATH)
	if err != nil {
		return nil, &LibraryLoadError{Path: path, Err: err}
	}

	closeFn := func() error {
		if err := windows.FreeLibrary(handle); err != nil {
			return fmt.Errorf("failed to unload %s: %w", path, err)
		}
		return nil
	}

	sym, err := windows.GetProcAddress(handle, "CreateInterface")
	if err != nil {
		_ = closeFn()
		return nil, &SymbolResolutionError{Symbol: "CreateInterface", Err: err}
	}

	return &library{createInterface: sym, closeFn: closeFn}, nil
}
