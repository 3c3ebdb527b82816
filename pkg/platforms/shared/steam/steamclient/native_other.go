//go:build !linux && !darwin && !windows

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
	"path/filepath"
)

// LibraryPath returns the client library inside a Steam install.
func LibraryPath(steamDir string) string {
	return filepath.Join(steamDir, "steamclient")
}

func loadLibrary(path string) (nativeAPI, error) {
	return nil, &LibraryLoadError{Path: path, Err: errors.ErrUnsupported}
}
