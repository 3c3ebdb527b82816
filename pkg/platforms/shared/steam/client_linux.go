//go:build linux

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

package steam

import (
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// FlatpakSteamID is the Flatpak app ID for Steam.
const FlatpakSteamID = "com.valvesoftware.Steam"

const defaultFallbackPath = "/usr/games/steam"

// flatpakAppPath returns the data path for a specific Flatpak app.
func flatpakAppPath(home, appID string) string {
	return filepath.Join(home, ".var", "app", appID)
}

//nolint:gocritic // options copied for immutability
func candidateDirs(opts Options) []string {
	home, err := os.UserHomeDir()
	if err != nil {
		log.Warn().Err(err).Msg("failed to get user home directory")
		return opts.ExtraPaths
	}

	paths := []string{
		filepath.Join(home, ".steam", "steam"),
		filepath.Join(home, ".local", "share", "Steam"),
	}
	paths = append(paths, opts.ExtraPaths...)

	if opts.CheckFlatpak {
		paths = append(paths, filepath.Join(
			flatpakAppPath(home, FlatpakSteamID),
			".steam", "steam",
		))
	}

	return append(paths,
		filepath.Join(home, "snap", "steam", "common", ".steam", "steam"),
		"/usr/games/steam",
		"/opt/steam",
	)
}
