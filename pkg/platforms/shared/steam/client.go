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

// Package steam finds the local Steam installation and reads its library
// metadata.
package steam

import (
	"os"

	"github.com/rs/zerolog/log"
)

// FindSteamDir returns the Steam root directory: the configured override
// when it exists, otherwise the first platform location found, otherwise
// opts.FallbackPath.
//
//nolint:gocritic // options copied for immutability
func FindSteamDir(opts Options) string {
	if opts.InstallDir != "" {
		if _, err := os.Stat(opts.InstallDir); err == nil {
			log.Debug().Msgf("using user-configured Steam directory: %s", opts.InstallDir)
			return opts.InstallDir
		}
		log.Warn().Msgf("user-configured Steam directory not found: %s", opts.InstallDir)
	}

	for _, path := range candidateDirs(opts) {
		if _, err := os.Stat(path); err == nil {
			log.Debug().Msgf("found Steam installation: %s", path)
			return path
		}
	}

	log.Debug().Msgf("Steam detection failed, using fallback: %s", opts.FallbackPath)
	return opts.FallbackPath
}

// IsSteamInstalled reports whether FindSteamDir resolves to an existing
// directory.
//
//nolint:gocritic // options copied for immutability
func IsSteamInstalled(opts Options) bool {
	steamDir := FindSteamDir(opts)
	if steamDir == "" {
		return false
	}
	info, err := os.Stat(steamDir)
	return err == nil && info.IsDir()
}
