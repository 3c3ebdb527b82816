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

import "github.com/samkit-project/samkit/pkg/config"

// Options controls where the Steam installation is looked for.
type Options struct {
	// InstallDir is a user override. When set and present on disk it wins
	// over every detected location.
	InstallDir string

	// FallbackPath is returned when nothing else is found.
	FallbackPath string

	// ExtraPaths are checked after the standard locations. Linux only.
	ExtraPaths []string

	// CheckFlatpak adds the Flatpak Steam data dir. Linux only.
	CheckFlatpak bool
}

// DefaultOptions returns the platform defaults.
func DefaultOptions() Options {
	return Options{
		FallbackPath: defaultFallbackPath,
		CheckFlatpak: true,
	}
}

// OptionsFromConfig applies the [steam] config section over the platform
// defaults.
func OptionsFromConfig(cfg *config.Instance) Options {
	opts := DefaultOptions()
	opts.InstallDir = cfg.SteamInstallDir()
	opts.ExtraPaths = cfg.SteamExtraPaths()
	opts.CheckFlatpak = cfg.SteamCheckFlatpak()
	return opts
}
