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

package config

import "slices"

type Steam struct {
	InstallDir   string   `toml:"install_dir,omitempty"`
	ExtraPaths   []string `toml:"extra_paths,omitempty,multiline"`
	CheckFlatpak bool     `toml:"check_flatpak"`
}

// SteamInstallDir is the user override for Steam detection, empty when unset.
func (c *Instance) SteamInstallDir() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Steam.InstallDir
}

func (c *Instance) SetSteamInstallDir(dir string) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.vals.Steam.InstallDir = dir
}

func (c *Instance) SteamExtraPaths() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return slices.Clone(c.vals.Steam.ExtraPaths)
}

func (c *Instance) SteamCheckFlatpak() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.vals.Steam.CheckFlatpak
}
