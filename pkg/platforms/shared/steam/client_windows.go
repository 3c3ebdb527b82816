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

package steam

import (
	"github.com/rs/zerolog/log"
	"golang.org/x/sys/windows/registry"
)

const defaultFallbackPath = `C:\Program Files (x86)\Steam`

// registryKeys are checked in order, 64-bit systems first.
var registryKeys = []struct {
	path  string
	value string
	root  registry.Key
}{
	{root: registry.LOCAL_MACHINE, path: `SOFTWARE\Wow6432Node\Valve\Steam`, value: "InstallPath"},
	{root: registry.LOCAL_MACHINE, path: `SOFTWARE\Valve\Steam`, value: "InstallPath"},
	{root: registry.CURRENT_USER, path: `SOFTWARE\Valve\Steam`, value: "SteamPath"},
}

//nolint:gocritic // options copied for immutability
func candidateDirs(_ Options) []string {
	var paths []string
	for _, rk := range registryKeys {
		key, err := registry.OpenKey(rk.root, rk.path, registry.QUERY_VALUE)
		if err != nil {
			continue
		}

		installPath, _, err := key.GetStringValue(rk.value)
		if closeErr := key.Close(); closeErr != nil {
			log.Warn().Err(closeErr).Msg("error closing registry key")
		}
		if err != nil || installPath == "" {
			continue
		}
		paths = append(paths, installPath)
	}
	return paths
}
