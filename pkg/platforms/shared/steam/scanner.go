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
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/rs/zerolog/log"
)

// InstalledApps maps the app id of every installed app across all Steam
// libraries to its manifest info. steamAppsDir is the main library's
// steamapps directory. Unreadable extra libraries and broken manifests
// are skipped; only a missing main library is an error.
func InstalledApps(steamAppsDir string) (map[uint32]AppInfo, error) {
	if _, err := os.Stat(steamAppsDir); err != nil {
		return nil, fmt.Errorf("steam library not found: %w", err)
	}

	apps := make(map[uint32]AppInfo)
	for _, dir := range LibraryDirs(steamAppsDir) {
		entries, err := os.ReadDir(dir)
		if err != nil {
			log.Warn().Err(err).Str("path", dir).Msg("error listing steamapps folder")
			continue
		}

		for _, e := range entries {
			name := e.Name()
			if e.IsDir() || !strings.HasPrefix(name, "appmanifest_") || !strings.HasSuffix(name, ".acf") {
				continue
			}

			info, err := parseAppManifest(dir, filepath.Join(dir, name))
			if err != nil {
				log.Warn().Err(err).Msg("skipping app manifest")
				continue
			}
			if _, dup := apps[info.AppID]; dup {
				log.Debug().Uint32("appid", info.AppID).Msg("app installed in more than one library")
				continue
			}
			apps[info.AppID] = info
		}
	}

	log.Debug().Int("count", len(apps)).Msg("installed Steam apps scanned")
	return apps, nil
}
