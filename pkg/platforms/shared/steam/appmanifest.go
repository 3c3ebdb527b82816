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
	"strconv"

	"github.com/rs/zerolog/log"
)

// AppInfo contains metadata for a Steam app from its manifest.
type AppInfo struct {
	Name string
	// InstallDir is the absolute game directory under steamapps/common.
	InstallDir string
	AppID      uint32
}

func manifestPath(steamAppsDir string, appID uint32) string {
	return filepath.Join(steamAppsDir, fmt.Sprintf("appmanifest_%d.acf", appID))
}

// ReadAppManifest reads appmanifest_<id>.acf from steamAppsDir.
func ReadAppManifest(steamAppsDir string, appID uint32) (AppInfo, bool) {
	info, err := parseAppManifest(steamAppsDir, manifestPath(steamAppsDir, appID))
	if err != nil {
		log.Debug().Err(err).Uint32("appid", appID).Msg("failed to read app manifest")
		return AppInfo{}, false
	}
	if info.AppID != appID {
		log.Warn().Uint32("appid", appID).Uint32("manifest_appid", info.AppID).Msg("app manifest id mismatch")
		return AppInfo{}, false
	}
	return info, true
}

func parseAppManifest(steamAppsDir, path string) (AppInfo, error) {
	m, err := readVDFFile(path)
	if err != nil {
		return AppInfo{}, err
	}

	appState, ok := vdfSection(m, "appstate")
	if !ok {
		return AppInfo{}, fmt.Errorf("appstate not found in %s", path)
	}

	idStr, ok := appState["appid"].(string)
	if !ok {
		return AppInfo{}, fmt.Errorf("appid not found in %s", path)
	}
	appID, err := strconv.ParseUint(idStr, 10, 32)
	if err != nil {
		return AppInfo{}, fmt.Errorf("invalid appid %q in %s: %w", idStr, path, err)
	}

	name, ok := appState["name"].(string)
	if !ok {
		return AppInfo{}, fmt.Errorf("name not found in %s", path)
	}

	info := AppInfo{AppID: uint32(appID), Name: name}
	if dir, ok := appState["installdir"].(string); ok && dir != "" {
		info.InstallDir = filepath.Join(steamAppsDir, "common", dir)
	}
	return info, nil
}

// FindSteamAppsDir finds the steamapps directory from a Steam root directory.
// It checks for both lowercase and mixed-case "steamapps" directories.
func FindSteamAppsDir(steamDir string) string {
	candidates := []string{
		"steamapps",
		"SteamApps",
		"steam/steamapps",
	}

	for _, candidate := range candidates {
		path := filepath.Join(steamDir, candidate)
		if info, err := os.Stat(path); err == nil && info.IsDir() {
			return path
		}
	}

	return filepath.Join(steamDir, "steamapps")
}

// LibraryDirs returns the steamapps directory of every Steam library:
// mainSteamAppsDir first, then each library listed in its
// libraryfolders.vdf. Duplicates are removed.
func LibraryDirs(mainSteamAppsDir string) []string {
	dirs := []string{mainSteamAppsDir}
	seen := map[string]struct{}{filepath.Clean(mainSteamAppsDir): {}}

	m, err := readVDFFile(filepath.Join(mainSteamAppsDir, "libraryfolders.vdf"))
	if err != nil {
		log.Debug().Err(err).Msg("no additional Steam libraries")
		return dirs
	}

	lfs, ok := vdfSection(m, "libraryfolders")
	if !ok {
		log.Warn().Msg("libraryfolders is not a map")
		return dirs
	}

	for id, v := range lfs {
		ls, ok := v.(map[string]any)
		if !ok {
			// old format: "1" "D:\\SteamLibrary"
			path, isStr := v.(string)
			if _, numErr := strconv.Atoi(id); isStr && numErr == nil && path != "" {
				ls = map[string]any{"path": path}
			} else {
				continue
			}
		}

		libraryPath, ok := ls["path"].(string)
		if !ok || libraryPath == "" {
			log.Debug().Msgf("library %s has no path", id)
			continue
		}

		dir := filepath.Clean(filepath.Join(libraryPath, "steamapps"))
		if _, dup := seen[dir]; dup {
			continue
		}
		seen[dir] = struct{}{}
		dirs = append(dirs, dir)
	}

	return dirs
}

// FormatGameName returns name, or "Steam Game <id>" when it is empty.
func FormatGameName(appID uint32, name string) string {
	if name != "" {
		return name
	}
	return fmt.Sprintf("Steam Game %d", appID)
}
