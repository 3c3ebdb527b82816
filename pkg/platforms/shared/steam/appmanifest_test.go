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
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// vdfEscapePath escapes backslashes in paths for VDF files.
func vdfEscapePath(path string) string {
	return strings.ReplaceAll(path, `\`, `\\`)
}

func createMockManifest(t *testing.T, steamAppsDir string, appID uint32, name string) {
	t.Helper()

	appIDStr := strconv.FormatUint(uint64(appID), 10)
	content := `"AppState"
{
	"appid"		"` + appIDStr + `"
	"Universe"		"1"
	"name"		"` + name + `"
	"StateFlags"		"4"
	"installdir"		"` + name + `"
}`
	require.NoError(t, os.MkdirAll(steamAppsDir, 0o750))
	require.NoError(t, os.WriteFile(manifestPath(steamAppsDir, appID), []byte(content), 0o600))
}

func writeLibraryFolders(t *testing.T, steamAppsDir string, libraryPaths ...string) {
	t.Helper()

	var b strings.Builder
	b.WriteString("\"libraryfolders\"\n{\n")
	for i, p := range libraryPaths {
		b.WriteString("\t\"" + strconv.Itoa(i) + "\"\n\t{\n")
		b.WriteString("\t\t\"path\"\t\t\"" + vdfEscapePath(p) + "\"\n")
		b.WriteString("\t\t\"label\"\t\t\"\"\n")
		b.WriteString("\t}\n")
	}
	b.WriteString("}\n")

	require.NoError(t, os.MkdirAll(steamAppsDir, 0o750))
	require.NoError(t, os.WriteFile(
		filepath.Join(steamAppsDir, "libraryfolders.vdf"), []byte(b.String()), 0o600,
	))
}

func TestReadAppManifest(t *testing.T) {
	t.Parallel()

	t.Run("reads_valid_manifest", func(t *testing.T) {
		t.Parallel()

		steamAppsDir := t.TempDir()
		createMockManifest(t, steamAppsDir, 250900, "The Binding of Isaac: Rebirth")

		info, ok := ReadAppManifest(steamAppsDir, 250900)

		require.True(t, ok)
		assert.Equal(t, uint32(250900), info.AppID)
		assert.Equal(t, "The Binding of Isaac: Rebirth", info.Name)
		assert.Equal(t, filepath.Join(steamAppsDir, "common", "The Binding of Isaac: Rebirth"), info.InstallDir)
	})

	t.Run("returns_false_for_missing_app", func(t *testing.T) {
		t.Parallel()

		_, ok := ReadAppManifest(t.TempDir(), 999999)
		assert.False(t, ok)
	})

	t.Run("rejects_mismatched_id", func(t *testing.T) {
		t.Parallel()

		steamAppsDir := t.TempDir()
		createMockManifest(t, steamAppsDir, 10, "Counter-Strike")
		require.NoError(t, os.Rename(manifestPath(steamAppsDir, 10), manifestPath(steamAppsDir, 20)))

		_, ok := ReadAppManifest(steamAppsDir, 20)
		assert.False(t, ok)
	})

	t.Run("rejects_missing_name", func(t *testing.T) {
		t.Parallel()

		steamAppsDir := t.TempDir()
		content := `"AppState"
{
	"appid"		"440"
}`
		require.NoError(t, os.WriteFile(manifestPath(steamAppsDir, 440), []byte(content), 0o600))

		_, ok := ReadAppManifest(steamAppsDir, 440)
		assert.False(t, ok)
	})

	t.Run("case_insensitive_keys", func(t *testing.T) {
		t.Parallel()

		steamAppsDir := t.TempDir()
		content := `"appstate"
{
	"AppID"		"620"
	"Name"		"Portal 2"
	"InstallDir"		"Portal 2"
}`
		require.NoError(t, os.WriteFile(manifestPath(steamAppsDir, 620), []byte(content), 0o600))

		info, ok := ReadAppManifest(steamAppsDir, 620)
		require.True(t, ok)
		assert.Equal(t, "Portal 2", info.Name)
	})
}

func TestFindSteamAppsDir(t *testing.T) {
	t.Parallel()

	t.Run("lowercase", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "steamapps"), 0o750))
		assert.Equal(t, filepath.Join(root, "steamapps"), FindSteamAppsDir(root))
	})

	t.Run("nested", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		require.NoError(t, os.MkdirAll(filepath.Join(root, "steam", "steamapps"), 0o750))
		assert.Equal(t, filepath.Join(root, "steam", "steamapps"), FindSteamAppsDir(root))
	})

	t.Run("fallback", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		assert.Equal(t, filepath.Join(root, "steamapps"), FindSteamAppsDir(root))
	})
}

func TestLibraryDirs(t *testing.T) {
	t.Parallel()

	t.Run("main_only_without_libraryfolders", func(t *testing.T) {
		t.Parallel()

		main := t.TempDir()
		assert.Equal(t, []string{main}, LibraryDirs(main))
	})

	t.Run("adds_extra_libraries_once", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		main := filepath.Join(root, "steamapps")
		extra := t.TempDir()
		writeLibraryFolders(t, main, root, extra)

		dirs := LibraryDirs(main)
		assert.Len(t, dirs, 2)
		assert.Equal(t, main, dirs[0])
		assert.Contains(t, dirs, filepath.Join(extra, "steamapps"))
	})

	t.Run("legacy_string_entries", func(t *testing.T) {
		t.Parallel()

		main := t.TempDir()
		extra := t.TempDir()
		content := `"LibraryFolders"
{
	"TimeNextStatsReport"		"1234"
	"1"		"` + vdfEscapePath(extra) + `"
}`
		require.NoError(t, os.WriteFile(filepath.Join(main, "libraryfolders.vdf"), []byte(content), 0o600))

		assert.Equal(t, []string{main, filepath.Join(extra, "steamapps")}, LibraryDirs(main))
	})

	t.Run("invalid_vdf", func(t *testing.T) {
		t.Parallel()

		main := t.TempDir()
		require.NoError(t, os.WriteFile(filepath.Join(main, "libraryfolders.vdf"), []byte("{{{"), 0o600))
		assert.Equal(t, []string{main}, LibraryDirs(main))
	})
}

func TestFormatGameName(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "Half-Life 2", FormatGameName(220, "Half-Life 2"))
	assert.Equal(t, "Steam Game 220", FormatGameName(220, ""))
}
