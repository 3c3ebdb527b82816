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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInstalledApps(t *testing.T) {
	t.Parallel()

	t.Run("missing_main_library", func(t *testing.T) {
		t.Parallel()

		_, err := InstalledApps(filepath.Join(t.TempDir(), "steamapps"))
		require.Error(t, err)
	})

	t.Run("scans_all_libraries", func(t *testing.T) {
		t.Parallel()

		root := t.TempDir()
		main := filepath.Join(root, "steamapps")
		extraRoot := t.TempDir()
		extra := filepath.Join(extraRoot, "steamapps")

		writeLibraryFolders(t, main, root, extraRoot, filepath.Join(t.TempDir(), "gone"))
		createMockManifest(t, main, 730, "Counter-Strike 2")
		createMockManifest(t, extra, 220, "Half-Life 2")
		// duplicate install in the second library keeps the first one
		createMockManifest(t, extra, 730, "Counter-Strike 2")
		require.NoError(t, os.WriteFile(filepath.Join(main, "appmanifest_1.acf"), []byte("garbage {"), 0o600))
		require.NoError(t, os.WriteFile(filepath.Join(main, "readme.txt"), []byte("hi"), 0o600))

		apps, err := InstalledApps(main)
		require.NoError(t, err)
		require.Len(t, apps, 2)

		assert.Equal(t, "Counter-Strike 2", apps[730].Name)
		assert.Equal(t, filepath.Join(main, "common", "Counter-Strike 2"), apps[730].InstallDir)
		assert.Equal(t, "Half-Life 2", apps[220].Name)
		assert.Equal(t, filepath.Join(extra, "common", "Half-Life 2"), apps[220].InstallDir)
	})

	t.Run("empty_library", func(t *testing.T) {
		t.Parallel()

		apps, err := InstalledApps(t.TempDir())
		require.NoError(t, err)
		assert.Empty(t, apps)
	})
}
