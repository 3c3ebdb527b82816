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

func TestNormalizeVDFKeys(t *testing.T) {
	t.Parallel()

	m := map[string]any{
		"AppState": map[string]any{
			"AppID":      "123",
			"Name":       "MixedCaseValue",
			"UserConfig": map[string]any{"Language": "english"},
		},
	}

	result := normalizeVDFKeys(m)

	appState, ok := vdfSection(result, "appstate")
	require.True(t, ok)
	assert.Equal(t, "123", appState["appid"])
	assert.Equal(t, "MixedCaseValue", appState["name"], "values keep their case")

	userCfg, ok := vdfSection(appState, "userconfig")
	require.True(t, ok)
	assert.Equal(t, "english", userCfg["language"])

	_, hasOriginal := result["AppState"]
	assert.False(t, hasOriginal)
	assert.Equal(t, result, normalizeVDFKeys(result))
}

func TestReadVDFFile(t *testing.T) {
	t.Parallel()

	t.Run("parses_and_normalizes", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "test.vdf")
		require.NoError(t, os.WriteFile(path, []byte(`"LibraryFolders"
{
	"0"
	{
		"Path"		"/games"
	}
}`), 0o600))

		m, err := readVDFFile(path)
		require.NoError(t, err)

		lfs, ok := vdfSection(m, "libraryfolders")
		require.True(t, ok)
		lib, ok := vdfSection(lfs, "0")
		require.True(t, ok)
		assert.Equal(t, "/games", lib["path"])
	})

	t.Run("missing_file", func(t *testing.T) {
		t.Parallel()

		_, err := readVDFFile(filepath.Join(t.TempDir(), "nope.vdf"))
		require.Error(t, err)
		assert.ErrorIs(t, err, os.ErrNotExist)
	})

	t.Run("not_a_section", func(t *testing.T) {
		t.Parallel()

		_, ok := vdfSection(map[string]any{"name": "value"}, "name")
		assert.False(t, ok)
	})
}
