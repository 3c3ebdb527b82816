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

package helpers

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samkit-project/samkit/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Not parallel: InitLogging replaces the global logger.
func TestInitLogging(t *testing.T) {
	origLogger := log.Logger
	origLevel := zerolog.GlobalLevel()
	t.Cleanup(func() {
		log.Logger = origLogger
		zerolog.SetGlobalLevel(origLevel)
	})

	t.Run("creates nested log directory and writes to extra writers", func(t *testing.T) {
		logDir := filepath.Join(t.TempDir(), "state", "samkit")
		var buf bytes.Buffer

		require.NoError(t, InitLogging(logDir, false, &buf))
		assert.DirExists(t, logDir)

		log.Info().Msg("hello from test")
		assert.Contains(t, buf.String(), "hello from test")
		assert.FileExists(t, filepath.Join(logDir, config.LogFile))
	})

	t.Run("debug flag controls level", func(t *testing.T) {
		logDir := t.TempDir()
		var buf bytes.Buffer

		require.NoError(t, InitLogging(logDir, false, &buf))
		log.Debug().Msg("hidden")
		assert.NotContains(t, buf.String(), "hidden")

		buf.Reset()
		require.NoError(t, InitLogging(logDir, true, &buf))
		log.Debug().Msg("visible")
		assert.Contains(t, buf.String(), "visible")
	})

	t.Run("fails when log dir is a file", func(t *testing.T) {
		file := filepath.Join(t.TempDir(), "not-a-dir")
		require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

		err := InitLogging(filepath.Join(file, "logs"), false)
		require.Error(t, err)
	})
}
