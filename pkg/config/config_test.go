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

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig_WritesDefaults(t *testing.T) {
	t.Setenv(CfgEnv, "")
	dir := t.TempDir()

	cfg, err := NewConfig(dir, BaseDefaults)
	require.NoError(t, err)

	cfgPath := filepath.Join(dir, CfgFile)
	assert.FileExists(t, cfgPath)
	assert.Equal(t, cfgPath, cfg.Path())

	assert.Equal(t, DefaultAppListURL, cfg.AppListURL())
	assert.Equal(t, DefaultAppDetailsURL, cfg.AppDetailsURL())
	assert.Equal(t, DefaultDetailsFilters, cfg.DetailsFilters())
	assert.Equal(t, 2*time.Minute, cfg.RateLimitCooldown())
	assert.Equal(t, 500*time.Millisecond, cfg.GatewayBackoff())
	assert.Equal(t, 100*time.Millisecond, cfg.EntryDelay())
	assert.Equal(t, 30*time.Second, cfg.HTTPTimeout())
	assert.Equal(t, "./app_list_all.json", cfg.AppListFile())
	assert.Equal(t, "./app_list_game_w_achievements.json", cfg.FilteredFile())
	assert.True(t, cfg.SteamCheckFlatpak())
	assert.False(t, cfg.DebugLogging())
	assert.Equal(t, AppName+"/"+AppVersion, cfg.UserAgent())
}

func TestNewConfig_EnvOverride(t *testing.T) {
	cfgPath := filepath.Join(t.TempDir(), "custom", "samkit.toml")
	t.Setenv(CfgEnv, cfgPath)

	cfg, err := NewConfig(t.TempDir(), BaseDefaults)
	require.NoError(t, err)
	assert.Equal(t, cfgPath, cfg.Path())
	assert.FileExists(t, cfgPath)
}

func TestLoad_FileValuesOverrideDefaults(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	data := []byte(`
config_schema = 1
debug_logging = true

[catalog]
app_list_url = "http://127.0.0.1:9000/applist"
app_details_url = "http://127.0.0.1:9000/details"

[filter]
rate_limit_cooldown = "5s"
entry_delay = "0s"

[http]
requests_per_minute = 120
user_agent = "tester/1.0"

[steam]
install_dir = "/opt/steam"
extra_paths = ["/mnt/games/steam"]
check_flatpak = false
`)
	require.NoError(t, os.WriteFile(cfgPath, data, 0o600))

	cfg, err := NewConfigAt(cfgPath, BaseDefaults)
	require.NoError(t, err)

	assert.True(t, cfg.DebugLogging())
	assert.Equal(t, "http://127.0.0.1:9000/applist", cfg.AppListURL())
	assert.Equal(t, "http://127.0.0.1:9000/details", cfg.AppDetailsURL())
	assert.Equal(t, 5*time.Second, cfg.RateLimitCooldown())
	assert.Equal(t, time.Duration(0), cfg.EntryDelay())
	// untouched keys keep defaults
	assert.Equal(t, 500*time.Millisecond, cfg.GatewayBackoff())
	assert.Equal(t, DefaultDetailsFilters, cfg.DetailsFilters())
	assert.Equal(t, 120, cfg.RequestsPerMinute())
	assert.Equal(t, "tester/1.0", cfg.UserAgent())
	assert.Equal(t, "/opt/steam", cfg.SteamInstallDir())
	assert.Equal(t, []string{"/mnt/games/steam"}, cfg.SteamExtraPaths())
	assert.False(t, cfg.SteamCheckFlatpak())
}

func TestLoad_SchemaMismatch(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	require.NoError(t, os.WriteFile(cfgPath, []byte("config_schema = 99\n"), 0o600))

	_, err := NewConfigAt(cfgPath, BaseDefaults)
	require.ErrorIs(t, err, ErrSchemaMismatch)
}

func TestLoad_InvalidValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		data string
	}{
		{
			name: "bad duration",
			data: "config_schema = 1\n[filter]\ngateway_backoff = \"soon\"\n",
		},
		{
			name: "bad url",
			data: "config_schema = 1\n[catalog]\napp_list_url = \"not a url\"\n",
		},
		{
			name: "negative rate",
			data: "config_schema = 1\n[http]\nrequests_per_minute = -1\n",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			cfgPath := filepath.Join(t.TempDir(), CfgFile)
			require.NoError(t, os.WriteFile(cfgPath, []byte(tt.data), 0o600))

			_, err := NewConfigAt(cfgPath, BaseDefaults)
			require.Error(t, err)
			assert.Contains(t, err.Error(), "invalid config")
		})
	}
}

func TestLoad_AuthFile(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	auth := []byte(`
["https://api.steampowered.com"]
api_key = "secret"
`)
	require.NoError(t, os.WriteFile(filepath.Join(dir, AuthFile), auth, 0o600))

	cfg, err := NewConfigAt(filepath.Join(dir, CfgFile), BaseDefaults)
	require.NoError(t, err)

	creds := cfg.LookupAuth("https://api.steampowered.com/ISteamApps/GetAppList/v2/")
	require.NotNil(t, creds)
	assert.Equal(t, "secret", creds.APIKey)
	assert.Nil(t, cfg.LookupAuth("https://store.steampowered.com/api/appdetails/"))
}

func TestSave_RoundTrip(t *testing.T) {
	t.Parallel()

	cfgPath := filepath.Join(t.TempDir(), CfgFile)
	cfg, err := NewConfigAt(cfgPath, BaseDefaults)
	require.NoError(t, err)

	cfg.SetDebugLogging(true)
	cfg.SetSteamInstallDir("/srv/steam")
	require.NoError(t, cfg.Save())

	reloaded, err := NewConfigAt(cfgPath, BaseDefaults)
	require.NoError(t, err)
	assert.True(t, reloaded.DebugLogging())
	assert.Equal(t, "/srv/steam", reloaded.SteamInstallDir())
}

func TestValidateDurationTag(t *testing.T) {
	t.Parallel()

	vals := BaseDefaults
	vals.Filter.EntryDelay = ""
	require.NoError(t, Validate(&vals))

	vals.Filter.EntryDelay = "10"
	require.Error(t, Validate(&vals))
}
