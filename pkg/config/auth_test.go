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
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadAuthFromData_RootFormat(t *testing.T) {
	t.Parallel()

	data := []byte(`
["https://api.steampowered.com"]
api_key = "ABC123"

["store.example.com:8443"]
username = "user1"
password = "pass1"
`)

	result := LoadAuthFromData(data)

	require.Len(t, result, 2)
	assert.Equal(t, "ABC123", result["https://api.steampowered.com"].APIKey)
	assert.Equal(t, "user1", result["store.example.com:8443"].Username)
	assert.Equal(t, "pass1", result["store.example.com:8443"].Password)
}

func TestLoadAuthFromData_MixedFormats(t *testing.T) {
	t.Parallel()

	data := []byte(`
["https://root.example.com"]
bearer = "root-token"

[creds."https://wrapped.example.com"]
bearer = "wrapped-token"
`)

	result := LoadAuthFromData(data)

	require.Len(t, result, 2)
	assert.Equal(t, "root-token", result["https://root.example.com"].Bearer)
	assert.Equal(t, "wrapped-token", result["https://wrapped.example.com"].Bearer)
}

func TestLoadAuthFromData_Invalid(t *testing.T) {
	t.Parallel()

	result := LoadAuthFromData([]byte(`not [valid toml`))
	assert.Empty(t, result)
}

func TestLookupAuth(t *testing.T) {
	t.Parallel()

	creds := map[string]CredentialEntry{
		"https://api.steampowered.com/ISteamApps": {APIKey: "apps-key"},
		"store.steampowered.com":                  {Bearer: "store-token"},
	}

	tests := []struct {
		want   *CredentialEntry
		name   string
		reqURL string
	}{
		{
			name:   "scheme host and path prefix",
			reqURL: "https://api.steampowered.com/ISteamApps/GetAppList/v2/",
			want:   &CredentialEntry{APIKey: "apps-key"},
		},
		{
			name:   "path outside prefix",
			reqURL: "https://api.steampowered.com/ISteamUser/GetPlayerSummaries/v2/",
			want:   nil,
		},
		{
			name:   "scheme mismatch",
			reqURL: "http://api.steampowered.com/ISteamApps/GetAppList/v2/",
			want:   nil,
		},
		{
			name:   "schemeless host",
			reqURL: "https://store.steampowered.com/api/appdetails/?appids=10",
			want:   &CredentialEntry{Bearer: "store-token"},
		},
		{
			name:   "host case insensitive",
			reqURL: "https://STORE.steampowered.com/api/appdetails/",
			want:   &CredentialEntry{Bearer: "store-token"},
		},
		{
			name:   "unknown host",
			reqURL: "https://example.com/",
			want:   nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			assert.Equal(t, tt.want, LookupAuth(creds, tt.reqURL))
		})
	}
}

func TestLookupAuth_Empty(t *testing.T) {
	t.Parallel()
	assert.Nil(t, LookupAuth(nil, "https://api.steampowered.com/"))
}
