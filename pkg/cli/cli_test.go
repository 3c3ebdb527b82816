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

package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/samkit-project/samkit/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookupCommand(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		args     []string
		wantRest []string
		wantErr  bool
	}{
		{name: "download full", args: []string{"applist", "download-full", "-o", "x.json"}, wantRest: []string{"-o", "x.json"}},
		{name: "filter", args: []string{"applist", "filter"}, wantRest: []string{}},
		{name: "owned", args: []string{"owned", "-steam-dir", "/s"}, wantRest: []string{"-steam-dir", "/s"}},
		{name: "applist alone", args: []string{"applist"}, wantErr: true},
		{name: "unknown subcommand", args: []string{"applist", "sort"}, wantErr: true},
		{name: "unknown", args: []string{"launch"}, wantErr: true},
		{name: "empty", args: nil, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			cmd, rest, err := lookupCommand(tt.args)
			if tt.wantErr {
				require.ErrorIs(t, err, ErrUsage)
				assert.Nil(t, cmd)
				return
			}
			require.NoError(t, err)
			assert.NotNil(t, cmd)
			assert.Equal(t, tt.wantRest, rest)
		})
	}
}

func TestMainVersion(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := Main(context.Background(), []string{"-version"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "samkit v"+config.AppVersion+"\n", stdout.String())
	assert.Empty(t, stderr.String())
}

func TestMainUsageErrors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		args []string
	}{
		{name: "no command", args: nil},
		{name: "unknown command", args: []string{"frobnicate"}},
		{name: "unknown global flag", args: []string{"-nope", "owned"}},
		{name: "incomplete applist", args: []string{"-debug", "applist"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			var stdout, stderr bytes.Buffer
			err := Main(context.Background(), tt.args, &stdout, &stderr)
			require.ErrorIs(t, err, ErrUsage)
			assert.Empty(t, stdout.String())
			assert.Contains(t, stderr.String(), "Usage: samkit")
		})
	}
}

func TestMainHelp(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := Main(context.Background(), []string{"-h"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Contains(t, stderr.String(), "download-full")
	assert.Contains(t, stderr.String(), "-config")
}
